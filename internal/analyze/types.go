// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package analyze

// Provenance classifies where a member's declaration comes from.
type Provenance uint8

//go:generate go tool stringer -type Provenance -linecomment
const (
	// OwnDeclaration is a member declared in the body of the analyzed type.
	OwnDeclaration Provenance = iota // own

	// RecordPrimaryCaptured is a member implied by the header of the analyzed record.
	RecordPrimaryCaptured // primary

	// RecordInherited is a header member of a base record.
	RecordInherited // inherited
)

// ChainKind is the form of a constructor initializer clause.
type ChainKind uint8

//go:generate go tool stringer -type ChainKind -linecomment
const (
	// NoChain indicates no chaining call was recognized.
	NoChain ChainKind = iota // none

	// ChainThis calls another constructor of the same type.
	ChainThis // this

	// ChainBase calls a constructor of the base type.
	ChainBase // base
)

// AbortReason explains why a type is left unchanged.
type AbortReason uint8

//go:generate go tool stringer -type AbortReason -linecomment
const (
	// NotAborted indicates a usable result.
	NotAborted AbortReason = iota // none

	// AbortNoMembers indicates the type has no eligible members.
	AbortNoMembers // no members

	// AbortConflict indicates two constructors assign different values to one member.
	AbortConflict // conflicting initializers

	// AbortChaining indicates a chaining call to something other than a constructor
	// of the type or its base type.
	AbortChaining // unexpected chaining

	// AbortSelfConstruction indicates a value type self assignment that does not
	// construct the declaring type.
	AbortSelfConstruction // unexpected self construction
)
