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

package check

// MoveStatus indicates whether an initializer can be moved to its declaration and why.
type MoveStatus uint8

//go:generate go tool stringer -type MoveStatus -linecomment
const (
	// MoveAllowed indicates the initializer can be safely moved.
	MoveAllowed MoveStatus = iota // mov

	// MoveBlockedLocalRead indicates the initializer reads a local variable of a constructor.
	// Declaration initializers run before any constructor local exists.
	MoveBlockedLocalRead // loc

	// MoveBlockedValueType indicates the member is declared by a value type outside a
	// record header. Value type constructors do not run field initializers in every
	// construction path.
	MoveBlockedValueType // val

	// MoveBlockedLazyStatic indicates a non-constant assignment in the static constructor
	// of a type without eager static initialization.
	MoveBlockedLazyStatic // laz

	// MoveBlockedIncomplete indicates the member is not initialized by every constructor
	// that runs declaration initializers.
	MoveBlockedIncomplete // inc

	// MoveBlockedAccessors indicates a property or event with accessor bodies, which
	// cannot take an initializer.
	MoveBlockedAccessors // acc

	// MoveBlockedParameterRead indicates the initializer reads a parameter of a
	// constructor that does not become the primary constructor.
	MoveBlockedParameterRead // par

	// MoveBlockedOrder indicates an earlier assignment in the same constructor stays in
	// the body. Only a contiguous run of leading statements may be hoisted.
	MoveBlockedOrder // ord
)

// Movable indicates the initializer could be moved.
func (i MoveStatus) Movable() bool { return i == MoveAllowed }
