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

package config

// BehaviorFlags represents switchable parts of the transformation.
type BehaviorFlags uint8

const (
	// ShowDocumentation keeps constructors that carry documentation, since eliding them
	// would drop the documentation from the output.
	ShowDocumentation BehaviorFlags = 1 << iota

	// PrimaryConstructors enables promoting a constructor to a primary constructor
	// of a non-record type.
	PrimaryConstructors

	// RecordTypes enables record specific handling: header members and elision of
	// the record's primary constructor.
	RecordTypes
)

// Behavior holds the enabled [BehaviorFlags].
type Behavior = BitMask[BehaviorFlags]

// DefaultBehavior returns the default behavior: primary constructors and records
// are recovered, documentation is not shown.
func DefaultBehavior() Behavior {
	return NewBitMask(PrimaryConstructors, RecordTypes)
}

// String returns the command line name of a single flag.
func (f BehaviorFlags) String() string {
	switch f {
	case ShowDocumentation:
		return "show-docs"

	case PrimaryConstructors:
		return "primary"

	case RecordTypes:
		return "records"

	default:
		return "unknown"
	}
}

// Names returns the names of the flags enabled in b.
func Names(b Behavior) []string {
	var names []string
	for f := range b.Flags() {
		names = append(names, f.String())
	}

	return names
}
