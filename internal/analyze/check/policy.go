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

import (
	"fillmore-labs.com/ctorinit/model"
	"fillmore-labs.com/ctorinit/syntax"
)

// SafetyCheck evaluates a candidate initializer against the movability rules.
// primaryCaptured reports a member declared by a record header.
//
// An expression without a lowered instruction is synthetic and always movable.
func SafetyCheck(t *syntax.Tree, value syntax.NodeID, declaring *model.Type, primaryCaptured bool) MoveStatus {
	in := t.Node(value).Instruction
	if in == nil {
		return MoveAllowed
	}

	if readsConstructorLocal(in) {
		return MoveBlockedLocalRead
	}

	if declaring.IsValueType() && !primaryCaptured {
		return MoveBlockedValueType
	}

	return MoveAllowed
}

// StaticCheck evaluates an assignment found in a static constructor. Without eager
// static initialization only compile-time constants keep their timing when hoisted.
func StaticCheck(t *syntax.Tree, value syntax.NodeID, declaring *model.Type) MoveStatus {
	if declaring != nil && declaring.BeforeFieldInit {
		return MoveAllowed
	}

	if IsConstant(t, value) {
		return MoveAllowed
	}

	return MoveBlockedLazyStatic
}

// readsConstructorLocal reports whether any nested instruction reads or takes the
// address of a local variable owned by a constructor. Parameters are fine.
func readsConstructorLocal(in *model.Instruction) bool {
	for i := range in.Descendants() {
		switch i.OpCode {
		case model.LoadVariable, model.LoadAddress:
			if i.Variable.IsConstructorLocal() {
				return true
			}

		default:
		}
	}

	return false
}

// IsConstant reports whether the expression at id is a compile-time constant:
// a literal, or operators applied to constants.
func IsConstant(t *syntax.Tree, id syntax.NodeID) bool {
	switch t.Kind(id) {
	case syntax.Literal:
		return true

	case syntax.Unary:
		switch t.Node(id).Name {
		case "*", "&":
			return false
		}

		return IsConstant(t, t.Child(id, syntax.Operand))

	case syntax.Binary:
		if t.Node(id).Name == "->" {
			return false
		}

		return IsConstant(t, t.Child(id, syntax.Left)) && IsConstant(t, t.Child(id, syntax.Right))

	default:
		return false
	}
}
