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

package model

import "iter"

// VariableKind classifies a variable of a lowered function.
type VariableKind uint8

const (
	// Local is a local variable scoped to one function execution.
	Local VariableKind = iota
	// ParameterVariable is a function parameter.
	ParameterVariable
	// ThisVariable is the implicit receiver.
	ThisVariable
)

// Variable is a local, parameter or receiver of a lowered function.
type Variable struct {
	// Function is the method or constructor owning the variable.
	Function *Member

	Name string

	Kind VariableKind

	// Index is the parameter position for parameters, a slot number otherwise.
	Index int
}

// Parameter returns the parameter symbol of a parameter variable or nil.
func (v *Variable) Parameter() *Parameter {
	if v == nil || v.Kind != ParameterVariable {
		return nil
	}

	return v.Function.Parameter(v.Index)
}

// IsConstructorLocal reports whether v is a local variable of a constructor.
func (v *Variable) IsConstructorLocal() bool {
	return v != nil && v.Kind == Local && v.Function.IsConstructor()
}

// OpCode is the operation of a lowered instruction.
type OpCode uint8

const (
	// Nop does nothing.
	Nop OpCode = iota
	// LoadConst pushes a compile-time constant.
	LoadConst
	// LoadVariable reads a variable.
	LoadVariable
	// LoadAddress takes the address of a variable.
	LoadAddress
	// StoreVariable writes a variable.
	StoreVariable
	// LoadField reads a field or property.
	LoadField
	// StoreField writes a field or property.
	StoreField
	// Call invokes a method or constructor.
	Call
	// NewObject constructs a new object.
	NewObject
	// Operator applies a unary or binary operator.
	Operator
)

// Instruction is the lowered instruction an expression was produced from.
type Instruction struct {
	// Variable is the variable accessed by LoadVariable, LoadAddress and StoreVariable.
	Variable *Variable

	// Member is the member accessed by field, call and construction instructions.
	Member *Member

	Args []*Instruction

	OpCode OpCode
}

// Descendants yields i and all nested instructions in pre-order.
func (i *Instruction) Descendants() iter.Seq[*Instruction] {
	return func(yield func(*Instruction) bool) {
		i.walk(yield)
	}
}

func (i *Instruction) walk(yield func(*Instruction) bool) bool {
	if i == nil {
		return true
	}

	if !yield(i) {
		return false
	}

	for _, a := range i.Args {
		if !a.walk(yield) {
			return false
		}
	}

	return true
}
