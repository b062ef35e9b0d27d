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

package syntax

// Kind identifies the syntactic category of a [Node].
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	Invalid Kind = iota // invalid

	// Declarations.
	CompilationUnit        // compilation unit
	Namespace              // namespace
	TypeDeclaration        // type declaration
	Field                  // field
	Property               // property
	Event                  // event
	Accessor               // accessor
	Constructor            // constructor
	Method                 // method
	Parameter              // parameter
	Attribute              // attribute
	ConstructorInitializer // constructor initializer
	BaseType               // base type

	// Statements.
	Block               // block
	ExpressionStatement // expression statement
	VariableDeclaration // variable declaration
	ReturnStatement     // return statement
	IfStatement         // if statement

	// Expressions.
	Assignment      // assignment
	Binary          // binary
	Unary           // unary
	Identifier      // identifier
	MemberReference // member reference
	TypeReference   // type reference
	Invocation      // invocation
	ObjectCreation  // object creation
	Literal         // literal
	This            // this
	Base            // base
)

// IsExpression reports whether k is an expression kind.
func (k Kind) IsExpression() bool { return k >= Assignment && k <= Base }

// IsStatement reports whether k is a statement kind.
func (k Kind) IsStatement() bool { return k >= Block && k <= IfStatement }

// IsMember reports whether k declares a type member.
func (k Kind) IsMember() bool {
	switch k {
	case TypeDeclaration, Field, Property, Event, Constructor, Method:
		return true

	default:
		return false
	}
}

// Role is the slot a child occupies in its parent.
type Role uint8

//go:generate go tool stringer -type Role -linecomment
const (
	NoRole      Role = iota // none
	Member                  // member
	AttributeOf             // attribute
	ParameterOf             // parameter
	BaseTypeOf              // base type
	Initializer             // initializer
	Body                    // body
	AccessorOf              // accessor
	Statement               // statement
	Left                    // left
	Right                   // right
	Operand                 // operand
	Target                  // target
	Callee                  // callee
	Argument                // argument
	Condition               // condition
	Then                    // then
	Else                    // else
	Value                   // value
)
