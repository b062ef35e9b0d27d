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

import "strings"

// TypeKind classifies a type definition.
type TypeKind uint8

const (
	// Class is a reference type.
	Class TypeKind = iota
	// Struct is a value type.
	Struct
	// Interface is an interface type.
	Interface
)

// Type describes a type definition.
type Type struct {
	// Name is the simple name of the type.
	Name string

	// Namespace is the containing namespace, empty for the global namespace.
	Namespace string

	// Outer is the declaring type of a nested type.
	Outer *Type

	// Base is the base type, nil for types without a listed base type.
	Base *Type

	// Record describes the positional members of a record type, nil otherwise.
	Record RecordDescriptor

	Kind TypeKind

	// Abstract reports an abstract type.
	Abstract bool

	// BeforeFieldInit reports that static field initializers may run eagerly,
	// at any time before the first static member access.
	BeforeFieldInit bool
}

// IsValueType reports whether t is a value type.
func (t *Type) IsValueType() bool { return t != nil && t.Kind == Struct }

// IsRecord reports whether t is a record type.
func (t *Type) IsRecord() bool { return t != nil && t.Record != nil }

// DefaultConstructorAccessibility is the accessibility of the constructor the
// compiler supplies for a type without explicit constructors.
func (t *Type) DefaultConstructorAccessibility() Accessibility {
	if t != nil && t.Abstract {
		return Protected
	}

	return Public
}

// FullName returns the namespace qualified name of t.
func (t *Type) FullName() string {
	if t == nil {
		return ""
	}

	var b strings.Builder
	switch {
	case t.Outer != nil:
		b.WriteString(t.Outer.FullName())
		b.WriteByte('.')

	case t.Namespace != "":
		b.WriteString(t.Namespace)
		b.WriteByte('.')
	}

	b.WriteString(t.Name)

	return b.String()
}

func (t *Type) String() string { return t.FullName() }

// Accessibility is the declared accessibility of a member.
type Accessibility uint8

//go:generate go tool stringer -type Accessibility -linecomment
const (
	None              Accessibility = iota // none
	Private                                // private
	PrivateProtected                       // private protected
	Protected                              // protected
	Internal                               // internal
	ProtectedInternal                      // protected internal
	Public                                 // public
)
