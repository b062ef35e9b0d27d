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

// MemberKind classifies a member symbol.
type MemberKind uint8

//go:generate go tool stringer -type MemberKind -linecomment
const (
	Field       MemberKind = iota // field
	Property                      // property
	Event                         // event
	Constructor                   // constructor
	Method                        // method
)

// Member is a field, property, event, constructor or method symbol.
type Member struct {
	// Name is the member name. Constructors are named ".ctor" or ".cctor".
	Name string

	// DeclaringType is the type declaring the member.
	DeclaringType *Type

	// Definition is the unspecialized member this member was instantiated from,
	// nil when the member is its own definition.
	Definition *Member

	// Parameters are the parameters of a constructor or method.
	Parameters []*Parameter

	// Attributes are the custom attributes applied to the member.
	Attributes []Attribute

	Kind MemberKind

	Accessibility Accessibility

	// Static reports a static member.
	Static bool
}

// Canonical returns the unspecialized definition of m, so that specialized
// references and partial declarations share one identity.
func (m *Member) Canonical() *Member {
	for m != nil && m.Definition != nil {
		m = m.Definition
	}

	return m
}

// IsConstructor reports whether m is an instance or static constructor.
func (m *Member) IsConstructor() bool { return m != nil && m.Kind == Constructor }

// IsCompilerGenerated reports whether m carries the compiler generated marker.
func (m *Member) IsCompilerGenerated() bool {
	return m != nil && m.HasAttribute(CompilerGeneratedAttribute)
}

// HasAttribute reports whether m carries an attribute of the given full type name.
func (m *Member) HasAttribute(fullName string) bool {
	for _, a := range m.Attributes {
		if a.Type == fullName {
			return true
		}
	}

	return false
}

// Parameter returns the parameter at index i or nil.
func (m *Member) Parameter(i int) *Parameter {
	if m == nil || i < 0 || i >= len(m.Parameters) {
		return nil
	}

	return m.Parameters[i]
}

func (m *Member) String() string {
	if m == nil {
		return "<nil>"
	}

	if m.DeclaringType == nil {
		return m.Name
	}

	return m.DeclaringType.FullName() + "." + m.Name
}

// Parameter is a constructor or method parameter.
type Parameter struct {
	// Owner is the constructor or method declaring the parameter.
	Owner *Member

	Name string

	// Type is the parameter type as written in surface syntax.
	Type string

	// Index is the zero based position in the parameter list.
	Index int
}

// Attribute is a custom attribute as reported by the metadata model.
type Attribute struct {
	// Type is the full name of the attribute type.
	Type string

	// Arguments are the positional arguments in surface syntax.
	Arguments []string
}

// Well known attribute types.
const (
	CompilerGeneratedAttribute = "System.Runtime.CompilerServices.CompilerGeneratedAttribute"
	DebuggerBrowsableAttribute = "System.Diagnostics.DebuggerBrowsableAttribute"
	NullableAttribute          = "System.Runtime.CompilerServices.NullableAttribute"
)
