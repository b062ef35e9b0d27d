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

// Package match classifies the leading statements of a lowered constructor body.
//
// [Classify] maps a statement to exactly one of [MemberAssignment], [Chaining],
// [SelfConstruction] or [NoMatch]. Classification is purely structural: symbol
// resolution and applicability checks are left to the caller.
package match

import (
	"fillmore-labs.com/ctorinit/model"
	"fillmore-labs.com/ctorinit/syntax"
)

// Shape is the result of [Classify].
type Shape interface {
	shape()
}

// MemberAssignment is `this.M = value`, `T.M = value` or `M = value`.
type MemberAssignment struct {
	// Member is the assigned member, nil when the target did not resolve.
	Member *model.Member

	Stmt   syntax.NodeID
	Assign syntax.NodeID
	Target syntax.NodeID
	Value  syntax.NodeID
}

// Chaining is `this..ctor(args)` or `base..ctor(args)`.
type Chaining struct {
	// Callee is the invoked constructor, nil when it did not resolve.
	Callee *model.Member

	Args []syntax.NodeID

	Stmt syntax.NodeID
	Call syntax.NodeID

	// Receiver is [syntax.This] or [syntax.Base].
	Receiver syntax.Kind
}

// SelfConstruction is `this = new T(args)` in a value type.
type SelfConstruction struct {
	// Type is the constructed type.
	Type *model.Type

	// Callee is the invoked constructor.
	Callee *model.Member

	Args []syntax.NodeID

	Stmt   syntax.NodeID
	Create syntax.NodeID
}

// NoMatch is any other statement.
type NoMatch struct{}

func (MemberAssignment) shape() {}
func (Chaining) shape()         {}
func (SelfConstruction) shape() {}
func (NoMatch) shape()          {}

// ConstructorName is the name of instance constructors in lowered code.
const ConstructorName = ".ctor"

// Classify returns the shape of stmt.
func Classify(t *syntax.Tree, stmt syntax.NodeID) Shape {
	if t.Kind(stmt) != syntax.ExpressionStatement {
		return NoMatch{}
	}

	e := t.Child(stmt, syntax.Value)

	switch t.Kind(e) {
	case syntax.Assignment:
		return classifyAssignment(t, stmt, e)

	case syntax.Invocation:
		return classifyInvocation(t, stmt, e)

	default:
		return NoMatch{}
	}
}

func classifyAssignment(t *syntax.Tree, stmt, assign syntax.NodeID) Shape {
	if t.Node(assign).Name != "=" {
		return NoMatch{}
	}

	left, right := t.Child(assign, syntax.Left), t.Child(assign, syntax.Right)

	switch t.Kind(left) {
	case syntax.MemberReference:
		switch t.Kind(t.Child(left, syntax.Target)) {
		case syntax.This, syntax.TypeReference:
		default:
			return NoMatch{}
		}

	case syntax.Identifier:
		if t.Node(left).Member == nil {
			return NoMatch{}
		}

	case syntax.This:
		return classifySelfConstruction(t, stmt, right)

	default:
		return NoMatch{}
	}

	if !right.Valid() {
		return NoMatch{}
	}

	return MemberAssignment{
		Member: t.Node(left).Member,
		Stmt:   stmt,
		Assign: assign,
		Target: left,
		Value:  right,
	}
}

func classifySelfConstruction(t *syntax.Tree, stmt, create syntax.NodeID) Shape {
	if t.Kind(create) != syntax.ObjectCreation {
		return NoMatch{}
	}

	n := t.Node(create)

	return SelfConstruction{
		Type:   n.Type,
		Callee: n.Member,
		Args:   t.ChildrenWithRole(create, syntax.Argument),
		Stmt:   stmt,
		Create: create,
	}
}

func classifyInvocation(t *syntax.Tree, stmt, call syntax.NodeID) Shape {
	callee := t.Child(call, syntax.Callee)
	if t.Kind(callee) != syntax.MemberReference || t.Node(callee).Name != ConstructorName {
		return NoMatch{}
	}

	receiver := t.Kind(t.Child(callee, syntax.Target))
	if receiver != syntax.This && receiver != syntax.Base {
		return NoMatch{}
	}

	m := t.Node(call).Member
	if m == nil {
		m = t.Node(callee).Member
	}

	return Chaining{
		Callee:   m,
		Args:     t.ChildrenWithRole(call, syntax.Argument),
		Stmt:     stmt,
		Call:     call,
		Receiver: receiver,
	}
}
