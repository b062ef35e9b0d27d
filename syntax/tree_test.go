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

package syntax_test

import (
	"slices"
	"testing"

	"fillmore-labs.com/ctorinit/model"
	. "fillmore-labs.com/ctorinit/syntax"
)

func literal(t *Tree, text string) NodeID {
	id := t.New(Literal, "")
	t.Node(id).Text = text

	return id
}

func binary(t *Tree, op string, left, right NodeID) NodeID {
	id := t.New(Binary, op)
	t.Append(id, Left, left)
	t.Append(id, Right, right)

	return id
}

func TestAppendReparents(t *testing.T) {
	t.Parallel()

	tr := NewTree()
	a := tr.New(TypeDeclaration, "A")
	b := tr.New(TypeDeclaration, "B")
	f := tr.New(Field, "f")

	tr.Append(tr.Root(), Member, a)
	tr.Append(tr.Root(), Member, b)
	tr.Append(a, Member, f)
	tr.Append(b, Member, f)

	if got, want := tr.NumChildren(a), 0; got != want {
		t.Errorf("Got %d children of A, expected %d", got, want)
	}

	if got, want := tr.Parent(f), b; got != want {
		t.Errorf("Got parent %d, expected %d", got, want)
	}

	if got, want := tr.Node(f).Role, Member; got != want {
		t.Errorf("Got role %s, expected %s", got, want)
	}
}

func TestInsertDetachReplace(t *testing.T) {
	t.Parallel()

	tr := NewTree()
	block := tr.New(Block, "")
	s1 := tr.New(ExpressionStatement, "")
	s2 := tr.New(ExpressionStatement, "")
	s3 := tr.New(ExpressionStatement, "")

	tr.Append(block, Statement, s1)
	tr.Append(block, Statement, s3)
	tr.Insert(block, 1, Statement, s2)

	if got, want := tr.Children(block), []NodeID{s1, s2, s3}; !slices.Equal(got, want) {
		t.Fatalf("Got children %v, expected %v", got, want)
	}

	if got, want := tr.Index(s3), 2; got != want {
		t.Errorf("Got index %d, expected %d", got, want)
	}

	tr.Detach(s2)
	tr.Detach(s2)

	if got, want := tr.Children(block), []NodeID{s1, s3}; !slices.Equal(got, want) {
		t.Errorf("Got children %v after detach, expected %v", got, want)
	}

	if got := tr.Parent(s2); got.Valid() {
		t.Errorf("Got parent %d of detached node", got)
	}

	tr.Replace(s1, s2)

	if got, want := tr.Children(block), []NodeID{s2, s3}; !slices.Equal(got, want) {
		t.Errorf("Got children %v after replace, expected %v", got, want)
	}

	if got, want := tr.Index(s1), -1; got != want {
		t.Errorf("Got index %d of replaced node, expected %d", got, want)
	}
}

func TestChildWithRole(t *testing.T) {
	t.Parallel()

	tr := NewTree()
	call := tr.New(Invocation, "")
	callee := tr.New(MemberReference, ".ctor")
	a1, a2 := literal(tr, "1"), literal(tr, "2")

	tr.Append(call, Callee, callee)
	tr.Append(call, Argument, a1)
	tr.Append(call, Argument, a2)

	if got, want := tr.Child(call, Callee), callee; got != want {
		t.Errorf("Got callee %d, expected %d", got, want)
	}

	if got, want := tr.Child(call, Body), NoNode; got != want {
		t.Errorf("Got body %d, expected %d", got, want)
	}

	if got, want := tr.ChildrenWithRole(call, Argument), []NodeID{a1, a2}; !slices.Equal(got, want) {
		t.Errorf("Got arguments %v, expected %v", got, want)
	}

	if got, want := tr.Kind(NoNode), Invalid; got != want {
		t.Errorf("Got kind %s of absent node, expected %s", got, want)
	}
}

func TestCloneEqual(t *testing.T) {
	t.Parallel()

	typ := &model.Type{Name: "C"}
	def := &model.Member{Name: "x", DeclaringType: typ, Kind: model.Field}
	spec := &model.Member{Name: "x", DeclaringType: typ, Kind: model.Field, Definition: def}

	tr := NewTree()
	ref := tr.New(MemberReference, "x")
	tr.Node(ref).Member = spec
	tr.Append(ref, Target, tr.New(This, ""))

	orig := binary(tr, "+", ref, literal(tr, "1"))
	clone := tr.Clone(orig)

	if clone == orig {
		t.Fatal("Clone returned the original node")
	}

	if got := tr.Parent(clone); got.Valid() {
		t.Errorf("Got parent %d of clone", got)
	}

	if !tr.Equal(orig, clone) {
		t.Error("Clone differs from original")
	}

	tr.Node(tr.Child(clone, Left)).Member = def

	if !tr.Equal(orig, clone) {
		t.Error("Canonical member references differ")
	}

	tr.Node(tr.Child(clone, Right)).Text = "2"

	if tr.Equal(orig, clone) {
		t.Error("Different literals compare equal")
	}
}

func TestEqualIgnoresInstruction(t *testing.T) {
	t.Parallel()

	tr := NewTree()
	a, b := literal(tr, "1"), literal(tr, "1")
	tr.Node(a).Instruction = &model.Instruction{OpCode: model.LoadConst}

	if !tr.Equal(a, b) {
		t.Error("Instruction annotation changes equality")
	}

	if tr.Equal(a, NoNode) {
		t.Error("Absent node equals literal")
	}
}

func TestPreorder(t *testing.T) {
	t.Parallel()

	tr := NewTree()
	l, r := literal(tr, "1"), literal(tr, "2")
	sum := binary(tr, "+", l, r)

	if got, want := slices.Collect(tr.Preorder(sum)), []NodeID{sum, l, r}; !slices.Equal(got, want) {
		t.Errorf("Got pre-order %v, expected %v", got, want)
	}

	var first []NodeID
	for n := range tr.Preorder(sum) {
		first = append(first, n)

		break
	}

	if got, want := first, []NodeID{sum}; !slices.Equal(got, want) {
		t.Errorf("Got %v after break, expected %v", got, want)
	}

	if !tr.Contains(sum, r) || tr.Contains(l, r) {
		t.Error("Unexpected containment")
	}
}

func TestNewAttribute(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name, typ, want string
	}{
		{"qualified", "System.ObsoleteAttribute", "Obsolete"},
		{"unqualified", "MarkerAttribute", "Marker"},
		{"no_suffix", "N.Flag", "Flag"},
		{"only_suffix", "N.Attribute", "Attribute"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tr := NewTree()
			attr := tr.NewAttribute(model.Attribute{Type: tt.typ, Arguments: []string{`"x"`}}, "field")

			n := tr.Node(attr)
			if got, want := n.Name, tt.want; got != want {
				t.Errorf("Got name %q, expected %q", got, want)
			}

			if got, want := n.Text, "field"; got != want {
				t.Errorf("Got target %q, expected %q", got, want)
			}

			args := tr.ChildrenWithRole(attr, Argument)
			if len(args) != 1 || tr.Node(args[0]).Text != `"x"` {
				t.Errorf("Got arguments %v", args)
			}
		})
	}
}

func TestRequiresUnsafe(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name  string
		build func(*Tree) NodeID
		want  bool
	}{
		{
			name:  "literal",
			build: func(t *Tree) NodeID { return literal(t, "1") },
			want:  false,
		},
		{
			name: "address_of",
			build: func(t *Tree) NodeID {
				u := t.New(Unary, "&")
				t.Append(u, Operand, t.New(Identifier, "x"))

				return u
			},
			want: true,
		},
		{
			name: "nested_dereference",
			build: func(t *Tree) NodeID {
				u := t.New(Unary, "*")
				t.Append(u, Operand, t.New(Identifier, "p"))

				return binary(t, "+", literal(t, "1"), u)
			},
			want: true,
		},
		{
			name: "negation",
			build: func(t *Tree) NodeID {
				u := t.New(Unary, "-")
				t.Append(u, Operand, literal(t, "1"))

				return u
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tr := NewTree()
			if got, want := tr.RequiresUnsafe(tt.build(tr)), tt.want; got != want {
				t.Errorf("Got unsafe %t, expected %t", got, want)
			}
		})
	}
}

func TestModifiers(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		mods Modifiers
		want string
		acc  model.Accessibility
	}{
		{ModPublic | ModStatic, "public static", model.Public},
		{ModPrivate | ModProtected, "private protected", model.PrivateProtected},
		{ModInternal | ModProtected | ModReadonly, "protected internal readonly", model.ProtectedInternal},
		{ModNone, "", model.None},
	}

	for _, tt := range tests {
		if got, want := tt.mods.String(), tt.want; got != want {
			t.Errorf("Got %q, expected %q", got, want)
		}

		if got, want := tt.mods.Accessibility(), tt.acc; got != want {
			t.Errorf("Got accessibility %s, expected %s", got, want)
		}

		if got, want := AccessModifiers(tt.acc), tt.mods&(ModPublic|ModPrivate|ModProtected|ModInternal); got != want {
			t.Errorf("Got modifiers %q, expected %q", got, want)
		}
	}
}
