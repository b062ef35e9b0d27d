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

package lowered_test

import (
	"errors"
	"testing"

	. "fillmore-labs.com/ctorinit/internal/lowered"
	"fillmore-labs.com/ctorinit/internal/testsource"
	"fillmore-labs.com/ctorinit/model"
	"fillmore-labs.com/ctorinit/syntax"
)

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
	}{
		{"unterminated type", "class C {"},
		{"missing semicolon", "class C { int x }"},
		{"bad accessor", "class C { int X { fetch; } }"},
		{"bad chaining", "class C { C() : next() {} }"},
		{"unexpected token", "class C { C() { this.x = ; } }"},
		{"unterminated string", "class C { string s = \"abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := Parse("test.cs", []byte(tt.src)); !errors.Is(err, ErrSyntax) {
				t.Errorf("Got error %v, expected %v", err, ErrSyntax)
			}
		})
	}
}

const shapes = `
namespace Geometry;

/// Base of all shapes.
public abstract class Shape
{
    protected Shape(string name)
    {
        base..ctor();
        this.Name = name;
    }

    public string Name { get; }
}

[beforefieldinit]
public sealed class Circle : Shape, IComparable
{
    [JsonIgnore]
    private double <radius>P;

    /// Creates a circle.
    public Circle(double radius)
    {
        this.<radius>P = radius;
        base..ctor("circle");
    }

    public Circle()
    {
        this..ctor(1.0);
    }

    public double Area()
    {
        double r = this.<radius>P;
        return r * r;
    }
}

public record Label(string Text) : Tag;
`

func TestParseSymbols(t *testing.T) {
	t.Parallel()

	f := testsource.Parse(t, shapes)
	tree := f.Tree

	shape := tree.Node(testsource.Find(t, tree, syntax.TypeDeclaration, "Shape")).Type
	circle := tree.Node(testsource.Find(t, tree, syntax.TypeDeclaration, "Circle")).Type

	if got, want := circle.FullName(), "Geometry.Circle"; got != want {
		t.Errorf("Got full name %q, expected %q", got, want)
	}

	if circle.Base != shape {
		t.Errorf("Got base %v, expected %v", circle.Base, shape)
	}

	if !shape.Abstract || shape.BeforeFieldInit || !circle.BeforeFieldInit {
		t.Errorf("Got abstract=%t eager=%t/%t", shape.Abstract, shape.BeforeFieldInit, circle.BeforeFieldInit)
	}

	if got, want := shape.Base.FullName(), "object"; got != want {
		t.Errorf("Got implicit base %q, expected %q", got, want)
	}

	field := tree.Node(testsource.Find(t, tree, syntax.Field, "<radius>P")).Member
	if !field.IsCompilerGenerated() || !field.HasAttribute("JsonIgnoreAttribute") {
		t.Errorf("Got attributes %v", field.Attributes)
	}

	stmts := testsource.Statements(t, tree, testsource.Find(t, tree, syntax.TypeDeclaration, "Circle"), 0)
	if got, want := len(stmts), 2; got != want {
		t.Fatalf("Got %d statements, expected %d", got, want)
	}

	assign := tree.Child(stmts[0], syntax.Value)
	if got := tree.Node(tree.Child(assign, syntax.Left)).Member; got != field {
		t.Errorf("Got target %v, expected %v", got, field)
	}

	v := tree.Node(tree.Child(assign, syntax.Right)).Variable
	if v == nil || v.Kind != model.ParameterVariable || v.Index != 0 || v.Parameter().Name != "radius" {
		t.Errorf("Got variable %+v, expected parameter radius", v)
	}

	call := tree.Node(tree.Child(stmts[1], syntax.Value)).Member
	if !call.IsConstructor() || call.DeclaringType != shape {
		t.Errorf("Got callee %v, expected constructor of %v", call, shape)
	}

	if in := tree.Node(assign).Instruction; in == nil || in.OpCode != model.StoreField || in.Member != field {
		t.Errorf("Got instruction %+v, expected store of %v", in, field)
	}
}

func TestParseDocumentation(t *testing.T) {
	t.Parallel()

	f := testsource.Parse(t, shapes)

	var ctor *model.Member

	for id := range f.Tree.Preorder(f.Tree.Root()) {
		if n := f.Tree.Node(id); n.Kind == syntax.Constructor && n.Name == "Circle" && n.Member.Parameter(0) != nil {
			ctor = n.Member
		}
	}

	doc, ok := f.Documentation.Documentation(ctor)
	if !ok || doc != "Creates a circle." {
		t.Errorf("Got documentation %q, %t", doc, ok)
	}

	if got, want := len(f.Documentation), 1; got != want {
		t.Errorf("Got %d documented members, expected %d", got, want)
	}
}

func TestParseLocals(t *testing.T) {
	t.Parallel()

	f := testsource.Parse(t, shapes)
	tree := f.Tree

	decl := tree.Node(testsource.Find(t, tree, syntax.VariableDeclaration, "r"))
	if decl.Variable == nil || decl.Variable.Kind != model.Local || decl.Variable.IsConstructorLocal() {
		t.Errorf("Got variable %+v, expected method local", decl.Variable)
	}
}

func TestParseRecord(t *testing.T) {
	t.Parallel()

	f := testsource.Parse(t, shapes)
	tree := f.Tree

	label := tree.Node(testsource.Find(t, tree, syntax.TypeDeclaration, "Label")).Type
	if !label.IsRecord() {
		t.Fatal("Expected Label to be a record")
	}

	rec := label.Record
	if rec.IsInheritedRecord() {
		t.Error("Expected Label not to inherit a record")
	}

	members := rec.PrimaryConstructorMembers()
	if got, want := len(members), 2; got != want {
		t.Fatalf("Got %d members, expected %d", got, want)
	}

	if got, want := members[1].Name, "<Text>k__BackingField"; got != want {
		t.Errorf("Got backing field %q, expected %q", got, want)
	}

	if rec.PrimaryConstructor() != nil {
		t.Errorf("Got primary constructor %v, expected none", rec.PrimaryConstructor())
	}

	if got, want := label.Base.Name, "Tag"; got != want {
		t.Errorf("Got base %q, expected %q", got, want)
	}
}
