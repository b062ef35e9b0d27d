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

package match_test

import (
	"testing"

	. "fillmore-labs.com/ctorinit/internal/match"
	"fillmore-labs.com/ctorinit/internal/testsource"
	"fillmore-labs.com/ctorinit/syntax"
)

const statements = `
public class Base
{
    public Base(int x)
    {
    }
}

public class C : Base
{
    private int a;
    public static int s;

    public C(int x)
    {
        this.a = x;
        C.s = 1;
        a = 2;
        base..ctor(x);
        this.a += 1;
        Console.WriteLine(x);
        int y = x;
        other.a = 3;
    }

    public C()
    {
        this..ctor(1);
    }
}

public struct P
{
    private int v;

    public P(int v)
    {
        this = new P(v, 0);
    }

    public P(int v, int w)
    {
        this.v = v + w;
    }
}
`

func TestClassify(t *testing.T) {
	t.Parallel()

	f := testsource.Parse(t, statements)
	tree := f.Tree
	body := testsource.Statements(t, tree, testsource.Find(t, tree, syntax.TypeDeclaration, "C"), 0)

	tests := []struct {
		name   string
		stmt   syntax.NodeID
		member string
	}{
		{"this member", body[0], "a"},
		{"static member", body[1], "s"},
		{"implicit this", body[2], "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Classify(tree, tt.stmt).(MemberAssignment)
			if !ok {
				t.Fatalf("Got %T, expected MemberAssignment", Classify(tree, tt.stmt))
			}

			if got.Member == nil {
				t.Fatal("Got unresolved member")
			}

			if got, want := got.Member.Name, tt.member; got != want {
				t.Errorf("Got member %q, expected %q", got, want)
			}

			if got, want := got.Stmt, tt.stmt; got != want {
				t.Errorf("Got statement %d, expected %d", got, want)
			}

			if got, want := tree.Parent(got.Value), got.Assign; got != want {
				t.Errorf("Got value parent %d, expected assignment %d", got, want)
			}
		})
	}
}

func TestClassifyNoMatch(t *testing.T) {
	t.Parallel()

	f := testsource.Parse(t, statements)
	tree := f.Tree
	body := testsource.Statements(t, tree, testsource.Find(t, tree, syntax.TypeDeclaration, "C"), 0)

	tests := []struct {
		name string
		stmt syntax.NodeID
	}{
		{"compound assignment", body[4]},
		{"method call", body[5]},
		{"local declaration", body[6]},
		{"foreign target", body[7]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got, ok := Classify(tree, tt.stmt).(NoMatch); !ok {
				t.Errorf("Got %T, expected NoMatch", got)
			}
		})
	}
}

func TestClassifyChaining(t *testing.T) {
	t.Parallel()

	f := testsource.Parse(t, statements)
	tree := f.Tree
	decl := testsource.Find(t, tree, syntax.TypeDeclaration, "C")

	tests := []struct {
		name     string
		stmt     syntax.NodeID
		receiver syntax.Kind
		owner    string
	}{
		{"base", testsource.Statements(t, tree, decl, 0)[3], syntax.Base, "Base"},
		{"this", testsource.Statements(t, tree, decl, 1)[0], syntax.This, "C"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Classify(tree, tt.stmt).(Chaining)
			if !ok {
				t.Fatalf("Got %T, expected Chaining", Classify(tree, tt.stmt))
			}

			if got, want := got.Receiver, tt.receiver; got != want {
				t.Errorf("Got receiver %s, expected %s", got, want)
			}

			if got.Callee == nil {
				t.Fatal("Got unresolved constructor")
			}

			if got, want := got.Callee.DeclaringType.Name, tt.owner; got != want {
				t.Errorf("Got constructor of %q, expected %q", got, want)
			}

			if got, want := len(got.Args), 1; got != want {
				t.Errorf("Got %d arguments, expected %d", got, want)
			}
		})
	}
}

func TestClassifySelfConstruction(t *testing.T) {
	t.Parallel()

	f := testsource.Parse(t, statements)
	tree := f.Tree
	stmt := testsource.Statements(t, tree, testsource.Find(t, tree, syntax.TypeDeclaration, "P"), 0)[0]

	got, ok := Classify(tree, stmt).(SelfConstruction)
	if !ok {
		t.Fatalf("Got %T, expected SelfConstruction", Classify(tree, stmt))
	}

	if got.Type == nil || got.Type.Name != "P" {
		t.Errorf("Got type %v, expected P", got.Type)
	}

	if got.Callee == nil || len(got.Callee.Parameters) != 2 {
		t.Errorf("Got constructor %v, expected the two parameter constructor", got.Callee)
	}

	if got, want := len(got.Args), 2; got != want {
		t.Errorf("Got %d arguments, expected %d", got, want)
	}
}
