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

package check_test

import (
	"testing"

	. "fillmore-labs.com/ctorinit/internal/analyze/check"
	"fillmore-labs.com/ctorinit/internal/match"
	"fillmore-labs.com/ctorinit/internal/testsource"
	"fillmore-labs.com/ctorinit/model"
	"fillmore-labs.com/ctorinit/syntax"
)

const values = `
public class C
{
    private int a;

    public C(int x, int* p)
    {
        int y = x;
        this.a = y + 1;
        this.a = x;
        this.a = tmp * 2;
        this.a = &y;
        this.a = 1;
        this.a = -(2 + 3);
        this.a = *p;
        this.a = Math.Max(1, 2);
        this.a = p->b;
    }
}

public struct S
{
    private int v;

    public S(int x)
    {
        this.v = x;
    }
}
`

// assignedValues returns the assigned values of the leading member assignments
// in the first constructor of the named type.
func assignedValues(tb testing.TB, t *syntax.Tree, name string) (*model.Type, []syntax.NodeID) {
	tb.Helper()

	decl := testsource.Find(tb, t, syntax.TypeDeclaration, name)

	var result []syntax.NodeID

	for _, stmt := range testsource.Statements(tb, t, decl, 0) {
		if a, ok := match.Classify(t, stmt).(match.MemberAssignment); ok {
			result = append(result, a.Value)
		}
	}

	return t.Node(decl).Type, result
}

func TestSafetyCheck(t *testing.T) {
	t.Parallel()

	f := testsource.Parse(t, values)
	typ, vals := assignedValues(t, f.Tree, "C")

	tests := []struct {
		name string
		val  syntax.NodeID
		want MoveStatus
	}{
		{"declared local", vals[0], MoveBlockedLocalRead},
		{"parameter", vals[1], MoveAllowed},
		{"implicit local", vals[2], MoveBlockedLocalRead},
		{"local address", vals[3], MoveBlockedLocalRead},
		{"constant", vals[4], MoveAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := SafetyCheck(f.Tree, tt.val, typ, false); got != tt.want {
				t.Errorf("Got %s, expected %s", got, tt.want)
			}
		})
	}
}

func TestSafetyCheckValueType(t *testing.T) {
	t.Parallel()

	f := testsource.Parse(t, values)
	typ, vals := assignedValues(t, f.Tree, "S")

	if got, want := SafetyCheck(f.Tree, vals[0], typ, false), MoveBlockedValueType; got != want {
		t.Errorf("Got %s, expected %s", got, want)
	}

	if got, want := SafetyCheck(f.Tree, vals[0], typ, true), MoveAllowed; got != want {
		t.Errorf("Got %s for a record header member, expected %s", got, want)
	}
}

func TestSafetyCheckSynthetic(t *testing.T) {
	t.Parallel()

	tree := syntax.NewTree()
	lit := tree.New(syntax.Literal, "")
	tree.Node(lit).Text = "0"

	if got, want := SafetyCheck(tree, lit, &model.Type{Name: "T", Kind: model.Struct}, false), MoveAllowed; got != want {
		t.Errorf("Got %s, expected %s", got, want)
	}
}

func TestIsConstant(t *testing.T) {
	t.Parallel()

	f := testsource.Parse(t, values)
	_, vals := assignedValues(t, f.Tree, "C")

	tests := []struct {
		name string
		val  syntax.NodeID
		want bool
	}{
		{"local", vals[0], false},
		{"parameter", vals[1], false},
		{"address", vals[3], false},
		{"literal", vals[4], true},
		{"operators", vals[5], true},
		{"dereference", vals[6], false},
		{"call", vals[7], false},
		{"pointer member", vals[8], false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := IsConstant(f.Tree, tt.val); got != tt.want {
				t.Errorf("Got %t, expected %t", got, tt.want)
			}
		})
	}
}

func TestStaticCheck(t *testing.T) {
	t.Parallel()

	f := testsource.Parse(t, values)
	_, vals := assignedValues(t, f.Tree, "C")

	eager := &model.Type{Name: "Eager", BeforeFieldInit: true}
	lazy := &model.Type{Name: "Lazy"}

	tests := []struct {
		name      string
		val       syntax.NodeID
		declaring *model.Type
		want      MoveStatus
	}{
		{"eager call", vals[7], eager, MoveAllowed},
		{"lazy constant", vals[4], lazy, MoveAllowed},
		{"lazy call", vals[7], lazy, MoveBlockedLazyStatic},
		{"unknown type", vals[5], nil, MoveAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := StaticCheck(f.Tree, tt.val, tt.declaring); got != tt.want {
				t.Errorf("Got %s, expected %s", got, tt.want)
			}
		})
	}
}

func TestMovable(t *testing.T) {
	t.Parallel()

	for s := range MoveBlockedOrder + 1 {
		if got, want := s.Movable(), s == MoveAllowed; got != want {
			t.Errorf("Got %t for %s, expected %t", got, s, want)
		}
	}
}
