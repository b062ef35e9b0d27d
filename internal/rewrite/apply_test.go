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

package rewrite_test

import (
	"testing"

	"fillmore-labs.com/ctorinit/internal/analyze"
	"fillmore-labs.com/ctorinit/internal/config"
	. "fillmore-labs.com/ctorinit/internal/rewrite"
	"fillmore-labs.com/ctorinit/internal/testsource"
	"fillmore-labs.com/ctorinit/syntax"
)

const types = `
public abstract class Shape
{
    protected Shape(string name)
    {
    }
}

public class Counter
{
    private int count;
    private string name;

    public Counter()
    {
        this.count = 1;
        this.name = "counter";
        base..ctor();
    }
}

public class Account : Shape
{
    private int balance;

    public Account()
    {
        this.balance = 0;
        base..ctor("account");
    }
}

public class Point : Shape
{
    private int <x>P;

    public Point(int x)
    {
        this.<x>P = x;
        base..ctor("point");
    }

    public int X => this.<x>P;
}

public class Lazy
{
    private static int a;
    private static int b;

    static Lazy()
    {
        Lazy.a = -1;
        Lazy.b = Environment.TickCount;
    }
}

public record Person(string Name)
{
    public Person(string Name)
    {
        this.<Name>k__BackingField = Name;
        base..ctor();
    }
}
`

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want Stats
	}{
		{"Counter", Stats{Hoisted: 2, Elided: 1}},
		{"Account", Stats{Hoisted: 1, Chained: 1}},
		{"Point", Stats{Hoisted: 1, Chained: 1, Promoted: true}},
		{"Lazy", Stats{Hoisted: 1}},
		{"Person", Stats{Elided: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := testsource.Parse(t, types)
			decl := testsource.Find(t, f.Tree, syntax.TypeDeclaration, tt.name)

			behavior := config.DefaultBehavior()

			res, reason := analyze.Analyze(f.Tree, decl, f.Tree.Node(decl).Type, behavior)
			if res == nil {
				t.Fatalf("Analysis aborted: %s", reason)
			}

			if got, want := Apply(f.Tree, res, Options{Behavior: behavior}), tt.want; got != want {
				t.Errorf("Got %+v, expected %+v", got, want)
			}
		})
	}
}

func TestApplyPromote(t *testing.T) {
	t.Parallel()

	f := testsource.Parse(t, types)
	decl := testsource.Find(t, f.Tree, syntax.TypeDeclaration, "Point")

	behavior := config.DefaultBehavior()

	res, reason := analyze.Analyze(f.Tree, decl, f.Tree.Node(decl).Type, behavior)
	if res == nil {
		t.Fatalf("Analysis aborted: %s", reason)
	}

	Apply(f.Tree, res, Options{Behavior: behavior})

	const want = `public class Point(int x) : Shape("point")
{
    public int X
    {
        get
        {
            return x;
        }
    }
}
`

	if got := testsource.PrintNode(t, f.Tree, decl); got != want {
		t.Errorf("Got:\n%s\nexpected:\n%s", got, want)
	}
}
