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

package visibility_test

import (
	"testing"

	"fillmore-labs.com/ctorinit/internal/testsource"
	. "fillmore-labs.com/ctorinit/internal/visibility"
	"fillmore-labs.com/ctorinit/syntax"
)

const constructors = `
public class Widget
{
    public Widget()
    {
    }
}

public abstract class Gadget
{
    public Gadget()
    {
    }
}

public abstract class Gizmo
{
    protected Gizmo()
    {
    }
}

public class Busy
{
    public Busy()
    {
        this.Run();
    }

    public void Run()
    {
    }
}

public class Param
{
    public Param(int x)
    {
    }
}

public class Chained : Widget
{
    public Chained() : base()
    {
    }
}

public class Hidden
{
    private Hidden()
    {
    }
}

[beforefieldinit]
public class Eager
{
    static Eager()
    {
    }
}

public class Lazy
{
    static Lazy()
    {
    }
}

public class Documented
{
    /// Creates an instance.
    public Documented()
    {
    }
}
`

func TestCanElide(t *testing.T) {
	t.Parallel()

	f := testsource.Parse(t, constructors)

	tests := []struct {
		name string
		docs bool
		want bool
	}{
		{"Widget", false, true},
		{"Gadget", false, false},
		{"Gizmo", false, true},
		{"Busy", false, false},
		{"Param", false, false},
		{"Chained", false, false},
		{"Hidden", false, false},
		{"Eager", false, true},
		{"Lazy", false, false},
		{"Documented", false, true},
		{"Documented", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctor := testsource.Find(t, f.Tree, syntax.Constructor, tt.name)

			var got bool
			if tt.docs {
				got = CanElide(f.Tree, ctor, nil, f.Documentation)
			} else {
				got = CanElide(f.Tree, ctor, nil, nil)
			}

			if got != tt.want {
				t.Errorf("Got %t, expected %t", got, tt.want)
			}
		})
	}
}

func TestCanElideNonConstructor(t *testing.T) {
	t.Parallel()

	f := testsource.Parse(t, constructors)
	m := testsource.Find(t, f.Tree, syntax.Method, "Run")

	if CanElide(f.Tree, m, nil, nil) {
		t.Error("Got elidable method")
	}
}

func TestElide(t *testing.T) {
	t.Parallel()

	f := testsource.Parse(t, constructors)
	decl := testsource.Find(t, f.Tree, syntax.TypeDeclaration, "Widget")
	ctor := testsource.Find(t, f.Tree, syntax.Constructor, "Widget")

	if !Elide(f.Tree, ctor) {
		t.Fatal("Expected constructor to be elided")
	}

	if got, want := f.Tree.NumChildren(decl), 0; got != want {
		t.Errorf("Got %d members, expected %d", got, want)
	}
}

func TestElideSole(t *testing.T) {
	t.Parallel()

	tree := syntax.NewTree()
	ctor := tree.New(syntax.Constructor, "C")
	tree.Append(tree.Root(), syntax.Member, ctor)

	if Elide(tree, ctor) {
		t.Error("Got sole declaration elided")
	}

	if got, want := tree.Parent(ctor), tree.Root(); got != want {
		t.Errorf("Got parent %d, expected %d", got, want)
	}
}
