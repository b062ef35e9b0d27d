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

// Package testsource provides utilities for reading and rendering lowered C# in tests.
//
// It is designed to simplify testing of the pass stages by handling the
// boilerplate of parsing source fragments and locating declarations in them.
package testsource

import (
	"testing"

	"fillmore-labs.com/ctorinit/internal/lowered"
	"fillmore-labs.com/ctorinit/internal/printer"
	"fillmore-labs.com/ctorinit/syntax"
)

const filename = "test.cs"

// Parse reads a lowered source fragment. The test fails on syntax errors.
func Parse(tb testing.TB, src string) *lowered.File {
	tb.Helper()

	f, err := lowered.Parse(filename, []byte(src))
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return f
}

// Print renders the whole file, including documentation when docs is set.
func Print(tb testing.TB, f *lowered.File, docs bool) string {
	tb.Helper()

	var cfg printer.Config
	if docs {
		cfg.Docs = f.Documentation
	}

	return cfg.String(f.Tree, f.Tree.Root())
}

// Find returns the first node of the given kind and name in pre-order.
func Find(tb testing.TB, t *syntax.Tree, kind syntax.Kind, name string) syntax.NodeID {
	tb.Helper()

	for id := range t.Preorder(t.Root()) {
		if n := t.Node(id); n.Kind == kind && n.Name == name {
			return id
		}
	}

	tb.Fatalf("Can't find %s %q", kind, name)

	return syntax.NoNode
}

// Statements returns the body statements of the i-th constructor of the type
// declaration decl.
func Statements(tb testing.TB, t *syntax.Tree, decl syntax.NodeID, i int) []syntax.NodeID {
	tb.Helper()

	var ctors []syntax.NodeID

	for _, m := range t.ChildrenWithRole(decl, syntax.Member) {
		if t.Kind(m) == syntax.Constructor {
			ctors = append(ctors, m)
		}
	}

	if i >= len(ctors) {
		tb.Fatalf("Type %s has %d constructors, need %d", t.Node(decl).Name, len(ctors), i+1)
	}

	return t.ChildrenWithRole(t.Child(ctors[i], syntax.Body), syntax.Statement)
}

// PrintNode renders the subtree at id without documentation.
func PrintNode(tb testing.TB, t *syntax.Tree, id syntax.NodeID) string {
	tb.Helper()

	return printer.Config{}.String(t, id)
}
