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

// Package visibility decides whether a constructor declaration can be left out
// of the output because the compiler would supply an identical one.
package visibility

import (
	"fillmore-labs.com/ctorinit/model"
	"fillmore-labs.com/ctorinit/syntax"
)

// CanElide reports whether the constructor declaration ctor is trivial: an empty body,
// no shown documentation, no initializer clause and no parameters. A static
// constructor additionally needs eager static initialization, an instance
// constructor the accessibility of the implicit default constructor.
//
// docs is nil when documentation is not shown.
func CanElide(t *syntax.Tree, ctor syntax.NodeID, typ *model.Type, docs model.DocumentationProvider) bool {
	n := t.Node(ctor)
	if n.Kind != syntax.Constructor {
		return false
	}

	body := t.Child(ctor, syntax.Body)
	if !body.Valid() || t.NumChildren(body) > 0 {
		return false
	}

	if docs != nil && n.Member != nil {
		if _, ok := docs.Documentation(n.Member); ok {
			return false
		}
	}

	if t.Child(ctor, syntax.Initializer).Valid() || t.Child(ctor, syntax.ParameterOf).Valid() {
		return false
	}

	if typ == nil && n.Member != nil {
		typ = n.Member.DeclaringType
	}

	if isStatic(n) {
		return typ != nil && typ.BeforeFieldInit
	}

	return accessibility(n) == typ.DefaultConstructorAccessibility()
}

// Elide removes the constructor declaration, unless it is the only declaration
// left in the compilation unit.
func Elide(t *syntax.Tree, ctor syntax.NodeID) bool {
	if parent := t.Parent(ctor); parent == t.Root() && t.NumChildren(parent) == 1 {
		return false
	}

	t.Detach(ctor)

	return true
}

func isStatic(n *syntax.Node) bool {
	if n.Member != nil {
		return n.Member.Static
	}

	return n.Modifiers.Has(syntax.ModStatic)
}

func accessibility(n *syntax.Node) model.Accessibility {
	if n.Member != nil {
		return n.Member.Accessibility
	}

	return n.Modifiers.Accessibility()
}
