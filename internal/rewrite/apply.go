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

// Package rewrite applies an analysis result to the syntax tree.
//
// Movable initializers are attached to their declarations, chaining calls become
// constructor initializer clauses, trivial constructors are elided and a primary
// constructor is promoted to the type declaration.
package rewrite

import (
	"fillmore-labs.com/ctorinit/internal/analyze"
	"fillmore-labs.com/ctorinit/internal/config"
	"fillmore-labs.com/ctorinit/model"
	"fillmore-labs.com/ctorinit/syntax"
)

// Options control the rewrite.
type Options struct {
	// Docs provides constructor documentation, nil when documentation is not shown.
	Docs model.DocumentationProvider

	Behavior config.Behavior
}

// Stats summarizes the edits of one type.
type Stats struct {
	// Hoisted counts initializers moved to their declarations.
	Hoisted int

	// Chained counts constructor initializer clauses created.
	Chained int

	// Elided counts removed constructor declarations.
	Elided int

	// Promoted is set when a constructor became the primary constructor.
	Promoted bool
}

// Apply performs the edits described by res. res must not be nil.
func Apply(t *syntax.Tree, res *analyze.Result, opts Options) Stats {
	var stats Stats

	for rec := range res.Records() {
		if !rec.Movable() || !rec.Initializer.Valid() {
			continue
		}

		switch {
		case rec.Member.IsConstructor():
			if chain(t, rec) {
				stats.Chained++
			}

		case rec.Syntax.Valid():
			if hoist(t, rec) {
				stats.Hoisted++
			}

		default:
			removeStatements(t, rec)
		}
	}

	c := classify(t, res, opts.Behavior)

	if c.static.Valid() && elide(t, c.static, res, opts) {
		stats.Elided++
	}

	switch {
	case len(c.instance) == 1 && elide(t, c.instance[0], res, opts):
		stats.Elided++

	case !c.primary.Valid():

	case c.record != nil:
		if elideRecordPrimary(t, res, c) {
			stats.Elided++
		}

	default:
		promote(t, res, c.primary)
		stats.Promoted = true
	}

	return stats
}

// hoist moves the initializer of a field, property or event to its declaration.
func hoist(t *syntax.Tree, rec *analyze.Record) bool {
	init := rec.Initializer
	if t.Parent(init) != rec.Syntax {
		t.Append(rec.Syntax, syntax.Initializer, init)
	}

	if t.RequiresUnsafe(init) {
		t.Node(rec.Syntax).Modifiers |= syntax.ModUnsafe
	}

	return removeStatements(t, rec)
}

// chain converts the chaining call of a constructor into an initializer clause.
// An implicit `base()` is dropped.
func chain(t *syntax.Tree, rec *analyze.Record) bool {
	call := rec.Initializer
	args := t.ChildrenWithRole(call, syntax.Argument)

	removeStatements(t, rec)

	if rec.Chain == analyze.ChainBase && len(args) == 0 {
		return false
	}

	clause := t.New(syntax.ConstructorInitializer, rec.Chain.String())
	t.Node(clause).Member = t.Node(call).Member.Canonical()

	for _, arg := range args {
		t.Append(clause, syntax.Argument, arg)
	}

	t.Append(rec.Syntax, syntax.Initializer, clause)

	return true
}

func removeStatements(t *syntax.Tree, rec *analyze.Record) bool {
	for _, stmt := range rec.Statements {
		t.Detach(stmt)
	}

	return len(rec.Statements) > 0
}
