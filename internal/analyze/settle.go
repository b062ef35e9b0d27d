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

package analyze

import (
	"slices"

	"fillmore-labs.com/ctorinit/internal/analyze/check"
	"fillmore-labs.com/ctorinit/internal/config"
	"fillmore-labs.com/ctorinit/model"
	"fillmore-labs.com/ctorinit/syntax"
)

// settle downgrades records until no rule changes a status. Statuses only ever
// downgrade, so this terminates.
func (a *analyzer) settle() {
	for {
		changed := a.complete()

		if a.order() {
			changed = true
		}

		if a.parameters() {
			changed = true
		}

		if !changed {
			return
		}
	}
}

// complete blocks instance members that are not assigned by every constructor
// running declaration initializers. Hoisting them would change the constructors
// that do not assign them.
func (a *analyzer) complete() bool {
	var roots []*Record
	for ctor := range a.result.Constructors() {
		if ctor.Member.Static || a.chainsToThis(ctor) || ctor.Member.IsCompilerGenerated() {
			continue
		}

		roots = append(roots, ctor)
	}

	changed := false

	for _, rec := range a.result.order {
		if rec.Member.IsConstructor() || rec.Member.Static || !rec.Movable() || len(rec.Statements) == 0 {
			continue
		}

		incomplete := slices.ContainsFunc(rec.queuedBy, func(c *Record) bool { return c.Chain == ChainThis }) ||
			slices.ContainsFunc(roots, func(c *Record) bool { return !slices.Contains(rec.queuedBy, c) })

		if incomplete && rec.block(check.MoveBlockedIncomplete) {
			changed = true
		}
	}

	return changed
}

// order keeps hoisting to a contiguous run of leading statements: everything after
// a statement that stays in the body stays too, including the chaining call.
func (a *analyzer) order() bool {
	changed := false

	for ctor := range a.result.Constructors() {
		blocked := false

		for _, rec := range ctor.queue {
			if blocked {
				if rec.block(check.MoveBlockedOrder) {
					changed = true
				}

				continue
			}

			blocked = !rec.Movable()
		}

		if blocked && ctor.Chain != NoChain {
			ctor.Initializer, ctor.Chain, ctor.Statements = syntax.NoNode, NoChain, nil
			changed = true
		}
	}

	return changed
}

// parameters predicts the primary constructor and blocks initializers reading
// parameters of any other constructor, since they are not in scope at the declaration.
func (a *analyzer) parameters() bool {
	primary := a.primary()
	a.result.Primary = primary

	changed := false

	for _, rec := range a.result.order {
		if rec.Member.IsConstructor() || !rec.Movable() || len(rec.Statements) == 0 {
			continue
		}

		if readsForeignParameter(a.tree, rec.Initializer, primary) && rec.block(check.MoveBlockedParameterRead) {
			changed = true
		}
	}

	return changed
}

// primary returns the constructor expected to become the primary constructor: the
// descriptor's choice for records, otherwise the single instance constructor not
// chaining to this, marked as candidate, with a body that empties out completely.
func (a *analyzer) primary() *Record {
	if d := a.descriptor(a.result.Type); d != nil {
		if p := d.PrimaryConstructor(); p != nil {
			rec, _ := a.result.Lookup(p)

			return rec
		}

		return nil
	}

	if !a.behavior.Enabled(config.PrimaryConstructors) {
		return nil
	}

	var candidate *Record

	for ctor := range a.result.Constructors() {
		if ctor.Member.Static || a.chainsToThis(ctor) {
			continue
		}

		if candidate != nil {
			return nil
		}

		candidate = ctor
	}

	if candidate == nil || !candidate.PrimaryCandidate || !a.empties(candidate) {
		return nil
	}

	return candidate
}

// empties reports whether the body of ctor is empty once all queued statements are removed.
func (a *analyzer) empties(ctor *Record) bool {
	body := a.tree.Child(ctor.Syntax, syntax.Body)
	if !body.Valid() {
		return true
	}

	for _, stmt := range a.tree.Children(body) {
		if ctor.queued(stmt) {
			continue
		}

		if !slices.ContainsFunc(ctor.queue, func(rec *Record) bool { return rec.Movable() && rec.queued(stmt) }) {
			return false
		}
	}

	return true
}

// readsForeignParameter reports whether the expression reads a parameter of a
// constructor other than primary.
func readsForeignParameter(t *syntax.Tree, expr syntax.NodeID, primary *Record) bool {
	if !expr.Valid() {
		return false
	}

	for n := range t.Preorder(expr) {
		v := t.Node(n).Variable
		if v == nil || v.Kind != model.ParameterVariable {
			continue
		}

		if primary == nil || v.Function.Canonical() != primary.Member {
			return true
		}
	}

	return false
}
