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
	"fillmore-labs.com/ctorinit/internal/match"
	"fillmore-labs.com/ctorinit/model"
	"fillmore-labs.com/ctorinit/syntax"
)

type analyzer struct {
	tree     *syntax.Tree
	result   *Result
	behavior config.Behavior
}

// Analyze builds the transform records for the members of decl, a type declaration
// of typ. typ may be nil for members analyzed outside their type; the declaring
// type of each member is used then.
//
// The result is nil when the type must not be changed, the reason tells why.
func Analyze(t *syntax.Tree, decl syntax.NodeID, typ *model.Type, behavior config.Behavior) (*Result, AbortReason) {
	a := analyzer{
		tree: t,
		result: &Result{
			Type:    typ,
			records: make(map[*model.Member]*Record),
			Decl:    decl,
		},
		behavior: behavior,
	}

	a.collect()

	if d := a.descriptor(typ); d != nil {
		a.seed(d)
	}

	if a.result.Len() == 0 {
		return nil, AbortNoMembers
	}

	for ctor := range a.result.Constructors() {
		if !ctor.Syntax.Valid() || ctor.Member.IsCompilerGenerated() {
			continue
		}

		if reason := a.scan(ctor); reason != NotAborted {
			return nil, reason
		}
	}

	a.settle()

	return a.result, NotAborted
}

// collect creates records for the member declarations.
func (a *analyzer) collect() {
	t := a.tree

	for _, id := range t.ChildrenWithRole(a.result.Decl, syntax.Member) {
		n := t.Node(id)
		if n.Member == nil {
			continue
		}

		m := n.Member.Canonical()
		if _, ok := a.result.records[m]; ok {
			continue
		}

		rec := &Record{
			Member:      m,
			Syntax:      id,
			Initializer: syntax.NoNode,
			Status:      check.MoveAllowed,
		}

		switch n.Kind {
		case syntax.Field:
			rec.Initializer = t.Child(id, syntax.Initializer)

		case syntax.Event:
			if hasAccessorBodies(t, id) {
				continue
			}

			rec.Initializer = t.Child(id, syntax.Initializer)

		case syntax.Property:
			rec.Initializer = t.Child(id, syntax.Initializer)

			if hasAccessorBodies(t, id) {
				rec.block(check.MoveBlockedAccessors)
			}

		case syntax.Constructor:

		default:
			continue
		}

		rec.Descriptor = a.descriptor(a.declaring(m))
		rec.Provenance = a.provenance(rec.Descriptor, m)

		a.result.add(rec)
	}
}

// seed adds the members implied by a record header that have no declaration.
func (a *analyzer) seed(d model.RecordDescriptor) {
	for _, m := range d.PrimaryConstructorMembers() {
		m = m.Canonical()
		if _, ok := a.result.records[m]; ok {
			continue
		}

		a.result.add(&Record{
			Member:      m,
			Descriptor:  d,
			Syntax:      syntax.NoNode,
			Initializer: syntax.NoNode,
			Provenance:  a.provenance(d, m),
			Status:      check.MoveAllowed,
		})
	}
}

// scan classifies the leading statements of a constructor body.
//
// Instance constructors of reference types are only scanned while the chaining call
// is still lowered into the body: without it the body runs after the base constructor,
// and nothing in it is an initializer.
func (a *analyzer) scan(ctor *Record) AbortReason {
	t := a.tree

	body := t.Child(ctor.Syntax, syntax.Body)
	if !body.Valid() || t.Child(ctor.Syntax, syntax.Initializer).Valid() {
		return NotAborted
	}

	declaring := a.declaring(ctor.Member)
	static := ctor.Member.Static

	if !static && !declaring.IsValueType() && !hasChaining(t, body) {
		return NotAborted
	}

	captures := 0

	for _, stmt := range t.Children(body) {
		switch s := match.Classify(t, stmt).(type) {
		case match.MemberAssignment:
			rec := a.target(s.Member, static)
			if rec == nil || slices.Contains(ctor.queue, rec) {
				return NotAborted
			}

			switch {
			case !rec.Initializer.Valid():
				rec.Initializer = s.Value

			case !t.Equal(rec.Initializer, s.Value):
				return AbortConflict
			}

			if p := capturedParameter(t, s.Value, ctor.Member, captures); p != nil {
				rec.PrimaryCandidate, rec.Parameter = true, p
				ctor.PrimaryCandidate = true
				captures++
			}

			status := check.SafetyCheck(t, s.Value, declaring, rec.Provenance == RecordPrimaryCaptured)
			if status.Movable() && static {
				status = check.StaticCheck(t, s.Value, declaring)
			}

			rec.block(status)

			if !rec.Movable() {
				return NotAborted
			}

			rec.Statements = append(rec.Statements, s.Stmt)
			rec.queuedBy = append(rec.queuedBy, ctor)
			ctor.queue = append(ctor.queue, rec)

		case match.Chaining:
			kind, ok := chainKind(s.Callee.Canonical(), declaring)
			if !ok {
				return AbortChaining
			}

			ctor.Initializer, ctor.Chain = s.Call, kind
			ctor.Statements = append(ctor.Statements, s.Stmt)

			return NotAborted

		case match.SelfConstruction:
			if !declaring.IsValueType() {
				return NotAborted
			}

			if s.Type != declaring || !s.Callee.IsConstructor() {
				return AbortSelfConstruction
			}

			ctor.Initializer, ctor.Chain = s.Create, ChainThis
			ctor.Statements = append(ctor.Statements, s.Stmt)

			return NotAborted

		default:
			return NotAborted
		}
	}

	return NotAborted
}

// hasChaining reports whether body contains a lowered constructor call on this or base.
func hasChaining(t *syntax.Tree, body syntax.NodeID) bool {
	for _, stmt := range t.Children(body) {
		if _, ok := match.Classify(t, stmt).(match.Chaining); ok {
			return true
		}
	}

	return false
}

// chainsToThis reports whether ctor delegates to another constructor of its type,
// through a lowered call or an existing initializer clause.
func (a *analyzer) chainsToThis(ctor *Record) bool {
	if ctor.Chain == ChainThis {
		return true
	}

	if !ctor.Syntax.Valid() {
		return false
	}

	clause := a.tree.Child(ctor.Syntax, syntax.Initializer)

	return clause.Valid() && a.tree.Node(clause).Name == ChainThis.String()
}

// target resolves the record an assignment in a constructor writes.
// Unknown members, constructors and members of the other storage class end the scan.
func (a *analyzer) target(m *model.Member, static bool) *Record {
	if m == nil {
		return nil
	}

	rec, ok := a.result.Lookup(m)
	if !ok || rec.Member.IsConstructor() || rec.Member.Static != static || rec.Provenance == RecordInherited {
		return nil
	}

	return rec
}

func (a *analyzer) declaring(m *model.Member) *model.Type {
	if a.result.Type != nil {
		return a.result.Type
	}

	return m.DeclaringType
}

func (a *analyzer) descriptor(typ *model.Type) model.RecordDescriptor {
	if !a.behavior.Enabled(config.RecordTypes) || !typ.IsRecord() {
		return nil
	}

	return typ.Record
}

func (a *analyzer) provenance(d model.RecordDescriptor, m *model.Member) Provenance {
	if d == nil || !d.IsDeclaredByPrimaryConstructor(m) {
		return OwnDeclaration
	}

	if typ := a.declaring(m); m.DeclaringType != nil && m.DeclaringType != typ {
		return RecordInherited
	}

	return RecordPrimaryCaptured
}

// chainKind classifies a chaining callee. Only constructors of the declaring type
// or its base type are expected.
func chainKind(callee *model.Member, declaring *model.Type) (ChainKind, bool) {
	switch {
	case !callee.IsConstructor() || callee.Static:
		return NoChain, false

	case callee.DeclaringType == declaring:
		return ChainThis, true

	case declaring != nil && declaring.Base != nil && callee.DeclaringType == declaring.Base:
		return ChainBase, true

	default:
		return NoChain, false
	}
}

// capturedParameter returns the parameter when value is a plain read of the n-th
// parameter of ctor.
func capturedParameter(t *syntax.Tree, value syntax.NodeID, ctor *model.Member, n int) *model.Parameter {
	if t.Kind(value) != syntax.Identifier {
		return nil
	}

	v := t.Node(value).Variable
	if v == nil || v.Kind != model.ParameterVariable || v.Function.Canonical() != ctor || v.Index != n {
		return nil
	}

	return v.Parameter()
}

func hasAccessorBodies(t *syntax.Tree, id syntax.NodeID) bool {
	for _, acc := range t.ChildrenWithRole(id, syntax.AccessorOf) {
		if t.Child(acc, syntax.Body).Valid() {
			return true
		}
	}

	return false
}
