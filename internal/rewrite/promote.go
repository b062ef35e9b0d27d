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

package rewrite

import (
	"slices"

	"fillmore-labs.com/ctorinit/internal/analyze"
	"fillmore-labs.com/ctorinit/internal/astutil"
	"fillmore-labs.com/ctorinit/model"
	"fillmore-labs.com/ctorinit/syntax"
)

// deniedAttributes only make sense on compiler generated storage.
var deniedAttributes = [...]string{
	model.CompilerGeneratedAttribute,
	model.DebuggerBrowsableAttribute,
	model.NullableAttribute,
}

// elideRecordPrimary removes the primary constructor of a record, whose parameters
// are already written in the record header. Base arguments of a derived record
// move to the base type reference.
func elideRecordPrimary(t *syntax.Tree, res *analyze.Result, c constructors) bool {
	ctor := c.primary
	if !emptyBody(t, ctor) {
		return false
	}

	if c.record.IsInheritedRecord() {
		moveBaseArguments(t, res.Decl, ctor)
	}

	t.Detach(ctor)

	return true
}

// promote turns ctor into the primary constructor of the type declaration.
func promote(t *syntax.Tree, res *analyze.Result, ctor syntax.NodeID) {
	decl := res.Decl
	astutil.Assertf(t.Kind(decl) == syntax.TypeDeclaration, "primary constructor %s outside a type declaration", t.Node(ctor).Member)

	params := t.ChildrenWithRole(ctor, syntax.ParameterOf)
	for _, p := range params {
		t.Append(decl, syntax.ParameterOf, p)
	}

	moveBaseArguments(t, decl, ctor)

	t.Detach(ctor)

	primary := t.Node(ctor).Member.Canonical()

	for rec := range res.Records() {
		if !isCapturedBackingField(t, rec, primary) {
			continue
		}

		if i := rec.Parameter.Index; i < len(params) {
			relocateAttributes(t, rec.Member, params[i])
		}

		t.Detach(rec.Syntax)
		substitute(t, decl, rec)
	}
}

// moveBaseArguments moves the arguments of a `base(...)` clause of ctor onto the
// base type reference of decl.
func moveBaseArguments(t *syntax.Tree, decl, ctor syntax.NodeID) {
	clause := t.Child(ctor, syntax.Initializer)
	if !clause.Valid() || t.Node(clause).Name != analyze.ChainBase.String() {
		return
	}

	args := t.ChildrenWithRole(clause, syntax.Argument)
	if len(args) == 0 {
		return
	}

	base := t.Child(decl, syntax.BaseTypeOf)
	astutil.Assertf(base.Valid(), "base clause of %s without base type", t.Node(ctor).Member)

	for _, arg := range args {
		t.Append(base, syntax.Argument, arg)
	}
}

// isCapturedBackingField reports a compiler generated field storing a parameter of primary.
func isCapturedBackingField(t *syntax.Tree, rec *analyze.Record, primary *model.Member) bool {
	return rec.Syntax.Valid() && t.Kind(rec.Syntax) == syntax.Field && rec.Movable() &&
		rec.Member.IsCompilerGenerated() && rec.Parameter != nil && rec.Parameter.Owner.Canonical() == primary
}

// relocateAttributes puts the custom attributes of a backing field on the promoted
// parameter, targeted at the field.
func relocateAttributes(t *syntax.Tree, field *model.Member, param syntax.NodeID) {
	for _, a := range field.Attributes {
		if slices.Contains(deniedAttributes[:], a.Type) {
			continue
		}

		t.Append(param, syntax.AttributeOf, t.NewAttribute(a, "field"))
	}
}

// substitute replaces the remaining references to a deleted backing field by a copy
// of its captured initializer.
func substitute(t *syntax.Tree, decl syntax.NodeID, rec *analyze.Record) {
	var refs []syntax.NodeID

	for n := range t.Preorder(decl) {
		switch t.Kind(n) {
		case syntax.MemberReference, syntax.Identifier:
			if t.Node(n).Member.Canonical() == rec.Member {
				refs = append(refs, n)
			}

		default:
		}
	}

	for _, ref := range refs {
		t.Replace(ref, t.Clone(rec.Initializer))
	}
}
