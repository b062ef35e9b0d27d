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
	"iter"
	"slices"

	"fillmore-labs.com/ctorinit/internal/analyze/check"
	"fillmore-labs.com/ctorinit/model"
	"fillmore-labs.com/ctorinit/syntax"
)

// Record is the transform record of one field, property, event or constructor.
type Record struct {
	// Member is the canonical symbol.
	Member *model.Member

	// Descriptor is the record descriptor of the declaring type, nil for other types.
	Descriptor model.RecordDescriptor

	// Parameter is the constructor parameter the member captures.
	Parameter *model.Parameter

	// Statements are the constructor statements made redundant by the initializer.
	// For constructors, the chaining statement.
	Statements []syntax.NodeID

	queuedBy []*Record // constructors that queued a statement of this member
	queue    []*Record // members queued by this constructor, in statement order

	// Syntax is the declaration, [syntax.NoNode] for members implied by a record header.
	Syntax syntax.NodeID

	// Initializer is the candidate initializer expression. For constructors, the
	// chaining invocation or self construction.
	Initializer syntax.NodeID

	Provenance Provenance

	// Status tells whether the initializer can move to the declaration.
	Status check.MoveStatus

	// Chain is the recognized chaining form of a constructor.
	Chain ChainKind

	// PrimaryCandidate is set on members capturing a constructor parameter and on
	// the capturing constructor.
	PrimaryCandidate bool
}

// Movable reports whether the initializer can move to the declaration.
func (r *Record) Movable() bool { return r.Status.Movable() }

// block downgrades the status. Once blocked, a record never becomes movable again.
func (r *Record) block(status check.MoveStatus) bool {
	if status.Movable() || !r.Status.Movable() {
		return false
	}

	r.Status = status

	return true
}

func (r *Record) queued(stmt syntax.NodeID) bool { return slices.Contains(r.Statements, stmt) }

// Result holds the records of one type declaration. A nil Result means no change.
type Result struct {
	// Type is the analyzed type, nil when members are analyzed without a type.
	Type *model.Type

	records map[*model.Member]*Record

	// Primary is the constructor expected to become the primary constructor.
	Primary *Record

	order []*Record

	// Decl is the type declaration, or the node holding the members.
	Decl syntax.NodeID
}

// Lookup returns the record of a member, by canonical identity.
func (r *Result) Lookup(m *model.Member) (*Record, bool) {
	rec, ok := r.records[m.Canonical()]

	return rec, ok
}

// Len returns the number of records.
func (r *Result) Len() int { return len(r.order) }

// Records yields all records in declaration order.
func (r *Result) Records() iter.Seq[*Record] { return slices.Values(r.order) }

// Constructors yields the constructor records in declaration order.
func (r *Result) Constructors() iter.Seq[*Record] {
	return func(yield func(*Record) bool) {
		for _, rec := range r.order {
			if rec.Member.IsConstructor() && !yield(rec) {
				return
			}
		}
	}
}

func (r *Result) add(rec *Record) {
	r.records[rec.Member] = rec
	r.order = append(r.order, rec)
}
