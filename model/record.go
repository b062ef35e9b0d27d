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

package model

import "slices"

// RecordDescriptor reports the positional members of a record type.
type RecordDescriptor interface {
	// PrimaryConstructor returns the constructor whose parameters form the record header.
	PrimaryConstructor() *Member

	// PrimaryConstructorMembers returns the members implied by the record header.
	PrimaryConstructorMembers() []*Member

	// IsDeclaredByPrimaryConstructor reports whether m is implied by the record header.
	IsDeclaredByPrimaryConstructor(m *Member) bool

	// IsInheritedRecord reports whether the record derives from another record.
	IsInheritedRecord() bool
}

// Record is a [RecordDescriptor] over explicit symbol lists.
type Record struct {
	// Primary is the primary constructor, nil when the record has no header.
	Primary *Member

	// Members are the header properties and their storage.
	Members []*Member

	// Inherited reports a record deriving from another record.
	Inherited bool
}

var _ RecordDescriptor = (*Record)(nil)

// PrimaryConstructor implements [RecordDescriptor].
func (r *Record) PrimaryConstructor() *Member { return r.Primary.Canonical() }

// PrimaryConstructorMembers implements [RecordDescriptor].
func (r *Record) PrimaryConstructorMembers() []*Member { return r.Members }

// IsDeclaredByPrimaryConstructor implements [RecordDescriptor].
func (r *Record) IsDeclaredByPrimaryConstructor(m *Member) bool {
	m = m.Canonical()

	return slices.ContainsFunc(r.Members, func(p *Member) bool { return p.Canonical() == m })
}

// IsInheritedRecord implements [RecordDescriptor].
func (r *Record) IsInheritedRecord() bool { return r.Inherited }

// DocumentationProvider looks up documentation attached to a member.
type DocumentationProvider interface {
	Documentation(m *Member) (string, bool)
}

// Documentation is a [DocumentationProvider] backed by a map.
type Documentation map[*Member]string

// Documentation implements [DocumentationProvider].
func (d Documentation) Documentation(m *Member) (string, bool) {
	doc, ok := d[m.Canonical()]

	return doc, ok && doc != ""
}
