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

package syntax

import (
	"strings"

	"fillmore-labs.com/ctorinit/model"
)

// NewAttribute converts a model attribute into a detached [Attribute] node.
// A non-empty target produces a targeted attribute such as `[field: X]`.
func (t *Tree) NewAttribute(a model.Attribute, target string) NodeID {
	id := t.New(Attribute, AttributeName(a.Type))
	t.nodes[id].Text = target

	for _, arg := range a.Arguments {
		lit := t.New(Literal, "")
		t.nodes[lit].Text = arg
		t.Append(id, Argument, lit)
	}

	return id
}

// AttributeName returns the name an attribute type is written with in surface
// syntax: the simple name without the "Attribute" suffix.
func AttributeName(fullName string) string {
	name := fullName
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}

	if short, ok := strings.CutSuffix(name, "Attribute"); ok && short != "" {
		return short
	}

	return name
}
