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
	"fillmore-labs.com/ctorinit/internal/analyze"
	"fillmore-labs.com/ctorinit/internal/config"
	"fillmore-labs.com/ctorinit/internal/visibility"
	"fillmore-labs.com/ctorinit/model"
	"fillmore-labs.com/ctorinit/syntax"
)

// constructors are the constructor declarations of one type after the member edits.
type constructors struct {
	// record is the record descriptor, nil for other types.
	record model.RecordDescriptor

	instance []syntax.NodeID

	static  syntax.NodeID
	primary syntax.NodeID
}

func classify(t *syntax.Tree, res *analyze.Result, behavior config.Behavior) constructors {
	c := constructors{static: syntax.NoNode, primary: syntax.NoNode}

	if behavior.Enabled(config.RecordTypes) && res.Type.IsRecord() {
		c.record = res.Type.Record
	}

	for _, id := range t.ChildrenWithRole(res.Decl, syntax.Member) {
		n := t.Node(id)
		if n.Kind != syntax.Constructor {
			continue
		}

		if (n.Member != nil && n.Member.Static) || (n.Member == nil && n.Modifiers.Has(syntax.ModStatic)) {
			if !c.static.Valid() {
				c.static = id
			}

			continue
		}

		c.instance = append(c.instance, id)
	}

	switch {
	case c.record != nil:
		c.primary = c.recordPrimary(t)

	case behavior.Enabled(config.PrimaryConstructors) && res.Primary != nil:
		c.primary = c.unique(t, res)
	}

	return c
}

func (c *constructors) recordPrimary(t *syntax.Tree) syntax.NodeID {
	p := c.record.PrimaryConstructor()
	if p == nil {
		return syntax.NoNode
	}

	for _, id := range c.instance {
		if t.Node(id).Member.Canonical() == p {
			return id
		}
	}

	return syntax.NoNode
}

// unique returns the instance constructor with an empty body, no `this` clause,
// capturing a parameter, while all other instance constructors chain to `this`.
func (c *constructors) unique(t *syntax.Tree, res *analyze.Result) syntax.NodeID {
	primary := syntax.NoNode

	for _, id := range c.instance {
		if chainsToThis(t, id) {
			continue
		}

		if primary.Valid() {
			return syntax.NoNode
		}

		primary = id
	}

	if !primary.Valid() || !emptyBody(t, primary) {
		return syntax.NoNode
	}

	if rec, ok := res.Lookup(t.Node(primary).Member); !ok || rec != res.Primary || !rec.PrimaryCandidate {
		return syntax.NoNode
	}

	return primary
}

func chainsToThis(t *syntax.Tree, ctor syntax.NodeID) bool {
	clause := t.Child(ctor, syntax.Initializer)

	return clause.Valid() && t.Node(clause).Name == analyze.ChainThis.String()
}

func emptyBody(t *syntax.Tree, ctor syntax.NodeID) bool {
	body := t.Child(ctor, syntax.Body)

	return !body.Valid() || t.NumChildren(body) == 0
}

func elide(t *syntax.Tree, ctor syntax.NodeID, res *analyze.Result, opts Options) bool {
	return visibility.CanElide(t, ctor, res.Type, opts.Docs) && visibility.Elide(t, ctor)
}
