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
	"iter"
	"slices"

	"fillmore-labs.com/ctorinit/model"
)

// NodeID is a stable handle of a node stored in a [Tree].
type NodeID int32

// NoNode is the handle of an absent node.
const NoNode NodeID = -1

// Valid reports whether id refers to a node.
func (id NodeID) Valid() bool { return id >= 0 }

// Annotations are the symbol facts the lowering pipeline attached to a node.
type Annotations struct {
	// Type is the declared type of a type declaration or the type of a type reference.
	Type *model.Type

	// Member is the declared member of a declaration, or the member referenced,
	// invoked or constructed by an expression.
	Member *model.Member

	// Variable is the parameter or local an identifier reads.
	Variable *model.Variable

	// Instruction is the lowered instruction an expression originates from,
	// nil for synthesized expressions.
	Instruction *model.Instruction
}

// Node is a syntax node. Children are addressed by [NodeID] and tagged with the
// [Role] they play in their parent.
type Node struct {
	Annotations

	// Name is the identifier, member name, type name or operator of the node.
	Name string

	// Text is the literal text, declared type, or attribute target of the node.
	Text string

	children []NodeID

	Parent NodeID

	Modifiers Modifiers

	Kind Kind

	// Role is the slot this node occupies in its parent.
	Role Role
}

// Tree is an arena of syntax nodes. Nodes are never freed: detaching a node
// makes it unreachable from the root but keeps its handle valid, so moving a
// subtree is reparenting a handle.
type Tree struct {
	nodes []*Node
	root  NodeID
}

// NewTree creates a tree consisting of an empty compilation unit.
func NewTree() *Tree {
	t := &Tree{}
	t.root = t.New(CompilationUnit, "")

	return t
}

// Root returns the compilation unit.
func (t *Tree) Root() NodeID { return t.root }

// Len returns the number of allocated nodes, reachable or not.
func (t *Tree) Len() int { return len(t.nodes) }

// New allocates a detached node.
func (t *Tree) New(kind Kind, name string) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, &Node{Kind: kind, Name: name, Parent: NoNode})

	return id
}

// Node returns the node for id. The pointer stays valid for the life of the tree.
func (t *Tree) Node(id NodeID) *Node { return t.nodes[id] }

// Kind returns the kind of id, [Invalid] for [NoNode].
func (t *Tree) Kind(id NodeID) Kind {
	if !id.Valid() {
		return Invalid
	}

	return t.nodes[id].Kind
}

// Parent returns the parent of id, [NoNode] for detached nodes and the root.
func (t *Tree) Parent(id NodeID) NodeID { return t.nodes[id].Parent }

// Children returns a snapshot of the children of id.
func (t *Tree) Children(id NodeID) []NodeID { return slices.Clone(t.nodes[id].children) }

// NumChildren returns the number of children of id.
func (t *Tree) NumChildren(id NodeID) int { return len(t.nodes[id].children) }

// ChildrenWithRole returns the children of id occupying role, in order.
func (t *Tree) ChildrenWithRole(id NodeID, role Role) []NodeID {
	var result []NodeID
	for _, c := range t.nodes[id].children {
		if t.nodes[c].Role == role {
			result = append(result, c)
		}
	}

	return result
}

// Child returns the first child of id occupying role, or [NoNode].
func (t *Tree) Child(id NodeID, role Role) NodeID {
	if !id.Valid() {
		return NoNode
	}

	for _, c := range t.nodes[id].children {
		if t.nodes[c].Role == role {
			return c
		}
	}

	return NoNode
}

// Index returns the position of id among its parent's children, -1 if detached.
func (t *Tree) Index(id NodeID) int {
	p := t.nodes[id].Parent
	if !p.Valid() {
		return -1
	}

	return slices.Index(t.nodes[p].children, id)
}

// Append makes child the last child of parent, detaching it from its previous parent.
func (t *Tree) Append(parent NodeID, role Role, child NodeID) {
	t.Detach(child)

	n := t.nodes[child]
	n.Parent, n.Role = parent, role

	p := t.nodes[parent]
	p.children = append(p.children, child)
}

// Insert makes child the index-th child of parent, detaching it from its previous
// parent first. The index refers to the children after detaching.
func (t *Tree) Insert(parent NodeID, index int, role Role, child NodeID) {
	t.Detach(child)

	n := t.nodes[child]
	n.Parent, n.Role = parent, role

	p := t.nodes[parent]
	p.children = slices.Insert(p.children, index, child)
}

// Detach removes id from its parent. Detaching a detached node is a no-op.
func (t *Tree) Detach(id NodeID) {
	n := t.nodes[id]
	if !n.Parent.Valid() {
		return
	}

	p := t.nodes[n.Parent]
	if i := slices.Index(p.children, id); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
	}

	n.Parent, n.Role = NoNode, NoRole
}

// Replace puts repl in the place of old, which becomes detached.
func (t *Tree) Replace(old, repl NodeID) {
	if old == repl {
		return
	}

	t.Detach(repl)

	o := t.nodes[old]
	parent, role := o.Parent, o.Role

	if !parent.Valid() {
		return
	}

	p := t.nodes[parent]
	i := slices.Index(p.children, old)
	p.children[i] = repl

	r := t.nodes[repl]
	r.Parent, r.Role = parent, role

	o.Parent, o.Role = NoNode, NoRole
}

// Contains reports whether id is ancestor or a descendant of ancestor.
func (t *Tree) Contains(ancestor, id NodeID) bool {
	for ; id.Valid(); id = t.nodes[id].Parent {
		if id == ancestor {
			return true
		}
	}

	return false
}

// Preorder yields id and all its descendants in depth-first pre-order.
// The tree must not be modified during iteration.
func (t *Tree) Preorder(id NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		t.preorder(id, yield)
	}
}

func (t *Tree) preorder(id NodeID, yield func(NodeID) bool) bool {
	if !yield(id) {
		return false
	}

	for _, c := range t.nodes[id].children {
		if !t.preorder(c, yield) {
			return false
		}
	}

	return true
}

// Clone returns a detached deep copy of the subtree rooted at id.
// Annotations are shared with the original.
func (t *Tree) Clone(id NodeID) NodeID {
	src := t.nodes[id]

	c := NodeID(len(t.nodes))
	n := *src
	n.Parent, n.Role, n.children = NoNode, NoRole, nil
	t.nodes = append(t.nodes, &n)

	for _, child := range src.children {
		cc := t.Clone(child)
		t.Append(c, t.nodes[child].Role, cc)
	}

	return c
}

// Equal reports whether the subtrees rooted at a and b are structurally equal.
// Lowered instruction annotations are not compared; member symbols are compared
// by canonical identity.
func (t *Tree) Equal(a, b NodeID) bool {
	if a == b {
		return true
	}

	if !a.Valid() || !b.Valid() {
		return false
	}

	x, y := t.nodes[a], t.nodes[b]
	if x.Kind != y.Kind || x.Name != y.Name || x.Text != y.Text || x.Modifiers != y.Modifiers ||
		x.Type != y.Type || x.Variable != y.Variable || x.Member.Canonical() != y.Member.Canonical() ||
		len(x.children) != len(y.children) {
		return false
	}

	for i, xc := range x.children {
		yc := y.children[i]
		if t.nodes[xc].Role != t.nodes[yc].Role || !t.Equal(xc, yc) {
			return false
		}
	}

	return true
}
