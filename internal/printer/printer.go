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

// Package printer renders syntax trees as C# source code.
package printer

import (
	"io"
	"strings"

	"fillmore-labs.com/ctorinit/model"
	"fillmore-labs.com/ctorinit/syntax"
)

// Config controls the rendering.
type Config struct {
	// Docs supplies `///` documentation of members, nil to omit documentation.
	Docs model.DocumentationProvider

	// Indent is one indentation level, four spaces when empty.
	Indent string
}

// Fprint writes the rendering of the subtree at id to w.
func (c Config) Fprint(w io.Writer, t *syntax.Tree, id syntax.NodeID) error {
	_, err := io.WriteString(w, c.String(t, id))

	return err
}

// String returns the rendering of the subtree at id.
func (c Config) String(t *syntax.Tree, id syntax.NodeID) string {
	p := printer{Config: c, t: t}
	if p.Indent == "" {
		p.Indent = "    "
	}

	p.node(id)

	return p.b.String()
}

type printer struct {
	Config

	t     *syntax.Tree
	b     strings.Builder
	depth int
}

func (p *printer) line(parts ...string) {
	for range p.depth {
		p.b.WriteString(p.Indent)
	}

	for _, s := range parts {
		p.b.WriteString(s)
	}

	p.b.WriteByte('\n')
}

func (p *printer) open() {
	p.line("{")
	p.depth++
}

func (p *printer) close(suffix string) {
	p.depth--
	p.line("}", suffix)
}

func (p *printer) node(id syntax.NodeID) {
	switch p.t.Kind(id) {
	case syntax.CompilationUnit:
		p.members(id)

	case syntax.Namespace:
		p.namespace(id)

	case syntax.TypeDeclaration:
		p.typeDecl(id)

	case syntax.Field:
		p.field(id)

	case syntax.Property, syntax.Event:
		p.property(id)

	case syntax.Constructor, syntax.Method:
		p.function(id)

	case syntax.Block, syntax.ExpressionStatement, syntax.VariableDeclaration,
		syntax.ReturnStatement, syntax.IfStatement:
		p.stmt(id)

	default:
		p.line(p.expr(id, 0))
	}
}

// members prints the member declarations of id, separating all but
// consecutive fields by an empty line.
func (p *printer) members(id syntax.NodeID) {
	prev := syntax.Invalid

	for _, m := range p.t.ChildrenWithRole(id, syntax.Member) {
		kind := p.t.Kind(m)
		if prev != syntax.Invalid && (prev != syntax.Field || kind != syntax.Field) {
			p.b.WriteByte('\n')
		}

		p.node(m)
		prev = kind
	}
}

func (p *printer) namespace(id syntax.NodeID) {
	n := p.t.Node(id)

	if n.Text == ";" {
		p.line("namespace ", n.Name, ";")

		if p.t.NumChildren(id) > 0 {
			p.b.WriteByte('\n')
		}

		p.members(id)

		return
	}

	p.line("namespace ", n.Name)
	p.open()
	p.members(id)
	p.close("")
}

func (p *printer) docs(id syntax.NodeID) {
	m := p.t.Node(id).Member
	if p.Docs == nil || m == nil {
		return
	}

	doc, ok := p.Docs.Documentation(m)
	if !ok {
		return
	}

	for l := range strings.SplitSeq(doc, "\n") {
		if l == "" {
			p.line("///")

			continue
		}

		p.line("/// ", l)
	}
}

// attributes prints the attributes of id on separate lines.
func (p *printer) attributes(id syntax.NodeID) {
	for _, a := range p.t.ChildrenWithRole(id, syntax.AttributeOf) {
		p.line(p.attribute(a))
	}
}

func (p *printer) attribute(id syntax.NodeID) string {
	n := p.t.Node(id)

	var b strings.Builder

	b.WriteByte('[')

	if n.Text != "" {
		b.WriteString(n.Text)
		b.WriteString(": ")
	}

	b.WriteString(n.Name)

	if args := p.t.ChildrenWithRole(id, syntax.Argument); len(args) > 0 {
		b.WriteString(p.arguments(args))
	}

	b.WriteByte(']')

	return b.String()
}

func modifiers(m syntax.Modifiers) string {
	if m == syntax.ModNone {
		return ""
	}

	return m.String() + " "
}

func (p *printer) typeDecl(id syntax.NodeID) {
	n := p.t.Node(id)

	p.docs(id)
	p.attributes(id)

	var head strings.Builder

	head.WriteString(modifiers(n.Modifiers))
	head.WriteString(n.Text)
	head.WriteByte(' ')
	head.WriteString(n.Name)

	if params := p.t.ChildrenWithRole(id, syntax.ParameterOf); len(params) > 0 {
		head.WriteString(p.parameters(params))
	}

	for i, bt := range p.t.ChildrenWithRole(id, syntax.BaseTypeOf) {
		if i == 0 {
			head.WriteString(" : ")
		} else {
			head.WriteString(", ")
		}

		head.WriteString(p.t.Node(bt).Name)

		if args := p.t.ChildrenWithRole(bt, syntax.Argument); len(args) > 0 {
			head.WriteString(p.arguments(args))
		}
	}

	if len(p.t.ChildrenWithRole(id, syntax.Member)) == 0 && strings.HasPrefix(n.Text, "record") {
		p.line(head.String(), ";")

		return
	}

	p.line(head.String())
	p.open()
	p.members(id)
	p.close("")
}

func (p *printer) field(id syntax.NodeID) {
	n := p.t.Node(id)

	p.docs(id)
	p.attributes(id)

	decl := modifiers(n.Modifiers) + n.Text + " " + n.Name
	if init := p.t.Child(id, syntax.Initializer); init.Valid() {
		decl += " = " + p.expr(init, 0)
	}

	p.line(decl, ";")
}

func (p *printer) property(id syntax.NodeID) {
	n := p.t.Node(id)

	p.docs(id)
	p.attributes(id)

	decl := modifiers(n.Modifiers)
	if n.Kind == syntax.Event {
		decl += "event "
	}

	decl += n.Text + " " + n.Name

	init := ""
	if i := p.t.Child(id, syntax.Initializer); i.Valid() {
		init = " = " + p.expr(i, 0) + ";"
	}

	accessors := p.t.ChildrenWithRole(id, syntax.AccessorOf)

	switch {
	case len(accessors) == 0:
		if init == "" {
			init = ";"
		}

		p.line(decl, init)

	case !p.anyBody(accessors):
		parts := make([]string, 0, len(accessors))
		for _, a := range accessors {
			parts = append(parts, p.accessorHead(a)+";")
		}

		p.line(decl, " { ", strings.Join(parts, " "), " }", init)

	default:
		p.line(decl)
		p.open()

		for _, a := range accessors {
			p.attributes(a)

			body := p.t.Child(a, syntax.Body)
			if !body.Valid() {
				p.line(p.accessorHead(a), ";")

				continue
			}

			p.line(p.accessorHead(a))
			p.stmt(body)
		}

		p.close(init)
	}
}

func (p *printer) anyBody(accessors []syntax.NodeID) bool {
	for _, a := range accessors {
		if p.t.Child(a, syntax.Body).Valid() || len(p.t.ChildrenWithRole(a, syntax.AttributeOf)) > 0 {
			return true
		}
	}

	return false
}

func (p *printer) accessorHead(id syntax.NodeID) string {
	n := p.t.Node(id)

	return modifiers(n.Modifiers) + n.Name
}

func (p *printer) function(id syntax.NodeID) {
	n := p.t.Node(id)

	p.docs(id)
	p.attributes(id)

	head := modifiers(n.Modifiers)
	if n.Kind == syntax.Method {
		head += n.Text + " "
	}

	head += n.Name + p.parameters(p.t.ChildrenWithRole(id, syntax.ParameterOf))

	if clause := p.t.Child(id, syntax.Initializer); clause.Valid() {
		head += " : " + p.t.Node(clause).Name + p.arguments(p.t.ChildrenWithRole(clause, syntax.Argument))
	}

	body := p.t.Child(id, syntax.Body)
	if !body.Valid() {
		p.line(head, ";")

		return
	}

	p.line(head)
	p.stmt(body)
}

func (p *printer) parameters(params []syntax.NodeID) string {
	parts := make([]string, 0, len(params))

	for _, id := range params {
		var b strings.Builder

		for _, a := range p.t.ChildrenWithRole(id, syntax.AttributeOf) {
			b.WriteString(p.attribute(a))
			b.WriteByte(' ')
		}

		n := p.t.Node(id)
		b.WriteString(n.Text)
		b.WriteByte(' ')
		b.WriteString(n.Name)

		parts = append(parts, b.String())
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

func (p *printer) arguments(args []syntax.NodeID) string {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		parts = append(parts, p.expr(a, 0))
	}

	return "(" + strings.Join(parts, ", ") + ")"
}
