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

// Package lowered reads a textual rendition of lowered C# into a syntax tree
// annotated with symbols and lowered instructions.
//
// The dialect is C# with the constructs a compiler introduces while lowering:
// explicit `base..ctor(...)` and `this..ctor(...)` calls, `this = new S(...)`
// in value types, synthesized names like `<x>P` and `<Name>k__BackingField`,
// and a `[beforefieldinit]` pseudo attribute marking eager static
// initialization. Record headers produce a [model.Record] descriptor.
//
// The reader is test and command line tooling. It resolves names by simple
// lookup and overloads by argument count only.
package lowered

import (
	"errors"
	"fmt"
	"strings"
	"text/scanner"

	"fillmore-labs.com/ctorinit/model"
	"fillmore-labs.com/ctorinit/syntax"
)

// ErrSyntax is returned for input that is not valid lowered code.
var ErrSyntax = errors.New("syntax error")

// File is a parsed source file.
type File struct {
	// Tree is the annotated syntax tree.
	Tree *syntax.Tree

	// Documentation holds the `///` comments of members.
	Documentation model.Documentation

	// Name is the file name used in positions.
	Name string
}

// Parse reads lowered source code.
func Parse(filename string, src []byte) (*File, error) {
	tokens, errs := tokenize(filename, string(src))
	if len(errs) > 0 {
		return nil, fmt.Errorf("%s: %w", errs[0], ErrSyntax)
	}

	p := &parser{
		tree:   syntax.NewTree(),
		tokens: tokens,
		docs:   make(model.Documentation),
		types:  make(map[string]*typeInfo),

		memberTypes: make(map[*model.Member]string),
		external:    make(map[string]*model.Type),
		infos:       make(map[*model.Type]*typeInfo),
		implicit:    make(map[ctorKey]*model.Member),
	}

	if err := p.parseFile(); err != nil {
		return nil, err
	}

	p.resolve()

	return &File{Tree: p.tree, Documentation: p.docs, Name: filename}, nil
}

// bailout is panicked to abort parsing at the first error.
type bailout struct{}

type parser struct {
	tree *syntax.Tree
	docs model.Documentation

	// types indexes declared types by simple and full name.
	types map[string]*typeInfo

	// order lists declared types in source order.
	order []*typeInfo

	// infos maps declared types to their member tables.
	infos map[*model.Type]*typeInfo

	// external holds referenced types not declared in the file.
	external map[string]*model.Type

	// implicit holds constructors synthesized for calls without a declaration.
	implicit map[ctorKey]*model.Member

	// memberTypes holds the declared type text of fields, properties, events and methods.
	memberTypes map[*model.Member]string

	err error

	namespace string

	tokens []token
	pos    int
}

// typeInfo is a declared type with its member table.
type typeInfo struct {
	typ   *model.Type
	outer *typeInfo

	byName map[string][]*model.Member

	// header are the parameters of a record or primary constructor header.
	header []*model.Parameter

	// headerVars are the variables of a primary constructor header.
	headerVars map[string]*model.Variable

	ctors     []*model.Member
	baseNames []string

	decl syntax.NodeID
}

func (ti *typeInfo) add(m *model.Member) {
	ti.byName[m.Name] = append(ti.byName[m.Name], m)
	if m.IsConstructor() && !m.Static {
		ti.ctors = append(ti.ctors, m)
	}
}

func (p *parser) parseFile() (err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}

			err = p.err
		}
	}()

	for p.tok().tok != scanner.EOF {
		container := p.tree.Root()
		if ns := p.currentNamespace(); ns.Valid() {
			container = ns
		}

		p.parseDecl(container, nil)
	}

	return nil
}

// currentNamespace returns the node of a file scoped namespace.
func (p *parser) currentNamespace() syntax.NodeID {
	if p.namespace == "" {
		return syntax.NoNode
	}

	for _, c := range p.tree.ChildrenWithRole(p.tree.Root(), syntax.Member) {
		n := p.tree.Node(c)
		if n.Kind == syntax.Namespace && n.Name == p.namespace && n.Text == ";" {
			return c
		}
	}

	return syntax.NoNode
}

// Token helpers.

func (p *parser) tok() *token { return &p.tokens[p.pos] }

func (p *parser) peek(n int) *token {
	i := min(p.pos+n, len(p.tokens)-1)

	return &p.tokens[i]
}

func (p *parser) next() token {
	t := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}

	return t
}

func (p *parser) is(text string) bool { return p.tok().text == text && p.tok().tok != scanner.String }

func (p *parser) accept(text string) bool {
	if !p.is(text) {
		return false
	}

	p.next()

	return true
}

func (p *parser) expect(text string) {
	if !p.accept(text) {
		p.errorf("expected %q, found %q", text, p.tok().text)
	}
}

func (p *parser) ident() string {
	t := p.tok()
	if t.tok != scanner.Ident {
		p.errorf("expected identifier, found %q", t.text)
	}

	p.next()

	return t.text
}

func (p *parser) errorf(format string, args ...any) {
	p.err = fmt.Errorf("%s: %w: %s", p.tok().pos, ErrSyntax, fmt.Sprintf(format, args...))
	panic(bailout{})
}

// Declarations.

var modifierWords = map[string]syntax.Modifiers{
	"public":    syntax.ModPublic,
	"private":   syntax.ModPrivate,
	"protected": syntax.ModProtected,
	"internal":  syntax.ModInternal,
	"static":    syntax.ModStatic,
	"abstract":  syntax.ModAbstract,
	"sealed":    syntax.ModSealed,
	"readonly":  syntax.ModReadonly,
	"const":     syntax.ModConst,
	"unsafe":    syntax.ModUnsafe,
	"virtual":   syntax.ModVirtual,
	"override":  syntax.ModOverride,
	"partial":   syntax.ModPartial,
}

// attribute is a parsed attribute with its optional target.
type attribute struct {
	target string
	attr   model.Attribute
}

func (p *parser) parseDecl(container syntax.NodeID, outer *typeInfo) {
	doc := p.tok().doc
	attrs, eager := p.parseAttributes()

	if len(attrs) == 0 && !eager && p.is("namespace") {
		p.parseNamespace(container)

		return
	}

	mods := p.parseModifiers()

	switch {
	case p.is("class"), p.is("struct"), p.is("interface"), p.is("record"):
		p.parseTypeDecl(container, outer, attrs, eager, mods)

	case p.is("event"):
		p.parseEvent(container, outer, attrs, mods, doc)

	case outer != nil && p.tok().tok == scanner.Ident && p.tok().text == outer.typ.Name && p.peek(1).text == "(":
		p.parseConstructor(container, outer, attrs, mods, doc)

	default:
		p.parseMember(container, outer, attrs, mods, doc)
	}
}

func (p *parser) parseNamespace(container syntax.NodeID) {
	p.expect("namespace")
	name := p.qualifiedName()

	ns := p.tree.New(syntax.Namespace, name)
	p.tree.Append(container, syntax.Member, ns)

	if p.accept(";") {
		p.tree.Node(ns).Text = ";"
		p.namespace = name

		return
	}

	saved := p.namespace
	p.namespace = name

	p.expect("{")

	for !p.is("}") {
		if p.tok().tok == scanner.EOF {
			p.errorf("unterminated namespace %s", name)
		}

		p.parseDecl(ns, nil)
	}

	p.expect("}")

	p.namespace = saved
}

func (p *parser) qualifiedName() string {
	var b strings.Builder

	b.WriteString(p.ident())

	for p.is(".") && p.peek(1).tok == scanner.Ident {
		p.next()
		b.WriteByte('.')
		b.WriteString(p.ident())
	}

	return b.String()
}

func (p *parser) parseAttributes() (attrs []attribute, eager bool) {
	for p.accept("[") {
		for {
			if p.accept("beforefieldinit") {
				eager = true
			} else {
				attrs = append(attrs, p.parseAttribute())
			}

			if !p.accept(",") {
				break
			}
		}

		p.expect("]")
	}

	return attrs, eager
}

func (p *parser) parseAttribute() attribute {
	var a attribute

	if p.tok().tok == scanner.Ident && p.peek(1).text == ":" {
		a.target = p.ident()
		p.next()
	}

	a.attr.Type = attributeType(p.qualifiedName())

	if p.accept("(") {
		for !p.accept(")") {
			a.attr.Arguments = append(a.attr.Arguments, p.rawArgument())
			p.accept(",")
		}
	}

	return a
}

// rawArgument collects the tokens of one attribute argument.
func (p *parser) rawArgument() string {
	var b strings.Builder

	depth := 0

	for {
		t := p.tok()
		switch {
		case t.tok == scanner.EOF:
			p.errorf("unterminated attribute")

		case depth == 0 && (t.text == "," || t.text == ")"):
			return b.String()

		case t.text == "(":
			depth++

		case t.text == ")":
			depth--
		}

		if b.Len() > 0 && !t.adjacent {
			b.WriteByte(' ')
		}

		b.WriteString(t.text)
		p.next()
	}
}

// wellKnownAttributes maps short attribute names to their full type names.
var wellKnownAttributes = map[string]string{
	"CompilerGenerated": model.CompilerGeneratedAttribute,
	"DebuggerBrowsable": model.DebuggerBrowsableAttribute,
	"Nullable":          model.NullableAttribute,
}

func attributeType(name string) string {
	short := strings.TrimSuffix(name, "Attribute")
	if full, ok := wellKnownAttributes[short]; ok {
		return full
	}

	return short + "Attribute"
}

func (p *parser) parseModifiers() syntax.Modifiers {
	var mods syntax.Modifiers

	for {
		m, ok := modifierWords[p.tok().text]
		if !ok || p.tok().tok != scanner.Ident {
			return mods
		}

		mods |= m

		p.next()
	}
}

func (p *parser) parseTypeDecl(container syntax.NodeID, outer *typeInfo, attrs []attribute, eager bool, mods syntax.Modifiers) {
	keyword := p.next().text
	kind := model.Class

	switch keyword {
	case "struct":
		kind = model.Struct

	case "interface":
		kind = model.Interface

	case "record":
		switch {
		case p.accept("struct"):
			keyword, kind = "record struct", model.Struct

		case p.accept("class"):
		}
	}

	name := p.ident()

	typ := &model.Type{
		Name:            name,
		Kind:            kind,
		Abstract:        mods.Has(syntax.ModAbstract),
		BeforeFieldInit: eager,
	}

	if outer != nil {
		typ.Outer = outer.typ
	} else {
		typ.Namespace = p.namespace
	}

	decl := p.tree.New(syntax.TypeDeclaration, name)
	n := p.tree.Node(decl)
	n.Text, n.Modifiers, n.Type = keyword, mods, typ

	ti := &typeInfo{typ: typ, outer: outer, byName: make(map[string][]*model.Member), decl: decl}
	p.order = append(p.order, ti)
	p.infos[typ] = ti
	p.types[name] = ti
	p.types[typ.FullName()] = ti

	p.appendAttributes(decl, attrs)
	p.tree.Append(container, syntax.Member, decl)

	if p.is("(") {
		ti.header = p.parseParameters(decl, nil)
	}

	if p.accept(":") {
		for {
			text := p.typeText()
			ti.baseNames = append(ti.baseNames, text)

			bt := p.tree.New(syntax.BaseType, text)
			p.tree.Append(decl, syntax.BaseTypeOf, bt)

			if p.is("(") {
				for _, arg := range p.parseArguments() {
					p.tree.Append(bt, syntax.Argument, arg)
				}
			}

			if !p.accept(",") {
				break
			}
		}
	}

	if !p.accept(";") {
		p.expect("{")

		for !p.accept("}") {
			if p.tok().tok == scanner.EOF {
				p.errorf("unterminated type %s", name)
			}

			p.parseDecl(decl, ti)
		}
	}

	if keyword == "record" || keyword == "record struct" {
		p.describeRecord(ti)
	}
}

// describeRecord attaches the descriptor of a record type, synthesizing header
// properties and their storage unless declared explicitly.
func (p *parser) describeRecord(ti *typeInfo) {
	rec := &model.Record{}

	for _, param := range ti.header {
		prop := p.lookupOwn(ti, param.Name, model.Property)
		if prop == nil {
			prop = &model.Member{
				Name:          param.Name,
				DeclaringType: ti.typ,
				Kind:          model.Property,
				Accessibility: model.Public,
			}
			ti.add(prop)
		}

		fieldName := "<" + param.Name + ">k__BackingField"

		field := p.lookupOwn(ti, fieldName, model.Field)
		if field == nil {
			field = &model.Member{
				Name:          fieldName,
				DeclaringType: ti.typ,
				Attributes:    []model.Attribute{{Type: model.CompilerGeneratedAttribute}},
				Kind:          model.Field,
				Accessibility: model.Private,
			}
			ti.add(field)
		}

		rec.Members = append(rec.Members, prop, field)
	}

	for _, ctor := range ti.ctors {
		if sameParameters(ctor.Parameters, ti.header) {
			rec.Primary = ctor

			break
		}
	}

	ti.typ.Record = rec
}

func sameParameters(a, b []*model.Parameter) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i].Type != b[i].Type {
			return false
		}
	}

	return true
}

func (p *parser) lookupOwn(ti *typeInfo, name string, kind model.MemberKind) *model.Member {
	for _, m := range ti.byName[name] {
		if m.Kind == kind {
			return m
		}
	}

	return nil
}

func (p *parser) parseConstructor(container syntax.NodeID, outer *typeInfo, attrs []attribute, mods syntax.Modifiers, doc []string) {
	name := p.ident()
	static := mods.Has(syntax.ModStatic)

	m := &model.Member{
		Name:          ".ctor",
		DeclaringType: outer.typ,
		Attributes:    modelAttributes(attrs),
		Kind:          model.Constructor,
		Accessibility: accessibility(mods, outer),
		Static:        static,
	}

	if static {
		m.Name, m.Accessibility = ".cctor", model.None
	}

	ctor := p.tree.New(syntax.Constructor, name)
	n := p.tree.Node(ctor)
	n.Modifiers, n.Member = mods, m

	p.appendAttributes(ctor, attrs)
	m.Parameters = p.parseParameters(ctor, m)

	if p.accept(":") {
		kind := p.next().text
		if kind != "base" && kind != "this" {
			p.errorf("expected base or this, found %q", kind)
		}

		clause := p.tree.New(syntax.ConstructorInitializer, kind)
		for _, arg := range p.parseArguments() {
			p.tree.Append(clause, syntax.Argument, arg)
		}

		p.tree.Append(ctor, syntax.Initializer, clause)
	}

	p.tree.Append(ctor, syntax.Body, p.parseBlock())
	p.tree.Append(container, syntax.Member, ctor)

	outer.add(m)
	p.addDoc(m, doc)
}

func (p *parser) parseEvent(container syntax.NodeID, outer *typeInfo, attrs []attribute, mods syntax.Modifiers, doc []string) {
	p.expect("event")
	typeText := p.typeText()
	name := p.memberName()

	m := p.newMember(outer, name, model.Event, mods, attrs)

	ev := p.tree.New(syntax.Event, name)
	n := p.tree.Node(ev)
	n.Text, n.Modifiers, n.Member = typeText, mods, m
	p.memberTypes[m] = typeText

	p.appendAttributes(ev, attrs)
	p.tree.Append(container, syntax.Member, ev)

	switch {
	case p.is("{"):
		p.parseAccessors(ev)

	case p.accept("="):
		p.tree.Append(ev, syntax.Initializer, p.parseExpr())
		p.expect(";")

	default:
		p.expect(";")
	}

	p.addDoc(m, doc)
}

// parseMember parses a field, property or method.
func (p *parser) parseMember(container syntax.NodeID, outer *typeInfo, attrs []attribute, mods syntax.Modifiers, doc []string) {
	typeText := p.typeText()
	name := p.memberName()

	var (
		id syntax.NodeID
		m  *model.Member
	)

	switch {
	case p.is("("):
		m = p.newMember(outer, name, model.Method, mods, attrs)
		id = p.tree.New(syntax.Method, name)
		m.Parameters = p.parseParameters(id, m)

		switch {
		case p.accept(";"):

		case p.accept("=>"):
			p.tree.Append(id, syntax.Body, p.expressionBody())

		default:
			p.tree.Append(id, syntax.Body, p.parseBlock())
		}

	case p.is("{"):
		m = p.newMember(outer, name, model.Property, mods, attrs)
		id = p.tree.New(syntax.Property, name)
		p.parseAccessors(id)

		if p.accept("=") {
			p.tree.Append(id, syntax.Initializer, p.parseExpr())
			p.expect(";")
		}

	case p.accept("=>"):
		m = p.newMember(outer, name, model.Property, mods, attrs)
		id = p.tree.New(syntax.Property, name)

		get := p.tree.New(syntax.Accessor, "get")
		p.tree.Append(get, syntax.Body, p.expressionBody())
		p.tree.Append(id, syntax.AccessorOf, get)

	default:
		m = p.newMember(outer, name, model.Field, mods, attrs)
		id = p.tree.New(syntax.Field, name)

		if p.accept("=") {
			p.tree.Append(id, syntax.Initializer, p.parseExpr())
		}

		p.expect(";")
	}

	n := p.tree.Node(id)
	n.Text, n.Modifiers, n.Member = typeText, mods, m
	p.memberTypes[m] = typeText

	p.appendAttributes(id, attrs)
	p.tree.Append(container, syntax.Member, id)
	p.addDoc(m, doc)
}

// expressionBody parses `=> expr;` into a block returning expr.
func (p *parser) expressionBody() syntax.NodeID {
	block := p.tree.New(syntax.Block, "")
	ret := p.tree.New(syntax.ReturnStatement, "")
	p.tree.Append(ret, syntax.Value, p.parseExpr())
	p.tree.Append(block, syntax.Statement, ret)
	p.expect(";")

	return block
}

func (p *parser) parseAccessors(owner syntax.NodeID) {
	p.expect("{")

	for !p.accept("}") {
		attrs, _ := p.parseAttributes()
		mods := p.parseModifiers()

		name := p.ident()
		switch name {
		case "get", "set", "init", "add", "remove":
		default:
			p.errorf("unexpected accessor %q", name)
		}

		acc := p.tree.New(syntax.Accessor, name)
		p.tree.Node(acc).Modifiers = mods
		p.appendAttributes(acc, attrs)

		switch {
		case p.accept(";"):

		case p.accept("=>"):
			p.tree.Append(acc, syntax.Body, p.expressionBody())

		default:
			p.tree.Append(acc, syntax.Body, p.parseBlock())
		}

		p.tree.Append(owner, syntax.AccessorOf, acc)
	}
}

func (p *parser) newMember(outer *typeInfo, name string, kind model.MemberKind, mods syntax.Modifiers, attrs []attribute) *model.Member {
	m := &model.Member{
		Name:          name,
		Attributes:    modelAttributes(attrs),
		Kind:          kind,
		Accessibility: accessibility(mods, outer),
		Static:        mods.Has(syntax.ModStatic) || mods.Has(syntax.ModConst),
	}

	if strings.HasPrefix(name, "<") && !m.IsCompilerGenerated() {
		m.Attributes = append(m.Attributes, model.Attribute{Type: model.CompilerGeneratedAttribute})
	}

	if outer != nil {
		m.DeclaringType = outer.typ
		outer.add(m)
	}

	return m
}

// parseParameters parses a parameter list and appends the parameter nodes to owner.
// fn is the declaring constructor or method, nil for a type header.
func (p *parser) parseParameters(owner syntax.NodeID, fn *model.Member) []*model.Parameter {
	var params []*model.Parameter

	p.expect("(")

	for !p.accept(")") {
		attrs, _ := p.parseAttributes()
		typeText := p.typeText()
		name := p.ident()

		param := &model.Parameter{Owner: fn, Name: name, Type: typeText, Index: len(params)}
		params = append(params, param)

		id := p.tree.New(syntax.Parameter, name)
		p.tree.Node(id).Text = typeText
		p.appendAttributes(id, attrs)
		p.tree.Append(owner, syntax.ParameterOf, id)

		if !p.is(")") {
			p.expect(",")
		}
	}

	return params
}

// memberName parses a plain or synthesized member name.
func (p *parser) memberName() string {
	switch {
	case p.is("<"):
		return p.synthesizedName()

	case p.is(".") && p.peek(1).tok == scanner.Ident && p.peek(1).adjacent:
		p.next()

		return "." + p.ident()

	default:
		return p.ident()
	}
}

// synthesizedName parses a compiler generated name like `<x>P`.
func (p *parser) synthesizedName() string {
	p.expect("<")
	inner := p.ident()

	if !p.is(">") {
		p.errorf("expected > in synthesized name, found %q", p.tok().text)
	}

	p.next()

	name := "<" + inner + ">"
	if t := p.tok(); t.tok == scanner.Ident && t.adjacent {
		name += p.ident()
	}

	return name
}

// typeText parses a type and returns its source text.
func (p *parser) typeText() string {
	end, ok := p.scanType(p.pos)
	if !ok {
		p.errorf("expected type, found %q", p.tok().text)
	}

	var b strings.Builder
	for ; p.pos < end; p.next() {
		t := p.tok()
		b.WriteString(t.text)

		if t.text == "," {
			b.WriteByte(' ')
		}
	}

	return b.String()
}

// scanType returns the end of the type starting at token i.
func (p *parser) scanType(i int) (int, bool) {
	if p.tokens[i].tok != scanner.Ident {
		return i, false
	}

	i++

	for p.tokens[i].text == "." && p.tokens[i+1].tok == scanner.Ident {
		i += 2
	}

	if p.tokens[i].text == "<" && p.tokens[i].adjacent {
		i++

		for {
			end, ok := p.scanType(i)
			if !ok {
				return i, false
			}

			i = end

			if p.tokens[i].text != "," {
				break
			}

			i++
		}

		if p.tokens[i].text != ">" {
			return i, false
		}

		i++
	}

	for {
		switch {
		case p.tokens[i].text == "[" && p.tokens[i+1].text == "]":
			i += 2

		case p.tokens[i].text == "*", p.tokens[i].text == "?" && p.tokens[i].adjacent:
			i++

		default:
			return i, true
		}
	}
}

func (p *parser) appendAttributes(owner syntax.NodeID, attrs []attribute) {
	for _, a := range attrs {
		p.tree.Append(owner, syntax.AttributeOf, p.tree.NewAttribute(a.attr, a.target))
	}
}

func (p *parser) addDoc(m *model.Member, doc []string) {
	if m == nil || len(doc) == 0 {
		return
	}

	p.docs[m] = strings.Join(doc, "\n")
}

func modelAttributes(attrs []attribute) []model.Attribute {
	result := make([]model.Attribute, 0, len(attrs))
	for _, a := range attrs {
		result = append(result, a.attr)
	}

	return result
}

// accessibility returns the declared accessibility, or the default for the context.
func accessibility(mods syntax.Modifiers, outer *typeInfo) model.Accessibility {
	if a := mods.Accessibility(); a != model.None {
		return a
	}

	if outer != nil && outer.typ.Kind == model.Interface {
		return model.Public
	}

	return model.Private
}
