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

package lowered

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"fillmore-labs.com/ctorinit/model"
	"fillmore-labs.com/ctorinit/syntax"
)

// ctorKey identifies a synthesized constructor by type and arity.
type ctorKey struct {
	typ   *model.Type
	arity int
}

// resolve annotates the parsed tree with symbols and instructions.
func (p *parser) resolve() {
	for _, ti := range p.order {
		p.resolveBase(ti)
	}

	for _, ti := range p.order {
		if rec, ok := ti.typ.Record.(*model.Record); ok {
			rec.Inherited = ti.typ.Base.IsRecord()
		}

		p.declareHeader(ti)
	}

	for _, ti := range p.order {
		for _, bt := range p.tree.ChildrenWithRole(ti.decl, syntax.BaseTypeOf) {
			for _, arg := range p.tree.ChildrenWithRole(bt, syntax.Argument) {
				p.resolveExpr(p.newScope(ti, nil, true), arg)
			}
		}

		for _, c := range p.tree.ChildrenWithRole(ti.decl, syntax.Member) {
			p.resolveMember(ti, c)
		}
	}
}

func (p *parser) resolveBase(ti *typeInfo) {
	typ := ti.typ

	for i, bt := range p.tree.ChildrenWithRole(ti.decl, syntax.BaseTypeOf) {
		name := ti.baseNames[i]

		base := p.lookupType(name)
		if base == nil {
			base = p.externalType(name)
			if looksLikeInterface(name) {
				base.Kind = model.Interface
			}
		}

		p.tree.Node(bt).Type = base

		if typ.Base == nil && typ.Kind == model.Class && base.Kind == model.Class {
			typ.Base = base
		}
	}

	if typ.Base == nil && typ.Kind == model.Class {
		typ.Base = p.externalType("object")
	}
}

// declareHeader creates the variables of header parameters. Record header
// parameters belong to the primary constructor.
func (p *parser) declareHeader(ti *typeInfo) {
	params := p.tree.ChildrenWithRole(ti.decl, syntax.ParameterOf)
	if len(params) == 0 {
		return
	}

	var fn *model.Member
	if rec, ok := ti.typ.Record.(*model.Record); ok {
		fn = rec.Primary
	}

	ti.headerVars = make(map[string]*model.Variable, len(params))

	for i, id := range params {
		n := p.tree.Node(id)
		v := &model.Variable{Function: fn, Name: n.Name, Kind: model.ParameterVariable, Index: i}
		n.Variable = v
		ti.headerVars[n.Name] = v
	}
}

func looksLikeInterface(name string) bool {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}

	r := []rune(name)

	return len(r) > 1 && r[0] == 'I' && unicode.IsUpper(r[1])
}

// lookupType finds a declared type by simple or full name, ignoring type arguments.
func (p *parser) lookupType(name string) *model.Type {
	if i := strings.IndexByte(name, '<'); i >= 0 {
		name = name[:i]
	}

	if ti, ok := p.types[name]; ok {
		return ti.typ
	}

	return nil
}

// externalType returns a placeholder for a type not declared in the file.
func (p *parser) externalType(name string) *model.Type {
	if i := strings.IndexByte(name, '<'); i >= 0 {
		name = name[:i]
	}

	if typ, ok := p.external[name]; ok {
		return typ
	}

	typ := &model.Type{Name: name}
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		typ.Namespace, typ.Name = name[:i], name[i+1:]
	}

	p.external[name] = typ

	return typ
}

// constructor finds the instance constructor of typ taking arity arguments.
// Constructors of external types are synthesized.
func (p *parser) constructor(typ *model.Type, arity int) *model.Member {
	if typ == nil {
		return nil
	}

	if ti, ok := p.infos[typ]; ok {
		for _, m := range ti.ctors {
			if len(m.Parameters) == arity {
				return m
			}
		}

		if len(ti.ctors) > 0 {
			return nil
		}
	}

	key := ctorKey{typ: typ, arity: arity}
	if m, ok := p.implicit[key]; ok {
		return m
	}

	m := &model.Member{
		Name:          ".ctor",
		DeclaringType: typ,
		Kind:          model.Constructor,
		Accessibility: typ.DefaultConstructorAccessibility(),
	}

	for i := range arity {
		m.Parameters = append(m.Parameters, &model.Parameter{Owner: m, Name: "arg" + strconv.Itoa(i), Index: i})
	}

	p.implicit[key] = m

	return m
}

// lookupMember finds a non-constructor member in typ or its base types.
func (p *parser) lookupMember(typ *model.Type, name string) *model.Member {
	for ti := p.infos[typ]; ti != nil; ti = p.infos[ti.typ.Base] {
		for _, m := range ti.byName[name] {
			if !m.IsConstructor() {
				return m
			}
		}
	}

	return nil
}

// scope is the name resolution context of one function body or initializer.
type scope struct {
	typ  *typeInfo
	fn   *model.Member
	this *model.Variable

	vars     map[string]*model.Variable
	varTypes map[*model.Variable]string

	slots int
}

func (p *parser) newScope(ti *typeInfo, fn *model.Member, static bool) *scope {
	sc := &scope{
		typ:      ti,
		fn:       fn,
		vars:     make(map[string]*model.Variable),
		varTypes: make(map[*model.Variable]string),
	}

	if !static {
		sc.this = &model.Variable{Function: fn, Name: "this", Kind: model.ThisVariable}
	}

	return sc
}

func (sc *scope) declare(v *model.Variable, typeText string) {
	sc.vars[v.Name] = v
	sc.varTypes[v] = typeText
}

func (sc *scope) lookup(name string) *model.Variable {
	if v, ok := sc.vars[name]; ok {
		return v
	}

	for ti := sc.typ; ti != nil; ti = ti.outer {
		if v, ok := ti.headerVars[name]; ok {
			return v
		}
	}

	return nil
}

func (p *parser) resolveMember(ti *typeInfo, id syntax.NodeID) {
	n := p.tree.Node(id)
	m := n.Member

	switch n.Kind {
	case syntax.Field, syntax.Property, syntax.Event:
		static := m != nil && m.Static

		if init := p.tree.Child(id, syntax.Initializer); init.Valid() {
			p.resolveExpr(p.newScope(ti, nil, static), init)
		}

		for _, acc := range p.tree.ChildrenWithRole(id, syntax.AccessorOf) {
			if body := p.tree.Child(acc, syntax.Body); body.Valid() {
				p.resolveStmt(p.newScope(ti, m, static), body)
			}
		}

	case syntax.Constructor, syntax.Method:
		sc := p.newScope(ti, m, m.Static)

		for i, param := range p.tree.ChildrenWithRole(id, syntax.ParameterOf) {
			pn := p.tree.Node(param)
			v := &model.Variable{Function: m, Name: pn.Name, Kind: model.ParameterVariable, Index: i}
			pn.Variable = v
			sc.declare(v, pn.Text)
		}

		if clause := p.tree.Child(id, syntax.Initializer); clause.Valid() {
			p.resolveClause(sc, clause)
		}

		if body := p.tree.Child(id, syntax.Body); body.Valid() {
			p.resolveStmt(sc, body)
		}

	default:
	}
}

// resolveClause resolves a `: base(...)` or `: this(...)` clause.
func (p *parser) resolveClause(sc *scope, clause syntax.NodeID) {
	args := p.tree.ChildrenWithRole(clause, syntax.Argument)
	for _, arg := range args {
		p.resolveExpr(sc, arg)
	}

	target := sc.typ.typ
	if p.tree.Node(clause).Name == "base" {
		target = target.Base
	}

	p.tree.Node(clause).Member = p.constructor(target, len(args))
}

func (p *parser) resolveStmt(sc *scope, id syntax.NodeID) {
	n := p.tree.Node(id)

	switch n.Kind {
	case syntax.Block:
		for _, s := range p.tree.ChildrenWithRole(id, syntax.Statement) {
			p.resolveStmt(sc, s)
		}

	case syntax.ExpressionStatement, syntax.ReturnStatement:
		if v := p.tree.Child(id, syntax.Value); v.Valid() {
			p.resolveExpr(sc, v)
		}

	case syntax.VariableDeclaration:
		if v := p.tree.Child(id, syntax.Value); v.Valid() {
			p.resolveExpr(sc, v)
		}

		v := &model.Variable{Function: sc.fn, Name: n.Name, Kind: model.Local, Index: sc.slots}
		sc.slots++
		sc.declare(v, n.Text)
		n.Variable = v

	case syntax.IfStatement:
		p.resolveExpr(sc, p.tree.Child(id, syntax.Condition))
		p.resolveStmt(sc, p.tree.Child(id, syntax.Then))

		if e := p.tree.Child(id, syntax.Else); e.Valid() {
			p.resolveStmt(sc, e)
		}

	default:
	}
}

// resolveExpr annotates the expression at id and returns its instruction.
func (p *parser) resolveExpr(sc *scope, id syntax.NodeID) *model.Instruction {
	var in *model.Instruction

	switch p.tree.Kind(id) {
	case syntax.Literal:
		in = &model.Instruction{OpCode: model.LoadConst}

	case syntax.This, syntax.Base:
		in = &model.Instruction{OpCode: model.LoadVariable, Variable: sc.this}

	case syntax.Identifier:
		in = p.resolveIdentifier(sc, id)

	case syntax.MemberReference:
		in = p.resolveMemberReference(sc, id, -1)

	case syntax.Invocation:
		in = p.resolveInvocation(sc, id)

	case syntax.ObjectCreation:
		in = p.resolveObjectCreation(sc, id)

	case syntax.Unary:
		operand := p.resolveExpr(sc, p.tree.Child(id, syntax.Operand))
		if p.tree.Node(id).Name == "&" && operand.OpCode == model.LoadVariable {
			in = &model.Instruction{OpCode: model.LoadAddress, Variable: operand.Variable}
		} else {
			in = &model.Instruction{OpCode: model.Operator, Args: []*model.Instruction{operand}}
		}

	case syntax.Binary:
		in = &model.Instruction{OpCode: model.Operator}
		in.Args = append(in.Args, p.resolveExpr(sc, p.tree.Child(id, syntax.Left)))

		if p.tree.Node(id).Name != "->" {
			in.Args = append(in.Args, p.resolveExpr(sc, p.tree.Child(id, syntax.Right)))
		}

	case syntax.Assignment:
		left := p.resolveExpr(sc, p.tree.Child(id, syntax.Left))
		right := p.resolveExpr(sc, p.tree.Child(id, syntax.Right))
		in = store(left, right)

	default:
		in = &model.Instruction{OpCode: model.Nop}
	}

	if id.Valid() {
		p.tree.Node(id).Instruction = in
	}

	return in
}

// store converts the load of an assignment target into the matching store.
func store(left, right *model.Instruction) *model.Instruction {
	switch left.OpCode {
	case model.LoadField:
		args := append(left.Args[:len(left.Args):len(left.Args)], right)

		return &model.Instruction{OpCode: model.StoreField, Member: left.Member, Args: args}

	case model.LoadVariable:
		return &model.Instruction{OpCode: model.StoreVariable, Variable: left.Variable, Args: []*model.Instruction{right}}

	default:
		return &model.Instruction{OpCode: model.Operator, Args: []*model.Instruction{left, right}}
	}
}

func (p *parser) resolveIdentifier(sc *scope, id syntax.NodeID) *model.Instruction {
	n := p.tree.Node(id)

	if v := sc.lookup(n.Name); v != nil {
		n.Variable = v

		return &model.Instruction{OpCode: model.LoadVariable, Variable: v}
	}

	for ti := sc.typ; ti != nil; ti = ti.outer {
		m := p.lookupMember(ti.typ, n.Name)
		if m == nil {
			continue
		}

		n.Member = m
		in := &model.Instruction{OpCode: model.LoadField, Member: m}

		if !m.Static && ti == sc.typ && sc.this != nil {
			in.Args = []*model.Instruction{{OpCode: model.LoadVariable, Variable: sc.this}}
		}

		return in
	}

	typ := p.lookupType(n.Name)
	if typ == nil && startsUpper(n.Name) {
		typ = p.externalType(n.Name)
	}

	if typ != nil {
		n.Kind, n.Type = syntax.TypeReference, typ

		return &model.Instruction{OpCode: model.Nop}
	}

	if sc.fn == nil {
		return &model.Instruction{OpCode: model.Nop}
	}

	// Lowered functions declare their locals up front, so an undeclared
	// name is a local of the enclosing function.
	v := &model.Variable{Function: sc.fn, Name: n.Name, Kind: model.Local, Index: sc.slots}
	sc.slots++
	sc.declare(v, "")
	n.Variable = v

	return &model.Instruction{OpCode: model.LoadVariable, Variable: v}
}

func startsUpper(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)

	return unicode.IsUpper(r)
}

// resolveMemberReference resolves `target.Name`. A constructor reference is
// resolved by the number of arguments of the enclosing call.
func (p *parser) resolveMemberReference(sc *scope, id syntax.NodeID, arity int) *model.Instruction {
	target := p.tree.Child(id, syntax.Target)
	tin := p.resolveExpr(sc, target)
	owner := p.typeOf(sc, target)

	n := p.tree.Node(id)

	if n.Name == ".ctor" {
		n.Member = p.constructor(owner, arity)
	} else {
		n.Member = p.lookupMember(owner, n.Name)
	}

	return &model.Instruction{OpCode: model.LoadField, Member: n.Member, Args: []*model.Instruction{tin}}
}

// typeOf returns the static type of the expression at id, if known.
func (p *parser) typeOf(sc *scope, id syntax.NodeID) *model.Type {
	n := p.tree.Node(id)

	switch n.Kind {
	case syntax.This:
		return sc.typ.typ

	case syntax.Base:
		return sc.typ.typ.Base

	case syntax.TypeReference, syntax.ObjectCreation:
		return n.Type

	case syntax.Identifier, syntax.MemberReference:
		if n.Variable != nil {
			return p.lookupType(sc.varTypes[n.Variable])
		}

		if n.Member != nil {
			return p.lookupType(p.memberTypes[n.Member])
		}

		return nil

	default:
		return nil
	}
}

func (p *parser) resolveInvocation(sc *scope, id syntax.NodeID) *model.Instruction {
	callee := p.tree.Child(id, syntax.Callee)
	args := p.tree.ChildrenWithRole(id, syntax.Argument)

	var cin *model.Instruction
	if p.tree.Kind(callee) == syntax.MemberReference {
		cin = p.resolveMemberReference(sc, callee, len(args))
		p.tree.Node(callee).Instruction = cin
	} else {
		cin = p.resolveExpr(sc, callee)
	}

	m := p.tree.Node(callee).Member
	p.tree.Node(id).Member = m

	in := &model.Instruction{OpCode: model.Call, Member: m}
	in.Args = append(in.Args, cin.Args...)

	for _, arg := range args {
		in.Args = append(in.Args, p.resolveExpr(sc, arg))
	}

	return in
}

func (p *parser) resolveObjectCreation(sc *scope, id syntax.NodeID) *model.Instruction {
	n := p.tree.Node(id)

	typ := p.lookupType(n.Text)
	if typ == nil {
		typ = p.externalType(n.Text)
	}

	args := p.tree.ChildrenWithRole(id, syntax.Argument)

	n.Type = typ
	n.Member = p.constructor(typ, len(args))

	in := &model.Instruction{OpCode: model.NewObject, Member: n.Member}
	for _, arg := range args {
		in.Args = append(in.Args, p.resolveExpr(sc, arg))
	}

	return in
}
