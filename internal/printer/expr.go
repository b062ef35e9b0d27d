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

package printer

import (
	"strings"

	"fillmore-labs.com/ctorinit/syntax"
)

func (p *printer) stmt(id syntax.NodeID) {
	n := p.t.Node(id)

	switch n.Kind {
	case syntax.Block:
		p.open()

		for _, s := range p.t.ChildrenWithRole(id, syntax.Statement) {
			p.stmt(s)
		}

		p.close("")

	case syntax.ExpressionStatement:
		p.line(p.expr(p.t.Child(id, syntax.Value), 0), ";")

	case syntax.VariableDeclaration:
		decl := n.Text + " " + n.Name
		if v := p.t.Child(id, syntax.Value); v.Valid() {
			decl += " = " + p.expr(v, 0)
		}

		p.line(decl, ";")

	case syntax.ReturnStatement:
		if v := p.t.Child(id, syntax.Value); v.Valid() {
			p.line("return ", p.expr(v, 0), ";")
		} else {
			p.line("return;")
		}

	case syntax.IfStatement:
		p.line("if (", p.expr(p.t.Child(id, syntax.Condition), 0), ")")
		p.branch(p.t.Child(id, syntax.Then))

		if e := p.t.Child(id, syntax.Else); e.Valid() {
			p.line("else")
			p.branch(e)
		}

	default:
		p.line(p.expr(id, 0), ";")
	}
}

// branch prints the body of a conditional, indenting single statements.
func (p *printer) branch(id syntax.NodeID) {
	if p.t.Kind(id) == syntax.Block {
		p.stmt(id)

		return
	}

	p.depth++
	p.stmt(id)
	p.depth--
}

const (
	precAssignment = iota
	precCoalesce
	precOr
	precAnd
	precBitOr
	precXor
	precBitAnd
	precEquality
	precRelational
	precAdditive
	precMultiplicative
	precUnary
	precPrimary
)

var binaryPrecedence = map[string]int{
	"??": precCoalesce,
	"||": precOr,
	"&&": precAnd,
	"|":  precBitOr,
	"^":  precXor,
	"&":  precBitAnd,
	"==": precEquality, "!=": precEquality,
	"<": precRelational, ">": precRelational, "<=": precRelational, ">=": precRelational,
	"+": precAdditive, "-": precAdditive,
	"*": precMultiplicative, "/": precMultiplicative, "%": precMultiplicative,
	"->": precPrimary,
}

func (p *printer) precedence(id syntax.NodeID) int {
	n := p.t.Node(id)

	switch n.Kind {
	case syntax.Assignment:
		return precAssignment

	case syntax.Binary:
		return binaryPrecedence[n.Name]

	case syntax.Unary:
		if n.Text == "post" {
			return precPrimary
		}

		return precUnary

	default:
		return precPrimary
	}
}

// expr renders the expression at id, parenthesized when it binds weaker than min.
func (p *printer) expr(id syntax.NodeID, minPrec int) string {
	s := p.bare(id)
	if p.precedence(id) < minPrec {
		return "(" + s + ")"
	}

	return s
}

func (p *printer) bare(id syntax.NodeID) string {
	n := p.t.Node(id)

	switch n.Kind {
	case syntax.Literal:
		return n.Text

	case syntax.This:
		return "this"

	case syntax.Base:
		return "base"

	case syntax.Identifier, syntax.TypeReference:
		return n.Name

	case syntax.MemberReference:
		return p.expr(p.t.Child(id, syntax.Target), precPrimary) + "." + n.Name

	case syntax.Invocation:
		return p.expr(p.t.Child(id, syntax.Callee), precPrimary) + p.arguments(p.t.ChildrenWithRole(id, syntax.Argument))

	case syntax.ObjectCreation:
		return "new " + n.Text + p.arguments(p.t.ChildrenWithRole(id, syntax.Argument))

	case syntax.Unary:
		operand := p.t.Child(id, syntax.Operand)
		if n.Text == "post" {
			return p.expr(operand, precPrimary) + n.Name
		}

		s := p.expr(operand, precUnary)
		if strings.HasPrefix(s, n.Name[:1]) {
			return n.Name + " " + s
		}

		return n.Name + s

	case syntax.Binary:
		prec := binaryPrecedence[n.Name]
		left := p.expr(p.t.Child(id, syntax.Left), prec)

		if n.Name == "->" {
			return left + "->" + p.bare(p.t.Child(id, syntax.Right))
		}

		return left + " " + n.Name + " " + p.expr(p.t.Child(id, syntax.Right), prec+1)

	case syntax.Assignment:
		return p.expr(p.t.Child(id, syntax.Left), precCoalesce) + " " + n.Name + " " + p.expr(p.t.Child(id, syntax.Right), precAssignment)

	default:
		return "/* " + n.Kind.String() + " */"
	}
}
