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
	"text/scanner"

	"fillmore-labs.com/ctorinit/syntax"
)

func (p *parser) parseBlock() syntax.NodeID {
	p.expect("{")

	block := p.tree.New(syntax.Block, "")

	for !p.accept("}") {
		if p.tok().tok == scanner.EOF {
			p.errorf("unterminated block")
		}

		p.tree.Append(block, syntax.Statement, p.parseStatement())
	}

	return block
}

func (p *parser) parseStatement() syntax.NodeID {
	switch {
	case p.is("{"):
		return p.parseBlock()

	case p.accept(";"):
		return p.tree.New(syntax.Block, "")

	case p.accept("return"):
		ret := p.tree.New(syntax.ReturnStatement, "")
		if !p.is(";") {
			p.tree.Append(ret, syntax.Value, p.parseExpr())
		}

		p.expect(";")

		return ret

	case p.accept("if"):
		stmt := p.tree.New(syntax.IfStatement, "")

		p.expect("(")
		p.tree.Append(stmt, syntax.Condition, p.parseExpr())
		p.expect(")")
		p.tree.Append(stmt, syntax.Then, p.parseStatement())

		if p.accept("else") {
			p.tree.Append(stmt, syntax.Else, p.parseStatement())
		}

		return stmt

	case p.isLocalDeclaration():
		typeText := p.typeText()
		decl := p.tree.New(syntax.VariableDeclaration, p.ident())
		p.tree.Node(decl).Text = typeText

		if p.accept("=") {
			p.tree.Append(decl, syntax.Value, p.parseExpr())
		}

		p.expect(";")

		return decl

	default:
		stmt := p.tree.New(syntax.ExpressionStatement, "")
		p.tree.Append(stmt, syntax.Value, p.parseExpr())
		p.expect(";")

		return stmt
	}
}

// isLocalDeclaration reports whether the statement at the current position is
// `Type name = ...;` or `Type name;`.
func (p *parser) isLocalDeclaration() bool {
	end, ok := p.scanType(p.pos)
	if !ok || p.tokens[end].tok != scanner.Ident {
		return false
	}

	switch p.tokens[end+1].text {
	case "=", ";":
		return true

	default:
		return false
	}
}

// Expressions.

var assignOperators = map[string]bool{
	"=": true, "+=": true, "-=": true, "*=": true, "/=": true, "??=": true,
}

var binaryPrecedence = map[string]int{
	"??": 1,
	"||": 2,
	"&&": 3,
	"|":  4,
	"^":  5,
	"&":  6,
	"==": 7, "!=": 7,
	"<": 8, ">": 8, "<=": 8, ">=": 8,
	"+": 9, "-": 9,
	"*": 10, "/": 10, "%": 10,
}

func (p *parser) parseExpr() syntax.NodeID {
	left := p.parseBinary(1)

	if op := p.tok().text; assignOperators[op] && p.tok().tok != scanner.String {
		p.next()

		assign := p.tree.New(syntax.Assignment, op)
		p.tree.Append(assign, syntax.Left, left)
		p.tree.Append(assign, syntax.Right, p.parseExpr())

		return assign
	}

	return left
}

func (p *parser) parseBinary(minPrec int) syntax.NodeID {
	left := p.parseUnary()

	for {
		t := p.tok()
		if t.tok == scanner.String || t.tok == scanner.Char {
			return left
		}

		prec := binaryPrecedence[t.text]
		if prec < minPrec {
			return left
		}

		p.next()

		bin := p.tree.New(syntax.Binary, t.text)
		p.tree.Append(bin, syntax.Left, left)
		p.tree.Append(bin, syntax.Right, p.parseBinary(prec+1))

		left = bin
	}
}

var unaryOperators = map[string]bool{
	"-": true, "+": true, "!": true, "~": true, "*": true, "&": true, "++": true, "--": true,
}

func (p *parser) parseUnary() syntax.NodeID {
	if t := p.tok(); unaryOperators[t.text] && t.tok != scanner.String && t.tok != scanner.Char {
		p.next()

		un := p.tree.New(syntax.Unary, t.text)
		p.tree.Append(un, syntax.Operand, p.parseUnary())

		return un
	}

	return p.parsePostfix(p.parsePrimary())
}

func (p *parser) parsePostfix(x syntax.NodeID) syntax.NodeID {
	for {
		switch {
		case p.is("."):
			p.next()

			ref := p.tree.New(syntax.MemberReference, p.memberName())
			p.tree.Append(ref, syntax.Target, x)
			x = ref

		case p.is("->"):
			p.next()

			bin := p.tree.New(syntax.Binary, "->")
			p.tree.Append(bin, syntax.Left, x)
			p.tree.Append(bin, syntax.Right, p.tree.New(syntax.Identifier, p.ident()))
			x = bin

		case p.is("("):
			call := p.tree.New(syntax.Invocation, "")
			p.tree.Append(call, syntax.Callee, x)

			for _, arg := range p.parseArguments() {
				p.tree.Append(call, syntax.Argument, arg)
			}

			x = call

		case p.is("++"), p.is("--"):
			un := p.tree.New(syntax.Unary, p.next().text)
			p.tree.Node(un).Text = "post"
			p.tree.Append(un, syntax.Operand, x)
			x = un

		default:
			return x
		}
	}
}

func (p *parser) parseArguments() []syntax.NodeID {
	var args []syntax.NodeID

	p.expect("(")

	for !p.accept(")") {
		args = append(args, p.parseExpr())

		if !p.is(")") {
			p.expect(",")
		}
	}

	return args
}

var literalWords = map[string]bool{"true": true, "false": true, "null": true}

func (p *parser) parsePrimary() syntax.NodeID {
	t := p.tok()

	switch {
	case t.tok == scanner.Int, t.tok == scanner.Float, t.tok == scanner.String,
		t.tok == scanner.Char, t.tok == scanner.RawString,
		t.tok == scanner.Ident && literalWords[t.text]:
		p.next()

		lit := p.tree.New(syntax.Literal, "")
		p.tree.Node(lit).Text = t.text

		return lit

	case p.accept("this"):
		return p.tree.New(syntax.This, "this")

	case p.accept("base"):
		return p.tree.New(syntax.Base, "base")

	case p.accept("new"):
		create := p.tree.New(syntax.ObjectCreation, "")
		p.tree.Node(create).Text = p.typeText()

		for _, arg := range p.parseArguments() {
			p.tree.Append(create, syntax.Argument, arg)
		}

		return create

	case p.accept("("):
		x := p.parseExpr()
		p.expect(")")

		return x

	case p.is("<"):
		return p.tree.New(syntax.Identifier, p.synthesizedName())

	case t.tok == scanner.Ident:
		return p.tree.New(syntax.Identifier, p.ident())

	default:
		p.errorf("unexpected %q", t.text)

		return syntax.NoNode
	}
}
