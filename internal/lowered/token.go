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
	"strings"
	"text/scanner"
)

// token is a lexical token of the lowered form.
type token struct {
	text string

	// doc holds the `///` documentation lines preceding the token.
	doc []string

	pos scanner.Position

	tok rune

	// adjacent reports that no white space separates the token from its predecessor.
	adjacent bool
}

// operators are the punctuation sequences merged into one token, longest first.
var operators = [...]string{
	"??=", "==", "!=", "<=", ">=", "&&", "||", "??", "+=", "-=", "*=", "/=", "=>", "->", "++", "--",
}

// numberSuffixes are literal suffixes kept with the preceding number.
var numberSuffixes = [...]string{"f", "F", "d", "D", "m", "M", "u", "U", "l", "L", "ul", "UL"}

// tokenize splits src into tokens. Ordinary comments are dropped, documentation
// comments are attached to the next token.
func tokenize(filename, src string) ([]token, []string) {
	var (
		s      scanner.Scanner
		errs   []string
		tokens []token
		doc    []string
		end    = -1
	)

	s.Init(strings.NewReader(src))
	s.Filename = filename
	s.Mode = scanner.GoTokens &^ scanner.SkipComments
	s.Error = func(s *scanner.Scanner, msg string) { errs = append(errs, s.Pos().String()+": "+msg) }

	for tok := s.Scan(); tok != scanner.EOF; tok = s.Scan() {
		text := s.TokenText()
		pos := s.Position

		if tok == scanner.Comment {
			if line, ok := strings.CutPrefix(text, "///"); ok {
				doc = append(doc, strings.TrimSpace(line))
			}

			end = -1

			continue
		}

		t := token{text: text, doc: doc, pos: pos, tok: tok, adjacent: pos.Offset == end}
		doc, end = nil, pos.Offset+len(text)

		if n := len(tokens); n > 0 && t.adjacent && merge(&tokens[n-1], t) {
			continue
		}

		tokens = append(tokens, t)
	}

	tokens = append(tokens, token{tok: scanner.EOF, text: "", doc: doc, pos: s.Position})

	return tokens, errs
}

// merge appends t to prev when both form a multi-character operator or a number
// with suffix.
func merge(prev *token, t token) bool {
	switch {
	case (prev.tok == scanner.Int || prev.tok == scanner.Float) && t.tok == scanner.Ident:
		for _, suffix := range numberSuffixes {
			if t.text == suffix {
				prev.text += t.text

				return true
			}
		}

		return false

	case t.tok < 0 || (prev.tok < 0 && prev.tok != operator):
		return false
	}

	joined := prev.text + t.text
	for _, op := range operators {
		if joined == op {
			prev.text, prev.tok = joined, operator

			return true
		}
	}

	return false
}

// operator is the token kind of merged multi-character operators.
const operator rune = -100
