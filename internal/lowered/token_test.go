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
	"slices"
	"testing"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"operators", "a ??= b ?? c => d", []string{"a", "??=", "b", "??", "c", "=>", "d", ""}},
		{"suffix", "x = 0m + 1.5f", []string{"x", "=", "0m", "+", "1.5f", ""}},
		{"synthesized", "this.<x>P", []string{"this", ".", "<", "x", ">", "P", ""}},
		{"constructor", "base..ctor()", []string{"base", ".", ".", "ctor", "(", ")", ""}},
		{"comparison", "a<=b", []string{"a", "<=", "b", ""}},
		{"comments", "a // b\n/* c */ d", []string{"a", "d", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tokens, errs := tokenize("test.cs", tt.src)
			if len(errs) > 0 {
				t.Fatalf("Unexpected errors: %v", errs)
			}

			got := make([]string, 0, len(tokens))
			for _, tok := range tokens {
				got = append(got, tok.text)
			}

			if !slices.Equal(got, tt.want) {
				t.Errorf("Got %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestTokenizeDoc(t *testing.T) {
	t.Parallel()

	tokens, _ := tokenize("test.cs", "/// first\n///second\n// other\npublic int x;")

	if got, want := tokens[0].doc, []string{"first", "second"}; !slices.Equal(got, want) {
		t.Errorf("Got doc %q, expected %q", got, want)
	}

	if tokens[1].doc != nil {
		t.Errorf("Got doc %q on second token, expected none", tokens[1].doc)
	}
}

func TestTokenizeAdjacent(t *testing.T) {
	t.Parallel()

	tokens, _ := tokenize("test.cs", "<x>P <y> Q")

	want := []bool{false, true, true, true, false, true, true, false}
	for i, tok := range tokens[:len(want)] {
		if tok.adjacent != want[i] {
			t.Errorf("Got adjacent=%t for token %d %q, expected %t", tok.adjacent, i, tok.text, want[i])
		}
	}
}
