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

import "strings"

// RequiresUnsafe reports whether the expression rooted at id can only be
// evaluated in an unsafe context: it dereferences a pointer, takes an address
// or mentions a pointer type.
func (t *Tree) RequiresUnsafe(id NodeID) bool {
	for n := range t.Preorder(id) {
		node := t.nodes[n]
		switch node.Kind {
		case Unary:
			if node.Name == "*" || node.Name == "&" {
				return true
			}

		case Binary:
			if node.Name == "->" {
				return true
			}

		case TypeReference, ObjectCreation:
			if strings.HasSuffix(node.Text, "*") {
				return true
			}

		default:
		}
	}

	return false
}
