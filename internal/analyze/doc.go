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

// Package analyze builds the per-member transform records of one type declaration.
//
// # Overview
//
// Lowered constructors spell out field, property and event initializers as
// assignments at the start of their bodies, followed by the call of a base or
// sibling constructor. [Analyze] scans these leading statements and decides
// which assignments can move back to their declarations:
//
//	class C {                          class C {
//	    int x;                             int x = 1;
//	    C() {                 ==>          C() : base(0) {
//	        this.x = 1;                        Run();
//	        base..ctor(0);                 }
//	        Run();                     }
//	    }
//	}
//
// # Phases
//
//  1. Collect: a [Record] for every field, plain event, property and constructor,
//     plus the members a record header declares.
//  2. Scan: classify the leading statements of every constructor. Conflicting
//     initializers or unexpected chaining abort the whole type.
//  3. Settle: downgrade members that are not initialized by every constructor,
//     read a parameter of a constructor that does not become primary, or follow
//     a statement that stays in the body.
//
// Analysis does not modify the tree. A nil [*Result] means the type is left as is.
package analyze
