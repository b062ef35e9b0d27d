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

// Package transform recovers declaration initializers, constructor initializer
// clauses and primary constructors from lowered constructor bodies.
//
// # Overview
//
// A compiler lowers field initializers into assignments at the start of every
// constructor and the constructor initializer clause into an explicit call.
// The transformation reverses this where it preserves run-time semantics.
//
// # Example
//
// Before:
//
//	class Point : Shape {
//	    private readonly int <x>P;
//	    private int count;
//	    public Point(int x) {
//	        this.<x>P = x;
//	        this.count = 1;
//	        base..ctor("point");
//	    }
//	    public int X => this.<x>P;
//	}
//
// After:
//
//	class Point(int x) : Shape("point") {
//	    private int count = 1;
//	    public int X => x;
//	}
//
// # Safety Constraints
//
// An initializer stays in the constructor body when it:
//
//   - reads a local variable of the constructor,
//   - belongs to a value type outside a record header,
//   - is assigned in a static constructor of a lazily initialized type and is not constant,
//   - is not assigned identically by every constructor running initializers.
//
// Conflicting initializers or unexpected chaining leave the whole type unchanged.
package transform
