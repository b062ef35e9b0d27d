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

package transform

import (
	"context"
	"flag"

	"fillmore-labs.com/ctorinit/internal/run"
	"fillmore-labs.com/ctorinit/syntax"
)

// Transformer applies the transformation to syntax trees. It holds no per-tree
// state and can be used for several trees, concurrently for distinct trees.
type Transformer struct {
	r *run.Options
}

// New creates a [Transformer] configured by opts.
func New(opts ...Option) *Transformer {
	r := run.DefaultOptions()
	Options(opts).apply(r)

	return &Transformer{r: r}
}

// Run transforms every type declaration of t in place, outer types first.
// Running it on its own output changes nothing.
//
// The only error is an invariant violation of the input tree.
func (tr *Transformer) Run(ctx context.Context, t *syntax.Tree) error {
	return tr.r.Run(ctx, t)
}

// RunType transforms the type declaration decl of t and its nested types.
func (tr *Transformer) RunType(ctx context.Context, t *syntax.Tree, decl syntax.NodeID) error {
	return tr.r.RunType(ctx, t, decl)
}

// RegisterFlags binds the behavioral options to command line flags.
// A nil flag set value defaults to the program's command line.
func (tr *Transformer) RegisterFlags(flags *flag.FlagSet) {
	registerFlags(tr.r, flags)
}
