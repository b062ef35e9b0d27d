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

// Package run drives the pass over a syntax tree: every type declaration is
// analyzed, rewritten and then descended into.
package run

import (
	"context"
	"errors"
	"log/slog"
	"runtime/trace"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"

	"fillmore-labs.com/ctorinit/internal/analyze"
	"fillmore-labs.com/ctorinit/internal/astutil"
	"fillmore-labs.com/ctorinit/internal/config"
	"fillmore-labs.com/ctorinit/internal/rewrite"
	"fillmore-labs.com/ctorinit/model"
	"fillmore-labs.com/ctorinit/syntax"
)

type runner struct {
	*Options
	tree   *syntax.Tree
	tracer oteltrace.Tracer
}

// Run transforms all type declarations of t, outer types first.
//
// A violated input invariant is returned as an [*astutil.InternalError]; the tree
// may be partially transformed then.
func (r *Options) Run(ctx context.Context, t *syntax.Tree) error {
	return r.run(ctx, t, t.Root(), "Run")
}

// RunType transforms the type declaration decl and its nested types.
func (r *Options) RunType(ctx context.Context, t *syntax.Tree, decl syntax.NodeID) error {
	return r.run(ctx, t, decl, "RunType")
}

func (r *Options) run(ctx context.Context, t *syntax.Tree, start syntax.NodeID, op string) (err error) {
	ctx, task := trace.NewTask(ctx, "CtorInit")
	defer task.End()

	rn := runner{Options: r, tree: t, tracer: r.TracerProvider.Tracer(tracerName)}

	ctx, span := rn.tracer.Start(ctx, "run."+op,
		oteltrace.WithAttributes(attribute.StringSlice("behavior", config.Names(r.Behavior))))
	defer span.End()

	defer func() {
		if p := recover(); p != nil {
			var ierr *astutil.InternalError
			if e, ok := p.(error); !ok || !errors.As(e, &ierr) {
				panic(p)
			}

			span.RecordError(ierr)
			err = ierr
		}
	}()

	rn.visit(ctx, start)

	return nil
}

// visit transforms the declaration at id and then its nested declarations.
// Children are collected after the edits, since they may remove members.
func (rn *runner) visit(ctx context.Context, id syntax.NodeID) {
	t := rn.tree
	n := t.Node(id)

	switch n.Kind {
	case syntax.TypeDeclaration:
		rn.transform(ctx, id, n.Type)

	case syntax.CompilationUnit, syntax.Namespace:
		if hasMembers(t, id) {
			rn.transform(ctx, id, nil)
		}

	default:
		return
	}

	for _, c := range t.ChildrenWithRole(id, syntax.Member) {
		switch t.Kind(c) {
		case syntax.TypeDeclaration, syntax.Namespace:
			rn.visit(ctx, c)

		default:
		}
	}
}

// transform runs analysis and rewrite for the members of one declaration.
func (rn *runner) transform(ctx context.Context, decl syntax.NodeID, typ *model.Type) {
	name := typ.FullName()
	if typ == nil {
		name = "<members>"
	}

	ctx, span := rn.tracer.Start(ctx, "run.Type", oteltrace.WithAttributes(attribute.String("type", name)))
	defer span.End()

	region := trace.StartRegion(ctx, "analyze")
	res, reason := analyze.Analyze(rn.tree, decl, typ, rn.Behavior)
	region.End()

	if res == nil {
		span.SetAttributes(attribute.Bool("aborted", true), attribute.String("reason", reason.String()))
		rn.Logger.LogAttrs(ctx, slog.LevelDebug, "type unchanged",
			slog.String("type", name), slog.String("reason", reason.String()))

		return
	}

	span.SetAttributes(attribute.Bool("aborted", false), attribute.Int("records", res.Len()))

	defer trace.StartRegion(ctx, "apply").End()

	stats := rewrite.Apply(rn.tree, res, rewrite.Options{Docs: rn.docs(), Behavior: rn.Behavior})

	span.SetAttributes(attribute.Int("hoisted", stats.Hoisted), attribute.Bool("promoted", stats.Promoted))
	rn.Logger.LogAttrs(ctx, slog.LevelDebug, "type transformed",
		slog.String("type", name),
		slog.Int("records", res.Len()),
		slog.Int("hoisted", stats.Hoisted),
		slog.Int("chained", stats.Chained),
		slog.Int("elided", stats.Elided),
		slog.Bool("promoted", stats.Promoted))
}

// hasMembers reports whether a namespace or compilation unit declares members outside a type.
func hasMembers(t *syntax.Tree, id syntax.NodeID) bool {
	for _, c := range t.ChildrenWithRole(id, syntax.Member) {
		switch t.Kind(c) {
		case syntax.Field, syntax.Property, syntax.Event, syntax.Constructor:
			return true

		default:
		}
	}

	return false
}
