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
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"fillmore-labs.com/ctorinit/internal/config"
	"fillmore-labs.com/ctorinit/internal/run"
	"fillmore-labs.com/ctorinit/model"
)

// Option configures specific behavior of a [New] transformer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithShowDocumentation is an [Option] to keep trivial constructors that carry documentation.
func WithShowDocumentation(show bool) Option { return showDocumentationOption{show: show} }

type showDocumentationOption struct{ show bool }

func (o showDocumentationOption) apply(r *run.Options) {
	r.Behavior.Set(config.ShowDocumentation, o.show)
}

func (o showDocumentationOption) LogAttr() slog.Attr {
	return slog.Bool(config.ShowDocumentation.String(), o.show)
}

// WithPrimaryConstructors is an [Option] to configure primary constructor promotion
// for types that are not records.
func WithPrimaryConstructors(primary bool) Option { return primaryOption{primary: primary} }

type primaryOption struct{ primary bool }

func (o primaryOption) apply(r *run.Options) {
	r.Behavior.Set(config.PrimaryConstructors, o.primary)
}

func (o primaryOption) LogAttr() slog.Attr {
	return slog.Bool(config.PrimaryConstructors.String(), o.primary)
}

// WithRecords is an [Option] to configure record specific handling.
func WithRecords(records bool) Option { return recordsOption{records: records} }

type recordsOption struct{ records bool }

func (o recordsOption) apply(r *run.Options) {
	r.Behavior.Set(config.RecordTypes, o.records)
}

func (o recordsOption) LogAttr() slog.Attr {
	return slog.Bool(config.RecordTypes.String(), o.records)
}

// WithDocumentation is an [Option] to set the documentation lookup used with
// [WithShowDocumentation].
func WithDocumentation(docs model.DocumentationProvider) Option {
	return documentationOption{docs: docs}
}

type documentationOption struct{ docs model.DocumentationProvider }

func (o documentationOption) apply(r *run.Options) {
	r.Documentation = o.docs
}

func (o documentationOption) LogAttr() slog.Attr {
	return slog.Bool("documentation", o.docs != nil)
}

// WithLogger is an [Option] to receive debug output per type.
func WithLogger(logger *slog.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(r *run.Options) {
	if o.logger == nil {
		r.Logger = slog.New(slog.DiscardHandler)

		return
	}

	r.Logger = o.logger
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.logger != nil)
}

// WithTracerProvider is an [Option] to set the OpenTelemetry tracer provider.
// The global provider is used by default.
func WithTracerProvider(tp trace.TracerProvider) Option { return tracerOption{tp: tp} }

type tracerOption struct{ tp trace.TracerProvider }

func (o tracerOption) apply(r *run.Options) {
	if o.tp == nil {
		return
	}

	r.TracerProvider = o.tp
}

func (o tracerOption) LogAttr() slog.Attr {
	return slog.Bool("tracer", o.tp != nil)
}
