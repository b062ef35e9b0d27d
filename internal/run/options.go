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

package run

import (
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"fillmore-labs.com/ctorinit/internal/config"
	"fillmore-labs.com/ctorinit/model"
)

// tracerName identifies spans of this pass.
const tracerName = "fillmore-labs.com/ctorinit"

// Options represent configuration options for a transformation run.
type Options struct {
	// Logger receives debug output per type.
	Logger *slog.Logger

	// TracerProvider creates the tracer for per-type spans.
	TracerProvider trace.TracerProvider

	// Documentation looks up constructor documentation.
	Documentation model.DocumentationProvider

	// Behavior holds behavioral options.
	Behavior config.Behavior
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Logger:         slog.New(slog.DiscardHandler),
		TracerProvider: otel.GetTracerProvider(),
		Behavior:       config.DefaultBehavior(),
	}
}

// docs returns the documentation provider when documentation is shown.
func (r *Options) docs() model.DocumentationProvider {
	if !r.Behavior.Enabled(config.ShowDocumentation) {
		return nil
	}

	return r.Documentation
}
