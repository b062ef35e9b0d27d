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

package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/ctorinit/internal/lowered"
	"fillmore-labs.com/ctorinit/internal/printer"
	"fillmore-labs.com/ctorinit/settings"
	"fillmore-labs.com/ctorinit/transform"
)

type options struct {
	config    string
	showDocs  bool
	noPrimary bool
	noRecords bool
	verbose   bool
	jobs      int
}

func newCommand() *cobra.Command {
	var o options

	cmd := &cobra.Command{
		Use:   "ctorinit [flags] file...",
		Short: "Recover declaration initializers and constructor clauses",
		Long: `ctorinit reads lowered C# type declarations, moves constructor assignments
into declaration initializers, turns chaining calls into constructor initializer
clauses, promotes primary constructors and removes trivial constructors.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := o.settings(cmd)
			if err != nil {
				return err
			}

			logger := slog.New(slog.DiscardHandler)
			if o.verbose {
				logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
			}

			return process(cmd.Context(), cmd.OutOrStdout(), args, s, logger, o.jobs)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&o.config, "config", "", "read settings from a YAML or JSON `file`")
	flags.BoolVar(&o.showDocs, "show-docs", false, "print documentation and keep documented constructors")
	flags.BoolVar(&o.noPrimary, "no-primary", false, "do not promote primary constructors")
	flags.BoolVar(&o.noRecords, "no-records", false, "do not handle record headers")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "log per type decisions to stderr")
	flags.IntVarP(&o.jobs, "jobs", "j", runtime.GOMAXPROCS(0), "number of files processed concurrently")

	return cmd
}

// settings reads the configuration file and applies explicitly given flags on top.
func (o *options) settings(cmd *cobra.Command) (settings.Settings, error) {
	var s settings.Settings

	if o.config != "" {
		var err error
		if s, err = settings.Load(o.config); err != nil {
			return settings.Settings{}, err
		}
	}

	flags := cmd.Flags()

	if flags.Changed("show-docs") {
		s.ShowDocs = &o.showDocs
	}

	if flags.Changed("no-primary") {
		primary := !o.noPrimary
		s.Primary = &primary
	}

	if flags.Changed("no-records") {
		records := !o.noRecords
		s.Records = &records
	}

	return s, nil
}

// process transforms the named files concurrently and writes the results to w in
// argument order.
func process(ctx context.Context, w io.Writer, names []string, s settings.Settings, logger *slog.Logger, jobs int) error {
	results := make([][]byte, len(names))

	g, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}

	for i, name := range names {
		g.Go(func() error {
			out, err := processFile(ctx, name, s, logger)
			if err != nil {
				return err
			}

			results[i] = out

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for i, out := range results {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}

		if _, err := w.Write(out); err != nil {
			return err
		}
	}

	return nil
}

func processFile(ctx context.Context, name string, s settings.Settings, logger *slog.Logger) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}

	f, err := lowered.Parse(name, src)
	if err != nil {
		return nil, err
	}

	opts := append(s.Options(),
		transform.WithDocumentation(f.Documentation),
		transform.WithLogger(logger.With(slog.String("file", name))))

	if err := transform.New(opts...).Run(ctx, f.Tree); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	var cfg printer.Config
	if s.ShowDocs != nil && *s.ShowDocs {
		cfg.Docs = f.Documentation
	}

	var b bytes.Buffer
	if err := cfg.Fprint(&b, f.Tree, f.Tree.Root()); err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}
