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

package transform_test

import (
	"flag"
	"strings"
	"testing"

	"fillmore-labs.com/ctorinit/internal/config"
	. "fillmore-labs.com/ctorinit/transform"
)

func TestFlagValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial config.Behavior
		args    []string
		want    bool
	}{
		{"enable", config.NewBitMask(config.RecordTypes), []string{"-primary"}, true},
		{"disable", config.DefaultBehavior(), []string{"-primary=false"}, false},
		{"unchanged", config.DefaultBehavior(), nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			behavior := tt.initial

			fv := NewBehaviorValue(&behavior, config.PrimaryConstructors)

			fs := flag.NewFlagSet("test", flag.ContinueOnError)
			fs.Var(fv, "primary", "promote primary constructors")

			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if got, want := fv.Get(), any(tt.want); got != want {
				t.Errorf("Got %v, expected %v", got, want)
			}

			if got, want := behavior.Enabled(config.PrimaryConstructors), tt.want; got != want {
				t.Errorf("Got enabled %t, expected %t", got, want)
			}

			if got, want := behavior.Enabled(config.RecordTypes), tt.initial.Enabled(config.RecordTypes); got != want {
				t.Errorf("Got records %t, expected %t", got, want)
			}
		})
	}
}

func TestFlagValueInvalid(t *testing.T) {
	t.Parallel()

	var behavior config.Behavior

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(&strings.Builder{})
	fs.Var(NewBehaviorValue(&behavior, config.RecordTypes), "records", "handle record headers")

	if err := fs.Parse([]string{"-records=maybe"}); err == nil {
		t.Error("Expected parse error")
	}
}

func TestFlagValueNil(t *testing.T) {
	t.Parallel()

	fv := NewBehaviorValue(nil, config.RecordTypes)

	if got, want := fv.String(), "false"; got != want {
		t.Errorf("Got %q, expected %q", got, want)
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("test", flag.ContinueOnError)

	New().RegisterFlags(fs)

	const expectedUsage = `
  -primary
    	promote primary constructors (default true)
  -records
    	handle record headers (default true)
  -show-docs
    	keep documented trivial constructors
`

	var out strings.Builder
	fs.SetOutput(&out)
	fs.Usage()

	if got, want := out.String(), expectedUsage; !strings.HasSuffix(got, want) {
		t.Errorf("Got usage %q, expected suffix %q", got, want)
	}
}
