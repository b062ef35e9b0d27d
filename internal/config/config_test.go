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

package config_test

import (
	"slices"
	"testing"

	. "fillmore-labs.com/ctorinit/internal/config"
)

func TestBitMask(t *testing.T) {
	t.Parallel()

	b := NewBitMask(PrimaryConstructors)

	b.Set(ShowDocumentation, true)
	b.Set(PrimaryConstructors, false)
	b.Enable(RecordTypes)

	tests := []struct {
		flag BehaviorFlags
		want bool
	}{
		{ShowDocumentation, true},
		{PrimaryConstructors, false},
		{RecordTypes, true},
	}

	for _, tt := range tests {
		if got := b.Enabled(tt.flag); got != tt.want {
			t.Errorf("Got %t for %s, expected %t", got, tt.flag, tt.want)
		}
	}

	b.Disable(RecordTypes)

	if b.Enabled(RecordTypes) {
		t.Errorf("Got %s enabled after disabling", RecordTypes)
	}
}

func TestNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		behavior Behavior
		want     []string
	}{
		{"default", DefaultBehavior(), []string{"primary", "records"}},
		{"all", NewBitMask(RecordTypes, ShowDocumentation, PrimaryConstructors), []string{"show-docs", "primary", "records"}},
		{"none", Behavior{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Names(tt.behavior); !slices.Equal(got, tt.want) {
				t.Errorf("Got %q, expected %q", got, tt.want)
			}
		})
	}
}
