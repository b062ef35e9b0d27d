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
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	"fillmore-labs.com/ctorinit/internal/testsource"
	"fillmore-labs.com/ctorinit/settings"
	. "fillmore-labs.com/ctorinit/transform"
)

func TestGolden(t *testing.T) {
	t.Parallel()

	files, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	if err != nil {
		t.Fatalf("Can't list test data: %v", err)
	}

	if len(files) == 0 {
		t.Fatal("No test data")
	}

	for _, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), ".txtar")

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ar, err := txtar.ParseFile(file)
			if err != nil {
				t.Fatalf("Can't read archive: %v", err)
			}

			sections := make(map[string]string, len(ar.Files))
			for _, f := range ar.Files {
				sections[f.Name] = string(f.Data)
			}

			s, err := settings.Parse([]byte(sections["settings.yaml"]))
			if err != nil {
				t.Fatalf("Invalid settings: %v", err)
			}

			showDocs := s.ShowDocs != nil && *s.ShowDocs

			f := testsource.Parse(t, sections["input.cs"])

			tr := New(Options(s.Options()), WithDocumentation(f.Documentation))
			if err := tr.Run(t.Context(), f.Tree); err != nil {
				t.Fatalf("Run failed: %v", err)
			}

			got := testsource.Print(t, f, showDocs)
			if got, want := strings.TrimSpace(got), strings.TrimSpace(sections["want.cs"]); got != want {
				t.Errorf("Got:\n%s\nexpected:\n%s", got, want)
			}

			if err := tr.Run(t.Context(), f.Tree); err != nil {
				t.Fatalf("Second run failed: %v", err)
			}

			if again := testsource.Print(t, f, showDocs); again != got {
				t.Errorf("Second run changed the output:\n%s", again)
			}
		})
	}
}
