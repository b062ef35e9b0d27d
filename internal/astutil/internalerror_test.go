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

package astutil_test

import (
	"errors"
	"testing"

	. "fillmore-labs.com/ctorinit/internal/astutil"
)

func TestAssertf(t *testing.T) {
	t.Parallel()

	Assertf(true, "not reached")

	defer func() {
		r := recover()

		err, ok := r.(error)
		if !ok {
			t.Fatalf("Got panic value %v, expected an error", r)
		}

		var ierr *InternalError
		if !errors.As(err, &ierr) {
			t.Fatalf("Got %T, expected *InternalError", err)
		}

		if got, want := err.Error(), "Internal Error: base clause in C without base type"; got != want {
			t.Errorf("Got message %q, expected %q", got, want)
		}
	}()

	Assertf(false, "base clause in %s without base type", "C")
}
