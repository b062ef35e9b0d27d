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
	"flag"
	"fmt"
	"strconv"

	"fillmore-labs.com/ctorinit/internal/config"
)

// NewBehaviorValue returns a boolean [flag.Value] toggling f in behavior.
func NewBehaviorValue(behavior *config.Behavior, f config.BehaviorFlags) flag.Getter {
	return behaviorValue{behavior: behavior, flag: f}
}

type behaviorValue struct {
	behavior *config.Behavior
	flag     config.BehaviorFlags
}

// Set implements [flag.Value].
func (v behaviorValue) Set(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("%s: %w", v.flag, err)
	}

	v.behavior.Set(v.flag, b)

	return nil
}

// String implements [flag.Value].
func (v behaviorValue) String() string { return strconv.FormatBool(v.enabled()) }

// Get implements [flag.Getter].
func (v behaviorValue) Get() any { return v.enabled() }

// IsBoolFlag returns true to indicate that this is a boolean [flag.Value].
func (behaviorValue) IsBoolFlag() bool { return true }

// enabled is false for the zero value, which [flag.PrintDefaults] uses to detect defaults.
func (v behaviorValue) enabled() bool { return v.behavior != nil && v.behavior.Enabled(v.flag) }
