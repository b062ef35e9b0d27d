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

	"fillmore-labs.com/ctorinit/internal/config"
	"fillmore-labs.com/ctorinit/internal/run"
)

var behaviorFlags = [...]struct {
	flag  config.BehaviorFlags
	usage string
}{
	{config.ShowDocumentation, "keep documented trivial constructors"},
	{config.PrimaryConstructors, "promote primary constructors"},
	{config.RecordTypes, "handle record headers"},
}

func registerFlags(r *run.Options, flags *flag.FlagSet) {
	if flags == nil {
		flags = flag.CommandLine
	}

	for _, b := range behaviorFlags {
		flags.Var(NewBehaviorValue(&r.Behavior, b.flag), b.flag.String(), b.usage)
	}
}
