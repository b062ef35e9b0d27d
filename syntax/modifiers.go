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

package syntax

import (
	"strings"

	"fillmore-labs.com/ctorinit/model"
)

// Modifiers is the set of declaration modifiers of a [Node].
type Modifiers uint16

const (
	ModPrivate Modifiers = 1 << iota
	ModProtected
	ModInternal
	ModPublic
	ModStatic
	ModAbstract
	ModSealed
	ModReadonly
	ModConst
	ModUnsafe
	ModVirtual
	ModOverride
	ModPartial

	ModNone Modifiers = 0

	accessMask = ModPrivate | ModProtected | ModInternal | ModPublic
)

var modifierNames = [...]struct {
	mod  Modifiers
	name string
}{
	{ModPublic, "public"},
	{ModPrivate, "private"},
	{ModProtected, "protected"},
	{ModInternal, "internal"},
	{ModStatic, "static"},
	{ModAbstract, "abstract"},
	{ModSealed, "sealed"},
	{ModOverride, "override"},
	{ModVirtual, "virtual"},
	{ModReadonly, "readonly"},
	{ModConst, "const"},
	{ModUnsafe, "unsafe"},
	{ModPartial, "partial"},
}

// Has reports whether all modifiers in o are set.
func (m Modifiers) Has(o Modifiers) bool { return m&o == o }

// Accessibility converts the access modifiers to a [model.Accessibility].
func (m Modifiers) Accessibility() model.Accessibility {
	switch m & accessMask {
	case ModPublic:
		return model.Public
	case ModProtected:
		return model.Protected
	case ModInternal:
		return model.Internal
	case ModPrivate:
		return model.Private
	case ModProtected | ModInternal:
		return model.ProtectedInternal
	case ModPrivate | ModProtected:
		return model.PrivateProtected
	default:
		return model.None
	}
}

// AccessModifiers converts a [model.Accessibility] to access modifiers.
func AccessModifiers(a model.Accessibility) Modifiers {
	switch a {
	case model.Public:
		return ModPublic
	case model.Protected:
		return ModProtected
	case model.Internal:
		return ModInternal
	case model.Private:
		return ModPrivate
	case model.ProtectedInternal:
		return ModProtected | ModInternal
	case model.PrivateProtected:
		return ModPrivate | ModProtected
	default:
		return ModNone
	}
}

// String returns the modifiers in conventional source order, separated by spaces.
func (m Modifiers) String() string {
	var b strings.Builder
	for _, n := range modifierNames {
		if m&n.mod == 0 {
			continue
		}

		if b.Len() > 0 {
			b.WriteByte(' ')
		}

		b.WriteString(n.name)
	}

	return b.String()
}
