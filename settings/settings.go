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

// Package settings reads ctorinit configuration files.
//
// A settings file is YAML or JSON:
//
//	show-docs: false
//	primary: true
//	records: true
//
// Missing keys keep the defaults of [transform.New].
package settings

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/golangci/plugin-module-register/register"
	"gopkg.in/yaml.v3"

	"fillmore-labs.com/ctorinit/transform"
)

// ErrUnknownSetting is returned for keys not understood by [Settings].
var ErrUnknownSetting = errors.New("unknown setting")

// Settings represents the configuration options of a transformation.
type Settings struct {
	// ShowDocs keeps documented constructors.
	ShowDocs *bool `json:"show-docs,omitzero" yaml:"show-docs,omitempty"`
	// Primary enables primary constructor promotion.
	Primary *bool `json:"primary,omitzero" yaml:"primary,omitempty"`
	// Records enables record descriptor handling.
	Records *bool `json:"records,omitzero" yaml:"records,omitempty"`
}

// Options converts [Settings] into a list of [transform.Option].
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []transform.Option {
	var opts []transform.Option

	opts = appendOption(opts, s.ShowDocs, transform.WithShowDocumentation)
	opts = appendOption(opts, s.Primary, transform.WithPrimaryConstructors)
	opts = appendOption(opts, s.Records, transform.WithRecords)

	return opts
}

// appendOption appends a non-nil setting to a [transform.Option] list.
func appendOption[T any](opts []transform.Option, value *T, constructor func(T) transform.Option) []transform.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}

// Decode converts generic settings, as produced by a YAML or JSON decoder, into [Settings].
func Decode(raw any) (Settings, error) {
	if m, ok := raw.(map[string]any); ok {
		for key := range m {
			if _, ok := knownKeys[key]; !ok {
				return Settings{}, fmt.Errorf("%w: %q", ErrUnknownSetting, key)
			}
		}
	}

	return register.DecodeSettings[Settings](raw)
}

// Parse reads settings in YAML (or JSON) syntax. Empty input yields zero [Settings].
func Parse(data []byte) (Settings, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Settings{}, fmt.Errorf("can't parse settings: %w", err)
	}

	if raw == nil {
		return Settings{}, nil
	}

	return Decode(raw)
}

// Load reads a settings file.
func Load(name string) (Settings, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return Settings{}, err
	}

	s, err := Parse(data)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", name, err)
	}

	return s, nil
}

// knownKeys are the JSON names of the fields of [Settings].
var knownKeys = func() map[string]struct{} {
	keys := make(map[string]struct{})

	typ := reflect.TypeFor[Settings]()
	for i := range typ.NumField() {
		name, _, _ := strings.Cut(typ.Field(i).Tag.Get("json"), ",")
		keys[name] = struct{}{}
	}

	return keys
}()
