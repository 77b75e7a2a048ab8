// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const colors = `
- name: Color
  type: byte
  docs: Color is a color.
  methods:
  - kind: string
    skip: [ColorNone]
  - kind: valid
    skip: [ColorNone]
  - kind: from-string
    name: ColorFromString
  values:
  - name: ColorNone
  - name: Red
    gap: true
    string: red
  - name: Blue
    string: blue
`

func TestGenerate(t *testing.T) {
	t.Setenv("GOPACKAGE", "demo")
	config := filepath.Join(t.TempDir(), "color.yaml")
	require.NoError(t, os.WriteFile(config, []byte(colors), 0o600))

	require.NoError(t, Generate(config))
	data, err := os.ReadFile(filepath.Join(filepath.Dir(config), "color.enum.go"))
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "// Code generated by github.com/bufbuild/jsast/internal/enum "+config+". DO NOT EDIT.\n\npackage demo\n")
	assert.Contains(t, out, "// Color is a color.\ntype Color byte\n")
	assert.Contains(t, out, "const (\n\tColorNone Color = iota\n\n\tRed\n\tBlue\n)\n")
	assert.Contains(t, out, `_table_Color_String[v] == ""`)
	assert.Contains(t, out, "var _table_Color_String = [...]string{\n\tRed: \"red\",\n\tBlue: \"blue\",\n}\n")
	assert.Contains(t, out, "var _table_Color_IsValid = [...]bool{\n\tRed: true,\n\tBlue: true,\n}\n")
	assert.Contains(t, out, "\t\"ColorNone\": ColorNone,\n\t\"red\": Red,\n")
	assert.NotContains(t, out, "\n\n\n")
}

func TestGenerateErrors(t *testing.T) {
	t.Setenv("GOPACKAGE", "demo")
	require.Error(t, Generate("color.yml"))
	require.Error(t, Generate(filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name, yaml string
	}{
		{"no values", "name: E\ntype: int\n"},
		{"duplicate value", "name: E\ntype: int\nvalues: [{name: A}, {name: A}]\n"},
		{"unknown skip", "name: E\ntype: int\nmethods: [{kind: string, skip: [B]}]\nvalues: [{name: A}]\n"},
		{"missing name", "name: E\ntype: int\nmethods: [{kind: all}]\nvalues: [{name: A}]\n"},
		{"unknown kind", "name: E\ntype: int\nmethods: [{kind: bogus}]\nvalues: [{name: A}]\n"},
		{"duplicate string", "name: E\ntype: int\nmethods: [{kind: from-string, name: F}]\nvalues: [{name: A, string: x}, {name: B, string: x}]\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var e Enum
			require.NoError(t, yaml.Unmarshal([]byte(test.yaml), &e))
			assert.Error(t, e.check())
		})
	}

	var e Enum
	require.NoError(t, yaml.Unmarshal([]byte("name: E\ntype: int\nmethods: [{kind: from-string, name: F, skip: [B]}]\nvalues: [{name: A, string: x}, {name: B, string: x}]\n"), &e))
	assert.NoError(t, e.check())
}
