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

package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const varProgram = `{"type":"Program","body":[{"type":"VariableDeclaration","kind":"var","declarations":[` +
	`{"type":"VariableDeclarator","id":{"type":"Identifier","name":"x"},"init":{"type":"Literal","value":1}}]}]}`

type result struct {
	code   int
	stdout string
	stderr string
}

func run(t *testing.T, stdin string, environ map[string]string, args ...string) result {
	t.Helper()
	if environ == nil {
		environ = map[string]string{}
	}
	var stdout, stderr bytes.Buffer
	code := Main(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr, environ)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func writeInputs(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, text := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(text), 0o600))
	}
	return dir
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig(map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, Config{LogLevel: "info"}, cfg)

	cfg, err = LoadConfig(map[string]string{
		"JSAST_LOG_LEVEL": "debug",
		"JSAST_INDENT":    "\t",
		"JSAST_MINIFY":    "true",
		"JSAST_JOBS":      "3",
	})
	require.NoError(t, err)
	assert.Equal(t, Config{LogLevel: "debug", Indent: "\t", Minify: true, Jobs: 3}, cfg)

	_, err = LoadConfig(map[string]string{"JSAST_JOBS": "many"})
	require.Error(t, err)
	_, err = LoadConfig(map[string]string{"JSAST_JOBS": "-1"})
	require.Error(t, err)
}

func TestPrint(t *testing.T) {
	t.Parallel()

	dir := writeInputs(t, map[string]string{"a.json": varProgram})
	path := filepath.Join(dir, "a.json")

	res := run(t, "", nil, "print", path)
	assert.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "var x = 1;\n", res.stdout)

	res = run(t, "", nil, "print", "--minify", path, path)
	assert.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "var x=1;\nvar x=1;\n", res.stdout)

	res = run(t, "", map[string]string{"JSAST_MINIFY": "true"}, "print", path)
	assert.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "var x=1;\n", res.stdout)

	res = run(t, varProgram, nil, "print", "-")
	assert.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "var x = 1;\n", res.stdout)
}

func TestPrintYAML(t *testing.T) {
	t.Parallel()

	dir := writeInputs(t, map[string]string{"f.yaml": `
type: Program
body:
  - type: IfStatement
    test: {type: Identifier, name: a}
    consequent:
      type: ExpressionStatement
      expression:
        type: CallExpression
        callee: {type: Identifier, name: f}
        arguments: []
`})
	res := run(t, "", map[string]string{"JSAST_INDENT": "\t"}, "print", filepath.Join(dir, "f.yaml"))
	assert.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "if (a)\n\tf();\n", res.stdout)
}

func TestPrintOutDir(t *testing.T) {
	t.Parallel()

	dir := writeInputs(t, map[string]string{"a.json": varProgram, "b.json": varProgram})
	out := filepath.Join(t.TempDir(), "out")

	res := run(t, "", nil, "print", "-m", "-o", out, filepath.Join(dir, "a.json"), filepath.Join(dir, "b.json"))
	require.Equal(t, 0, res.code, res.stderr)
	assert.Empty(t, res.stdout)
	assert.Contains(t, res.stderr, "wrote output")
	for _, name := range []string{"a.js", "b.js"} {
		data, err := os.ReadFile(filepath.Join(out, name))
		require.NoError(t, err)
		assert.Equal(t, "var x=1;", string(data))
	}

	other := writeInputs(t, map[string]string{"a.json": varProgram})
	res = run(t, "", nil, "print", "-o", out, filepath.Join(dir, "a.json"), filepath.Join(other, "a.json"))
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "would both be written to a.js")
}

func TestPrintErrors(t *testing.T) {
	t.Parallel()

	dir := writeInputs(t, map[string]string{
		"a.json":   varProgram,
		"bad.json": `{"type":"Program","body":[{"type":"Nope"}]}`,
	})
	good, bad := filepath.Join(dir, "a.json"), filepath.Join(dir, "bad.json")

	res := run(t, "", nil, "print", bad, good)
	assert.Equal(t, 1, res.code)
	assert.Empty(t, res.stdout)
	assert.Contains(t, res.stderr, "error: ")
	assert.Contains(t, res.stderr, `unknown node type "Nope"`)

	res = run(t, "", nil, "print", "--keep-going", bad, filepath.Join(dir, "missing.json"), good)
	assert.Equal(t, 1, res.code)
	assert.Equal(t, "var x = 1;\n", res.stdout)
	assert.Contains(t, res.stderr, `unknown node type "Nope"`)
	assert.Contains(t, res.stderr, "missing.json")
	assert.Contains(t, res.stderr, "one or more inputs could not be processed")

	res = run(t, "", nil, "print")
	assert.Equal(t, 1, res.code)

	res = run(t, "", map[string]string{"JSAST_LOG_LEVEL": "loud"}, "print", good)
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, `unrecognized log level "loud"`)
}

func TestJSON(t *testing.T) {
	t.Parallel()

	dir := writeInputs(t, map[string]string{"a.json": varProgram})
	path := filepath.Join(dir, "a.json")

	res := run(t, "", nil, "json", "--raw", path)
	assert.Equal(t, 0, res.code, res.stderr)
	assert.True(t, strings.HasSuffix(res.stdout, "}\n"))
	assert.JSONEq(t, `{"type":"Program","sourceType":"script","body":[{"type":"VariableDeclaration","declarations":[`+
		`{"type":"VariableDeclarator","id":{"type":"Identifier","name":"x"},"init":{"type":"Literal","value":1}}],"kind":"var"}]}`,
		res.stdout)

	res = run(t, "", nil, "json", path)
	assert.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, `"VariableDeclarator"`)
	assert.Greater(t, strings.Count(res.stdout, "\n"), 1)
}

func TestStats(t *testing.T) {
	t.Parallel()

	dir := writeInputs(t, map[string]string{"a.json": varProgram})
	path := filepath.Join(dir, "a.json")

	res := run(t, "", nil, "stats", "-j", "2", path, path)
	assert.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, ""+
		"Identifier           1\n"+
		"Literal              1\n"+
		"Program              1\n"+
		"VariableDeclaration  1\n"+
		"VariableDeclarator   1\n"+
		"total                5\n",
		res.stdout)
}

func TestVersion(t *testing.T) {
	t.Parallel()

	res := run(t, "", nil, "version")
	assert.Equal(t, 0, res.code, res.stderr)
	assert.True(t, strings.HasPrefix(res.stdout, "jsast "))
}
