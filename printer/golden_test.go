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

package printer_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bufbuild/jsast/estree"
	"github.com/bufbuild/jsast/internal/golden"
	"github.com/bufbuild/jsast/printer"
)

// TestGolden prints each ESTree tree in testdata in both modes.
//
// Set JSAST_REFRESH to a glob such as "**" to rewrite the expected outputs.
func TestGolden(t *testing.T) {
	t.Parallel()

	corpus := golden.Corpus{
		Root:       "testdata",
		Refresh:    "JSAST_REFRESH",
		Extensions: []string{"yaml"},
		Outputs: []golden.Output{
			{Extension: "js"},
			{Extension: "min.js"},
		},
	}

	corpus.Run(t, func(t *testing.T, path, text string, outputs []string) {
		var tree any
		require.NoError(t, yaml.Unmarshal([]byte(text), &tree), "parsing %s", path)
		node, err := estree.Decode(tree)
		require.NoError(t, err)

		outputs[0], err = printer.Print(node, printer.Options{})
		require.NoError(t, err)
		outputs[1], err = printer.Print(node, printer.Options{Minify: true})
		require.NoError(t, err)
	})
}
