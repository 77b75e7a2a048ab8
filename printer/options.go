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

package printer

// Options controls the output of the printer.
type Options struct {
	// Minify removes all optional whitespace, collapses single-statement
	// blocks, and folds if/else statements over two expressions into a
	// conditional expression.
	Minify bool

	// Indent is the string used for each level of indentation. Ignored when
	// minifying. Defaults to two spaces if empty.
	Indent string

	// ChunkSize is the largest write [Fprint] will issue to its writer.
	// Defaults to 4096 if not positive.
	ChunkSize int
}

// withDefaults returns a copy of opts with default values applied.
func (opts Options) withDefaults() Options {
	if opts.Indent == "" {
		opts.Indent = "  "
	}
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = 4096
	}
	return opts
}
