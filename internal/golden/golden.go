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

// Package golden runs table-driven tests whose table lives on disk: each test
// case is an input file, and each expected output is a sibling file named
// after it.
package golden

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fatih/color"
	"github.com/pmezard/go-difflib/difflib"
)

// Corpus describes a directory of golden test cases.
type Corpus struct {
	// Root is the test data directory, relative to the file that calls
	// [Corpus.Run].
	Root string

	// Refresh names an environment variable holding a glob. Test cases whose
	// paths match it have their output files rewritten instead of compared.
	Refresh string

	// Extensions lists the file extensions (without a dot) of files that
	// define a test case.
	Extensions []string

	// Outputs lists the outputs each test case produces. For a test case
	// foo.yaml and an output with extension "js", the expected output is
	// read from foo.yaml.js. A missing file is treated as empty.
	Outputs []Output
}

// Output is one output of a test case.
type Output struct {
	// Extension is appended, after a dot, to the test case's file name to
	// find the expected output.
	Extension string

	// Compare compares outputs. If nil, outputs are compared byte for byte
	// and a unified diff is reported on mismatch.
	Compare Compare
}

// Compare compares a produced output with the expected one, returning an
// empty string if they match and a description of the mismatch otherwise.
type Compare func(got, want string) string

// Run runs test once per test case in the corpus, each as a subtest.
//
// test receives the case's path relative to the calling file, its contents,
// and a slice with one element per output, which it must fill in.
func (c Corpus) Run(t *testing.T, test func(t *testing.T, path, text string, outputs []string)) {
	t.Helper()

	testDir := callerDir(0)
	root := filepath.Join(testDir, c.Root)
	t.Logf("golden: searching for files in %q", root)

	var cases []string
	for _, ext := range c.Extensions {
		matches, err := doublestar.Glob(os.DirFS(root), "**/*."+ext)
		if err != nil {
			t.Fatalf("golden: error while searching %q: %v", root, err)
		}
		for _, m := range matches {
			cases = append(cases, filepath.Join(root, filepath.FromSlash(m)))
		}
	}
	slices.Sort(cases)

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if refresh != "" && !doublestar.ValidatePattern(refresh) {
			t.Fatalf("golden: invalid glob in %s: %q", c.Refresh, refresh)
		}
	}
	if refresh != "" {
		t.Logf("golden: refreshing test data because %s=%s", c.Refresh, refresh)
	}

	for _, path := range cases {
		name, _ := filepath.Rel(testDir, path)
		t.Run(filepath.ToSlash(name), func(t *testing.T) {
			t.Parallel()

			input, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("golden: error while loading input file %q: %v", path, err)
			}

			results := make([]string, len(c.Outputs))
			test(t, name, string(input), results)

			rewrite, _ := doublestar.Match(refresh, filepath.ToSlash(name))
			for i, output := range c.Outputs {
				path := fmt.Sprint(path, ".", output.Extension)
				if rewrite {
					if err := write(path, results[i]); err != nil {
						t.Errorf("golden: %v", err)
					}
					continue
				}

				want, err := os.ReadFile(path)
				if err != nil && !errors.Is(err, fs.ErrNotExist) {
					t.Errorf("golden: error while loading output file %q: %v", path, err)
					continue
				}

				compare := output.Compare
				if compare == nil {
					compare = Diff
				}
				if diff := compare(results[i], string(want)); diff != "" {
					t.Errorf("output mismatch for %q:\n%s", path, diff)
				}
			}
		})
	}
}

// write replaces the output file at path, deleting it if output is empty.
func write(path, output string) error {
	if output == "" {
		err := os.Remove(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("error while deleting output file %q: %w", path, err)
		}
		return nil
	}
	if err := os.WriteFile(path, []byte(output), 0o644); err != nil {
		return fmt.Errorf("error while writing output file %q: %w", path, err)
	}
	return nil
}

// Diff is the default [Compare]: a colorized unified diff.
func Diff(got, want string) string {
	if got == want {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}

	added := color.New(color.Bold, color.FgHiGreen)
	removed := color.New(color.Bold, color.FgHiRed)
	lines := strings.Split(diff, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+"):
			lines[i] = added.Sprint(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = removed.Sprint(line)
		}
	}
	return strings.Join(lines, "\n")
}

func callerDir(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 2)
	if !ok {
		panic("golden: could not determine test file's directory")
	}
	return filepath.Dir(file)
}
