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
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bufbuild/jsast"
	"github.com/bufbuild/jsast/printer"
)

func (a *app) newPrintCmd() *cobra.Command {
	opts := printer.Options{
		Minify: a.cfg.Minify,
		Indent: a.cfg.Indent,
	}
	var outDir string

	cmd := &cobra.Command{
		Use:   "print [flags] files...",
		Short: "Print ESTree documents as JavaScript source",
		Long: `Reads ESTree JSON (or YAML, for .yaml and .yml files) and prints the
JavaScript it describes. Use - to read standard input.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, loadErr := a.load(cmd, args)
			if files == nil {
				return loadErr
			}
			if outDir != "" {
				if err := a.writeFiles(cmd.Context(), outDir, files, opts); err != nil {
					return err
				}
				return loadErr
			}

			out, err := a.renderAll(cmd.Context(), files, func(f jsast.File) ([]byte, error) {
				text, err := printer.Print(f.Node, opts)
				if err != nil {
					return nil, err
				}
				if text != "" && !strings.HasSuffix(text, "\n") {
					text += "\n"
				}
				return []byte(text), nil
			})
			if err != nil {
				return err
			}
			if err := writeAll(cmd.OutOrStdout(), out); err != nil {
				return err
			}
			return loadErr
		},
	}

	cmd.Flags().BoolVarP(&opts.Minify, "minify", "m", opts.Minify, "print without optional whitespace and with shorter forms")
	cmd.Flags().StringVar(&opts.Indent, "indent", opts.Indent, "indentation unit for pretty output (default two spaces)")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "write one .js file per input into this directory instead of standard output")
	return cmd
}

// outputName returns the name of the file written for an input: its base
// name with the extension replaced by .js.
func outputName(path string) string {
	if path == jsast.StdinPath {
		return "stdin.js"
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".js"
}

func (a *app) writeFiles(ctx context.Context, dir string, files []jsast.File, opts printer.Options) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	outputs := map[string]string{}
	var todo []jsast.File
	for _, f := range files {
		if f.Node == nil {
			continue
		}
		name := outputName(f.Path)
		if prev, ok := outputs[name]; ok {
			if prev == f.Path {
				continue
			}
			return fmt.Errorf("%s and %s would both be written to %s", prev, f.Path, name)
		}
		outputs[name] = f.Path
		todo = append(todo, f)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.parallelism())
	for _, f := range todo {
		out := filepath.Join(dir, outputName(f.Path))
		g.Go(func() error {
			if err := writeFile(ctx, out, f, opts); err != nil {
				return fmt.Errorf("%s: %w", f.Path, err)
			}
			a.logger.Info("wrote output", slog.String("input", f.Path), slog.String("output", out))
			return nil
		})
	}
	return g.Wait()
}

func writeFile(ctx context.Context, path string, f jsast.File, opts printer.Options) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
	}()
	return printer.Fprint(ctx, bufio.NewWriter(file), f.Node, opts)
}
