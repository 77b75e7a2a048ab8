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

// Package cli implements the jsast command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bufbuild/jsast"
	"github.com/bufbuild/jsast/reporter"
)

// Version is reported by the version command. Release builds set it with
// -ldflags "-X github.com/bufbuild/jsast/internal/cli.Version=...".
var Version = "devel"

type app struct {
	cfg       Config
	logger    *slog.Logger
	logLevel  string
	jobs      int
	keepGoing bool
}

// NewRootCmd returns the jsast root command. Flag defaults come from cfg.
func NewRootCmd(cfg Config) *cobra.Command {
	a := &app{cfg: cfg}
	root := &cobra.Command{
		Use:           "jsast",
		Short:         "Convert between ESTree JSON and JavaScript source",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), a.logLevel)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
	}

	root.PersistentFlags().StringVar(
		&a.logLevel,
		"log-level",
		cfg.LogLevel,
		"log level: debug, info, warn or error",
	)
	root.PersistentFlags().IntVarP(
		&a.jobs,
		"jobs",
		"j",
		cfg.Jobs,
		"maximum number of files processed at once; 0 means one per CPU",
	)
	root.PersistentFlags().BoolVarP(
		&a.keepGoing,
		"keep-going",
		"k",
		false,
		"report every bad input instead of stopping at the first",
	)

	root.AddCommand(a.newPrintCmd())
	root.AddCommand(a.newJSONCmd())
	root.AddCommand(a.newStatsCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// Main runs the command line with the given arguments and streams, and
// returns the process exit code.
func Main(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, environ map[string]string) int {
	cfg, err := LoadConfig(environ)
	if err != nil {
		logError(stderr, err)
		return 1
	}

	root := NewRootCmd(cfg)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		logError(stderr, err)
		return 1
	}
	return 0
}

func (a *app) parallelism() int {
	if a.jobs > 0 {
		return a.jobs
	}
	return min(runtime.GOMAXPROCS(-1), runtime.NumCPU())
}

// load loads the named inputs. With --keep-going, bad inputs are logged and
// left out; the returned error is then [reporter.ErrInvalidInput], and the
// caller should finish its work before returning it.
func (a *app) load(cmd *cobra.Command, paths []string) ([]jsast.File, error) {
	stdin := jsast.ReaderResolver(cmd.InOrStdin())
	files := &jsast.SourceResolver{}
	loader := jsast.Loader{
		Resolver: jsast.ResolverFunc(func(path string) (jsast.SearchResult, error) {
			if path == jsast.StdinPath {
				return stdin.FindFileByPath(path)
			}
			return files.FindFileByPath(path)
		}),
		MaxParallelism: a.jobs,
	}
	if a.keepGoing {
		loader.Reporter = func(err error) error {
			logError(cmd.ErrOrStderr(), err)
			return nil
		}
	}

	start := time.Now()
	loaded, err := loader.Load(cmd.Context(), paths...)
	a.logger.Debug("loaded inputs",
		slog.Int("count", len(paths)),
		slog.Duration("duration", time.Since(start)),
	)
	if err != nil && !errors.Is(err, reporter.ErrInvalidInput) {
		return nil, err
	}
	return loaded, err
}

// renderAll calls render for every loaded file, running up to --jobs at
// once, and returns the results in input order. Files that failed to load
// have a nil result.
func (a *app) renderAll(ctx context.Context, files []jsast.File, render func(jsast.File) ([]byte, error)) ([][]byte, error) {
	out := make([][]byte, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.parallelism())
	for i, f := range files {
		if f.Node == nil {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			b, err := render(f)
			if err != nil {
				return fmt.Errorf("%s: %w", f.Path, err)
			}
			out[i] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func writeAll(w io.Writer, chunks [][]byte) error {
	for _, chunk := range chunks {
		if _, err := w.Write(chunk); err != nil {
			return err
		}
	}
	return nil
}

func logError(w io.Writer, err error) {
	boldRed := color.New(color.FgRed, color.Bold)
	_, _ = boldRed.Fprint(w, "error: ")
	_, _ = fmt.Fprintln(w, color.RedString(err.Error()))
}
