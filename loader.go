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

package jsast

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/sync/semaphore"
	"gopkg.in/yaml.v3"

	"github.com/bufbuild/jsast/ast"
	"github.com/bufbuild/jsast/estree"
	"github.com/bufbuild/jsast/reporter"
)

// Loader turns named inputs into validated trees. Inputs are located with a
// Resolver, then decoded from ESTree JSON (or YAML), in parallel.
type Loader struct {
	// Locates inputs. This field is required.
	Resolver Resolver
	// The maximum number of inputs decoded at once. If non-positive,
	// min(runtime.NumCPU(), runtime.GOMAXPROCS(-1)) is used.
	MaxParallelism int
	// Called for each input that fails. If nil, the first failure aborts
	// the load. If it returns nil, loading continues with the other inputs.
	Reporter reporter.ErrorReporter
}

// File is a loaded input.
type File struct {
	Path string
	// Nil if the input failed and the reporter chose to continue.
	Node ast.Node
}

// Load loads the given paths, returning one File per path in the same order.
// A path named more than once is only loaded once.
//
// If the reporter swallowed some errors, the files that did load are
// returned along with [reporter.ErrInvalidInput]. If the reporter returned
// an error, that error is returned with no files.
func (l *Loader) Load(ctx context.Context, paths ...string) ([]File, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	par := l.MaxParallelism
	if par <= 0 {
		par = min(runtime.GOMAXPROCS(-1), runtime.NumCPU())
	}

	e := executor{
		l:       l,
		h:       reporter.NewHandler(l.Reporter),
		s:       semaphore.NewWeighted(int64(par)),
		cancel:  cancel,
		results: map[string]*result{},
	}

	results := make([]*result, len(paths))
	for i, path := range paths {
		results[i] = e.load(ctx, path)
	}

	files := make([]File, len(paths))
	for i, r := range results {
		select {
		case <-r.ready:
		case <-ctx.Done():
			if err := e.h.ReporterError(); err != nil {
				return nil, err
			}
			return nil, ctx.Err()
		}
		files[i] = File{Path: paths[i], Node: r.node}
	}
	if err := e.h.Error(); err != nil {
		if e.h.ReporterError() != nil {
			return nil, err
		}
		return files, err
	}
	return files, nil
}

type result struct {
	ready chan struct{}
	node  ast.Node
}

type executor struct {
	l      *Loader
	h      *reporter.Handler
	s      *semaphore.Weighted
	cancel context.CancelFunc

	mu      sync.Mutex
	results map[string]*result
}

func (e *executor) load(ctx context.Context, path string) *result {
	e.mu.Lock()
	defer e.mu.Unlock()
	r := e.results[path]
	if r != nil {
		return r
	}

	r = &result{ready: make(chan struct{})}
	e.results[path] = r
	go func() {
		defer close(r.ready)
		node, err := e.doLoad(ctx, path)
		if err != nil {
			if err := e.h.HandleError(fmt.Errorf("%s: %w", path, err)); err != nil {
				e.cancel()
			}
			return
		}
		r.node = node
	}()
	return r
}

func (e *executor) doLoad(ctx context.Context, path string) (ast.Node, error) {
	if err := e.s.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer e.s.Release(1)

	sr, err := e.l.Resolver.FindFileByPath(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if c, ok := sr.Source.(io.Closer); ok {
			_ = c.Close()
		}
	}()

	node := sr.Node
	if ast.IsNil(node) {
		if sr.Source == nil {
			return nil, errors.New("resolver returned no source")
		}
		node, err = decode(path, sr.Source)
		if err != nil {
			return nil, err
		}
	}
	if err := ast.Validate(node); err != nil {
		return nil, err
	}
	return node, nil
}

// decode reads a single ESTree document. YAML is accepted for paths ending
// in .yaml or .yml.
func decode(path string, r io.Reader) (ast.Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, reporter.Error(reporter.Root, fmt.Errorf("%w: invalid YAML: %w", reporter.ErrShapeViolation, err))
		}
		return estree.Decode(v)
	default:
		return estree.Unmarshal(data)
	}
}
