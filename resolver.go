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
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bufbuild/jsast/ast"
)

// Resolver is used by a Loader to locate the inputs named on its command
// line.
type Resolver interface {
	FindFileByPath(string) (SearchResult, error)
}

// SearchResult is what a Resolver produces for a path. Only one of its
// fields should be set; if both are, Node wins and Source is only closed.
type SearchResult struct {
	// ESTree JSON, or YAML holding an ESTree document when the path ends in
	// .yaml or .yml. If it implements io.Closer, the Loader closes it.
	Source io.Reader
	// An already-decoded tree. It is validated but otherwise used as-is.
	Node ast.Node
}

// ResolverFunc is a simple function type that implements Resolver.
type ResolverFunc func(string) (SearchResult, error)

var _ Resolver = ResolverFunc(nil)

// FindFileByPath implements Resolver.
func (f ResolverFunc) FindFileByPath(path string) (SearchResult, error) {
	return f(path)
}

// CompositeResolver is a slice of resolvers, consulted in order. The first
// one that succeeds wins; if none do, the first error is returned.
type CompositeResolver []Resolver

var _ Resolver = CompositeResolver(nil)

// FindFileByPath implements Resolver.
func (f CompositeResolver) FindFileByPath(path string) (SearchResult, error) {
	if len(f) == 0 {
		return SearchResult{}, fs.ErrNotExist
	}
	var firstErr error
	for _, res := range f {
		r, err := res.FindFileByPath(path)
		if err == nil {
			return r, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return SearchResult{}, firstErr
}

// SourceResolver loads source from the file system, or from whatever Accessor
// is configured.
type SourceResolver struct {
	// Directories searched, in order, for relative paths. If empty, paths
	// are used as given.
	SearchPaths []string
	// Opens a path. If nil, os.Open is used.
	Accessor func(string) (io.ReadCloser, error)
}

var _ Resolver = (*SourceResolver)(nil)

// FindFileByPath implements Resolver.
func (r *SourceResolver) FindFileByPath(path string) (SearchResult, error) {
	if len(r.SearchPaths) == 0 || filepath.IsAbs(path) {
		reader, err := r.open(path)
		if err != nil {
			return SearchResult{}, err
		}
		return SearchResult{Source: reader}, nil
	}

	var e error
	for _, dir := range r.SearchPaths {
		reader, err := r.open(filepath.Join(dir, path))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				e = err
				continue
			}
			return SearchResult{}, err
		}
		return SearchResult{Source: reader}, nil
	}
	return SearchResult{}, e
}

func (r *SourceResolver) open(path string) (io.ReadCloser, error) {
	if r.Accessor == nil {
		return os.Open(path)
	}
	return r.Accessor(path)
}

// StdinPath is the path that [ReaderResolver] answers for.
const StdinPath = "-"

// ReaderResolver resolves [StdinPath] to the given reader, typically
// os.Stdin. Every other path is reported as not existing. The reader is
// not closed.
func ReaderResolver(r io.Reader) Resolver {
	return ResolverFunc(func(path string) (SearchResult, error) {
		if path != StdinPath {
			return SearchResult{}, fs.ErrNotExist
		}
		return SearchResult{Source: io.NopCloser(r)}, nil
	})
}
