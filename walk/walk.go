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

// Package walk provides helper functions for traversing every node in an
// [ast] tree.
package walk

import (
	"errors"
	"iter"

	"github.com/bufbuild/jsast/ast"
	"github.com/bufbuild/jsast/reporter"
)

// SkipChildren may be returned by an enter function to skip the children of
// the node it was called for. The node's exit function is still called.
var SkipChildren = errors.New("skip children")

// Nodes calls fn for root and every node beneath it, in depth-first
// pre-order. Traversal stops at the first error fn returns.
func Nodes(root ast.Node, fn func(ast.Node) error) error {
	return NodesEnterAndExit(root, fn, nil)
}

// NodesEnterAndExit is like [Nodes], but also calls exit for each node once
// all of its children have been visited. exit may be nil.
func NodesEnterAndExit(root ast.Node, enter, exit func(ast.Node) error) error {
	w := &walker{
		enter: func(_ reporter.Path, n ast.Node) error { return enter(n) },
	}
	if exit != nil {
		w.exit = func(_ reporter.Path, n ast.Node) error { return exit(n) }
	}
	return w.walk(reporter.Root, root)
}

// NodesWithPath is like [Nodes], but also passes the path of each node
// relative to root, in the same form used by errors from [ast.Validate] and
// the estree package.
func NodesWithPath(root ast.Node, fn func(reporter.Path, ast.Node) error) error {
	return NodesWithPathEnterAndExit(root, fn, nil)
}

// NodesWithPathEnterAndExit is like [NodesEnterAndExit], but also passes the
// path of each node.
func NodesWithPathEnterAndExit(root ast.Node, enter, exit func(reporter.Path, ast.Node) error) error {
	w := &walker{enter: enter, exit: exit}
	return w.walk(reporter.Root, root)
}

// All returns an iterator over root and every node beneath it, with their
// paths, in depth-first pre-order.
func All(root ast.Node) iter.Seq2[reporter.Path, ast.Node] {
	return func(yield func(reporter.Path, ast.Node) bool) {
		stop := errors.New("stop")
		_ = NodesWithPath(root, func(path reporter.Path, n ast.Node) error {
			if !yield(path, n) {
				return stop
			}
			return nil
		})
	}
}

type walker struct {
	enter, exit func(reporter.Path, ast.Node) error
}

func (w *walker) walk(path reporter.Path, n ast.Node) error {
	if ast.IsNil(n) {
		return nil
	}

	err := w.enter(path, n)
	switch {
	case errors.Is(err, SkipChildren):
	case err != nil:
		return err
	default:
		for edge, child := range ast.Children(n) {
			p := path.Field(edge.Field)
			if edge.Index >= 0 {
				p = p.Index(edge.Index)
			}
			if err := w.walk(p, child); err != nil {
				return err
			}
		}
	}

	if w.exit != nil {
		return w.exit(path, n)
	}
	return nil
}
