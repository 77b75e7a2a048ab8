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

// Package reporter contains the error taxonomy shared by the ESTree codec and
// the source printer, along with types for collecting errors across many
// independent operations.
package reporter

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors identifying each failure class. Every error produced by
// this module wraps exactly one of them; test for them with [errors.Is].
var (
	// ErrShapeViolation is returned when JSON input is missing a required
	// field, has a field of the wrong JSON kind, or has a null element in a
	// list that does not permit holes.
	ErrShapeViolation = errors.New("shape violation")

	// ErrUnknownDiscriminator is returned for an unrecognized node type,
	// operator string, or regular expression flag.
	ErrUnknownDiscriminator = errors.New("unknown discriminator")

	// ErrContractViolation is returned when a tree is missing a required
	// node, or otherwise breaks an invariant of the node model.
	ErrContractViolation = errors.New("contract violation")

	// ErrUnsupported is returned for well-formed input that names a feature
	// this module does not implement.
	ErrUnsupported = errors.New("unsupported")
)

// Path is a JSONPath-like location inside a tree, such as
// "$.body[0].expression.left".
type Path string

// Root is the path of the tree root.
const Root Path = "$"

// Field returns the path of the named field of the value at p.
func (p Path) Field(name string) Path {
	if p == "" {
		p = Root
	}
	return p + "." + Path(name)
}

// Index returns the path of the i-th element of the list at p.
func (p Path) Index(i int) Path {
	if p == "" {
		p = Root
	}
	return p + "[" + Path(strconv.Itoa(i)) + "]"
}

// String implements [fmt.Stringer].
func (p Path) String() string {
	return string(p)
}

// ErrorWithPath is an error about a specific location in a tree.
//
// The value of Error() will contain both the path and the underlying error.
// The value of Unwrap() will only be the underlying error, which in turn
// wraps one of the sentinel errors in this package.
type ErrorWithPath interface {
	error
	Path() Path
	Unwrap() error
}

// Error wraps err with a location.
func Error(path Path, err error) ErrorWithPath {
	return errorWithPath{path: path, underlying: err}
}

// Errorf creates an error of the given class at path. kind should be one of
// the sentinel errors in this package.
func Errorf(path Path, kind error, format string, args ...any) ErrorWithPath {
	return errorWithPath{
		path:       path,
		underlying: fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...)),
	}
}

// errorWithPath is the only implementation of [ErrorWithPath].
//
// path may be empty, which means that the location is not known.
type errorWithPath struct {
	underlying error
	path       Path
}

func (e errorWithPath) Error() string {
	if e.path == "" {
		return e.underlying.Error()
	}
	return fmt.Sprintf("%s: %v", e.path, e.underlying)
}

// Path implements the ErrorWithPath interface.
func (e errorWithPath) Path() Path {
	return e.path
}

// Unwrap implements the ErrorWithPath interface.
func (e errorWithPath) Unwrap() error {
	return e.underlying
}

var _ ErrorWithPath = errorWithPath{}
