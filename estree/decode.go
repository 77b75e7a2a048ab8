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

package estree

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/bufbuild/jsast/ast"
	"github.com/bufbuild/jsast/reporter"
)

// Reader reads a stream of ESTree JSON documents.
type Reader struct {
	dec *json.Decoder
}

// NewReader returns a Reader that reads whitespace-separated JSON documents
// from r.
func NewReader(r io.Reader) *Reader {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return &Reader{dec: dec}
}

// Read reads the next document.
//
// If into is not nil and has the same kind as the document's root, it is
// updated in place and returned, reusing child nodes wherever their kinds
// match. On error, into may have been partially updated.
//
// Returns [io.EOF] when there are no more documents.
func (r *Reader) Read(into ast.Node) (ast.Node, error) {
	var v any
	if err := r.dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, invalidJSON(err)
	}
	return DecodeInto(v, into)
}

// Unmarshal parses a single ESTree JSON document.
func Unmarshal(data []byte) (ast.Node, error) {
	return UnmarshalInto(data, nil)
}

// UnmarshalInto is like [Unmarshal], but updates into in place, as
// [Reader.Read] does.
func UnmarshalInto(data []byte, into ast.Node) (ast.Node, error) {
	r := NewReader(bytes.NewReader(data))
	var v any
	if err := r.dec.Decode(&v); err != nil {
		return nil, invalidJSON(err)
	}
	if _, err := r.dec.Token(); !errors.Is(err, io.EOF) {
		return nil, reporter.Errorf(reporter.Root, reporter.ErrShapeViolation, "unexpected data after top-level value")
	}
	return DecodeInto(v, into)
}

// Decode converts an already-parsed JSON value into a tree.
//
// v is made of map[string]any, []any, string, bool, nil, and numbers, which
// may be [json.Number], float64, float32 or any Go integer type. This is the
// shape produced by encoding/json and gopkg.in/yaml.v3 when decoding into an
// any.
func Decode(v any) (ast.Node, error) {
	return DecodeInto(v, nil)
}

// DecodeInto is like [Decode], but updates into in place, as [Reader.Read]
// does.
//
// The result satisfies [ast.Validate]; a document that the node model cannot
// represent, such as a try statement with an empty finalizer and no handler,
// is a shape violation.
func DecodeInto(v any, into ast.Node) (ast.Node, error) {
	n, err := decodeAs(reporter.Root, v, into, "node")
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, nil
	}
	if err := ast.Validate(n); err != nil {
		return nil, asShapeViolation(err)
	}
	return n, nil
}

// asShapeViolation reclassifies a contract violation found in a decoded tree.
func asShapeViolation(err error) error {
	var withPath reporter.ErrorWithPath
	if !errors.As(err, &withPath) {
		return reporter.Error(reporter.Root, fmt.Errorf("%w: %w", reporter.ErrShapeViolation, err))
	}
	msg := strings.TrimPrefix(withPath.Unwrap().Error(), reporter.ErrContractViolation.Error()+": ")
	return reporter.Errorf(withPath.Path(), reporter.ErrShapeViolation, "%s", msg)
}

func invalidJSON(err error) error {
	return reporter.Error(reporter.Root, fmt.Errorf("%w: invalid JSON: %w", reporter.ErrShapeViolation, err))
}

type readFunc func(o object, into ast.Node) (ast.Node, error)

// object is a JSON object being decoded, along with its location.
type object struct {
	path   reporter.Path
	fields map[string]any
	typ    string // The "type" field, if this is a node.
}

func shapef(path reporter.Path, format string, args ...any) error {
	return reporter.Errorf(path, reporter.ErrShapeViolation, format, args...)
}

// jsonKind names the JSON kind of a decoded value, for error messages.
func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float32, float64,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func asMap(path reporter.Path, v any) (object, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return object{}, shapef(path, "expected object, got %s", jsonKind(v))
	}
	return object{path: path, fields: m}, nil
}

func asNode(path reporter.Path, v any) (object, error) {
	o, err := asMap(path, v)
	if err != nil {
		return o, err
	}
	o.typ, err = o.str("type")
	return o, err
}

// peekNode returns v as a node object if it is one with the given type,
// without reporting errors.
func peekNode(path reporter.Path, v any, types ...string) (object, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return object{}, false
	}
	typ, ok := m["type"].(string)
	if !ok || !slices.Contains(types, typ) {
		return object{}, false
	}
	return object{path: path, fields: m, typ: typ}, true
}

// value returns a required field, which may be null.
func (o object) value(name string) (any, error) {
	v, ok := o.fields[name]
	if !ok {
		return nil, shapef(o.path.Field(name), "missing required field %q", name)
	}
	return v, nil
}

func (o object) str(name string) (string, error) {
	v, err := o.value(name)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", shapef(o.path.Field(name), "expected string, got %s", jsonKind(v))
	}
	return s, nil
}

func (o object) boolean(name string) (bool, error) {
	v, err := o.value(name)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, shapef(o.path.Field(name), "expected boolean, got %s", jsonKind(v))
	}
	return b, nil
}

// flag returns an optional boolean field; absent and null are false.
func (o object) flag(name string) (bool, error) {
	if v := o.fields[name]; v == nil {
		return false, nil
	}
	return o.boolean(name)
}

// unsupported reports an error if the named flag is set.
func (o object) unsupported(names ...string) error {
	for _, name := range names {
		set, err := o.flag(name)
		if err != nil {
			return err
		}
		if set {
			return reporter.Errorf(o.path.Field(name), reporter.ErrUnsupported, "%s with %s: true", o.typ, name)
		}
	}
	return nil
}

func (o object) list(name string) ([]any, error) {
	v, err := o.value(name)
	if err != nil {
		return nil, err
	}
	l, ok := v.([]any)
	if !ok {
		return nil, shapef(o.path.Field(name), "expected array, got %s", jsonKind(v))
	}
	return l, nil
}

// isNull returns whether the named field is absent or null.
func (o object) isNull(name string) bool {
	return o.fields[name] == nil
}

// reuse returns into if it has type P, or a new P otherwise.
func reuse[T any, P interface {
	*T
	ast.Node
}](into ast.Node) P {
	if n, ok := into.(P); ok && n != nil {
		return n
	}
	return P(new(T))
}

// decodeAs decodes v as a node of type T, reusing into if possible.
func decodeAs[T ast.Node](path reporter.Path, v any, into T, what string) (T, error) {
	var zero T
	o, err := asNode(path, v)
	if err != nil {
		return zero, err
	}
	read, ok := readers[o.typ]
	if !ok {
		return zero, reporter.Errorf(path.Field("type"), reporter.ErrUnknownDiscriminator, "unknown node type %q", o.typ)
	}
	var prev ast.Node
	if !ast.IsNil(into) {
		prev = into
	}
	n, err := read(o, prev)
	if err != nil {
		return zero, err
	}
	t, ok := n.(T)
	if !ok {
		return zero, shapef(path, "expected %s, got %s", what, o.typ)
	}
	return t, nil
}

// reconcile updates list to have n elements, produced by calling read with
// each index and the element previously at that index, if any.
func reconcile[T any](list []T, n int, read func(i int, prev T) (T, error)) ([]T, error) {
	for i := range n {
		var prev T
		if i < len(list) {
			prev = list[i]
		}
		elem, err := read(i, prev)
		if err != nil {
			return list, err
		}
		if i < len(list) {
			list[i] = elem
		} else {
			list = append(list, elem)
		}
	}
	clear(list[n:])
	return list[:n], nil
}

// nodeList decodes a required array field whose elements are all non-null
// nodes of type T.
func nodeList[T ast.Node](o object, name string, list []T, what string) ([]T, error) {
	values, err := o.list(name)
	if err != nil {
		return list, err
	}
	path := o.path.Field(name)
	return reconcile(list, len(values), func(i int, prev T) (T, error) {
		if values[i] == nil {
			var zero T
			return zero, shapef(path.Index(i), "null element in %s", name)
		}
		return decodeAs(path.Index(i), values[i], prev, what)
	})
}

func statementList(o object, name string, list []ast.Statement) ([]ast.Statement, error) {
	values, err := o.list(name)
	if err != nil {
		return list, err
	}
	path := o.path.Field(name)
	return reconcile(list, len(values), func(i int, prev ast.Statement) (ast.Statement, error) {
		if values[i] == nil {
			return nil, shapef(path.Index(i), "null element in %s", name)
		}
		return decodeStatement(path.Index(i), values[i], prev)
	})
}

// decodeStatement decodes a statement; EmptyStatement decodes as nil.
func decodeStatement(path reporter.Path, v any, prev ast.Statement) (ast.Statement, error) {
	if _, ok := peekNode(path, v, typeEmptyStatement); ok {
		return nil, nil
	}
	return decodeAs(path, v, prev, "statement")
}

func (o object) expr(name string, prev ast.Expression) (ast.Expression, error) {
	v, err := o.value(name)
	if err != nil {
		return nil, err
	}
	return decodeAs(o.path.Field(name), v, prev, "expression")
}

// optExpr decodes an optional expression field; absent and null are nil.
func (o object) optExpr(name string, prev ast.Expression) (ast.Expression, error) {
	if o.isNull(name) {
		return nil, nil
	}
	return o.expr(name, prev)
}

func (o object) stmt(name string, prev ast.Statement) (ast.Statement, error) {
	v, err := o.value(name)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, shapef(o.path.Field(name), "expected statement, got null")
	}
	return decodeStatement(o.path.Field(name), v, prev)
}

func (o object) ident(name string, prev *ast.Identifier) (*ast.Identifier, error) {
	v, err := o.value(name)
	if err != nil {
		return nil, err
	}
	return decodeAs(o.path.Field(name), v, prev, "Identifier")
}

func (o object) optIdent(name string, prev *ast.Identifier) (*ast.Identifier, error) {
	if o.isNull(name) {
		return nil, nil
	}
	return o.ident(name, prev)
}

func (o object) block(name string, prev *ast.BlockStatement) (*ast.BlockStatement, error) {
	v, err := o.value(name)
	if err != nil {
		return nil, err
	}
	return decodeAs(o.path.Field(name), v, prev, "BlockStatement")
}

// forInit decodes a for-loop initializer or for-in left side.
func (o object) forInit(name string, prev ast.ForInit) (ast.ForInit, error) {
	if o.isNull(name) {
		return ast.ForInit{}, nil
	}
	v, _ := o.value(name)
	var into ast.ForInitializer
	if p := prev.Value(); p != nil {
		into = p.(ast.ForInitializer)
	}
	n, err := decodeAs(o.path.Field(name), v, into, "expression or VariableDeclaration")
	if err != nil {
		return ast.ForInit{}, err
	}
	return ast.ForInitOf(n), nil
}

// number converts a decoded JSON number. Integers that fit in an int64 are
// returned as int64, everything else as float64.
func number(path reporter.Path, v any) (any, error) {
	switch v := v.(type) {
	case json.Number:
		// -0 is not an integer.
		if i, err := strconv.ParseInt(string(v), 10, 64); err == nil && v != "-0" {
			return i, nil
		}
		f, err := strconv.ParseFloat(string(v), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, shapef(path, "invalid number %q", string(v))
		}
		return f, nil
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case uint:
		return unsigned(uint64(v)), nil
	case uint8:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint64:
		return unsigned(v), nil
	default:
		return nil, shapef(path, "expected string, number, boolean or null, got %s", jsonKind(v))
	}
}

func unsigned(v uint64) any {
	if v > math.MaxInt64 {
		return float64(v)
	}
	return int64(v)
}
