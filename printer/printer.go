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

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/bufbuild/jsast/ast"
)

// Print renders node as JavaScript source text.
//
// node is validated with [ast.Validate] first; a tree that violates the
// node model's contracts produces an error and no output. A [*ast.Program]
// renders as a script. Any other node renders as the source text of that
// node alone.
func Print(node ast.Node, opts Options) (string, error) {
	out, err := render(node, opts.withDefaults())
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Fprint renders node like [Print] and writes the result to w in chunks of
// at most opts.ChunkSize bytes.
//
// ctx is checked before every write, so a slow writer can be abandoned
// between chunks. If w has a Flush() error method, it is called once all
// output has been written. Nothing is written if node fails validation.
func Fprint(ctx context.Context, w io.Writer, node ast.Node, opts Options) error {
	opts = opts.withDefaults()
	out, err := render(node, opts)
	if err != nil {
		return err
	}

	for len(out) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		n := min(len(out), opts.ChunkSize)
		if _, err := w.Write(out[:n]); err != nil {
			return err
		}
		out = out[n:]
	}

	if f, ok := w.(interface{ Flush() error }); ok {
		if err := ctx.Err(); err != nil {
			return err
		}
		return f.Flush()
	}
	return nil
}

func render(node ast.Node, opts Options) ([]byte, error) {
	if err := ast.Validate(node); err != nil {
		return nil, err
	}
	p := &printer{opts: opts}
	p.printRoot(node)
	return p.out, nil
}

// printer is a single printing session. It is not safe for concurrent use.
type printer struct {
	opts  Options
	out   []byte
	depth int
}

func (p *printer) printRoot(node ast.Node) {
	switch n := node.(type) {
	case *ast.Program:
		p.printStatements(n.Body)
	case ast.Statement:
		p.printStatement(n)
	case ast.Expression:
		p.printExpr(n, 0)
	case *ast.Property:
		p.printProperty(n)
	case *ast.SwitchCase:
		p.printCase(n)
	case *ast.CatchClause:
		p.printCatch(n)
	case *ast.VariableDeclarator:
		p.printDeclarator(n)
	default:
		// Validate rejects every other node type.
		panic(fmt.Sprintf("printer: unexpected %T", node))
	}
}

// print appends a token, separating it from the previous one with a space
// if the two would otherwise run together.
func (p *printer) print(text string) {
	if text == "" {
		return
	}
	if p.needsSpace(text) {
		p.out = append(p.out, ' ')
	}
	p.out = append(p.out, text...)
}

func (p *printer) needsSpace(next string) bool {
	if len(p.out) == 0 {
		return false
	}
	last := p.out[len(p.out)-1]
	switch {
	case isIdentByte(last) && isIdentByte(next[0]):
		return true
	case (last == '+' || last == '-' || last == '/') && next[0] == last:
		// a+ +b, a- -b, a/ /re/.
		return true
	case last == '!' && strings.HasPrefix(next, "--") && bytes.HasSuffix(p.out, []byte("<!")):
		// <!-- opens an HTML comment in scripts.
		return true
	default:
		return false
	}
}

func isIdentByte(b byte) bool {
	return b == '_' || b == '$' || b == '\\' || b >= 0x80 ||
		('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') || ('0' <= b && b <= '9')
}

// keyword prints an operator keyword such as in or instanceof, which is
// always surrounded by spaces.
func (p *printer) keyword(text string) {
	p.out = append(p.out, ' ')
	p.out = append(p.out, text...)
	p.out = append(p.out, ' ')
}

// space prints a space in pretty mode.
func (p *printer) space() {
	if !p.opts.Minify {
		p.out = append(p.out, ' ')
	}
}

// newline ends the current line in pretty mode.
func (p *printer) newline() {
	if !p.opts.Minify {
		p.out = append(p.out, '\n')
	}
}

// indent prints the indentation for the current depth in pretty mode.
func (p *printer) indent() {
	if p.opts.Minify {
		return
	}
	for range p.depth {
		p.out = append(p.out, p.opts.Indent...)
	}
}

// comma prints a list separator.
func (p *printer) comma() {
	p.print(",")
	p.space()
}
