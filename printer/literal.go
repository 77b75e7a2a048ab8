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
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/bufbuild/jsast/ast"
)

func (p *printer) printLiteral(lit *ast.Literal) {
	switch v := lit.Value.(type) {
	case nil:
		p.print("null")
	case bool:
		p.print(strconv.FormatBool(v))
	case string:
		p.print(quote(v))
	case ast.Regex:
		p.print(regex(v))
	default:
		p.print(formatNumber(v))
	}
}

// quote renders s as a single-quoted string literal.
func quote(s string) string {
	var out strings.Builder
	out.Grow(len(s) + 2)
	out.WriteByte('\'')
	for i := 0; i < len(s); {
		r, n := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && n == 1 {
			writeHex(&out, s[i])
			i++
			continue
		}

		switch r {
		case '\\':
			out.WriteString(`\\`)
		case '\'':
			out.WriteString(`\'`)
		case '\n':
			out.WriteString(`\n`)
		case '\r':
			out.WriteString(`\r`)
		case '\t':
			out.WriteString(`\t`)
		case '\b':
			out.WriteString(`\b`)
		case '\f':
			out.WriteString(`\f`)
		case '\v':
			out.WriteString(`\v`)
		case 0:
			// \0 followed by a digit would be read as an octal escape.
			if i+1 < len(s) && '0' <= s[i+1] && s[i+1] <= '9' {
				out.WriteString(`\x00`)
			} else {
				out.WriteString(`\0`)
			}
		case '\u2028':
			out.WriteString(`\u2028`)
		case '\u2029':
			out.WriteString(`\u2029`)
		default:
			if r < 0x20 || (0x7f <= r && r <= 0xff) {
				writeHex(&out, byte(r))
			} else {
				out.WriteString(s[i : i+n])
			}
		}
		i += n
	}
	out.WriteByte('\'')
	return out.String()
}

func writeHex(out *strings.Builder, b byte) {
	const digits = "0123456789ABCDEF"
	out.WriteString(`\x`)
	out.WriteByte(digits[b>>4])
	out.WriteByte(digits[b&0xf])
}

// regex renders a regular expression literal. Unescaped slashes and line
// terminators in the pattern are escaped.
func regex(re ast.Regex) string {
	if re.Pattern == "" {
		return "/(?:)/" + re.Flags.String()
	}

	var out strings.Builder
	out.WriteByte('/')
	for i := 0; i < len(re.Pattern); i++ {
		c := re.Pattern[i]
		switch {
		case c == '\\' && i+1 < len(re.Pattern):
			out.WriteByte(c)
			i++
			out.WriteByte(re.Pattern[i])
		case c == '/':
			out.WriteString(`\/`)
		case c == '\n':
			out.WriteString(`\n`)
		case c == '\r':
			out.WriteString(`\r`)
		default:
			out.WriteByte(c)
		}
	}
	out.WriteByte('/')
	out.WriteString(re.Flags.String())
	return out.String()
}

// formatNumber renders a numeric literal value in its shortest
// round-tripping form.
func formatNumber(v any) string {
	switch v := v.(type) {
	case int:
		return strconv.FormatInt(int64(v), 10)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return formatFloat(float64(v), 32)
	case float64:
		return formatFloat(v, 64)
	default:
		panic("printer: unexpected literal value")
	}
}

func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	default:
		return strconv.FormatFloat(f, 'g', -1, bits)
	}
}

// negative reports whether a numeric value prints with a leading minus.
func negative(v any) bool {
	switch v := v.(type) {
	case int:
		return v < 0
	case int8:
		return v < 0
	case int16:
		return v < 0
	case int32:
		return v < 0
	case int64:
		return v < 0
	case float32:
		return math.Signbit(float64(v)) && !math.IsNaN(float64(v))
	case float64:
		return math.Signbit(v) && !math.IsNaN(v)
	default:
		return false
	}
}

// isZero reports whether v is a floating point zero of either sign.
func isZero(v any) bool {
	switch v := v.(type) {
	case float32:
		return v == 0
	case float64:
		return v == 0
	default:
		return false
	}
}

// plainNumber reports whether a numeric value prints as a valid numeric
// property name.
func plainNumber(v any) bool {
	switch v := v.(type) {
	case float32:
		return !negative(v) && !math.IsNaN(float64(v)) && !math.IsInf(float64(v), 0)
	case float64:
		return !negative(v) && !math.IsNaN(v) && !math.IsInf(v, 0)
	default:
		return !negative(v)
	}
}
