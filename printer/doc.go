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

// Package printer renders [ast] trees as JavaScript source text.
//
// Output is deterministic and comes in two modes. Pretty output puts each
// statement on its own line, indents nested bodies, and spaces operators,
// commas and keywords. Minified output drops every space that is not needed
// to keep two tokens apart.
//
// The printer does not compute operator precedence. Every binary,
// assignment and logical expression is wrapped in parentheses, and the few
// other expressions that could be misparsed in their position (sequences
// in argument lists, object literals in statement position, and so on) are
// parenthesized as well.
//
// Minification performs two rewrites. A block holding a single statement
// is replaced by that statement wherever this cannot change how the program
// parses, and an if statement whose branches are each a single expression
// statement becomes a conditional expression:
//
//	if (a) { f(); } else { g(); }  =>  a?f():g();
package printer
