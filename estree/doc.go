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

// Package estree converts between [ast] trees and the ESTree JSON format
// used by JavaScript tooling.
//
// Reading is strict. Every node must be an object with a string "type";
// every field a node kind requires must be present and have the right JSON
// kind. The first violation aborts the read, and the error carries the path
// of the offending value. Fields that ESTree defines but this module does not
// model, such as "loc", "range" and "raw", are ignored. Flags for features
// beyond ES5 (generators, async functions, computed or shorthand properties)
// are accepted when false and rejected when true.
//
// Flattened chains are unfolded on write and refolded on read. A binary
// chain nests in the direction its operator associates: a - b - c is written
// as ((a - b) - c), while a = b = c is written as (a = (b = c)). Member
// chains nest to the left, each level carrying the chain's computed flag.
// Reading the written JSON back reproduces the original chain.
//
// Numbers are normalized on read: integers that fit in an int64 decode as
// int64, everything else as float64.
package estree
