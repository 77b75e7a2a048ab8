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

// Package jsast loads ECMAScript syntax trees from ESTree documents.
//
// The trees themselves live in package ast. Package estree converts them
// to and from ESTree JSON, and package printer renders them as JavaScript
// source. This package ties those together for tools that work on many
// inputs at once.
//
// # Resolvers
//
// A [Resolver] is how a [Loader] locates its inputs. A [SourceResolver]
// opens files, optionally searching a list of directories. [ReaderResolver]
// answers for "-" with a fixed reader, usually standard input. Resolvers can
// be chained with [CompositeResolver], and a [ResolverFunc] can produce
// already-decoded trees.
//
// # Loader
//
// A [Loader] accepts a list of paths and produces one validated tree per
// path, decoding up to MaxParallelism inputs at a time:
//
//	loader := jsast.Loader{
//	    Resolver: &jsast.SourceResolver{},
//	}
//	files, err := loader.Load(ctx, "a.json", "b.yaml")
//
// By default the first bad input fails the load. A Reporter that returns nil
// keeps going, so every bad input can be reported in one run.
package jsast
