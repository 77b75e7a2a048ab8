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

package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rivo/uniseg"
	"github.com/spf13/cobra"
	"github.com/tidwall/btree"

	"github.com/bufbuild/jsast"
	"github.com/bufbuild/jsast/ast"
	"github.com/bufbuild/jsast/walk"
)

func (a *app) newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats files...",
		Short: "Count the nodes of each kind in ESTree documents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, loadErr := a.load(cmd, args)
			if files == nil {
				return loadErr
			}
			counts, err := countKinds(files)
			if err != nil {
				return err
			}
			if err := writeCounts(cmd.OutOrStdout(), counts); err != nil {
				return err
			}
			return loadErr
		},
	}
}

// countKinds counts the nodes of each kind across all loaded files. A file
// listed more than once is counted once.
func countKinds(files []jsast.File) (*btree.Map[string, int], error) {
	counts := new(btree.Map[string, int])
	seen := map[string]bool{}
	for _, f := range files {
		if f.Node == nil || seen[f.Path] {
			continue
		}
		seen[f.Path] = true
		err := walk.Nodes(f.Node, func(n ast.Node) error {
			kind := n.Kind().String()
			count, _ := counts.Get(kind)
			counts.Set(kind, count+1)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return counts, nil
}

// writeCounts prints one line per kind, in name order, with the counts
// right-aligned, followed by a total.
func writeCounts(w io.Writer, counts *btree.Map[string, int]) error {
	const totalLabel = "total"
	var total int
	nameWidth := uniseg.StringWidth(totalLabel)
	counts.Scan(func(kind string, count int) bool {
		total += count
		nameWidth = max(nameWidth, uniseg.StringWidth(kind))
		return true
	})
	countWidth := len(strconv.Itoa(total))

	var out strings.Builder
	line := func(name string, count int) {
		out.WriteString(name)
		digits := strconv.Itoa(count)
		out.WriteString(strings.Repeat(" ", nameWidth-uniseg.StringWidth(name)+2+countWidth-len(digits)))
		out.WriteString(digits)
		out.WriteByte('\n')
	}
	counts.Scan(func(kind string, count int) bool {
		line(kind, count)
		return true
	})
	line(totalLabel, total)

	_, err := fmt.Fprint(w, out.String())
	return err
}
