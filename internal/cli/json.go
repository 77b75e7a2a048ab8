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
	"github.com/hokaccha/go-prettyjson"
	"github.com/spf13/cobra"

	"github.com/bufbuild/jsast"
	"github.com/bufbuild/jsast/estree"
)

func (a *app) newJSONCmd() *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "json [flags] files...",
		Short: "Rewrite ESTree documents in canonical form",
		Long: `Decodes each input and encodes it again, which normalizes field order,
flattened chains and numbers. Output is one document per line with --raw.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, loadErr := a.load(cmd, args)
			if files == nil {
				return loadErr
			}
			out, err := a.renderAll(cmd.Context(), files, func(f jsast.File) ([]byte, error) {
				data, err := estree.Marshal(f.Node)
				if err != nil {
					return nil, err
				}
				if !raw {
					if data, err = prettyjson.Format(data); err != nil {
						return nil, err
					}
				}
				return append(data, '\n'), nil
			})
			if err != nil {
				return err
			}
			if err := writeAll(cmd.OutOrStdout(), out); err != nil {
				return err
			}
			return loadErr
		},
	}
	cmd.Flags().BoolVarP(&raw, "raw", "r", false, "print compact JSON without colors")
	return cmd
}
