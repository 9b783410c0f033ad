// Copyright 2025 Scott Friedman
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
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

	"github.com/spf13/cobra"

	"github.com/scttfrdmn/katydid/fastq"
)

// NewMatesCmd creates the mates command.
func NewMatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mates",
		Short: "Verify an interleaved FASTQ stream pairs up",
		Long: `Read an interleaved paired-end FASTQ stream from standard input and
verify that consecutive records are mates: their read IDs (the names up to
the first space or tab) must agree, except for one trailing mate-number digit
1, 2 or 3 (/1, /2, .1, .2, ...). Comments after the ID are not compared.

Examples:
  zcat interleaved.fastq.gz | katydid mates`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := fastq.NewRaw(cmd.InOrStdin())

			pairs := 0
			for {
				r1, err := parser.Next()
				if err == io.EOF {
					break
				}
				if err != nil {
					return err
				}
				r2, err := parser.Next()
				if err == io.EOF {
					return fmt.Errorf("odd number of records: read %q has no mate", r1.ID())
				}
				if err != nil {
					return err
				}
				if !r1.IsMate(r2) {
					return fmt.Errorf("reads %q and %q in pair %d are not mates", r1.ID(), r2.ID(), pairs+1)
				}
				pairs++
			}

			fmt.Fprintf(cmd.OutOrStdout(), "OK: %d read pairs\n", pairs)
			return nil
		},
	}

	return cmd
}
