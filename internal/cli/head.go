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
	"bufio"
	"io"

	"github.com/spf13/cobra"

	"github.com/scttfrdmn/katydid/fastq"
)

// NewHeadCmd creates the head command.
func NewHeadCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "head",
		Short: "Emit the first records of a FASTQ stream",
		Long: `Read a FASTQ stream from standard input and write its first records
back out, normalized to one line ending per line. Whether the input repeats
the read name after '+' is detected from the first record and preserved.

Examples:
  katydid head -n 4 < reads.fastq`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := fastq.NewRaw(cmd.InOrStdin())

			twoHeaders, err := parser.FirstRecordHasSecondHeader()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}

			out := bufio.NewWriter(cmd.OutOrStdout())
			for i := 0; i < count; i++ {
				rec, err := parser.Next()
				if err == io.EOF {
					break
				}
				if err != nil {
					return err
				}
				b, err := rec.FastqBytes(twoHeaders)
				if err != nil {
					return err
				}
				if _, err := out.Write(b); err != nil {
					return err
				}
			}
			return out.Flush()
		},
	}

	cmd.Flags().IntVarP(&count, "records", "n", 10, "number of records to emit")
	return cmd
}
