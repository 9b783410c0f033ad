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

// NewCheckCmd creates the check command.
func NewCheckCmd() *cobra.Command {
	var ascii bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a FASTQ stream",
		Long: `Read a FASTQ stream from standard input and verify the four-line
framing of every record. The first malformed record stops the check and is
reported with its line number.

Examples:
  katydid check < reads.fastq
  zcat reads.fastq.gz | katydid check --ascii=false`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var parser *fastq.Parser[fastq.Record]
			if ascii {
				parser = fastq.New(cmd.InOrStdin())
			} else {
				parser = fastq.NewRaw(cmd.InOrStdin())
			}

			records := 0
			for {
				_, err := parser.Next()
				if err == io.EOF {
					break
				}
				if err != nil {
					return err
				}
				records++
			}

			fmt.Fprintf(cmd.OutOrStdout(), "OK: %d records\n", records)
			return nil
		},
	}

	cmd.Flags().BoolVar(&ascii, "ascii", true, "require records to be 7-bit ASCII")
	return cmd
}
