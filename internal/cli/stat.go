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
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/scttfrdmn/katydid/fastq"
	"github.com/scttfrdmn/katydid/internal/stats"
)

// NewStatCmd creates the stat command.
func NewStatCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "stat",
		Short: "Summarize a FASTQ stream",
		Long: `Read a FASTQ stream from standard input and report read count, base
count, read length extremes, GC content, and Phred+33 quality statistics.

Examples:
  # Summarize a plain FASTQ file
  katydid stat < reads.fastq

  # Summarize a compressed file, YAML output
  zcat reads.fastq.gz | katydid stat --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			spin := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
			spin.Suffix = " reading stream..."
			if verbose {
				spin.Start()
			}

			parser := fastq.NewRaw(cmd.InOrStdin())
			result, err := stats.Collect(parser)
			spin.Stop()
			if err != nil {
				return err
			}

			var output []byte
			switch strings.ToLower(outputFormat) {
			case "json":
				output, err = json.MarshalIndent(result, "", "  ")
			case "yaml":
				output, err = yaml.Marshal(result)
			default:
				return fmt.Errorf("unsupported format: %s (use json or yaml)", outputFormat)
			}
			if err != nil {
				return fmt.Errorf("failed to format output: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(string(output), "\n"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "yaml", "Output format (json, yaml)")
	return cmd
}
