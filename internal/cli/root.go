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

	"github.com/spf13/cobra"
)

var verbose bool

// Execute runs the root command.
func Execute(version string) error {
	rootCmd := NewRootCmd(version)
	return rootCmd.Execute()
}

// NewRootCmd creates the root command.
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "katydid",
		Short: "Katydid - streaming FASTQ toolkit",
		Long: `Katydid inspects and validates FASTQ sequencing data as a stream.

Every command reads FASTQ from standard input, so decompression and file
handling stay with the tools that do them well:

  zcat reads.fastq.gz | katydid stat`,
		Version: version,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Katydid v" + version)
			fmt.Println("Use 'katydid --help' for available commands")
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Add subcommands
	rootCmd.AddCommand(NewStatCmd())
	rootCmd.AddCommand(NewCheckCmd())
	rootCmd.AddCommand(NewHeadCmd())
	rootCmd.AddCommand(NewMatesCmd())
	rootCmd.AddCommand(NewVersionCmd(version))

	return rootCmd
}
