// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sirseerhq/csvrelay/pkg/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "csvrelay",
		Short: "Convert NDJSON record streams to CSV",
		Long: `csvrelay serializes typed records into CSV that round-trips through any
conforming parser: fields containing the delimiter, quotes, or line breaks
are quoted, embedded quotes are doubled, and boundary spaces force quoting.
Field order, naming, exclusion, and conversion are configurable per field.`,
		Version:       version.Version,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
	}

	rootCmd.AddCommand(newConvertCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(mapErrorToExitCode(err))
	}
}
