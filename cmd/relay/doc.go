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

// Package main implements the csvrelay command-line interface.
// This tool converts NDJSON record streams to CSV, preserving input field
// order and applying per-field overrides (rename, reorder, drop, custom
// conversion) from a YAML configuration file.
//
// The CLI supports:
//   - Reading from stdin (default) or a file argument
//   - Customizable output destinations (stdout or file)
//   - Delimiter and header control via flags, environment, or config file
//   - Field projection with the --fields flag
//   - Graceful error handling with appropriate exit codes
//
// Usage:
//
//	csvrelay convert [input-file] [flags]
//
// Example:
//
//	csvrelay convert events.ndjson --header --output events.csv
//	curl -s https://api.example.com/events | csvrelay convert --fields id,actor,created_at
//
// Exit codes:
//   - 0: Success
//   - 1: General error
//   - 2: Configuration or input error
//   - 3: Output I/O error
package main
