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

// Package errors defines sentinel errors for consistent error handling across the application.
// These errors map to specific exit codes in the CLI for proper scripting support.
package errors

import "errors"

// Sentinel errors for consistent error handling and exit code mapping
var (
	// ErrWriterClosed indicates an operation was attempted on a writer
	// after Close. The writer remains unusable.
	// Maps to exit code 2.
	ErrWriterClosed = errors.New("writer already closed")

	// ErrInvalidDelimiter indicates the configured delimiter cannot be used
	// (quote character, line break, or NUL).
	// Maps to exit code 2.
	ErrInvalidDelimiter = errors.New("invalid delimiter")

	// ErrNoFields indicates a record type describes zero serializable fields
	// after exclusions are applied.
	// Maps to exit code 2.
	ErrNoFields = errors.New("record type has no serializable fields")

	// ErrMalformedInput indicates an input line could not be parsed as a
	// JSON object record.
	// Maps to exit code 2.
	ErrMalformedInput = errors.New("malformed input record")
)
