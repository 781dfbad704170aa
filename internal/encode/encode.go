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

// Package encode implements CSV field quoting per RFC 4180. The encoder is a
// pure string transform: given a raw field value and the active delimiter it
// returns the text that may appear verbatim in an output record.
package encode

import "strings"

// Field encodes a single raw field value for CSV output.
//
// Embedded double quotes are doubled first, then the field is wrapped in
// double quotes when any of the following holds: it contained a quote, it
// starts or ends with a space, it contains the delimiter, or it contains a
// line feed. The doubling must precede the wrap decision so the wrap sees
// the already-escaped content. Empty fields pass through unmodified and are
// never quoted.
func Field(raw string, delim rune) string {
	if raw == "" {
		return raw
	}

	quote := false
	if strings.Contains(raw, `"`) {
		raw = strings.ReplaceAll(raw, `"`, `""`)
		quote = true
	}

	if quote ||
		raw[0] == ' ' ||
		raw[len(raw)-1] == ' ' ||
		strings.ContainsRune(raw, delim) ||
		strings.Contains(raw, "\n") {
		return `"` + raw + `"`
	}

	return raw
}
