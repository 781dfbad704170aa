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

// Package csv writes typed records as delimited text that round-trips
// through a conforming CSV parser: fields containing the delimiter, quotes,
// or line breaks are quoted, embedded quotes are doubled, and boundary
// spaces force quoting.
//
// The Writer owns its sink exclusively and releases it exactly once via
// Close. Every completed record is flushed immediately, trading throughput
// for visibility. Schemas and extraction routines are cached per record
// type per writer instance; there is no process-wide cache, so two writers
// never interfere and each pays its own discovery cost.
//
// Example usage:
//
//	w, err := csv.NewFileWriter("people.csv", csv.WithHeader())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer w.Close()
//
//	for _, p := range people {
//	    if err := w.WriteRecord(p); err != nil {
//	        log.Fatal(err)
//	    }
//	}
package csv
