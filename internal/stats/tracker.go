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

// Package stats tracks statistics about a conversion run: how many records
// and fields were written and how long the run took. The CLI prints a
// one-line summary to stderr at the end of a successful conversion, keeping
// stdout clean for data.
package stats

import (
	"fmt"
	"io"
	"time"
)

// Tracker collects counts during a conversion. Create one at the start of a
// run and call RecordWritten after each emitted data record.
type Tracker struct {
	startTime time.Time
	records   int
	fields    int
	widest    int
}

// New creates a tracker initialized with the current time.
func New() *Tracker {
	return &Tracker{startTime: time.Now()}
}

// RecordWritten records one emitted data record and its field count.
func (t *Tracker) RecordWritten(fieldCount int) {
	t.records++
	t.fields += fieldCount
	if fieldCount > t.widest {
		t.widest = fieldCount
	}
}

// Summary captures the final statistics of a run.
type Summary struct {
	Records      int
	Fields       int
	WidestRecord int
	Elapsed      time.Duration
}

// Summarize closes out the run and returns its statistics.
func (t *Tracker) Summarize() Summary {
	return Summary{
		Records:      t.records,
		Fields:       t.fields,
		WidestRecord: t.widest,
		Elapsed:      time.Since(t.startTime),
	}
}

// Write prints the one-line human summary.
func (s Summary) Write(w io.Writer) {
	fmt.Fprintf(w, "Wrote %d records (%d fields) in %s\n",
		s.Records, s.Fields, s.Elapsed.Round(time.Millisecond))
}
