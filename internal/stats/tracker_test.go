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

package stats

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackerCounts(t *testing.T) {
	tr := New()
	tr.RecordWritten(3)
	tr.RecordWritten(5)
	tr.RecordWritten(2)

	s := tr.Summarize()
	assert.Equal(t, 3, s.Records)
	assert.Equal(t, 10, s.Fields)
	assert.Equal(t, 5, s.WidestRecord)
	assert.GreaterOrEqual(t, s.Elapsed.Nanoseconds(), int64(0))
}

func TestTrackerEmptyRun(t *testing.T) {
	s := New().Summarize()
	assert.Equal(t, 0, s.Records)
	assert.Equal(t, 0, s.Fields)
	assert.Equal(t, 0, s.WidestRecord)
}

func TestSummaryWrite(t *testing.T) {
	var sb strings.Builder
	Summary{Records: 2, Fields: 4}.Write(&sb)
	assert.Contains(t, sb.String(), "Wrote 2 records (4 fields)")
}
