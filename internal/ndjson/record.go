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

package ndjson

import "github.com/sirseerhq/csvrelay/internal/schema"

// Record is one parsed input object with its field order preserved. Records
// implement schema.Describer, so they can be handed straight to the CSV
// writer. All records from one reader share a Go type, which means the
// writer resolves the schema from the first record and reuses it for the
// rest of the stream; later records with extra fields keep the established
// shape.
type Record struct {
	reader *Reader
	names  []string
	values map[string]any
}

// Fields returns the field names in document order.
func (rec *Record) Fields() []string {
	return rec.names
}

// Value returns the named field's value, or nil when absent.
func (rec *Record) Value(name string) any {
	return rec.values[name]
}

// DescribeFields exposes the record's fields with the reader's overrides and
// projection applied. Accessors read through the record instance passed at
// extraction time, so descriptors from the first record of a stream work for
// every record that follows.
func (rec *Record) DescribeFields() []schema.Field {
	names := rec.names
	if len(rec.reader.projection) > 0 {
		names = rec.reader.projection
	}

	fields := make([]schema.Field, 0, len(names))
	for _, name := range names {
		f := schema.Field{
			Name: name,
			Get: func(r any) any {
				return r.(*Record).Value(name)
			},
		}
		if ov, ok := rec.reader.overrides[name]; ok {
			f.Header = ov.Header
			f.Omit = ov.Omit
			f.Converter = ov.Converter
			if ov.Index != nil {
				f.Index = *ov.Index
				f.HasIndex = true
			}
		}
		fields = append(fields, f)
	}
	return fields
}
