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

package schema

import "reflect"

// Accessor reads one field's value from a record instance. The record passed
// in is always of the type whose descriptors carried the accessor.
type Accessor func(record any) any

// Field describes one serializable member of a record type, including the
// per-field overrides resolved at registration time. Overrides are strongly
// typed here; there is no name-based metadata lookup at write time.
type Field struct {
	// Name is the member's natural name. It is also the header text unless
	// Header overrides it.
	Name string

	// Header, when non-empty, replaces Name in the header record.
	Header string

	// Index is an explicit output position. It participates in ordering only
	// when HasIndex is true; the zero value is a valid position.
	Index    int
	HasIndex bool

	// Omit excludes the field entirely. Excluded fields are dropped before
	// ordering or conversion is considered.
	Omit bool

	// Converter names a registered converter override. An empty name means
	// no override. A name that resolves to nothing degrades to the default
	// conversion chain.
	Converter string

	// Type is the field's declared type, used to pick a default converter.
	// When nil the converter is chosen from each value's dynamic type.
	Type reflect.Type

	// Get reads the field's value from a record instance.
	Get Accessor
}

// HeaderName returns the text this field contributes to a header record.
func (f Field) HeaderName() string {
	if f.Header != "" {
		return f.Header
	}
	return f.Name
}

// Describer is the registration-time capability a record type implements to
// expose its serializable fields, in declaration order, with any overrides
// already attached.
type Describer interface {
	DescribeFields() []Field
}

// Schema is the ordered sequence of retained (non-omitted) fields for one
// record type. It is computed once per type per resolver and never
// invalidated; record types are assumed immutable for a writer's lifetime.
type Schema struct {
	// Type identifies the record type this schema was resolved from.
	Type reflect.Type

	// Fields holds the retained descriptors in output order.
	Fields []Field
}

// HeaderNames returns the resolved output names in schema order.
func (s *Schema) HeaderNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.HeaderName()
	}
	return names
}
