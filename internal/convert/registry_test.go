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

package convert

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirseerhq/csvrelay/internal/schema"
)

type celsius float64

func TestTextScalars(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"nil", nil, ""},
		{"string", "plain", "plain"},
		{"bool", true, "true"},
		{"int", 42, "42"},
		{"negative int64", int64(-7), "-7"},
		{"uint", uint(9), "9"},
		{"float64", 2.5, "2.5"},
		{"float64 integral", 5.0, "5"},
		{"bytes", []byte("raw"), "raw"},
		{"named float kind", celsius(36.6), "36.6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Text(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTextLibraryTypes(t *testing.T) {
	r := NewRegistry()

	ts := time.Date(2024, 3, 9, 12, 30, 0, 0, time.UTC)
	got, err := r.Text(ts)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-09T12:30:00Z", got)

	id := uuid.MustParse("01234567-89ab-cdef-0123-456789abcdef")
	got, err = r.Text(id)
	require.NoError(t, err)
	assert.Equal(t, "01234567-89ab-cdef-0123-456789abcdef", got)

	// Stringer types without a registered default use their String method.
	got, err = r.Text(90 * time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "1h30m0s", got)
}

func TestResolveNamedOverride(t *testing.T) {
	r := NewRegistry()
	ts := time.Date(2024, 3, 9, 12, 30, 0, 0, time.UTC)

	c, missing := r.Resolve(schema.Field{
		Name:      "When",
		Converter: "date",
		Type:      reflect.TypeOf(time.Time{}),
	})
	assert.False(t, missing)

	got, err := c.Convert(ts)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-09", got)
}

func TestResolveMissingOverrideFallsBack(t *testing.T) {
	r := NewRegistry()
	ts := time.Date(2024, 3, 9, 12, 30, 0, 0, time.UTC)

	c, missing := r.Resolve(schema.Field{
		Name:      "When",
		Converter: "no-such-converter",
		Type:      reflect.TypeOf(time.Time{}),
	})
	assert.True(t, missing)

	// Degrades to the registered default for the declared type.
	got, err := c.Convert(ts)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-09T12:30:00Z", got)
}

func TestResolveDeclaredTypes(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		name  string
		typ   reflect.Type
		value any
		want  string
	}{
		{"string passthrough", reflect.TypeOf(""), "keep me", "keep me"},
		{"int canonical", reflect.TypeOf(0), 31, "31"},
		{"bool canonical", reflect.TypeOf(false), false, "false"},
		{"named kind", reflect.TypeOf(celsius(0)), celsius(-4.25), "-4.25"},
		{"stringer beats kind", reflect.TypeOf(time.Duration(0)), 2 * time.Second, "2s"},
		{"registered default", reflect.TypeOf(uuid.UUID{}), uuid.Nil, "00000000-0000-0000-0000-000000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, missing := r.Resolve(schema.Field{Name: "f", Type: tt.typ})
			assert.False(t, missing)

			got, err := c.Convert(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveUndeclaredTypeUsesDynamicChain(t *testing.T) {
	r := NewRegistry()

	c, missing := r.Resolve(schema.Field{Name: "f"})
	assert.False(t, missing)

	got, err := c.Convert(123)
	require.NoError(t, err)
	assert.Equal(t, "123", got)

	got, err = c.Convert("text")
	require.NoError(t, err)
	assert.Equal(t, "text", got)
}

func TestNamedConvertersAcceptStrings(t *testing.T) {
	// Text streams hand converters unparsed strings; the builtins parse
	// them rather than panicking on a type assertion.
	r := NewRegistry()

	tests := []struct {
		converter string
		value     any
		want      string
	}{
		{"date", "2024-03-09T12:30:00Z", "2024-03-09"},
		{"unix", "1970-01-01T00:00:10Z", "10"},
		{"rfc3339", time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), "2024-03-09T00:00:00Z"},
		{"uuid", "01234567-89AB-CDEF-0123-456789ABCDEF", "01234567-89ab-cdef-0123-456789abcdef"},
		{"duration", "90m", "1h30m0s"},
	}

	for _, tt := range tests {
		t.Run(tt.converter, func(t *testing.T) {
			c, ok := r.Named(tt.converter)
			require.True(t, ok)
			got, err := c.Convert(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNamedConverterRejectsGarbage(t *testing.T) {
	r := NewRegistry()
	c, ok := r.Named("date")
	require.True(t, ok)

	_, err := c.Convert("not a timestamp")
	require.Error(t, err)

	_, err = c.Convert(12)
	require.Error(t, err)
}

func TestRegisterNamedLastWins(t *testing.T) {
	r := NewRegistry()
	r.RegisterNamed("upper", ConverterFunc(func(v any) (string, error) {
		return "first", nil
	}))
	r.RegisterNamed("upper", ConverterFunc(func(v any) (string, error) {
		return "second", nil
	}))

	c, ok := r.Named("upper")
	require.True(t, ok)
	got, err := c.Convert(nil)
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}
