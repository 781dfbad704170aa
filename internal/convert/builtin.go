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
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// registerBuiltins seeds a registry with default converters for the scalar
// library types that commonly appear in records. The named variants also
// accept string values, so overrides work on text streams where timestamps
// and identifiers arrive unparsed.
func registerBuiltins(r *Registry) {
	r.RegisterType(reflect.TypeOf(time.Time{}), ConverterFunc(func(v any) (string, error) {
		return v.(time.Time).Format(time.RFC3339), nil
	}))

	r.RegisterNamed("rfc3339", ConverterFunc(func(v any) (string, error) {
		t, err := asTime(v)
		if err != nil {
			return "", err
		}
		return t.Format(time.RFC3339), nil
	}))

	r.RegisterNamed("unix", ConverterFunc(func(v any) (string, error) {
		t, err := asTime(v)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(t.Unix(), 10), nil
	}))

	r.RegisterNamed("date", ConverterFunc(func(v any) (string, error) {
		t, err := asTime(v)
		if err != nil {
			return "", err
		}
		return t.Format("2006-01-02"), nil
	}))

	r.RegisterType(reflect.TypeOf(uuid.UUID{}), ConverterFunc(func(v any) (string, error) {
		return v.(uuid.UUID).String(), nil
	}))

	r.RegisterNamed("uuid", ConverterFunc(func(v any) (string, error) {
		switch id := v.(type) {
		case uuid.UUID:
			return id.String(), nil
		case string:
			parsed, err := uuid.Parse(id)
			if err != nil {
				return "", fmt.Errorf("not a valid uuid: %w", err)
			}
			return parsed.String(), nil
		}
		return "", fmt.Errorf("cannot convert %T to uuid", v)
	}))

	r.RegisterNamed("duration", ConverterFunc(func(v any) (string, error) {
		switch d := v.(type) {
		case time.Duration:
			return d.String(), nil
		case string:
			parsed, err := time.ParseDuration(d)
			if err != nil {
				return "", fmt.Errorf("not a valid duration: %w", err)
			}
			return parsed.String(), nil
		}
		return "", fmt.Errorf("cannot convert %T to duration", v)
	}))
}

// asTime accepts a time.Time or its RFC 3339 text form.
func asTime(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case string:
		parsed, err := time.Parse(time.RFC3339, t)
		if err != nil {
			return time.Time{}, fmt.Errorf("not a valid timestamp: %w", err)
		}
		return parsed, nil
	}
	return time.Time{}, fmt.Errorf("cannot convert %T to time", v)
}
