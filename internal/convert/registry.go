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

	"github.com/sirseerhq/csvrelay/internal/schema"
)

var stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()

// Registry holds named converter overrides and per-type default converters.
// A fresh registry comes preloaded with the builtins (see builtin.go).
// Registries are not safe for concurrent mutation; populate one before
// handing it to a writer.
type Registry struct {
	named map[string]Converter
	types map[reflect.Type]Converter
}

// NewRegistry creates a registry preloaded with the builtin converters.
func NewRegistry() *Registry {
	r := &Registry{
		named: make(map[string]Converter),
		types: make(map[reflect.Type]Converter),
	}
	registerBuiltins(r)
	return r
}

// RegisterNamed registers a converter under a name that field descriptors can
// reference as an override. Last registration wins.
func (r *Registry) RegisterNamed(name string, c Converter) {
	r.named[name] = c
}

// RegisterType registers the ambient default converter for a declared type.
// Last registration wins.
func (r *Registry) RegisterType(t reflect.Type, c Converter) {
	r.types[t] = c
}

// Named looks up a converter override by name.
func (r *Registry) Named(name string) (Converter, bool) {
	c, ok := r.named[name]
	return c, ok
}

// Resolve picks the conversion procedure for a field descriptor. The decision
// order is: named override, textual passthrough, primitive canonical form,
// registered default for the declared type, Stringer, and finally a dynamic
// per-value conversion for fields with no declared type.
//
// The second result reports whether the descriptor named an override that is
// not registered. That miss is non-fatal: the field degrades to the rest of
// the chain exactly as if no override were declared. Callers that want to
// warn about the miss can do so once per type.
func (r *Registry) Resolve(f schema.Field) (Converter, bool) {
	missing := false
	if f.Converter != "" {
		if c, ok := r.named[f.Converter]; ok {
			return c, false
		}
		missing = true
	}

	if c := r.forType(f.Type); c != nil {
		return c, missing
	}

	return ConverterFunc(r.Text), missing
}

// forType resolves a static converter for a declared type, or nil when the
// choice must be made per value.
func (r *Registry) forType(t reflect.Type) Converter {
	if t == nil {
		return nil
	}

	if t.Kind() == reflect.String {
		return ConverterFunc(func(v any) (string, error) {
			return reflect.ValueOf(v).String(), nil
		})
	}

	// Primitive kinds get their canonical strconv form, unless the type
	// carries its own String method (time.Duration and friends), which wins.
	if !t.Implements(stringerType) {
		if c := kindConverter(t.Kind()); c != nil {
			return c
		}
	}

	if c, ok := r.types[t]; ok {
		return c
	}

	if t.Implements(stringerType) {
		return ConverterFunc(func(v any) (string, error) {
			return v.(fmt.Stringer).String(), nil
		})
	}

	return nil
}

// kindConverter returns the canonical text form for a primitive kind, or nil
// for non-primitive kinds. It reads values through reflect so named types
// (type Age int) format the same as their underlying kind.
func kindConverter(k reflect.Kind) Converter {
	switch k {
	case reflect.Bool:
		return ConverterFunc(func(v any) (string, error) {
			return strconv.FormatBool(reflect.ValueOf(v).Bool()), nil
		})
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ConverterFunc(func(v any) (string, error) {
			return strconv.FormatInt(reflect.ValueOf(v).Int(), 10), nil
		})
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return ConverterFunc(func(v any) (string, error) {
			return strconv.FormatUint(reflect.ValueOf(v).Uint(), 10), nil
		})
	case reflect.Float32:
		return ConverterFunc(func(v any) (string, error) {
			return strconv.FormatFloat(reflect.ValueOf(v).Float(), 'g', -1, 32), nil
		})
	case reflect.Float64:
		return ConverterFunc(func(v any) (string, error) {
			return strconv.FormatFloat(reflect.ValueOf(v).Float(), 'g', -1, 64), nil
		})
	default:
		return nil
	}
}

// Text converts a value of unknown declared type. Untyped scalars use their
// canonical form directly; named types fall through to the registered
// defaults, then String methods, then kind-based formatting, and as a last
// resort the fmt representation.
func (r *Registry) Text(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int8:
		return strconv.FormatInt(int64(v), 10), nil
	case int16:
		return strconv.FormatInt(int64(v), 10), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case []byte:
		return string(v), nil
	}

	if c := r.forType(reflect.TypeOf(value)); c != nil {
		return c.Convert(value)
	}
	return fmt.Sprintf("%v", value), nil
}
