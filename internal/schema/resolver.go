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

import (
	"reflect"
	"sort"

	relayerrors "github.com/sirseerhq/csvrelay/internal/errors"
)

// Resolver turns record types into cached Schemas. The cache is keyed by the
// record's runtime type identity, so field enumeration and override handling
// run once per distinct type for the resolver's lifetime. A resolver belongs
// to a single writer instance and is not safe for concurrent use.
type Resolver struct {
	cache map[reflect.Type]*Schema
}

// NewResolver creates an empty resolver.
func NewResolver() *Resolver {
	return &Resolver{
		cache: make(map[reflect.Type]*Schema),
	}
}

// Resolve returns the Schema for the record's type, computing and caching it
// on first encounter. Subsequent calls for the same type return the cached
// schema without re-enumerating fields.
//
// Ordering rule: if any retained field declares an explicit output position,
// the whole sequence is stable-sorted by position, with undeclared fields
// sorting after all declared ones in their original declaration order.
// Otherwise declaration order is preserved.
func (r *Resolver) Resolve(record Describer) (*Schema, error) {
	key := reflect.TypeOf(record)
	if s, ok := r.cache[key]; ok {
		return s, nil
	}

	declared := record.DescribeFields()
	retained := make([]Field, 0, len(declared))
	anyIndexed := false
	for _, f := range declared {
		if f.Omit {
			continue
		}
		if f.HasIndex {
			anyIndexed = true
		}
		retained = append(retained, f)
	}

	if len(retained) == 0 {
		return nil, relayerrors.ErrNoFields
	}

	if anyIndexed {
		sort.SliceStable(retained, func(i, j int) bool {
			fi, fj := retained[i], retained[j]
			switch {
			case fi.HasIndex && fj.HasIndex:
				return fi.Index < fj.Index
			case fi.HasIndex:
				return true
			case fj.HasIndex:
				return false
			default:
				return false
			}
		})
	}

	s := &Schema{Type: key, Fields: retained}
	r.cache[key] = s
	return s, nil
}
