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

package csv

import (
	"fmt"

	"github.com/sirseerhq/csvrelay/internal/convert"
	"github.com/sirseerhq/csvrelay/internal/schema"
)

// step is one compiled field extraction: read the value through the
// descriptor's accessor, convert it with the converter resolved at compile
// time.
type step struct {
	name string
	get  schema.Accessor
	conv convert.Converter
}

// routine is the compiled extraction procedure for one record type. It is
// built once from the type's schema and reused verbatim for every record of
// that type for the writer's lifetime; converter resolution never repeats
// per record.
type routine struct {
	steps []step
}

// routineFor returns the cached routine for a schema, compiling it on first
// encounter. Converter-override misses discovered during compilation are
// recorded on the writer, once per field.
func (w *Writer) routineFor(sch *schema.Schema) *routine {
	if rt, ok := w.routines[sch.Type]; ok {
		return rt
	}

	steps := make([]step, len(sch.Fields))
	for i, f := range sch.Fields {
		conv, missed := w.converters.Resolve(f)
		if missed {
			w.misses = append(w.misses,
				fmt.Sprintf("%s.%s: converter %q not registered", sch.Type, f.Name, f.Converter))
		}
		steps[i] = step{name: f.Name, get: f.Get, conv: conv}
	}

	rt := &routine{steps: steps}
	w.routines[sch.Type] = rt
	return rt
}

// run executes the routine against one record instance, performing one
// encoded field write per schema entry, in schema order.
func (r *routine) run(w *Writer, record any) error {
	for _, st := range r.steps {
		text, err := st.conv.Convert(st.get(record))
		if err != nil {
			return fmt.Errorf("convert field %s: %w", st.name, err)
		}
		if err := w.WriteField(text); err != nil {
			return err
		}
	}
	return nil
}
