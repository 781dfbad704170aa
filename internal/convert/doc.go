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

// Package convert decides how typed field values become text.
//
// A Registry resolves one conversion procedure per field descriptor, in this
// order: the descriptor's named converter override, textual passthrough for
// string-kinded fields, the canonical strconv form for primitive kinds, the
// ambient default converter registered for the declared type, and finally the
// value's own String method. Fields with no declared type get a dynamic
// converter that applies the same chain to each value's runtime type.
//
// A named override that is not registered is a non-fatal miss: the field
// degrades to the rest of the chain. Resolve reports the miss so callers can
// surface a warning without failing the write.
package convert
