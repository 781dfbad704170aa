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

// Converter turns one typed field value into its text form.
type Converter interface {
	Convert(value any) (string, error)
}

// ConverterFunc adapts a plain function to the Converter interface.
type ConverterFunc func(value any) (string, error)

// Convert calls f.
func (f ConverterFunc) Convert(value any) (string, error) {
	return f(value)
}
