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

// Package schema resolves record types into ordered field schemas.
//
// A record type declares its serializable fields by implementing Describer.
// Each Field carries its accessor and any per-field overrides (output name,
// explicit position, exclusion, named converter), attached at registration
// time rather than looked up by name while writing. The Resolver drops
// excluded fields, applies the explicit-position ordering rule, and caches
// the result per type, so a writer pays the discovery cost once no matter
// how many records of that type it serializes.
//
// Reflection is used only to obtain a type-identity cache key; field values
// are always read through the accessors the type registered.
//
// Example:
//
//	type Person struct {
//	    Name string
//	    Age  int
//	}
//
//	func (p Person) DescribeFields() []schema.Field {
//	    return []schema.Field{
//	        {Name: "Name", Get: func(r any) any { return r.(Person).Name }},
//	        {Name: "Age", Get: func(r any) any { return r.(Person).Age }},
//	    }
//	}
package schema
