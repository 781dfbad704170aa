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

// Package config types define the configuration structures used throughout
// csvrelay. These types represent settings that can be loaded from YAML
// configuration files, environment variables, or command-line flags.
package config

// Config represents the complete configuration for csvrelay. It consolidates
// settings from various sources and provides a unified interface for
// accessing configuration values throughout the application.
type Config struct {
	Output OutputConfig  `yaml:"output"`
	Fields []FieldConfig `yaml:"fields"`
}

// OutputConfig controls the shape of the emitted CSV: the field delimiter
// and whether a header record leads the output.
type OutputConfig struct {
	Delimiter string `yaml:"delimiter"`
	Header    bool   `yaml:"header"`
}

// FieldConfig carries per-field overrides for a named input field: an output
// name, an explicit output position, exclusion, or a named converter. Fields
// not mentioned here pass through with their natural name in input order.
type FieldConfig struct {
	Name      string `yaml:"name"`
	Header    string `yaml:"header"`
	Index     *int   `yaml:"index"`
	Omit      bool   `yaml:"omit"`
	Converter string `yaml:"converter"`
}
