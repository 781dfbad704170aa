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

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	relayerrors "github.com/sirseerhq/csvrelay/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ",", cfg.Output.Delimiter)
	assert.False(t, cfg.Output.Header)
	assert.Empty(t, cfg.Fields)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfig(t, `
output:
  delimiter: ";"
  header: true
fields:
  - name: id
    header: ID
    index: 0
  - name: secret
    omit: true
  - name: created_at
    converter: date
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ";", cfg.Output.Delimiter)
	assert.True(t, cfg.Output.Header)

	require.Len(t, cfg.Fields, 3)
	assert.Equal(t, "id", cfg.Fields[0].Name)
	assert.Equal(t, "ID", cfg.Fields[0].Header)
	require.NotNil(t, cfg.Fields[0].Index)
	assert.Equal(t, 0, *cfg.Fields[0].Index)
	assert.True(t, cfg.Fields[1].Omit)
	assert.Equal(t, "date", cfg.Fields[2].Converter)
}

func TestLoadConfigMissingFileFails(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadConfigNoFileUsesDefaults(t *testing.T) {
	// Run from an empty directory so no .csvrelay.yaml is discovered.
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, ",", cfg.Output.Delimiter)
}

func TestEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
output:
  delimiter: ";"
  header: false
`)
	t.Setenv("CSVRELAY_DELIMITER", "|")
	t.Setenv("CSVRELAY_HEADER", "yes")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "|", cfg.Output.Delimiter)
	assert.True(t, cfg.Output.Header)
}

func TestValidateRejectsBadDelimiter(t *testing.T) {
	tests := []struct {
		name  string
		delim string
	}{
		{"empty", ""},
		{"multi char", ",,"},
		{"quote", `"`},
		{"newline", "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Output.Delimiter = tt.delim
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, relayerrors.ErrInvalidDelimiter))
		})
	}
}

func TestValidateRejectsUnnamedFieldOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Fields = []FieldConfig{{Header: "X"}}
	require.Error(t, cfg.Validate())
}

func TestDelimiterRune(t *testing.T) {
	tests := []struct {
		in   string
		want rune
	}{
		{",", ','},
		{";", ';'},
		{"|", '|'},
		{`\t`, '\t'},
		{"tab", '\t'},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Output.Delimiter = tt.in
			got, err := cfg.DelimiterRune()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
