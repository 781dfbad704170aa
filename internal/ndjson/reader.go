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

// Package ndjson reads newline-delimited JSON objects as ordered records.
//
// The standard JSON decoding into maps discards key order, which matters for
// CSV output, so the reader walks each object at the token level and keeps
// the keys in document order. Scalar values stay scalars (numbers keep their
// original text via json.Number); nested objects and arrays collapse to
// their compact JSON text, which the CSV layer then quotes as needed.
package ndjson

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	relayerrors "github.com/sirseerhq/csvrelay/internal/errors"
)

// maxLineSize bounds a single input record line (10 MiB).
const maxLineSize = 10 * 1024 * 1024

// Override carries per-field settings applied to every record the reader
// produces, keyed by the field's natural name.
type Override struct {
	// Header replaces the field name in the header record.
	Header string

	// Index is an explicit output position; nil means undeclared.
	Index *int

	// Omit excludes the field from output.
	Omit bool

	// Converter names a converter override.
	Converter string
}

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithOverrides applies per-field overrides to every record read.
func WithOverrides(overrides map[string]Override) ReaderOption {
	return func(r *Reader) { r.overrides = overrides }
}

// WithProjection restricts records to the named fields, in the given order.
// Fields absent from an input object produce empty output cells.
func WithProjection(names []string) ReaderOption {
	return func(r *Reader) { r.projection = names }
}

// Reader streams ordered records from an NDJSON source. Blank lines are
// skipped. Reader is not safe for concurrent use.
type Reader struct {
	scanner    *bufio.Scanner
	line       int
	overrides  map[string]Override
	projection []string
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader, opts ...ReaderOption) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	reader := &Reader{scanner: scanner}
	for _, opt := range opts {
		opt(reader)
	}
	return reader
}

// Next returns the next record, or io.EOF when the input is exhausted.
// A line that is not a JSON object fails with ErrMalformedInput carrying
// the line number.
func (r *Reader) Next() (*Record, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" {
			continue
		}
		rec, err := r.parseObject(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: %v", r.line, relayerrors.ErrMalformedInput, err)
		}
		return rec, nil
	}
	if err := r.scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return nil, io.EOF
}

// Line returns the number of the most recently read input line.
func (r *Reader) Line() int {
	return r.line
}

func (r *Reader) parseObject(line string) (*Record, error) {
	dec := json.NewDecoder(strings.NewReader(line))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected JSON object, got %v", tok)
	}

	rec := &Record{
		reader: r,
		values: make(map[string]any),
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		value, err := scalarValue(raw)
		if err != nil {
			return nil, err
		}

		if _, seen := rec.values[key]; !seen {
			rec.names = append(rec.names, key)
		}
		rec.values[key] = value
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return rec, nil
}

// scalarValue maps a raw JSON value to the Go value the converter layer
// expects: strings, bools, json.Number, nil, or compact JSON text for
// composites.
func scalarValue(raw json.RawMessage) (any, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, nil
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return nil, err
		}
		return s, nil
	case '{', '[':
		var compact bytes.Buffer
		if err := json.Compact(&compact, trimmed); err != nil {
			return nil, err
		}
		return compact.String(), nil
	case 't':
		return true, nil
	case 'f':
		return false, nil
	case 'n':
		return nil, nil
	default:
		return json.Number(trimmed), nil
	}
}
