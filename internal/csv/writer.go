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
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/sirseerhq/csvrelay/internal/convert"
	"github.com/sirseerhq/csvrelay/internal/encode"
	relayerrors "github.com/sirseerhq/csvrelay/internal/errors"
	"github.com/sirseerhq/csvrelay/internal/schema"
)

// Writer serializes typed records as delimited text to an exclusively owned
// LineSink. It keeps per-type caches of resolved schemas and compiled
// extraction routines, so repeated writes of one type pay the discovery cost
// once. A Writer is single-threaded and non-reentrant: callers must finish a
// record with NextRecord before starting the next one, and must serialize
// access themselves if sharing one across goroutines.
type Writer struct {
	sink       LineSink
	delim      rune
	header     bool
	converters *convert.Registry

	resolver *schema.Resolver
	routines map[reflect.Type]*routine
	misses   []string

	fields        []string
	headerWritten bool
	closed        bool
	count         int
	cfgErr        error
}

// Option configures a Writer at construction time.
type Option func(*Writer)

// WithDelimiter sets the field delimiter. The default is a comma. The quote
// character, line breaks, and NUL are rejected on first use.
func WithDelimiter(d rune) Option {
	return func(w *Writer) { w.delim = d }
}

// WithHeader enables a header record naming all retained fields. It is
// written once, before the first data record, regardless of how many write
// calls follow.
func WithHeader() Option {
	return func(w *Writer) { w.header = true }
}

// WithConverters replaces the default converter registry.
func WithConverters(reg *convert.Registry) Option {
	return func(w *Writer) { w.converters = reg }
}

// NewWriter creates a Writer over an io.Writer. The stream stays owned by
// the caller; Close flushes but does not close it.
func NewWriter(out io.Writer, opts ...Option) *Writer {
	return NewSinkWriter(NewSink(out), opts...)
}

// NewFileWriter creates a Writer that owns the named file. Close releases it.
func NewFileWriter(filename string, opts ...Option) (*Writer, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return NewSinkWriter(newOwnedSink(file, file.Close), opts...), nil
}

// NewSinkWriter creates a Writer over an arbitrary LineSink. The writer
// takes exclusive ownership of the sink.
func NewSinkWriter(sink LineSink, opts ...Option) *Writer {
	w := &Writer{
		sink:       sink,
		delim:      ',',
		converters: convert.NewRegistry(),
		resolver:   schema.NewResolver(),
		routines:   make(map[reflect.Type]*routine),
	}
	for _, opt := range opts {
		opt(w)
	}
	if !validDelimiter(w.delim) {
		w.cfgErr = fmt.Errorf("%w: %q", relayerrors.ErrInvalidDelimiter, w.delim)
	}
	return w
}

func validDelimiter(d rune) bool {
	switch d {
	case '"', '\n', '\r', 0:
		return false
	}
	return true
}

// ready gates every public operation except Close.
func (w *Writer) ready() error {
	if w.closed {
		return relayerrors.ErrWriterClosed
	}
	return w.cfgErr
}

// WriteField encodes text for the active delimiter and appends it to the
// current record. Nothing reaches the sink until NextRecord.
func (w *Writer) WriteField(text string) error {
	if err := w.ready(); err != nil {
		return err
	}
	w.fields = append(w.fields, encode.Field(text, w.delim))
	return nil
}

// WriteAny converts a typed value to text through the converter registry,
// then behaves as WriteField.
func (w *Writer) WriteAny(value any) error {
	if err := w.ready(); err != nil {
		return err
	}
	text, err := w.converters.Text(value)
	if err != nil {
		return fmt.Errorf("convert field: %w", err)
	}
	return w.WriteField(text)
}

// NextRecord joins the buffered fields with the delimiter, writes the line,
// and flushes the sink so every completed record is immediately observable.
// On sink failure the buffer is left as-is; the writer should be considered
// inconsistent and closed.
func (w *Writer) NextRecord() error {
	if err := w.ready(); err != nil {
		return err
	}
	if err := w.sink.WriteLine(strings.Join(w.fields, string(w.delim))); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	if err := w.sink.Flush(); err != nil {
		return fmt.Errorf("flush record: %w", err)
	}
	w.fields = w.fields[:0]
	w.count++
	return nil
}

// WriteRecord serializes one record. On the first record of a type the
// schema is resolved and an extraction routine compiled and cached; the
// header, when enabled, is emitted before the first data record and never
// again for this writer.
func (w *Writer) WriteRecord(record schema.Describer) error {
	if err := w.ready(); err != nil {
		return err
	}

	sch, err := w.resolver.Resolve(record)
	if err != nil {
		return err
	}

	if w.header && !w.headerWritten {
		for _, name := range sch.HeaderNames() {
			if err := w.WriteField(name); err != nil {
				return err
			}
		}
		if err := w.NextRecord(); err != nil {
			return err
		}
		w.headerWritten = true
	}

	if err := w.routineFor(sch).run(w, record); err != nil {
		return err
	}
	return w.NextRecord()
}

// WriteRecords writes each record in order, stopping at the first failure.
func WriteRecords[T schema.Describer](w *Writer, records []T) error {
	for _, record := range records {
		if err := w.WriteRecord(record); err != nil {
			return err
		}
	}
	return nil
}

// Count returns the number of completed records, header included.
func (w *Writer) Count() int {
	return w.count
}

// MissedConverters lists converter overrides that could not be resolved
// while compiling extraction routines, one entry per field per type. The
// fields degraded to default conversion; callers may want to warn.
func (w *Writer) MissedConverters() []string {
	return w.misses
}

// Close releases the owned sink exactly once. Safe to call repeatedly; all
// other operations fail with ErrWriterClosed afterwards.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return w.sink.Close()
}
