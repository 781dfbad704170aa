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
	"bufio"
	"io"
)

// LineSink is the character-output destination a Writer exclusively owns.
// Implementations supply the line terminator. All three operations can fail
// with ordinary I/O errors, which the writer propagates unchanged.
type LineSink interface {
	// WriteLine writes one complete record line, terminator included.
	WriteLine(line string) error

	// Flush pushes any buffered output to the underlying destination.
	Flush() error

	// Close releases the sink. Called exactly once by the owning writer.
	Close() error
}

// streamSink adapts an io.Writer into a buffered LineSink with LF
// termination. closeFunc is set when the sink owns the underlying stream
// (a file), mirroring how the writer side distinguishes stdout from files.
type streamSink struct {
	buf       *bufio.Writer
	closeFunc func() error
}

// NewSink wraps an io.Writer in a buffered, LF-terminated LineSink. The
// caller retains ownership of w; closing the sink only flushes.
func NewSink(w io.Writer) LineSink {
	return &streamSink{buf: bufio.NewWriter(w)}
}

func newOwnedSink(w io.Writer, closeFunc func() error) LineSink {
	return &streamSink{buf: bufio.NewWriter(w), closeFunc: closeFunc}
}

func (s *streamSink) WriteLine(line string) error {
	if _, err := s.buf.WriteString(line); err != nil {
		return err
	}
	return s.buf.WriteByte('\n')
}

func (s *streamSink) Flush() error {
	return s.buf.Flush()
}

func (s *streamSink) Close() error {
	err := s.buf.Flush()
	if s.closeFunc != nil {
		if cerr := s.closeFunc(); err == nil {
			err = cerr
		}
	}
	return err
}
