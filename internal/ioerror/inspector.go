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

// Package ioerror classifies sink I/O failures. It centralizes the logic for
// identifying what went wrong with the output stream, eliminating string-based
// error checking throughout the codebase.
package ioerror

import (
	"errors"
	"io"
	"os"
	"strings"
	"syscall"
)

// Inspector classifies errors that surface from the output sink.
type Inspector interface {
	// IsBrokenPipe returns true when the downstream consumer closed early
	// (pipes into head, pagers, and the like).
	IsBrokenPipe(err error) bool

	// IsNoSpace returns true when the destination device is full.
	IsNoSpace(err error) bool

	// IsClosed returns true when the underlying file was already closed.
	IsClosed(err error) bool
}

// SinkErrorInspector implements the Inspector interface for sink failures.
type SinkErrorInspector struct{}

// NewInspector creates a new SinkErrorInspector.
func NewInspector() Inspector {
	return &SinkErrorInspector{}
}

// IsBrokenPipe checks for EPIPE and closed-pipe conditions.
func (i *SinkErrorInspector) IsBrokenPipe(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "broken pipe")
}

// IsNoSpace checks for ENOSPC and disk-quota conditions.
func (i *SinkErrorInspector) IsNoSpace(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, syscall.ENOSPC) {
		return true
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "no space left") ||
		strings.Contains(errStr, "disk quota exceeded")
}

// IsClosed checks whether the file backing the sink was already closed.
func (i *SinkErrorInspector) IsClosed(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, os.ErrClosed) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "file already closed")
}
