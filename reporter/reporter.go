// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package reporter

import (
	"errors"
	"sync"
)

// ErrInvalidInput is returned by [Handler.Error] when errors were reported
// but the configured [ErrorReporter] swallowed all of them.
var ErrInvalidInput = errors.New("one or more inputs could not be processed")

// ErrorReporter is responsible for reporting the given error. If the reporter
// returns a non-nil error, processing will abort with that error. If the
// reporter returns nil, processing will continue with the next input,
// allowing callers to see as many failures as possible in one run.
type ErrorReporter func(err error) error

// Handler funnels errors from many concurrent operations through an
// [ErrorReporter]. The first error returned by the reporter sticks.
type Handler struct {
	reporter ErrorReporter

	mu           sync.Mutex
	errsReported bool
	err          error
}

// NewHandler returns a new handler. If rep is nil, every reported error
// aborts processing.
func NewHandler(rep ErrorReporter) *Handler {
	if rep == nil {
		rep = func(err error) error { return err }
	}
	return &Handler{reporter: rep}
}

// HandleError reports err. It returns non-nil if processing should stop.
func (h *Handler) HandleError(err error) error {
	if err == nil {
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.err != nil {
		return h.err
	}
	h.errsReported = true
	h.err = h.reporter(err)
	return h.err
}

// Error returns the error that processing should fail with, if any.
func (h *Handler) Error() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.errsReported && h.err == nil {
		return ErrInvalidInput
	}
	return h.err
}

// ReporterError returns the error returned by the reporter, ignoring
// swallowed errors.
func (h *Handler) ReporterError() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.err
}
