// Copyright 2020 The Cockroach Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package colerror provides the panic-based error propagation used by the
// columnar comparison code: hot paths throw classified panics instead of
// returning errors, and a single recovery point converts them back into
// error returns.
package colerror

import (
	"github.com/cockroachdb/errors"
)

// CatchRuntimeError executes operation, catches any panic thrown by it, and
// returns the panic converted into an error. Panics thrown via InternalError
// and runtime errors (such as an index-out-of-range violation caused by
// calling a comparator with a row index outside of the bound tables) come
// back as assertion failures; panics thrown via ExpectedError come back as
// the original error.
func CatchRuntimeError(operation func()) (retErr error) {
	defer func() {
		panicObj := recover()
		if panicObj == nil {
			// No panic happened, so the operation must have been executed
			// successfully.
			return
		}
		err, ok := panicObj.(error)
		if !ok {
			// Not an error object. Definitely unexpected.
			retErr = errors.AssertionFailedf("unexpected panic: %+v", panicObj)
			return
		}
		var nie *notInternalError
		if errors.As(err, &nie) {
			// The error was thrown via ExpectedError and is to be returned
			// to the caller as is.
			retErr = err
			return
		}
		if !errors.HasAssertionFailure(err) {
			// All other panics indicate an unexpected state, so we annotate
			// the error accordingly (unless it already is an assertion
			// failure).
			retErr = errors.NewAssertionErrorWithWrappedErrf(err, "unexpected runtime error")
			return
		}
		retErr = err
	}()
	operation()
	return retErr
}

// InternalError simply panics with the provided error. It will always be
// caught by CatchRuntimeError and returned as an assertion failure with the
// corresponding stack trace. This method should be called to propagate
// errors that indicate an *unexpected* state.
func InternalError(err error) {
	panic(err)
}

// ExpectedError panics with the error wrapped by notInternalError, which
// CatchRuntimeError unwraps without treating it as an assertion failure.
// This method should be called to propagate errors that are *expected* to
// occur.
func ExpectedError(err error) {
	panic(newNotInternalError(err))
}

// notInternalError is an error that occurred not because the columnar code
// is in an unexpected state.
type notInternalError struct {
	cause error
}

func newNotInternalError(err error) *notInternalError {
	return &notInternalError{cause: err}
}

var (
	_ errors.Wrapper = &notInternalError{}
)

func (e *notInternalError) Error() string { return e.cause.Error() }
func (e *notInternalError) Cause() error  { return e.cause }
func (e *notInternalError) Unwrap() error { return e.Cause() }
