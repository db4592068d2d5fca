/*
 * Tally - arithmetic as an explicit, inspectable computation
 *
 * Copyright Tally Contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package errors

import (
	"fmt"
	"runtime/debug"
)

// InternalError is an implementation error, e.g. an unreachable code path
// or a broken engine invariant.
//
// InternalError s must always be thrown and not be caught (recovered),
// i.e. be propagated up the call stack.
//
// Note that the engine has no user-facing error kind at all:
// underflowing subtractions, divisions by zero, and non-terminating
// divisions are valid results, represented as values with pending work.
type InternalError interface {
	error
	IsInternalError()
}

// UnreachableError

// UnreachableError is an internal error which should have never occurred
// due to a programming error,
// e.g. a type switch over the closed set of operations reaching its default case.
type UnreachableError struct {
	Stack []byte
}

var _ InternalError = UnreachableError{}

func NewUnreachableError() *UnreachableError {
	return &UnreachableError{Stack: debug.Stack()}
}

func (e UnreachableError) Error() string {
	return fmt.Sprintf("unreachable\n%s", e.Stack)
}

func (e UnreachableError) IsInternalError() {}

// InvariantViolationError

// InvariantViolationError is an internal error raised when a value
// would be constructed with a negative magnitude.
//
// The public operation API never produces one:
// every operation that would take a magnitude below zero
// defers the work instead.
// If this error occurs, it signals a bug in the engine itself,
// so it aborts the current computation and must not be recovered.
type InvariantViolationError struct {
	Message string
	Stack   []byte
}

var _ InternalError = InvariantViolationError{}

func NewInvariantViolationError(message string) *InvariantViolationError {
	return &InvariantViolationError{
		Message: message,
		Stack:   debug.Stack(),
	}
}

func (e InvariantViolationError) Error() string {
	return fmt.Sprintf("invariant violation: %s\n%s", e.Message, e.Stack)
}

func (e InvariantViolationError) IsInternalError() {}
