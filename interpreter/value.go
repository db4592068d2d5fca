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

package interpreter

import (
	"math/big"

	"github.com/turbolent/prettier"

	"github.com/tallylang/tally/errors"
	"github.com/tallylang/tally/format"
)

// Value is an immutable pair of a resolved magnitude
// and an ordered queue of operations that could not be applied yet.
//
// The magnitude is always a non-negative, arbitrary-precision integer.
// There is no representation of negative numbers, infinity, or "undefined":
// work that would require one is recorded in the pending queue instead,
// e.g. `3 - 5` is the magnitude 0 with two pending decrements.
//
// Values never change: every operation application produces a new Value.
type Value struct {
	magnitude *big.Int
	pending   []Operation
}

// newValue constructs a value from the given magnitude and pending queue,
// taking ownership of both.
//
// All internal construction goes through here
// so that the non-negativity invariant is checked in exactly one place.
func newValue(magnitude *big.Int, pending []Operation) Value {
	if magnitude == nil || magnitude.Sign() < 0 {
		panic(errors.NewInvariantViolationError(
			"value magnitude must be a non-negative integer",
		))
	}
	return Value{
		magnitude: magnitude,
		pending:   pending,
	}
}

// NewValue constructs a fully resolved value with the given magnitude.
func NewValue(magnitude uint64) Value {
	return newValue(new(big.Int).SetUint64(magnitude), nil)
}

// NewValueFromBig constructs a fully resolved value with the given magnitude.
// The magnitude is copied and must be non-negative.
func NewValueFromBig(magnitude *big.Int) Value {
	if magnitude == nil || magnitude.Sign() < 0 {
		panic(errors.NewInvariantViolationError(
			"value magnitude must be a non-negative integer",
		))
	}
	return newValue(new(big.Int).Set(magnitude), nil)
}

// Zero returns the canonical zero value: magnitude 0, no pending work.
func Zero() Value {
	return newValue(new(big.Int), nil)
}

// One returns the canonical one value: magnitude 1, no pending work.
func One() Value {
	return newValue(big.NewInt(1), nil)
}

// Magnitude returns a copy of the value's resolved magnitude.
func (v Value) Magnitude() *big.Int {
	return new(big.Int).Set(v.magnitude)
}

// Pending returns a copy of the value's pending operation queue,
// leftmost first.
func (v Value) Pending() []Operation {
	if len(v.pending) == 0 {
		return nil
	}
	pending := make([]Operation, len(v.pending))
	copy(pending, v.pending)
	return pending
}

// PendingLen returns the number of pending operations.
func (v Value) PendingLen() int {
	return len(v.pending)
}

// IsFullyResolved reports whether the value has no pending work left,
// i.e. whether the magnitude is the complete result.
func (v Value) IsFullyResolved() bool {
	return len(v.pending) == 0
}

// Apply applies the given operation to the value using a default engine,
// returning a new value. The receiver is unchanged.
func (v Value) Apply(operation Operation) Value {
	return defaultInterpreter.Apply(v, operation)
}

// Drain re-evaluates the value's pending queue using a default engine.
// Draining a fully resolved or maximally deferred value is a fixed point.
func (v Value) Drain() Value {
	return defaultInterpreter.Drain(v)
}

// Equal reports whether the two values have the same magnitude
// and structurally equal pending queues.
func (v Value) Equal(other Value) bool {
	if v.magnitude.Cmp(other.magnitude) != 0 {
		return false
	}
	if len(v.pending) != len(other.pending) {
		return false
	}
	for i, operation := range v.pending {
		if !operation.Equal(other.pending[i]) {
			return false
		}
	}
	return true
}

func (v Value) String() string {
	var pending []string
	if len(v.pending) > 0 {
		pending = make([]string, len(v.pending))
		for i, operation := range v.pending {
			pending[i] = operation.String()
		}
	}
	return format.Value(
		format.BigInt(v.magnitude),
		pending,
	)
}

func (v Value) Doc() prettier.Doc {
	magnitudeDoc := prettier.Text(format.BigInt(v.magnitude))

	if len(v.pending) == 0 {
		return magnitudeDoc
	}

	var operationsDoc prettier.Concat
	for i, operation := range v.pending {
		if i > 0 {
			operationsDoc = append(
				operationsDoc,
				prettier.Text(","),
				prettier.Line{},
			)
		}
		operationsDoc = append(operationsDoc, operation.Doc())
	}

	return prettier.Concat{
		magnitudeDoc,
		prettier.Group{
			Doc: prettier.Concat{
				prettier.Text("["),
				prettier.Indent{
					Doc: prettier.Concat{
						prettier.SoftLine{},
						operationsDoc,
					},
				},
				prettier.SoftLine{},
				prettier.Text("]"),
			},
		},
	}
}

// withPending returns a value with the same magnitude
// and the given pending queue (ownership transferred).
func (v Value) withPending(pending []Operation) Value {
	return newValue(v.magnitude, pending)
}

// appendPending returns a copy of the value's pending queue
// with the given operations appended.
// The receiver's queue is never mutated, so values sharing it stay intact.
func (v Value) appendPending(operations ...Operation) []Operation {
	pending := make([]Operation, 0, len(v.pending)+len(operations))
	pending = append(pending, v.pending...)
	pending = append(pending, operations...)
	return pending
}
