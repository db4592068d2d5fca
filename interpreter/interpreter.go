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

	"github.com/tallylang/tally/errors"
)

// DefaultMaxDrainDepth is the default bound on nested re-entry
// into the drain loop.
//
// The bound is an engineering safety valve, not a mathematical claim:
// it guarantees that a single Apply call always terminates in bounded work,
// even when the underlying arithmetic process does not
// (e.g. a division by zero whose remainder re-divides forever).
// Once the bound is hit, the remaining operations are returned
// as pending work, unattempted.
const DefaultMaxDrainDepth = 10

// Option is a function that configures an interpreter.
type Option func(*Interpreter)

// WithMaxDrainDepth returns an interpreter option which sets
// the bound on nested re-entry into the drain loop.
func WithMaxDrainDepth(depth int) Option {
	return func(interpreter *Interpreter) {
		interpreter.maxDrainDepth = depth
	}
}

// Interpreter evaluates operations against values.
//
// It holds no mutable evaluation state:
// the re-entry depth is threaded through each top-level Apply call
// explicitly, so unrelated calls never observe each other's depth.
type Interpreter struct {
	maxDrainDepth int
}

func NewInterpreter(options ...Option) *Interpreter {
	interpreter := &Interpreter{
		maxDrainDepth: DefaultMaxDrainDepth,
	}
	for _, option := range options {
		option(interpreter)
	}
	return interpreter
}

var defaultInterpreter = NewInterpreter()

var bigOne = big.NewInt(1)

// Apply appends the operation to the value's pending queue
// and drains the queue as far as possible.
// This is the single entry point for performing an arithmetic step.
func (interpreter *Interpreter) Apply(value Value, operation Operation) Value {
	return interpreter.drain(
		value.withPending(value.appendPending(operation)),
		0,
	)
}

// Drain re-evaluates the value's pending queue without adding new work.
// Draining a fully resolved or maximally deferred value is a fixed point.
func (interpreter *Interpreter) Drain(value Value) Value {
	return interpreter.drain(value, 0)
}

// drain applies the value's pending operations, leftmost first,
// repeating until the value no longer changes (a fixed point)
// or the depth bound is exceeded.
//
// Repetition matters: an operation applied late in a pass may raise
// the magnitude and thereby make an operation deferred earlier in the
// same pass applicable, e.g. `0[Decrement]` followed by an increment.
func (interpreter *Interpreter) drain(value Value, depth int) Value {
	for {
		result, bounded := interpreter.drainPass(value, depth)
		if bounded || result.Equal(value) {
			return result
		}
		value = result
		depth++
	}
}

// drainPass attempts each queued operation exactly once, in order.
// Each operation is applied to the magnitude plus the work deferred
// so far in this pass, so freshly produced deferred work always
// precedes operations that have not been attempted yet.
//
// The second result reports whether the depth bound cut the pass short.
func (interpreter *Interpreter) drainPass(value Value, depth int) (Value, bool) {
	current := value.withPending(nil)
	queue := value.pending

	for len(queue) > 0 {
		if depth > interpreter.maxDrainDepth {
			// Out of budget: the untried operations are preserved
			// behind the deferred work, unattempted.
			return current.withPending(current.appendPending(queue...)), true
		}

		operation := queue[0]
		queue = queue[1:]

		current = interpreter.applyOperation(operation, current, depth)
	}

	return current, false
}

// applyOperation dispatches over the closed set of operations.
// The receiver carries the work already deferred during the current pass.
func (interpreter *Interpreter) applyOperation(
	operation Operation,
	receiver Value,
	depth int,
) Value {
	switch operation := operation.(type) {
	case IncrementOperation:
		return increment(receiver)
	case DecrementOperation:
		return decrement(receiver)
	case AddOperation:
		return interpreter.applyAdd(receiver, operation.operand, depth)
	case SubtractOperation:
		return interpreter.applySubtract(receiver, operation.operand, depth)
	case MultiplyOperation:
		return interpreter.applyMultiply(receiver, operation.operand, depth)
	case DivideOperation:
		return interpreter.applyDivide(receiver, operation.operand, depth)
	default:
		panic(errors.NewUnreachableError())
	}
}

// increment raises the magnitude by one, keeping pending work.
// It always fully resolves.
func increment(value Value) Value {
	return newValue(
		new(big.Int).Add(value.magnitude, bigOne),
		value.pending,
	)
}

// decrement lowers the magnitude by one, keeping pending work.
// At magnitude zero the decrement cannot be applied and defers itself.
// All deferred work in the system originates here.
func decrement(value Value) Value {
	if value.magnitude.Sign() > 0 {
		return newValue(
			new(big.Int).Sub(value.magnitude, bigOne),
			value.pending,
		)
	}
	return value.withPending(
		value.appendPending(NewDecrementOperation()),
	)
}

// applyAdd adds the operand to the receiver one unit at a time:
// increment the receiver and decrement the operand
// until the operand's magnitude reaches zero.
//
// An operand that arrives with pending work is drained first,
// so resolvable debt (e.g. an exact division) is consumed as a plain
// magnitude. Leftover deferred decrements are replayed onto the
// receiver instead of being lost. Anything else, such as a division
// that does not terminate, cannot be folded in, and the addition
// defers itself with the operand as it was captured.
func (interpreter *Interpreter) applyAdd(
	receiver Value,
	operand Value,
	depth int,
) Value {
	b := operand
	if len(b.pending) > 0 {
		b = interpreter.drain(b, depth+1)
	}

	if len(b.pending) > 0 && !allDecrements(b.pending) {
		return receiver.withPending(
			receiver.appendPending(NewAddOperation(operand)),
		)
	}

	for b.magnitude.Sign() > 0 {
		receiver = increment(receiver)
		b = decrement(b)
	}

	if len(b.pending) > 0 {
		// Replay: the operand's deferred decrements fold onto the receiver.
		return interpreter.drain(
			receiver.withPending(receiver.appendPending(b.pending...)),
			depth+1,
		)
	}

	return receiver
}

// applySubtract subtracts the operand from the receiver one unit at a
// time: decrement both until the operand's magnitude reaches zero.
// Subtracting past zero leaves magnitude 0 with deferred decrements
// recording the debt.
//
// Leftover pending work on the operand is folded back via addition,
// mirroring applyAdd's replay rule.
func (interpreter *Interpreter) applySubtract(
	receiver Value,
	operand Value,
	depth int,
) Value {
	b := operand
	if len(b.pending) > 0 {
		b = interpreter.drain(b, depth+1)
	}

	for b.magnitude.Sign() > 0 {
		receiver = decrement(receiver)
		b = decrement(b)
	}

	if len(b.pending) > 0 {
		return interpreter.applyAdd(receiver, b, depth)
	}

	return receiver
}

// applyMultiply multiplies the receiver by the operand
// as repeated addition: a total accumulates one whole receiver
// magnitude per unit of the operand, counted down to zero,
// so multiplying by zero yields zero, uniformly.
//
// Work deferred on the receiver scales along with it:
// a deferred addition scales its operand, a deferred decrement
// becomes a subtraction of the factor, and a deferred division
// commutes with scaling unchanged. This is what lets a division's
// pending remainder fold back in when multiplied by the divisor.
func (interpreter *Interpreter) applyMultiply(
	receiver Value,
	operand Value,
	depth int,
) Value {
	k := operand
	if len(k.pending) > 0 {
		k = interpreter.drain(k, depth+1)
	}
	if len(k.pending) > 0 {
		return receiver.withPending(
			receiver.appendPending(NewMultiplyOperation(operand)),
		)
	}

	factor := newValue(new(big.Int).Set(receiver.magnitude), nil)
	total := Zero()
	for counter := k.withPending(nil); counter.magnitude.Sign() > 0; counter = decrement(counter) {
		total = interpreter.applyAdd(total, factor, depth+1)
	}

	if len(receiver.pending) == 0 {
		return total
	}

	scaled := make([]Operation, 0, len(receiver.pending))
	for _, operation := range receiver.pending {
		scaled = append(scaled, interpreter.scaleOperation(operation, k, depth))
	}

	return interpreter.drain(total.withPending(scaled), depth+1)
}

// scaleOperation rewrites a deferred operation so that it has the same
// effect after the value it was deferred on has been multiplied by k.
func (interpreter *Interpreter) scaleOperation(
	operation Operation,
	k Value,
	depth int,
) Operation {
	switch operation := operation.(type) {
	case IncrementOperation:
		return NewAddOperation(k.withPending(nil))
	case DecrementOperation:
		return NewSubtractOperation(k.withPending(nil))
	case AddOperation:
		return NewAddOperation(
			interpreter.applyMultiply(operation.operand, k, depth+1),
		)
	case SubtractOperation:
		return NewSubtractOperation(
			interpreter.applyMultiply(operation.operand, k, depth+1),
		)
	case MultiplyOperation:
		return operation
	case DivideOperation:
		return operation
	default:
		panic(errors.NewUnreachableError())
	}
}

// applyDivide divides the receiver by the operand as repeated
// subtraction, incrementing a quotient per subtracted divisor.
//
// A division that comes out exactly resolves to the quotient alone.
// Otherwise the result is the quotient plus one deferred addition
// whose operand is the remainder carrying the division as pending
// work, the record of a subtraction process that never terminates.
// Division by zero is the extreme case: quotient zero, and the whole
// dividend remains pending. Neither is an error.
func (interpreter *Interpreter) applyDivide(
	receiver Value,
	operand Value,
	depth int,
) Value {
	k := operand
	if len(k.pending) > 0 {
		k = interpreter.drain(k, depth+1)
	}

	// An unresolved divisor or dividend cannot be divided yet;
	// the division waits behind the work it depends on.
	if len(k.pending) > 0 || len(receiver.pending) > 0 {
		return receiver.withPending(
			receiver.appendPending(NewDivideOperation(operand)),
		)
	}

	divisor := k.withPending(nil)
	quotient := Zero()
	remainder := newValue(new(big.Int).Set(receiver.magnitude), nil)

	for divisor.magnitude.Sign() > 0 &&
		remainder.magnitude.Cmp(divisor.magnitude) >= 0 {

		remainder = interpreter.applySubtract(remainder, divisor, depth+1)
		quotient = increment(quotient)
	}

	if remainder.magnitude.Sign() == 0 && divisor.magnitude.Sign() > 0 {
		return quotient
	}

	return quotient.withPending([]Operation{
		NewAddOperation(
			remainder.withPending([]Operation{
				NewDivideOperation(divisor),
			}),
		),
	})
}

func allDecrements(operations []Operation) bool {
	for _, operation := range operations {
		if _, ok := operation.(DecrementOperation); !ok {
			return false
		}
	}
	return true
}
