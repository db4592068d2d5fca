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
	"fmt"

	"github.com/turbolent/prettier"

	"github.com/tallylang/tally/format"
)

// Operation is the closed set of arithmetic operations.
//
// Increment and Decrement are the primitives;
// Add, Subtract, Multiply, and Divide are derived from them
// and capture their right-hand operand at construction time.
//
// Operations are immutable and side-effect-free.
// Applying one never fails:
// work that cannot be completed is returned as pending work
// on the resulting value instead.
//
// The set is intentionally closed (see the sealed isOperation marker):
// the engine dispatches over it with an exhaustive type switch,
// so a new operation kind requires extending that switch.
type Operation interface {
	fmt.Stringer
	isOperation()
	Name() string
	Doc() prettier.Doc
	Equal(other Operation) bool
}

// BinaryOperation is an operation that captured a right-hand operand
// at construction time.
type BinaryOperation interface {
	Operation
	Operand() Value
}

// IncrementOperation

// IncrementOperation raises a value's magnitude by one.
// It always fully resolves and never defers.
type IncrementOperation struct{}

var _ Operation = IncrementOperation{}

func NewIncrementOperation() IncrementOperation {
	return IncrementOperation{}
}

func (IncrementOperation) isOperation() {}

func (IncrementOperation) Name() string {
	return "Increment"
}

func (o IncrementOperation) String() string {
	return format.UnaryOperation(o.Name())
}

func (o IncrementOperation) Doc() prettier.Doc {
	return prettier.Text(o.Name())
}

func (IncrementOperation) Equal(other Operation) bool {
	_, ok := other.(IncrementOperation)
	return ok
}

// DecrementOperation

// DecrementOperation lowers a value's magnitude by one.
// At magnitude zero it cannot be applied and defers itself instead.
// This is the sole primitive source of deferred work:
// every other deferral arises from composing or re-applying this case.
type DecrementOperation struct{}

var _ Operation = DecrementOperation{}

func NewDecrementOperation() DecrementOperation {
	return DecrementOperation{}
}

func (DecrementOperation) isOperation() {}

func (DecrementOperation) Name() string {
	return "Decrement"
}

func (o DecrementOperation) String() string {
	return format.UnaryOperation(o.Name())
}

func (o DecrementOperation) Doc() prettier.Doc {
	return prettier.Text(o.Name())
}

func (DecrementOperation) Equal(other Operation) bool {
	_, ok := other.(DecrementOperation)
	return ok
}

// AddOperation

// AddOperation adds the captured operand to the value it is applied to,
// one unit at a time.
type AddOperation struct {
	operand Value
}

var _ BinaryOperation = AddOperation{}

func NewAddOperation(operand Value) AddOperation {
	return AddOperation{operand: operand}
}

func (AddOperation) isOperation() {}

func (AddOperation) Name() string {
	return "Add"
}

func (o AddOperation) Operand() Value {
	return o.operand
}

func (o AddOperation) String() string {
	return format.BinaryOperation(o.Name(), o.operand.String())
}

func (o AddOperation) Doc() prettier.Doc {
	return binaryOperationDoc(o)
}

func (o AddOperation) Equal(other Operation) bool {
	otherAdd, ok := other.(AddOperation)
	return ok && o.operand.Equal(otherAdd.operand)
}

// SubtractOperation

// SubtractOperation subtracts the captured operand from the value
// it is applied to, one unit at a time.
// Subtracting past zero does not produce a negative value:
// it produces magnitude 0 with deferred decrements recording the debt.
type SubtractOperation struct {
	operand Value
}

var _ BinaryOperation = SubtractOperation{}

func NewSubtractOperation(operand Value) SubtractOperation {
	return SubtractOperation{operand: operand}
}

func (SubtractOperation) isOperation() {}

func (SubtractOperation) Name() string {
	return "Subtract"
}

func (o SubtractOperation) Operand() Value {
	return o.operand
}

func (o SubtractOperation) String() string {
	return format.BinaryOperation(o.Name(), o.operand.String())
}

func (o SubtractOperation) Doc() prettier.Doc {
	return binaryOperationDoc(o)
}

func (o SubtractOperation) Equal(other Operation) bool {
	otherSubtract, ok := other.(SubtractOperation)
	return ok && o.operand.Equal(otherSubtract.operand)
}

// MultiplyOperation

// MultiplyOperation multiplies the value it is applied to
// by the captured operand, as repeated addition.
// Multiplying by zero yields zero, uniformly.
type MultiplyOperation struct {
	operand Value
}

var _ BinaryOperation = MultiplyOperation{}

func NewMultiplyOperation(operand Value) MultiplyOperation {
	return MultiplyOperation{operand: operand}
}

func (MultiplyOperation) isOperation() {}

func (MultiplyOperation) Name() string {
	return "Multiply"
}

func (o MultiplyOperation) Operand() Value {
	return o.operand
}

func (o MultiplyOperation) String() string {
	return format.BinaryOperation(o.Name(), o.operand.String())
}

func (o MultiplyOperation) Doc() prettier.Doc {
	return binaryOperationDoc(o)
}

func (o MultiplyOperation) Equal(other Operation) bool {
	otherMultiply, ok := other.(MultiplyOperation)
	return ok && o.operand.Equal(otherMultiply.operand)
}

// DivideOperation

// DivideOperation divides the value it is applied to
// by the captured operand, as repeated subtraction.
// A division that does not come out exactly (including division by zero)
// resolves to the quotient plus a pending addition of the remainder,
// which itself carries the division as eternally pending work.
type DivideOperation struct {
	operand Value
}

var _ BinaryOperation = DivideOperation{}

func NewDivideOperation(operand Value) DivideOperation {
	return DivideOperation{operand: operand}
}

func (DivideOperation) isOperation() {}

func (DivideOperation) Name() string {
	return "Divide"
}

func (o DivideOperation) Operand() Value {
	return o.operand
}

func (o DivideOperation) String() string {
	return format.BinaryOperation(o.Name(), o.operand.String())
}

func (o DivideOperation) Doc() prettier.Doc {
	return binaryOperationDoc(o)
}

func (o DivideOperation) Equal(other Operation) bool {
	otherDivide, ok := other.(DivideOperation)
	return ok && o.operand.Equal(otherDivide.operand)
}

func binaryOperationDoc(operation BinaryOperation) prettier.Doc {
	return prettier.Group{
		Doc: prettier.Concat{
			prettier.Text(operation.Name()),
			prettier.Text("("),
			prettier.Indent{
				Doc: prettier.Concat{
					prettier.SoftLine{},
					operation.Operand().Doc(),
				},
			},
			prettier.SoftLine{},
			prettier.Text(")"),
		},
	}
}
