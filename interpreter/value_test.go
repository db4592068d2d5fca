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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallylang/tally/errors"
)

func TestNewValue(t *testing.T) {

	t.Parallel()

	value := NewValue(42)

	assert.Equal(t, int64(42), value.Magnitude().Int64())
	assert.True(t, value.IsFullyResolved())
	assert.Equal(t, "42", value.String())
}

func TestNewValueFromBig(t *testing.T) {

	t.Parallel()

	t.Run("copies the magnitude", func(t *testing.T) {
		t.Parallel()

		magnitude := big.NewInt(7)
		value := NewValueFromBig(magnitude)

		magnitude.SetInt64(99)

		assert.Equal(t, int64(7), value.Magnitude().Int64())
	})

	t.Run("negative magnitude violates the invariant", func(t *testing.T) {
		t.Parallel()

		defer func() {
			recovered := recover()
			require.NotNil(t, recovered)

			err, ok := recovered.(error)
			require.True(t, ok)

			var internalError errors.InternalError
			require.ErrorAs(t, err, &internalError)

			var invariantViolation *errors.InvariantViolationError
			require.ErrorAs(t, err, &invariantViolation)
		}()

		_ = NewValueFromBig(big.NewInt(-1))
	})

	t.Run("nil magnitude violates the invariant", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			_ = NewValueFromBig(nil)
		})
	})
}

func TestCanonicalConstants(t *testing.T) {

	t.Parallel()

	zero := Zero()
	one := One()

	assert.Equal(t, int64(0), zero.Magnitude().Int64())
	assert.Equal(t, int64(1), one.Magnitude().Int64())
	assert.True(t, zero.IsFullyResolved())
	assert.True(t, one.IsFullyResolved())

	// each call returns an independent value
	first := Zero().Magnitude()
	first.SetInt64(5)
	assert.Equal(t, int64(0), Zero().Magnitude().Int64())
}

func TestValueEqual(t *testing.T) {

	t.Parallel()

	t.Run("magnitudes", func(t *testing.T) {
		t.Parallel()

		assert.True(t, NewValue(3).Equal(NewValue(3)))
		assert.False(t, NewValue(3).Equal(NewValue(4)))
	})

	t.Run("pending queues", func(t *testing.T) {
		t.Parallel()

		a := Zero().Apply(NewDecrementOperation())
		b := Zero().Apply(NewDecrementOperation())
		assert.True(t, a.Equal(b))

		assert.False(t, a.Equal(Zero()))
		assert.False(t, Zero().Equal(a))
	})

	t.Run("captured operands compare structurally", func(t *testing.T) {
		t.Parallel()

		a := NewValue(5).Apply(NewDivideOperation(NewValue(3)))
		b := NewValue(5).Apply(NewDivideOperation(NewValue(3)))
		c := NewValue(5).Apply(NewDivideOperation(NewValue(4)))

		assert.True(t, a.Equal(b))
		assert.False(t, a.Equal(c))
	})
}

func TestValuePendingIsACopy(t *testing.T) {

	t.Parallel()

	value := NewValue(3).Apply(NewSubtractOperation(NewValue(5)))
	require.Equal(t, 2, value.PendingLen())

	pending := value.Pending()
	pending[0] = NewIncrementOperation()

	assert.Equal(t,
		NewDecrementOperation(),
		value.Pending()[0],
	)
}

func TestValueString(t *testing.T) {

	t.Parallel()

	for _, test := range []struct {
		value    Value
		expected string
	}{
		{NewValue(0), "0"},
		{NewValue(123), "123"},
		{Zero().Apply(NewDecrementOperation()), "0[Decrement]"},
		{
			NewValue(3).Apply(NewSubtractOperation(NewValue(5))),
			"0[Decrement, Decrement]",
		},
		{
			NewValue(5).Apply(NewDivideOperation(NewValue(3))),
			"1[Add(2[Divide(3)])]",
		},
		{
			NewValue(5).Apply(NewDivideOperation(Zero())),
			"0[Add(5[Divide(0)])]",
		},
	} {
		assert.Equal(t, test.expected, test.value.String())
	}
}
