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

package execute

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallylang/tally/interpreter"
)

func TestEvaluate(t *testing.T) {

	t.Parallel()

	for _, test := range []struct {
		input    string
		expected string
	}{
		{"5 + 3", "8"},
		{"3 - 5", "0[Decrement, Decrement]"},
		{"3 * 4", "12"},
		{"6 / 3", "2"},
		{"5 / 3", "1[Add(2[Divide(3)])]"},
		{"5 / 0", "0[Add(5[Divide(0)])]"},
		{"7 / 2 * 2", "7"},
		{"(1 + 2) * 3", "9"},
		{"4++", "5"},
		{"0--", "0[Decrement]"},
		{"0-- --", "0[Decrement, Decrement]"},
		{"(0--)++", "0"},
		{"123456789012345678901234567890 + 1", "123456789012345678901234567891"},
	} {
		test := test

		t.Run(test.input, func(t *testing.T) {
			t.Parallel()

			result, err := evaluate(test.input, nil)
			require.NoError(t, err)

			assert.Equal(t, test.expected, result.String())
		})
	}
}

func TestEvaluateEnvironment(t *testing.T) {

	t.Parallel()

	environment := map[string]interpreter.Value{
		"it": interpreter.NewValue(5),
	}

	result, err := evaluate("it + 3", environment)
	require.NoError(t, err)

	assert.Equal(t, "8", result.String())
}

func TestEvaluateErrors(t *testing.T) {

	t.Parallel()

	for _, test := range []struct {
		input    string
		expected string
	}{
		{"", "unexpected end of expression"},
		{"1 +", "unexpected end of expression"},
		{"(1 + 2", "missing closing parenthesis at position 6"},
		{"1 2", `unexpected character '2' at position 2`},
		{")", `unexpected character ')' at position 0`},
		{"foo", `undefined name "foo"`},
	} {
		test := test

		t.Run(test.input, func(t *testing.T) {
			t.Parallel()

			_, err := evaluate(test.input, nil)
			require.Error(t, err)

			assert.Equal(t, test.expected, err.Error())
		})
	}
}
