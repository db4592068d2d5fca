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

package format

import (
	"fmt"
	"math/big"
	"strings"
)

func BigInt(v *big.Int) string {
	return v.String()
}

// Value renders a magnitude together with its pending operations:
// just the magnitude if there are none,
// otherwise the magnitude followed by the bracketed, comma-separated operations,
// e.g. "1[Add(2[Divide(3)])]".
func Value(magnitude string, pending []string) string {
	if len(pending) == 0 {
		return magnitude
	}

	var builder strings.Builder
	builder.WriteString(magnitude)
	builder.WriteRune('[')
	for i, operation := range pending {
		if i > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(operation)
	}
	builder.WriteRune(']')
	return builder.String()
}

// UnaryOperation renders a primitive operation as its bare name.
func UnaryOperation(name string) string {
	return name
}

// BinaryOperation renders an operation together with its captured operand,
// e.g. "Divide(3)".
func BinaryOperation(name string, operand string) string {
	return fmt.Sprintf("%s(%s)", name, operand)
}
