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
	"strings"

	"github.com/logrusorgru/aurora/v4"
	"github.com/turbolent/prettier"

	"github.com/tallylang/tally/interpreter"
)

func colorizeResult(str string) string {
	return aurora.Colorize(str, aurora.YellowFg|aurora.BrightFg).String()
}

func formatValue(value interpreter.Value, pretty bool) string {
	var str string
	if pretty {
		str = prettyValue(value)
	} else {
		str = value.String()
	}
	return colorizeResult(str)
}

func prettyValue(value interpreter.Value) string {
	var builder strings.Builder
	prettier.Prettier(&builder, value.Doc(), 80, "    ")
	return builder.String()
}

func colorizeError(message string) string {
	return aurora.Colorize(message, aurora.RedFg|aurora.BrightFg|aurora.BoldFm).String()
}
