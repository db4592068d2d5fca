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
	"fmt"
	"os"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/tallylang/tally/interpreter"
)

func RunREPL() {
	printReplWelcome()

	lineNumber := 1
	prettyPrint := false

	environment := map[string]interpreter.Value{}

	executor := func(line string) {
		defer func() {
			lineNumber++
		}()

		if strings.HasPrefix(line, ".") {
			handleCommand(line, &prettyPrint)
			return
		}

		if strings.TrimSpace(line) == "" {
			return
		}

		result, err := evaluate(line, environment)
		if err != nil {
			fmt.Println(colorizeError(err.Error()))
			return
		}

		environment["it"] = result

		fmt.Println(formatValue(result, prettyPrint))
	}

	suggest := func(d prompt.Document) []prompt.Suggest {
		if len(d.GetWordBeforeCursor()) == 0 {
			return nil
		}

		suggests := []prompt.Suggest{
			{Text: ".exit", Description: "Exit the interpreter"},
			{Text: ".help", Description: "Print the help message"},
			{Text: ".pretty", Description: "Toggle pretty printing of results"},
			{Text: "it", Description: "The result of the last expression"},
		}

		return prompt.FilterHasPrefix(suggests, d.GetWordBeforeCursor(), false)
	}

	changeLivePrefix := func() (string, bool) {
		return fmt.Sprintf("%d> ", lineNumber), true
	}

	options := []prompt.Option{
		prompt.OptionLivePrefix(changeLivePrefix),
	}
	prompt.New(executor, suggest, options...).Run()
}

const replHelpMessage = `
Enter arithmetic expressions to evaluate them.
Supported operators are + - * / and the postfix ++ (increment) and -- (decrement).
Results that could not be fully resolved carry their pending operations
in brackets, e.g. 5 / 3 evaluates to 1[Add(2[Divide(3)])].
The name 'it' refers to the result of the last expression.
Commands are prefixed with a dot. Valid commands are:

.exit     Exit the interpreter
.help     Print this help message
.pretty   Toggle pretty printing of results

Press ^C to abort current expression, ^D to exit`

const replAssistanceMessage = `Type '.help' for assistance.`

func handleCommand(command string, prettyPrint *bool) {
	switch command {
	case ".exit":
		os.Exit(0)
	case ".help":
		fmt.Println(replHelpMessage)
	case ".pretty":
		*prettyPrint = !*prettyPrint
	default:
		fmt.Println(colorizeError(fmt.Sprintf("Unknown command. %s", replAssistanceMessage)))
	}
}

func printReplWelcome() {
	fmt.Printf("Welcome to Tally!\n%s\n\n", replAssistanceMessage)
}
