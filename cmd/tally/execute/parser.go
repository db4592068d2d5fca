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
	"math/big"
	"strings"

	"github.com/tallylang/tally/interpreter"
)

// evaluate parses an infix arithmetic expression and applies its operations
// left to right within each precedence level.
//
//	expression : term (('+' | '-') term)*
//	term       : factor (('*' | '/') factor)*
//	factor     : (number | identifier | '(' expression ')') ('++' | '--')*
//
// Identifiers resolve against the given environment.
func evaluate(input string, environment map[string]interpreter.Value) (interpreter.Value, error) {
	p := &parser{input: input}

	result, err := p.parseExpression(environment)
	if err != nil {
		return interpreter.Value{}, err
	}

	p.skipSpace()
	if !p.atEnd() {
		return interpreter.Value{}, fmt.Errorf(
			"unexpected character %q at position %d",
			p.input[p.pos],
			p.pos,
		)
	}

	return result, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) atEnd() bool {
	return p.pos >= len(p.input)
}

func (p *parser) skipSpace() {
	for !p.atEnd() {
		switch p.input[p.pos] {
		case ' ', '\t':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) peek() byte {
	if p.atEnd() {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) accept(prefix string) bool {
	if strings.HasPrefix(p.input[p.pos:], prefix) {
		p.pos += len(prefix)
		return true
	}
	return false
}

func (p *parser) parseExpression(environment map[string]interpreter.Value) (interpreter.Value, error) {
	left, err := p.parseTerm(environment)
	if err != nil {
		return interpreter.Value{}, err
	}

	for {
		p.skipSpace()
		switch p.peek() {
		case '+':
			p.pos++
			right, err := p.parseTerm(environment)
			if err != nil {
				return interpreter.Value{}, err
			}
			left = left.Apply(interpreter.NewAddOperation(right))

		case '-':
			p.pos++
			right, err := p.parseTerm(environment)
			if err != nil {
				return interpreter.Value{}, err
			}
			left = left.Apply(interpreter.NewSubtractOperation(right))

		default:
			return left, nil
		}
	}
}

func (p *parser) parseTerm(environment map[string]interpreter.Value) (interpreter.Value, error) {
	left, err := p.parseFactor(environment)
	if err != nil {
		return interpreter.Value{}, err
	}

	for {
		p.skipSpace()
		switch p.peek() {
		case '*':
			p.pos++
			right, err := p.parseFactor(environment)
			if err != nil {
				return interpreter.Value{}, err
			}
			left = left.Apply(interpreter.NewMultiplyOperation(right))

		case '/':
			p.pos++
			right, err := p.parseFactor(environment)
			if err != nil {
				return interpreter.Value{}, err
			}
			left = left.Apply(interpreter.NewDivideOperation(right))

		default:
			return left, nil
		}
	}
}

func (p *parser) parseFactor(environment map[string]interpreter.Value) (interpreter.Value, error) {
	p.skipSpace()

	var value interpreter.Value

	switch {
	case p.peek() == '(':
		p.pos++
		inner, err := p.parseExpression(environment)
		if err != nil {
			return interpreter.Value{}, err
		}
		p.skipSpace()
		if p.peek() != ')' {
			return interpreter.Value{}, fmt.Errorf(
				"missing closing parenthesis at position %d",
				p.pos,
			)
		}
		p.pos++
		value = inner

	case isDigit(p.peek()):
		start := p.pos
		for !p.atEnd() && isDigit(p.input[p.pos]) {
			p.pos++
		}
		literal := p.input[start:p.pos]
		magnitude, ok := new(big.Int).SetString(literal, 10)
		if !ok {
			return interpreter.Value{}, fmt.Errorf("invalid number literal %q", literal)
		}
		value = interpreter.NewValueFromBig(magnitude)

	case isLetter(p.peek()):
		start := p.pos
		for !p.atEnd() && (isLetter(p.input[p.pos]) || isDigit(p.input[p.pos])) {
			p.pos++
		}
		name := p.input[start:p.pos]
		bound, ok := environment[name]
		if !ok {
			return interpreter.Value{}, fmt.Errorf("undefined name %q", name)
		}
		value = bound

	case p.atEnd():
		return interpreter.Value{}, fmt.Errorf("unexpected end of expression")

	default:
		return interpreter.Value{}, fmt.Errorf(
			"unexpected character %q at position %d",
			p.input[p.pos],
			p.pos,
		)
	}

	for {
		p.skipSpace()
		switch {
		case p.accept("++"):
			value = value.Apply(interpreter.NewIncrementOperation())
		case p.accept("--"):
			value = value.Apply(interpreter.NewDecrementOperation())
		default:
			return value, nil
		}
	}
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' ||
		'A' <= c && c <= 'Z' ||
		c == '_'
}
