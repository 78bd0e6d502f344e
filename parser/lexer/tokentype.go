/*
 * declcheck - Declaration checking for a language with generics and interfaces
 *
 * Copyright Flow Foundation
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

package lexer

import (
	"github.com/onflow/declcheck/errors"
)

type TokenType uint8

const EOF rune = -1

const (
	TokenError TokenType = iota
	TokenEOF
	TokenDecimal
	TokenFixedPoint
	TokenIdentifier
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenParenOpen
	TokenParenClose
	TokenBraceOpen
	TokenBraceClose
	TokenComma
	TokenColon
	TokenDot
	TokenSemicolon
	TokenLess
	TokenGreater
	TokenEqual
	TokenEqualEqual
	TokenNot
	TokenNotEqual
)

func (t TokenType) String() string {
	switch t {
	case TokenError:
		return "error"
	case TokenEOF:
		return "EOF"
	case TokenDecimal:
		return "decimal integer"
	case TokenFixedPoint:
		return "fixed-point number"
	case TokenIdentifier:
		return "identifier"
	case TokenPlus:
		return "+"
	case TokenMinus:
		return "-"
	case TokenStar:
		return "*"
	case TokenSlash:
		return "/"
	case TokenParenOpen:
		return "("
	case TokenParenClose:
		return ")"
	case TokenBraceOpen:
		return "{"
	case TokenBraceClose:
		return "}"
	case TokenComma:
		return ","
	case TokenColon:
		return ":"
	case TokenDot:
		return "."
	case TokenSemicolon:
		return ";"
	case TokenLess:
		return "<"
	case TokenGreater:
		return ">"
	case TokenEqual:
		return "="
	case TokenEqualEqual:
		return "=="
	case TokenNot:
		return "!"
	case TokenNotEqual:
		return "!="
	default:
		panic(errors.NewUnreachableError())
	}
}
