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

type stateFn func(*lexer) stateFn

func rootState(l *lexer) stateFn {
	for {
		l.startToken()
		r := l.next()
		switch r {
		case EOF:
			l.emitType(TokenEOF)
			return nil
		case ' ', '\t', '\r', '\n':
			continue
		case '+':
			l.emitType(TokenPlus)
		case '-':
			l.emitType(TokenMinus)
		case '*':
			l.emitType(TokenStar)
		case '(':
			l.emitType(TokenParenOpen)
		case ')':
			l.emitType(TokenParenClose)
		case '{':
			l.emitType(TokenBraceOpen)
		case '}':
			l.emitType(TokenBraceClose)
		case ',':
			l.emitType(TokenComma)
		case ':':
			l.emitType(TokenColon)
		case '.':
			l.emitType(TokenDot)
		case ';':
			l.emitType(TokenSemicolon)
		case '<':
			l.emitType(TokenLess)
		case '>':
			l.emitType(TokenGreater)
		case '=':
			if l.acceptOne('=') {
				l.emitType(TokenEqualEqual)
			} else {
				l.emitType(TokenEqual)
			}
		case '!':
			if l.acceptOne('=') {
				l.emitType(TokenNotEqual)
			} else {
				l.emitType(TokenNot)
			}
		case '/':
			switch {
			case l.acceptOne('/'):
				return lineCommentState
			case l.acceptOne('*'):
				return blockCommentState(0)
			default:
				l.emitType(TokenSlash)
			}
		default:
			switch {
			case isDecimalDigit(r):
				return numberState
			case isIdentifierHead(r):
				return identifierState
			default:
				l.emitError("unrecognized character: %#U", r)
			}
		}
	}
}

func numberState(l *lexer) stateFn {
	l.acceptWhile(isDecimalDigit)
	if l.peek() == '.' && isDecimalDigit(l.peekAt(1)) {
		l.next()
		l.acceptWhile(isDecimalDigit)
		l.emitValue(TokenFixedPoint)
	} else {
		l.emitValue(TokenDecimal)
	}
	return rootState
}

func identifierState(l *lexer) stateFn {
	l.acceptWhile(isIdentifierTail)
	l.emitValue(TokenIdentifier)
	return rootState
}

func lineCommentState(l *lexer) stateFn {
	l.acceptWhile(func(r rune) bool {
		return r != '\n'
	})
	return rootState
}

func blockCommentState(nesting int) stateFn {
	if nesting < 0 {
		return rootState
	}

	return func(l *lexer) stateFn {
		r := l.next()
		switch r {
		case EOF:
			l.emitError("missing comment end")
			l.startToken()
			l.emitType(TokenEOF)
			return nil
		case '/':
			if l.acceptOne('*') {
				return blockCommentState(nesting + 1)
			}
		case '*':
			if l.acceptOne('/') {
				return blockCommentState(nesting - 1)
			}
		}
		return blockCommentState(nesting)
	}
}

func isDecimalDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentifierHead(r rune) bool {
	return r >= 'a' && r <= 'z' ||
		r >= 'A' && r <= 'Z' ||
		r == '_'
}

func isIdentifierTail(r rune) bool {
	return isIdentifierHead(r) || isDecimalDigit(r)
}
