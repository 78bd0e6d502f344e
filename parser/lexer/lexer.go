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
	"fmt"
	"unicode/utf8"

	"github.com/onflow/declcheck/ast"
)

type Token struct {
	Type  TokenType
	Value string
	ast.Range
}

func (t Token) Is(ty TokenType) bool {
	return t.Type == ty
}

func (t Token) IsString(ty TokenType, s string) bool {
	return t.Type == ty && t.Value == s
}

type lexer struct {
	input []byte
	// startOffset is the offset of the token which is currently lexed
	startOffset int
	// startPos is the position of the token which is currently lexed
	startPos ast.Position
	// endOffset is the offset after the last consumed rune
	endOffset int
	// pos is the position of endOffset
	pos    ast.Position
	tokens []Token
}

// Lex splits the input into tokens.
// The result always ends in a TokenEOF.
// Unrecognized characters produce TokenError tokens,
// whose value is a description of the problem.
func Lex(input []byte) []Token {
	l := &lexer{
		input: input,
		pos: ast.Position{
			Line: 1,
		},
	}
	l.run(rootState)
	return l.tokens
}

func (l *lexer) run(state stateFn) {
	for state != nil {
		state = state(l)
	}
}

// startToken marks the beginning of a new token at the current position
func (l *lexer) startToken() {
	l.startOffset = l.endOffset
	l.startPos = l.pos
}

// next consumes and returns the next rune, or EOF
func (l *lexer) next() rune {
	if l.endOffset >= len(l.input) {
		return EOF
	}

	r, width := utf8.DecodeRune(l.input[l.endOffset:])
	l.endOffset += width

	if r == '\n' {
		l.pos = ast.Position{
			Offset: l.endOffset,
			Line:   l.pos.Line + 1,
			Column: 0,
		}
	} else {
		l.pos = ast.Position{
			Offset: l.endOffset,
			Line:   l.pos.Line,
			Column: l.pos.Column + width,
		}
	}

	return r
}

// peek returns the next rune without consuming it
func (l *lexer) peek() rune {
	return l.peekAt(0)
}

// peekAt returns the rune the given number of bytes after the next rune,
// without consuming anything. Only used for ASCII lookahead.
func (l *lexer) peekAt(n int) rune {
	offset := l.endOffset + n
	if offset >= len(l.input) {
		return EOF
	}
	r, _ := utf8.DecodeRune(l.input[offset:])
	return r
}

// acceptOne consumes the next rune if it is the expected one
func (l *lexer) acceptOne(expected rune) bool {
	if l.peek() != expected {
		return false
	}
	l.next()
	return true
}

func (l *lexer) acceptWhile(f func(rune) bool) {
	for {
		r := l.peek()
		if r == EOF || !f(r) {
			return
		}
		l.next()
	}
}

func (l *lexer) word() string {
	return string(l.input[l.startOffset:l.endOffset])
}

// emit appends a token spanning from the token start to the last consumed rune.
// Tokens never span lines.
func (l *lexer) emit(ty TokenType, value string) {
	endOffset := l.endOffset - 1
	if endOffset < l.startOffset {
		endOffset = l.startOffset
	}

	endPos := ast.Position{
		Offset: endOffset,
		Line:   l.startPos.Line,
		Column: l.startPos.Column + (endOffset - l.startOffset),
	}

	l.tokens = append(l.tokens, Token{
		Type:  ty,
		Value: value,
		Range: ast.Range{
			StartPos: l.startPos,
			EndPos:   endPos,
		},
	})
}

func (l *lexer) emitType(ty TokenType) {
	l.emit(ty, "")
}

func (l *lexer) emitValue(ty TokenType) {
	l.emit(ty, l.word())
}

func (l *lexer) emitError(format string, args ...any) {
	l.emit(TokenError, fmt.Sprintf(format, args...))
}
