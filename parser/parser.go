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

package parser

import (
	"fmt"

	"github.com/onflow/declcheck/ast"
	"github.com/onflow/declcheck/common"
	"github.com/onflow/declcheck/parser/lexer"
)

type parser struct {
	// tokens are the remaining tokens, consumed from the front
	tokens []lexer.Token
	// current is the current token being parsed
	current lexer.Token
	// previous is the last consumed token
	previous lexer.Token
	// errors are the syntax errors encountered during parsing
	errors []error
	// arena allocates the parsed declarations
	arena *ast.Arena
}

func newParser(arena *ast.Arena, code []byte) *parser {
	p := &parser{
		tokens: lexer.Lex(code),
		arena:  arena,
	}
	p.next()
	return p
}

// Parse creates a lexer to scan the given input string,
// and uses the given `parse` function to parse tokens into a result.
//
// It can be composed with different parse functions to parse the input string
// into different results. See `ParseExpression`, `ParseType`, and `ParseModule` as examples.
func Parse[T any](
	arena *ast.Arena,
	code []byte,
	parse func(*parser) T,
) (
	result T,
	errors []error,
) {
	p := newParser(arena, code)

	defer func() {
		if r := recover(); r != nil {
			var err ParseError
			switch r := r.(type) {
			case ParseError:
				err = r
			default:
				panic(r)
			}

			p.report(err)

			var zero T
			result = zero
			errors = p.errors
		}
	}()

	result = parse(p)

	if !p.current.Is(lexer.TokenEOF) {
		p.report(NewSyntaxError(
			p.current.StartPos,
			"unexpected token: %s",
			tokenDescription(p.current),
		))
	}

	return result, p.errors
}

func ParseExpression(arena *ast.Arena, code []byte) (ast.Expression, error) {
	expression, errs := Parse(
		arena,
		code,
		func(p *parser) ast.Expression {
			return parseExpression(p, lowestBindingPower)
		},
	)
	if len(errs) > 0 {
		return nil, Error{
			Code:   code,
			Errors: errs,
		}
	}
	return expression, nil
}

func ParseType(arena *ast.Arena, code []byte) (ast.TypeExpression, error) {
	ty, errs := Parse(arena, code, parseType)
	if len(errs) > 0 {
		return nil, Error{
			Code:   code,
			Errors: errs,
		}
	}
	return ty, nil
}

// ParseModule parses the given code into a module declaration
// named after the given location.
// All declarations are allocated in the given arena.
func ParseModule(
	arena *ast.Arena,
	code []byte,
	location common.Location,
) (
	*ast.ModuleDeclaration,
	error,
) {
	var name string
	if location != nil {
		name = location.String()
	}

	module := ast.Add(arena, &ast.ModuleDeclaration{
		Location: location,
		DeclarationBase: ast.DeclarationBase{
			Identifier: ast.NewIdentifier(name, ast.EmptyPosition),
		},
	})

	_, errs := Parse(
		arena,
		code,
		func(p *parser) struct{} {
			parseDeclarations(p, module, lexer.TokenEOF)
			module.Range = ast.NewRange(ast.EmptyPosition, p.previous.EndPos)
			return struct{}{}
		},
	)
	if len(errs) > 0 {
		return module, Error{
			Location: location,
			Code:     code,
			Errors:   errs,
		}
	}

	return module, nil
}

func (p *parser) report(errs ...error) {
	p.errors = append(p.errors, errs...)
}

// next advances to the next token.
// Lexing errors are reported and skipped.
func (p *parser) next() {
	for {
		if len(p.tokens) == 0 {
			// The lexer always ends with an EOF token,
			// so once it is reached, stay there
			return
		}

		token := p.tokens[0]
		p.tokens = p.tokens[1:]

		if token.Is(lexer.TokenError) {
			p.report(NewSyntaxError(token.StartPos, "%s", token.Value))
			continue
		}

		p.previous = p.current
		p.current = token
		return
	}
}

// peek returns the token after the current token, skipping lexing errors
func (p *parser) peek() lexer.Token {
	for _, token := range p.tokens {
		if !token.Is(lexer.TokenError) {
			return token
		}
	}
	return p.current
}

func (p *parser) mustOne(tokenType lexer.TokenType) lexer.Token {
	t := p.current
	if !t.Is(tokenType) {
		panic(NewSyntaxError(
			t.StartPos,
			"expected token %s, got %s",
			tokenType,
			tokenDescription(t),
		))
	}
	p.next()
	return t
}

// isKeyword returns true if the current token is an identifier with the given keyword
func (p *parser) isKeyword(keyword string) bool {
	return p.current.IsString(lexer.TokenIdentifier, keyword)
}

func (p *parser) mustKeyword(keyword string) lexer.Token {
	t := p.current
	if !p.isKeyword(keyword) {
		panic(NewSyntaxError(
			t.StartPos,
			"expected keyword %s, got %s",
			keyword,
			tokenDescription(t),
		))
	}
	p.next()
	return t
}

// mustIdentifier consumes an identifier which may name a declaration
func (p *parser) mustIdentifier() ast.Identifier {
	t := p.current
	if t.Is(lexer.TokenIdentifier) && IsHardKeyword(t.Value) {
		panic(NewSyntaxError(
			t.StartPos,
			"expected identifier, got keyword %s",
			t.Value,
		))
	}
	p.mustOne(lexer.TokenIdentifier)
	return tokenToIdentifier(t)
}

func tokenToIdentifier(token lexer.Token) ast.Identifier {
	return ast.NewIdentifier(token.Value, token.StartPos)
}

func tokenDescription(token lexer.Token) string {
	switch token.Type {
	case lexer.TokenIdentifier:
		return fmt.Sprintf("identifier %q", token.Value)
	case lexer.TokenDecimal, lexer.TokenFixedPoint:
		return fmt.Sprintf("%s %s", token.Type, token.Value)
	case lexer.TokenEOF:
		return "EOF"
	default:
		return fmt.Sprintf("token %s", token.Type)
	}
}
