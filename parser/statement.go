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
	"github.com/onflow/declcheck/ast"
	"github.com/onflow/declcheck/parser/lexer"
)

func parseBlock(p *parser) *ast.Block {
	startToken := p.mustOne(lexer.TokenBraceOpen)

	var statements []ast.Statement
	for !p.current.Is(lexer.TokenBraceClose) {
		if p.current.Is(lexer.TokenSemicolon) {
			p.next()
			continue
		}
		if p.current.Is(lexer.TokenEOF) {
			panic(NewSyntaxError(
				p.current.StartPos,
				"unexpected end of input, expected %s",
				lexer.TokenBraceClose,
			))
		}
		statements = append(statements, parseStatement(p))
	}

	endToken := p.mustOne(lexer.TokenBraceClose)

	return &ast.Block{
		Statements: statements,
		Range:      ast.NewRange(startToken.StartPos, endToken.EndPos),
	}
}

// parseStatement parses a statement:
//
//	block | 'return' expression? ';' | expression ( '=' expression )? ';'
func parseStatement(p *parser) ast.Statement {
	switch {
	case p.current.Is(lexer.TokenBraceOpen):
		return parseBlock(p)

	case p.isKeyword(KeywordReturn):
		return parseReturnStatement(p)
	}

	expression := parseExpression(p, lowestBindingPower)

	if p.current.Is(lexer.TokenEqual) {
		p.next()
		value := parseExpression(p, lowestBindingPower)
		p.mustOne(lexer.TokenSemicolon)
		return &ast.AssignmentStatement{
			Target: expression,
			Value:  value,
		}
	}

	p.mustOne(lexer.TokenSemicolon)

	return &ast.ExpressionStatement{
		Expression: expression,
	}
}

func parseReturnStatement(p *parser) *ast.ReturnStatement {
	startToken := p.mustKeyword(KeywordReturn)

	var expression ast.Expression
	if !p.current.Is(lexer.TokenSemicolon) {
		expression = parseExpression(p, lowestBindingPower)
	}

	endToken := p.mustOne(lexer.TokenSemicolon)

	return &ast.ReturnStatement{
		Expression: expression,
		Range:      ast.NewRange(startToken.StartPos, endToken.EndPos),
	}
}
