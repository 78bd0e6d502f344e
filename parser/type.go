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
	"strconv"

	"github.com/onflow/declcheck/ast"
	"github.com/onflow/declcheck/parser/lexer"
)

// parseType parses a type:
//
//	( 'This' | identifier ( '<' typeArgument ( ',' typeArgument )* '>' )? ) ( '.' identifier )*
func parseType(p *parser) ast.TypeExpression {
	var ty ast.TypeExpression

	token := p.current
	switch {
	case p.isKeyword(KeywordThisType):
		p.next()
		ty = &ast.ThisTypeExpression{
			Range: token.Range,
		}

	case token.Is(lexer.TokenIdentifier):
		nominalType := &ast.NominalType{
			Identifier: p.mustIdentifier(),
		}

		if p.current.Is(lexer.TokenLess) {
			p.next()
			for !p.current.Is(lexer.TokenGreater) {
				nominalType.Arguments = append(nominalType.Arguments, parseTypeArgument(p))
				if !p.current.Is(lexer.TokenComma) {
					break
				}
				p.next()
			}
			endToken := p.mustOne(lexer.TokenGreater)
			nominalType.EndPos = endToken.EndPos
		}

		ty = nominalType

	default:
		panic(NewSyntaxError(
			token.StartPos,
			"expected type, got %s",
			tokenDescription(token),
		))
	}

	for p.current.Is(lexer.TokenDot) {
		p.next()
		ty = &ast.MemberType{
			Parent:     ty,
			Identifier: p.mustIdentifier(),
		}
	}

	return ty
}

// parseTypeArgument parses a generic argument, which is either a type or an integer literal
func parseTypeArgument(p *parser) ast.TypeExpression {
	startToken := p.current

	negative := false
	if startToken.Is(lexer.TokenMinus) {
		p.next()
		negative = true
	}

	if !p.current.Is(lexer.TokenDecimal) {
		if negative {
			panic(NewSyntaxError(
				p.current.StartPos,
				"expected integer literal, got %s",
				tokenDescription(p.current),
			))
		}
		return parseType(p)
	}

	literalToken := p.current
	p.next()

	value := parseIntegerLiteral(p, literalToken)
	if negative {
		value = -value
	}

	return &ast.IntegerTypeArgument{
		Value: value,
		Range: ast.NewRange(startToken.StartPos, literalToken.EndPos),
	}
}

// parseIntegerLiteral parses the literal of the given decimal token.
// Literals which do not fit into 64 bits are reported and result in 0.
func parseIntegerLiteral(p *parser, token lexer.Token) int64 {
	value, err := strconv.ParseInt(token.Value, 10, 64)
	if err != nil {
		p.report(&InvalidIntegerLiteralError{
			Literal: token.Value,
			Range:   token.Range,
		})
		return 0
	}
	return value
}
