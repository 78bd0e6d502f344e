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
	"github.com/onflow/declcheck/errors"
	"github.com/onflow/declcheck/parser/lexer"
)

const lowestBindingPower = 0

const (
	exprBindingPowerEquality       = 10
	exprBindingPowerComparison     = 20
	exprBindingPowerAdditive       = 30
	exprBindingPowerMultiplicative = 40
	exprBindingPowerPrefix         = 50
	exprBindingPowerPostfix        = 60
)

type nullDenotationFunc func(p *parser, token lexer.Token) ast.Expression

type leftDenotationFunc func(p *parser, token lexer.Token, left ast.Expression) ast.Expression

type literal struct {
	tokenType      lexer.TokenType
	nullDenotation nullDenotationFunc
}

type binary struct {
	tokenType    lexer.TokenType
	bindingPower int
	operation    ast.Operation
}

type unary struct {
	tokenType    lexer.TokenType
	bindingPower int
	operation    ast.Operation
}

type postfix struct {
	tokenType      lexer.TokenType
	bindingPower   int
	leftDenotation leftDenotationFunc
}

var nullDenotations = map[lexer.TokenType]nullDenotationFunc{}
var leftBindingPowers = map[lexer.TokenType]int{}
var leftDenotations = map[lexer.TokenType]leftDenotationFunc{}

func define(def any) {
	switch def := def.(type) {
	case binary:
		setLeftBindingPower(def.tokenType, def.bindingPower)
		setLeftDenotation(
			def.tokenType,
			func(p *parser, _ lexer.Token, left ast.Expression) ast.Expression {
				right := parseExpression(p, def.bindingPower)
				return &ast.BinaryExpression{
					Operation: def.operation,
					Left:      left,
					Right:     right,
				}
			},
		)

	case unary:
		setNullDenotation(
			def.tokenType,
			func(p *parser, token lexer.Token) ast.Expression {
				right := parseExpression(p, def.bindingPower)
				return &ast.UnaryExpression{
					Operation:  def.operation,
					Expression: right,
					StartPos:   token.StartPos,
				}
			},
		)

	case postfix:
		setLeftBindingPower(def.tokenType, def.bindingPower)
		setLeftDenotation(def.tokenType, def.leftDenotation)

	case literal:
		setNullDenotation(def.tokenType, def.nullDenotation)

	default:
		panic(errors.NewUnreachableError())
	}
}

func setNullDenotation(tokenType lexer.TokenType, nullDenotation nullDenotationFunc) {
	if nullDenotations[tokenType] != nil {
		panic(errors.NewUnexpectedError(
			"null denotation for token %s exists",
			tokenType,
		))
	}
	nullDenotations[tokenType] = nullDenotation
}

func setLeftBindingPower(tokenType lexer.TokenType, power int) {
	if leftBindingPowers[tokenType] > power {
		return
	}
	leftBindingPowers[tokenType] = power
}

func setLeftDenotation(tokenType lexer.TokenType, leftDenotation leftDenotationFunc) {
	if leftDenotations[tokenType] != nil {
		panic(errors.NewUnexpectedError(
			"left denotation for token %s exists",
			tokenType,
		))
	}
	leftDenotations[tokenType] = leftDenotation
}

func init() {
	defineBinaryExpressions()
	defineUnaryExpressions()
	defineLiterals()
	defineIdentifierExpression()
	defineNestedExpression()
	defineMemberExpression()
	defineInvocationExpression()
}

func defineBinaryExpressions() {
	for _, def := range []binary{
		{lexer.TokenEqualEqual, exprBindingPowerEquality, ast.OperationEqual},
		{lexer.TokenNotEqual, exprBindingPowerEquality, ast.OperationNotEqual},
		{lexer.TokenLess, exprBindingPowerComparison, ast.OperationLess},
		{lexer.TokenGreater, exprBindingPowerComparison, ast.OperationGreater},
		{lexer.TokenPlus, exprBindingPowerAdditive, ast.OperationPlus},
		{lexer.TokenMinus, exprBindingPowerAdditive, ast.OperationMinus},
		{lexer.TokenStar, exprBindingPowerMultiplicative, ast.OperationMul},
		{lexer.TokenSlash, exprBindingPowerMultiplicative, ast.OperationDiv},
	} {
		define(def)
	}
}

func defineUnaryExpressions() {
	define(unary{
		tokenType:    lexer.TokenMinus,
		bindingPower: exprBindingPowerPrefix,
		operation:    ast.OperationNegate,
	})

	define(unary{
		tokenType:    lexer.TokenNot,
		bindingPower: exprBindingPowerPrefix,
		operation:    ast.OperationNot,
	})
}

func defineLiterals() {
	define(literal{
		tokenType: lexer.TokenDecimal,
		nullDenotation: func(p *parser, token lexer.Token) ast.Expression {
			return &ast.IntegerExpression{
				Value: parseIntegerLiteral(p, token),
				Range: token.Range,
			}
		},
	})

	define(literal{
		tokenType: lexer.TokenFixedPoint,
		nullDenotation: func(p *parser, token lexer.Token) ast.Expression {
			value, err := strconv.ParseFloat(token.Value, 64)
			if err != nil {
				panic(NewSyntaxError(
					token.StartPos,
					"invalid fixed-point literal %s",
					token.Value,
				))
			}
			return &ast.FloatExpression{
				Value: value,
				Range: token.Range,
			}
		},
	})
}

func defineIdentifierExpression() {
	define(literal{
		tokenType: lexer.TokenIdentifier,
		nullDenotation: func(p *parser, token lexer.Token) ast.Expression {
			switch token.Value {
			case KeywordTrue:
				return &ast.BoolExpression{
					Value: true,
					Range: token.Range,
				}

			case KeywordFalse:
				return &ast.BoolExpression{
					Value: false,
					Range: token.Range,
				}

			case KeywordThis:
				return &ast.ThisExpression{
					Range: token.Range,
				}
			}

			if IsHardKeyword(token.Value) {
				panic(NewSyntaxError(
					token.StartPos,
					"unexpected keyword %s in expression",
					token.Value,
				))
			}

			return &ast.IdentifierExpression{
				Identifier: tokenToIdentifier(token),
			}
		},
	})
}

func defineNestedExpression() {
	define(literal{
		tokenType: lexer.TokenParenOpen,
		nullDenotation: func(p *parser, _ lexer.Token) ast.Expression {
			expression := parseExpression(p, lowestBindingPower)
			p.mustOne(lexer.TokenParenClose)
			return expression
		},
	})
}

func defineMemberExpression() {
	define(postfix{
		tokenType:    lexer.TokenDot,
		bindingPower: exprBindingPowerPostfix,
		leftDenotation: func(p *parser, _ lexer.Token, left ast.Expression) ast.Expression {
			return &ast.MemberExpression{
				Expression: left,
				Identifier: p.mustIdentifier(),
			}
		},
	})
}

func defineInvocationExpression() {
	define(postfix{
		tokenType:    lexer.TokenParenOpen,
		bindingPower: exprBindingPowerPostfix,
		leftDenotation: func(p *parser, _ lexer.Token, left ast.Expression) ast.Expression {
			var arguments []ast.Expression
			for !p.current.Is(lexer.TokenParenClose) {
				arguments = append(arguments, parseExpression(p, lowestBindingPower))
				if !p.current.Is(lexer.TokenComma) {
					break
				}
				p.next()
			}
			endToken := p.mustOne(lexer.TokenParenClose)
			return &ast.InvocationExpression{
				InvokedExpression: left,
				Arguments:         arguments,
				EndPos:            endToken.EndPos,
			}
		},
	})
}

// parseExpression parses an expression using top-down operator precedence.
// Tokens without a left binding power, e.g. `;` or `)`, end the expression.
func parseExpression(p *parser, rightBindingPower int) ast.Expression {
	token := p.current
	p.next()

	left := applyNullDenotation(p, token)

	for rightBindingPower < leftBindingPowers[p.current.Type] {
		token = p.current
		p.next()

		left = applyLeftDenotation(p, token, left)
	}

	return left
}

func applyNullDenotation(p *parser, token lexer.Token) ast.Expression {
	nullDenotation, ok := nullDenotations[token.Type]
	if !ok {
		panic(NewSyntaxError(
			token.StartPos,
			"unexpected %s in expression",
			tokenDescription(token),
		))
	}
	return nullDenotation(p, token)
}

func applyLeftDenotation(p *parser, token lexer.Token, left ast.Expression) ast.Expression {
	leftDenotation, ok := leftDenotations[token.Type]
	if !ok {
		panic(errors.NewUnexpectedError(
			"missing left denotation for token %s",
			token.Type,
		))
	}
	return leftDenotation(p, token, left)
}
