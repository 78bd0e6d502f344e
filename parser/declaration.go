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
	"github.com/onflow/declcheck/common"
	"github.com/onflow/declcheck/parser/lexer"
)

// parseDeclarations parses declarations into the given container,
// until the given end token is reached. The end token is not consumed.
func parseDeclarations(p *parser, container ast.Declaration, endTokenType lexer.TokenType) {
	for {
		switch p.current.Type {
		case lexer.TokenSemicolon:
			p.next()
			continue

		case endTokenType:
			return

		case lexer.TokenEOF:
			panic(NewSyntaxError(
				p.current.StartPos,
				"unexpected end of input, expected %s",
				endTokenType,
			))
		}

		parseDeclaration(p, container, nil)
	}
}

// genericParameters are the parsed parameters and constraints of a generic,
// before the generic declaration wrapping the inner declaration is created.
type genericParameters struct {
	startPos    ast.Position
	parameters  []ast.Declaration
	constraints []*ast.GenericTypeConstraintDeclaration
}

func parseDeclaration(p *parser, container ast.Declaration, generic *genericParameters) {
	startPos := p.current.StartPos
	if generic != nil {
		startPos = generic.startPos
	}

	modifiers := parseModifiers(p)

	if !p.current.Is(lexer.TokenIdentifier) {
		panic(NewSyntaxError(
			p.current.StartPos,
			"unexpected %s in declaration position",
			tokenDescription(p.current),
		))
	}

	var declaration ast.Declaration

	switch p.current.Value {
	case KeywordImport:
		rejectGeneric(p, generic, KeywordImport)
		declaration = parseImportDeclaration(p, startPos)

	case KeywordStruct, KeywordClass:
		declaration, generic = parseStructDeclaration(p, modifiers, startPos, generic)

	case KeywordInterface:
		declaration, generic = parseInterfaceDeclaration(p, modifiers, startPos, generic)

	case KeywordEnum:
		rejectGeneric(p, generic, KeywordEnum)
		declaration = parseEnumDeclaration(p, modifiers, startPos)

	case KeywordExtension:
		declaration = parseExtensionDeclaration(p, modifiers, startPos)

	case KeywordTypedef:
		declaration = parseTypeAliasDeclaration(p, modifiers, startPos)

	case KeywordAssociatedType:
		rejectGeneric(p, generic, KeywordAssociatedType)
		declaration = parseAssociatedTypeDeclaration(p, modifiers, startPos)

	case KeywordProperty:
		rejectGeneric(p, generic, KeywordProperty)
		declaration = parsePropertyDeclaration(p, modifiers, startPos)

	case KeywordInit:
		declaration = parseConstructorDeclaration(p, modifiers, startPos)

	case KeywordGeneric:
		if generic != nil {
			panic(NewSyntaxError(
				p.current.StartPos,
				"duplicate generic parameters",
			))
		}
		if modifiers.Set.Len() > 0 {
			panic(NewSyntaxError(
				startPos,
				"modifiers must follow the generic parameters",
			))
		}
		p.next()
		generic = parseGenericParameters(p, startPos)
		parseWhereClause(p, generic)
		parseDeclaration(p, container, generic)
		return

	case KeywordVar:
		rejectGeneric(p, generic, KeywordVar)
		declaration = parseInferredVariableDeclaration(p, modifiers, startPos)

	default:
		declaration, generic = parseFunctionOrVariableDeclaration(p, modifiers, startPos, generic)
	}

	declare(p, container, generic, declaration)
}

func rejectGeneric(p *parser, generic *genericParameters, keyword string) {
	if generic == nil {
		return
	}
	panic(NewSyntaxError(
		generic.startPos,
		"%s declarations cannot be generic",
		keyword,
	))
}

// declare adds the declaration to the container.
// If generic parameters were given, the declaration is wrapped in a generic declaration,
// which is added to the container instead.
func declare(
	p *parser,
	container ast.Declaration,
	generic *genericParameters,
	declaration ast.Declaration,
) {
	if generic == nil {
		p.arena.AddMember(container, declaration)
		return
	}

	genericDeclaration := &ast.GenericDeclaration{
		Inner: declaration,
		DeclarationBase: ast.DeclarationBase{
			Identifier: declaration.DeclarationIdentifier(),
			Range: ast.NewRange(
				generic.startPos,
				declaration.EndPosition(),
			),
		},
	}

	p.arena.AddMember(container, genericDeclaration)
	for _, parameter := range generic.parameters {
		p.arena.AddMember(genericDeclaration, parameter)
	}
	for _, constraint := range generic.constraints {
		p.arena.AddMember(genericDeclaration, constraint)
	}
	p.arena.SetParent(declaration, genericDeclaration)
}

func parseModifiers(p *parser) ast.Modifiers {
	var modifiers ast.Modifiers

	for p.current.Is(lexer.TokenIdentifier) {
		modifier, ok := common.ModifierFromKeyword(p.current.Value)
		if !ok {
			break
		}

		// `ref` followed by a body or terminator is the ref accessor, not the modifier
		if modifier == common.ModifierRef {
			switch p.peek().Type {
			case lexer.TokenSemicolon, lexer.TokenBraceOpen, lexer.TokenParenOpen:
				return modifiers
			}
		}

		modifierToken := p.current
		p.next()

		switch modifier {
		case common.ModifierTargetIntrinsic:
			target := parseModifierArgument(p)
			modifiers.TargetIntrinsics = append(modifiers.TargetIntrinsics, target)

		case common.ModifierSpecializedForTarget:
			if modifiers.SpecializedForTarget != nil {
				panic(NewSyntaxError(
					modifierToken.StartPos,
					"duplicate modifier %s",
					modifier.Keyword(),
				))
			}
			target := parseModifierArgument(p)
			modifiers.SpecializedForTarget = &target

		default:
			if modifiers.Has(modifier) {
				panic(NewSyntaxError(
					modifierToken.StartPos,
					"duplicate modifier %s",
					modifier.Keyword(),
				))
			}
		}

		modifiers.Set = modifiers.Set.With(modifier)
	}

	return modifiers
}

func parseModifierArgument(p *parser) ast.Identifier {
	p.mustOne(lexer.TokenParenOpen)
	target := p.mustIdentifier()
	p.mustOne(lexer.TokenParenClose)
	return target
}

func parseImportDeclaration(p *parser, startPos ast.Position) *ast.ImportDeclaration {
	p.mustKeyword(KeywordImport)
	identifier := p.mustIdentifier()
	endToken := p.mustOne(lexer.TokenSemicolon)

	return &ast.ImportDeclaration{
		DeclarationBase: ast.DeclarationBase{
			Identifier: identifier,
			Range:      ast.NewRange(startPos, endToken.EndPos),
		},
	}
}

// parseStructDeclaration parses a struct or class declaration:
//
//	('struct' | 'class') identifier generics? bases? '{' declarations '}'
func parseStructDeclaration(
	p *parser,
	modifiers ast.Modifiers,
	startPos ast.Position,
	generic *genericParameters,
) (
	*ast.StructDeclaration,
	*genericParameters,
) {
	isClass := p.isKeyword(KeywordClass)
	p.next()

	identifier := p.mustIdentifier()
	generic = parseOptionalGenericParameters(p, generic)

	declaration := &ast.StructDeclaration{
		IsClass: isClass,
		DeclarationBase: ast.DeclarationBase{
			Identifier: identifier,
			Modifiers:  modifiers,
		},
	}

	parseInheritanceClauses(p, declaration)
	parseMembers(p, declaration)
	declaration.Range = ast.NewRange(startPos, p.previous.EndPos)

	return declaration, generic
}

func parseInterfaceDeclaration(
	p *parser,
	modifiers ast.Modifiers,
	startPos ast.Position,
	generic *genericParameters,
) (
	*ast.InterfaceDeclaration,
	*genericParameters,
) {
	p.mustKeyword(KeywordInterface)

	identifier := p.mustIdentifier()
	generic = parseOptionalGenericParameters(p, generic)

	declaration := &ast.InterfaceDeclaration{
		DeclarationBase: ast.DeclarationBase{
			Identifier: identifier,
			Modifiers:  modifiers,
		},
	}

	parseInheritanceClauses(p, declaration)
	parseMembers(p, declaration)
	declaration.Range = ast.NewRange(startPos, p.previous.EndPos)

	return declaration, generic
}

// parseEnumDeclaration parses an enum declaration:
//
//	'enum' identifier bases? '{' ( identifier ( '=' expression )? ','? )* '}'
func parseEnumDeclaration(
	p *parser,
	modifiers ast.Modifiers,
	startPos ast.Position,
) *ast.EnumDeclaration {
	p.mustKeyword(KeywordEnum)

	declaration := &ast.EnumDeclaration{
		DeclarationBase: ast.DeclarationBase{
			Identifier: p.mustIdentifier(),
			Modifiers:  modifiers,
		},
	}

	parseInheritanceClauses(p, declaration)

	p.mustOne(lexer.TokenBraceOpen)

	for !p.current.Is(lexer.TokenBraceClose) {
		caseStartPos := p.current.StartPos
		identifier := p.mustIdentifier()

		var tagExpression ast.Expression
		if p.current.Is(lexer.TokenEqual) {
			p.next()
			tagExpression = parseExpression(p, lowestBindingPower)
		}

		p.arena.AddMember(declaration, &ast.EnumCaseDeclaration{
			TagExpression: tagExpression,
			DeclarationBase: ast.DeclarationBase{
				Identifier: identifier,
				Range:      ast.NewRange(caseStartPos, p.previous.EndPos),
			},
		})

		if !p.current.Is(lexer.TokenComma) {
			break
		}
		p.next()
	}

	endToken := p.mustOne(lexer.TokenBraceClose)
	declaration.Range = ast.NewRange(startPos, endToken.EndPos)

	return declaration
}

// parseExtensionDeclaration parses an extension declaration:
//
//	'extension' type bases? '{' declarations '}'
//
// Extensions have no name.
func parseExtensionDeclaration(
	p *parser,
	modifiers ast.Modifiers,
	startPos ast.Position,
) *ast.ExtensionDeclaration {
	keyword := p.mustKeyword(KeywordExtension)

	declaration := &ast.ExtensionDeclaration{
		TargetType: parseType(p),
		DeclarationBase: ast.DeclarationBase{
			Identifier: ast.NewIdentifier("", keyword.StartPos),
			Modifiers:  modifiers,
		},
	}

	parseInheritanceClauses(p, declaration)
	parseMembers(p, declaration)
	declaration.Range = ast.NewRange(startPos, p.previous.EndPos)

	return declaration
}

// parseTypeAliasDeclaration parses a type alias:
//
//	'typedef' type identifier ';'
func parseTypeAliasDeclaration(
	p *parser,
	modifiers ast.Modifiers,
	startPos ast.Position,
) *ast.TypeAliasDeclaration {
	p.mustKeyword(KeywordTypedef)
	ty := parseType(p)
	identifier := p.mustIdentifier()
	endToken := p.mustOne(lexer.TokenSemicolon)

	return &ast.TypeAliasDeclaration{
		Type: ty,
		DeclarationBase: ast.DeclarationBase{
			Identifier: identifier,
			Modifiers:  modifiers,
			Range:      ast.NewRange(startPos, endToken.EndPos),
		},
	}
}

// parseAssociatedTypeDeclaration parses an associated type requirement:
//
//	'associatedtype' identifier ( ':' type ( ',' type )* )? ';'
func parseAssociatedTypeDeclaration(
	p *parser,
	modifiers ast.Modifiers,
	startPos ast.Position,
) *ast.AssociatedTypeDeclaration {
	p.mustKeyword(KeywordAssociatedType)

	declaration := &ast.AssociatedTypeDeclaration{
		DeclarationBase: ast.DeclarationBase{
			Identifier: p.mustIdentifier(),
			Modifiers:  modifiers,
		},
	}

	if p.current.Is(lexer.TokenColon) {
		p.next()
		for {
			sup := parseType(p)
			p.arena.AddMember(declaration, &ast.TypeConstraintDeclaration{
				Sup: sup,
				DeclarationBase: ast.DeclarationBase{
					Identifier: ast.NewIdentifier("", sup.StartPosition()),
				},
			})
			if !p.current.Is(lexer.TokenComma) {
				break
			}
			p.next()
		}
	}

	endToken := p.mustOne(lexer.TokenSemicolon)
	declaration.Range = ast.NewRange(startPos, endToken.EndPos)

	return declaration
}

// parsePropertyDeclaration parses a property:
//
//	'property' identifier ':' type ( ';' | '{' accessor* '}' )
func parsePropertyDeclaration(
	p *parser,
	modifiers ast.Modifiers,
	startPos ast.Position,
) *ast.PropertyDeclaration {
	p.mustKeyword(KeywordProperty)

	identifier := p.mustIdentifier()
	p.mustOne(lexer.TokenColon)

	declaration := &ast.PropertyDeclaration{
		TypeAnnotation: parseType(p),
		DeclarationBase: ast.DeclarationBase{
			Identifier: identifier,
			Modifiers:  modifiers,
		},
	}

	if p.current.Is(lexer.TokenSemicolon) {
		endToken := p.mustOne(lexer.TokenSemicolon)
		declaration.Range = ast.NewRange(startPos, endToken.EndPos)
		return declaration
	}

	p.mustOne(lexer.TokenBraceOpen)
	for !p.current.Is(lexer.TokenBraceClose) {
		if p.current.Is(lexer.TokenSemicolon) {
			p.next()
			continue
		}
		p.arena.AddMember(declaration, parseAccessorDeclaration(p))
	}
	endToken := p.mustOne(lexer.TokenBraceClose)
	declaration.Range = ast.NewRange(startPos, endToken.EndPos)

	return declaration
}

// parseAccessorDeclaration parses an accessor of a property:
//
//	modifiers ( 'get' | 'set' | 'ref' ) parameters? ( ';' | block )
func parseAccessorDeclaration(p *parser) *ast.AccessorDeclaration {
	startPos := p.current.StartPos
	modifiers := parseModifiers(p)

	keywordToken := p.current

	var kind ast.AccessorKind
	switch {
	case p.isKeyword(KeywordGet):
		kind = ast.AccessorKindGet
	case p.isKeyword(KeywordSet):
		kind = ast.AccessorKindSet
	case p.isKeyword(KeywordRef):
		kind = ast.AccessorKindRef
	default:
		panic(NewSyntaxError(
			keywordToken.StartPos,
			"expected accessor, got %s",
			tokenDescription(keywordToken),
		))
	}
	p.next()

	declaration := &ast.AccessorDeclaration{
		Kind: kind,
		DeclarationBase: ast.DeclarationBase{
			Identifier: tokenToIdentifier(keywordToken),
			Modifiers:  modifiers,
		},
	}

	if p.current.Is(lexer.TokenParenOpen) {
		parseParameters(p, declaration)
	}

	declaration.Body = parseOptionalBody(p)
	declaration.Range = ast.NewRange(startPos, p.previous.EndPos)

	return declaration
}

// parseConstructorDeclaration parses an initializer:
//
//	'__init' parameters ( ';' | block )
func parseConstructorDeclaration(
	p *parser,
	modifiers ast.Modifiers,
	startPos ast.Position,
) *ast.ConstructorDeclaration {
	keywordToken := p.mustKeyword(KeywordInit)

	declaration := &ast.ConstructorDeclaration{
		DeclarationBase: ast.DeclarationBase{
			Identifier: tokenToIdentifier(keywordToken),
			Modifiers:  modifiers,
		},
	}

	parseParameters(p, declaration)
	declaration.Body = parseOptionalBody(p)
	declaration.Range = ast.NewRange(startPos, p.previous.EndPos)

	return declaration
}

// parseInferredVariableDeclaration parses a variable whose type is inferred:
//
//	'var' identifier '=' expression ';'
func parseInferredVariableDeclaration(
	p *parser,
	modifiers ast.Modifiers,
	startPos ast.Position,
) *ast.VariableDeclaration {
	p.mustKeyword(KeywordVar)

	declaration := &ast.VariableDeclaration{
		DeclarationBase: ast.DeclarationBase{
			Identifier: p.mustIdentifier(),
			Modifiers:  modifiers,
		},
	}

	if p.current.Is(lexer.TokenEqual) {
		p.next()
		declaration.Value = parseExpression(p, lowestBindingPower)
	}

	endToken := p.mustOne(lexer.TokenSemicolon)
	declaration.Range = ast.NewRange(startPos, endToken.EndPos)

	return declaration
}

// parseFunctionOrVariableDeclaration parses a function or a typed variable:
//
//	type identifier generics? ( parameters ( ';' | block ) | ( '=' expression )? ';' )
func parseFunctionOrVariableDeclaration(
	p *parser,
	modifiers ast.Modifiers,
	startPos ast.Position,
	generic *genericParameters,
) (
	ast.Declaration,
	*genericParameters,
) {
	ty := parseType(p)
	identifier := p.mustIdentifier()

	if p.current.Is(lexer.TokenLess) || p.current.Is(lexer.TokenParenOpen) {
		generic = parseOptionalGenericParameters(p, generic)

		declaration := &ast.FunctionDeclaration{
			DeclarationBase: ast.DeclarationBase{
				Identifier: identifier,
				Modifiers:  modifiers,
			},
		}
		if !isVoidType(ty) {
			declaration.ReturnType = ty
		}

		parseParameters(p, declaration)
		declaration.Body = parseOptionalBody(p)
		declaration.Range = ast.NewRange(startPos, p.previous.EndPos)

		return declaration, generic
	}

	if generic != nil {
		panic(NewSyntaxError(
			generic.startPos,
			"variable declarations cannot be generic",
		))
	}

	declaration := &ast.VariableDeclaration{
		TypeAnnotation: ty,
		DeclarationBase: ast.DeclarationBase{
			Identifier: identifier,
			Modifiers:  modifiers,
		},
	}

	if p.current.Is(lexer.TokenEqual) {
		p.next()
		declaration.Value = parseExpression(p, lowestBindingPower)
	}

	endToken := p.mustOne(lexer.TokenSemicolon)
	declaration.Range = ast.NewRange(startPos, endToken.EndPos)

	return declaration, nil
}

func isVoidType(ty ast.TypeExpression) bool {
	nominalType, ok := ty.(*ast.NominalType)
	return ok &&
		len(nominalType.Arguments) == 0 &&
		nominalType.Identifier.Identifier == "void"
}

// parseParameters parses a parameter list into the given declaration:
//
//	'(' ( modifiers type identifier ( '=' expression )? ( ',' ... )* )? ')'
func parseParameters(p *parser, declaration ast.Declaration) {
	p.mustOne(lexer.TokenParenOpen)

	for !p.current.Is(lexer.TokenParenClose) {
		startPos := p.current.StartPos
		modifiers := parseModifiers(p)
		ty := parseType(p)
		identifier := p.mustIdentifier()

		parameter := &ast.ParameterDeclaration{
			TypeAnnotation: ty,
			DeclarationBase: ast.DeclarationBase{
				Identifier: identifier,
				Modifiers:  modifiers,
			},
		}

		if p.current.Is(lexer.TokenEqual) {
			p.next()
			parameter.DefaultValue = parseExpression(p, lowestBindingPower)
		}

		parameter.Range = ast.NewRange(startPos, p.previous.EndPos)
		p.arena.AddMember(declaration, parameter)

		if !p.current.Is(lexer.TokenComma) {
			break
		}
		p.next()
	}

	p.mustOne(lexer.TokenParenClose)
}

// parseOptionalBody parses either a block, or a terminating semicolon for a declaration without body
func parseOptionalBody(p *parser) *ast.Block {
	if p.current.Is(lexer.TokenSemicolon) {
		p.next()
		return nil
	}
	return parseBlock(p)
}

// parseInheritanceClauses parses the optional base types of a declaration:
//
//	( ':' type ( ',' type )* )?
//
// Each base type becomes an inheritance declaration member.
func parseInheritanceClauses(p *parser, declaration ast.Declaration) {
	if !p.current.Is(lexer.TokenColon) {
		return
	}
	p.next()

	for {
		baseType := parseType(p)
		p.arena.AddMember(declaration, &ast.InheritanceDeclaration{
			BaseType: baseType,
			DeclarationBase: ast.DeclarationBase{
				Identifier: ast.NewIdentifier("", baseType.StartPosition()),
			},
		})

		if !p.current.Is(lexer.TokenComma) {
			return
		}
		p.next()
	}
}

func parseMembers(p *parser, declaration ast.Declaration) {
	p.mustOne(lexer.TokenBraceOpen)
	parseDeclarations(p, declaration, lexer.TokenBraceClose)
	p.mustOne(lexer.TokenBraceClose)
}

func parseOptionalGenericParameters(p *parser, generic *genericParameters) *genericParameters {
	if !p.current.Is(lexer.TokenLess) {
		return generic
	}
	if generic != nil {
		panic(NewSyntaxError(
			p.current.StartPos,
			"duplicate generic parameters",
		))
	}
	return parseGenericParameters(p, p.current.StartPos)
}

// parseGenericParameters parses a generic parameter list:
//
//	'<' ( identifier ( ':' type )? | 'let' identifier ':' type ) ( ',' ... )* '>'
//
// A type parameter with a bound also declares a constraint.
func parseGenericParameters(p *parser, startPos ast.Position) *genericParameters {
	generic := &genericParameters{
		startPos: startPos,
	}

	p.mustOne(lexer.TokenLess)

	for !p.current.Is(lexer.TokenGreater) {
		parameterStartPos := p.current.StartPos

		if p.isKeyword(KeywordLet) {
			p.next()
			identifier := p.mustIdentifier()
			p.mustOne(lexer.TokenColon)
			ty := parseType(p)

			generic.parameters = append(generic.parameters,
				&ast.GenericValueParameterDeclaration{
					TypeAnnotation: ty,
					DeclarationBase: ast.DeclarationBase{
						Identifier: identifier,
						Range:      ast.NewRange(parameterStartPos, ty.EndPosition()),
					},
				},
			)
		} else {
			identifier := p.mustIdentifier()

			generic.parameters = append(generic.parameters,
				&ast.GenericTypeParameterDeclaration{
					DeclarationBase: ast.DeclarationBase{
						Identifier: identifier,
						Range:      ast.NewRangeFromPositioned(identifier),
					},
				},
			)

			if p.current.Is(lexer.TokenColon) {
				p.next()
				sup := parseType(p)
				generic.constraints = append(generic.constraints,
					newGenericTypeConstraint(
						&ast.NominalType{Identifier: identifier},
						sup,
					),
				)
			}
		}

		if !p.current.Is(lexer.TokenComma) {
			break
		}
		p.next()
	}

	p.mustOne(lexer.TokenGreater)

	return generic
}

// parseWhereClause parses the optional additional constraints of a generic:
//
//	( 'where' type ':' type ( ',' type ':' type )* )?
func parseWhereClause(p *parser, generic *genericParameters) {
	if !p.isKeyword(KeywordWhere) {
		return
	}
	p.next()

	for {
		sub := parseType(p)
		p.mustOne(lexer.TokenColon)
		sup := parseType(p)
		generic.constraints = append(generic.constraints, newGenericTypeConstraint(sub, sup))

		if !p.current.Is(lexer.TokenComma) {
			return
		}
		p.next()
	}
}

func newGenericTypeConstraint(sub, sup ast.TypeExpression) *ast.GenericTypeConstraintDeclaration {
	return &ast.GenericTypeConstraintDeclaration{
		Sub: sub,
		Sup: sup,
		DeclarationBase: ast.DeclarationBase{
			Identifier: ast.NewIdentifier("", sub.StartPosition()),
			Range:      ast.NewRange(sub.StartPosition(), sup.EndPosition()),
		},
	}
}
