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

package sema

import (
	"github.com/onflow/declcheck/ast"
	"github.com/onflow/declcheck/common"
)

// checkHeader resolves the type or signature of the declaration.
func checkHeader(ctx *checkingContext, declaration ast.Declaration) {
	switch declaration := declaration.(type) {
	case *ast.FunctionDeclaration:
		ctx.checkFunctionHeader(declaration)

	case *ast.ConstructorDeclaration:
		container := ctx.parentSkippingGeneric(declaration)
		resultType := ctx.selfTypeOf(container)
		if resultType == nil {
			resultType = ErrorType
		}
		ctx.Elaboration.setResultType(declaration, resultType)

	case *ast.ParameterDeclaration:
		ctx.checkParameterHeader(declaration)

	case *ast.VariableDeclaration:
		ctx.checkVariableHeader(declaration)

	case *ast.PropertyDeclaration:
		ctx.checkPropertyHeader(declaration)

	case *ast.AccessorDeclaration:
		ctx.checkAccessorHeader(declaration)

	case *ast.GenericValueParameterDeclaration:
		generic := ctx.Arena.Parent(declaration)
		ty := ctx.withScope(ctx.Arena.Parent(generic)).resolveType(declaration.TypeAnnotation)
		ctx.Elaboration.setDeclarationType(declaration, ty)

	case *ast.GenericTypeConstraintDeclaration:
		generic := ctx.Arena.Parent(declaration)
		scoped := ctx.withScope(generic)
		sub := scoped.resolveType(declaration.Sub)
		sup := scoped.resolveType(declaration.Sup)
		ctx.Elaboration.setSubAndSupTypes(declaration, sub, sup)

	case *ast.TypeConstraintDeclaration:
		associatedType := ctx.Arena.Parent(declaration)
		interfaceDeclaration := ctx.Arena.Parent(associatedType)
		sub := NewDeclRefType(NewDeclRef(associatedType, ctx.CreateDefaultSubstitutions(associatedType)))
		sup := ctx.withScope(interfaceDeclaration).resolveType(declaration.Sup)
		ctx.Elaboration.setSubAndSupTypes(declaration, sub, sup)

	case *ast.TypeAliasDeclaration:
		ty := ctx.withScope(ctx.Arena.Parent(declaration)).resolveType(declaration.Type)
		ctx.Elaboration.setDeclarationType(declaration, ty)

	case *ast.EnumCaseDeclaration:
		ctx.checkEnumCaseHeader(declaration)

	case *ast.InheritanceDeclaration:
		container := ctx.Arena.Parent(declaration)
		ty := ctx.withScope(ctx.Arena.Parent(container)).resolveType(declaration.BaseType)
		ctx.Elaboration.setDeclarationType(declaration, ty)

	case *ast.ExtensionDeclaration:
		ty := ctx.withScope(ctx.Arena.Parent(declaration)).resolveType(declaration.TargetType)
		ctx.Elaboration.setDeclarationType(declaration, ty)
	}
}

func (ctx *checkingContext) checkFunctionHeader(function *ast.FunctionDeclaration) {
	var resultType Type = VoidType
	if function.ReturnType != nil {
		resultType = ctx.withScope(ctx.Arena.Parent(function)).resolveType(function.ReturnType)
	}
	ctx.Elaboration.setResultType(function, resultType)
}

func (ctx *checkingContext) checkParameterHeader(parameter *ast.ParameterDeclaration) {
	callable := ctx.Arena.Parent(parameter)

	var ty Type = ErrorType
	if parameter.TypeAnnotation != nil {
		scope := ctx.Arena.Parent(callable)
		if _, ok := callable.(*ast.AccessorDeclaration); ok {
			// the parent of an accessor is its property
			scope = ctx.Arena.Parent(scope)
		}
		ty = ctx.withScope(scope).resolveType(parameter.TypeAnnotation)
	}

	if ty == VoidType {
		ctx.report(&InvalidVoidTypeError{
			DeclarationKind: parameter.DeclarationKind(),
			Range:           ast.NewRangeFromPositioned(parameter.TypeAnnotation),
		})
		ty = ErrorType
	}

	if parameter.Modifiers.Has(common.ModifierOut) && parameter.DefaultValue != nil {
		ctx.report(&OutParameterWithDefaultValueError{
			Name:  parameter.Identifier.Identifier,
			Range: ast.NewRangeFromPositioned(parameter.DefaultValue),
		})
	}

	ctx.Elaboration.setDeclarationType(parameter, ty)
}

// checkVariableHeader resolves the type of a variable.
// The initializer of a constant is checked and folded here, so that the value is available
// to generic arguments and enum tags. So is the initializer of a variable without a type,
// from which the type is inferred.
func (ctx *checkingContext) checkVariableHeader(variable *ast.VariableDeclaration) {
	if variable.TypeAnnotation == nil {
		if variable.Value == nil {
			ctx.report(&VariableWithoutTypeOrInitializerError{
				Name:  variable.Identifier.Identifier,
				Range: ast.NewRangeFromPositioned(variable.Identifier),
			})
			ctx.Elaboration.setDeclarationType(variable, ErrorType)
			return
		}

		initializerContext := ctx.forInitializer(variable)
		ty := initializerContext.checkExpression(variable.Value)
		if ty == VoidType {
			ctx.report(&InvalidVoidTypeError{
				DeclarationKind: variable.DeclarationKind(),
				Range:           ast.NewRangeFromPositioned(variable.Value),
			})
			ty = ErrorType
		}
		ctx.Elaboration.setDeclarationType(variable, ty)

		if variable.IsConstant() {
			ctx.Elaboration.setConstantValue(variable, initializerContext.tryFold(variable.Value))
		}
		return
	}

	ty := ctx.withScope(ctx.Arena.Parent(variable)).resolveType(variable.TypeAnnotation)
	if ty == VoidType {
		ctx.report(&InvalidVoidTypeError{
			DeclarationKind: variable.DeclarationKind(),
			Range:           ast.NewRangeFromPositioned(variable.TypeAnnotation),
		})
		ty = ErrorType
	}
	ctx.Elaboration.setDeclarationType(variable, ty)

	if variable.IsConstant() && variable.Value != nil {
		initializerContext := ctx.forInitializer(variable)
		valueType := initializerContext.checkExpression(variable.Value)
		if initializerContext.coerce(ty, valueType, variable.Value) {
			ctx.Elaboration.setConstantValue(variable, initializerContext.tryFold(variable.Value))
		}
	}
}

// checkPropertyHeader resolves the type of a property.
// A property without accessors gets an implicit getter.
func (ctx *checkingContext) checkPropertyHeader(property *ast.PropertyDeclaration) {
	ty := ctx.withScope(ctx.Arena.Parent(property)).resolveType(property.TypeAnnotation)
	if ty == VoidType {
		ctx.report(&InvalidVoidTypeError{
			DeclarationKind: property.DeclarationKind(),
			Range:           ast.NewRangeFromPositioned(property.TypeAnnotation),
		})
		ty = ErrorType
	}
	ctx.Elaboration.setDeclarationType(property, ty)

	if len(property.Accessors()) > 0 {
		return
	}

	getter := &ast.AccessorDeclaration{
		Kind: ast.AccessorKindGet,
		DeclarationBase: ast.DeclarationBase{
			Identifier: ast.NewIdentifier(ast.AccessorKindGet.Keyword(), property.Identifier.Pos),
			Range:      property.Range,
		},
	}
	ctx.Arena.AddMember(property, getter)
}

const implicitSetterParameterName = "newValue"

func (ctx *checkingContext) checkAccessorHeader(accessor *ast.AccessorDeclaration) {
	property, ok := ctx.Arena.Parent(accessor).(*ast.PropertyDeclaration)
	if !ok {
		ctx.Elaboration.setResultType(accessor, ErrorType)
		return
	}

	ctx.ensureDecl(property, common.DeclCheckStateSignatureChecked)
	propertyType := ctx.Elaboration.DeclarationType(property)
	if propertyType == nil {
		propertyType = ErrorType
	}

	parameters := accessor.Parameters()

	switch accessor.Kind {
	case ast.AccessorKindGet:
		if len(parameters) > 0 {
			ctx.report(&GetterWithParametersError{
				Range: ast.NewRangeFromPositioned(accessor.Identifier),
			})
		}
		ctx.Elaboration.setResultType(accessor, propertyType)

	case ast.AccessorKindSet:
		switch len(parameters) {
		case 0:
			parameter := &ast.ParameterDeclaration{
				TypeAnnotation: property.TypeAnnotation,
				DeclarationBase: ast.DeclarationBase{
					Identifier: ast.NewIdentifier(implicitSetterParameterName, accessor.Identifier.Pos),
					Range:      accessor.Range,
				},
			}
			ctx.Arena.AddMember(accessor, parameter)

		case 1:
			parameterType := ctx.declRefType(NewDeclRef(parameters[0], ctx.CreateDefaultSubstitutions(parameters[0])))
			if !isErrorType(parameterType) &&
				!isErrorType(propertyType) &&
				!TypesEqual(parameterType, propertyType) {

				ctx.report(&InvalidSetterParameterError{
					PropertyType: propertyType,
					Range:        ast.NewRangeFromPositioned(parameters[0].Identifier),
				})
			}

		default:
			ctx.report(&InvalidSetterParameterError{
				PropertyType: propertyType,
				Range:        ast.NewRangeFromPositioned(accessor.Identifier),
			})
		}
		ctx.Elaboration.setResultType(accessor, VoidType)

	case ast.AccessorKindRef:
		ctx.Elaboration.setResultType(accessor, propertyType)
	}
}

// checkEnumCaseHeader determines the type and the tag of an enum case.
// A case without an explicit tag has the tag of the previous case plus one,
// or zero if it is the first case.
func (ctx *checkingContext) checkEnumCaseHeader(enumCase *ast.EnumCaseDeclaration) {
	enum := ctx.Arena.Parent(enumCase)

	ty := ctx.selfTypeOf(enum)
	if ty == nil {
		ty = ErrorType
	}
	ctx.Elaboration.setDeclarationType(enumCase, ty)

	if enumCase.TagExpression != nil {
		tagContext := ctx.withScope(enum)
		tagContext.selfType = ty
		tagContext.checkExpression(enumCase.TagExpression)

		tag := tagContext.tryFold(enumCase.TagExpression)
		if tag == nil {
			ctx.report(&NonConstantEnumTagError{
				Name:  enumCase.Identifier.Identifier,
				Range: ast.NewRangeFromPositioned(enumCase.TagExpression),
			})
			return
		}
		ctx.Elaboration.setEnumCaseTag(enumCase, tag)
		return
	}

	var previous *ast.EnumCaseDeclaration
	for _, member := range ast.MembersOfType[*ast.EnumCaseDeclaration](enum) {
		if member == enumCase {
			break
		}
		previous = member
	}

	var tag int64
	if previous != nil {
		ctx.ensureDecl(previous, common.DeclCheckStateSignatureChecked)
		if previousTag, ok := ctx.Elaboration.EnumCaseTag(previous).(*ConstantIntVal); ok {
			tag = previousTag.Value + 1
		}
	}
	ctx.Elaboration.setEnumCaseTag(enumCase, &ConstantIntVal{Value: tag})
}
