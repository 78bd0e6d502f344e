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

// resolveType resolves the given type expression in the scope of the context.
// Errors are reported, and the error type is returned for invalid types.
func (ctx *checkingContext) resolveType(typeExpression ast.TypeExpression) Type {
	switch typeExpression := typeExpression.(type) {
	case *ast.NominalType:
		return ctx.resolveNominalType(typeExpression)

	case *ast.MemberType:
		return ctx.resolveMemberType(typeExpression)

	case *ast.ThisTypeExpression:
		return ctx.resolveThisType(typeExpression)

	case *ast.IntegerTypeArgument:
		ctx.report(&InvalidGenericArgumentError{
			Name:         typeExpression.String(),
			ExpectedKind: common.DeclarationKindTypeParameter,
			Range:        typeExpression.Range,
		})
		return ErrorType
	}

	return ErrorType
}

func (ctx *checkingContext) resolveNominalType(typeExpression *ast.NominalType) Type {
	name := typeExpression.Identifier.Identifier

	items := ctx.lookUp(ctx.scope, name)
	if len(items) == 0 {
		if primitiveType, ok := PrimitiveTypeFromName(name); ok {
			if len(typeExpression.Arguments) > 0 {
				ctx.report(&NonGenericTypeArgumentsError{
					Name:  name,
					Range: ast.NewRangeFromPositioned(typeExpression),
				})
				return ErrorType
			}
			return primitiveType
		}

		ctx.report(&NotDeclaredError{
			Name:         name,
			ExpectedKind: common.DeclarationKindUnknown,
			Range:        ast.NewRangeFromPositioned(typeExpression.Identifier),
		})
		return ErrorType
	}

	return ctx.typeOfLookupItem(items[0], typeExpression.Arguments, typeExpression)
}

func (ctx *checkingContext) resolveMemberType(typeExpression *ast.MemberType) Type {
	parentType := ctx.resolveType(typeExpression.Parent)
	if isErrorType(parentType) {
		return ErrorType
	}

	name := typeExpression.Identifier.Identifier

	for _, item := range ctx.lookUpMember(parentType, name, LookupOptions{}) {
		if !isTypeDeclaration(item.DeclRef.Declaration) {
			continue
		}
		return ctx.typeOfLookupItem(item, nil, typeExpression)
	}

	ctx.report(&NotDeclaredMemberError{
		Type:          parentType,
		Name:          name,
		MemberNames:   ctx.memberNames(parentType),
		SuggestMember: ctx.Config.SuggestionsEnabled,
		Range:         ast.NewRangeFromPositioned(typeExpression.Identifier),
	})
	return ErrorType
}

func (ctx *checkingContext) resolveThisType(typeExpression *ast.ThisTypeExpression) Type {
	for scope := ctx.scope; scope != nil; scope = ctx.Arena.Parent(scope) {
		switch scope.(type) {
		case *ast.InterfaceDeclaration,
			*ast.StructDeclaration,
			*ast.EnumDeclaration,
			*ast.ExtensionDeclaration:

			return ctx.selfTypeOf(scope)
		}
	}

	ctx.report(&InvalidThisTypeError{
		Range: typeExpression.Range,
	})
	return ErrorType
}

// isTypeDeclaration returns true if the given declaration, or the inner declaration of a generic, declares a type.
func isTypeDeclaration(declaration ast.Declaration) bool {
	return unwrapGeneric(declaration).DeclarationKind().IsTypeDeclaration()
}

// typeOfLookupItem returns the type denoted by the found declaration, applied to the given arguments.
func (ctx *checkingContext) typeOfLookupItem(
	item LookupResultItem,
	arguments []ast.TypeExpression,
	hasPosition ast.HasPosition,
) Type {
	declRef := item.DeclRef
	declaration := declRef.Declaration
	name := declRef.Name()
	errorRange := ast.NewRangeFromPositioned(hasPosition)

	switch declaration := declaration.(type) {
	case *ast.GenericDeclaration:
		if !isTypeDeclaration(declaration.Inner) {
			ctx.report(&NotATypeError{
				Name:  name,
				Kind:  declaration.Inner.DeclarationKind(),
				Range: errorRange,
			})
			return ErrorType
		}

		if len(arguments) == 0 {
			ctx.report(&GenericArgumentsRequiredError{
				Name:  name,
				Range: errorRange,
			})
			return ErrorType
		}

		return ctx.specializeGenericType(declRef, declaration, arguments, errorRange)

	case *ast.StructDeclaration,
		*ast.InterfaceDeclaration,
		*ast.EnumDeclaration,
		*ast.GenericTypeParameterDeclaration,
		*ast.AssociatedTypeDeclaration:

		if len(arguments) > 0 {
			ctx.report(&NonGenericTypeArgumentsError{
				Name:  name,
				Range: errorRange,
			})
			return ErrorType
		}
		return NewDeclRefType(declRef)

	case *ast.TypeAliasDeclaration:
		if len(arguments) > 0 {
			ctx.report(&NonGenericTypeArgumentsError{
				Name:  name,
				Range: errorRange,
			})
			return ErrorType
		}
		return ctx.declRefType(declRef)
	}

	ctx.report(&NotATypeError{
		Name:  name,
		Kind:  declaration.DeclarationKind(),
		Range: errorRange,
	})
	return ErrorType
}

// specializeGenericType applies the referenced generic type to the given arguments.
// The constraints of the generic must be satisfied by the arguments.
func (ctx *checkingContext) specializeGenericType(
	genericRef DeclRef,
	generic *ast.GenericDeclaration,
	arguments []ast.TypeExpression,
	errorRange ast.Range,
) Type {
	parameters := generic.GenericParameters()

	if len(arguments) != len(parameters) {
		ctx.report(&InvalidGenericArgumentCountError{
			Name:     genericRef.Name(),
			Expected: len(parameters),
			Actual:   len(arguments),
			Range:    errorRange,
		})
		return ErrorType
	}

	args := make([]Val, 0, len(parameters)+len(generic.Constraints()))

	for i, parameter := range parameters {
		argument := arguments[i]

		switch parameter.(type) {
		case *ast.GenericTypeParameterDeclaration:
			if _, ok := argument.(*ast.IntegerTypeArgument); ok {
				ctx.report(&InvalidGenericArgumentError{
					Name:         parameter.DeclarationIdentifier().Identifier,
					ExpectedKind: common.DeclarationKindTypeParameter,
					Range:        ast.NewRangeFromPositioned(argument),
				})
				return ErrorType
			}

			argumentType := ctx.resolveType(argument)
			if isErrorType(argumentType) {
				return ErrorType
			}
			args = append(args, argumentType)

		case *ast.GenericValueParameterDeclaration:
			val := ctx.resolveValueArgument(argument)
			if val == nil {
				ctx.report(&InvalidGenericArgumentError{
					Name:         parameter.DeclarationIdentifier().Identifier,
					ExpectedKind: common.DeclarationKindValueParameter,
					Range:        ast.NewRangeFromPositioned(argument),
				})
				return ErrorType
			}
			args = append(args, val)
		}
	}

	outer := genericRef.Substitutions

	ctx.ensureGenericConstraints(generic)

	partial := &GenericSubstitution{
		Generic: generic,
		Args:    args,
		outer:   outer,
	}

	for _, constraint := range generic.Constraints() {
		sub, sup := ctx.declRefSubAndSupTypes(NewDeclRef(constraint, partial))
		if isErrorType(sub) || isErrorType(sup) {
			return ErrorType
		}

		witness := ctx.findSubtypeWitness(sub, sup)
		if witness == nil {
			ctx.report(&GenericConstraintNotSatisfiedError{
				Type:      sub,
				Supertype: sup,
				Range:     errorRange,
			})
			return ErrorType
		}
		args = append(args, witness)
	}

	substitution := ctx.internTable.GenericSubstitution(generic, args, outer)
	return NewDeclRefType(NewDeclRef(generic.Inner, substitution))
}

// resolveValueArgument resolves a generic argument for a value parameter:
// an integer literal, a value parameter, or a constant.
// Nil is returned if the argument does not denote a value.
func (ctx *checkingContext) resolveValueArgument(argument ast.TypeExpression) Val {
	switch argument := argument.(type) {
	case *ast.IntegerTypeArgument:
		return &ConstantIntVal{Value: argument.Value}

	case *ast.NominalType:
		if len(argument.Arguments) > 0 {
			return nil
		}

		items := ctx.lookUp(ctx.scope, argument.Identifier.Identifier)
		if len(items) == 0 {
			return nil
		}

		declRef := items[0].DeclRef
		switch declRef.Declaration.(type) {
		case *ast.GenericValueParameterDeclaration:
			return &GenericParamIntVal{Parameter: declRef}

		case *ast.VariableDeclaration:
			return ctx.constantValue(declRef)
		}
	}

	return nil
}
