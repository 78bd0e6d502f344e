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

// checkExpression checks the given expression and records its type.
func (ctx *checkingContext) checkExpression(expression ast.Expression) Type {
	ty := ctx.checkExpressionKind(expression)
	if ty == nil {
		ty = ErrorType
	}
	ctx.Elaboration.setExpressionType(expression, ty)
	return ty
}

func (ctx *checkingContext) checkExpressionKind(expression ast.Expression) Type {
	switch expression := expression.(type) {
	case *ast.IntegerExpression:
		return IntType

	case *ast.FloatExpression:
		return FloatType

	case *ast.BoolExpression:
		return BoolType

	case *ast.IdentifierExpression:
		return ctx.checkIdentifierExpression(expression)

	case *ast.ThisExpression:
		return ctx.checkThisExpression(expression)

	case *ast.MemberExpression:
		return ctx.checkMemberExpression(expression)

	case *ast.InvocationExpression:
		return ctx.checkInvocationExpression(expression)

	case *ast.UnaryExpression:
		return ctx.checkUnaryExpression(expression)

	case *ast.BinaryExpression:
		return ctx.checkBinaryExpression(expression)

	case *ast.DeclarationReferenceExpression:
		declaration := expression.Declaration
		declRef := NewDeclRef(declaration, ctx.CreateDefaultSubstitutions(declaration))
		ctx.Elaboration.setMemberTarget(expression, declRef)
		return ctx.declRefType(declRef)

	case *ast.OverloadedExpression:
		return ctx.checkOverloadedExpression(expression)
	}

	return ErrorType
}

func (ctx *checkingContext) checkIdentifierExpression(expression *ast.IdentifierExpression) Type {
	identifier := expression.Identifier
	errorRange := ast.NewRangeFromPositioned(identifier)

	items := ctx.lookUp(ctx.scope, identifier.Identifier)
	if len(items) == 0 {
		ctx.report(&NotDeclaredError{
			Name:         identifier.Identifier,
			ExpectedKind: common.DeclarationKindVariable,
			Range:        errorRange,
		})
		return ErrorType
	}

	item := items[0]
	if !ctx.checkValueReference(item.DeclRef, errorRange) {
		return ErrorType
	}

	if ctx.thisType == nil && ctx.isInstanceMember(item.DeclRef.Declaration) {
		ctx.report(&InvalidStaticMemberAccessError{
			Name:  identifier.Identifier,
			Range: errorRange,
		})
		return ErrorType
	}

	ctx.Elaboration.setMemberTarget(expression, item.DeclRef)
	return ctx.declRefType(item.DeclRef)
}

// checkValueReference reports an error if the referenced declaration cannot be used as a value.
func (ctx *checkingContext) checkValueReference(declRef DeclRef, errorRange ast.Range) bool {
	declaration := unwrapGeneric(declRef.Declaration)
	name := declRef.Name()

	switch declaration.(type) {
	case *ast.FunctionDeclaration, *ast.ConstructorDeclaration:
		ctx.report(&InvalidFunctionReferenceError{
			Name:  name,
			Range: errorRange,
		})
		return false
	}

	if declaration.DeclarationKind().IsTypeDeclaration() {
		ctx.report(&InvalidTypeReferenceError{
			Name:  name,
			Range: errorRange,
		})
		return false
	}

	return true
}

// isInstanceMember returns true if the given declaration is a member of a type
// which can only be accessed through an instance.
func (checker *Checker) isInstanceMember(declaration ast.Declaration) bool {
	declaration = unwrapGeneric(declaration)
	parent := checker.parentSkippingGeneric(declaration)

	switch parent.(type) {
	case *ast.StructDeclaration,
		*ast.EnumDeclaration,
		*ast.InterfaceDeclaration,
		*ast.ExtensionDeclaration:

		return !isEffectivelyStatic(declaration, parent)
	}

	return false
}

func (ctx *checkingContext) checkThisExpression(expression *ast.ThisExpression) Type {
	if ctx.thisType == nil {
		ctx.report(&InvalidThisError{
			Range: expression.Range,
		})
		return ErrorType
	}
	return ctx.thisType
}

func (ctx *checkingContext) checkMemberExpression(expression *ast.MemberExpression) Type {
	identifier := expression.Identifier
	errorRange := ast.NewRangeFromPositioned(identifier)

	if baseType, ok := ctx.typeOfTypeExpression(expression.Expression); ok {
		if isErrorType(baseType) {
			return ErrorType
		}

		item, ok := ctx.lookUpStaticMember(baseType, identifier)
		if !ok {
			return ErrorType
		}

		if !ctx.checkValueReference(item.DeclRef, errorRange) {
			return ErrorType
		}

		ctx.Elaboration.setMemberTarget(expression, item.DeclRef)
		return ctx.declRefType(item.DeclRef)
	}

	baseType := ctx.checkExpression(expression.Expression)
	if isErrorType(baseType) {
		return ErrorType
	}

	items := ctx.lookUpMember(baseType, identifier.Identifier, LookupOptions{})
	if len(items) == 0 {
		ctx.reportNotDeclaredMember(baseType, identifier)
		return ErrorType
	}

	item := items[0]
	if !ctx.checkValueReference(item.DeclRef, errorRange) {
		return ErrorType
	}

	ctx.Elaboration.setMemberTarget(expression, item.DeclRef)
	return ctx.declRefType(item.DeclRef)
}

// lookUpStaticMember finds the member with the given name which can be accessed through the given type.
func (ctx *checkingContext) lookUpStaticMember(ty Type, identifier ast.Identifier) (LookupResultItem, bool) {
	items := ctx.lookUpMember(ty, identifier.Identifier, LookupOptions{})
	if len(items) == 0 {
		ctx.reportNotDeclaredMember(ty, identifier)
		return LookupResultItem{}, false
	}

	for _, item := range items {
		if isDeclUsableAsStaticMember(item.DeclRef.Declaration) {
			return item, true
		}
	}

	ctx.report(&InvalidStaticMemberAccessError{
		Name:  identifier.Identifier,
		Range: ast.NewRangeFromPositioned(identifier),
	})
	return LookupResultItem{}, false
}

func (ctx *checkingContext) reportNotDeclaredMember(ty Type, identifier ast.Identifier) {
	ctx.report(&NotDeclaredMemberError{
		Type:          ty,
		Name:          identifier.Identifier,
		MemberNames:   ctx.memberNames(ty),
		SuggestMember: ctx.Config.SuggestionsEnabled,
		Range:         ast.NewRangeFromPositioned(identifier),
	})
}

// typeOfTypeExpression returns the type an expression denotes,
// if the expression names a type rather than a value, e.g. the `E` in `E.A`.
func (ctx *checkingContext) typeOfTypeExpression(expression ast.Expression) (Type, bool) {
	switch expression := expression.(type) {
	case *ast.IdentifierExpression:
		items := ctx.lookUp(ctx.scope, expression.Identifier.Identifier)
		if len(items) == 0 || !isTypeDeclaration(items[0].DeclRef.Declaration) {
			return nil, false
		}
		return ctx.typeOfLookupItem(items[0], nil, expression), true

	case *ast.MemberExpression:
		parentType, ok := ctx.typeOfTypeExpression(expression.Expression)
		if !ok {
			return nil, false
		}
		if isErrorType(parentType) {
			return ErrorType, true
		}
		for _, item := range ctx.lookUpMember(parentType, expression.Identifier.Identifier, LookupOptions{}) {
			if isTypeDeclaration(item.DeclRef.Declaration) {
				return ctx.typeOfLookupItem(item, nil, expression), true
			}
		}
	}

	return nil, false
}

// checkOverloadedExpression checks a reference to one of the given candidates,
// re-resolved on the type of the base expression, or on the enclosing type if there is no base.
func (ctx *checkingContext) checkOverloadedExpression(expression *ast.OverloadedExpression) Type {
	item, ok := ctx.resolveOverloadedCandidates(expression)
	if !ok {
		return ErrorType
	}

	if !ctx.checkValueReference(item.DeclRef, expression.Range) {
		return ErrorType
	}

	ctx.Elaboration.setMemberTarget(expression, item.DeclRef)
	return ctx.declRefType(item.DeclRef)
}

// overloadedCandidates returns the lookup results on the base of the given expression
// which are among its candidates.
func (ctx *checkingContext) overloadedCandidates(expression *ast.OverloadedExpression) []LookupResultItem {
	baseType := ctx.selfType
	if expression.Base != nil {
		baseType = ctx.checkExpression(expression.Base)
	}
	if baseType == nil || isErrorType(baseType) {
		return nil
	}

	var items []LookupResultItem
	options := LookupOptions{IgnoreBaseInterfaces: true}
	for _, item := range ctx.lookUpMember(baseType, expression.Identifier.Identifier, options) {
		if containsDeclaration(expression.Candidates, item.DeclRef.Declaration) {
			items = append(items, item)
		}
	}
	return items
}

func (ctx *checkingContext) resolveOverloadedCandidates(expression *ast.OverloadedExpression) (LookupResultItem, bool) {
	items := ctx.overloadedCandidates(expression)
	if len(items) == 0 {
		ctx.report(&NotDeclaredError{
			Name:         expression.Identifier.Identifier,
			ExpectedKind: common.DeclarationKindUnknown,
			Range:        expression.Range,
		})
		return LookupResultItem{}, false
	}
	return items[0], true
}

func containsDeclaration(declarations []ast.Declaration, declaration ast.Declaration) bool {
	for _, candidate := range declarations {
		if candidate == declaration {
			return true
		}
	}
	return false
}

func (ctx *checkingContext) checkUnaryExpression(expression *ast.UnaryExpression) Type {
	operandType := ctx.checkExpression(expression.Expression)
	if isErrorType(operandType) {
		return ErrorType
	}

	switch expression.Operation {
	case ast.OperationNegate:
		if primitive, ok := operandType.(PrimitiveType); ok && primitive.IsNumeric() {
			return operandType
		}

	case ast.OperationNot:
		if operandType == BoolType {
			return BoolType
		}
	}

	ctx.report(&InvalidUnaryOperandError{
		ActualType: operandType,
		Operation:  expression.Operation,
		Range:      ast.NewRangeFromPositioned(expression),
	})
	return ErrorType
}

func (ctx *checkingContext) checkBinaryExpression(expression *ast.BinaryExpression) Type {
	leftType := ctx.checkExpression(expression.Left)
	rightType := ctx.checkExpression(expression.Right)

	if isErrorType(leftType) || isErrorType(rightType) {
		return ErrorType
	}

	operation := expression.Operation

	leftPrimitive, leftIsPrimitive := leftType.(PrimitiveType)
	rightPrimitive, rightIsPrimitive := rightType.(PrimitiveType)
	bothNumeric := leftIsPrimitive && rightIsPrimitive &&
		leftPrimitive.IsNumeric() && rightPrimitive.IsNumeric()

	switch operation {
	case ast.OperationPlus,
		ast.OperationMinus,
		ast.OperationMul,
		ast.OperationDiv:

		if bothNumeric {
			if leftPrimitive == FloatType || rightPrimitive == FloatType {
				return FloatType
			}
			return IntType
		}

	case ast.OperationLess,
		ast.OperationGreater:

		if bothNumeric {
			return BoolType
		}

	case ast.OperationEqual,
		ast.OperationNotEqual:

		if bothNumeric || (leftType == BoolType && rightType == BoolType) {
			return BoolType
		}
	}

	ctx.report(&InvalidBinaryOperandsError{
		LeftType:  leftType,
		RightType: rightType,
		Operation: operation,
		Range:     ast.NewRangeFromPositioned(expression),
	})
	return ErrorType
}

// isLValue returns true if the given checked expression denotes mutable storage.
func (ctx *checkingContext) isLValue(expression ast.Expression) bool {
	switch expression := expression.(type) {
	case *ast.ThisExpression:
		return ctx.isMutating || expression.IsLValue

	case *ast.IdentifierExpression, *ast.DeclarationReferenceExpression:
		declRef, ok := ctx.Elaboration.MemberTarget(expression)
		if !ok {
			return false
		}
		if ctx.isInstanceMember(declRef.Declaration) && !ctx.isMutating {
			return false
		}
		return isMutableStorage(declRef.Declaration)

	case *ast.MemberExpression:
		declRef, ok := ctx.Elaboration.MemberTarget(expression)
		if !ok || !isMutableStorage(declRef.Declaration) {
			return false
		}
		if isDeclUsableAsStaticMember(declRef.Declaration) {
			return true
		}
		return ctx.isLValue(expression.Expression)

	case *ast.OverloadedExpression:
		declRef, ok := ctx.Elaboration.MemberTarget(expression)
		if !ok || !isMutableStorage(declRef.Declaration) {
			return false
		}
		if expression.Base == nil {
			return true
		}
		return ctx.isLValue(expression.Base)
	}

	return false
}

// isMutableStorage returns true for declarations which can be assigned:
// non-constant variables, parameters, and properties with a setter or ref accessor.
func isMutableStorage(declaration ast.Declaration) bool {
	switch declaration := declaration.(type) {
	case *ast.VariableDeclaration:
		return !declaration.IsConstant()

	case *ast.ParameterDeclaration:
		return !declaration.Modifiers.Has(common.ModifierConst)

	case *ast.PropertyDeclaration:
		for _, accessor := range declaration.Accessors() {
			if accessor.Kind != ast.AccessorKindGet {
				return true
			}
		}
	}

	return false
}
