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

// tryFold evaluates the given expression at compile time.
// Nil is returned if the expression is not constant.
//
// The expression is expected to be checked already,
// so references resolve through the recorded member targets.
func (ctx *checkingContext) tryFold(expression ast.Expression) Val {
	switch expression := expression.(type) {
	case *ast.IntegerExpression:
		return &ConstantIntVal{Value: expression.Value}

	case *ast.BoolExpression:
		return &ConstantBoolVal{Value: expression.Value}

	case *ast.UnaryExpression:
		return foldUnary(expression.Operation, ctx.tryFold(expression.Expression))

	case *ast.BinaryExpression:
		left := ctx.tryFold(expression.Left)
		if left == nil {
			return nil
		}
		right := ctx.tryFold(expression.Right)
		if right == nil {
			return nil
		}
		return foldBinary(expression.Operation, left, right)

	case *ast.IdentifierExpression:
		declRef, ok := ctx.Elaboration.MemberTarget(expression)
		if !ok {
			items := ctx.lookUp(ctx.scope, expression.Identifier.Identifier)
			if len(items) == 0 {
				return nil
			}
			declRef = items[0].DeclRef
		}
		return ctx.foldDeclRef(declRef)

	case *ast.MemberExpression:
		declRef, ok := ctx.Elaboration.MemberTarget(expression)
		if !ok {
			return nil
		}
		return ctx.foldDeclRef(declRef)

	case *ast.DeclarationReferenceExpression:
		return ctx.foldDeclRef(NewDeclRef(
			expression.Declaration,
			ctx.CreateDefaultSubstitutions(expression.Declaration),
		))
	}

	return nil
}

// foldDeclRef returns the compile-time value of the referenced declaration, if any:
// the value of a constant, the value of a generic value parameter, or the tag of an enum case.
func (ctx *checkingContext) foldDeclRef(declRef DeclRef) Val {
	switch declaration := declRef.Declaration.(type) {
	case *ast.VariableDeclaration:
		return ctx.constantValue(declRef)

	case *ast.GenericValueParameterDeclaration:
		return &GenericParamIntVal{Parameter: declRef}

	case *ast.EnumCaseDeclaration:
		ctx.ensureDecl(declaration, common.DeclCheckStateSignatureChecked)
		return ctx.Elaboration.EnumCaseTag(declaration)
	}

	return nil
}

// constantValue returns the folded value of the referenced constant,
// seen through the substitutions of the reference.
// Nil is returned for non-constant variables.
func (checker *Checker) constantValue(declRef DeclRef) Val {
	variable, ok := declRef.Declaration.(*ast.VariableDeclaration)
	if !ok || !variable.IsConstant() {
		return nil
	}

	checker.ensureDecl(variable, common.DeclCheckStateSignatureChecked)

	val := checker.Elaboration.ConstantValue(variable)
	if val == nil {
		return nil
	}
	return checker.substituteVal(val, declRef.Substitutions)
}

func foldUnary(operation ast.Operation, operand Val) Val {
	switch operand := operand.(type) {
	case *ConstantIntVal:
		if operation == ast.OperationNegate {
			return &ConstantIntVal{Value: -operand.Value}
		}

	case *ConstantBoolVal:
		if operation == ast.OperationNot {
			return &ConstantBoolVal{Value: !operand.Value}
		}
	}

	return nil
}

func foldBinary(operation ast.Operation, left Val, right Val) Val {
	switch left := left.(type) {
	case *ConstantIntVal:
		right, ok := right.(*ConstantIntVal)
		if !ok {
			return nil
		}
		return foldIntBinary(operation, left.Value, right.Value)

	case *ConstantBoolVal:
		right, ok := right.(*ConstantBoolVal)
		if !ok {
			return nil
		}
		switch operation {
		case ast.OperationEqual:
			return &ConstantBoolVal{Value: left.Value == right.Value}
		case ast.OperationNotEqual:
			return &ConstantBoolVal{Value: left.Value != right.Value}
		}
	}

	return nil
}

func foldIntBinary(operation ast.Operation, left int64, right int64) Val {
	switch operation {
	case ast.OperationPlus:
		return &ConstantIntVal{Value: left + right}
	case ast.OperationMinus:
		return &ConstantIntVal{Value: left - right}
	case ast.OperationMul:
		return &ConstantIntVal{Value: left * right}
	case ast.OperationDiv:
		if right == 0 {
			return nil
		}
		return &ConstantIntVal{Value: left / right}
	case ast.OperationEqual:
		return &ConstantBoolVal{Value: left == right}
	case ast.OperationNotEqual:
		return &ConstantBoolVal{Value: left != right}
	case ast.OperationLess:
		return &ConstantBoolVal{Value: left < right}
	case ast.OperationGreater:
		return &ConstantBoolVal{Value: left > right}
	}

	return nil
}
