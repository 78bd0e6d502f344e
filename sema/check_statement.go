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
)

func (ctx *checkingContext) checkBlock(block *ast.Block) {
	if block == nil {
		return
	}
	for _, statement := range block.Statements {
		ctx.checkStatement(statement)
	}
}

func (ctx *checkingContext) checkStatement(statement ast.Statement) {
	switch statement := statement.(type) {
	case *ast.Block:
		ctx.checkBlock(statement)

	case *ast.ReturnStatement:
		ctx.checkReturnStatement(statement)

	case *ast.ExpressionStatement:
		ctx.checkExpression(statement.Expression)

	case *ast.AssignmentStatement:
		ctx.checkAssignmentStatement(statement)
	}
}

func (ctx *checkingContext) checkReturnStatement(statement *ast.ReturnStatement) {
	returnType := ctx.returnType
	if returnType == nil {
		returnType = VoidType
	}

	if statement.Expression == nil {
		if returnType != VoidType && !isErrorType(returnType) {
			ctx.report(&MissingReturnValueError{
				ExpectedType: returnType,
				Range:        statement.Range,
			})
		}
		return
	}

	valueType := ctx.checkExpression(statement.Expression)

	if returnType == VoidType {
		ctx.report(&InvalidReturnValueError{
			Range: ast.NewRangeFromPositioned(statement.Expression),
		})
		return
	}

	ctx.coerce(returnType, valueType, statement.Expression)
}

func (ctx *checkingContext) checkAssignmentStatement(statement *ast.AssignmentStatement) {
	targetType := ctx.checkExpression(statement.Target)
	valueType := ctx.checkExpression(statement.Value)

	if isErrorType(targetType) {
		return
	}

	if !ctx.checkAssignmentTarget(statement.Target) {
		return
	}

	ctx.coerce(targetType, valueType, statement.Value)
}

// checkAssignmentTarget reports an error if the given checked expression cannot be assigned.
func (ctx *checkingContext) checkAssignmentTarget(target ast.Expression) bool {
	errorRange := ast.NewRangeFromPositioned(target)

	var declRef DeclRef
	var base ast.Expression
	var implicitThis bool

	switch target := target.(type) {
	case *ast.IdentifierExpression:
		ref, ok := ctx.Elaboration.MemberTarget(target)
		if !ok {
			break
		}
		declRef = ref
		implicitThis = ctx.isInstanceMember(ref.Declaration)

	case *ast.MemberExpression:
		ref, ok := ctx.Elaboration.MemberTarget(target)
		if !ok {
			break
		}
		declRef = ref
		base = target.Expression

	case *ast.OverloadedExpression:
		ref, ok := ctx.Elaboration.MemberTarget(target)
		if !ok {
			break
		}
		declRef = ref
		base = target.Base
		implicitThis = base == nil && ctx.isInstanceMember(ref.Declaration)
	}

	if !declRef.IsValid() {
		ctx.report(&InvalidAssignmentTargetError{
			Range: errorRange,
		})
		return false
	}

	if variable, ok := declRef.Declaration.(*ast.VariableDeclaration); ok && variable.IsConstant() {
		ctx.report(&AssignmentToConstantError{
			Name:  declRef.Name(),
			Range: errorRange,
		})
		return false
	}

	if !isMutableStorage(declRef.Declaration) {
		ctx.report(&InvalidAssignmentTargetError{
			Range: errorRange,
		})
		return false
	}

	_, baseIsThis := base.(*ast.ThisExpression)
	if (implicitThis || baseIsThis) && !ctx.isLValue(thisOrBase(base)) {
		ctx.report(&AssignmentToImmutableThisError{
			Range: errorRange,
		})
		return false
	}

	if base != nil && !baseIsThis && !isDeclUsableAsStaticMember(declRef.Declaration) && !ctx.isLValue(base) {
		ctx.report(&InvalidAssignmentTargetError{
			Range: errorRange,
		})
		return false
	}

	return true
}

func thisOrBase(base ast.Expression) ast.Expression {
	if base == nil {
		return &ast.ThisExpression{}
	}
	return base
}
