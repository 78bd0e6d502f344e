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

// checkBody checks the code of the declaration:
// bodies, default values of parameters, and initializers of variables.
func checkBody(ctx *checkingContext, declaration ast.Declaration) {
	switch declaration := declaration.(type) {
	case *ast.FunctionDeclaration:
		if declaration.Body != nil {
			ctx.forBody(declaration).checkBlock(declaration.Body)
		}

	case *ast.ConstructorDeclaration:
		if declaration.Body != nil {
			ctx.forBody(declaration).checkBlock(declaration.Body)
		}

	case *ast.AccessorDeclaration:
		if declaration.Body != nil {
			ctx.forBody(declaration).checkBlock(declaration.Body)
		}

	case *ast.ParameterDeclaration:
		if declaration.DefaultValue == nil {
			return
		}
		callable := ctx.Arena.Parent(declaration)
		bodyContext := ctx.forBody(callable)
		if _, ok := callable.(*ast.ConstructorDeclaration); ok {
			// the instance does not exist yet
			bodyContext.thisType = nil
			bodyContext.isMutating = false
		}
		valueType := bodyContext.checkExpression(declaration.DefaultValue)
		bodyContext.coerce(ctx.Elaboration.DeclarationType(declaration), valueType, declaration.DefaultValue)

	case *ast.VariableDeclaration:
		ctx.checkVariableBody(declaration)
	}
}

func (ctx *checkingContext) checkVariableBody(variable *ast.VariableDeclaration) {
	ty := ctx.Elaboration.DeclarationType(variable)

	if _, ok := ctx.Arena.Parent(variable).(*ast.InterfaceDeclaration); ok &&
		variable.IsConstant() &&
		variable.Modifiers.Has(common.ModifierStatic) &&
		ty != nil &&
		!isErrorType(ty) &&
		ty != IntType &&
		ty != BoolType {

		ctx.report(&InvalidConstantRequirementTypeError{
			Name:  variable.Identifier.Identifier,
			Type:  ty,
			Range: ast.NewRangeFromPositioned(variable.Identifier),
		})
	}

	// initializers of constants and of variables without a type were checked with the header
	if variable.TypeAnnotation == nil || variable.IsConstant() || variable.Value == nil {
		return
	}

	initializerContext := ctx.forInitializer(variable)
	valueType := initializerContext.checkExpression(variable.Value)
	initializerContext.coerce(ty, valueType, variable.Value)
}

// ownerOf returns the type declaration, extension, or module which owns the given declaration.
// Generics and properties are skipped.
func (checker *Checker) ownerOf(declaration ast.Declaration) ast.Declaration {
	for parent := checker.Arena.Parent(declaration); parent != nil; parent = checker.Arena.Parent(parent) {
		switch parent.(type) {
		case *ast.StructDeclaration,
			*ast.EnumDeclaration,
			*ast.InterfaceDeclaration,
			*ast.ExtensionDeclaration,
			*ast.ModuleDeclaration:
			return parent
		}
	}
	return nil
}

// forBody returns the context for checking the body of the given function, constructor, or accessor.
func (ctx *checkingContext) forBody(callable ast.Declaration) *checkingContext {
	owner := ctx.ownerOf(callable)

	nested := ctx.withScope(callable)
	nested.function = callable
	nested.selfType = ctx.selfTypeOf(owner)
	nested.returnType = ctx.Elaboration.ResultType(callable)
	nested.thisType = nil
	nested.isMutating = false

	// the staticness of an accessor is the one of its property
	member := callable
	if _, ok := callable.(*ast.AccessorDeclaration); ok {
		member = ctx.Arena.Parent(callable)
	}

	if nested.selfType == nil {
		return nested
	}

	// constructors are static members, but initialize the instance
	_, isConstructor := callable.(*ast.ConstructorDeclaration)

	if isConstructor || !isEffectivelyStatic(member, ctx.parentSkippingGeneric(member)) {
		nested.thisType = nested.selfType
		nested.isMutating = isMutatingCallable(callable, owner)
	}

	return nested
}

// forInitializer returns the context for checking the initializer of the given variable.
func (ctx *checkingContext) forInitializer(variable *ast.VariableDeclaration) *checkingContext {
	owner := ctx.ownerOf(variable)

	nested := ctx.withScope(ctx.Arena.Parent(variable))
	nested.function = nil
	nested.returnType = nil
	nested.selfType = ctx.selfTypeOf(owner)
	nested.thisType = nil
	nested.isMutating = false

	if nested.selfType != nil && !isEffectivelyStatic(variable, ctx.Arena.Parent(variable)) {
		nested.thisType = nested.selfType
	}

	return nested
}

// isMutatingCallable returns true if `this` may be mutated in the given callable.
// Setters mutate unless declared nonmutating, and other functions only if declared mutating.
// The instances of classes are always mutable.
func isMutatingCallable(callable ast.Declaration, owner ast.Declaration) bool {
	if structDeclaration, ok := owner.(*ast.StructDeclaration); ok && structDeclaration.IsClass {
		return true
	}

	modifiers := callable.DeclarationModifiers()

	switch callable := callable.(type) {
	case *ast.ConstructorDeclaration:
		return true

	case *ast.AccessorDeclaration:
		if callable.Kind == ast.AccessorKindSet {
			return !modifiers.Has(common.ModifierNonmutating)
		}
	}

	return modifiers.Has(common.ModifierMutating)
}
