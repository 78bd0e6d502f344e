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

// checkRedeclarations compares the declaration against the earlier declarations
// with the same name in the same container.
//
// Functions with the same name are overloads, unless their signatures match:
// then the later function joins the redeclaration family of the earlier one,
// and must have the same result type and must not redefine a body for the same target.
// Any other clash is a redeclaration error.
func checkRedeclarations(ctx *checkingContext, declaration ast.Declaration) {
	if !isRedeclarationCandidate(declaration) {
		return
	}

	name := declaration.DeclarationIdentifier().Identifier
	if name == "" {
		return
	}

	self := declaration
	if generic, ok := ctx.genericOfInner(declaration); ok {
		self = generic
	}

	container := ctx.Arena.Parent(self)
	if container == nil {
		return
	}

	for _, sibling := range container.DeclarationMembers() {
		if sibling == self {
			return
		}

		if !isNamedMember(sibling, name) {
			continue
		}

		previous := unwrapGeneric(sibling)

		newFunction, newIsFunction := declaration.(*ast.FunctionDeclaration)
		oldFunction, oldIsFunction := previous.(*ast.FunctionDeclaration)

		if newIsFunction && oldIsFunction {
			if ctx.checkFunctionRedeclaration(newFunction, oldFunction) {
				return
			}
			continue
		}

		previousPos := previous.DeclarationIdentifier().Pos
		ctx.report(&RedeclarationError{
			Name:        name,
			Kind:        declaration.DeclarationKind(),
			Pos:         declaration.DeclarationIdentifier().Pos,
			PreviousPos: &previousPos,
		})
		return
	}
}

func isRedeclarationCandidate(declaration ast.Declaration) bool {
	switch declaration.(type) {
	case *ast.FunctionDeclaration,
		*ast.VariableDeclaration,
		*ast.ParameterDeclaration,
		*ast.GenericValueParameterDeclaration,
		*ast.GenericTypeParameterDeclaration,
		*ast.PropertyDeclaration,
		*ast.TypeAliasDeclaration,
		*ast.AssociatedTypeDeclaration,
		*ast.StructDeclaration,
		*ast.InterfaceDeclaration,
		*ast.EnumDeclaration,
		*ast.EnumCaseDeclaration:

		return true
	}
	return false
}

// checkFunctionRedeclaration compares a function against an earlier function with the same name.
// It returns false if the functions are distinct overloads,
// and true if the later function redeclares the earlier one.
func (ctx *checkingContext) checkFunctionRedeclaration(
	function *ast.FunctionDeclaration,
	previous *ast.FunctionDeclaration,
) bool {
	for _, fixity := range []common.Modifier{common.ModifierPrefix, common.ModifierPostfix} {
		if function.Modifiers.Has(fixity) != previous.Modifiers.Has(fixity) {
			return false
		}
	}

	generic, isGeneric := ctx.genericOfInner(function)
	previousGeneric, previousIsGeneric := ctx.genericOfInner(previous)

	if isGeneric != previousIsGeneric {
		return false
	}

	functionRef := NewDeclRef(function, ctx.CreateDefaultSubstitutions(function))
	previousRef := NewDeclRef(previous, ctx.CreateDefaultSubstitutions(previous))

	if isGeneric {
		// compare the previous function in terms of the parameters of the new one
		dummy, ok := ctx.MatchGenericSignatures(generic, previousGeneric)
		if !ok {
			return false
		}
		previousRef = NewDeclRef(previous, dummy)
	}

	parameters := parameterDeclRefs(functionRef)
	previousParameters := parameterDeclRefs(previousRef)

	if len(parameters) != len(previousParameters) {
		return false
	}

	for i, parameter := range parameters {
		previousParameter := previousParameters[i]

		if !TypesEqual(ctx.declRefType(parameter), ctx.declRefType(previousParameter)) {
			return false
		}

		modifiers := parameter.Declaration.DeclarationModifiers()
		previousModifiers := previousParameter.Declaration.DeclarationModifiers()
		for _, direction := range []common.Modifier{common.ModifierOut, common.ModifierRef} {
			if modifiers.Has(direction) != previousModifiers.Has(direction) {
				return false
			}
		}
	}

	ctx.Elaboration.linkRedeclaration(function, previous)

	resultType := ctx.declRefResultType(functionRef)
	previousResultType := ctx.declRefResultType(previousRef)

	if !isErrorType(resultType) &&
		!isErrorType(previousResultType) &&
		!TypesEqual(resultType, previousResultType) {

		previousPos := previous.Identifier.Pos
		ctx.report(&FunctionRedeclarationWithDifferentReturnTypeError{
			Name:               function.Identifier.Identifier,
			ResultType:         resultType,
			PreviousResultType: previousResultType,
			PreviousPos:        &previousPos,
			Range:              ast.NewRangeFromPositioned(function.Identifier),
		})
		return true
	}

	ctx.checkTargetRedefinitions(function)

	return true
}

// noTarget is the target key of a body which is not specific to a target.
const noTarget = ""

// targetKeys returns the targets the given function provides a definition for.
func targetKeys(function *ast.FunctionDeclaration) []string {
	modifiers := function.Modifiers

	if modifiers.SpecializedForTarget != nil {
		return []string{modifiers.SpecializedForTarget.Identifier}
	}

	var keys []string
	for _, target := range modifiers.TargetIntrinsics {
		keys = append(keys, target.Identifier)
	}
	if function.Body != nil {
		keys = append(keys, noTarget)
	}
	return keys
}

// checkTargetRedefinitions reports each target for which both the given function
// and an earlier member of its redeclaration family provide a definition.
func (ctx *checkingContext) checkTargetRedefinitions(function *ast.FunctionDeclaration) {
	keys := targetKeys(function)
	if len(keys) == 0 {
		return
	}

	previousPositions := map[string][]ast.Position{}
	for _, member := range ctx.Elaboration.RedeclarationFamily(function) {
		if member == ast.Declaration(function) {
			break
		}
		previous, ok := member.(*ast.FunctionDeclaration)
		if !ok {
			continue
		}
		for _, key := range targetKeys(previous) {
			previousPositions[key] = append(previousPositions[key], previous.Identifier.Pos)
		}
	}

	for _, key := range keys {
		positions, ok := previousPositions[key]
		if !ok {
			continue
		}
		ctx.report(&FunctionRedefinitionError{
			Name:              function.Identifier.Identifier,
			Target:            key,
			PreviousPositions: positions,
			Range:             ast.NewRangeFromPositioned(function.Identifier),
		})
	}
}
