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

// checkModifiers validates that each modifier of the declaration is allowed on its kind.
func checkModifiers(ctx *checkingContext, declaration ast.Declaration) {
	modifiers := declaration.DeclarationModifiers()
	if modifiers.Set.Len() == 0 {
		return
	}

	kind := declaration.DeclarationKind()
	parent := ctx.parentSkippingGeneric(declaration)

	for _, modifier := range modifiers.Set.Modifiers() {
		if isModifierAllowed(modifier, declaration, parent) {
			continue
		}

		ctx.report(&InvalidModifierError{
			Modifier:        modifier,
			DeclarationKind: kind,
			Range:           ast.NewRangeFromPositioned(declaration.DeclarationIdentifier()),
		})
	}
}

func isModifierAllowed(modifier common.Modifier, declaration ast.Declaration, parent ast.Declaration) bool {
	kind := declaration.DeclarationKind()

	switch modifier {
	case common.ModifierMutating, common.ModifierNonmutating:
		return kind == common.DeclarationKindFunction || kind.IsAccessor()

	case common.ModifierStatic:
		_, atModuleScope := parent.(*ast.ModuleDeclaration)
		return !atModuleScope

	case common.ModifierOut, common.ModifierRef:
		return kind == common.DeclarationKindParameter

	case common.ModifierConst:
		switch kind {
		case common.DeclarationKindConstant,
			common.DeclarationKindVariable,
			common.DeclarationKindParameter:
			return true
		}
		return false

	case common.ModifierPrefix, common.ModifierPostfix:
		return kind == common.DeclarationKindFunction

	case common.ModifierTransparent:
		return kind == common.DeclarationKindVariable ||
			kind == common.DeclarationKindConstant

	case common.ModifierTargetIntrinsic, common.ModifierSpecializedForTarget:
		return kind == common.DeclarationKindFunction ||
			kind == common.DeclarationKindConstructor ||
			kind.IsAccessor()
	}

	return true
}
