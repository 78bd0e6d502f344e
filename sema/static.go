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

// isEffectivelyStatic returns true if the given declaration,
// as a member of the given parent, is not associated with an instance.
//
// Declarations at module scope are neither static nor instance members.
func isEffectivelyStatic(declaration ast.Declaration, parent ast.Declaration) bool {
	if _, ok := parent.(*ast.ModuleDeclaration); ok || parent == nil {
		return false
	}

	switch declaration.(type) {
	case *ast.TypeConstraintDeclaration:
		// the constraint of an associated type is a requirement of each instance
		return false

	case *ast.ConstructorDeclaration,
		*ast.EnumCaseDeclaration:
		return true
	}

	if declaration.DeclarationModifiers().Has(common.ModifierStatic) {
		return true
	}

	if declaration.DeclarationKind().IsTypeDeclaration() {
		return true
	}

	switch parent.(type) {
	case *ast.FunctionDeclaration,
		*ast.ConstructorDeclaration,
		*ast.AccessorDeclaration:
		return true
	}

	return false
}

// isDeclUsableAsStaticMember returns true if the given declaration
// can be accessed through a type rather than through an instance.
func isDeclUsableAsStaticMember(declaration ast.Declaration) bool {
	switch declaration := declaration.(type) {
	case *ast.GenericDeclaration:
		return isDeclUsableAsStaticMember(declaration.Inner)

	case *ast.EnumCaseDeclaration,
		*ast.ConstructorDeclaration,
		*ast.TypeConstraintDeclaration:
		return true
	}

	if declaration.DeclarationModifiers().Has(common.ModifierStatic) {
		return true
	}

	return declaration.DeclarationKind().IsTypeDeclaration()
}

// isStaticMember returns true if the given declaration is effectively static,
// looking through the generic which wraps it, if any.
func (checker *Checker) isStaticMember(declaration ast.Declaration) bool {
	declaration = unwrapGeneric(declaration)
	return isEffectivelyStatic(declaration, checker.parentSkippingGeneric(declaration))
}
