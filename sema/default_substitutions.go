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
	"strconv"

	"github.com/onflow/declcheck/ast"
	"github.com/onflow/declcheck/common"
)

// CreateDefaultSubstitutions returns the substitutions through which a declaration
// refers to itself: the parameters of all enclosing generics are bound to themselves.
//
// The parameters and constraints of a generic are not inside the generic they belong to,
// only its inner declaration is.
func (checker *Checker) CreateDefaultSubstitutions(declaration ast.Declaration) Substitutions {
	parent := checker.Arena.Parent(declaration)
	if parent == nil {
		return nil
	}

	outer := checker.CreateDefaultSubstitutions(parent)

	generic, ok := parent.(*ast.GenericDeclaration)
	if !ok || generic.Inner != declaration {
		return outer
	}

	checker.ensureGenericConstraints(generic)

	return checker.CreateDefaultSubstitutionsForGeneric(generic, outer)
}

// CreateDefaultSubstitutionsForGeneric returns the substitution which binds
// each type parameter of the given generic to itself,
// each value parameter to its own value,
// and each constraint to the witness the constraint declares.
//
// The substitution is cached and interned only if it is resolved,
// i.e. if the types of all constraints are known.
// Otherwise a new substitution is created on every call.
func (checker *Checker) CreateDefaultSubstitutionsForGeneric(
	generic *ast.GenericDeclaration,
	outer Substitutions,
) *GenericSubstitution {

	key := strconv.FormatUint(uint64(generic.DeclarationID()), 10) +
		";" + substitutionsKey(outer)

	if cached, ok := checker.defaultSubstitutions[key]; ok {
		return cached
	}

	parameters := generic.GenericParameters()
	constraints := generic.Constraints()

	args := make([]Val, 0, len(parameters)+len(constraints))

	for _, parameter := range parameters {
		parameterRef := NewDeclRef(parameter, outer)

		switch parameter.(type) {
		case *ast.GenericTypeParameterDeclaration:
			args = append(args, NewDeclRefType(parameterRef))

		case *ast.GenericValueParameterDeclaration:
			args = append(args, &GenericParamIntVal{
				Parameter: parameterRef,
			})
		}
	}

	for _, constraint := range constraints {
		sub, sup := checker.Elaboration.SubAndSupTypes(constraint)
		args = append(args, &DeclaredSubtypeWitness{
			Sub:     sub,
			Sup:     sup,
			DeclRef: NewDeclRef(constraint, outer),
		})
	}

	substitution := checker.internTable.GenericSubstitution(generic, args, outer)

	if substitution.IsResolved() {
		checker.defaultSubstitutions[key] = substitution
	}

	return substitution
}

// ensureGenericConstraints resolves the types of the constraints of the given generic,
// unless they are being resolved already.
func (checker *Checker) ensureGenericConstraints(generic *ast.GenericDeclaration) {
	for _, constraint := range generic.Constraints() {
		checker.ensureIfNotBeingChecked(constraint, common.DeclCheckStateSignatureChecked)
	}
}

// genericOfInner returns the generic which wraps the given declaration, if any.
func (checker *Checker) genericOfInner(declaration ast.Declaration) (*ast.GenericDeclaration, bool) {
	generic, ok := checker.Arena.Parent(declaration).(*ast.GenericDeclaration)
	if !ok || generic.Inner != declaration {
		return nil, false
	}
	return generic, true
}

// unwrapGeneric returns the inner declaration of a generic, or the declaration itself.
func unwrapGeneric(declaration ast.Declaration) ast.Declaration {
	if generic, ok := declaration.(*ast.GenericDeclaration); ok {
		return generic.Inner
	}
	return declaration
}

// parentSkippingGeneric returns the parent of the given declaration,
// or the parent of its generic, if the declaration is the inner declaration of a generic.
func (checker *Checker) parentSkippingGeneric(declaration ast.Declaration) ast.Declaration {
	parent := checker.Arena.Parent(declaration)
	if generic, ok := parent.(*ast.GenericDeclaration); ok && generic.Inner == declaration {
		return checker.Arena.Parent(generic)
	}
	return parent
}
