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

// MatchGenericSignatures determines if the two generics have the same signature,
// up to the names of their parameters.
//
// The parameters must agree in count and kind, value parameters must have equal types,
// and the constraints must relate equal types.
// Types of the right generic are compared after re-expressing its parameters
// in terms of the left generic's parameters.
//
// On success, the substitution which does so is returned,
// i.e. a reference to the right generic specialized to the left generic's parameters.
func (checker *Checker) MatchGenericSignatures(
	left *ast.GenericDeclaration,
	right *ast.GenericDeclaration,
) (*GenericSubstitution, bool) {
	return checker.matchGenericSignatures(
		left,
		checker.CreateDefaultSubstitutions(left),
		right,
		checker.CreateDefaultSubstitutions(right),
	)
}

func (checker *Checker) matchGenericSignatures(
	left *ast.GenericDeclaration,
	leftOuter Substitutions,
	right *ast.GenericDeclaration,
	rightOuter Substitutions,
) (*GenericSubstitution, bool) {

	leftParameters := left.GenericParameters()
	rightParameters := right.GenericParameters()

	if len(leftParameters) != len(rightParameters) {
		return nil, false
	}

	for i, leftParameter := range leftParameters {
		if leftParameter.DeclarationKind() != rightParameters[i].DeclarationKind() {
			return nil, false
		}
	}

	leftConstraints := left.Constraints()
	rightConstraints := right.Constraints()

	if len(leftConstraints) != len(rightConstraints) {
		return nil, false
	}

	checker.ensureGenericConstraints(left)
	checker.ensureGenericConstraints(right)

	dummy := checker.createDummySubstitutions(left, leftOuter, right, rightOuter)

	for i, leftParameter := range leftParameters {
		leftValueParameter, ok := leftParameter.(*ast.GenericValueParameterDeclaration)
		if !ok {
			continue
		}
		rightValueParameter := rightParameters[i].(*ast.GenericValueParameterDeclaration)

		leftType := checker.declRefType(NewDeclRef(leftValueParameter, leftOuter))
		rightType := checker.declRefType(NewDeclRef(rightValueParameter, dummy))

		if !TypesEqual(leftType, rightType) {
			return nil, false
		}
	}

	for i, leftConstraint := range leftConstraints {
		leftSub, leftSup := checker.declRefSubAndSupTypes(NewDeclRef(leftConstraint, leftOuter))
		rightSub, rightSup := checker.declRefSubAndSupTypes(NewDeclRef(rightConstraints[i], dummy))

		if !TypesEqual(leftSub, rightSub) ||
			!TypesEqual(leftSup, rightSup) {

			return nil, false
		}
	}

	return dummy, true
}

// createDummySubstitutions returns a substitution for the right generic
// which binds each of its parameters to the corresponding parameter of the left generic,
// and each of its constraints to the corresponding constraint of the left generic.
//
// The generics must have the same number of parameters and constraints.
func (checker *Checker) createDummySubstitutions(
	left *ast.GenericDeclaration,
	leftOuter Substitutions,
	right *ast.GenericDeclaration,
	rightOuter Substitutions,
) *GenericSubstitution {

	leftDefaults := checker.CreateDefaultSubstitutionsForGeneric(left, leftOuter)

	args := make([]Val, len(leftDefaults.Args))
	copy(args, leftDefaults.Args)

	return checker.internTable.GenericSubstitution(right, args, rightOuter)
}

// declRefType returns the declared type of the referenced declaration,
// seen through the substitutions of the reference.
func (checker *Checker) declRefType(declRef DeclRef) Type {
	declaration := declRef.Declaration
	checker.ensureDecl(declaration, common.DeclCheckStateSignatureChecked)

	ty := checker.Elaboration.DeclarationType(declaration)
	if ty == nil {
		return ErrorType
	}
	return checker.substituteType(ty, declRef.Substitutions)
}

// declRefResultType returns the result type of the referenced function, constructor, or accessor,
// seen through the substitutions of the reference.
func (checker *Checker) declRefResultType(declRef DeclRef) Type {
	declaration := declRef.Declaration
	checker.ensureDecl(declaration, common.DeclCheckStateSignatureChecked)

	ty := checker.Elaboration.ResultType(declaration)
	if ty == nil {
		return ErrorType
	}
	return checker.substituteType(ty, declRef.Substitutions)
}

// declRefSubAndSupTypes returns the types related by the referenced constraint,
// seen through the substitutions of the reference.
func (checker *Checker) declRefSubAndSupTypes(declRef DeclRef) (sub Type, sup Type) {
	declaration := declRef.Declaration
	checker.ensureIfNotBeingChecked(declaration, common.DeclCheckStateSignatureChecked)

	sub, sup = checker.Elaboration.SubAndSupTypes(declaration)
	if sub == nil || sup == nil {
		return ErrorType, ErrorType
	}
	return checker.substituteType(sub, declRef.Substitutions),
		checker.substituteType(sup, declRef.Substitutions)
}

// declRefBaseType returns the base type named by the referenced inheritance declaration,
// seen through the substitutions of the reference.
func (checker *Checker) declRefBaseType(declRef DeclRef) Type {
	inheritance := declRef.Declaration.(*ast.InheritanceDeclaration)
	checker.ensureIfNotBeingChecked(inheritance, common.DeclCheckStateSignatureChecked)

	ty := checker.Elaboration.BaseType(inheritance)
	if ty == nil {
		return ErrorType
	}
	return checker.substituteType(ty, declRef.Substitutions)
}

// parameterDeclRefs returns references to the parameters of the referenced callable,
// through the substitutions of the reference.
func parameterDeclRefs(declRef DeclRef) []DeclRef {
	var parameters []*ast.ParameterDeclaration
	switch declaration := declRef.Declaration.(type) {
	case *ast.FunctionDeclaration:
		parameters = declaration.Parameters()
	case *ast.ConstructorDeclaration:
		parameters = declaration.Parameters()
	case *ast.AccessorDeclaration:
		parameters = declaration.Parameters()
	}

	refs := make([]DeclRef, len(parameters))
	for i, parameter := range parameters {
		refs[i] = NewDeclRef(parameter, declRef.Substitutions)
	}
	return refs
}
