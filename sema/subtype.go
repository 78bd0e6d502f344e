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

// findSubtypeWitness returns a witness that the given type is a subtype of the given supertype,
// or nil if the relationship cannot be established.
//
// The declared bases of the type are searched breadth-first:
// inheritance clauses of the type and of its extensions,
// constraints of generic parameters and associated types, and the bases of interfaces.
func (checker *Checker) findSubtypeWitness(sub Type, sup Type) SubtypeWitness {
	if sub == nil || sup == nil {
		return nil
	}

	if TypesEqual(sub, sup) {
		return &TypeEqualityWitness{Type: sub}
	}

	visited := map[string]struct{}{
		sub.Key(): {},
	}

	queue := checker.directSubtypeWitnesses(sub)
	for len(queue) > 0 {
		witness := queue[0]
		queue = queue[1:]

		base := witness.SupType()
		if TypesEqual(base, sup) {
			return witness
		}

		key := base.Key()
		if _, ok := visited[key]; ok {
			continue
		}
		visited[key] = struct{}{}

		for _, next := range checker.directSubtypeWitnesses(base) {
			queue = append(queue, &TransitiveSubtypeWitness{
				SubToMid: witness,
				MidToSup: next,
			})
		}
	}

	return nil
}

// isSubtype returns true if the given type is a subtype of the given supertype.
func (checker *Checker) isSubtype(sub Type, sup Type) bool {
	return checker.findSubtypeWitness(sub, sup) != nil
}

// directSubtypeWitnesses returns a witness for each base the given type declares directly.
func (checker *Checker) directSubtypeWitnesses(ty Type) []SubtypeWitness {
	var witnesses []SubtypeWitness

	addInheritance := func(inheritanceRef DeclRef) {
		base := checker.declRefBaseType(inheritanceRef)
		if _, ok := declarationOfType(base); !ok {
			// enum tag types are not supertypes
			return
		}
		witnesses = append(witnesses, &DeclaredSubtypeWitness{
			Sub:     ty,
			Sup:     base,
			DeclRef: inheritanceRef,
		})
	}

	switch ty := ty.(type) {
	case *DeclRefType:
		declRef := ty.DeclRef

		switch declaration := declRef.Declaration.(type) {
		case *ast.StructDeclaration, *ast.EnumDeclaration:
			for _, inheritance := range ast.Inheritances(declaration) {
				addInheritance(NewDeclRef(inheritance, declRef.Substitutions))
			}
			for _, extensionRef := range checker.extensionsOf(ty) {
				for _, inheritance := range ast.Inheritances(extensionRef.Declaration) {
					addInheritance(NewDeclRef(inheritance, extensionRef.Substitutions))
				}
			}

		case *ast.InterfaceDeclaration:
			for _, inheritanceRef := range checker.interfaceInheritances(declaration, declRef.Substitutions) {
				addInheritance(inheritanceRef)
			}

		case *ast.GenericTypeParameterDeclaration:
			generic, ok := checker.Arena.Parent(declaration).(*ast.GenericDeclaration)
			if !ok {
				break
			}
			checker.ensureGenericConstraints(generic)
			for _, constraint := range generic.Constraints() {
				constraintRef := NewDeclRef(constraint, declRef.Substitutions)
				sub, sup := checker.declRefSubAndSupTypes(constraintRef)
				if !TypesEqual(sub, ty) || isErrorType(sup) {
					continue
				}
				witnesses = append(witnesses, &DeclaredSubtypeWitness{
					Sub:     ty,
					Sup:     sup,
					DeclRef: constraintRef,
				})
			}

		case *ast.AssociatedTypeDeclaration:
			for _, constraint := range declaration.Constraints() {
				constraintRef := NewDeclRef(constraint, declRef.Substitutions)
				checker.ensureIfNotBeingChecked(constraint, common.DeclCheckStateSignatureChecked)
				_, sup := checker.declRefSubAndSupTypes(constraintRef)
				if isErrorType(sup) {
					continue
				}
				witnesses = append(witnesses, &DeclaredSubtypeWitness{
					Sub:     ty,
					Sup:     sup,
					DeclRef: constraintRef,
				})
			}
		}

	case *ThisType:
		interfaceRef := ty.Interface
		witnesses = append(witnesses, &DeclaredSubtypeWitness{
			Sub:     ty,
			Sup:     NewDeclRefType(interfaceRef),
			DeclRef: interfaceRef,
		})
	}

	return witnesses
}
