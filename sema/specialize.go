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

// substituteType applies the given substitutions to the given type.
func (checker *Checker) substituteType(ty Type, substitutions Substitutions) Type {
	if ty == nil {
		return nil
	}
	result, ok := checker.substituteVal(ty, substitutions).(Type)
	if !ok {
		return ErrorType
	}
	return result
}

// substituteVal applies the given substitutions to the given value:
// generic parameters are replaced by their arguments,
// associated types seen through a conformance are replaced by their witnesses,
// and `This` is replaced by the conforming type.
func (checker *Checker) substituteVal(val Val, substitutions Substitutions) Val {
	if val == nil || substitutions == nil {
		return val
	}

	switch val := val.(type) {
	case PrimitiveType, *ConstantIntVal, *ConstantBoolVal:
		return val

	case *DeclRefType:
		return checker.substituteDeclRefType(val, substitutions)

	case *ThisType:
		thisTypeSubstitution := findThisTypeSubstitution(substitutions, val.Interface.Declaration)
		if thisTypeSubstitution != nil {
			return thisTypeSubstitution.Witness.SubType()
		}
		return &ThisType{
			Interface: checker.substituteDeclRef(val.Interface, substitutions),
		}

	case *GenericParamIntVal:
		parameter := val.Parameter.Declaration
		genericSubstitution := findGenericSubstitution(substitutions, checker.Arena.Parent(parameter))
		if genericSubstitution != nil {
			if arg, ok := genericSubstitution.Arg(parameter); ok && arg != nil {
				return arg
			}
		}
		return &GenericParamIntVal{
			Parameter: checker.substituteDeclRef(val.Parameter, substitutions),
		}

	case SubtypeWitness:
		return checker.substituteWitness(val, substitutions)
	}

	return val
}

func (checker *Checker) substituteWitness(witness SubtypeWitness, substitutions Substitutions) SubtypeWitness {
	if witness == nil || substitutions == nil {
		return witness
	}

	switch witness := witness.(type) {
	case *DeclaredSubtypeWitness:
		constraint, ok := witness.DeclRef.Declaration.(*ast.GenericTypeConstraintDeclaration)
		if ok {
			genericSubstitution := findGenericSubstitution(substitutions, checker.Arena.Parent(constraint))
			if genericSubstitution != nil {
				arg, ok := genericSubstitution.ConstraintWitness(constraint)
				if argWitness, isWitness := arg.(SubtypeWitness); ok && isWitness {
					return argWitness
				}
			}
		}

		return &DeclaredSubtypeWitness{
			Sub:     checker.substituteType(witness.Sub, substitutions),
			Sup:     checker.substituteType(witness.Sup, substitutions),
			DeclRef: checker.substituteDeclRef(witness.DeclRef, substitutions),
		}

	case *TransitiveSubtypeWitness:
		return &TransitiveSubtypeWitness{
			SubToMid: checker.substituteWitness(witness.SubToMid, substitutions),
			MidToSup: checker.substituteWitness(witness.MidToSup, substitutions),
		}

	case *TypeEqualityWitness:
		return &TypeEqualityWitness{
			Type: checker.substituteType(witness.Type, substitutions),
		}
	}

	return witness
}

func (checker *Checker) substituteDeclRefType(ty *DeclRefType, substitutions Substitutions) Type {
	declRef := ty.DeclRef

	switch declaration := declRef.Declaration.(type) {
	case *ast.GenericTypeParameterDeclaration:
		genericSubstitution := findGenericSubstitution(substitutions, checker.Arena.Parent(declaration))
		if genericSubstitution != nil {
			arg, ok := genericSubstitution.Arg(declaration)
			if argType, isType := arg.(Type); ok && isType {
				return argType
			}
		}

	case *ast.AssociatedTypeDeclaration:
		substitutedRef := checker.substituteDeclRef(declRef, substitutions)

		interfaceDeclaration := checker.Arena.Parent(declaration)
		thisTypeSubstitution := findThisTypeSubstitution(substitutions, interfaceDeclaration)
		if thisTypeSubstitution == nil {
			thisTypeSubstitution = findThisTypeSubstitution(substitutedRef.Substitutions, interfaceDeclaration)
		}

		if thisTypeSubstitution != nil {
			if witness, ok := checker.associatedTypeWitness(thisTypeSubstitution, declaration); ok {
				return witness
			}
		}

		return NewDeclRefType(substitutedRef)
	}

	return NewDeclRefType(checker.substituteDeclRef(declRef, substitutions))
}

// associatedTypeWitness returns the type which satisfies the given associated type
// in the conformance of the given substitution, if it is known.
func (checker *Checker) associatedTypeWitness(
	thisTypeSubstitution *ThisTypeSubstitution,
	associatedType *ast.AssociatedTypeDeclaration,
) (Type, bool) {
	table := thisTypeSubstitution.Table
	if table == nil {
		table = checker.witnessTableForWitness(thisTypeSubstitution.Witness)
	}
	if table == nil {
		return nil, false
	}

	witness, ok := table.Get(associatedType)
	if !ok || witness.Kind != RequirementWitnessKindVal {
		return nil, false
	}

	ty, ok := witness.Val.(Type)
	return ty, ok
}

func (checker *Checker) substituteDeclRef(declRef DeclRef, substitutions Substitutions) DeclRef {
	return declRef.WithSubstitutions(
		checker.substituteSubstitutions(declRef.Substitutions, substitutions),
	)
}

// substituteSubstitutions applies the given substitutions to every value of the given chain.
func (checker *Checker) substituteSubstitutions(chain Substitutions, substitutions Substitutions) Substitutions {
	if chain == nil || substitutions == nil {
		return chain
	}

	outer := checker.substituteSubstitutions(chain.Outer(), substitutions)

	switch chain := chain.(type) {
	case *GenericSubstitution:
		args := make([]Val, len(chain.Args))
		for i, arg := range chain.Args {
			args[i] = checker.substituteVal(arg, substitutions)
		}
		return checker.internTable.GenericSubstitution(chain.Generic, args, outer)

	case *ThisTypeSubstitution:
		return checker.internTable.ThisTypeSubstitution(
			chain.Interface,
			checker.substituteWitness(chain.Witness, substitutions),
			chain.Table,
			outer,
		)
	}

	return chain
}

// witnessTableForWitness returns the witness table of the conformance proven by the given witness, if any.
func (checker *Checker) witnessTableForWitness(witness SubtypeWitness) *WitnessTable {
	switch witness := witness.(type) {
	case *DeclaredSubtypeWitness:
		inheritance, ok := witness.DeclRef.Declaration.(*ast.InheritanceDeclaration)
		if !ok {
			return nil
		}

		switch parent := checker.Arena.Parent(inheritance).(type) {
		case *ast.StructDeclaration, *ast.EnumDeclaration, *ast.ExtensionDeclaration:
			checker.ensureIfNotBeingChecked(inheritance, common.DeclCheckStateReadyForConformances)
			return checker.Elaboration.WitnessTable(inheritance)

		case *ast.InterfaceDeclaration:
			// the inheritance is a requirement of the interface:
			// its table is nested in the table of the conformance to the interface
			thisTypeSubstitution := findThisTypeSubstitution(witness.DeclRef.Substitutions, parent)
			if thisTypeSubstitution == nil {
				return nil
			}
			table := thisTypeSubstitution.Table
			if table == nil {
				table = checker.witnessTableForWitness(thisTypeSubstitution.Witness)
			}
			return nestedWitnessTable(table, inheritance)
		}

	case *TransitiveSubtypeWitness:
		table := checker.witnessTableForWitness(witness.SubToMid)
		if table == nil {
			return nil
		}

		// walk the requirement inheritances of the interface
		midToSup := witness.MidToSup
		for {
			switch step := midToSup.(type) {
			case *DeclaredSubtypeWitness:
				return nestedWitnessTable(table, step.DeclRef.Declaration)

			case *TransitiveSubtypeWitness:
				declared, ok := step.SubToMid.(*DeclaredSubtypeWitness)
				if !ok {
					return nil
				}
				table = nestedWitnessTable(table, declared.DeclRef.Declaration)
				if table == nil {
					return nil
				}
				midToSup = step.MidToSup

			default:
				return nil
			}
		}
	}

	return nil
}

func nestedWitnessTable(table *WitnessTable, requirement ast.Declaration) *WitnessTable {
	if table == nil {
		return nil
	}
	witness, ok := table.Get(requirement)
	if !ok || witness.Kind != RequirementWitnessKindWitnessTable {
		return nil
	}
	return witness.Table
}
