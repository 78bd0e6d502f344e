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

type extensionRegistration struct {
	target    ast.Declaration
	extension *ast.ExtensionDeclaration
}

// extensionIndex maps type declarations to the extensions which may apply to them.
//
// Registrations bump the generation, and the merged index is rebuilt on the next read
// when its generation is stale.
type extensionIndex struct {
	byTarget        map[ast.DeclarationID][]*ast.ExtensionDeclaration
	registrations   []extensionRegistration
	generation      uint64
	indexGeneration uint64
}

func newExtensionIndex() *extensionIndex {
	return &extensionIndex{
		byTarget: map[ast.DeclarationID][]*ast.ExtensionDeclaration{},
	}
}

func (index *extensionIndex) register(target ast.Declaration, extension *ast.ExtensionDeclaration) {
	index.registrations = append(index.registrations, extensionRegistration{
		target:    target,
		extension: extension,
	})
	index.generation++
}

func (index *extensionIndex) get(target ast.Declaration) []*ast.ExtensionDeclaration {
	if index.indexGeneration != index.generation {
		index.rebuild()
	}
	return index.byTarget[target.DeclarationID()]
}

func (index *extensionIndex) rebuild() {
	byTarget := make(map[ast.DeclarationID][]*ast.ExtensionDeclaration, len(index.byTarget))
	for _, registration := range index.registrations {
		id := registration.target.DeclarationID()
		byTarget[id] = append(byTarget[id], registration.extension)
	}
	index.byTarget = byTarget
	index.indexGeneration = index.generation
}

func (checker *Checker) registerCandidateExtension(target ast.Declaration, extension *ast.ExtensionDeclaration) {
	checker.extensions.register(target, extension)

	checker.logger.Debug().
		Str("target", target.DeclarationIdentifier().Identifier).
		Uint64("generation", checker.extensions.generation).
		Msg("registered candidate extension")
}

// candidateExtensionsFor returns the extensions which may apply to the given type declaration,
// in registration order.
func (checker *Checker) candidateExtensionsFor(declaration ast.Declaration) []*ast.ExtensionDeclaration {
	return checker.extensions.get(declaration)
}

// ApplyExtensionToType determines if the given extension applies to the given type.
//
// A non-generic extension applies if its target type is the type.
// A generic extension applies if its target type can be unified with the type,
// binding all parameters of the extension's generic, and the constraints are satisfied.
// The result is the reference to the extension specialized to the type.
func (checker *Checker) ApplyExtensionToType(extension *ast.ExtensionDeclaration, ty Type) (DeclRef, bool) {
	if ty == nil || isErrorType(ty) {
		return DeclRef{}, false
	}

	targetType := checker.extensionTargetType(extension)
	if isErrorType(targetType) {
		return DeclRef{}, false
	}

	generic, isGeneric := checker.genericOfInner(extension)
	if !isGeneric {
		if !TypesEqual(targetType, ty) {
			return DeclRef{}, false
		}
		return NewDeclRef(extension, checker.CreateDefaultSubstitutions(extension)), true
	}

	bindings := map[ast.Declaration]Val{}
	if !checker.unify(targetType, ty, generic, bindings) {
		return DeclRef{}, false
	}

	parameters := generic.GenericParameters()
	constraints := generic.Constraints()

	args := make([]Val, 0, len(parameters)+len(constraints))
	for _, parameter := range parameters {
		arg, ok := bindings[parameter]
		if !ok {
			return DeclRef{}, false
		}
		args = append(args, arg)
	}

	outer := checker.CreateDefaultSubstitutions(generic)

	witnesses, ok := checker.constraintWitnesses(generic, args, outer)
	if !ok {
		return DeclRef{}, false
	}
	args = append(args, witnesses...)

	substitution := checker.internTable.GenericSubstitution(generic, args, outer)
	return NewDeclRef(extension, substitution), true
}

// constraintWitnesses finds a witness for each constraint of the given generic,
// with its parameters bound to the given arguments.
func (checker *Checker) constraintWitnesses(
	generic *ast.GenericDeclaration,
	args []Val,
	outer Substitutions,
) ([]Val, bool) {
	checker.ensureGenericConstraints(generic)

	partial := &GenericSubstitution{
		Generic: generic,
		Args:    args,
		outer:   outer,
	}

	var witnesses []Val
	for _, constraint := range generic.Constraints() {
		sub, sup := checker.declRefSubAndSupTypes(NewDeclRef(constraint, partial))
		witness := checker.findSubtypeWitness(sub, sup)
		if witness == nil {
			return nil, false
		}
		witnesses = append(witnesses, witness)
	}
	return witnesses, true
}

// unify matches the given pattern against the given value,
// binding the parameters of the given generic which occur in the pattern.
func (checker *Checker) unify(
	pattern Val,
	val Val,
	generic *ast.GenericDeclaration,
	bindings map[ast.Declaration]Val,
) bool {
	if pattern == nil || val == nil {
		return false
	}

	bind := func(parameter ast.Declaration) bool {
		if checker.Arena.Parent(parameter) != ast.Declaration(generic) {
			return false
		}
		if existing, ok := bindings[parameter]; ok {
			return ValsEqual(existing, val)
		}
		bindings[parameter] = val
		return true
	}

	switch pattern := pattern.(type) {
	case *DeclRefType:
		if parameter, ok := pattern.DeclRef.Declaration.(*ast.GenericTypeParameterDeclaration); ok {
			if _, isType := val.(Type); isType && bind(parameter) {
				return true
			}
		}

		other, ok := val.(*DeclRefType)
		if !ok || other.DeclRef.Declaration != pattern.DeclRef.Declaration {
			return false
		}
		return checker.unifySubstitutions(
			pattern.DeclRef.Substitutions,
			other.DeclRef.Substitutions,
			generic,
			bindings,
		)

	case *GenericParamIntVal:
		if bind(pattern.Parameter.Declaration) {
			return true
		}
	}

	return ValsEqual(pattern, val)
}

// unifySubstitutions unifies the arguments of the given chains, layer by layer.
// Constraint witnesses are not unified, they follow from the arguments.
func (checker *Checker) unifySubstitutions(
	pattern Substitutions,
	substitutions Substitutions,
	generic *ast.GenericDeclaration,
	bindings map[ast.Declaration]Val,
) bool {
	for pattern != nil && substitutions != nil {
		patternGeneric, ok := pattern.(*GenericSubstitution)
		if !ok {
			return SubstitutionsEqual(pattern, substitutions)
		}
		other, ok := substitutions.(*GenericSubstitution)
		if !ok || other.Generic != patternGeneric.Generic {
			return false
		}

		parameterCount := len(patternGeneric.Generic.GenericParameters())
		if len(patternGeneric.Args) < parameterCount || len(other.Args) < parameterCount {
			return false
		}
		for i := 0; i < parameterCount; i++ {
			if !checker.unify(patternGeneric.Args[i], other.Args[i], generic, bindings) {
				return false
			}
		}

		pattern = pattern.Outer()
		substitutions = substitutions.Outer()
	}

	return pattern == nil && substitutions == nil
}

// extensionTargetDeclaration returns the declaration of the given extension target type,
// if declarations of its kind can be extended.
func (checker *Checker) extensionTargetDeclaration(targetType Type) (ast.Declaration, bool) {
	switch targetType := targetType.(type) {
	case *DeclRefType:
		switch declaration := targetType.DeclRef.Declaration.(type) {
		case *ast.StructDeclaration,
			*ast.EnumDeclaration,
			*ast.InterfaceDeclaration:
			return declaration, true
		}
	}
	return nil, false
}

// extensionsOf returns references to the extensions which apply to the given type.
func (checker *Checker) extensionsOf(ty Type) []DeclRef {
	declaration, ok := declarationOfType(ty)
	if !ok {
		return nil
	}

	checker.ensureIfNotBeingChecked(declaration, common.DeclCheckStateReadyForLookup)

	var refs []DeclRef
	for _, extension := range checker.candidateExtensionsFor(declaration) {
		extensionRef, ok := checker.ApplyExtensionToType(extension, ty)
		if !ok {
			continue
		}
		refs = append(refs, extensionRef)
	}
	return refs
}
