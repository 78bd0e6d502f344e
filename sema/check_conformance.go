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
	"time"

	"github.com/bits-and-blooms/bitset"

	"github.com/onflow/declcheck/ast"
	"github.com/onflow/declcheck/common"
)

// conformanceCheckingContext is the state of checking one conformance declaration.
type conformanceCheckingContext struct {
	conformingType Type
	// container is the type declaration or extension which declares the conformance
	container ast.Declaration
	// site is the inheritance declaration which declares the conformance
	site ast.Declaration
	// witnessTables are the tables built for the conformance and the interfaces it requires,
	// keyed by the interface type
	witnessTables map[string]*WitnessTable
}

// requirementContext is the conformance to one interface which a requirement belongs to.
type requirementContext struct {
	table   *WitnessTable
	witness SubtypeWitness
}

// checkConformances checks that types satisfy the requirements of the interfaces they inherit.
// Interfaces make sure the signatures of their requirements are known.
func checkConformances(ctx *checkingContext, declaration ast.Declaration) {
	switch declaration := declaration.(type) {
	case *ast.InheritanceDeclaration:
		switch container := ctx.Arena.Parent(declaration).(type) {
		case *ast.StructDeclaration, *ast.EnumDeclaration, *ast.ExtensionDeclaration:
			ctx.checkInheritanceConformance(declaration, container)
		}

	case *ast.StructDeclaration, *ast.EnumDeclaration, *ast.ExtensionDeclaration:
		for _, inheritance := range ast.Inheritances(declaration) {
			ctx.ensureDecl(inheritance, common.DeclCheckStateReadyForConformances)
		}

	case *ast.InterfaceDeclaration:
		for _, member := range declaration.Members {
			ctx.ensureIfNotBeingChecked(member, common.DeclCheckStateSignatureChecked)
		}
	}
}

func (ctx *checkingContext) checkInheritanceConformance(inheritance *ast.InheritanceDeclaration, container ast.Declaration) {
	base := ctx.Elaboration.BaseType(inheritance)
	if base == nil || isErrorType(base) {
		return
	}

	// other bases were diagnosed with the inheritance clauses,
	// and the tag type of an enum is not a supertype
	if !isInterfaceType(base) && !isStructType(base) {
		return
	}

	conformingType := ctx.selfTypeOf(container)
	if conformingType == nil || isErrorType(conformingType) {
		return
	}

	cc := &conformanceCheckingContext{
		conformingType: conformingType,
		container:      container,
		site:           inheritance,
		witnessTables:  map[string]*WitnessTable{},
	}

	witness := &DeclaredSubtypeWitness{
		Sub:     conformingType,
		Sup:     base,
		DeclRef: NewDeclRef(inheritance, ctx.CreateDefaultSubstitutions(inheritance)),
	}

	ctx.checkConformance(cc, base, inheritance, witness)
}

// checkConformance checks that the conforming type satisfies the requirements of the given base,
// and attaches the witness table to the given inheritance declaration.
func (ctx *checkingContext) checkConformance(
	cc *conformanceCheckingContext,
	base Type,
	inheritance *ast.InheritanceDeclaration,
	witness SubtypeWitness,
) bool {
	var startTime time.Time
	if ctx.tracingEnabled() {
		startTime = time.Now()
	}

	table, ok := ctx.checkConformanceToType(cc, base, inheritance, witness, true)

	if ctx.tracingEnabled() {
		requirementCount := 0
		if table != nil {
			requirementCount = table.Len()
		}
		ctx.reportConformanceTrace(cc.conformingType, base, requirementCount, time.Since(startTime))
	}

	return ok
}

// checkConformanceToType dispatches on the kind of the base.
// Data bases have no requirements.
func (ctx *checkingContext) checkConformanceToType(
	cc *conformanceCheckingContext,
	base Type,
	inheritance ast.Declaration,
	witness SubtypeWitness,
	attach bool,
) (*WitnessTable, bool) {
	if base == nil || isErrorType(base) {
		return nil, false
	}

	if declRefType, ok := base.(*DeclRefType); ok {
		switch declRefType.DeclRef.Declaration.(type) {
		case *ast.InterfaceDeclaration:
			return ctx.checkInterfaceConformance(cc, declRefType.DeclRef, inheritance, witness, attach)

		case *ast.StructDeclaration:
			return nil, true
		}
	}

	ctx.report(&InvalidTypeForInheritanceError{
		Type:  base,
		Range: ast.NewRangeFromPositioned(inheritance),
	})
	return nil, false
}

// hasAbstractRequirements returns true for types which satisfy requirements abstractly,
// i.e. interfaces and the abstract types they declare.
func hasAbstractRequirements(ty Type) bool {
	switch ty := ty.(type) {
	case *ThisType:
		return true

	case *DeclRefType:
		switch ty.DeclRef.Declaration.(type) {
		case *ast.InterfaceDeclaration, *ast.AssociatedTypeDeclaration:
			return true
		}
	}
	return false
}

// checkInterfaceConformance builds the witness table of the conformance to the referenced interface.
//
// The table is registered before its requirements are resolved,
// so that a conformance which requires itself finds the table in progress.
// Associated types are resolved first, as the signatures of other requirements may refer to them.
func (ctx *checkingContext) checkInterfaceConformance(
	cc *conformanceCheckingContext,
	interfaceRef DeclRef,
	inheritance ast.Declaration,
	witness SubtypeWitness,
	attach bool,
) (*WitnessTable, bool) {
	interfaceDeclaration := interfaceRef.Declaration.(*ast.InterfaceDeclaration)

	ctx.ensureIfNotBeingChecked(interfaceDeclaration, common.DeclCheckStateReadyForConformances)

	if hasAbstractRequirements(cc.conformingType) {
		return nil, true
	}

	interfaceType := NewDeclRefType(interfaceRef)
	key := interfaceType.Key()

	if table, ok := cc.witnessTables[key]; ok {
		return table, !table.IsFailed()
	}

	table := NewWitnessTable(cc.conformingType, interfaceType)
	cc.witnessTables[key] = table
	if attach {
		ctx.Elaboration.setWitnessTable(inheritance, table)
	}

	thisTypeSubstitution := ctx.internTable.ThisTypeSubstitution(
		interfaceDeclaration,
		witness,
		table,
		interfaceRef.Substitutions,
	)

	requirements := requirementContext{
		table:   table,
		witness: witness,
	}

	success := true
	resolve := func(requirement ast.Declaration, substitutions Substitutions) {
		if !ctx.findWitnessForInterfaceRequirement(cc, requirements, NewDeclRef(requirement, substitutions)) {
			success = false
		}
	}

	for _, member := range interfaceDeclaration.Members {
		if _, ok := member.(*ast.AssociatedTypeDeclaration); ok {
			resolve(member, thisTypeSubstitution)
		}
	}

	for _, member := range interfaceDeclaration.Members {
		if _, ok := member.(*ast.AssociatedTypeDeclaration); ok {
			continue
		}
		if !isRequirement(member) {
			continue
		}
		resolve(member, thisTypeSubstitution)
	}

	inheritances := ctx.interfaceInheritances(interfaceDeclaration, thisTypeSubstitution)
	for _, inheritanceRef := range inheritances[len(ast.Inheritances(interfaceDeclaration)):] {
		resolve(inheritanceRef.Declaration, inheritanceRef.Substitutions)
	}

	table.markComplete(success)

	ctx.logger.Debug().
		Str("type", typeString(cc.conformingType)).
		Str("interface", typeString(interfaceType)).
		Bool("success", success).
		Int("requirements", table.Len()).
		Msg("checked conformance")

	return table, success
}

// isRequirement returns true for the members of an interface which implementing types must satisfy.
func isRequirement(member ast.Declaration) bool {
	switch member.(type) {
	case *ast.FunctionDeclaration,
		*ast.ConstructorDeclaration,
		*ast.PropertyDeclaration,
		*ast.VariableDeclaration,
		*ast.GenericDeclaration,
		*ast.AssociatedTypeDeclaration,
		*ast.InheritanceDeclaration:

		return true
	}
	return false
}

// findWitnessForInterfaceRequirement installs the witness of the referenced requirement.
//
// An inheritance requirement is satisfied by a nested witness table.
// Other requirements are satisfied by the first member of the conforming type which matches exactly,
// or else by a synthesized declaration.
func (ctx *checkingContext) findWitnessForInterfaceRequirement(
	cc *conformanceCheckingContext,
	requirements requirementContext,
	requirementRef DeclRef,
) bool {
	table := requirements.table
	requirement := requirementRef.Declaration

	if table.Has(requirement) {
		return true
	}

	if inheritance, ok := requirement.(*ast.InheritanceDeclaration); ok {
		base := ctx.declRefBaseType(requirementRef)
		if isErrorType(base) {
			return false
		}

		witness := &TransitiveSubtypeWitness{
			SubToMid: requirements.witness,
			MidToSup: &DeclaredSubtypeWitness{
				Sub:     requirements.witness.SupType(),
				Sup:     base,
				DeclRef: requirementRef,
			},
		}

		nestedTable, ok := ctx.checkConformanceToType(cc, base, inheritance, witness, false)
		if nestedTable != nil {
			table.Add(inheritance, NewWitnessTableWitness(nestedTable))
		}
		return ok
	}

	name := requirement.DeclarationIdentifier().Identifier

	items := ctx.lookUpMember(
		cc.conformingType,
		name,
		LookupOptions{IgnoreBaseInterfaces: true},
	)

	for _, item := range items {
		if len(item.Breadcrumbs) > 0 {
			continue
		}
		if ctx.doesMemberSatisfyRequirement(item.DeclRef, requirementRef, table) {
			return true
		}
	}

	if ctx.trySynthesizeRequirementWitness(cc, items, requirementRef, table) {
		return true
	}

	ctx.report(&TypeDoesNotImplementRequirementError{
		Type:             cc.conformingType,
		InterfaceType:    table.BaseType,
		RequirementName:  name,
		RequirementRange: ast.NewRangeFromPositioned(requirement.DeclarationIdentifier()),
		RequirementKind:  unwrapGeneric(requirement).DeclarationKind(),
		MemberNames:      ctx.memberNames(cc.conformingType),
		SuggestMember:    ctx.Config.SuggestionsEnabled,
		Range:            ast.NewRangeFromPositioned(cc.site),
	})
	return false
}

// doesMemberSatisfyRequirement checks whether the referenced member matches the requirement exactly,
// and if so, installs the witnesses.
func (ctx *checkingContext) doesMemberSatisfyRequirement(
	memberRef DeclRef,
	requirementRef DeclRef,
	table *WitnessTable,
) bool {
	member := memberRef.Declaration

	switch requirement := requirementRef.Declaration.(type) {
	case *ast.FunctionDeclaration, *ast.ConstructorDeclaration:
		if member.DeclarationKind() != requirement.DeclarationKind() ||
			!ctx.callableSatisfiesRequirement(memberRef, requirementRef) {

			return false
		}
		table.Add(requirement, NewDeclRefWitness(memberRef))
		return true

	case *ast.PropertyDeclaration:
		return ctx.propertySatisfiesRequirement(memberRef, requirementRef, table)

	case *ast.VariableDeclaration:
		variable, ok := member.(*ast.VariableDeclaration)
		if !ok {
			return false
		}
		if !TypesEqual(ctx.declRefType(memberRef), ctx.declRefType(requirementRef)) {
			return false
		}
		if !variable.Modifiers.Set.IsSuperSetOf(requirement.Modifiers.Set) {
			return false
		}
		if val := ctx.constantValue(memberRef); val != nil {
			table.Add(requirement, NewValWitness(val))
		} else {
			table.Add(requirement, NewDeclRefWitness(memberRef))
		}
		return true

	case *ast.GenericDeclaration:
		if !ctx.genericSatisfiesRequirement(memberRef, requirementRef) {
			return false
		}
		table.Add(requirement, NewDeclRefWitness(memberRef))
		return true

	case *ast.AssociatedTypeDeclaration:
		return ctx.typeSatisfiesAssociatedType(memberRef, requirementRef, table)
	}

	return false
}

// callableSatisfiesRequirement compares the signatures of two functions or two constructors.
// A mutating function cannot satisfy a non-mutating requirement.
func (ctx *checkingContext) callableSatisfiesRequirement(memberRef DeclRef, requirementRef DeclRef) bool {
	member := memberRef.Declaration
	requirement := requirementRef.Declaration

	if member.DeclarationModifiers().Has(common.ModifierMutating) &&
		!requirement.DeclarationModifiers().Has(common.ModifierMutating) {

		return false
	}

	if ctx.isStaticMember(member) != ctx.isStaticMember(requirement) {
		return false
	}

	parameters := parameterDeclRefs(memberRef)
	requiredParameters := parameterDeclRefs(requirementRef)

	if len(parameters) != len(requiredParameters) {
		return false
	}

	for i, parameter := range parameters {
		requiredParameter := requiredParameters[i]

		if !TypesEqual(ctx.declRefType(parameter), ctx.declRefType(requiredParameter)) {
			return false
		}

		modifiers := parameter.Declaration.DeclarationModifiers()
		requiredModifiers := requiredParameter.Declaration.DeclarationModifiers()
		for _, direction := range []common.Modifier{common.ModifierOut, common.ModifierRef} {
			if modifiers.Has(direction) != requiredModifiers.Has(direction) {
				return false
			}
		}
	}

	return TypesEqual(
		ctx.declRefResultType(memberRef),
		ctx.declRefResultType(requirementRef),
	)
}

// accessorSatisfies returns true if an accessor of the given kind can satisfy
// a required accessor of the other kind. A ref accessor satisfies getters and setters.
func accessorSatisfies(kind ast.AccessorKind, required ast.AccessorKind) bool {
	return kind == required || kind == ast.AccessorKindRef
}

// accessorKinds returns the kinds of accessors the given property has.
// If provided is true, a ref accessor counts as every kind.
func accessorKinds(property *ast.PropertyDeclaration, provided bool) *bitset.BitSet {
	kinds := bitset.New(uint(ast.AccessorKindCount))
	for _, accessor := range property.Accessors() {
		if provided && accessor.Kind == ast.AccessorKindRef {
			return kinds.SetAll()
		}
		kinds.Set(uint(accessor.Kind))
	}
	return kinds
}

// propertySatisfiesRequirement compares two properties.
// Every required accessor must be matched, and all witnesses are installed together.
func (ctx *checkingContext) propertySatisfiesRequirement(
	memberRef DeclRef,
	requirementRef DeclRef,
	table *WitnessTable,
) bool {
	property, ok := memberRef.Declaration.(*ast.PropertyDeclaration)
	if !ok {
		return false
	}
	requirement := requirementRef.Declaration.(*ast.PropertyDeclaration)

	if !TypesEqual(ctx.declRefType(memberRef), ctx.declRefType(requirementRef)) {
		return false
	}

	if !accessorKinds(property, true).IsSuperSet(accessorKinds(requirement, false)) {
		return false
	}

	type accessorWitness struct {
		requirement *ast.AccessorDeclaration
		witness     DeclRef
	}

	var witnesses []accessorWitness

	for _, requiredAccessor := range requirement.Accessors() {
		var found *ast.AccessorDeclaration
		for _, accessor := range property.Accessors() {
			if accessorSatisfies(accessor.Kind, requiredAccessor.Kind) {
				found = accessor
				break
			}
		}
		if found == nil {
			return false
		}
		witnesses = append(witnesses, accessorWitness{
			requirement: requiredAccessor,
			witness:     NewDeclRef(found, memberRef.Substitutions),
		})
	}

	for _, witness := range witnesses {
		table.Add(witness.requirement, NewDeclRefWitness(witness.witness))
	}
	table.Add(requirement, NewDeclRefWitness(memberRef))
	return true
}

// genericSatisfiesRequirement compares two generics:
// their signatures must match, and so must their inner declarations,
// with the requirement expressed in terms of the member's parameters.
func (ctx *checkingContext) genericSatisfiesRequirement(memberRef DeclRef, requirementRef DeclRef) bool {
	generic, ok := memberRef.Declaration.(*ast.GenericDeclaration)
	if !ok {
		return false
	}
	requirement := requirementRef.Declaration.(*ast.GenericDeclaration)

	if generic.Inner.DeclarationKind() != requirement.Inner.DeclarationKind() {
		return false
	}

	dummy, ok := ctx.matchGenericSignatures(
		generic,
		memberRef.Substitutions,
		requirement,
		requirementRef.Substitutions,
	)
	if !ok {
		return false
	}

	innerRef := NewDeclRef(
		generic.Inner,
		ctx.CreateDefaultSubstitutionsForGeneric(generic, memberRef.Substitutions),
	)
	innerRequirementRef := NewDeclRef(requirement.Inner, dummy)

	switch requirement.Inner.(type) {
	case *ast.FunctionDeclaration, *ast.ConstructorDeclaration:
		return ctx.callableSatisfiesRequirement(innerRef, innerRequirementRef)
	}

	return false
}

// typeSatisfiesAssociatedType checks that the referenced type declaration satisfies
// every constraint of the associated type, and installs the type and the constraint witnesses.
func (ctx *checkingContext) typeSatisfiesAssociatedType(
	memberRef DeclRef,
	requirementRef DeclRef,
	table *WitnessTable,
) bool {
	var ty Type
	switch memberRef.Declaration.(type) {
	case *ast.StructDeclaration,
		*ast.EnumDeclaration,
		*ast.InterfaceDeclaration,
		*ast.GenericTypeParameterDeclaration:

		ty = NewDeclRefType(memberRef)

	case *ast.TypeAliasDeclaration:
		ty = ctx.declRefType(memberRef)

	default:
		return false
	}

	if isErrorType(ty) {
		return false
	}

	requirement := requirementRef.Declaration.(*ast.AssociatedTypeDeclaration)

	constraints := requirement.Constraints()
	witnesses := make([]SubtypeWitness, 0, len(constraints))

	for _, constraint := range constraints {
		_, sup := ctx.declRefSubAndSupTypes(NewDeclRef(constraint, requirementRef.Substitutions))
		if isErrorType(sup) {
			return false
		}
		witness := ctx.findSubtypeWitness(ty, sup)
		if witness == nil {
			return false
		}
		witnesses = append(witnesses, witness)
	}

	table.Add(requirement, NewValWitness(ty))
	for i, constraint := range constraints {
		table.Add(constraint, NewValWitness(witnesses[i]))
	}
	return true
}
