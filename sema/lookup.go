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

type BreadcrumbKind uint8

const (
	BreadcrumbKindUnknown BreadcrumbKind = iota
	// BreadcrumbKindMember is the access through a transparent member
	BreadcrumbKindMember
	// BreadcrumbKindSuperType is the access through a struct base
	BreadcrumbKindSuperType
	// BreadcrumbKindConstraint is the access through an interface base or a generic constraint
	BreadcrumbKindConstraint
)

// Breadcrumb is one step of the indirect path through which a lookup result was found.
type Breadcrumb struct {
	DeclRef DeclRef
	Kind    BreadcrumbKind
}

type LookupResultItem struct {
	DeclRef     DeclRef
	Breadcrumbs []Breadcrumb
}

type LookupOptions struct {
	// IgnoreBaseInterfaces excludes results which are only reachable through interface bases
	IgnoreBaseInterfaces bool
}

func isNamedMember(member ast.Declaration, name string) bool {
	switch member.(type) {
	case *ast.ImportDeclaration,
		*ast.InheritanceDeclaration,
		*ast.ExtensionDeclaration:
		return false
	}
	return member.DeclarationIdentifier().Identifier == name
}

// lookUp finds the declarations with the given name which are visible from the given scope.
// The innermost scope which declares the name wins.
func (checker *Checker) lookUp(scope ast.Declaration, name string) []LookupResultItem {
	for ; scope != nil; scope = checker.Arena.Parent(scope) {
		items := checker.lookUpInScope(scope, name)
		if len(items) > 0 {
			return items
		}
	}
	return nil
}

func (checker *Checker) lookUpInScope(scope ast.Declaration, name string) []LookupResultItem {
	switch scope := scope.(type) {
	case *ast.GenericDeclaration:
		var items []LookupResultItem
		for _, parameter := range scope.GenericParameters() {
			if isNamedMember(parameter, name) {
				items = append(items, checker.lexicalItem(parameter))
			}
		}
		return items

	case *ast.FunctionDeclaration,
		*ast.ConstructorDeclaration,
		*ast.AccessorDeclaration:

		var items []LookupResultItem
		for _, parameter := range ast.MembersOfType[*ast.ParameterDeclaration](scope) {
			if isNamedMember(parameter, name) {
				items = append(items, checker.lexicalItem(parameter))
			}
		}
		return items

	case *ast.StructDeclaration,
		*ast.EnumDeclaration,
		*ast.InterfaceDeclaration:

		return checker.lookUpMember(checker.selfTypeOf(scope), name, LookupOptions{})

	case *ast.ExtensionDeclaration:
		var items []LookupResultItem
		for _, member := range scope.Members {
			if isNamedMember(member, name) {
				items = append(items, checker.lexicalItem(member))
			}
		}
		targetType := checker.extensionTargetType(scope)
		return append(items, checker.lookUpMember(targetType, name, LookupOptions{})...)

	case *ast.ModuleDeclaration:
		items := checker.lookUpInModule(scope, name)
		if len(items) > 0 {
			return items
		}
		for _, importDeclaration := range scope.Imports() {
			imported := checker.Elaboration.ImportedModule(importDeclaration)
			if imported == nil {
				continue
			}
			items = append(items, checker.lookUpInModule(imported, name)...)
		}
		return items
	}

	return nil
}

func (checker *Checker) lookUpInModule(module *ast.ModuleDeclaration, name string) []LookupResultItem {
	var items []LookupResultItem
	for _, member := range module.Members {
		if isNamedMember(member, name) {
			items = append(items, checker.lexicalItem(member))
		}
	}
	return items
}

// lexicalItem returns the result for a declaration found lexically,
// which is seen through its default substitutions.
func (checker *Checker) lexicalItem(declaration ast.Declaration) LookupResultItem {
	return LookupResultItem{
		DeclRef: NewDeclRef(declaration, checker.CreateDefaultSubstitutions(declaration)),
	}
}

// selfTypeOf returns the type of `this` inside the given type declaration or extension,
// i.e. the type seen through its default substitutions.
func (checker *Checker) selfTypeOf(declaration ast.Declaration) Type {
	switch declaration := declaration.(type) {
	case *ast.StructDeclaration, *ast.EnumDeclaration:
		return NewDeclRefType(NewDeclRef(declaration, checker.CreateDefaultSubstitutions(declaration)))

	case *ast.InterfaceDeclaration:
		return &ThisType{
			Interface: NewDeclRef(declaration, checker.CreateDefaultSubstitutions(declaration)),
		}

	case *ast.ExtensionDeclaration:
		return checker.extensionTargetType(declaration)
	}

	return nil
}

// declaredTypeOf returns the type declared by the given type declaration,
// which for an interface is the interface type, not `This`.
func (checker *Checker) declaredTypeOf(declaration ast.Declaration) Type {
	if interfaceDeclaration, ok := declaration.(*ast.InterfaceDeclaration); ok {
		return NewDeclRefType(NewDeclRef(interfaceDeclaration, checker.CreateDefaultSubstitutions(interfaceDeclaration)))
	}
	return checker.selfTypeOf(declaration)
}

func (checker *Checker) extensionTargetType(extension *ast.ExtensionDeclaration) Type {
	checker.ensureIfNotBeingChecked(extension, common.DeclCheckStateSignatureChecked)
	ty := checker.Elaboration.ExtensionTargetType(extension)
	if ty == nil {
		return ErrorType
	}
	return ty
}

// lookUpMember finds the members with the given name of the given type:
// its own members, the members added by its extensions,
// and the members of its bases, constraints, and transparent members.
func (checker *Checker) lookUpMember(ty Type, name string, options LookupOptions) []LookupResultItem {
	lookup := &memberLookup{
		checker: checker,
		name:    name,
		options: options,
		visited: map[string]struct{}{},
	}
	lookup.lookUpInType(ty, nil)
	return lookup.items
}

// memberNames returns the names of all members of the given type, used for suggestions.
func (checker *Checker) memberNames(ty Type) []string {
	declaration, ok := declarationOfType(ty)
	if !ok {
		return nil
	}

	var names []string
	addNames := func(container ast.Declaration) {
		for _, member := range container.DeclarationMembers() {
			name := member.DeclarationIdentifier().Identifier
			if name == "" || !isNamedMember(member, name) {
				continue
			}
			names = append(names, name)
		}
	}

	addNames(declaration)
	for _, extension := range checker.candidateExtensionsFor(declaration) {
		addNames(extension)
	}
	return names
}

type memberLookup struct {
	checker *Checker
	visited map[string]struct{}
	name    string
	items   []LookupResultItem
	options LookupOptions
}

func (l *memberLookup) add(declRef DeclRef, breadcrumbs []Breadcrumb) {
	l.items = append(l.items, LookupResultItem{
		DeclRef:     declRef,
		Breadcrumbs: breadcrumbs,
	})
}

func withBreadcrumb(breadcrumbs []Breadcrumb, kind BreadcrumbKind, declRef DeclRef) []Breadcrumb {
	result := make([]Breadcrumb, len(breadcrumbs), len(breadcrumbs)+1)
	copy(result, breadcrumbs)
	return append(result, Breadcrumb{
		Kind:    kind,
		DeclRef: declRef,
	})
}

func (l *memberLookup) markVisited(key string) bool {
	if _, ok := l.visited[key]; ok {
		return false
	}
	l.visited[key] = struct{}{}
	return true
}

func (l *memberLookup) lookUpInType(ty Type, breadcrumbs []Breadcrumb) {
	if ty == nil || isErrorType(ty) {
		return
	}

	if !l.markVisited(ty.Key()) {
		return
	}

	checker := l.checker

	switch ty := ty.(type) {
	case *DeclRefType:
		declRef := ty.DeclRef

		switch declaration := declRef.Declaration.(type) {
		case *ast.StructDeclaration, *ast.EnumDeclaration:
			checker.ensureIfNotBeingChecked(declaration, common.DeclCheckStateReadyForLookup)
			l.lookUpInAggregate(ty, declRef, breadcrumbs)

		case *ast.InterfaceDeclaration:
			// the members of an interface type are seen through `This`
			l.lookUpInInterface(declRef, nil, breadcrumbs)

		case *ast.GenericTypeParameterDeclaration:
			generic, ok := checker.Arena.Parent(declaration).(*ast.GenericDeclaration)
			if !ok {
				return
			}
			checker.ensureGenericConstraints(generic)
			for _, constraint := range generic.Constraints() {
				constraintRef := NewDeclRef(constraint, declRef.Substitutions)
				sub, sup := checker.declRefSubAndSupTypes(constraintRef)
				if !TypesEqual(sub, ty) {
					continue
				}
				l.lookUpInBase(ty, sup, constraintRef, breadcrumbs)
			}

		case *ast.AssociatedTypeDeclaration:
			for _, constraint := range declaration.Constraints() {
				constraintRef := NewDeclRef(constraint, declRef.Substitutions)
				_, sup := checker.declRefSubAndSupTypes(constraintRef)
				l.lookUpInBase(ty, sup, constraintRef, breadcrumbs)
			}
		}

	case *ThisType:
		l.lookUpInInterface(ty.Interface, nil, breadcrumbs)
	}
}

// lookUpInBase looks up members of the given base of the given type,
// which the given declaration establishes.
func (l *memberLookup) lookUpInBase(
	ty Type,
	base Type,
	declRef DeclRef,
	breadcrumbs []Breadcrumb,
) {
	baseDeclaration, ok := declarationOfType(base)
	if !ok {
		return
	}

	switch baseDeclaration.(type) {
	case *ast.InterfaceDeclaration:
		if l.options.IgnoreBaseInterfaces {
			return
		}
		witness := &DeclaredSubtypeWitness{
			Sub:     ty,
			Sup:     base,
			DeclRef: declRef,
		}
		l.lookUpInInterface(
			base.(*DeclRefType).DeclRef,
			witness,
			withBreadcrumb(breadcrumbs, BreadcrumbKindConstraint, declRef),
		)

	case *ast.StructDeclaration:
		l.lookUpInType(
			base,
			withBreadcrumb(breadcrumbs, BreadcrumbKindSuperType, declRef),
		)
	}
}

func (l *memberLookup) lookUpInAggregate(ty Type, declRef DeclRef, breadcrumbs []Breadcrumb) {
	checker := l.checker
	declaration := declRef.Declaration

	containers := []DeclRef{declRef}
	for _, extension := range checker.candidateExtensionsFor(declaration) {
		extensionRef, ok := checker.ApplyExtensionToType(extension, ty)
		if !ok {
			continue
		}
		containers = append(containers, extensionRef)
	}

	for _, container := range containers {
		for _, member := range container.Declaration.DeclarationMembers() {
			if isNamedMember(member, l.name) {
				l.add(NewDeclRef(member, container.Substitutions), breadcrumbs)
			}
		}
	}

	for _, container := range containers {
		for _, member := range container.Declaration.DeclarationMembers() {
			switch member := member.(type) {
			case *ast.InheritanceDeclaration:
				inheritanceRef := NewDeclRef(member, container.Substitutions)
				base := checker.declRefBaseType(inheritanceRef)
				l.lookUpInBase(ty, base, inheritanceRef, breadcrumbs)

			case *ast.VariableDeclaration:
				if !member.Modifiers.Has(common.ModifierTransparent) {
					continue
				}
				// the type annotation of the member is resolved through this lookup
				checker.ensureIfNotBeingChecked(member, common.DeclCheckStateSignatureChecked)
				memberType := checker.Elaboration.DeclarationType(member)
				if memberType == nil {
					continue
				}
				memberRef := NewDeclRef(member, container.Substitutions)
				l.lookUpInType(
					checker.substituteType(memberType, container.Substitutions),
					withBreadcrumb(breadcrumbs, BreadcrumbKindMember, memberRef),
				)
			}
		}
	}
}

// lookUpInInterface looks up the requirements of the referenced interface.
// If a witness of a conformance is given, the requirements are seen through it,
// i.e. `This` resolves to the conforming type.
func (l *memberLookup) lookUpInInterface(
	interfaceRef DeclRef,
	witness SubtypeWitness,
	breadcrumbs []Breadcrumb,
) {
	checker := l.checker
	interfaceDeclaration := interfaceRef.Declaration.(*ast.InterfaceDeclaration)

	if !l.markVisited("I" + interfaceRef.Key()) {
		return
	}

	checker.ensureIfNotBeingChecked(interfaceDeclaration, common.DeclCheckStateReadyForLookup)

	substitutions := interfaceRef.Substitutions
	var conformingType Type = &ThisType{Interface: interfaceRef}
	if witness != nil {
		substitutions = checker.internTable.ThisTypeSubstitution(
			interfaceDeclaration,
			witness,
			nil,
			interfaceRef.Substitutions,
		)
		conformingType = witness.SubType()
	}

	for _, member := range interfaceDeclaration.Members {
		if isNamedMember(member, l.name) {
			l.add(NewDeclRef(member, substitutions), breadcrumbs)
		}
	}

	if l.options.IgnoreBaseInterfaces {
		return
	}

	for _, inheritanceRef := range checker.interfaceInheritances(interfaceDeclaration, substitutions) {
		base := checker.declRefBaseType(inheritanceRef)
		baseDeclaration, ok := declarationOfType(base)
		if !ok {
			continue
		}
		if _, ok := baseDeclaration.(*ast.InterfaceDeclaration); !ok {
			continue
		}

		var baseWitness SubtypeWitness
		if witness != nil {
			baseWitness = &TransitiveSubtypeWitness{
				SubToMid: witness,
				MidToSup: &DeclaredSubtypeWitness{
					Sub:     witness.SupType(),
					Sup:     base,
					DeclRef: inheritanceRef,
				},
			}
		} else {
			baseWitness = &DeclaredSubtypeWitness{
				Sub:     conformingType,
				Sup:     base,
				DeclRef: inheritanceRef,
			}
		}

		l.lookUpInInterface(
			base.(*DeclRefType).DeclRef,
			baseWitness,
			withBreadcrumb(breadcrumbs, BreadcrumbKindConstraint, inheritanceRef),
		)
	}
}

// interfaceInheritances returns references to the inheritance declarations of the given interface,
// including those added by extensions of the interface.
func (checker *Checker) interfaceInheritances(
	interfaceDeclaration *ast.InterfaceDeclaration,
	substitutions Substitutions,
) []DeclRef {
	var refs []DeclRef
	for _, inheritance := range ast.Inheritances(interfaceDeclaration) {
		refs = append(refs, NewDeclRef(inheritance, substitutions))
	}

	interfaceType := checker.declaredTypeOf(interfaceDeclaration)
	for _, extension := range checker.candidateExtensionsFor(interfaceDeclaration) {
		extensionRef, ok := checker.ApplyExtensionToType(extension, interfaceType)
		if !ok {
			continue
		}
		for _, inheritance := range ast.Inheritances(extension) {
			refs = append(refs, NewDeclRef(
				inheritance,
				checker.substituteSubstitutions(extensionRef.Substitutions, substitutions),
			))
		}
	}
	return refs
}
