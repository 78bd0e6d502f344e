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

// declarationInfo is the side-table entry of a declaration.
type declarationInfo struct {
	ty             Type
	resultType     Type
	sub            Type
	sup            Type
	constant       Val
	enumTagType    Type
	enumTagValue   Val
	witnessTable   *WitnessTable
	primary        ast.Declaration
	next           ast.Declaration
	importedModule *ast.ModuleDeclaration
	state          common.DeclCheckState
	beingChecked   bool
	poisoned       bool
	synthesized    bool
}

// Elaboration holds the results of checking,
// keyed by declaration handle or syntax node.
type Elaboration struct {
	declarations      map[ast.DeclarationID]*declarationInfo
	expressionTypes   map[ast.Expression]Type
	invocationTargets map[*ast.InvocationExpression]DeclRef
	memberTargets     map[ast.Expression]DeclRef
}

func NewElaboration() *Elaboration {
	return &Elaboration{
		declarations:      map[ast.DeclarationID]*declarationInfo{},
		expressionTypes:   map[ast.Expression]Type{},
		invocationTargets: map[*ast.InvocationExpression]DeclRef{},
		memberTargets:     map[ast.Expression]DeclRef{},
	}
}

func (e *Elaboration) info(declaration ast.Declaration) *declarationInfo {
	id := declaration.DeclarationID()
	info, ok := e.declarations[id]
	if !ok {
		info = &declarationInfo{}
		e.declarations[id] = info
	}
	return info
}

func (e *Elaboration) lookupInfo(declaration ast.Declaration) *declarationInfo {
	return e.declarations[declaration.DeclarationID()]
}

// CheckState returns the state the given declaration has reached.
func (e *Elaboration) CheckState(declaration ast.Declaration) common.DeclCheckState {
	info := e.lookupInfo(declaration)
	if info == nil {
		return common.DeclCheckStateUnchecked
	}
	return info.state
}

// setCheckState raises the state of the given declaration.
// The state of a declaration never decreases.
func (e *Elaboration) setCheckState(declaration ast.Declaration, state common.DeclCheckState) {
	info := e.info(declaration)
	info.state = common.MaxDeclCheckState(info.state, state)
}

// IsPoisoned returns true if the given declaration was found to refer to itself.
func (e *Elaboration) IsPoisoned(declaration ast.Declaration) bool {
	info := e.lookupInfo(declaration)
	return info != nil && info.poisoned
}

// DeclarationType returns the declared type of a variable, parameter, property,
// generic value parameter, enum case, or type alias.
//
// The type of a declaration which refers to itself is the error type.
func (e *Elaboration) DeclarationType(declaration ast.Declaration) Type {
	info := e.lookupInfo(declaration)
	if info == nil {
		return nil
	}
	if info.poisoned {
		return ErrorType
	}
	return info.ty
}

func (e *Elaboration) setDeclarationType(declaration ast.Declaration, ty Type) {
	e.info(declaration).ty = ty
}

// ResultType returns the result type of a function, constructor, or accessor.
func (e *Elaboration) ResultType(declaration ast.Declaration) Type {
	info := e.lookupInfo(declaration)
	if info == nil {
		return nil
	}
	if info.poisoned {
		return ErrorType
	}
	return info.resultType
}

func (e *Elaboration) setResultType(declaration ast.Declaration, ty Type) {
	e.info(declaration).resultType = ty
}

// SubAndSupTypes returns the types related by a generic or associated type constraint.
func (e *Elaboration) SubAndSupTypes(declaration ast.Declaration) (sub Type, sup Type) {
	info := e.lookupInfo(declaration)
	if info == nil {
		return nil, nil
	}
	return info.sub, info.sup
}

func (e *Elaboration) setSubAndSupTypes(declaration ast.Declaration, sub Type, sup Type) {
	info := e.info(declaration)
	info.sub = sub
	info.sup = sup
}

// BaseType returns the base type named by an inheritance declaration.
func (e *Elaboration) BaseType(inheritance *ast.InheritanceDeclaration) Type {
	info := e.lookupInfo(inheritance)
	if info == nil {
		return nil
	}
	if info.poisoned {
		return ErrorType
	}
	return info.ty
}

// ExtensionTargetType returns the type extended by an extension.
func (e *Elaboration) ExtensionTargetType(extension *ast.ExtensionDeclaration) Type {
	return e.DeclarationType(extension)
}

// ConstantValue returns the folded value of a constant variable, if any.
func (e *Elaboration) ConstantValue(declaration ast.Declaration) Val {
	info := e.lookupInfo(declaration)
	if info == nil || info.poisoned {
		return nil
	}
	return info.constant
}

func (e *Elaboration) setConstantValue(declaration ast.Declaration, val Val) {
	e.info(declaration).constant = val
}

// WitnessTable returns the witness table attached to the given inheritance declaration, if any.
func (e *Elaboration) WitnessTable(inheritance ast.Declaration) *WitnessTable {
	info := e.lookupInfo(inheritance)
	if info == nil {
		return nil
	}
	return info.witnessTable
}

func (e *Elaboration) setWitnessTable(inheritance ast.Declaration, table *WitnessTable) {
	e.info(inheritance).witnessTable = table
}

// PrimaryDeclaration returns the first declaration of the redeclaration family
// of the given function, or nil if the function was never redeclared.
func (e *Elaboration) PrimaryDeclaration(declaration ast.Declaration) ast.Declaration {
	info := e.lookupInfo(declaration)
	if info == nil {
		return nil
	}
	return info.primary
}

// NextDeclaration returns the next declaration in the redeclaration family, if any.
func (e *Elaboration) NextDeclaration(declaration ast.Declaration) ast.Declaration {
	info := e.lookupInfo(declaration)
	if info == nil {
		return nil
	}
	return info.next
}

// RedeclarationFamily returns all members of the family of the given declaration,
// starting with the primary declaration.
func (e *Elaboration) RedeclarationFamily(declaration ast.Declaration) []ast.Declaration {
	primary := e.PrimaryDeclaration(declaration)
	if primary == nil {
		return []ast.Declaration{declaration}
	}
	var family []ast.Declaration
	for member := primary; member != nil; member = e.NextDeclaration(member) {
		family = append(family, member)
	}
	return family
}

// EnumTagType returns the tag type of an enum.
func (e *Elaboration) EnumTagType(enum *ast.EnumDeclaration) Type {
	info := e.lookupInfo(enum)
	if info == nil {
		return nil
	}
	return info.enumTagType
}

// EnumCaseTag returns the folded tag value of an enum case.
func (e *Elaboration) EnumCaseTag(enumCase *ast.EnumCaseDeclaration) Val {
	info := e.lookupInfo(enumCase)
	if info == nil {
		return nil
	}
	return info.enumTagValue
}

// ImportedModule returns the module an import declaration resolved to.
func (e *Elaboration) ImportedModule(importDeclaration *ast.ImportDeclaration) *ast.ModuleDeclaration {
	info := e.lookupInfo(importDeclaration)
	if info == nil {
		return nil
	}
	return info.importedModule
}

// IsSynthesized returns true for declarations created to satisfy interface requirements.
func (e *Elaboration) IsSynthesized(declaration ast.Declaration) bool {
	info := e.lookupInfo(declaration)
	return info != nil && info.synthesized
}

// ExpressionType returns the type of a checked expression.
func (e *Elaboration) ExpressionType(expression ast.Expression) Type {
	return e.expressionTypes[expression]
}

func (e *Elaboration) setExpressionType(expression ast.Expression, ty Type) {
	e.expressionTypes[expression] = ty
}

// InvocationTarget returns the declaration selected by overload resolution for an invocation.
func (e *Elaboration) InvocationTarget(invocation *ast.InvocationExpression) (DeclRef, bool) {
	target, ok := e.invocationTargets[invocation]
	return target, ok
}

// MemberTarget returns the declaration an identifier, member, or overloaded expression refers to.
func (e *Elaboration) MemberTarget(expression ast.Expression) (DeclRef, bool) {
	target, ok := e.memberTargets[expression]
	return target, ok
}

func (e *Elaboration) isBeingChecked(declaration ast.Declaration) bool {
	info := e.lookupInfo(declaration)
	return info != nil && info.beingChecked
}

func (e *Elaboration) setEnumTagType(enum *ast.EnumDeclaration, ty Type) {
	e.info(enum).enumTagType = ty
}

func (e *Elaboration) setEnumCaseTag(enumCase *ast.EnumCaseDeclaration, val Val) {
	e.info(enumCase).enumTagValue = val
}

func (e *Elaboration) setImportedModule(importDeclaration *ast.ImportDeclaration, module *ast.ModuleDeclaration) {
	e.info(importDeclaration).importedModule = module
}

func (e *Elaboration) markSynthesized(declaration ast.Declaration) {
	e.info(declaration).synthesized = true
}

// linkRedeclaration appends the given declaration to the family of the given previous declaration.
func (e *Elaboration) linkRedeclaration(declaration ast.Declaration, previous ast.Declaration) {
	previousInfo := e.info(previous)
	if previousInfo.primary == nil {
		previousInfo.primary = previous
	}
	primary := previousInfo.primary

	info := e.info(declaration)
	info.primary = primary

	last := primary
	for {
		next := e.info(last).next
		if next == nil || next == declaration {
			break
		}
		last = next
	}
	if last != declaration {
		e.info(last).next = declaration
	}
}

func (e *Elaboration) setInvocationTarget(invocation *ast.InvocationExpression, target DeclRef) {
	e.invocationTargets[invocation] = target
}

func (e *Elaboration) setMemberTarget(expression ast.Expression, target DeclRef) {
	e.memberTargets[expression] = target
}

// ForEachWitnessTable calls f for every inheritance declaration which has a witness table,
// in the order of the declaration handles.
func (e *Elaboration) ForEachWitnessTable(arena *ast.Arena, f func(inheritance *ast.InheritanceDeclaration, table *WitnessTable)) {
	arena.Foreach(func(declaration ast.Declaration) {
		inheritance, ok := declaration.(*ast.InheritanceDeclaration)
		if !ok {
			return
		}
		table := e.WitnessTable(inheritance)
		if table == nil {
			return
		}
		f(inheritance, table)
	})
}
