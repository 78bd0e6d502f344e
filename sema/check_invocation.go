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

// callee is the resolved callee of an invocation: the candidate declarations,
// and whether the receiver, if any, may be mutated.
type callee struct {
	name             string
	candidates       []LookupResultItem
	constructedType  Type
	receiverIsLValue bool
	hasReceiver      bool
}

const constructorName = "__init"

func (ctx *checkingContext) checkInvocationExpression(invocation *ast.InvocationExpression) Type {
	target, ok := ctx.resolveCallee(invocation.InvokedExpression)

	argumentTypes := make([]Type, len(invocation.Arguments))
	for i, argument := range invocation.Arguments {
		argumentTypes[i] = ctx.checkExpression(argument)
	}

	if !ok {
		return ErrorType
	}

	errorRange := ast.NewRangeFromPositioned(invocation)

	if target.constructedType != nil && len(target.candidates) == 0 {
		// implicit constructor without parameters
		if len(argumentTypes) > 0 {
			ctx.report(&NoApplicableOverloadError{
				Name:          target.name,
				ArgumentTypes: argumentTypes,
				Range:         errorRange,
			})
			return ErrorType
		}
		return target.constructedType
	}

	declRef, ok := ctx.resolveOverload(target.name, target.candidates, argumentTypes, errorRange)
	if !ok {
		return ErrorType
	}

	if function, ok := declRef.Declaration.(*ast.FunctionDeclaration); ok &&
		function.Modifiers.Has(common.ModifierMutating) &&
		target.hasReceiver &&
		!target.receiverIsLValue {

		ctx.report(&MutatingCallOnImmutableReceiverError{
			Name:  target.name,
			Range: errorRange,
		})
	}

	ctx.Elaboration.setInvocationTarget(invocation, declRef)

	if target.constructedType != nil {
		return target.constructedType
	}
	return ctx.declRefResultType(declRef)
}

// resolveCallee finds the candidates an invoked expression may refer to.
func (ctx *checkingContext) resolveCallee(expression ast.Expression) (callee, bool) {
	switch expression := expression.(type) {
	case *ast.IdentifierExpression:
		identifier := expression.Identifier

		if ty, ok := ctx.typeOfTypeExpression(expression); ok {
			return ctx.constructorCallee(ty, identifier.Identifier, ast.NewRangeFromPositioned(identifier))
		}

		items := ctx.lookUp(ctx.scope, identifier.Identifier)
		if len(items) == 0 {
			ctx.report(&NotDeclaredError{
				Name:         identifier.Identifier,
				ExpectedKind: common.DeclarationKindFunction,
				Range:        ast.NewRangeFromPositioned(identifier),
			})
			return callee{}, false
		}

		candidates := callableItems(items)
		if len(candidates) == 0 {
			ctx.report(&NotCallableError{
				Name:  identifier.Identifier,
				Range: ast.NewRangeFromPositioned(identifier),
			})
			return callee{}, false
		}

		if ctx.thisType == nil {
			candidates = ctx.staticItems(candidates)
			if len(candidates) == 0 {
				ctx.report(&InvalidStaticMemberAccessError{
					Name:  identifier.Identifier,
					Range: ast.NewRangeFromPositioned(identifier),
				})
				return callee{}, false
			}
		}

		return callee{
			name:             identifier.Identifier,
			candidates:       candidates,
			receiverIsLValue: ctx.isMutating,
			hasReceiver:      ctx.thisType != nil,
		}, true

	case *ast.MemberExpression:
		identifier := expression.Identifier
		errorRange := ast.NewRangeFromPositioned(identifier)

		if baseType, ok := ctx.typeOfTypeExpression(expression.Expression); ok {
			if isErrorType(baseType) {
				return callee{}, false
			}

			items := ctx.lookUpMember(baseType, identifier.Identifier, LookupOptions{})
			for _, item := range items {
				if isTypeDeclaration(item.DeclRef.Declaration) {
					memberType := ctx.typeOfLookupItem(item, nil, identifier)
					return ctx.constructorCallee(memberType, identifier.Identifier, errorRange)
				}
			}

			if len(items) == 0 {
				ctx.reportNotDeclaredMember(baseType, identifier)
				return callee{}, false
			}

			candidates := ctx.staticItems(callableItems(items))
			if len(candidates) == 0 {
				ctx.report(&InvalidStaticMemberAccessError{
					Name:  identifier.Identifier,
					Range: errorRange,
				})
				return callee{}, false
			}

			return callee{
				name:       identifier.Identifier,
				candidates: candidates,
			}, true
		}

		baseType := ctx.checkExpression(expression.Expression)
		if isErrorType(baseType) {
			return callee{}, false
		}

		items := ctx.lookUpMember(baseType, identifier.Identifier, LookupOptions{})
		if len(items) == 0 {
			ctx.reportNotDeclaredMember(baseType, identifier)
			return callee{}, false
		}

		candidates := callableItems(items)
		if len(candidates) == 0 {
			ctx.report(&NotCallableError{
				Name:  identifier.Identifier,
				Range: errorRange,
			})
			return callee{}, false
		}

		return callee{
			name:             identifier.Identifier,
			candidates:       candidates,
			receiverIsLValue: ctx.isLValue(expression.Expression),
			hasReceiver:      true,
		}, true

	case *ast.OverloadedExpression:
		candidates := callableItems(ctx.overloadedCandidates(expression))
		if len(candidates) == 0 {
			ctx.report(&NotCallableError{
				Name:  expression.Identifier.Identifier,
				Range: expression.Range,
			})
			return callee{}, false
		}

		if expression.Base == nil && ctx.thisType == nil {
			candidates = ctx.staticItems(candidates)
			if len(candidates) == 0 {
				ctx.report(&InvalidStaticMemberAccessError{
					Name:  expression.Identifier.Identifier,
					Range: expression.Range,
				})
				return callee{}, false
			}
		}

		receiverIsLValue := false
		if expression.Base != nil {
			receiverIsLValue = ctx.isLValue(expression.Base)
		}

		return callee{
			name:             expression.Identifier.Identifier,
			candidates:       candidates,
			receiverIsLValue: receiverIsLValue,
			hasReceiver:      expression.Base != nil,
		}, true
	}

	ty := ctx.checkExpression(expression)
	if !isErrorType(ty) {
		ctx.report(&NotCallableError{
			Name:  expression.String(),
			Range: ast.NewRangeFromPositioned(expression),
		})
	}
	return callee{}, false
}

// constructorCallee returns the constructors of the given type as the callee.
// Interfaces cannot be constructed.
func (ctx *checkingContext) constructorCallee(ty Type, name string, errorRange ast.Range) (callee, bool) {
	if isErrorType(ty) {
		return callee{}, false
	}

	var options LookupOptions

	switch ty := ty.(type) {
	case *ThisType:
		ctx.report(&NotCallableError{
			Name:  name,
			Range: errorRange,
		})
		return callee{}, false

	case *DeclRefType:
		switch ty.DeclRef.Declaration.(type) {
		case *ast.StructDeclaration, *ast.EnumDeclaration:
			options = LookupOptions{IgnoreBaseInterfaces: true}

		case *ast.GenericTypeParameterDeclaration, *ast.AssociatedTypeDeclaration:
			// constructors are required by the constraints

		default:
			ctx.report(&NotCallableError{
				Name:  name,
				Range: errorRange,
			})
			return callee{}, false
		}

	case PrimitiveType:
		return callee{
			name:            name,
			constructedType: ty,
		}, true
	}

	candidates := callableItems(ctx.lookUpMember(ty, constructorName, options))

	return callee{
		name:            name,
		candidates:      candidates,
		constructedType: ty,
	}, true
}

// callableItems returns the functions and constructors among the given items,
// including generic ones.
func callableItems(items []LookupResultItem) []LookupResultItem {
	var result []LookupResultItem
	for _, item := range items {
		switch unwrapGeneric(item.DeclRef.Declaration).(type) {
		case *ast.FunctionDeclaration, *ast.ConstructorDeclaration:
			result = append(result, item)
		}
	}
	return result
}

func (ctx *checkingContext) staticItems(items []LookupResultItem) []LookupResultItem {
	var result []LookupResultItem
	for _, item := range items {
		if !ctx.isInstanceMember(item.DeclRef.Declaration) {
			result = append(result, item)
		}
	}
	return result
}

type overloadCandidate struct {
	declRef         DeclRef
	breadcrumbCount int
	cost            int
}

// resolveOverload selects the candidate which is applicable to the given arguments.
//
// Candidates found through fewer indirections are preferred,
// then candidates whose parameters need fewer conversions.
// Only the primary declaration of a redeclaration family is considered.
func (ctx *checkingContext) resolveOverload(
	name string,
	items []LookupResultItem,
	argumentTypes []Type,
	errorRange ast.Range,
) (DeclRef, bool) {

	var applicable []overloadCandidate
	seen := map[string]struct{}{}

	for _, item := range items {
		declaration := item.DeclRef.Declaration

		ctx.ensureIfNotBeingChecked(declaration, common.DeclCheckStateReadyForReference)

		primary := ctx.Elaboration.PrimaryDeclaration(unwrapGeneric(declaration))
		if primary != nil && primary != unwrapGeneric(declaration) {
			continue
		}

		declRef, ok := ctx.specializeCallee(item.DeclRef, argumentTypes)
		if !ok {
			continue
		}

		key := declRef.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		cost, ok := ctx.applicabilityCost(declRef, argumentTypes)
		if !ok {
			continue
		}

		applicable = append(applicable, overloadCandidate{
			declRef:         declRef,
			breadcrumbCount: len(item.Breadcrumbs),
			cost:            cost,
		})
	}

	if len(applicable) == 0 {
		ctx.report(&NoApplicableOverloadError{
			Name:          name,
			ArgumentTypes: argumentTypes,
			Range:         errorRange,
		})
		return DeclRef{}, false
	}

	best := applicable[0]
	bestCount := 1
	for _, candidate := range applicable[1:] {
		switch compareOverloadCandidates(candidate, best) {
		case -1:
			best = candidate
			bestCount = 1
		case 0:
			bestCount++
		}
	}

	if bestCount > 1 {
		ctx.report(&AmbiguousCallError{
			Name:           name,
			CandidateCount: bestCount,
			Range:          errorRange,
		})
		return DeclRef{}, false
	}

	return best.declRef, true
}

func compareOverloadCandidates(a, b overloadCandidate) int {
	switch {
	case a.breadcrumbCount < b.breadcrumbCount:
		return -1
	case a.breadcrumbCount > b.breadcrumbCount:
		return 1
	case a.cost < b.cost:
		return -1
	case a.cost > b.cost:
		return 1
	}
	return 0
}

// specializeCallee returns the reference to the inner declaration of a generic callee,
// with the generic arguments inferred from the argument types.
// Non-generic callees are returned unchanged.
func (ctx *checkingContext) specializeCallee(declRef DeclRef, argumentTypes []Type) (DeclRef, bool) {
	generic, ok := declRef.Declaration.(*ast.GenericDeclaration)
	if !ok {
		return declRef, true
	}

	outer := declRef.Substitutions
	defaults := ctx.CreateDefaultSubstitutionsForGeneric(generic, outer)
	innerRef := NewDeclRef(generic.Inner, defaults)

	parameters := parameterDeclRefs(innerRef)
	if len(argumentTypes) > len(parameters) {
		return DeclRef{}, false
	}

	bindings := map[ast.Declaration]Val{}
	for i, argumentType := range argumentTypes {
		if isErrorType(argumentType) {
			continue
		}
		parameterType := ctx.declRefType(parameters[i])
		// a failed match is reported as an inapplicable candidate below
		_ = ctx.unify(parameterType, argumentType, generic, bindings)
	}

	genericParameters := generic.GenericParameters()
	args := make([]Val, 0, len(genericParameters)+len(generic.Constraints()))
	for _, parameter := range genericParameters {
		arg, ok := bindings[parameter]
		if !ok {
			return DeclRef{}, false
		}
		args = append(args, arg)
	}

	witnesses, ok := ctx.constraintWitnesses(generic, args, outer)
	if !ok {
		return DeclRef{}, false
	}
	args = append(args, witnesses...)

	substitution := ctx.internTable.GenericSubstitution(generic, args, outer)
	return NewDeclRef(generic.Inner, substitution), true
}

// applicabilityCost returns the total conversion cost of passing the given arguments
// to the referenced callable, or false if the callable is not applicable.
func (ctx *checkingContext) applicabilityCost(declRef DeclRef, argumentTypes []Type) (int, bool) {
	parameters := parameterDeclRefs(declRef)

	required := 0
	for _, parameter := range parameters {
		if parameter.Declaration.(*ast.ParameterDeclaration).DefaultValue == nil {
			required++
		}
	}

	if len(argumentTypes) < required || len(argumentTypes) > len(parameters) {
		return 0, false
	}

	total := 0
	for i, argumentType := range argumentTypes {
		parameterType := ctx.declRefType(parameters[i])
		cost := ctx.coercionCostOf(parameterType, argumentType)
		if cost == coercionCostImpossible {
			return 0, false
		}
		total += int(cost)
	}
	return total, true
}
