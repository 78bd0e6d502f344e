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

	"github.com/onflow/declcheck/ast"
	"github.com/onflow/declcheck/common"
)

// newValueParameterName is the name of the parameter of a synthesized setter
// which has no explicit parameter.
const newValueParameterName = "newValue"

// trySynthesizeRequirementWitness attempts to create a declaration on the conforming type
// which satisfies the requirement by forwarding to the looked-up members of the same name.
//
// Synthesized declarations get a parent, but are not members of it,
// so they are never found by lookup.
func (ctx *checkingContext) trySynthesizeRequirementWitness(
	cc *conformanceCheckingContext,
	items []LookupResultItem,
	requirementRef DeclRef,
	table *WitnessTable,
) (succeeded bool) {
	if len(items) == 0 {
		return false
	}

	var synthesize func(*conformanceCheckingContext, []ast.Declaration, DeclRef, *WitnessTable) bool

	switch requirementRef.Declaration.(type) {
	case *ast.FunctionDeclaration:
		synthesize = ctx.synthesizeMethodRequirementWitness
	case *ast.PropertyDeclaration:
		synthesize = ctx.synthesizePropertyRequirementWitness
	default:
		return false
	}

	if ctx.tracingEnabled() {
		startTime := time.Now()
		defer func() {
			ctx.reportSynthesisTrace(requirementRef.Declaration, succeeded, time.Since(startTime))
		}()
	}

	candidates := make([]ast.Declaration, 0, len(items))
	for _, item := range items {
		candidates = append(candidates, item.DeclRef.Declaration)
	}

	succeeded = synthesize(cc, candidates, requirementRef, table)

	ctx.logger.Debug().
		Str("requirement", requirementRef.Name()).
		Str("type", typeString(cc.conformingType)).
		Bool("succeeded", succeeded).
		Msg("synthesized requirement witness")

	return succeeded
}

// receiver returns the expression the synthesized code accesses members on,
// or nil if the requirement is static.
func receiver(static bool, mutable bool, r ast.Range) ast.Expression {
	if static {
		return nil
	}
	return &ast.ThisExpression{
		IsLValue: mutable,
		Range:    r,
	}
}

// forSynthesized returns the context for checking the body of a synthesized callable.
func (ctx *checkingContext) forSynthesized(
	cc *conformanceCheckingContext,
	callable ast.Declaration,
	returnType Type,
	static bool,
	mutating bool,
) *checkingContext {
	nested := ctx.withScope(callable)
	nested.function = callable
	nested.returnType = returnType
	nested.selfType = cc.conformingType
	nested.thisType = nil
	nested.isMutating = false
	if !static {
		nested.thisType = cc.conformingType
		nested.isMutating = mutating
	}
	return nested
}

// finishSynthesized records a synthesized callable which checked without errors.
func (ctx *checkingContext) finishSynthesized(callable ast.Declaration, resultType Type) {
	ctx.Elaboration.setResultType(callable, resultType)
	ctx.Elaboration.markSynthesized(callable)
	ctx.Elaboration.setCheckState(callable, common.DeclCheckStateChecked)
}

// synthesizeParameter adds a parameter with the given name and type to the synthesized callable.
// The parameter is already checked.
func (ctx *checkingContext) synthesizeParameter(
	callable ast.Declaration,
	identifier ast.Identifier,
	modifiers ast.Modifiers,
	typeAnnotation ast.TypeExpression,
	ty Type,
) *ast.ParameterDeclaration {
	parameter := &ast.ParameterDeclaration{
		TypeAnnotation: typeAnnotation,
		DeclarationBase: ast.DeclarationBase{
			Identifier: identifier,
			Modifiers:  modifiers,
		},
	}
	ctx.Arena.AddMember(callable, parameter)
	ctx.Elaboration.setDeclarationType(parameter, ty)
	ctx.Elaboration.markSynthesized(parameter)
	ctx.Elaboration.setCheckState(parameter, common.DeclCheckStateChecked)
	return parameter
}

// synthesizeMethodRequirementWitness synthesizes a method which forwards its arguments
// to a call of the candidates, e.g. for the requirement `int f(int x)`:
//
//	int f(int x) { return this.f(x); }
//
// The call is checked with the usual overload resolution and coercion rules,
// so a candidate with additional default parameters or a convertible parameter type may be called.
func (ctx *checkingContext) synthesizeMethodRequirementWitness(
	cc *conformanceCheckingContext,
	candidates []ast.Declaration,
	requirementRef DeclRef,
	table *WitnessTable,
) bool {
	requirement := requirementRef.Declaration.(*ast.FunctionDeclaration)

	static := ctx.isStaticMember(requirement)
	mutating := requirement.Modifiers.Has(common.ModifierMutating)
	resultType := ctx.declRefResultType(requirementRef)
	if isErrorType(resultType) {
		return false
	}

	synthesized := &ast.FunctionDeclaration{
		ReturnType: requirement.ReturnType,
		DeclarationBase: ast.DeclarationBase{
			Identifier: requirement.Identifier,
			Modifiers: ast.Modifiers{
				Set: requirement.Modifiers.Set,
			},
			Range: requirement.Range,
		},
	}
	ctx.Arena.SetParent(synthesized, cc.container)

	requiredParameters := parameterDeclRefs(requirementRef)
	arguments := make([]ast.Expression, 0, len(requiredParameters))

	for _, requiredParameterRef := range requiredParameters {
		requiredParameter := requiredParameterRef.Declaration.(*ast.ParameterDeclaration)

		parameterType := ctx.declRefType(requiredParameterRef)
		if isErrorType(parameterType) {
			return false
		}

		parameter := ctx.synthesizeParameter(
			synthesized,
			requiredParameter.Identifier,
			requiredParameter.Modifiers,
			requiredParameter.TypeAnnotation,
			parameterType,
		)

		arguments = append(arguments, &ast.DeclarationReferenceExpression{
			Declaration: parameter,
			Range:       requiredParameter.Range,
		})
	}

	invocation := &ast.InvocationExpression{
		InvokedExpression: &ast.OverloadedExpression{
			Base:       receiver(static, mutating, requirement.Range),
			Identifier: requirement.Identifier,
			Candidates: candidates,
			Range:      requirement.Range,
		},
		Arguments: arguments,
		EndPos:    requirement.EndPos,
	}

	var statement ast.Statement
	if TypesEqual(resultType, VoidType) {
		statement = &ast.ExpressionStatement{
			Expression: invocation,
		}
	} else {
		statement = &ast.ReturnStatement{
			Expression: invocation,
			Range:      requirement.Range,
		}
	}

	synthesized.Body = &ast.Block{
		Statements: []ast.Statement{statement},
		Range:      requirement.Range,
	}

	ctx.Elaboration.setResultType(synthesized, resultType)

	isMutating := mutating || isMutatingCallable(synthesized, cc.container)

	_, diagnostics := tryCheck(ctx, func(trial *checkingContext) struct{} {
		trial.forSynthesized(cc, synthesized, resultType, static, isMutating).
			checkBlock(synthesized.Body)
		return struct{}{}
	})
	if diagnostics.HasErrors() {
		return false
	}

	ctx.finishSynthesized(synthesized, resultType)

	table.Add(
		requirement,
		NewDeclRefWitness(NewDeclRef(synthesized, ctx.CreateDefaultSubstitutions(synthesized))),
	)
	return true
}

// synthesizePropertyRequirementWitness synthesizes a property whose accessors
// forward to the candidates, e.g. for the requirement `property float x { get; set; }`:
//
//	property float x {
//	    get { return this.x; }
//	    set(newValue) { this.x = newValue; }
//	}
//
// Every required accessor must be synthesized, otherwise the property is not.
// Ref accessors are never synthesized.
func (ctx *checkingContext) synthesizePropertyRequirementWitness(
	cc *conformanceCheckingContext,
	candidates []ast.Declaration,
	requirementRef DeclRef,
	table *WitnessTable,
) bool {
	requirement := requirementRef.Declaration.(*ast.PropertyDeclaration)

	static := ctx.isStaticMember(requirement)
	propertyType := ctx.declRefType(requirementRef)
	if isErrorType(propertyType) {
		return false
	}

	synthesized := &ast.PropertyDeclaration{
		TypeAnnotation: requirement.TypeAnnotation,
		DeclarationBase: ast.DeclarationBase{
			Identifier: requirement.Identifier,
			Modifiers: ast.Modifiers{
				Set: requirement.Modifiers.Set,
			},
			Range: requirement.Range,
		},
	}
	ctx.Arena.SetParent(synthesized, cc.container)
	ctx.Elaboration.setDeclarationType(synthesized, propertyType)

	member := func(mutable bool) ast.Expression {
		return &ast.OverloadedExpression{
			Base:       receiver(static, mutable, requirement.Range),
			Identifier: requirement.Identifier,
			Candidates: candidates,
			Range:      requirement.Range,
		}
	}

	type accessorWitness struct {
		requirement *ast.AccessorDeclaration
		witness     *ast.AccessorDeclaration
	}

	var witnesses []accessorWitness

	for _, requiredAccessor := range requirement.Accessors() {
		accessor := &ast.AccessorDeclaration{
			Kind: requiredAccessor.Kind,
			DeclarationBase: ast.DeclarationBase{
				Identifier: requiredAccessor.Identifier,
				Modifiers:  requiredAccessor.Modifiers,
				Range:      requiredAccessor.Range,
			},
		}
		ctx.Arena.AddMember(synthesized, accessor)

		var resultType Type

		switch requiredAccessor.Kind {
		case ast.AccessorKindGet:
			resultType = propertyType
			accessor.Body = &ast.Block{
				Statements: []ast.Statement{
					&ast.ReturnStatement{
						Expression: member(false),
						Range:      requiredAccessor.Range,
					},
				},
				Range: requiredAccessor.Range,
			}

		case ast.AccessorKindSet:
			resultType = VoidType

			identifier := ast.NewIdentifier(newValueParameterName, requiredAccessor.StartPos)
			if parameters := requiredAccessor.Parameters(); len(parameters) > 0 {
				identifier = parameters[0].Identifier
			}

			parameter := ctx.synthesizeParameter(
				accessor,
				identifier,
				ast.Modifiers{},
				requirement.TypeAnnotation,
				propertyType,
			)

			accessor.Body = &ast.Block{
				Statements: []ast.Statement{
					&ast.AssignmentStatement{
						Target: member(isMutatingCallable(accessor, cc.container)),
						Value: &ast.DeclarationReferenceExpression{
							Declaration: parameter,
							Range:       requiredAccessor.Range,
						},
					},
				},
				Range: requiredAccessor.Range,
			}

		default:
			return false
		}

		ctx.Elaboration.setResultType(accessor, resultType)

		_, diagnostics := tryCheck(ctx, func(trial *checkingContext) struct{} {
			trial.forSynthesized(
				cc,
				accessor,
				resultType,
				static,
				isMutatingCallable(accessor, cc.container),
			).checkBlock(accessor.Body)
			return struct{}{}
		})
		if diagnostics.HasErrors() {
			return false
		}

		witnesses = append(witnesses, accessorWitness{
			requirement: requiredAccessor,
			witness:     accessor,
		})
	}

	for _, witness := range witnesses {
		ctx.finishSynthesized(witness.witness, ctx.Elaboration.ResultType(witness.witness))
		table.Add(
			witness.requirement,
			NewDeclRefWitness(NewDeclRef(witness.witness, ctx.CreateDefaultSubstitutions(witness.witness))),
		)
	}

	ctx.Elaboration.markSynthesized(synthesized)
	ctx.Elaboration.setCheckState(synthesized, common.DeclCheckStateChecked)

	table.Add(
		requirement,
		NewDeclRefWitness(NewDeclRef(synthesized, ctx.CreateDefaultSubstitutions(synthesized))),
	)
	return true
}
