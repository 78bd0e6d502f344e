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

// driverStates are the states the module driver advances all declarations to, in order.
//
// Every declaration reaches a state before any declaration is advanced to the next one,
// except when a phase asks for a declaration on demand.
// ReadyForLookup is repeated, so that extensions registered during the first pass
// are visible to every type in the second.
var driverStates = []common.DeclCheckState{
	common.DeclCheckStateModifiersChecked,
	common.DeclCheckStateReadyForReference,
	common.DeclCheckStateReadyForLookup,
	common.DeclCheckStateReadyForLookup,
	common.DeclCheckStateReadyForConformances,
	common.DeclCheckStateChecked,
}

// ensureDecl advances the given declaration to at least the given state,
// running the phases in order.
//
// A declaration which is asked for while one of its phases is running refers to itself:
// the cycle is reported once, and the declaration is left at its current state.
func (checker *Checker) ensureDecl(declaration ast.Declaration, state common.DeclCheckState) {
	elaboration := checker.Elaboration

	if elaboration.CheckState(declaration) >= state {
		return
	}

	info := elaboration.info(declaration)
	if info.beingChecked {
		checker.reportCycle(declaration, info)
		return
	}

	info.beingChecked = true
	defer func() {
		info.beingChecked = false
	}()

	for info.state < state {
		next := info.state.Next()

		if next == common.DeclCheckStateChecked &&
			checker.shouldSkip(declaration, next) {

			elaboration.setCheckState(declaration, next)
			continue
		}

		checker.runPhase(declaration, next)

		// the phase may have advanced the declaration further already
		elaboration.setCheckState(declaration, next)
	}
}

func (checker *Checker) shouldSkip(declaration ast.Declaration, state common.DeclCheckState) bool {
	skipChecking := checker.Config.SkipChecking
	return skipChecking != nil && skipChecking(checker, declaration, state)
}

func (checker *Checker) reportCycle(declaration ast.Declaration, info *declarationInfo) {
	if info.poisoned {
		return
	}
	info.poisoned = true

	name := declaration.DeclarationIdentifier()

	checker.logger.Debug().
		Str("declaration", name.Identifier).
		Stringer("kind", declaration.DeclarationKind()).
		Str("state", info.state.Name()).
		Msg("cyclic reference")

	checker.report(&CyclicReferenceError{
		Name:  name.Identifier,
		Kind:  declaration.DeclarationKind(),
		Range: ast.NewRangeFromPositioned(name),
	})
}

func (checker *Checker) runPhase(declaration ast.Declaration, state common.DeclCheckState) {
	handler := phaseHandlers[state]
	if handler == nil {
		return
	}

	if checker.tracingEnabled() {
		startTime := time.Now()
		defer func() {
			checker.reportPhaseTrace(declaration, state, time.Since(startTime))
		}()
	}

	checker.logger.Trace().
		Str("declaration", declaration.DeclarationIdentifier().Identifier).
		Stringer("kind", declaration.DeclarationKind()).
		Str("phase", state.Name()).
		Msg("running phase")

	handler(checker.rootContext(declaration), declaration)
}

// ensureAllDeclarations advances the given declaration and all declarations nested in it.
// Members are read after the declaration was advanced,
// as phases may add members, e.g. the default getter of a property.
func (checker *Checker) ensureAllDeclarations(declaration ast.Declaration, state common.DeclCheckState) {
	checker.ensureDecl(declaration, state)

	if generic, ok := declaration.(*ast.GenericDeclaration); ok {
		checker.ensureAllDeclarations(generic.Inner, state)
	}

	for _, member := range declaration.DeclarationMembers() {
		checker.ensureAllDeclarations(member, state)
	}
}

// ensureIfNotBeingChecked advances the given declaration,
// unless a phase of the declaration is currently running.
// Used where a partially checked declaration is good enough, e.g. for lookup.
func (checker *Checker) ensureIfNotBeingChecked(declaration ast.Declaration, state common.DeclCheckState) {
	if checker.Elaboration.isBeingChecked(declaration) {
		return
	}
	checker.ensureDecl(declaration, state)
}
