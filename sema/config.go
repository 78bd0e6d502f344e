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
	"github.com/rs/zerolog"

	"github.com/onflow/declcheck/ast"
	"github.com/onflow/declcheck/common"
)

// SkipCheckingFunc decides if the given phase of the given declaration should be skipped.
// A skipped phase advances the state of the declaration without running the phase.
type SkipCheckingFunc func(checker *Checker, declaration ast.Declaration, state common.DeclCheckState) bool

// ImportHandlerFunc resolves the module with the given name.
// The returned module must have been parsed into the checker's arena.
type ImportHandlerFunc func(checker *Checker, name string, importRange ast.Range) (*ast.ModuleDeclaration, error)

type CheckHandlerFunc func(checker *Checker, check func())

type Config struct {
	// SkipChecking is consulted before the body phase of each declaration.
	SkipChecking SkipCheckingFunc
	// ImportHandler is used to resolve imported modules.
	ImportHandler ImportHandlerFunc
	// CheckHandler is called with the function that checks the module.
	CheckHandler CheckHandlerFunc
	// OnRecordTrace is triggered when a trace is recorded.
	OnRecordTrace OnRecordTraceFunc
	// Logger receives debug output of the scheduler and the conformance resolver.
	// Nil disables logging.
	Logger *zerolog.Logger
	// TracingEnabled determines if tracing is enabled.
	// Tracing reports the phases of declarations and conformance checks.
	TracingEnabled bool
	// SuggestionsEnabled determines if errors include suggestions of similar names.
	SuggestionsEnabled bool
	// ErrorShortCircuitingEnabled determines if checking stops after the first error.
	ErrorShortCircuitingEnabled bool
}

// SkipNone never skips a phase.
func SkipNone(_ *Checker, _ ast.Declaration, _ common.DeclCheckState) bool {
	return false
}

// SkipAllBodies skips the body phase of every declaration.
func SkipAllBodies(_ *Checker, _ ast.Declaration, state common.DeclCheckState) bool {
	return state == common.DeclCheckStateChecked
}

// SkipBodiesOutsidePrimaryModule skips the body phase of declarations of imported modules.
func SkipBodiesOutsidePrimaryModule(checker *Checker, declaration ast.Declaration, state common.DeclCheckState) bool {
	if state != common.DeclCheckStateChecked {
		return false
	}
	return checker.Arena.ModuleOf(declaration) != checker.Module
}
