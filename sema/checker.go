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
	"github.com/onflow/declcheck/errors"
)

// Checker

type Checker struct {
	Arena       *ast.Arena
	Module      *ast.ModuleDeclaration
	Location    common.Location
	Config      *Config
	Elaboration *Elaboration
	// Codes are the sources of the checked modules, used when printing errors
	Codes map[common.LocationID][]byte

	internTable          *InternTable
	defaultSubstitutions map[string]*GenericSubstitution
	extensions           *extensionIndex
	diagnostics          *DiagnosticBag
	logger               zerolog.Logger
	// modules are the checked modules, imported modules first
	modules   []*ast.ModuleDeclaration
	isChecked bool
}

func NewChecker(
	arena *ast.Arena,
	module *ast.ModuleDeclaration,
	location common.Location,
	config *Config,
) (*Checker, error) {

	if arena == nil {
		return nil, errors.NewDefaultUserError("missing arena")
	}

	if module == nil {
		return nil, errors.NewDefaultUserError("missing module")
	}

	if location == nil {
		location = module.Location
	}
	if location == nil {
		return nil, errors.NewDefaultUserError("missing location")
	}

	if config == nil {
		config = &Config{}
	}

	logger := zerolog.Nop()
	if config.Logger != nil {
		logger = config.Logger.With().
			Str("location", location.String()).
			Logger()
	}

	diagnostics := NewDiagnosticBag()
	diagnostics.shortCircuit = config.ErrorShortCircuitingEnabled

	return &Checker{
		Arena:                arena,
		Module:               module,
		Location:             location,
		Config:               config,
		Elaboration:          NewElaboration(),
		internTable:          NewInternTable(),
		defaultSubstitutions: map[string]*GenericSubstitution{},
		extensions:           newExtensionIndex(),
		diagnostics:          diagnostics,
		logger:               logger,
	}, nil
}

func (checker *Checker) IsChecked() bool {
	return checker.isChecked
}

// InternTable returns the table which canonicalizes the substitutions created by this checker.
func (checker *Checker) InternTable() *InternTable {
	return checker.internTable
}

func (checker *Checker) Check() error {
	if !checker.IsChecked() {
		check := func() {
			if checker.Config.ErrorShortCircuitingEnabled {
				defer func() {
					switch recovered := recover().(type) {
					case stopChecking:
						// checking should stop
						break
					case nil:
						// nothing was recovered
						break
					default:
						// re-panic what was recovered
						panic(recovered)
					}
				}()
			}

			checker.checkModules()
		}
		if checker.Config.CheckHandler != nil {
			checker.Config.CheckHandler(checker, check)
		} else {
			check()
		}

		checker.isChecked = true
	}
	err := checker.CheckerError()
	if err != nil {
		return err
	}
	return nil
}

func (checker *Checker) CheckerError() *CheckerError {
	if checker.diagnostics.HasErrors() {
		return &CheckerError{
			Location: checker.Location,
			Codes:    checker.Codes,
			Errors:   checker.diagnostics.Errors(),
		}
	}
	return nil
}

// Errors returns the errors reported so far.
func (checker *Checker) Errors() []error {
	return checker.diagnostics.Errors()
}

func (checker *Checker) report(err error) {
	checker.diagnostics.Report(err)
}

// checkModules resolves the imports and advances all declarations of all modules,
// phase by phase.
func (checker *Checker) checkModules() {
	checker.modules = nil
	checker.resolveImports(checker.Module, map[*ast.ModuleDeclaration]bool{})

	for _, state := range driverStates {
		for _, module := range checker.modules {
			checker.ensureAllDeclarations(module, state)
		}
	}
}

func (checker *Checker) resolveImports(module *ast.ModuleDeclaration, visited map[*ast.ModuleDeclaration]bool) {
	if visited[module] {
		return
	}
	visited[module] = true

	for _, importDeclaration := range module.Imports() {
		name := importDeclaration.Identifier.Identifier
		importRange := ast.NewRangeFromPositioned(importDeclaration)

		importHandler := checker.Config.ImportHandler
		if importHandler == nil {
			checker.report(&ImportNotFoundError{
				Name:  name,
				Range: importRange,
			})
			continue
		}

		imported, err := importHandler(checker, name, importRange)
		if err != nil || imported == nil {
			checker.report(&ImportNotFoundError{
				Name:  name,
				Err:   err,
				Range: importRange,
			})
			continue
		}

		checker.Elaboration.setImportedModule(importDeclaration, imported)
		checker.resolveImports(imported, visited)
	}

	checker.modules = append(checker.modules, module)
}

// CheckState returns the state the given declaration has reached.
func (checker *Checker) CheckState(declaration ast.Declaration) common.DeclCheckState {
	return checker.Elaboration.CheckState(declaration)
}

// WitnessTable returns the witness table of the conformance declared by the given inheritance declaration.
func (checker *Checker) WitnessTable(inheritance *ast.InheritanceDeclaration) *WitnessTable {
	return checker.Elaboration.WitnessTable(inheritance)
}

// EnsureDeclaration advances the given declaration to at least the given state.
func (checker *Checker) EnsureDeclaration(declaration ast.Declaration, state common.DeclCheckState) {
	checker.ensureDecl(declaration, state)
}

// rootContext returns a fresh context for checking the given declaration,
// which reports to the checker's diagnostics.
func (checker *Checker) rootContext(declaration ast.Declaration) *checkingContext {
	return &checkingContext{
		Checker:     checker,
		diagnostics: checker.diagnostics,
		scope:       declaration,
	}
}
