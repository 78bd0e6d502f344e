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

package sema_utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/declcheck/ast"
	"github.com/onflow/declcheck/common"
	"github.com/onflow/declcheck/errors"
	"github.com/onflow/declcheck/parser"
	"github.com/onflow/declcheck/sema"
	. "github.com/onflow/declcheck/test_utils/common_utils"
)

type ParseAndCheckOptions struct {
	Location common.Location
	Config   *sema.Config
	// Imports are the sources of the modules which can be imported, by name
	Imports map[string]string
}

func ParseAndCheck(t testing.TB, code string) (*sema.Checker, error) {
	return ParseAndCheckWithOptions(t, code, ParseAndCheckOptions{})
}

func ParseAndCheckWithOptions(
	t testing.TB,
	code string,
	options ParseAndCheckOptions,
) (*sema.Checker, error) {

	if options.Location == nil {
		options.Location = TestLocation
	}

	arena := ast.NewArena()

	module, err := parser.ParseModule(arena, []byte(code), options.Location)
	if !assert.NoError(t, err) {
		assert.FailNow(t, err.Error())
		return nil, err
	}

	var config sema.Config
	if options.Config != nil {
		config = *options.Config
	}

	if options.Imports != nil && config.ImportHandler == nil {
		imported := map[string]*ast.ModuleDeclaration{}

		config.ImportHandler = func(_ *sema.Checker, name string, _ ast.Range) (*ast.ModuleDeclaration, error) {
			if module, ok := imported[name]; ok {
				return module, nil
			}

			importedCode, ok := options.Imports[name]
			if !ok {
				return nil, errors.NewDefaultUserError("unknown module %s", name)
			}

			module, err := parser.ParseModule(arena, []byte(importedCode), common.StringLocation(name))
			if err != nil {
				return nil, err
			}
			imported[name] = module
			return module, nil
		}
	}

	checker, err := sema.NewChecker(
		arena,
		module,
		options.Location,
		&config,
	)
	if err != nil {
		return checker, err
	}

	err = checker.Check()
	return checker, err
}

// RequireCheckerErrors requires the given error to be a checker error with the given number of errors,
// and returns them.
func RequireCheckerErrors(t testing.TB, err error, count int) []error {
	t.Helper()

	if count <= 0 && err == nil {
		return nil
	}

	require.Error(t, err)

	var checkerErr *sema.CheckerError
	require.ErrorAs(t, err, &checkerErr)

	errs := checkerErr.Errors

	require.Len(t, errs, count)

	// Get the error message, to check that it can be successfully generated

	for _, checkerErr := range errs {
		_ = checkerErr.Error()

		if hasSecondaryError, ok := checkerErr.(errors.SecondaryError); ok {
			_ = hasSecondaryError.SecondaryError()
		}
	}

	return errs
}

// RequireMember returns the member of the given container with the given name.
// Generic members are returned unwrapped.
func RequireMember[T ast.Declaration](t testing.TB, container ast.Declaration, name string) T {
	t.Helper()

	for _, member := range container.DeclarationMembers() {
		if member.DeclarationIdentifier().Identifier != name {
			continue
		}
		if generic, ok := member.(*ast.GenericDeclaration); ok {
			member = generic.Inner
		}
		if typed, ok := member.(T); ok {
			return typed
		}
	}

	var empty T
	require.FailNow(t, "missing member", "%s", name)
	return empty
}

// RequireGeneric returns the generic member of the given container with the given name.
func RequireGeneric(t testing.TB, container ast.Declaration, name string) *ast.GenericDeclaration {
	t.Helper()

	for _, member := range container.DeclarationMembers() {
		generic, ok := member.(*ast.GenericDeclaration)
		if ok && generic.Identifier.Identifier == name {
			return generic
		}
	}

	require.FailNow(t, "missing generic", "%s", name)
	return nil
}
