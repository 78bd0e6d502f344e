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

package sema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/declcheck/ast"
	"github.com/onflow/declcheck/common"
	"github.com/onflow/declcheck/sema"
	. "github.com/onflow/declcheck/test_utils/sema_utils"
)

func moduleFunction(t *testing.T, checker *sema.Checker, index int) *ast.FunctionDeclaration {
	t.Helper()

	member := checker.Module.Members[index]
	if generic, ok := member.(*ast.GenericDeclaration); ok {
		member = generic.Inner
	}

	function, ok := member.(*ast.FunctionDeclaration)
	require.True(t, ok, "member %d is not a function", index)
	return function
}

func TestCheckFunctionRedeclaration(t *testing.T) {

	t.Parallel()

	t.Run("overloads", func(t *testing.T) {

		t.Parallel()

		checker, err := ParseAndCheck(t, `
          int f(int x) { return x; }
          int f(float x) { return 1; }
          int f(out int x) { return 1; }
          prefix int f(int x) { return x; }
        `)
		require.NoError(t, err)

		for i := range checker.Module.Members {
			function := moduleFunction(t, checker, i)
			assert.Nil(t, checker.Elaboration.PrimaryDeclaration(function))
			assert.Equal(t,
				[]ast.Declaration{function},
				checker.Elaboration.RedeclarationFamily(function),
			)
		}
	})

	t.Run("prototype and definition", func(t *testing.T) {

		t.Parallel()

		checker, err := ParseAndCheck(t, `
          int f(int x);
          int f(int y) { return y; }
        `)
		require.NoError(t, err)

		prototype := moduleFunction(t, checker, 0)
		definition := moduleFunction(t, checker, 1)

		assert.Same(t, prototype, checker.Elaboration.PrimaryDeclaration(definition))
		assert.Same(t, prototype, checker.Elaboration.PrimaryDeclaration(prototype))
		assert.Same(t, definition, checker.Elaboration.NextDeclaration(prototype))
		assert.Nil(t, checker.Elaboration.NextDeclaration(definition))

		assert.Equal(t,
			[]ast.Declaration{prototype, definition},
			checker.Elaboration.RedeclarationFamily(definition),
		)
	})

	t.Run("family of three", func(t *testing.T) {

		t.Parallel()

		checker, err := ParseAndCheck(t, `
          void f(int x);
          void f(int y);
          void f(int z) {}
        `)
		require.NoError(t, err)

		first := moduleFunction(t, checker, 0)
		second := moduleFunction(t, checker, 1)
		third := moduleFunction(t, checker, 2)

		assert.Equal(t,
			[]ast.Declaration{first, second, third},
			checker.Elaboration.RedeclarationFamily(second),
		)
	})

	t.Run("different return type", func(t *testing.T) {

		t.Parallel()

		checker, err := ParseAndCheck(t, `
          int f(int x);
          float f(int x);
        `)

		errs := RequireCheckerErrors(t, err, 1)

		var redeclarationErr *sema.FunctionRedeclarationWithDifferentReturnTypeError
		require.ErrorAs(t, errs[0], &redeclarationErr)
		assert.Equal(t, "f", redeclarationErr.Name)
		assert.Equal(t, sema.FloatType, redeclarationErr.ResultType)
		assert.Equal(t, sema.IntType, redeclarationErr.PreviousResultType)
		require.NotNil(t, redeclarationErr.PreviousPos)
		assert.Equal(t, 2, redeclarationErr.PreviousPos.Line)

		// the family is still formed
		assert.Len(t,
			checker.Elaboration.RedeclarationFamily(moduleFunction(t, checker, 1)),
			2,
		)
	})

	t.Run("body redefinition", func(t *testing.T) {

		t.Parallel()

		_, err := ParseAndCheck(t, `
          int f() { return 1; }
          int f() { return 2; }
        `)

		errs := RequireCheckerErrors(t, err, 1)

		var redefinitionErr *sema.FunctionRedefinitionError
		require.ErrorAs(t, errs[0], &redefinitionErr)
		assert.Equal(t, "f", redefinitionErr.Name)
		assert.Equal(t, "", redefinitionErr.Target)
		assert.Len(t, redefinitionErr.PreviousPositions, 1)
	})

	t.Run("target intrinsics", func(t *testing.T) {

		t.Parallel()

		checker, err := ParseAndCheck(t, `
          __target_intrinsic(glsl) int f();
          __target_intrinsic(hlsl) int f();
          __specialized_for_target(spirv) int f() { return 1; }
          int f() { return 2; }
        `)
		require.NoError(t, err)

		assert.Len(t,
			checker.Elaboration.RedeclarationFamily(moduleFunction(t, checker, 0)),
			4,
		)
	})

	t.Run("target intrinsic redefinition", func(t *testing.T) {

		t.Parallel()

		_, err := ParseAndCheck(t, `
          __target_intrinsic(glsl) int f();
          __target_intrinsic(hlsl) int f();
          __target_intrinsic(glsl) int f();
        `)

		errs := RequireCheckerErrors(t, err, 1)

		var redefinitionErr *sema.FunctionRedefinitionError
		require.ErrorAs(t, errs[0], &redefinitionErr)
		assert.Equal(t, "glsl", redefinitionErr.Target)
		require.Len(t, redefinitionErr.PreviousPositions, 1)
		assert.Equal(t, 2, redefinitionErr.PreviousPositions[0].Line)
	})

	t.Run("generic redeclaration", func(t *testing.T) {

		t.Parallel()

		checker, err := ParseAndCheck(t, `
          T f<T>(T x);
          U f<U>(U y) { return y; }
        `)
		require.NoError(t, err)

		assert.Equal(t,
			[]ast.Declaration{
				moduleFunction(t, checker, 0),
				moduleFunction(t, checker, 1),
			},
			checker.Elaboration.RedeclarationFamily(moduleFunction(t, checker, 1)),
		)
	})

	t.Run("generic and non-generic are overloads", func(t *testing.T) {

		t.Parallel()

		checker, err := ParseAndCheck(t, `
          T f<T>(T x);
          int f(int x) { return x; }
        `)
		require.NoError(t, err)

		assert.Nil(t, checker.Elaboration.PrimaryDeclaration(moduleFunction(t, checker, 1)))
	})

	t.Run("generic with different constraints are overloads", func(t *testing.T) {

		t.Parallel()

		checker, err := ParseAndCheck(t, `
          interface IFoo {}

          T f<T : IFoo>(T x);
          T f<T>(T x);
        `)
		require.NoError(t, err)

		assert.Nil(t, checker.Elaboration.PrimaryDeclaration(moduleFunction(t, checker, 2)))
	})
}

func TestCheckRedeclaration(t *testing.T) {

	t.Parallel()

	t.Run("struct", func(t *testing.T) {

		t.Parallel()

		_, err := ParseAndCheck(t, `
          struct S {}
          struct S {}
        `)

		errs := RequireCheckerErrors(t, err, 1)

		var redeclarationErr *sema.RedeclarationError
		require.ErrorAs(t, errs[0], &redeclarationErr)
		assert.Equal(t, "S", redeclarationErr.Name)
		assert.Equal(t, common.DeclarationKindStructure, redeclarationErr.Kind)
		require.NotNil(t, redeclarationErr.PreviousPos)
		assert.Equal(t, 2, redeclarationErr.PreviousPos.Line)
		assert.Equal(t, 3, redeclarationErr.Pos.Line)
	})

	t.Run("variable and function", func(t *testing.T) {

		t.Parallel()

		_, err := ParseAndCheck(t, `
          int x;
          int x() { return 1; }
        `)

		errs := RequireCheckerErrors(t, err, 1)

		var redeclarationErr *sema.RedeclarationError
		require.ErrorAs(t, errs[0], &redeclarationErr)
		assert.Equal(t, "x", redeclarationErr.Name)
		assert.Equal(t, common.DeclarationKindFunction, redeclarationErr.Kind)
	})

	t.Run("parameters", func(t *testing.T) {

		t.Parallel()

		_, err := ParseAndCheck(t, `
          void f(int x, int x) {}
        `)

		errs := RequireCheckerErrors(t, err, 1)

		var redeclarationErr *sema.RedeclarationError
		require.ErrorAs(t, errs[0], &redeclarationErr)
		assert.Equal(t, common.DeclarationKindParameter, redeclarationErr.Kind)
	})

	t.Run("members of different types", func(t *testing.T) {

		t.Parallel()

		_, err := ParseAndCheck(t, `
          struct A { int x; }
          struct B { int x; }
        `)
		require.NoError(t, err)
	})

	t.Run("enum cases", func(t *testing.T) {

		t.Parallel()

		_, err := ParseAndCheck(t, `
          enum Color { Red, Red }
        `)

		errs := RequireCheckerErrors(t, err, 1)

		var redeclarationErr *sema.RedeclarationError
		require.ErrorAs(t, errs[0], &redeclarationErr)
		assert.Equal(t, common.DeclarationKindEnumCase, redeclarationErr.Kind)
	})
}
