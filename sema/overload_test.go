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
	"github.com/onflow/declcheck/sema"
	. "github.com/onflow/declcheck/test_utils/sema_utils"
)

// requireReturnedInvocation returns the invocation returned by the first statement of the named function.
func requireReturnedInvocation(t *testing.T, checker *sema.Checker, name string) *ast.InvocationExpression {
	t.Helper()

	function := RequireMember[*ast.FunctionDeclaration](t, checker.Module, name)
	require.NotNil(t, function.Body)
	require.NotEmpty(t, function.Body.Statements)

	returnStatement, ok := function.Body.Statements[0].(*ast.ReturnStatement)
	require.True(t, ok)

	invocation, ok := returnStatement.Expression.(*ast.InvocationExpression)
	require.True(t, ok)

	return invocation
}

func TestCheckOverloadResolution(t *testing.T) {

	t.Parallel()

	t.Run("exact match is preferred", func(t *testing.T) {

		t.Parallel()

		checker, err := ParseAndCheck(t, `
          int f(float x) { return 1; }
          int f(int x) { return x; }
          int g() { return f(1); }
          int h() { return f(1.5); }
        `)
		require.NoError(t, err)

		target, ok := checker.Elaboration.InvocationTarget(requireReturnedInvocation(t, checker, "g"))
		require.True(t, ok)
		assert.Same(t, checker.Module.Members[1], target.Declaration)

		target, ok = checker.Elaboration.InvocationTarget(requireReturnedInvocation(t, checker, "h"))
		require.True(t, ok)
		assert.Same(t, checker.Module.Members[0], target.Declaration)
	})

	t.Run("conversion", func(t *testing.T) {

		t.Parallel()

		checker, err := ParseAndCheck(t, `
          float f(float x) { return x; }
          float g() { return f(1); }
        `)
		require.NoError(t, err)

		invocation := requireReturnedInvocation(t, checker, "g")
		assert.Equal(t, sema.FloatType, checker.Elaboration.ExpressionType(invocation))
	})

	t.Run("ambiguous", func(t *testing.T) {

		t.Parallel()

		_, err := ParseAndCheck(t, `
          int f(int x, float y) { return x; }
          int f(float x, int y) { return y; }
          int g() { return f(1, 1); }
        `)

		errs := RequireCheckerErrors(t, err, 1)

		var ambiguousErr *sema.AmbiguousCallError
		require.ErrorAs(t, errs[0], &ambiguousErr)
		assert.Equal(t, "f", ambiguousErr.Name)
		assert.Equal(t, 2, ambiguousErr.CandidateCount)
	})

	t.Run("no applicable overload", func(t *testing.T) {

		t.Parallel()

		_, err := ParseAndCheck(t, `
          int f(int x) { return x; }
          int g() { return f(true); }
        `)

		errs := RequireCheckerErrors(t, err, 1)

		var noOverloadErr *sema.NoApplicableOverloadError
		require.ErrorAs(t, errs[0], &noOverloadErr)
		assert.Equal(t, "f", noOverloadErr.Name)
		assert.Equal(t, []sema.Type{sema.BoolType}, noOverloadErr.ArgumentTypes)
	})

	t.Run("default parameter", func(t *testing.T) {

		t.Parallel()

		_, err := ParseAndCheck(t, `
          int f(int x, int y = 2) { return x; }
          int g() { return f(1); }
        `)
		require.NoError(t, err)
	})

	t.Run("redeclaration family is one candidate", func(t *testing.T) {

		t.Parallel()

		checker, err := ParseAndCheck(t, `
          int f(int x);
          int f(int x) { return x; }
          int g() { return f(1); }
        `)
		require.NoError(t, err)

		target, ok := checker.Elaboration.InvocationTarget(requireReturnedInvocation(t, checker, "g"))
		require.True(t, ok)
		assert.Same(t, checker.Module.Members[0], target.Declaration)
	})
}

func TestCheckGenericInvocation(t *testing.T) {

	t.Parallel()

	t.Run("inferred argument", func(t *testing.T) {

		t.Parallel()

		checker, err := ParseAndCheck(t, `
          T identity<T>(T value) { return value; }
          int g() { return identity(1); }
        `)
		require.NoError(t, err)

		invocation := requireReturnedInvocation(t, checker, "g")
		assert.Equal(t, sema.IntType, checker.Elaboration.ExpressionType(invocation))

		target, ok := checker.Elaboration.InvocationTarget(invocation)
		require.True(t, ok)

		substitution, ok := target.Substitutions.(*sema.GenericSubstitution)
		require.True(t, ok)
		assert.Equal(t, []sema.Val{sema.IntType}, substitution.Args)
	})

	t.Run("constraint satisfied", func(t *testing.T) {

		t.Parallel()

		_, err := ParseAndCheck(t, `
          interface IFoo {
              int foo();
          }

          struct S : IFoo {
              int foo() { return 1; }
          }

          int call<T : IFoo>(T x) { return x.foo(); }
          int g(S s) { return call(s); }
        `)
		require.NoError(t, err)
	})

	t.Run("constraint not satisfied", func(t *testing.T) {

		t.Parallel()

		_, err := ParseAndCheck(t, `
          interface IFoo {
              int foo();
          }

          struct N {}

          int call<T : IFoo>(T x) { return x.foo(); }
          int g(N n) { return call(n); }
        `)

		errs := RequireCheckerErrors(t, err, 1)

		var noOverloadErr *sema.NoApplicableOverloadError
		require.ErrorAs(t, errs[0], &noOverloadErr)
		assert.Equal(t, "call", noOverloadErr.Name)
	})
}

func TestCheckMutatingCall(t *testing.T) {

	t.Parallel()

	t.Run("immutable receiver", func(t *testing.T) {

		t.Parallel()

		_, err := ParseAndCheck(t, `
          struct S {
              int n;
              mutating void reset() { this.n = 0; }
              void bad() { reset(); }
          }
        `)

		errs := RequireCheckerErrors(t, err, 1)

		var mutatingErr *sema.MutatingCallOnImmutableReceiverError
		require.ErrorAs(t, errs[0], &mutatingErr)
		assert.Equal(t, "reset", mutatingErr.Name)
	})

	t.Run("mutable receiver", func(t *testing.T) {

		t.Parallel()

		_, err := ParseAndCheck(t, `
          struct S {
              int n;
              mutating void reset() { this.n = 0; }
              mutating void clear() { this.reset(); }
          }
        `)
		require.NoError(t, err)
	})

	t.Run("assignment in non-mutating method", func(t *testing.T) {

		t.Parallel()

		_, err := ParseAndCheck(t, `
          struct S {
              int n;
              void reset() { this.n = 0; }
          }
        `)

		errs := RequireCheckerErrors(t, err, 1)
		require.IsType(t, &sema.AssignmentToImmutableThisError{}, errs[0])
	})
}
