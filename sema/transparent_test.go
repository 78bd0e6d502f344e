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

func TestCheckTransparentMembers(t *testing.T) {

	t.Parallel()

	t.Run("declaration", func(t *testing.T) {

		t.Parallel()

		checker, err := ParseAndCheck(t, `
          struct Inner {
              int foo() { return 1; }
          }

          struct S {
              __transparent Inner inner;
          }
        `)
		require.NoError(t, err)

		s := RequireMember[*ast.StructDeclaration](t, checker.Module, "S")
		inner := RequireMember[*ast.VariableDeclaration](t, s, "inner")
		assert.False(t, checker.Elaboration.IsPoisoned(inner))
	})

	t.Run("member access", func(t *testing.T) {

		t.Parallel()

		checker, err := ParseAndCheck(t, `
          struct Inner {
              int foo() { return 1; }
          }

          struct S {
              __transparent Inner inner;
              int bar() { return this.foo(); }
              int baz() { return foo(); }
          }
        `)
		require.NoError(t, err)

		s := RequireMember[*ast.StructDeclaration](t, checker.Module, "S")
		bar := RequireMember[*ast.FunctionDeclaration](t, s, "bar")
		assert.Equal(t, sema.IntType, checker.Elaboration.ResultType(bar))
	})

	t.Run("unknown member", func(t *testing.T) {

		t.Parallel()

		_, err := ParseAndCheck(t, `
          struct Inner {
              int foo() { return 1; }
          }

          struct S {
              __transparent Inner inner;
              int bar() { return this.qux(); }
          }
        `)

		errs := RequireCheckerErrors(t, err, 1)
		require.IsType(t, &sema.NotDeclaredMemberError{}, errs[0])
	})

	t.Run("not an exact witness", func(t *testing.T) {

		t.Parallel()

		checker, err := ParseAndCheck(t, `
          interface IFoo {
              int foo();
          }

          struct Inner {
              int foo() { return 1; }
          }

          struct S : IFoo {
              __transparent Inner inner;
          }
        `)
		require.NoError(t, err)

		iface := RequireMember[*ast.InterfaceDeclaration](t, checker.Module, "IFoo")
		requirement := RequireMember[*ast.FunctionDeclaration](t, iface, "foo")

		innerStruct := RequireMember[*ast.StructDeclaration](t, checker.Module, "Inner")
		innerFoo := RequireMember[*ast.FunctionDeclaration](t, innerStruct, "foo")

		table := requireWitnessTable(t, checker, "S")
		assert.False(t, table.IsFailed())

		witness, ok := table.Get(requirement)
		require.True(t, ok)
		require.Equal(t, sema.RequirementWitnessKindDeclRef, witness.Kind)

		// the member reached through `inner` is only called by a forwarding function
		assert.NotSame(t, innerFoo, witness.DeclRef.Declaration)
		assert.True(t, checker.Elaboration.IsSynthesized(witness.DeclRef.Declaration))
	})
}
