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

func TestCheckStructBases(t *testing.T) {

	t.Parallel()

	t.Run("struct and interfaces", func(t *testing.T) {

		t.Parallel()

		_, err := ParseAndCheck(t, `
          struct A {}
          interface I {}
          struct B : A, I {}
        `)
		require.NoError(t, err)
	})

	t.Run("struct base not first", func(t *testing.T) {

		t.Parallel()

		_, err := ParseAndCheck(t, `
          struct A {}
          interface I {}
          struct B : I, A {}
        `)
		errs := RequireCheckerErrors(t, err, 1)
		require.IsType(t, &sema.StructBaseMustBeListedFirstError{}, errs[0])
	})

	t.Run("primitive base", func(t *testing.T) {

		t.Parallel()

		_, err := ParseAndCheck(t, `
          struct S : int {}
        `)
		errs := RequireCheckerErrors(t, err, 1)
		var baseErr *sema.BaseOfStructMustBeStructOrInterfaceError
		require.ErrorAs(t, errs[0], &baseErr)
		assert.Equal(t, sema.IntType, baseErr.Type)
	})
}

func TestCheckInterfaceBases(t *testing.T) {

	t.Parallel()

	t.Run("non-interface base", func(t *testing.T) {

		t.Parallel()

		_, err := ParseAndCheck(t, `
          struct S {}
          interface I : S {}
        `)
		errs := RequireCheckerErrors(t, err, 1)
		require.IsType(t, &sema.BaseOfInterfaceMustBeInterfaceError{}, errs[0])
	})

	t.Run("cyclic inheritance", func(t *testing.T) {

		t.Parallel()

		checker, err := ParseAndCheck(t, `
          interface A : B {
              int a();
          }

          interface B : A {
              int b();
          }

          struct S : A {
              int a() { return 1; }
              int b() { return 2; }
          }
        `)
		require.NoError(t, err)

		a := RequireMember[*ast.InterfaceDeclaration](t, checker.Module, "A")
		b := RequireMember[*ast.InterfaceDeclaration](t, checker.Module, "B")

		tableA := requireWitnessTable(t, checker, "S")
		assert.True(t, tableA.IsComplete())
		assert.False(t, tableA.IsFailed())

		witness, ok := tableA.Get(ast.Inheritances(a)[0])
		require.True(t, ok)
		require.Equal(t, sema.RequirementWitnessKindWitnessTable, witness.Kind)

		tableB := witness.Table
		assert.Equal(t, "B", tableB.BaseType.String())

		// the conformance to A required by B is the table in progress
		witness, ok = tableB.Get(ast.Inheritances(b)[0])
		require.True(t, ok)
		assert.Same(t, tableA, witness.Table)
	})
}

func TestCheckEnumBases(t *testing.T) {

	t.Parallel()

	t.Run("tag type and interface", func(t *testing.T) {

		t.Parallel()

		checker, err := ParseAndCheck(t, `
          interface I {}
          enum E : int, I { A, B }
        `)
		require.NoError(t, err)

		enum := RequireMember[*ast.EnumDeclaration](t, checker.Module, "E")
		assert.Equal(t, sema.IntType, checker.Elaboration.EnumTagType(enum))
	})

	t.Run("default tag type", func(t *testing.T) {

		t.Parallel()

		checker, err := ParseAndCheck(t, `
          enum E { A }
        `)
		require.NoError(t, err)

		enum := RequireMember[*ast.EnumDeclaration](t, checker.Module, "E")
		assert.Equal(t, sema.IntType, checker.Elaboration.EnumTagType(enum))
	})

	t.Run("tag type not first", func(t *testing.T) {

		t.Parallel()

		_, err := ParseAndCheck(t, `
          interface I {}
          enum E : I, int { A }
        `)
		errs := RequireCheckerErrors(t, err, 1)
		require.IsType(t, &sema.EnumTagTypeMustBeListedFirstError{}, errs[0])
	})

	t.Run("struct base", func(t *testing.T) {

		t.Parallel()

		_, err := ParseAndCheck(t, `
          struct S {}
          enum E : S { A }
        `)
		errs := RequireCheckerErrors(t, err, 1)
		require.IsType(t, &sema.BaseOfEnumMustBeInterfaceError{}, errs[0])
	})
}

func TestCheckExtensionBases(t *testing.T) {

	t.Parallel()

	t.Run("non-interface base", func(t *testing.T) {

		t.Parallel()

		_, err := ParseAndCheck(t, `
          struct S {}
          extension S : int {}
        `)
		errs := RequireCheckerErrors(t, err, 1)
		require.IsType(t, &sema.BaseOfExtensionMustBeInterfaceError{}, errs[0])
	})

	t.Run("primitive target", func(t *testing.T) {

		t.Parallel()

		_, err := ParseAndCheck(t, `
          extension int {}
        `)
		errs := RequireCheckerErrors(t, err, 1)
		require.IsType(t, &sema.InvalidExtensionTargetError{}, errs[0])
	})

	t.Run("interface extension with members", func(t *testing.T) {

		t.Parallel()

		_, err := ParseAndCheck(t, `
          interface I {}
          extension I {
              void f() {}
          }
        `)
		errs := RequireCheckerErrors(t, err, 1)
		require.IsType(t, &sema.InvalidExtensionTargetError{}, errs[0])
	})

	t.Run("interface extension with bases", func(t *testing.T) {

		t.Parallel()

		_, err := ParseAndCheck(t, `
          interface I {}
          interface J {}
          extension I : J {}
        `)
		require.NoError(t, err)
	})
}

func TestCheckAssociatedTypeOutsideInterface(t *testing.T) {

	t.Parallel()

	_, err := ParseAndCheck(t, `
      struct S {
          associatedtype T;
      }
    `)
	errs := RequireCheckerErrors(t, err, 1)
	require.IsType(t, &sema.AssociatedTypeOutsideInterfaceError{}, errs[0])
}
