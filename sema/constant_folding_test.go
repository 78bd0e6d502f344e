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
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/declcheck/ast"
	"github.com/onflow/declcheck/sema"
	. "github.com/onflow/declcheck/test_utils/sema_utils"
)

func foldedConstant(t *testing.T, checker *sema.Checker, name string) sema.Val {
	variable := RequireMember[*ast.VariableDeclaration](t, checker.Module, name)
	return checker.Elaboration.ConstantValue(variable)
}

func TestCheckConstantFoldingProperties(t *testing.T) {

	t.Parallel()

	properties := gopter.NewProperties(nil)

	foldsTo := func(operator string, expected func(a, b int64) int64) func(a, b int32) bool {
		return func(a, b int32) bool {
			checker, err := ParseAndCheck(t,
				fmt.Sprintf(
					"const int A = %d;\nconst int B = %d;\nconst int C = A %s B;",
					a, b, operator,
				),
			)
			if err != nil {
				return false
			}

			val, ok := foldedConstant(t, checker, "C").(*sema.ConstantIntVal)
			return ok && val.Value == expected(int64(a), int64(b))
		}
	}

	properties.Property("addition folds", prop.ForAll(
		foldsTo("+", func(a, b int64) int64 { return a + b }),
		gen.Int32(),
		gen.Int32(),
	))

	properties.Property("subtraction folds", prop.ForAll(
		foldsTo("-", func(a, b int64) int64 { return a - b }),
		gen.Int32(),
		gen.Int32(),
	))

	properties.Property("multiplication folds", prop.ForAll(
		foldsTo("*", func(a, b int64) int64 { return a * b }),
		gen.Int32(),
		gen.Int32(),
	))

	properties.TestingRun(t)
}

func TestCheckConstantFolding(t *testing.T) {

	t.Parallel()

	t.Run("references", func(t *testing.T) {

		t.Parallel()

		checker, err := ParseAndCheck(t, `
          const int B = A * 4;
          const int A = 1 + 2;
          const bool C = B > A;
        `)
		require.NoError(t, err)

		assert.Equal(t, &sema.ConstantIntVal{Value: 3}, foldedConstant(t, checker, "A"))
		assert.Equal(t, &sema.ConstantIntVal{Value: 12}, foldedConstant(t, checker, "B"))
		assert.Equal(t, &sema.ConstantBoolVal{Value: true}, foldedConstant(t, checker, "C"))
	})

	t.Run("negation", func(t *testing.T) {

		t.Parallel()

		checker, err := ParseAndCheck(t, `
          const int A = -(2 * 3);
          const bool B = !(A == -6);
        `)
		require.NoError(t, err)

		assert.Equal(t, &sema.ConstantIntVal{Value: -6}, foldedConstant(t, checker, "A"))
		assert.Equal(t, &sema.ConstantBoolVal{Value: false}, foldedConstant(t, checker, "B"))
	})

	t.Run("not constant", func(t *testing.T) {

		t.Parallel()

		checker, err := ParseAndCheck(t, `
          int v = 3;
          const int A = 1 / 0;
          const int B = v + 1;
        `)
		require.NoError(t, err)

		assert.Nil(t, foldedConstant(t, checker, "v"))
		assert.Nil(t, foldedConstant(t, checker, "A"))
		assert.Nil(t, foldedConstant(t, checker, "B"))
	})
}

func TestCheckEnumTags(t *testing.T) {

	t.Parallel()

	t.Run("implicit and explicit tags", func(t *testing.T) {

		t.Parallel()

		checker, err := ParseAndCheck(t, `
          const int Base = 10;

          enum Color {
              Red,
              Green = 5,
              Blue,
              Alpha = Base * 2,
          }
        `)
		require.NoError(t, err)

		enum := RequireMember[*ast.EnumDeclaration](t, checker.Module, "Color")
		assert.Equal(t, sema.IntType, checker.Elaboration.EnumTagType(enum))

		expected := map[string]int64{
			"Red":   0,
			"Green": 5,
			"Blue":  6,
			"Alpha": 20,
		}

		for name, tag := range expected {
			enumCase := RequireMember[*ast.EnumCaseDeclaration](t, enum, name)
			assert.Equal(t,
				&sema.ConstantIntVal{Value: tag},
				checker.Elaboration.EnumCaseTag(enumCase),
				name,
			)
		}
	})

	t.Run("case used as constant", func(t *testing.T) {

		t.Parallel()

		checker, err := ParseAndCheck(t, `
          enum Level { Low = 1, High }

          enum Derived { First = Level.High }
        `)
		require.NoError(t, err)

		derived := RequireMember[*ast.EnumDeclaration](t, checker.Module, "Derived")
		first := RequireMember[*ast.EnumCaseDeclaration](t, derived, "First")
		assert.Equal(t, &sema.ConstantIntVal{Value: 2}, checker.Elaboration.EnumCaseTag(first))
	})

	t.Run("non-constant tag", func(t *testing.T) {

		t.Parallel()

		_, err := ParseAndCheck(t, `
          int v = 1;

          enum E { A = v }
        `)

		errs := RequireCheckerErrors(t, err, 1)

		var tagErr *sema.NonConstantEnumTagError
		require.ErrorAs(t, errs[0], &tagErr)
		assert.Equal(t, "A", tagErr.Name)
	})
}
