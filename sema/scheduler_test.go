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
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"

	"github.com/onflow/declcheck/ast"
	"github.com/onflow/declcheck/common"
	"github.com/onflow/declcheck/parser"
	"github.com/onflow/declcheck/sema"
	. "github.com/onflow/declcheck/test_utils/common_utils"
	. "github.com/onflow/declcheck/test_utils/sema_utils"
)

func newUncheckedChecker(t *testing.T, code string) *sema.Checker {
	arena := ast.NewArena()
	module, err := parser.ParseModule(arena, []byte(code), TestLocation)
	require.NoError(t, err)

	checker, err := sema.NewChecker(arena, module, nil, nil)
	require.NoError(t, err)
	return checker
}

func TestCheckAllDeclarationsReachChecked(t *testing.T) {

	t.Parallel()

	checker, err := ParseAndCheck(t, `
      interface IFoo {
          int foo(int x);
          property size : int { get; }
      }

      struct S : IFoo {
          int n;
          int foo(int x) { return x + this.n; }
          property size : int { get { return this.n; } }
          __init(int n) { this.n = n; }
      }

      enum Color { Red, Green }

      T identity<T>(T value) { return value; }
    `)
	require.NoError(t, err)

	checker.Arena.Foreach(func(declaration ast.Declaration) {
		assert.Equal(t,
			common.DeclCheckStateChecked,
			checker.CheckState(declaration),
			"%s %s",
			declaration.DeclarationKind(),
			declaration.DeclarationIdentifier().Identifier,
		)
	})
}

func TestCheckStateIsMonotonic(t *testing.T) {

	t.Parallel()

	checker := newUncheckedChecker(t, `
      typedef A B;
      typedef int A;
    `)

	a := RequireMember[*ast.TypeAliasDeclaration](t, checker.Module, "A")
	b := RequireMember[*ast.TypeAliasDeclaration](t, checker.Module, "B")

	assert.Equal(t, common.DeclCheckStateUnchecked, checker.CheckState(b))

	checker.EnsureDeclaration(b, common.DeclCheckStateSignatureChecked)
	assert.Equal(t, common.DeclCheckStateSignatureChecked, checker.CheckState(b))

	// the alias was needed on demand
	assert.GreaterOrEqual(t, checker.CheckState(a), common.DeclCheckStateSignatureChecked)

	assert.Equal(t, sema.IntType, checker.Elaboration.DeclarationType(b))

	checker.EnsureDeclaration(b, common.DeclCheckStateModifiersChecked)
	assert.Equal(t, common.DeclCheckStateSignatureChecked, checker.CheckState(b))

	assert.Empty(t, checker.Errors())
}

func TestCheckStateNeverDecreases(t *testing.T) {

	t.Parallel()

	const code = `
      interface IFoo {
          int foo();
      }

      struct S : IFoo {
          int n;
          int foo() { return this.n; }
      }

      typedef S Alias;

      const int C = 1 + 2;

      T identity<T>(T value) { return value; }
    `

	memberCount := len(newUncheckedChecker(t, code).Module.Members)
	stateCount := common.DeclCheckStateCount

	properties := gopter.NewProperties(nil)

	properties.Property("ensuring only advances", prop.ForAll(
		func(requests []int) bool {
			checker := newUncheckedChecker(t, code)
			members := checker.Module.Members

			for _, request := range requests {
				member := members[request/stateCount]
				target := common.DeclCheckState(request % stateCount)

				before := checker.CheckState(member)
				checker.EnsureDeclaration(member, target)
				after := checker.CheckState(member)

				if after < before || after < target {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, memberCount*stateCount-1)),
	))

	properties.TestingRun(t)
}

func TestCheckCyclicReference(t *testing.T) {

	t.Parallel()

	t.Run("type aliases", func(t *testing.T) {

		t.Parallel()

		checker, err := ParseAndCheck(t, `
          typedef B A;
          typedef A B;
        `)

		errs := RequireCheckerErrors(t, err, 1)

		var cyclicErr *sema.CyclicReferenceError
		require.ErrorAs(t, errs[0], &cyclicErr)
		assert.Equal(t, "A", cyclicErr.Name)
		assert.Equal(t, common.DeclarationKindTypeAlias, cyclicErr.Kind)

		a := RequireMember[*ast.TypeAliasDeclaration](t, checker.Module, "A")
		assert.True(t, checker.Elaboration.IsPoisoned(a))
		assert.Equal(t, sema.ErrorType, checker.Elaboration.DeclarationType(a))
	})

	t.Run("self-referential alias", func(t *testing.T) {

		t.Parallel()

		_, err := ParseAndCheck(t, `
          typedef A A;
        `)

		errs := RequireCheckerErrors(t, err, 1)
		require.IsType(t, &sema.CyclicReferenceError{}, errs[0])
	})

	t.Run("self-referential constant", func(t *testing.T) {

		t.Parallel()

		checker, err := ParseAndCheck(t, `
          const int A = A;
          const int B = A + 1;
        `)

		errs := RequireCheckerErrors(t, err, 1)

		var cyclicErr *sema.CyclicReferenceError
		require.ErrorAs(t, errs[0], &cyclicErr)
		assert.Equal(t, "A", cyclicErr.Name)
		assert.Equal(t, common.DeclarationKindConstant, cyclicErr.Kind)
		assert.NotEmpty(t, cyclicErr.DocumentationLink())

		a := RequireMember[*ast.VariableDeclaration](t, checker.Module, "A")
		assert.True(t, checker.Elaboration.IsPoisoned(a))
		assert.Equal(t, sema.ErrorType, checker.Elaboration.DeclarationType(a))
		assert.Nil(t, checker.Elaboration.ConstantValue(a))

		// uses of the poisoned constant are not reported again
		b := RequireMember[*ast.VariableDeclaration](t, checker.Module, "B")
		assert.False(t, checker.Elaboration.IsPoisoned(b))
		assert.Nil(t, checker.Elaboration.ConstantValue(b))
	})

	t.Run("mutually referential constants", func(t *testing.T) {

		t.Parallel()

		_, err := ParseAndCheck(t, `
          const int A = B;
          const int B = A;
        `)

		errs := RequireCheckerErrors(t, err, 1)

		var cyclicErr *sema.CyclicReferenceError
		require.ErrorAs(t, errs[0], &cyclicErr)
		assert.Equal(t, "A", cyclicErr.Name)
	})

	t.Run("unrelated declarations are checked", func(t *testing.T) {

		t.Parallel()

		checker, err := ParseAndCheck(t, `
          typedef B A;
          typedef A B;
          const int C = 1 + 2;
        `)

		RequireCheckerErrors(t, err, 1)

		c := RequireMember[*ast.VariableDeclaration](t, checker.Module, "C")
		assert.Equal(t,
			&sema.ConstantIntVal{Value: 3},
			checker.Elaboration.ConstantValue(c),
		)
	})
}

func TestCheckSkipChecking(t *testing.T) {

	t.Parallel()

	const code = `
      int f() { return true; }
    `

	t.Run("none", func(t *testing.T) {

		t.Parallel()

		_, err := ParseAndCheckWithOptions(t, code, ParseAndCheckOptions{
			Config: &sema.Config{
				SkipChecking: sema.SkipNone,
			},
		})

		errs := RequireCheckerErrors(t, err, 1)
		require.IsType(t, &sema.TypeMismatchError{}, errs[0])
	})

	t.Run("all bodies", func(t *testing.T) {

		t.Parallel()

		checker, err := ParseAndCheckWithOptions(t, code, ParseAndCheckOptions{
			Config: &sema.Config{
				SkipChecking: sema.SkipAllBodies,
			},
		})
		require.NoError(t, err)

		f := RequireMember[*ast.FunctionDeclaration](t, checker.Module, "f")
		assert.Equal(t, common.DeclCheckStateChecked, checker.CheckState(f))
		assert.Equal(t, sema.IntType, checker.Elaboration.ResultType(f))
	})

	t.Run("bodies outside primary module", func(t *testing.T) {

		t.Parallel()

		_, err := ParseAndCheckWithOptions(t,
			`
              import Lib;

              int g() { return f(); }
            `,
			ParseAndCheckOptions{
				Config: &sema.Config{
					SkipChecking: sema.SkipBodiesOutsidePrimaryModule,
				},
				Imports: map[string]string{
					"Lib": code,
				},
			},
		)
		require.NoError(t, err)
	})
}

func TestCheckImports(t *testing.T) {

	t.Parallel()

	t.Run("imported declarations are visible", func(t *testing.T) {

		t.Parallel()

		_, err := ParseAndCheckWithOptions(t,
			`
              import Lib;

              struct S : IFoo {
                  int foo() { return 1; }
              }
            `,
			ParseAndCheckOptions{
				Imports: map[string]string{
					"Lib": `interface IFoo { int foo(); }`,
				},
			},
		)
		require.NoError(t, err)
	})

	t.Run("missing module", func(t *testing.T) {

		t.Parallel()

		_, err := ParseAndCheckWithOptions(t,
			`import Missing;`,
			ParseAndCheckOptions{
				Imports: map[string]string{},
			},
		)

		errs := RequireCheckerErrors(t, err, 1)

		var importErr *sema.ImportNotFoundError
		require.ErrorAs(t, errs[0], &importErr)
		assert.Equal(t, "Missing", importErr.Name)
	})
}

func TestCheckErrorShortCircuiting(t *testing.T) {

	t.Parallel()

	const code = `
      int f() { return true; }
      int g() { return false; }
    `

	_, err := ParseAndCheck(t, code)
	RequireCheckerErrors(t, err, 2)

	_, err = ParseAndCheckWithOptions(t, code, ParseAndCheckOptions{
		Config: &sema.Config{
			ErrorShortCircuitingEnabled: true,
		},
	})
	RequireCheckerErrors(t, err, 1)
}

func TestCheckTracing(t *testing.T) {

	t.Parallel()

	var operations []string
	var conformanceAttributes []attribute.KeyValue

	_, err := ParseAndCheckWithOptions(t,
		`
          interface IFoo { int bar(); }

          struct S : IFoo {
              int bar(int x = 0) { return x; }
          }
        `,
		ParseAndCheckOptions{
			Config: &sema.Config{
				TracingEnabled: true,
				OnRecordTrace: func(
					_ *sema.Checker,
					operationName string,
					_ time.Duration,
					attrs []attribute.KeyValue,
				) {
					operations = append(operations, operationName)
					if operationName == "conformance.check" {
						conformanceAttributes = attrs
					}
				},
			},
		},
	)
	require.NoError(t, err)

	assert.Contains(t, operations, "conformance.check")
	assert.Contains(t, operations, "synthesize.function")

	hasPhase := false
	for _, operation := range operations {
		if strings.HasPrefix(operation, "phase.") {
			hasPhase = true
			break
		}
	}
	assert.True(t, hasPhase)

	assert.Contains(t,
		conformanceAttributes,
		attribute.Int("Requirement count", 1),
	)
}

func TestCheckLogging(t *testing.T) {

	t.Parallel()

	var buffer bytes.Buffer
	logger := zerolog.New(&buffer).Level(zerolog.DebugLevel)

	_, err := ParseAndCheckWithOptions(t,
		`
          interface IFoo { int foo(); }

          struct S : IFoo {
              int foo() { return 1; }
          }
        `,
		ParseAndCheckOptions{
			Config: &sema.Config{
				Logger: &logger,
			},
		},
	)
	require.NoError(t, err)

	output := buffer.String()
	assert.Contains(t, output, "checked conformance")
	assert.Contains(t, output, `"location":"test"`)
}
