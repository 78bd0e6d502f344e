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

// requireWitnessTable returns the witness table of the first conformance declared by the given type.
func requireWitnessTable(t *testing.T, checker *sema.Checker, typeName string) *sema.WitnessTable {
	t.Helper()

	var container ast.Declaration
	for _, member := range checker.Module.Members {
		if member.DeclarationIdentifier().Identifier == typeName {
			container = member
			break
		}
	}
	require.NotNil(t, container, "missing type %s", typeName)

	if generic, ok := container.(*ast.GenericDeclaration); ok {
		container = generic.Inner
	}

	inheritances := ast.Inheritances(container)
	require.NotEmpty(t, inheritances)

	table := checker.WitnessTable(inheritances[0])
	require.NotNil(t, table)
	return table
}

func TestCheckConformanceExactMatch(t *testing.T) {

	t.Parallel()

	t.Run("method", func(t *testing.T) {

		t.Parallel()

		checker, err := ParseAndCheck(t, `
          interface IFoo {
              int foo(int x);
          }

          struct S : IFoo {
              int foo(int x) { return x; }
          }
        `)
		require.NoError(t, err)

		iface := RequireMember[*ast.InterfaceDeclaration](t, checker.Module, "IFoo")
		requirement := RequireMember[*ast.FunctionDeclaration](t, iface, "foo")

		s := RequireMember[*ast.StructDeclaration](t, checker.Module, "S")
		foo := RequireMember[*ast.FunctionDeclaration](t, s, "foo")

		table := requireWitnessTable(t, checker, "S")
		assert.True(t, table.IsComplete())
		assert.False(t, table.IsFailed())
		assert.Equal(t, 1, table.Len())

		witness, ok := table.Get(requirement)
		require.True(t, ok)
		assert.Equal(t, sema.RequirementWitnessKindDeclRef, witness.Kind)
		assert.Same(t, foo, witness.DeclRef.Declaration)
		assert.False(t, checker.Elaboration.IsSynthesized(witness.DeclRef.Declaration))
	})

	t.Run("first match wins", func(t *testing.T) {

		t.Parallel()

		checker, err := ParseAndCheck(t, `
          interface IFoo {
              int foo(int x);
          }

          struct S : IFoo {
              int foo(float x) { return 1; }
              int foo(int x) { return x; }
              int foo(int x, int y) { return x; }
          }
        `)
		require.NoError(t, err)

		iface := RequireMember[*ast.InterfaceDeclaration](t, checker.Module, "IFoo")
		requirement := RequireMember[*ast.FunctionDeclaration](t, iface, "foo")

		s := RequireMember[*ast.StructDeclaration](t, checker.Module, "S")

		table := requireWitnessTable(t, checker, "S")
		witness, ok := table.Get(requirement)
		require.True(t, ok)
		assert.Same(t, s.Members[2], witness.DeclRef.Declaration)
	})

	t.Run("This in requirement", func(t *testing.T) {

		t.Parallel()

		_, err := ParseAndCheck(t, `
          interface ICopy {
              This copy();
          }

          struct S : ICopy {
              S copy() { return this; }
          }
        `)
		require.NoError(t, err)
	})

	t.Run("static requirement", func(t *testing.T) {

		t.Parallel()

		_, err := ParseAndCheck(t, `
          interface IMake {
              static int make();
          }

          struct S : IMake {
              int make() { return 1; }
          }
        `)

		errs := RequireCheckerErrors(t, err, 1)

		var requirementErr *sema.TypeDoesNotImplementRequirementError
		require.ErrorAs(t, errs[0], &requirementErr)
		assert.Equal(t, "make", requirementErr.RequirementName)
	})

	t.Run("mutating witness for nonmutating requirement", func(t *testing.T) {

		t.Parallel()

		_, err := ParseAndCheck(t, `
          interface IFoo {
              void reset();
          }

          struct S : IFoo {
              int n;
              mutating void reset() { this.n = 0; }
          }
        `)

		errs := RequireCheckerErrors(t, err, 1)
		require.IsType(t, &sema.TypeDoesNotImplementRequirementError{}, errs[0])
	})

	t.Run("constant", func(t *testing.T) {

		t.Parallel()

		checker, err := ParseAndCheck(t, `
          interface ISized {
              static const int Size;
          }

          struct S : ISized {
              static const int Size = 4;
          }
        `)
		require.NoError(t, err)

		iface := RequireMember[*ast.InterfaceDeclaration](t, checker.Module, "ISized")
		requirement := RequireMember[*ast.VariableDeclaration](t, iface, "Size")

		table := requireWitnessTable(t, checker, "S")
		witness, ok := table.Get(requirement)
		require.True(t, ok)
		assert.Equal(t, sema.RequirementWitnessKindVal, witness.Kind)
		assert.Equal(t, &sema.ConstantIntVal{Value: 4}, witness.Val)
	})

	t.Run("property", func(t *testing.T) {

		t.Parallel()

		checker, err := ParseAndCheck(t, `
          interface ISized {
              property size : int { get; }
          }

          struct S : ISized {
              int n;
              property size : int { get { return this.n; } set { this.n = newValue; } }
          }
        `)
		require.NoError(t, err)

		iface := RequireMember[*ast.InterfaceDeclaration](t, checker.Module, "ISized")
		requirement := RequireMember[*ast.PropertyDeclaration](t, iface, "size")

		s := RequireMember[*ast.StructDeclaration](t, checker.Module, "S")
		property := RequireMember[*ast.PropertyDeclaration](t, s, "size")

		table := requireWitnessTable(t, checker, "S")

		witness, ok := table.Get(requirement)
		require.True(t, ok)
		assert.Same(t, property, witness.DeclRef.Declaration)

		getterWitness, ok := table.Get(requirement.Accessors()[0])
		require.True(t, ok)
		assert.Same(t, property.Accessors()[0], getterWitness.DeclRef.Declaration)
	})

	t.Run("generic method", func(t *testing.T) {

		t.Parallel()

		_, err := ParseAndCheck(t, `
          interface IMap {
              T apply<T>(T value);
          }

          struct S : IMap {
              U apply<U>(U value) { return value; }
          }
        `)
		require.NoError(t, err)
	})

	t.Run("interface is satisfied by itself", func(t *testing.T) {

		t.Parallel()

		_, err := ParseAndCheck(t, `
          interface IFoo {
              int foo();
          }

          interface IBar : IFoo {
              int bar();
          }
        `)
		require.NoError(t, err)
	})
}

func TestCheckConformanceSynthesis(t *testing.T) {

	t.Parallel()

	t.Run("method with default parameter", func(t *testing.T) {

		t.Parallel()

		checker, err := ParseAndCheck(t, `
          interface IFoo {
              int bar();
          }

          struct S : IFoo {
              int bar(int x = 0) { return x; }
          }
        `)
		require.NoError(t, err)

		iface := RequireMember[*ast.InterfaceDeclaration](t, checker.Module, "IFoo")
		requirement := RequireMember[*ast.FunctionDeclaration](t, iface, "bar")

		s := RequireMember[*ast.StructDeclaration](t, checker.Module, "S")

		table := requireWitnessTable(t, checker, "S")
		assert.False(t, table.IsFailed())

		witness, ok := table.Get(requirement)
		require.True(t, ok)
		require.Equal(t, sema.RequirementWitnessKindDeclRef, witness.Kind)

		synthesized, ok := witness.DeclRef.Declaration.(*ast.FunctionDeclaration)
		require.True(t, ok)

		assert.True(t, checker.Elaboration.IsSynthesized(synthesized))
		assert.Equal(t, common.DeclCheckStateChecked, checker.CheckState(synthesized))
		assert.Equal(t, sema.IntType, checker.Elaboration.ResultType(synthesized))
		assert.Same(t, s, checker.Arena.Parent(synthesized))

		// synthesized declarations are not members, so lookup does not find them
		assert.NotContains(t, s.Members, ast.Declaration(synthesized))

		// the body forwards to the existing method
		require.NotNil(t, synthesized.Body)
		require.Len(t, synthesized.Body.Statements, 1)

		returnStatement, ok := synthesized.Body.Statements[0].(*ast.ReturnStatement)
		require.True(t, ok)

		invocation, ok := returnStatement.Expression.(*ast.InvocationExpression)
		require.True(t, ok)

		target, ok := checker.Elaboration.InvocationTarget(invocation)
		require.True(t, ok)
		assert.Same(t, s.Members[1], target.Declaration)
	})

	t.Run("method with convertible parameter", func(t *testing.T) {

		t.Parallel()

		_, err := ParseAndCheck(t, `
          interface IScale {
              float scale(int x);
          }

          struct S : IScale {
              float scale(float x) { return x * 2.0; }
          }
        `)
		require.NoError(t, err)
	})

	t.Run("void method", func(t *testing.T) {

		t.Parallel()

		_, err := ParseAndCheck(t, `
          interface IReset {
              void reset();
          }

          struct S : IReset {
              void reset(int x = 0) {}
          }
        `)
		require.NoError(t, err)
	})

	t.Run("property from variable", func(t *testing.T) {

		t.Parallel()

		checker, err := ParseAndCheck(t, `
          interface ISized {
              property size : float { get; set; }
          }

          struct S : ISized {
              float size;
          }
        `)
		require.NoError(t, err)

		iface := RequireMember[*ast.InterfaceDeclaration](t, checker.Module, "ISized")
		requirement := RequireMember[*ast.PropertyDeclaration](t, iface, "size")

		table := requireWitnessTable(t, checker, "S")

		witness, ok := table.Get(requirement)
		require.True(t, ok)
		assert.True(t, checker.Elaboration.IsSynthesized(witness.DeclRef.Declaration))

		for _, accessor := range requirement.Accessors() {
			accessorWitness, ok := table.Get(accessor)
			require.True(t, ok)

			synthesized, ok := accessorWitness.DeclRef.Declaration.(*ast.AccessorDeclaration)
			require.True(t, ok)
			assert.Equal(t, accessor.Kind, synthesized.Kind)
			assert.True(t, checker.Elaboration.IsSynthesized(synthesized))
		}
	})

	t.Run("property from constant fails for setter", func(t *testing.T) {

		t.Parallel()

		_, err := ParseAndCheck(t, `
          interface ISized {
              property size : int { get; set; }
          }

          struct S : ISized {
              const int size = 1;
          }
        `)

		errs := RequireCheckerErrors(t, err, 1)

		var requirementErr *sema.TypeDoesNotImplementRequirementError
		require.ErrorAs(t, errs[0], &requirementErr)
		assert.Equal(t, "size", requirementErr.RequirementName)
		assert.Equal(t, common.DeclarationKindProperty, requirementErr.RequirementKind)
	})
}

func TestCheckConformanceFailure(t *testing.T) {

	t.Parallel()

	t.Run("missing member", func(t *testing.T) {

		t.Parallel()

		checker, err := ParseAndCheckWithOptions(t,
			`
              interface IFoo {
                  int bar();
              }

              struct S : IFoo {
                  void baz() {}
              }
            `,
			ParseAndCheckOptions{
				Config: &sema.Config{
					SuggestionsEnabled: true,
				},
			},
		)

		errs := RequireCheckerErrors(t, err, 1)

		var requirementErr *sema.TypeDoesNotImplementRequirementError
		require.ErrorAs(t, errs[0], &requirementErr)
		assert.Equal(t, "bar", requirementErr.RequirementName)
		assert.Equal(t, common.DeclarationKindFunction, requirementErr.RequirementKind)
		assert.Equal(t, []string{"baz"}, requirementErr.MemberNames)
		assert.True(t, requirementErr.SuggestMember)

		table := requireWitnessTable(t, checker, "S")
		assert.True(t, table.IsComplete())
		assert.True(t, table.IsFailed())
		assert.Equal(t, 0, table.Len())
	})

	t.Run("synthesis fails", func(t *testing.T) {

		t.Parallel()

		_, err := ParseAndCheck(t, `
          interface IFoo {
              int bar();
          }

          struct S : IFoo {
              int bar(int x) { return x; }
          }
        `)

		errs := RequireCheckerErrors(t, err, 1)
		require.IsType(t, &sema.TypeDoesNotImplementRequirementError{}, errs[0])
	})

	t.Run("one error per missing requirement", func(t *testing.T) {

		t.Parallel()

		_, err := ParseAndCheck(t, `
          interface IFoo {
              int bar();
              int baz();
          }

          struct S : IFoo {}
        `)

		errs := RequireCheckerErrors(t, err, 2)
		require.IsType(t, &sema.TypeDoesNotImplementRequirementError{}, errs[0])
		require.IsType(t, &sema.TypeDoesNotImplementRequirementError{}, errs[1])
	})
}

func TestCheckConformanceAssociatedTypes(t *testing.T) {

	t.Parallel()

	t.Run("resolved before other requirements", func(t *testing.T) {

		t.Parallel()

		checker, err := ParseAndCheck(t, `
          interface IContainer {
              Element get(int index);
              associatedtype Element;
          }

          struct Box : IContainer {
              typedef float Element;
              Element get(int index) { return 1.5; }
          }
        `)
		require.NoError(t, err)

		iface := RequireMember[*ast.InterfaceDeclaration](t, checker.Module, "IContainer")
		associatedType := RequireMember[*ast.AssociatedTypeDeclaration](t, iface, "Element")
		get := RequireMember[*ast.FunctionDeclaration](t, iface, "get")

		table := requireWitnessTable(t, checker, "Box")

		requirements := table.Requirements()
		require.Len(t, requirements, 2)
		assert.Same(t, associatedType, requirements[0])
		assert.Same(t, get, requirements[1])

		witness, ok := table.Get(associatedType)
		require.True(t, ok)
		assert.Equal(t, sema.RequirementWitnessKindVal, witness.Kind)
		assert.Equal(t, sema.FloatType, witness.Val)
	})

	t.Run("mismatched associated type", func(t *testing.T) {

		t.Parallel()

		_, err := ParseAndCheck(t, `
          interface IContainer {
              associatedtype Element;
              Element get(int index);
          }

          struct Box : IContainer {
              typedef int Element;
              float get(int index) { return 1.5; }
          }
        `)

		errs := RequireCheckerErrors(t, err, 1)

		var requirementErr *sema.TypeDoesNotImplementRequirementError
		require.ErrorAs(t, errs[0], &requirementErr)
		assert.Equal(t, "get", requirementErr.RequirementName)
	})

	t.Run("constraint", func(t *testing.T) {

		t.Parallel()

		checker, err := ParseAndCheck(t, `
          interface IValue {
              int value();
          }

          interface IContainer {
              associatedtype Element : IValue;
          }

          struct V : IValue {
              int value() { return 1; }
          }

          struct Box : IContainer {
              typedef V Element;
          }
        `)
		require.NoError(t, err)

		iface := RequireMember[*ast.InterfaceDeclaration](t, checker.Module, "IContainer")
		associatedType := RequireMember[*ast.AssociatedTypeDeclaration](t, iface, "Element")
		constraint := associatedType.Constraints()[0]

		table := requireWitnessTable(t, checker, "Box")

		witness, ok := table.Get(constraint)
		require.True(t, ok)
		assert.Equal(t, sema.RequirementWitnessKindVal, witness.Kind)
		assert.Implements(t, (*sema.SubtypeWitness)(nil), witness.Val)
	})

	t.Run("unsatisfied constraint", func(t *testing.T) {

		t.Parallel()

		_, err := ParseAndCheck(t, `
          interface IValue {
              int value();
          }

          interface IContainer {
              associatedtype Element : IValue;
          }

          struct Box : IContainer {
              typedef int Element;
          }
        `)

		errs := RequireCheckerErrors(t, err, 1)

		var requirementErr *sema.TypeDoesNotImplementRequirementError
		require.ErrorAs(t, errs[0], &requirementErr)
		assert.Equal(t, "Element", requirementErr.RequirementName)
		assert.Equal(t, common.DeclarationKindAssociatedType, requirementErr.RequirementKind)
	})
}

func TestCheckConformanceInheritedInterfaces(t *testing.T) {

	t.Parallel()

	t.Run("nested witness table", func(t *testing.T) {

		t.Parallel()

		checker, err := ParseAndCheck(t, `
          interface IBase {
              int base();
          }

          interface IDerived : IBase {
              int derived();
          }

          struct S : IDerived {
              int base() { return 1; }
              int derived() { return 2; }
          }
        `)
		require.NoError(t, err)

		derived := RequireMember[*ast.InterfaceDeclaration](t, checker.Module, "IDerived")
		baseInheritance := ast.Inheritances(derived)[0]

		table := requireWitnessTable(t, checker, "S")

		witness, ok := table.Get(baseInheritance)
		require.True(t, ok)
		require.Equal(t, sema.RequirementWitnessKindWitnessTable, witness.Kind)
		assert.Equal(t, 1, witness.Table.Len())
		assert.False(t, witness.Table.IsFailed())
	})

	t.Run("missing inherited requirement", func(t *testing.T) {

		t.Parallel()

		_, err := ParseAndCheck(t, `
          interface IBase {
              int base();
          }

          interface IDerived : IBase {
              int derived();
          }

          struct S : IDerived {
              int derived() { return 2; }
          }
        `)

		errs := RequireCheckerErrors(t, err, 1)

		var requirementErr *sema.TypeDoesNotImplementRequirementError
		require.ErrorAs(t, errs[0], &requirementErr)
		assert.Equal(t, "base", requirementErr.RequirementName)
	})

	t.Run("extension adds conformance", func(t *testing.T) {

		t.Parallel()

		_, err := ParseAndCheck(t, `
          interface IFoo {
              int foo();
          }

          struct S {}

          extension S : IFoo {
              int foo() { return 1; }
          }

          int call(S s) { return s.foo(); }
        `)
		require.NoError(t, err)
	})
}
