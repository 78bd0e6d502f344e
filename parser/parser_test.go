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

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/declcheck/ast"
	"github.com/onflow/declcheck/common"
)

func parseModule(t *testing.T, code string) (*ast.Arena, *ast.ModuleDeclaration) {
	arena := ast.NewArena()
	module, err := ParseModule(arena, []byte(code), common.StringLocation("test"))
	require.NoError(t, err)
	return arena, module
}

func TestParseExpressionPrecedence(t *testing.T) {

	t.Parallel()

	tests := map[string]string{
		"1 + 2 * 3":      "(1 + (2 * 3))",
		"(1 + 2) * 3":    "((1 + 2) * 3)",
		"a - b - c":      "((a - b) - c)",
		"a == b < c":     "(a == (b < c))",
		"-a.b(1, x)":     "-a.b(1, x)",
		"!true != false": "(!true != false)",
		"this.x / 2.5":   "(this.x / 2.5)",
		"f()":            "f()",
	}

	for code, expected := range tests {
		code, expected := code, expected
		t.Run(code, func(t *testing.T) {
			t.Parallel()

			expression, err := ParseExpression(ast.NewArena(), []byte(code))
			require.NoError(t, err)
			assert.Equal(t, expected, expression.String())
		})
	}
}

func TestParseExpressionPositions(t *testing.T) {

	t.Parallel()

	expression, err := ParseExpression(ast.NewArena(), []byte("a + bc"))
	require.NoError(t, err)

	binaryExpression, ok := expression.(*ast.BinaryExpression)
	require.True(t, ok)

	assert.Equal(t, ast.OperationPlus, binaryExpression.Operation)
	assert.Equal(t,
		ast.Range{
			StartPos: ast.Position{Offset: 0, Line: 1, Column: 0},
			EndPos:   ast.Position{Offset: 5, Line: 1, Column: 5},
		},
		ast.NewRangeFromPositioned(binaryExpression),
	)
	assert.Equal(t,
		ast.Position{Offset: 4, Line: 1, Column: 4},
		binaryExpression.Right.StartPosition(),
	)
}

func TestParseType(t *testing.T) {

	t.Parallel()

	ty, err := ParseType(ast.NewArena(), []byte("Vector<Box<T>, -3>.Element"))
	require.NoError(t, err)

	memberType, ok := ty.(*ast.MemberType)
	require.True(t, ok)
	assert.Equal(t, "Element", memberType.Identifier.Identifier)

	nominalType, ok := memberType.Parent.(*ast.NominalType)
	require.True(t, ok)
	require.Len(t, nominalType.Arguments, 2)

	integerArgument, ok := nominalType.Arguments[1].(*ast.IntegerTypeArgument)
	require.True(t, ok)
	assert.Equal(t, int64(-3), integerArgument.Value)

	assert.Equal(t, "Vector<Box<T>, -3>.Element", ty.String())
}

func TestParseModule(t *testing.T) {

	t.Parallel()

	const code = `
      import Core;

      interface IFoo : IBar {
          associatedtype Element : IBaz;
          mutating int next(int x = 1);
      }

      struct Box<T : IFoo, let N : int> : Base, IFoo {
          property size : int { get; set(int v) { this.n = v; } }
          __init(int n);
      }

      enum Color : int { Red, Green = 3, }

      typedef Box<int, 3> IntBox;
      const int A = 1 + 2;
      var b = A;
    `

	arena, module := parseModule(t, code)

	members := module.Members
	require.Len(t, members, 7)

	for _, member := range members {
		assert.Same(t, module, arena.Parent(member))
	}

	t.Run("import", func(t *testing.T) {
		t.Parallel()

		importDeclaration, ok := members[0].(*ast.ImportDeclaration)
		require.True(t, ok)
		assert.Equal(t, "Core", importDeclaration.Identifier.Identifier)
		assert.Equal(t,
			[]*ast.ImportDeclaration{importDeclaration},
			module.Imports(),
		)
	})

	t.Run("interface", func(t *testing.T) {
		t.Parallel()

		interfaceDeclaration, ok := members[1].(*ast.InterfaceDeclaration)
		require.True(t, ok)
		require.Len(t, interfaceDeclaration.Members, 3)

		inheritances := ast.Inheritances(interfaceDeclaration)
		require.Len(t, inheritances, 1)
		assert.Equal(t, "IBar", inheritances[0].BaseType.String())

		associatedType, ok := interfaceDeclaration.Members[1].(*ast.AssociatedTypeDeclaration)
		require.True(t, ok)
		constraints := associatedType.Constraints()
		require.Len(t, constraints, 1)
		assert.Equal(t, "IBaz", constraints[0].Sup.String())

		function, ok := interfaceDeclaration.Members[2].(*ast.FunctionDeclaration)
		require.True(t, ok)
		assert.True(t, function.Modifiers.Has(common.ModifierMutating))
		assert.Equal(t, "int", function.ReturnType.String())
		assert.Nil(t, function.Body)

		parameters := function.Parameters()
		require.Len(t, parameters, 1)
		assert.Equal(t, "x", parameters[0].Identifier.Identifier)
		assert.Equal(t, "1", parameters[0].DefaultValue.String())
	})

	t.Run("generic struct", func(t *testing.T) {
		t.Parallel()

		generic, ok := members[2].(*ast.GenericDeclaration)
		require.True(t, ok)
		assert.Equal(t, "Box", generic.Identifier.Identifier)

		parameters := generic.GenericParameters()
		require.Len(t, parameters, 2)
		assert.IsType(t, &ast.GenericTypeParameterDeclaration{}, parameters[0])
		assert.IsType(t, &ast.GenericValueParameterDeclaration{}, parameters[1])

		constraints := generic.Constraints()
		require.Len(t, constraints, 1)
		assert.Equal(t, "T", constraints[0].Sub.String())
		assert.Equal(t, "IFoo", constraints[0].Sup.String())

		structDeclaration, ok := generic.Inner.(*ast.StructDeclaration)
		require.True(t, ok)
		assert.False(t, structDeclaration.IsClass)
		assert.Same(t, generic, arena.Parent(structDeclaration))
		assert.NotContains(t, generic.Members, ast.Declaration(structDeclaration))
		require.Len(t, ast.Inheritances(structDeclaration), 2)

		property, ok := structDeclaration.Members[2].(*ast.PropertyDeclaration)
		require.True(t, ok)
		accessors := property.Accessors()
		require.Len(t, accessors, 2)
		assert.Equal(t, ast.AccessorKindGet, accessors[0].Kind)
		assert.Nil(t, accessors[0].Body)
		assert.Equal(t, ast.AccessorKindSet, accessors[1].Kind)
		require.Len(t, accessors[1].Parameters(), 1)
		require.NotNil(t, accessors[1].Body)
		require.Len(t, accessors[1].Body.Statements, 1)
		assert.IsType(t, &ast.AssignmentStatement{}, accessors[1].Body.Statements[0])

		constructor, ok := structDeclaration.Members[3].(*ast.ConstructorDeclaration)
		require.True(t, ok)
		assert.Len(t, constructor.Parameters(), 1)
	})

	t.Run("enum", func(t *testing.T) {
		t.Parallel()

		enumDeclaration, ok := members[3].(*ast.EnumDeclaration)
		require.True(t, ok)

		cases := ast.MembersOfType[*ast.EnumCaseDeclaration](enumDeclaration)
		require.Len(t, cases, 2)
		assert.Nil(t, cases[0].TagExpression)
		assert.Equal(t, "Green", cases[1].Identifier.Identifier)
		assert.Equal(t, "3", cases[1].TagExpression.String())
	})

	t.Run("typedef", func(t *testing.T) {
		t.Parallel()

		typeAlias, ok := members[4].(*ast.TypeAliasDeclaration)
		require.True(t, ok)
		assert.Equal(t, "IntBox", typeAlias.Identifier.Identifier)
		assert.Equal(t, "Box<int, 3>", typeAlias.Type.String())
	})

	t.Run("variables", func(t *testing.T) {
		t.Parallel()

		constant, ok := members[5].(*ast.VariableDeclaration)
		require.True(t, ok)
		assert.True(t, constant.IsConstant())
		assert.Equal(t, common.DeclarationKindConstant, constant.DeclarationKind())
		assert.Equal(t, "(1 + 2)", constant.Value.String())

		variable, ok := members[6].(*ast.VariableDeclaration)
		require.True(t, ok)
		assert.Nil(t, variable.TypeAnnotation)
		assert.Equal(t, "A", variable.Value.String())
	})
}

func TestParseGenericPrefix(t *testing.T) {

	t.Parallel()

	const code = `
      __generic<T> where T : IFoo, T : IBar
      extension Box<T> : IBaz {}
    `

	arena, module := parseModule(t, code)
	require.Len(t, module.Members, 1)

	generic, ok := module.Members[0].(*ast.GenericDeclaration)
	require.True(t, ok)
	require.Len(t, generic.GenericParameters(), 1)
	require.Len(t, generic.Constraints(), 2)

	extension, ok := generic.Inner.(*ast.ExtensionDeclaration)
	require.True(t, ok)
	assert.Equal(t, "", extension.Identifier.Identifier)
	assert.Equal(t, "Box<T>", extension.TargetType.String())
	assert.Same(t, generic, arena.Parent(extension))
	assert.Len(t, ast.Inheritances(extension), 1)
}

func TestParseGenericFunction(t *testing.T) {

	t.Parallel()

	arena, module := parseModule(t, `T identity<T>(T value) { return value; }`)
	require.Len(t, module.Members, 1)

	generic, ok := module.Members[0].(*ast.GenericDeclaration)
	require.True(t, ok)

	function, ok := generic.Inner.(*ast.FunctionDeclaration)
	require.True(t, ok)
	assert.Equal(t, "identity", function.Identifier.Identifier)
	assert.Equal(t, "T", function.ReturnType.String())
	assert.Same(t, generic, arena.Parent(function))

	require.NotNil(t, function.Body)
	require.Len(t, function.Body.Statements, 1)

	returnStatement, ok := function.Body.Statements[0].(*ast.ReturnStatement)
	require.True(t, ok)
	assert.Equal(t, "value", returnStatement.Expression.String())
}

func TestParseModifiers(t *testing.T) {

	t.Parallel()

	const code = `
      struct S {
          __target_intrinsic(glsl) __target_intrinsic(hlsl) static void f();
          __specialized_for_target(spirv) void f() {}
          property p : int { get; nonmutating set; ref; }
          void g(out int x, ref int y);
      }
    `

	_, module := parseModule(t, code)
	structDeclaration := module.Members[0].(*ast.StructDeclaration)
	require.Len(t, structDeclaration.Members, 4)

	intrinsic := structDeclaration.Members[0].(*ast.FunctionDeclaration)
	assert.True(t, intrinsic.Modifiers.Has(common.ModifierStatic))
	assert.True(t, intrinsic.Modifiers.Has(common.ModifierTargetIntrinsic))
	assert.Nil(t, intrinsic.ReturnType)
	require.Len(t, intrinsic.Modifiers.TargetIntrinsics, 2)
	assert.Equal(t, "glsl", intrinsic.Modifiers.TargetIntrinsics[0].Identifier)
	assert.Equal(t, "hlsl", intrinsic.Modifiers.TargetIntrinsics[1].Identifier)

	specialized := structDeclaration.Members[1].(*ast.FunctionDeclaration)
	require.NotNil(t, specialized.Modifiers.SpecializedForTarget)
	assert.Equal(t, "spirv", specialized.Modifiers.SpecializedForTarget.Identifier)
	assert.NotNil(t, specialized.Body)

	property := structDeclaration.Members[2].(*ast.PropertyDeclaration)
	accessors := property.Accessors()
	require.Len(t, accessors, 3)
	assert.Equal(t, ast.AccessorKindGet, accessors[0].Kind)
	assert.Equal(t, ast.AccessorKindSet, accessors[1].Kind)
	assert.True(t, accessors[1].Modifiers.Has(common.ModifierNonmutating))
	assert.Equal(t, ast.AccessorKindRef, accessors[2].Kind)
	assert.Equal(t, 0, accessors[2].Modifiers.Set.Len())

	function := structDeclaration.Members[3].(*ast.FunctionDeclaration)
	parameters := function.Parameters()
	require.Len(t, parameters, 2)
	assert.True(t, parameters[0].Modifiers.Has(common.ModifierOut))
	assert.True(t, parameters[1].Modifiers.Has(common.ModifierRef))
}

func TestParseErrors(t *testing.T) {

	t.Parallel()

	t.Run("unexpected end", func(t *testing.T) {
		t.Parallel()

		_, err := ParseModule(ast.NewArena(), []byte("struct S {"), nil)
		require.Error(t, err)

		var parserError Error
		require.ErrorAs(t, err, &parserError)
		require.Len(t, parserError.Errors, 1)

		var syntaxError *SyntaxError
		require.ErrorAs(t, parserError.Errors[0], &syntaxError)
		assert.Equal(t, "unexpected end of input, expected }", syntaxError.Message)
		assert.Equal(t, 10, syntaxError.Pos.Offset)
	})

	t.Run("lexer error and missing semicolon", func(t *testing.T) {
		t.Parallel()

		_, err := ParseModule(ast.NewArena(), []byte("int a = 1 # 2;"), nil)
		require.Error(t, err)

		var parserError Error
		require.ErrorAs(t, err, &parserError)
		require.Len(t, parserError.Errors, 2)

		assert.EqualError(t, parserError.Errors[0], "unrecognized character: U+0023 '#'")
		assert.EqualError(t, parserError.Errors[1], "expected token ;, got decimal integer 2")
	})

	t.Run("keyword as name", func(t *testing.T) {
		t.Parallel()

		_, err := ParseModule(ast.NewArena(), []byte("int struct;"), nil)

		var parserError Error
		require.ErrorAs(t, err, &parserError)
		require.Len(t, parserError.Errors, 1)
		assert.EqualError(t, parserError.Errors[0], "expected identifier, got keyword struct")
	})

	t.Run("generic enum", func(t *testing.T) {
		t.Parallel()

		_, err := ParseModule(ast.NewArena(), []byte("__generic<T> enum E {}"), nil)

		var parserError Error
		require.ErrorAs(t, err, &parserError)
		require.Len(t, parserError.Errors, 1)
		assert.EqualError(t, parserError.Errors[0], "enum declarations cannot be generic")
	})

	t.Run("integer literal overflow", func(t *testing.T) {
		t.Parallel()

		_, err := ParseExpression(ast.NewArena(), []byte("99999999999999999999"))

		var parserError Error
		require.ErrorAs(t, err, &parserError)
		require.Len(t, parserError.Errors, 1)

		var literalError *InvalidIntegerLiteralError
		require.ErrorAs(t, parserError.Errors[0], &literalError)
		assert.Equal(t, "99999999999999999999", literalError.Literal)
	})
}

func TestParseErrorMessage(t *testing.T) {

	t.Parallel()

	_, err := ParseModule(ast.NewArena(), []byte("struct S {"), common.StringLocation("test"))
	require.Error(t, err)

	assert.Equal(t,
		"Parsing failed:\n"+
			"error: unexpected end of input, expected }\n"+
			" --> test:1:10\n"+
			"  |\n"+
			"1 | struct S {\n"+
			"  |           ^\n"+
			"\n\nFix the errors above and check the module again.\n",
		err.Error(),
	)
}

func TestKeywords(t *testing.T) {

	t.Parallel()

	assert.True(t, IsHardKeyword(KeywordStruct))
	assert.True(t, IsHardKeyword(KeywordThisType))
	assert.False(t, IsHardKeyword(KeywordGet))
	assert.False(t, IsHardKeyword(KeywordWhere))
	assert.False(t, IsHardKeyword("foo"))
}
