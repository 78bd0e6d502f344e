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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/declcheck/ast"
	"github.com/onflow/declcheck/common"
	"github.com/onflow/declcheck/parser"
)

func TestLookUpMemberBreadcrumbs(t *testing.T) {

	t.Parallel()

	arena := ast.NewArena()
	module, err := parser.ParseModule(
		arena,
		[]byte(`
          struct Inner {
              int foo() { return 1; }
          }

          struct S {
              __transparent Inner inner;
              int foo(int x) { return x; }
          }
        `),
		common.StringLocation("test"),
	)
	require.NoError(t, err)

	checker, err := NewChecker(arena, module, nil, nil)
	require.NoError(t, err)
	require.NoError(t, checker.Check())

	structs := ast.MembersOfType[*ast.StructDeclaration](module)
	require.Len(t, structs, 2)
	innerStruct, s := structs[0], structs[1]

	innerFoo := ast.MembersOfType[*ast.FunctionDeclaration](innerStruct)[0]
	ownFoo := ast.MembersOfType[*ast.FunctionDeclaration](s)[0]
	innerField := ast.MembersOfType[*ast.VariableDeclaration](s)[0]

	items := checker.lookUpMember(checker.selfTypeOf(s), "foo", LookupOptions{})
	require.Len(t, items, 2)

	assert.Same(t, ownFoo, items[0].DeclRef.Declaration)
	assert.Empty(t, items[0].Breadcrumbs)

	assert.Same(t, innerFoo, items[1].DeclRef.Declaration)
	require.Len(t, items[1].Breadcrumbs, 1)
	assert.Equal(t, BreadcrumbKindMember, items[1].Breadcrumbs[0].Kind)
	assert.Same(t, innerField, items[1].Breadcrumbs[0].DeclRef.Declaration)
}
