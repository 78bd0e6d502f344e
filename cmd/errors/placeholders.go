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

package main

import (
	"fmt"

	"github.com/onflow/declcheck/ast"
	"github.com/onflow/declcheck/common"
	"github.com/onflow/declcheck/sema"
)

const placeholderName = "placeholder"

const placeholderTypeName = "PlaceholderType"

const placeholderInt = 42

var placeholderPosition = ast.Position{Offset: 1, Line: 2, Column: 3}

var placeholderEndPosition = ast.Position{Offset: 4, Line: 5, Column: 6}

var placeholderRange = ast.Range{
	StartPos: placeholderPosition,
	EndPos:   placeholderEndPosition,
}

var placeholderDeclarationKind = common.DeclarationKindFunction

var placeholderModifier = common.ModifierMutating

var placeholderOperation = ast.OperationPlus

var placeholderError = fmt.Errorf("placeholder error") //nolint:staticcheck

var placeholderStructDeclaration = func() *ast.StructDeclaration {
	arena := ast.NewArena()
	return ast.Add(arena, &ast.StructDeclaration{
		DeclarationBase: ast.DeclarationBase{
			Identifier: ast.NewIdentifier(placeholderTypeName, placeholderPosition),
			Range:      placeholderRange,
		},
	})
}()

var placeholderSemaType sema.Type = sema.NewDeclRefType(
	sema.NewDeclRef(placeholderStructDeclaration, nil),
)

var placeholderOtherSemaType sema.Type = sema.IntType

var placeholderNames = []string{placeholderName}

var placeholderSemaTypes = []sema.Type{placeholderOtherSemaType}
