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

package ast

import (
	"github.com/turbolent/prettier"

	"github.com/onflow/declcheck/common"
)

// ModuleDeclaration is the root of a parsed source file.
type ModuleDeclaration struct {
	Location common.Location
	DeclarationBase
}

var _ Declaration = &ModuleDeclaration{}

func (*ModuleDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindModule
}

func (d *ModuleDeclaration) Doc() prettier.Doc {
	docs := make([]prettier.Doc, 0, len(d.Members))
	for _, member := range d.Members {
		docs = append(docs, member.Doc())
	}
	return prettier.Join(prettier.HardLine{}, docs...)
}

func (d *ModuleDeclaration) String() string {
	return Prettier(d)
}

// Imports returns the import declarations of the module, in order.
func (d *ModuleDeclaration) Imports() []*ImportDeclaration {
	return MembersOfType[*ImportDeclaration](d)
}

// ImportDeclaration imports all declarations of another module.
// The identifier is the imported module's name.
type ImportDeclaration struct {
	DeclarationBase
}

var _ Declaration = &ImportDeclaration{}

func (*ImportDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindImport
}

func (d *ImportDeclaration) Doc() prettier.Doc {
	return prettier.Text("import " + d.Identifier.Identifier + ";")
}

func (d *ImportDeclaration) String() string {
	return Prettier(d)
}
