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

// VariableDeclaration declares a variable or constant.
// A nil type annotation means the type is inferred from the value.
type VariableDeclaration struct {
	TypeAnnotation TypeExpression
	Value          Expression
	DeclarationBase
}

var _ Declaration = &VariableDeclaration{}

func (d *VariableDeclaration) DeclarationKind() common.DeclarationKind {
	if d.Modifiers.Has(common.ModifierConst) {
		return common.DeclarationKindConstant
	}
	return common.DeclarationKindVariable
}

func (d *VariableDeclaration) IsConstant() bool {
	return d.Modifiers.Has(common.ModifierConst)
}

func (d *VariableDeclaration) Doc() prettier.Doc {
	var typeDoc prettier.Doc = prettier.Text("var")
	if d.TypeAnnotation != nil {
		typeDoc = d.TypeAnnotation.Doc()
	}
	doc := prettier.Concat{
		d.Modifiers.Doc(),
		typeDoc,
		prettier.Text(" " + d.Identifier.Identifier),
	}
	if d.Value != nil {
		doc = append(doc,
			prettier.Text(" = "),
			d.Value.Doc(),
		)
	}
	return append(doc, prettier.Text(";"))
}

func (d *VariableDeclaration) String() string {
	return Prettier(d)
}

// PropertyDeclaration declares a property.
// Accessors are AccessorDeclaration members.
type PropertyDeclaration struct {
	TypeAnnotation TypeExpression
	DeclarationBase
}

var _ Declaration = &PropertyDeclaration{}

func (*PropertyDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindProperty
}

func (d *PropertyDeclaration) Accessors() []*AccessorDeclaration {
	return MembersOfType[*AccessorDeclaration](d)
}

func (d *PropertyDeclaration) Doc() prettier.Doc {
	return prettier.Concat{
		d.Modifiers.Doc(),
		prettier.Text("property " + d.Identifier.Identifier + " : "),
		d.TypeAnnotation.Doc(),
		membersDoc(d.Members),
	}
}

func (d *PropertyDeclaration) String() string {
	return Prettier(d)
}
