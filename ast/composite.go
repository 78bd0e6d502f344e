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

// StructDeclaration declares a struct or a class.
// Inheritance clauses are InheritanceDeclaration members.
type StructDeclaration struct {
	IsClass bool
	DeclarationBase
}

var _ Declaration = &StructDeclaration{}

func (d *StructDeclaration) DeclarationKind() common.DeclarationKind {
	if d.IsClass {
		return common.DeclarationKindClass
	}
	return common.DeclarationKindStructure
}

func (d *StructDeclaration) Doc() prettier.Doc {
	keyword := "struct "
	if d.IsClass {
		keyword = "class "
	}
	return prettier.Concat{
		d.Modifiers.Doc(),
		prettier.Text(keyword + d.Identifier.Identifier),
		inheritancesDoc(d.Members),
		membersDoc(d.Members),
	}
}

func (d *StructDeclaration) String() string {
	return Prettier(d)
}

// InterfaceDeclaration declares an interface.
// Its members are the requirements of the interface.
type InterfaceDeclaration struct {
	DeclarationBase
}

var _ Declaration = &InterfaceDeclaration{}

func (*InterfaceDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindInterface
}

func (d *InterfaceDeclaration) Doc() prettier.Doc {
	return prettier.Concat{
		d.Modifiers.Doc(),
		prettier.Text("interface " + d.Identifier.Identifier),
		inheritancesDoc(d.Members),
		membersDoc(d.Members),
	}
}

func (d *InterfaceDeclaration) String() string {
	return Prettier(d)
}

// EnumDeclaration declares an enumeration.
// The first inheritance clause may name the tag type.
type EnumDeclaration struct {
	DeclarationBase
}

var _ Declaration = &EnumDeclaration{}

func (*EnumDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindEnum
}

func (d *EnumDeclaration) Doc() prettier.Doc {
	return prettier.Concat{
		d.Modifiers.Doc(),
		prettier.Text("enum " + d.Identifier.Identifier),
		inheritancesDoc(d.Members),
		membersDoc(d.Members),
	}
}

func (d *EnumDeclaration) String() string {
	return Prettier(d)
}

// EnumCaseDeclaration declares a case of an enumeration,
// with an optional explicit tag value.
type EnumCaseDeclaration struct {
	TagExpression Expression
	DeclarationBase
}

var _ Declaration = &EnumCaseDeclaration{}

func (*EnumCaseDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindEnumCase
}

func (d *EnumCaseDeclaration) Doc() prettier.Doc {
	if d.TagExpression == nil {
		return prettier.Text(d.Identifier.Identifier + ",")
	}
	return prettier.Concat{
		prettier.Text(d.Identifier.Identifier + " = "),
		d.TagExpression.Doc(),
		prettier.Text(","),
	}
}

func (d *EnumCaseDeclaration) String() string {
	return Prettier(d)
}

// ExtensionDeclaration retroactively adds members and inheritance clauses to a type.
type ExtensionDeclaration struct {
	TargetType TypeExpression
	DeclarationBase
}

var _ Declaration = &ExtensionDeclaration{}

func (*ExtensionDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindExtension
}

func (d *ExtensionDeclaration) Doc() prettier.Doc {
	return prettier.Concat{
		d.Modifiers.Doc(),
		prettier.Text("extension "),
		d.TargetType.Doc(),
		inheritancesDoc(d.Members),
		membersDoc(d.Members),
	}
}

func (d *ExtensionDeclaration) String() string {
	return Prettier(d)
}

// InheritanceDeclaration names a base type of its parent declaration.
type InheritanceDeclaration struct {
	BaseType TypeExpression
	DeclarationBase
}

var _ Declaration = &InheritanceDeclaration{}

func (*InheritanceDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindInheritance
}

func (d *InheritanceDeclaration) StartPosition() Position {
	return d.BaseType.StartPosition()
}

func (d *InheritanceDeclaration) EndPosition() Position {
	return d.BaseType.EndPosition()
}

func (d *InheritanceDeclaration) Doc() prettier.Doc {
	return d.BaseType.Doc()
}

func (d *InheritanceDeclaration) String() string {
	return d.BaseType.String()
}

// Inheritances returns the inheritance clauses of the given declaration, in order.
func Inheritances(declaration Declaration) []*InheritanceDeclaration {
	return MembersOfType[*InheritanceDeclaration](declaration)
}
