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

// GenericDeclaration wraps a declaration which is parameterized over generic parameters.
// The members are the parameters and constraints, in declaration order.
// The identifier is the identifier of the inner declaration.
type GenericDeclaration struct {
	Inner Declaration
	DeclarationBase
}

var _ Declaration = &GenericDeclaration{}

func (*GenericDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindGeneric
}

func (d *GenericDeclaration) Doc() prettier.Doc {
	var parameterDocs []prettier.Doc
	for _, member := range d.Members {
		switch member := member.(type) {
		case *GenericTypeParameterDeclaration, *GenericValueParameterDeclaration:
			parameterDocs = append(parameterDocs, member.Doc())
		}
	}
	var constraintDocs []prettier.Doc
	for _, constraint := range MembersOfType[*GenericTypeConstraintDeclaration](d) {
		constraintDocs = append(constraintDocs, constraint.Doc())
	}

	doc := prettier.Concat{
		prettier.Text("__generic<"),
		prettier.Join(prettier.Text(", "), parameterDocs...),
		prettier.Text(">"),
	}
	if len(constraintDocs) > 0 {
		doc = append(doc,
			prettier.Text(" where "),
			prettier.Join(prettier.Text(", "), constraintDocs...),
		)
	}
	return append(doc,
		prettier.HardLine{},
		d.Inner.Doc(),
	)
}

func (d *GenericDeclaration) String() string {
	return Prettier(d)
}

// GenericTypeParameterDeclaration declares a type parameter of a generic.
type GenericTypeParameterDeclaration struct {
	DeclarationBase
}

var _ Declaration = &GenericTypeParameterDeclaration{}

func (*GenericTypeParameterDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindTypeParameter
}

func (d *GenericTypeParameterDeclaration) Doc() prettier.Doc {
	return prettier.Text(d.Identifier.Identifier)
}

func (d *GenericTypeParameterDeclaration) String() string {
	return d.Identifier.Identifier
}

// GenericValueParameterDeclaration declares a value parameter of a generic, e.g. `let N : int`.
type GenericValueParameterDeclaration struct {
	TypeAnnotation TypeExpression
	DeclarationBase
}

var _ Declaration = &GenericValueParameterDeclaration{}

func (*GenericValueParameterDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindValueParameter
}

func (d *GenericValueParameterDeclaration) Doc() prettier.Doc {
	return prettier.Concat{
		prettier.Text("let " + d.Identifier.Identifier + " : "),
		d.TypeAnnotation.Doc(),
	}
}

func (d *GenericValueParameterDeclaration) String() string {
	return Prettier(d)
}

// GenericTypeConstraintDeclaration constrains a type of a generic to be a subtype of another,
// e.g. the `T : IFoo` in `<T : IFoo>`.
type GenericTypeConstraintDeclaration struct {
	Sub TypeExpression
	Sup TypeExpression
	DeclarationBase
}

var _ Declaration = &GenericTypeConstraintDeclaration{}

func (*GenericTypeConstraintDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindGenericConstraint
}

func (d *GenericTypeConstraintDeclaration) StartPosition() Position {
	return d.Sub.StartPosition()
}

func (d *GenericTypeConstraintDeclaration) EndPosition() Position {
	return d.Sup.EndPosition()
}

func (d *GenericTypeConstraintDeclaration) Doc() prettier.Doc {
	return prettier.Concat{
		d.Sub.Doc(),
		prettier.Text(" : "),
		d.Sup.Doc(),
	}
}

func (d *GenericTypeConstraintDeclaration) String() string {
	return Prettier(d)
}

// AssociatedTypeDeclaration declares an associated type requirement of an interface.
// Constraints are TypeConstraintDeclaration members.
type AssociatedTypeDeclaration struct {
	DeclarationBase
}

var _ Declaration = &AssociatedTypeDeclaration{}

func (*AssociatedTypeDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindAssociatedType
}

func (d *AssociatedTypeDeclaration) Constraints() []*TypeConstraintDeclaration {
	return MembersOfType[*TypeConstraintDeclaration](d)
}

func (d *AssociatedTypeDeclaration) Doc() prettier.Doc {
	doc := prettier.Concat{
		prettier.Text("associatedtype " + d.Identifier.Identifier),
	}
	constraints := d.Constraints()
	if len(constraints) > 0 {
		constraintDocs := make([]prettier.Doc, len(constraints))
		for i, constraint := range constraints {
			constraintDocs[i] = constraint.Doc()
		}
		doc = append(doc,
			prettier.Text(" : "),
			prettier.Join(prettier.Text(", "), constraintDocs...),
		)
	}
	return append(doc, prettier.Text(";"))
}

func (d *AssociatedTypeDeclaration) String() string {
	return Prettier(d)
}

// TypeConstraintDeclaration constrains its parent associated type to be a subtype of a type.
type TypeConstraintDeclaration struct {
	Sup TypeExpression
	DeclarationBase
}

var _ Declaration = &TypeConstraintDeclaration{}

func (*TypeConstraintDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindTypeConstraint
}

func (d *TypeConstraintDeclaration) StartPosition() Position {
	return d.Sup.StartPosition()
}

func (d *TypeConstraintDeclaration) EndPosition() Position {
	return d.Sup.EndPosition()
}

func (d *TypeConstraintDeclaration) Doc() prettier.Doc {
	return d.Sup.Doc()
}

func (d *TypeConstraintDeclaration) String() string {
	return d.Sup.String()
}

// TypeAliasDeclaration declares a name for a type, e.g. `typedef int Index;`.
type TypeAliasDeclaration struct {
	Type TypeExpression
	DeclarationBase
}

var _ Declaration = &TypeAliasDeclaration{}

func (*TypeAliasDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindTypeAlias
}

func (d *TypeAliasDeclaration) Doc() prettier.Doc {
	return prettier.Concat{
		prettier.Text("typedef "),
		d.Type.Doc(),
		prettier.Text(" " + d.Identifier.Identifier + ";"),
	}
}

func (d *TypeAliasDeclaration) String() string {
	return Prettier(d)
}

// GenericParameters returns the type and value parameters of the generic, in order.
func (d *GenericDeclaration) GenericParameters() []Declaration {
	var parameters []Declaration
	for _, member := range d.Members {
		switch member.(type) {
		case *GenericTypeParameterDeclaration, *GenericValueParameterDeclaration:
			parameters = append(parameters, member)
		}
	}
	return parameters
}

// Constraints returns the constraints of the generic, in order.
func (d *GenericDeclaration) Constraints() []*GenericTypeConstraintDeclaration {
	return MembersOfType[*GenericTypeConstraintDeclaration](d)
}
