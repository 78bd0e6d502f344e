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
	"github.com/onflow/declcheck/errors"
)

// FunctionDeclaration declares a function or method.
// Parameters are ParameterDeclaration members.
// A function without a body is a prototype, or a requirement inside an interface.
type FunctionDeclaration struct {
	// ReturnType is nil for `void`
	ReturnType TypeExpression
	Body       *Block
	DeclarationBase
}

var _ Declaration = &FunctionDeclaration{}

func (*FunctionDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindFunction
}

func (d *FunctionDeclaration) Parameters() []*ParameterDeclaration {
	return MembersOfType[*ParameterDeclaration](d)
}

func (d *FunctionDeclaration) Doc() prettier.Doc {
	var returnTypeDoc prettier.Doc = prettier.Text("void")
	if d.ReturnType != nil {
		returnTypeDoc = d.ReturnType.Doc()
	}
	return prettier.Concat{
		d.Modifiers.Doc(),
		returnTypeDoc,
		prettier.Text(" " + d.Identifier.Identifier),
		parametersDoc(d.Parameters()),
		bodyDoc(d.Body),
	}
}

func (d *FunctionDeclaration) String() string {
	return Prettier(d)
}

// ConstructorDeclaration declares an initializer of the enclosing type.
type ConstructorDeclaration struct {
	Body *Block
	DeclarationBase
}

var _ Declaration = &ConstructorDeclaration{}

func (*ConstructorDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindConstructor
}

func (d *ConstructorDeclaration) Parameters() []*ParameterDeclaration {
	return MembersOfType[*ParameterDeclaration](d)
}

func (d *ConstructorDeclaration) Doc() prettier.Doc {
	return prettier.Concat{
		d.Modifiers.Doc(),
		prettier.Text("__init"),
		parametersDoc(d.Parameters()),
		bodyDoc(d.Body),
	}
}

func (d *ConstructorDeclaration) String() string {
	return Prettier(d)
}

// ParameterDeclaration declares a parameter of a function, constructor, or accessor.
type ParameterDeclaration struct {
	TypeAnnotation TypeExpression
	DefaultValue   Expression
	DeclarationBase
}

var _ Declaration = &ParameterDeclaration{}

func (*ParameterDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindParameter
}

func (d *ParameterDeclaration) Doc() prettier.Doc {
	doc := prettier.Concat{
		d.Modifiers.Doc(),
		d.TypeAnnotation.Doc(),
		prettier.Text(" " + d.Identifier.Identifier),
	}
	if d.DefaultValue != nil {
		doc = append(doc,
			prettier.Text(" = "),
			d.DefaultValue.Doc(),
		)
	}
	return doc
}

func (d *ParameterDeclaration) String() string {
	return Prettier(d)
}

//go:generate stringer -type=AccessorKind

type AccessorKind uint8

const (
	AccessorKindGet AccessorKind = iota
	AccessorKindSet
	AccessorKindRef
)

const AccessorKindCount = int(AccessorKindRef) + 1

func (k AccessorKind) Keyword() string {
	switch k {
	case AccessorKindGet:
		return "get"
	case AccessorKindSet:
		return "set"
	case AccessorKindRef:
		return "ref"
	}

	panic(errors.NewUnreachableError())
}

func (k AccessorKind) DeclarationKind() common.DeclarationKind {
	switch k {
	case AccessorKindGet:
		return common.DeclarationKindGetter
	case AccessorKindSet:
		return common.DeclarationKindSetter
	case AccessorKindRef:
		return common.DeclarationKindRefAccessor
	}

	panic(errors.NewUnreachableError())
}

// AccessorDeclaration declares a getter, setter, or ref accessor of a property.
// Parameters are ParameterDeclaration members.
type AccessorDeclaration struct {
	Kind AccessorKind
	Body *Block
	DeclarationBase
}

var _ Declaration = &AccessorDeclaration{}

func (d *AccessorDeclaration) DeclarationKind() common.DeclarationKind {
	return d.Kind.DeclarationKind()
}

func (d *AccessorDeclaration) Parameters() []*ParameterDeclaration {
	return MembersOfType[*ParameterDeclaration](d)
}

func (d *AccessorDeclaration) Doc() prettier.Doc {
	doc := prettier.Concat{
		d.Modifiers.Doc(),
		prettier.Text(d.Kind.Keyword()),
	}
	if parameters := d.Parameters(); len(parameters) > 0 {
		doc = append(doc, parametersDoc(parameters))
	}
	return append(doc, bodyDoc(d.Body))
}

func (d *AccessorDeclaration) String() string {
	return Prettier(d)
}

func parametersDoc(parameters []*ParameterDeclaration) prettier.Doc {
	if len(parameters) == 0 {
		return prettier.Text("()")
	}
	parameterDocs := make([]prettier.Doc, len(parameters))
	for i, parameter := range parameters {
		parameterDocs[i] = parameter.Doc()
	}
	return prettier.WrapParentheses(
		prettier.Join(argumentSeparatorDoc, parameterDocs...),
		prettier.SoftLine{},
	)
}

func bodyDoc(body *Block) prettier.Doc {
	if body == nil {
		return prettier.Text(";")
	}
	return prettier.Concat{
		prettier.Space,
		body.Doc(),
	}
}
