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
	"strconv"
	"strings"

	"github.com/turbolent/prettier"
)

// TypeExpression is the syntactic form of a type, before resolution.
type TypeExpression interface {
	Element
	Doc() prettier.Doc
	String() string
	isTypeExpression()
}

// NominalType names a type, optionally applied to generic arguments,
// e.g. `int`, `T`, or `Box<int, 3>`.
type NominalType struct {
	Identifier Identifier
	Arguments  []TypeExpression
	EndPos     Position
}

var _ TypeExpression = &NominalType{}

func (*NominalType) isTypeExpression() {}

func (t *NominalType) StartPosition() Position {
	return t.Identifier.StartPosition()
}

func (t *NominalType) EndPosition() Position {
	if len(t.Arguments) > 0 {
		return t.EndPos
	}
	return t.Identifier.EndPosition()
}

func (t *NominalType) Doc() prettier.Doc {
	if len(t.Arguments) == 0 {
		return prettier.Text(t.Identifier.Identifier)
	}
	argumentDocs := make([]prettier.Doc, len(t.Arguments))
	for i, argument := range t.Arguments {
		argumentDocs[i] = argument.Doc()
	}
	return prettier.Concat{
		prettier.Text(t.Identifier.Identifier),
		prettier.Wrap(
			prettier.Text("<"),
			prettier.Join(prettier.Text(", "), argumentDocs...),
			prettier.Text(">"),
			prettier.SoftLine{},
		),
	}
}

func (t *NominalType) String() string {
	if len(t.Arguments) == 0 {
		return t.Identifier.Identifier
	}
	var sb strings.Builder
	sb.WriteString(t.Identifier.Identifier)
	sb.WriteByte('<')
	for i, argument := range t.Arguments {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(argument.String())
	}
	sb.WriteByte('>')
	return sb.String()
}

// MemberType names a type nested in another type, e.g. `T.Element`.
type MemberType struct {
	Parent     TypeExpression
	Identifier Identifier
}

var _ TypeExpression = &MemberType{}

func (*MemberType) isTypeExpression() {}

func (t *MemberType) StartPosition() Position {
	return t.Parent.StartPosition()
}

func (t *MemberType) EndPosition() Position {
	return t.Identifier.EndPosition()
}

func (t *MemberType) Doc() prettier.Doc {
	return prettier.Concat{
		t.Parent.Doc(),
		prettier.Text("." + t.Identifier.Identifier),
	}
}

func (t *MemberType) String() string {
	return t.Parent.String() + "." + t.Identifier.Identifier
}

// ThisTypeExpression is the `This` type of an interface.
type ThisTypeExpression struct {
	Range
}

var _ TypeExpression = &ThisTypeExpression{}

func (*ThisTypeExpression) isTypeExpression() {}

func (*ThisTypeExpression) Doc() prettier.Doc {
	return prettier.Text("This")
}

func (*ThisTypeExpression) String() string {
	return "This"
}

// IntegerTypeArgument is an integer literal in generic argument position, e.g. the `3` in `Vector<int, 3>`.
type IntegerTypeArgument struct {
	Value int64
	Range
}

var _ TypeExpression = &IntegerTypeArgument{}

func (*IntegerTypeArgument) isTypeExpression() {}

func (t *IntegerTypeArgument) Doc() prettier.Doc {
	return prettier.Text(t.String())
}

func (t *IntegerTypeArgument) String() string {
	return strconv.FormatInt(t.Value, 10)
}
