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

	"github.com/turbolent/prettier"
)

type Expression interface {
	Element
	Doc() prettier.Doc
	String() string
	isExpression()
}

var argumentSeparatorDoc prettier.Doc = prettier.Concat{
	prettier.Text(","),
	prettier.Line{},
}

// IntegerExpression

type IntegerExpression struct {
	Value int64
	Range
}

var _ Expression = &IntegerExpression{}

func (*IntegerExpression) isExpression() {}

func (e *IntegerExpression) Doc() prettier.Doc {
	return prettier.Text(e.String())
}

func (e *IntegerExpression) String() string {
	return strconv.FormatInt(e.Value, 10)
}

// FloatExpression

type FloatExpression struct {
	Value float64
	Range
}

var _ Expression = &FloatExpression{}

func (*FloatExpression) isExpression() {}

func (e *FloatExpression) Doc() prettier.Doc {
	return prettier.Text(e.String())
}

func (e *FloatExpression) String() string {
	return strconv.FormatFloat(e.Value, 'g', -1, 64)
}

// BoolExpression

type BoolExpression struct {
	Value bool
	Range
}

var _ Expression = &BoolExpression{}

func (*BoolExpression) isExpression() {}

func (e *BoolExpression) Doc() prettier.Doc {
	return prettier.Text(e.String())
}

func (e *BoolExpression) String() string {
	return strconv.FormatBool(e.Value)
}

// IdentifierExpression

type IdentifierExpression struct {
	Identifier Identifier
}

var _ Expression = &IdentifierExpression{}

func (*IdentifierExpression) isExpression() {}

func (e *IdentifierExpression) StartPosition() Position {
	return e.Identifier.StartPosition()
}

func (e *IdentifierExpression) EndPosition() Position {
	return e.Identifier.EndPosition()
}

func (e *IdentifierExpression) Doc() prettier.Doc {
	return prettier.Text(e.Identifier.Identifier)
}

func (e *IdentifierExpression) String() string {
	return e.Identifier.Identifier
}

// ThisExpression refers to the receiver of a member function or accessor.
type ThisExpression struct {
	// IsLValue is true if the receiver may be mutated
	IsLValue bool
	Range
}

var _ Expression = &ThisExpression{}

func (*ThisExpression) isExpression() {}

func (*ThisExpression) Doc() prettier.Doc {
	return prettier.Text("this")
}

func (*ThisExpression) String() string {
	return "this"
}

// MemberExpression

type MemberExpression struct {
	Expression Expression
	Identifier Identifier
}

var _ Expression = &MemberExpression{}

func (*MemberExpression) isExpression() {}

func (e *MemberExpression) StartPosition() Position {
	return e.Expression.StartPosition()
}

func (e *MemberExpression) EndPosition() Position {
	return e.Identifier.EndPosition()
}

func (e *MemberExpression) Doc() prettier.Doc {
	return prettier.Concat{
		e.Expression.Doc(),
		prettier.Text("." + e.Identifier.Identifier),
	}
}

func (e *MemberExpression) String() string {
	return e.Expression.String() + "." + e.Identifier.Identifier
}

// InvocationExpression

type InvocationExpression struct {
	InvokedExpression Expression
	Arguments         []Expression
	EndPos            Position
}

var _ Expression = &InvocationExpression{}

func (*InvocationExpression) isExpression() {}

func (e *InvocationExpression) StartPosition() Position {
	return e.InvokedExpression.StartPosition()
}

func (e *InvocationExpression) EndPosition() Position {
	return e.EndPos
}

func (e *InvocationExpression) Doc() prettier.Doc {
	if len(e.Arguments) == 0 {
		return prettier.Concat{
			e.InvokedExpression.Doc(),
			prettier.Text("()"),
		}
	}

	argumentDocs := make([]prettier.Doc, len(e.Arguments))
	for i, argument := range e.Arguments {
		argumentDocs[i] = argument.Doc()
	}

	return prettier.Concat{
		e.InvokedExpression.Doc(),
		prettier.WrapParentheses(
			prettier.Join(argumentSeparatorDoc, argumentDocs...),
			prettier.SoftLine{},
		),
	}
}

func (e *InvocationExpression) String() string {
	return Prettier(e)
}

// UnaryExpression

type UnaryExpression struct {
	Operation  Operation
	Expression Expression
	StartPos   Position
}

var _ Expression = &UnaryExpression{}

func (*UnaryExpression) isExpression() {}

func (e *UnaryExpression) StartPosition() Position {
	return e.StartPos
}

func (e *UnaryExpression) EndPosition() Position {
	return e.Expression.EndPosition()
}

func (e *UnaryExpression) Doc() prettier.Doc {
	return prettier.Concat{
		prettier.Text(e.Operation.Symbol()),
		e.Expression.Doc(),
	}
}

func (e *UnaryExpression) String() string {
	return Prettier(e)
}

// BinaryExpression

type BinaryExpression struct {
	Operation Operation
	Left      Expression
	Right     Expression
}

var _ Expression = &BinaryExpression{}

func (*BinaryExpression) isExpression() {}

func (e *BinaryExpression) StartPosition() Position {
	return e.Left.StartPosition()
}

func (e *BinaryExpression) EndPosition() Position {
	return e.Right.EndPosition()
}

func (e *BinaryExpression) Doc() prettier.Doc {
	return prettier.Group{
		Doc: prettier.Concat{
			prettier.Text("("),
			e.Left.Doc(),
			prettier.Line{},
			prettier.Text(e.Operation.Symbol()),
			prettier.Space,
			e.Right.Doc(),
			prettier.Text(")"),
		},
	}
}

func (e *BinaryExpression) String() string {
	return Prettier(e)
}

// DeclarationReferenceExpression refers to a declaration directly,
// without going through lookup.
type DeclarationReferenceExpression struct {
	Declaration Declaration
	Range
}

var _ Expression = &DeclarationReferenceExpression{}

func (*DeclarationReferenceExpression) isExpression() {}

func (e *DeclarationReferenceExpression) Doc() prettier.Doc {
	return prettier.Text(e.Declaration.DeclarationIdentifier().Identifier)
}

func (e *DeclarationReferenceExpression) String() string {
	return e.Declaration.DeclarationIdentifier().Identifier
}

// OverloadedExpression refers to an already looked-up group of candidate declarations,
// optionally accessed on a base expression.
type OverloadedExpression struct {
	Base       Expression
	Identifier Identifier
	Candidates []Declaration
	Range
}

var _ Expression = &OverloadedExpression{}

func (*OverloadedExpression) isExpression() {}

func (e *OverloadedExpression) Doc() prettier.Doc {
	if e.Base == nil {
		return prettier.Text(e.Identifier.Identifier)
	}
	return prettier.Concat{
		e.Base.Doc(),
		prettier.Text("." + e.Identifier.Identifier),
	}
}

func (e *OverloadedExpression) String() string {
	return Prettier(e)
}
