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
)

type Statement interface {
	Element
	Doc() prettier.Doc
	isStatement()
}

// Block

type Block struct {
	Statements []Statement
	Range
}

var _ Statement = &Block{}

func (*Block) isStatement() {}

func (b *Block) Doc() prettier.Doc {
	if len(b.Statements) == 0 {
		return prettier.Text("{}")
	}

	statementDocs := make([]prettier.Doc, len(b.Statements))
	for i, statement := range b.Statements {
		statementDocs[i] = statement.Doc()
	}

	return prettier.Concat{
		prettier.Text("{"),
		prettier.Indent{
			Doc: prettier.Concat{
				prettier.HardLine{},
				prettier.Join(prettier.HardLine{}, statementDocs...),
			},
		},
		prettier.HardLine{},
		prettier.Text("}"),
	}
}

// ReturnStatement

type ReturnStatement struct {
	Expression Expression
	Range
}

var _ Statement = &ReturnStatement{}

func (*ReturnStatement) isStatement() {}

func (s *ReturnStatement) Doc() prettier.Doc {
	if s.Expression == nil {
		return prettier.Text("return;")
	}
	return prettier.Concat{
		prettier.Text("return "),
		s.Expression.Doc(),
		prettier.Text(";"),
	}
}

// ExpressionStatement

type ExpressionStatement struct {
	Expression Expression
}

var _ Statement = &ExpressionStatement{}

func (*ExpressionStatement) isStatement() {}

func (s *ExpressionStatement) StartPosition() Position {
	return s.Expression.StartPosition()
}

func (s *ExpressionStatement) EndPosition() Position {
	return s.Expression.EndPosition()
}

func (s *ExpressionStatement) Doc() prettier.Doc {
	return prettier.Concat{
		s.Expression.Doc(),
		prettier.Text(";"),
	}
}

// AssignmentStatement

type AssignmentStatement struct {
	Target Expression
	Value  Expression
}

var _ Statement = &AssignmentStatement{}

func (*AssignmentStatement) isStatement() {}

func (s *AssignmentStatement) StartPosition() Position {
	return s.Target.StartPosition()
}

func (s *AssignmentStatement) EndPosition() Position {
	return s.Value.EndPosition()
}

func (s *AssignmentStatement) Doc() prettier.Doc {
	return prettier.Concat{
		s.Target.Doc(),
		prettier.Text(" = "),
		s.Value.Doc(),
		prettier.Text(";"),
	}
}
