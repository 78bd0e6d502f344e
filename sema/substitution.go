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
	"fmt"
	"strconv"
	"strings"

	"github.com/onflow/declcheck/ast"
)

// Substitutions is one layer of a chain of argument bindings.
// The chain is ordered from the innermost to the outermost scope.
type Substitutions interface {
	isSubstitutions()
	Outer() Substitutions
	IsResolved() bool
	Key() string
	String() string
}

func substitutionsKey(substitutions Substitutions) string {
	if substitutions == nil {
		return ""
	}
	return substitutions.Key()
}

// SubstitutionsEqual returns true if the two chains bind the same values.
func SubstitutionsEqual(a, b Substitutions) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a == b {
		return true
	}
	return a.Key() == b.Key()
}

// GenericSubstitution binds the parameters of a generic declaration.
//
// Args holds one value per generic parameter, in declaration order,
// followed by one subtype witness per constraint, in declaration order.
type GenericSubstitution struct {
	Generic *ast.GenericDeclaration
	Args    []Val
	outer   Substitutions
}

var _ Substitutions = &GenericSubstitution{}

func (*GenericSubstitution) isSubstitutions() {}

func (s *GenericSubstitution) Outer() Substitutions {
	return s.outer
}

func (s *GenericSubstitution) IsResolved() bool {
	for _, arg := range s.Args {
		if arg == nil || !arg.IsResolved() {
			return false
		}
	}
	return s.outer == nil || s.outer.IsResolved()
}

func (s *GenericSubstitution) Key() string {
	var sb strings.Builder
	sb.WriteString("G(")
	sb.WriteString(strconv.FormatUint(uint64(s.Generic.DeclarationID()), 10))
	sb.WriteByte(';')
	for i, arg := range s.Args {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(valKey(arg))
	}
	sb.WriteByte(';')
	sb.WriteString(substitutionsKey(s.outer))
	sb.WriteByte(')')
	return sb.String()
}

func (s *GenericSubstitution) String() string {
	return s.Generic.Identifier.Identifier + "<" + joinVals(s.Args) + ">"
}

// Arg returns the argument bound to the given generic parameter.
func (s *GenericSubstitution) Arg(parameter ast.Declaration) (Val, bool) {
	for i, candidate := range s.Generic.GenericParameters() {
		if candidate != parameter {
			continue
		}
		if i >= len(s.Args) {
			return nil, false
		}
		return s.Args[i], true
	}
	return nil, false
}

// ConstraintWitness returns the witness bound to the given constraint.
func (s *GenericSubstitution) ConstraintWitness(constraint *ast.GenericTypeConstraintDeclaration) (Val, bool) {
	parameterCount := len(s.Generic.GenericParameters())
	for i, candidate := range s.Generic.Constraints() {
		if candidate != constraint {
			continue
		}
		index := parameterCount + i
		if index >= len(s.Args) {
			return nil, false
		}
		return s.Args[index], true
	}
	return nil, false
}

// ThisTypeSubstitution binds the abstract `This` type of an interface
// to a concrete type, by a witness of the type's conformance.
//
// Table is the witness table of the conformance, if it is known,
// and is used to resolve associated types.
type ThisTypeSubstitution struct {
	Interface *ast.InterfaceDeclaration
	Witness   SubtypeWitness
	Table     *WitnessTable
	outer     Substitutions
}

var _ Substitutions = &ThisTypeSubstitution{}

func (*ThisTypeSubstitution) isSubstitutions() {}

func (s *ThisTypeSubstitution) Outer() Substitutions {
	return s.outer
}

func (s *ThisTypeSubstitution) IsResolved() bool {
	return s.Witness != nil &&
		s.Witness.IsResolved() &&
		(s.outer == nil || s.outer.IsResolved())
}

func (s *ThisTypeSubstitution) Key() string {
	table := "-"
	if s.Table != nil {
		table = fmt.Sprintf("%p", s.Table)
	}
	return "T(" +
		strconv.FormatUint(uint64(s.Interface.DeclarationID()), 10) + ";" +
		valKey(s.Witness) + ";" +
		table + ";" +
		substitutionsKey(s.outer) + ")"
}

func (s *ThisTypeSubstitution) String() string {
	return "This=" + valKey(s.Witness.SubType())
}

// findGenericSubstitution returns the layer of the chain which binds the given generic.
func findGenericSubstitution(substitutions Substitutions, generic ast.Declaration) *GenericSubstitution {
	for ; substitutions != nil; substitutions = substitutions.Outer() {
		genericSubstitution, ok := substitutions.(*GenericSubstitution)
		if ok && ast.Declaration(genericSubstitution.Generic) == generic {
			return genericSubstitution
		}
	}
	return nil
}

// findThisTypeSubstitution returns the layer of the chain which binds `This` of the given interface.
func findThisTypeSubstitution(substitutions Substitutions, interfaceDeclaration ast.Declaration) *ThisTypeSubstitution {
	for ; substitutions != nil; substitutions = substitutions.Outer() {
		thisTypeSubstitution, ok := substitutions.(*ThisTypeSubstitution)
		if ok && ast.Declaration(thisTypeSubstitution.Interface) == interfaceDeclaration {
			return thisTypeSubstitution
		}
	}
	return nil
}
