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
	"github.com/onflow/declcheck/ast"
	"github.com/onflow/declcheck/common/orderedmap"
	"github.com/onflow/declcheck/errors"
)

type RequirementWitnessKind uint8

const (
	RequirementWitnessKindUnknown RequirementWitnessKind = iota
	RequirementWitnessKindDeclRef
	RequirementWitnessKindVal
	RequirementWitnessKindWitnessTable
)

func (k RequirementWitnessKind) Name() string {
	switch k {
	case RequirementWitnessKindDeclRef:
		return "declaration"
	case RequirementWitnessKindVal:
		return "value"
	case RequirementWitnessKindWitnessTable:
		return "witness table"
	case RequirementWitnessKindUnknown:
		return "unknown"
	}

	panic(errors.NewUnreachableError())
}

// RequirementWitness proves that one requirement of an interface is satisfied:
// by a declaration, by a value (e.g. a folded constant or a type),
// or by a nested witness table for an inherited interface.
type RequirementWitness struct {
	DeclRef DeclRef
	Val     Val
	Table   *WitnessTable
	Kind    RequirementWitnessKind
}

func NewDeclRefWitness(declRef DeclRef) RequirementWitness {
	return RequirementWitness{
		Kind:    RequirementWitnessKindDeclRef,
		DeclRef: declRef,
	}
}

func NewValWitness(val Val) RequirementWitness {
	return RequirementWitness{
		Kind: RequirementWitnessKindVal,
		Val:  val,
	}
}

func NewWitnessTableWitness(table *WitnessTable) RequirementWitness {
	return RequirementWitness{
		Kind:  RequirementWitnessKindWitnessTable,
		Table: table,
	}
}

func (w RequirementWitness) String() string {
	switch w.Kind {
	case RequirementWitnessKindDeclRef:
		return w.DeclRef.String()
	case RequirementWitnessKindVal:
		return w.Val.String()
	case RequirementWitnessKindWitnessTable:
		return w.Table.String()
	}
	return "<unknown>"
}

type RequirementWitnessOrderedMap = orderedmap.OrderedMap[ast.Declaration, RequirementWitness]

// WitnessTable maps the requirements of an interface to their witnesses,
// for one implementing type.
type WitnessTable struct {
	WitnessedType Type
	BaseType      Type
	requirements  *RequirementWitnessOrderedMap
	isComplete    bool
	isFailed      bool
}

func NewWitnessTable(witnessedType Type, baseType Type) *WitnessTable {
	return &WitnessTable{
		WitnessedType: witnessedType,
		BaseType:      baseType,
		requirements:  &RequirementWitnessOrderedMap{},
	}
}

// Add installs the witness for the given requirement.
// An existing witness is never replaced.
func (t *WitnessTable) Add(requirement ast.Declaration, witness RequirementWitness) {
	t.requirements.SetIfAbsent(requirement, witness)
}

func (t *WitnessTable) Get(requirement ast.Declaration) (RequirementWitness, bool) {
	return t.requirements.Get(requirement)
}

func (t *WitnessTable) Has(requirement ast.Declaration) bool {
	return t.requirements.Contains(requirement)
}

func (t *WitnessTable) Len() int {
	return t.requirements.Len()
}

// Foreach calls f for every requirement and its witness, in the order they were installed.
func (t *WitnessTable) Foreach(f func(requirement ast.Declaration, witness RequirementWitness)) {
	t.requirements.Foreach(f)
}

// Requirements returns the satisfied requirements, in the order they were installed.
func (t *WitnessTable) Requirements() []ast.Declaration {
	return t.requirements.Keys()
}

// IsComplete returns true once conformance checking finished for this table.
func (t *WitnessTable) IsComplete() bool {
	return t.isComplete
}

// IsFailed returns true if some requirement could not be satisfied.
// A failed table is never considered successful later.
func (t *WitnessTable) IsFailed() bool {
	return t.isFailed
}

func (t *WitnessTable) markComplete(success bool) {
	t.isComplete = true
	if !success {
		t.isFailed = true
	}
}

func (t *WitnessTable) String() string {
	return valKey(t.WitnessedType) + " : " + valKey(t.BaseType)
}
