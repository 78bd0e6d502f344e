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

// DeclarationID is a stable handle of a declaration in an Arena.
// The zero value is not a valid handle.
type DeclarationID uint32

const InvalidDeclarationID DeclarationID = 0

func (id DeclarationID) IsValid() bool {
	return id != InvalidDeclarationID
}

// Modifiers

type Modifiers struct {
	Set common.ModifierSet
	// TargetIntrinsics are the targets of all `__target_intrinsic(target)` modifiers
	TargetIntrinsics []Identifier
	// SpecializedForTarget is the target of the `__specialized_for_target(target)` modifier
	SpecializedForTarget *Identifier
}

func (m Modifiers) Has(modifier common.Modifier) bool {
	return m.Set.Has(modifier)
}

func (m Modifiers) Doc() prettier.Doc {
	var docs []prettier.Doc
	for _, modifier := range m.Set.Modifiers() {
		switch modifier {
		case common.ModifierTargetIntrinsic:
			for _, target := range m.TargetIntrinsics {
				docs = append(docs, prettier.Text(modifier.Keyword()+"("+target.Identifier+")"))
			}
		case common.ModifierSpecializedForTarget:
			if m.SpecializedForTarget != nil {
				docs = append(docs, prettier.Text(modifier.Keyword()+"("+m.SpecializedForTarget.Identifier+")"))
			}
		default:
			docs = append(docs, prettier.Text(modifier.Keyword()))
		}
	}
	if len(docs) == 0 {
		return prettier.Text("")
	}
	return prettier.Concat{
		prettier.Join(prettier.Space, docs...),
		prettier.Space,
	}
}

// Element is implemented by all nodes
type Element interface {
	HasPosition
}

// Declaration is implemented by all declaration kinds.
// The set of implementations is closed.
type Declaration interface {
	Element
	DeclarationID() DeclarationID
	DeclarationKind() common.DeclarationKind
	DeclarationIdentifier() Identifier
	DeclarationModifiers() Modifiers
	DeclarationParent() DeclarationID
	DeclarationMembers() []Declaration
	Doc() prettier.Doc
	String() string
	base() *DeclarationBase
}

// DeclarationBase holds the state shared by all declarations.
type DeclarationBase struct {
	Identifier Identifier
	Modifiers  Modifiers
	Members    []Declaration
	Range
	id     DeclarationID
	parent DeclarationID
}

func (d *DeclarationBase) base() *DeclarationBase {
	return d
}

func (d *DeclarationBase) DeclarationID() DeclarationID {
	return d.id
}

func (d *DeclarationBase) DeclarationIdentifier() Identifier {
	return d.Identifier
}

func (d *DeclarationBase) DeclarationModifiers() Modifiers {
	return d.Modifiers
}

func (d *DeclarationBase) DeclarationParent() DeclarationID {
	return d.parent
}

func (d *DeclarationBase) DeclarationMembers() []Declaration {
	return d.Members
}

// MembersOfType returns the members of the given declaration which have type T, in order.
func MembersOfType[T Declaration](declaration Declaration) []T {
	var result []T
	for _, member := range declaration.DeclarationMembers() {
		if typed, ok := member.(T); ok {
			result = append(result, typed)
		}
	}
	return result
}

// IsContainer returns true for declarations whose members are ordinary
// named declarations, e.g. types and modules.
func IsContainer(declaration Declaration) bool {
	switch declaration.(type) {
	case *ModuleDeclaration,
		*StructDeclaration,
		*InterfaceDeclaration,
		*EnumDeclaration,
		*ExtensionDeclaration:
		return true
	}
	return false
}

// IsAggregateTypeDeclaration returns true for struct, class, and interface declarations.
func IsAggregateTypeDeclaration(declaration Declaration) bool {
	switch declaration.(type) {
	case *StructDeclaration, *InterfaceDeclaration:
		return true
	}
	return false
}

func membersDoc(members []Declaration) prettier.Doc {
	if len(members) == 0 {
		return prettier.Text(" {}")
	}

	memberDocs := make([]prettier.Doc, 0, len(members))
	for _, member := range members {
		if _, ok := member.(*InheritanceDeclaration); ok {
			continue
		}
		memberDocs = append(memberDocs, member.Doc())
	}
	if len(memberDocs) == 0 {
		return prettier.Text(" {}")
	}

	return prettier.Concat{
		prettier.Text(" {"),
		prettier.Indent{
			Doc: prettier.Concat{
				prettier.HardLine{},
				prettier.Join(prettier.HardLine{}, memberDocs...),
			},
		},
		prettier.HardLine{},
		prettier.Text("}"),
	}
}

func inheritancesDoc(members []Declaration) prettier.Doc {
	inheritances := make([]prettier.Doc, 0)
	for _, member := range members {
		inheritance, ok := member.(*InheritanceDeclaration)
		if !ok {
			continue
		}
		inheritances = append(inheritances, inheritance.BaseType.Doc())
	}
	if len(inheritances) == 0 {
		return prettier.Text("")
	}
	return prettier.Concat{
		prettier.Text(" : "),
		prettier.Join(prettier.Text(", "), inheritances...),
	}
}
