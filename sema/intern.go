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
)

// InternTable hash-conses substitutions:
// two resolved substitutions with the same key are the same node.
//
// Unresolved substitutions are never interned,
// as their key may change once the values are resolved.
type InternTable struct {
	substitutions map[string]Substitutions
}

func NewInternTable() *InternTable {
	return &InternTable{
		substitutions: map[string]Substitutions{},
	}
}

// GenericSubstitution returns the canonical substitution for the given generic, arguments, and outer chain.
func (t *InternTable) GenericSubstitution(
	generic *ast.GenericDeclaration,
	args []Val,
	outer Substitutions,
) *GenericSubstitution {
	substitution := &GenericSubstitution{
		Generic: generic,
		Args:    args,
		outer:   outer,
	}
	return intern(t, substitution)
}

// ThisTypeSubstitution returns the canonical substitution for the given interface, witness, table, and outer chain.
func (t *InternTable) ThisTypeSubstitution(
	interfaceDeclaration *ast.InterfaceDeclaration,
	witness SubtypeWitness,
	table *WitnessTable,
	outer Substitutions,
) *ThisTypeSubstitution {
	substitution := &ThisTypeSubstitution{
		Interface: interfaceDeclaration,
		Witness:   witness,
		Table:     table,
		outer:     outer,
	}
	return intern(t, substitution)
}

// Len returns the number of interned substitutions.
func (t *InternTable) Len() int {
	return len(t.substitutions)
}

func intern[T Substitutions](table *InternTable, substitution T) T {
	if !substitution.IsResolved() {
		return substitution
	}

	key := substitution.Key()
	if existing, ok := table.substitutions[key]; ok {
		if typed, ok := existing.(T); ok {
			return typed
		}
	}
	table.substitutions[key] = substitution
	return substitution
}
