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

package common

//go:generate stringer -type=DeclCheckState

// DeclCheckState is the stage a declaration has reached in checking.
//
// The order of the constants is a stable contract:
// a declaration's state only ever increases.
type DeclCheckState uint8

const (
	// DeclCheckStateUnchecked is the state of a declaration fresh from the parser.
	DeclCheckStateUnchecked DeclCheckState = iota
	// DeclCheckStateModifiersChecked means the modifiers have been validated.
	DeclCheckStateModifiersChecked
	// DeclCheckStateSignatureChecked means the type or signature is resolved,
	// e.g. parameter and result types of a function.
	DeclCheckStateSignatureChecked
	// DeclCheckStateReadyForReference means redeclarations have been checked,
	// so references to the declaration resolve to a single family.
	DeclCheckStateReadyForReference
	// DeclCheckStateReadyForLookup means inheritance clauses are resolved,
	// so member lookup through bases and extensions is complete.
	DeclCheckStateReadyForLookup
	// DeclCheckStateReadyForConformances means the requirement list of an interface is final
	// and all conformances of a type have been resolved.
	DeclCheckStateReadyForConformances
	// DeclCheckStateChecked means the declaration, including its body, is fully checked.
	DeclCheckStateChecked
)

const DeclCheckStateCount = int(DeclCheckStateChecked) + 1

// Next returns the state following this state.
// The final state is its own successor.
func (s DeclCheckState) Next() DeclCheckState {
	if s >= DeclCheckStateChecked {
		return DeclCheckStateChecked
	}
	return s + 1
}

func (s DeclCheckState) Name() string {
	switch s {
	case DeclCheckStateUnchecked:
		return "unchecked"
	case DeclCheckStateModifiersChecked:
		return "modifiers checked"
	case DeclCheckStateSignatureChecked:
		return "signature checked"
	case DeclCheckStateReadyForReference:
		return "ready for reference"
	case DeclCheckStateReadyForLookup:
		return "ready for lookup"
	case DeclCheckStateReadyForConformances:
		return "ready for conformances"
	case DeclCheckStateChecked:
		return "checked"
	}

	return s.String()
}

// MaxDeclCheckState returns the later of the two given states.
func MaxDeclCheckState(a, b DeclCheckState) DeclCheckState {
	if a > b {
		return a
	}
	return b
}
