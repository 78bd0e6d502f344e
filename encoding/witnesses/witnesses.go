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

// Package witnesses exports the witness tables produced by the checker
// in a canonical CBOR encoding, for consumption by code generators.
package witnesses

import (
	"bytes"
	"io"
	"math"
	"reflect"

	"github.com/fxamacker/cbor/v2"

	"github.com/onflow/declcheck/ast"
	"github.com/onflow/declcheck/errors"
	"github.com/onflow/declcheck/sema"
)

// CBORTagWitnessTables is the tag of an encoded document.
const CBORTagWitnessTables = 51_966

// Document is the exported form of all witness tables of a checked module.
type Document struct {
	Location string  `cbor:"1,keyasint,omitempty"`
	Tables   []Table `cbor:"2,keyasint,omitempty"`
}

// Table is the exported form of one witness table.
//
// Inheritance is the handle of the inheritance declaration the table is attached to,
// or zero for a nested table.
type Table struct {
	Type        string    `cbor:"1,keyasint,omitempty"`
	Interface   string    `cbor:"2,keyasint,omitempty"`
	Witnesses   []Witness `cbor:"3,keyasint,omitempty"`
	Inheritance uint32    `cbor:"4,keyasint,omitempty"`
	Failed      bool      `cbor:"5,keyasint,omitempty"`
}

// Witness is the exported form of the witness of one requirement.
type Witness struct {
	Table           *Table `cbor:"1,keyasint,omitempty"`
	RequirementName string `cbor:"2,keyasint,omitempty"`
	Value           string `cbor:"3,keyasint,omitempty"`
	Requirement     uint32 `cbor:"4,keyasint,omitempty"`
	Declaration     uint32 `cbor:"5,keyasint,omitempty"`
	Kind            uint8  `cbor:"6,keyasint,omitempty"`
}

var tags = func() cbor.TagSet {
	tagSet := cbor.NewTagSet()
	err := tagSet.Add(
		cbor.TagOptions{
			EncTag: cbor.EncTagRequired,
			DecTag: cbor.DecTagRequired,
		},
		reflect.TypeOf(Document{}),
		CBORTagWitnessTables,
	)
	if err != nil {
		panic(err)
	}
	return tagSet
}()

// CBOREncMode encodes deterministically:
// the same tables always produce the same bytes.
var CBOREncMode = func() cbor.EncMode {
	options := cbor.CoreDetEncOptions()
	encMode, err := options.EncModeWithTags(tags)
	if err != nil {
		panic(err)
	}
	return encMode
}()

var CBORDecMode = func() cbor.DecMode {
	decMode, err := cbor.DecOptions{
		IndefLength:      cbor.IndefLengthForbidden,
		MaxArrayElements: 1_000_000,
		MaxMapPairs:      1_000_000,
		MaxNestedLevels:  math.MaxInt16,
	}.DecModeWithTags(tags)
	if err != nil {
		panic(err)
	}
	return decMode
}()

// Export collects the witness tables of the checked module,
// in the order of their inheritance declarations.
func Export(checker *sema.Checker) *Document {
	document := &Document{}
	if checker.Location != nil {
		document.Location = checker.Location.String()
	}

	checker.Elaboration.ForEachWitnessTable(
		checker.Arena,
		func(inheritance *ast.InheritanceDeclaration, table *sema.WitnessTable) {
			exported := exportTable(table)
			exported.Inheritance = uint32(inheritance.DeclarationID())
			document.Tables = append(document.Tables, exported)
		},
	)

	return document
}

func exportTable(table *sema.WitnessTable) Table {
	exported := Table{
		Type:      table.WitnessedType.String(),
		Interface: table.BaseType.String(),
		Failed:    table.IsFailed(),
	}

	table.Foreach(func(requirement ast.Declaration, witness sema.RequirementWitness) {
		exported.Witnesses = append(exported.Witnesses, exportWitness(requirement, witness))
	})

	return exported
}

func exportWitness(requirement ast.Declaration, witness sema.RequirementWitness) Witness {
	exported := Witness{
		Requirement:     uint32(requirement.DeclarationID()),
		RequirementName: requirement.DeclarationIdentifier().Identifier,
		Kind:            uint8(witness.Kind),
	}

	switch witness.Kind {
	case sema.RequirementWitnessKindDeclRef:
		exported.Declaration = uint32(witness.DeclRef.Declaration.DeclarationID())
		exported.Value = witness.DeclRef.String()

	case sema.RequirementWitnessKindVal:
		exported.Value = witness.Val.String()

	case sema.RequirementWitnessKindWitnessTable:
		nested := exportTable(witness.Table)
		exported.Table = &nested

	default:
		panic(errors.NewUnreachableError())
	}

	return exported
}

// Encode writes the CBOR encoding of the document.
func Encode(w io.Writer, document *Document) error {
	err := CBOREncMode.NewEncoder(w).Encode(document)
	if err != nil {
		return errors.NewDefaultUserError("witnesses: failed to encode: %s", err)
	}
	return nil
}

// EncodeBytes returns the CBOR encoding of the document.
func EncodeBytes(document *Document) ([]byte, error) {
	var buf bytes.Buffer
	err := Encode(&buf, document)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode returns the document encoded in the given bytes.
// Trailing data is rejected.
func Decode(b []byte) (*Document, error) {
	var document Document
	err := CBORDecMode.Unmarshal(b, &document)
	if err != nil {
		return nil, errors.NewDefaultUserError("witnesses: failed to decode: %s", err)
	}
	return &document, nil
}
