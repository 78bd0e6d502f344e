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

// Command errors writes a catalog of all semantic errors,
// with their messages rendered for placeholder values.
package main

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"sort"

	"github.com/goccy/go-yaml"

	"github.com/onflow/declcheck/ast"
	"github.com/onflow/declcheck/errors"
	"github.com/onflow/declcheck/sema"
)

// Entry is the catalog entry of one error.
type Entry struct {
	Name      string   `yaml:"name"`
	Message   string   `yaml:"message"`
	Secondary string   `yaml:"secondary,omitempty"`
	Notes     []string `yaml:"notes,omitempty"`
	Link      string   `yaml:"link,omitempty"`
}

func semanticErrors() []sema.SemanticError {
	previousPos := placeholderPosition

	return []sema.SemanticError{
		&sema.CyclicReferenceError{
			Name:  placeholderName,
			Range: placeholderRange,
			Kind:  placeholderDeclarationKind,
		},
		&sema.RedeclarationError{
			PreviousPos: &previousPos,
			Name:        placeholderName,
			Pos:         placeholderEndPosition,
			Kind:        placeholderDeclarationKind,
		},
		&sema.FunctionRedeclarationWithDifferentReturnTypeError{
			ResultType:         placeholderSemaType,
			PreviousResultType: placeholderOtherSemaType,
			PreviousPos:        &previousPos,
			Name:               placeholderName,
			Range:              placeholderRange,
		},
		&sema.FunctionRedefinitionError{
			Name:              placeholderName,
			Target:            placeholderName,
			PreviousPositions: []ast.Position{placeholderPosition},
			Range:             placeholderRange,
		},
		&sema.TypeDoesNotImplementRequirementError{
			Type:             placeholderSemaType,
			InterfaceType:    placeholderOtherSemaType,
			RequirementName:  placeholderName,
			RequirementRange: placeholderRange,
			MemberNames:      placeholderNames,
			RequirementKind:  placeholderDeclarationKind,
			SuggestMember:    true,
			Range:            placeholderRange,
		},
		&sema.InvalidTypeForInheritanceError{
			Type:  placeholderSemaType,
			Range: placeholderRange,
		},
		&sema.NotDeclaredError{
			Name:         placeholderName,
			ExpectedKind: placeholderDeclarationKind,
			Range:        placeholderRange,
		},
		&sema.NotDeclaredMemberError{
			Type:          placeholderSemaType,
			Name:          placeholderName,
			MemberNames:   placeholderNames,
			Range:         placeholderRange,
			SuggestMember: true,
		},
		&sema.NotATypeError{
			Name:  placeholderName,
			Kind:  placeholderDeclarationKind,
			Range: placeholderRange,
		},
		&sema.GenericArgumentsRequiredError{
			Name:  placeholderName,
			Range: placeholderRange,
		},
		&sema.NonGenericTypeArgumentsError{
			Name:  placeholderName,
			Range: placeholderRange,
		},
		&sema.InvalidGenericArgumentCountError{
			Name:     placeholderName,
			Expected: placeholderInt,
			Actual:   placeholderInt + 1,
			Range:    placeholderRange,
		},
		&sema.InvalidGenericArgumentError{
			Name:         placeholderName,
			ExpectedKind: placeholderDeclarationKind,
			Range:        placeholderRange,
		},
		&sema.GenericConstraintNotSatisfiedError{
			Type:      placeholderSemaType,
			Supertype: placeholderOtherSemaType,
			Range:     placeholderRange,
		},
		&sema.InvalidThisTypeError{
			Range: placeholderRange,
		},
		&sema.InvalidThisError{
			Range: placeholderRange,
		},
		&sema.TypeMismatchError{
			ExpectedType: placeholderSemaType,
			ActualType:   placeholderOtherSemaType,
			Range:        placeholderRange,
		},
		&sema.InvalidUnaryOperandError{
			ActualType: placeholderSemaType,
			Range:      placeholderRange,
			Operation:  placeholderOperation,
		},
		&sema.InvalidBinaryOperandsError{
			LeftType:  placeholderSemaType,
			RightType: placeholderOtherSemaType,
			Range:     placeholderRange,
			Operation: placeholderOperation,
		},
		&sema.NotCallableError{
			Name:  placeholderName,
			Range: placeholderRange,
		},
		&sema.AmbiguousCallError{
			Name:           placeholderName,
			CandidateCount: placeholderInt,
			Range:          placeholderRange,
		},
		&sema.NoApplicableOverloadError{
			Name:          placeholderName,
			ArgumentTypes: placeholderSemaTypes,
			Range:         placeholderRange,
		},
		&sema.InvalidFunctionReferenceError{
			Name:  placeholderName,
			Range: placeholderRange,
		},
		&sema.InvalidTypeReferenceError{
			Name:  placeholderName,
			Range: placeholderRange,
		},
		&sema.InvalidStaticMemberAccessError{
			Name:  placeholderName,
			Range: placeholderRange,
		},
		&sema.MissingReturnValueError{
			ExpectedType: placeholderSemaType,
			Range:        placeholderRange,
		},
		&sema.InvalidReturnValueError{
			Range: placeholderRange,
		},
		&sema.InvalidAssignmentTargetError{
			Range: placeholderRange,
		},
		&sema.AssignmentToConstantError{
			Name:  placeholderName,
			Range: placeholderRange,
		},
		&sema.AssignmentToImmutableThisError{
			Range: placeholderRange,
		},
		&sema.MutatingCallOnImmutableReceiverError{
			Name:  placeholderName,
			Range: placeholderRange,
		},
		&sema.NonConstantEnumTagError{
			Name:  placeholderName,
			Range: placeholderRange,
		},
		&sema.InvalidModifierError{
			Modifier:        placeholderModifier,
			DeclarationKind: placeholderDeclarationKind,
			Range:           placeholderRange,
		},
		&sema.VariableWithoutTypeOrInitializerError{
			Name:  placeholderName,
			Range: placeholderRange,
		},
		&sema.InvalidVoidTypeError{
			DeclarationKind: placeholderDeclarationKind,
			Range:           placeholderRange,
		},
		&sema.OutParameterWithDefaultValueError{
			Name:  placeholderName,
			Range: placeholderRange,
		},
		&sema.GetterWithParametersError{
			Range: placeholderRange,
		},
		&sema.InvalidSetterParameterError{
			PropertyType: placeholderSemaType,
			Range:        placeholderRange,
		},
		&sema.BaseOfStructMustBeStructOrInterfaceError{
			Type:  placeholderSemaType,
			Range: placeholderRange,
		},
		&sema.StructBaseMustBeListedFirstError{
			Type:  placeholderSemaType,
			Range: placeholderRange,
		},
		&sema.BaseOfInterfaceMustBeInterfaceError{
			Type:  placeholderSemaType,
			Range: placeholderRange,
		},
		&sema.BaseOfEnumMustBeInterfaceError{
			Type:  placeholderSemaType,
			Range: placeholderRange,
		},
		&sema.EnumTagTypeMustBeListedFirstError{
			Type:  placeholderSemaType,
			Range: placeholderRange,
		},
		&sema.BaseOfExtensionMustBeInterfaceError{
			Type:  placeholderSemaType,
			Range: placeholderRange,
		},
		&sema.InvalidExtensionTargetError{
			Type:  placeholderSemaType,
			Range: placeholderRange,
		},
		&sema.AssociatedTypeOutsideInterfaceError{
			Name:  placeholderName,
			Range: placeholderRange,
		},
		&sema.InvalidConstantRequirementTypeError{
			Name:  placeholderName,
			Type:  placeholderSemaType,
			Range: placeholderRange,
		},
		&sema.ImportNotFoundError{
			Name:  placeholderName,
			Err:   placeholderError,
			Range: placeholderRange,
		},
	}
}

func catalog() []Entry {
	errs := semanticErrors()
	entries := make([]Entry, 0, len(errs))

	for _, err := range errs {
		entry := Entry{
			Name:    reflect.TypeOf(err).Elem().Name(),
			Message: err.Error(),
		}

		if secondaryErr, ok := err.(errors.SecondaryError); ok {
			entry.Secondary = secondaryErr.SecondaryError()
		}

		if notesErr, ok := err.(errors.ErrorNotes); ok {
			for _, note := range notesErr.ErrorNotes() {
				entry.Notes = append(entry.Notes, note.Message())
			}
		}

		if documentedErr, ok := err.(errors.HasDocumentationLink); ok {
			entry.Link = documentedErr.DocumentationLink()
		}

		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	return entries
}

func write(w io.Writer) error {
	data, err := yaml.Marshal(catalog())
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func main() {
	err := write(os.Stdout)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
