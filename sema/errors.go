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
	"strings"

	"github.com/texttheater/golang-levenshtein/levenshtein"
	"golang.org/x/exp/slices"

	"github.com/onflow/declcheck/ast"
	"github.com/onflow/declcheck/common"
	"github.com/onflow/declcheck/errors"
	"github.com/onflow/declcheck/pretty"
)

const errorsDocumentation = "https://github.com/onflow/declcheck/blob/master/docs/errors.md"

func documentationLink(section string) string {
	return errorsDocumentation + "#" + section
}

// SemanticError is the interface of all errors reported by the checker
// for problems in the checked program.
type SemanticError interface {
	errors.UserError
	ast.HasPosition
	isSemanticError()
}

func typeString(ty Type) string {
	if ty == nil {
		return "<unknown>"
	}
	return ty.String()
}

// closestName returns the candidate with the smallest edit distance to the given name,
// or the empty string if every candidate would have to be replaced completely.
func closestName(name string, candidates []string) (closest string) {
	nameRunes := []rune(name)

	closestDistance := len(name)

	sortedCandidates := slices.Clone(candidates)
	slices.Sort(sortedCandidates)
	sortedCandidates = slices.Compact(sortedCandidates)

	for _, candidate := range sortedCandidates {
		if candidate == name {
			continue
		}

		distance := levenshtein.DistanceForStrings(
			nameRunes,
			[]rune(candidate),
			levenshtein.DefaultOptions,
		)

		// Don't update the closest candidate if the distance is greater than one already found,
		// or if the edits required would involve a complete replacement of the candidate's text
		if distance < closestDistance && distance < len(candidate) {
			closest = candidate
			closestDistance = distance
		}
	}

	return
}

// CheckerError

type CheckerError struct {
	Location common.Location
	Codes    map[common.LocationID][]byte
	Errors   []error
}

var _ errors.UserError = CheckerError{}
var _ errors.ParentError = CheckerError{}

func (CheckerError) IsUserError() {}

func (e CheckerError) Error() string {
	var sb strings.Builder
	sb.WriteString("Checking failed:\n")
	codes := e.Codes
	if codes == nil {
		codes = map[common.LocationID][]byte{}
	}
	printErr := pretty.NewErrorPrettyPrinter(&sb, false).
		PrettyPrintError(e, e.Location, codes)
	if printErr != nil {
		panic(printErr)
	}
	sb.WriteString(errors.ErrorPrompt)
	return sb.String()
}

func (e CheckerError) ChildErrors() []error {
	return e.Errors
}

func (e CheckerError) ImportLocation() common.Location {
	return e.Location
}

// CyclicReferenceError

type CyclicReferenceError struct {
	Name string
	ast.Range
	Kind common.DeclarationKind
}

var _ SemanticError = &CyclicReferenceError{}
var _ errors.UserError = &CyclicReferenceError{}
var _ errors.HasDocumentationLink = &CyclicReferenceError{}
var _ errors.SecondaryError = &CyclicReferenceError{}

func (*CyclicReferenceError) isSemanticError() {}

func (*CyclicReferenceError) IsUserError() {}

func (*CyclicReferenceError) DocumentationLink() string {
	return documentationLink("cyclic-references")
}

func (e *CyclicReferenceError) Error() string {
	return fmt.Sprintf(
		"cyclic reference to %s `%s`",
		e.Kind.Name(),
		e.Name,
	)
}

func (e *CyclicReferenceError) SecondaryError() string {
	return "the declaration is referenced while it is being checked"
}

// RedeclarationError

type RedeclarationError struct {
	PreviousPos *ast.Position
	Name        string
	Pos         ast.Position
	Kind        common.DeclarationKind
}

var _ SemanticError = &RedeclarationError{}
var _ errors.UserError = &RedeclarationError{}
var _ errors.HasDocumentationLink = &RedeclarationError{}
var _ errors.ErrorNotes = &RedeclarationError{}

func (*RedeclarationError) isSemanticError() {}

func (*RedeclarationError) IsUserError() {}

func (*RedeclarationError) DocumentationLink() string {
	return documentationLink("redeclarations")
}

func (e *RedeclarationError) Error() string {
	return fmt.Sprintf(
		"cannot redeclare %s: `%s` is already declared",
		e.Kind.Name(),
		e.Name,
	)
}

func (e *RedeclarationError) StartPosition() ast.Position {
	return e.Pos
}

func (e *RedeclarationError) EndPosition() ast.Position {
	length := len(e.Name)
	return e.Pos.Shifted(length - 1)
}

func (e *RedeclarationError) ErrorNotes() []errors.ErrorNote {
	if e.PreviousPos == nil || e.PreviousPos.Line < 1 {
		return nil
	}

	previousStartPos := *e.PreviousPos
	length := len(e.Name)
	previousEndPos := previousStartPos.Shifted(length - 1)

	return []errors.ErrorNote{
		&RedeclarationNote{
			Range: ast.NewRange(
				previousStartPos,
				previousEndPos,
			),
		},
	}
}

// RedeclarationNote

type RedeclarationNote struct {
	ast.Range
}

func (n RedeclarationNote) Message() string {
	return "previously declared here"
}

// FunctionRedeclarationWithDifferentReturnTypeError

type FunctionRedeclarationWithDifferentReturnTypeError struct {
	ResultType         Type
	PreviousResultType Type
	PreviousPos        *ast.Position
	Name               string
	ast.Range
}

var _ SemanticError = &FunctionRedeclarationWithDifferentReturnTypeError{}
var _ errors.UserError = &FunctionRedeclarationWithDifferentReturnTypeError{}
var _ errors.HasDocumentationLink = &FunctionRedeclarationWithDifferentReturnTypeError{}
var _ errors.ErrorNotes = &FunctionRedeclarationWithDifferentReturnTypeError{}

func (*FunctionRedeclarationWithDifferentReturnTypeError) isSemanticError() {}

func (*FunctionRedeclarationWithDifferentReturnTypeError) IsUserError() {}

func (*FunctionRedeclarationWithDifferentReturnTypeError) DocumentationLink() string {
	return documentationLink("function-overloads")
}

func (e *FunctionRedeclarationWithDifferentReturnTypeError) Error() string {
	return fmt.Sprintf(
		"function `%s` is redeclared with return type `%s`, previously declared with `%s`",
		e.Name,
		typeString(e.ResultType),
		typeString(e.PreviousResultType),
	)
}

func (e *FunctionRedeclarationWithDifferentReturnTypeError) ErrorNotes() []errors.ErrorNote {
	if e.PreviousPos == nil {
		return nil
	}
	return []errors.ErrorNote{
		&RedeclarationNote{
			Range: ast.NewRange(
				*e.PreviousPos,
				e.PreviousPos.Shifted(len(e.Name)-1),
			),
		},
	}
}

// FunctionRedefinitionError

type FunctionRedefinitionError struct {
	Name string
	// Target is the target the conflicting bodies are defined for,
	// or empty for bodies without a target
	Target            string
	PreviousPositions []ast.Position
	ast.Range
}

var _ SemanticError = &FunctionRedefinitionError{}
var _ errors.UserError = &FunctionRedefinitionError{}
var _ errors.HasDocumentationLink = &FunctionRedefinitionError{}
var _ errors.ErrorNotes = &FunctionRedefinitionError{}

func (*FunctionRedefinitionError) isSemanticError() {}

func (*FunctionRedefinitionError) IsUserError() {}

func (*FunctionRedefinitionError) DocumentationLink() string {
	return documentationLink("function-overloads")
}

func (e *FunctionRedefinitionError) Error() string {
	if e.Target != "" {
		return fmt.Sprintf(
			"function `%s` already has a body for target `%s`",
			e.Name,
			e.Target,
		)
	}
	return fmt.Sprintf("function `%s` already has a body", e.Name)
}

func (e *FunctionRedefinitionError) ErrorNotes() []errors.ErrorNote {
	notes := make([]errors.ErrorNote, 0, len(e.PreviousPositions))
	for _, pos := range e.PreviousPositions {
		notes = append(notes, &RedefinitionNote{
			Range: ast.NewRange(
				pos,
				pos.Shifted(len(e.Name)-1),
			),
		})
	}
	return notes
}

// RedefinitionNote

type RedefinitionNote struct {
	ast.Range
}

func (n RedefinitionNote) Message() string {
	return "previously defined here"
}

// TypeDoesNotImplementRequirementError

type TypeDoesNotImplementRequirementError struct {
	Type             Type
	InterfaceType    Type
	RequirementName  string
	RequirementRange ast.Range
	// MemberNames are the names of the members of the implementing type,
	// used to suggest a similarly named member
	MemberNames     []string
	RequirementKind common.DeclarationKind
	SuggestMember   bool
	ast.Range
}

var _ SemanticError = &TypeDoesNotImplementRequirementError{}
var _ errors.UserError = &TypeDoesNotImplementRequirementError{}
var _ errors.HasDocumentationLink = &TypeDoesNotImplementRequirementError{}
var _ errors.SecondaryError = &TypeDoesNotImplementRequirementError{}
var _ errors.ErrorNotes = &TypeDoesNotImplementRequirementError{}

func (*TypeDoesNotImplementRequirementError) isSemanticError() {}

func (*TypeDoesNotImplementRequirementError) IsUserError() {}

func (*TypeDoesNotImplementRequirementError) DocumentationLink() string {
	return documentationLink("conformances")
}

func (e *TypeDoesNotImplementRequirementError) Error() string {
	return fmt.Sprintf(
		"type `%s` does not implement %s `%s` required by interface `%s`",
		typeString(e.Type),
		e.RequirementKind.Name(),
		e.RequirementName,
		typeString(e.InterfaceType),
	)
}

func (e *TypeDoesNotImplementRequirementError) SecondaryError() string {
	if closestMember := e.ClosestMember(); closestMember != "" {
		return fmt.Sprintf("did you mean `%s`?", closestMember)
	}
	return "no matching member found, and no implementation could be synthesized"
}

// ClosestMember returns the member of the implementing type
// whose name is closest to the requirement's name, if suggestions are enabled.
func (e *TypeDoesNotImplementRequirementError) ClosestMember() string {
	if !e.SuggestMember {
		return ""
	}
	return closestName(e.RequirementName, e.MemberNames)
}

func (e *TypeDoesNotImplementRequirementError) ErrorNotes() []errors.ErrorNote {
	return []errors.ErrorNote{
		&RequirementNote{
			Range: e.RequirementRange,
		},
	}
}

// RequirementNote

type RequirementNote struct {
	ast.Range
}

func (n RequirementNote) Message() string {
	return "requirement declared here"
}

// InvalidTypeForInheritanceError

type InvalidTypeForInheritanceError struct {
	Type Type
	ast.Range
}

var _ SemanticError = &InvalidTypeForInheritanceError{}
var _ errors.UserError = &InvalidTypeForInheritanceError{}

func (*InvalidTypeForInheritanceError) isSemanticError() {}

func (*InvalidTypeForInheritanceError) IsUserError() {}

func (e *InvalidTypeForInheritanceError) Error() string {
	return fmt.Sprintf(
		"type `%s` cannot be inherited from",
		typeString(e.Type),
	)
}

// NotDeclaredError

type NotDeclaredError struct {
	Name         string
	ExpectedKind common.DeclarationKind
	ast.Range
}

var _ SemanticError = &NotDeclaredError{}
var _ errors.UserError = &NotDeclaredError{}
var _ errors.SecondaryError = &NotDeclaredError{}

func (*NotDeclaredError) isSemanticError() {}

func (*NotDeclaredError) IsUserError() {}

func (e *NotDeclaredError) Error() string {
	if e.ExpectedKind == common.DeclarationKindUnknown {
		return fmt.Sprintf("cannot find `%s` in this scope", e.Name)
	}
	return fmt.Sprintf(
		"cannot find %s in this scope: `%s`",
		e.ExpectedKind.Name(),
		e.Name,
	)
}

func (e *NotDeclaredError) SecondaryError() string {
	return "not found in this scope"
}

// NotDeclaredMemberError

type NotDeclaredMemberError struct {
	Type        Type
	Name        string
	MemberNames []string
	ast.Range
	SuggestMember bool
}

var _ SemanticError = &NotDeclaredMemberError{}
var _ errors.UserError = &NotDeclaredMemberError{}
var _ errors.SecondaryError = &NotDeclaredMemberError{}

func (*NotDeclaredMemberError) isSemanticError() {}

func (*NotDeclaredMemberError) IsUserError() {}

func (e *NotDeclaredMemberError) Error() string {
	return fmt.Sprintf(
		"value of type `%s` has no member `%s`",
		typeString(e.Type),
		e.Name,
	)
}

func (e *NotDeclaredMemberError) SecondaryError() string {
	if e.SuggestMember {
		if closestMember := closestName(e.Name, e.MemberNames); closestMember != "" {
			return fmt.Sprintf("did you mean `%s`?", closestMember)
		}
	}
	return "unknown member"
}

// NotATypeError

type NotATypeError struct {
	Name string
	Kind common.DeclarationKind
	ast.Range
}

var _ SemanticError = &NotATypeError{}
var _ errors.UserError = &NotATypeError{}

func (*NotATypeError) isSemanticError() {}

func (*NotATypeError) IsUserError() {}

func (e *NotATypeError) Error() string {
	return fmt.Sprintf(
		"%s `%s` cannot be used as a type",
		e.Kind.Name(),
		e.Name,
	)
}

// GenericArgumentsRequiredError

type GenericArgumentsRequiredError struct {
	Name string
	ast.Range
}

var _ SemanticError = &GenericArgumentsRequiredError{}
var _ errors.UserError = &GenericArgumentsRequiredError{}

func (*GenericArgumentsRequiredError) isSemanticError() {}

func (*GenericArgumentsRequiredError) IsUserError() {}

func (e *GenericArgumentsRequiredError) Error() string {
	return fmt.Sprintf("generic type `%s` requires arguments", e.Name)
}

// NonGenericTypeArgumentsError

type NonGenericTypeArgumentsError struct {
	Name string
	ast.Range
}

var _ SemanticError = &NonGenericTypeArgumentsError{}
var _ errors.UserError = &NonGenericTypeArgumentsError{}

func (*NonGenericTypeArgumentsError) isSemanticError() {}

func (*NonGenericTypeArgumentsError) IsUserError() {}

func (e *NonGenericTypeArgumentsError) Error() string {
	return fmt.Sprintf("type `%s` is not generic and cannot be given arguments", e.Name)
}

// InvalidGenericArgumentCountError

type InvalidGenericArgumentCountError struct {
	Name     string
	Expected int
	Actual   int
	ast.Range
}

var _ SemanticError = &InvalidGenericArgumentCountError{}
var _ errors.UserError = &InvalidGenericArgumentCountError{}

func (*InvalidGenericArgumentCountError) isSemanticError() {}

func (*InvalidGenericArgumentCountError) IsUserError() {}

func (e *InvalidGenericArgumentCountError) Error() string {
	return fmt.Sprintf(
		"incorrect number of arguments for `%s`: expected %d, got %d",
		e.Name,
		e.Expected,
		e.Actual,
	)
}

// InvalidGenericArgumentError

type InvalidGenericArgumentError struct {
	Name         string
	ExpectedKind common.DeclarationKind
	ast.Range
}

var _ SemanticError = &InvalidGenericArgumentError{}
var _ errors.UserError = &InvalidGenericArgumentError{}

func (*InvalidGenericArgumentError) isSemanticError() {}

func (*InvalidGenericArgumentError) IsUserError() {}

func (e *InvalidGenericArgumentError) Error() string {
	return fmt.Sprintf(
		"invalid argument for %s `%s`",
		e.ExpectedKind.Name(),
		e.Name,
	)
}

// GenericConstraintNotSatisfiedError

type GenericConstraintNotSatisfiedError struct {
	Type      Type
	Supertype Type
	ast.Range
}

var _ SemanticError = &GenericConstraintNotSatisfiedError{}
var _ errors.UserError = &GenericConstraintNotSatisfiedError{}

func (*GenericConstraintNotSatisfiedError) isSemanticError() {}

func (*GenericConstraintNotSatisfiedError) IsUserError() {}

func (e *GenericConstraintNotSatisfiedError) Error() string {
	return fmt.Sprintf(
		"type `%s` does not conform to `%s`",
		typeString(e.Type),
		typeString(e.Supertype),
	)
}

// InvalidThisTypeError

type InvalidThisTypeError struct {
	ast.Range
}

var _ SemanticError = &InvalidThisTypeError{}
var _ errors.UserError = &InvalidThisTypeError{}

func (*InvalidThisTypeError) isSemanticError() {}

func (*InvalidThisTypeError) IsUserError() {}

func (e *InvalidThisTypeError) Error() string {
	return "`This` can only be used inside a type declaration"
}

// InvalidThisError

type InvalidThisError struct {
	ast.Range
}

var _ SemanticError = &InvalidThisError{}
var _ errors.UserError = &InvalidThisError{}

func (*InvalidThisError) isSemanticError() {}

func (*InvalidThisError) IsUserError() {}

func (e *InvalidThisError) Error() string {
	return "`this` can only be used in an instance member"
}

// TypeMismatchError

type TypeMismatchError struct {
	ExpectedType Type
	ActualType   Type
	ast.Range
}

var _ SemanticError = &TypeMismatchError{}
var _ errors.UserError = &TypeMismatchError{}
var _ errors.SecondaryError = &TypeMismatchError{}

func (*TypeMismatchError) isSemanticError() {}

func (*TypeMismatchError) IsUserError() {}

func (e *TypeMismatchError) Error() string {
	return "mismatched types"
}

func (e *TypeMismatchError) SecondaryError() string {
	return fmt.Sprintf(
		"expected `%s`, got `%s`",
		typeString(e.ExpectedType),
		typeString(e.ActualType),
	)
}

// InvalidUnaryOperandError

type InvalidUnaryOperandError struct {
	ActualType Type
	ast.Range
	Operation ast.Operation
}

var _ SemanticError = &InvalidUnaryOperandError{}
var _ errors.UserError = &InvalidUnaryOperandError{}

func (*InvalidUnaryOperandError) isSemanticError() {}

func (*InvalidUnaryOperandError) IsUserError() {}

func (e *InvalidUnaryOperandError) Error() string {
	return fmt.Sprintf(
		"cannot apply unary operation `%s` to type `%s`",
		e.Operation.Symbol(),
		typeString(e.ActualType),
	)
}

// InvalidBinaryOperandsError

type InvalidBinaryOperandsError struct {
	LeftType  Type
	RightType Type
	ast.Range
	Operation ast.Operation
}

var _ SemanticError = &InvalidBinaryOperandsError{}
var _ errors.UserError = &InvalidBinaryOperandsError{}

func (*InvalidBinaryOperandsError) isSemanticError() {}

func (*InvalidBinaryOperandsError) IsUserError() {}

func (e *InvalidBinaryOperandsError) Error() string {
	return fmt.Sprintf(
		"cannot apply binary operation `%s` to types `%s` and `%s`",
		e.Operation.Symbol(),
		typeString(e.LeftType),
		typeString(e.RightType),
	)
}

// NotCallableError

type NotCallableError struct {
	Name string
	ast.Range
}

var _ SemanticError = &NotCallableError{}
var _ errors.UserError = &NotCallableError{}

func (*NotCallableError) isSemanticError() {}

func (*NotCallableError) IsUserError() {}

func (e *NotCallableError) Error() string {
	if e.Name == "" {
		return "cannot call expression"
	}
	return fmt.Sprintf("cannot call `%s`", e.Name)
}

// AmbiguousCallError

type AmbiguousCallError struct {
	Name           string
	CandidateCount int
	ast.Range
}

var _ SemanticError = &AmbiguousCallError{}
var _ errors.UserError = &AmbiguousCallError{}

func (*AmbiguousCallError) isSemanticError() {}

func (*AmbiguousCallError) IsUserError() {}

func (e *AmbiguousCallError) Error() string {
	return fmt.Sprintf(
		"ambiguous call to `%s`: %d candidates apply",
		e.Name,
		e.CandidateCount,
	)
}

// NoApplicableOverloadError

type NoApplicableOverloadError struct {
	Name          string
	ArgumentTypes []Type
	ast.Range
}

var _ SemanticError = &NoApplicableOverloadError{}
var _ errors.UserError = &NoApplicableOverloadError{}

func (*NoApplicableOverloadError) isSemanticError() {}

func (*NoApplicableOverloadError) IsUserError() {}

func (e *NoApplicableOverloadError) Error() string {
	argumentTypes := make([]string, len(e.ArgumentTypes))
	for i, argumentType := range e.ArgumentTypes {
		argumentTypes[i] = typeString(argumentType)
	}
	return fmt.Sprintf(
		"no overload of `%s` accepts arguments of types (%s)",
		e.Name,
		strings.Join(argumentTypes, ", "),
	)
}

// InvalidFunctionReferenceError

type InvalidFunctionReferenceError struct {
	Name string
	ast.Range
}

var _ SemanticError = &InvalidFunctionReferenceError{}
var _ errors.UserError = &InvalidFunctionReferenceError{}

func (*InvalidFunctionReferenceError) isSemanticError() {}

func (*InvalidFunctionReferenceError) IsUserError() {}

func (e *InvalidFunctionReferenceError) Error() string {
	return fmt.Sprintf("function `%s` can only be called", e.Name)
}

// InvalidTypeReferenceError

type InvalidTypeReferenceError struct {
	Name string
	ast.Range
}

var _ SemanticError = &InvalidTypeReferenceError{}
var _ errors.UserError = &InvalidTypeReferenceError{}

func (*InvalidTypeReferenceError) isSemanticError() {}

func (*InvalidTypeReferenceError) IsUserError() {}

func (e *InvalidTypeReferenceError) Error() string {
	return fmt.Sprintf("type `%s` cannot be used as a value", e.Name)
}

// InvalidStaticMemberAccessError

type InvalidStaticMemberAccessError struct {
	Name string
	ast.Range
}

var _ SemanticError = &InvalidStaticMemberAccessError{}
var _ errors.UserError = &InvalidStaticMemberAccessError{}

func (*InvalidStaticMemberAccessError) isSemanticError() {}

func (*InvalidStaticMemberAccessError) IsUserError() {}

func (e *InvalidStaticMemberAccessError) Error() string {
	return fmt.Sprintf("instance member `%s` cannot be accessed on a type", e.Name)
}

// MissingReturnValueError

type MissingReturnValueError struct {
	ExpectedType Type
	ast.Range
}

var _ SemanticError = &MissingReturnValueError{}
var _ errors.UserError = &MissingReturnValueError{}

func (*MissingReturnValueError) isSemanticError() {}

func (*MissingReturnValueError) IsUserError() {}

func (e *MissingReturnValueError) Error() string {
	return fmt.Sprintf(
		"missing value in return statement: expected `%s`",
		typeString(e.ExpectedType),
	)
}

// InvalidReturnValueError

type InvalidReturnValueError struct {
	ast.Range
}

var _ SemanticError = &InvalidReturnValueError{}
var _ errors.UserError = &InvalidReturnValueError{}

func (*InvalidReturnValueError) isSemanticError() {}

func (*InvalidReturnValueError) IsUserError() {}

func (e *InvalidReturnValueError) Error() string {
	return "a function with return type `void` cannot return a value"
}

// InvalidAssignmentTargetError

type InvalidAssignmentTargetError struct {
	ast.Range
}

var _ SemanticError = &InvalidAssignmentTargetError{}
var _ errors.UserError = &InvalidAssignmentTargetError{}

func (*InvalidAssignmentTargetError) isSemanticError() {}

func (*InvalidAssignmentTargetError) IsUserError() {}

func (e *InvalidAssignmentTargetError) Error() string {
	return "cannot assign to unassignable expression"
}

// AssignmentToConstantError

type AssignmentToConstantError struct {
	Name string
	ast.Range
}

var _ SemanticError = &AssignmentToConstantError{}
var _ errors.UserError = &AssignmentToConstantError{}

func (*AssignmentToConstantError) isSemanticError() {}

func (*AssignmentToConstantError) IsUserError() {}

func (e *AssignmentToConstantError) Error() string {
	return fmt.Sprintf("cannot assign to constant: `%s`", e.Name)
}

// AssignmentToImmutableThisError

type AssignmentToImmutableThisError struct {
	ast.Range
}

var _ SemanticError = &AssignmentToImmutableThisError{}
var _ errors.UserError = &AssignmentToImmutableThisError{}
var _ errors.HasDocumentationLink = &AssignmentToImmutableThisError{}
var _ errors.SecondaryError = &AssignmentToImmutableThisError{}

func (*AssignmentToImmutableThisError) isSemanticError() {}

func (*AssignmentToImmutableThisError) IsUserError() {}

func (*AssignmentToImmutableThisError) DocumentationLink() string {
	return documentationLink("mutating-members")
}

func (e *AssignmentToImmutableThisError) Error() string {
	return "cannot assign to a member of `this` in a non-mutating context"
}

func (e *AssignmentToImmutableThisError) SecondaryError() string {
	return "consider marking the enclosing function `mutating`"
}

// MutatingCallOnImmutableReceiverError

type MutatingCallOnImmutableReceiverError struct {
	Name string
	ast.Range
}

var _ SemanticError = &MutatingCallOnImmutableReceiverError{}
var _ errors.UserError = &MutatingCallOnImmutableReceiverError{}
var _ errors.HasDocumentationLink = &MutatingCallOnImmutableReceiverError{}

func (*MutatingCallOnImmutableReceiverError) isSemanticError() {}

func (*MutatingCallOnImmutableReceiverError) IsUserError() {}

func (*MutatingCallOnImmutableReceiverError) DocumentationLink() string {
	return documentationLink("mutating-members")
}

func (e *MutatingCallOnImmutableReceiverError) Error() string {
	return fmt.Sprintf("cannot call mutating function `%s` on an immutable value", e.Name)
}

// NonConstantEnumTagError

type NonConstantEnumTagError struct {
	Name string
	ast.Range
}

var _ SemanticError = &NonConstantEnumTagError{}
var _ errors.UserError = &NonConstantEnumTagError{}

func (*NonConstantEnumTagError) isSemanticError() {}

func (*NonConstantEnumTagError) IsUserError() {}

func (e *NonConstantEnumTagError) Error() string {
	return fmt.Sprintf("tag of enum case `%s` must be a constant", e.Name)
}

// InvalidModifierError

type InvalidModifierError struct {
	Modifier        common.Modifier
	DeclarationKind common.DeclarationKind
	ast.Range
}

var _ SemanticError = &InvalidModifierError{}
var _ errors.UserError = &InvalidModifierError{}

func (*InvalidModifierError) isSemanticError() {}

func (*InvalidModifierError) IsUserError() {}

func (e *InvalidModifierError) Error() string {
	return fmt.Sprintf(
		"invalid modifier `%s` for %s",
		e.Modifier.Keyword(),
		e.DeclarationKind.Name(),
	)
}

// VariableWithoutTypeOrInitializerError

type VariableWithoutTypeOrInitializerError struct {
	Name string
	ast.Range
}

var _ SemanticError = &VariableWithoutTypeOrInitializerError{}
var _ errors.UserError = &VariableWithoutTypeOrInitializerError{}

func (*VariableWithoutTypeOrInitializerError) isSemanticError() {}

func (*VariableWithoutTypeOrInitializerError) IsUserError() {}

func (e *VariableWithoutTypeOrInitializerError) Error() string {
	return fmt.Sprintf("variable `%s` has neither a type nor an initial value", e.Name)
}

// InvalidVoidTypeError

type InvalidVoidTypeError struct {
	DeclarationKind common.DeclarationKind
	ast.Range
}

var _ SemanticError = &InvalidVoidTypeError{}
var _ errors.UserError = &InvalidVoidTypeError{}

func (*InvalidVoidTypeError) isSemanticError() {}

func (*InvalidVoidTypeError) IsUserError() {}

func (e *InvalidVoidTypeError) Error() string {
	return fmt.Sprintf("%s cannot have type `void`", e.DeclarationKind.Name())
}

// OutParameterWithDefaultValueError

type OutParameterWithDefaultValueError struct {
	Name string
	ast.Range
}

var _ SemanticError = &OutParameterWithDefaultValueError{}
var _ errors.UserError = &OutParameterWithDefaultValueError{}

func (*OutParameterWithDefaultValueError) isSemanticError() {}

func (*OutParameterWithDefaultValueError) IsUserError() {}

func (e *OutParameterWithDefaultValueError) Error() string {
	return fmt.Sprintf("`out` parameter `%s` cannot have a default value", e.Name)
}

// GetterWithParametersError

type GetterWithParametersError struct {
	ast.Range
}

var _ SemanticError = &GetterWithParametersError{}
var _ errors.UserError = &GetterWithParametersError{}

func (*GetterWithParametersError) isSemanticError() {}

func (*GetterWithParametersError) IsUserError() {}

func (e *GetterWithParametersError) Error() string {
	return "a getter cannot have parameters"
}

// InvalidSetterParameterError

type InvalidSetterParameterError struct {
	PropertyType Type
	ast.Range
}

var _ SemanticError = &InvalidSetterParameterError{}
var _ errors.UserError = &InvalidSetterParameterError{}

func (*InvalidSetterParameterError) isSemanticError() {}

func (*InvalidSetterParameterError) IsUserError() {}

func (e *InvalidSetterParameterError) Error() string {
	return fmt.Sprintf(
		"a setter must have exactly one parameter of the property type `%s`",
		typeString(e.PropertyType),
	)
}

// BaseOfStructMustBeStructOrInterfaceError

type BaseOfStructMustBeStructOrInterfaceError struct {
	Type Type
	ast.Range
}

var _ SemanticError = &BaseOfStructMustBeStructOrInterfaceError{}
var _ errors.UserError = &BaseOfStructMustBeStructOrInterfaceError{}

func (*BaseOfStructMustBeStructOrInterfaceError) isSemanticError() {}

func (*BaseOfStructMustBeStructOrInterfaceError) IsUserError() {}

func (e *BaseOfStructMustBeStructOrInterfaceError) Error() string {
	return fmt.Sprintf(
		"base type `%s` of a struct must be a struct or an interface",
		typeString(e.Type),
	)
}

// StructBaseMustBeListedFirstError

type StructBaseMustBeListedFirstError struct {
	Type Type
	ast.Range
}

var _ SemanticError = &StructBaseMustBeListedFirstError{}
var _ errors.UserError = &StructBaseMustBeListedFirstError{}

func (*StructBaseMustBeListedFirstError) isSemanticError() {}

func (*StructBaseMustBeListedFirstError) IsUserError() {}

func (e *StructBaseMustBeListedFirstError) Error() string {
	return fmt.Sprintf(
		"struct base type `%s` must be listed first",
		typeString(e.Type),
	)
}

// BaseOfInterfaceMustBeInterfaceError

type BaseOfInterfaceMustBeInterfaceError struct {
	Type Type
	ast.Range
}

var _ SemanticError = &BaseOfInterfaceMustBeInterfaceError{}
var _ errors.UserError = &BaseOfInterfaceMustBeInterfaceError{}

func (*BaseOfInterfaceMustBeInterfaceError) isSemanticError() {}

func (*BaseOfInterfaceMustBeInterfaceError) IsUserError() {}

func (e *BaseOfInterfaceMustBeInterfaceError) Error() string {
	return fmt.Sprintf(
		"base type `%s` of an interface must be an interface",
		typeString(e.Type),
	)
}

// BaseOfEnumMustBeInterfaceError

type BaseOfEnumMustBeInterfaceError struct {
	Type Type
	ast.Range
}

var _ SemanticError = &BaseOfEnumMustBeInterfaceError{}
var _ errors.UserError = &BaseOfEnumMustBeInterfaceError{}

func (*BaseOfEnumMustBeInterfaceError) isSemanticError() {}

func (*BaseOfEnumMustBeInterfaceError) IsUserError() {}

func (e *BaseOfEnumMustBeInterfaceError) Error() string {
	return fmt.Sprintf(
		"base type `%s` of an enum must be an interface or an integer tag type",
		typeString(e.Type),
	)
}

// EnumTagTypeMustBeListedFirstError

type EnumTagTypeMustBeListedFirstError struct {
	Type Type
	ast.Range
}

var _ SemanticError = &EnumTagTypeMustBeListedFirstError{}
var _ errors.UserError = &EnumTagTypeMustBeListedFirstError{}

func (*EnumTagTypeMustBeListedFirstError) isSemanticError() {}

func (*EnumTagTypeMustBeListedFirstError) IsUserError() {}

func (e *EnumTagTypeMustBeListedFirstError) Error() string {
	return fmt.Sprintf(
		"enum tag type `%s` must be listed first",
		typeString(e.Type),
	)
}

// BaseOfExtensionMustBeInterfaceError

type BaseOfExtensionMustBeInterfaceError struct {
	Type Type
	ast.Range
}

var _ SemanticError = &BaseOfExtensionMustBeInterfaceError{}
var _ errors.UserError = &BaseOfExtensionMustBeInterfaceError{}

func (*BaseOfExtensionMustBeInterfaceError) isSemanticError() {}

func (*BaseOfExtensionMustBeInterfaceError) IsUserError() {}

func (e *BaseOfExtensionMustBeInterfaceError) Error() string {
	return fmt.Sprintf(
		"base type `%s` of an extension must be an interface",
		typeString(e.Type),
	)
}

// InvalidExtensionTargetError

type InvalidExtensionTargetError struct {
	Type Type
	ast.Range
}

var _ SemanticError = &InvalidExtensionTargetError{}
var _ errors.UserError = &InvalidExtensionTargetError{}

func (*InvalidExtensionTargetError) isSemanticError() {}

func (*InvalidExtensionTargetError) IsUserError() {}

func (e *InvalidExtensionTargetError) Error() string {
	return fmt.Sprintf(
		"type `%s` cannot be extended",
		typeString(e.Type),
	)
}

// AssociatedTypeOutsideInterfaceError

type AssociatedTypeOutsideInterfaceError struct {
	Name string
	ast.Range
}

var _ SemanticError = &AssociatedTypeOutsideInterfaceError{}
var _ errors.UserError = &AssociatedTypeOutsideInterfaceError{}

func (*AssociatedTypeOutsideInterfaceError) isSemanticError() {}

func (*AssociatedTypeOutsideInterfaceError) IsUserError() {}

func (e *AssociatedTypeOutsideInterfaceError) Error() string {
	return fmt.Sprintf(
		"associated type `%s` can only be declared in an interface",
		e.Name,
	)
}

// InvalidConstantRequirementTypeError

type InvalidConstantRequirementTypeError struct {
	Name string
	Type Type
	ast.Range
}

var _ SemanticError = &InvalidConstantRequirementTypeError{}
var _ errors.UserError = &InvalidConstantRequirementTypeError{}

func (*InvalidConstantRequirementTypeError) isSemanticError() {}

func (*InvalidConstantRequirementTypeError) IsUserError() {}

func (e *InvalidConstantRequirementTypeError) Error() string {
	return fmt.Sprintf(
		"static constant requirement `%s` must have type `int` or `bool`, not `%s`",
		e.Name,
		typeString(e.Type),
	)
}

// ImportNotFoundError

type ImportNotFoundError struct {
	Name string
	Err  error
	ast.Range
}

var _ SemanticError = &ImportNotFoundError{}
var _ errors.UserError = &ImportNotFoundError{}

func (*ImportNotFoundError) isSemanticError() {}

func (*ImportNotFoundError) IsUserError() {}

func (e *ImportNotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot import module `%s`: %s", e.Name, e.Err.Error())
	}
	return fmt.Sprintf("cannot import module `%s`", e.Name)
}

func (e *ImportNotFoundError) Unwrap() error {
	return e.Err
}
