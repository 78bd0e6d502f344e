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

package errors

import (
	"fmt"
	"runtime/debug"

	"golang.org/x/xerrors"
)

// ErrorPrompt is appended to the messages of errors which report a whole module.
const ErrorPrompt = "\n\nFix the errors above and check the module again.\n"

// InternalError is a bug in the checker, never in the checked module.
// Internal errors are panicked and not recovered.
type InternalError interface {
	error
	IsInternalError()
}

// UserError is caused by the checked module or by the input of a tool,
// e.g. a type mismatch or a missing file.
type UserError interface {
	error
	IsUserError()
}

// SecondaryError provides a message which is shown below the primary one.
type SecondaryError interface {
	SecondaryError() string
}

// ErrorNotes provides notes which point at other locations, e.g. a previous declaration.
type ErrorNotes interface {
	ErrorNotes() []ErrorNote
}

type ErrorNote interface {
	Message() string
}

// HasDocumentationLink provides a link to the documentation of the error.
type HasDocumentationLink interface {
	DocumentationLink() string
}

// ParentError groups the errors of a module.
type ParentError interface {
	error
	ChildErrors() []error
}

// UnreachableError is raised when the checker reaches a state it assumed impossible.
type UnreachableError struct {
	Stack []byte
}

var _ InternalError = UnreachableError{}

func NewUnreachableError() *UnreachableError {
	return &UnreachableError{Stack: debug.Stack()}
}

func (e UnreachableError) Error() string {
	return fmt.Sprintf("unreachable\n%s", e.Stack)
}

func (UnreachableError) IsInternalError() {}

// UnexpectedError wraps an internal error with a message.
type UnexpectedError struct {
	Err error
}

var _ InternalError = UnexpectedError{}

func NewUnexpectedError(message string, arg ...any) UnexpectedError {
	return UnexpectedError{
		Err: fmt.Errorf(message, arg...),
	}
}

func (e UnexpectedError) Unwrap() error {
	return e.Err
}

func (e UnexpectedError) Error() string {
	return e.Err.Error()
}

func (UnexpectedError) IsInternalError() {}

// DefaultUserError wraps a user error with a message,
// e.g. a module which cannot be read or an invalid configuration.
type DefaultUserError struct {
	Err error
}

var _ UserError = DefaultUserError{}

func NewDefaultUserError(message string, arg ...any) DefaultUserError {
	return DefaultUserError{
		Err: fmt.Errorf(message, arg...),
	}
}

func (e DefaultUserError) Unwrap() error {
	return e.Err
}

func (e DefaultUserError) Error() string {
	return e.Err.Error()
}

func (DefaultUserError) IsUserError() {}

// IsInternalError returns true if the chain of the given error contains an internal error.
func IsInternalError(err error) bool {
	var internalErr InternalError
	return xerrors.As(err, &internalErr)
}

// IsUserError returns true if the chain of the given error contains a user error.
func IsUserError(err error) bool {
	var userErr UserError
	return xerrors.As(err, &userErr)
}

// Leaves returns the errors of the given error, with parent errors expanded recursively.
// An error which is not a parent is its own leaf.
func Leaves(err error) []error {
	if err == nil {
		return nil
	}

	parentErr, ok := err.(ParentError)
	if !ok {
		return []error{err}
	}

	var leaves []error
	for _, childErr := range parentErr.ChildErrors() {
		leaves = append(leaves, Leaves(childErr)...)
	}
	return leaves
}
