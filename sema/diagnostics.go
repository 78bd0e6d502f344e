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

type stopChecking struct{}

// DiagnosticBag collects the errors reported while checking.
type DiagnosticBag struct {
	errors       []error
	shortCircuit bool
}

func NewDiagnosticBag() *DiagnosticBag {
	return &DiagnosticBag{}
}

func (b *DiagnosticBag) Report(err error) {
	if err == nil {
		return
	}

	b.errors = append(b.errors, err)
	if b.shortCircuit {
		panic(stopChecking{})
	}
}

func (b *DiagnosticBag) Errors() []error {
	return b.errors
}

func (b *DiagnosticBag) Len() int {
	return len(b.errors)
}

func (b *DiagnosticBag) HasErrors() bool {
	return len(b.errors) > 0
}

// checkingContext is the state of checking one declaration, or one piece of code in it.
// Contexts are cheap values: nested code is checked in a copy.
type checkingContext struct {
	*Checker
	diagnostics *DiagnosticBag
	// scope is the innermost declaration enclosing the checked code,
	// used for lexical lookup
	scope ast.Declaration
	// function is the function, constructor, or accessor whose body is checked, if any
	function ast.Declaration
	// returnType is the result type of the function whose body is checked
	returnType Type
	// thisType is the type of `this`, or nil in a static context
	thisType Type
	// selfType is the type enclosing the checked code, even in a static context
	selfType Type
	// isMutating is true if `this` may be mutated
	isMutating bool
}

func (ctx *checkingContext) report(err error) {
	ctx.diagnostics.Report(err)
}

// withScope returns a copy of the context with the given lexical scope.
func (ctx *checkingContext) withScope(scope ast.Declaration) *checkingContext {
	nested := *ctx
	nested.scope = scope
	return &nested
}

// tryCheck runs f in a copy of the given context whose errors are collected in a fresh bag.
// The errors are not reported: the caller decides whether to keep or drop them.
//
// Declarations which f needs to advance are still checked in their own root context,
// so their errors are reported normally.
func tryCheck[T any](ctx *checkingContext, f func(ctx *checkingContext) T) (T, *DiagnosticBag) {
	bag := NewDiagnosticBag()
	trial := *ctx
	trial.diagnostics = bag
	result := f(&trial)
	return result, bag
}
