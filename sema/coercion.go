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

// coercionCost ranks how an argument converts to a parameter type during overload resolution.
type coercionCost uint8

const (
	coercionCostNone coercionCost = iota
	coercionCostUpcast
	coercionCostConversion
	coercionCostImpossible
)

// coercionCostOf returns the cost of converting a value of the given type to the expected type.
// The error type converts to every type for free.
func (checker *Checker) coercionCostOf(expected Type, actual Type) coercionCost {
	if expected == nil || actual == nil {
		return coercionCostImpossible
	}

	if isErrorType(expected) || isErrorType(actual) {
		return coercionCostNone
	}

	if TypesEqual(expected, actual) {
		return coercionCostNone
	}

	if actual == IntType && expected == FloatType {
		return coercionCostConversion
	}

	if _, ok := actual.(PrimitiveType); ok {
		return coercionCostImpossible
	}

	if checker.findSubtypeWitness(actual, expected) != nil {
		return coercionCostUpcast
	}

	return coercionCostImpossible
}

func (checker *Checker) canCoerce(expected Type, actual Type) bool {
	return checker.coercionCostOf(expected, actual) != coercionCostImpossible
}

// coerce checks that a value of the given type can be used where the expected type is required.
func (ctx *checkingContext) coerce(expected Type, actual Type, expression ast.Expression) bool {
	if ctx.canCoerce(expected, actual) {
		return true
	}

	ctx.report(&TypeMismatchError{
		ExpectedType: expected,
		ActualType:   actual,
		Range:        ast.NewRangeFromPositioned(expression),
	})
	return false
}
