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
	"github.com/onflow/declcheck/errors"
)

//go:generate stringer -type=Operation

type Operation uint

const (
	OperationUnknown Operation = iota
	OperationPlus
	OperationMinus
	OperationMul
	OperationDiv
	OperationEqual
	OperationNotEqual
	OperationLess
	OperationGreater
	OperationNegate
	OperationNot
)

func (s Operation) Symbol() string {
	switch s {
	case OperationPlus:
		return "+"
	case OperationMinus, OperationNegate:
		return "-"
	case OperationMul:
		return "*"
	case OperationDiv:
		return "/"
	case OperationEqual:
		return "=="
	case OperationNotEqual:
		return "!="
	case OperationLess:
		return "<"
	case OperationGreater:
		return ">"
	case OperationNot:
		return "!"
	}

	panic(errors.NewUnreachableError())
}

// IsComparison returns true for operations which produce a boolean
func (s Operation) IsComparison() bool {
	switch s {
	case OperationEqual,
		OperationNotEqual,
		OperationLess,
		OperationGreater:
		return true
	default:
		return false
	}
}
