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

import (
	"github.com/onflow/declcheck/errors"
)

//go:generate stringer -type=DeclarationKind

type DeclarationKind int

const (
	DeclarationKindUnknown DeclarationKind = iota
	DeclarationKindModule
	DeclarationKindImport
	DeclarationKindStructure
	DeclarationKindClass
	DeclarationKindInterface
	DeclarationKindEnum
	DeclarationKindEnumCase
	DeclarationKindExtension
	DeclarationKindInheritance
	DeclarationKindFunction
	DeclarationKindConstructor
	DeclarationKindParameter
	DeclarationKindVariable
	DeclarationKindConstant
	DeclarationKindProperty
	DeclarationKindGetter
	DeclarationKindSetter
	DeclarationKindRefAccessor
	DeclarationKindGeneric
	DeclarationKindTypeParameter
	DeclarationKindValueParameter
	DeclarationKindGenericConstraint
	DeclarationKindAssociatedType
	DeclarationKindTypeConstraint
	DeclarationKindTypeAlias
)

func (k DeclarationKind) IsTypeDeclaration() bool {
	switch k {
	case DeclarationKindStructure,
		DeclarationKindClass,
		DeclarationKindInterface,
		DeclarationKindEnum,
		DeclarationKindTypeParameter,
		DeclarationKindAssociatedType,
		DeclarationKindTypeAlias:

		return true

	default:
		return false
	}
}

func (k DeclarationKind) IsAccessor() bool {
	switch k {
	case DeclarationKindGetter,
		DeclarationKindSetter,
		DeclarationKindRefAccessor:

		return true

	default:
		return false
	}
}

func (k DeclarationKind) Name() string {
	switch k {
	case DeclarationKindModule:
		return "module"
	case DeclarationKindImport:
		return "import"
	case DeclarationKindStructure:
		return "structure"
	case DeclarationKindClass:
		return "class"
	case DeclarationKindInterface:
		return "interface"
	case DeclarationKindEnum:
		return "enum"
	case DeclarationKindEnumCase:
		return "enum case"
	case DeclarationKindExtension:
		return "extension"
	case DeclarationKindInheritance:
		return "inheritance clause"
	case DeclarationKindFunction:
		return "function"
	case DeclarationKindConstructor:
		return "constructor"
	case DeclarationKindParameter:
		return "parameter"
	case DeclarationKindVariable:
		return "variable"
	case DeclarationKindConstant:
		return "constant"
	case DeclarationKindProperty:
		return "property"
	case DeclarationKindGetter:
		return "getter"
	case DeclarationKindSetter:
		return "setter"
	case DeclarationKindRefAccessor:
		return "ref accessor"
	case DeclarationKindGeneric:
		return "generic"
	case DeclarationKindTypeParameter:
		return "type parameter"
	case DeclarationKindValueParameter:
		return "value parameter"
	case DeclarationKindGenericConstraint:
		return "generic constraint"
	case DeclarationKindAssociatedType:
		return "associated type"
	case DeclarationKindTypeConstraint:
		return "type constraint"
	case DeclarationKindTypeAlias:
		return "type alias"
	case DeclarationKindUnknown:
		return "unknown"
	}

	panic(errors.NewUnreachableError())
}
