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

package parser

import "github.com/SaveTheRbtz/mph"

// NOTE: ensure to update allKeywords when adding a new keyword
const (
	KeywordImport         = "import"
	KeywordStruct         = "struct"
	KeywordClass          = "class"
	KeywordInterface      = "interface"
	KeywordEnum           = "enum"
	KeywordExtension      = "extension"
	KeywordTypedef        = "typedef"
	KeywordAssociatedType = "associatedtype"
	KeywordProperty       = "property"
	KeywordInit           = "__init"
	KeywordGeneric        = "__generic"
	KeywordWhere          = "where"
	KeywordReturn         = "return"
	KeywordThis           = "this"
	KeywordThisType       = "This"
	KeywordTrue           = "true"
	KeywordFalse          = "false"
	KeywordVar            = "var"
	KeywordLet            = "let"
	KeywordGet            = "get"
	KeywordSet            = "set"
	KeywordRef            = "ref"
	// NOTE: ensure to update allKeywords when adding a new keyword
)

var allKeywords = []string{
	KeywordImport,
	KeywordStruct,
	KeywordClass,
	KeywordInterface,
	KeywordEnum,
	KeywordExtension,
	KeywordTypedef,
	KeywordAssociatedType,
	KeywordProperty,
	KeywordInit,
	KeywordGeneric,
	KeywordWhere,
	KeywordReturn,
	KeywordThis,
	KeywordThisType,
	KeywordTrue,
	KeywordFalse,
	KeywordVar,
	KeywordLet,
	KeywordGet,
	KeywordSet,
	KeywordRef,
}

// Keywords that can be used in identifier position without ambiguity.
var softKeywords = []string{
	KeywordGet,
	KeywordSet,
	KeywordRef,
	KeywordWhere,
}

var softKeywordsTable = mph.Build(softKeywords)

// Keywords that aren't allowed in identifier position.
var hardKeywords = filter(
	allKeywords,
	func(keyword string) bool {
		_, ok := softKeywordsTable.Lookup(keyword)
		return !ok
	},
)

var hardKeywordsTable = mph.Build(hardKeywords)

// IsHardKeyword returns true if the given identifier is reserved
// and may not be used as the name of a declaration.
func IsHardKeyword(identifier string) bool {
	_, ok := hardKeywordsTable.Lookup(identifier)
	return ok
}

func filter[T comparable](items []T, f func(T) bool) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		if f(item) {
			result = append(result, item)
		}
	}
	return result
}
