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
	"github.com/onflow/declcheck/common"
)

type phaseHandler func(ctx *checkingContext, declaration ast.Declaration)

// phaseHandlers holds the handler which advances a declaration to the state of the index.
// Each handler switches on the kind of the declaration.
var phaseHandlers [common.DeclCheckStateCount]phaseHandler

func init() {
	phaseHandlers[common.DeclCheckStateModifiersChecked] = checkModifiers
	phaseHandlers[common.DeclCheckStateSignatureChecked] = checkHeader
	phaseHandlers[common.DeclCheckStateReadyForReference] = checkRedeclarations
	phaseHandlers[common.DeclCheckStateReadyForLookup] = checkBases
	phaseHandlers[common.DeclCheckStateReadyForConformances] = checkConformances
	phaseHandlers[common.DeclCheckStateChecked] = checkBody
}
