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
	"strconv"

	"github.com/onflow/declcheck/ast"
)

// DeclRef is a declaration seen through the substitutions of a reference site,
// e.g. the member `get` of `Box<int>`.
type DeclRef struct {
	Declaration   ast.Declaration
	Substitutions Substitutions
}

func NewDeclRef(declaration ast.Declaration, substitutions Substitutions) DeclRef {
	return DeclRef{
		Declaration:   declaration,
		Substitutions: substitutions,
	}
}

func (r DeclRef) IsValid() bool {
	return r.Declaration != nil
}

func (r DeclRef) Name() string {
	if r.Declaration == nil {
		return ""
	}
	return r.Declaration.DeclarationIdentifier().Identifier
}

// IsResolved returns true if all values of the substitutions are resolved.
func (r DeclRef) IsResolved() bool {
	return r.Substitutions == nil || r.Substitutions.IsResolved()
}

func (r DeclRef) Key() string {
	var id ast.DeclarationID
	if r.Declaration != nil {
		id = r.Declaration.DeclarationID()
	}
	key := "#" + strconv.FormatUint(uint64(id), 10)
	if r.Substitutions != nil {
		key += "[" + r.Substitutions.Key() + "]"
	}
	return key
}

// Equal returns true if both references refer to the same declaration
// through equivalent substitutions.
func (r DeclRef) Equal(other DeclRef) bool {
	return r.Declaration == other.Declaration &&
		SubstitutionsEqual(r.Substitutions, other.Substitutions)
}

// String returns the name of the declaration,
// including the generic arguments it is applied to, if any.
func (r DeclRef) String() string {
	name := r.Name()
	for substitutions := r.Substitutions; substitutions != nil; substitutions = substitutions.Outer() {
		genericSubstitution, ok := substitutions.(*GenericSubstitution)
		if !ok || genericSubstitution.Generic.Inner != r.Declaration {
			continue
		}
		parameterCount := len(genericSubstitution.Generic.GenericParameters())
		args := genericSubstitution.Args
		if parameterCount <= len(args) {
			args = args[:parameterCount]
		}
		return name + "<" + joinVals(args) + ">"
	}
	return name
}

// WithSubstitutions returns a reference to the same declaration through the given substitutions.
func (r DeclRef) WithSubstitutions(substitutions Substitutions) DeclRef {
	return DeclRef{
		Declaration:   r.Declaration,
		Substitutions: substitutions,
	}
}

// declRefsContain returns true if the given references contain one to the given declaration.
func declRefsContain(declRefs []DeclRef, declaration ast.Declaration) bool {
	for _, declRef := range declRefs {
		if declRef.Declaration == declaration {
			return true
		}
	}
	return false
}
