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

// Arena owns all declarations of a checking session
// and addresses them by stable handles.
type Arena struct {
	declarations []Declaration
}

func NewArena() *Arena {
	return &Arena{
		// the zero handle is reserved
		declarations: make([]Declaration, 1, 64),
	}
}

// Add registers the declaration and assigns it a handle.
// Adding an already registered declaration is a no-op.
func Add[T Declaration](arena *Arena, declaration T) T {
	base := declaration.base()
	if base.id.IsValid() {
		return declaration
	}
	base.id = DeclarationID(len(arena.declarations))
	arena.declarations = append(arena.declarations, declaration)
	return declaration
}

// AddMember registers the member, appends it to the container's members,
// and makes the container its parent.
func (a *Arena) AddMember(container Declaration, member Declaration) {
	Add(a, member)
	a.SetParent(member, container)
	containerBase := container.base()
	containerBase.Members = append(containerBase.Members, member)
}

// SetParent makes the given declaration the parent of the member,
// without adding the member to the parent's members.
func (a *Arena) SetParent(member Declaration, parent Declaration) {
	Add(a, member)
	if parent == nil {
		member.base().parent = InvalidDeclarationID
		return
	}
	Add(a, parent)
	member.base().parent = parent.DeclarationID()
}

// Get returns the declaration with the given handle.
func (a *Arena) Get(id DeclarationID) Declaration {
	if !id.IsValid() {
		return nil
	}
	if int(id) >= len(a.declarations) {
		panic(errors.NewUnexpectedError("invalid declaration handle: %d", id))
	}
	return a.declarations[id]
}

// Parent returns the parent of the given declaration, or nil for a root.
func (a *Arena) Parent(declaration Declaration) Declaration {
	return a.Get(declaration.DeclarationParent())
}

// Len returns the number of registered declarations.
func (a *Arena) Len() int {
	return len(a.declarations) - 1
}

// Foreach calls f for every registered declaration, in registration order.
func (a *Arena) Foreach(f func(Declaration)) {
	for _, declaration := range a.declarations[1:] {
		f(declaration)
	}
}

// ParentOfType walks up the parents of the given declaration
// and returns the closest one which has type T.
func ParentOfType[T Declaration](arena *Arena, declaration Declaration) (result T, ok bool) {
	for parent := arena.Parent(declaration); parent != nil; parent = arena.Parent(parent) {
		if typed, isType := parent.(T); isType {
			return typed, true
		}
	}
	return
}

// ModuleOf returns the module which transitively contains the given declaration.
func (a *Arena) ModuleOf(declaration Declaration) *ModuleDeclaration {
	if module, ok := declaration.(*ModuleDeclaration); ok {
		return module
	}
	module, _ := ParentOfType[*ModuleDeclaration](a, declaration)
	return module
}
