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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModifierFromKeyword(t *testing.T) {

	t.Parallel()

	for m := Modifier(0); m < modifierCount; m++ {
		modifier, ok := ModifierFromKeyword(m.Keyword())
		require.True(t, ok, m.Keyword())
		assert.Equal(t, m, modifier)
	}

	_, ok := ModifierFromKeyword("public")
	assert.False(t, ok)
}

func TestModifierSet(t *testing.T) {

	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		var set ModifierSet
		assert.False(t, set.Has(ModifierStatic))
		assert.Equal(t, 0, set.Len())
		assert.True(t, set.IsSuperSetOf(ModifierSet{}))
		assert.False(t, set.IsSuperSetOf(NewModifierSet(ModifierConst)))
	})

	t.Run("with", func(t *testing.T) {
		t.Parallel()

		set := NewModifierSet(ModifierStatic)
		extended := set.With(ModifierConst)

		assert.True(t, extended.Has(ModifierStatic))
		assert.True(t, extended.Has(ModifierConst))
		assert.False(t, set.Has(ModifierConst))
		assert.Equal(t, "static const", extended.String())
	})

	t.Run("super set", func(t *testing.T) {
		t.Parallel()

		required := NewModifierSet(ModifierStatic, ModifierConst)

		assert.True(t, NewModifierSet(ModifierConst, ModifierStatic, ModifierMutating).IsSuperSetOf(required))
		assert.False(t, NewModifierSet(ModifierStatic).IsSuperSetOf(required))
	})
}

func TestDeclCheckState(t *testing.T) {

	t.Parallel()

	assert.Equal(t, 7, DeclCheckStateCount)
	assert.Equal(t, DeclCheckStateModifiersChecked, DeclCheckStateUnchecked.Next())
	assert.Equal(t, DeclCheckStateChecked, DeclCheckStateChecked.Next())
	assert.Equal(t, DeclCheckStateReadyForLookup, MaxDeclCheckState(DeclCheckStateReadyForLookup, DeclCheckStateSignatureChecked))
	assert.Equal(t, "DeclCheckStateReadyForConformances", DeclCheckStateReadyForConformances.String())
	assert.Equal(t, "ready for conformances", DeclCheckStateReadyForConformances.Name())

	for state := DeclCheckStateUnchecked; state < DeclCheckStateChecked; state++ {
		assert.Less(t, state, state.Next())
	}
}

func TestDeclarationKindName(t *testing.T) {

	t.Parallel()

	for kind := DeclarationKindUnknown; kind <= DeclarationKindTypeAlias; kind++ {
		assert.NotEmpty(t, kind.Name())
	}

	assert.True(t, DeclarationKindInterface.IsTypeDeclaration())
	assert.False(t, DeclarationKindFunction.IsTypeDeclaration())
	assert.True(t, DeclarationKindSetter.IsAccessor())
}
