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

package orderedmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedMap(t *testing.T) {

	t.Parallel()

	t.Run("insertion order", func(t *testing.T) {
		t.Parallel()

		om := &OrderedMap[string, int]{}
		om.Set("c", 3)
		om.Set("a", 1)
		om.Set("b", 2)

		assert.Equal(t, []string{"c", "a", "b"}, om.Keys())
		assert.Equal(t, 3, om.Len())

		var values []int
		om.Foreach(func(_ string, value int) {
			values = append(values, value)
		})
		assert.Equal(t, []int{3, 1, 2}, values)
	})

	t.Run("update keeps position", func(t *testing.T) {
		t.Parallel()

		om := New[string, int](2)
		om.Set("a", 1)
		om.Set("b", 2)

		previous, present := om.Set("a", 10)
		require.True(t, present)
		assert.Equal(t, 1, previous)

		value, ok := om.Get("a")
		require.True(t, ok)
		assert.Equal(t, 10, value)
		assert.Equal(t, []string{"a", "b"}, om.Keys())
	})

	t.Run("set if absent", func(t *testing.T) {
		t.Parallel()

		om := &OrderedMap[string, int]{}
		assert.True(t, om.SetIfAbsent("a", 1))
		assert.False(t, om.SetIfAbsent("a", 2))

		value, _ := om.Get("a")
		assert.Equal(t, 1, value)
		assert.Equal(t, 1, om.Len())
	})

	t.Run("keys are a copy", func(t *testing.T) {
		t.Parallel()

		om := &OrderedMap[string, int]{}
		om.Set("a", 1)

		keys := om.Keys()
		keys[0] = "b"
		assert.True(t, om.Contains("a"))
		assert.False(t, om.Contains("b"))
	})

	t.Run("nil map", func(t *testing.T) {
		t.Parallel()

		var om *OrderedMap[string, int]
		assert.Equal(t, 0, om.Len())
		assert.False(t, om.Contains("a"))
		_, ok := om.Get("a")
		assert.False(t, ok)
		assert.Empty(t, om.Keys())
		om.Foreach(func(string, int) {
			assert.Fail(t, "unexpected entry")
		})
	})
}
