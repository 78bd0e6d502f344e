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

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorClassification(t *testing.T) {

	t.Parallel()

	t.Run("unreachable", func(t *testing.T) {
		t.Parallel()

		err := NewUnreachableError()
		assert.True(t, IsInternalError(err))
		assert.False(t, IsUserError(err))
		require.Contains(t, err.Error(), "unreachable")
	})

	t.Run("unexpected, wrapped", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("context: %w", NewUnexpectedError("bad state %d", 1))
		assert.True(t, IsInternalError(err))
		assert.False(t, IsUserError(err))
		assert.Equal(t, "context: bad state 1", err.Error())
	})

	t.Run("user, wrapped", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("context: %w", NewDefaultUserError("missing %s", "file"))
		assert.False(t, IsInternalError(err))
		assert.True(t, IsUserError(err))
	})

	t.Run("plain", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("plain")
		assert.False(t, IsInternalError(err))
		assert.False(t, IsUserError(err))
	})
}

type testParentError struct {
	children []error
}

func (e testParentError) Error() string {
	return "parent"
}

func (e testParentError) ChildErrors() []error {
	return e.children
}

func TestLeaves(t *testing.T) {

	t.Parallel()

	first := NewDefaultUserError("first")
	second := NewDefaultUserError("second")
	third := NewDefaultUserError("third")

	err := testParentError{
		children: []error{
			first,
			testParentError{children: []error{second, third}},
			testParentError{},
		},
	}

	assert.Equal(t, []error{first, second, third}, Leaves(err))
	assert.Equal(t, []error{first}, Leaves(first))
	assert.Nil(t, Leaves(nil))
}
