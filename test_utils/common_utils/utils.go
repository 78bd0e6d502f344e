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

package common_utils

import (
	"strings"
	"testing"

	"github.com/k0kubun/pp/v3"
	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/declcheck/ast"
	"github.com/onflow/declcheck/common"
	"github.com/onflow/declcheck/errors"
)

func init() {
	pp.Default.SetColoringEnabled(false)
}

// TestLocation is the location of the module checked by a test.
const TestLocation = common.StringLocation("test")

// AssertEqualWithDiff asserts that the given values are deeply equal,
// and reports a line-by-line diff of the two values if they are not.
func AssertEqualWithDiff(t *testing.T, expected, actual any) {
	t.Helper()

	diff := pretty.Diff(expected, actual)
	if len(diff) == 0 {
		return
	}

	var report strings.Builder
	for _, line := range diff {
		report.WriteString("  ")
		report.WriteString(line)
		report.WriteString("\n")
	}

	t.Errorf(
		"values differ\nexpected: %s\nactual:   %s\ndiff:\n%s",
		pp.Sprint(expected),
		pp.Sprint(actual),
		report.String(),
	)
}

// RequireError requires the given error to be a user error,
// and checks that the messages of it and all errors it groups can be rendered.
func RequireError(t *testing.T, err error) {
	t.Helper()

	require.Error(t, err)
	require.True(t, errors.IsUserError(err), "not a user error: %s", err)

	_ = err.Error()

	for _, leaf := range errors.Leaves(err) {
		requireRenderable(t, leaf)
	}
}

func requireRenderable(t *testing.T, err error) {
	t.Helper()

	assert.NotEmpty(t, err.Error())

	if located, ok := err.(common.HasLocation); ok {
		_ = located.ImportLocation()
	}

	if positioned, ok := err.(ast.HasPosition); ok {
		start := positioned.StartPosition()
		end := positioned.EndPosition()
		assert.LessOrEqual(t, start.Offset, end.Offset, "range of %T", err)
	}

	if withNotes, ok := err.(errors.ErrorNotes); ok {
		for _, note := range withNotes.ErrorNotes() {
			assert.NotEmpty(t, note.Message())
		}
	}

	if withSecondary, ok := err.(errors.SecondaryError); ok {
		_ = withSecondary.SecondaryError()
	}
}
