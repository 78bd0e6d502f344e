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

package pretty

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/onflow/declcheck/ast"
	"github.com/onflow/declcheck/common"
	"github.com/onflow/declcheck/errors"
)

type testError struct {
	ast.Range
}

func (testError) Error() string {
	return "test error"
}

type testNote struct {
	ast.Range
}

func (testNote) Message() string {
	return "declared here"
}

type testErrorWithNotes struct {
	testError
}

func (testErrorWithNotes) SecondaryError() string {
	return "expected `int`"
}

func (e testErrorWithNotes) ErrorNotes() []errors.ErrorNote {
	return []errors.ErrorNote{
		testNote{
			Range: ast.NewRange(
				ast.Position{Line: 1, Column: 4},
				ast.Position{Line: 1, Column: 4},
			),
		},
	}
}

type testDocumentedError struct {
	testError
}

func (testDocumentedError) DocumentationLink() string {
	return "https://example.com/errors#test"
}

type testParentError struct {
	children []error
}

func (testParentError) Error() string {
	return "parent"
}

func (e testParentError) ChildErrors() []error {
	return e.children
}

func TestPrintBrokenCode(t *testing.T) {

	t.Parallel()

	const code = `struct S {}`
	lineCount := len(strings.Split(code, "\n"))

	location := common.StringLocation("test")

	var sb strings.Builder
	printer := NewErrorPrettyPrinter(&sb, false)
	err := printer.PrettyPrintError(
		testError{
			Range: ast.Range{
				StartPos: ast.Position{
					// NOTE: line number is after end of code
					Line:   lineCount + 2,
					Column: 0,
				},
				EndPos: ast.Position{
					Line:   lineCount,
					Column: 2,
				},
			},
		},
		location,
		map[common.LocationID][]byte{
			location.ID(): []byte(code),
		},
	)
	require.NoError(t, err)
	require.Equal(t,
		"error: test error\n"+
			" --> test:3:0\n",
		sb.String(),
	)
}

func TestPrintTabs(t *testing.T) {

	t.Parallel()

	const code = "\t  \t   int x = 1;"

	location := common.StringLocation("test")

	var sb strings.Builder
	printer := NewErrorPrettyPrinter(&sb, false)
	err := printer.PrettyPrintError(
		testError{
			Range: ast.Range{
				StartPos: ast.Position{
					Line:   1,
					Column: 7,
				},
				EndPos: ast.Position{
					Line:   1,
					Column: 9,
				},
			},
		},
		location,
		map[common.LocationID][]byte{
			location.ID(): []byte(code),
		},
	)
	require.NoError(t, err)
	require.Equal(t,
		"error: test error\n"+
			" --> test:1:7\n"+
			"  |\n"+
			"1 | \t  \t   int x = 1;\n"+
			"  | \t  \t   ^^^\n",
		sb.String(),
	)
}

func TestPrintGraphemeClusters(t *testing.T) {

	t.Parallel()

	// the flag consists of two code points, but is one grapheme cluster
	const code = "int 🇩🇪 = 1;"

	location := common.StringLocation("test")

	var sb strings.Builder
	printer := NewErrorPrettyPrinter(&sb, false)
	err := printer.PrettyPrintError(
		testError{
			Range: ast.Range{
				StartPos: ast.Position{
					Line:   1,
					Column: 4,
				},
				EndPos: ast.Position{
					Line:   1,
					Column: 11,
				},
			},
		},
		location,
		map[common.LocationID][]byte{
			location.ID(): []byte(code),
		},
	)
	require.NoError(t, err)
	require.Equal(t,
		"error: test error\n"+
			" --> test:1:4\n"+
			"  |\n"+
			"1 | int 🇩🇪 = 1;\n"+
			"  |     ^\n",
		sb.String(),
	)
}

func TestPrintSecondaryErrorAndNotes(t *testing.T) {

	t.Parallel()

	const code = "int x = true;"

	location := common.StringLocation("test")

	var sb strings.Builder
	printer := NewErrorPrettyPrinter(&sb, false)
	err := printer.PrettyPrintError(
		testErrorWithNotes{
			testError: testError{
				Range: ast.NewRange(
					ast.Position{Line: 1, Column: 8},
					ast.Position{Line: 1, Column: 11},
				),
			},
		},
		location,
		map[common.LocationID][]byte{
			location.ID(): []byte(code),
		},
	)
	require.NoError(t, err)
	require.Equal(t,
		"error: test error\n"+
			" --> test:1:8\n"+
			"  |\n"+
			"1 | int x = true;\n"+
			"  |         ^^^^ expected `int`\n"+
			"  |\n"+
			"1 | int x = true;\n"+
			"  |     - declared here\n",
		sb.String(),
	)
}

func TestPrintParentError(t *testing.T) {

	t.Parallel()

	location := common.StringLocation("test")

	var sb strings.Builder
	printer := NewErrorPrettyPrinter(&sb, false)
	err := printer.PrettyPrintError(
		testParentError{
			children: []error{
				testError{
					Range: ast.NewRange(
						ast.Position{Line: 1, Column: 0},
						ast.Position{Line: 1, Column: 0},
					),
				},
				errors.NewDefaultUserError("no position"),
			},
		},
		location,
		nil,
	)
	require.NoError(t, err)
	require.Equal(t,
		"error: test error\n"+
			" --> test:1:0\n"+
			"\n"+
			"error: no position\n",
		sb.String(),
	)
}

func TestPrintDocumentationLink(t *testing.T) {

	t.Parallel()

	location := common.StringLocation("test")

	var sb strings.Builder
	printer := NewErrorPrettyPrinter(&sb, false)
	err := printer.PrettyPrintError(
		testParentError{
			children: []error{
				testDocumentedError{
					testError: testError{
						Range: ast.NewRange(
							ast.Position{Line: 1, Column: 0},
							ast.Position{Line: 1, Column: 0},
						),
					},
				},
				testError{
					Range: ast.NewRange(
						ast.Position{Line: 2, Column: 0},
						ast.Position{Line: 2, Column: 0},
					),
				},
			},
		},
		location,
		nil,
	)
	require.NoError(t, err)
	require.Equal(t,
		"error: test error\n"+
			" --> test:1:0\n"+
			" = see: https://example.com/errors#test\n"+
			"\n"+
			"error: test error\n"+
			" --> test:2:0\n",
		sb.String(),
	)
}
