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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/declcheck/encoding/witnesses"
)

func writeFile(t *testing.T, dir string, name string, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	err := os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, err)
	return path
}

func TestRun(t *testing.T) {

	t.Parallel()

	t.Run("valid module with import", func(t *testing.T) {

		t.Parallel()

		dir := t.TempDir()

		writeFile(t, dir, "Lib"+sourceExtension, `
          interface IFoo {
              int foo();
          }
        `)

		path := writeFile(t, dir, "main"+sourceExtension, `
          import Lib;

          struct S : IFoo {
              int foo() { return 1; }
          }
        `)

		witnessPath := filepath.Join(dir, "witnesses.cbor")

		var stdout, stderr bytes.Buffer
		code := run(
			[]string{"-dump", "-witnesses", witnessPath, path},
			&stdout,
			&stderr,
		)
		require.Equal(t, 0, code, stderr.String())

		assert.Contains(t, stdout.String(), "struct S")
		assert.Contains(t, stderr.String(), "no errors found")

		encoded, err := os.ReadFile(witnessPath)
		require.NoError(t, err)

		document, err := witnesses.Decode(encoded)
		require.NoError(t, err)
		require.Len(t, document.Tables, 1)
		assert.Equal(t, "IFoo", document.Tables[0].Interface)
	})

	t.Run("errors", func(t *testing.T) {

		t.Parallel()

		dir := t.TempDir()

		path := writeFile(t, dir, "main"+sourceExtension, `
          int f() { return true; }
          int g() { return false; }
        `)

		var stdout, stderr bytes.Buffer
		code := run([]string{path}, &stdout, &stderr)
		require.Equal(t, 1, code)

		assert.Contains(t, stderr.String(), "2 errors found")
		assert.Contains(t, stderr.String(), "mismatched types")
	})

	t.Run("configuration", func(t *testing.T) {

		t.Parallel()

		dir := t.TempDir()

		configPath := writeFile(t, dir, "declcheck.yaml", "skip: all-bodies\ncolor: never\n")
		path := writeFile(t, dir, "main"+sourceExtension, `
          int f() { return true; }
        `)

		var stdout, stderr bytes.Buffer
		code := run([]string{"-config", configPath, path}, &stdout, &stderr)
		require.Equal(t, 0, code, stderr.String())
	})

	t.Run("syntax error", func(t *testing.T) {

		t.Parallel()

		dir := t.TempDir()

		path := writeFile(t, dir, "main"+sourceExtension, `
          struct S {
        `)

		var stdout, stderr bytes.Buffer
		code := run([]string{path}, &stdout, &stderr)
		require.Equal(t, 1, code)
		assert.Contains(t, stderr.String(), "1 error found")
	})

	t.Run("usage", func(t *testing.T) {

		t.Parallel()

		var stdout, stderr bytes.Buffer
		code := run(nil, &stdout, &stderr)
		require.Equal(t, 2, code)
		assert.Contains(t, stderr.String(), "usage")
	})
}
