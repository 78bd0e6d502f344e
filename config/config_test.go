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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/declcheck/config"
	. "github.com/onflow/declcheck/test_utils/common_utils"
	. "github.com/onflow/declcheck/test_utils/sema_utils"
)

func TestParse(t *testing.T) {

	t.Parallel()

	t.Run("all settings", func(t *testing.T) {

		t.Parallel()

		conf, err := config.Parse([]byte(`
skip: all-bodies
suggestions: false
tracing: true
shortCircuit: true
color: never
logLevel: debug
witnessOutput: out.cbor
`))
		require.NoError(t, err)

		AssertEqualWithDiff(t,
			&config.Config{
				Skip:          config.SkipPolicyAllBodies,
				Color:         config.ColorModeNever,
				LogLevel:      "debug",
				WitnessOutput: "out.cbor",
				Suggestions:   false,
				Tracing:       true,
				ShortCircuit:  true,
			},
			conf,
		)

		level, err := conf.Level()
		require.NoError(t, err)
		assert.Equal(t, zerolog.DebugLevel, level)
	})

	t.Run("defaults", func(t *testing.T) {

		t.Parallel()

		conf, err := config.Parse([]byte(`tracing: true`))
		require.NoError(t, err)

		expected := config.Default()
		expected.Tracing = true
		AssertEqualWithDiff(t, expected, conf)
	})

	t.Run("invalid skip policy", func(t *testing.T) {

		t.Parallel()

		_, err := config.Parse([]byte(`skip: sometimes`))
		RequireError(t, err)

		var invalidErr config.InvalidValueError
		require.ErrorAs(t, err, &invalidErr)
		assert.Equal(t, "skip", invalidErr.Field)
		assert.Equal(t, "sometimes", invalidErr.Value)
		assert.Contains(t, invalidErr.Allowed, "bodies-outside-primary-module")
	})

	t.Run("invalid color", func(t *testing.T) {

		t.Parallel()

		_, err := config.Parse([]byte(`color: rainbow`))

		var invalidErr config.InvalidValueError
		require.ErrorAs(t, err, &invalidErr)
		assert.Equal(t, "color", invalidErr.Field)
	})

	t.Run("invalid log level", func(t *testing.T) {

		t.Parallel()

		_, err := config.Parse([]byte(`logLevel: loud`))

		var invalidErr config.InvalidValueError
		require.ErrorAs(t, err, &invalidErr)
		assert.Equal(t, "logLevel", invalidErr.Field)
	})

	t.Run("unknown setting", func(t *testing.T) {

		t.Parallel()

		_, err := config.Parse([]byte(`extensions: true`))
		RequireError(t, err)
	})

	t.Run("malformed", func(t *testing.T) {

		t.Parallel()

		_, err := config.Parse([]byte("skip: [none"))
		RequireError(t, err)
	})
}

func TestLoad(t *testing.T) {

	t.Parallel()

	t.Run("file", func(t *testing.T) {

		t.Parallel()

		path := filepath.Join(t.TempDir(), "declcheck.yaml")
		err := os.WriteFile(path, []byte("skip: none\n"), 0o600)
		require.NoError(t, err)

		conf, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, config.SkipPolicyNone, conf.Skip)
	})

	t.Run("missing file", func(t *testing.T) {

		t.Parallel()

		_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
		RequireError(t, err)
	})
}

func TestUseColor(t *testing.T) {

	t.Parallel()

	for _, mode := range []config.ColorMode{
		config.ColorModeAuto,
		config.ColorModeAlways,
		config.ColorModeNever,
	} {
		conf := &config.Config{Color: mode}

		assert.Equal(t, mode != config.ColorModeNever, conf.UseColor(true), mode)
		assert.Equal(t, mode == config.ColorModeAlways, conf.UseColor(false), mode)
	}
}

func TestSemaConfig(t *testing.T) {

	t.Parallel()

	const code = `
      int f() { return true; }
    `

	test := func(policy config.SkipPolicy, expectedErrors int) {

		t.Run(string(policy), func(t *testing.T) {

			t.Parallel()

			conf := config.Default()
			conf.Skip = policy

			_, err := ParseAndCheckWithOptions(t, code, ParseAndCheckOptions{
				Config: conf.SemaConfig(nil),
			})

			if expectedErrors == 0 {
				require.NoError(t, err)
			} else {
				RequireCheckerErrors(t, err, expectedErrors)
			}
		})
	}

	test(config.SkipPolicyNone, 1)
	test(config.SkipPolicyAllBodies, 0)
	test(config.SkipPolicyBodiesOutsidePrimaryModule, 1)
}
