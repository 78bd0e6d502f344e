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

// Package config loads the checker configuration from YAML files.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog"

	"github.com/onflow/declcheck/errors"
	"github.com/onflow/declcheck/sema"
)

type SkipPolicy string

const (
	SkipPolicyNone                       SkipPolicy = "none"
	SkipPolicyAllBodies                  SkipPolicy = "all-bodies"
	SkipPolicyBodiesOutsidePrimaryModule SkipPolicy = "bodies-outside-primary-module"
)

var skipPolicies = []SkipPolicy{
	SkipPolicyNone,
	SkipPolicyAllBodies,
	SkipPolicyBodiesOutsidePrimaryModule,
}

type ColorMode string

const (
	ColorModeAuto   ColorMode = "auto"
	ColorModeAlways ColorMode = "always"
	ColorModeNever  ColorMode = "never"
)

var colorModes = []ColorMode{
	ColorModeAuto,
	ColorModeAlways,
	ColorModeNever,
}

// Config is the content of a configuration file.
type Config struct {
	Skip          SkipPolicy `yaml:"skip"`
	Color         ColorMode  `yaml:"color"`
	LogLevel      string     `yaml:"logLevel"`
	WitnessOutput string     `yaml:"witnessOutput"`
	Suggestions   bool       `yaml:"suggestions"`
	Tracing       bool       `yaml:"tracing"`
	ShortCircuit  bool       `yaml:"shortCircuit"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Skip:        SkipPolicyBodiesOutsidePrimaryModule,
		Color:       ColorModeAuto,
		LogLevel:    zerolog.InfoLevel.String(),
		Suggestions: true,
	}
}

// InvalidValueError is reported for a setting which has a value outside its allowed set.
type InvalidValueError struct {
	Field   string
	Value   string
	Allowed []string
}

var _ errors.UserError = InvalidValueError{}

func (InvalidValueError) IsUserError() {}

func (e InvalidValueError) Error() string {
	return fmt.Sprintf(
		"invalid value for %s: %q, expected one of: %s",
		e.Field,
		e.Value,
		strings.Join(e.Allowed, ", "),
	)
}

// Load reads and validates the configuration file at the given path.
// Settings missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewDefaultUserError("failed to read configuration: %s", err)
	}
	return Parse(data)
}

// Parse decodes and validates the given YAML configuration.
// Unknown settings are rejected.
func Parse(data []byte) (*Config, error) {
	config := Default()
	err := yaml.UnmarshalWithOptions(data, config, yaml.Strict())
	if err != nil {
		return nil, errors.NewDefaultUserError("failed to parse configuration: %s", err)
	}

	err = config.Validate()
	if err != nil {
		return nil, err
	}

	return config, nil
}

func allowedValues[T ~string](values []T) []string {
	result := make([]string, len(values))
	for i, value := range values {
		result[i] = string(value)
	}
	return result
}

func isAllowed[T ~string](value T, values []T) bool {
	for _, allowed := range values {
		if value == allowed {
			return true
		}
	}
	return false
}

// Validate checks that every setting has an allowed value.
func (c *Config) Validate() error {
	if !isAllowed(c.Skip, skipPolicies) {
		return InvalidValueError{
			Field:   "skip",
			Value:   string(c.Skip),
			Allowed: allowedValues(skipPolicies),
		}
	}

	if !isAllowed(c.Color, colorModes) {
		return InvalidValueError{
			Field:   "color",
			Value:   string(c.Color),
			Allowed: allowedValues(colorModes),
		}
	}

	if _, err := c.Level(); err != nil {
		return InvalidValueError{
			Field: "logLevel",
			Value: c.LogLevel,
			Allowed: []string{
				zerolog.DebugLevel.String(),
				zerolog.InfoLevel.String(),
				zerolog.WarnLevel.String(),
				zerolog.ErrorLevel.String(),
				zerolog.Disabled.String(),
			},
		}
	}

	return nil
}

// Level returns the configured log level.
func (c *Config) Level() (zerolog.Level, error) {
	if c.LogLevel == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(c.LogLevel)
}

// SkipChecking returns the skip function of the configured policy.
func (c *Config) SkipChecking() sema.SkipCheckingFunc {
	switch c.Skip {
	case SkipPolicyNone:
		return sema.SkipNone
	case SkipPolicyAllBodies:
		return sema.SkipAllBodies
	case SkipPolicyBodiesOutsidePrimaryModule:
		return sema.SkipBodiesOutsidePrimaryModule
	}

	panic(errors.NewUnreachableError())
}

// UseColor returns true if output should be colored,
// given whether the output is a terminal.
func (c *Config) UseColor(isTerminal bool) bool {
	switch c.Color {
	case ColorModeAlways:
		return true
	case ColorModeNever:
		return false
	}
	return isTerminal
}

// SemaConfig returns the checker configuration for these settings.
// Trace handlers are left for the caller to install.
func (c *Config) SemaConfig(logger *zerolog.Logger) *sema.Config {
	return &sema.Config{
		SkipChecking:                c.SkipChecking(),
		Logger:                      logger,
		TracingEnabled:              c.Tracing,
		SuggestionsEnabled:          c.Suggestions,
		ErrorShortCircuitingEnabled: c.ShortCircuit,
	}
}
