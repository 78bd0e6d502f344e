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
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/logrusorgru/aurora/v4"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"

	"github.com/onflow/declcheck/ast"
	"github.com/onflow/declcheck/common"
	"github.com/onflow/declcheck/config"
	"github.com/onflow/declcheck/encoding/witnesses"
	"github.com/onflow/declcheck/errors"
	"github.com/onflow/declcheck/parser"
	"github.com/onflow/declcheck/pretty"
	"github.com/onflow/declcheck/sema"
)

// sourceExtension is appended to the name of an imported module to find its file.
const sourceExtension = ".slang"

type options struct {
	configPath    string
	witnessOutput string
	dump          bool
}

// run checks the file named by the first argument and returns the exit code.
func run(args []string, stdout io.Writer, stderr io.Writer) int {
	flags := flag.NewFlagSet("declcheck", flag.ContinueOnError)
	flags.SetOutput(stderr)

	var opts options
	flags.StringVar(&opts.configPath, "config", "", "path of the YAML configuration file")
	flags.StringVar(&opts.witnessOutput, "witnesses", "", "path to write the CBOR-encoded witness tables to")
	flags.BoolVar(&opts.dump, "dump", false, "print the parsed module")

	err := flags.Parse(args)
	if err != nil {
		return 2
	}

	if flags.NArg() != 1 {
		_, _ = fmt.Fprintln(stderr, "usage: declcheck [flags] <file>")
		flags.PrintDefaults()
		return 2
	}

	conf := config.Default()
	if opts.configPath != "" {
		conf, err = config.Load(opts.configPath)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
	}
	if opts.witnessOutput != "" {
		conf.WitnessOutput = opts.witnessOutput
	}

	useColor := conf.UseColor(isTerminal(stderr))
	logger := newLogger(conf, stderr, useColor)

	path := flags.Arg(0)
	codes := map[common.LocationID][]byte{}

	checker, err := check(path, conf, &logger, codes)
	if err != nil {
		printErr := pretty.NewErrorPrettyPrinter(stderr, useColor).
			PrettyPrintError(err, common.StringLocation(path), codes)
		if printErr != nil {
			panic(printErr)
		}
	}

	if opts.dump && checker != nil {
		_, _ = fmt.Fprintln(stdout, ast.Prettier(checker.Module))
	}

	if err != nil {
		printSummary(stderr, useColor, len(errors.Leaves(err)))
		return 1
	}

	if conf.WitnessOutput != "" {
		err = writeWitnesses(conf.WitnessOutput, checker)
		if err != nil {
			logger.Error().Err(err).Msg("failed to write witness tables")
			return 1
		}
		logger.Info().Str("path", conf.WitnessOutput).Msg("wrote witness tables")
	}

	printSummary(stderr, useColor, 0)
	return 0
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func newLogger(conf *config.Config, w io.Writer, useColor bool) zerolog.Logger {
	level, err := conf.Level()
	if err != nil {
		level = zerolog.InfoLevel
	}

	writer := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !useColor,
		TimeFormat: time.RFC3339,
	}

	return zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// check parses and checks the module in the file at the given path.
// Imported modules are read from the directory of the file.
func check(
	path string,
	conf *config.Config,
	logger *zerolog.Logger,
	codes map[common.LocationID][]byte,
) (*sema.Checker, error) {

	arena := ast.NewArena()
	location := common.StringLocation(path)

	module, err := parseFile(arena, path, location, codes)
	if err != nil {
		return nil, err
	}

	semaConfig := conf.SemaConfig(logger)

	directory := filepath.Dir(path)
	imported := map[string]*ast.ModuleDeclaration{}

	semaConfig.ImportHandler = func(_ *sema.Checker, name string, _ ast.Range) (*ast.ModuleDeclaration, error) {
		if module, ok := imported[name]; ok {
			return module, nil
		}

		importPath := filepath.Join(directory, name+sourceExtension)
		module, err := parseFile(arena, importPath, common.StringLocation(importPath), codes)
		if err != nil {
			return nil, err
		}
		imported[name] = module
		return module, nil
	}

	if conf.Tracing {
		semaConfig.OnRecordTrace = func(
			_ *sema.Checker,
			operationName string,
			duration time.Duration,
			attrs []attribute.KeyValue,
		) {
			event := logger.Debug().
				Str("operation", operationName).
				Dur("duration", duration)
			for _, attr := range attrs {
				event = event.Str(string(attr.Key), attr.Value.Emit())
			}
			event.Msg("trace")
		}
	}

	checker, err := sema.NewChecker(arena, module, location, semaConfig)
	if err != nil {
		return nil, err
	}
	checker.Codes = codes

	return checker, checker.Check()
}

func parseFile(
	arena *ast.Arena,
	path string,
	location common.Location,
	codes map[common.LocationID][]byte,
) (*ast.ModuleDeclaration, error) {

	code, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewDefaultUserError("failed to read %s: %s", path, err)
	}
	codes[location.ID()] = code

	return parser.ParseModule(arena, code, location)
}

func printSummary(w io.Writer, useColor bool, count int) {
	colorize := aurora.New(aurora.WithColors(useColor))

	if count == 0 {
		_, _ = fmt.Fprintln(w, colorize.Green("no errors found").Bold())
		return
	}

	noun := "errors"
	if count == 1 {
		noun = "error"
	}
	_, _ = fmt.Fprintln(w, colorize.Red(fmt.Sprintf("%d %s found", count, noun)).Bold())
}

func writeWitnesses(path string, checker *sema.Checker) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	err = witnesses.Encode(file, witnesses.Export(checker))
	closeErr := file.Close()
	if err != nil {
		return err
	}
	return closeErr
}
