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
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora/v4"
	"github.com/rivo/uniseg"

	"github.com/onflow/declcheck/ast"
	"github.com/onflow/declcheck/common"
	"github.com/onflow/declcheck/errors"
)

const errorPrefix = "error"
const notePrefix = "note"
const linePrefix = " --> "
const excerptDelimiter = " | "
const documentationPrefix = " = see: "

// ErrorPrettyPrinter writes errors in a human-readable form,
// including an excerpt of the code the error occurred in.
type ErrorPrettyPrinter struct {
	writer   io.Writer
	colorize *aurora.Aurora
}

func NewErrorPrettyPrinter(writer io.Writer, useColor bool) ErrorPrettyPrinter {
	return ErrorPrettyPrinter{
		writer:   writer,
		colorize: aurora.New(aurora.WithColors(useColor)),
	}
}

// PrettyPrintError writes the given error.
// Child errors of parent errors are written separately,
// in the location they occurred in, if they have one.
func (p ErrorPrettyPrinter) PrettyPrintError(
	err error,
	location common.Location,
	codes map[common.LocationID][]byte,
) (printErr error) {

	defer func() {
		if r := recover(); r != nil {
			var ok bool
			printErr, ok = r.(error)
			if !ok {
				panic(r)
			}
		}
	}()

	p.prettyPrintError(err, location, codes, true)
	return nil
}

func (p ErrorPrettyPrinter) prettyPrintError(
	err error,
	location common.Location,
	codes map[common.LocationID][]byte,
	first bool,
) bool {
	if parentError, ok := err.(errors.ParentError); ok {
		for _, childErr := range parentError.ChildErrors() {
			childLocation := location
			if locatedErr, ok := childErr.(common.HasLocation); ok {
				if importLocation := locatedErr.ImportLocation(); importLocation != nil {
					childLocation = importLocation
				}
			}
			first = p.prettyPrintError(childErr, childLocation, codes, first)
		}
		return first
	}

	if !first {
		p.writeString("\n")
	}

	var code []byte
	if location != nil {
		code = codes[location.ID()]
	}
	p.writeError(err, location, code)

	return false
}

func (p ErrorPrettyPrinter) writeString(str string) {
	_, err := io.WriteString(p.writer, str)
	if err != nil {
		panic(err)
	}
}

func (p ErrorPrettyPrinter) writeError(err error, location common.Location, code []byte) {

	p.writeString(p.colorize.Bold(p.colorize.Red(errorPrefix)).String())
	p.writeString(p.colorize.Bold(": " + err.Error()).String())
	p.writeString("\n")

	positioned, ok := err.(ast.HasPosition)
	if !ok {
		p.writeDocumentationLink(err)
		return
	}

	startPos := positioned.StartPosition()
	endPos := positioned.EndPosition()

	p.writeCodeLocation(location, startPos)

	secondaryMessage := ""
	if secondaryError, ok := err.(errors.SecondaryError); ok {
		secondaryMessage = secondaryError.SecondaryError()
	}

	p.writeCodeExcerpt(code, startPos, endPos, "^", secondaryMessage, p.colorize.Red)

	if errorNotes, ok := err.(errors.ErrorNotes); ok {
		for _, note := range errorNotes.ErrorNotes() {
			p.writeNote(note, location, code)
		}
	}

	p.writeDocumentationLink(err)
}

func (p ErrorPrettyPrinter) writeCodeLocation(location common.Location, pos ast.Position) {
	p.writeString(p.colorize.Blue(linePrefix).String())
	if location != nil {
		p.writeString(location.String())
		p.writeString(":")
	}
	p.writeString(fmt.Sprintf("%d:%d\n", pos.Line, pos.Column))
}

func (p ErrorPrettyPrinter) writeNote(note errors.ErrorNote, location common.Location, code []byte) {
	positioned, ok := note.(ast.HasPosition)
	if !ok {
		p.writeString(p.colorize.Bold(notePrefix + ": " + note.Message()).String())
		p.writeString("\n")
		return
	}

	p.writeCodeExcerpt(
		code,
		positioned.StartPosition(),
		positioned.EndPosition(),
		"-",
		note.Message(),
		p.colorize.Blue,
	)
}

func (p ErrorPrettyPrinter) writeDocumentationLink(err error) {
	documentedError, ok := err.(errors.HasDocumentationLink)
	if !ok {
		return
	}
	link := documentedError.DocumentationLink()
	if link == "" {
		return
	}
	p.writeString(p.colorize.Blue(documentationPrefix).String())
	p.writeString(link)
	p.writeString("\n")
}

// writeCodeExcerpt writes the line of the start position,
// and underlines the range with the given marker.
// Nothing is written if the line is not part of the code.
func (p ErrorPrettyPrinter) writeCodeExcerpt(
	code []byte,
	startPos ast.Position,
	endPos ast.Position,
	marker string,
	message string,
	color func(any) aurora.Value,
) {
	if code == nil {
		return
	}

	lines := bytes.Split(code, []byte{'\n'})
	lineIndex := startPos.Line - 1
	if lineIndex < 0 || lineIndex >= len(lines) {
		return
	}
	line := string(lines[lineIndex])

	lineNumber := strconv.Itoa(startPos.Line)
	gutter := strings.Repeat(" ", len(lineNumber))

	p.writeString(p.colorize.Blue(gutter + " |").String())
	p.writeString("\n")

	p.writeString(p.colorize.Blue(lineNumber + excerptDelimiter).String())
	p.writeString(line)
	p.writeString("\n")

	startColumn := clamp(startPos.Column, 0, len(line))
	endColumn := len(line) - 1
	if endPos.Line == startPos.Line && endPos.Column >= startPos.Column {
		endColumn = clamp(endPos.Column, startColumn, len(line)-1)
	}

	underlined := ""
	if startColumn < len(line) {
		underlined = line[startColumn : endColumn+1]
	}

	underlineLength := uniseg.GraphemeClusterCount(underlined)
	if underlineLength == 0 {
		underlineLength = 1
	}

	p.writeString(p.colorize.Blue(gutter + excerptDelimiter).String())
	p.writeString(indentation(line[:startColumn]))

	underline := strings.Repeat(marker, underlineLength)
	if message != "" {
		underline += " " + message
	}
	p.writeString(color(underline).String())
	p.writeString("\n")
}

// indentation returns whitespace which has the same display width as the given prefix of a line.
// Tabs are kept, every other grapheme cluster becomes a space.
func indentation(prefix string) string {
	var sb strings.Builder
	graphemes := uniseg.NewGraphemes(prefix)
	for graphemes.Next() {
		if graphemes.Str() == "\t" {
			sb.WriteByte('\t')
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

func clamp(value, lower, upper int) int {
	if value < lower {
		return lower
	}
	if value > upper {
		return upper
	}
	return value
}
