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

package ast

import (
	"fmt"
)

// Position defines a row/column within a source string.
// Lines are 1-based, columns and offsets are 0-based.
type Position struct {
	// Offset is the byte offset, starting at 0
	Offset int
	// Line is the line number, starting at 1
	Line int
	// Column is the column number, starting at 0 (byte count)
	Column int
}

var EmptyPosition = Position{}

func NewPosition(offset, line, column int) Position {
	return Position{
		Offset: offset,
		Line:   line,
		Column: column,
	}
}

// Shifted returns a new position with the offset and column shifted by the given length.
// Shifting never crosses lines.
func (position Position) Shifted(length int) Position {
	return Position{
		Line:   position.Line,
		Offset: position.Offset + length,
		Column: position.Column + length,
	}
}

func (position Position) String() string {
	return fmt.Sprintf("%d:%d", position.Line, position.Column)
}

// Compare returns -1, 0, or 1,
// depending on whether position is before, at, or after other.
func (position Position) Compare(other Position) int {
	switch {
	case position.Offset < other.Offset:
		return -1
	case position.Offset > other.Offset:
		return 1
	default:
		return 0
	}
}

type HasPosition interface {
	StartPosition() Position
	EndPosition() Position
}

// Range

type Range struct {
	StartPos Position
	EndPos   Position
}

var EmptyRange = Range{}

func NewRange(startPos, endPos Position) Range {
	return Range{
		StartPos: startPos,
		EndPos:   endPos,
	}
}

// NewRangeFromPositioned returns a range spanning the given element
func NewRangeFromPositioned(hasPosition HasPosition) Range {
	if hasPosition == nil {
		return EmptyRange
	}
	return Range{
		StartPos: hasPosition.StartPosition(),
		EndPos:   hasPosition.EndPosition(),
	}
}

func (e Range) StartPosition() Position {
	return e.StartPos
}

func (e Range) EndPosition() Position {
	return e.EndPos
}
