// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package display

import (
	"io"
	"strings"

	"github.com/consensys/go-peano/pkg/util/termio"
)

// Point is a position on a board, where X is the column and Y is the row.
type Point struct {
	X int
	Y int
}

// Style determines how boards are drawn.
type Style struct {
	// Glyph drawn for a set point
	Live string
	// Glyph drawn for an unset point
	Dead string
	// Escape used to colour set points, or empty for no colour
	Escape string
}

// CellStyle is the style used for Game of Life boards.
var CellStyle = Style{"█", " ", ""}

// QueenStyle is the style used for chessboards.
var QueenStyle = Style{"Q", ".", ""}

// Coloured returns this style with set points drawn in a given colour.
func (s Style) Coloured(colour uint) Style {
	s.Escape = termio.BoldAnsiEscape().FgColour(colour).Build()
	return s
}

// Board is a sparse set of points which is drawn within its bounding box.
type Board struct {
	points map[Point]bool
	// Indicates whether the bounding box covers anything yet
	bounded bool
	// Bounding box
	min, max Point
}

// NewBoard constructs an empty board.
func NewBoard() *Board {
	return &Board{points: make(map[Point]bool)}
}

// Set marks a point on the board, extending its bounding box as necessary.
func (b *Board) Set(x int, y int) {
	b.Include(x, y)
	b.points[Point{x, y}] = true
}

// Include extends the bounding box of this board to cover a given point, without
// marking it.
func (b *Board) Include(x int, y int) {
	if !b.bounded {
		b.min, b.max, b.bounded = Point{x, y}, Point{x, y}, true
		return
	}
	//
	b.min = Point{min(b.min.X, x), min(b.min.Y, y)}
	b.max = Point{max(b.max.X, x), max(b.max.Y, y)}
}

// Render this board, one row per line, from the smallest row to the largest.
// Nothing is written for an empty bounding box.
func (b *Board) Render(w io.Writer, style Style) error {
	if !b.bounded {
		return nil
	}
	//
	var builder strings.Builder
	//
	for y := b.min.Y; y <= b.max.Y; y++ {
		for x := b.min.X; x <= b.max.X; x++ {
			switch {
			case !b.points[Point{x, y}]:
				builder.WriteString(style.Dead)
			case style.Escape != "":
				builder.WriteString(style.Escape)
				builder.WriteString(style.Live)
				builder.WriteString(termio.ResetAnsiEscape().Build())
			default:
				builder.WriteString(style.Live)
			}
		}
		//
		builder.WriteString("\n")
	}
	//
	_, err := io.WriteString(w, builder.String())
	//
	return err
}
