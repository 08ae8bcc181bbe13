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
package life

import (
	"fmt"
	"os"
	"slices"

	"github.com/consensys/go-peano/pkg/list"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// MaxPatternFileSize bounds the size of pattern files which will be read.
const MaxPatternFileSize = 1024 * 1024

// MaxCoordinate bounds the magnitude of cell coordinates in pattern files, as
// numerals are unary and their size grows with their magnitude.  This must
// match the bounds given in the patternFile validation tags.
const MaxCoordinate = 4096

// Pattern is a named set of live cells used to seed a game.
type Pattern struct {
	Name  string
	Cells list.List[Cell]
}

// Glider is the smallest spaceship, which travels one cell diagonally every
// four generations.
var Glider = newPattern("glider", [][2]int{{0, 0}, {1, -1}, {2, -1}, {2, 0}, {2, 1}})

// Blinker is a horizontal line of three cells, which oscillates with period
// two.
var Blinker = newPattern("blinker", [][2]int{{0, 0}, {1, 0}, {2, 0}})

// GliderGun is Gosper's glider gun, which emits a glider every thirty
// generations.
var GliderGun = newPattern("glider-gun", [][2]int{
	{0, 0}, {1, 0}, {0, 1}, {1, 1},
	{10, 0}, {10, -1}, {10, 1}, {11, -2}, {12, -3}, {13, -3}, {11, 2}, {12, 3}, {13, 3},
	{14, 0}, {15, 2}, {15, -2}, {16, 0}, {16, 1}, {16, -1}, {17, 0},
	{20, 1}, {20, 2}, {20, 3}, {21, 1}, {21, 2}, {21, 3}, {22, 0}, {22, 4},
	{24, 4}, {24, 5}, {24, 0}, {24, -1},
	{34, 2}, {34, 3}, {35, 2}, {35, 3},
})

// Patterns returns the built-in patterns.
func Patterns() []Pattern {
	return []Pattern{Glider, Blinker, GliderGun}
}

// LookupPattern finds a built-in pattern by name.
func LookupPattern(name string) (Pattern, bool) {
	index := slices.IndexFunc(Patterns(), func(p Pattern) bool { return p.Name == name })
	//
	if index < 0 {
		return Pattern{}, false
	}
	//
	return Patterns()[index], true
}

// ============================================================================
// Pattern files
// ============================================================================

// patternFile is the on-disk (YAML) representation of a pattern, e.g.
//
//	name: glider
//	cells: [[0, 0], [1, -1], [2, -1], [2, 0], [2, 1]]
type patternFile struct {
	Name  string  `yaml:"name" validate:"required"`
	Cells [][]int `yaml:"cells" validate:"required,min=1,dive,len=2,dive,min=-4096,max=4096"`
}

var validate = validator.New()

// ParsePattern parses a pattern from its YAML representation.
func ParsePattern(data []byte) (Pattern, error) {
	var file patternFile
	//
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Pattern{}, fmt.Errorf("invalid pattern: %w", err)
	} else if err := validate.Struct(&file); err != nil {
		return Pattern{}, fmt.Errorf("invalid pattern: %w", err)
	}
	//
	cells := make([][2]int, len(file.Cells))
	//
	for i, c := range file.Cells {
		cells[i] = [2]int{c[0], c[1]}
	}
	//
	return newPattern(file.Name, cells), nil
}

// ReadPatternFile reads a pattern from a YAML file.
func ReadPatternFile(filename string) (Pattern, error) {
	info, err := os.Stat(filename)
	if err != nil {
		return Pattern{}, err
	} else if info.Size() > MaxPatternFileSize {
		return Pattern{}, fmt.Errorf("pattern file %s too large (%d bytes)", filename, info.Size())
	}
	//
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return Pattern{}, err
	}
	//
	return ParsePattern(bytes)
}

func newPattern(name string, points [][2]int) Pattern {
	cells := make([]Cell, len(points))
	//
	for i, p := range points {
		cells[i] = NewCell(p[0], p[1])
	}
	//
	return Pattern{name, list.FromSlice(cells)}
}
