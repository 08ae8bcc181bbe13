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
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/consensys/go-peano/pkg/function"
	"github.com/consensys/go-peano/pkg/list"
	"github.com/consensys/go-peano/pkg/logic"
	"github.com/consensys/go-peano/pkg/numeral"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Neighbours_01(t *testing.T) {
	cells := Neighbours(NewCell(0, 0))
	//
	assert.Equal(t, "[(-1, -1), (-1, 0), (-1, 1), (0, -1), (0, 1), (1, -1), (1, 0), (1, 1)]", cells.String())
}

func Test_Neighbours_02(t *testing.T) {
	c := NewCell(3, -2)
	cells := Neighbours(c)
	//
	assert.Equal(t, uint(8), cells.Len())
	assert.False(t, function.Contains(cells, c, CellEqual).Holds())
	//
	for n := range cells.All() {
		dx := numeral.ToInt(numeral.AbsDiff(n.X, c.X))
		dy := numeral.ToInt(numeral.AbsDiff(n.Y, c.Y))
		assert.True(t, dx <= 1 && dy <= 1)
	}
}

func Test_CountInstances_01(t *testing.T) {
	eq := func(a, b string) logic.Bool { return logic.Bool(a == b) }
	counts := CountInstances(list.Of("b", "a", "b", "c", "b", "a"), eq)
	//
	assert.Equal(t, "[(b, 3), (a, 2), (c, 1)]", counts.String())
}

func Test_CountInstances_02(t *testing.T) {
	eq := func(a, b int) logic.Bool { return logic.Bool(a == b) }
	//
	assert.True(t, CountInstances(list.Nil[int](), eq).IsNil())
	// Equality need not be identity
	parity := func(a, b int) logic.Bool { return logic.Bool(a%2 == b%2) }
	assert.Equal(t, "[(1, 3), (2, 2)]", CountInstances(list.Of(1, 2, 3, 4, 5), parity).String())
}

func Test_CellShouldLive_01(t *testing.T) {
	alive := list.Of(NewCell(0, 0))
	//
	for count := range 9 {
		n := numeral.FromInt(count)
		// Live cell
		assert.Equal(t, logic.Bool(count == 2 || count == 3), CellShouldLive(alive, NewCell(0, 0), n), "%d", count)
		// Dead cell
		assert.Equal(t, logic.Bool(count == 3), CellShouldLive(alive, NewCell(1, 0), n), "%d", count)
	}
}

func Test_Step_01(t *testing.T) {
	next, err := Step(list.Nil[Cell]())
	//
	require.NoError(t, err)
	assert.True(t, next.IsNil())
}

func Test_Step_02(t *testing.T) {
	// A lone cell dies
	next, err := Step(list.Of(NewCell(5, 5)))
	//
	require.NoError(t, err)
	assert.True(t, next.IsNil())
}

func Test_Step_03(t *testing.T) {
	// A block is still
	block := list.Of(NewCell(0, 0), NewCell(0, 1), NewCell(1, 0), NewCell(1, 1))
	next, err := Step(block)
	//
	require.NoError(t, err)
	assert.Equal(t, cellSet(block), cellSet(next))
}

func Test_Step_04(t *testing.T) {
	next, err := Step(Glider.Cells)
	//
	require.NoError(t, err)
	assert.Equal(t, uint(5), next.Len())
	assert.Equal(t, points([2]int{1, -1}, [2]int{1, 1}, [2]int{2, -1}, [2]int{2, 0}, [2]int{3, 0}), cellSet(next))
}

func Test_Step_05(t *testing.T) {
	generations, err := Generations(Glider.Cells, numeral.FromInt(4))
	require.NoError(t, err)
	require.Equal(t, uint(4), generations.Len())
	//
	for g := range generations.All() {
		assert.Equal(t, uint(5), g.Len())
	}
	// After four steps, the glider has moved one cell diagonally
	last := generations.ToSlice()[3]
	expected := make(map[[2]int]bool)
	//
	for p := range cellSet(Glider.Cells) {
		expected[[2]int{p[0] + 1, p[1] - 1}] = true
	}
	//
	assert.Equal(t, expected, cellSet(last))
}

func Test_Step_06(t *testing.T) {
	vertical := points([2]int{1, -1}, [2]int{1, 0}, [2]int{1, 1})
	generations, err := Generations(Blinker.Cells, numeral.FromInt(4))
	//
	require.NoError(t, err)
	//
	for i, g := range generations.ToSlice() {
		if i%2 == 0 {
			assert.Equal(t, vertical, cellSet(g), "generation %d", i+1)
		} else {
			assert.Equal(t, cellSet(Blinker.Cells), cellSet(g), "generation %d", i+1)
		}
	}
}

func Test_Step_07(t *testing.T) {
	// Step never produces duplicate cells
	generations, err := Generations(GliderGun.Cells, numeral.FromInt(3))
	//
	require.NoError(t, err)
	//
	for g := range generations.All() {
		assert.Equal(t, int(g.Len()), len(cellSet(g)))
	}
}

func Test_Step_08(t *testing.T) {
	// A repeated live cell is counted once
	p, err := ParsePattern([]byte("name: line\ncells: [[0, 0], [0, 0], [1, 0], [2, 0]]\n"))
	require.NoError(t, err)
	require.Equal(t, uint(4), p.Cells.Len())
	//
	next, err := Step(p.Cells)
	//
	require.NoError(t, err)
	assert.Equal(t, uint(3), next.Len())
	assert.Equal(t, points([2]int{1, -1}, [2]int{1, 0}, [2]int{1, 1}), cellSet(next))
}

func Test_Step_Invalid_01(t *testing.T) {
	var merr *numeral.MalformedError
	//
	_, err := Step(list.Of(Cell{numeral.Negative{}, numeral.Zero{}}))
	//
	assert.True(t, errors.As(err, &merr))
}

func Test_Generations_01(t *testing.T) {
	var derr *function.DomainError
	//
	gens, err := Generations(Glider.Cells, numeral.Zero{})
	require.NoError(t, err)
	assert.True(t, gens.IsNil())
	//
	_, err = Generations(Glider.Cells, numeral.MinusOne)
	assert.True(t, errors.As(err, &derr))
}

func Test_Generations_02(t *testing.T) {
	// Each generation reports its own statistics
	hook := test.NewGlobal()
	level := log.GetLevel()
	log.SetLevel(log.DebugLevel)
	//
	defer func() {
		log.SetLevel(level)
		hook.Reset()
	}()
	//
	_, err := Generations(Blinker.Cells, numeral.FromInt(3))
	require.NoError(t, err)
	//
	var laps []string
	//
	for _, entry := range hook.AllEntries() {
		if _, ok := entry.Data["seconds"]; ok {
			laps = append(laps, entry.Message)
		}
	}
	//
	assert.Equal(t, []string{"Generation 1", "Generation 2", "Generation 3"}, laps)
}

func Test_Pattern_01(t *testing.T) {
	assert.Equal(t, uint(36), GliderGun.Cells.Len())
	assert.Equal(t, uint(5), Glider.Cells.Len())
	//
	p, ok := LookupPattern("blinker")
	require.True(t, ok)
	assert.Equal(t, "[(0, 0), (1, 0), (2, 0)]", p.Cells.String())
	//
	_, ok = LookupPattern("spaceship")
	assert.False(t, ok)
}

func Test_ParsePattern_01(t *testing.T) {
	p, err := ParsePattern([]byte("name: glider\ncells: [[0, 0], [1, -1], [2, -1], [2, 0], [2, 1]]\n"))
	//
	require.NoError(t, err)
	assert.Equal(t, "glider", p.Name)
	assert.Equal(t, cellSet(Glider.Cells), cellSet(p.Cells))
}

func Test_ParsePattern_02(t *testing.T) {
	inputs := []string{
		// Missing name
		"cells: [[0, 0]]\n",
		// Missing cells
		"name: empty\n",
		// Malformed coordinates
		"name: bad\ncells: [[0, 0, 1]]\n",
		"name: bad\ncells: [[0]]\n",
		// Not YAML
		"name: [\n",
	}
	//
	for _, input := range inputs {
		_, err := ParsePattern([]byte(input))
		assert.Error(t, err, input)
	}
}

func Test_ParsePattern_03(t *testing.T) {
	// Coordinates are bounded in magnitude
	for _, input := range []string{"[[4097, 0]]", "[[0, -4097]]", "[[2000000000, 0]]"} {
		_, err := ParsePattern([]byte("name: far\ncells: " + input + "\n"))
		assert.Error(t, err, input)
	}
	//
	p, err := ParsePattern([]byte("name: edge\ncells: [[4096, -4096]]\n"))
	require.NoError(t, err)
	assert.Equal(t, points([2]int{MaxCoordinate, -MaxCoordinate}), cellSet(p.Cells))
}

func Test_ReadPatternFile_01(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "blinker.yaml")
	require.NoError(t, os.WriteFile(filename, []byte("name: line\ncells:\n  - [0, 0]\n  - [1, 0]\n  - [2, 0]\n"), 0o600))
	//
	p, err := ReadPatternFile(filename)
	//
	require.NoError(t, err)
	assert.Equal(t, "line", p.Name)
	assert.Equal(t, cellSet(Blinker.Cells), cellSet(p.Cells))
	//
	_, err = ReadPatternFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func cellSet(cells list.List[Cell]) map[[2]int]bool {
	set := make(map[[2]int]bool)
	//
	for c := range cells.All() {
		set[[2]int{numeral.ToInt(c.X), numeral.ToInt(c.Y)}] = true
	}
	//
	return set
}

func points(ps ...[2]int) map[[2]int]bool {
	set := make(map[[2]int]bool)
	//
	for _, p := range ps {
		set[p] = true
	}
	//
	return set
}
