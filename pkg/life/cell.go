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

	"github.com/consensys/go-peano/pkg/function"
	"github.com/consensys/go-peano/pkg/list"
	"github.com/consensys/go-peano/pkg/logic"
	"github.com/consensys/go-peano/pkg/numeral"
	"github.com/consensys/go-peano/pkg/util"
)

// Cell is a point on the (unbounded) lattice.
type Cell struct {
	X numeral.Numeral
	Y numeral.Numeral
}

// Delta is an offset between two cells.
type Delta struct {
	DX numeral.Numeral
	DY numeral.Numeral
}

// NewCell constructs the cell at a given position.
func NewCell(x int, y int) Cell {
	return Cell{numeral.FromInt(x), numeral.FromInt(y)}
}

// Fields returns the coordinates of this cell.
func (c Cell) Fields() []any {
	return []any{c.X, c.Y}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%s, %s)", c.X, c.Y)
}

// MooreNeighbourhood holds the offsets of the eight cells surrounding any given
// cell.
var MooreNeighbourhood = mooreNeighbourhood()

func mooreNeighbourhood() list.List[Delta] {
	var deltas []Delta
	//
	for i := -1; i <= 1; i++ {
		for j := -1; j <= 1; j++ {
			if i != 0 || j != 0 {
				deltas = append(deltas, Delta{numeral.FromInt(i), numeral.FromInt(j)})
			}
		}
	}
	//
	return list.FromSlice(deltas)
}

// Translate a cell by a given offset.
func Translate(c Cell, d Delta) Cell {
	return Cell{numeral.Add(c.X, d.DX), numeral.Add(c.Y, d.DY)}
}

// TranslateFn partially applies Translate to a given cell.
func TranslateFn(c Cell) function.Function[Delta, Cell] {
	return function.Total(fmt.Sprintf("translate[%s]", c), func(d Delta) Cell {
		return Translate(c, d)
	})
}

// Neighbours returns the eight cells surrounding a given cell.
func Neighbours(c Cell) list.List[Cell] {
	// Cannot fail, since TranslateFn is total.
	cells, _ := function.Map(TranslateFn(c), MooreNeighbourhood)
	//
	return cells
}

// NeighboursFn is the function mapping each cell to its neighbours.
var NeighboursFn = function.Total("neighbours", Neighbours)

// CellEqual determines whether two cells are at the same position.
func CellEqual(a Cell, b Cell) logic.Bool {
	return logic.And(numeral.Equal(a.X, b.X), numeral.Equal(a.Y, b.Y))
}

// Check that the coordinates of every cell are well-formed numerals.
func Check(cells list.List[Cell]) error {
	for c := range cells.All() {
		if err := numeral.Check(c.X); err != nil {
			return err
		} else if err := numeral.Check(c.Y); err != nil {
			return err
		}
	}
	//
	return nil
}

// CountInstances tallies the items of a list under a given equality, producing
// (item, count) pairs.  Pairs are ordered by the first occurrence of their item.
func CountInstances[T any](items list.List[T], eq function.Equality[T]) list.List[util.Pair[T, numeral.Numeral]] {
	return list.FoldLeft(items, list.Nil[util.Pair[T, numeral.Numeral]](),
		func(counts list.List[util.Pair[T, numeral.Numeral]], item T) list.List[util.Pair[T, numeral.Numeral]] {
			return tally(counts, item, eq)
		})
}

// Increment the count for a given item, or append a fresh count if it has not
// been seen before.
func tally[T any](counts list.List[util.Pair[T, numeral.Numeral]], item T,
	eq function.Equality[T]) list.List[util.Pair[T, numeral.Numeral]] {
	p, rest, ok := counts.Uncons()
	//
	switch {
	case !ok:
		return list.Of(util.NewPair(item, numeral.One))
	case eq(p.Left, item).Holds():
		return list.Cons(util.NewPair(p.Left, numeral.Add(p.Right, numeral.One)), rest)
	default:
		return list.Cons(p, tally(rest, item, eq))
	}
}
