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
	log "github.com/sirupsen/logrus"
)

var (
	two   = numeral.FromInt(2)
	three = numeral.FromInt(3)
)

// CellShouldLive applies Conway's rule: a cell with three live neighbours is
// alive in the next generation, as is a live cell with two live neighbours.
func CellShouldLive(alive list.List[Cell], cell Cell, count numeral.Numeral) logic.Bool {
	var (
		birth    = numeral.Equal(count, three)
		survival = logic.And(numeral.Equal(count, two), function.Contains(alive, cell, CellEqual))
	)
	//
	return logic.Or(birth, survival)
}

// ShouldLiveFn partially applies CellShouldLive to the set of live cells,
// producing a predicate over (cell, neighbour count) pairs.
func ShouldLiveFn(alive list.List[Cell]) function.Predicate[util.Pair[Cell, numeral.Numeral]] {
	return function.Total(fmt.Sprintf("should-live[%s]", alive), func(p util.Pair[Cell, numeral.Numeral]) logic.Bool {
		return CellShouldLive(alive, p.Left, p.Right)
	})
}

// CellOf projects a (cell, count) pair onto its cell.
var CellOf = function.Total("cell", func(p util.Pair[Cell, numeral.Numeral]) Cell {
	return p.Left
})

// Step computes the next generation from the current set of live cells, where
// a cell listed more than once is alive just once.  Only cells neighbouring a
// live cell can be alive in the next generation, hence these are tallied by how
// many live cells they neighbour and filtered by Conway's rule.
func Step(active list.List[Cell]) (list.List[Cell], error) {
	if err := Check(active); err != nil {
		return list.Nil[Cell](), err
	}
	// Collapse repeated cells, since each live cell must be counted once
	active, err := function.Map(CellOf, CountInstances(active, CellEqual))
	if err != nil {
		return list.Nil[Cell](), err
	}
	//
	neighbours, err := function.FlatMap(NeighboursFn, active)
	if err != nil {
		return list.Nil[Cell](), err
	}
	//
	counts := CountInstances(neighbours, CellEqual)
	//
	survivors, err := function.Filter(ShouldLiveFn(active), counts)
	if err != nil {
		return list.Nil[Cell](), err
	}
	//
	log.Debugf("%d live cells, %d candidates, %d survivors", active.Len(), counts.Len(), survivors.Len())
	//
	return function.Map(CellOf, survivors)
}

// Generations returns the next n generations following a given set of live
// cells, in order.  A DomainError is returned for negative n.
func Generations(active list.List[Cell], n numeral.Numeral) (list.List[list.List[Cell]], error) {
	return generations(active, n, util.NewPerfStats(), 1)
}

// Compute the remaining n generations, where i is the index of the next.
func generations(active list.List[Cell], n numeral.Numeral, stats *util.PerfStats,
	i uint) (list.List[list.List[Cell]], error) {
	switch x := n.(type) {
	case numeral.Zero:
		return list.Nil[list.List[Cell]](), nil
	case numeral.Successor:
		next, err := Step(active)
		if err != nil {
			return list.Nil[list.List[Cell]](), err
		}
		//
		stats.LogLap(fmt.Sprintf("Generation %d", i))
		//
		rest, err := generations(next, x.Pred(), stats, i+1)
		if err != nil {
			return list.Nil[list.List[Cell]](), err
		}
		//
		return list.Cons(next, rest), nil
	default:
		return list.Nil[list.List[Cell]](), function.NewDomainError("generations", n)
	}
}
