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
package queens

import (
	"fmt"

	"github.com/consensys/go-peano/pkg/function"
	"github.com/consensys/go-peano/pkg/list"
	"github.com/consensys/go-peano/pkg/logic"
	"github.com/consensys/go-peano/pkg/numeral"
)

// Queen is a queen placed on the board at row X and column Y.
type Queen struct {
	X numeral.Numeral
	Y numeral.Numeral
}

// Configuration is a (partial) placement of queens on the board, with the most
// recently placed queen at the head.
type Configuration = list.List[Queen]

// NewQueen constructs a queen at a given row and column.
func NewQueen(x int, y int) Queen {
	return Queen{numeral.FromInt(x), numeral.FromInt(y)}
}

func (q Queen) String() string {
	return fmt.Sprintf("Queen(%s, %s)", q.X, q.Y)
}

// Threatens determines whether two queens attack each other, which happens when
// they share a row, a column or a diagonal.  Observe that a queen always
// threatens itself.
func Threatens(a Queen, b Queen) logic.Bool {
	var (
		sameRow    = numeral.Equal(a.X, b.X)
		sameColumn = numeral.Equal(a.Y, b.Y)
		// |ax - bx| = |ay - by|
		sameDiagonal = numeral.Equal(numeral.AbsDiff(a.X, b.X), numeral.AbsDiff(a.Y, b.Y))
	)
	//
	return logic.Or(sameDiagonal, logic.Or(sameRow, sameColumn))
}

// ThreatensFn partially applies Threatens to a given queen, producing a
// predicate which holds for those queens it threatens.
func ThreatensFn(q Queen) function.Predicate[Queen] {
	return function.Total(fmt.Sprintf("threatens[%s]", q), func(other Queen) logic.Bool {
		return Threatens(q, other)
	})
}

// Safe determines whether a new queen can be added to an existing
// configuration, which is the case when no queen already placed threatens it.
func Safe(existing Configuration, q Queen) (logic.Bool, error) {
	threats, err := function.Map(ThreatensFn(q), existing)
	if err != nil {
		return logic.False, err
	}
	//
	return logic.Not(function.AnyTrue(threats)), nil
}

// SafeFn partially applies Safe to a given configuration, producing a predicate
// which holds for those queens which can be safely added to it.
func SafeFn(config Configuration) function.Predicate[Queen] {
	return function.Lift(fmt.Sprintf("safe[%s]", config), func(q Queen) (logic.Bool, error) {
		return Safe(config, q)
	})
}

// QueenFn partially applies the Queen constructor to a given row, producing a
// function from columns to queens.
func QueenFn(x numeral.Numeral) function.Function[numeral.Numeral, Queen] {
	return function.Total(fmt.Sprintf("queen[%s]", x), func(y numeral.Numeral) Queen {
		return Queen{x, y}
	})
}

// QueensInRow returns every queen on row x of an n x n board, in descending
// column order.
func QueensInRow(n numeral.Numeral, x numeral.Numeral) (list.List[Queen], error) {
	columns, err := numeral.Range(n)
	if err != nil {
		return list.Nil[Queen](), err
	}
	//
	return function.Map(QueenFn(x), columns)
}

// IsSolution determines whether a configuration places exactly n queens, none
// of which threaten each other.
func IsSolution(n numeral.Numeral, config Configuration) (logic.Bool, error) {
	size := numeral.FromInt(int(config.Len()))
	//
	if !numeral.Equal(size, n).Holds() {
		return logic.False, nil
	}
	//
	return pairwiseSafe(config)
}

// IsSolutionFn partially applies IsSolution to a given board size.
func IsSolutionFn(n numeral.Numeral) function.Predicate[Configuration] {
	return function.Lift(fmt.Sprintf("is-solution[%s]", n), func(config Configuration) (logic.Bool, error) {
		return IsSolution(n, config)
	})
}

// Verify checks independently that every configuration in a list is a solution
// for an n x n board.
func Verify(n numeral.Numeral, configs list.List[Configuration]) (logic.Bool, error) {
	checks, err := function.Map(IsSolutionFn(n), configs)
	if err != nil {
		return logic.False, err
	}
	//
	return function.AllTrue(checks), nil
}

func pairwiseSafe(config Configuration) (logic.Bool, error) {
	q, rest, ok := config.Uncons()
	//
	if !ok {
		return logic.True, nil
	}
	//
	safe, err := Safe(rest, q)
	if err != nil || !safe.Holds() {
		return logic.False, err
	}
	//
	return pairwiseSafe(rest)
}
