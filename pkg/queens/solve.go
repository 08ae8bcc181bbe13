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
	"context"
	"fmt"

	"github.com/consensys/go-peano/pkg/function"
	"github.com/consensys/go-peano/pkg/list"
	"github.com/consensys/go-peano/pkg/numeral"
	log "github.com/sirupsen/logrus"
)

// AddQueen returns every safe extension of a configuration by a queen placed
// on row x of an n x n board.
func AddQueen(n numeral.Numeral, x numeral.Numeral, config Configuration) (list.List[Configuration], error) {
	row, err := QueensInRow(n, x)
	if err != nil {
		return list.Nil[Configuration](), err
	}
	//
	safe, err := function.Filter(SafeFn(config), row)
	if err != nil {
		return list.Nil[Configuration](), err
	}
	//
	return function.Map(function.Prepend(config), safe)
}

// AddQueenFn partially applies AddQueen to a given board size and row.
func AddQueenFn(n numeral.Numeral, x numeral.Numeral) function.Function[Configuration, list.List[Configuration]] {
	return function.Lift(fmt.Sprintf("add-queen[%s,%s]", n, x),
		func(config Configuration) (list.List[Configuration], error) {
			return AddQueen(n, x, config)
		})
}

// AddQueenToAll extends every configuration in a frontier by a queen on row x,
// producing the frontier of all safe configurations covering rows [0, x].
func AddQueenToAll(n numeral.Numeral, x numeral.Numeral, configs list.List[Configuration]) (list.List[Configuration],
	error) {
	return function.FlatMap(AddQueenFn(n, x), configs)
}

// AddQueens extends a frontier of configurations one row at a time, from row x
// through to row n-1.  Every step strictly increases x towards n, hence this
// terminates.
func AddQueens(n numeral.Numeral, x numeral.Numeral, configs list.List[Configuration]) (list.List[Configuration],
	error) {
	return addQueens(context.Background(), n, x, configs, 1)
}

// Extend the frontier row by row, where each row is expanded using up to jobs
// goroutines.
func addQueens(ctx context.Context, n numeral.Numeral, x numeral.Numeral, configs list.List[Configuration],
	jobs uint) (list.List[Configuration], error) {
	if err := ctx.Err(); err != nil {
		return list.Nil[Configuration](), err
	} else if !numeral.LessThan(x, n).Holds() {
		return configs, nil
	}
	//
	next, err := expand(ctx, n, x, configs, jobs)
	if err != nil {
		return list.Nil[Configuration](), err
	}
	//
	log.Debugf("row %s: frontier of %d configurations", x, next.Len())
	//
	x1, err := numeral.Increment.Apply(x)
	if err != nil {
		return list.Nil[Configuration](), err
	}
	//
	return addQueens(ctx, n, x1, next, jobs)
}

// Expand every configuration of a frontier by a queen on row x.  Since
// configurations are independent, they can be expanded concurrently, and the
// result is the same either way.
func expand(ctx context.Context, n numeral.Numeral, x numeral.Numeral, configs list.List[Configuration],
	jobs uint) (list.List[Configuration], error) {
	if jobs <= 1 {
		return AddQueenToAll(n, x, configs)
	}
	//
	extensions, err := function.ParMap(ctx, AddQueenFn(n, x), configs, int(jobs))
	if err != nil {
		return list.Nil[Configuration](), err
	}
	//
	return list.ConcatAll(extensions), nil
}

// Solution is the function which maps a board size n to every safe placement of
// n queens on an n x n board.  It has no case for negative board sizes.
var Solution = function.New("n-queens",
	function.Case[numeral.Numeral, list.List[Configuration]]{
		Shape:   "n >= 0",
		Accepts: validSize,
		Apply:   solve,
	},
)

// Solve returns every safe placement of n queens on an n x n board.
func Solve(n numeral.Numeral) (list.List[Configuration], error) {
	return Solution.Apply(n)
}

// SolveParallel is as Solve, except that each row of the search is expanded
// using up to jobs goroutines.  The solutions, and their order, are the same as
// for Solve.
func SolveParallel(ctx context.Context, n numeral.Numeral, jobs uint) (list.List[Configuration], error) {
	if !validSize(n) {
		return list.Nil[Configuration](), function.NewDomainError(Solution.Tag(), n)
	}
	//
	return addQueens(ctx, n, numeral.Zero{}, seed(), jobs)
}

func solve(n numeral.Numeral) (list.List[Configuration], error) {
	return AddQueens(n, numeral.Zero{}, seed())
}

// Search begins with a single empty configuration
func seed() list.List[Configuration] {
	return list.Of(list.Nil[Queen]())
}

func validSize(n numeral.Numeral) bool {
	return numeral.Check(n) == nil && !isNegative(n)
}

func isNegative(n numeral.Numeral) bool {
	_, ok := n.(numeral.Negative)
	return ok
}
