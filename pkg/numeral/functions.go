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
package numeral

import (
	"github.com/consensys/go-peano/pkg/function"
	"github.com/consensys/go-peano/pkg/list"
	"github.com/consensys/go-peano/pkg/logic"
)

// Increment is the function n => n+1.
var Increment = function.New("increment",
	function.Case[Numeral, Numeral]{
		Shape:   "n >= 0",
		Accepts: nonNegative,
		Apply:   func(n Numeral) (Numeral, error) { return Successor{n}, nil },
	},
	function.Case[Numeral, Numeral]{
		// -1 + 1 = 0
		Shape:   "-1",
		Accepts: func(n Numeral) bool { return n == MinusOne },
		Apply:   func(Numeral) (Numeral, error) { return Zero{}, nil },
	},
	function.Case[Numeral, Numeral]{
		// -(n+1) + 1 = -n
		Shape:   "-(n+1), n > 0",
		Accepts: func(n Numeral) bool { return negative(n) && n != MinusOne },
		Apply: func(n Numeral) (Numeral, error) {
			return Negative{n.(Negative).magnitude.(Successor).pred}, nil
		},
	},
)

// Decrement is the function n => n-1.
var Decrement = function.New("decrement",
	function.Case[Numeral, Numeral]{
		Shape:   "n+1",
		Accepts: positive,
		Apply:   func(n Numeral) (Numeral, error) { return n.(Successor).pred, nil },
	},
	function.Case[Numeral, Numeral]{
		Shape:   "0",
		Accepts: isZero,
		Apply:   func(Numeral) (Numeral, error) { return MinusOne, nil },
	},
	function.Case[Numeral, Numeral]{
		// -n - 1 = -(n+1)
		Shape:   "-n",
		Accepts: negative,
		Apply: func(n Numeral) (Numeral, error) {
			return Negative{Successor{n.(Negative).magnitude}}, nil
		},
	},
)

// IsZero is the predicate which holds only for zero.
var IsZero = function.New("is-zero",
	function.Case[Numeral, logic.Bool]{
		Shape:   "0",
		Accepts: isZero,
		Apply:   func(Numeral) (logic.Bool, error) { return logic.True, nil },
	},
	function.Case[Numeral, logic.Bool]{
		Shape:   "n+1",
		Accepts: positive,
		Apply:   func(Numeral) (logic.Bool, error) { return logic.False, nil },
	},
	function.Case[Numeral, logic.Bool]{
		Shape:   "-n",
		Accepts: negative,
		Apply:   func(Numeral) (logic.Bool, error) { return logic.False, nil },
	},
)

// RangeFn is the function n => [n-1, n-2, ..., 0].  It has no case for
// negative numerals.
var RangeFn = function.New("range",
	function.Case[Numeral, list.List[Numeral]]{
		Shape:   "0",
		Accepts: isZero,
		Apply:   func(Numeral) (list.List[Numeral], error) { return list.Nil[Numeral](), nil },
	},
	function.Case[Numeral, list.List[Numeral]]{
		Shape:   "n+1",
		Accepts: positive,
		Apply:   func(n Numeral) (list.List[Numeral], error) { return countdown(n.(Successor)), nil },
	},
)

// Range returns the descending list [n-1, n-2, ..., 0] of length n.  A
// DomainError is returned for negative n.
func Range(n Numeral) (list.List[Numeral], error) {
	return RangeFn.Apply(n)
}

// Range(n+1) = n :: Range(n)
func countdown(n Successor) list.List[Numeral] {
	if pred, ok := n.pred.(Successor); ok {
		return list.Cons(n.pred, countdown(pred))
	}
	//
	return list.Of(n.pred)
}

func isZero(n Numeral) bool {
	_, ok := n.(Zero)
	return ok
}

func positive(n Numeral) bool {
	x, ok := n.(Successor)
	return ok && x.pred != nil
}

func negative(n Numeral) bool {
	x, ok := n.(Negative)
	return ok && positive(x.magnitude)
}

func nonNegative(n Numeral) bool {
	return isZero(n) || positive(n)
}
