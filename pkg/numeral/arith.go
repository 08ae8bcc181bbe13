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
	"github.com/consensys/go-peano/pkg/logic"
)

// The arithmetic below expects canonical numerals, such as those built by this
// package or accepted by Check.  A malformed argument (e.g. Negative{}) causes a
// panic whose value is a *MalformedError.

// Equal determines whether two numerals are the same integer.  Numerals built
// from different constructors are never equal, since encodings are canonical.
func Equal(a Numeral, b Numeral) logic.Bool {
	switch x := a.(type) {
	case Zero:
		// 0 == 0, but 0 != n+1 and 0 != -n
		_, ok := b.(Zero)
		return logic.Bool(ok)
	case Successor:
		// n+1 == m+1 iff n == m
		if y, ok := b.(Successor); ok {
			return Equal(x.pred, y.pred)
		}
		//
		return logic.False
	case Negative:
		// -n == -m iff n == m
		if y, ok := b.(Negative); ok {
			return Equal(x.magnitude, y.magnitude)
		}
		//
		return logic.False
	default:
		panic(unknown(a))
	}
}

// LessThan determines whether one numeral is strictly less than another.
func LessThan(a Numeral, b Numeral) logic.Bool {
	switch x := a.(type) {
	case Zero:
		// 0 < n+1, but neither 0 < 0 nor 0 < -n
		_, ok := b.(Successor)
		return logic.Bool(ok)
	case Successor:
		// n+1 < m+1 iff n < m, whilst n+1 < 0 and n+1 < -m are false
		if y, ok := b.(Successor); ok {
			return LessThan(x.pred, y.pred)
		}
		//
		return logic.False
	case Negative:
		// -n < -m iff m < n, whilst -n < 0 and -n < m+1 are true
		if y, ok := b.(Negative); ok {
			return LessThan(y.magnitude, x.magnitude)
		}
		//
		return logic.True
	default:
		panic(unknown(a))
	}
}

// Add returns the sum of two numerals.  Mixed-sign sums peel one successor
// from each side at a time until either side reaches zero.
func Add(a Numeral, b Numeral) Numeral {
	switch x := a.(type) {
	case Zero:
		// 0 + m = m
		return b
	case Successor:
		switch b.(type) {
		case Zero, Successor:
			// (n + 1) + m = (n + m) + 1
			return Successor{Add(x.pred, b)}
		default:
			// (n + 1) + -m = -m + (n + 1)
			return Add(b, a)
		}
	case Negative:
		return addNegative(x, b)
	default:
		panic(unknown(a))
	}
}

func addNegative(a Negative, b Numeral) Numeral {
	switch y := b.(type) {
	case Zero:
		// -n + 0 = -n
		return a
	case Negative:
		// -m + -n = -(m + n)
		return Negative{Add(a.magnitude, y.magnitude)}
	case Successor:
		m, ok := a.magnitude.(Successor)
		if !ok {
			panic(&MalformedError{"negative", a.magnitude})
		}
		//
		n := m.pred
		//
		if _, ok := n.(Zero); ok {
			// -1 + (m + 1) = m
			return y.pred
		}
		// -(n + 1) + (m + 1) = -n + m
		return Add(Negative{n}, y.pred)
	default:
		panic(unknown(b))
	}
}

// Negate returns the additive inverse of a numeral.
func Negate(n Numeral) Numeral {
	switch x := n.(type) {
	case Zero:
		return x
	case Successor:
		return Negative{x}
	case Negative:
		return x.magnitude
	default:
		panic(unknown(n))
	}
}

// AbsDiff returns the absolute difference |a - b| of two numerals.  This is
// symmetric in its arguments.
func AbsDiff(a Numeral, b Numeral) Numeral {
	switch x := a.(type) {
	case Zero:
		// |0 - m| = |m|
		return absOf(b)
	case Successor:
		switch y := b.(type) {
		case Zero:
			return x
		case Successor:
			// |(n + 1) - (m + 1)| = |n - m|
			return AbsDiff(x.pred, y.pred)
		case Negative:
			// |n - -m| = n + m
			return Add(x, y.magnitude)
		default:
			panic(unknown(b))
		}
	case Negative:
		if y, ok := b.(Negative); ok {
			// |-n - -m| = |m - n|
			return AbsDiff(x.magnitude, y.magnitude)
		}
		// |-n - m| = n + m
		return Add(x.magnitude, b)
	default:
		panic(unknown(a))
	}
}

func absOf(n Numeral) Numeral {
	if x, ok := n.(Negative); ok {
		return x.magnitude
	}
	//
	return n
}

func unknown(n Numeral) *MalformedError {
	return &MalformedError{"numeral", n}
}
