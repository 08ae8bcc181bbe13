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
	"fmt"
	"strconv"
)

// Numeral is a signed integer in unary (Peano) form.  Every numeral is one of
// Zero, Successor (of a non-negative numeral) or Negative (of a strictly
// positive numeral).  Every integer has exactly one such encoding, and
// numerals are never modified once constructed.
type Numeral interface {
	fmt.Stringer
	// Marks the closed set of variants.
	numeral()
}

// Zero is the numeral 0.
type Zero struct{}

// Successor is the numeral n+1, for some n >= 0.
type Successor struct {
	pred Numeral
}

// Negative is the numeral -n, for some n > 0.
type Negative struct {
	magnitude Numeral
}

// One is the numeral 1.
var One Numeral = Successor{Zero{}}

// MinusOne is the numeral -1.
var MinusOne Numeral = Negative{One}

// Pred returns the numeral n for which this is n+1.
func (n Successor) Pred() Numeral {
	return n.pred
}

// Magnitude returns the (strictly positive) numeral n for which this is -n.
func (n Negative) Magnitude() Numeral {
	return n.magnitude
}

func (Zero) numeral()      {}
func (Successor) numeral() {}
func (Negative) numeral()  {}

func (n Zero) String() string      { return "0" }
func (n Successor) String() string { return render(n) }
func (n Negative) String() string  { return render(n) }

func render(n Numeral) string {
	if Check(n) != nil {
		return "<malformed>"
	}
	//
	return strconv.Itoa(ToInt(n))
}

// Succ constructs the successor of a non-negative numeral.  A MalformedError is
// returned if the argument is negative.
func Succ(n Numeral) (Numeral, error) {
	switch n.(type) {
	case Zero, Successor:
		return Successor{n}, nil
	default:
		return nil, &MalformedError{"successor", n}
	}
}

// Neg constructs the negation of a strictly positive numeral.  A MalformedError
// is returned if the argument is zero or negative, since neither -0 nor --n are
// canonical.
func Neg(n Numeral) (Numeral, error) {
	switch n.(type) {
	case Successor:
		return Negative{n}, nil
	default:
		return nil, &MalformedError{"negative", n}
	}
}

// MustSucc is as Succ, except that it panics on a malformed numeral.
func MustSucc(n Numeral) Numeral {
	r, err := Succ(n)
	if err != nil {
		panic(err.Error())
	}
	//
	return r
}

// MustNeg is as Neg, except that it panics on a malformed numeral.
func MustNeg(n Numeral) Numeral {
	r, err := Neg(n)
	if err != nil {
		panic(err.Error())
	}
	//
	return r
}

// Check that a numeral is in canonical form.  Numerals built using the
// constructors of this package always are, but zero-valued variants (e.g.
// Successor{}) are not.
func Check(n Numeral) error {
	for {
		switch x := n.(type) {
		case Zero:
			return nil
		case Successor:
			if _, ok := x.pred.(Negative); ok || x.pred == nil {
				return &MalformedError{"successor", x.pred}
			}
			//
			n = x.pred
		case Negative:
			if _, ok := x.magnitude.(Successor); !ok {
				return &MalformedError{"negative", x.magnitude}
			}
			//
			n = x.magnitude
		default:
			return &MalformedError{"numeral", n}
		}
	}
}

// FromInt constructs the canonical numeral for a given integer.
func FromInt(i int) Numeral {
	var n Numeral = Zero{}
	//
	for k := 0; k < abs(i); k++ {
		n = Successor{n}
	}
	//
	if i < 0 {
		return Negative{n}
	}
	//
	return n
}

// ToInt returns the integer value of a numeral.
func ToInt(n Numeral) int {
	switch x := n.(type) {
	case Zero:
		return 0
	case Successor:
		return 1 + ToInt(x.pred)
	case Negative:
		return -ToInt(x.magnitude)
	default:
		panic(unknown(n))
	}
}

// MalformedError reports an attempt to construct a numeral which is not in
// canonical form, such as the negation of zero.
type MalformedError struct {
	// Constructor being applied
	constructor string
	// Offending argument
	arg Numeral
}

// Constructor returns the name of the constructor which was misapplied.
func (e *MalformedError) Constructor() string {
	return e.constructor
}

// Error implements the error interface.
func (e *MalformedError) Error() string {
	switch e.arg.(type) {
	case nil:
		return fmt.Sprintf("malformed %s: missing argument", e.constructor)
	case Negative:
		return fmt.Sprintf("malformed %s: argument is negative", e.constructor)
	case Zero:
		return fmt.Sprintf("malformed %s: argument is zero", e.constructor)
	default:
		return fmt.Sprintf("malformed %s", e.constructor)
	}
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	//
	return i
}
