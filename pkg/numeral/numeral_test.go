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
	"errors"
	"testing"

	"github.com/consensys/go-peano/pkg/function"
	"github.com/consensys/go-peano/pkg/list"
	"github.com/consensys/go-peano/pkg/logic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Integers exercised by the exhaustive tests below.
const bound = 7

func Test_FromInt_01(t *testing.T) {
	for i := -bound; i <= bound; i++ {
		n := FromInt(i)
		//
		require.NoError(t, Check(n))
		assert.Equal(t, i, ToInt(n))
	}
}

func Test_FromInt_02(t *testing.T) {
	assert.Equal(t, Zero{}, FromInt(0))
	assert.Equal(t, One, FromInt(1))
	assert.Equal(t, MinusOne, FromInt(-1))
	assert.Equal(t, Negative{Successor{Successor{Zero{}}}}, FromInt(-2))
	assert.Equal(t, "-2", FromInt(-2).String())
	assert.Equal(t, "3", FromInt(3).String())
}

func Test_Constructors_01(t *testing.T) {
	n, err := Succ(Zero{})
	require.NoError(t, err)
	assert.Equal(t, One, n)
	//
	n, err = Neg(One)
	require.NoError(t, err)
	assert.Equal(t, MinusOne, n)
	//
	assert.Equal(t, FromInt(-3), MustNeg(MustSucc(MustSucc(One))))
}

func Test_Constructors_02(t *testing.T) {
	var merr *MalformedError
	// -0 is not canonical
	_, err := Neg(Zero{})
	require.True(t, errors.As(err, &merr))
	assert.Equal(t, "negative", merr.Constructor())
	assert.Equal(t, "malformed negative: argument is zero", err.Error())
	// --1 is not canonical
	_, err = Neg(MinusOne)
	require.True(t, errors.As(err, &merr))
	// -1 + 1 must be built by addition, not as a successor
	_, err = Succ(MinusOne)
	require.True(t, errors.As(err, &merr))
	assert.Equal(t, "successor", merr.Constructor())
	//
	assert.Panics(t, func() { MustNeg(Zero{}) })
	assert.Panics(t, func() { MustSucc(MinusOne) })
}

func Test_Check_01(t *testing.T) {
	assert.Error(t, Check(Successor{}))
	assert.Error(t, Check(Negative{}))
	assert.Error(t, Check(Negative{Zero{}}))
	assert.Error(t, Check(Negative{MinusOne}))
	assert.Error(t, Check(Successor{MinusOne}))
	assert.Error(t, Check(Successor{Successor{Negative{One}}}))
	assert.Error(t, Check(nil))
	assert.NoError(t, Check(FromInt(-4)))
}

func Test_Equal_01(t *testing.T) {
	for i := -bound; i <= bound; i++ {
		for j := -bound; j <= bound; j++ {
			assert.Equal(t, logic.Bool(i == j), Equal(FromInt(i), FromInt(j)), "%d == %d", i, j)
		}
	}
}

func Test_LessThan_01(t *testing.T) {
	// Non-negative domain
	assert.Equal(t, logic.True, LessThan(Zero{}, One))
	assert.Equal(t, logic.False, LessThan(One, Zero{}))
	assert.Equal(t, logic.False, LessThan(Zero{}, Zero{}))
	assert.Equal(t, logic.True, LessThan(FromInt(2), FromInt(5)))
}

func Test_LessThan_02(t *testing.T) {
	for i := -bound; i <= bound; i++ {
		for j := -bound; j <= bound; j++ {
			assert.Equal(t, logic.Bool(i < j), LessThan(FromInt(i), FromInt(j)), "%d < %d", i, j)
		}
	}
}

func Test_Add_01(t *testing.T) {
	// -1 + 1 = 0
	assert.Equal(t, Numeral(Zero{}), Add(Negative{Successor{Zero{}}}, Successor{Zero{}}))
	// 1 + -1 = 0
	assert.Equal(t, Numeral(Zero{}), Add(One, MinusOne))
	// -1 + -1 = -2
	assert.Equal(t, FromInt(-2), Add(MinusOne, MinusOne))
	// -1 + 1 + 1 = 1
	assert.Equal(t, One, Add(Add(MinusOne, One), One))
}

func Test_Add_02(t *testing.T) {
	for i := -bound; i <= bound; i++ {
		for j := -bound; j <= bound; j++ {
			sum := Add(FromInt(i), FromInt(j))
			//
			require.NoError(t, Check(sum), "%d + %d", i, j)
			assert.Equal(t, i+j, ToInt(sum), "%d + %d", i, j)
		}
	}
}

func Test_Add_Commutative_01(t *testing.T) {
	for i := -bound; i <= bound; i++ {
		for j := -bound; j <= bound; j++ {
			a, b := FromInt(i), FromInt(j)
			assert.True(t, Equal(Add(a, b), Add(b, a)).Holds(), "%d + %d", i, j)
		}
	}
}

func Test_Add_Associative_01(t *testing.T) {
	for i := -3; i <= 3; i++ {
		for j := -3; j <= 3; j++ {
			for k := -3; k <= 3; k++ {
				a, b, c := FromInt(i), FromInt(j), FromInt(k)
				assert.True(t, Equal(Add(Add(a, b), c), Add(a, Add(b, c))).Holds())
			}
		}
	}
}

func Test_Negate_01(t *testing.T) {
	for i := -bound; i <= bound; i++ {
		n := FromInt(i)
		//
		assert.Equal(t, -i, ToInt(Negate(n)))
		assert.Equal(t, Numeral(Zero{}), Add(n, Negate(n)))
	}
}

func Test_AbsDiff_01(t *testing.T) {
	assert.Equal(t, FromInt(3), AbsDiff(Zero{}, FromInt(3)))
	assert.Equal(t, FromInt(3), AbsDiff(FromInt(3), Zero{}))
	assert.Equal(t, Numeral(Zero{}), AbsDiff(FromInt(4), FromInt(4)))
	assert.Equal(t, FromInt(2), AbsDiff(FromInt(5), FromInt(3)))
}

func Test_AbsDiff_02(t *testing.T) {
	for i := -bound; i <= bound; i++ {
		for j := -bound; j <= bound; j++ {
			a, b := FromInt(i), FromInt(j)
			//
			assert.Equal(t, abs(i-j), ToInt(AbsDiff(a, b)), "|%d - %d|", i, j)
			assert.True(t, Equal(AbsDiff(a, b), AbsDiff(b, a)).Holds())
		}
	}
}

func Test_Arith_Malformed_01(t *testing.T) {
	arith := map[string]func(){
		"add negative":   func() { Add(Negative{}, One) },
		"add swapped":    func() { Add(One, Negative{}) },
		"add successor":  func() { Add(Successor{}, One) },
		"equal":          func() { Equal(Negative{}, Negative{}) },
		"less than":      func() { LessThan(Successor{}, One) },
		"abs diff":       func() { AbsDiff(One, Negative{}) },
		"to int":         func() { ToInt(Successor{}) },
		"negate missing": func() { Negate(nil) },
	}
	//
	for name, fn := range arith {
		var merr *MalformedError
		//
		err := recoverError(fn)
		require.Error(t, err, name)
		assert.True(t, errors.As(err, &merr), name)
		assert.Contains(t, err.Error(), "missing argument", name)
	}
	//
	assert.PanicsWithError(t, "malformed negative: missing argument", func() { Add(Negative{}, One) })
}

// Run a function, returning the error it panics with (if any).
func recoverError(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	//
	fn()
	//
	return nil
}

func Test_Increment_01(t *testing.T) {
	for i := -bound; i <= bound; i++ {
		n, err := Increment.Apply(FromInt(i))
		//
		require.NoError(t, err)
		require.NoError(t, Check(n))
		assert.Equal(t, i+1, ToInt(n))
	}
}

func Test_Increment_02(t *testing.T) {
	n, err := Increment.Apply(MinusOne)
	//
	require.NoError(t, err)
	assert.Equal(t, Numeral(Zero{}), n)
}

func Test_Decrement_01(t *testing.T) {
	for i := -bound; i <= bound; i++ {
		n, err := Decrement.Apply(FromInt(i))
		//
		require.NoError(t, err)
		require.NoError(t, Check(n))
		assert.Equal(t, i-1, ToInt(n))
	}
}

func Test_Decrement_02(t *testing.T) {
	for i := -bound; i <= bound; i++ {
		n := FromInt(i)
		m, _ := Increment.Apply(n)
		r, _ := Decrement.Apply(m)
		//
		assert.Equal(t, n, r)
	}
}

func Test_Functions_Malformed_01(t *testing.T) {
	var derr *function.DomainError
	// Zero-valued variants are not covered by any case
	_, err := Increment.Apply(Negative{})
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, "increment", derr.Tag())
	//
	_, err = Decrement.Apply(Successor{})
	require.True(t, errors.As(err, &derr))
}

func Test_IsZero_01(t *testing.T) {
	for i := -bound; i <= bound; i++ {
		r, err := IsZero.Apply(FromInt(i))
		//
		require.NoError(t, err)
		assert.Equal(t, logic.Bool(i == 0), r)
	}
}

func Test_Range_01(t *testing.T) {
	r, err := Range(Zero{})
	//
	require.NoError(t, err)
	assert.True(t, r.IsNil())
}

func Test_Range_02(t *testing.T) {
	r, err := Range(FromInt(4))
	//
	require.NoError(t, err)
	assert.Equal(t, uint(4), r.Len())
	assert.Equal(t, "[3, 2, 1, 0]", r.String())
	assert.True(t, list.Equal(r, list.Of(FromInt(3), FromInt(2), One, Numeral(Zero{})), Equal).Holds())
}

func Test_Range_03(t *testing.T) {
	var derr *function.DomainError
	//
	_, err := Range(FromInt(-2))
	//
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, "range", derr.Tag())
	assert.Equal(t, "-2", derr.Input())
}

func Test_String_Malformed_01(t *testing.T) {
	assert.Equal(t, "<malformed>", Negative{}.String())
	assert.Equal(t, "<malformed>", Successor{MinusOne}.String())
}
