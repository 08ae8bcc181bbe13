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
package list

import (
	"errors"
	"testing"

	"github.com/consensys/go-peano/pkg/logic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eqInt(a, b int) logic.Bool {
	return logic.Bool(a == b)
}

func Test_List_01(t *testing.T) {
	var l List[int]
	//
	assert.True(t, l.IsNil())
	assert.Equal(t, uint(0), l.Len())
	assert.Equal(t, "[]", l.String())
}

func Test_List_02(t *testing.T) {
	l := Cons(1, Cons(2, Cons(3, Nil[int]())))
	//
	assert.Equal(t, uint(3), l.Len())
	assert.Equal(t, []int{1, 2, 3}, l.ToSlice())
	assert.Equal(t, "[1, 2, 3]", l.String())
	assert.True(t, Equal(l, Of(1, 2, 3), eqInt).Holds())
}

func Test_List_03(t *testing.T) {
	l := Of(1, 2, 3)
	head, tail, ok := l.Uncons()
	//
	require.True(t, ok)
	assert.Equal(t, 1, head)
	assert.Equal(t, []int{2, 3}, tail.ToSlice())
	// Original list is unchanged
	assert.Equal(t, []int{1, 2, 3}, l.ToSlice())
}

func Test_List_04(t *testing.T) {
	// Left fold visits from the head, so prepending reverses
	reversed := FoldLeft(Of(1, 2, 3), Nil[int](), func(acc List[int], item int) List[int] {
		return Cons(item, acc)
	})
	//
	assert.Equal(t, []int{3, 2, 1}, reversed.ToSlice())
	assert.Equal(t, 0, FoldLeft(Nil[int](), 0, func(acc int, item int) int { return acc + item }))
}

func Test_Equal_01(t *testing.T) {
	assert.False(t, Equal(Of(1, 2), Of(1, 2, 3), eqInt).Holds())
	assert.False(t, Equal(Of(1, 2, 3), Of(1, 2), eqInt).Holds())
	assert.False(t, Equal(Of(1, 4, 3), Of(1, 2, 3), eqInt).Holds())
	assert.True(t, Equal(Nil[int](), Nil[int](), eqInt).Holds())
}

func Test_Concat_01(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4, 5}, Concat(Of(1, 2, 3), Of(4, 5)).ToSlice())
	assert.Equal(t, []int{4, 5}, Concat(Nil[int](), Of(4, 5)).ToSlice())
	assert.Equal(t, []int{1, 2}, Concat(Of(1, 2), Nil[int]()).ToSlice())
}

func Test_Concat_02(t *testing.T) {
	suffix := Of(4, 5)
	l := Concat(Of(1, 2, 3), suffix)
	// Suffix is shared, not copied
	assert.Same(t, suffix.cell, l.Tail().Tail().Tail().cell)
	assert.Equal(t, uint(5), l.Len())
}

func Test_ConcatAll_01(t *testing.T) {
	lists := Of(Of(1), Nil[int](), Of(2, 3), Of(4))
	//
	assert.Equal(t, []int{1, 2, 3, 4}, ConcatAll(lists).ToSlice())
	assert.True(t, ConcatAll(Nil[List[int]]()).IsNil())
}

func Test_First_01(t *testing.T) {
	head, err := First(Of(7, 8))
	//
	require.NoError(t, err)
	assert.Equal(t, 7, head)
}

func Test_First_02(t *testing.T) {
	var empty *EmptyListError
	//
	_, err := First(Nil[int]())
	//
	require.Error(t, err)
	require.True(t, errors.As(err, &empty))
	assert.Equal(t, "first", empty.Op())
}

func Test_Fold_01(t *testing.T) {
	sub := func(acc int, x int) int { return acc - x }
	//
	assert.Equal(t, ((10-1)-2)-3, FoldLeft(Of(1, 2, 3), 10, sub))
	assert.Equal(t, 1-(2-(3-10)), FoldRight(Of(1, 2, 3), 10, func(x int, acc int) int { return x - acc }))
}

func Test_All_01(t *testing.T) {
	var seen []int
	// Early termination
	for x := range Of(1, 2, 3, 4).All() {
		if x == 3 {
			break
		}
		//
		seen = append(seen, x)
	}
	//
	assert.Equal(t, []int{1, 2}, seen)
}

func Test_String_01(t *testing.T) {
	nested := Of(Of(1, 2), Nil[int](), Of(3))
	//
	assert.Equal(t, "[[1, 2], [], [3]]", nested.String())
}
