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
	"iter"
	"strings"

	"github.com/consensys/go-peano/pkg/logic"
)

// List is an immutable, persistent, singly-linked list.  The zero value is the
// empty list (Nil).  Lists are never modified in place: every operation
// returns a new list, sharing structure with its inputs where possible.
type List[T any] struct {
	cell *cell[T]
}

// cell is a single Cons node.  The length of the list it heads is cached, such
// that Len() is constant time.
type cell[T any] struct {
	head   T
	tail   List[T]
	length uint
}

// Nil returns the empty list.
func Nil[T any]() List[T] {
	return List[T]{nil}
}

// Cons constructs a list with the given head and tail.
func Cons[T any](head T, tail List[T]) List[T] {
	return List[T]{&cell[T]{head, tail, tail.Len() + 1}}
}

// Of constructs a list from zero or more items, preserving their order.
func Of[T any](items ...T) List[T] {
	return FromSlice(items)
}

// FromSlice constructs a list holding the items of a slice, preserving their
// order.  The slice is not retained.
func FromSlice[T any](items []T) List[T] {
	var l List[T]
	//
	for i := len(items) - 1; i >= 0; i-- {
		l = Cons(items[i], l)
	}
	//
	return l
}

// IsNil checks whether this is the empty list.
func (l List[T]) IsNil() bool {
	return l.cell == nil
}

// Len returns the number of items in this list.
func (l List[T]) Len() uint {
	if l.cell == nil {
		return 0
	}
	//
	return l.cell.length
}

// Uncons splits a non-empty list into its head and tail.  The final result
// indicates whether the list was a Cons (true) or Nil (false).
func (l List[T]) Uncons() (T, List[T], bool) {
	var empty T
	//
	if l.cell == nil {
		return empty, l, false
	}
	//
	return l.cell.head, l.cell.tail, true
}

// Tail returns everything after the head of this list.  The tail of the empty
// list is the empty list.
func (l List[T]) Tail() List[T] {
	if l.cell == nil {
		return l
	}
	//
	return l.cell.tail
}

// All returns an iterator over the items of this list, from head to tail.
func (l List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := l.cell; c != nil; c = c.tail.cell {
			if !yield(c.head) {
				return
			}
		}
	}
}

// ToSlice allocates a new slice holding the items of this list in order.
func (l List[T]) ToSlice() []T {
	items := make([]T, 0, l.Len())
	//
	for item := range l.All() {
		items = append(items, item)
	}
	//
	return items
}

// Elements returns the items of this list as untyped values.  This provides a
// uniform view of lists with different element types, as needed for
// rendering.
func (l List[T]) Elements() []any {
	items := make([]any, 0, l.Len())
	//
	for item := range l.All() {
		items = append(items, item)
	}
	//
	return items
}

func (l List[T]) String() string {
	var builder strings.Builder
	//
	builder.WriteString("[")
	//
	for i, item := range l.Elements() {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(stringOf(item))
	}
	//
	builder.WriteString("]")
	//
	return builder.String()
}

// Equal determines whether two lists have the same length and are pointwise
// equal under a given element equality.
func Equal[T any](a List[T], b List[T], eq func(T, T) logic.Bool) logic.Bool {
	for {
		x, xs, aok := a.Uncons()
		y, ys, bok := b.Uncons()
		//
		switch {
		case !aok && !bok:
			return logic.True
		case aok != bok:
			return logic.False
		case !eq(x, y).Holds():
			return logic.False
		}
		//
		a, b = xs, ys
	}
}
