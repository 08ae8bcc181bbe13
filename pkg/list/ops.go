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

import "fmt"

// FoldLeft combines the items of a list from head to tail, starting from an
// initial accumulator.
func FoldLeft[T any, A any](l List[T], init A, fn func(A, T) A) A {
	acc := init
	//
	for item := range l.All() {
		acc = fn(acc, item)
	}
	//
	return acc
}

// FoldRight combines the items of a list from tail to head, starting from an
// initial accumulator.  Observe that, since lists are built by prepending,
// this is the natural scheme for producing a list in the same order as its
// input.
func FoldRight[T any, A any](l List[T], init A, fn func(T, A) A) A {
	var (
		items = l.ToSlice()
		acc   = init
	)
	//
	for i := len(items) - 1; i >= 0; i-- {
		acc = fn(items[i], acc)
	}
	//
	return acc
}

// Concat appends one list onto the end of another.  The second list is shared
// by the result, hence the cost is proportional to the length of the first.
func Concat[T any](a List[T], b List[T]) List[T] {
	if b.IsNil() {
		return a
	}
	//
	return FoldRight(a, b, Cons[T])
}

// ConcatAll flattens a list of lists by one level, concatenating the inner
// lists in order.
func ConcatAll[T any](lists List[List[T]]) List[T] {
	return FoldRight(lists, Nil[T](), Concat[T])
}

// First returns the head of a list.  An EmptyListError is returned if the list
// is empty.
func First[T any](l List[T]) (T, error) {
	head, _, ok := l.Uncons()
	//
	if !ok {
		return head, &EmptyListError{"first"}
	}
	//
	return head, nil
}

// EmptyListError reports an operation which requires a non-empty list being
// applied to the empty list.
type EmptyListError struct {
	// Name of the operation attempted
	op string
}

// Op returns the name of the operation which failed.
func (e *EmptyListError) Op() string {
	return e.op
}

// Error implements the error interface.
func (e *EmptyListError) Error() string {
	return fmt.Sprintf("%s: list is empty", e.op)
}

func stringOf(item any) string {
	if s, ok := item.(fmt.Stringer); ok {
		return s.String()
	}
	//
	return fmt.Sprint(item)
}
