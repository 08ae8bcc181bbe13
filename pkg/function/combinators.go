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
package function

import (
	"fmt"

	"github.com/consensys/go-peano/pkg/list"
	"github.com/consensys/go-peano/pkg/logic"
)

// Equality determines whether two values should be considered the same.
type Equality[T any] func(T, T) logic.Bool

// Map applies a function to every item of a list, producing a list of the
// results in the same order.  Evaluation stops at the first item (from the
// head) for which the function fails.
func Map[I any, O any](f Function[I, O], items list.List[I]) (list.List[O], error) {
	results := make([]O, 0, items.Len())
	//
	for item := range items.All() {
		r, err := f.Apply(item)
		if err != nil {
			return list.Nil[O](), err
		}
		//
		results = append(results, r)
	}
	//
	return list.FromSlice(results), nil
}

// Filter retains those items of a list for which a predicate holds, preserving
// their relative order.
func Filter[T any](p Predicate[T], items list.List[T]) (list.List[T], error) {
	flags, err := Map(p, items)
	if err != nil {
		return list.Nil[T](), err
	}
	//
	return list.FoldRight(zip(items, flags), list.Nil[T](), prependIf[T]), nil
}

// FlatMap applies a list-producing function to every item of a list, and
// concatenates the results in order.
func FlatMap[I any, O any](f Function[I, list.List[O]], items list.List[I]) (list.List[O], error) {
	lists, err := Map(f, items)
	if err != nil {
		return list.Nil[O](), err
	}
	//
	return list.ConcatAll(lists), nil
}

// AnyTrue determines whether any item of a list of booleans is true.  The
// empty list yields false.
func AnyTrue(items list.List[logic.Bool]) logic.Bool {
	return list.FoldRight(items, logic.False, logic.Or)
}

// AllTrue determines whether every item of a list of booleans is true.  The
// empty list yields true.
func AllTrue(items list.List[logic.Bool]) logic.Bool {
	return list.FoldRight(items, logic.True, logic.And)
}

// EqualTo partially applies an equality, producing a predicate which holds for
// items equal to the given value.
func EqualTo[T any](eq Equality[T], value T) Predicate[T] {
	return Total(fmt.Sprintf("equal[%v]", value), func(item T) logic.Bool {
		return eq(value, item)
	})
}

// Contains determines whether a list contains an item equal to a given value.
func Contains[T any](items list.List[T], value T, eq Equality[T]) logic.Bool {
	// Cannot fail, since EqualTo is total.
	flags, _ := Map(EqualTo(eq, value), items)
	//
	return AnyTrue(flags)
}

// Prepend constructs a function which places its input at the head of a given
// list.
func Prepend[T any](tail list.List[T]) Function[T, list.List[T]] {
	return Total(fmt.Sprintf("prepend[%s]", tail), func(head T) list.List[T] {
		return list.Cons(head, tail)
	})
}

// Singleton is the function which wraps its input in a list of length one.
func Singleton[T any]() Function[T, list.List[T]] {
	return Total("singleton", func(item T) list.List[T] {
		return list.Of(item)
	})
}

type flagged[T any] struct {
	item T
	flag logic.Bool
}

func zip[T any](items list.List[T], flags list.List[logic.Bool]) list.List[flagged[T]] {
	var pairs = make([]flagged[T], 0, items.Len())
	//
	for item := range items.All() {
		flag, rest, _ := flags.Uncons()
		pairs = append(pairs, flagged[T]{item, flag})
		flags = rest
	}
	//
	return list.FromSlice(pairs)
}

func prependIf[T any](f flagged[T], acc list.List[T]) list.List[T] {
	switch f.flag {
	case logic.True:
		return list.Cons(f.item, acc)
	default:
		return acc
	}
}
