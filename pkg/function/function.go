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

	"github.com/consensys/go-peano/pkg/logic"
)

// Case is a single arm of a function, covering those inputs of a particular
// shape.  For example, a numeral function might have one case for zero and
// another for successors.
type Case[I any, O any] struct {
	// Shape describes the inputs covered by this case (for diagnostics).
	Shape string
	// Accepts determines whether this case covers a given input.  A nil guard
	// accepts everything.
	Accepts func(I) bool
	// Apply computes the result for an accepted input.
	Apply func(I) (O, error)
}

// Function is a named mapping from inputs to outputs, defined by an ordered
// set of cases.  Functions carry no mutable state: any parameters are fixed
// when the function is constructed and are reflected in its tag.  Applying a
// function to an input which no case covers is a domain error.
type Function[I any, O any] struct {
	tag   string
	cases []Case[I, O]
}

// Predicate is a function whose result is always a boolean.
type Predicate[I any] = Function[I, logic.Bool]

// New constructs a function from a tag and zero or more cases.  Cases are
// tried in the order given.
func New[I any, O any](tag string, cases ...Case[I, O]) Function[I, O] {
	return Function[I, O]{tag, cases}
}

// Total constructs a function with a single case covering every input.
func Total[I any, O any](tag string, fn func(I) O) Function[I, O] {
	return New(tag, Case[I, O]{
		Shape: "any",
		Apply: func(x I) (O, error) { return fn(x), nil },
	})
}

// Lift constructs a function with a single case covering every input, where
// evaluating that case may itself fail.
func Lift[I any, O any](tag string, fn func(I) (O, error)) Function[I, O] {
	return New(tag, Case[I, O]{Shape: "any", Apply: fn})
}

// Tag returns the name identifying this function.
func (f Function[I, O]) Tag() string {
	return f.tag
}

// Shapes returns the shape names of the cases making up this function, in
// order.
func (f Function[I, O]) Shapes() []string {
	shapes := make([]string, len(f.cases))
	//
	for i, c := range f.cases {
		shapes[i] = c.Shape
	}
	//
	return shapes
}

// Extend returns a new function with the same tag and the given cases added
// after the existing ones.  This function is not modified.
func (f Function[I, O]) Extend(cases ...Case[I, O]) Function[I, O] {
	ncases := make([]Case[I, O], 0, len(f.cases)+len(cases))
	ncases = append(ncases, f.cases...)
	ncases = append(ncases, cases...)
	//
	return Function[I, O]{f.tag, ncases}
}

// Apply this function to a given input, using the first case which accepts
// it.  If no case accepts the input, a DomainError is returned.
func (f Function[I, O]) Apply(input I) (O, error) {
	var empty O
	//
	for _, c := range f.cases {
		if c.Accepts == nil || c.Accepts(input) {
			return c.Apply(input)
		}
	}
	//
	return empty, &DomainError{f.tag, fmt.Sprint(input)}
}

// Holds applies a predicate and reports whether the result is true.
func Holds[I any](p Predicate[I], input I) (bool, error) {
	b, err := p.Apply(input)
	//
	return b.Holds(), err
}

func (f Function[I, O]) String() string {
	return f.tag
}

// DomainError reports a function being applied to an input which none of its
// cases covers.
type DomainError struct {
	// Tag of the function being applied
	tag string
	// Rendering of the offending input
	input string
}

// NewDomainError constructs a domain error for a given function tag and input.
func NewDomainError(tag string, input any) *DomainError {
	return &DomainError{tag, fmt.Sprint(input)}
}

// Tag returns the tag of the function which was applied.
func (e *DomainError) Tag() string {
	return e.tag
}

// Input returns a rendering of the input which was not covered.
func (e *DomainError) Input() string {
	return e.input
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: no case for input %s", e.tag, e.input)
}
