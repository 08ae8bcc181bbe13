package util

import (
	"fmt"
	"strings"
)

// Pair provides a simple encapsulation of two items paired together.
type Pair[S any, T any] struct {
	Left  S
	Right T
}

// NewPair returns a new instance of Pair by value.
func NewPair[S any, T any](left S, right T) Pair[S, T] {
	return Pair[S, T]{left, right}
}

// Fields returns the components of this pair, in order, as untyped values.
func (p Pair[S, T]) Fields() []any {
	return []any{p.Left, p.Right}
}

func (p Pair[S, T]) String() string {
	var builder strings.Builder
	//
	builder.WriteString("(")
	//
	for i, f := range p.Fields() {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(fmt.Sprint(f))
	}
	//
	builder.WriteString(")")
	//
	return builder.String()
}
