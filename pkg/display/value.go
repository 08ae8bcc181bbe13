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
package display

import (
	"fmt"
	"strings"
)

// Sequence is implemented by list-like values which should be rendered as
// "[a, b, c]".
type Sequence interface {
	Elements() []any
}

// Tuple is implemented by tuple-like values which should be rendered as
// "(a, b)".
type Tuple interface {
	Fields() []any
}

// String renders any value as text.  Sequences and tuples are rendered by
// recursively rendering their components, and anything else is rendered as a
// literal.
func String(value any) string {
	switch v := value.(type) {
	case nil:
		return "()"
	case Sequence:
		return join("[", v.Elements(), "]")
	case Tuple:
		return join("(", v.Fields(), ")")
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func join(open string, items []any, close string) string {
	var builder strings.Builder
	//
	builder.WriteString(open)
	//
	for i, item := range items {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(String(item))
	}
	//
	builder.WriteString(close)
	//
	return builder.String()
}
