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
package logic

// Bool is the two-valued truth domain used throughout the algebra.  Values
// are immutable and carry no payload beyond their truth.
type Bool bool

const (
	// True is logical truth.
	True Bool = true
	// False is logical falsehood.
	False Bool = false
)

// Not returns the logical negation of a boolean.
func Not(b Bool) Bool {
	switch b {
	case True:
		return False
	default:
		return True
	}
}

// And returns the logical conjunction of two booleans.
func And(a Bool, b Bool) Bool {
	switch a {
	case True:
		// True and b is b
		return b
	default:
		return False
	}
}

// Or returns the logical disjunction of two booleans.
func Or(a Bool, b Bool) Bool {
	switch a {
	case True:
		return True
	default:
		// False or b is b
		return b
	}
}

// Holds converts this boolean into a native Go bool.  This is intended for use
// only at the boundary of the core (e.g. when rendering, or in tests).
func (b Bool) Holds() bool {
	return bool(b)
}

func (b Bool) String() string {
	if b {
		return "True"
	}
	//
	return "False"
}
