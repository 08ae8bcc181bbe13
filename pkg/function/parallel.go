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
	"context"

	"github.com/consensys/go-peano/pkg/list"
	"golang.org/x/sync/errgroup"
)

// ParMap is a variant of Map which evaluates the function on each item
// concurrently, using at most limit goroutines (or unbounded when limit is not
// positive).  Items have no data dependency on each other, hence the result is
// identical to that of Map.  In the event of failure, the error reported is
// that of the first failing item in list order.  Items are not abandoned when
// another item fails, only when the context is cancelled.
func ParMap[I any, O any](ctx context.Context, f Function[I, O], items list.List[I],
	limit int) (list.List[O], error) {
	var (
		inputs  = items.ToSlice()
		results = make([]O, len(inputs))
		errs    = make([]error, len(inputs))
		g       errgroup.Group
	)
	//
	if limit > 0 {
		g.SetLimit(limit)
	}
	//
	for i, item := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
			} else {
				results[i], errs[i] = f.Apply(item)
			}
			//
			return nil
		})
	}
	// Failures are recorded in errs, not reported through the group
	_ = g.Wait()
	//
	for _, err := range errs {
		if err != nil {
			return list.Nil[O](), err
		}
	}
	//
	return list.FromSlice(results), nil
}
