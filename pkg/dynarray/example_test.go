// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dynarray_test

import (
	"errors"
	"fmt"

	"github.com/walteh/corex/pkg/cxerr"
	"github.com/walteh/corex/pkg/dynarray"
)

func ExampleArray() {
	a := dynarray.New[int]()
	a.Add(10)
	a.Add(20)
	if err := a.Remove(10); err != nil {
		fmt.Println(err)
	}

	first, _ := a.At(0)
	fmt.Println(a.Len(), first)

	_, err := a.At(5)
	fmt.Println(errors.Is(err, cxerr.ErrOutOfRange))

	// Output:
	// 1 20
	// true
}

func ExampleArray_Concat() {
	a := dynarray.Of("a", "b")
	b := dynarray.Of("c")
	fmt.Println(a.Concat(b))

	// Output:
	// [a b c]
}
