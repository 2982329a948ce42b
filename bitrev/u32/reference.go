// Copyright 2025 go-bitrev Authors
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

package u32

import (
	"slices"

	"github.com/ajroetker/go-bitrev/bitrev"
)

// Reference returns the same result as Reverse by spelling the word out as
// one bool per bit and reversing a slice of it. It is slow and is kept as
// the oracle the tests compare Reverse against; use Reverse.
func Reference(x uint32, r bitrev.Range) uint32 {
	start, end := StartEnd(r)
	if end <= start {
		return x
	}
	a := toArray(x)
	slices.Reverse(a[start : end+1])
	return fromArray(&a)
}

// toArray expands x so that a[i] holds bit i.
func toArray(x uint32) [Width]bool {
	var a [Width]bool
	for i := range a {
		a[i] = x&1 == 1
		x >>= 1
	}
	return a
}

// fromArray packs a back into a word, bit i from a[i].
func fromArray(a *[Width]bool) uint32 {
	var x uint32
	for i := len(a) - 1; i >= 0; i-- {
		x <<= 1
		if a[i] {
			x |= 1
		}
	}
	return x
}
