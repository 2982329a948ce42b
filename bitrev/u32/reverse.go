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
	"math/bits"

	"github.com/ajroetker/go-bitrev/bitrev"
)

const (
	// Width is the number of bits in a word.
	Width = 32

	// AllOnes is the word with every bit set.
	AllOnes = ^uint32(0)
)

// Reverse returns x with the bits selected by r reversed end-for-end and
// every other bit unchanged.
//
// With the range in uppercase, most significant bit first:
//
//	...abcABCDEFdef...  ->  ...abcFEDCBAdef...
//
// Empty and single-bit ranges return x. Reverse never allocates and, for a
// fixed range, is its own inverse.
func Reverse(x uint32, r bitrev.Range) uint32 {
	start, end := StartEnd(r)
	if end <= start {
		return x
	}
	return reverseClosedInterval(x, start, end)
}

// reverseClosedInterval reverses bits [start, end] of x.
// It requires start < end < Width.
func reverseClosedInterval(x uint32, start, end uint) uint32 {
	length := end + 1 - start
	// top is the distance from end to the top of the word.
	top := Width - (end + 1)

	// length ones pushed to the top, then slid down so the lowest sits at start.
	onesMask := (AllOnes << (Width - length)) >> top

	keep := x &^ onesMask
	// Right-aligned, the range occupies [0, length-1]; reversed, it occupies
	// [Width-length, Width-1] with zeros below.
	aligned := (x & onesMask) >> start
	return keep | bits.Reverse32(aligned)>>top
}

// ReverseSlice stores Reverse(src[i], r) into dst[i] for every element of
// src. The range is resolved once for the whole slice. dst may alias src and
// must be at least as long as src.
func ReverseSlice(dst, src []uint32, r bitrev.Range) {
	dst = dst[:len(src)]
	start, end := StartEnd(r)
	if end <= start {
		copy(dst, src)
		return
	}
	for i, x := range src {
		dst[i] = reverseClosedInterval(x, start, end)
	}
}
