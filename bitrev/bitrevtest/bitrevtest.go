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


// Package bitrevtest provides property-test generators for the bit reversal
// packages, built on pgregory.net/rapid.
//
// Properties run 100 cases by default; pass -rapid.checks=25000 to go test
// for a longer soak.
package bitrevtest

import (
	"math"

	"pgregory.net/rapid"

	"github.com/ajroetker/go-bitrev/bitrev"
)

var kinds = []bitrev.BoundKind{bitrev.Unbounded, bitrev.Inclusive, bitrev.Exclusive}

// Index draws a bit index. Indices around both word widths dominate; the
// rest are arbitrary values and values at the top of uint.
func Index() *rapid.Generator[uint] {
	return rapid.OneOf(
		rapid.UintRange(0, 2*64+1),
		rapid.UintRange(math.MaxUint-3, math.MaxUint),
		rapid.Uint(),
	)
}

// Bound draws an endpoint of any kind.
func Bound() *rapid.Generator[bitrev.Bound] {
	return rapid.Custom(func(t *rapid.T) bitrev.Bound {
		switch rapid.SampledFrom(kinds).Draw(t, "kind") {
		case bitrev.Inclusive:
			return bitrev.Included(Index().Draw(t, "value"))
		case bitrev.Exclusive:
			return bitrev.Excluded(Index().Draw(t, "value"))
		default:
			return bitrev.Open()
		}
	})
}

// Range draws a range mixing every start and end kind, with endpoints near
// the word widths, far beyond them and at the top of uint.
func Range() *rapid.Generator[bitrev.Range] {
	return rapid.Custom(func(t *rapid.T) bitrev.Range {
		return bitrev.Between(Bound().Draw(t, "start"), Bound().Draw(t, "end"))
	})
}

// Interval draws a non-degenerate canonical interval of a width-bit word:
// start < end < width.
func Interval(t *rapid.T, width uint) (start, end uint) {
	start = rapid.UintRange(0, width-2).Draw(t, "start")
	end = rapid.UintRange(start+1, width-1).Draw(t, "end")
	return start, end
}
