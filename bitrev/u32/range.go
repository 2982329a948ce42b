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

import "github.com/ajroetker/go-bitrev/bitrev"

// StartEnd maps r to the inclusive interval [start, end] of bit indices.
// Both results lie in [0, Width-1] for every input; endpoints past the top
// of the word are clamped.
//
// An exclusive start steps up one bit and an exclusive end steps down one
// bit. An exclusive end of 0 has nowhere to go and yields 0, so "..0" gives
// the same degenerate interval as "..=0" and reversal is a no-op either way.
func StartEnd(r bitrev.Range) (start, end uint) {
	switch r.Start.Kind {
	case bitrev.Inclusive:
		start = clamp(r.Start.Value)
	case bitrev.Exclusive:
		start = increment(r.Start.Value)
	default:
		start = 0
	}
	switch r.End.Kind {
	case bitrev.Inclusive:
		end = clamp(r.End.Value)
	case bitrev.Exclusive:
		end = decrement(r.End.Value)
	default:
		end = Width - 1
	}
	return start, end
}

// clamp returns min(x, Width-1).
func clamp(x uint) uint {
	if x < Width {
		return x
	}
	return Width - 1
}

// increment returns min(x+1, Width-1) without overflowing at the top of uint.
func increment(x uint) uint {
	if x < Width-1 {
		return x + 1
	}
	return Width - 1
}

// decrement returns 0 for 0 and min(x-1, Width-1) otherwise.
func decrement(x uint) uint {
	switch {
	case x == 0:
		return 0
	case x >= Width:
		return Width - 1
	default:
		return x - 1
	}
}
