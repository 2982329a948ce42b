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

package u64

import (
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/ajroetker/go-bitrev/bitrev"
	"github.com/ajroetker/go-bitrev/bitrev/bitrevtest"
)

func TestReverseExamples(t *testing.T) {
	tests := []struct {
		name string
		x    uint64
		r    bitrev.Range
		want uint64
	}{
		{"4..8", 0xAAAAAAAAAAAAAAAA, bitrev.Span(4, 8), 0xAAAAAAAAAAAAAA5A},
		{"4..12", 0xAAAAAAAAAAAAAAAA, bitrev.Span(4, 12), 0xAAAAAAAAAAAAA55A},
		{"12..64", 0xAAAAAAAAAAAAAAAA, bitrev.Span(12, 64), 0x5555555555555AAA},
		{"8..16", 0xF012341234FFA000, bitrev.Span(8, 16), 0xF012341234FF0500},
		{"32..=33", 0x0000000100000000, bitrev.Closed(32, 33), 0x0000000200000000},
		{"62..", 0x4000000000000000, bitrev.From(62), 0x8000000000000000},
		{"..8", 0x0000000000000001, bitrev.To(8), 0x0000000000000080},
		{"full", 0x0123456789ABCDEF, bitrev.Full(), 0xF7B3D591E6A2C480},
		{"clamped", 0xAAAAAAAAAAAAAAAA, bitrev.Closed(12, 1<<20), 0x5555555555555AAA},
		{"degenerate", 0xDEADBEEFDEADBEEF, bitrev.Closed(40, 8), 0xDEADBEEFDEADBEEF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reverse(tt.x, tt.r); got != tt.want {
				t.Errorf("Reverse(%#016x, %v) = %#016x, want %#016x", tt.x, tt.r, got, tt.want)
			}
		})
	}
}

func TestReverseNoOp(t *testing.T) {
	ranges := []bitrev.Range{
		bitrev.Span(40, 40),
		bitrev.Span(40, 41),
		bitrev.Closed(40, 40),
		bitrev.Closed(50, 3),
		bitrev.To(0),
		bitrev.To(1),
		bitrev.ToInclusive(0),
		bitrev.From(63),
		bitrev.From(99),
		bitrev.Between(bitrev.Excluded(62), bitrev.Open()),
		bitrev.Between(bitrev.Excluded(63), bitrev.Open()),
	}
	for _, r := range ranges {
		t.Run(r.String(), func(t *testing.T) {
			for _, x := range []uint64{0, AllOnes, 0xDEADBEEFDEADBEEF, 0x0123456789ABCDEF} {
				require.Equal(t, x, Reverse(x, r))
				require.Equal(t, x, Reference(x, r))
			}
		})
	}
}

func TestReverseOnlyTouchesRange(t *testing.T) {
	x := uint64(0xF012341234FFA000)
	y := Reverse(x, bitrev.Span(8, 16))
	require.Equal(t, x&^0xFF00, y&^0xFF00)
	require.Equal(t, uint64(bits.Reverse8(uint8(x>>8))), (y>>8)&0xFF)
}

func TestReverseMatchesReference(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.Uint64().Draw(t, "x")
		a, b := bitrevtest.Interval(t, Width)
		if got, want := reverseClosedInterval(x, a, b), Reference(x, bitrev.Closed(a, b)); got != want {
			t.Fatalf("reverseClosedInterval(%#x, %d, %d) = %#x, want %#x", x, a, b, got, want)
		}
	})
}

func TestReverseMatchesReferenceExhaustive(t *testing.T) {
	words := []uint64{0, AllOnes, 0xAAAAAAAAAAAAAAAA, 0xF012341234FFA000, 0xA0B0C0D0A0B0C0D0, 1, 1 << 63}
	for a := uint(0); a < Width; a++ {
		for b := a + 1; b < Width; b++ {
			for _, x := range words {
				got := reverseClosedInterval(x, a, b)
				want := Reference(x, bitrev.Closed(a, b))
				if got != want {
					t.Fatalf("reverseClosedInterval(%#016x, %d, %d) = %#016x, want %#016x", x, a, b, got, want)
				}
			}
		}
	}
}

func TestReverseAnyRangeMatchesReference(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.Uint64().Draw(t, "x")
		r := bitrevtest.Range().Draw(t, "r")
		if got, want := Reverse(x, r), Reference(x, r); got != want {
			t.Fatalf("Reverse(%#x, %v) = %#x, want %#x", x, r, got, want)
		}
	})
}

func TestReverseKeepsOutsideBits(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.Uint64().Draw(t, "x")
		a, b := bitrevtest.Interval(t, Width)
		changed := x ^ reverseClosedInterval(x, a, b)
		// Shifts by Width yield 0 in Go, which is what the edges need.
		outside := AllOnes<<(b+1) | AllOnes>>(Width-a)
		if changed&outside != 0 {
			t.Fatalf("reverseClosedInterval(%#x, %d, %d) changed bits %#x outside the interval", x, a, b, changed&outside)
		}
	})
}

func TestReverseIsInvolution(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.Uint64().Draw(t, "x")
		r := bitrevtest.Range().Draw(t, "r")
		if got := Reverse(Reverse(x, r), r); got != x {
			t.Fatalf("Reverse twice over %v: %#x -> %#x", r, x, got)
		}
	})
}

func TestReverseFullWord(t *testing.T) {
	rng := rand.New(rand.NewSource(124))
	for range 10_000 {
		x := rng.Uint64()
		want := bits.Reverse64(x)
		require.Equal(t, want, Reverse(x, bitrev.Full()))
		require.Equal(t, want, Reverse(x, bitrev.Closed(0, Width-1)))
	}
}

func TestReverseDoesNotAllocate(t *testing.T) {
	r := bitrev.Span(8, 48)
	x := uint64(0xA0B0C0D0A0B0C0D0)
	allocs := testing.AllocsPerRun(100, func() {
		x = Reverse(x, r)
	})
	require.Zero(t, allocs)
}

func TestReverseSlice(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		src := rapid.SliceOf(rapid.Uint64()).Draw(t, "src")
		r := bitrevtest.Range().Draw(t, "r")
		dst := make([]uint64, len(src)+1)
		ReverseSlice(dst, src, r)
		for i, x := range src {
			if want := Reverse(x, r); dst[i] != want {
				t.Fatalf("dst[%d] = %#x, want %#x", i, dst[i], want)
			}
		}
		if dst[len(src)] != 0 {
			t.Fatalf("ReverseSlice wrote past len(src)")
		}
	})
}

func TestReverseSliceInPlace(t *testing.T) {
	words := []uint64{0xF0FFA000, 0xAAAAAAAA, 0, AllOnes}
	want := make([]uint64, len(words))
	for i, x := range words {
		want[i] = Reverse(x, bitrev.Span(8, 16))
	}
	ReverseSlice(words, words, bitrev.Span(8, 16))
	require.Equal(t, want, words)

	ReverseSlice(words, words, bitrev.Span(9, 9))
	require.Equal(t, want, words)
}

func TestReverseSliceShortDst(t *testing.T) {
	require.Panics(t, func() {
		ReverseSlice(make([]uint64, 1), make([]uint64, 2), bitrev.Full())
	})
}
