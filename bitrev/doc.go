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

// Package bitrev holds the pieces shared by the fixed-width bit range
// reversal packages.
//
// The reversal itself lives in one package per word width:
//
//   - bitrev/u32: 32-bit words (uint32)
//   - bitrev/u64: 64-bit words (uint64)
//
// Both take a word and a Range and return the word with the bits inside the
// range reversed end-for-end. Bit 0 is the least significant bit.
//
// # Ranges
//
// A Range carries two optional endpoints, each inclusive or exclusive. The
// constructors follow the usual half-open notation:
//
//	bitrev.Span(4, 12)        // 4..12   bits 4 through 11
//	bitrev.Closed(4, 12)      // 4..=12  bits 4 through 12
//	bitrev.From(8)            // 8..     bit 8 up to the top bit
//	bitrev.To(16)             // ..16    bit 0 through 15
//	bitrev.ToInclusive(16)    // ..=16   bit 0 through 16
//	bitrev.Full()             // ..      every bit
//
// Ranges never fail: endpoints past the top of the word are clamped by the
// width packages, and empty or single-bit ranges leave the word unchanged.
// ParseRange reads the same notation from text.
//
// # Example
//
//	import (
//		"github.com/ajroetker/go-bitrev/bitrev"
//		"github.com/ajroetker/go-bitrev/bitrev/u32"
//	)
//
//	y := u32.Reverse(0xF0FFA000, bitrev.Span(8, 16)) // 0xF0FF0500
//
// # Hardware
//
// The fast path relies on the whole-word bit reverse from math/bits.
// CurrentLevel reports how that lowers on the running machine.
package bitrev
