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

// Package u32 reverses a range of bits inside a 32-bit word.
//
// Reverse is the operation to use. It normalizes the range with StartEnd,
// then reverses the selected bits with a fixed sequence of masks, shifts and
// one whole-word bits.Reverse32, without branches or allocation:
//
//	u32.Reverse(0xAAAAAAAA, bitrev.Span(4, 12))  // 0xAAAAA55A
//	u32.Reverse(0xAAAAAAAA, bitrev.Span(12, 32)) // 0x55555AAA
//
// ReverseSlice applies one range to every word of a slice.
//
// Reference computes the same result through a []bool and exists as a test
// oracle.
//
// This package is the source for bitrev/u64, which cmd/revgen generates
// from it. Edit the code here and regenerate.
package u32
