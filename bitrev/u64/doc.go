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

// Package u64 reverses a range of bits inside a 64-bit word.
//
// It has the same surface as bitrev/u32: Reverse, ReverseSlice, StartEnd,
// Reference, Width and AllOnes, on uint64 words:
//
//	u64.Reverse(0xF012341234FFA000, bitrev.Span(8, 16)) // 0xF012341234FF0500
//
// The *.gen.go files are generated from bitrev/u32 by cmd/revgen; run
// go generate after changing that package.
package u64

//go:generate go run ../../cmd/revgen -input ../u32 -output . -from 32 -to 64
