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

package bitrev

import "strings"

// Marker returns one character per hex digit of a width-bit word, most
// significant digit first, so it lines up under a value printed with
// "%0*X". Digits holding any bit of the inclusive interval [start, end]
// are marked 'x' and the rest '.'. A degenerate interval (end <= start)
// changes nothing and is all dots.
//
// For example Marker(32, 8, 15) is "....xx..".
func Marker(width, start, end uint) string {
	digits := width / 4
	var sb strings.Builder
	sb.Grow(int(digits))
	for d := digits; d > 0; d-- {
		lo := (d - 1) * 4
		hi := lo + 3
		if end > start && lo <= end && hi >= start {
			sb.WriteByte('x')
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}
