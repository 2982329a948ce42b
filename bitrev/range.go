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

import "strconv"

// BoundKind tells how a Bound limits one side of a Range.
type BoundKind uint8

const (
	// Unbounded means the range extends to the edge of the word.
	Unbounded BoundKind = iota

	// Inclusive means the bound value belongs to the range.
	Inclusive

	// Exclusive means the range stops just before the bound value.
	Exclusive
)

// String returns a human-readable name for the bound kind.
func (k BoundKind) String() string {
	switch k {
	case Unbounded:
		return "unbounded"
	case Inclusive:
		return "inclusive"
	case Exclusive:
		return "exclusive"
	default:
		return "unknown"
	}
}

// Bound is one endpoint of a Range. Value is a bit index and is ignored
// when Kind is Unbounded.
type Bound struct {
	Kind  BoundKind
	Value uint
}

// Included returns a bound that contains bit i.
func Included(i uint) Bound {
	return Bound{Kind: Inclusive, Value: i}
}

// Excluded returns a bound that stops short of bit i.
func Excluded(i uint) Bound {
	return Bound{Kind: Exclusive, Value: i}
}

// Open returns an unbounded endpoint.
func Open() Bound {
	return Bound{}
}

// Range describes a contiguous run of bit indices. The zero Range covers
// the whole word.
type Range struct {
	Start Bound
	End   Bound
}

// Span returns the half-open range [start, end).
func Span(start, end uint) Range {
	return Range{Start: Included(start), End: Excluded(end)}
}

// Closed returns the closed range [start, end].
func Closed(start, end uint) Range {
	return Range{Start: Included(start), End: Included(end)}
}

// From returns the range [start, top bit].
func From(start uint) Range {
	return Range{Start: Included(start)}
}

// To returns the range [0, end).
func To(end uint) Range {
	return Range{End: Excluded(end)}
}

// ToInclusive returns the range [0, end].
func ToInclusive(end uint) Range {
	return Range{End: Included(end)}
}

// Full returns the range covering every bit of the word.
func Full() Range {
	return Range{}
}

// Between returns the range with the given endpoints. It covers the shapes
// the other constructors do not, such as an exclusive start.
func Between(start, end Bound) Range {
	return Range{Start: start, End: end}
}

// String formats r in the notation accepted by ParseRange: "4..12",
// "4..=12", "4..", "..12", "..=12" and "..". An exclusive start is written
// with a leading parenthesis, as in "(4..12".
func (r Range) String() string {
	buf := make([]byte, 0, 48)
	switch r.Start.Kind {
	case Inclusive:
		buf = strconv.AppendUint(buf, uint64(r.Start.Value), 10)
	case Exclusive:
		buf = append(buf, '(')
		buf = strconv.AppendUint(buf, uint64(r.Start.Value), 10)
	}
	buf = append(buf, ".."...)
	switch r.End.Kind {
	case Inclusive:
		buf = append(buf, '=')
		buf = strconv.AppendUint(buf, uint64(r.End.Value), 10)
	case Exclusive:
		buf = strconv.AppendUint(buf, uint64(r.End.Value), 10)
	}
	return string(buf)
}
