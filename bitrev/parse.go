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

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidRange is returned by ParseRange for text that is not a range
// expression.
var ErrInvalidRange = errors.New("invalid range")

// ParseRange parses a range expression of the form "a..b", "a..=b", "a..",
// "..b", "..=b" or "..". A leading "(" before the start makes it exclusive.
// Endpoints are unsigned integers in any base strconv.ParseUint accepts with
// base 0, so "0x10..0x18" works too.
//
// Endpoints past the top of a word are not an error here; the width
// packages clamp them.
func ParseRange(s string) (Range, error) {
	text := strings.TrimSpace(s)
	lo, hi, ok := strings.Cut(text, "..")
	if !ok {
		return Range{}, fmt.Errorf("%w: %q has no \"..\"", ErrInvalidRange, s)
	}

	var r Range
	lo = strings.TrimSpace(lo)
	exclusiveStart := false
	if rest, found := strings.CutPrefix(lo, "("); found {
		exclusiveStart = true
		lo = strings.TrimSpace(rest)
	}
	if lo != "" {
		v, err := parseIndex(lo)
		if err != nil {
			return Range{}, fmt.Errorf("%w: start of %q: %v", ErrInvalidRange, s, err)
		}
		if exclusiveStart {
			r.Start = Excluded(v)
		} else {
			r.Start = Included(v)
		}
	} else if exclusiveStart {
		return Range{}, fmt.Errorf("%w: %q: exclusive start needs a value", ErrInvalidRange, s)
	}

	hi = strings.TrimSpace(hi)
	inclusiveEnd := false
	if rest, found := strings.CutPrefix(hi, "="); found {
		inclusiveEnd = true
		hi = strings.TrimSpace(rest)
	}
	if hi != "" {
		v, err := parseIndex(hi)
		if err != nil {
			return Range{}, fmt.Errorf("%w: end of %q: %v", ErrInvalidRange, s, err)
		}
		if inclusiveEnd {
			r.End = Included(v)
		} else {
			r.End = Excluded(v)
		}
	} else if inclusiveEnd {
		return Range{}, fmt.Errorf("%w: %q: \"..=\" needs an end", ErrInvalidRange, s)
	}
	return r, nil
}

// MustParseRange is like ParseRange but panics on error. It is meant for
// constant expressions in tests and examples.
func MustParseRange(s string) Range {
	r, err := ParseRange(s)
	if err != nil {
		panic(err)
	}
	return r
}

func parseIndex(s string) (uint, error) {
	v, err := strconv.ParseUint(s, 0, strconv.IntSize)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}
