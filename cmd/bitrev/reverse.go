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

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-bitrev/bitrev"
	"github.com/ajroetker/go-bitrev/bitrev/u32"
	"github.com/ajroetker/go-bitrev/bitrev/u64"
	"github.com/ajroetker/go-bitrev/internal/log"
)

func (a *app) newReverseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reverse [flags] VALUE...",
		Short: "Reverse the bits of each VALUE inside a range",
		Example: `  bitrev reverse --range 8..16 0xF0FFA000
  bitrev reverse -w 64 -r 8..=47 0xF012341234FFA000
  BITREV_RANGE=4..12 bitrev reverse 0xAAAAAAAA`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.reverse(cmd.OutOrStdout(), args)
		},
	}
	cmd.Flags().IntP("width", "w", defaultWidth, "word width in bits (32 or 64)")
	cmd.Flags().StringP("range", "r", defaultRange, "bit range: a..b, a..=b, a.., ..b, ..=b or ..")
	return cmd
}

func (a *app) reverse(out io.Writer, args []string) error {
	width := a.cfg.Width
	if width != u32.Width && width != u64.Width {
		return fmt.Errorf("%w: got %d", errInvalidWidth, width)
	}
	r, err := bitrev.ParseRange(a.cfg.Range)
	if err != nil {
		return err
	}
	if clamped(r, uint(width)) {
		log.Warnw("range reaches past the top bit and is clamped", "range", r.String(), "width", width)
	}

	for i, arg := range args {
		x, err := strconv.ParseUint(arg, 0, width)
		if err != nil {
			return fmt.Errorf("invalid value %q: %w", arg, err)
		}
		rep := reverseWord(uint(width), x, r)
		log.Debugw("reversed word",
			"width", width, "range", r.String(), "start", rep.start, "end", rep.end)
		if i > 0 {
			fmt.Fprintln(out)
		}
		rep.write(out)
	}
	return nil
}

// report is the outcome of one reversal, ready to print.
type report struct {
	width              uint
	original, reversed uint64
	start, end         uint
}

func reverseWord(width uint, x uint64, r bitrev.Range) report {
	rep := report{width: width, original: x}
	if width == u32.Width {
		rep.reversed = uint64(u32.Reverse(uint32(x), r))
		rep.start, rep.end = u32.StartEnd(r)
	} else {
		rep.reversed = u64.Reverse(x, r)
		rep.start, rep.end = u64.StartEnd(r)
	}
	return rep
}

func (rep report) write(w io.Writer) {
	digits := int(rep.width / 4)
	fmt.Fprintf(w, "original: %0*X\n", digits, rep.original)
	fmt.Fprintf(w, " changed: %s\n", bitrev.Marker(rep.width, rep.start, rep.end))
	fmt.Fprintf(w, "reversed: %0*X\n", digits, rep.reversed)
}

// clamped reports whether an endpoint of r lies past the last bit index.
func clamped(r bitrev.Range, width uint) bool {
	switch r.Start.Kind {
	case bitrev.Inclusive:
		if r.Start.Value >= width {
			return true
		}
	case bitrev.Exclusive:
		if r.Start.Value >= width-1 {
			return true
		}
	}
	switch r.End.Kind {
	case bitrev.Inclusive:
		return r.End.Value >= width
	case bitrev.Exclusive:
		return r.End.Value > width
	}
	return false
}
