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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-bitrev/bitrev"
	"github.com/ajroetker/go-bitrev/internal/log"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestReverse32(t *testing.T) {
	out, err := execute(t, "reverse", "--range", "8..16", "0xF0FFA000")
	require.NoError(t, err)
	assert.Equal(t, "original: F0FFA000\n"+
		" changed: ....xx..\n"+
		"reversed: F0FF0500\n", out)
}

func TestReverse64(t *testing.T) {
	out, err := execute(t, "reverse", "-w", "64", "-r", "8..16", "0xF012341234FFA000")
	require.NoError(t, err)
	assert.Equal(t, "original: F012341234FFA000\n"+
		" changed: ............xx..\n"+
		"reversed: F012341234FF0500\n", out)
}

func TestReverseSeveralValues(t *testing.T) {
	out, err := execute(t, "reverse", "-r", "..", "0x12345678", "1")
	require.NoError(t, err)
	assert.Equal(t, "original: 12345678\n"+
		" changed: xxxxxxxx\n"+
		"reversed: 1E6A2C48\n"+
		"\n"+
		"original: 00000001\n"+
		" changed: xxxxxxxx\n"+
		"reversed: 80000000\n", out)
}

func TestReverseDefaultsToFullWord(t *testing.T) {
	out, err := execute(t, "reverse", "0x80000000")
	require.NoError(t, err)
	assert.Contains(t, out, "reversed: 00000001\n")
}

func TestReverseEmptyRangeLeavesValue(t *testing.T) {
	out, err := execute(t, "reverse", "-r", "9..9", "0xAAAAAAAA")
	require.NoError(t, err)
	assert.Equal(t, "original: AAAAAAAA\n"+
		" changed: ........\n"+
		"reversed: AAAAAAAA\n", out)
}

func TestReverseClampedRange(t *testing.T) {
	out, err := execute(t, "reverse", "-r", "16..1000", "0x0000FFFF")
	require.NoError(t, err)
	assert.Contains(t, out, "reversed: 0000FFFF\n")

	out, err = execute(t, "reverse", "-r", "0..1000", "0x0000FFFF")
	require.NoError(t, err)
	assert.Contains(t, out, "reversed: FFFF0000\n")
}

func TestReverseFromEnvironment(t *testing.T) {
	t.Setenv("BITREV_WIDTH", "64")
	t.Setenv("BITREV_RANGE", "12..64")

	out, err := execute(t, "reverse", "0xAAAAAAAAAAAAAAAA")
	require.NoError(t, err)
	assert.Contains(t, out, "reversed: 5555555555555AAA\n")
}

func TestReverseFlagOverridesEnvironment(t *testing.T) {
	t.Setenv("BITREV_RANGE", "0..4")

	out, err := execute(t, "reverse", "--range", "8..16", "0xF0FFA000")
	require.NoError(t, err)
	assert.Contains(t, out, "reversed: F0FF0500\n")
}

func TestReverseErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no values", []string{"reverse"}, "requires at least 1 arg"},
		{"bad width", []string{"reverse", "-w", "16", "1"}, "width must be 32 or 64"},
		{"bad range", []string{"reverse", "-r", "8-16", "1"}, "invalid range"},
		{"bad value", []string{"reverse", "zz"}, `invalid value "zz"`},
		{"value too wide", []string{"reverse", "0x100000000"}, "value out of range"},
		{"bad log level", []string{"reverse", "-l", "loud", "1"}, "loud"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestReverseBadRangeWrapsSentinel(t *testing.T) {
	_, err := execute(t, "reverse", "-r", "a..b", "1")
	assert.ErrorIs(t, err, bitrev.ErrInvalidRange)
}

func TestInfo(t *testing.T) {
	out, err := execute(t, "info")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "reverse: "+bitrev.CurrentName(), lines[0])
	assert.Contains(t, lines[1], "gfni: ")
	assert.Equal(t, "widths: 32, 64", lines[2])
}

func TestClamped(t *testing.T) {
	tests := []struct {
		r    bitrev.Range
		want bool
	}{
		{bitrev.Full(), false},
		{bitrev.Span(0, 32), false},
		{bitrev.Span(0, 33), true},
		{bitrev.Closed(0, 31), false},
		{bitrev.Closed(0, 32), true},
		{bitrev.From(31), false},
		{bitrev.From(32), true},
		{bitrev.Between(bitrev.Excluded(40), bitrev.Open()), true},
		{bitrev.Between(bitrev.Excluded(30), bitrev.Open()), false},
		{bitrev.Between(bitrev.Excluded(31), bitrev.Open()), true},
	}
	for _, tt := range tests {
		if got := clamped(tt.r, 32); got != tt.want {
			t.Errorf("clamped(%v, 32) = %v, want %v", tt.r, got, tt.want)
		}
	}

	// An excluded start clamps one index earlier than an included one.
	for _, width := range []uint{32, 64} {
		if !clamped(bitrev.Between(bitrev.Excluded(width-1), bitrev.Open()), width) {
			t.Errorf("clamped((%d.., %d) = false, want true", width-1, width)
		}
		if clamped(bitrev.From(width-1), width) {
			t.Errorf("clamped(%d.., %d) = true, want false", width-1, width)
		}
	}
}

func TestReverseLogsToFile(t *testing.T) {
	t.Cleanup(func() { require.NoError(t, log.Close()) })
	logfile := filepath.Join(t.TempDir(), "bitrev.log")

	_, err := execute(t, "reverse", "-l", "debug", "-o", logfile, "-r", "(31..", "0xF0FFA000")
	require.NoError(t, err)

	data, err := os.ReadFile(logfile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "config loaded")
	assert.Contains(t, string(data), "clamped")
	assert.Contains(t, string(data), "reversed word")
}
