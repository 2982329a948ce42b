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
	"os"
	"strconv"
)

// Level describes how the whole-word bit reverse from math/bits runs on
// this machine.
type Level int

const (
	// LevelScalar indicates the portable log-W butterfly of shifts and masks.
	LevelScalar Level = iota

	// LevelBSWAP indicates a byte swap instruction followed by an in-byte
	// butterfly (x86-64).
	LevelBSWAP

	// LevelRBIT indicates a single bit reverse instruction (ARM64 RBIT).
	LevelRBIT
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelBSWAP:
		return "bswap"
	case LevelRBIT:
		return "rbit"
	default:
		return "unknown"
	}
}

// currentLevel is the detected level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel Level

// currentName is the human-readable name of the current level.
// Set by init() in dispatch_*.go files.
var currentName string

// hasGFNI is set on amd64 when the CPU has AVX-512 GFNI.
var hasGFNI bool

// CurrentLevel returns how the whole-word bit reverse runs.
// The reversal functions do not branch on it; it is informational.
func CurrentLevel() Level {
	return currentLevel
}

// CurrentName returns a human-readable name for the current level.
// For example: "rbit", "bswap", "scalar".
func CurrentName() string {
	return currentName
}

// HasGFNI reports whether the CPU supports AVX-512 Galois field instructions,
// which can reverse the bits of every byte in a vector register.
// Always false outside x86-64.
func HasGFNI() bool {
	return hasGFNI
}

// ForceScalarEnv checks if the BITREV_FORCE_SCALAR environment variable is set.
// When set, CurrentLevel reports LevelScalar regardless of the CPU, which keeps
// the output of tools built on this package reproducible across machines.
func ForceScalarEnv() bool {
	val := os.Getenv("BITREV_FORCE_SCALAR")
	if val == "" {
		return false
	}
	// "0" and "false" turn it off; anything else unparsable counts as set.
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setScalarMode() {
	currentLevel = LevelScalar
	currentName = LevelScalar.String()
}
