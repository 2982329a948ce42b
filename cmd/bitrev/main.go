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

// Command bitrev reverses ranges of bits inside 32- and 64-bit words.
//
// Usage:
//
//	bitrev reverse --range 8..16 0xF0FFA000
//	bitrev reverse --width 64 --range 8..48 0xF012341234FFA000 0xA0B0C0D0A0B0C0D0
//	bitrev info
//
// Every flag can also be set from the environment with the BITREV_ prefix,
// dots replaced by underscores: BITREV_WIDTH, BITREV_RANGE, BITREV_LOG_LEVEL.
package main

import (
	"os"

	"github.com/ajroetker/go-bitrev/internal/log"
)

// Version is the build version, set at build time with -ldflags.
var Version = "dev"

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		log.Error(err)
	}
	if cerr := log.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		os.Exit(1)
	}
}
