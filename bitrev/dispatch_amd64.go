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

//go:build amd64

package bitrev

import "golang.org/x/sys/cpu"

func init() {
	detectCPUFeatures()

	// Check if the report is pinned via environment variable
	if ForceScalarEnv() {
		setScalarMode()
		return
	}

	// x86-64 has no bit reverse instruction. math/bits swaps bytes with
	// BSWAP and reverses inside each byte with three mask-and-shift steps.
	currentLevel = LevelBSWAP
	currentName = LevelBSWAP.String()
}

func detectCPUFeatures() {
	// GFNI (GF2P8AFFINEQB) reverses bits per byte; only reported for now.
	if cpu.X86.HasAVX512 {
		hasGFNI = cpu.X86.HasAVX512GFNI
	}
}
