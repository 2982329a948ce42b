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

//go:build arm64

package bitrev

import "golang.org/x/sys/cpu"

func init() {
	if ForceScalarEnv() {
		setScalarMode()
		return
	}

	// The compiler lowers bits.Reverse32/64 to RBIT, which is part of the
	// AArch64 base instruction set. ASIMD stands in for "a real ARMv8 core";
	// without it the report falls back to scalar.
	if cpu.ARM64.HasASIMD {
		currentLevel = LevelRBIT
		currentName = LevelRBIT.String()
	} else {
		setScalarMode()
	}
}
