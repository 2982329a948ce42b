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

// Command revgen generates one word-width package from another.
//
// Usage:
//
//	revgen -input ../u32 -output . -from 32 -to 64
//
// Or via go:generate in the output package:
//
//	//go:generate go run ../../cmd/revgen -input ../u32 -output . -from 32 -to 64
//
// Every non-test Go file of the input package except doc.go is rewritten:
// the package clause, uintN types, bits.ReverseN calls, the Width constant
// and width mentions in comments move from the source width to the target
// width. Each result is written as <name>.gen.go.
package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/ajroetker/go-bitrev/internal/log"
)

var (
	inputDir  = flag.StringP("input", "i", "", "Input package directory (required)")
	outputDir = flag.StringP("output", "o", ".", "Output directory")
	fromWidth = flag.Int("from", 32, "Word width of the input package")
	toWidth   = flag.Int("to", 64, "Word width to generate")
	logLevel  = flag.StringP("log.level", "l", log.LevelWarn, "log level (debug, info, warn, error)")
)

func main() {
	flag.Parse()

	if err := log.Init(*logLevel, "stderr"); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *inputDir == "" {
		fmt.Fprintf(os.Stderr, "Error: -input flag is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	gen := &Generator{
		InputDir:  *inputDir,
		OutputDir: *outputDir,
		From:      *fromWidth,
		To:        *toWidth,
	}

	written, err := gen.Run()
	if err != nil {
		log.Errorw(err, "generation failed")
		os.Exit(1)
	}
	log.Infow("generated", "files", written, "from", gen.From, "to", gen.To)
}
