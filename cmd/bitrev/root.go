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

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ajroetker/go-bitrev/bitrev"
	"github.com/ajroetker/go-bitrev/bitrev/u32"
	"github.com/ajroetker/go-bitrev/bitrev/u64"
	"github.com/ajroetker/go-bitrev/internal/log"
)

// app carries the configuration from the root command to the subcommands.
type app struct {
	v   *viper.Viper
	cfg *Config
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	root := &cobra.Command{
		Use:           "bitrev",
		Short:         "Reverse ranges of bits inside 32- and 64-bit words",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(a.v, cmd.Flags())
			if err != nil {
				return err
			}
			if err := log.Init(cfg.Log.Level, cfg.Log.Output); err != nil {
				return err
			}
			log.Debugw("config loaded",
				"version", Version, "width", cfg.Width, "range", cfg.Range, "logLevel", log.Level())
			a.cfg = cfg
			return nil
		},
	}
	root.PersistentFlags().StringP("log.level", "l", defaultLogLevel, "log level (debug, info, warn, error)")
	root.PersistentFlags().StringP("log.output", "o", defaultLogOutput, "log output (stdout, stderr or filepath)")

	root.AddCommand(a.newReverseCmd(), a.newInfoCmd())
	return root
}

func (a *app) newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show how the whole-word bit reverse runs on this machine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "reverse: %s\n", bitrev.CurrentName())
			fmt.Fprintf(out, "gfni: %t\n", bitrev.HasGFNI())
			fmt.Fprintf(out, "widths: %d, %d\n", u32.Width, u64.Width)
			return nil
		},
	}
}
