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

// Package log is the process-wide logger of the go-bitrev commands. The
// library packages never log.
package log

import (
	"fmt"
	"io"
	"os"
	"path"
	"sync"

	"github.com/rs/zerolog"
)

const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"

	RFC3339Milli = "2006-01-02T15:04:05.000Z07:00"
)

var (
	log     zerolog.Logger
	logFile *os.File // non-nil when Init was given a file path
	logMu   sync.RWMutex

	callerOnce sync.Once
)

func init() {
	log = defaultLogger()
}

// defaultLogger is quiet until a command calls Init.
func defaultLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: RFC3339Milli}).
		Level(zerolog.ErrorLevel).With().Timestamp().Logger()
}

func getLogger() zerolog.Logger {
	logMu.RLock()
	logger := log
	logMu.RUnlock()
	return logger
}

// swapLogger installs logger and its output file and returns the file it
// replaces, which the caller must close.
func swapLogger(logger zerolog.Logger, f *os.File) *os.File {
	logMu.Lock()
	defer logMu.Unlock()
	prev := logFile
	log, logFile = logger, f
	return prev
}

// ParseLevel maps a level name to its zerolog level.
func ParseLevel(level string) (zerolog.Level, error) {
	switch level {
	case LevelDebug:
		return zerolog.DebugLevel, nil
	case LevelInfo:
		return zerolog.InfoLevel, nil
	case LevelWarn:
		return zerolog.WarnLevel, nil
	case LevelError:
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("invalid log level: %q", level)
	}
}

// Init replaces the global logger. output is "stdout", "stderr" or a file
// path; files are appended to and written without colors. A file opened by
// an earlier Init is closed once the new logger is in place.
func Init(level, output string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}

	var (
		out io.Writer
		f   *os.File
	)
	switch output {
	case "stdout":
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: RFC3339Milli}
	case "stderr":
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: RFC3339Milli}
	default:
		f, err = os.OpenFile(output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("cannot create log output: %w", err)
		}
		out = zerolog.ConsoleWriter{Out: f, TimeFormat: RFC3339Milli, NoColor: true}
	}

	// zerolog keeps these in package globals; set them once, before any
	// logger built here can read them.
	callerOnce.Do(func() {
		zerolog.CallerMarshalFunc = func(_ uintptr, file string, line int) string {
			return fmt.Sprintf("%s/%s:%d", path.Base(path.Dir(file)), path.Base(file), line)
		}
		// Skip the helpers of this package.
		zerolog.CallerSkipFrameCount = 3
	})
	logger := zerolog.New(out).With().Timestamp().Caller().Logger().Level(lvl)

	if prev := swapLogger(logger, f); prev != nil {
		if err := prev.Close(); err != nil {
			logger.Warn().Err(err).Msg("closing previous log output")
		}
	}
	logger.Debug().Msgf("logger construction succeeded at level %s with output %s", level, output)
	return nil
}

// Close restores the default logger and closes the log file opened by Init,
// if any.
func Close() error {
	if f := swapLogger(defaultLogger(), nil); f != nil {
		return f.Close()
	}
	return nil
}

// Level returns the current log level name.
func Level() string {
	return getLogger().GetLevel().String()
}

// Debugw sends a debug level log message with key-value pairs.
func Debugw(msg string, keyvalues ...any) {
	logger := getLogger()
	logger.Debug().Fields(keyvalues).Msg(msg)
}

// Infow sends an info level log message with key-value pairs.
func Infow(msg string, keyvalues ...any) {
	logger := getLogger()
	logger.Info().Fields(keyvalues).Msg(msg)
}

// Warnw sends a warning level log message with key-value pairs.
func Warnw(msg string, keyvalues ...any) {
	logger := getLogger()
	logger.Warn().Fields(keyvalues).Msg(msg)
}

// Error sends an error level log message.
func Error(err error) {
	logger := getLogger()
	logger.Error().Err(err).Send()
}

// Errorw sends an error level log message with key-value pairs.
func Errorw(err error, msg string) {
	logger := getLogger()
	logger.Error().Err(err).Msg(msg)
}
