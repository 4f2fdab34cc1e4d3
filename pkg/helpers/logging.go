// Zaparoo Enjoy
// Copyright (c) 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Zaparoo Enjoy.
//
// Zaparoo Enjoy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Zaparoo Enjoy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Zaparoo Enjoy.  If not, see <http://www.gnu.org/licenses/>.

package helpers

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

const (
	AppName = "enjoy"
	LogFile = "enjoy.log"
)

// LogDir returns the directory holding the rotated log file.
func LogDir() string {
	return filepath.Join(xdg.StateHome, AppName)
}

// LogLevel maps the -v count to a zerolog level.
func LogLevel(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// InitLogging sends the global logger to a rotated file and to any extra
// writers. stdout is never used, it carries the program output.
func InitLogging(verbosity int, writers ...io.Writer) {
	logWriters := make([]io.Writer, 0, len(writers)+1)

	err := os.MkdirAll(LogDir(), 0o750)
	if err == nil {
		logWriters = append(logWriters, &lumberjack.Logger{
			Filename:   filepath.Join(LogDir(), LogFile),
			MaxSize:    1,
			MaxBackups: 2,
		})
	}
	logWriters = append(logWriters, writers...)

	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.SetGlobalLevel(LogLevel(verbosity))

	log.Logger = zerolog.New(io.MultiWriter(logWriters...)).
		With().Timestamp().Logger()
	if verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	if err != nil {
		log.Warn().Err(err).Str("dir", LogDir()).Msg("log directory unavailable, file logging disabled")
	}
}

// ConsoleWriter returns a human readable writer for stderr.
func ConsoleWriter() io.Writer {
	return zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
	}
}
