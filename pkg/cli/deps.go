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

package cli

import (
	"os"

	"github.com/ZaparooProject/enjoy/pkg/helpers"
	"github.com/ZaparooProject/enjoy/pkg/helpers/command"
	"github.com/ZaparooProject/enjoy/pkg/launcher"
	"github.com/ZaparooProject/enjoy/pkg/rules"
	"github.com/jonboulle/clockwork"
	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
)

// Deps are the outside world the command talks to.
type Deps struct {
	Fs    afero.Fs
	Exec  command.Executor
	Procs launcher.ProcessFinder
	Clock clockwork.Clock
	// StdinIsTerminal reports whether stdin is interactive, in which case
	// it is not read for games.
	StdinIsTerminal func() bool
	// InitLogging is called with the -v count before anything else runs.
	InitLogging func(verbosity int)
	CoreSuffix  string
}

// DefaultDeps uses the real filesystem, processes and clock.
func DefaultDeps() Deps {
	return Deps{
		Fs:              afero.NewOsFs(),
		Exec:            &command.RealExecutor{},
		Procs:           launcher.SystemProcessFinder{},
		Clock:           clockwork.NewRealClock(),
		StdinIsTerminal: stdinIsTerminal,
		InitLogging:     initLogging,
		CoreSuffix:      rules.DefaultCoreSuffix(),
	}
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func initLogging(verbosity int) {
	if verbosity > 0 {
		helpers.InitLogging(verbosity, helpers.ConsoleWriter())
		return
	}
	helpers.InitLogging(verbosity)
}
