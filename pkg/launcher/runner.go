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

package launcher

import (
	"context"
	"time"

	"github.com/ZaparooProject/enjoy/pkg/helpers/command"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// Session describes a finished frontend run.
type Session struct {
	Started  time.Time
	Duration time.Duration
}

// Runner runs frontend command lines and waits for them to exit.
type Runner struct {
	cmd   command.Executor
	clock clockwork.Clock
}

func NewRunner(cmd command.Executor, clock clockwork.Clock) *Runner {
	return &Runner{
		cmd:   cmd,
		clock: clock,
	}
}

// Run executes argv and blocks until the frontend exits. A frontend which
// cannot be started or exits unsuccessfully gives a *FrontendError. There
// are no retries.
func (r *Runner) Run(ctx context.Context, argv []string) (Session, error) {
	if len(argv) == 0 || argv[0] == "" {
		return Session{}, ErrEmptyCommand
	}

	log.Info().
		Str("frontend", argv[0]).
		Strs("args", argv[1:]).
		Msg("launching frontend")

	s := Session{Started: r.clock.Now()}
	err := r.cmd.Run(ctx, argv[0], argv[1:]...)
	s.Duration = r.clock.Since(s.Started)

	if err != nil {
		fe := newFrontendError(argv[0], err)
		log.Error().
			Err(err).
			Bool("spawned", fe.Spawned).
			Int("exitCode", fe.ExitCode).
			Dur("duration", s.Duration).
			Msg("frontend failed")
		return s, fe
	}

	log.Info().
		Dur("duration", s.Duration).
		Msg("play session ended")
	return s, nil
}
