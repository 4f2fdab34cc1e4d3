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
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ZaparooProject/enjoy/pkg/config"
	"github.com/ZaparooProject/enjoy/pkg/games"
	"github.com/ZaparooProject/enjoy/pkg/helpers"
	"github.com/ZaparooProject/enjoy/pkg/launcher"
	"github.com/ZaparooProject/enjoy/pkg/rules"
	"github.com/rs/zerolog/log"
)

// HighlanderNotice is printed when the frontend is not started because
// another instance is running.
const HighlanderNotice = "frontend already running, there can be only one"

type invocation struct {
	deps      Deps
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
	cli       config.Options
	games     []string
	forwarded []string
	flags     flags
}

func (inv *invocation) run(ctx context.Context) error {
	cfgPath, explicit := config.Path(inv.flags.config)

	if inv.flags.openConfig {
		log.Info().Str("path", cfgPath).Msg("opening config")
		return helpers.OpenWithDefault(ctx, inv.deps.Exec, cfgPath)
	}
	if inv.flags.configPath {
		return inv.println(cfgPath)
	}

	file, err := inv.loadConfig(cfgPath, explicit)
	if err != nil {
		return err
	}

	cli := inv.cli
	if inv.forwarded != nil {
		cli.RetroarchArguments = inv.forwarded
	}
	s := config.Defaults().Merge(file.Options).Merge(cli).Settings()

	candidates, err := inv.candidates(s)
	if err != nil {
		return err
	}

	if s.LibretroDirectory == "" {
		s.LibretroDirectory = config.FindLibretroDirectory(inv.deps.Fs, config.RetroarchConfigPaths(s.RetroarchConfig))
	}
	if err := s.Validate(); err != nil {
		return err
	}

	if len(candidates) == 0 {
		if s.ListCores {
			return inv.println(file.Rules.AliasNames()...)
		}
		return games.ErrNoGame
	}

	game, gameErr := inv.locateGame(candidates, s)
	if gameErr != nil {
		var nf *games.NotFoundError
		if !errors.As(gameErr, &nf) || !s.NoRun {
			return gameErr
		}
		log.Warn().Err(gameErr).Msg("game not found, continuing simulation")
	}

	resolver := rules.NewResolver(file.Rules, s.LibretroDirectory, inv.deps.CoreSuffix)
	core, err := resolver.Resolve(game, rules.Explicit{Libretro: s.Libretro, Core: s.Core})
	if s.ListCores {
		names := file.Rules.AliasNames()
		if err == nil {
			names = resolver.AliasesFor(core.Path)
		}
		if perr := inv.println(names...); perr != nil {
			return perr
		}
	}
	if err != nil {
		return errors.Join(err, gameErr)
	}

	argv := launcher.Build(core, game, launcher.Options{
		Frontend:        s.Retroarch,
		FrontendConfig:  s.RetroarchConfig,
		Fullscreen:      s.Fullscreen,
		Shader:          s.Shader,
		ShaderDirectory: s.ShaderDirectory,
	}, s.RetroarchArguments)

	switch {
	case s.WhichCommand:
		err = inv.println(launcher.FormatCommand(argv))
	case s.Which:
		err = inv.println(core.Path)
	}
	if err != nil {
		return err
	}

	if s.Which || s.WhichCommand || s.ListCores || s.NoRun {
		log.Debug().Strs("argv", argv).Msg("not running frontend")
		return gameErr
	}

	if s.Highlander {
		running, err := launcher.AlreadyRunning(ctx, inv.deps.Procs, s.Retroarch)
		if err != nil {
			return fmt.Errorf("failed to check for running frontend: %w", err)
		}
		if running {
			_, err := fmt.Fprintln(inv.stderr, HighlanderNotice)
			return err //nolint:wrapcheck // write error to stderr has nothing to add
		}
	}

	_, err = launcher.NewRunner(inv.deps.Exec, inv.deps.Clock).Run(ctx, argv)
	return err
}

func (inv *invocation) loadConfig(path string, explicit bool) (*config.File, error) {
	if inv.flags.noConfig {
		log.Debug().Msg("ignoring user config")
		return &config.File{Rules: rules.NewStore()}, nil
	}
	return config.Load(inv.deps.Fs, path, explicit)
}

// candidates returns the games from the commandline, followed by those read
// from stdin and the game set in the config.
//
//nolint:gocritic // settings are read only
func (inv *invocation) candidates(s config.Settings) ([]string, error) {
	all := append([]string{}, inv.games...)

	if !s.NoStdin && (inv.deps.StdinIsTerminal == nil || !inv.deps.StdinIsTerminal()) {
		lines, err := readGames(inv.stdin)
		if err != nil {
			return nil, err
		}
		log.Debug().Int("count", len(lines)).Msg("read games from stdin")
		all = append(all, lines...)
	}

	if s.Game != "" {
		all = append(all, s.Game)
	}
	return all, nil
}

// locateGame filters the candidates and checks the selected game exists. A
// missing game is returned along with its error so a simulation can go on.
//
//nolint:gocritic // settings are read only
func (inv *invocation) locateGame(candidates []string, s config.Settings) (games.Game, error) {
	selected, err := games.Select(games.FromPaths(candidates), s.Filter, s.Strict)
	if err != nil {
		return games.Game{}, err
	}
	log.Debug().Str("game", selected.Path).Int("candidates", len(candidates)).Msg("selected game")

	game, err := games.NewLocator(inv.deps.Fs, s.Resolve).Locate(selected.Path)
	if err != nil {
		var nf *games.NotFoundError
		if errors.As(err, &nf) {
			return games.New(nf.Path), err
		}
		return selected, err
	}
	return game, nil
}

func (inv *invocation) println(lines ...string) error {
	if len(lines) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(inv.stdout, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
