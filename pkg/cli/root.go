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

// Package cli implements the enjoy command: it merges the commandline with
// the config file, picks a game, resolves its core and runs the frontend.
package cli

import (
	"github.com/ZaparooProject/enjoy/pkg/config"
	"github.com/spf13/cobra"
)

type flags struct {
	config          string
	retroarch       string
	retroarchConfig string
	libretro        string
	libretroDir     string
	core            string
	shader          string
	shaderDir       string
	filters         []string
	verbosity       int
	strict          bool
	which           bool
	whichCommand    bool
	listCores       bool
	fullscreen      bool
	resolve         bool
	highlander      bool
	noConfig        bool
	noRun           bool
	noStdin         bool
	configPath      bool
	openConfig      bool
}

// NewRootCmd builds the enjoy command around deps.
//
//nolint:gocritic // deps is a small bundle of interfaces
func NewRootCmd(deps Deps) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "enjoy [flags] [GAME...] [-- RETROARCH_ARGS...]",
		Short: "Play a ROM with the right libretro core",
		Long: `enjoy runs a game in RetroArch with the libretro core associated with it.

Cores are picked from the user config: an explicit core or alias first, then
rules matching the game's directory, then rules matching its extension. More
than one game can be given, on the commandline or one per line on stdin; the
first one surviving all filters is played. Everything after "--" is passed to
RetroArch untouched.`,
		Example: `  enjoy '~/roms/snes/Super Mario World (U) [!].smc'
  ls -1 ./snes/* | enjoy --filter '[!]' --core snes --which --highlander
  ls -1 ~/roms/gb/* | enjoy -xWn`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if deps.InitLogging != nil {
				deps.InitLogging(f.verbosity)
			}

			games, forwarded := splitArgs(args, cmd.ArgsLenAtDash())
			inv := invocation{
				deps:      deps,
				flags:     f,
				cli:       cliOptions(cmd, &f),
				games:     games,
				forwarded: forwarded,
				stdin:     cmd.InOrStdin(),
				stdout:    cmd.OutOrStdout(),
				stderr:    cmd.ErrOrStderr(),
			}
			return inv.run(cmd.Context())
		},
	}

	fl := cmd.Flags()
	fl.SortFlags = false

	fl.StringVarP(&f.config, "config", "c", "", "path to the user settings (default "+config.DefaultPath()+")")
	fl.BoolVarP(&f.openConfig, "open-config", "O", false, "open the user settings with the default application and exit")
	fl.BoolVarP(&f.configPath, "config-path", "o", false, "print the path of the user settings and exit")
	fl.BoolVarP(&f.which, "which", "w", false, "print the resolved libretro core instead of running")
	fl.BoolVarP(&f.whichCommand, "which-command", "W", false,
		"print the full frontend command line instead of running, has priority over --which")

	fl.StringArrayVarP(&f.filters, "filter", "f", nil, "keep only games whose name matches PATTERN, repeatable")
	fl.BoolVarP(&f.strict, "strict", "s", false, "make --filter case sensitive and match whole names")

	fl.BoolVarP(&f.listCores, "list-cores", "n", false,
		"print core aliases, only those matching the game's core when one is given")
	fl.BoolVarP(&f.fullscreen, "fullscreen", "F", false, "run the frontend in fullscreen")
	fl.BoolVarP(&f.resolve, "resolve", "l", false, "resolve symbolic links of the game path")
	fl.BoolVarP(&f.highlander, "highlander", "1", false, "do not run if the frontend is already running")

	fl.StringVarP(&f.core, "core", "C", "", "force a core by its alias from the user settings")
	fl.StringVarP(&f.libretro, "libretro", "L", "", "force a libretro core by file name or path")
	fl.StringVarP(&f.libretroDir, "libretro-directory", "D", "", "directory of libretro core files")
	fl.StringVarP(&f.retroarch, "retroarch", "A", "", "frontend command name or path (default "+config.DefaultFrontend+")")
	fl.StringVarP(&f.retroarchConfig, "retroarch-config", "B", "", "the frontend's own base config file")
	fl.StringVar(&f.shader, "shader", "", "shader preset to load, name or path")
	fl.StringVar(&f.shaderDir, "shader-directory", "", "directory shader names are looked up in")

	fl.BoolVarP(&f.noConfig, "noconfig", "i", false, "ignore the user settings")
	fl.BoolVarP(&f.noRun, "norun", "x", false, "simulate everything but running the frontend")
	fl.BoolVarP(&f.noStdin, "nostdin", "z", false, "do not read games from stdin")
	fl.CountVarP(&f.verbosity, "verbose", "v", "increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	cmd.MarkFlagsMutuallyExclusive("libretro", "core")
	cmd.MarkFlagsMutuallyExclusive("noconfig", "config")
	cmd.MarkFlagsMutuallyExclusive("noconfig", "open-config")
	cmd.MarkFlagsMutuallyExclusive("noconfig", "core")

	return cmd
}

// splitArgs separates games from the arguments after "--".
func splitArgs(args []string, dash int) (games, forwarded []string) {
	if dash < 0 {
		return args, nil
	}
	return args[:dash], append([]string{}, args[dash:]...)
}

// cliOptions turns the flags the user actually set into an options layer.
func cliOptions(cmd *cobra.Command, f *flags) config.Options {
	var o config.Options
	changed := cmd.Flags().Changed

	setString := func(name string, v string, dst **string) {
		if changed(name) {
			*dst = &v
		}
	}
	setBool := func(name string, v bool, dst **bool) {
		if changed(name) {
			*dst = &v
		}
	}

	setString("retroarch", f.retroarch, &o.Retroarch)
	setString("retroarch-config", f.retroarchConfig, &o.RetroarchConfig)
	setString("libretro", f.libretro, &o.Libretro)
	setString("libretro-directory", f.libretroDir, &o.LibretroDirectory)
	setString("core", f.core, &o.Core)
	setString("shader", f.shader, &o.Shader)
	setString("shader-directory", f.shaderDir, &o.ShaderDirectory)

	setBool("strict", f.strict, &o.Strict)
	setBool("which", f.which, &o.Which)
	setBool("which-command", f.whichCommand, &o.WhichCommand)
	setBool("list-cores", f.listCores, &o.ListCores)
	setBool("fullscreen", f.fullscreen, &o.Fullscreen)
	setBool("resolve", f.resolve, &o.Resolve)
	setBool("highlander", f.highlander, &o.Highlander)
	setBool("norun", f.noRun, &o.NoRun)
	setBool("nostdin", f.noStdin, &o.NoStdin)

	if changed("filter") {
		o.Filter = append([]string{}, f.filters...)
	}
	return o.ExpandPaths()
}
