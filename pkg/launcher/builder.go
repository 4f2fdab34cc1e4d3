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

// Package launcher builds the frontend command line for a resolved core and
// runs it.
package launcher

import (
	"path/filepath"

	"github.com/ZaparooProject/enjoy/pkg/games"
	"github.com/ZaparooProject/enjoy/pkg/rules"
	"github.com/kballard/go-shellquote"
)

// Frontend flags understood by RetroArch.
const (
	FlagLibretro   = "--libretro"
	FlagConfig     = "--config"
	FlagFullscreen = "--fullscreen"
	FlagShader     = "--set-shader"
)

// Options are the merged settings the command line is built from.
type Options struct {
	// Frontend is the executable name or path of the frontend.
	Frontend string
	// FrontendConfig is passed on as the frontend's own config file.
	FrontendConfig  string
	Shader          string
	ShaderDirectory string
	Fullscreen      bool
}

// Build returns the full argument vector, frontend first:
//
//	<frontend> --libretro <core> [--config <file>] [--fullscreen] [--set-shader <shader>] <game> [forwarded...]
//
// Forwarded arguments are appended unmodified and in order.
func Build(core rules.Resolved, game games.Game, opts Options, forwarded []string) []string {
	argv := make([]string, 0, 9+len(forwarded))
	argv = append(argv, opts.Frontend, FlagLibretro, core.Path)

	if opts.FrontendConfig != "" {
		argv = append(argv, FlagConfig, opts.FrontendConfig)
	}
	if opts.Fullscreen {
		argv = append(argv, FlagFullscreen)
	}
	if shader := ShaderPath(opts.Shader, opts.ShaderDirectory); shader != "" {
		argv = append(argv, FlagShader, shader)
	}

	argv = append(argv, game.Path)
	argv = append(argv, forwarded...)
	return argv
}

// ShaderPath joins a bare shader name with dir. Paths and names without a
// directory configured are returned as is.
func ShaderPath(shader, dir string) string {
	if shader == "" || dir == "" || rules.HasSeparator(shader) {
		return shader
	}
	return filepath.Join(dir, shader)
}

// FormatCommand renders argv as a single shell-quoted line.
func FormatCommand(argv []string) string {
	return shellquote.Join(argv...)
}
