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

package games

import (
	"fmt"
	"path/filepath"

	"github.com/ZaparooProject/enjoy/pkg/helpers"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Locator expands a game path to an absolute one and checks it exists.
type Locator struct {
	fs           afero.Fs
	evalSymlinks func(string) (string, error)
	resolveLinks bool
}

// NewLocator returns a locator on fs. With resolveLinks set, symbolic links
// are replaced by their target, otherwise a link is passed on as a link.
func NewLocator(fs afero.Fs, resolveLinks bool) *Locator {
	return &Locator{
		fs:           fs,
		resolveLinks: resolveLinks,
		evalSymlinks: filepath.EvalSymlinks,
	}
}

// Locate returns the game at path with tilde and relative parts expanded.
// A missing file gives a *NotFoundError.
func (l *Locator) Locate(path string) (Game, error) {
	full := helpers.ExpandHome(path)
	abs, err := filepath.Abs(full)
	if err != nil {
		return Game{}, fmt.Errorf("failed to make path absolute: %w", err)
	}

	if l.resolveLinks {
		target, err := l.evalSymlinks(abs)
		if err != nil {
			return Game{}, &NotFoundError{Path: abs, Err: err}
		}
		log.Debug().Str("link", abs).Str("target", target).Msg("resolved game path")
		abs = target
	}

	ok, err := afero.Exists(l.fs, abs)
	if err != nil {
		return Game{}, fmt.Errorf("failed to stat game: %w", err)
	}
	if !ok {
		return Game{}, &NotFoundError{Path: abs}
	}

	return New(abs), nil
}
