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

// Package games turns candidate ROM paths into games, narrows candidate
// lists with user filters and locates the selected game on disk.
package games

import (
	"github.com/ZaparooProject/enjoy/pkg/helpers"
)

// Game is a candidate ROM. Dir and Ext are derived from Path; Ext keeps its
// leading dot and Name is the file name without directory and extension.
type Game struct {
	Path string
	Dir  string
	Ext  string
	Name string
}

// New builds a game from path without touching the filesystem.
func New(path string) Game {
	info := helpers.GetPathInfo(path)
	return Game{
		Path: path,
		Dir:  info.Dir,
		Ext:  info.Extension,
		Name: info.Name,
	}
}

// FromPaths builds a game for every path, keeping order.
func FromPaths(paths []string) []Game {
	gs := make([]Game, 0, len(paths))
	for _, p := range paths {
		gs = append(gs, New(p))
	}
	return gs
}

func (g Game) Directory() string {
	return g.Dir
}

func (g Game) Extension() string {
	return g.Ext
}
