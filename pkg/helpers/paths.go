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
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// ExpandHome replaces a leading "~" with the user's home directory. Paths
// like "~user/x" are left alone.
func ExpandHome(path string) string {
	return expandHomeWith(path, xdg.Home)
}

func expandHomeWith(path, home string) string {
	if home == "" || path == "" || path[0] != '~' {
		return path
	}
	if len(path) == 1 {
		return home
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(home, path[2:])
	}
	return path
}

// PathInfo splits a path into its parts without touching the filesystem.
type PathInfo struct {
	Path      string
	Dir       string
	Filename  string
	Extension string
	Name      string
}

// GetPathInfo returns the parts of path. Extension keeps its leading dot and
// is empty for dot files such as ".bashrc".
func GetPathInfo(path string) PathInfo {
	var info PathInfo
	info.Path = path
	info.Dir = getPathDir(path)
	info.Filename = getPathBase(path)
	info.Extension = getPathExt(path)
	info.Name = strings.TrimSuffix(info.Filename, info.Extension)
	return info
}

// getPathDir returns the directory portion of a path, preserving the original separator style
func getPathDir(path string) string {
	if path == "" {
		return "."
	}

	cleanPath := path
	for len(cleanPath) > 1 && isSep(cleanPath[len(cleanPath)-1]) {
		cleanPath = cleanPath[:len(cleanPath)-1]
	}

	lastSlash := strings.LastIndexFunc(cleanPath, func(r rune) bool {
		return r == '/' || r == '\\'
	})

	switch lastSlash {
	case -1:
		return "."
	case 0:
		return cleanPath[:1]
	default:
		return cleanPath[:lastSlash]
	}
}

// getPathBase returns the last element of a path
func getPathBase(path string) string {
	if path == "" {
		return "."
	}

	lastSlash := strings.LastIndexFunc(path, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	if lastSlash == -1 {
		return path
	}

	return path[lastSlash+1:]
}

// getPathExt returns the file extension
func getPathExt(path string) string {
	base := getPathBase(path)

	if base == "" || base == "." || base == ".." {
		return ""
	}

	lastDot := strings.LastIndex(base, ".")
	// no dot, or a hidden file without extension
	if lastDot <= 0 {
		return ""
	}

	return base[lastDot:]
}

func isSep(c byte) bool {
	return c == '/' || c == '\\'
}
