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

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZaparooProject/enjoy/pkg/helpers"
	"github.com/adrg/xdg"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"gopkg.in/ini.v1"
)

const (
	// CfgEnv overrides the default config file path.
	CfgEnv  = "ENJOY_CONFIG"
	CfgDir  = "enjoy"
	CfgFile = "default.ini"

	retroarchCfgFile     = "retroarch.cfg"
	keyLibretroDirectory = "libretro_directory"
)

// DefaultPath is the config file used when none is given.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, CfgDir, CfgFile)
}

// Path picks the config file to load: the flag value, then the CfgEnv
// environment variable, then DefaultPath. explicit reports whether the path
// was chosen by the user.
func Path(flagPath string) (path string, explicit bool) {
	if flagPath != "" {
		return helpers.ExpandHome(flagPath), true
	}
	if env := os.Getenv(CfgEnv); env != "" {
		log.Debug().Str("path", env).Msg("using config path from environment")
		return helpers.ExpandHome(env), true
	}
	return DefaultPath(), false
}

// RetroarchConfigPaths lists where RetroArch's own config is looked for,
// explicit first when given.
func RetroarchConfigPaths(explicit string) []string {
	if explicit != "" {
		return []string{helpers.ExpandHome(explicit)}
	}
	return []string{
		filepath.Join(xdg.ConfigHome, "retroarch", retroarchCfgFile),
		filepath.Join(xdg.Home, ".config", "retroarch", retroarchCfgFile),
		filepath.Join(xdg.Home, "."+retroarchCfgFile),
	}
}

// FindLibretroDirectory returns the core directory configured in the first
// existing RetroArch config of paths, or an empty string.
func FindLibretroDirectory(fs afero.Fs, paths []string) string {
	for _, p := range paths {
		exists, err := afero.Exists(fs, p)
		if err != nil || !exists {
			continue
		}
		dir, err := ReadLibretroDirectory(fs, p)
		if err != nil {
			log.Warn().Err(err).Str("path", p).Msg("failed to read retroarch config")
			continue
		}
		log.Debug().Str("path", p).Str("directory", dir).Msg("libretro directory from retroarch config")
		return dir
	}
	return ""
}

// ReadLibretroDirectory reads libretro_directory from a RetroArch config
// file. RetroArch writes "default" for unset paths, which is returned as an
// empty string.
func ReadLibretroDirectory(fs afero.Fs, path string) (string, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg, err := ini.LoadSources(ini.LoadOptions{
		SkipUnrecognizableLines: true,
		ChildSectionDelimiter:   noChildSections,
	}, data)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", path, err)
	}

	sec := cfg.Section(ini.DefaultSection)
	if !sec.HasKey(keyLibretroDirectory) {
		return "", nil
	}
	dir := strings.TrimSpace(sec.Key(keyLibretroDirectory).String())
	if dir == "" || dir == "default" {
		return "", nil
	}
	return helpers.ExpandHome(dir), nil
}
