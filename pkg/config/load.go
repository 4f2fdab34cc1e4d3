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

// Package config loads the INI configuration file into option layers and the
// core rule store.
//
// The file has one [options] section, one [cores] section of alias names to
// core references, and any number of rule sections. A section whose name
// contains a path separator is a directory rule, any other section starting
// with a dot lists extensions:
//
//	[options]
//	libretro_directory = ~/.config/retroarch/cores
//
//	[cores]
//	snes super = snes9x
//
//	[.smc .sfc]
//	core = snes
//
//	[~/roms/psx*]
//	libretro = mednafen_psx_hw
package config

import (
	"fmt"
	"strings"

	"github.com/ZaparooProject/enjoy/pkg/helpers"
	"github.com/ZaparooProject/enjoy/pkg/rules"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"gopkg.in/ini.v1"
)

const (
	SectionOptions = "options"
	SectionCores   = "cores"

	KeyCore     = "core"
	KeyLibretro = "libretro"
)

// File is a loaded configuration file.
type File struct {
	Rules   *rules.Store
	Path    string
	Options Options
	// Found is false when no file existed at Path.
	Found bool
}

// Load reads the configuration at path. A missing file is only an error when
// the path was given explicitly, otherwise an empty configuration is
// returned.
func Load(fs afero.Fs, path string, explicit bool) (*File, error) {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to stat %s: %w", ErrConfig, path, err)
	}
	if !exists {
		if explicit {
			return nil, fmt.Errorf("%w: file not found: %s", ErrConfig, path)
		}
		log.Warn().Str("path", path).Msg("config file not found, continuing without")
		return &File{
			Path:  path,
			Rules: rules.NewStore(),
		}, nil
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %w", ErrConfig, path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.Path = path
	f.Found = true

	log.Debug().
		Str("path", path).
		Int("aliases", len(f.Rules.AliasNames())).
		Int("extensionRules", len(f.Rules.ExtensionRules())).
		Int("directoryRules", len(f.Rules.DirectoryRules())).
		Msg("loaded config")
	return f, nil
}

// Parse reads configuration file contents.
func Parse(data []byte) (*File, error) {
	cfg, err := loadINI(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	f := &File{
		Rules: rules.NewStore(),
	}

	for _, sec := range cfg.Sections() {
		name := sec.Name()
		switch {
		case name == ini.DefaultSection:
			if len(sec.Keys()) > 0 {
				log.Warn().Msg("ignoring keys outside of any section")
			}
		case name == SectionOptions:
			opts, err := parseOptions(sec)
			if err != nil {
				return nil, err
			}
			f.Options = f.Options.Merge(opts)
		case name == SectionCores:
			parseCores(sec, f.Rules)
		case rules.IsDirectorySection(name):
			libretro, core := parseRule(sec)
			f.Rules.AddDirectoryRule(rules.DirectoryRule{
				Section:  name,
				Pattern:  helpers.ExpandHome(name),
				Libretro: libretro,
				Core:     core,
			})
		case rules.IsExtensionSection(name):
			libretro, core := parseRule(sec)
			f.Rules.AddExtensionRule(rules.ExtensionRule{
				Section:    name,
				Extensions: rules.ParseExtensions(name),
				Libretro:   libretro,
				Core:       core,
			})
		default:
			log.Warn().Str("section", name).Msg("ignoring unknown config section")
		}
	}

	return f, nil
}

// noChildSections never occurs in a section name, so directory rules such as
// [/home/me/.roms] are not treated as children of another section.
const noChildSections = "\x00"

func loadINI(data []byte) (*ini.File, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		ChildSectionDelimiter:   noChildSections,
		PreserveSurroundedQuote: true,
	}, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ini: %w", err)
	}
	return cfg, nil
}

func parseCores(sec *ini.Section, store *rules.Store) {
	for _, key := range sec.Keys() {
		names := rules.ParseAliasNames(key.Name())
		ref := strings.TrimSpace(key.String())
		if ref == "" {
			log.Warn().Str("alias", key.Name()).Msg("ignoring core alias without a core")
			continue
		}
		store.AddAlias(rules.CoreAlias{
			Names: names,
			Ref:   expandRef(ref),
		})
	}
}

func parseRule(sec *ini.Section) (libretro, core string) {
	for _, key := range sec.Keys() {
		switch key.Name() {
		case KeyLibretro:
			libretro = expandRef(strings.TrimSpace(key.String()))
		case KeyCore:
			core = strings.TrimSpace(key.String())
		default:
			log.Warn().
				Str("section", sec.Name()).
				Str("key", key.Name()).
				Msg("ignoring unknown rule key")
		}
	}
	if libretro == "" && core == "" {
		log.Debug().Str("section", sec.Name()).Msg("rule has no core and will never match")
	}
	return libretro, core
}

// expandRef expands a leading tilde on core references which are paths.
func expandRef(ref string) string {
	if !rules.HasSeparator(ref) {
		return ref
	}
	return helpers.ExpandHome(ref)
}

func parseOptions(sec *ini.Section) (Options, error) {
	var o Options
	for _, key := range sec.Keys() {
		var err error
		switch key.Name() {
		case "game":
			o.Game = pathValue(key)
		case "retroarch":
			o.Retroarch = pathValue(key)
		case "retroarch_config":
			o.RetroarchConfig = pathValue(key)
		case "libretro":
			o.Libretro = pathValue(key)
		case "libretro_directory":
			o.LibretroDirectory = pathValue(key)
		case "core":
			o.Core = stringValue(key)
		case "shader":
			o.Shader = pathValue(key)
		case "shader_directory":
			o.ShaderDirectory = pathValue(key)
		case "filter":
			o.Filter, err = listValue(key)
		case "retroarch_arguments":
			o.RetroarchArguments, err = listValue(key)
		case "strict":
			o.Strict, err = boolValue(key)
		case "which":
			o.Which, err = boolValue(key)
		case "which_command":
			o.WhichCommand, err = boolValue(key)
		case "list_cores":
			o.ListCores, err = boolValue(key)
		case "fullscreen":
			o.Fullscreen, err = boolValue(key)
		case "resolve":
			o.Resolve, err = boolValue(key)
		case "highlander":
			o.Highlander, err = boolValue(key)
		case "norun":
			o.NoRun, err = boolValue(key)
		case "nostdin":
			o.NoStdin, err = boolValue(key)
		default:
			log.Warn().Str("key", key.Name()).Msg("ignoring unknown option")
		}
		if err != nil {
			return Options{}, err
		}
	}
	return o, nil
}

func stringValue(key *ini.Key) *string {
	v := unquote(strings.TrimSpace(key.String()))
	if v == "" {
		return nil
	}
	return &v
}

// unquote removes one pair of matching quotes around a whole value. List
// options keep their quotes for word splitting.
func unquote(v string) string {
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		return v[1 : len(v)-1]
	}
	return v
}

func pathValue(key *ini.Key) *string {
	v := stringValue(key)
	if v == nil {
		return nil
	}
	return ptr(helpers.ExpandHome(*v))
}

// listValue splits a value into words the way a shell would, so quoted words
// may hold spaces.
func listValue(key *ini.Key) ([]string, error) {
	words, err := shellquote.Split(key.String())
	if err != nil {
		return nil, fmt.Errorf("%w: option %s: %w", ErrConfig, key.Name(), err)
	}
	if len(words) == 0 {
		return nil, nil
	}
	return words, nil
}

func boolValue(key *ini.Key) (*bool, error) {
	if strings.TrimSpace(key.String()) == "" {
		return nil, nil //nolint:nilnil // an empty value leaves the option unset
	}
	b, err := key.Bool()
	if err != nil {
		return nil, fmt.Errorf("%w: option %s: %w", ErrConfig, key.Name(), err)
	}
	return &b, nil
}
