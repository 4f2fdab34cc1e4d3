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
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/ZaparooProject/enjoy/pkg/helpers"
	"github.com/go-playground/validator/v10"
)

// DefaultFrontend is the frontend executable used when none is configured.
const DefaultFrontend = "retroarch"

// Options is one layer of settings. A nil field or nil list is unset and
// leaves the value of a lower layer in place when merged.
type Options struct {
	Game               *string
	Retroarch          *string
	RetroarchConfig    *string
	Libretro           *string
	LibretroDirectory  *string
	Core               *string
	Shader             *string
	ShaderDirectory    *string
	Strict             *bool
	Which              *bool
	WhichCommand       *bool
	ListCores          *bool
	Fullscreen         *bool
	Resolve            *bool
	Highlander         *bool
	NoRun              *bool
	NoStdin            *bool
	Filter             []string
	RetroarchArguments []string
}

// Defaults is the bottom layer every invocation starts from.
func Defaults() Options {
	return Options{
		Retroarch: ptr(DefaultFrontend),
	}
}

// Merge returns o with every value set in over replacing its own.
//
//nolint:gocritic // layers are small and passed by value to stay immutable
func (o Options) Merge(over Options) Options {
	merged := o
	mergePtr(&merged.Game, over.Game)
	mergePtr(&merged.Retroarch, over.Retroarch)
	mergePtr(&merged.RetroarchConfig, over.RetroarchConfig)
	mergePtr(&merged.Libretro, over.Libretro)
	mergePtr(&merged.LibretroDirectory, over.LibretroDirectory)
	mergePtr(&merged.Core, over.Core)
	mergePtr(&merged.Shader, over.Shader)
	mergePtr(&merged.ShaderDirectory, over.ShaderDirectory)
	mergePtr(&merged.Strict, over.Strict)
	mergePtr(&merged.Which, over.Which)
	mergePtr(&merged.WhichCommand, over.WhichCommand)
	mergePtr(&merged.ListCores, over.ListCores)
	mergePtr(&merged.Fullscreen, over.Fullscreen)
	mergePtr(&merged.Resolve, over.Resolve)
	mergePtr(&merged.Highlander, over.Highlander)
	mergePtr(&merged.NoRun, over.NoRun)
	mergePtr(&merged.NoStdin, over.NoStdin)
	if over.Filter != nil {
		merged.Filter = slices.Clone(over.Filter)
	}
	if over.RetroarchArguments != nil {
		merged.RetroarchArguments = slices.Clone(over.RetroarchArguments)
	}
	return merged
}

// ExpandPaths returns o with a leading tilde expanded in every path option.
//
//nolint:gocritic // see Merge
func (o Options) ExpandPaths() Options {
	for _, p := range []**string{
		&o.Game, &o.Retroarch, &o.RetroarchConfig, &o.Libretro,
		&o.LibretroDirectory, &o.Shader, &o.ShaderDirectory,
	} {
		if *p != nil {
			*p = ptr(helpers.ExpandHome(**p))
		}
	}
	return o
}

// Settings are the final values of a merged Options stack.
type Settings struct {
	Game               string
	Retroarch          string `validate:"required"`
	RetroarchConfig    string
	Libretro           string
	LibretroDirectory  string
	Core               string
	Shader             string
	ShaderDirectory    string
	Filter             []string `validate:"dive,required"`
	RetroarchArguments []string
	Strict             bool
	Which              bool
	WhichCommand       bool
	ListCores          bool
	Fullscreen         bool
	Resolve            bool
	Highlander         bool
	NoRun              bool
	NoStdin            bool
}

// Settings flattens the layer, unset values become their zero value.
//
//nolint:gocritic // see Merge
func (o Options) Settings() Settings {
	return Settings{
		Game:               deref(o.Game),
		Retroarch:          deref(o.Retroarch),
		RetroarchConfig:    deref(o.RetroarchConfig),
		Libretro:           deref(o.Libretro),
		LibretroDirectory:  deref(o.LibretroDirectory),
		Core:               deref(o.Core),
		Shader:             deref(o.Shader),
		ShaderDirectory:    deref(o.ShaderDirectory),
		Filter:             slices.Clone(o.Filter),
		RetroarchArguments: slices.Clone(o.RetroarchArguments),
		Strict:             deref(o.Strict),
		Which:              deref(o.Which),
		WhichCommand:       deref(o.WhichCommand),
		ListCores:          deref(o.ListCores),
		Fullscreen:         deref(o.Fullscreen),
		Resolve:            deref(o.Resolve),
		Highlander:         deref(o.Highlander),
		NoRun:              deref(o.NoRun),
		NoStdin:            deref(o.NoStdin),
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the merged settings before anything is resolved.
//
//nolint:gocritic // see Merge
func (s Settings) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Errorf("%w: invalid option %s (%s)", ErrConfig, optionName(verrs[0].Field()), verrs[0].Tag())
	}
	return fmt.Errorf("%w: %w", ErrConfig, err)
}

// optionName maps a Settings field, or element of one, back to its config
// key.
func optionName(field string) string {
	if i := strings.IndexByte(field, '['); i >= 0 {
		field = field[:i]
	}
	switch field {
	case "Retroarch":
		return "retroarch"
	case "Filter":
		return "filter"
	default:
		return field
	}
}

func mergePtr[T any](dst **T, src *T) {
	if src != nil {
		v := *src
		*dst = &v
	}
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func ptr[T any](v T) *T {
	return &v
}
