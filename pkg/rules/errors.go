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

package rules

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoCore is returned when neither an explicit core nor any rule
	// produced a core for a game.
	ErrNoCore = errors.New("no core associated")
	// ErrNoCoreDirectory is returned when a bare core name has to be
	// expanded but no core directory is configured.
	ErrNoCoreDirectory = errors.New("core directory not set")
	ErrEmptyCoreRef    = errors.New("empty core reference")
)

// ResolutionError reports the extension and directory that were searched
// without finding a core.
type ResolutionError struct {
	Extension string
	Directory string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf(
		"no core associated with extension %q or directory %q",
		e.Extension, e.Directory,
	)
}

func (*ResolutionError) Unwrap() error {
	return ErrNoCore
}

// UnknownAliasError is returned when an alias, given explicitly or referenced
// by a rule, has no entry in the [cores] table.
type UnknownAliasError struct {
	Alias       string
	Rule        string
	Suggestions []string
}

func (e *UnknownAliasError) Error() string {
	var sb strings.Builder
	_, _ = fmt.Fprintf(&sb, "unknown core alias %q", e.Alias)
	if e.Rule != "" {
		_, _ = fmt.Fprintf(&sb, " referenced by [%s]", e.Rule)
	}
	if len(e.Suggestions) > 0 {
		_, _ = fmt.Fprintf(&sb, ", did you mean %s?", quoteJoin(e.Suggestions))
	}
	return sb.String()
}

func quoteJoin(xs []string) string {
	quoted := make([]string, len(xs))
	for i, x := range xs {
		quoted[i] = fmt.Sprintf("%q", x)
	}
	return strings.Join(quoted, " or ")
}
