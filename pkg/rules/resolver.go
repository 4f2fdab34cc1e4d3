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
	"fmt"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

// Source tells which step of the resolution produced a core.
type Source string

const (
	SourceLibretro  Source = "libretro"
	SourceAlias     Source = "alias"
	SourceDirectory Source = "directory"
	SourceExtension Source = "extension"
)

// Target is anything which can be matched against the rules. games.Game is
// the usual implementation.
type Target interface {
	Directory() string
	Extension() string
}

// Explicit holds a core chosen by the user, bypassing the rules. Libretro
// is a direct core reference and wins over Core, which is an alias name.
type Explicit struct {
	Libretro string
	Core     string
}

// Resolved is a successfully resolved core.
type Resolved struct {
	// Path is the expanded core path passed to the frontend.
	Path string
	// Ref is the core reference as written by the user.
	Ref string
	// Alias is the alias the reference came from, if any.
	Alias  string
	Source Source
	// Rule is the section name of the matching rule.
	Rule string
}

// Resolver turns games into core paths using a Store.
type Resolver struct {
	store   *Store
	coreDir string
	suffix  string
}

// NewResolver returns a resolver expanding bare core names against coreDir
// and appending suffix when it is missing.
func NewResolver(store *Store, coreDir, suffix string) *Resolver {
	if store == nil {
		store = NewStore()
	}
	return &Resolver{
		store:   store,
		coreDir: coreDir,
		suffix:  suffix,
	}
}

// DefaultCoreSuffix returns the file name ending of libretro cores on the
// running platform.
func DefaultCoreSuffix() string {
	switch runtime.GOOS {
	case "windows":
		return "_libretro.dll"
	case "darwin":
		return "_libretro.dylib"
	default:
		return "_libretro.so"
	}
}

// Resolve finds the core for target. The order is: explicit libretro,
// explicit alias, directory rules, extension rules. Within each kind the
// first matching rule in declaration order is used. A matching rule with
// neither libretro nor core set is skipped. When nothing matches the error
// wraps ErrNoCore.
func (r *Resolver) Resolve(target Target, explicit Explicit) (Resolved, error) {
	if explicit.Libretro != "" {
		return r.expand(Resolved{
			Ref:    explicit.Libretro,
			Source: SourceLibretro,
		})
	}

	if explicit.Core != "" {
		return r.fromAlias(explicit.Core, Resolved{Source: SourceAlias})
	}

	dir := TrimTrailingSeparators(target.Directory())
	for _, rule := range r.store.directories {
		if !Match(rule.Pattern, dir) {
			continue
		}
		log.Debug().
			Str("rule", rule.Section).
			Str("directory", dir).
			Msg("directory rule matched")

		res, ok, err := r.fromRule(rule.Libretro, rule.Core, SourceDirectory, rule.Section)
		if err != nil || ok {
			return res, err
		}
	}

	ext := target.Extension()
	for _, rule := range r.store.extensions {
		if ext == "" || !slices.Contains(rule.Extensions, ext) {
			continue
		}
		log.Debug().
			Str("rule", rule.Section).
			Str("extension", ext).
			Msg("extension rule matched")

		res, ok, err := r.fromRule(rule.Libretro, rule.Core, SourceExtension, rule.Section)
		if err != nil || ok {
			return res, err
		}
	}

	return Resolved{}, &ResolutionError{
		Extension: ext,
		Directory: dir,
	}
}

func (r *Resolver) fromRule(libretro, core string, source Source, section string) (Resolved, bool, error) {
	switch {
	case libretro != "":
		res, err := r.expand(Resolved{
			Ref:    libretro,
			Source: source,
			Rule:   section,
		})
		return res, true, err
	case core != "":
		res, err := r.fromAlias(core, Resolved{
			Source: source,
			Rule:   section,
		})
		return res, true, err
	default:
		return Resolved{}, false, nil
	}
}

func (r *Resolver) fromAlias(name string, res Resolved) (Resolved, error) {
	ref, ok := r.store.Alias(name)
	if !ok {
		return Resolved{}, &UnknownAliasError{
			Alias:       name,
			Rule:        res.Rule,
			Suggestions: SuggestAliases(name, r.store.aliasNames),
		}
	}
	res.Alias = name
	res.Ref = ref
	return r.expand(res)
}

func (r *Resolver) expand(res Resolved) (Resolved, error) {
	p, err := ExpandCore(res.Ref, r.coreDir, r.suffix)
	if err != nil {
		return Resolved{}, err
	}
	res.Path = p
	return res, nil
}

// AliasesFor returns the alias names, in declaration order, whose expanded
// core path equals corePath. Aliases which cannot be expanded are skipped.
func (r *Resolver) AliasesFor(corePath string) []string {
	var names []string
	for _, name := range r.store.aliasNames {
		p, err := ExpandCore(r.store.aliasRefs[name], r.coreDir, r.suffix)
		if err != nil {
			continue
		}
		if filepath.Clean(p) == filepath.Clean(corePath) {
			names = append(names, name)
		}
	}
	return names
}

// ExpandCore turns a core reference into a path. References containing a
// path separator are used verbatim. Bare names are joined with coreDir and
// get suffix appended unless they already end with it; a name ending in the
// suffix stem (e.g. "mesen_libretro") only gets the file extension.
func ExpandCore(ref, coreDir, suffix string) (string, error) {
	if ref == "" {
		return "", ErrEmptyCoreRef
	}
	if HasSeparator(ref) {
		return ref, nil
	}
	if coreDir == "" {
		return "", fmt.Errorf("%w: cannot locate core %q", ErrNoCoreDirectory, ref)
	}
	return filepath.Join(coreDir, withSuffix(ref, suffix)), nil
}

func withSuffix(name, suffix string) string {
	if suffix == "" || strings.HasSuffix(name, suffix) {
		return name
	}
	if i := strings.LastIndex(suffix, "."); i > 0 && strings.HasSuffix(name, suffix[:i]) {
		return name + suffix[i:]
	}
	return name + suffix
}
