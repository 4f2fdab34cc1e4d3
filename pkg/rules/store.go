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

// Package rules holds the core alias table, the extension and directory
// rules read from the user configuration and the resolver which turns a game
// into the libretro core that should play it.
package rules

import (
	"path/filepath"
	"slices"
	"strings"
)

// CoreAlias maps one or more user chosen names to a core reference. A
// reference is either a bare core name, expanded against the core directory,
// or a path which is used as is.
type CoreAlias struct {
	Names []string
	Ref   string
}

// ExtensionRule associates a set of dot-prefixed extensions with a core.
// Libretro always wins over Core when both are set.
type ExtensionRule struct {
	Section    string
	Extensions []string
	Libretro   string
	Core       string
}

// DirectoryRule associates a directory pattern with a core. The pattern may
// contain '*' and '?' wildcards.
type DirectoryRule struct {
	Section  string
	Pattern  string
	Libretro string
	Core     string
}

// Store is the ordered collection of all aliases and rules. Declaration order
// is kept for every kind and is the only tie-break when more than one rule of
// the same kind matches. A Store is filled once by the config loader and is
// read-only afterwards.
type Store struct {
	aliasRefs   map[string]string
	aliasNames  []string
	extensions  []ExtensionRule
	directories []DirectoryRule
}

func NewStore() *Store {
	return &Store{
		aliasRefs: make(map[string]string),
	}
}

// AddAlias registers every name in alias. Redefining a name replaces its
// reference but keeps the position of the first declaration. Empty names and
// empty references are ignored.
func (s *Store) AddAlias(alias CoreAlias) {
	if alias.Ref == "" {
		return
	}
	for _, name := range alias.Names {
		if name == "" {
			continue
		}
		if _, ok := s.aliasRefs[name]; !ok {
			s.aliasNames = append(s.aliasNames, name)
		}
		s.aliasRefs[name] = alias.Ref
	}
}

func (s *Store) AddExtensionRule(rule ExtensionRule) {
	rule.Extensions = slices.Clone(rule.Extensions)
	s.extensions = append(s.extensions, rule)
}

// AddDirectoryRule appends rule with its pattern normalized, so trailing
// separators never take part in matching.
func (s *Store) AddDirectoryRule(rule DirectoryRule) {
	rule.Pattern = TrimTrailingSeparators(rule.Pattern)
	s.directories = append(s.directories, rule)
}

// Alias returns the core reference registered for name.
func (s *Store) Alias(name string) (string, bool) {
	ref, ok := s.aliasRefs[name]
	return ref, ok
}

// AliasNames returns all alias names in declaration order.
func (s *Store) AliasNames() []string {
	return slices.Clone(s.aliasNames)
}

func (s *Store) ExtensionRules() []ExtensionRule {
	return slices.Clone(s.extensions)
}

func (s *Store) DirectoryRules() []DirectoryRule {
	return slices.Clone(s.directories)
}

// Empty reports whether the store has neither aliases nor rules.
func (s *Store) Empty() bool {
	return len(s.aliasNames) == 0 && len(s.extensions) == 0 && len(s.directories) == 0
}

// ParseExtensions splits an extension section name like ".smc .sfc" or
// ".md, .gen" into its extensions. Tokens without a leading dot are dropped.
func ParseExtensions(section string) []string {
	fields := strings.FieldsFunc(section, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	exts := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) > 1 && f[0] == '.' {
			exts = append(exts, f)
		}
	}
	return exts
}

// ParseAliasNames splits a [cores] key into its space separated names.
func ParseAliasNames(key string) []string {
	return strings.Fields(key)
}

// HasSeparator reports whether s contains a path separator.
func HasSeparator(s string) bool {
	return strings.ContainsRune(s, '/') || strings.ContainsRune(s, filepath.Separator)
}

// IsDirectorySection reports whether a section name describes a directory
// rule, meaning it contains a path separator.
func IsDirectorySection(name string) bool {
	return HasSeparator(name)
}

// IsExtensionSection reports whether a section name describes an extension
// rule. Directory sections take precedence, so "./roms" is a directory.
func IsExtensionSection(name string) bool {
	return strings.HasPrefix(name, ".") && !IsDirectorySection(name)
}

// TrimTrailingSeparators removes trailing path separators, leaving a lone
// root separator intact.
func TrimTrailingSeparators(p string) string {
	for len(p) > 1 && (p[len(p)-1] == '/' || p[len(p)-1] == filepath.Separator) {
		p = p[:len(p)-1]
	}
	return p
}
