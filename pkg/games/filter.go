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
	"github.com/ZaparooProject/enjoy/pkg/rules"
	"golang.org/x/text/cases"
)

// Filter keeps the candidates whose name matches every term. In strict mode
// each term is a case-sensitive wildcard pattern matched against the whole
// name. Otherwise matching ignores case and a term without wildcards matches
// anywhere in the name. An empty result is not an error.
func Filter(candidates []Game, terms []string, strict bool) []Game {
	if len(terms) == 0 {
		return candidates
	}

	fold := cases.Fold()
	patterns := compileTerms(terms, strict, fold)

	kept := make([]Game, 0, len(candidates))
	for _, g := range candidates {
		name := g.Name
		if !strict {
			name = fold.String(name)
		}
		if matchAll(patterns, name) {
			kept = append(kept, g)
		}
	}
	return kept
}

// Select returns the first candidate surviving the filters.
func Select(candidates []Game, terms []string, strict bool) (Game, error) {
	kept := Filter(candidates, terms, strict)
	if len(kept) == 0 {
		return Game{}, ErrNoGame
	}
	return kept[0], nil
}

func compileTerms(terms []string, strict bool, fold cases.Caser) []string {
	patterns := make([]string, len(terms))
	for i, term := range terms {
		switch {
		case strict:
			patterns[i] = term
		case rules.HasWildcard(term):
			patterns[i] = fold.String(term)
		default:
			patterns[i] = "*" + fold.String(term) + "*"
		}
	}
	return patterns
}

func matchAll(patterns []string, name string) bool {
	for _, p := range patterns {
		if !rules.Match(p, name) {
			return false
		}
	}
	return true
}
