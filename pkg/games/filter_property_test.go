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
	"strings"
	"testing"

	"pgregory.net/rapid"
)

// TestPropertyFilterSubset verifies the filter only ever removes candidates
// and keeps their order.
func TestPropertyFilterSubset(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		paths := rapid.SliceOf(rapid.StringMatching(`[A-Za-z ]{1,12}\.[a-z]{2,3}`)).Draw(t, "paths")
		terms := rapid.SliceOfN(rapid.StringMatching(`[A-Za-z*?]{0,4}`), 0, 3).Draw(t, "terms")
		strict := rapid.Bool().Draw(t, "strict")

		candidates := FromPaths(paths)
		kept := Filter(candidates, terms, strict)

		i := 0
		for _, k := range kept {
			for i < len(candidates) && candidates[i] != k {
				i++
			}
			if i == len(candidates) {
				t.Fatalf("kept %q is not an ordered subset of the input", k.Path)
			}
			i++
		}
	})
}

// TestPropertyFilterLowercaseSubstring verifies a plain lowercase term keeps
// exactly the names containing it in any case.
func TestPropertyFilterLowercaseSubstring(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		name := rapid.StringMatching(`[A-Za-z ]{1,20}`).Draw(t, "name")
		term := rapid.StringMatching(`[a-z]{1,3}`).Draw(t, "term")

		kept := Filter([]Game{New(name + ".gb")}, []string{term}, false)
		want := strings.Contains(strings.ToLower(name), term)
		if (len(kept) == 1) != want {
			t.Fatalf("term %q on %q: kept=%d want=%v", term, name, len(kept), want)
		}
	})
}

// TestPropertyFilterMoreTermsNeverKeepMore verifies adding a term can only
// shrink the result.
func TestPropertyFilterMoreTermsNeverKeepMore(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		paths := rapid.SliceOf(rapid.StringMatching(`[a-z ]{1,10}\.gb`)).Draw(t, "paths")
		first := rapid.StringMatching(`[a-z]{0,2}`).Draw(t, "first")
		second := rapid.StringMatching(`[a-z]{0,2}`).Draw(t, "second")

		candidates := FromPaths(paths)
		one := Filter(candidates, []string{first}, false)
		two := Filter(candidates, []string{first, second}, false)
		if len(two) > len(one) {
			t.Fatalf("two terms kept %d, one term kept %d", len(two), len(one))
		}
	})
}
