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
	"sort"

	"github.com/hbollon/go-edlib"
)

const (
	suggestMinSimilarity = 0.8
	suggestMax           = 3
)

type suggestion struct {
	name       string
	similarity float32
}

// SuggestAliases returns up to three known alias names that look like a
// mistyped version of name, best match first.
func SuggestAliases(name string, known []string) []string {
	var found []suggestion
	for _, k := range known {
		if k == name {
			continue
		}
		sim := edlib.JaroWinklerSimilarity(name, k)
		if sim >= suggestMinSimilarity {
			found = append(found, suggestion{name: k, similarity: sim})
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].similarity > found[j].similarity
	})

	if len(found) > suggestMax {
		found = found[:suggestMax]
	}

	names := make([]string, len(found))
	for i, f := range found {
		names[i] = f.name
	}
	return names
}
