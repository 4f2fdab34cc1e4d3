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
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertValidCommand checks the fixed head of a frontend command line:
// frontend, --libretro and a core path, followed by at least the game.
func AssertValidCommand(t *testing.T, argv []string) {
	t.Helper()

	require.GreaterOrEqual(t, len(argv), 4, "command line too short: %v", argv)
	require.NotEmpty(t, argv[0], "frontend is required")
	require.Equal(t, "--libretro", argv[1], "core flag must follow the frontend")
	require.NotEmpty(t, argv[2], "core path is required")
}
