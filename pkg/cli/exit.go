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

package cli

import (
	"errors"

	"github.com/ZaparooProject/enjoy/pkg/launcher"
)

const (
	ExitOK      = 0
	ExitFailure = 1
	// ExitNotSpawned is used when the frontend could not be started, as a
	// shell does for commands it cannot find.
	ExitNotSpawned = 127
)

// ExitCode maps the error returned by the command to a process exit code. A
// frontend which ran and failed passes its own status through.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var fe *launcher.FrontendError
	if errors.As(err, &fe) {
		switch {
		case !fe.Spawned:
			return ExitNotSpawned
		case fe.ExitCode > 0:
			return fe.ExitCode
		}
	}
	return ExitFailure
}
