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

package launcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

// ProcessFinder reports whether a process with a given executable name is
// running.
type ProcessFinder interface {
	Running(ctx context.Context, name string) (bool, error)
}

// SystemProcessFinder looks through the processes of the running system.
type SystemProcessFinder struct{}

func (SystemProcessFinder) Running(ctx context.Context, name string) (bool, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to list processes: %w", err)
	}

	want := processName(name)
	for _, p := range procs {
		n, err := p.NameWithContext(ctx)
		if err != nil {
			// processes can exit while being listed
			continue
		}
		if processName(n) == want {
			return true, nil
		}
	}
	return false, nil
}

// AlreadyRunning reports whether another instance of frontend is active.
func AlreadyRunning(ctx context.Context, finder ProcessFinder, frontend string) (bool, error) {
	if frontend == "" {
		return false, nil
	}
	return finder.Running(ctx, frontend)
}

func processName(name string) string {
	base := filepath.Base(name)
	return strings.ToLower(strings.TrimSuffix(strings.TrimSuffix(base, ".exe"), ".EXE"))
}
