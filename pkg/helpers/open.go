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
	"context"
	"fmt"
	"runtime"

	"github.com/ZaparooProject/enjoy/pkg/helpers/command"
)

// OpenWithDefault opens path with the desktop's default application. The
// opener is started and not waited on.
func OpenWithDefault(ctx context.Context, cmd command.Executor, path string) error {
	name, args := openerCommand(runtime.GOOS, path)
	if err := cmd.Start(ctx, name, args...); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	return nil
}

func openerCommand(goos, path string) (name string, args []string) {
	switch goos {
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", path}
	case "darwin":
		return "open", []string{path}
	default:
		return "xdg-open", []string{path}
	}
}
