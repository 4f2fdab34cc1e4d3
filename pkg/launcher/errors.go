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
	"errors"
	"fmt"
)

// FrontendError is returned when the frontend could not be started or ran
// and reported a non-success status.
type FrontendError struct {
	Err      error
	Frontend string
	ExitCode int
	Spawned  bool
}

func (e *FrontendError) Error() string {
	switch {
	case !e.Spawned:
		return fmt.Sprintf("could not start frontend %q: %v", e.Frontend, e.Err)
	case e.ExitCode < 0:
		return fmt.Sprintf("frontend %q was terminated: %v", e.Frontend, e.Err)
	default:
		return fmt.Sprintf("frontend %q exited with status %d", e.Frontend, e.ExitCode)
	}
}

func (e *FrontendError) Unwrap() error {
	return e.Err
}

// ErrEmptyCommand is returned when Run is given no frontend.
var ErrEmptyCommand = errors.New("empty command line")

// exitCoder is implemented by *exec.ExitError.
type exitCoder interface {
	ExitCode() int
}

func newFrontendError(frontend string, err error) *FrontendError {
	var ec exitCoder
	if errors.As(err, &ec) {
		return &FrontendError{
			Frontend: frontend,
			Spawned:  true,
			ExitCode: ec.ExitCode(),
			Err:      err,
		}
	}
	return &FrontendError{
		Frontend: frontend,
		Err:      err,
	}
}
