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

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockCommandExecutor is a testify mock for command.Executor.
//
// Note that args are matched as a []string, not variadic:
//
//	cmd := &MockCommandExecutor{}
//	cmd.On("Run", mock.Anything, "retroarch", []string{"--libretro", "/cores/snes.so"}).Return(nil)
type MockCommandExecutor struct {
	mock.Mock
}

func (m *MockCommandExecutor) Run(ctx context.Context, name string, args ...string) error {
	called := m.Called(ctx, name, args)
	//nolint:wrapcheck // mock returns are passed through
	return called.Error(0)
}

func (m *MockCommandExecutor) Start(ctx context.Context, name string, args ...string) error {
	called := m.Called(ctx, name, args)
	//nolint:wrapcheck // mock returns are passed through
	return called.Error(0)
}

// MockProcessFinder is a testify mock for launcher.ProcessFinder.
type MockProcessFinder struct {
	mock.Mock
}

func (m *MockProcessFinder) Running(ctx context.Context, name string) (bool, error) {
	called := m.Called(ctx, name)
	//nolint:wrapcheck // mock returns are passed through
	return called.Bool(0), called.Error(1)
}
