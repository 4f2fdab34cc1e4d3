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
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ZaparooProject/enjoy/pkg/config"
	"github.com/ZaparooProject/enjoy/pkg/games"
	"github.com/ZaparooProject/enjoy/pkg/launcher"
	"github.com/ZaparooProject/enjoy/pkg/rules"
	"github.com/ZaparooProject/enjoy/pkg/testing/helpers"
	"github.com/ZaparooProject/enjoy/pkg/testing/mocks"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testConfig = "/home/u/.config/enjoy/default.ini"

var testConfigLines = []string{
	"[options]",
	"libretro_directory = /cores",
	"",
	"[cores]",
	"snes super = snes9x",
	"md = genesis_plus_gx",
	"psx = mednafen_psx_hw",
	"",
	"[.smc .sfc]",
	"core = snes",
	"",
	"[.md]",
	"core = md",
	"",
	"[/roms/psx*]",
	"libretro = mednafen_psx_hw",
}

type testEnv struct {
	deps  Deps
	fs    *helpers.FSHelper
	exec  *mocks.MockCommandExecutor
	procs *mocks.MockProcessFinder
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	fs := helpers.NewMemoryFS()
	require.NoError(t, fs.CreateConfigFile(testConfig, testConfigLines...))
	_, err := fs.CreateGames("/roms/snes", "mario.smc", "zelda.smc", "Mario Kart (USA).sfc")
	require.NoError(t, err)
	_, err = fs.CreateGames("/roms/psx1", "ff7.cue")
	require.NoError(t, err)
	_, err = fs.CreateGames("/roms/md", "sonic.md")
	require.NoError(t, err)

	exec := &mocks.MockCommandExecutor{}
	procs := helpers.NewMockProcessFinder()

	return &testEnv{
		fs:    fs,
		exec:  exec,
		procs: procs,
		deps: Deps{
			Fs:              fs.Fs,
			Exec:            exec,
			Procs:           procs,
			Clock:           clockwork.NewFakeClock(),
			StdinIsTerminal: func() bool { return true },
			CoreSuffix:      "_libretro.so",
		},
	}
}

func (e *testEnv) execute(stdin string, args ...string) (stdout, stderr string, err error) {
	cmd := NewRootCmd(e.deps)
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"-c", testConfig}, args...))
	err = cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestRoot_Which(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
		args []string
	}{
		{
			name: "extension_rule",
			args: []string{"-w", "/roms/snes/mario.smc"},
			want: "/cores/snes9x_libretro.so\n",
		},
		{
			name: "directory_rule",
			args: []string{"-w", "/roms/psx1/ff7.cue"},
			want: "/cores/mednafen_psx_hw_libretro.so\n",
		},
		{
			name: "explicit_core",
			args: []string{"-w", "-C", "md", "/roms/snes/mario.smc"},
			want: "/cores/genesis_plus_gx_libretro.so\n",
		},
		{
			name: "explicit_libretro",
			args: []string{"-w", "-L", "/opt/bsnes_libretro.so", "/roms/snes/mario.smc"},
			want: "/opt/bsnes_libretro.so\n",
		},
		{
			name: "libretro_directory_flag",
			args: []string{"-w", "-D", "/other", "/roms/md/sonic.md"},
			want: "/other/genesis_plus_gx_libretro.so\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv(t)
			out, _, err := env.execute("", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
			env.exec.AssertNotCalled(t, "Run", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestRoot_WhichCommandHasPriority(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	out, _, err := env.execute("",
		"-w", "-W", "-F", "--shader", "crt.slangp", "--shader-directory", "/shaders",
		"/roms/snes/Mario Kart (USA).sfc", "--", "--verbose", "--set-shader", "")
	require.NoError(t, err)
	assert.Equal(t,
		"retroarch --libretro /cores/snes9x_libretro.so --fullscreen --set-shader /shaders/crt.slangp "+
			"'/roms/snes/Mario Kart (USA).sfc' --verbose --set-shader ''\n",
		out)
}

func TestRoot_RunsFrontend(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.exec.On("Run", mock.Anything, "/usr/bin/retroarch", []string{
		"--libretro", "/cores/snes9x_libretro.so",
		"--config", "/home/u/ra.cfg",
		"/roms/snes/mario.smc",
		"--verbose",
	}).Return(nil).Once()

	out, _, err := env.execute("",
		"-A", "/usr/bin/retroarch", "-B", "/home/u/ra.cfg", "/roms/snes/mario.smc", "--", "--verbose")
	require.NoError(t, err)
	assert.Empty(t, out)
	env.exec.AssertExpectations(t)
}

func TestRoot_ForwardsEmptyArgument(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.exec.On("Run", mock.Anything, "retroarch", []string{
		"--libretro", "/cores/snes9x_libretro.so",
		"/roms/snes/mario.smc",
		"--set-shader", "",
	}).Return(nil).Once()

	_, _, err := env.execute("", "/roms/snes/mario.smc", "--", "--set-shader", "")
	require.NoError(t, err)
	env.exec.AssertExpectations(t)
}

type exitStatus int

func (e exitStatus) Error() string { return "exit status" }

func (e exitStatus) ExitCode() int { return int(e) }

func TestRoot_FrontendFailure(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.exec.On("Run", mock.Anything, "retroarch", mock.Anything).Return(exitStatus(4)).Once()

	_, _, err := env.execute("", "/roms/snes/mario.smc")
	var fe *launcher.FrontendError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 4, ExitCode(err))
}

func TestRoot_GameNotFound(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	_, _, err := env.execute("", "/roms/snes/missing.smc")

	var nf *games.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "/roms/snes/missing.smc", nf.Path)
	assert.Equal(t, ExitFailure, ExitCode(err))
	env.exec.AssertNotCalled(t, "Run", mock.Anything, mock.Anything, mock.Anything)
}

func TestRoot_NoRunContinuesWithoutGame(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	out, _, err := env.execute("", "-x", "-n", "/roms/snes/missing.smc")

	var nf *games.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "snes\nsuper\n", out)
	env.exec.AssertNotCalled(t, "Run", mock.Anything, mock.Anything, mock.Anything)
}

func TestRoot_NoRun(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	out, _, err := env.execute("", "-x", "/roms/snes/mario.smc")
	require.NoError(t, err)
	assert.Empty(t, out)
	env.exec.AssertNotCalled(t, "Run", mock.Anything, mock.Anything, mock.Anything)
}

func TestRoot_ListCores(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	out, _, err := env.execute("", "-n")
	require.NoError(t, err)
	assert.Equal(t, "snes\nsuper\nmd\npsx\n", out)

	out, _, err = env.execute("", "-n", "/roms/psx1/ff7.cue")
	require.NoError(t, err)
	assert.Equal(t, "psx\n", out)
}

func TestRoot_Stdin(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.deps.StdinIsTerminal = func() bool { return false }

	stdin := "/roms/snes/mario.smc\n\n/roms/snes/zelda.smc\n/roms/md/sonic.md\n"

	out, _, err := env.execute(stdin, "-W", "-f", "ZEL")
	require.NoError(t, err)
	assert.Equal(t, "retroarch --libretro /cores/snes9x_libretro.so /roms/snes/zelda.smc\n", out)

	out, _, err = env.execute(stdin, "-W", "-s", "-f", "son?c")
	require.NoError(t, err)
	assert.Equal(t, "retroarch --libretro /cores/genesis_plus_gx_libretro.so /roms/md/sonic.md\n", out)

	_, _, err = env.execute(stdin, "-W", "-s", "-f", "ZEL")
	require.ErrorIs(t, err, games.ErrNoGame)
}

func TestRoot_StdinIgnored(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.deps.StdinIsTerminal = func() bool { return false }
	_, _, err := env.execute("/roms/snes/mario.smc\n", "-w", "-z")
	require.ErrorIs(t, err, games.ErrNoGame)

	env.deps.StdinIsTerminal = func() bool { return true }
	_, _, err = env.execute("/roms/snes/mario.smc\n", "-w")
	require.ErrorIs(t, err, games.ErrNoGame)
}

func TestRoot_CandidatesMerge(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.deps.StdinIsTerminal = func() bool { return false }
	withGame := "/home/u/.config/enjoy/game.ini"
	require.NoError(t, env.fs.CreateConfigFile(withGame,
		append([]string{"[options]", "game = /roms/psx1/ff7.cue"}, testConfigLines[1:]...)...))

	tests := []struct {
		name  string
		stdin string
		want  string
		args  []string
	}{
		{
			name:  "commandline_first",
			stdin: "/roms/md/sonic.md\n",
			args:  []string{"-w", "/roms/snes/zelda.smc"},
			want:  "/cores/snes9x_libretro.so\n",
		},
		{
			name:  "filter_picks_stdin_game",
			stdin: "/roms/md/sonic.md\n",
			args:  []string{"-w", "-f", "sonic", "/roms/snes/zelda.smc"},
			want:  "/cores/genesis_plus_gx_libretro.so\n",
		},
		{
			name:  "filter_picks_config_game",
			stdin: "/roms/md/sonic.md\n",
			args:  []string{"-c", withGame, "-w", "-f", "ff7", "/roms/snes/zelda.smc"},
			want:  "/cores/mednafen_psx_hw_libretro.so\n",
		},
		{
			name: "config_game_alone",
			args: []string{"-c", withGame, "-w"},
			want: "/cores/mednafen_psx_hw_libretro.so\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, _, err := env.execute(tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRoot_Highlander(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.procs.ExpectedCalls = nil
	env.procs.On("Running", mock.Anything, "retroarch").Return(true, nil).Once()

	_, stderr, err := env.execute("", "-1", "/roms/snes/mario.smc")
	require.NoError(t, err)
	assert.Contains(t, stderr, HighlanderNotice)
	env.exec.AssertNotCalled(t, "Run", mock.Anything, mock.Anything, mock.Anything)
	env.procs.AssertExpectations(t)
}

func TestRoot_HighlanderNotRunning(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.exec.On("Run", mock.Anything, "retroarch", mock.Anything).Return(nil).Once()

	_, _, err := env.execute("", "--highlander", "/roms/snes/mario.smc")
	require.NoError(t, err)
	env.exec.AssertExpectations(t)
}

func TestRoot_Errors(t *testing.T) {
	t.Parallel()

	t.Run("unknown_alias", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		_, _, err := env.execute("", "-w", "-C", "snez", "/roms/snes/mario.smc")
		var ua *rules.UnknownAliasError
		require.ErrorAs(t, err, &ua)
		assert.Contains(t, ua.Suggestions, "snes")
	})

	t.Run("no_rule", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		require.NoError(t, env.fs.WriteFile("/roms/gb/tetris.gb", ""))
		_, _, err := env.execute("", "-w", "/roms/gb/tetris.gb")
		require.ErrorIs(t, err, rules.ErrNoCore)
		assert.Contains(t, err.Error(), ".gb")
	})

	t.Run("no_game", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		_, _, err := env.execute("", "-w")
		require.ErrorIs(t, err, games.ErrNoGame)
	})

	t.Run("missing_explicit_config", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		_, _, err := env.execute("", "-c", "/nope.ini", "-w", "/roms/snes/mario.smc")
		require.ErrorIs(t, err, config.ErrConfig)
	})

	t.Run("libretro_conflicts_with_core", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		_, _, err := env.execute("", "-L", "snes9x", "-C", "snes", "/roms/snes/mario.smc")
		require.Error(t, err)
	})
}

func TestRoot_NoConfig(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	cmd := NewRootCmd(env.deps)
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(""))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"-i", "-w", "-D", "/cores", "-L", "snes9x", "/roms/snes/mario.smc"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "/cores/snes9x_libretro.so\n", out.String())
}

func TestRoot_ConfigPath(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	out, _, err := env.execute("", "-o")
	require.NoError(t, err)
	assert.Equal(t, testConfig+"\n", out)
}

func TestRoot_OpenConfig(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.exec.On("Start", mock.Anything, mock.AnythingOfType("string"), mock.MatchedBy(func(args []string) bool {
		return len(args) > 0 && args[len(args)-1] == testConfig
	})).Return(nil).Once()

	_, _, err := env.execute("", "-O")
	require.NoError(t, err)
	env.exec.AssertExpectations(t)
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ExitOK, ExitCode(nil))
	assert.Equal(t, ExitFailure, ExitCode(errors.New("boom")))
	assert.Equal(t, ExitFailure, ExitCode(games.ErrNoGame))
	assert.Equal(t, ExitNotSpawned, ExitCode(&launcher.FrontendError{Frontend: "retroarch"}))
	assert.Equal(t, 3, ExitCode(&launcher.FrontendError{Spawned: true, ExitCode: 3}))
	assert.Equal(t, ExitFailure, ExitCode(&launcher.FrontendError{Spawned: true, ExitCode: -1}))
}

func TestSplitArgs(t *testing.T) {
	t.Parallel()

	g, fwd := splitArgs([]string{"a.smc", "b.smc"}, -1)
	assert.Equal(t, []string{"a.smc", "b.smc"}, g)
	assert.Nil(t, fwd)

	g, fwd = splitArgs([]string{"a.smc", "--verbose"}, 1)
	assert.Equal(t, []string{"a.smc"}, g)
	assert.Equal(t, []string{"--verbose"}, fwd)

	g, fwd = splitArgs([]string{"a.smc"}, 1)
	assert.Equal(t, []string{"a.smc"}, g)
	assert.Equal(t, []string{}, fwd)
}

func TestReadGames(t *testing.T) {
	t.Parallel()

	got, err := readGames(strings.NewReader("  /a.smc \n\n\t\n/b.smc"))
	require.NoError(t, err)
	assert.Equal(t, []string{"/a.smc", "/b.smc"}, got)

	got, err = readGames(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}
