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
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	g := New("/home/user/roms/snes/Super Mario World (U) [!].smc")

	assert.Equal(t, "/home/user/roms/snes", g.Dir)
	assert.Equal(t, ".smc", g.Ext)
	assert.Equal(t, "Super Mario World (U) [!]", g.Name)
	assert.Equal(t, g.Dir, g.Directory())
	assert.Equal(t, g.Ext, g.Extension())
}

func TestNew_NoExtension(t *testing.T) {
	t.Parallel()

	g := New("/roms/README")
	assert.Empty(t, g.Ext)
	assert.Equal(t, "README", g.Name)
}

func TestLocator_Locate(t *testing.T) {
	t.Parallel()

	root, err := filepath.Abs(filepath.Join(string(filepath.Separator), "roms"))
	require.NoError(t, err)
	gamePath := filepath.Join(root, "gb", "tetris.gb")

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(filepath.Dir(gamePath), 0o750))
	require.NoError(t, afero.WriteFile(fs, gamePath, []byte{}, 0o600))

	t.Run("existing_game", func(t *testing.T) {
		t.Parallel()

		g, err := NewLocator(fs, false).Locate(gamePath)
		require.NoError(t, err)
		assert.Equal(t, gamePath, g.Path)
		assert.Equal(t, ".gb", g.Ext)
	})

	t.Run("missing_game", func(t *testing.T) {
		t.Parallel()

		missing := filepath.Join(root, "gb", "missing.gb")
		_, err := NewLocator(fs, false).Locate(missing)

		var nf *NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, missing, nf.Path)
		assert.Contains(t, err.Error(), "missing.gb")
	})

	t.Run("links_kept_by_default", func(t *testing.T) {
		t.Parallel()

		l := NewLocator(fs, false)
		l.evalSymlinks = func(string) (string, error) {
			t.Fatal("symlinks must not be resolved")
			return "", nil
		}

		g, err := l.Locate(gamePath)
		require.NoError(t, err)
		assert.Equal(t, gamePath, g.Path)
	})

	t.Run("links_resolved_when_asked", func(t *testing.T) {
		t.Parallel()

		link := filepath.Join(root, "favourites", "tetris.gb")
		l := NewLocator(fs, true)
		l.evalSymlinks = func(p string) (string, error) {
			if p == link {
				return gamePath, nil
			}
			return "", os.ErrNotExist
		}

		g, err := l.Locate(link)
		require.NoError(t, err)
		assert.Equal(t, gamePath, g.Path)
		assert.Equal(t, filepath.Dir(gamePath), g.Dir)
	})

	t.Run("broken_link", func(t *testing.T) {
		t.Parallel()

		l := NewLocator(fs, true)
		l.evalSymlinks = func(string) (string, error) {
			return "", os.ErrNotExist
		}

		_, err := l.Locate(filepath.Join(root, "broken.gb"))
		var nf *NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})
}

func TestLocator_RealSymlink(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "real.gb")
	link := filepath.Join(dir, "link.gb")
	require.NoError(t, os.WriteFile(target, []byte{}, 0o600))
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	fs := afero.NewOsFs()

	g, err := NewLocator(fs, false).Locate(link)
	require.NoError(t, err)
	assert.Equal(t, link, g.Path)

	resolved, err := filepath.EvalSymlinks(target)
	require.NoError(t, err)
	g, err = NewLocator(fs, true).Locate(link)
	require.NoError(t, err)
	assert.Equal(t, resolved, g.Path)
}
