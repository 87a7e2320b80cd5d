package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads every section", func(t *testing.T) {
		// Given: a complete config file
		path := writeConfig(t, `
log-level: debug
board:
  width: 9
  height: 7
  winning-length: 4
engine:
  depth: 2
  workers: 3
match:
  max-moves: 40
  opening:
    - {x: 4, y: 3}
    - {x: 5, y: 3}
`)

		// When: it is loaded
		conf, err := Load(path)

		// Then: all values are taken from the file
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, Board{Width: 9, Height: 7, WinningLength: 4}, conf.Board)
		assert.Equal(t, Engine{Depth: 2, Workers: 3}, conf.Engine)
		assert.Equal(t, 40, conf.Match.MaxMoves)
		assert.Equal(t, []Move{{X: 4, Y: 3}, {X: 5, Y: 3}}, conf.Match.Opening)
	})

	t.Run("Missing values take the defaults", func(t *testing.T) {
		// Given: an empty config file
		path := writeConfig(t, "log-level: info\n")

		// When: it is loaded
		conf, err := Load(path)

		// Then: the defaults are used
		require.NoError(t, err)
		assert.Equal(t, Board{Width: 12, Height: 12, WinningLength: 5}, conf.Board)
		assert.Equal(t, Engine{Depth: 1, Workers: 1}, conf.Engine)
		assert.Zero(t, conf.Match.MaxMoves)
		assert.Empty(t, conf.Match.Opening)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		// Given: a config file and an env override
		path := writeConfig(t, "board:\n  width: 9\n")
		t.Setenv("BOARD_WIDTH", "15")

		// When: it is loaded
		conf, err := Load(path)

		// Then: the environment wins
		require.NoError(t, err)
		assert.Equal(t, 15, conf.Board.Width)
	})

	t.Run("Missing file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))

		require.Error(t, err)
		assert.Panics(t, func() { MustLoad(filepath.Join(t.TempDir(), "absent.yml")) })
	})
}
