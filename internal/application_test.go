package application

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/nrow-engine/internal/apperror"
	"github.com/rocketscienceinc/nrow-engine/internal/config"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestRunApp(t *testing.T) {
	t.Run("Plays a small match to the end", func(t *testing.T) {
		// Given: a 4x4 board with an opening
		conf := &config.Config{
			Board:  config.Board{Width: 4, Height: 4, WinningLength: 3},
			Engine: config.Engine{Depth: 1, Workers: 2},
			Match:  config.Match{Opening: []config.Move{{X: 1, Y: 1}, {X: 2, Y: 2}}},
		}

		// When / Then: the match completes without error
		require.NoError(t, RunApp(newTestLogger(), conf))
	})

	t.Run("Invalid board is reported", func(t *testing.T) {
		conf := &config.Config{
			Board: config.Board{Width: 3, Height: 3, WinningLength: 4},
		}

		err := RunApp(newTestLogger(), conf)

		require.ErrorIs(t, err, apperror.ErrInvalidConfiguration)
	})
}
