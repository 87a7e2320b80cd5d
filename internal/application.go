package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/lo"

	"github.com/rocketscienceinc/nrow-engine/internal/config"
	"github.com/rocketscienceinc/nrow-engine/internal/engine"
	"github.com/rocketscienceinc/nrow-engine/internal/entity"
	"github.com/rocketscienceinc/nrow-engine/internal/service"
	"github.com/rocketscienceinc/nrow-engine/internal/usecase"
)

// RunApp - plays one engine-versus-engine match on the configured board.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	board, err := entity.NewBoard(conf.Board.Width, conf.Board.Height, conf.Board.WinningLength)
	if err != nil {
		return fmt.Errorf("could not create board: %w", err)
	}

	searcher := engine.NewSearcher(conf.Engine.Depth, conf.Engine.Workers)
	bot := service.NewBotService(logger, searcher)
	manager := usecase.NewMatchManager(logger, bot, conf.Match.MaxMoves)

	opening := lo.Map(conf.Match.Opening, func(move config.Move, _ int) entity.Coord {
		return entity.Coord{X: move.X, Y: move.Y}
	})

	log.Info("Starting match",
		"width", board.Width(),
		"height", board.Height(),
		"winning_length", board.WinningLength(),
		"depth", conf.Engine.Depth,
		"workers", conf.Engine.Workers,
	)

	winner, err := manager.Play(ctx, board, opening)
	if err != nil {
		return fmt.Errorf("match failed: %w", err)
	}

	log.Info("Match over", "result", winner.String())

	return nil
}
