package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/nrow-engine/internal/engine"
	"github.com/rocketscienceinc/nrow-engine/internal/entity"
)

type BotService interface {
	MakeTurn(ctx context.Context, board *entity.Board) (entity.Coord, error)
}

type botService struct {
	logger   *slog.Logger
	searcher *engine.Searcher
}

func NewBotService(logger *slog.Logger, searcher *engine.Searcher) BotService {
	return &botService{
		logger:   logger.With("component", "bot"),
		searcher: searcher,
	}
}

// MakeTurn searches the position and plays the chosen move on board.
func (that *botService) MakeTurn(ctx context.Context, board *entity.Board) (entity.Coord, error) {
	var stats engine.Stats

	player := board.Turn()
	started := time.Now()

	move, err := that.searcher.MakeNextMove(ctx, board, &stats)
	if err != nil {
		return entity.Coord{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.logger.Debug("bot made turn",
		"player", player.String(),
		"move", move.String(),
		"score", board.Score(),
		"depth", that.searcher.Depth(),
		"invocations", stats.Invocations(),
		"elapsed", time.Since(started),
	)

	return move, nil
}
