package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/nrow-engine/internal/apperror"
	"github.com/rocketscienceinc/nrow-engine/internal/entity"
)

var ErrMoveLimitReached = errors.New("move limit reached")

type bot interface {
	MakeTurn(ctx context.Context, board *entity.Board) (entity.Coord, error)
}

type MatchManager struct {
	logger   *slog.Logger
	bot      bot
	maxMoves int
}

// NewMatchManager returns a manager that lets bot play both sides. maxMoves <= 0 means no limit.
func NewMatchManager(logger *slog.Logger, bot bot, maxMoves int) *MatchManager {
	return &MatchManager{
		logger: logger.With("component", "match"),

		bot:      bot,
		maxMoves: maxMoves,
	}
}

// Play applies the opening to board and then lets the bot move until the game is decided.
// It returns the winner, or PlayerTie for a draw.
func (that *MatchManager) Play(ctx context.Context, board *entity.Board, opening []entity.Coord) (entity.Mark, error) {
	for _, move := range opening {
		if err := board.ApplyMove(move); err != nil {
			return entity.NoResult, fmt.Errorf("failed apply opening move %s: %w", move, err)
		}
	}

	that.logger.Debug("opening applied", "moves", len(opening), "board", board.String())

	for !board.IsTerminal() {
		if that.maxMoves > 0 && board.MovesPlayed() >= that.maxMoves {
			return entity.NoResult, fmt.Errorf("%w: %d", ErrMoveLimitReached, that.maxMoves)
		}

		if err := ctx.Err(); err != nil {
			return entity.NoResult, fmt.Errorf("match interrupted: %w", err)
		}

		move, err := that.bot.MakeTurn(ctx, board)
		if errors.Is(err, apperror.ErrNoLegalMoves) {
			that.logger.Info("no legal moves left, calling it a draw", "moves", board.MovesPlayed())

			return entity.PlayerTie, nil
		}

		if err != nil {
			return entity.NoResult, fmt.Errorf("failed make turn: %w", err)
		}

		that.logger.Debug("turn played", "move", move.String(), "board", board.Describe())
	}

	winner := board.Winner()
	that.logger.Info("match finished",
		"winner", winner.String(),
		"moves", board.MovesPlayed(),
		"board", board.String(),
	)

	return winner, nil
}
