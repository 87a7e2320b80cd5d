package engine

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync/atomic"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/nrow-engine/internal/apperror"
	"github.com/rocketscienceinc/nrow-engine/internal/entity"
)

const DefaultDepth = 1

// Stats counts search work. It is owned by the caller of a single top-level search
// and safe to share between the workers of that search. A nil *Stats records nothing.
type Stats struct {
	invocations atomic.Int64
}

func (that *Stats) record() {
	if that != nil {
		that.invocations.Add(1)
	}
}

// Invocations is the number of positions PredictedOutcome was asked to resolve.
func (that *Stats) Invocations() int64 {
	if that == nil {
		return 0
	}

	return that.invocations.Load()
}

func (that *Stats) Reset() {
	if that != nil {
		that.invocations.Store(0)
	}
}

// PredictedOutcome expands board depth plies beyond its successors and returns the
// continuation the player to move prefers: lowest score for X, highest for O, and
// among equal scores the one reached in the fewest moves. Finished boards and boards
// without successors are returned as they are.
func PredictedOutcome(board *entity.Board, depth int, stats *Stats) *entity.Board {
	stats.record()

	if board.IsTerminal() {
		return board
	}

	candidates := NextBoards(board)
	if len(candidates) == 0 {
		return board
	}

	continuations := candidates
	if depth > 0 {
		continuations = make([]*entity.Board, len(candidates))
		for i, candidate := range candidates {
			continuations[i] = PredictedOutcome(candidate, depth-1, stats)
		}
	}

	return selectContinuation(board.Turn(), continuations)
}

type continuation struct {
	board *entity.Board
	score int
}

// selectContinuation picks the first continuation that is best for mover.
func selectContinuation(mover entity.Mark, boards []*entity.Board) *entity.Board {
	scored := lo.Map(boards, func(board *entity.Board, _ int) continuation {
		return continuation{board: board, score: board.Score()}
	})

	best := slices.MinFunc(scored, func(a, b continuation) int {
		return compareContinuations(mover, a, b)
	})

	return best.board
}

// compareContinuations orders by score in mover's favour, then by fewest moves played.
func compareContinuations(mover entity.Mark, a, b continuation) int {
	byScore := cmp.Compare(a.score, b.score)
	if mover == entity.PlayerO {
		byScore = -byScore
	}

	if byScore != 0 {
		return byScore
	}

	return cmp.Compare(a.board.MovesPlayed(), b.board.MovesPlayed())
}

// Searcher runs PredictedOutcome from the root position, expanding the root
// candidates on up to workers goroutines.
type Searcher struct {
	depth   int
	workers int
}

func NewSearcher(depth, workers int) *Searcher {
	return &Searcher{
		depth:   max(depth, 0),
		workers: max(workers, 1),
	}
}

func (that *Searcher) Depth() int { return that.depth }

// PredictedOutcome selects the same continuation as the package-level PredictedOutcome.
// Cancelling ctx stops the expansion of root candidates that have not started yet.
func (that *Searcher) PredictedOutcome(ctx context.Context, board *entity.Board, stats *Stats) (*entity.Board, error) {
	if that.workers == 1 || that.depth == 0 {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("search cancelled: %w", err)
		}

		return PredictedOutcome(board, that.depth, stats), nil
	}

	stats.record()

	if board.IsTerminal() {
		return board, nil
	}

	candidates := NextBoards(board)
	if len(candidates) == 0 {
		return board, nil
	}

	continuations := make([]*entity.Board, len(candidates))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(that.workers)

	for i, candidate := range candidates {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			continuations[i] = PredictedOutcome(candidate, that.depth-1, stats)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("search cancelled: %w", err)
	}

	return selectContinuation(board.Turn(), continuations), nil
}

// MakeNextMove plays the first move of the predicted continuation on board and returns it.
func (that *Searcher) MakeNextMove(ctx context.Context, board *entity.Board, stats *Stats) (entity.Coord, error) {
	if board.IsTerminal() {
		return entity.Coord{}, apperror.ErrGameFinished
	}

	movesMade := board.MovesPlayed()

	outcome, err := that.PredictedOutcome(ctx, board, stats)
	if err != nil {
		return entity.Coord{}, err
	}

	if outcome.MovesPlayed() <= movesMade {
		return entity.Coord{}, apperror.ErrNoLegalMoves
	}

	next := outcome.MoveAt(movesMade)
	if err = board.ApplyMove(next); err != nil {
		return entity.Coord{}, fmt.Errorf("failed to apply predicted move %s: %w", next, err)
	}

	return next, nil
}

// MakeNextMove is a sequential two-ply search that plays its move on board.
func MakeNextMove(board *entity.Board) error {
	_, err := NewSearcher(DefaultDepth, 1).MakeNextMove(context.Background(), board, nil)

	return err
}
