package engine

import (
	"github.com/samber/lo"

	"github.com/rocketscienceinc/nrow-engine/internal/entity"
)

// NextMoves lists the empty cells touching at least one stone, in board scan order.
// On an empty board the only candidate is the centre.
func NextMoves(board *entity.Board) []entity.Coord {
	var adjacent []entity.Coord

	for y := range board.Height() {
		for x := range board.Width() {
			if board.At(entity.Coord{X: x, Y: y}) == entity.EmptyCell {
				continue
			}

			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					adjacent = append(adjacent, entity.Coord{X: x + dx, Y: y + dy})
				}
			}
		}
	}

	if len(adjacent) == 0 {
		adjacent = append(adjacent, entity.Coord{X: board.Width() / 2, Y: board.Height() / 2})
	}

	return lo.Filter(lo.Uniq(adjacent), func(c entity.Coord, _ int) bool {
		return board.IsInBounds(c.X, c.Y) && board.At(c) == entity.EmptyCell
	})
}

// NextBoards returns one independent successor per candidate move. A finished game has none.
func NextBoards(board *entity.Board) []*entity.Board {
	if board.IsTerminal() {
		return nil
	}

	moves := NextMoves(board)
	boards := make([]*entity.Board, 0, len(moves))

	for _, move := range moves {
		next, err := board.WithMove(move)
		if err != nil {
			// unreachable: candidates are empty, in-bounds cells
			continue
		}
		boards = append(boards, next)
	}

	return boards
}
