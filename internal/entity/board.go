package entity

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rocketscienceinc/nrow-engine/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	DefaultWidth         = 12
	DefaultHeight        = 12
	DefaultWinningLength = 5
)

// Mark is the content of a single cell, also used to name the players.
type Mark byte

const (
	EmptyCell Mark = '.'
	PlayerX   Mark = 'X'
	PlayerO   Mark = 'O'
	PlayerTie Mark = '-'

	// NoResult is what DetermineGameResult reports while the game continues.
	NoResult Mark = 0
)

func (that Mark) String() string {
	if that == NoResult {
		return ""
	}

	return string(rune(that))
}

// Opponent returns the other player. EmptyCell and PlayerTie have no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return that
	}
}

type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (that Coord) String() string {
	return fmt.Sprintf("(%d,%d)", that.X, that.Y)
}

// Board is a rectangular N-in-a-row grid together with its move history.
// The grid only changes through ApplyMove.
type Board struct {
	width         int
	height        int
	winningLength int

	grid    [][]Mark
	history []Coord
	turn    Mark

	status string
	winner Mark
}

// NewBoard creates an empty board. Zero arguments take the defaults (12x12, five in a row).
func NewBoard(width, height, winningLength int) (*Board, error) {
	width = withDefault(width, DefaultWidth)
	height = withDefault(height, DefaultHeight)
	winningLength = withDefault(winningLength, DefaultWinningLength)

	if width < 0 || height < 0 || winningLength < 0 {
		return nil, fmt.Errorf("%w: %dx%d, winning length %d",
			apperror.ErrInvalidConfiguration, width, height, winningLength)
	}

	if winningLength > max(width, height) {
		return nil, fmt.Errorf("%w: winning length %d does not fit a %dx%d board",
			apperror.ErrInvalidConfiguration, winningLength, width, height)
	}

	grid := make([][]Mark, height)
	for y := range grid {
		grid[y] = make([]Mark, width)
		for x := range grid[y] {
			grid[y][x] = EmptyCell
		}
	}

	return &Board{
		width:         width,
		height:        height,
		winningLength: winningLength,
		grid:          grid,
		history:       []Coord{},
		turn:          PlayerX,
		status:        StatusOngoing,
	}, nil
}

func withDefault(value, fallback int) int {
	if value == 0 {
		return fallback
	}

	return value
}

func (that *Board) Width() int         { return that.width }
func (that *Board) Height() int        { return that.height }
func (that *Board) WinningLength() int { return that.winningLength }

// Turn returns the player who moves next.
func (that *Board) Turn() Mark { return that.turn }

// PrevPlayer returns the player who made the last move.
func (that *Board) PrevPlayer() Mark { return that.turn.Opponent() }

func (that *Board) Status() string { return that.status }

// Winner is PlayerX, PlayerO or PlayerTie once the game is finished, NoResult before.
func (that *Board) Winner() Mark { return that.winner }

func (that *Board) IsTerminal() bool {
	return that.status == StatusFinished
}

func (that *Board) IsInBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < that.width && y < that.height
}

// At returns the mark at c. The coordinate must be in bounds.
func (that *Board) At(c Coord) Mark {
	return that.grid[c.Y][c.X]
}

func (that *Board) MovesPlayed() int {
	return len(that.history)
}

// MoveAt returns the i-th move of the game, counting from zero.
func (that *Board) MoveAt(i int) Coord {
	return that.history[i]
}

func (that *Board) History() []Coord {
	return slices.Clone(that.history)
}

func (that *Board) LastMove() (Coord, bool) {
	if len(that.history) == 0 {
		return Coord{}, false
	}

	return that.history[len(that.history)-1], true
}

// Clone returns a board that shares no storage with the receiver.
func (that *Board) Clone() *Board {
	clone := *that

	clone.grid = make([][]Mark, len(that.grid))
	for y, row := range that.grid {
		clone.grid[y] = slices.Clone(row)
	}
	clone.history = slices.Clone(that.history)

	return &clone
}

// ApplyMove places the mark of the player to move at c and passes the turn.
func (that *Board) ApplyMove(c Coord) error {
	if that.IsTerminal() {
		return apperror.ErrGameFinished
	}

	if !that.IsInBounds(c.X, c.Y) {
		return fmt.Errorf("%w: %s on a %dx%d board", apperror.ErrOutOfBounds, c, that.width, that.height)
	}

	if that.At(c) != EmptyCell {
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, c)
	}

	that.grid[c.Y][c.X] = that.turn
	that.turn = that.turn.Opponent()
	that.history = append(that.history, c)

	that.UpdateGameState()

	return nil
}

// WithMove is ApplyMove on a clone; the receiver is left untouched.
func (that *Board) WithMove(c Coord) (*Board, error) {
	next := that.Clone()
	if err := next.ApplyMove(c); err != nil {
		return nil, err
	}

	return next, nil
}

// DetermineGameResult reports the winner, PlayerTie for a full board, or NoResult.
func (that *Board) DetermineGameResult() Mark {
	switch that.Score() {
	case ScoreWinnerX:
		return PlayerX
	case ScoreWinnerO:
		return PlayerO
	}

	if that.isFull() {
		return PlayerTie
	}

	return NoResult
}

func (that *Board) UpdateGameState() {
	switch winner := that.DetermineGameResult(); winner {
	case NoResult:
		that.status = StatusOngoing
		that.winner = NoResult
	default:
		that.status = StatusFinished
		that.winner = winner
	}
}

func (that *Board) isFull() bool {
	for _, row := range that.grid {
		if slices.Contains(row, EmptyCell) {
			return false
		}
	}

	return true
}

// String dumps the grid, one row per line.
func (that *Board) String() string {
	rows := make([]string, len(that.grid))
	for y, row := range that.grid {
		rows[y] = string(row)
	}

	return strings.Join(rows, "\n")
}

// Describe is String with a header naming the last move.
func (that *Board) Describe() string {
	header := "***** new game *****"
	if last, ok := that.LastMove(); ok {
		header = fmt.Sprintf("***** %s played %s *****", that.PrevPlayer(), last)
	}

	return header + "\n" + that.String() + "\n"
}
