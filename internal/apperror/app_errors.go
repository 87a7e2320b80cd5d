package apperror

import "errors"

var (
	ErrInvalidConfiguration = errors.New("invalid board configuration")
	ErrOutOfBounds          = errors.New("coordinate is out of bounds")
	ErrCellOccupied         = errors.New("cell is already occupied")
	ErrGameFinished         = errors.New("game is already finished")
	ErrNoLegalMoves         = errors.New("no legal moves")
)
