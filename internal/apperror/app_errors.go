package apperror

import "errors"

var (
	ErrGameFinished   = errors.New("game is already finished")
	ErrCellOccupied   = errors.New("cell is already occupied")
	ErrInvalidCell    = errors.New("invalid cell index")
	ErrMoveOutOfRange = errors.New("move is out of history range")
)

// IsRejected reports whether err is a refused move. State is never changed by one.
func IsRejected(err error) bool {
	return errors.Is(err, ErrGameFinished) ||
		errors.Is(err, ErrCellOccupied) ||
		errors.Is(err, ErrInvalidCell)
}

func IsOutOfRange(err error) bool {
	return errors.Is(err, ErrMoveOutOfRange)
}
