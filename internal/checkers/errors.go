package checkers

import "errors"

var (
	ErrOutOfRange      = errors.New("square out of range")
	ErrLightSquare     = errors.New("pieces can only stand on dark squares")
	ErrIllegalMove     = errors.New("illegal move")
	ErrGameOver        = errors.New("game is over")
	ErrNoPiece         = errors.New("no piece at move start")
	ErrInvalidNotation = errors.New("invalid square notation")
	ErrInvalidDiagram  = errors.New("invalid board diagram")
)
