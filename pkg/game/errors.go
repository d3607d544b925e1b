package game

import (
	"errors"
	"fmt"
)

var (
	ErrIllegalMode      = errors.New("operation not allowed in current mode")
	ErrOutOfBounds      = errors.New("position out of bounds")
	ErrInvalidPlacement = errors.New("invalid ship placement")
	ErrInvalidShot      = errors.New("invalid shot")
	ErrIllegalState     = errors.New("game is not over")

	// ErrNotYourTurn is returned when a player acts while the other one holds the turn.
	ErrNotYourTurn = fmt.Errorf("%w: not your turn", ErrIllegalMode)
)
