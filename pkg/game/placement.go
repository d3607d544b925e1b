package game

import (
	"errors"
	"fmt"
)

const BoardSize = 10

const (
	// North places a ship horizontally, towards higher columns.
	North Direction = "NORTH"
	// South places a ship vertically, towards higher rows.
	South Direction = "SOUTH"
	// NW places a ship diagonally upwards, towards the top-left corner.
	NW Direction = "NW"
	// SW places a ship diagonally downwards, towards the bottom-left corner.
	SW Direction = "SW"
)

type Direction string

func (d Direction) step() (row, column int, ok bool) {
	switch d {
	case North:
		return 0, 1, true
	case South:
		return 1, 0, true
	case NW:
		return -1, -1, true
	case SW:
		return 1, -1, true
	default:
		return 0, 0, false
	}
}

//ComputeCells returns the positions a ship of the given length covers when anchored at
//anchor and laid out along direction. The anchor is always the first position. If any of
//the positions is outside the board an error wrapping ErrOutOfBounds is returned.
func ComputeCells(anchor Position, length int, direction Direction) ([]Position, error) {
	dRow, dColumn, ok := direction.step()
	if !ok {
		return nil, fmt.Errorf("%w: unknown positioning direction %q", ErrInvalidPlacement, direction)
	}
	if length <= 0 {
		return nil, fmt.Errorf("%w: ship length %d", ErrInvalidPlacement, length)
	}

	return fill(anchor, length, func(p Position, i int) Position {
		return Position{
			Row:    p.Row + dRow*i,
			Column: p.Column + dColumn*i,
		}
	})
}

func fill(start Position, size int, next func(Position, int) Position) ([]Position, error) {
	positions := make([]Position, 0, size)
	for i := 0; i < size; i++ {
		p := next(start, i)
		if !p.inBounds() {
			return nil, fmt.Errorf("%w: ship goes out of bounds at %s", ErrOutOfBounds, p)
		}
		positions = append(positions, p)
	}
	return positions, nil
}

// ValidatePlacement reports whether class can be placed on b at anchor along direction.
func ValidatePlacement(b *Board, class ShipClass, anchor Position, direction Direction) bool {
	_, err := checkPlacement(b, class, anchor, direction)
	return err == nil
}

func checkPlacement(b *Board, class ShipClass, anchor Position, direction Direction) ([]Position, error) {
	if !class.IsValid() {
		return nil, fmt.Errorf("%w: unknown ship class %q", ErrInvalidPlacement, class)
	}
	if b.HasShip(class) {
		return nil, fmt.Errorf("%w: %s already placed", ErrInvalidPlacement, class)
	}

	cells, err := ComputeCells(anchor, class.Size(), direction)
	if err != nil {
		if errors.Is(err, ErrOutOfBounds) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidPlacement, err)
		}
		return nil, err
	}

	for _, p := range cells {
		if other := b.ShipAt(p); other != nil {
			return nil, fmt.Errorf("%w: %s overlaps %s at %s", ErrInvalidPlacement, class, other.Class(), p)
		}
	}
	return cells, nil
}
