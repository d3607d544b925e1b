package game

import "fmt"

const (
	Carrier    ShipClass = "CARRIER"
	Battleship ShipClass = "BATTLESHIP"
	Cruiser    ShipClass = "CRUISER"
	Destroyer1 ShipClass = "DESTROYER_1"
	Destroyer2 ShipClass = "DESTROYER_2"
)

// Fleet lists every class a player has to place, in placement order.
var Fleet = []ShipClass{Carrier, Battleship, Cruiser, Destroyer1, Destroyer2}

type ShipClass string

// Size returns the number of cells a ship of the class occupies, 0 for unknown classes.
func (c ShipClass) Size() int {
	switch c {
	case Carrier:
		return 5
	case Battleship:
		return 4
	case Cruiser:
		return 3
	case Destroyer1, Destroyer2:
		return 2
	default:
		return 0
	}
}

func (c ShipClass) IsValid() bool {
	return c.Size() > 0
}

type Position struct {
	Row    int
	Column int
}

// At converts a row letter ('A' is the first row) and a 1-based column into a Position.
// Characters that are not letters produce a position that is out of bounds.
func At(row rune, column int) Position {
	switch {
	case row >= 'A' && row <= 'Z':
		return Position{Row: int(row - 'A'), Column: column - 1}
	case row >= 'a' && row <= 'z':
		return Position{Row: int(row - 'a'), Column: column - 1}
	default:
		return Position{Row: -1, Column: column - 1}
	}
}

func (p Position) inBounds() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Column >= 0 && p.Column < BoardSize
}

// String returns the position in letter-number form, e.g. "A1".
func (p Position) String() string {
	if p.Row < 0 || p.Row >= 26 {
		return fmt.Sprintf("?%d", p.Column+1)
	}
	return fmt.Sprintf("%c%d", 'A'+rune(p.Row), p.Column+1)
}

type Ship struct {
	class ShipClass
	cells []Position
	hits  map[Position]bool
}

func newShip(class ShipClass, cells []Position) *Ship {
	return &Ship{
		class: class,
		cells: cells,
		hits:  make(map[Position]bool, len(cells)),
	}
}

func (s *Ship) Class() ShipClass {
	return s.class
}

// OccupiedCells returns a copy of the cells covered by the ship, starting at its anchor.
func (s *Ship) OccupiedCells() []Position {
	cells := make([]Position, len(s.cells))
	copy(cells, s.cells)
	return cells
}

func (s *Ship) Occupies(p Position) bool {
	for _, c := range s.cells {
		if c == p {
			return true
		}
	}
	return false
}

// RegisterHit marks p as hit. Positions the ship does not cover are ignored.
func (s *Ship) RegisterHit(p Position) {
	if s.Occupies(p) {
		s.hits[p] = true
	}
}

func (s *Ship) IsHit(p Position) bool {
	return s.hits[p]
}

// IsSunk returns true if every cell of the ship has been hit.
func (s *Ship) IsSunk() bool {
	return len(s.cells) > 0 && len(s.hits) == len(s.cells)
}
