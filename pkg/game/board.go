package game

const (
	Hit   = 'x'
	Miss  = 'o'
	Taken = 's'
	Empty = '-'
)

type Board struct {
	ships         []*Ship
	shotsReceived map[Position]bool
}

//InitBoard returns a board without ships and without received shots.
func InitBoard() *Board {
	return &Board{
		shotsReceived: make(map[Position]bool),
	}
}

//PlaceShip adds a ship of the given class at anchor along direction. If the ship would go
//out of bounds, overlap another ship, or its class is already on the board an error is
//returned and the board is left unchanged.
func (b *Board) PlaceShip(class ShipClass, anchor Position, direction Direction) (*Ship, error) {
	cells, err := checkPlacement(b, class, anchor, direction)
	if err != nil {
		return nil, err
	}

	ship := newShip(class, cells)
	b.ships = append(b.ships, ship)
	return ship, nil
}

// Ships returns the placed ships in placement order.
func (b *Board) Ships() []*Ship {
	ships := make([]*Ship, len(b.ships))
	copy(ships, b.ships)
	return ships
}

func (b *Board) Ship(class ShipClass) (*Ship, bool) {
	for _, s := range b.ships {
		if s.class == class {
			return s, true
		}
	}
	return nil, false
}

func (b *Board) HasShip(class ShipClass) bool {
	_, ok := b.Ship(class)
	return ok
}

// ShipAt returns the ship covering p or nil.
func (b *Board) ShipAt(p Position) *Ship {
	for _, s := range b.ships {
		if s.Occupies(p) {
			return s
		}
	}
	return nil
}

func (b *Board) ShipCount() int {
	return len(b.ships)
}

func (b *Board) WasShot(p Position) bool {
	return b.shotsReceived[p]
}

// SunkCount returns how many of the placed ships are sunk.
func (b *Board) SunkCount() int {
	count := 0
	for _, s := range b.ships {
		if s.IsSunk() {
			count++
		}
	}
	return count
}

//IsBeaten returns true if the whole fleet is placed and every ship is sunk, false otherwise.
func (b *Board) IsBeaten() bool {
	return len(b.ships) == len(Fleet) && b.SunkCount() == len(b.ships)
}

//Fields returns the board as rows of runes: Taken(s) for ship cells, Hit(x) and Miss(o) for
//received shots and Empty(-) for the rest. If reveal is false ship cells that have not been
//hit are shown as Empty, which is what the opponent gets to see.
func (b *Board) Fields(reveal bool) [][]rune {
	fields := make([][]rune, BoardSize)
	for i := 0; i < BoardSize; i++ {
		fields[i] = make([]rune, BoardSize)
		for j := 0; j < BoardSize; j++ {
			fields[i][j] = b.cell(Position{Row: i, Column: j}, reveal)
		}
	}
	return fields
}

func (b *Board) cell(p Position, reveal bool) rune {
	ship := b.ShipAt(p)
	switch {
	case ship != nil && ship.IsHit(p):
		return Hit
	case b.shotsReceived[p]:
		return Miss
	case ship != nil && reveal:
		return Taken
	default:
		return Empty
	}
}
