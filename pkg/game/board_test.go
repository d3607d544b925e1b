package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAt(t *testing.T) {
	assert.Equal(t, Position{Row: 0, Column: 0}, At('A', 1))
	assert.Equal(t, Position{Row: 9, Column: 9}, At('J', 10))
	assert.Equal(t, Position{Row: 2, Column: 4}, At('c', 5))
	assert.False(t, At('1', 1).inBounds())
	assert.False(t, At('K', 1).inBounds())
	assert.Equal(t, "B7", At('B', 7).String())
}

func TestComputeCells(t *testing.T) {
	// given
	testCases := []struct {
		Name              string
		Anchor            Position
		Length            int
		Direction         Direction
		ExpectedPositions []Position
		ExpectedErr       error
	}{
		{
			Name:              "Success for direction north",
			Anchor:            Position{3, 3},
			Length:            4,
			Direction:         North,
			ExpectedPositions: []Position{{3, 3}, {3, 4}, {3, 5}, {3, 6}},
		},
		{
			Name:              "Success for direction south",
			Anchor:            Position{3, 6},
			Length:            4,
			Direction:         South,
			ExpectedPositions: []Position{{3, 6}, {4, 6}, {5, 6}, {6, 6}},
		},
		{
			Name:              "Success for direction nw",
			Anchor:            Position{6, 6},
			Length:            3,
			Direction:         NW,
			ExpectedPositions: []Position{{6, 6}, {5, 5}, {4, 4}},
		},
		{
			Name:              "Success for direction sw",
			Anchor:            Position{2, 4},
			Length:            5,
			Direction:         SW,
			ExpectedPositions: []Position{{2, 4}, {3, 3}, {4, 2}, {5, 1}, {6, 0}},
		},
		{
			Name:              "Success touching the last column",
			Anchor:            Position{0, 5},
			Length:            5,
			Direction:         North,
			ExpectedPositions: []Position{{0, 5}, {0, 6}, {0, 7}, {0, 8}, {0, 9}},
		},
		{
			Name:        "Fail out of bounds for direction north",
			Anchor:      Position{8, 8},
			Length:      4,
			Direction:   North,
			ExpectedErr: ErrOutOfBounds,
		},
		{
			Name:        "Fail out of bounds for direction south",
			Anchor:      Position{8, 8},
			Length:      4,
			Direction:   South,
			ExpectedErr: ErrOutOfBounds,
		},
		{
			Name:        "Fail out of bounds for direction nw",
			Anchor:      Position{5, 1},
			Length:      3,
			Direction:   NW,
			ExpectedErr: ErrOutOfBounds,
		},
		{
			Name:        "Fail out of bounds for direction sw",
			Anchor:      Position{8, 5},
			Length:      3,
			Direction:   SW,
			ExpectedErr: ErrOutOfBounds,
		},
		{
			Name:        "Fail anchor out of bounds",
			Anchor:      Position{-1, 0},
			Length:      2,
			Direction:   North,
			ExpectedErr: ErrOutOfBounds,
		},
		{
			Name:        "Fail unknown direction",
			Anchor:      Position{5, 5},
			Length:      4,
			Direction:   "up-left-diagonal",
			ExpectedErr: ErrInvalidPlacement,
		},
		{
			Name:        "Fail zero length",
			Anchor:      Position{5, 5},
			Length:      0,
			Direction:   North,
			ExpectedErr: ErrInvalidPlacement,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.Name, func(t *testing.T) {
			// when
			positions, err := ComputeCells(testCase.Anchor, testCase.Length, testCase.Direction)

			// then
			if testCase.ExpectedErr == nil {
				require.NoError(t, err)
				assert.Equal(t, testCase.ExpectedPositions, positions)
			} else {
				require.ErrorIs(t, err, testCase.ExpectedErr)
				assert.Nil(t, positions)
			}
		})
	}
}

func TestShip(t *testing.T) {
	t.Run("sunk only after every cell is hit", func(t *testing.T) {
		// given
		ship := newShip(Cruiser, []Position{{0, 0}, {0, 1}, {0, 2}})

		// when
		ship.RegisterHit(Position{0, 0})
		ship.RegisterHit(Position{0, 1})

		// then
		assert.False(t, ship.IsSunk())
		ship.RegisterHit(Position{0, 2})
		assert.True(t, ship.IsSunk())
	})

	t.Run("hits outside the ship are ignored", func(t *testing.T) {
		// given
		ship := newShip(Destroyer1, []Position{{4, 4}, {5, 4}})

		// when
		ship.RegisterHit(Position{6, 4})
		ship.RegisterHit(Position{4, 4})
		ship.RegisterHit(Position{4, 4})

		// then
		assert.False(t, ship.IsHit(Position{6, 4}))
		assert.False(t, ship.IsSunk())
	})

	t.Run("occupied cells are a copy", func(t *testing.T) {
		ship := newShip(Destroyer2, []Position{{1, 1}, {1, 2}})

		cells := ship.OccupiedCells()
		cells[0] = Position{9, 9}

		assert.Equal(t, []Position{{1, 1}, {1, 2}}, ship.OccupiedCells())
	})
}

func TestBoard_PlaceShip(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		// when
		board := InitBoard()

		// then
		ship, err := board.PlaceShip(Battleship, Position{6, 3}, NW)
		require.NoError(t, err)
		assert.Equal(t, Battleship, ship.Class())
		assert.Equal(t, []Position{{6, 3}, {5, 2}, {4, 1}, {3, 0}}, ship.OccupiedCells())
		assert.Equal(t, 1, board.ShipCount())
		assert.Same(t, ship, board.ShipAt(Position{5, 2}))
		assert.Equal(t, Taken, board.Fields(true)[4][1])
		assert.Equal(t, Empty, board.Fields(false)[4][1])
	})

	t.Run("failure ship goes out of bounds", func(t *testing.T) {
		// when
		board := InitBoard()

		// then
		_, err := board.PlaceShip(Carrier, Position{3, 6}, North)
		assert.ErrorIs(t, err, ErrInvalidPlacement)
		assert.ErrorIs(t, err, ErrOutOfBounds)
		assert.Equal(t, 0, board.ShipCount())
		assert.Equal(t, InitBoard().Fields(true), board.Fields(true))
	})

	t.Run("failure ships overlap", func(t *testing.T) {
		// when
		board := InitBoard()
		_, err := board.PlaceShip(Carrier, Position{2, 2}, South)
		require.NoError(t, err)
		expectedFields := board.Fields(true)

		// then
		_, err = board.PlaceShip(Cruiser, Position{3, 1}, North)
		assert.ErrorIs(t, err, ErrInvalidPlacement)
		assert.NotErrorIs(t, err, ErrOutOfBounds)
		assert.Equal(t, expectedFields, board.Fields(true))
		assert.Equal(t, 1, board.ShipCount())
	})

	t.Run("failure diagonal ships cross", func(t *testing.T) {
		// when
		board := InitBoard()
		_, err := board.PlaceShip(Cruiser, Position{2, 2}, SW)
		require.NoError(t, err)

		// then
		_, err = board.PlaceShip(Destroyer1, Position{3, 1}, North)
		assert.ErrorIs(t, err, ErrInvalidPlacement)
	})

	t.Run("failure class already placed", func(t *testing.T) {
		// when
		board := InitBoard()
		_, err := board.PlaceShip(Destroyer1, Position{0, 0}, North)
		require.NoError(t, err)

		// then
		_, err = board.PlaceShip(Destroyer1, Position{5, 5}, North)
		assert.ErrorIs(t, err, ErrInvalidPlacement)
		_, err = board.PlaceShip(Destroyer2, Position{5, 5}, North)
		assert.NoError(t, err)
	})

	t.Run("failure unknown class", func(t *testing.T) {
		board := InitBoard()

		_, err := board.PlaceShip("SUBMARINE", Position{0, 0}, North)
		assert.ErrorIs(t, err, ErrInvalidPlacement)
	})
}

func TestValidatePlacement(t *testing.T) {
	// given
	board := InitBoard()
	_, err := board.PlaceShip(Carrier, Position{0, 0}, North)
	require.NoError(t, err)

	// then
	assert.True(t, ValidatePlacement(board, Battleship, Position{1, 0}, North))
	assert.False(t, ValidatePlacement(board, Battleship, Position{0, 4}, South))
	assert.False(t, ValidatePlacement(board, Battleship, Position{1, 8}, North))
	assert.False(t, ValidatePlacement(board, Carrier, Position{5, 0}, North))
	assert.Equal(t, 1, board.ShipCount())
}

func TestResolveShot(t *testing.T) {
	t.Run("miss", func(t *testing.T) {
		// given
		board := InitBoard()
		_, err := board.PlaceShip(Cruiser, Position{5, 5}, South)
		require.NoError(t, err)

		// when
		result, err := ResolveShot(board, Position{0, 0})

		// then
		require.NoError(t, err)
		assert.Equal(t, ResultMiss, result)
		assert.True(t, board.WasShot(Position{0, 0}))
		assert.Equal(t, Miss, board.Fields(false)[0][0])
	})

	t.Run("hit then sunk", func(t *testing.T) {
		// given
		board := InitBoard()
		_, err := board.PlaceShip(Destroyer2, Position{5, 5}, SW)
		require.NoError(t, err)

		// when
		first, err := ResolveShot(board, Position{5, 5})
		require.NoError(t, err)
		second, err := ResolveShot(board, Position{6, 4})
		require.NoError(t, err)

		// then
		assert.Equal(t, ResultHit, first)
		assert.Equal(t, ResultSunkDestroyer2, second)
		assert.Equal(t, Hit, board.Fields(false)[6][4])
		assert.Equal(t, 1, board.SunkCount())
	})

	t.Run("fail repeated shot", func(t *testing.T) {
		// given
		board := InitBoard()
		_, err := ResolveShot(board, Position{3, 3})
		require.NoError(t, err)

		// when
		_, err = ResolveShot(board, Position{3, 3})

		// then
		assert.ErrorIs(t, err, ErrInvalidShot)
		assert.True(t, board.WasShot(Position{3, 3}))
	})

	t.Run("fail index out of bounds", func(t *testing.T) {
		// when
		board := InitBoard()

		// then
		_, err := ResolveShot(board, Position{-2, 12})
		assert.ErrorIs(t, err, ErrInvalidShot)
		assert.ErrorIs(t, err, ErrOutOfBounds)
		assert.Equal(t, InitBoard().Fields(false), board.Fields(false))
	})
}

func TestShotResult(t *testing.T) {
	testCases := []struct {
		Result ShotResult
		Class  ShipClass
		Sunk   bool
	}{
		{ResultMiss, "", false},
		{ResultHit, "", false},
		{ResultSunkCarrier, Carrier, true},
		{ResultSunkBattleship, Battleship, true},
		{ResultSunkCruiser, Cruiser, true},
		{ResultSunkDestroyer1, Destroyer1, true},
		{ResultSunkDestroyer2, Destroyer2, true},
	}

	for _, testCase := range testCases {
		t.Run(string(testCase.Result), func(t *testing.T) {
			class, ok := testCase.Result.SunkClass()
			assert.Equal(t, testCase.Sunk, ok)
			assert.Equal(t, testCase.Class, class)
			assert.Equal(t, testCase.Sunk, testCase.Result.IsSunk())
		})
	}
}

func TestBoard_IsBeaten(t *testing.T) {
	// given
	board := InitBoard()
	for i, c := range Fleet {
		_, err := board.PlaceShip(c, Position{Row: i, Column: 0}, North)
		require.NoError(t, err)
	}

	// when
	for _, s := range board.Ships() {
		assert.False(t, board.IsBeaten())
		for _, p := range s.OccupiedCells() {
			_, err := ResolveShot(board, p)
			require.NoError(t, err)
		}
	}

	// then
	assert.True(t, board.IsBeaten())
}
