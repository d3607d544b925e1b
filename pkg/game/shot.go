package game

import "fmt"

const (
	ResultMiss           ShotResult = "MISS"
	ResultHit            ShotResult = "HIT"
	ResultSunkCarrier    ShotResult = "SUNK_CARRIER"
	ResultSunkBattleship ShotResult = "SUNK_BATTLESHIP"
	ResultSunkCruiser    ShotResult = "SUNK_CRUISER"
	ResultSunkDestroyer1 ShotResult = "SUNK_DESTROYER_1"
	ResultSunkDestroyer2 ShotResult = "SUNK_DESTROYER_2"
)

type ShotResult string

// SunkResult returns the result reported when the last cell of a ship of class c is hit.
func SunkResult(c ShipClass) ShotResult {
	return ShotResult("SUNK_" + string(c))
}

func (r ShotResult) IsSunk() bool {
	_, ok := r.SunkClass()
	return ok
}

// SunkClass returns the class of the ship sunk by the shot, if any.
func (r ShotResult) SunkClass() (ShipClass, bool) {
	for _, c := range Fleet {
		if SunkResult(c) == r {
			return c, true
		}
	}
	return "", false
}

//ResolveShot applies a shot at target to b. Shooting outside the board or at an already
//shot position returns an error wrapping ErrInvalidShot and leaves b unchanged. Otherwise
//the shot is recorded and the hit ship, if any, registers the hit.
func ResolveShot(b *Board, target Position) (ShotResult, error) {
	if err := checkShot(b, target); err != nil {
		return "", err
	}

	b.shotsReceived[target] = true

	ship := b.ShipAt(target)
	if ship == nil {
		return ResultMiss, nil
	}

	ship.RegisterHit(target)
	if ship.IsSunk() {
		return SunkResult(ship.Class()), nil
	}
	return ResultHit, nil
}

func checkShot(b *Board, target Position) error {
	if !target.inBounds() {
		return fmt.Errorf("%w: %w: %s", ErrInvalidShot, ErrOutOfBounds, target)
	}
	if b.WasShot(target) {
		return fmt.Errorf("%w: %s already shot", ErrInvalidShot, target)
	}
	return nil
}
