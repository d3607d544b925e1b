package player

import (
	"github.com/StanislavStefanov/battleship-engine/pkg/game"
)

//go:generate mockery -name=Connection -output=automock -outpkg=automock -case=underscore
type Connection interface {
	WriteMessage(int, []byte) error
	Close() error
	ReadMessage() (int, []byte, error)
}

// Player is a connected client. Seat is only meaningful once the player sits in a room.
type Player struct {
	Conn Connection
	Id   string
	Seat game.Player
}
