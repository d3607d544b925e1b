package main

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/StanislavStefanov/battleship-engine/pkg"
	"github.com/StanislavStefanov/battleship-engine/pkg/game"
	"github.com/StanislavStefanov/battleship-engine/pkg/web"
	"github.com/StanislavStefanov/battleship-engine/server/player"
)

// Room is one match between two seated players. All of its commands must be processed by a
// single goroutine; only Join and GetRoomInfo may be called from elsewhere.
type Room struct {
	mu             sync.Mutex
	Players        [2]*player.Player
	Game           *game.GameState
	Done           chan struct{}
	Id             string
	ResponseSender ResponseSender
}

func CreateRoom(id string, first *player.Player, done chan struct{}, sender ResponseSender) *Room {
	r := &Room{
		Game:           game.NewGameState(),
		Done:           done,
		Id:             id,
		ResponseSender: sender,
	}
	if first != nil {
		first.Seat = game.Player1
		r.Players[game.Player1] = first
	}
	return r
}

func (r *Room) Join(p *player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Players[game.Player2] != nil {
		return errors.New("room is already full")
	}
	p.Seat = game.Player2
	r.Players[game.Player2] = p
	return nil
}

func (r *Room) GetRoomInfo() (string, int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	playersCount := 0
	for _, p := range r.Players {
		if p != nil {
			playersCount++
		}
	}
	return r.Id, playersCount
}

func (r *Room) seatOf(id string) (game.Player, bool) {
	for _, p := range r.Players {
		if p != nil && p.Id == id {
			return p.Seat, true
		}
	}
	return 0, false
}

func (r *Room) send(seat game.Player, resp web.Response) {
	if p := r.Players[seat]; p != nil {
		r.ResponseSender.SendResponse(resp, p.Conn)
	}
}

func (r *Room) finish() {
	select {
	case r.Done <- struct{}{}:
	default:
	}
}

func (r *Room) ProcessCommand(request web.Request) {
	seat, ok := r.seatOf(request.GetId())
	if !ok {
		log.Printf("room %s: request from unknown player %q", r.Id, request.GetId())
		return
	}

	action := request.GetAction()
	if action != pkg.Exit && r.Players[seat.Opponent()] == nil {
		r.send(seat, web.BuildResponse(pkg.Wait, "Wait for an opponent to join the room.", nil))
		return
	}

	switch action {
	case pkg.PlaceShip:
		r.processShipPlacement(seat, request)
	case pkg.Shoot:
		r.processShoot(seat, request)
	case pkg.Reset:
		r.Game.ResetGame()
		r.promptPlacement(game.Player1)
		r.promptPlacement(game.Player2)
	case pkg.Exit:
		r.send(seat.Opponent(), web.BuildResponse(pkg.Win, "Your opponent exited the game. Congratulations, you win!", nil))
		r.finish()
	default:
		r.send(seat, web.BuildResponse(pkg.Retry, fmt.Sprintf("Unknown action: %s.", action), nil))
	}
}

func (r *Room) promptPlacement(seat game.Player) {
	class, ok := r.Game.NextShip(seat)
	if !ok {
		r.send(seat, web.BuildResponse(pkg.Wait, "Fleet placed. Wait for your opponent to place his ships.", nil))
		return
	}
	r.send(seat, web.BuildResponse(pkg.PlaceShip,
		fmt.Sprintf("Select where to place %s with length %d.", class, class.Size()),
		map[string]interface{}{"ship": string(class)}))
}

func (r *Room) processShipPlacement(seat game.Player, request web.Request) {
	position, err := getPosition(request)
	if err != nil {
		r.send(seat, web.BuildResponse(pkg.Retry, err.Error(), nil))
		return
	}

	direction, err := request.StringArg("direction")
	if err != nil {
		r.send(seat, web.BuildResponse(pkg.Retry, err.Error(), nil))
		return
	}

	class, ok := r.Game.NextShip(seat)
	if _, given := request.GetArgs()["ship"]; given {
		name, err := request.StringArg("ship")
		if err != nil {
			r.send(seat, web.BuildResponse(pkg.Retry, err.Error(), nil))
			return
		}
		class, ok = game.ShipClass(strings.ToUpper(name)), true
	}
	if !ok {
		r.send(seat, web.BuildResponse(pkg.Retry, "All ships already placed.", nil))
		return
	}

	err = r.Game.PlaceBattleShip(seat, class, position, game.Direction(strings.ToUpper(direction)))
	if err != nil {
		r.send(seat, web.BuildResponse(pkg.Retry, err.Error(), nil))
		return
	}

	r.send(seat, web.BuildResponse(pkg.Placed,
		fmt.Sprintf("%s placed at %s.", class, position),
		map[string]interface{}{
			"ship":      string(class),
			"position":  position.String(),
			"direction": strings.ToUpper(direction),
		}))

	if r.Game.Mode() == game.Play {
		current := r.Game.CurrentPlayer()
		r.send(current, web.BuildResponse(pkg.Shoot, "Select field to attack.", nil))
		r.send(current.Opponent(), web.BuildResponse(pkg.Wait, "Wait for enemy to make his turn.", nil))
		return
	}
	r.promptPlacement(seat)
}

func (r *Room) processShoot(seat game.Player, request web.Request) {
	position, err := getPosition(request)
	if err != nil {
		r.send(seat, web.BuildResponse(pkg.Retry, err.Error(), nil))
		return
	}

	result, err := r.Game.MakeShotBy(seat, position)
	if errors.Is(err, game.ErrNotYourTurn) {
		r.send(seat, web.BuildResponse(pkg.Wait, "Wait for enemy to make his turn.", nil))
		return
	}
	if err != nil {
		r.send(seat, web.BuildResponse(pkg.Retry, err.Error(), nil))
		return
	}

	args := map[string]interface{}{
		"result":   string(result),
		"position": position.String(),
	}

	if r.Game.IsGameOver() {
		winner, _ := r.Game.GameWinner()
		r.send(winner, web.BuildResponse(pkg.Win, "Congratulations, you win!", args))
		r.send(winner.Opponent(), web.BuildResponse(pkg.Lose, "Defeat!", args))
		r.finish()
		return
	}

	r.send(seat, web.BuildResponse(pkg.ShootOutcome, "", args))
	r.send(seat.Opponent(), web.BuildResponse(pkg.Shoot, "Select field to attack.", args))
}

func (r *Room) closeRoom() {
	for _, p := range r.Players {
		if p != nil && p.Conn != nil {
			_ = p.Conn.Close()
		}
	}
}

// getPosition reads a one letter "row" and a 1-based "column" from the request.
func getPosition(req web.Request) (game.Position, error) {
	row, err := req.StringArg("row")
	if err != nil {
		return game.Position{}, err
	}
	if len(row) != 1 {
		return game.Position{}, errors.New("invalid value for row")
	}

	column, err := req.IntArg("column")
	if err != nil {
		return game.Position{}, err
	}

	return game.At(rune(row[0]), column), nil
}
