package game

import "fmt"

const (
	Setup    Mode = "setup"
	Play     Mode = "play"
	GameOver Mode = "game-over"
)

type Mode string

const (
	Player1 Player = iota
	Player2
)

type Player int

func (p Player) String() string {
	switch p {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	default:
		return fmt.Sprintf("Player(%d)", int(p))
	}
}

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

func (p Player) valid() bool {
	return p == Player1 || p == Player2
}

// GameState drives a single match through setup, play and game over. It is not safe for
// concurrent use; a match is expected to be owned by one caller.
type GameState struct {
	boards      [2]*Board
	mode        Mode
	player1Turn bool
	placed      [2]int
	sunk        [2]int
	winner      Player
}

func NewGameState() *GameState {
	g := &GameState{}
	g.ResetGame()
	return g
}

//ResetGame clears both boards and all counters, switches to setup mode and gives the turn
//to Player 1. It is allowed in every mode.
func (g *GameState) ResetGame() {
	g.boards = [2]*Board{InitBoard(), InitBoard()}
	g.mode = Setup
	g.player1Turn = true
	g.placed = [2]int{}
	g.sunk = [2]int{}
	g.winner = Player1
}

func (g *GameState) Mode() Mode {
	return g.mode
}

func (g *GameState) requireMode(m Mode) error {
	if g.mode != m {
		return fmt.Errorf("%w: expected %s, game is in %s", ErrIllegalMode, m, g.mode)
	}
	return nil
}

//PlaceBattleShip places class on the board of player. It fails with ErrIllegalMode outside
//setup and with ErrInvalidPlacement when the placement is not legal. Once both fleets are
//complete the game switches to play mode with Player 1 to move.
func (g *GameState) PlaceBattleShip(player Player, class ShipClass, anchor Position, direction Direction) error {
	if err := g.requireMode(Setup); err != nil {
		return err
	}
	if !player.valid() {
		return fmt.Errorf("%w: unknown player %s", ErrInvalidPlacement, player)
	}

	board := g.boards[player]
	if _, err := board.PlaceShip(class, anchor, direction); err != nil {
		return err
	}
	g.placed[player] = board.ShipCount()

	if g.placed[Player1] == len(Fleet) && g.placed[Player2] == len(Fleet) {
		g.mode = Play
		g.player1Turn = true
	}
	return nil
}

//ValidateShipPlacement reports whether PlaceBattleShip would succeed with the same
//arguments. It never fails and returns false outside setup.
func (g *GameState) ValidateShipPlacement(player Player, class ShipClass, anchor Position, direction Direction) bool {
	if g.mode != Setup || !player.valid() {
		return false
	}
	return ValidatePlacement(g.boards[player], class, anchor, direction)
}

// SetupPlayer returns the player whose fleet PlaceNextShip completes next:
// Player 1 until all of their ships are placed, then Player 2.
func (g *GameState) SetupPlayer() Player {
	if g.placed[Player1] < len(Fleet) {
		return Player1
	}
	return Player2
}

// NextShip returns the first class of the fleet that player has not placed yet.
func (g *GameState) NextShip(player Player) (ShipClass, bool) {
	if !player.valid() {
		return "", false
	}
	for _, c := range Fleet {
		if !g.boards[player].HasShip(c) {
			return c, true
		}
	}
	return "", false
}

//PlaceNextShip places the next ship of the setup player at anchor along direction and
//returns the placed class.
func (g *GameState) PlaceNextShip(anchor Position, direction Direction) (ShipClass, error) {
	if err := g.requireMode(Setup); err != nil {
		return "", err
	}
	player := g.SetupPlayer()
	class, _ := g.NextShip(player)
	if err := g.PlaceBattleShip(player, class, anchor, direction); err != nil {
		return "", err
	}
	return class, nil
}

func (g *GameState) ValidateNextShipPlacement(anchor Position, direction Direction) bool {
	if g.mode != Setup {
		return false
	}
	player := g.SetupPlayer()
	class, _ := g.NextShip(player)
	return g.ValidateShipPlacement(player, class, anchor, direction)
}

func (g *GameState) Player1Turn() bool {
	return g.player1Turn
}

func (g *GameState) CurrentPlayer() Player {
	if g.player1Turn {
		return Player1
	}
	return Player2
}

//MakeShot fires the current player's shot at target on the opponent's board. It fails
//with ErrIllegalMode outside play mode and with ErrInvalidShot for repeated or out of
//bounds targets; a failed shot changes nothing. After a successful shot the turn passes to
//the opponent unless the shot sank the last ship, which ends the game.
func (g *GameState) MakeShot(target Position) (ShotResult, error) {
	if err := g.requireMode(Play); err != nil {
		return "", err
	}

	shooter := g.CurrentPlayer()
	opponent := g.boards[shooter.Opponent()]
	result, err := ResolveShot(opponent, target)
	if err != nil {
		return "", err
	}

	if result.IsSunk() {
		g.sunk[shooter]++
		if g.sunk[shooter] == len(Fleet) && opponent.IsBeaten() {
			g.mode = GameOver
			g.winner = shooter
			return result, nil
		}
	}

	g.player1Turn = !g.player1Turn
	return result, nil
}

// MakeShotBy is MakeShot for callers that serve both players; it fails with ErrNotYourTurn
// when player does not hold the turn.
func (g *GameState) MakeShotBy(player Player, target Position) (ShotResult, error) {
	if err := g.requireMode(Play); err != nil {
		return "", err
	}
	if player != g.CurrentPlayer() {
		return "", fmt.Errorf("%w: %s to move", ErrNotYourTurn, g.CurrentPlayer())
	}
	return g.MakeShot(target)
}

//ValidateShot reports whether MakeShot would accept target. It never fails and returns false
//outside play mode.
func (g *GameState) ValidateShot(target Position) bool {
	if g.mode != Play {
		return false
	}
	return checkShot(g.boards[g.CurrentPlayer().Opponent()], target) == nil
}

func (g *GameState) IsShipSunk(ship *Ship) bool {
	return ship != nil && ship.IsSunk()
}

func (g *GameState) IsGameOver() bool {
	return g.mode == GameOver
}

//GameWinner returns the player who sank the opponent's whole fleet. It fails with
//ErrIllegalState unless the game is over.
func (g *GameState) GameWinner() (Player, error) {
	if g.mode != GameOver {
		return 0, fmt.Errorf("%w: game is in %s", ErrIllegalState, g.mode)
	}
	return g.winner, nil
}

// Ships returns the ships placed by player.
func (g *GameState) Ships(player Player) []*Ship {
	if !player.valid() {
		return nil
	}
	return g.boards[player].Ships()
}

func (g *GameState) PlacedCount(player Player) int {
	if !player.valid() {
		return 0
	}
	return g.placed[player]
}

// SunkCount returns how many of the opponent's ships player has sunk.
func (g *GameState) SunkCount(player Player) int {
	if !player.valid() {
		return 0
	}
	return g.sunk[player]
}

// Fields returns the board of player, see Board.Fields.
func (g *GameState) Fields(player Player, reveal bool) [][]rune {
	if !player.valid() {
		return nil
	}
	return g.boards[player].Fields(reveal)
}
