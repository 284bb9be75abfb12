package battleship

import (
	"github.com/google/uuid"
)

const (
	WinnerPlayer = "Player"
	WinnerAI     = "AI"
)

// Strategy picks the AI's shots. Its bookkeeping is its only view of
// the board, so RegisterResult must be called exactly once per shot it
// issues, with the outcome the targeted board actually reported.
type Strategy interface {
	// NextShot returns the next cell to target, or ok=false when every
	// cell has already been shot.
	NextShot() (Coordinates, bool)
	RegisterResult(c Coordinates, result CellState)
	Reset()
}

// TurnResult summarizes one call to PlayTurn for the caller to render.
type TurnResult struct {
	PlayerShot   Coordinates
	PlayerResult CellState
	AIShot       Coordinates
	AIResult     CellState
	AIFired      bool
	Over         bool
	Winner       string
	Turn         int
}

// Game runs one match: the player fires at the AI board, the AI fires
// at the player board via its strategy. It turns terminal the moment
// either fleet is fully sunk and only answers reads afterwards.
type Game struct {
	id          string
	playerBoard *Board
	aiBoard     *Board
	strategy    Strategy
	turnCount   int
	isOver      bool
	winner      string
}

func NewGame(boardSize int, strategy Strategy) *Game {
	return &Game{
		id:          uuid.NewString()[:6],
		playerBoard: NewBoard(boardSize),
		aiBoard:     NewBoard(boardSize),
		strategy:    strategy,
	}
}

func (g *Game) Id() string {
	return g.id
}

func (g *Game) PlayerBoard() *Board {
	return g.playerBoard
}

func (g *Game) AIBoard() *Board {
	return g.aiBoard
}

func (g *Game) Turns() int {
	return g.turnCount
}

func (g *Game) Over() bool {
	return g.isOver
}

// Winner returns WinnerPlayer or WinnerAI, empty while in progress.
func (g *Game) Winner() string {
	return g.winner
}

// Setup places both fleets randomly and resets the strategy. Must run
// once before play; the boards are empty otherwise.
func (g *Game) Setup() error {
	if err := g.playerBoard.RandomPlacement(); err != nil {
		return err
	}
	if err := g.aiBoard.RandomPlacement(); err != nil {
		return err
	}

	g.strategy.Reset()
	return nil
}

// PlayerShoot applies the player's shot to the AI board. On a terminal
// game it is a no-op returning CellStateUnknown.
func (g *Game) PlayerShoot(c Coordinates) CellState {
	if g.isOver {
		return CellStateUnknown
	}

	result := g.aiBoard.ReceiveShot(c)

	if g.aiBoard.AllShipsSunk() {
		g.isOver = true
		g.winner = WinnerPlayer
	}

	return result
}

// AIShoot asks the strategy for a target and applies it to the player
// board, feeding the true outcome back into the strategy. fired is
// false when the game is terminal or the strategy has no cell left,
// in which case the player board is untouched.
func (g *Game) AIShoot() (c Coordinates, result CellState, fired bool) {
	if g.isOver {
		return Coordinates{}, CellStateUnknown, false
	}

	c, ok := g.strategy.NextShot()
	if !ok {
		return Coordinates{}, CellStateUnknown, false
	}

	result = g.playerBoard.ReceiveShot(c)
	g.strategy.RegisterResult(c, result)

	if g.playerBoard.AllShipsSunk() {
		g.isOver = true
		g.winner = WinnerAI
	}

	return c, result, true
}

// PlayTurn runs one player shot followed by one AI shot, skipping the
// AI shot when the player's shot just ended the game. The turn counter
// advances once per call. Called on a terminal game it reports the
// final state without shooting.
func (g *Game) PlayTurn(playerShot Coordinates) TurnResult {
	if g.isOver {
		return TurnResult{Over: true, Winner: g.winner, Turn: g.turnCount}
	}

	g.turnCount++

	result := TurnResult{
		PlayerShot:   playerShot,
		PlayerResult: g.PlayerShoot(playerShot),
		Turn:         g.turnCount,
	}

	if !g.isOver {
		result.AIShot, result.AIResult, result.AIFired = g.AIShoot()
	}

	result.Over = g.isOver
	result.Winner = g.winner
	return result
}
