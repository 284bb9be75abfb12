package battleship

import (
	"fmt"
	"math/rand"
	"strings"

	cerr "battleship-sim/internal/error"
)

// placementAttempts bounds the random placement retry loop per ship.
// On a 10x10 grid with the standard fleet exhausting it is close to
// impossible; on small grids it keeps placement from spinning forever.
const placementAttempts = 100

const (
	symbolUnknown = "·"
	symbolMiss    = "O"
	symbolHit     = "X"
	symbolShip    = "S"
)

// Board owns the placed ships of one side and the record of every shot
// it has received. Cells never shot at are implicitly unknown.
type Board struct {
	size  int
	ships []*Ship
	shots map[Coordinates]CellState
}

func NewBoard(size int) *Board {
	return &Board{
		size:  size,
		ships: make([]*Ship, 0, len(FleetShipKinds)),
		shots: make(map[Coordinates]CellState),
	}
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) ShipCount() int {
	return len(b.ships)
}

// PlaceShip validates that every cell of the ship is on the grid and
// free of other ships, then appends it. On error the board is left
// untouched.
func (b *Board) PlaceShip(ship *Ship) error {
	for _, p := range ship.Positions() {
		if p.Row < 0 || p.Row >= b.size || p.Col < 0 || p.Col >= b.size {
			return cerr.ErrShipOutOfBounds(ship.Kind().Name(), p.Row, p.Col)
		}
	}

	for _, placed := range b.ships {
		for _, p := range placed.Positions() {
			if ship.occupies(p) {
				return cerr.ErrShipOverlap(ship.Kind().Name(), p.Row, p.Col)
			}
		}
	}

	b.ships = append(b.ships, ship)
	return nil
}

// RandomPlacement clears the ship list and places the standard fleet
// at uniformly random positions, retrying each ship up to
// placementAttempts times. On exhaustion the error names the ship that
// failed and the board keeps the ships placed so far; callers wanting
// a full fleet should regenerate the board.
func (b *Board) RandomPlacement() error {
	b.ships = b.ships[:0]

	for _, kind := range FleetShipKinds {
		if kind.Size() > b.size {
			return cerr.ErrShipLargerThanGrid(kind.Name(), kind.Size(), b.size)
		}

		placed := false
		for attempt := 0; attempt < placementAttempts; attempt++ {
			if err := b.PlaceShip(b.randomShip(kind)); err == nil {
				placed = true
				break
			}
		}
		if !placed {
			return cerr.ErrPlacementExhausted(kind.Name(), placementAttempts)
		}
	}

	return nil
}

// randomShip draws an orientation and a start position constrained so
// the ship fits on the grid for that orientation.
func (b *Board) randomShip(kind ShipKind) *Ship {
	orientation := Orientation(rand.Intn(2))

	var row, col int
	if orientation == OrientationHorizontal {
		row = rand.Intn(b.size)
		col = rand.Intn(b.size - kind.Size() + 1)
	} else {
		row = rand.Intn(b.size - kind.Size() + 1)
		col = rand.Intn(b.size)
	}

	return NewShip(kind, orientation, NewCoordinates(row, col))
}

// ReceiveShot resolves a shot at c. A cell that was shot before
// replays its recorded state without touching any ship, so repeat
// shots are idempotent.
func (b *Board) ReceiveShot(c Coordinates) CellState {
	if state, prs := b.shots[c]; prs {
		return state
	}

	for _, ship := range b.ships {
		if ship.occupies(c) {
			ship.RegisterHit(c)
			b.shots[c] = CellStateHit
			return CellStateHit
		}
	}

	b.shots[c] = CellStateMiss
	return CellStateMiss
}

func (b *Board) AllShipsSunk() bool {
	for _, ship := range b.ships {
		if !ship.IsSunk() {
			return false
		}
	}
	return true
}

// ShipsAfloat counts placed ships not yet sunk.
func (b *Board) ShipsAfloat() int {
	afloat := 0
	for _, ship := range b.ships {
		if !ship.IsSunk() {
			afloat++
		}
	}
	return afloat
}

func (b *Board) ShipAt(c Coordinates) (*Ship, bool) {
	for _, ship := range b.ships {
		if ship.occupies(c) {
			return ship, true
		}
	}
	return nil, false
}

// Render draws the grid with row/column headers. Hits and misses are
// always visible; unrevealed ship cells are drawn only when showShips
// is set, which is how the AI fleet stays hidden from the player.
func (b *Board) Render(showShips bool) string {
	var sb strings.Builder

	sb.WriteString("  ")
	for col := 0; col < b.size; col++ {
		fmt.Fprintf(&sb, " %d", col)
	}
	sb.WriteByte('\n')

	for row := 0; row < b.size; row++ {
		fmt.Fprintf(&sb, "%d ", row)
		for col := 0; col < b.size; col++ {
			c := NewCoordinates(row, col)

			symbol := symbolUnknown
			if state, prs := b.shots[c]; prs {
				if state == CellStateHit {
					symbol = symbolHit
				} else {
					symbol = symbolMiss
				}
			} else if showShips {
				if _, occupied := b.ShipAt(c); occupied {
					symbol = symbolShip
				}
			}

			sb.WriteByte(' ')
			sb.WriteString(symbol)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
