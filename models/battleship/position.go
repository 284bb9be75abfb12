package battleship

// DefaultBoardSize is the classic 10x10 grid.
const DefaultBoardSize = 10

type Coordinates struct {
	Row int
	Col int
}

func NewCoordinates(row, col int) Coordinates {
	return Coordinates{Row: row, Col: col}
}

// InvalidCoordinates is the out-of-grid marker returned alongside
// ok=false. Callers should branch on the bool, not on this value.
var InvalidCoordinates = Coordinates{Row: -1, Col: -1}

// CellState is what a shooter knows about one cell of a grid.
type CellState uint8

const (
	CellStateUnknown CellState = iota
	CellStateMiss
	CellStateHit
)

func (cs CellState) String() string {
	switch cs {
	case CellStateMiss:
		return "Miss"
	case CellStateHit:
		return "Hit"
	default:
		return "Unknown"
	}
}

type Orientation uint8

const (
	OrientationHorizontal Orientation = iota
	OrientationVertical
)

// ShipKind identifies one of the five standard ships.
type ShipKind uint8

const (
	ShipCarrier ShipKind = iota
	ShipBattleship
	ShipCruiser
	ShipSubmarine
	ShipDestroyer
)

var shipSizes = map[ShipKind]int{
	ShipCarrier:    5,
	ShipBattleship: 4,
	ShipCruiser:    3,
	ShipSubmarine:  3,
	ShipDestroyer:  2,
}

var shipNames = map[ShipKind]string{
	ShipCarrier:    "Carrier",
	ShipBattleship: "Battleship",
	ShipCruiser:    "Cruiser",
	ShipSubmarine:  "Submarine",
	ShipDestroyer:  "Destroyer",
}

// FleetShipKinds is the canonical placement order of the standard fleet.
var FleetShipKinds = []ShipKind{
	ShipCarrier,
	ShipBattleship,
	ShipCruiser,
	ShipSubmarine,
	ShipDestroyer,
}

func (sk ShipKind) Size() int {
	return shipSizes[sk]
}

func (sk ShipKind) Name() string {
	return shipNames[sk]
}
