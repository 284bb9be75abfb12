package battleship

// Ship occupies a contiguous run of cells extending right (horizontal)
// or down (vertical) from its start position. The shape is fixed at
// creation; only the hit set changes afterwards.
type Ship struct {
	kind        ShipKind
	orientation Orientation
	start       Coordinates
	hitCells    map[Coordinates]struct{}
}

func NewShip(kind ShipKind, orientation Orientation, start Coordinates) *Ship {
	return &Ship{
		kind:        kind,
		orientation: orientation,
		start:       start,
		hitCells:    make(map[Coordinates]struct{}, kind.Size()),
	}
}

func (s *Ship) Kind() ShipKind {
	return s.kind
}

// Positions returns the cells the ship occupies, in order from its
// start position.
func (s *Ship) Positions() []Coordinates {
	positions := make([]Coordinates, 0, s.kind.Size())
	for i := 0; i < s.kind.Size(); i++ {
		if s.orientation == OrientationHorizontal {
			positions = append(positions, NewCoordinates(s.start.Row, s.start.Col+i))
		} else {
			positions = append(positions, NewCoordinates(s.start.Row+i, s.start.Col))
		}
	}
	return positions
}

func (s *Ship) occupies(c Coordinates) bool {
	for _, p := range s.Positions() {
		if p == c {
			return true
		}
	}
	return false
}

// RegisterHit marks c as hit. It returns false when c is not part of
// the ship or was hit before, so repeat shots never double-count.
func (s *Ship) RegisterHit(c Coordinates) bool {
	if !s.occupies(c) {
		return false
	}
	if _, already := s.hitCells[c]; already {
		return false
	}
	s.hitCells[c] = struct{}{}
	return true
}

func (s *Ship) HitCount() int {
	return len(s.hitCells)
}

func (s *Ship) IsSunk() bool {
	return len(s.hitCells) == s.kind.Size()
}
