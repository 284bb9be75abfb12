package ai

import (
	"math/rand"

	"battleship-sim/models/battleship"

	cerr "battleship-sim/internal/error"
)

// ShotLog is the bookkeeping shared by every strategy variant: the
// shots it has issued and how each one landed. It never queries the
// board; registered results are its only source of truth.
type ShotLog struct {
	boardSize int
	shots     []battleship.Coordinates
	hits      []battleship.Coordinates
	misses    []battleship.Coordinates
}

func NewShotLog(boardSize int) ShotLog {
	return ShotLog{boardSize: boardSize}
}

func (l *ShotLog) BoardSize() int {
	return l.boardSize
}

func (l *ShotLog) Shots() []battleship.Coordinates {
	return l.shots
}

func (l *ShotLog) Hits() []battleship.Coordinates {
	return l.hits
}

func (l *ShotLog) Misses() []battleship.Coordinates {
	return l.misses
}

// RegisterResult records c in the shot history and files it under hits
// or misses according to result.
func (l *ShotLog) RegisterResult(c battleship.Coordinates, result battleship.CellState) {
	l.shots = append(l.shots, c)

	switch result {
	case battleship.CellStateHit:
		l.hits = append(l.hits, c)
	case battleship.CellStateMiss:
		l.misses = append(l.misses, c)
	}
}

// AvailablePositions derives the cells not yet present in the shot
// history. It recomputes from scratch on every call; fine at this
// board scale.
func (l *ShotLog) AvailablePositions() []battleship.Coordinates {
	shot := make(map[battleship.Coordinates]struct{}, len(l.shots))
	for _, c := range l.shots {
		shot[c] = struct{}{}
	}

	available := make([]battleship.Coordinates, 0, l.boardSize*l.boardSize-len(shot))
	for row := 0; row < l.boardSize; row++ {
		for col := 0; col < l.boardSize; col++ {
			c := battleship.NewCoordinates(row, col)
			if _, prs := shot[c]; !prs {
				available = append(available, c)
			}
		}
	}
	return available
}

// Reset clears all three histories. Call it before every game that
// reuses a strategy instance, or the previous game's shots leak in.
func (l *ShotLog) Reset() {
	l.shots = nil
	l.hits = nil
	l.misses = nil
}

// Registry maps strategy names to constructors. It is built at the
// call site; there is no package-level table.
type Registry map[string]func() battleship.Strategy

// NewRegistry returns the registry of every known strategy for the
// given board size. rng may be nil to fall back on the global source.
func NewRegistry(boardSize int, rng *rand.Rand) Registry {
	return Registry{
		"random": func() battleship.Strategy { return NewRandomStrategy(boardSize, rng) },
	}
}

func (r Registry) New(name string) (battleship.Strategy, error) {
	construct, prs := r[name]
	if !prs {
		return nil, cerr.ErrUnknownStrategy(name)
	}
	return construct(), nil
}

// Names lists the registered strategy names, for usage messages.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	return names
}
