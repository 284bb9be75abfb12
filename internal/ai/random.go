package ai

import (
	"math/rand"
	"time"

	"battleship-sim/models/battleship"
)

// RandomStrategy draws every shot uniformly from the cells it has not
// targeted yet. Prior hits and misses never influence the choice.
type RandomStrategy struct {
	ShotLog
	rng *rand.Rand
}

var _ battleship.Strategy = (*RandomStrategy)(nil)

// NewRandomStrategy builds a random strategy for a boardSize x
// boardSize grid. Pass a seeded rng for reproducible games; nil gets a
// time-seeded one.
func NewRandomStrategy(boardSize int, rng *rand.Rand) *RandomStrategy {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &RandomStrategy{
		ShotLog: NewShotLog(boardSize),
		rng:     rng,
	}
}

// NextShot picks uniformly among the remaining cells. ok is false once
// the whole grid has been shot; the returned coordinates are then the
// invalid marker and must not be fired.
func (s *RandomStrategy) NextShot() (battleship.Coordinates, bool) {
	available := s.AvailablePositions()
	if len(available) == 0 {
		return battleship.InvalidCoordinates, false
	}
	return available[s.rng.Intn(len(available))], true
}
