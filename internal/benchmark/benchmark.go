package benchmark

import (
	"github.com/charmbracelet/log"

	"battleship-sim/models/battleship"

	cerr "battleship-sim/internal/error"
)

// boardAttempts bounds regeneration when random placement exhausts its
// per-ship retries, which is vanishingly rare on a standard grid.
const boardAttempts = 5

const progressEvery = 10

// Runner simulates games of one strategy clearing a single board and
// records how many shots each game took.
type Runner struct {
	Games     int
	BoardSize int
	Strategy  battleship.Strategy
	Logger    *log.Logger
}

// Report aggregates turn counts over a benchmark run.
type Report struct {
	Games     int
	MeanTurns float64
	MinTurns  int
	MaxTurns  int
}

func (r *Runner) logger() *log.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return log.Default()
}

// Run plays r.Games independent games: fresh board, random fleet,
// strategy reset, then shoot until the fleet is sunk.
func (r *Runner) Run() (Report, error) {
	turns := make([]int, 0, r.Games)

	for i := 0; i < r.Games; i++ {
		board, err := placedBoard(r.BoardSize)
		if err != nil {
			return Report{}, err
		}

		r.Strategy.Reset()

		turnCount, err := clearBoard(board, r.Strategy)
		if err != nil {
			return Report{}, err
		}
		turns = append(turns, turnCount)

		if (i+1)%progressEvery == 0 {
			r.logger().Info("completed games", "count", i+1, "total", r.Games)
		}
	}

	return summarize(turns), nil
}

func placedBoard(size int) (*battleship.Board, error) {
	var err error
	for attempt := 0; attempt < boardAttempts; attempt++ {
		board := battleship.NewBoard(size)
		if err = board.RandomPlacement(); err == nil {
			return board, nil
		}
	}
	return nil, err
}

// clearBoard fires strategy-chosen shots until every ship is sunk and
// returns the number of shots it took. A strategy that runs out of
// cells first is an error; with a legal fleet it cannot happen.
func clearBoard(board *battleship.Board, strategy battleship.Strategy) (int, error) {
	turnCount := 0

	for !board.AllShipsSunk() {
		shot, ok := strategy.NextShot()
		if !ok {
			return 0, cerr.ErrStrategyExhausted(board.ShipsAfloat())
		}

		turnCount++
		strategy.RegisterResult(shot, board.ReceiveShot(shot))
	}

	return turnCount, nil
}

func summarize(turns []int) Report {
	report := Report{Games: len(turns)}
	if len(turns) == 0 {
		return report
	}

	total := 0
	report.MinTurns = turns[0]
	report.MaxTurns = turns[0]
	for _, t := range turns {
		total += t
		if t < report.MinTurns {
			report.MinTurns = t
		}
		if t > report.MaxTurns {
			report.MaxTurns = t
		}
	}
	report.MeanTurns = float64(total) / float64(len(turns))

	return report
}
