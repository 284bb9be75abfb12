package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"battleship-sim/config"
	"battleship-sim/internal/ai"
	"battleship-sim/internal/benchmark"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("bad configuration", "err", err)
	}

	games := flag.Int("games", cfg.BenchGames, "number of games to simulate")
	strategyName := flag.String("strategy", cfg.BenchStrategy, "strategy to benchmark")
	boardSize := flag.Int("size", cfg.BoardSize, "board side length")
	flag.Parse()

	registry := ai.NewRegistry(*boardSize, nil)
	strategy, err := registry.New(*strategyName)
	if err != nil {
		log.Fatal("unknown strategy", "name", *strategyName,
			"known", strings.Join(registry.Names(), ", "))
	}

	log.Info("simulating games", "strategy", *strategyName, "games", *games, "board_size", *boardSize)

	runner := benchmark.Runner{
		Games:     *games,
		BoardSize: *boardSize,
		Strategy:  strategy,
	}
	report, err := runner.Run()
	if err != nil {
		log.Fatal("benchmark failed", "err", err)
	}

	log.Info("simulation finished",
		"strategy", *strategyName,
		"games", report.Games,
		"mean_turns", fmt.Sprintf("%.1f", report.MeanTurns),
		"min_turns", report.MinTurns,
		"max_turns", report.MaxTurns,
	)
}
