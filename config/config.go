package config

import (
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"battleship-sim/models/battleship"

	cerr "battleship-sim/internal/error"
)

type Config struct {
	BoardSize     int
	BenchGames    int
	BenchStrategy string
}

// Load reads settings from the environment, with a .env file filled in
// first outside prod. Unset variables fall back to defaults; variables
// set to something unparsable are an error.
func Load() (Config, error) {
	if os.Getenv("STAGE") != "prod" {
		if err := godotenv.Load(); err != nil {
			log.Debug("no .env file found, using environment variables")
		}
	}

	cfg := Config{
		BoardSize:     battleship.DefaultBoardSize,
		BenchGames:    100,
		BenchStrategy: "random",
	}

	if err := intVar(&cfg.BoardSize, "BOARD_SIZE"); err != nil {
		return Config{}, err
	}
	if err := intVar(&cfg.BenchGames, "BENCH_GAMES"); err != nil {
		return Config{}, err
	}
	if v := os.Getenv("BENCH_STRATEGY"); v != "" {
		cfg.BenchStrategy = v
	}

	return cfg, nil
}

func intVar(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}

	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return cerr.ErrInvalidEnvVar(key, v)
	}

	*dst = n
	return nil
}
