package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"battleship-sim/config"
	"battleship-sim/internal/ai"
	"battleship-sim/models/battleship"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("bad configuration", "err", err)
	}

	strategy := ai.NewRandomStrategy(cfg.BoardSize, nil)
	game := battleship.NewGame(cfg.BoardSize, strategy)
	if err := game.Setup(); err != nil {
		log.Fatal("could not place fleets", "err", err)
	}
	log.Info("game set up", "id", game.Id(), "board_size", cfg.BoardSize)

	fmt.Println("Welcome to Battleship!")
	fmt.Println("Ships have been placed. Let's play!")

	scanner := bufio.NewScanner(os.Stdin)
	for !game.Over() {
		displayBoards(game)

		shot, ok := promptShot(scanner, cfg.BoardSize)
		if !ok {
			// stdin closed, nothing more to read
			return
		}
		if shot == battleship.InvalidCoordinates {
			fmt.Println("Invalid position! Try again.")
			continue
		}

		turn := game.PlayTurn(shot)

		fmt.Printf("\nYour shot at (%d, %d) was a %s!\n",
			turn.PlayerShot.Row, turn.PlayerShot.Col, turn.PlayerResult)
		if turn.AIFired {
			fmt.Printf("AI shot at (%d, %d) was a %s!\n",
				turn.AIShot.Row, turn.AIShot.Col, turn.AIResult)
		}
	}

	displayBoards(game)
	fmt.Printf("\nGame Over! The winner is: %s\n", game.Winner())
	fmt.Printf("Total turns: %d\n", game.Turns())
}

func displayBoards(game *battleship.Game) {
	fmt.Println("\nYour Board:")
	fmt.Print(game.PlayerBoard().Render(true))

	fmt.Println("\nAI's Board:")
	fmt.Print(game.AIBoard().Render(false))

	fmt.Println("\nLegend: · = Unknown, O = Miss, X = Hit, S = Ship")
}

// promptShot reads a row and a column from the scanner. It reports
// ok=false on EOF and InvalidCoordinates on malformed or out-of-bound
// input; valid coordinates are the only thing handed to the game.
func promptShot(scanner *bufio.Scanner, boardSize int) (battleship.Coordinates, bool) {
	row, ok := promptInt(scanner, "\nEnter row for your shot: ")
	if !ok {
		return battleship.InvalidCoordinates, false
	}
	col, ok := promptInt(scanner, "Enter column for your shot: ")
	if !ok {
		return battleship.InvalidCoordinates, false
	}

	if row < 0 || row >= boardSize || col < 0 || col >= boardSize {
		return battleship.InvalidCoordinates, true
	}
	return battleship.NewCoordinates(row, col), true
}

func promptInt(scanner *bufio.Scanner, prompt string) (int, bool) {
	fmt.Print(prompt)
	if !scanner.Scan() {
		return 0, false
	}

	n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return -1, true
	}
	return n, true
}
