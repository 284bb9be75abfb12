package error

import "fmt"

func ErrShipOutOfBounds(ship string, row, col int) error {
	return fmt.Errorf("ship does not fit in the grid, ship: %s\trow: %d\tcol: %d", ship, row, col)
}

func ErrShipOverlap(ship string, row, col int) error {
	return fmt.Errorf("ship overlaps an already placed ship, ship: %s\trow: %d\tcol: %d", ship, row, col)
}

func ErrShipLargerThanGrid(ship string, size, gridSize int) error {
	return fmt.Errorf("ship is longer than the grid side, ship: %s\tsize: %d\tgrid: %d", ship, size, gridSize)
}

func ErrPlacementExhausted(ship string, attempts int) error {
	return fmt.Errorf("no legal placement found for ship after all attempts, ship: %s\tattempts: %d", ship, attempts)
}

func ErrCoordsOutOfGridBound(row, col, size int) error {
	return fmt.Errorf("incoming row or col is out of game grid bound\trow: %d\tcol: %d\tgrid: %d", row, col, size)
}

func ErrUnknownStrategy(name string) error {
	return fmt.Errorf("no strategy registered under this name: %s", name)
}

func ErrInvalidEnvVar(key, value string) error {
	return fmt.Errorf("env var must be a positive integer, key: %s\tvalue: %s", key, value)
}

func ErrStrategyExhausted(shipsLeft int) error {
	return fmt.Errorf("strategy ran out of positions with ships still afloat, ships left: %d", shipsLeft)
}
