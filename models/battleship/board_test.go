package battleship

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_PlaceShip(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		// given
		board := NewBoard(DefaultBoardSize)

		// when
		err := board.PlaceShip(NewShip(ShipCarrier, OrientationHorizontal, NewCoordinates(0, 0)))

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, board.ShipCount())
	})

	t.Run("fail, ship hangs off the grid", func(t *testing.T) {
		// given
		board := NewBoard(DefaultBoardSize)

		// when
		err := board.PlaceShip(NewShip(ShipCarrier, OrientationHorizontal, NewCoordinates(0, 7)))

		// then
		require.Error(t, err)
		assert.Equal(t, 0, board.ShipCount())
	})

	t.Run("fail, ships overlap", func(t *testing.T) {
		// given
		board := NewBoard(DefaultBoardSize)
		require.NoError(t, board.PlaceShip(NewShip(ShipCruiser, OrientationHorizontal, NewCoordinates(3, 3))))

		// when
		err := board.PlaceShip(NewShip(ShipDestroyer, OrientationVertical, NewCoordinates(2, 4)))

		// then
		require.Error(t, err)
		assert.Equal(t, 1, board.ShipCount())
	})
}

func TestBoard_RandomPlacement(t *testing.T) {
	t.Run("places the whole fleet without overlap", func(t *testing.T) {
		// given
		board := NewBoard(DefaultBoardSize)

		// when
		err := board.RandomPlacement()

		// then
		require.NoError(t, err)
		require.Equal(t, len(FleetShipKinds), board.ShipCount())

		seen := make(map[Coordinates]struct{})
		for _, kind := range FleetShipKinds {
			found := false
			for row := 0; row < board.Size() && !found; row++ {
				for col := 0; col < board.Size(); col++ {
					ship, ok := board.ShipAt(NewCoordinates(row, col))
					if ok && ship.Kind() == kind {
						found = true
						for _, p := range ship.Positions() {
							assert.GreaterOrEqual(t, p.Row, 0)
							assert.Less(t, p.Row, board.Size())
							assert.GreaterOrEqual(t, p.Col, 0)
							assert.Less(t, p.Col, board.Size())

							_, dup := seen[p]
							assert.False(t, dup, "two ships share cell %v", p)
							seen[p] = struct{}{}
						}
						break
					}
				}
			}
			assert.True(t, found, "fleet is missing a %s", kind.Name())
		}
	})

	t.Run("rebuilds the fleet on repeat calls", func(t *testing.T) {
		// given
		board := NewBoard(DefaultBoardSize)
		require.NoError(t, board.RandomPlacement())

		// when
		err := board.RandomPlacement()

		// then
		require.NoError(t, err)
		assert.Equal(t, len(FleetShipKinds), board.ShipCount())
	})

	t.Run("fail, grid too small for the carrier", func(t *testing.T) {
		// given
		board := NewBoard(3)

		// when
		err := board.RandomPlacement()

		// then
		assert.Error(t, err)
	})
}

func TestBoard_ReceiveShot(t *testing.T) {
	t.Run("sink a lone destroyer", func(t *testing.T) {
		// given
		board := NewBoard(DefaultBoardSize)
		require.NoError(t, board.PlaceShip(NewShip(ShipDestroyer, OrientationHorizontal, NewCoordinates(0, 0))))

		// when
		first := board.ReceiveShot(NewCoordinates(0, 0))

		// then
		assert.Equal(t, CellStateHit, first)
		assert.False(t, board.AllShipsSunk())

		// when the second cell goes down
		second := board.ReceiveShot(NewCoordinates(0, 1))

		// then
		assert.Equal(t, CellStateHit, second)
		assert.True(t, board.AllShipsSunk())
	})

	t.Run("repeat shots replay the recorded state", func(t *testing.T) {
		// given
		board := NewBoard(DefaultBoardSize)
		require.NoError(t, board.PlaceShip(NewShip(ShipDestroyer, OrientationHorizontal, NewCoordinates(0, 0))))
		ship, _ := board.ShipAt(NewCoordinates(0, 0))

		// when
		first := board.ReceiveShot(NewCoordinates(0, 0))
		repeat := board.ReceiveShot(NewCoordinates(0, 0))

		// then
		assert.Equal(t, first, repeat)
		assert.Equal(t, 1, ship.HitCount())
	})

	t.Run("miss on empty water, twice", func(t *testing.T) {
		// given
		board := NewBoard(DefaultBoardSize)
		require.NoError(t, board.PlaceShip(NewShip(ShipDestroyer, OrientationHorizontal, NewCoordinates(0, 0))))
		ship, _ := board.ShipAt(NewCoordinates(0, 0))

		// when
		first := board.ReceiveShot(NewCoordinates(5, 5))
		repeat := board.ReceiveShot(NewCoordinates(5, 5))

		// then
		assert.Equal(t, CellStateMiss, first)
		assert.Equal(t, CellStateMiss, repeat)
		assert.Equal(t, 0, ship.HitCount())
	})
}

func TestBoard_AllShipsSunk(t *testing.T) {
	// given
	board := NewBoard(DefaultBoardSize)
	require.NoError(t, board.RandomPlacement())

	// then a fresh fleet is afloat
	assert.False(t, board.AllShipsSunk())
	assert.Equal(t, len(FleetShipKinds), board.ShipsAfloat())

	// when every cell on the grid is shot
	for row := 0; row < board.Size(); row++ {
		for col := 0; col < board.Size(); col++ {
			board.ReceiveShot(NewCoordinates(row, col))
		}
	}

	// then
	assert.True(t, board.AllShipsSunk())
	assert.Equal(t, 0, board.ShipsAfloat())
}

func TestBoard_ShipAt(t *testing.T) {
	// given
	board := NewBoard(DefaultBoardSize)
	require.NoError(t, board.PlaceShip(NewShip(ShipCruiser, OrientationVertical, NewCoordinates(4, 4))))

	// when
	ship, ok := board.ShipAt(NewCoordinates(6, 4))
	_, empty := board.ShipAt(NewCoordinates(0, 0))

	// then
	require.True(t, ok)
	assert.Equal(t, ShipCruiser, ship.Kind())
	assert.False(t, empty)
}

func TestBoard_Render(t *testing.T) {
	// given
	board := NewBoard(5)
	require.NoError(t, board.PlaceShip(NewShip(ShipDestroyer, OrientationHorizontal, NewCoordinates(0, 0))))
	board.ReceiveShot(NewCoordinates(0, 0))
	board.ReceiveShot(NewCoordinates(4, 4))

	// when
	revealed := board.Render(true)
	hidden := board.Render(false)

	// then hits and misses show either way
	assert.Contains(t, revealed, symbolHit)
	assert.Contains(t, revealed, symbolMiss)
	assert.Contains(t, hidden, symbolHit)
	assert.Contains(t, hidden, symbolMiss)

	// then the unhit ship cell only shows when revealed
	assert.Contains(t, revealed, symbolShip)
	assert.NotContains(t, hidden, symbolShip)

	// then every row renders
	assert.Equal(t, 6, strings.Count(revealed, "\n"))
}
