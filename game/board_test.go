package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBoard(t *testing.T) {
	t.Run("parsing a valid position", func(t *testing.T) {
		b, err := ParseBoard(
			"....",
			"....",
			".O..",
			"XX2.",
		)

		require.NoError(t, err)
		require.Equal(t, 4, b.Rows())
		require.Equal(t, 4, b.Cols())
		require.Equal(t, Player1.Cell(), b.At(3, 0))
		require.Equal(t, Player1.Cell(), b.At(3, 1))
		require.Equal(t, Player2.Cell(), b.At(3, 2))
		require.Equal(t, Player2.Cell(), b.At(2, 1))
		require.Equal(t, Empty, b.At(3, 3))
		require.Equal(t, Player2, b.At(2, 1).Player())
		require.Equal(t, NoPlayer, b.At(3, 3).Player())
	})

	t.Run("rejecting a floating piece", func(t *testing.T) {
		_, err := ParseBoard(
			"X...",
			"....",
		)

		require.ErrorIs(t, err, ErrInvalidBoard)
	})

	t.Run("rejecting ragged rows", func(t *testing.T) {
		_, err := ParseBoard(
			"....",
			"...",
		)

		require.ErrorIs(t, err, ErrInvalidBoard)
	})

	t.Run("rejecting unknown symbols", func(t *testing.T) {
		_, err := ParseBoard("..?.")

		require.ErrorIs(t, err, ErrInvalidBoard)
	})

	t.Run("rejecting an empty description", func(t *testing.T) {
		_, err := ParseBoard()

		require.ErrorIs(t, err, ErrInvalidBoard)
	})
}

func TestBoardString(t *testing.T) {
	lines := []string{
		".......",
		".......",
		"...O...",
		"..XX...",
		".OXO...",
		"XOXOX..",
	}
	b, err := ParseBoard(lines...)
	require.NoError(t, err)

	require.Equal(t, strings.Join(lines, "\n"), b.String())

	again, err := ParseBoard(strings.Split(b.String(), "\n")...)
	require.NoError(t, err)
	require.True(t, b.Equal(again), "String output should parse back to the same board")
}

func TestBoardCopy(t *testing.T) {
	b := NewBoard(6, 7)
	c := b.Copy()
	c.set(5, 3, Player1.Cell())

	require.Equal(t, Empty, b.At(5, 3), "Mutating a copy should not affect the original")
	require.False(t, b.Equal(c))
	require.True(t, b.Equal(NewBoard(6, 7)))
	require.False(t, b.Equal(NewBoard(7, 6)), "Boards with different shapes are never equal")
}

func TestNewBoardPanicsOnInvalidDimensions(t *testing.T) {
	require.Panics(t, func() { NewBoard(0, 7) })
	require.Panics(t, func() { NewBoard(6, -1) })
}

func TestPlayerOther(t *testing.T) {
	require.Equal(t, Player2, Player1.Other())
	require.Equal(t, Player1, Player2.Other())
	require.Panics(t, func() { NoPlayer.Other() })
}
