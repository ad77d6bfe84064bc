package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSerialize(t *testing.T) {
	t.Run("empty board is all zeros", func(t *testing.T) {
		s := Serialize(NewPlacementBoard(4, 4))
		require.Len(t, s, 16*4*4)
		require.Equal(t, strings.Repeat("0", 256), s)
	})

	t.Run("bit is set in the piece channel at the cell index", func(t *testing.T) {
		b := NewPlacementBoard(4, 4)
		require.NoError(t, b.Place(Piece(3), 1, 2))

		s := Serialize(b)

		require.Equal(t, 1, strings.Count(s, "1"))
		require.Equal(t, byte('1'), s[3*16+1*4+2])
	})
}

func TestDeserialize(t *testing.T) {
	t.Run("round trips boards reached by play", func(t *testing.T) {
		gs, err := NewGameState(NewStandardRules())
		require.NoError(t, err)
		moves := []Position{{0, 0}, {3, 3}, {1, 2}, {2, 0}, {0, 3}}
		pieces := []Piece{15, 0, 6, 9, 12}
		for i, pos := range moves {
			require.NoError(t, gs.Select(pieces[i]))
			require.NoError(t, gs.Place(pos.Row, pos.Col))

			got, err := Deserialize(Serialize(gs.Board()), 4, 4)
			require.NoError(t, err)
			require.True(t, gs.Board().Equal(got), "Board after %d placements should round trip", i+1)
		}
	})

	t.Run("round trips non square boards", func(t *testing.T) {
		b := NewPlacementBoard(2, 3)
		require.NoError(t, b.Place(Piece(14), 1, 2))
		require.NoError(t, b.Place(Piece(1), 0, 0))

		got, err := Deserialize(Serialize(b), 2, 3)

		require.NoError(t, err)
		require.True(t, b.Equal(got))
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		_, err := Deserialize("0101", 4, 4)
		require.ErrorIs(t, err, ErrInvalidOperation)
	})

	t.Run("rejects non binary characters", func(t *testing.T) {
		_, err := Deserialize(strings.Repeat("2", 256), 4, 4)
		require.ErrorIs(t, err, ErrInvalidOperation)
	})

	t.Run("rejects two pieces in one cell", func(t *testing.T) {
		bits := []byte(strings.Repeat("0", 256))
		bits[0*16+5] = '1'
		bits[1*16+5] = '1'
		_, err := Deserialize(string(bits), 4, 4)
		require.ErrorIs(t, err, ErrOccupiedCell)
	})

	t.Run("rejects a piece in two cells", func(t *testing.T) {
		bits := []byte(strings.Repeat("0", 256))
		bits[2*16+0] = '1'
		bits[2*16+1] = '1'
		_, err := Deserialize(string(bits), 4, 4)
		require.ErrorIs(t, err, ErrInvalidOperation)
	})
}
