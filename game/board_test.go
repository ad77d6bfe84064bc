package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// placeAll puts pieces on a fresh 4x4 board in order and returns the board.
func placeAll(t *testing.T, cells []Position, pieces []Piece) *Board {
	t.Helper()
	b := NewPlacementBoard(4, 4)
	for i, pos := range cells {
		require.NoError(t, b.Place(pieces[i], pos.Row, pos.Col))
	}
	return b
}

func TestBoardPlace(t *testing.T) {
	t.Run("placing on an empty cell records the last placement", func(t *testing.T) {
		b := NewPlacementBoard(4, 4)
		require.True(t, b.IsEmpty(2, 3))

		require.NoError(t, b.Place(Piece(5), 2, 3))

		require.False(t, b.IsEmpty(2, 3))
		got, ok := b.At(2, 3)
		require.True(t, ok)
		require.Equal(t, Piece(5), got)
		last, ok := b.LastPlaced()
		require.True(t, ok)
		require.Equal(t, Position{Row: 2, Col: 3}, last)
		require.Equal(t, 1, b.Count())
	})

	t.Run("placing on an occupied cell fails", func(t *testing.T) {
		b := NewPlacementBoard(4, 4)
		require.NoError(t, b.Place(Piece(5), 0, 0))

		err := b.Place(Piece(6), 0, 0)

		require.ErrorIs(t, err, ErrOccupiedCell)
		got, _ := b.At(0, 0)
		require.Equal(t, Piece(5), got, "Occupant should not change")
	})

	t.Run("placing outside the board fails", func(t *testing.T) {
		b := NewPlacementBoard(4, 4)
		require.ErrorIs(t, b.Place(Piece(1), 4, 0), ErrInvalidOperation)
		require.ErrorIs(t, b.Place(Piece(1), 0, -1), ErrInvalidOperation)
		require.False(t, b.IsEmpty(4, 0), "Cells outside the board are never empty")
	})

	t.Run("placing on the supply board fails", func(t *testing.T) {
		s, err := NewSupplyBoard(2, 8)
		require.NoError(t, err)
		require.ErrorIs(t, s.Place(Piece(1), 0, 0), ErrInvalidOperation)
	})
}

func TestBoardRemove(t *testing.T) {
	t.Run("supply board starts with every piece", func(t *testing.T) {
		s, err := NewSupplyBoard(2, 8)
		require.NoError(t, err)
		require.True(t, s.IsFull())
		require.Equal(t, AllPieces(), s.Pieces())
	})

	t.Run("supply must hold sixteen cells", func(t *testing.T) {
		_, err := NewSupplyBoard(3, 5)
		require.ErrorIs(t, err, ErrInvalidOperation)
	})

	t.Run("removing returns the piece and empties the cell", func(t *testing.T) {
		s, _ := NewSupplyBoard(2, 8)

		p, err := s.Remove(1, 2)

		require.NoError(t, err)
		require.Equal(t, Piece(10), p)
		require.True(t, s.IsEmpty(1, 2))
		_, found := s.Find(Piece(10))
		require.False(t, found)
		require.Equal(t, NumPieces-1, s.Count())
	})

	t.Run("removing from an empty cell fails", func(t *testing.T) {
		s, _ := NewSupplyBoard(2, 8)
		_, err := s.Remove(0, 0)
		require.NoError(t, err)

		_, err = s.Remove(0, 0)

		require.ErrorIs(t, err, ErrEmptyCell)
	})

	t.Run("removing from the placement board fails", func(t *testing.T) {
		b := NewPlacementBoard(4, 4)
		require.NoError(t, b.Place(Piece(3), 0, 0))

		_, err := b.Remove(0, 0)

		require.ErrorIs(t, err, ErrInvalidOperation)
	})
}

func TestBoardFind(t *testing.T) {
	s, _ := NewSupplyBoard(2, 8)
	pos, ok := s.Find(Piece(9))
	require.True(t, ok)
	require.Equal(t, Position{Row: 1, Col: 1}, pos)

	b := NewPlacementBoard(4, 4)
	_, ok = b.Find(Piece(9))
	require.False(t, ok)
}

func TestBoardIsFull(t *testing.T) {
	b := NewPlacementBoard(2, 2)
	for i, pos := range []Position{{0, 0}, {0, 1}, {1, 0}} {
		require.NoError(t, b.Place(Piece(i), pos.Row, pos.Col))
		require.False(t, b.IsFull())
	}
	require.NoError(t, b.Place(Piece(3), 1, 1))
	require.True(t, b.IsFull())
	require.Empty(t, b.EmptyCells())
}

func TestBoardCheckWin(t *testing.T) {
	row := []Position{{1, 0}, {1, 1}, {1, 2}, {1, 3}}

	t.Run("row sharing only the hole wins", func(t *testing.T) {
		b := placeAll(t, row, []Piece{1, 7, 11, 13})

		line, won := b.CheckWin(false)

		require.True(t, won)
		require.Equal(t, RowLine, line.Kind)
		require.Equal(t, row, line.Cells)
	})

	t.Run("row without a shared attribute does not win", func(t *testing.T) {
		b := placeAll(t, row, []Piece{0, 7, 11, 13})

		_, won := b.CheckWin(false)

		require.False(t, won)
	})

	t.Run("line with an empty cell never wins", func(t *testing.T) {
		b := placeAll(t, row[:3], []Piece{1, 3, 5})

		_, won := b.CheckWin(true)

		require.False(t, won)
	})

	t.Run("column wins", func(t *testing.T) {
		col := []Position{{0, 2}, {1, 2}, {2, 2}, {3, 2}}
		b := placeAll(t, col, []Piece{8, 9, 10, 11})

		line, won := b.CheckWin(false)

		require.True(t, won)
		require.Equal(t, ColumnLine, line.Kind)
		require.Equal(t, col, line.Cells)
	})

	t.Run("main diagonal wins", func(t *testing.T) {
		diag := []Position{{0, 0}, {1, 1}, {3, 3}, {2, 2}}
		b := placeAll(t, diag, []Piece{4, 5, 6, 7})

		line, won := b.CheckWin(false)

		require.True(t, won)
		require.Equal(t, DiagonalLine, line.Kind)
	})

	t.Run("anti diagonal wins", func(t *testing.T) {
		anti := []Position{{0, 3}, {1, 2}, {2, 1}, {3, 0}}
		b := placeAll(t, anti, []Piece{2, 3, 6, 7})

		line, won := b.CheckWin(false)

		require.True(t, won)
		require.Equal(t, AntiDiagonalLine, line.Kind)
		require.Equal(t, anti, line.Cells)
	})

	t.Run("only lines through the last placement are checked", func(t *testing.T) {
		b := placeAll(t, row, []Piece{1, 7, 11, 13})
		require.NoError(t, b.Place(Piece(0), 3, 3))

		_, won := b.CheckWin(false)
		require.False(t, won, "Winning row does not pass through the last cell")

		_, won = b.CheckWinAll(false)
		require.True(t, won, "Full scan still finds the row")
	})

	t.Run("rows are reported before columns", func(t *testing.T) {
		cells := []Position{{0, 1}, {0, 2}, {0, 3}, {1, 0}, {2, 0}, {3, 0}, {0, 0}}
		b := placeAll(t, cells, []Piece{2, 4, 6, 8, 10, 12, 14})

		line, won := b.CheckWin(false)

		require.True(t, won)
		require.Equal(t, RowLine, line.Kind)
	})
}

func TestBoardCheckWinSquareMode(t *testing.T) {
	block := []Position{{1, 1}, {1, 2}, {2, 1}, {2, 2}}
	circles := []Piece{0, 5, 9, 12}

	t.Run("2x2 block of circles does not win in line mode", func(t *testing.T) {
		b := placeAll(t, block, circles)

		_, won := b.CheckWin(false)

		require.False(t, won)
	})

	t.Run("same block wins in square mode", func(t *testing.T) {
		b := placeAll(t, block, circles)

		line, won := b.CheckWin(true)

		require.True(t, won)
		require.Equal(t, SquareBlock, line.Kind)
		require.ElementsMatch(t, block, line.Cells)
	})

	t.Run("blocks at the board edge are clipped", func(t *testing.T) {
		corner := []Position{{2, 2}, {2, 3}, {3, 2}, {3, 3}}
		b := placeAll(t, corner, circles)

		line, won := b.CheckWin(true)

		require.True(t, won)
		require.ElementsMatch(t, corner, line.Cells)
	})

	t.Run("full scan finds blocks only in square mode", func(t *testing.T) {
		b := placeAll(t, block, circles)
		_, won := b.CheckWinAll(false)
		require.False(t, won)
		_, won = b.CheckWinAll(true)
		require.True(t, won)
	})
}

func TestBoardClone(t *testing.T) {
	b := NewPlacementBoard(4, 4)
	require.NoError(t, b.Place(Piece(1), 0, 0))

	c := b.Clone()
	require.True(t, b.Equal(c))
	require.NoError(t, c.Place(Piece(2), 1, 1))

	require.True(t, b.IsEmpty(1, 1), "Clone should not share cells with the original")
	require.False(t, b.Equal(c))
}

func TestBoardString(t *testing.T) {
	b := NewPlacementBoard(2, 2)
	require.NoError(t, b.Place(NewPiece(Tall, Beige, Circle, WithHole), 0, 1))
	require.Equal(t, "---- TBCH\n---- ----\n", b.String())
}
