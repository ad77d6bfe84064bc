package game

import (
	"fmt"
	"strings"
)

// Serialize encodes a placement board as a bit string of length 16*rows*cols.
// Bit piece*rows*cols + row*cols + col is set when that piece occupies that
// cell, i.e. a one-hot tensor laid out piece-channel first. Empty cells have
// no bit set in any channel.
func Serialize(b *Board) string {
	area := b.rows * b.cols
	bits := make([]byte, NumPieces*area)
	for i := range bits {
		bits[i] = '0'
	}
	for i, ok := range b.filled {
		if ok {
			bits[b.cells[i].Index()*area+i] = '1'
		}
	}
	return string(bits)
}

// Deserialize decodes a bit string produced by Serialize into a placement board.
// The decoded board has no last placement.
func Deserialize(s string, rows, cols int) (*Board, error) {
	area := rows * cols
	if len(s) != NumPieces*area {
		return nil, fmt.Errorf("board serialization has length %d, want %d: %w", len(s), NumPieces*area, ErrInvalidOperation)
	}
	if i := strings.IndexFunc(s, func(r rune) bool { return r != '0' && r != '1' }); i >= 0 {
		return nil, fmt.Errorf("board serialization has non-binary character at %d: %w", i, ErrInvalidOperation)
	}

	b := NewPlacementBoard(rows, cols)
	seen := make([]bool, NumPieces)
	for piece := 0; piece < NumPieces; piece++ {
		channel := s[piece*area : (piece+1)*area]
		for cell := 0; cell < area; cell++ {
			if channel[cell] != '1' {
				continue
			}
			if seen[piece] {
				return nil, fmt.Errorf("piece %s appears twice: %w", Piece(piece), ErrInvalidOperation)
			}
			if b.filled[cell] {
				return nil, fmt.Errorf("cell %d holds two pieces: %w", cell, ErrOccupiedCell)
			}
			seen[piece] = true
			b.cells[cell] = Piece(piece)
			b.filled[cell] = true
			b.count++
		}
	}
	return b, nil
}
