package player

import (
	"quarto/game"

	"golang.org/x/exp/rand"
)

// Random picks uniformly among the legal pieces and cells. The preference
// index is ignored since every pick is already legal.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a random player; equal seeds replay equal matches.
func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) Select(state *game.GameState, ith int) game.Piece {
	pieces := state.AvailablePieces()
	if len(pieces) == 0 {
		return game.NoPiece
	}
	return pieces[r.rng.Intn(len(pieces))]
}

func (r *Random) Place(state *game.GameState, piece game.Piece, ith int) (int, int) {
	cells := state.EmptyCells()
	if len(cells) == 0 {
		return -1, -1
	}
	pos := cells[r.rng.Intn(len(cells))]
	return pos.Row, pos.Col
}
