package engine

import (
	"quarto/experiments/metrics"
	"quarto/game"
)

// Player decides on behalf of one seat. ith is the 0-based preference index:
// the engine asks again with ith+1 when a decision is rejected, so players
// should offer their ranked alternatives in order. The state passed in is a
// private copy.
type Player interface {
	Select(state *game.GameState, ith int) game.Piece
	Place(state *game.GameState, piece game.Piece, ith int) (row, col int)
}

type Engine interface {
	// Run plays until the match is decided or a player runs out of attempts
	Run() (game.Outcome, metrics.MatchMetric, error)
}
