package searcher

import (
	"quarto/experiments/metrics"
	"quarto/game"
	"quarto/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"
)

// Scores are seen by the player about to place: a win now is worth
// WIN_SCORE plus the remaining depth, so sooner wins rank higher. Draws and
// positions past the horizon are worth 0.
const (
	winScore = meta.WIN_SCORE
	infinity = 1 << 20
)

type Option func(m *Minimax)

// Minimax is an alpha-beta player. It searches once per turn and serves the
// ranked actions for every retry index of that turn from a cache.
type Minimax struct {
	depth      int
	goroutines int
	metrics    metrics.Collector
	searches   []metrics.SearchMetric

	recalculate bool
	cacheHash   game.StateHash
	ranked      []game.Move
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

// WithGoroutines evaluates root actions in parallel, each on its own branch.
func WithGoroutines(goroutines int) Option {
	return func(m *Minimax) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depth:      meta.DEFAULT_DEPTH,
		goroutines: 1,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) Depth() int { return m.depth }

// Select returns the ith best piece to hand to the opponent.
func (m *Minimax) Select(state *game.GameState, ith int) game.Piece {
	move, ok := m.ranking(state, ith)
	if !ok || move.Action != game.SelectAction {
		return fallbackPiece(state)
	}
	return move.Piece
}

// Place returns the ith best cell for the piece in hand.
func (m *Minimax) Place(state *game.GameState, piece game.Piece, ith int) (int, int) {
	if held, ok := state.Selected(); ok && held != piece {
		log.Warn().Msgf("asked to place %s while holding %s", piece, held)
	}
	move, ok := m.ranking(state, ith)
	if !ok || move.Action != game.PlaceAction {
		return fallbackCell(state)
	}
	return move.Row, move.Col
}

// TakeMetrics returns the metrics of every search since the last call.
func (m *Minimax) TakeMetrics() []metrics.SearchMetric {
	searches := m.searches
	m.searches = nil
	return searches
}

// ranking searches at the start of a turn (ith == 0 or a new position) and
// reads the cached order for later retries.
func (m *Minimax) ranking(state *game.GameState, ith int) (game.Move, bool) {
	hash := state.Hash()
	if ith == 0 || hash != m.cacheHash || m.ranked == nil {
		m.recalculate = true
	}
	if m.recalculate {
		m.ranked = m.rank(state)
		m.cacheHash = hash
		m.recalculate = false
	} else if len(m.ranked) > 0 {
		m.searches = append(m.searches, metrics.SearchMetric{
			Action:     m.ranked[0].Action,
			Depth:      m.depth,
			Goroutines: m.goroutines,
			IsCacheHit: true,
		})
	}

	if ith < 0 || ith >= len(m.ranked) {
		return game.Move{}, false
	}
	return m.ranked[ith], true
}

// rank scores every legal root action and orders them best first. Each root
// action gets a full window so its score is exact and the order is the same
// whether or not the root is evaluated in parallel.
func (m *Minimax) rank(state *game.GameState) []game.Move {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return []game.Move{}
	}
	action := moves[0].Action
	m.metrics.Start(action, m.depth, m.goroutines)

	scores := make([]int, len(moves))
	if m.goroutines > 1 {
		var g errgroup.Group
		g.SetLimit(m.goroutines)
		for i := range moves {
			i := i
			g.Go(func() error {
				scores[i] = m.evaluateRoot(state, moves[i])
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i := range moves {
			scores[i] = m.evaluateRoot(state, moves[i])
		}
	}

	order := make([]int, len(moves))
	for i := range order {
		order[i] = i
	}
	// Placing maximizes the placer's score, selecting minimizes the receiver's.
	slices.SortStableFunc(order, func(a, b int) int {
		if action == game.PlaceAction {
			return scores[b] - scores[a]
		}
		return scores[a] - scores[b]
	})

	ranked := make([]game.Move, len(order))
	for i, idx := range order {
		ranked[i] = moves[idx]
	}

	metric := m.metrics.Complete(scores[order[0]])
	m.searches = append(m.searches, metric)
	log.Debug().
		Str("action", action.String()).
		Int("depth", m.depth).
		Int("nodes", metric.Nodes).
		Int("cutoffs", metric.Cutoffs).
		Int("best", scores[order[0]]).
		Msg("minimax-search")

	return ranked
}

func (m *Minimax) evaluateRoot(state *game.GameState, move game.Move) int {
	child := state.Branch()
	if err := child.Apply(move); err != nil {
		panic("legal root move rejected: " + err.Error())
	}
	m.metrics.AddNode()

	if move.Action == game.SelectAction {
		return m.placing(child, m.depth-1, -infinity, infinity)
	}
	switch child.Outcome().Status {
	case game.Win:
		return winScore + m.depth
	case game.Draw:
		return 0
	}
	return -m.selecting(child, m.depth-1, -infinity, infinity)
}

// placing is the maximizing ply. It returns the value for the player placing.
func (m *Minimax) placing(state *game.GameState, depth, alpha, beta int) int {
	if score, done := terminal(state, depth); done {
		return score
	}

	best := -infinity
	for _, pos := range state.EmptyCells() {
		child := state.Branch()
		if err := child.Place(pos.Row, pos.Col); err != nil {
			panic("empty cell rejected: " + err.Error())
		}
		m.metrics.AddNode()

		var score int
		switch child.Outcome().Status {
		case game.Win:
			return winScore + depth // nothing beats winning now
		case game.Draw:
			score = 0
		default:
			// The placer now selects; the receiver's gain is the placer's loss.
			score = -m.selecting(child, depth-1, -beta, -alpha)
		}

		best = max(best, score)
		alpha = max(alpha, score)
		if beta <= alpha {
			m.metrics.AddCutoff()
			break
		}
	}
	return best
}

// selecting is the minimizing ply. It returns the value for the player
// receiving the piece, which the selector wants as low as possible.
func (m *Minimax) selecting(state *game.GameState, depth, alpha, beta int) int {
	if score, done := terminal(state, depth); done {
		return score
	}

	best := infinity
	for _, p := range state.AvailablePieces() {
		child := state.Branch()
		if err := child.Select(p); err != nil {
			panic("available piece rejected: " + err.Error())
		}
		m.metrics.AddNode()

		score := m.placing(child, depth-1, alpha, beta)
		best = min(best, score)
		beta = min(beta, score)
		if beta <= alpha {
			m.metrics.AddCutoff()
			break
		}
	}
	return best
}

// terminal scores finished positions and the search horizon from the point
// of view of the next player to place.
func terminal(state *game.GameState, depth int) (int, bool) {
	switch out := state.Outcome(); out.Status {
	case game.Win:
		if state.Phase() == game.PlacePhase && out.Winner != state.Active() {
			return winScore + depth, true
		}
		return -(winScore + depth), true
	case game.Draw:
		return 0, true
	}
	if state.Board().IsFull() || depth <= 0 {
		return 0, true
	}
	return 0, false
}

func fallbackPiece(state *game.GameState) game.Piece {
	pieces := state.AvailablePieces()
	if state.IsOver() || len(pieces) == 0 {
		return game.NoPiece
	}
	log.Warn().Msg("minimax found no ranked piece, picking at random")
	return pieces[frand.Intn(len(pieces))]
}

func fallbackCell(state *game.GameState) (int, int) {
	cells := state.EmptyCells()
	if state.IsOver() || len(cells) == 0 {
		return -1, -1
	}
	log.Warn().Msg("minimax found no ranked cell, picking at random")
	pos := cells[frand.Intn(len(cells))]
	return pos.Row, pos.Col
}
