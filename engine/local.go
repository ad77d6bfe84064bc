package engine

import (
	"fmt"
	"quarto/experiments/metrics"
	"quarto/game"
	"quarto/meta"
	"time"

	"github.com/rs/zerolog/log"
)

var _ Engine = (*LocalEngine)(nil)

type LocalEngine struct {
	State   *game.GameState
	Players [2]Player
	retries int
	places  int
}

// NewLocalEngine starts a match under rules with p1 selecting first.
func NewLocalEngine(rules game.Rules, p1, p2 Player) (*LocalEngine, error) {
	if p1 == nil || p2 == nil {
		return nil, fmt.Errorf("need two players: %w", game.ErrInvalidOperation)
	}
	state, err := game.NewGameState(rules)
	if err != nil {
		return nil, err
	}
	return &LocalEngine{
		State:   state,
		Players: [2]Player{p1, p2},
	}, nil
}

func (e *LocalEngine) player(seat game.Seat) Player {
	return e.Players[seat-1]
}

// Step asks the active player for one decision and applies it. Rejected
// decisions are retried with the next preference index up to meta.MAX_TRIES
// times, after which the match is aborted with game.ErrNoLegalMoveFound.
func (e *LocalEngine) Step() error {
	if e.State.IsOver() {
		return fmt.Errorf("step after game over: %w", game.ErrIllegalPhase)
	}
	seat := e.State.Active()
	phase := e.State.Phase()
	p := e.player(seat)

	for attempt := 0; attempt < meta.MAX_TRIES; attempt++ {
		move := e.decide(p, attempt)
		err := e.State.Apply(move)
		if err == nil {
			if move.Action == game.PlaceAction {
				e.places++
			}
			return nil
		}
		e.retries++
		log.Debug().Err(err).Msgf("%s attempt %d to %s rejected", seat, attempt+1, phase)
	}
	return fmt.Errorf("%s gave no legal %s decision in %d attempts: %w", seat, phase, meta.MAX_TRIES, game.ErrNoLegalMoveFound)
}

func (e *LocalEngine) decide(p Player, attempt int) game.Move {
	view := e.State.Clone()
	if e.State.Phase() == game.SelectPhase {
		m := game.SelectMove(p.Select(view, attempt))
		m.Attempt = attempt
		return m
	}
	piece, _ := e.State.Selected()
	row, col := p.Place(view, piece, attempt)
	m := game.PlaceMove(row, col)
	m.Attempt = attempt
	return m
}

// Run executes the entire game loop until the match is decided.
func (e *LocalEngine) Run() (game.Outcome, metrics.MatchMetric, error) {
	start := time.Now()
	metric := metrics.MatchMetric{
		StartingPlayer: e.State.Active(),
		StartTime:      start,
	}

	log.Debug().Msgf("%s is starting", e.State.Active())

	var err error
	for !e.State.IsOver() {
		if err = e.Step(); err != nil {
			break
		}
	}

	outcome := e.State.Outcome()
	metric.Status = outcome.Status
	if outcome.Status == game.Win {
		metric.Winner = outcome.Winner.String()
	}
	metric.EndTime = time.Now()
	metric.Duration = metric.EndTime.Sub(start)
	metric.Places = e.places
	metric.Retries = e.retries

	if err != nil {
		log.Error().Err(err).Msg("match aborted")
		return outcome, metric, err
	}
	log.Info().Msgf("match over after %d placements: %s", e.places, outcome)
	return outcome, metric, nil
}
