package experiments

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"quarto/engine"
	"quarto/experiments/metrics"
	"quarto/game"
	"quarto/player"
	"quarto/searcher"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"
)

const (
	RandomAgent  = "random"
	MinimaxAgent = "minimax"
	HumanAgent   = "human"
)

// Tally counts match results from the seats' point of view.
type Tally struct {
	Player1Wins int
	Player2Wins int
	Draws       int
	Aborted     int // a player ran out of attempts
}

func (t Tally) String() string {
	return fmt.Sprintf("Player 1 wins: %d, Player 2 wins: %d, draws: %d, aborted: %d",
		t.Player1Wins, t.Player2Wins, t.Draws, t.Aborted)
}

// Tournament plays Matches games between Agent1 (Player 1) and Agent2
// (Player 2). With a Writer set, every move log is exported together with the
// agent configs, match records and search records.
type Tournament struct {
	Rules   game.Rules
	Agent1  metrics.AgentConfig
	Agent2  metrics.AgentConfig
	Matches int
	Writer  *metrics.Writer

	// Human agents read from In and prompt on Out
	In  io.Reader
	Out io.Writer

	scanner *bufio.Scanner
}

// searchReporter is implemented by players that record search metrics.
type searchReporter interface {
	TakeMetrics() []metrics.SearchMetric
}

func (t *Tournament) Run() (Tally, error) {
	var tally Tally
	if t.Matches <= 0 {
		return tally, fmt.Errorf("tournament needs at least one match, got %d: %w", t.Matches, game.ErrInvalidOperation)
	}

	matchRecords := []metrics.MatchRecord{}
	searchRecords := []metrics.SearchRecord{}

	if t.In != nil {
		t.scanner = bufio.NewScanner(t.In)
	}

	log.Info().Msgf("starting %d matches between agent1=%+v and agent2=%+v...", t.Matches, t.Agent1, t.Agent2)

	for i := 1; i <= t.Matches; i++ {
		p1, err := NewPlayer(t.Agent1, uint64(i), t.scanner, t.Out)
		if err != nil {
			return tally, err
		}
		p2, err := NewPlayer(t.Agent2, uint64(i), t.scanner, t.Out)
		if err != nil {
			return tally, err
		}
		e, err := engine.NewLocalEngine(t.Rules, p1, p2)
		if err != nil {
			return tally, err
		}

		log.Info().Msgf("starting match %d of %d...", i, t.Matches)
		outcome, matchMetric, err := e.Run()
		switch {
		case errors.Is(err, game.ErrNoLegalMoveFound):
			tally.Aborted++
		case err != nil:
			return tally, err
		case outcome.Status == game.Draw:
			tally.Draws++
		case outcome.Winner == game.Player1:
			tally.Player1Wins++
		default:
			tally.Player2Wins++
		}

		record := metrics.MatchRecord{
			ID:          i,
			Agent1:      t.Agent1.ID,
			Agent2:      t.Agent2.ID,
			MatchMetric: matchMetric,
		}
		if t.Writer != nil {
			path, err := t.Writer.WriteMoveLog(i, e.State.History(), t.Rules.Cols)
			if err != nil {
				return tally, err
			}
			record.LogFile = path
			log.Debug().Msgf("saved move log to %s", path)
		}
		matchRecords = append(matchRecords, record)
		searchRecords = append(searchRecords, collectSearches(i, t.Agent1.ID, p1)...)
		searchRecords = append(searchRecords, collectSearches(i, t.Agent2.ID, p2)...)

		log.Info().Msgf("completed match %d of %d: %s", i, t.Matches, outcome)
	}

	log.Info().Msgf("completed tournament: %s", tally)

	if t.Writer == nil {
		return tally, nil
	}
	if err := t.Writer.WriteAgentConfigs([]metrics.AgentConfig{t.Agent1, t.Agent2}); err != nil {
		return tally, err
	}
	log.Info().Msg("stored agent configs")
	if err := t.Writer.WriteMatchRecords(matchRecords); err != nil {
		return tally, err
	}
	log.Info().Msg("stored match records")
	if err := t.Writer.WriteSearchRecords(searchRecords); err != nil {
		return tally, err
	}
	log.Info().Msg("stored search records")
	return tally, nil
}

func collectSearches(match, agent int, p engine.Player) []metrics.SearchRecord {
	reporter, ok := p.(searchReporter)
	if !ok {
		return nil
	}
	records := []metrics.SearchRecord{}
	for _, sm := range reporter.TakeMetrics() {
		records = append(records, metrics.SearchRecord{
			Match:        match,
			Agent:        agent,
			SearchMetric: sm,
		})
	}
	return records
}

// NewPlayer builds the player an agent config describes. Random agents with
// seed 0 draw a fresh seed; others offset their seed by match so each match
// differs but replays identically.
func NewPlayer(config metrics.AgentConfig, match uint64, in *bufio.Scanner, out io.Writer) (engine.Player, error) {
	switch config.Kind {
	case RandomAgent:
		seed := config.Seed + match
		if config.Seed == 0 {
			seed = frand.Uint64n(1<<63 - 1)
		}
		return player.NewRandom(seed), nil
	case MinimaxAgent:
		options := []searcher.Option{searcher.WithMetrics()}
		if config.Depth > 0 {
			options = append(options, searcher.WithDepth(config.Depth))
		}
		if config.Goroutines > 0 {
			options = append(options, searcher.WithGoroutines(config.Goroutines))
		}
		return searcher.NewMinimax(options...), nil
	case HumanAgent:
		if in == nil || out == nil {
			return nil, fmt.Errorf("human agent %d needs input and output: %w", config.ID, game.ErrInvalidOperation)
		}
		return player.NewHuman(fmt.Sprintf("agent %d", config.ID), in, out), nil
	}
	return nil, fmt.Errorf("unknown agent kind %q: %w", config.Kind, game.ErrInvalidOperation)
}
