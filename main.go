package main

import (
	"flag"
	"fmt"
	"os"
	"quarto/config"
	"quarto/experiments"
	"quarto/experiments/metrics"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	player1 := flag.String("player1", cfg.Player1, "Player 1 agent: random, minimax or human")
	player2 := flag.String("player2", cfg.Player2, "Player 2 agent: random, minimax or human")
	depth := flag.Int("depth", cfg.Depth, "Minimax search depth in plies")
	goroutines := flag.Int("goroutines", cfg.Goroutines, "Goroutines evaluating root actions in parallel")
	seed := flag.Uint64("seed", cfg.Seed, "Random agent seed, 0 for a fresh one each match")
	matches := flag.Int("matches", cfg.Matches, "Number of matches to play")
	squares := flag.Bool("squares", cfg.Rules.SquareMode, "2x2 blocks also win")
	historyDir := flag.String("history", cfg.HistoryDir, "Directory receiving move logs and match records")
	noSave := flag.Bool("nosave", !cfg.SaveLogs, "Do not export move logs")
	verbose := flag.Bool("verbose", false, "Log every search and rejected attempt")
	saveConfig := flag.Bool("saveconfig", false, "Store the resulting settings as the user config")
	flag.Parse()

	cfg.Player1 = *player1
	cfg.Player2 = *player2
	cfg.Depth = *depth
	cfg.Goroutines = *goroutines
	cfg.Seed = *seed
	cfg.Matches = *matches
	cfg.Rules = cfg.Rules.WithSquareMode(*squares)
	cfg.HistoryDir = *historyDir
	cfg.SaveLogs = !*noSave
	if *verbose {
		cfg.LogLevel = zerolog.DebugLevel.String()
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid settings")
	}

	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	zerolog.SetGlobalLevel(level)

	if *saveConfig {
		path, err := cfg.Save()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to save config")
		}
		log.Info().Msgf("saved config to %s", path)
	}

	tournament := &experiments.Tournament{
		Rules:   cfg.Rules,
		Agent1:  agentConfig(1, cfg.Player1, cfg),
		Agent2:  agentConfig(2, cfg.Player2, cfg),
		Matches: cfg.Matches,
		In:      os.Stdin,
		Out:     os.Stdout,
	}
	if cfg.SaveLogs {
		tournament.Writer, err = metrics.NewWriter(cfg.HistoryDir)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create history directory")
		}
	}

	tally, err := tournament.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("tournament failed")
	}
	fmt.Println(tally)
}

func agentConfig(id int, kind string, cfg *config.Config) metrics.AgentConfig {
	agent := metrics.AgentConfig{ID: id, Kind: kind}
	switch kind {
	case experiments.MinimaxAgent:
		agent.Depth = cfg.Depth
		agent.Goroutines = cfg.Goroutines
	case experiments.RandomAgent:
		if cfg.Seed != 0 {
			agent.Seed = cfg.Seed + uint64(id)<<32
		}
	}
	return agent
}
