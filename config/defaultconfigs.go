package config

import (
	"quarto/experiments"
	"quarto/game"
	"quarto/meta"
)

var DefaultConfig Config

func init() {
	DefaultConfig = Config{
		Rules:      game.NewStandardRules(),
		Player1:    experiments.MinimaxAgent,
		Player2:    experiments.RandomAgent,
		Depth:      meta.DEFAULT_DEPTH,
		Goroutines: 1,
		Matches:    1,
		SaveLogs:   true,
		HistoryDir: meta.DEFAULT_HISTORY_DIR,
		LogLevel:   "info",
	}
}
