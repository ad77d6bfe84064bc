package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"quarto/experiments"
	"quarto/game"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
)

var (
	cfgFile = "quarto/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type Config struct {
	Rules      game.Rules `json:"rules"`
	Player1    string     `json:"player1"` // agent kind: random, minimax or human
	Player2    string     `json:"player2"`
	Depth      int        `json:"depth"`
	Goroutines int        `json:"goroutines"`
	Seed       uint64     `json:"seed"` // 0 draws a fresh seed per match
	Matches    int        `json:"matches"`
	SaveLogs   bool       `json:"save_logs"`
	HistoryDir string     `json:"history_dir"`
	LogLevel   string     `json:"log_level"`
}

// InitConfig returns the defaults overlaid with quarto/config.json from the
// XDG config directories, when one exists.
func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Load is InitConfig for an explicit file.
func Load(path string) (*Config, error) {
	config := DefaultConfig
	if err := readCfgFile(path, &config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Rules.Validate(); err != nil {
		return &InvalidConfig{err.Error()}
	}
	for _, kind := range []string{c.Player1, c.Player2} {
		switch kind {
		case experiments.RandomAgent, experiments.MinimaxAgent, experiments.HumanAgent:
		default:
			return &InvalidConfig{fmt.Sprintf("unknown player kind %q", kind)}
		}
	}
	if c.Depth < 1 {
		return &InvalidConfig{"search depth must be at least 1"}
	}
	if c.Goroutines < 1 {
		return &InvalidConfig{"goroutines must be at least 1"}
	}
	if c.Matches < 1 {
		return &InvalidConfig{"matches must be at least 1"}
	}
	if c.SaveLogs && c.HistoryDir == "" {
		return &InvalidConfig{"saving logs needs a history directory"}
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return &InvalidConfig{fmt.Sprintf("log level: %v", err)}
	}
	return nil
}

// Save writes the config to the user's XDG config directory.
func (c *Config) Save() (string, error) {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return "", err
	}
	return absPath, saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %v", filePath, err)}
	}
	return nil
}
