package metrics

// AgentConfig describes one side of a matchup.
type AgentConfig struct {
	ID         int
	Kind       string // "random", "minimax" or "human"
	Depth      int    // minimax only
	Goroutines int    // minimax only
	Seed       uint64 // random only
}
