package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"quarto/game"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteMoveLog(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "saved")
	w, err := NewWriter(dir)
	require.NoError(t, err)
	w.now = func() time.Time { return time.Date(2024, 3, 1, 9, 30, 5, 0, time.UTC) }

	gs, err := game.NewGameState(game.NewStandardRules())
	require.NoError(t, err)
	require.NoError(t, gs.Select(9))
	require.NoError(t, gs.Apply(game.Move{Action: game.PlaceAction, Row: 1, Col: 2, Attempt: 3}))

	path, err := w.WriteMoveLog(7, gs.History(), 4)

	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "2024-03-01_09-30-05_match007.csv"), path)
	rows := readCSV(t, path)
	require.Len(t, rows, 3)
	require.Equal(t, []string{"move", "player", "action", "piece", "piece_index", "position", "position_index", "attempt", "board"}, rows[0])
	require.Equal(t, []string{"1", "Player 1", "selected", "TBCH", "9", "N/A", "-1", "0", ""}, rows[1])
	require.Equal(t, []string{"2", "Player 2", "placed", "TBCH", "9", "(1, 2)", "6", "3", gs.History()[1].Board}, rows[2])
}

func TestWriteRecords(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir)
	require.NoError(t, err)

	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{{ID: 1, Kind: "minimax", Depth: 3, Goroutines: 4}}))
	require.NoError(t, w.WriteMatchRecords([]MatchRecord{{
		ID:     1,
		Agent1: 1,
		Agent2: 2,
		MatchMetric: MatchMetric{
			StartingPlayer: game.Player1,
			Status:         game.Win,
			Winner:         "Player 2",
			Places:         9,
			Retries:        1,
		},
	}}))
	require.NoError(t, w.WriteSearchRecords([]SearchRecord{{Match: 1, Agent: 1, SearchMetric: SearchMetric{
		Action:    game.PlaceAction,
		Depth:     3,
		Nodes:     120,
		BestScore: 103,
	}}}))

	configs := readCSV(t, filepath.Join(dir, "agent_configs.csv"))
	require.Equal(t, []string{"1", "minimax", "3", "4", "0"}, configs[1])
	matches := readCSV(t, filepath.Join(dir, "match_records.csv"))
	require.Len(t, matches, 2)
	require.Equal(t, "Player 2", matches[1][5])
	require.Equal(t, "9", matches[1][9])
	searches := readCSV(t, filepath.Join(dir, "search_records.csv"))
	require.Equal(t, []string{"1", "1", "placed", "3", "0", "0s", "120", "0", "103", "false"}, searches[1])
}

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start(game.SelectAction, 2, 1)
	c.AddNode()
	c.AddNode()
	c.AddCutoff()

	m := c.Complete(5)

	require.Equal(t, game.SelectAction, m.Action)
	require.Equal(t, 2, m.Nodes)
	require.Equal(t, 1, m.Cutoffs)
	require.Equal(t, 5, m.BestScore)
	require.Equal(t, SearchMetric{}, NewDummyCollector().Complete(5))
}
