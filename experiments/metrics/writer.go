package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"quarto/game"
	"strconv"
	"time"
)

type MatchRecord struct {
	ID      int
	Agent1  int // AgentConfig.ID
	Agent2  int // AgentConfig.ID
	LogFile string
	MatchMetric
}

type SearchRecord struct {
	Match int // MatchRecord.ID
	Agent int // AgentConfig.ID
	SearchMetric
}

type Writer struct {
	baseDir string
	now     func() time.Time
}

// NewWriter creates dir if needed; every file is written inside it.
func NewWriter(dir string) (*Writer, error) {
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: dir,
		now:     time.Now,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

// WriteMoveLog exports one match's move log as <timestamp>_match<NNN>.csv and returns the path.
func (w *Writer) WriteMoveLog(match int, entries []game.Entry, cols int) (string, error) {
	name := fmt.Sprintf("%s_match%03d.csv", w.now().Format("2006-01-02_15-04-05"), match)
	path := filepath.Join(w.baseDir, name)

	header := []string{"move", "player", "action", "piece", "piece_index", "position", "position_index", "attempt", "board"}
	rows := make([][]string, 0, len(entries))
	for i, e := range entries {
		position := "N/A"
		if e.Action == game.PlaceAction {
			position = fmt.Sprintf("(%d, %d)", e.Row, e.Col)
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			e.Player.String(),
			e.Action.String(),
			e.Piece.String(),
			strconv.Itoa(e.Piece.Index()),
			position,
			strconv.Itoa(e.PositionIndex(cols)),
			strconv.Itoa(e.Attempt),
			e.Board,
		})
	}

	if err := writeCSV(path, header, rows); err != nil {
		return "", fmt.Errorf("failed to write move log: %w", err)
	}
	return path, nil
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "kind", "depth", "goroutines", "seed"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Kind,
			strconv.Itoa(config.Depth),
			strconv.Itoa(config.Goroutines),
			strconv.FormatUint(config.Seed, 10),
		})
	}

	if err := writeCSV(filepath.Join(w.baseDir, "agent_configs.csv"), header, rows); err != nil {
		return fmt.Errorf("failed to write agent configs: %w", err)
	}
	return nil
}

func (w *Writer) WriteMatchRecords(records []MatchRecord) error {
	header := []string{"id", "agent1", "agent2", "starting_player", "status", "winner", "start_time", "end_time", "duration", "places", "retries", "log_file"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			record.StartingPlayer.String(),
			record.Status.String(),
			record.Winner,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.Places),
			strconv.Itoa(record.Retries),
			record.LogFile,
		})
	}

	if err := writeCSV(filepath.Join(w.baseDir, "match_records.csv"), header, rows); err != nil {
		return fmt.Errorf("failed to write match records: %w", err)
	}
	return nil
}

func (w *Writer) WriteSearchRecords(records []SearchRecord) error {
	header := []string{"match", "agent", "action", "depth", "goroutines", "duration", "nodes", "cutoffs", "best_score", "is_cache_hit"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Match),
			strconv.Itoa(record.Agent),
			record.Action.String(),
			strconv.Itoa(record.Depth),
			strconv.Itoa(record.Goroutines),
			record.Duration.String(),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Cutoffs),
			strconv.Itoa(record.BestScore),
			strconv.FormatBool(record.IsCacheHit),
		})
	}

	if err := writeCSV(filepath.Join(w.baseDir, "search_records.csv"), header, rows); err != nil {
		return fmt.Errorf("failed to write search records: %w", err)
	}
	return nil
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return err
	}
	if err := writer.WriteAll(rows); err != nil {
		return err
	}
	return writer.Error()
}
