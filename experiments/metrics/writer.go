package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID playing as Player1
	Agent2 int // AgentConfig.ID playing as Player2
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates root/name/<UTC timestamp> and writes every file of the
// experiment there.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Kind,
			strconv.Itoa(config.Depth),
		})
	}

	return w.write("agent_configs.csv", []string{"id", "kind", "depth"}, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			strconv.Itoa(int(record.StartingPlayer)),
			strconv.Itoa(int(record.Winner)),
			strconv.Itoa(record.TotalMoves),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}

	header := []string{"id", "agent1", "agent2", "starting_player", "winner", "total_moves", "start_time", "end_time", "duration"}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			strconv.Itoa(int(record.Player)),
			strconv.Itoa(record.Column),
			record.Algorithm,
			strconv.Itoa(record.Depth),
			record.Duration.String(),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Leaves),
			strconv.Itoa(record.Cutoffs),
		})
	}

	header := []string{"game", "step", "player", "column", "algorithm", "depth", "duration", "nodes", "leaves", "cutoffs"}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) write(filename string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, filename)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", filename, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", filename, err)
	}

	return nil
}
