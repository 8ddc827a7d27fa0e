package metrics

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type AgentConfig struct {
	ID       int     `json:"id" yaml:"id"`
	Oracle   string  `json:"oracle" yaml:"oracle"`
	Episodes int     `json:"episodes" yaml:"episodes"`
	CPuct    float64 `json:"cpuct" yaml:"cpuct"`
	MaxDepth int     `json:"maxDepth" yaml:"maxDepth"`
	Seed     uint64  `json:"seed" yaml:"seed"`
}

type Setup struct {
	Name      string        `json:"name"`
	Matchups  []MatchUp     `json:"matchups"`
	NumGames  int           `json:"numGames"` // per matchup
	MaxMoves  int           `json:"maxMoves"`
	StartTime time.Time     `json:"startTime"`
	EndTime   time.Time     `json:"endTime"`
	Duration  time.Duration `json:"duration"`
}

type MatchUp struct {
	Agent1 AgentConfig `json:"agent1"`
	Agent2 AgentConfig `json:"agent2"`
}

type GameRecord struct {
	ID     int
	Black  int // AgentConfig.ID
	White  int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates root/name/<timestamp> and writes all files there.
func NewWriter(root, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format("20060102T150405.000Z")
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

func (w *Writer) WriteSetup(setup Setup) error {
	path := filepath.Join(w.baseDir, "setup.json")
	data, err := json.MarshalIndent(setup, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode setup: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write setup file: %w", err)
	}
	return nil
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "oracle", "episodes", "cpuct", "max_depth", "seed"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Oracle,
			strconv.Itoa(config.Episodes),
			strconv.FormatFloat(config.CPuct, 'f', -1, 64),
			strconv.Itoa(config.MaxDepth),
			strconv.FormatUint(config.Seed, 10),
		})
	}
	return w.writeCSV("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "black", "white", "starting_player", "winner", "total_moves", "start_time", "end_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Black),
			strconv.Itoa(record.White),
			strconv.Itoa(record.StartingPlayer),
			strconv.Itoa(record.Winner),
			strconv.Itoa(record.TotalMoves),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "duration", "episodes", "expansions", "terminal_hits", "cutoffs", "degenerate_policies"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			strconv.Itoa(record.Player),
			record.Duration.String(),
			strconv.Itoa(record.Episodes),
			strconv.Itoa(record.Expansions),
			strconv.Itoa(record.TerminalHits),
			strconv.Itoa(record.Cutoffs),
			strconv.Itoa(record.DegeneratePolicies),
		})
	}
	return w.writeCSV("move_records.csv", header, rows)
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	// Create a file
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}
