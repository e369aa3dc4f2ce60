package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// AgentConfig describes one contestant of an experiment.
type AgentConfig struct {
	ID         int
	Player     string // random, forward-random, greedy or minmax
	Heuristic  string // naive, gofast, gofaster or genius; greedy and minmax only
	Goroutines int
	Duration   time.Duration
	MaxWidth   int
	MaxDepth   int
}

type GameRecord struct {
	ID     int
	First  int // AgentConfig.ID
	Second int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates experiments/<name>/<timestamp> to hold the records.
func NewWriter(name string) (*Writer, error) {
	return NewWriterAt("experiments", name)
}

func NewWriterAt(root, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format("20060102T150405.000")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create directory")
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "player", "heuristic", "goroutines", "duration", "max_width", "max_depth"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Player,
			config.Heuristic,
			strconv.Itoa(config.Goroutines),
			config.Duration.String(),
			strconv.Itoa(config.MaxWidth),
			strconv.Itoa(config.MaxDepth),
		})
	}
	return w.write("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "uuid", "first", "second", "starting_player", "winner", "adjudicated",
		"total_moves", "start_time", "end_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			record.GameMetric.ID.String(),
			strconv.Itoa(record.First),
			strconv.Itoa(record.Second),
			record.StartingPlayer.String(),
			record.Winner.String(),
			strconv.FormatBool(record.Adjudicated),
			strconv.Itoa(record.TotalMoves),
			record.StartTime.Format(time.RFC3339Nano),
			record.EndTime.Format(time.RFC3339Nano),
			record.Duration.String(),
		})
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "move", "duration", "budget", "goroutines", "depth",
		"nodes", "abandoned"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		move, err := record.Move.MarshalText()
		if err != nil {
			return errors.Wrapf(err, "failed to encode move of game %d step %d", record.Game, record.Step)
		}
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player.String(),
			string(move),
			record.Duration.String(),
			record.Budget.String(),
			strconv.Itoa(record.Goroutines),
			strconv.Itoa(record.Depth),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Abandoned),
		})
	}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) write(file string, header []string, rows [][]string) error {
	f, err := os.Create(filepath.Join(w.baseDir, file))
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", file)
	}

	var errs error
	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		errs = multierror.Append(errs, errors.Wrapf(err, "failed to write %s header", file))
	} else if err := writer.WriteAll(rows); err != nil {
		errs = multierror.Append(errs, errors.Wrapf(err, "failed to write %s rows", file))
	}
	if err := f.Close(); err != nil {
		errs = multierror.Append(errs, errors.Wrapf(err, "failed to close %s", file))
	}
	return errs
}
