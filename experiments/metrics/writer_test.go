package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
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

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "selfplay")
	require.NoError(t, err)

	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	err = w.WriteGameRecords([]GameRecord{{
		ID:     1,
		Agent1: 1,
		Agent2: 2,
		GameMetric: GameMetric{
			StartingPlayer: 0,
			Winner:         1,
			StartTime:      start,
			EndTime:        start.Add(time.Second),
			Duration:       time.Second,
			TotalMoves:     42,
		},
	}})
	require.NoError(t, err)

	rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, rows, 2)
	require.Equal(t, []string{"1", "1", "2", "0", "1", "2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s", "42"}, rows[1])

	err = w.WriteMoveRecords([]MoveRecord{{Game: 1, MoveMetric: MoveMetric{Step: 3, Player: 1, SearchMetric: SearchMetric{DepthLimit: 2, Nodes: 12, Leaves: 9}}}})
	require.NoError(t, err)
	rows = readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.Equal(t, []string{"1", "3", "1", "2", "0s", "12", "9"}, rows[1])

	err = w.WriteAgentConfigs([]AgentConfig{{ID: 1, DepthLimit: 2, Seed: 7}})
	require.NoError(t, err)
	rows = readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
	require.Equal(t, []string{"id", "depth_limit", "seed"}, rows[0])
	require.Equal(t, []string{"1", "2", "7"}, rows[1])
}
