package sweep

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mq-estimator/estimator"
)

func TestParseIntList(t *testing.T) {
	vals, err := ParseIntList("10..20:5, 3, 10")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 10, 15, 20}, vals)

	vals, err = ParseIntList("")
	require.NoError(t, err)
	assert.Nil(t, vals)

	for _, bad := range []string{"5..3", "1..4:0", "x", "1..y", ",,"} {
		_, err := ParseIntList(bad)
		assert.Error(t, err, bad)
	}
}

func TestGrid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.N = "5,6"
	cfg.M = "8..9"
	cfg.Q = []int{3, 2}
	pts, err := cfg.Grid()
	require.NoError(t, err)
	require.Len(t, pts, 8)
	assert.Equal(t, Point{N: 5, M: 8, Q: 2}, pts[0])
	assert.Equal(t, Point{N: 6, M: 9, Q: 3}, pts[7])

	cfg.M = ""
	pts, err = cfg.Grid()
	require.NoError(t, err)
	assert.Equal(t, []Point{{5, 5, 2}, {6, 6, 2}, {5, 5, 3}, {6, 6, 3}}, pts)
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	dir := t.TempDir()
	path := filepath.Join(dir, "sweep.yaml")
	require.NoError(t, os.WriteFile(path, []byte("n: \"8..12:2\"\nm: \"12\"\nq: [2, 4]\nworkers: 2\nexclude: [Lokshtanov]\n"), 0o644))
	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "8..12:2", cfg.N)
	assert.Equal(t, []int{2, 4}, cfg.Q)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, []string{"Lokshtanov"}, cfg.Exclude)
	assert.Equal(t, 2.0, cfg.W)

	require.NoError(t, os.WriteFile(path, []byte("n: \"12..8\"\n"), 0o644))
	_, err = LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")

	require.NoError(t, os.WriteFile(path, []byte("n: \"8\"\nw: 3.5\n"), 0o644))
	_, err = LoadConfig(path)
	require.Error(t, err)

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestValidateIntListTag(t *testing.T) {
	cfg := DefaultConfig()
	cfg.N = "8..x"
	err := cfg.Validate()
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs, 1)
	assert.Equal(t, "intlist", verrs[0].Tag())
	assert.Equal(t, "N", verrs[0].Field())
}

func testConfig(dir string) Config {
	cfg := DefaultConfig()
	cfg.N = "6..8"
	cfg.M = "10"
	cfg.Q = []int{2, 6}
	cfg.Workers = 3
	cfg.JSONL = filepath.Join(dir, "out", "sweep.jsonl")
	cfg.CSV = filepath.Join(dir, "out", "sweep.csv")
	cfg.Chart = filepath.Join(dir, "out", "sweep.html")
	return cfg
}

func TestRunAndOutputs(t *testing.T) {
	dir := t.TempDir()
	var progress bytes.Buffer
	r := NewRunner(testConfig(dir), WithProgress(&progress))
	results, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 6)

	for _, res := range results[:3] {
		assert.Equal(t, 2, res.Q)
		assert.Empty(t, res.Err)
		assert.NotEmpty(t, res.Rows)
		assert.NotEmpty(t, res.Fastest)
		assert.Len(t, res.Digest, 2*estimator.DigestSize)
	}
	for _, res := range results[3:] {
		assert.Contains(t, res.Err, "q must be a prime power")
	}
	assert.Contains(t, progress.String(), "100%")

	require.NoError(t, r.WriteOutputs(results))

	f, err := os.Open(filepath.Join(dir, "out", "sweep.jsonl"))
	require.NoError(t, err)
	defer f.Close()
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 1<<20), 1<<20)
	lines := 0
	for sc.Scan() {
		var rec record
		require.NoError(t, json.Unmarshal(sc.Bytes(), &rec))
		lines++
	}
	assert.Equal(t, 6, lines)

	data, err := os.ReadFile(filepath.Join(dir, "out", "sweep.csv"))
	require.NoError(t, err)
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, csvHeader, rows[0])
	total := 0
	for _, res := range results {
		total += len(res.Rows)
	}
	assert.Len(t, rows, total+1)

	html, err := os.ReadFile(filepath.Join(dir, "out", "sweep.html"))
	require.NoError(t, err)
	assert.Contains(t, string(html), "echarts")
}

func TestRunDeterministic(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.Q = []int{2}
	a, err := NewRunner(cfg).Run(context.Background())
	require.NoError(t, err)
	cfg.Workers = 1
	b, err := NewRunner(cfg).Run(context.Background())
	require.NoError(t, err)
	for i := range a {
		assert.Equal(t, a[i].Digest, b[i].Digest, "%s", a[i].Point)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewRunner(testConfig(t.TempDir())).Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSummarize(t *testing.T) {
	inf := estimator.Row{Name: "Lokshtanov", Time: math.Inf(1), Memory: math.Inf(1)}
	results := []Result{
		{Point: Point{N: 5, M: 5, Q: 2}, Fastest: "F5", Rows: []estimator.Row{{Name: "F5", Time: 10}, inf}},
		{Point: Point{N: 6, M: 6, Q: 2}, Fastest: "F5", Rows: []estimator.Row{{Name: "F5", Time: 14}, inf}},
		{Point: Point{N: 7, M: 7, Q: 2}, Fastest: "F5", Rows: []estimator.Row{{Name: "F5", Time: 12}, inf}},
	}
	sum := Summarize(results)
	require.Len(t, sum, 2)
	assert.Equal(t, Summary{Algorithm: "F5", Points: 3, Fastest: 3, Min: 10, Median: 12, Max: 14}, sum[0])
	assert.Equal(t, "Lokshtanov", sum[1].Algorithm)
	assert.True(t, math.IsNaN(sum[1].Min))

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, results))
	assert.Contains(t, buf.String(), "Lokshtanov,inf,inf")
}
