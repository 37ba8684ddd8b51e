package sweep

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
)

// record is the JSONL form of a Result. Infinite complexities are null.
type record struct {
	N       int         `json:"n"`
	M       int         `json:"m"`
	Q       int         `json:"q"`
	Fastest string      `json:"fastest,omitempty"`
	Digest  string      `json:"digest,omitempty"`
	Error   string      `json:"error,omitempty"`
	Rows    []recordRow `json:"rows,omitempty"`
}

type recordRow struct {
	Algorithm  string   `json:"algorithm"`
	Time       *float64 `json:"time"`
	Memory     *float64 `json:"memory"`
	Parameters string   `json:"parameters,omitempty"`
}

func finite(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

func toRecord(r Result) record {
	rec := record{N: r.N, M: r.M, Q: r.Q, Fastest: r.Fastest, Digest: r.Digest, Error: r.Err}
	for _, row := range r.Rows {
		rec.Rows = append(rec.Rows, recordRow{
			Algorithm:  row.Name,
			Time:       finite(row.Time),
			Memory:     finite(row.Memory),
			Parameters: row.Parameters,
		})
	}
	return rec
}

// WriteJSONL writes one JSON object per grid point.
func WriteJSONL(w io.Writer, results []Result) error {
	buf := bufio.NewWriter(w)
	enc := json.NewEncoder(buf)
	for _, r := range results {
		if err := enc.Encode(toRecord(r)); err != nil {
			return fmt.Errorf("sweep: encode %s: %w", r.Point, err)
		}
	}
	return buf.Flush()
}

var csvHeader = []string{"n", "m", "q", "algorithm", "time", "memory", "parameters", "fastest"}

func formatLog2(v float64) string {
	if math.IsInf(v, 1) {
		return "inf"
	}
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// WriteCSV writes one line per (grid point, algorithm). Rejected points are
// skipped.
func WriteCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range results {
		for _, row := range r.Rows {
			line := []string{
				strconv.Itoa(r.N), strconv.Itoa(r.M), strconv.Itoa(r.Q),
				row.Name, formatLog2(row.Time), formatLog2(row.Memory), row.Parameters,
				strconv.FormatBool(row.Name == r.Fastest),
			}
			if err := cw.Write(line); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func createFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("sweep: create dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("sweep: open output: %w", err)
	}
	return f, nil
}

// WriteOutputs writes every output file named in the config.
func (r *Runner) WriteOutputs(results []Result) error {
	outputs := []struct {
		path  string
		write func(io.Writer, []Result) error
	}{
		{r.cfg.JSONL, WriteJSONL},
		{r.cfg.CSV, WriteCSV},
		{r.cfg.Chart, RenderChart},
	}
	for _, o := range outputs {
		if o.path == "" {
			continue
		}
		f, err := createFile(o.path)
		if err != nil {
			return err
		}
		if err := o.write(f, results); err != nil {
			f.Close()
			return fmt.Errorf("sweep: write %s: %w", o.path, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		r.logger.Info("output written", "path", o.path)
	}
	return nil
}
