package sweep

import (
	"math"

	"github.com/montanaflynn/stats"
)

// Summary aggregates the finite log2 times of one algorithm over a sweep.
type Summary struct {
	Algorithm string
	Points    int
	Fastest   int
	Min       float64
	Median    float64
	Max       float64
}

// Summarize returns one summary per algorithm in first-seen order.
// Algorithms that were never feasible report NaN statistics.
func Summarize(results []Result) []Summary {
	var order []string
	times := map[string]stats.Float64Data{}
	wins := map[string]int{}
	seen := map[string]int{}
	for _, r := range results {
		if r.Fastest != "" {
			wins[r.Fastest]++
		}
		for _, row := range r.Rows {
			if _, ok := seen[row.Name]; !ok {
				order = append(order, row.Name)
			}
			seen[row.Name]++
			if v := finite(row.Time); v != nil {
				times[row.Name] = append(times[row.Name], *v)
			}
		}
	}
	out := make([]Summary, 0, len(order))
	for _, name := range order {
		s := Summary{Algorithm: name, Points: seen[name], Fastest: wins[name], Min: math.NaN(), Median: math.NaN(), Max: math.NaN()}
		if data := times[name]; len(data) > 0 {
			s.Min, _ = stats.Min(data)
			s.Median, _ = stats.Median(data)
			s.Max, _ = stats.Max(data)
		}
		out = append(out, s)
	}
	return out
}
