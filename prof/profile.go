package prof

import (
	"sort"
	"sync"
	"time"
)

// Entry represents a single timing measurement.
type Entry struct {
	Label string
	Dur   time.Duration
}

// Recorder collects timing entries from concurrent callers. A nil Recorder
// discards everything.
type Recorder struct {
	mu     sync.Mutex
	record []Entry
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder { return &Recorder{} }

// Track logs the duration since start with the given name.
func (r *Recorder) Track(start time.Time, name string) {
	if r == nil {
		return
	}
	elapsed := time.Since(start)
	r.mu.Lock()
	r.record = append(r.record, Entry{Label: name, Dur: elapsed})
	r.mu.Unlock()
}

// SnapshotAndReset returns the collected timing entries and clears them.
func (r *Recorder) SnapshotAndReset() []Entry {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.record))
	copy(out, r.record)
	r.record = nil
	return out
}

// Total is the aggregated time spent under one label.
type Total struct {
	Label string
	Dur   time.Duration
	Count int
}

// Aggregate sums entries per label, longest first, ties by label.
func Aggregate(entries []Entry) []Total {
	idx := map[string]int{}
	var out []Total
	for _, e := range entries {
		i, ok := idx[e.Label]
		if !ok {
			i = len(out)
			idx[e.Label] = i
			out = append(out, Total{Label: e.Label})
		}
		out[i].Dur += e.Dur
		out[i].Count++
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Dur == out[j].Dur {
			return out[i].Label < out[j].Label
		}
		return out[i].Dur > out[j].Dur
	})
	return out
}
