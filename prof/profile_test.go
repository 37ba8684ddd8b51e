package prof

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderSnapshotAndReset(t *testing.T) {
	r := NewRecorder()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Track(time.Now(), "Crossbred")
		}()
	}
	wg.Wait()

	entries := r.SnapshotAndReset()
	require.Len(t, entries, 8)
	assert.Empty(t, r.SnapshotAndReset())
}

func TestNilRecorder(t *testing.T) {
	var r *Recorder
	r.Track(time.Now(), "F5")
	assert.Nil(t, r.SnapshotAndReset())
}

func TestAggregate(t *testing.T) {
	totals := Aggregate([]Entry{
		{Label: "F5", Dur: time.Millisecond},
		{Label: "Crossbred", Dur: 5 * time.Millisecond},
		{Label: "F5", Dur: 2 * time.Millisecond},
		{Label: "KPG", Dur: 3 * time.Millisecond},
	})
	assert.Equal(t, []Total{
		{Label: "Crossbred", Dur: 5 * time.Millisecond, Count: 1},
		{Label: "F5", Dur: 3 * time.Millisecond, Count: 2},
		{Label: "KPG", Dur: 3 * time.Millisecond, Count: 1},
	}, totals)
}
