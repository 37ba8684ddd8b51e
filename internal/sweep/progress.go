package sweep

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const progressBarWidth = 30

var barStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

// progressBar redraws a single terminal line. A nil writer disables it.
type progressBar struct {
	mu    sync.Mutex
	w     io.Writer
	total int
	done  int
	start time.Time
}

func newProgressBar(w io.Writer, total int) *progressBar {
	return &progressBar{w: w, total: total, start: time.Now()}
}

func formatDuration(d time.Duration) string {
	if d <= 0 {
		return "--s"
	}
	return d.Round(time.Second).String()
}

// Increment marks one more point as done.
func (bar *progressBar) Increment() {
	bar.mu.Lock()
	defer bar.mu.Unlock()
	bar.done++
	if bar.w == nil || bar.total <= 0 {
		return
	}
	done := min(bar.done, bar.total)
	ratio := float64(done) / float64(bar.total)
	filled := min(int(ratio*progressBarWidth), progressBarWidth)
	barStr := strings.Repeat("█", filled) + strings.Repeat(" ", progressBarWidth-filled)
	elapsed := time.Since(bar.start)
	var eta time.Duration
	if done > 0 && done < bar.total {
		eta = time.Duration(float64(elapsed) * (float64(bar.total-done) / float64(done)))
	}
	fmt.Fprintf(bar.w, "\r[%s] %3.0f%% (%3d/%3d) ETA %s", barStyle.Render(barStr), ratio*100, done, bar.total, formatDuration(eta))
	if done == bar.total {
		fmt.Fprint(bar.w, "\n")
	}
}
