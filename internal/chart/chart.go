// Package chart renders simulated win rates against their theoretical
// values. Rendering is optional: callers go through Plot, which turns any
// renderer failure into a message instead of an error.
package chart

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/nvandessel/montyhall/internal/experiment"
	"github.com/nvandessel/montyhall/internal/logging"
)

// FileBase is the artifact name, without extension, of the rendered chart.
const FileBase = "problem2(montyhall)_results"

// ErrUnavailable is returned by renderers that cannot produce a chart in the
// current environment.
var ErrUnavailable = errors.New("chart renderer unavailable")

// Renderer draws a chart for a result set and returns the artifact path.
type Renderer interface {
	Render(set *experiment.ResultSet) (string, error)
}

// Disabled is a Renderer that always reports ErrUnavailable.
type Disabled struct{}

// Render implements Renderer.
func (Disabled) Render(*experiment.ResultSet) (string, error) {
	return "", fmt.Errorf("plotting disabled: %w", ErrUnavailable)
}

// Plot renders set with r. Errors and panics from the renderer are reported
// on w as "Results were not plotted" and ok is false; they never propagate.
func Plot(r Renderer, set *experiment.ResultSet, w io.Writer, logger *slog.Logger) (path string, ok bool) {
	if logger == nil {
		logger = logging.Discard()
	}

	defer func() {
		if rec := recover(); rec != nil {
			logger.Debug("chart renderer panicked", "panic", rec)
			fmt.Fprintf(w, "\nResults were not plotted: renderer failed: %v\n", rec)
			path, ok = "", false
		}
	}()

	path, err := r.Render(set)
	if err != nil {
		logger.Debug("chart not rendered", "error", err)
		fmt.Fprintf(w, "\nResults were not plotted: %v\n", err)
		return "", false
	}

	fmt.Fprintf(w, "\nResults plotted to %s\n", path)
	return path, true
}
