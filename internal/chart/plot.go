package chart

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/nvandessel/montyhall/internal/experiment"
	"github.com/nvandessel/montyhall/internal/montyhall"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

var (
	stayColor   = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	switchColor = color.RGBA{R: 255, G: 127, B: 14, A: 255}
	dashes      = []vg.Length{vg.Points(4), vg.Points(3)}
)

// PlotRenderer draws one log-scaled tile per door count, stacked vertically,
// into a single PNG in Dir.
type PlotRenderer struct {
	Dir        string
	Width      vg.Length
	TileHeight vg.Length
}

// NewPlotRenderer creates a PlotRenderer writing into dir.
func NewPlotRenderer(dir string) *PlotRenderer {
	return &PlotRenderer{
		Dir:        dir,
		Width:      8 * vg.Inch,
		TileHeight: 3 * vg.Inch,
	}
}

// Path returns the file the renderer writes to.
func (r *PlotRenderer) Path() string {
	return filepath.Join(r.Dir, FileBase+".png")
}

// Render implements Renderer.
func (r *PlotRenderer) Render(set *experiment.ResultSet) (string, error) {
	doors := set.DoorCounts()
	if len(doors) == 0 {
		return "", errors.New("no results to plot")
	}

	plots := make([][]*plot.Plot, len(doors))
	for i, n := range doors {
		p, err := doorPlot(n, set.ForDoors(n))
		if err != nil {
			return "", fmt.Errorf("plot %d doors: %w", n, err)
		}
		plots[i] = []*plot.Plot{p}
	}

	img := vgimg.New(r.Width, r.TileHeight*vg.Length(len(doors)))
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows:      len(doors),
		Cols:      1,
		PadTop:    vg.Points(6),
		PadBottom: vg.Points(6),
		PadLeft:   vg.Points(6),
		PadRight:  vg.Points(6),
		PadY:      vg.Points(12),
	}
	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}

	if err := os.MkdirAll(r.Dir, 0755); err != nil {
		return "", fmt.Errorf("creating plot directory: %w", err)
	}

	path := r.Path()
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating plot file: %w", err)
	}
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
		f.Close()
		return "", fmt.Errorf("writing plot: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing plot file: %w", err)
	}

	return path, nil
}

// doorPlot builds the tile for one door count: empirical stay and switch
// rates over a log-scaled repetition axis, plus dashed theory lines.
func doorPlot(doors int, results []montyhall.Result) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Results for N = %d doors", doors)
	p.X.Label.Text = "K repetitions"
	p.Y.Label.Text = "Win probability"
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())

	stayXYs := make(plotter.XYs, len(results))
	switchXYs := make(plotter.XYs, len(results))
	minK, maxK := float64(results[0].Repetitions), float64(results[0].Repetitions)
	for i, r := range results {
		k := float64(r.Repetitions)
		stayXYs[i] = plotter.XY{X: k, Y: r.Stay}
		switchXYs[i] = plotter.XY{X: k, Y: r.Switch}
		minK = min(minK, k)
		maxK = max(maxK, k)
	}

	stayLine, stayPoints, err := plotter.NewLinePoints(stayXYs)
	if err != nil {
		return nil, err
	}
	stayLine.Color, stayPoints.Color = stayColor, stayColor

	switchLine, switchPoints, err := plotter.NewLinePoints(switchXYs)
	if err != nil {
		return nil, err
	}
	switchLine.Color, switchPoints.Color = switchColor, switchColor

	stayTheory, switchTheory := montyhall.Theoretical(doors)
	stayRef := plotter.NewFunction(func(float64) float64 { return stayTheory })
	stayRef.Color, stayRef.Dashes = stayColor, dashes
	switchRef := plotter.NewFunction(func(float64) float64 { return switchTheory })
	switchRef.Color, switchRef.Dashes = switchColor, dashes

	p.Add(stayLine, stayPoints, switchLine, switchPoints, stayRef, switchRef)
	p.Legend.Add("Strategy 1 (Stay)", stayLine, stayPoints)
	p.Legend.Add("Strategy 2 (Switch)", switchLine, switchPoints)
	p.Legend.Add(fmt.Sprintf("Theory 1/%d", doors), stayRef)
	p.Legend.Add(fmt.Sprintf("Theory %d/%d", doors-1, doors), switchRef)
	p.Legend.Top = false
	p.Legend.Left = false

	// Log axes need a positive, non-degenerate range.
	if minK == maxK {
		minK, maxK = minK/2, maxK*2
	}
	p.X.Min, p.X.Max = minK, maxK
	p.Y.Min, p.Y.Max = 0, 1

	return p, nil
}
