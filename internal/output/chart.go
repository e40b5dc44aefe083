package output

import (
	"fmt"
	"math"

	"github.com/rpgo/hullwhite/internal/domain"
	charts "github.com/vicanso/go-charts/v2"
)

// RenderRatePathChart draws the short-rate path (in percent) against time as a PNG.
func RenderRatePathChart(path domain.RatePath, grid domain.SimulationGrid, title string) ([]byte, error) {
	if len(path) < 2 {
		return nil, fmt.Errorf("%w: chart needs at least 2 rate observations, got %d", domain.ErrInvalidParameter, len(path))
	}
	if len(path) != grid.Steps {
		return nil, fmt.Errorf("%w: path has %d observations, grid has %d steps", domain.ErrLengthMismatch, len(path), grid.Steps)
	}

	pct := path.Scale(100)
	yMin, yMax := pct.MinMax()
	if math.IsNaN(yMin) || math.IsInf(yMin, 0) || math.IsNaN(yMax) || math.IsInf(yMax, 0) {
		return nil, fmt.Errorf("%w: rate path is not finite", domain.ErrInvalidParameter)
	}
	pad := (yMax - yMin) * 0.1
	if pad == 0 {
		pad = 0.1
	}
	yMin, yMax = yMin-pad, yMax+pad

	dt := grid.DT()
	x := make([]string, len(path))
	for i := range x {
		x[i] = fmt.Sprintf("%.2f", float64(i)*dt)
	}
	split := len(x) / 10
	if split < 1 {
		split = 1
	}

	if title == "" {
		title = "Short rate (%)"
	}
	painter, err := charts.LineRender([][]float64{pct},
		charts.TitleTextOptionFunc(title, fmt.Sprintf("T=%gy, %d steps", grid.T, grid.Steps)),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: x, BoundaryGap: charts.FalseFlag(), SplitNumber: split}),
		charts.YAxisOptionFunc(charts.YAxisOption{Min: &yMin, Max: &yMax, DivideCount: 5}),
		charts.ThemeOptionFunc(charts.ThemeLight),
		charts.WidthOptionFunc(900),
		charts.HeightOptionFunc(500),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to render rate chart: %w", err)
	}
	return painter.Bytes()
}
