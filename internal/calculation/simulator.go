package calculation

import (
	"fmt"
	"math"

	"github.com/rpgo/hullwhite/internal/domain"
)

// Simulate draws one short-rate path on grid with the Euler–Maruyama scheme
//
//	r[i] = r[i-1] + a*(theta(t[i-1]) - r[i-1])*dt + sigma*z*sqrt(dt)
//
// where z is one fresh draw from rng. path[0] is exactly params.R0 and the
// path has exactly grid.Steps elements; rng is read grid.Steps-1 times.
// Negative and very large rates are valid outcomes and are not rejected.
func Simulate(params domain.ModelParameters, grid domain.SimulationGrid, rng RandomSource) (domain.RatePath, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if rng == nil && grid.Steps > 1 {
		return nil, fmt.Errorf("%w: random source is required", domain.ErrInvalidParameter)
	}

	dt := grid.DT()
	sqrtDT := math.Sqrt(dt)

	rates := make(domain.RatePath, grid.Steps)
	rates[0] = params.R0
	for i := 1; i < grid.Steps; i++ {
		dw := rng.NormFloat64() * sqrtDT
		prev := rates[i-1]
		theta := params.MeanLevel(float64(i-1) * dt)
		rates[i] = prev + params.A*(theta-prev)*dt + params.Sigma*dw
	}
	return rates, nil
}
