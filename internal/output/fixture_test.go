package output

import (
	"math"
	"time"

	"github.com/rpgo/hullwhite/internal/domain"
	"github.com/shopspring/decimal"
)

func buildTestReport() *domain.PricingReport {
	analytic := 0.9512
	return &domain.PricingReport{
		GeneratedAt: time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
		Results: []domain.PricingResult{
			{
				ScenarioName:   "Base",
				BondName:       "1Y zero",
				Model:          domain.ModelParameters{A: 0.1, Sigma: 0.02, R0: 0.05, Theta: 0.04},
				Grid:           domain.SimulationGrid{T: 1, Steps: 5},
				Seed:           42,
				FaceValue:      decimal.NewFromInt(1000),
				DiscountFactor: 0.95,
				PresentValue:   decimal.NewFromInt(950),
				Path:           domain.RatePath{0.05, 0.051, 0.049, 0.052, 0.05},
				Analytic:       &analytic,
				MonteCarlo: &domain.MonteCarloSummary{
					NumPaths: 100, Seed: 42, Mean: 0.9511, StdDev: 0.01, StdError: 0.001,
					PercentileRanges: domain.PercentileRanges{P10: 0.94, P25: 0.945, P50: 0.951, P75: 0.956, P90: 0.96},
				},
			},
			{
				ScenarioName:   "Blowup",
				Model:          domain.ModelParameters{A: 0, Sigma: 0, R0: -1e300},
				Grid:           domain.SimulationGrid{T: 1, Steps: 2},
				Seed:           7,
				FaceValue:      decimal.NewFromInt(1),
				DiscountFactor: math.Inf(1),
				Overflow:       true,
			},
		},
	}
}
