package integration

import (
	"context"
	"math"
	"testing"

	"github.com/rpgo/hullwhite/internal/calculation"
	"github.com/rpgo/hullwhite/internal/config"
	"github.com/rpgo/hullwhite/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadExample(t *testing.T) *domain.Configuration {
	t.Helper()
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile("../testdata/example_config.yaml")
	require.NoError(t, err)
	return cfg
}

func TestBasicCalculations(t *testing.T) {
	cfg := loadExample(t)

	engine := calculation.NewPricingEngine()
	report, err := engine.RunScenarios(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, report.Results, 2)

	demo := report.Results[0]
	assert.Equal(t, "Zero volatility demonstration", demo.ScenarioName)
	assert.InDelta(t, 0.8210963810202013, demo.DiscountFactor, 1e-12)
	assert.Equal(t, "0.82", demo.PresentValue.StringFixed(2))
	require.NotNil(t, demo.Analytic)
	assert.InDelta(t, *demo.Analytic, demo.DiscountFactor, 5e-4, "coarse Euler grid stays close to the closed form")
	assert.Nil(t, demo.MonteCarlo)

	dated := report.Results[1]
	// 2026-01-02 to 2029-01-01 is 1095 days, so T = 3 years exactly under ACT/365F.
	assert.InDelta(t, 3.0, dated.Grid.T, 1e-12)
	assert.Equal(t, 72, dated.Grid.Steps)
	require.Len(t, dated.Path, 72)
	assert.Equal(t, 0.03, dated.Path[0])
	assert.True(t, dated.DiscountFactor > 0 && dated.DiscountFactor < 1)

	require.NotNil(t, dated.MonteCarlo)
	assert.Equal(t, 2000, dated.MonteCarlo.NumPaths)
	require.NotNil(t, dated.Analytic)
	assert.InDelta(t, *dated.Analytic, dated.MonteCarlo.Mean, 3e-3)
	p := dated.MonteCarlo.PercentileRanges
	assert.True(t, p.P10 <= p.P50 && p.P50 <= p.P90)
}

func TestRunIsDeterministic(t *testing.T) {
	first, err := calculation.NewPricingEngine().RunScenarios(context.Background(), loadExample(t))
	require.NoError(t, err)
	second, err := calculation.NewPricingEngine().RunScenarios(context.Background(), loadExample(t))
	require.NoError(t, err)

	for i := range first.Results {
		assert.Equal(t, first.Results[i].DiscountFactor, second.Results[i].DiscountFactor)
		assert.Equal(t, first.Results[i].Path, second.Results[i].Path)
	}
	assert.Equal(t, first.Results[1].MonteCarlo.Mean, second.Results[1].MonteCarlo.Mean)
}

func TestSimulateAndPriceByHand(t *testing.T) {
	params := domain.ModelParameters{A: 0.1, Sigma: 0.02, R0: 0.05}
	grid := domain.SimulationGrid{T: 5, Steps: 100}

	path, err := calculation.Simulate(params, grid, calculation.NewSource(11))
	require.NoError(t, err)
	price, err := calculation.Price(path, grid)
	require.NoError(t, err)

	var sum float64
	for _, r := range path {
		sum += r
	}
	assert.InDelta(t, math.Exp(-sum*grid.DT()), price, 1e-12)

	direct, err := calculation.PriceZeroCouponBond(params, grid, calculation.NewSource(11))
	require.NoError(t, err)
	assert.Equal(t, price, direct)
}
