package calculation

import (
	"math"
	"testing"

	"github.com/rpgo/hullwhite/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// demoBaseline is the sigma=0 price for a=0.1, r0=0.05, T=5, steps=100.
const demoBaseline = 0.8210963810202013

func TestPrice_AllZeroRatesIsPar(t *testing.T) {
	grid := domain.SimulationGrid{T: 5, Steps: 100}
	price, err := Price(make(domain.RatePath, 100), grid)
	require.NoError(t, err)
	assert.Equal(t, 1.0, price)
}

func TestPrice_BoundedForNonNegativeRates(t *testing.T) {
	grid := domain.SimulationGrid{T: 10, Steps: 50}
	path := make(domain.RatePath, 50)
	for i := range path {
		path[i] = 0.002 * float64(i)
	}
	price, err := Price(path, grid)
	require.NoError(t, err)
	assert.Greater(t, price, 0.0)
	assert.LessOrEqual(t, price, 1.0)
}

func TestPrice_MatchesStepProduct(t *testing.T) {
	grid := domain.SimulationGrid{T: 2, Steps: 4}
	path := domain.RatePath{0.05, 0.04, -0.01, 0.03}
	dt := 0.5

	expected := math.Exp(-0.05*dt) * math.Exp(-0.04*dt) * math.Exp(0.01*dt) * math.Exp(-0.03*dt)
	price, err := Price(path, grid)
	require.NoError(t, err)
	assert.InDelta(t, expected, price, 1e-15)
	assert.InDelta(t, math.Exp(-(0.05+0.04-0.01+0.03)*dt), price, 1e-12)
}

func TestPrice_HigherRatesLowerPrice(t *testing.T) {
	path, err := Simulate(domain.ModelParameters{A: 0.1, Sigma: 0, R0: 0.05}, demoGrid, NewSource(1))
	require.NoError(t, err)

	base, err := Price(path, demoGrid)
	require.NoError(t, err)

	prev := base
	for _, factor := range []float64{1.01, 1.5, 2, 10} {
		scaled, err := Price(path.Scale(factor), demoGrid)
		require.NoError(t, err)
		assert.Less(t, scaled, prev, "scale factor %v", factor)
		prev = scaled
	}
}

func TestPrice_LengthMismatch(t *testing.T) {
	for _, n := range []int{0, 99, 101} {
		_, err := Price(make(domain.RatePath, n), demoGrid)
		assert.ErrorIs(t, err, domain.ErrLengthMismatch, "path length %d", n)
	}
}

func TestPrice_InvalidGrid(t *testing.T) {
	_, err := Price(domain.RatePath{}, domain.SimulationGrid{T: 5, Steps: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)

	_, err = Price(domain.RatePath{0.05}, domain.SimulationGrid{T: -1, Steps: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
	assert.NotErrorIs(t, err, domain.ErrLengthMismatch)
}

func TestPrice_OverflowPropagates(t *testing.T) {
	grid := domain.SimulationGrid{T: 5, Steps: 100}
	path := make(domain.RatePath, 100)
	for i := range path {
		path[i] = -1e5
	}
	price, err := Price(path, grid)
	require.NoError(t, err)
	assert.True(t, math.IsInf(price, 1))
}

func TestPriceWithFace(t *testing.T) {
	path := domain.RatePath{0.05, 0.05}
	grid := domain.SimulationGrid{T: 1, Steps: 2}

	unit, err := Price(path, grid)
	require.NoError(t, err)
	scaled, err := PriceWithFace(path, grid, 1000)
	require.NoError(t, err)
	assert.InDelta(t, 1000*unit, scaled, 1e-12)

	_, err = PriceWithFace(domain.RatePath{0.05}, grid, 1000)
	assert.ErrorIs(t, err, domain.ErrLengthMismatch)
}

func TestPriceZeroCouponBond_DeterministicBaseline(t *testing.T) {
	params := domain.ModelParameters{A: 0.1, Sigma: 0, R0: 0.05}
	price, err := PriceZeroCouponBond(params, demoGrid, NewSource(2024))
	require.NoError(t, err)
	assert.InDelta(t, demoBaseline, price, 1e-12)

	again, err := PriceZeroCouponBond(params, demoGrid, NewSequenceSource(5))
	require.NoError(t, err)
	assert.Equal(t, price, again)
}

func TestPriceZeroCouponBond_Errors(t *testing.T) {
	_, err := PriceZeroCouponBond(demoParams, domain.SimulationGrid{T: 5, Steps: 0}, NewSource(1))
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)

	_, err = PriceZeroCouponBond(demoParams, domain.SimulationGrid{T: 0, Steps: 10}, NewSource(1))
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
}
