package calculation

import (
	"math"
	"testing"

	"github.com/rpgo/hullwhite/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	demoParams = domain.ModelParameters{A: 0.1, Sigma: 0.02, R0: 0.05}
	demoGrid   = domain.SimulationGrid{T: 5, Steps: 100}
)

func TestSimulate_DeterministicWithSeededSource(t *testing.T) {
	first, err := Simulate(demoParams, demoGrid, NewSource(12345))
	require.NoError(t, err)
	second, err := Simulate(demoParams, demoGrid, NewSource(12345))
	require.NoError(t, err)

	assert.Equal(t, first, second)

	other, err := Simulate(demoParams, demoGrid, NewSource(54321))
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestSimulate_FirstRateIsInitialRate(t *testing.T) {
	for _, r0 := range []float64{0.05, 0, -0.01, 0.3} {
		params := demoParams
		params.R0 = r0
		path, err := Simulate(params, demoGrid, NewSource(7))
		require.NoError(t, err)
		assert.Equal(t, r0, path[0])
	}
}

func TestSimulate_LengthMatchesSteps(t *testing.T) {
	for _, steps := range []int{1, 2, 3, 10, 100, 1000} {
		grid := domain.SimulationGrid{T: 5, Steps: steps}
		src := NewSequenceSource(0.5, -1.2, 0.3)
		path, err := Simulate(demoParams, grid, src)
		require.NoError(t, err)
		assert.Len(t, path, steps)
		assert.Equal(t, steps-1, src.Drawn(), "draws consumed for %d steps", steps)
	}
}

func TestSimulate_SingleStepNeedsNoSource(t *testing.T) {
	path, err := Simulate(demoParams, domain.SimulationGrid{T: 1, Steps: 1}, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.RatePath{0.05}, path)
}

func TestSimulate_ZeroVolatilityIgnoresRandomness(t *testing.T) {
	params := domain.ModelParameters{A: 0.1, Sigma: 0, R0: 0.05}

	path, err := Simulate(params, demoGrid, NewSequenceSource(3.0, -2.5, 1.7))
	require.NoError(t, err)
	other, err := Simulate(params, demoGrid, NewSource(99))
	require.NoError(t, err)
	assert.Equal(t, path, other)

	assert.InDelta(t, 0.04975, path[1], 1e-15)

	dt := demoGrid.DT()
	assert.Equal(t, 0.05, dt)
	expected := 0.05
	for i := 1; i < demoGrid.Steps; i++ {
		expected = expected + 0.1*(0-expected)*dt
		assert.InDelta(t, expected, path[i], 1e-15, "rate %d", i)
	}
}

func TestSimulate_EulerStepUsesScaledDraw(t *testing.T) {
	params := domain.ModelParameters{A: 0.5, Sigma: 0.1, R0: 0.02}
	grid := domain.SimulationGrid{T: 1, Steps: 5}
	dt := grid.DT()

	path, err := Simulate(params, grid, NewSequenceSource(1, -1, 2, 0))
	require.NoError(t, err)

	draws := []float64{1, -1, 2, 0}
	r := 0.02
	for i, z := range draws {
		r = r + 0.5*(0-r)*dt + 0.1*z*math.Sqrt(dt)
		assert.InDelta(t, r, path[i+1], 1e-15)
	}
}

func TestSimulate_TimeDependentMeanLevel(t *testing.T) {
	params := domain.ModelParameters{
		A:         1,
		R0:        0.01,
		ThetaFunc: func(t float64) float64 { return t },
	}
	grid := domain.SimulationGrid{T: 1, Steps: 4}
	dt := grid.DT()

	path, err := Simulate(params, grid, NewSource(1))
	require.NoError(t, err)

	r1 := 0.01 + (0-0.01)*dt
	r2 := r1 + (dt-r1)*dt
	r3 := r2 + (2*dt-r2)*dt
	assert.InDelta(t, r1, path[1], 1e-15)
	assert.InDelta(t, r2, path[2], 1e-15)
	assert.InDelta(t, r3, path[3], 1e-15)
}

func TestSimulate_ConstantMeanLevel(t *testing.T) {
	params := domain.ModelParameters{A: 0.3, R0: 0.02, Theta: 0.04}
	path, err := Simulate(params, domain.SimulationGrid{T: 30, Steps: 3000}, NewSource(1))
	require.NoError(t, err)
	assert.InDelta(t, 0.04, path[len(path)-1], 1e-4)
}

func TestSimulate_NegativeRatesAllowed(t *testing.T) {
	params := domain.ModelParameters{A: 0.1, Sigma: 0.5, R0: 0.0}
	path, err := Simulate(params, demoGrid, NewSequenceSource(-3))
	require.NoError(t, err)
	assert.Less(t, path[len(path)-1], 0.0)
}

func TestSimulate_InvalidParameters(t *testing.T) {
	tests := []struct {
		name   string
		params domain.ModelParameters
		grid   domain.SimulationGrid
		rng    RandomSource
	}{
		{"zero steps", demoParams, domain.SimulationGrid{T: 5, Steps: 0}, NewSource(1)},
		{"negative steps", demoParams, domain.SimulationGrid{T: 5, Steps: -3}, NewSource(1)},
		{"zero horizon", demoParams, domain.SimulationGrid{T: 0, Steps: 100}, NewSource(1)},
		{"negative horizon", demoParams, domain.SimulationGrid{T: -5, Steps: 100}, NewSource(1)},
		{"NaN horizon", demoParams, domain.SimulationGrid{T: math.NaN(), Steps: 100}, NewSource(1)},
		{"infinite horizon", demoParams, domain.SimulationGrid{T: math.Inf(1), Steps: 100}, NewSource(1)},
		{"NaN a", domain.ModelParameters{A: math.NaN(), Sigma: 0.02, R0: 0.05}, demoGrid, NewSource(1)},
		{"infinite sigma", domain.ModelParameters{A: 0.1, Sigma: math.Inf(1), R0: 0.05}, demoGrid, NewSource(1)},
		{"infinite r0", domain.ModelParameters{A: 0.1, Sigma: 0.02, R0: math.Inf(-1)}, demoGrid, NewSource(1)},
		{"NaN theta", domain.ModelParameters{A: 0.1, Sigma: 0.02, R0: 0.05, Theta: math.NaN()}, demoGrid, NewSource(1)},
		{"missing source", demoParams, demoGrid, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := Simulate(tt.params, tt.grid, tt.rng)
			assert.ErrorIs(t, err, domain.ErrInvalidParameter)
			assert.Nil(t, path)
		})
	}
}

func TestNewStream_StreamsDiffer(t *testing.T) {
	a := NewStream(42, 0)
	b := NewStream(42, 1)
	c := NewSource(42)

	same := 0
	for i := 0; i < 16; i++ {
		av, bv, cv := a.NormFloat64(), b.NormFloat64(), c.NormFloat64()
		assert.Equal(t, av, cv)
		if av == bv {
			same++
		}
	}
	assert.Less(t, same, 16)
}

func TestSequenceSource_Wraps(t *testing.T) {
	src := NewSequenceSource(1, 2)
	assert.Equal(t, 1.0, src.NormFloat64())
	assert.Equal(t, 2.0, src.NormFloat64())
	assert.Equal(t, 1.0, src.NormFloat64())
	assert.Equal(t, 3, src.Drawn())

	empty := NewSequenceSource()
	assert.Equal(t, 0.0, empty.NormFloat64())
}
