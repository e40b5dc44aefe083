package domain

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidParameter reports a non-finite model input or a degenerate grid.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrLengthMismatch reports a rate path priced against a grid of a different size.
	ErrLengthMismatch = errors.New("length mismatch")
)

// ModelParameters holds the Hull-White one-factor parameters
// dr = A(theta(t) - r)dt + Sigma dW.
type ModelParameters struct {
	A     float64 `yaml:"a" json:"a"`         // mean reversion speed
	Sigma float64 `yaml:"sigma" json:"sigma"` // volatility
	R0    float64 `yaml:"r0" json:"r0"`       // initial short rate
	Theta float64 `yaml:"theta,omitempty" json:"theta,omitempty"`

	// ThetaFunc overrides Theta with a time-dependent mean level when set.
	ThetaFunc func(t float64) float64 `yaml:"-" json:"-"`
}

// MeanLevel returns the level the short rate reverts toward at time t (years).
func (mp ModelParameters) MeanLevel(t float64) float64 {
	if mp.ThetaFunc != nil {
		return mp.ThetaFunc(t)
	}
	return mp.Theta
}

// Validate rejects NaN and infinite inputs. Sign and range are not checked here.
func (mp ModelParameters) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"a", mp.A},
		{"sigma", mp.Sigma},
		{"r0", mp.R0},
		{"theta", mp.Theta},
	}
	for _, f := range fields {
		if !isFinite(f.value) {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidParameter, f.name, f.value)
		}
	}
	return nil
}

// SimulationGrid is a uniform time discretization of [0, T].
type SimulationGrid struct {
	T     float64 `yaml:"t" json:"t"`         // horizon in years
	Steps int     `yaml:"steps" json:"steps"` // number of rate observations
}

// DT returns the step size shared by simulation and discounting.
func (g SimulationGrid) DT() float64 {
	return g.T / float64(g.Steps)
}

// Validate requires at least one step and a finite positive horizon.
func (g SimulationGrid) Validate() error {
	if g.Steps < 1 {
		return fmt.Errorf("%w: steps must be at least 1, got %d", ErrInvalidParameter, g.Steps)
	}
	if !isFinite(g.T) || g.T <= 0 {
		return fmt.Errorf("%w: horizon must be a positive finite number of years, got %v", ErrInvalidParameter, g.T)
	}
	return nil
}

// RatePath is one realized short-rate path; index 0 is the initial rate.
type RatePath []float64

// Scale returns a copy of the path with every rate multiplied by factor.
func (p RatePath) Scale(factor float64) RatePath {
	out := make(RatePath, len(p))
	for i, r := range p {
		out[i] = r * factor
	}
	return out
}

// MinMax returns the smallest and largest rate on the path.
func (p RatePath) MinMax() (min, max float64) {
	if len(p) == 0 {
		return 0, 0
	}
	min, max = p[0], p[0]
	for _, r := range p[1:] {
		if r < min {
			min = r
		}
		if r > max {
			max = r
		}
	}
	return min, max
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
