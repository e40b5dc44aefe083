package calculation

import (
	"fmt"
	"math"

	"github.com/rpgo/hullwhite/internal/domain"
)

// Price discounts a unit face value along path: the product over every rate
// (index 0 included) of exp(-r*dt), a left-endpoint approximation of
// exp(-∫r dt) over [0, T]. A single path gives one Monte Carlo draw, not an
// expectation. Extreme negative rates may overflow to +Inf; that is returned as is.
func Price(path domain.RatePath, grid domain.SimulationGrid) (float64, error) {
	if err := grid.Validate(); err != nil {
		return 0, err
	}
	if len(path) != grid.Steps {
		return 0, fmt.Errorf("%w: path has %d rates but grid has %d steps", domain.ErrLengthMismatch, len(path), grid.Steps)
	}

	dt := grid.DT()
	discountFactor := 1.0
	for _, r := range path {
		discountFactor *= math.Exp(-r * dt)
	}
	return discountFactor, nil
}

// PriceWithFace scales the unit price by faceValue in float64. The pricing
// engine prices reports with a decimal face value through Money.Discount
// instead; both multiply the same unit price.
func PriceWithFace(path domain.RatePath, grid domain.SimulationGrid, faceValue float64) (float64, error) {
	df, err := Price(path, grid)
	if err != nil {
		return 0, err
	}
	return faceValue * df, nil
}

// PriceZeroCouponBond simulates one path and prices a unit zero-coupon bond on it.
func PriceZeroCouponBond(params domain.ModelParameters, grid domain.SimulationGrid, rng RandomSource) (float64, error) {
	path, err := Simulate(params, grid, rng)
	if err != nil {
		return 0, err
	}
	return Price(path, grid)
}
