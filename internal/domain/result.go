package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PercentileRanges summarizes the distribution of per-path discount factors.
type PercentileRanges struct {
	P10 float64 `json:"p10"`
	P25 float64 `json:"p25"`
	P50 float64 `json:"p50"`
	P75 float64 `json:"p75"`
	P90 float64 `json:"p90"`
}

// MonteCarloSummary is the aggregate of many independent single-path prices.
type MonteCarloSummary struct {
	NumPaths         int              `json:"num_paths"`
	Seed             int64            `json:"seed"`
	Mean             float64          `json:"mean"`
	StdDev           float64          `json:"std_dev"`
	StdError         float64          `json:"std_error"`
	PercentileRanges PercentileRanges `json:"percentile_ranges"`
}

// PricingResult is the outcome of pricing one scenario.
type PricingResult struct {
	ScenarioName   string             `json:"scenario_name"`
	BondName       string             `json:"bond_name"`
	Model          ModelParameters    `json:"model"`
	Grid           SimulationGrid     `json:"grid"`
	Seed           int64              `json:"seed"`
	FaceValue      decimal.Decimal    `json:"face_value"`
	DiscountFactor float64            `json:"discount_factor"` // single-path price of a unit face value
	PresentValue   decimal.Decimal    `json:"present_value"`
	Overflow       bool               `json:"overflow,omitempty"` // DiscountFactor is not finite
	Path           RatePath           `json:"path,omitempty"`
	MonteCarlo     *MonteCarloSummary `json:"monte_carlo,omitempty"`
	Analytic       *float64           `json:"analytic,omitempty"` // closed form, constant mean level only
}

// PricingReport collects the results of a configuration run.
type PricingReport struct {
	GeneratedAt time.Time       `json:"generated_at"`
	Results     []PricingResult `json:"results"`
}
