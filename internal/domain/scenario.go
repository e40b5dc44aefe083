package domain

import (
	"fmt"
	"math"
	"time"

	"github.com/rpgo/hullwhite/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// Bond describes a zero-coupon bond paying FaceValue at maturity.
// The horizon comes from MaturityYears when positive, otherwise from the dates.
type Bond struct {
	Name          string          `yaml:"name" json:"name"`
	FaceValue     decimal.Decimal `yaml:"face_value" json:"face_value"`
	ValuationDate time.Time       `yaml:"valuation_date,omitempty" json:"valuation_date,omitempty"`
	MaturityDate  time.Time       `yaml:"maturity_date,omitempty" json:"maturity_date,omitempty"`
	MaturityYears float64         `yaml:"maturity_years,omitempty" json:"maturity_years,omitempty"`
}

// Horizon returns the time to maturity in years.
func (b Bond) Horizon() (float64, error) {
	if b.MaturityYears > 0 {
		return b.MaturityYears, nil
	}
	if b.ValuationDate.IsZero() || b.MaturityDate.IsZero() {
		return 0, fmt.Errorf("%w: bond %q needs maturity_years or both valuation_date and maturity_date", ErrInvalidParameter, b.Name)
	}
	years := dateutil.YearFraction(b.ValuationDate, b.MaturityDate)
	if years <= 0 {
		return 0, fmt.Errorf("%w: bond %q matures on %s, not after valuation date %s", ErrInvalidParameter, b.Name,
			b.MaturityDate.Format(dateutil.DateLayout), b.ValuationDate.Format(dateutil.DateLayout))
	}
	return years, nil
}

// Scenario is one pricing run: a model, a bond and a discretization.
type Scenario struct {
	Name         string          `yaml:"name" json:"name"`
	Model        ModelParameters `yaml:"model" json:"model"`
	Bond         Bond            `yaml:"bond" json:"bond"`
	Steps        int             `yaml:"steps,omitempty" json:"steps,omitempty"`
	StepsPerYear int             `yaml:"steps_per_year,omitempty" json:"steps_per_year,omitempty"`
	Seed         int64           `yaml:"seed,omitempty" json:"seed,omitempty"`
	Paths        int             `yaml:"paths,omitempty" json:"paths,omitempty"` // > 1 enables Monte Carlo averaging
}

// Grid derives the simulation grid from the bond horizon. Steps wins over StepsPerYear.
func (s Scenario) Grid() (SimulationGrid, error) {
	horizon, err := s.Bond.Horizon()
	if err != nil {
		return SimulationGrid{}, err
	}
	steps := s.Steps
	if steps == 0 && s.StepsPerYear > 0 {
		steps = int(math.Ceil(horizon * float64(s.StepsPerYear)))
	}
	grid := SimulationGrid{T: horizon, Steps: steps}
	if err := grid.Validate(); err != nil {
		return SimulationGrid{}, fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	return grid, nil
}

// SimulationSettings are run-wide knobs shared by every scenario.
type SimulationSettings struct {
	Workers int `yaml:"workers,omitempty" json:"workers,omitempty"`
}

// Configuration is the top-level input file.
type Configuration struct {
	Simulation SimulationSettings `yaml:"simulation" json:"simulation"`
	Scenarios  []Scenario         `yaml:"scenarios" json:"scenarios"`
}
