package calculation

import (
	"context"
	"fmt"

	"github.com/rpgo/hullwhite/internal/domain"
	money "github.com/rpgo/hullwhite/pkg/decimal"
)

// PricingEngine orchestrates simulation, discounting and Monte Carlo aggregation
// for configured scenarios.
type PricingEngine struct {
	Workers     int  // Monte Carlo concurrency, <= 0 uses GOMAXPROCS
	IncludePath bool // keep the simulated path on each result
	Logger      Logger
}

// NewPricingEngine creates a new pricing engine
func NewPricingEngine() *PricingEngine {
	return &PricingEngine{
		IncludePath: true,
		Logger:      NopLogger{},
	}
}

// SetLogger sets the logger for the pricing engine. If nil is provided, a no-op logger is used.
func (pe *PricingEngine) SetLogger(l Logger) {
	pe.Logger = loggerOrNop(l)
}

// PriceScenario prices one scenario: a single simulated path (the core result),
// an optional Monte Carlo average and the closed-form benchmark when available.
func (pe *PricingEngine) PriceScenario(ctx context.Context, scenario *domain.Scenario) (*domain.PricingResult, error) {
	return pe.priceScenario(ctx, scenario, pe.Workers)
}

func (pe *PricingEngine) priceScenario(ctx context.Context, scenario *domain.Scenario, workers int) (*domain.PricingResult, error) {
	logger := loggerOrNop(pe.Logger)

	grid, err := scenario.Grid()
	if err != nil {
		return nil, err
	}
	seed := resolveSeed(scenario.Seed)
	logger.Debugf("scenario %q: a=%g sigma=%g r0=%g T=%g steps=%d seed=%d",
		scenario.Name, scenario.Model.A, scenario.Model.Sigma, scenario.Model.R0, grid.T, grid.Steps, seed)

	path, err := Simulate(scenario.Model, grid, NewSource(seed))
	if err != nil {
		return nil, fmt.Errorf("scenario %q: failed to simulate rate path: %w", scenario.Name, err)
	}
	df, err := Price(path, grid)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: failed to price bond: %w", scenario.Name, err)
	}

	face := money.NewMoneyFromDecimal(scenario.Bond.FaceValue)
	if face.IsZero() {
		face = money.NewMoney(1)
	}

	result := &domain.PricingResult{
		ScenarioName:   scenario.Name,
		BondName:       scenario.Bond.Name,
		Model:          scenario.Model,
		Grid:           grid,
		Seed:           seed,
		FaceValue:      face.Decimal,
		DiscountFactor: df,
	}
	if pv, err := face.Discount(df); err != nil {
		logger.Warnf("scenario %q: %v; present value left at zero", scenario.Name, err)
		result.Overflow = true
	} else {
		result.PresentValue = pv.Decimal
	}
	if pe.IncludePath {
		result.Path = path
	}

	if scenario.Model.ThetaFunc == nil {
		if analytic, err := AnalyticZeroCouponPrice(scenario.Model, grid.T); err == nil {
			result.Analytic = &analytic
		} else {
			logger.Warnf("scenario %q: closed-form benchmark unavailable: %v", scenario.Name, err)
		}
	}

	if scenario.Paths > 1 {
		mcp := NewMonteCarloPricer(MonteCarloConfig{
			NumPaths: scenario.Paths,
			Workers:  workers,
			Seed:     seed,
		})
		mcp.SetLogger(logger)
		mc, err := mcp.RunSimulation(ctx, scenario.Model, grid)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: monte carlo run failed: %w", scenario.Name, err)
		}
		result.MonteCarlo = mc.Summary()
	}

	logger.Infof("scenario %q: discount factor %.8f, present value %s", scenario.Name, df, result.PresentValue.StringFixed(2))
	return result, nil
}

// RunScenarios prices every scenario of the configuration in order.
func (pe *PricingEngine) RunScenarios(ctx context.Context, config *domain.Configuration) (*domain.PricingReport, error) {
	if config == nil || len(config.Scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios provided")
	}
	workers := pe.Workers
	if workers <= 0 {
		workers = config.Simulation.Workers
	}

	report := &domain.PricingReport{GeneratedAt: nowFunc()}
	for i := range config.Scenarios {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result, err := pe.priceScenario(ctx, &config.Scenarios[i], workers)
		if err != nil {
			return nil, fmt.Errorf("failed to run scenario %d: %w", i, err)
		}
		report.Results = append(report.Results, *result)
	}
	return report, nil
}
