package config

import (
	"fmt"
	"math"
	"os"

	"github.com/rpgo/hullwhite/internal/domain"
	"github.com/rpgo/hullwhite/pkg/dateutil"
	money "github.com/rpgo/hullwhite/pkg/decimal"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const (
	// defaultStepsPerYear gives dt = 0.05, the step of the demonstration grid.
	defaultStepsPerYear = 20
	maxHorizonYears     = 100
	maxSteps            = 10_000_000
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes, defaults and validates configuration bytes.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ip.ApplyDefaults(&config)

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ApplyDefaults fills a unit face value and the default step density where omitted.
func (ip *InputParser) ApplyDefaults(config *domain.Configuration) {
	for i := range config.Scenarios {
		sc := &config.Scenarios[i]
		if sc.Bond.FaceValue.IsZero() {
			sc.Bond.FaceValue = decimal.NewFromInt(1)
		}
		if sc.Steps == 0 && sc.StepsPerYear == 0 {
			sc.StepsPerYear = defaultStepsPerYear
		}
	}
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config.Simulation.Workers < 0 {
		return fmt.Errorf("simulation workers cannot be negative")
	}

	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	seen := make(map[string]bool, len(config.Scenarios))
	for i, scenario := range config.Scenarios {
		if err := ip.validateScenario(&scenario); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
		if seen[scenario.Name] {
			return fmt.Errorf("scenario %d validation failed: duplicate scenario name %q", i, scenario.Name)
		}
		seen[scenario.Name] = true
	}

	return nil
}

// validateScenario validates a single scenario
func (ip *InputParser) validateScenario(scenario *domain.Scenario) error {
	if scenario.Name == "" {
		return fmt.Errorf("scenario name is required")
	}

	if err := ip.validateModel(&scenario.Model); err != nil {
		return fmt.Errorf("model validation failed: %w", err)
	}

	if err := ip.validateBond(&scenario.Bond); err != nil {
		return fmt.Errorf("bond validation failed: %w", err)
	}

	if scenario.Steps < 0 {
		return fmt.Errorf("steps cannot be negative")
	}
	if scenario.StepsPerYear < 0 {
		return fmt.Errorf("steps per year cannot be negative")
	}
	if scenario.Paths < 0 {
		return fmt.Errorf("paths cannot be negative")
	}

	grid, err := scenario.Grid()
	if err != nil {
		return err
	}
	if grid.Steps > maxSteps {
		return fmt.Errorf("grid has %d steps, more than the limit of %d", grid.Steps, maxSteps)
	}

	return nil
}

// validateModel validates model parameters. The pricer accepts any finite values;
// configuration files are held to the economically meaningful ranges.
func (ip *InputParser) validateModel(model *domain.ModelParameters) error {
	if err := model.Validate(); err != nil {
		return err
	}
	if model.A < 0 {
		return fmt.Errorf("mean reversion speed cannot be negative")
	}
	if model.Sigma < 0 {
		return fmt.Errorf("volatility cannot be negative")
	}
	return nil
}

// validateBond validates the instrument
func (ip *InputParser) validateBond(bond *domain.Bond) error {
	if !money.NewMoneyFromDecimal(bond.FaceValue).IsPositive() {
		return fmt.Errorf("face value must be positive")
	}
	if math.IsNaN(bond.MaturityYears) || math.IsInf(bond.MaturityYears, 0) || bond.MaturityYears < 0 {
		return fmt.Errorf("maturity years must be a non-negative finite number")
	}
	if bond.MaturityYears > 0 && !bond.MaturityDate.IsZero() {
		return fmt.Errorf("specify either maturity_years or maturity_date, not both")
	}

	horizon, err := bond.Horizon()
	if err != nil {
		return err
	}
	if horizon > maxHorizonYears {
		return fmt.Errorf("maturity of %.2f years exceeds %d years", horizon, maxHorizonYears)
	}
	return nil
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	valuationDate, _ := dateutil.ParseDate("2026-01-02")
	maturityDate := dateutil.AddYears(valuationDate, 10)

	return &domain.Configuration{
		Simulation: domain.SimulationSettings{Workers: 4},
		Scenarios: []domain.Scenario{
			{
				Name:  "Demonstration",
				Model: domain.ModelParameters{A: 0.1, Sigma: 0.02, R0: 0.05},
				Bond: domain.Bond{
					Name:          "5Y unit zero",
					FaceValue:     decimal.NewFromInt(1),
					MaturityYears: 5,
				},
				Steps: 100,
				Seed:  42,
			},
			{
				Name:  "10Y Monte Carlo",
				Model: domain.ModelParameters{A: 0.15, Sigma: 0.01, R0: 0.035, Theta: 0.04},
				Bond: domain.Bond{
					Name:          "10Y zero 1000",
					FaceValue:     decimal.NewFromInt(1000),
					ValuationDate: valuationDate,
					MaturityDate:  maturityDate,
				},
				StepsPerYear: 52,
				Seed:         7,
				Paths:        10000,
			},
		},
	}
}

// MarshalConfiguration renders a configuration as YAML.
func (ip *InputParser) MarshalConfiguration(config *domain.Configuration) ([]byte, error) {
	data, err := yaml.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	return data, nil
}
