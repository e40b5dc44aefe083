package main

import (
	"fmt"

	"github.com/rpgo/hullwhite/internal/calculation"
	"github.com/rpgo/hullwhite/internal/config"
	"github.com/rpgo/hullwhite/internal/domain"
	"github.com/rpgo/hullwhite/internal/output"
	money "github.com/rpgo/hullwhite/pkg/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// addModelFlags registers the model and grid flags shared by price and chart.
// Defaults are the demonstration parameters.
func addModelFlags(fs *pflag.FlagSet) {
	fs.Float64("a", 0.1, "mean reversion speed")
	fs.Float64("sigma", 0.02, "short-rate volatility")
	fs.Float64("r0", 0.05, "initial short rate")
	fs.Float64("theta", 0, "constant mean level")
	fs.Float64("maturity", 5, "bond maturity in years")
	fs.Int("steps", 100, "number of rate observations on the grid")
	fs.Int64("seed", 0, "random seed (0 picks one)")
}

// scenarioFromFlags builds a single validated scenario from the bound settings.
func (app *cli) scenarioFromFlags(name string) (domain.Scenario, error) {
	face := money.NewMoney(1)
	if s := app.v.GetString("face"); s != "" {
		parsed, err := money.NewMoneyFromString(s)
		if err != nil {
			return domain.Scenario{}, fmt.Errorf("invalid face value %q: %w", s, err)
		}
		face = parsed
	}

	sc := domain.Scenario{
		Name: name,
		Model: domain.ModelParameters{
			A:     app.v.GetFloat64("a"),
			Sigma: app.v.GetFloat64("sigma"),
			R0:    app.v.GetFloat64("r0"),
			Theta: app.v.GetFloat64("theta"),
		},
		Bond: domain.Bond{
			Name:          fmt.Sprintf("%gY zero", app.v.GetFloat64("maturity")),
			FaceValue:     face.Decimal,
			MaturityYears: app.v.GetFloat64("maturity"),
		},
		Steps: app.v.GetInt("steps"),
		Seed:  app.v.GetInt64("seed"),
		Paths: app.v.GetInt("paths"),
	}

	cfg := &domain.Configuration{
		Simulation: domain.SimulationSettings{Workers: app.v.GetInt("workers")},
		Scenarios:  []domain.Scenario{sc},
	}
	parser := config.NewInputParser()
	parser.ApplyDefaults(cfg)
	if err := parser.ValidateConfiguration(cfg); err != nil {
		return domain.Scenario{}, fmt.Errorf("invalid parameters: %w", err)
	}
	return cfg.Scenarios[0], nil
}

func newPriceCmd(app *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "price",
		Short: "Simulate one rate path and price a zero-coupon bond",
		Long: `Simulate a Hull-White short-rate path with Euler-Maruyama and price a
zero-coupon bond by compounding exp(-r*dt) along it.

With --paths greater than 1 the single-path price is accompanied by a Monte Carlo
average over independent paths.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := app.scenarioFromFlags("command line")
			if err != nil {
				return err
			}

			engine := calculation.NewPricingEngine()
			engine.SetLogger(app.logger)
			engine.Workers = app.v.GetInt("workers")
			engine.IncludePath = app.v.GetBool("include-path")

			report, err := engine.RunScenarios(cmd.Context(), &domain.Configuration{Scenarios: []domain.Scenario{sc}})
			if err != nil {
				return err
			}
			return app.emit(cmd, report)
		},
	}
	fs := cmd.Flags()
	addModelFlags(fs)
	fs.String("face", "1", "face value paid at maturity")
	fs.Int("paths", 1, "Monte Carlo paths (1 prices the single path only)")
	fs.Int("workers", 0, "Monte Carlo workers (0 uses all CPUs)")
	fs.Bool("include-path", true, "include the simulated rate path in the report")
	addOutputFlags(fs)
	return cmd
}

func addOutputFlags(fs *pflag.FlagSet) {
	fs.String("format", "console", "output format: console, console-lite, csv, path-csv, json, html, or all")
	fs.String("output-dir", "", "write the report to a timestamped file in this directory instead of stdout")
}

// emit prints the report, or writes it to files when an output directory is set.
func (app *cli) emit(cmd *cobra.Command, report *domain.PricingReport) error {
	format := app.v.GetString("format")
	dir := app.v.GetString("output-dir")
	if dir == "" {
		if output.NormalizeFormatName(format) == "all" {
			return fmt.Errorf("format \"all\" needs --output-dir")
		}
		return output.Render(cmd.OutOrStdout(), report, format)
	}
	files, err := output.GenerateReport(report, format, dir)
	if err != nil {
		return err
	}
	for _, f := range files {
		app.logger.Infof("wrote %s", f)
		fmt.Fprintln(cmd.OutOrStdout(), f)
	}
	return nil
}
