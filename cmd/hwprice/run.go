package main

import (
	"fmt"

	"github.com/rpgo/hullwhite/internal/calculation"
	"github.com/rpgo/hullwhite/internal/config"
	"github.com/rpgo/hullwhite/internal/output"
	"github.com/spf13/cobra"
)

func newRunCmd(app *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <config.yaml>",
		Short: "Price every scenario of a YAML configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			app.logger.WithField("file", args[0]).Infof("loaded %d scenarios", len(cfg.Scenarios))

			engine := calculation.NewPricingEngine()
			engine.SetLogger(app.logger)
			engine.Workers = app.v.GetInt("workers")
			engine.IncludePath = app.v.GetBool("include-path")

			report, err := engine.RunScenarios(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return app.emit(cmd, report)
		},
	}
	fs := cmd.Flags()
	fs.Int("workers", 0, "Monte Carlo workers (0 uses the configuration, then all CPUs)")
	fs.Bool("include-path", true, "include the simulated rate paths in the report")
	addOutputFlags(fs)
	return cmd
}

func newValidateCmd(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config.yaml>",
		Short: "Load and validate a configuration without pricing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Configuration is valid: %d scenario(s)\n", len(cfg.Scenarios))
			for _, sc := range cfg.Scenarios {
				grid, err := sc.Grid()
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "  %s: T=%g years, %d steps, %d path(s)\n", sc.Name, grid.T, grid.Steps, max(sc.Paths, 1))
			}
			return nil
		},
	}
}

func newExampleConfigCmd(app *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "example-config",
		Short: "Print an example YAML configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			example := parser.CreateExampleConfiguration()
			if out := app.v.GetString("out"); out != "" {
				if err := output.SaveConfiguration(example, out); err != nil {
					return fmt.Errorf("failed to save example configuration: %w", err)
				}
				app.logger.Infof("wrote example configuration to %s", out)
				return nil
			}
			data, err := parser.MarshalConfiguration(example)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().String("out", "", "write the example to this file instead of stdout")
	return cmd
}
