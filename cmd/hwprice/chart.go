package main

import (
	"fmt"
	"os"

	"github.com/rpgo/hullwhite/internal/calculation"
	"github.com/rpgo/hullwhite/internal/output"
	"github.com/spf13/cobra"
)

func newChartCmd(app *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render one simulated rate path as a PNG line chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := app.v.GetString("out")
			if out == "" {
				return fmt.Errorf("--out is required")
			}
			sc, err := app.scenarioFromFlags("chart")
			if err != nil {
				return err
			}
			grid, err := sc.Grid()
			if err != nil {
				return err
			}
			seed := sc.Seed
			if seed == 0 {
				seed = calculation.NewSeed()
			}

			path, err := calculation.Simulate(sc.Model, grid, calculation.NewSource(seed))
			if err != nil {
				return err
			}
			title := fmt.Sprintf("Hull-White short rate (a=%g, sigma=%g, seed=%d)", sc.Model.A, sc.Model.Sigma, seed)
			png, err := output.RenderRatePathChart(path, grid, title)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, png, 0644); err != nil {
				return fmt.Errorf("failed to write chart: %w", err)
			}
			app.logger.Infof("wrote %s", out)
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	fs := cmd.Flags()
	addModelFlags(fs)
	fs.String("out", "", "PNG file to write")
	return cmd
}
