package main

import (
	"fmt"
	"strings"

	"github.com/rpgo/hullwhite/internal/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cli carries the per-invocation settings and logger shared by subcommands.
type cli struct {
	v      *viper.Viper
	logger *logrus.Logger
}

func newRootCmd() *cobra.Command {
	app := &cli{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:           "hwprice",
		Short:         "Hull-White short-rate simulator and zero-coupon bond pricer",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(cmd)
		},
	}
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")

	rootCmd.AddCommand(
		newPriceCmd(app),
		newRunCmd(app),
		newValidateCmd(app),
		newExampleConfigCmd(app),
		newChartCmd(app),
		newVersionCmd(),
	)
	return rootCmd
}

// setup binds flags and HWPRICE_* environment variables, then builds the logger.
func (app *cli) setup(cmd *cobra.Command) error {
	app.v.SetEnvPrefix("HWPRICE")
	app.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	app.v.AutomaticEnv()
	if err := app.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}

	logger, err := logging.New(app.v.GetString("log-level"), app.v.GetString("log-format"), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	app.logger = logger
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hwprice %s\n", version)
		},
	}
}
