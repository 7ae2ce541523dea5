package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/whatif/growth-simulator/internal/calculation"
	"github.com/whatif/growth-simulator/pkg/logger"
)

// app carries state shared by every subcommand.
type app struct {
	logLevel  string
	logPretty bool
	log       zerolog.Logger
}

func (a *app) engine() *calculation.ProjectionEngine {
	engine := calculation.NewProjectionEngine()
	engine.SetLogger(logger.NewEngineLogger(a.log))
	return engine
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "whatif",
		Short: "What-If investment growth simulator",
		Long: `whatif projects how a lump-sum investment could grow over a number of years
for a chosen asset class and risk profile, under conservative, expected and
optimistic scenarios.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.log = logger.New(logger.Config{Level: a.logLevel, Pretty: a.logPretty, Out: cmd.ErrOrStderr()})
			logger.SetGlobalLogger(a.log)
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&a.logPretty, "log-pretty", false, "human readable log output")

	root.AddCommand(
		newSimulateCmd(a),
		newRunCmd(a),
		newMatrixCmd(a),
		newCatalogCmd(),
		newExampleCmd(),
		newServeCmd(a),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
