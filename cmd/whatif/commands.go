package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/whatif/growth-simulator/internal/api"
	"github.com/whatif/growth-simulator/internal/config"
	"github.com/whatif/growth-simulator/internal/domain"
	"github.com/whatif/growth-simulator/pkg/logger"
)

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the asset classes and risk profiles",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "ASSET CLASSES")
			fmt.Fprintf(w, "%-12s %-16s %8s  %s\n", "ID", "Name", "Return", "Risk")
			for _, ac := range domain.AssetClasses() {
				fmt.Fprintf(w, "%-12s %-16s %7s%%  %s\n", ac.ID, ac.Name, ac.AverageAnnualReturn.StringFixed(1), ac.RiskTier)
			}
			fmt.Fprintln(w)
			fmt.Fprintln(w, "RISK PROFILES")
			fmt.Fprintf(w, "%-12s %-16s %8s\n", "ID", "Name", "Factor")
			for _, rp := range domain.RiskProfiles() {
				fmt.Fprintf(w, "%-12s %-16s %8s\n", rp.ID, rp.Name, rp.Multiplier.StringFixed(1))
			}
		},
	}
}

func newExampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example <request-file>",
		Short: "Write an example request file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rf := config.NewInputParser().CreateExampleRequestFile()
			if err := config.SaveRequestFile(rf, args[0]); err != nil {
				return fmt.Errorf("failed to write example: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example request file written to %s\n", args[0])
			return nil
		},
	}
}

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long:  "Start the HTTP API. Settings come from WHATIF_* environment variables or a .env file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings()
			if err != nil {
				return err
			}
			// Command line logging flags win over the environment.
			level, pretty := settings.LogLevel, settings.LogPretty
			if cmd.Flags().Changed("log-level") {
				level = a.logLevel
			}
			if cmd.Flags().Changed("log-pretty") {
				pretty = a.logPretty
			}
			a.log = logger.New(logger.Config{Level: level, Pretty: pretty, Out: cmd.ErrOrStderr()})
			logger.SetGlobalLogger(a.log)

			ctx, stop := signal.NotifyContext(contextOrBackground(cmd), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := api.New(a.engine(), settings, a.log)
			errCh := make(chan error, 1)
			go func() { errCh <- srv.Start() }()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			return <-errCh
		},
	}
}
