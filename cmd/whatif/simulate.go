package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/whatif/growth-simulator/internal/config"
	"github.com/whatif/growth-simulator/internal/domain"
	"github.com/whatif/growth-simulator/internal/output"
)

func newSimulateCmd(a *app) *cobra.Command {
	var (
		principal string
		years     int
		asset     string
		risk      string
		format    string
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Project a single investment",
		Example: `  whatif simulate --principal 10000 --years 5 --asset stocks --risk moderate
  whatif simulate --principal 2500 --years 10 --asset crypto --risk aggressive --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := decimal.NewFromString(principal)
			if err != nil {
				return fmt.Errorf("%w: principal %q is not a number", domain.ErrInvalidRequest, principal)
			}
			req := domain.SimulationRequest{Principal: p, Years: years, AssetClassID: asset, RiskProfileID: risk}
			if err := req.Validate(); err != nil {
				return err
			}

			name := strings.ToLower(strings.TrimSpace(asset)) + "/" + strings.ToLower(strings.TrimSpace(risk))
			batch, err := a.engine().RunScenarios(contextOrBackground(cmd), []domain.NamedRequest{{Name: name, Request: req}})
			if err != nil {
				return err
			}
			out, err := output.Render(batch, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVar(&principal, "principal", "", "initial investment amount")
	cmd.Flags().IntVar(&years, "years", 5, fmt.Sprintf("projection horizon in years (%d-%d)", domain.MinYears, domain.MaxYears))
	cmd.Flags().StringVar(&asset, "asset", "stocks", "asset class id")
	cmd.Flags().StringVar(&risk, "risk", "moderate", "risk profile id")
	cmd.Flags().StringVar(&format, "format", "console", "output format")
	_ = cmd.MarkFlagRequired("principal")
	return cmd
}

func newRunCmd(a *app) *cobra.Command {
	var (
		format string
		outDir string
		save   string
	)

	cmd := &cobra.Command{
		Use:   "run <request-file>",
		Short: "Run every scenario of a YAML request file",
		Example: `  whatif run scenarios.yaml
  whatif run scenarios.yaml --format html --out reports/`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rf, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			a.log.Info().Str("file", args[0]).Int("scenarios", len(rf.Scenarios)).Msg("running request file")

			batch, err := a.engine().RunScenarios(contextOrBackground(cmd), rf.Resolved())
			if err != nil {
				return err
			}

			if save != "" {
				if err := output.SaveBatch(batch, save); err != nil {
					return fmt.Errorf("failed to save results: %w", err)
				}
			}

			if outDir != "" {
				if err := os.MkdirAll(outDir, 0755); err != nil {
					return err
				}
				path, err := output.GenerateReport(batch, format, outDir)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", filepath.Clean(path))
				return nil
			}

			out, err := output.Render(batch, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", "console", "output format ("+strings.Join(output.AvailableFormatterNames(), ", ")+")")
	cmd.Flags().StringVar(&outDir, "out", "", "write a timestamped report file into this directory instead of stdout")
	cmd.Flags().StringVar(&save, "save", "", "also archive the evaluated scenarios as YAML to this file")
	return cmd
}

func newMatrixCmd(a *app) *cobra.Command {
	var (
		principal string
		years     int
		format    string
	)

	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Project one investment across every asset class and risk profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := decimal.NewFromString(principal)
			if err != nil {
				return fmt.Errorf("%w: principal %q is not a number", domain.ErrInvalidRequest, principal)
			}
			if !p.IsPositive() {
				return fmt.Errorf("%w: principal must be positive, got %s", domain.ErrInvalidRequest, p)
			}
			if years < domain.MinYears || years > domain.MaxYears {
				return fmt.Errorf("%w: years must be between %d and %d, got %d", domain.ErrInvalidRequest, domain.MinYears, domain.MaxYears, years)
			}

			m, err := a.engine().ProjectMatrix(p, years)
			if err != nil {
				return err
			}
			out, err := output.FormatMatrix(m, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVar(&principal, "principal", "10000", "initial investment amount")
	cmd.Flags().IntVar(&years, "years", 5, "projection horizon in years")
	cmd.Flags().StringVar(&format, "format", "console", "output format (console, json, csv)")
	return cmd
}

// contextOrBackground keeps commands usable when executed without ExecuteContext.
func contextOrBackground(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
