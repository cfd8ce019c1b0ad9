package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/example/cab-booking/internal/application/simulator"
	"github.com/example/cab-booking/internal/infrastructure/metrics"
)

func newSimulateCmd(a *app) *cobra.Command {
	var (
		plan        simulator.Plan
		showMetrics bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Fire concurrent booking requests and report how the admission policy behaved",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			reg := prometheus.NewRegistry()
			uc, err := a.newBooker(reg)
			if err != nil {
				return err
			}

			s := &simulator.Simulator{Booker: uc, Logger: a.logger}
			rep, err := s.Run(ctx, plan)
			if err != nil {
				return err
			}
			if err := writeJSON(cmd.OutOrStdout(), rep); err != nil {
				return err
			}
			if showMetrics {
				return metrics.WriteText(cmd.OutOrStdout(), reg)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&plan.Requests, "requests", 1000, "number of booking requests")
	cmd.Flags().IntVar(&plan.Concurrency, "concurrency", 8, "concurrent callers")
	cmd.Flags().StringArrayVar(&plan.Locations, "location", []string{"Main St"}, "pickup location (repeatable, used round-robin)")
	cmd.Flags().BoolVar(&showMetrics, "metrics", false, "print Prometheus metrics after the report")
	return cmd
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
