package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/iho/splitledger/internal/adapter/dto"
	"github.com/iho/splitledger/internal/adapter/repository/file"
	"github.com/iho/splitledger/internal/infrastructure/config"
	"github.com/iho/splitledger/internal/infrastructure/logger"
	"github.com/iho/splitledger/internal/infrastructure/metrics"
	"github.com/iho/splitledger/internal/usecase"
)

type options struct {
	snapshotPath string
	projectID    string
	format       string
	logLevel     string
	dumpMetrics  bool
}

type app struct {
	uc        *usecase.SettlementUseCase
	registry  *prometheus.Registry
	log       zerolog.Logger
	projectID string
	timeout   time.Duration
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "splitctl",
		Short:         "Shared expense balances and settlement",
		Long:          `Computes participant balances and the transfers that settle them from a project snapshot file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.snapshotPath, "snapshot", "", "Path to the project snapshot JSON file (default $SNAPSHOT_PATH)")
	rootCmd.PersistentFlags().StringVar(&opts.projectID, "project", "", "Project id inside the snapshot (default $PROJECT_ID)")
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", "table", "Output format: table or json")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (default $LOG_LEVEL)")
	rootCmd.PersistentFlags().BoolVar(&opts.dumpMetrics, "metrics", false, "Print collected metrics after the command")

	balancesCmd := &cobra.Command{
		Use:   "balances",
		Short: "Show the net balance of every participant",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, printBalances)
		},
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show paid, spent and balance per participant",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, printStatistics)
		},
	}

	settleCmd := &cobra.Command{
		Use:   "settle",
		Short: "Show the transactions that settle all balances",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, printSettlement)
		},
	}

	rootCmd.AddCommand(balancesCmd, statsCmd, settleCmd)

	return rootCmd
}

func newApp(opts *options, stderr io.Writer) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	if opts.snapshotPath != "" {
		cfg.SnapshotPath = opts.snapshotPath
	}
	if opts.projectID != "" {
		cfg.ProjectID = opts.projectID
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}

	tolerance, err := cfg.Tolerance()
	if err != nil {
		return nil, fmt.Errorf("parse IMBALANCE_TOLERANCE: %w", err)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}, stderr)
	registry := prometheus.NewRegistry()

	planner := &usecase.SettlementPlanner{
		MaxExactMatchDebts: cfg.MaxExactMatchDebts,
		DisplayPlaces:      cfg.DisplayPlaces,
	}

	uc := usecase.NewSettlementUseCase(
		file.NewSnapshotRepository(cfg.SnapshotPath),
		file.NewRunIDGenerator(),
		usecase.WithPlanner(planner),
		usecase.WithBalanceOptions(usecase.BalanceOptions{DivisionPrecision: cfg.DivisionPrecision}),
		usecase.WithImbalanceTolerance(tolerance),
		usecase.WithComputeTimeout(cfg.ComputeTimeout),
		usecase.WithLogger(log),
		usecase.WithMetrics(metrics.New(registry)),
	)

	return &app{
		uc:        uc,
		registry:  registry,
		log:       log,
		projectID: cfg.ProjectID,
		timeout:   cfg.ComputeTimeout,
	}, nil
}

type renderer func(ctx context.Context, a *app, format string, w io.Writer) error

func run(cmd *cobra.Command, opts *options, render renderer) error {
	if opts.format != "table" && opts.format != "json" {
		return fmt.Errorf("unknown format %q", opts.format)
	}

	a, err := newApp(opts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout)
	defer cancel()

	if err := render(ctx, a, opts.format, cmd.OutOrStdout()); err != nil {
		a.log.Error().Err(err).Str("project_id", a.projectID).Msg("command failed")
		return err
	}

	if opts.dumpMetrics {
		return writeMetrics(a.registry, cmd.OutOrStdout())
	}

	return nil
}

func printBalances(ctx context.Context, a *app, format string, w io.Writer) error {
	report, err := a.uc.GetBalances(ctx, a.projectID)
	if err != nil {
		return err
	}

	resp := dto.BalancesReportFromUseCase(report)
	if format == "json" {
		return printJSON(w, resp)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PARTICIPANT\tBALANCE")
	for _, b := range resp.Balances {
		fmt.Fprintf(tw, "%s\t%s\n", b.Name, b.Balance.StringFixedBank(2))
	}
	return tw.Flush()
}

func printStatistics(ctx context.Context, a *app, format string, w io.Writer) error {
	report, err := a.uc.GetStatistics(ctx, a.projectID)
	if err != nil {
		return err
	}

	resp := dto.StatisticsFromDomain(report.Statistics, report.Participants)
	if format == "json" {
		return printJSON(w, resp)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PARTICIPANT\tPAID\tSPENT\tBALANCE")
	for _, s := range resp {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.Name,
			s.Paid.StringFixedBank(2), s.Spent.StringFixedBank(2), s.Balance.StringFixedBank(2))
	}
	return tw.Flush()
}

func printSettlement(ctx context.Context, a *app, format string, w io.Writer) error {
	report, err := a.uc.SettleProject(ctx, a.projectID)
	if err != nil {
		return err
	}

	resp := dto.SettlementReportFromUseCase(report)
	if format == "json" {
		return printJSON(w, resp)
	}

	names := make(map[string]string, len(report.Participants))
	for _, p := range report.Participants {
		names[p.ID] = p.Name
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "WHO PAYS\tTO WHOM\tHOW MUCH")
	for _, t := range resp.Transactions {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", names[t.Ower], names[t.Receiver], t.Amount.StringFixedBank(2))
	}
	return tw.Flush()
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeMetrics(gatherer prometheus.Gatherer, w io.Writer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
