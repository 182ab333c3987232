package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/logiflow/teambalance/core/condition"
	coremetrics "github.com/logiflow/teambalance/core/metrics"
	"github.com/logiflow/teambalance/core/model"
	"github.com/logiflow/teambalance/core/partition"
	"github.com/logiflow/teambalance/core/roster"
	"github.com/logiflow/teambalance/infra/logger"
	"github.com/logiflow/teambalance/infra/metrics"
	"github.com/logiflow/teambalance/internal/eventbus"
	"github.com/logiflow/teambalance/pkg/export"
)

var (
	balanceInput  string
	balanceOutput string
	balanceFormat string
)

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Score a roster and partition every cohort into two teams",
	RunE:  runBalance,
}

func init() {
	balanceCmd.Flags().StringVarP(&balanceInput, "input", "i", "", "roster CSV file (required)")
	balanceCmd.Flags().StringVarP(&balanceOutput, "output", "o", "-", "output file, - for stdout")
	balanceCmd.Flags().StringVarP(&balanceFormat, "format", "f", "", "output format: csv or json (overrides config)")
	_ = balanceCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(balanceCmd)
}

func runBalance(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if balanceFormat != "" {
		cfg.Export.Format = balanceFormat
		if err := cfg.Export.Validate(); err != nil {
			return err
		}
	}
	logg := logger.New("balance")

	players, err := readPlayers(cfg.Roster.Now(), balanceInput, logg)
	if err != nil {
		return err
	}

	sink := buildSink(ctx, cfg.Metrics, logg)

	bus := eventbus.New()
	defer bus.Close()

	cond := condition.New(cfg.Condition, logger.New("condition"), bus)
	solver := partition.NewSolver(cfg.Solver, logger.New("solver"))
	orch, err := partition.NewOrchestrator(cond, solver, cfg.Solver.Parallel, sink, bus, logger.New("orchestrator"))
	if err != nil {
		return err
	}

	res := orch.Run(ctx, players)
	for _, merr := range res.Malformed {
		logg.Warnf("skipped: %v", merr)
	}
	for cohort, cerr := range res.Failures {
		logg.Errorf("cohort %s not balanced: %v", cohort, cerr)
	}
	if len(res.Cohorts) == 0 {
		return fmt.Errorf("no cohort could be balanced")
	}

	out, closeOut, err := openOutput(balanceOutput)
	if err != nil {
		return err
	}
	defer closeOut()

	opts := export.Options{IncludePlaceholders: cfg.Export.IncludePlaceholders}
	switch cfg.Export.Format {
	case "json":
		err = export.WriteJSON(out, res.Cohorts, opts)
	default:
		err = export.WriteCSV(out, res.Cohorts, opts)
	}
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logg.Infof("run %s: %d cohorts balanced, %d failed", res.RunID, len(res.Cohorts), len(res.Failures))
	return nil
}

// readPlayers loads and scores the roster file.
func readPlayers(now time.Time, path string, logg logger.Logger) ([]model.Player, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open roster: %w", err)
	}
	defer f.Close()

	records, err := roster.ReadCSV(f)
	if err != nil {
		return nil, err
	}
	players, errs := roster.Score(records, now)
	for _, rerr := range errs {
		logg.Warnf("roster: %v", rerr)
	}
	logg.Infof("loaded %d players (%d rows rejected)", len(players), len(errs))
	if len(players) == 0 {
		return nil, fmt.Errorf("no valid players in %s", path)
	}
	return players, nil
}

// buildSink assembles the configured solve sinks, mirroring the metrics
// wiring of the service entrypoint.
func buildSink(ctx context.Context, cfg coremetrics.Config, logg logger.Logger) coremetrics.SolveSink {
	var sinks []coremetrics.SolveSink
	if cfg.PrometheusEnabled {
		sink, err := metrics.NewPromSink(nil)
		if err != nil {
			logg.Errorf("prom sink: %v", err)
		} else {
			sinks = append(sinks, sink)
		}
		if cfg.PrometheusAddr != "" {
			go func() {
				if err := metrics.StartPromServer(ctx, cfg.PrometheusAddr); err != nil {
					logg.Errorf("prom server: %v", err)
				}
			}()
		}
	}
	if cfg.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(cfg))
	}
	switch len(sinks) {
	case 0:
		return coremetrics.NopSink{}
	case 1:
		return sinks[0]
	default:
		return coremetrics.NewMultiSink(sinks...)
	}
}

// openOutput resolves the output target, defaulting to stdout.
func openOutput(path string) (io.Writer, func(), error) {
	if path == "" || path == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
