package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/nayeemz/bdtradesim/config"
	"github.com/nayeemz/bdtradesim/internal/adapters/export"
	"github.com/nayeemz/bdtradesim/internal/adapters/httpapi"
	"github.com/nayeemz/bdtradesim/internal/adapters/report"
	"github.com/nayeemz/bdtradesim/internal/adapters/storage"
	"github.com/nayeemz/bdtradesim/internal/application/engine"
	"github.com/nayeemz/bdtradesim/internal/data"
	"github.com/nayeemz/bdtradesim/internal/domain"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	scenario := flag.String("scenario", "", "scenario to run (overrides config)")
	startYear := flag.Int("start-year", 0, "first simulated year (overrides config)")
	endYear := flag.Int("end-year", 0, "last simulated year (overrides config)")
	outDir := flag.String("out", "", "output directory for result files (overrides config)")
	seed := flag.Uint64("seed", 0, "PRNG seed (overrides config)")
	compare := flag.Bool("compare", false, "run several scenarios with one seed and compare them")
	scenarioList := flag.String("scenarios", "", "comma-separated scenarios for -compare (default: all)")
	table := flag.Bool("table", false, "print the full per-year table (default: summary)")
	csvOut := flag.Bool("csv", false, "also write yearly metrics as CSV")
	dbPath := flag.String("db", "", "SQLite results database (overrides config)")
	serve := flag.Bool("serve", false, "serve the HTTP API instead of running once")
	addr := flag.String("addr", "", "HTTP listen address (overrides config)")
	verbose := flag.Bool("verbose", false, "set log level to debug")
	logFormat := flag.String("format", "", "log format: text|json (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err, "path", *configPath)
		os.Exit(1)
	}

	if *scenario != "" {
		cfg.Simulation.Scenario = *scenario
	}
	if *startYear > 0 {
		cfg.Simulation.StartYear = *startYear
	}
	if *endYear > 0 {
		cfg.Simulation.EndYear = *endYear
	}
	if *outDir != "" {
		cfg.Simulation.OutputDir = *outDir
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg.Simulation.Seed = *seed
		}
	})
	if *dbPath != "" {
		cfg.Storage.Path = *dbPath
	}
	if *addr != "" {
		cfg.API.Addr = *addr
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}
	setupLogger(cfg.Log)

	slog.Info("tradesim starting",
		"config", *configPath,
		"scenario", cfg.Simulation.Scenario,
		"years", cfg.Simulation.EndYear-cfg.Simulation.StartYear+1,
		"seed", cfg.Simulation.Seed,
		"compare", *compare,
		"serve", *serve,
	)

	store, err := storage.NewSQLiteStore(cfg.Storage.Path)
	if err != nil {
		slog.Error("failed to open results database", "err", err, "path", cfg.Storage.Path)
		os.Exit(1)
	}
	defer store.Close()

	opts := engineOptions(cfg)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	switch {
	case *serve:
		runServe(ctx, cfg, store, opts)
	case *compare:
		runCompare(ctx, cfg, store, opts, *scenarioList, *csvOut)
	default:
		runOnce(ctx, cfg, store, opts, *table, *csvOut)
	}

	slog.Info("tradesim done")
}

// engineOptions wires the optional observed-trade dataset into every engine
// this process builds. A configured but unreadable dataset is a warning, not
// a fatal error: the models fall back to synthetic growth.
func engineOptions(cfg *config.Config) []engine.Option {
	if cfg.Data.TradeFlowsFile == "" {
		return nil
	}
	source, err := data.Load(cfg.Data, slog.Default())
	if err != nil {
		slog.Warn("observed trade data unavailable, using synthetic growth", "err", err)
		return nil
	}
	return []engine.Option{engine.WithSectorData(source)}
}

func runOnce(ctx context.Context, cfg *config.Config, store *storage.SQLiteStore, opts []engine.Option, table, csvOut bool) {
	jsonExp := export.NewJSON(cfg.Simulation.OutputDir)

	// Intermediate dumps land in the same file the final export overwrites.
	opts = append(opts, engine.WithSnapshot(func(partial *domain.RunResult) {
		if _, err := jsonExp.Export(partial); err != nil {
			slog.Warn("intermediate export failed", "err", err)
		}
	}))

	run := simulate(ctx, cfg, cfg.Simulation.Scenario, cfg.Simulation.Seed, opts)

	path, err := jsonExp.Export(run)
	if err != nil {
		slog.Error("failed to export results", "err", err)
		os.Exit(1)
	}
	slog.Info("results written", "path", path)

	if csvOut {
		path, err := export.NewCSV(cfg.Simulation.OutputDir).Export(run)
		if err != nil {
			slog.Error("failed to export CSV", "err", err)
			os.Exit(1)
		}
		slog.Info("yearly metrics written", "path", path)
	}

	if err := store.SaveRun(ctx, run); err != nil {
		slog.Error("failed to persist run", "err", err, "run_id", run.Metadata.RunID)
		os.Exit(1)
	}

	if err := report.NewConsole(table).Report(run); err != nil {
		slog.Error("failed to print report", "err", err)
		os.Exit(1)
	}
}

func runCompare(ctx context.Context, cfg *config.Config, store *storage.SQLiteStore, opts []engine.Option, scenarioList string, csvOut bool) {
	names := splitScenarios(cfg, scenarioList)
	if len(names) < 2 {
		slog.Error("comparison needs at least two scenarios", "scenarios", names)
		os.Exit(1)
	}

	runs := make([]*domain.RunResult, 0, len(names))
	for _, name := range names {
		run := simulate(ctx, cfg, name, cfg.Simulation.Seed, opts)
		if err := store.SaveRun(ctx, run); err != nil {
			slog.Error("failed to persist run", "err", err, "scenario", name)
			os.Exit(1)
		}
		runs = append(runs, run)
	}

	jsonExp := export.NewJSON(cfg.Simulation.OutputDir)
	path, err := jsonExp.ExportComparison(runs)
	if err != nil {
		slog.Error("failed to export comparison", "err", err)
		os.Exit(1)
	}
	slog.Info("comparison written", "path", path, "scenarios", names)

	if csvOut {
		csvExp := export.NewCSV(cfg.Simulation.OutputDir)
		for _, run := range runs {
			if _, err := csvExp.Export(run); err != nil {
				slog.Error("failed to export CSV", "err", err, "scenario", run.Metadata.Scenario)
				os.Exit(1)
			}
		}
	}

	if err := report.NewConsole(false).Compare(runs); err != nil {
		slog.Error("failed to print comparison", "err", err)
		os.Exit(1)
	}
}

func runServe(ctx context.Context, cfg *config.Config, store *storage.SQLiteStore, opts []engine.Option) {
	run := func(ctx context.Context, req httpapi.SimRequest) (*domain.RunResult, error) {
		c := *cfg
		if req.StartYear > 0 {
			c.Simulation.StartYear = req.StartYear
		}
		if req.EndYear > 0 {
			c.Simulation.EndYear = req.EndYear
		}
		seed := req.Seed
		if seed == 0 {
			seed = cfg.Simulation.Seed
		}
		eng, err := engine.New(&c, req.Scenario, seed, slog.Default(), opts...)
		if err != nil {
			return nil, err
		}
		return eng.Run(ctx)
	}

	srv := httpapi.NewServer(cfg.API, store, run, slog.Default())
	if err := srv.ListenAndServe(ctx); err != nil {
		slog.Error("http api exited with error", "err", err)
		os.Exit(1)
	}
}

// simulate builds and runs one engine, exiting the process on failure.
func simulate(ctx context.Context, cfg *config.Config, scenario string, seed uint64, opts []engine.Option) *domain.RunResult {
	eng, err := engine.New(cfg, scenario, seed, slog.Default(), opts...)
	if err != nil {
		slog.Error("failed to build engine", "err", err)
		os.Exit(1)
	}
	run, err := eng.Run(ctx)
	if err != nil {
		slog.Error("simulation failed", "err", err, "scenario", scenario)
		os.Exit(1)
	}
	return run
}

// splitScenarios parses the -scenarios list, defaulting to every configured
// scenario in name order.
func splitScenarios(cfg *config.Config, list string) []string {
	if list == "" {
		names := make([]string, 0, len(cfg.Scenarios))
		for name := range cfg.Scenarios {
			names = append(names, name)
		}
		sort.Strings(names)
		return names
	}
	var names []string
	for _, name := range strings.Split(list, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func setupLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
