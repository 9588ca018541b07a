package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/2beens/ironlog/internal/bodyweight"
	"github.com/2beens/ironlog/internal/config"
	"github.com/2beens/ironlog/internal/history"
	"github.com/2beens/ironlog/internal/logging"
	"github.com/2beens/ironlog/internal/lookback"
	"github.com/2beens/ironlog/internal/records"
	"github.com/2beens/ironlog/internal/stats"
	"github.com/2beens/ironlog/internal/storage"
	"github.com/2beens/ironlog/internal/tracker"
	"github.com/2beens/ironlog/internal/workout"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagEnv        string
	flagConfigPath string

	rootCmd = &cobra.Command{
		Use:          "ironlog",
		Short:        "A local, single-user workout tracker",
		SilenceUsage: true,
	}
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagEnv, "env", "development", "environment [development|production]")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "path to config file (optional)")
}

// app wires the full service graph for one CLI invocation. Everything
// shares a single badger store; close it before the process exits.
type app struct {
	cfg      *config.Config
	store    *storage.BadgerStore
	history  *history.Repo
	ledger   *records.Ledger
	planRepo *workout.PlanRepo
	resolver *lookback.Resolver
	analyzer *stats.Analyzer
	weights  *bodyweight.Log
	svc      *tracker.Service
}

func newApp() (*app, error) {
	cfg, err := config.Load(flagEnv, flagConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logsPath := cfg.LogsPath
	if logsPath == "" && cfg.DataDir != "" {
		logsPath = filepath.Join(cfg.DataDir, "logs", "ironlog.log")
	}
	logging.Setup(logging.LoggerSetupParams{
		LogFileName:   logsPath,
		LogToStdout:   cfg.LogToStdout,
		LogLevel:      cfg.LogLevel,
		LogFormatJSON: false,
		Environment:   cfg.Environment,
		SentryEnabled: cfg.SentryEnabled,
		SentryDSN:     os.Getenv("IRONLOG_SENTRY_DSN"),
	})

	store, err := storage.NewBadgerStore(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("open data store in %s: %w", cfg.DataDir, err)
	}

	historyRepo := history.NewRepo(store)
	ledger := records.NewLedger(store, historyRepo)

	return &app{
		cfg:      cfg,
		store:    store,
		history:  historyRepo,
		ledger:   ledger,
		planRepo: workout.NewPlanRepo(store),
		resolver: lookback.NewResolverWithStep(historyRepo, cfg.OverloadStep),
		analyzer: stats.NewAnalyzer(historyRepo, ledger),
		weights:  bodyweight.NewLog(store),
		svc:      tracker.NewService(historyRepo, ledger),
	}, nil
}

func (a *app) close() {
	if err := a.store.Close(); err != nil {
		log.Errorf("close data store: %s", err)
	}
}
