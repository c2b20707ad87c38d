// Package cmd implements the wallet CLI commands.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/theirongolddev/wallet/internal/config"
	"github.com/theirongolddev/wallet/internal/pipeline"
	"github.com/theirongolddev/wallet/internal/store"
	"github.com/theirongolddev/wallet/internal/tui/theme"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagConfig  string
	flagDataDir string
	flagQuiet   bool
)

// now is the clock handed to the planner.
var now = time.Now

var rootCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Month-end balance projection",
	Long: "Project your balance day by day to the end of the month from recurring\n" +
		"incomes and expenses, and keep a history of each projection.",
	SilenceUsage: true,
	RunE:         runProjectSaved,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default "+config.ConfigPath()+")")
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Directory for history and saved inputs")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Only log warnings and errors")
}

// app bundles everything a command needs after startup.
type app struct {
	cfg       config.Config
	dataDir   string
	log       *logrus.Logger
	history   store.History
	snapshots *store.TOMLSnapshot
	planner   *pipeline.Planner
}

func loadConfig() (config.Config, error) {
	if flagConfig != "" {
		return config.LoadFrom(flagConfig)
	}
	return config.Load()
}

// openApp loads config, builds the logger and opens the stores.
func openApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	log := config.NewLogger(cfg.Log, os.Stderr)
	if flagQuiet && log.GetLevel() > logrus.WarnLevel {
		log.SetLevel(logrus.WarnLevel)
	}
	theme.SetActive(cfg.Appearance.Theme)

	dataDir := cfg.DataDir()
	if flagDataDir != "" {
		dataDir = flagDataDir
	}

	history, err := store.OpenHistory(cfg.Storage.HistoryBackend, dataDir)
	if err != nil {
		return nil, fmt.Errorf("opening history: %w", err)
	}
	snapshots, err := store.OpenSnapshot(dataDir)
	if err != nil {
		_ = history.Close()
		return nil, fmt.Errorf("opening saved inputs: %w", err)
	}

	planner := pipeline.NewPlanner(history, snapshots, pipeline.Defaults{
		SavingGoal:    cfg.General.DefaultSavingGoal,
		DailySpending: cfg.General.DefaultDailySpending,
		HorizonEndDay: cfg.General.HorizonEndDay,
	}, now, log)

	log.WithFields(logrus.Fields{
		"data_dir": dataDir,
		"backend":  cfg.Storage.HistoryBackend,
	}).Debug("stores opened")

	return &app{
		cfg:       cfg,
		dataDir:   dataDir,
		log:       log,
		history:   history,
		snapshots: snapshots,
		planner:   planner,
	}, nil
}

func (a *app) Close() error {
	return a.history.Close()
}

func (a *app) symbol() string {
	return a.cfg.General.CurrencySymbol
}
