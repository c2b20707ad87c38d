package cmd

import (
	"fmt"

	"github.com/theirongolddev/wallet/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	RunE:  runConfigInit,
}

var flagConfigForce bool

func init() {
	configInitCmd.Flags().BoolVar(&flagConfigForce, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func configFilePath() string {
	if flagConfig != "" {
		return flagConfig
	}
	return config.ConfigPath()
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	path := configFilePath()
	fmt.Fprintf(out, "  Config file: %s\n", path)
	if config.ExistsAt(path) {
		fmt.Fprintln(out, "  Status: loaded")
	} else {
		fmt.Fprintln(out, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [General]")
	fmt.Fprintf(out, "    Horizon end day:        %d\n", cfg.General.HorizonEndDay)
	fmt.Fprintf(out, "    Default saving goal:    %.2f\n", cfg.General.DefaultSavingGoal)
	fmt.Fprintf(out, "    Default daily spending: %.2f\n", cfg.General.DefaultDailySpending)
	fmt.Fprintf(out, "    Currency symbol:        %s\n", cfg.General.CurrencySymbol)
	fmt.Fprintln(out)

	dataDir := cfg.DataDir()
	if flagDataDir != "" {
		dataDir = flagDataDir
	}
	fmt.Fprintln(out, "  [Storage]")
	fmt.Fprintf(out, "    Data directory:  %s\n", dataDir)
	fmt.Fprintf(out, "    History backend: %s\n", cfg.Storage.HistoryBackend)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Server]")
	fmt.Fprintf(out, "    Address: %s\n", cfg.Server.Addr)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Log]")
	fmt.Fprintf(out, "    Level:  %s\n", cfg.Log.Level)
	fmt.Fprintf(out, "    Format: %s\n", cfg.Log.Format)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Appearance]")
	fmt.Fprintf(out, "    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  Run `wallet config init` to write a config file.")
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path := configFilePath()
	if config.ExistsAt(path) && !flagConfigForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := config.SaveTo(path, config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  Wrote %s\n", path)
	return nil
}
