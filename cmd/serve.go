package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/theirongolddev/wallet/internal/web"

	"github.com/spf13/cobra"
)

var flagServeAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the projection form over HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagServeAddr, "addr", "", "Listen address (default from config, 127.0.0.1:8501)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	addr := a.cfg.Server.Addr
	if flagServeAddr != "" {
		addr = flagServeAddr
	}

	srv, err := web.New(web.Config{
		Addr:           addr,
		CurrencySymbol: a.symbol(),
	}, a.planner, a.log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
