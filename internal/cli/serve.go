package cli

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/lumen-network/lumen/internal/adgate"
	"github.com/lumen-network/lumen/internal/api"
	"github.com/lumen-network/lumen/internal/clock"
	"github.com/lumen-network/lumen/internal/config"
	"github.com/lumen-network/lumen/internal/ledger"
	"github.com/lumen-network/lumen/internal/session"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the lumen daemon",
	Long:  `Start the economy session, its per-second timers, and the HTTP API.`,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	led, err := ledger.Open()
	if err != nil {
		return fmt.Errorf("open ledger: %w", err)
	}
	defer led.Close()

	feed := api.NewDecisionFeed()
	sess := session.New(cfg, clock.System{}, led, adgate.Simulated{}, feed, nil)

	srv := api.NewServer(sess, led, feed)
	if cfg.API.MetricsEnabled {
		srv.EnableMetrics()
	}

	sess.Start(cmd.Context())
	defer sess.Stop()

	addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
	httpSrv := &http.Server{Addr: addr, Handler: srv.Handler()}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[serve] listening on http://%s", addr)
		errCh <- httpSrv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("http server: %w", err)
		}
	case sig := <-sigCh:
		log.Printf("[serve] received %s, shutting down", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}
