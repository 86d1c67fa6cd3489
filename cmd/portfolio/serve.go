package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vinaykagithapu/portfolio"
	"github.com/vinaykagithapu/portfolio/internal/core"
)

var (
	serveAddr string
	serveDev  bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Long: `Serves the home page, its assets, and /metrics.

In dev mode (--dev or PORTFOLIO_DEV=1) pages are rendered on every request,
the config file is watched, and open browsers reload when it changes.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides server.addr)")
	serveCmd.Flags().BoolVar(&serveDev, "dev", false, "enable dev mode")
}

func runServe(cmd *cobra.Command, args []string) error {
	opts := []portfolio.Option{
		portfolio.WithConfigPath(configPath),
		portfolio.WithLogger(logger),
	}
	if serveDev {
		opts = append(opts, portfolio.WithDev())
	}

	app, err := portfolio.New(opts...)
	if err != nil {
		return err
	}

	addr := app.Config().Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	server := &http.Server{
		Addr:              addr,
		Handler:           app.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("serving", zap.String("addr", addr), zap.String("mode", app.Mode().String()))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if app.Mode() == core.ModeDev {
		g.Go(func() error {
			return app.Watch(gctx)
		})
	}

	return g.Wait()
}
