package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"bluechips/internal/app"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		addr       string
	)
	cmd := &cobra.Command{
		Use:          "splitd",
		Short:        "Serve the bluechips split calculator over HTTP",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Load(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			w, err := app.NewWire(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = w.Logger.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			ln, err := net.Listen("tcp", cfg.Server.Addr)
			if err != nil {
				return err
			}
			return serve(ctx, w, ln)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "YAML config file")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	return cmd
}

// serve runs the web handler on ln until ctx is cancelled, then shuts down
// within the configured timeout.
func serve(ctx context.Context, w *app.Wire, ln net.Listener) error {
	cfg := w.Config.Server
	srv := &http.Server{
		Handler:      w.Web.Handler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorLog:     zap.NewStdLog(w.Logger.Named("http")),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		w.Logger.Info("splitd listening", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		w.Logger.Info("shutting down", zap.Duration("timeout", cfg.ShutdownTimeout))
		sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(sctx)
	})
	return g.Wait()
}
