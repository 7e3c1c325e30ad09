package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Zerubabel-J/HeroCraft/internal/httpserver"
	"github.com/Zerubabel-J/HeroCraft/internal/observability"
	"github.com/Zerubabel-J/HeroCraft/internal/page"
	"github.com/Zerubabel-J/HeroCraft/internal/presets"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the preview server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	logger, err := observability.NewLogger(a.cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	store, err := a.loadPresets()
	if err != nil {
		return err
	}
	pages, err := page.NewRenderer(a.cfg.Templates.Dir, a.cfg.Templates.DevMode)
	if err != nil {
		return err
	}

	srv, err := httpserver.New(httpserver.Config{
		Address:      a.cfg.Server.Address,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
		Presets:      store,
		Pages:        pages,
		Logger:       logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go reloadOnHangup(ctx, store, logger)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	logger.Info("hero server listening",
		zap.String("addr", a.cfg.Server.Address),
		zap.Int("presets", len(store.List())),
		zap.Bool("dev_mode", a.cfg.Templates.DevMode),
	)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logger.Info("hero server stopped")
	return nil
}

// reloadOnHangup re-reads the preset directory on SIGHUP until ctx is done.
func reloadOnHangup(ctx context.Context, store *presets.Store, logger *zap.Logger) {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	for {
		select {
		case <-ctx.Done():
			return
		case <-hup:
			if err := store.Reload(); err != nil {
				logger.Error("preset reload failed", zap.Error(err))
				continue
			}
			logger.Info("presets reloaded", zap.Int("presets", len(store.List())))
		}
	}
}
