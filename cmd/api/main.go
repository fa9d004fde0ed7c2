// The api server exposes the Vietnamese liturgical calendar over HTTP.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vntruongson/phungvu-api/internal/api"
	"github.com/vntruongson/phungvu-api/internal/config"
	"github.com/vntruongson/phungvu-api/internal/database"
	"github.com/vntruongson/phungvu-api/internal/liturgy"
	"github.com/vntruongson/phungvu-api/internal/logger"
	"github.com/vntruongson/phungvu-api/internal/sanctoral"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.Setup(cfg)
	log.Info("starting phungvu-api",
		slog.Int("port", cfg.Port),
		slog.String("env", cfg.Env),
	)

	db, err := database.Open(database.DefaultConfig(cfg.DatabasePath), log)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()
	if _, err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	saints, err := loadSaints(ctx, db, log)
	if err != nil {
		return fmt.Errorf("load saints: %w", err)
	}

	svc, err := liturgy.New(liturgy.Options{
		TZOffset:       cfg.LunarTZOffset,
		Lang:           cfg.DefaultLang,
		YearCacheSize:  cfg.YearCacheSize,
		DayCacheSize:   cfg.DayCacheSize,
		LunarCacheSize: cfg.LunarCacheSize,
		Saints:         saints,
		Logger:         log,
	})
	if err != nil {
		return fmt.Errorf("build liturgy service: %w", err)
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      api.NewServer(cfg, log, db, svc).Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Info("shutting down", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("server stopped")
	return nil
}

// loadSaints builds the sanctoral table: the built-in calendar with
// any imported overrides layered on top.
func loadSaints(ctx context.Context, db *database.DB, log *slog.Logger) (*sanctoral.Table, error) {
	table := sanctoral.DefaultTable()

	rows, err := db.ListSaints(ctx)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return table, nil
	}

	overrides := make([]sanctoral.FixedSaint, 0, len(rows))
	for _, r := range rows {
		overrides = append(overrides, sanctoral.FixedSaint{
			Month: r.Month,
			Day:   r.Day,
			Name:  r.Name,
			Rank:  sanctoral.ParseRank(r.Rank),
			Color: r.Color,
		})
	}
	log.Info("sanctoral overrides loaded", slog.Int("count", len(overrides)))
	return table.Merge(overrides), nil
}
