package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/gorm"

	"github.com/mytheresa/catalogue-browser/app"
	"github.com/mytheresa/catalogue-browser/app/catalog"
	"github.com/mytheresa/catalogue-browser/app/categories"
	"github.com/mytheresa/catalogue-browser/app/users"
	"github.com/mytheresa/catalogue-browser/catalogue"
	"github.com/mytheresa/catalogue-browser/internal/config"
	"github.com/mytheresa/catalogue-browser/internal/logging"
	"github.com/mytheresa/catalogue-browser/models"
)

// source is what the handlers read from: the join input plus the category and user lists.
type source interface {
	catalogue.Source
	categories.CategoryProvider
	users.UserProvider
}

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.LogLevel).With("service", "catalogue-browser")
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, logger)
	stop()
	if err != nil {
		logger.Error("server_failed", "source", cfg.Db.Source, "error", err)
		os.Exit(1)
	}
	logger.Info("stopped")
}

// run serves until ctx is done or the listener fails. The database, when
// one is open, is closed before run returns on every path.
func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	src, db, err := openSourceFunc(cfg.Db)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	if db != nil {
		defer func() {
			if err := models.Close(db); err != nil {
				logger.Error("close_db_failed", "error", err)
			}
		}()
	}

	items, err := catalogue.Load(src)
	if err != nil {
		return fmt.Errorf("build catalogue: %w", err)
	}
	logger.Info("catalogue_loaded", "source", cfg.Db.Source, "products", len(items))

	router := app.NewRouter(logger, app.Handlers{
		Catalog:    catalog.NewCatalogHandler(items, cfg.Locale),
		State:      catalog.NewStateHandler(),
		Categories: categories.NewCategoryHandler(src),
		Users:      users.NewUserHandler(src),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Http.Port,
		Handler:      router,
		ReadTimeout:  cfg.Http.ReadTimeout,
		WriteTimeout: cfg.Http.WriteTimeout,
		IdleTimeout:  cfg.Http.IdleTimeout,
	}

	listenErr := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
		close(listenErr)
	}()

	select {
	case err := <-listenErr:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

var openSourceFunc = openSource

// openSource returns the configured data source. db is nil for the embedded dataset.
func openSource(cfg *config.DBConfig) (source, *gorm.DB, error) {
	static, err := models.NewStaticSource()
	if err != nil {
		return nil, nil, err
	}

	var db *gorm.DB
	switch cfg.Source {
	case config.SourcePostgres:
		db, err = models.OpenPostgres(cfg.DSN())
	case config.SourceSQLite:
		db, err = models.OpenSQLite(cfg.SQLitePath)
	default:
		return static, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}

	if cfg.Seed {
		if err := models.Seed(db, static); err != nil {
			_ = models.Close(db)
			return nil, nil, err
		}
	}

	return models.NewCatalogueRepository(db), db, nil
}
