package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/csaba-schmidtmayer/trivia-api/internal/config"
	"github.com/csaba-schmidtmayer/trivia-api/internal/database"
	"github.com/csaba-schmidtmayer/trivia-api/internal/routers"
	"github.com/csaba-schmidtmayer/trivia-api/internal/utils"

	"go.uber.org/zap"
)

var (
	newLogger       = utils.NewLogger
	connectDB       = database.Connect
	runMigrations   = database.Migrate
	httpListenServe = func(server *http.Server) error {
		return server.ListenAndServe()
	}
	notifyShutdown = func(ch chan<- os.Signal) {
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	}
	shutdownTimeout = 30 * time.Second
	exitFunc        = os.Exit
	logFatalFn      = defaultLogFatal
)

func resetServerGlobals() {
	newLogger = utils.NewLogger
	connectDB = database.Connect
	runMigrations = database.Migrate
	httpListenServe = func(server *http.Server) error {
		return server.ListenAndServe()
	}
	notifyShutdown = func(ch chan<- os.Signal) {
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	}
	shutdownTimeout = 30 * time.Second
	exitFunc = os.Exit
	logFatalFn = defaultLogFatal
}

func defaultLogFatal(err error) {
	log.Printf("trivia-api: %v", err)
	exitFunc(1)
}

func main() {
	if err := run(); err != nil {
		logFatalFn(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	db, err := connectDB(cfg.Database, logger)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	if err := runMigrations(db); err != nil {
		return err
	}

	if cfg.Database.SeedFile != "" {
		categories, err := database.LoadCategories(cfg.Database.SeedFile)
		if err != nil {
			return err
		}
		inserted, err := database.SeedCategories(context.Background(), db, categories)
		if err != nil {
			return err
		}
		logger.Info("category seed applied", zap.String("file", cfg.Database.SeedFile), zap.Int("inserted", inserted))
	}

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      routers.New(db, cfg, logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: routers.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return serve(server, logger)
}

// serve runs server until it fails or a shutdown signal arrives, then drains
// in-flight requests for up to shutdownTimeout.
func serve(server *http.Server, logger *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("trivia api starting", zap.String("addr", server.Addr))
		err := httpListenServe(server)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		errCh <- err
	}()

	shutdownCh := make(chan os.Signal, 1)
	notifyShutdown(shutdownCh)
	defer signal.Stop(shutdownCh)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen on %s: %w", server.Addr, err)
		}
		return nil
	case sig := <-shutdownCh:
		logger.Info("trivia api shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Info("trivia api exited")
	return nil
}
