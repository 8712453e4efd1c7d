package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"blogpost/admin"
	"blogpost/app/config"
	"blogpost/app/logger"
	"blogpost/app/repositories"
	"blogpost/app/routes"

	"github.com/rs/zerolog"
)

const CliVersion = "1.0.0"

// exit is swapped out by tests.
var exit = os.Exit

func main() {
	RealMain()
}

// RealMain dispatches the subcommand named in os.Args.
func RealMain() {
	if len(os.Args) < 2 {
		printHelp()
		exit(1)
		return
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("blogpost version %s\n", CliVersion)
	case "serve":
		cfg, log := mustSetup()
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := serve(ctx, cfg, log); err != nil {
			log.Error().Err(err).Msg("server stopped")
			exit(1)
		}
	case "db":
		cfg, log := mustSetup()
		cmds := &admin.Commands{
			DBPath:    cfg.DatabaseURL,
			BackupDir: cfg.BackupDir,
			Log:       log,
			In:        os.Stdin,
			Out:       os.Stdout,
		}
		if err := cmds.Run(context.Background(), os.Args[2:]); err != nil {
			if !errors.Is(err, admin.ErrUsage) {
				log.Error().Err(err).Msg("db command failed")
			}
			exit(1)
		}
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		exit(1)
	}
}

func printHelp() {
	helpText := `Usage: blogpost <command> [options]
Commands:
  help                 Display this help message.
  version              Show version information.
  serve                Run the blog post HTTP API.
  db <command>         Database maintenance (init, clean, backup, restore, seed).

Configuration is read from the environment (and an optional .env file):
  PORT, DATABASE_URL, TEST_DATABASE_URL, ENVIRONMENT, LOG_LEVEL,
  REQUEST_TIMEOUT, SHUTDOWN_TIMEOUT, BACKUP_DIR
`
	fmt.Println(helpText)
}

func mustSetup() (*config.Config, zerolog.Logger) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
		return nil, zerolog.Nop()
	}
	return cfg, logger.New(cfg.LogLevel, cfg.IsDevelopment(), os.Stdout)
}

// serve opens the store, then runs the API until ctx is done.
func serve(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	db, err := repositories.OpenBadger(cfg.DatabaseURL, logger.NewBadger(log))
	if err != nil {
		return fmt.Errorf("failed to open Badger DB: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close Badger DB")
		}
	}()

	router := routes.SetupRoutes(db, routes.Options{
		Logger:         log,
		RequestTimeout: cfg.RequestTimeout,
	})
	srv := routes.NewServer(cfg.Addr(), router)

	log.Info().Str("addr", srv.Addr).Str("db", cfg.DatabaseURL).Msg("starting blogpost service")
	return runServer(ctx, srv, cfg.ShutdownTimeout)
}

// runServer serves until ctx is done, then drains in-flight requests for up
// to shutdownTimeout.
func runServer(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
