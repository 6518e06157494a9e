package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/naveenkarasu/journey-builder/services/blueprint"
)

func main() {
	// minimal logger until the configured one is set
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(outW io.Writer, args []string) error {
	cfg, shouldExit, err := parseConfig(args, outW, os.Getenv)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}
	slog.SetDefault(newLogger(os.Stderr, cfg))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := blueprint.NewClient(cfg.BlueprintAPIURL,
		blueprint.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		blueprint.WithMaxConcurrency(cfg.MaxConcurrency),
	)

	var forms blueprint.FormProvider = blueprint.GraphForms{}
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()
		forms = blueprint.NewFormRepository(pool)
		slog.Info("Using database form definitions")
	}

	svc := blueprint.NewService(client, forms)

	r := mux.NewRouter()
	svc.RegisterRoutes(r)

	corsHandler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "If-None-Match"}),
		handlers.ExposedHeaders([]string{"ETag"}),
	)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handlers.LoggingHandler(os.Stdout, corsHandler(r)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server listening", "addr", cfg.ListenAddr, "blueprint api", cfg.BlueprintAPIURL)
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

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
