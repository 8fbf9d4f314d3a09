// chess-engine applies chess rules to positions: an interactive command
// session on stdin, a one-shot perft counter, or an HTTP API with stored games.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/profile"
	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-core-go/internal/config"
	"github.com/lgbarn/chess-core-go/internal/engine"
	"github.com/lgbarn/chess-core-go/internal/httpapi"
	"github.com/lgbarn/chess-core-go/internal/logx"
	"github.com/lgbarn/chess-core-go/internal/store"
)

const programVersion = "0.1.0"

func main() {
	os.Exit(realMain())
}

// realMain returns the process exit code. Deferred cleanup, including the
// CPU profiler, runs before main exits.
func realMain() int {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		return 0
	}

	if *version {
		fmt.Printf("chess-engine version %s\n", programVersion)
		return 0
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	log := logx.NewLogger(*cfg.Log, cfg.LogFile)

	if cfg.Perft.CPUProfileDir != "" {
		defer startProfile(cfg.Perft.CPUProfileDir).Stop()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error().Err(err).Msg("exiting")
		return 1
	}
	return 0
}

// startProfile begins CPU profiling into dir.
func startProfile(dir string) interface{ Stop() } {
	return profile.Start(
		profile.CPUProfile,
		profile.ProfilePath(dir),
		profile.NoShutdownHook,
		profile.Quiet,
	)
}

// run dispatches to the selected mode.
func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	switch {
	case *serve:
		return serveHTTP(ctx, cfg, log)
	case *perftOnly > 0:
		game, err := startGame(*startText)
		if err != nil {
			return err
		}
		if *perftOnly > cfg.Perft.MaxDepth {
			return fmt.Errorf("perft depth %d exceeds -maxdepth %d", *perftOnly, cfg.Perft.MaxDepth)
		}
		return runPerft(ctx, cfg.OutputFile, cfg, game.Position(), *perftOnly)
	default:
		game, err := startGame(*startText)
		if err != nil {
			return err
		}
		return NewSession(cfg, log, game).Run(ctx, os.Stdin)
	}
}

// startGame creates the opening game, from text when given.
func startGame(text string) (*engine.Game, error) {
	if text == "" {
		return engine.NewGame(), nil
	}
	return engine.LoadGame(text)
}

// serveHTTP runs the API until ctx is cancelled, then shuts down gracefully.
func serveHTTP(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	games, err := store.Open(*cfg.Store, log.With().Str("component", "store").Logger())
	if err != nil {
		return err
	}
	defer games.Close()

	srv := httpapi.NewServer(cfg.Server, httpapi.NewRouter(log, games, cfg))

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Server.Addr).Msg("listening")
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

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Reads commands from stdin unless -serve or -perft is given.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nSession commands:\n%s", helpText)
}
