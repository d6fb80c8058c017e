package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/internal/config"
	"github.com/robalobadob/wordscramble/internal/dictionary"
	"github.com/robalobadob/wordscramble/internal/game"
	"github.com/robalobadob/wordscramble/internal/httpserver"
	"github.com/robalobadob/wordscramble/internal/scores"
	"github.com/robalobadob/wordscramble/internal/shell"
	"github.com/robalobadob/wordscramble/internal/store"
	"github.com/robalobadob/wordscramble/internal/words"
)

// usage: wordscramble [serve|play]
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	setupLogging(cfg.Log)

	mode := "serve"
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}

	roots, err := words.Load(cfg.Words.RootsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load root words")
	}
	dict, err := dictionary.New(cfg.Dictionary)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up dictionary")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch mode {
	case "serve":
		if err := serve(ctx, cfg, roots, dict); err != nil {
			log.Fatal().Err(err).Msg("server exited")
		}
	case "play":
		session := game.NewSession(dict,
			game.WithLanguage(cfg.Dictionary.Language),
			game.WithMinLength(cfg.Session.MinLength),
		)
		if err := shell.New(session, roots).Run(ctx); err != nil {
			log.Fatal().Err(err).Msg("shell exited")
		}
	default:
		fmt.Fprintf(os.Stderr, "usage: %s [serve|play]\n", os.Args[0])
		os.Exit(2)
	}
}

// serve runs the HTTP API until ctx is cancelled. The score log, when
// configured, is closed before serve returns.
func serve(ctx context.Context, cfg *config.Config, roots *words.List, dict game.Dictionary) error {
	var sc *scores.Store
	if cfg.Scores.DBPath != "" {
		var err error
		sc, err = scores.Open(cfg.Scores.DBPath)
		if err != nil {
			return fmt.Errorf("open score log: %w", err)
		}
		defer func() {
			if err := sc.Close(); err != nil {
				log.Warn().Err(err).Msg("close score log")
			}
		}()
	}

	srv := httpserver.New(cfg, store.NewMemoryStore(), roots, dict, sc)
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Info().Str("addr", addr).Int("roots", roots.Len()).Msg("starting wordscramble server")
	return srv.Start(ctx, addr)
}

func setupLogging(cfg config.LogConfig) {
	if lvl, err := zerolog.ParseLevel(cfg.Level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
