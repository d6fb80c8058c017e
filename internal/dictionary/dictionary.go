// internal/dictionary/dictionary.go
//
// Dictionary oracle backends for the game's "is it a real word" check.
// Responsibilities:
//   - Define Lookuper, the error-returning lookup every backend implements.
//   - Adapt a Lookuper to game.Dictionary (Oracle): bounded by a timeout,
//     lookup errors logged and reported as "not a real word".
//   - Build the configured backend chain (New).
//
// Backends:
//   - wordlist: in-memory set from a file or the embedded list.
//   - freedict: dictionaryapi.dev over HTTP.
//   - kwg:      a word-golib lexicon file.

package dictionary

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/internal/config"
	"github.com/robalobadob/wordscramble/internal/game"
)

// Lookuper answers dictionary queries. An error means the answer is unknown.
type Lookuper interface {
	Lookup(ctx context.Context, word, language string) (bool, error)
}

// Oracle adapts a Lookuper to game.Dictionary.
type Oracle struct {
	src     Lookuper
	timeout time.Duration
}

// NewOracle wraps src. A zero timeout leaves lookups bounded only by the caller's context.
func NewOracle(src Lookuper, timeout time.Duration) *Oracle {
	return &Oracle{src: src, timeout: timeout}
}

// IsRealWord implements game.Dictionary.
func (o *Oracle) IsRealWord(ctx context.Context, word, language string) bool {
	if word == "" {
		return false
	}
	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}
	ok, err := o.src.Lookup(ctx, word, language)
	if err != nil {
		log.Warn().Err(err).Str("word", word).Str("lang", language).Msg("dictionary lookup failed")
		return false
	}
	return ok
}

var _ game.Dictionary = (*Oracle)(nil)

// New builds the dictionary selected by cfg.Backend.
func New(cfg config.DictionaryConfig) (*Oracle, error) {
	var (
		src Lookuper
		err error
	)
	switch cfg.Backend {
	case config.BackendWordList, "":
		src, err = LoadWordList(cfg.WordListFile, cfg.Language)
	case config.BackendFreeDict:
		src = NewFreeDict(cfg.FreeDictURL, cfg.Retries)
	case config.BackendKWG:
		src, err = LoadLexicon(cfg.KWGDataPath, cfg.KWGLexicon, cfg.KWGDistribution, cfg.Language)
	default:
		return nil, fmt.Errorf("dictionary: unknown backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, err
	}
	if cfg.Cache {
		src = NewCached(src, cfg.Timeout)
	}
	log.Info().Str("backend", cfg.Backend).Bool("cache", cfg.Cache).Msg("dictionary ready")
	return NewOracle(src, cfg.Timeout), nil
}
