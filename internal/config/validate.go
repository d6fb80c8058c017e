package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog"
)

var backends = []string{BackendWordList, BackendFreeDict, BackendKWG}

// Validate checks field values that cannot be expressed with tags.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port: %d out of range", c.Server.Port))
	}
	if c.Session.JWTSecret == "" {
		errs = append(errs, errors.New("session.jwt_secret: required"))
	}
	if c.Session.TokenTTL <= 0 {
		errs = append(errs, errors.New("session.token_ttl: must be positive"))
	}
	if c.Session.MinLength < 1 {
		errs = append(errs, errors.New("session.min_length: must be at least 1"))
	}
	if !slices.Contains(backends, c.Dictionary.Backend) {
		errs = append(errs, fmt.Errorf("dictionary.backend: %q is not one of %v", c.Dictionary.Backend, backends))
	}
	if c.Dictionary.Language == "" {
		errs = append(errs, errors.New("dictionary.language: required"))
	}
	if c.Dictionary.Backend == BackendKWG && c.Dictionary.KWGLexicon == "" {
		errs = append(errs, errors.New("dictionary.kwg_lexicon: required for the kwg backend"))
	}
	if c.Scores.Limit <= 0 {
		errs = append(errs, errors.New("scores.limit: must be positive"))
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	return errors.Join(errs...)
}
