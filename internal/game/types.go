// internal/game/types.go
//
// Core type definitions for the word scramble engine.
// Defines:
//   - Kind: the result category of a single submission.
//   - Outcome: what Submit returns to a presentation surface.
//   - Dictionary: the oracle contract used for the "is it a real word" check.
//   - RejectionError: error view of a rejected Outcome for errors.Is callers.

package game

import (
	"context"
	"errors"
	"fmt"
)

// Kind classifies the result of a submission.
type Kind string

const (
	KindAccepted       Kind = "accepted"
	KindIgnored        Kind = "ignored"
	KindWordUsed       Kind = "word_used"
	KindWordImpossible Kind = "word_impossible"
	KindWordNotReal    Kind = "word_not_real"
	KindWordTooShort   Kind = "word_too_short"
)

var (
	// ErrNotStarted is returned by Submit before the first successful Reset.
	ErrNotStarted = errors.New("game: session has no root word")
	// ErrNoRootWord is returned by Reset when no usable root word was supplied.
	// A session cannot run without one, so callers treat it as fatal.
	ErrNoRootWord = errors.New("game: no root word available")

	// ErrInvalidRoot is returned by Reset for roots that are not a single
	// word made of letters.
	ErrInvalidRoot = errors.New("game: root word must contain letters only")

	ErrWordUsed       = errors.New("word used already")
	ErrWordImpossible = errors.New("word not possible")
	ErrWordNotReal    = errors.New("word not recognized")
	ErrWordTooShort   = errors.New("word too short")
)

// Dictionary reports whether word is a recognized dictionary entry for
// language. Implementations receive lowercase input and must return false
// for the empty string. Lookup failures are reported as false.
type Dictionary interface {
	IsRealWord(ctx context.Context, word, language string) bool
}

// DictionaryFunc adapts a plain function to the Dictionary interface.
type DictionaryFunc func(ctx context.Context, word, language string) bool

func (f DictionaryFunc) IsRealWord(ctx context.Context, word, language string) bool {
	return f(ctx, word, language)
}

// Outcome is the result of one Submit call.
//
// Word is the normalized candidate. Score is the session score after the
// call (unchanged for anything but KindAccepted). Title and Message are a
// short user-facing pair, empty for accepted and ignored submissions.
type Outcome struct {
	Kind    Kind   `json:"kind"`
	Word    string `json:"word"`
	Score   int    `json:"score"`
	Title   string `json:"title,omitempty"`
	Message string `json:"message,omitempty"`
}

// Accepted reports whether the word was added to the session.
func (o Outcome) Accepted() bool { return o.Kind == KindAccepted }

// Rejected reports whether the word failed one of the validation checks.
func (o Outcome) Rejected() bool {
	return o.Kind != KindAccepted && o.Kind != KindIgnored
}

// Err returns a *RejectionError for rejected outcomes and nil otherwise.
func (o Outcome) Err() error {
	if !o.Rejected() {
		return nil
	}
	return &RejectionError{Kind: o.Kind, Word: o.Word, Title: o.Title, Message: o.Message}
}

// RejectionError carries a rejected submission. It unwraps to one of the
// ErrWord* sentinels.
type RejectionError struct {
	Kind    Kind
	Word    string
	Title   string
	Message string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("%s: %q", e.Title, e.Word)
}

func (e *RejectionError) Unwrap() error {
	switch e.Kind {
	case KindWordUsed:
		return ErrWordUsed
	case KindWordImpossible:
		return ErrWordImpossible
	case KindWordNotReal:
		return ErrWordNotReal
	case KindWordTooShort:
		return ErrWordTooShort
	}
	return nil
}

// UsedWord is a display row for an accepted word.
type UsedWord struct {
	Word   string `json:"word"`
	Length int    `json:"length"`
}
