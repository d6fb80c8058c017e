// internal/game/engine.go
//
// Core game engine for a single word scramble session.
// Responsibilities:
//   - Hold the root word, the accepted words (most recent first) and the score.
//   - Normalize and validate submissions in a fixed order:
//     originality → composability → dictionary → length.
//   - Apply accepted words: prepend to the list, add the word length to the score.
//
// Notes:
//   - A Session is owned by one caller at a time and does no locking.
//     Surfaces that share sessions serialize access themselves (see internal/store).
//   - The dictionary is injected; lookups that fail count as "not a real word".
package game

import (
	"context"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/robalobadob/wordscramble/internal/words"
)

const (
	defaultLanguage  = "en"
	defaultMinLength = 4
)

// Session is one game: a root word plus the words accepted against it.
type Session struct {
	id        string
	lang      string
	minLength int
	dict      Dictionary
	lower     cases.Caser

	root  string
	used  []string
	score int
}

// Option configures a Session at construction.
type Option func(*Session)

// WithLanguage sets the language code passed to the dictionary and used for
// case folding. Defaults to "en".
func WithLanguage(code string) Option {
	return func(s *Session) {
		if code != "" {
			s.lang = code
		}
	}
}

// WithID overrides the generated session identifier.
func WithID(id string) Option {
	return func(s *Session) {
		if id != "" {
			s.id = id
		}
	}
}

// WithMinLength sets the shortest accepted word. Defaults to 4.
func WithMinLength(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.minLength = n
		}
	}
}

// NewSession returns an uninitialized session. Reset must succeed before
// Submit can be used.
func NewSession(dict Dictionary, opts ...Option) *Session {
	s := &Session{
		id:        uuid.NewString(),
		lang:      defaultLanguage,
		minLength: defaultMinLength,
		dict:      dict,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.lower = cases.Lower(language.Make(s.lang))
	return s
}

// Reset starts a new round on root, clearing the used words and the score.
// An empty root (after trimming) returns ErrNoRootWord and a root with
// anything but letters returns ErrInvalidRoot; both leave the session
// untouched.
func (s *Session) Reset(root string) error {
	root = s.normalize(root)
	if root == "" {
		return ErrNoRootWord
	}
	if !words.IsWord(root) {
		return ErrInvalidRoot
	}
	s.root = root
	s.used = nil
	s.score = 0
	return nil
}

// Submit validates raw against the session and applies it when accepted.
// Every validation result is reported through the Outcome; the error is
// only non-nil when the session has not been started.
func (s *Session) Submit(ctx context.Context, raw string) (Outcome, error) {
	if !s.Active() {
		return Outcome{}, ErrNotStarted
	}

	word := s.normalize(raw)
	if word == "" {
		return Outcome{Kind: KindIgnored, Score: s.score}, nil
	}

	if !s.isOriginal(word) {
		return s.reject(KindWordUsed, word), nil
	}
	if !canSpell(s.root, word) {
		return s.reject(KindWordImpossible, word), nil
	}
	if s.dict == nil || !s.dict.IsRealWord(ctx, word, s.lang) {
		return s.reject(KindWordNotReal, word), nil
	}
	if utf8.RuneCountInString(word) < s.minLength {
		return s.reject(KindWordTooShort, word), nil
	}

	s.used = append([]string{word}, s.used...)
	s.score += utf8.RuneCountInString(word)
	return Outcome{Kind: KindAccepted, Word: word, Score: s.score}, nil
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Language returns the dictionary language code.
func (s *Session) Language() string { return s.lang }

// Root returns the current root word ("" before the first Reset).
func (s *Session) Root() string { return s.root }

// Score returns the sum of the lengths of all accepted words.
func (s *Session) Score() int { return s.score }

// Active reports whether a root word has been assigned.
func (s *Session) Active() bool { return s.root != "" }

// UsedWords returns a copy of the accepted words, most recent first.
func (s *Session) UsedWords() []string { return slices.Clone(s.used) }

// Rows returns the accepted words paired with their lengths.
func (s *Session) Rows() []UsedWord {
	return lo.Map(s.used, func(w string, _ int) UsedWord {
		return UsedWord{Word: w, Length: utf8.RuneCountInString(w)}
	})
}

// normalize lowercases for the session language and trims surrounding whitespace.
func (s *Session) normalize(raw string) string {
	return strings.TrimSpace(s.lower.String(raw))
}

func (s *Session) isOriginal(word string) bool {
	return !lo.Contains(s.used, word)
}

// reject builds a rejection outcome; state is never touched here.
func (s *Session) reject(kind Kind, word string) Outcome {
	title, msg := describe(kind, s.minLength)
	return Outcome{Kind: kind, Word: word, Score: s.score, Title: title, Message: msg}
}

// canSpell reports whether word can be drawn from the letters of root,
// each root letter usable at most once.
//
// Letters are consumed left to right: for each letter of word the first
// remaining occurrence in the working copy of root is removed.
func canSpell(root, word string) bool {
	pool := []rune(root)
	for _, r := range word {
		i := slices.Index(pool, r)
		if i < 0 {
			return false
		}
		pool = slices.Delete(pool, i, i+1)
	}
	return true
}
