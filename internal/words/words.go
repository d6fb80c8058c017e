// internal/words/words.go
//
// Root word source for the game.
//
// Responsibilities:
//   - Load the list of root words from a file or fall back to the embedded default.
//   - Supply a random root for each new round (RandomRoot), or the day's
//     shared root (DailyRoot).
//   - Read plain word files for other packages (ReadFile).
//
// Word lists:
//   - One word per line; blank lines and lines starting with '#' are skipped.
//   - Words are lowercased; entries containing anything but letters are dropped.
//
// A missing or unreadable file is an error, and callers treat it as fatal since
// no round can start without a root. An empty list is not: RandomRoot then
// returns the fallback root.

package words

import (
	"bufio"
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"os"
	"slices"
	"strings"
	"unicode"

	"github.com/robalobadob/wordscramble/assets"
)

// FallbackRoot is used when the loaded list turns out to be empty.
const FallbackRoot = "silkworm"

// List is an immutable list of candidate root words.
type List struct {
	words []string
}

// Load reads root words from path, or from the embedded start list when
// path is empty.
func Load(path string) (*List, error) {
	var (
		list []string
		err  error
	)
	if path == "" {
		list, err = assets.StartWords()
		if err != nil {
			return nil, fmt.Errorf("words: embedded start list: %w", err)
		}
		list = normalize(list)
	} else {
		list, err = ReadFile(path)
		if err != nil {
			return nil, err
		}
	}
	return &List{words: list}, nil
}

// NewList builds a List from already loaded words.
func NewList(ws []string) *List {
	return &List{words: normalize(ws)}
}

// RandomRoot returns a cryptographically random word from the list.
// If the list is empty, falls back to FallbackRoot.
func (l *List) RandomRoot() string {
	if l == nil || len(l.words) == 0 {
		return FallbackRoot
	}
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(l.words))))
	if err != nil {
		return l.words[0]
	}
	return l.words[nBig.Int64()]
}

// Contains reports whether word is one of the loaded roots.
func (l *List) Contains(word string) bool {
	return l != nil && slices.Contains(l.words, word)
}

// Len returns the number of loaded words.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.words)
}

// ReadFile loads one word per line from path.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer f.Close()

	out, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}
	return out, nil
}

// Read scans r for words, one per line.
func Read(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if w := strings.ToLower(line); IsWord(w) {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// normalize lowercases and keeps only letter-only words.
func normalize(ws []string) []string {
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		w = strings.ToLower(strings.TrimSpace(w))
		if IsWord(w) {
			out = append(out, w)
		}
	}
	return out
}

// IsWord reports whether s is non-empty and consists of letters only.
func IsWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
