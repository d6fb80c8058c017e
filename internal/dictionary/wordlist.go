package dictionary

import (
	"context"
	"fmt"

	"github.com/robalobadob/wordscramble/assets"
	"github.com/robalobadob/wordscramble/internal/words"
)

// WordList is a fixed in-memory dictionary for a single language.
type WordList struct {
	language string
	set      map[string]struct{}
}

// NewWordList builds a WordList from ws. An empty language accepts queries
// for any language.
func NewWordList(ws []string, language string) *WordList {
	set := make(map[string]struct{}, len(ws))
	for _, w := range ws {
		set[w] = struct{}{}
	}
	return &WordList{language: language, set: set}
}

// LoadWordList reads the dictionary from path, or the embedded list when
// path is empty.
func LoadWordList(path, language string) (*WordList, error) {
	var (
		ws  []string
		err error
	)
	if path == "" {
		ws, err = assets.DictionaryWords()
	} else {
		ws, err = words.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("dictionary: load word list: %w", err)
	}
	return NewWordList(ws, language), nil
}

// Lookup reports whether word is in the list.
func (l *WordList) Lookup(_ context.Context, word, language string) (bool, error) {
	if word == "" {
		return false, nil
	}
	if l.language != "" && language != "" && language != l.language {
		return false, nil
	}
	_, ok := l.set[word]
	return ok, nil
}

// Len returns the number of words in the list.
func (l *WordList) Len() int { return len(l.set) }
