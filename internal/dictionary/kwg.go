package dictionary

import (
	"context"
	"fmt"
	"strings"

	wglconfig "github.com/domino14/word-golib/config"
	"github.com/domino14/word-golib/kwg"
	"github.com/domino14/word-golib/tilemapping"
)

// Lexicon checks words against a word-golib KWG lexicon (NWL20, CSW21, ...).
type Lexicon struct {
	name     string
	language string
	lex      kwg.Lexicon
	alph     *tilemapping.TileMapping
}

// LoadLexicon loads lexiconName from dataPath. distName selects the letter
// distribution used to map words onto machine letters ("english", ...).
func LoadLexicon(dataPath, lexiconName, distName, language string) (*Lexicon, error) {
	cfg := &wglconfig.Config{DataPath: dataPath}
	k, err := kwg.Get(cfg, lexiconName)
	if err != nil {
		return nil, fmt.Errorf("dictionary: load kwg %s: %w", lexiconName, err)
	}
	dist, err := tilemapping.GetDistribution(cfg, distName)
	if err != nil {
		return nil, fmt.Errorf("dictionary: load distribution %s: %w", distName, err)
	}
	return &Lexicon{
		name:     lexiconName,
		language: language,
		lex:      kwg.Lexicon{KWG: *k},
		alph:     dist.TileMapping(),
	}, nil
}

// Lookup implements Lookuper. Words with letters outside the lexicon's
// alphabet are not words.
func (l *Lexicon) Lookup(_ context.Context, word, language string) (bool, error) {
	if word == "" {
		return false, nil
	}
	if l.language != "" && language != "" && language != l.language {
		return false, nil
	}
	mw, err := tilemapping.ToMachineWord(strings.ToUpper(word), l.alph)
	if err != nil {
		return false, nil
	}
	return l.lex.HasWord(mw), nil
}

// Name returns the lexicon name.
func (l *Lexicon) Name() string { return l.name }
