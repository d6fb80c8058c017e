// Package shell is an interactive terminal front end for a single game.
//
// Lines starting with '/' are commands; anything else is submitted as a word.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/robalobadob/wordscramble/internal/game"
	"github.com/robalobadob/wordscramble/internal/words"
)

const usage = `Spell words from the letters of the root word. Each word scores its length.

  /new [root]   start a new round (random root if omitted)
  /words        list the words you found, most recent first
  /score        show the current score
  /root         show the root word
  /help         show this help
  /exit         quit
`

var errQuit = errors.New("quit")

// Shell drives one game.Session from text commands.
type Shell struct {
	session *game.Session
	roots   *words.List

	// terminal streams; nil means the process's own.
	stdin  io.ReadCloser
	stdout io.Writer
}

// New returns a Shell for session; roots supplies random roots for /new.
func New(session *game.Session, roots *words.List) *Shell {
	return &Shell{session: session, roots: roots}
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

// Run starts a round and reads lines until EOF, interrupt, /exit or ctx
// is cancelled. Cancelling ctx closes the terminal so a pending read returns.
func (s *Shell) Run(ctx context.Context) error {
	if err := s.session.Reset(s.roots.RandomRoot()); err != nil {
		return err
	}

	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[32mscramble>\033[0m ",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,

		Stdin:  s.stdin,
		Stdout: s.stdout,
		Stderr: s.stdout,
	})
	if err != nil {
		return fmt.Errorf("shell: readline: %w", err)
	}
	defer l.Close()
	stop := context.AfterFunc(ctx, func() { _ = l.Close() })
	defer stop()

	showMessage(l.Stdout(), usage)
	showMessage(l.Stdout(), s.banner())

	for {
		if ctx.Err() != nil {
			return nil
		}
		line, err := l.Readline()
		if ctx.Err() != nil {
			return nil
		}
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				return nil
			}
			continue
		} else if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}

		msg, err := s.Handle(ctx, line)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			showMessage(l.Stderr(), "Error: "+err.Error())
			continue
		}
		if msg != "" {
			showMessage(l.Stdout(), msg)
		}
	}
}

// Handle executes one input line and returns the text to show.
func (s *Shell) Handle(ctx context.Context, line string) (string, error) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "/") {
		return s.submit(ctx, line)
	}

	fields := strings.Fields(trimmed)
	switch fields[0] {
	case "/new", "/refresh":
		root := s.roots.RandomRoot()
		if len(fields) > 1 {
			root = fields[1]
		}
		if err := s.session.Reset(root); err != nil {
			return "", err
		}
		log.Debug().Str("root", s.session.Root()).Msg("new round")
		return s.banner(), nil
	case "/words":
		rows := s.session.Rows()
		if len(rows) == 0 {
			return "No words yet.", nil
		}
		return strings.Join(lo.Map(rows, func(r game.UsedWord, _ int) string {
			return fmt.Sprintf("%3d  %s", r.Length, r.Word)
		}), "\n"), nil
	case "/score":
		return fmt.Sprintf("Your current score is: %d", s.session.Score()), nil
	case "/root":
		return s.banner(), nil
	case "/help":
		return usage, nil
	case "/exit", "/quit", "/bye":
		return "", errQuit
	}
	return "", fmt.Errorf("unknown command %s (try /help)", fields[0])
}

func (s *Shell) submit(ctx context.Context, raw string) (string, error) {
	out, err := s.session.Submit(ctx, raw)
	if err != nil {
		return "", err
	}
	switch {
	case out.Accepted():
		return fmt.Sprintf("%s +%d  (score %d)", out.Word, utf8.RuneCountInString(out.Word), out.Score), nil
	case out.Rejected():
		return fmt.Sprintf("%s: %s", out.Title, out.Message), nil
	}
	return "", nil
}

func (s *Shell) banner() string {
	return fmt.Sprintf("Root word: %s", strings.ToUpper(s.session.Root()))
}

func showMessage(w io.Writer, msg string) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}
