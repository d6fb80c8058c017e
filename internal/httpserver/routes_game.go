// internal/httpserver/routes_game.go
//
// HTTP routes for playing a round:
//   - POST /game/new     → start a game (random, daily or fixed root), returns a session token
//   - POST /game/submit  → submit a word, returns the outcome
//   - POST /game/reset   → start a new round in the same game
//   - GET  /game/state   → root, used words (most recent first) and score
//
// Resetting a game with a non-zero score records the finished round in the
// score log when one is configured and the round was played on a root from
// the loaded list. Rounds on client-chosen roots are never logged.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/internal/game"
	"github.com/robalobadob/wordscramble/internal/scores"
	"github.com/robalobadob/wordscramble/internal/store"
)

// mountGame registers all /game routes.
func (s *Server) mountGame(r chi.Router) {
	r.Route("/game", func(r chi.Router) {
		r.Post("/new", s.handleNew)
		r.Group(func(r chi.Router) {
			r.Use(s.requireSession)
			r.Post("/submit", s.handleSubmit)
			r.Post("/reset", s.handleReset)
			r.Get("/state", s.handleState)
		})
	})
}

// rootReq is the payload for /game/new and /game/reset. Both fields are
// optional; a fixed root wins over daily, and neither means a random root.
// A fixed root must be a single word of letters.
type rootReq struct {
	Root  string `json:"root"`
	Daily bool   `json:"daily"`
}

// newRes is returned by /game/new.
type newRes struct {
	GameID string `json:"gameId"`
	Token  string `json:"token"`
	Root   string `json:"root"`
}

// pickRoot resolves the root word for a new round.
func (s *Server) pickRoot(req rootReq) string {
	if root := strings.TrimSpace(req.Root); root != "" {
		return root
	}
	if req.Daily {
		return s.roots.DailyRoot(s.now(), s.cfg.Session.DailySalt)
	}
	return s.roots.RandomRoot()
}

// decodeOptional decodes a JSON body, treating an empty body as the zero value.
func decodeOptional(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// handleNew creates a session, starts its first round and issues a token.
func (s *Server) handleNew(w http.ResponseWriter, r *http.Request) {
	var req rootReq
	if err := decodeOptional(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	g := game.NewSession(s.dict,
		game.WithLanguage(s.cfg.Dictionary.Language),
		game.WithMinLength(s.cfg.Session.MinLength),
	)
	if err := g.Reset(s.pickRoot(req)); err != nil {
		s.writeGameError(w, err)
		return
	}
	if err := s.store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}

	tok, exp, err := s.signToken(g.ID())
	if err != nil {
		log.Error().Err(err).Msg("sign token")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	s.setSessionCookie(w, tok, exp)

	log.Info().Str("gameId", g.ID()).Str("root", g.Root()).Msg("game started")
	writeJSON(w, newRes{GameID: g.ID(), Token: tok, Root: g.Root()})
}

// submitReq is the payload for /game/submit.
type submitReq struct {
	Word string `json:"word"`
}

// handleSubmit runs one submission through the session.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	var out game.Outcome
	err := s.store.Update(r.Context(), gameID(r), func(g *game.Session) error {
		var err error
		out, err = g.Submit(r.Context(), req.Word)
		return err
	})
	if err != nil {
		s.writeGameError(w, err)
		return
	}

	log.Debug().Str("gameId", gameID(r)).Str("word", out.Word).Str("kind", string(out.Kind)).Msg("submission")
	writeJSON(w, out)
}

// resetRes is returned by /game/reset.
type resetRes struct {
	Root string `json:"root"`
}

// handleReset starts a new round, logging the finished one when it scored
// on a listed root.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	var req rootReq
	if err := decodeOptional(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	var (
		finished scores.Entry
		root     string
	)
	err := s.store.Update(r.Context(), gameID(r), func(g *game.Session) error {
		finished = scores.Entry{
			SessionID: g.ID(),
			Root:      g.Root(),
			Score:     g.Score(),
			Words:     len(g.UsedWords()),
		}
		if err := g.Reset(s.pickRoot(req)); err != nil {
			return err
		}
		root = g.Root()
		return nil
	})
	if err != nil {
		s.writeGameError(w, err)
		return
	}

	// Best effort: a failed write never blocks the next round.
	if s.scores != nil && finished.Score > 0 && s.roots.Contains(finished.Root) {
		finished.FinishedAt = s.now()
		if err := s.scores.Record(r.Context(), finished); err != nil {
			log.Warn().Err(err).Str("gameId", finished.SessionID).Msg("record score")
		}
	}

	writeJSON(w, resetRes{Root: root})
}

// stateRes is returned by /game/state.
type stateRes struct {
	GameID    string          `json:"gameId"`
	Root      string          `json:"root"`
	UsedWords []game.UsedWord `json:"usedWords"`
	Score     int             `json:"score"`
}

// handleState reports the current round.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	var res stateRes
	err := s.store.Update(r.Context(), gameID(r), func(g *game.Session) error {
		res = stateRes{GameID: g.ID(), Root: g.Root(), UsedWords: g.Rows(), Score: g.Score()}
		return nil
	})
	if err != nil {
		s.writeGameError(w, err)
		return
	}
	if res.UsedWords == nil {
		res.UsedWords = []game.UsedWord{}
	}
	writeJSON(w, res)
}

// writeGameError maps store and session errors to HTTP responses.
func (s *Server) writeGameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "game_not_found")
	case errors.Is(err, game.ErrInvalidRoot):
		writeError(w, http.StatusBadRequest, "invalid_root")
	case errors.Is(err, game.ErrNotStarted):
		writeError(w, http.StatusConflict, "game_not_started")
	case errors.Is(err, game.ErrNoRootWord):
		writeError(w, http.StatusInternalServerError, "no_root_word")
	default:
		log.Error().Err(err).Msg("game request")
		writeError(w, http.StatusInternalServerError, "server_error")
	}
}
