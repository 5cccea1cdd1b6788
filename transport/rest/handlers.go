package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-session/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-session/internal/entity"
)

type gameManager interface {
	GameState(ctx context.Context, sessionID string) entity.GameState
	MakeMove(ctx context.Context, sessionID string, row, col int) (entity.GameState, bool)
	NewGame(ctx context.Context, sessionID string) entity.GameState
	SetGameMode(ctx context.Context, sessionID string, mode entity.GameMode) entity.GameState
	EndSession(ctx context.Context, sessionID string)
}

type handlers struct {
	logger  *slog.Logger
	manager gameManager
	cookie  SessionCookie
}

func newHandlers(logger *slog.Logger, manager gameManager, cookie SessionCookie) *handlers {
	return &handlers{
		logger:  logger.With("component", "rest"),
		manager: manager,
		cookie:  cookie,
	}
}

func (that *handlers) Index(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "Index")

	sessionID, err := sessionIDFromContext(r.Context())
	if err != nil {
		http.Error(w, "No session found", http.StatusBadRequest)
		return
	}

	if err = renderPage(w, that.manager.GameState(r.Context(), sessionID)); err != nil {
		log.Error("failed to render page", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func (that *handlers) MakeMove(w http.ResponseWriter, r *http.Request) {
	sessionID, err := sessionIDFromContext(r.Context())
	if err != nil {
		http.Error(w, "No session found", http.StatusBadRequest)
		return
	}

	row, col, err := parseMove(r)
	if err != nil {
		http.Error(w, "Invalid move data", http.StatusBadRequest)
		return
	}

	// a rejected move still answers with the current state
	state, _ := that.manager.MakeMove(r.Context(), sessionID, row, col)

	that.writeState(w, state)
}

func (that *handlers) NewGame(w http.ResponseWriter, r *http.Request) {
	sessionID, err := sessionIDFromContext(r.Context())
	if err != nil {
		http.Error(w, "No session found", http.StatusBadRequest)
		return
	}

	that.writeState(w, that.manager.NewGame(r.Context(), sessionID))
}

func (that *handlers) GameState(w http.ResponseWriter, r *http.Request) {
	sessionID, err := sessionIDFromContext(r.Context())
	if err != nil {
		http.Error(w, "No session found", http.StatusBadRequest)
		return
	}

	that.writeState(w, that.manager.GameState(r.Context(), sessionID))
}

func (that *handlers) SetGameMode(w http.ResponseWriter, r *http.Request) {
	sessionID, err := sessionIDFromContext(r.Context())
	if err != nil {
		http.Error(w, "No session found", http.StatusBadRequest)
		return
	}

	if err = r.ParseForm(); err != nil {
		http.Error(w, "Invalid mode data", http.StatusBadRequest)
		return
	}

	if !r.PostForm.Has("mode") {
		http.Error(w, "Invalid mode data", http.StatusBadRequest)
		return
	}

	token := r.PostForm.Get("mode")
	mode, err := entity.ParseGameMode(token)
	if err != nil {
		http.Error(w, "Invalid mode: "+token, http.StatusBadRequest)
		return
	}

	that.writeState(w, that.manager.SetGameMode(r.Context(), sessionID, mode))
}

func (that *handlers) EndSession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := sessionIDFromContext(r.Context())
	if err != nil {
		http.Error(w, "No session found", http.StatusBadRequest)
		return
	}

	that.manager.EndSession(r.Context(), sessionID)
	that.cookie.expire(w)

	w.WriteHeader(http.StatusNoContent)
}

func (that *handlers) writeState(w http.ResponseWriter, state entity.GameState) {
	body, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		that.logger.Error("failed to marshal game state", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

func parseMove(r *http.Request) (int, int, error) {
	if err := r.ParseForm(); err != nil {
		return 0, 0, fmt.Errorf("%w: %w", apperror.ErrInvalidMoveData, err)
	}

	row, err := strconv.Atoi(r.PostForm.Get("row"))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: row: %w", apperror.ErrInvalidMoveData, err)
	}

	col, err := strconv.Atoi(r.PostForm.Get("col"))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: col: %w", apperror.ErrInvalidMoveData, err)
	}

	return row, col, nil
}
