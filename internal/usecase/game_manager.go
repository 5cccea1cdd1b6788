package usecase

import (
	"context"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-session/internal/entity"
)

type gameRegistry interface {
	Play(sessionID string, row, col int) entity.MoveResult
	GetGameState(sessionID string) entity.GameState
	NewGame(sessionID string)
	SetGameMode(sessionID string, mode entity.GameMode)
	RemoveGame(sessionID string)
}

type snapshotRepo interface {
	Save(ctx context.Context, sessionID string, state entity.GameState) error
	DeleteBySessionID(ctx context.Context, sessionID string) error
}

type recorder interface {
	RecordMove(accepted bool)
	RecordGameFinished(mode entity.GameMode, status entity.GameStatus)
	RecordSessionRemoved()
}

// GameManager drives per-session games and mirrors every change to the snapshot store.
type GameManager struct {
	logger *slog.Logger

	registry  gameRegistry
	snapshots snapshotRepo
	recorder  recorder
}

// NewGameManager builds a manager. snapshots and rec may be nil.
func NewGameManager(logger *slog.Logger, registry gameRegistry, snapshots snapshotRepo, rec recorder) *GameManager {
	return &GameManager{
		logger:    logger.With("component", "game_manager"),
		registry:  registry,
		snapshots: snapshots,
		recorder:  rec,
	}
}

func (that *GameManager) GameState(_ context.Context, sessionID string) entity.GameState {
	return that.registry.GetGameState(sessionID)
}

// MakeMove plays the move for the session and returns the resulting state,
// including when the move was rejected.
func (that *GameManager) MakeMove(ctx context.Context, sessionID string, row, col int) (entity.GameState, bool) {
	log := that.logger.With("method", "MakeMove", "session", sessionID)

	result := that.registry.Play(sessionID, row, col)

	if that.recorder != nil {
		that.recorder.RecordMove(result.Accepted)
	}

	if !result.Accepted {
		log.Debug("move rejected", "row", row, "col", col)
		return result.State, false
	}

	if result.Finished {
		log.Info("game finished", "mode", result.State.GameMode, "status", result.State.Status)

		if that.recorder != nil {
			that.recorder.RecordGameFinished(result.State.GameMode, result.State.Status)
		}
	}

	that.saveSnapshot(ctx, sessionID, result.State)

	return result.State, true
}

func (that *GameManager) NewGame(ctx context.Context, sessionID string) entity.GameState {
	that.registry.NewGame(sessionID)

	state := that.registry.GetGameState(sessionID)
	that.saveSnapshot(ctx, sessionID, state)

	return state
}

func (that *GameManager) SetGameMode(ctx context.Context, sessionID string, mode entity.GameMode) entity.GameState {
	that.registry.SetGameMode(sessionID, mode)

	state := that.registry.GetGameState(sessionID)
	that.saveSnapshot(ctx, sessionID, state)

	return state
}

// EndSession forgets the session's game and drops its snapshot.
func (that *GameManager) EndSession(ctx context.Context, sessionID string) {
	log := that.logger.With("method", "EndSession", "session", sessionID)

	that.registry.RemoveGame(sessionID)

	if that.recorder != nil {
		that.recorder.RecordSessionRemoved()
	}

	if that.snapshots != nil {
		if err := that.snapshots.DeleteBySessionID(ctx, sessionID); err != nil {
			log.Error("failed to delete snapshot", "error", err)
		}
	}

	log.Info("session ended")
}

func (that *GameManager) saveSnapshot(ctx context.Context, sessionID string, state entity.GameState) {
	if that.snapshots == nil {
		return
	}

	if err := that.snapshots.Save(ctx, sessionID, state); err != nil {
		that.logger.Error("failed to save snapshot", "session", sessionID, "error", err)
	}
}
