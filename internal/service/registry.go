package service

import (
	"sync"

	"github.com/rocketscienceinc/tictactoe-session/internal/entity"
)

// GameRegistry maps session ids to games. Games are created on first access.
type GameRegistry struct {
	mu    sync.Mutex
	games map[string]*entity.Game
}

func NewGameRegistry() *GameRegistry {
	return &GameRegistry{
		games: make(map[string]*entity.Game),
	}
}

// GetOrCreateGame returns the session's game, creating it under the registry lock
// so that concurrent first requests share one instance.
func (that *GameRegistry) GetOrCreateGame(sessionID string) *entity.Game {
	that.mu.Lock()
	defer that.mu.Unlock()

	game, ok := that.games[sessionID]
	if !ok {
		game = entity.NewGame()
		that.games[sessionID] = game
	}

	return game
}

func (that *GameRegistry) MakeMove(sessionID string, row, col int) bool {
	return that.GetOrCreateGame(sessionID).MakePlayerMove(row, col)
}

func (that *GameRegistry) Play(sessionID string, row, col int) entity.MoveResult {
	return that.GetOrCreateGame(sessionID).Play(row, col)
}

func (that *GameRegistry) GetGameState(sessionID string) entity.GameState {
	return that.GetOrCreateGame(sessionID).GameState()
}

func (that *GameRegistry) NewGame(sessionID string) {
	that.GetOrCreateGame(sessionID).NewGame()
}

func (that *GameRegistry) SetGameMode(sessionID string, mode entity.GameMode) {
	that.GetOrCreateGame(sessionID).ChangeGameMode(mode)
}

// RemoveGame forgets the session. Unknown ids are ignored.
func (that *GameRegistry) RemoveGame(sessionID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.games, sessionID)
}

func (that *GameRegistry) Len() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.games)
}
