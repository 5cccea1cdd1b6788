package service

import (
	"sync"
	"testing"

	"github.com/rocketscienceinc/tictactoe-session/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameRegistry_GetOrCreateGame(t *testing.T) {
	t.Run("Creates once and reuses", func(t *testing.T) {
		// Given: an empty registry
		registry := NewGameRegistry()

		// When: the same session is fetched twice
		first := registry.GetOrCreateGame("abc")
		second := registry.GetOrCreateGame("abc")

		// Then: both calls return the same game
		require.NotNil(t, first)
		assert.Same(t, first, second)
		assert.Equal(t, 1, registry.Len())
	})

	t.Run("Sessions are isolated", func(t *testing.T) {
		registry := NewGameRegistry()

		require.True(t, registry.MakeMove("a", 1, 1))

		assert.NotSame(t, registry.GetOrCreateGame("a"), registry.GetOrCreateGame("b"))
		assert.Equal(t, entity.Grid{}, registry.GetGameState("b").Board)
		assert.Equal(t, entity.CellX, registry.GetGameState("a").Board[1][1])
	})

	t.Run("Concurrent first access yields one game", func(t *testing.T) {
		// Given: an empty registry and many goroutines racing on one new id
		registry := NewGameRegistry()
		const workers = 64

		games := make([]*entity.Game, workers)
		start := make(chan struct{})

		var wg sync.WaitGroup
		for i := range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				games[i] = registry.GetOrCreateGame("race")
			}()
		}

		// When: they all start together
		close(start)
		wg.Wait()

		// Then: every goroutine saw the same instance
		for _, game := range games {
			assert.Same(t, games[0], game)
		}
		assert.Same(t, games[0], registry.GetOrCreateGame("race"))
		assert.Equal(t, 1, registry.Len())
	})
}

func TestGameRegistry_Delegation(t *testing.T) {
	t.Run("MakeMove and GetGameState", func(t *testing.T) {
		registry := NewGameRegistry()

		ok := registry.MakeMove("s", 2, 2)

		require.True(t, ok)
		state := registry.GetGameState("s")
		assert.Equal(t, entity.CellX, state.Board[2][2])
		assert.Equal(t, entity.CellO, state.Board[0][0])
	})

	t.Run("MakeMove rejects out of range", func(t *testing.T) {
		registry := NewGameRegistry()

		assert.False(t, registry.MakeMove("s", -1, 0))
		assert.Equal(t, entity.Grid{}, registry.GetGameState("s").Board)
	})

	t.Run("Play returns the resulting state", func(t *testing.T) {
		registry := NewGameRegistry()

		result := registry.Play("s", 1, 1)

		assert.True(t, result.Accepted)
		assert.False(t, result.Finished)
		assert.Equal(t, registry.GetGameState("s"), result.State)
	})

	t.Run("NewGame keeps counters", func(t *testing.T) {
		// Given: a session where the computer has won once
		registry := NewGameRegistry()
		require.True(t, registry.MakeMove("s", 1, 1))
		require.True(t, registry.MakeMove("s", 2, 2))
		require.True(t, registry.MakeMove("s", 1, 0))
		require.Equal(t, entity.StatusComputerWins, registry.GetGameState("s").Status)

		// When: a new game is started
		registry.NewGame("s")

		// Then: the board resets and the win is remembered
		state := registry.GetGameState("s")
		assert.Equal(t, entity.StatusInProgress, state.Status)
		assert.Equal(t, entity.Grid{}, state.Board)
		assert.Equal(t, 1, state.ComputerWins)
	})

	t.Run("SetGameMode switches and restarts", func(t *testing.T) {
		registry := NewGameRegistry()
		require.True(t, registry.MakeMove("s", 0, 0))

		registry.SetGameMode("s", entity.PlayerVsPlayer)

		state := registry.GetGameState("s")
		assert.Equal(t, entity.PlayerVsPlayer, state.GameMode)
		assert.Equal(t, entity.Grid{}, state.Board)
		assert.Equal(t, entity.StatusInProgress, state.Status)
	})
}

func TestGameRegistry_RemoveGame(t *testing.T) {
	t.Run("Next access creates a fresh game", func(t *testing.T) {
		// Given: a session with a move and a mode change
		registry := NewGameRegistry()
		registry.SetGameMode("s", entity.PlayerVsPlayer)
		require.True(t, registry.MakeMove("s", 0, 0))
		old := registry.GetOrCreateGame("s")

		// When: the session is removed
		registry.RemoveGame("s")

		// Then: it is gone and the next access starts over
		assert.Zero(t, registry.Len())
		fresh := registry.GetOrCreateGame("s")
		assert.NotSame(t, old, fresh)
		assert.Equal(t, entity.PlayerVsComputer, fresh.Mode())
		assert.Equal(t, entity.Grid{}, fresh.GameState().Board)
	})

	t.Run("Unknown id is a no-op", func(t *testing.T) {
		registry := NewGameRegistry()
		registry.GetOrCreateGame("kept")

		registry.RemoveGame("missing")

		assert.Equal(t, 1, registry.Len())
	})
}
