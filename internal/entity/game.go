package entity

import (
	"fmt"
	"sync"

	"github.com/rocketscienceinc/tictactoe-session/internal/apperror"
)

type GameMode string

const (
	PlayerVsComputer GameMode = "PLAYER_VS_COMPUTER"
	PlayerVsPlayer   GameMode = "PLAYER_VS_PLAYER"
)

// ParseGameMode accepts only the two literal mode tokens.
func ParseGameMode(token string) (GameMode, error) {
	switch mode := GameMode(token); mode {
	case PlayerVsComputer, PlayerVsPlayer:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidGameMode, token)
	}
}

type GameStatus string

const (
	StatusInProgress   GameStatus = "IN_PROGRESS"
	StatusPlayerWins   GameStatus = "PLAYER_WINS"
	StatusComputerWins GameStatus = "COMPUTER_WINS"
	StatusPlayer1Wins  GameStatus = "PLAYER1_WINS"
	StatusPlayer2Wins  GameStatus = "PLAYER2_WINS"
	StatusDraw         GameStatus = "DRAW"
)

func (that GameStatus) IsTerminal() bool {
	return that != StatusInProgress
}

// Stats are cumulative across rounds and never reset.
type Stats struct {
	PlayerWins   int
	ComputerWins int
	Player1Wins  int
	Player2Wins  int
	Draws        int
}

// Game owns one board for one session. All methods are safe for concurrent use.
type Game struct {
	mu sync.Mutex

	board  *Board
	turn   Cell
	mode   GameMode
	status GameStatus
	stats  Stats
}

func NewGame() *Game {
	return &Game{
		board:  NewBoard(),
		turn:   CellX,
		mode:   PlayerVsComputer,
		status: StatusInProgress,
	}
}

// MoveResult describes a single call to Play.
type MoveResult struct {
	Accepted bool
	// Finished is set when this move ended the round.
	Finished bool
	State    GameState
}

// MakePlayerMove applies a human move and, against the computer, the reply.
// It returns false when the game is over, the cell is taken or out of range.
func (that *Game) MakePlayerMove(row, col int) bool {
	return that.Play(row, col).Accepted
}

// Play is MakePlayerMove that also returns the resulting snapshot, taken under the same lock.
func (that *Game) Play(row, col int) MoveResult {
	that.mu.Lock()
	defer that.mu.Unlock()

	accepted := that.makePlayerMove(row, col)

	return MoveResult{
		Accepted: accepted,
		Finished: accepted && that.status.IsTerminal(),
		State:    that.gameState(),
	}
}

func (that *Game) makePlayerMove(row, col int) bool {
	if that.status.IsTerminal() {
		return false
	}

	mark := CellX
	if that.mode == PlayerVsPlayer {
		mark = that.turn
	}

	if !that.board.MakeMove(row, col, mark) {
		return false
	}

	that.updateStatus()

	switch that.mode {
	case PlayerVsPlayer:
		if !that.status.IsTerminal() {
			that.turn = that.turn.Opponent()
		}
	case PlayerVsComputer:
		if !that.status.IsTerminal() {
			that.makeComputerMove()
			that.updateStatus()
		}
	}

	return true
}

// makeComputerMove takes the first open cell in row-major order.
func (that *Game) makeComputerMove() {
	moves := that.board.AvailableMoves()
	if len(moves) == 0 {
		return
	}

	that.board.MakeMove(moves[0].Row, moves[0].Col, CellO)
}

// updateStatus must only run right after a move was placed on an in-progress board,
// otherwise a finished round would be counted twice.
func (that *Game) updateStatus() {
	winner, ok := that.board.Winner()

	switch {
	case ok && winner == CellX && that.mode == PlayerVsComputer:
		that.status = StatusPlayerWins
		that.stats.PlayerWins++
	case ok && winner == CellX:
		that.status = StatusPlayer1Wins
		that.stats.Player1Wins++
	case ok && winner == CellO && that.mode == PlayerVsComputer:
		that.status = StatusComputerWins
		that.stats.ComputerWins++
	case ok && winner == CellO:
		that.status = StatusPlayer2Wins
		that.stats.Player2Wins++
	case that.board.IsFull():
		that.status = StatusDraw
		that.stats.Draws++
	default:
		that.status = StatusInProgress
	}
}

// NewGame starts a fresh round. Stats are kept.
func (that *Game) NewGame() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.reset()
}

func (that *Game) ChangeGameMode(mode GameMode) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.mode = mode
	that.reset()
}

func (that *Game) reset() {
	that.board.Reset()
	that.turn = CellX
	that.status = StatusInProgress
}

func (that *Game) Status() GameStatus {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.status
}

func (that *Game) Mode() GameMode {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.mode
}

func (that *Game) GameState() GameState {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.gameState()
}

func (that *Game) gameState() GameState {
	return GameState{
		Board:         that.board.Grid(),
		Status:        that.status,
		PlayerWins:    that.stats.PlayerWins,
		ComputerWins:  that.stats.ComputerWins,
		Player1Wins:   that.stats.Player1Wins,
		Player2Wins:   that.stats.Player2Wins,
		Draws:         that.stats.Draws,
		GameMode:      that.mode,
		CurrentPlayer: that.turn,
	}
}
