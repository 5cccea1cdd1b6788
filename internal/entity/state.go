package entity

// GameState is a read-only snapshot of a game, shaped for JSON clients.
type GameState struct {
	Board         Grid       `json:"board"`
	Status        GameStatus `json:"status"`
	PlayerWins    int        `json:"playerWins"`
	ComputerWins  int        `json:"computerWins"`
	Player1Wins   int        `json:"player1Wins"`
	Player2Wins   int        `json:"player2Wins"`
	Draws         int        `json:"draws"`
	GameMode      GameMode   `json:"gameMode"`
	CurrentPlayer Cell       `json:"currentPlayer"`
}

func (that GameState) IsFinished() bool {
	return that.Status.IsTerminal()
}
