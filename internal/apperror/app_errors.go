package apperror

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidGameMode = errors.New("invalid game mode")
	ErrNoSession       = errors.New("no session found")
	ErrInvalidMoveData = errors.New("invalid move data")
)
