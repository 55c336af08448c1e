package apperror

import "errors"

var (
	ErrInvalidConfiguration = errors.New("invalid game configuration")
	ErrOutOfRange           = errors.New("cell is out of range")
	ErrCellOccupied         = errors.New("cell is already occupied")
	ErrInvalidSymbol        = errors.New("invalid cell symbol")
	ErrGameAlreadyOver      = errors.New("game is already over")
	ErrNotYourTurn          = errors.New("it's not your turn")
	ErrGameNotFound         = errors.New("game not found")
)
