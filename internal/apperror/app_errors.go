package apperror

import "errors"

var (
	ErrInvalidMove = errors.New("invalid move")
	ErrInvalidStep = errors.New("invalid step")

	ErrInvalidCell  = errors.New("invalid cell index")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrGameFinished = errors.New("game is already finished")

	ErrSessionNotFound = errors.New("session not found")
	ErrSessionBusy     = errors.New("session is being changed concurrently, try again")
)
