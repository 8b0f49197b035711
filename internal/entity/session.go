package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
)

// Session is one game board with its history, as stored between requests.
type Session struct {
	ID        string            `json:"id"`
	History   tictactoe.History `json:"history"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func NewSession(now time.Time) *Session {
	return &Session{
		ID:        uuid.NewString(),
		History:   tictactoe.NewHistory(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsValid reports whether the stored history can be played on.
func (that *Session) IsValid() bool {
	return len(that.History.Snapshots) > 0 &&
		that.History.CurrentStep >= 0 &&
		that.History.CurrentStep < len(that.History.Snapshots)
}
