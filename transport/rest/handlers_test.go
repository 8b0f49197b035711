package rest

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
)

func TestServer_WriteError(t *testing.T) {
	server := New(slog.New(slog.NewJSONHandler(io.Discard, nil)), nil)

	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{
			name:   "invalid move",
			err:    fmt.Errorf("failed to play move: %w: %w", apperror.ErrInvalidMove, apperror.ErrCellOccupied),
			status: http.StatusUnprocessableEntity,
			body:   `{"error":"failed to play move: invalid move: cell is already occupied"}`,
		},
		{
			name:   "invalid step",
			err:    fmt.Errorf("failed to jump: %w", apperror.ErrInvalidStep),
			status: http.StatusUnprocessableEntity,
			body:   `{"error":"failed to jump: invalid step"}`,
		},
		{
			name:   "missing session",
			err:    fmt.Errorf("failed to get session: %w", apperror.ErrSessionNotFound),
			status: http.StatusNotFound,
			body:   `{"error":"session not found"}`,
		},
		{
			name:   "busy session",
			err:    fmt.Errorf("failed to play move: %w: abc", apperror.ErrSessionBusy),
			status: http.StatusConflict,
			body:   `{"error":"session is being changed concurrently, try again"}`,
		},
		{
			name:   "storage failure is masked",
			err:    errors.New("redis down"),
			status: http.StatusInternalServerError,
			body:   `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a recorder
			recorder := httptest.NewRecorder()

			// When: writing the error
			server.writeError(recorder, tt.err)

			// Then: status and JSON body match
			assert.Equal(t, tt.status, recorder.Code)
			assert.JSONEq(t, tt.body, recorder.Body.String())
		})
	}
}
