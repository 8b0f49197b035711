package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-history/internal/usecase"
)

var errBadRequestBody = errors.New("invalid request body")

type sessionResponse struct {
	SessionID string         `json:"session_id"`
	View      tictactoe.View `json:"view"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type moveRequest struct {
	Cell *int `json:"cell"`
}

type jumpRequest struct {
	Step *int `json:"step"`
}

func (that *Server) createSession(w http.ResponseWriter, r *http.Request) {
	session, err := that.sessions.NewSession(r.Context())
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeSession(w, http.StatusCreated, session)
}

func (that *Server) getSession(w http.ResponseWriter, r *http.Request) {
	session, err := that.sessions.GetSession(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeSession(w, http.StatusOK, session)
}

func (that *Server) playMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Cell == nil {
		that.writeError(w, errBadRequestBody)
		return
	}

	session, err := that.sessions.PlayMove(r.Context(), mux.Vars(r)["id"], *req.Cell)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeSession(w, http.StatusOK, session)
}

func (that *Server) jumpTo(w http.ResponseWriter, r *http.Request) {
	var req jumpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Step == nil {
		that.writeError(w, errBadRequestBody)
		return
	}

	session, err := that.sessions.JumpTo(r.Context(), mux.Vars(r)["id"], *req.Step)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeSession(w, http.StatusOK, session)
}

func (that *Server) toggleDisplayOrder(w http.ResponseWriter, r *http.Request) {
	session, err := that.sessions.ToggleDisplayOrder(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeSession(w, http.StatusOK, session)
}

func (that *Server) endSession(w http.ResponseWriter, r *http.Request) {
	if err := that.sessions.EndSession(r.Context(), mux.Vars(r)["id"]); err != nil {
		that.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *Server) writeSession(w http.ResponseWriter, status int, session *entity.Session) {
	that.writeJSON(w, status, sessionResponse{
		SessionID: session.ID,
		View:      session.History.View(),
	})
}

// writeError - maps domain errors to status codes.
func (that *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, errBadRequestBody):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, apperror.ErrSessionNotFound):
		status, message = http.StatusNotFound, apperror.ErrSessionNotFound.Error()
	case usecase.IsRejection(err):
		status, message = http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, apperror.ErrSessionBusy):
		status, message = http.StatusConflict, apperror.ErrSessionBusy.Error()
	default:
		that.logger.Error("request failed", "error", err)
	}

	that.writeJSON(w, status, errorResponse{Error: message})
}

func (that *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
