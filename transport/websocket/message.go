package websocket

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
)

const (
	ActionSessionNew = "session:new"
	ActionSessionGet = "session:get"
	ActionSessionEnd = "session:end"
	ActionGameTurn   = "game:turn"
	ActionGameJump   = "game:jump"
	ActionGameToggle = "game:toggle"
)

var (
	errMalformedMessage = errors.New("malformed message")
	errUnknownAction    = errors.New("unknown action")
	errSessionRequired  = errors.New("session_id is required")
	errCellRequired     = errors.New("cell is required")
	errStepRequired     = errors.New("step is required")
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type RequestPayload struct {
	SessionID string `json:"session_id,omitempty"`
	Cell      *int   `json:"cell,omitempty"`
	Step      *int   `json:"step,omitempty"`
}

type ResponsePayload struct {
	SessionID string          `json:"session_id,omitempty"`
	View      *tictactoe.View `json:"view,omitempty"`
	Ended     bool            `json:"ended,omitempty"`
	Error     string          `json:"error,omitempty"`
}

func (that *Server) sendMessage(conn *websocket.Conn, action string, payload ResponsePayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err = conn.WriteJSON(Message{Action: action, Payload: body}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *Server) sendErrorResponse(conn *websocket.Conn, action string, err error) error {
	return that.sendMessage(conn, action, ResponsePayload{Error: err.Error()})
}

func decodePayload(msg *Message) (RequestPayload, error) {
	var payload RequestPayload

	if len(msg.Payload) == 0 {
		return payload, nil
	}

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return payload, errMalformedMessage
	}

	return payload, nil
}
