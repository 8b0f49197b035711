package websocket

import (
	"context"
	"errors"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
	"github.com/rocketscienceinc/tictactoe-history/internal/usecase"
)

var errInternal = errors.New("internal error")

func (that *Server) handleNewSession(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	session, err := that.sessions.NewSession(ctx)
	if err != nil {
		return that.replyError(conn, msg.Action, err)
	}

	return that.replySession(conn, msg.Action, session)
}

func (that *Server) handleGetSession(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	payload, err := requireSession(msg)
	if err != nil {
		return that.sendErrorResponse(conn, msg.Action, err)
	}

	session, err := that.sessions.GetSession(ctx, payload.SessionID)
	if err != nil {
		return that.replyError(conn, msg.Action, err)
	}

	return that.replySession(conn, msg.Action, session)
}

func (that *Server) handleGameTurn(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	payload, err := requireSession(msg)
	if err != nil {
		return that.sendErrorResponse(conn, msg.Action, err)
	}

	if payload.Cell == nil {
		return that.sendErrorResponse(conn, msg.Action, errCellRequired)
	}

	session, err := that.sessions.PlayMove(ctx, payload.SessionID, *payload.Cell)
	if err != nil {
		return that.replyError(conn, msg.Action, err)
	}

	return that.replySession(conn, msg.Action, session)
}

func (that *Server) handleGameJump(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	payload, err := requireSession(msg)
	if err != nil {
		return that.sendErrorResponse(conn, msg.Action, err)
	}

	if payload.Step == nil {
		return that.sendErrorResponse(conn, msg.Action, errStepRequired)
	}

	session, err := that.sessions.JumpTo(ctx, payload.SessionID, *payload.Step)
	if err != nil {
		return that.replyError(conn, msg.Action, err)
	}

	return that.replySession(conn, msg.Action, session)
}

func (that *Server) handleGameToggle(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	payload, err := requireSession(msg)
	if err != nil {
		return that.sendErrorResponse(conn, msg.Action, err)
	}

	session, err := that.sessions.ToggleDisplayOrder(ctx, payload.SessionID)
	if err != nil {
		return that.replyError(conn, msg.Action, err)
	}

	return that.replySession(conn, msg.Action, session)
}

func (that *Server) handleEndSession(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	payload, err := requireSession(msg)
	if err != nil {
		return that.sendErrorResponse(conn, msg.Action, err)
	}

	if err = that.sessions.EndSession(ctx, payload.SessionID); err != nil {
		return that.replyError(conn, msg.Action, err)
	}

	return that.sendMessage(conn, msg.Action, ResponsePayload{SessionID: payload.SessionID, Ended: true})
}

func (that *Server) replySession(conn *websocket.Conn, action string, session *entity.Session) error {
	view := session.History.View()

	return that.sendMessage(conn, action, ResponsePayload{
		SessionID: session.ID,
		View:      &view,
	})
}

// replyError - rule violations, missing or busy sessions go back to the client, anything else is logged and masked.
func (that *Server) replyError(conn *websocket.Conn, action string, err error) error {
	switch {
	case usecase.IsRejection(err),
		errors.Is(err, apperror.ErrSessionNotFound),
		errors.Is(err, apperror.ErrSessionBusy):
		return that.sendErrorResponse(conn, action, err)
	default:
		that.logger.Error("action failed", "method", "replyError", "action", action, "error", err)
		return that.sendErrorResponse(conn, action, errInternal)
	}
}

func requireSession(msg *Message) (RequestPayload, error) {
	payload, err := decodePayload(msg)
	if err != nil {
		return payload, err
	}

	if payload.SessionID == "" {
		return payload, errSessionRequired
	}

	return payload, nil
}
