package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
	"github.com/rocketscienceinc/tictactoe-history/internal/metrics"
	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
)

type sessionRepoDep interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	Update(ctx context.Context, id string, fn func(session *entity.Session) error) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

type SessionManager struct {
	logger      *slog.Logger
	sessionRepo sessionRepoDep

	now func() time.Time
}

func NewSessionManager(logger *slog.Logger, sessionRepo sessionRepoDep) *SessionManager {
	return &SessionManager{
		logger:      logger.With("component", "session_manager"),
		sessionRepo: sessionRepo,

		now: func() time.Time { return time.Now().UTC() },
	}
}

// NewSession - starts a game on an empty board.
func (that *SessionManager) NewSession(ctx context.Context) (*entity.Session, error) {
	session := entity.NewSession(that.now())

	if err := that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	metrics.SessionsCreated.Inc()
	that.logger.Info("session created", "method", "NewSession", "sessionID", session.ID)

	return session, nil
}

func (that *SessionManager) GetSession(ctx context.Context, id string) (*entity.Session, error) {
	session, err := that.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

// PlayMove - places the next mark on cell. A rejected move returns the untouched session
// together with an error wrapping apperror.ErrInvalidMove.
func (that *SessionManager) PlayMove(ctx context.Context, id string, cell int) (*entity.Session, error) {
	log := that.logger.With("method", "PlayMove", "sessionID", id, "cell", cell)

	session, err := that.apply(ctx, id, func(history tictactoe.History) (tictactoe.History, error) {
		return history.PlayMove(cell)
	})
	if err != nil {
		if IsRejection(err) {
			metrics.Moves.WithLabelValues(metrics.ResultRejected).Inc()
			log.Debug("move rejected", "error", err)

			return session, fmt.Errorf("failed to play move: %w", err)
		}

		return nil, fmt.Errorf("failed to play move: %w", err)
	}

	metrics.Moves.WithLabelValues(metrics.ResultApplied).Inc()
	log.Info("move played", "step", session.History.CurrentStep, "outcome", session.History.Outcome())

	return session, nil
}

// JumpTo - moves the session to a past (or future) step without dropping any snapshot.
func (that *SessionManager) JumpTo(ctx context.Context, id string, step int) (*entity.Session, error) {
	log := that.logger.With("method", "JumpTo", "sessionID", id, "step", step)

	session, err := that.apply(ctx, id, func(history tictactoe.History) (tictactoe.History, error) {
		return history.JumpTo(step)
	})
	if err != nil {
		if IsRejection(err) {
			metrics.Jumps.WithLabelValues(metrics.ResultRejected).Inc()
			log.Debug("jump rejected", "error", err)

			return session, fmt.Errorf("failed to jump: %w", err)
		}

		return nil, fmt.Errorf("failed to jump: %w", err)
	}

	metrics.Jumps.WithLabelValues(metrics.ResultApplied).Inc()
	log.Info("jumped")

	return session, nil
}

func (that *SessionManager) ToggleDisplayOrder(ctx context.Context, id string) (*entity.Session, error) {
	session, err := that.apply(ctx, id, func(history tictactoe.History) (tictactoe.History, error) {
		return history.ToggleDisplayOrder(), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to toggle display order: %w", err)
	}

	metrics.Toggles.Inc()
	that.logger.Info("display order toggled", "method", "ToggleDisplayOrder", "sessionID", id,
		"reversed", session.History.ReversedDisplay)

	return session, nil
}

func (that *SessionManager) EndSession(ctx context.Context, id string) error {
	if err := that.sessionRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	metrics.SessionsEnded.Inc()
	that.logger.Info("session ended", "method", "EndSession", "sessionID", id)

	return nil
}

// apply - runs op on the stored history as one atomic read-modify-write.
// A rejected op leaves storage alone and the returned session unchanged.
func (that *SessionManager) apply(
	ctx context.Context, id string, op func(tictactoe.History) (tictactoe.History, error),
) (*entity.Session, error) {
	return that.sessionRepo.Update(ctx, id, func(session *entity.Session) error {
		history, err := op(session.History)
		if err != nil {
			return err
		}

		session.History = history
		session.UpdatedAt = that.now()

		return nil
	})
}

// IsRejection reports whether err comes from the game rules rather than storage.
func IsRejection(err error) bool {
	return errors.Is(err, apperror.ErrInvalidMove) || errors.Is(err, apperror.ErrInvalidStep)
}
