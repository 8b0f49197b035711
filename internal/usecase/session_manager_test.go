package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
	mockedUseCase "github.com/rocketscienceinc/tictactoe-history/mocks/usecase"
)

var errRedisDown = errors.New("redis down")

var fixedNow = time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

func newTestManager(t *testing.T) (*SessionManager, *mockedUseCase.MocksessionRepoDep) {
	t.Helper()

	mockSessionRepo := mockedUseCase.NewMocksessionRepoDep(t)
	manager := NewSessionManager(slog.New(slog.NewJSONHandler(io.Discard, nil)), mockSessionRepo)
	manager.now = func() time.Time { return fixedNow }

	return manager, mockSessionRepo
}

func sessionWith(t *testing.T, cells ...int) *entity.Session {
	t.Helper()

	session := entity.NewSession(fixedNow.Add(-time.Hour))
	for _, cell := range cells {
		var err error
		session.History, err = session.History.PlayMove(cell)
		require.NoError(t, err)
	}

	return session
}

// updateOn - behaves like the repository Update over a copy of stored; writeErr fails the write.
func updateOn(
	stored *entity.Session, writeErr error,
) func(context.Context, string, func(*entity.Session) error) (*entity.Session, error) {
	return func(_ context.Context, _ string, fn func(*entity.Session) error) (*entity.Session, error) {
		session := *stored
		if err := fn(&session); err != nil {
			return &session, err
		}

		if writeErr != nil {
			return &session, writeErr
		}

		return &session, nil
	}
}

func TestSessionManager_NewSession(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates and stores an empty game", func(t *testing.T) {
		// Given: a repository accepting writes
		manager, mockSessionRepo := newTestManager(t)
		mockSessionRepo.EXPECT().
			CreateOrUpdate(ctx, mock.AnythingOfType("*entity.Session")).
			Return(nil).
			Once()

		// When: a session is created
		session, err := manager.NewSession(ctx)

		// Then: it starts on the empty board
		require.NoError(t, err)
		assert.NotEmpty(t, session.ID)
		assert.Equal(t, tictactoe.NewHistory(), session.History)
		assert.Equal(t, fixedNow, session.CreatedAt)
	})

	t.Run("Returns error if repository fails", func(t *testing.T) {
		// Given: a failing repository
		manager, mockSessionRepo := newTestManager(t)
		mockSessionRepo.EXPECT().
			CreateOrUpdate(ctx, mock.AnythingOfType("*entity.Session")).
			Return(errRedisDown).
			Once()

		// When: a session is created
		session, err := manager.NewSession(ctx)

		// Then: the storage error is returned
		require.ErrorIs(t, err, errRedisDown)
		assert.Nil(t, session)
	})
}

func TestSessionManager_GetSession(t *testing.T) {
	ctx := context.Background()

	// Given: a stored session
	manager, mockSessionRepo := newTestManager(t)
	stored := sessionWith(t, 0)
	mockSessionRepo.EXPECT().
		GetByID(ctx, stored.ID).
		Return(stored, nil).
		Once()

	// When: reading it
	session, err := manager.GetSession(ctx, stored.ID)

	// Then: the stored session is returned
	require.NoError(t, err)
	assert.Equal(t, stored, session)
}

func TestSessionManager_PlayMove(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful move is stored", func(t *testing.T) {
		// Given: a stored session with X on 0
		manager, mockSessionRepo := newTestManager(t)
		stored := sessionWith(t, 0)

		mockSessionRepo.EXPECT().
			Update(ctx, stored.ID, mock.Anything).
			RunAndReturn(updateOn(stored, nil)).
			Once()

		// When: O plays 4
		session, err := manager.PlayMove(ctx, stored.ID, 4)

		// Then: the new state is returned
		require.NoError(t, err)
		assert.Equal(t, 2, session.History.CurrentStep)
		assert.Equal(t, tictactoe.PlayerO, session.History.Current()[4])
		assert.Equal(t, fixedNow, session.UpdatedAt)
	})

	t.Run("Occupied cell is rejected", func(t *testing.T) {
		// Given: a stored session with X on 0
		manager, mockSessionRepo := newTestManager(t)
		stored := sessionWith(t, 0)
		before := stored.History

		mockSessionRepo.EXPECT().
			Update(ctx, stored.ID, mock.Anything).
			RunAndReturn(updateOn(stored, nil)).
			Once()

		// When: O plays 0
		session, err := manager.PlayMove(ctx, stored.ID, 0)

		// Then: the move is rejected and the session is unchanged
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.True(t, IsRejection(err))
		require.NotNil(t, session)
		assert.Equal(t, before, session.History)
		assert.Equal(t, stored.UpdatedAt, session.UpdatedAt)
	})

	t.Run("Move after a win is rejected", func(t *testing.T) {
		// Given: X has won
		manager, mockSessionRepo := newTestManager(t)
		stored := sessionWith(t, 0, 4, 1, 3, 2)

		mockSessionRepo.EXPECT().
			Update(ctx, stored.ID, mock.Anything).
			RunAndReturn(updateOn(stored, nil)).
			Once()

		// When: O tries to keep playing
		_, err := manager.PlayMove(ctx, stored.ID, 8)

		// Then: the game is reported finished
		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Missing session", func(t *testing.T) {
		// Given: the repository does not know the id
		manager, mockSessionRepo := newTestManager(t)
		mockSessionRepo.EXPECT().
			Update(ctx, "nope", mock.Anything).
			Return(nil, apperror.ErrSessionNotFound).
			Once()

		// When: playing on it
		session, err := manager.PlayMove(ctx, "nope", 0)

		// Then: not found is reported
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
		assert.False(t, IsRejection(err))
		assert.Nil(t, session)
	})

	t.Run("Failed write is reported", func(t *testing.T) {
		// Given: writes fail
		manager, mockSessionRepo := newTestManager(t)
		stored := sessionWith(t)

		mockSessionRepo.EXPECT().
			Update(ctx, stored.ID, mock.Anything).
			RunAndReturn(updateOn(stored, errRedisDown)).
			Once()

		// When: X plays
		session, err := manager.PlayMove(ctx, stored.ID, 0)

		// Then: the error is returned and the stored value was not changed in place
		require.ErrorIs(t, err, errRedisDown)
		assert.False(t, IsRejection(err))
		assert.Nil(t, session)
		assert.Equal(t, 0, stored.History.CurrentStep)
	})
}

func TestSessionManager_JumpTo(t *testing.T) {
	ctx := context.Background()

	t.Run("Jump keeps every snapshot", func(t *testing.T) {
		// Given: three moves
		manager, mockSessionRepo := newTestManager(t)
		stored := sessionWith(t, 0, 4, 8)

		mockSessionRepo.EXPECT().
			Update(ctx, stored.ID, mock.Anything).
			RunAndReturn(updateOn(stored, nil)).
			Once()

		// When: jumping to step 1
		session, err := manager.JumpTo(ctx, stored.ID, 1)

		// Then: O is next and nothing was truncated
		require.NoError(t, err)
		assert.Equal(t, tictactoe.PlayerO, session.History.NextMark())
		assert.Equal(t, 4, session.History.Len())
	})

	t.Run("Out of range step is rejected", func(t *testing.T) {
		// Given: one move
		manager, mockSessionRepo := newTestManager(t)
		stored := sessionWith(t, 0)

		mockSessionRepo.EXPECT().
			Update(ctx, stored.ID, mock.Anything).
			RunAndReturn(updateOn(stored, nil)).
			Once()

		// When: jumping to step 5
		session, err := manager.JumpTo(ctx, stored.ID, 5)

		// Then: an invalid step is reported with the unchanged session
		require.ErrorIs(t, err, apperror.ErrInvalidStep)
		assert.True(t, IsRejection(err))
		assert.Equal(t, 1, session.History.CurrentStep)
	})
}

func TestSessionManager_ToggleDisplayOrder(t *testing.T) {
	ctx := context.Background()

	// Given: a stored session
	manager, mockSessionRepo := newTestManager(t)
	stored := sessionWith(t, 0, 4)

	mockSessionRepo.EXPECT().
		Update(ctx, stored.ID, mock.Anything).
		RunAndReturn(updateOn(stored, nil)).
		Once()

	// When: toggling the order
	session, err := manager.ToggleDisplayOrder(ctx, stored.ID)

	// Then: only the display flag changed
	require.NoError(t, err)
	assert.True(t, session.History.ReversedDisplay)
	assert.Equal(t, 2, session.History.CurrentStep)
	assert.Equal(t, 3, session.History.Len())
}

func TestSessionManager_EndSession(t *testing.T) {
	ctx := context.Background()

	t.Run("Deletes the session", func(t *testing.T) {
		// Given: the repository deletes
		manager, mockSessionRepo := newTestManager(t)
		mockSessionRepo.EXPECT().
			DeleteByID(ctx, "game123").
			Return(nil).
			Once()

		// When: ending the session
		err := manager.EndSession(ctx, "game123")

		// Then: no error
		require.NoError(t, err)
	})

	t.Run("Missing session", func(t *testing.T) {
		// Given: the id is unknown
		manager, mockSessionRepo := newTestManager(t)
		mockSessionRepo.EXPECT().
			DeleteByID(ctx, "game123").
			Return(apperror.ErrSessionNotFound).
			Once()

		// When: ending the session
		err := manager.EndSession(ctx, "game123")

		// Then: not found is reported
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
	})
}
