package session

import (
	"context"
	"testing"

	"github.com/amirhossein-jamali/cfgstore-diag/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/cfgstore-diag/internal/domain/error"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockNodeValidator struct {
	mock.Mock
}

func (m *mockNodeValidator) Validate(rep *domainerr.Reporter, info *domainerr.Info, node entity.Node) *domainerr.Info {
	args := m.Called(rep, info, node)
	record, _ := args.Get(0).(func(*domainerr.Reporter, *domainerr.Info) *domainerr.Info)
	if record == nil {
		return info
	}
	return record(rep, info)
}

func TestServiceSessions(t *testing.T) {
	ctx := context.Background()
	logger := &recordingLogger{}
	store := NewStore(domainerr.NewReporter(logger))
	svc := NewService(store, &mockNodeValidator{}, logger)

	id, err := svc.CreateSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())

	records, err := svc.PendingErrors(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, records)

	require.NoError(t, svc.CloseSession(ctx, id))
	assert.ErrorIs(t, svc.CloseSession(ctx, id), domainerr.ErrNotFound)

	_, err = svc.PendingErrors(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerr.ErrNotFound)
}

func TestServiceSetNode(t *testing.T) {
	ctx := context.Background()
	node := entity.Node{Path: "/if/mtu", Value: "99999"}

	t.Run("Accepted node", func(t *testing.T) {
		logger := &recordingLogger{}
		validator := &mockNodeValidator{}
		svc := NewService(NewStore(domainerr.NewReporter(logger)), validator, logger)
		id, _ := svc.CreateSession(ctx)

		validator.On("Validate", mock.Anything, mock.Anything, node).Return(nil).Once()

		code, err := svc.SetNode(ctx, id, node)

		require.NoError(t, err)
		assert.Equal(t, domainerr.CodeOK, code)
		records, _ := svc.PendingErrors(ctx, id)
		assert.Empty(t, records)
		validator.AssertExpectations(t)
	})

	t.Run("Rejected node leaves pending errors", func(t *testing.T) {
		logger := &recordingLogger{}
		validator := &mockNodeValidator{}
		svc := NewService(NewStore(domainerr.NewReporter(logger)), validator, logger)
		id, _ := svc.CreateSession(ctx)

		validator.On("Validate", mock.Anything, mock.Anything, node).Return(
			func(rep *domainerr.Reporter, info *domainerr.Info) *domainerr.Info {
				info = rep.New(info, domainerr.CodeValidationFailed, node.Path, "Value out of range.")
				return rep.New(info, domainerr.CodeInternal, "", "unexpected state")
			}).Once()

		code, err := svc.SetNode(ctx, id, node)

		require.NoError(t, err)
		assert.Equal(t, domainerr.CodeValidationFailed, code)
		records, _ := svc.PendingErrors(ctx, id)
		require.Len(t, records, 2)
		assert.Equal(t, "/if/mtu", records[0].Path())
		validator.AssertExpectations(t)
	})

	t.Run("Empty path is an invalid argument", func(t *testing.T) {
		logger := &recordingLogger{}
		validator := &mockNodeValidator{}
		svc := NewService(NewStore(domainerr.NewReporter(logger)), validator, logger)
		id, _ := svc.CreateSession(ctx)

		code, err := svc.SetNode(ctx, id, entity.Node{Value: "1"})

		require.NoError(t, err)
		assert.Equal(t, domainerr.CodeInvalArg, code)
		validator.AssertNotCalled(t, "Validate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unknown session", func(t *testing.T) {
		logger := &recordingLogger{}
		svc := NewService(NewStore(domainerr.NewReporter(logger)), &mockNodeValidator{}, logger)

		code, err := svc.SetNode(ctx, uuid.New(), node)

		assert.ErrorIs(t, err, domainerr.ErrNotFound)
		assert.Equal(t, domainerr.CodeNotFound, code)
	})
}
