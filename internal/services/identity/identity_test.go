package identity

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserChecker struct {
	mock.Mock
}

func (m *MockUserChecker) UserExists(ctx context.Context, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGateway_Exists_CachesPositive(t *testing.T) {
	checker := new(MockUserChecker)
	gw := NewGateway(discardLogger(), checker, time.Minute)

	userID := uuid.New()
	checker.On("UserExists", mock.Anything, userID).Return(true, nil).Once()

	for i := 0; i < 3; i++ {
		exists, err := gw.Exists(context.Background(), userID)
		require.NoError(t, err)
		assert.True(t, exists)
	}

	checker.AssertExpectations(t)
}

func TestGateway_Exists_DoesNotCacheNegative(t *testing.T) {
	checker := new(MockUserChecker)
	gw := NewGateway(discardLogger(), checker, time.Minute)

	userID := uuid.New()
	checker.On("UserExists", mock.Anything, userID).Return(false, nil).Twice()

	exists, err := gw.Exists(context.Background(), userID)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = gw.Exists(context.Background(), userID)
	require.NoError(t, err)
	assert.False(t, exists)

	checker.AssertExpectations(t)
}

func TestGateway_Exists_PropagatesError(t *testing.T) {
	checker := new(MockUserChecker)
	gw := NewGateway(discardLogger(), checker, time.Minute)

	userID := uuid.New()
	storageErr := errors.New("connection reset")
	checker.On("UserExists", mock.Anything, userID).Return(false, storageErr)

	exists, err := gw.Exists(context.Background(), userID)
	require.Error(t, err)
	assert.ErrorIs(t, err, storageErr)
	assert.False(t, exists)
}
