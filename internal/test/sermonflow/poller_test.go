package sermonflow_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"kosmos-backend/internal/models"
	"kosmos-backend/internal/sermonflow"
)

// sequenceFetch returns the given statuses in order, repeating the last one.
func sequenceFetch(statuses ...string) sermonflow.FetchFunc {
	var calls int32
	return func(ctx context.Context, noteID uuid.UUID) (string, error) {
		n := atomic.AddInt32(&calls, 1)
		if int(n) > len(statuses) {
			return statuses[len(statuses)-1], nil
		}
		return statuses[n-1], nil
	}
}

func TestWatch_PollsUntilTerminal(t *testing.T) {
	noteID := uuid.New()
	var notifications int32

	poller := sermonflow.NewPoller(time.Millisecond,
		sequenceFetch(models.SermonStatusProcessing, models.SermonStatusProcessing, models.SermonStatusCompleted),
		func(id uuid.UUID, status string) {
			atomic.AddInt32(&notifications, 1)
			assert.Equal(t, noteID, id)
			assert.Equal(t, models.SermonStatusCompleted, status)
		})

	status, err := poller.Watch(context.Background(), noteID)
	assert.NoError(t, err)
	assert.Equal(t, models.SermonStatusCompleted, status)
	assert.Equal(t, int32(1), atomic.LoadInt32(&notifications))
}

func TestWatch_ImmediateTerminal(t *testing.T) {
	noteID := uuid.New()
	var notifications int32

	poller := sermonflow.NewPoller(time.Millisecond,
		sequenceFetch(models.SermonStatusFailed),
		func(id uuid.UUID, status string) {
			atomic.AddInt32(&notifications, 1)
		})

	status, err := poller.Watch(context.Background(), noteID)
	assert.NoError(t, err)
	assert.Equal(t, models.SermonStatusFailed, status)
	assert.Equal(t, int32(1), atomic.LoadInt32(&notifications))
}

func TestWatch_NotifiesOncePerRecord(t *testing.T) {
	noteID := uuid.New()
	var notifications int32

	poller := sermonflow.NewPoller(time.Millisecond,
		sequenceFetch(models.SermonStatusCompleted),
		func(id uuid.UUID, status string) {
			atomic.AddInt32(&notifications, 1)
		})

	// A second watch on the same record sees the terminal status again but
	// must not re-surface the notification.
	_, err := poller.Watch(context.Background(), noteID)
	assert.NoError(t, err)
	_, err = poller.Watch(context.Background(), noteID)
	assert.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(&notifications))
}

func TestWatch_DistinctRecordsNotifySeparately(t *testing.T) {
	var notifications int32

	poller := sermonflow.NewPoller(time.Millisecond,
		sequenceFetch(models.SermonStatusCompleted),
		func(id uuid.UUID, status string) {
			atomic.AddInt32(&notifications, 1)
		})

	_, err := poller.Watch(context.Background(), uuid.New())
	assert.NoError(t, err)
	_, err = poller.Watch(context.Background(), uuid.New())
	assert.NoError(t, err)

	assert.Equal(t, int32(2), atomic.LoadInt32(&notifications))
}

func TestWatch_ContextCancelStopsPolling(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	poller := sermonflow.NewPoller(time.Millisecond,
		func(ctx context.Context, noteID uuid.UUID) (string, error) {
			return models.SermonStatusProcessing, nil
		},
		func(id uuid.UUID, status string) {
			t.Fatal("no notification without a terminal transition")
		})

	done := make(chan error, 1)
	go func() {
		_, err := poller.Watch(ctx, uuid.New())
		done <- err
	}()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("watch did not stop after cancellation")
	}
}

func TestWatch_FetchErrorEndsWatch(t *testing.T) {
	fetchErr := errors.New("record fetch failed")

	poller := sermonflow.NewPoller(time.Millisecond,
		func(ctx context.Context, noteID uuid.UUID) (string, error) {
			return "", fetchErr
		},
		func(id uuid.UUID, status string) {
			t.Fatal("no notification on fetch error")
		})

	_, err := poller.Watch(context.Background(), uuid.New())
	assert.ErrorIs(t, err, fetchErr)
}
