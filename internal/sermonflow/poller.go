// Package sermonflow implements the client-side status polling loop for
// sermon note processing: periodic re-fetch while a record is in flight,
// stopping at the terminal status with a single notification.
package sermonflow

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"kosmos-backend/internal/models"
)

// DefaultInterval is the re-fetch period while a record is non-terminal.
const DefaultInterval = 2 * time.Second

// FetchFunc returns the record's current status.
type FetchFunc func(ctx context.Context, noteID uuid.UUID) (string, error)

// NotifyFunc surfaces a terminal transition to the user.
type NotifyFunc func(noteID uuid.UUID, status string)

// Poller re-fetches a tracked record on a fixed interval until it reaches
// COMPLETED or FAILED. The terminal notification fires exactly once per
// record, even when the same record is watched again. Nothing polls unless a
// record is being watched.
type Poller struct {
	interval time.Duration
	fetch    FetchFunc
	notify   NotifyFunc

	mu       sync.Mutex
	notified map[uuid.UUID]bool
}

func NewPoller(interval time.Duration, fetch FetchFunc, notify NotifyFunc) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{
		interval: interval,
		fetch:    fetch,
		notify:   notify,
		notified: make(map[uuid.UUID]bool),
	}
}

// Watch fetches the record immediately, then re-fetches every interval until
// the status is terminal or the context is cancelled. Returns the terminal
// status. A fetch error ends the watch; there are no retries.
func (p *Poller) Watch(ctx context.Context, noteID uuid.UUID) (string, error) {
	status, err := p.fetch(ctx, noteID)
	if err != nil {
		return "", err
	}
	if isTerminal(status) {
		p.notifyOnce(noteID, status)
		return status, nil
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-ticker.C:
			status, err := p.fetch(ctx, noteID)
			if err != nil {
				return "", err
			}
			if isTerminal(status) {
				p.notifyOnce(noteID, status)
				return status, nil
			}
		}
	}
}

// notifyOnce fires the terminal notification at most once per record.
func (p *Poller) notifyOnce(noteID uuid.UUID, status string) {
	p.mu.Lock()
	already := p.notified[noteID]
	p.notified[noteID] = true
	p.mu.Unlock()

	if !already && p.notify != nil {
		p.notify(noteID, status)
	}
}

func isTerminal(status string) bool {
	return status == models.SermonStatusCompleted || status == models.SermonStatusFailed
}
