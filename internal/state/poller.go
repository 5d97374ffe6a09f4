package state

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/leighmacdonald/bd-tui/internal/bdapi"
)

// NewPoller creates a poller that fetches /api/state every interval and
// pushes the resulting snapshots onto updates.
func NewPoller(client *bdapi.Client, interval time.Duration, updates chan<- Snapshot) *Poller {
	return &Poller{
		mu:       &sync.RWMutex{},
		client:   client,
		interval: interval,
		updates:  updates,
	}
}

// Poller periodically replaces the current snapshot with a fresh poll result.
// Ticks fetch concurrently, so a slow response can complete after a later
// tick already applied a newer snapshot. Every fetch is tagged with a
// monotonic sequence number and a response older than the last applied one is
// dropped instead of clobbering fresher state.
type Poller struct {
	mu       *sync.RWMutex
	client   *bdapi.Client
	interval time.Duration
	updates  chan<- Snapshot

	current    Snapshot
	nextSeq    uint64
	appliedSeq uint64
}

// Start runs the poll loop until the context is cancelled. The first fetch
// happens immediately rather than waiting out a full interval.
func (p *Poller) Start(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.fetch(ctx)

	for {
		select {
		case <-ticker.C:
			p.fetch(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// Snapshot returns the most recently applied snapshot.
func (p *Poller) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.current
}

func (p *Poller) fetch(ctx context.Context) {
	p.mu.Lock()
	p.nextSeq++
	seq := p.nextSeq
	p.mu.Unlock()

	go func() {
		resp, errResp := p.client.State(ctx)
		if errResp != nil {
			// Keep the previous snapshot, the next tick retries anyway.
			slog.Error("Failed to fetch state", slog.String("error", errResp.Error()))

			return
		}

		if snapshot, ok := p.apply(seq, FromAPI(resp)); ok {
			select {
			case p.updates <- snapshot:
			case <-ctx.Done():
			}
		}
	}()
}

// apply installs a snapshot unless a newer fetch already completed.
func (p *Poller) apply(seq uint64, snapshot Snapshot) (Snapshot, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if seq <= p.appliedSeq {
		slog.Debug("Dropping stale state response",
			slog.Uint64("seq", seq), slog.Uint64("applied", p.appliedSeq))

		return Snapshot{}, false
	}

	p.appliedSeq = seq
	p.current = snapshot

	return snapshot, true
}
