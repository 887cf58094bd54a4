// Package poll runs the client's background refresh loops (notification
// polling, connectivity checks). Each subscription owns a goroutine that
// fires the callback immediately and then on every tick until it is stopped
// or its context is cancelled.
package poll

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/azhukov/campus-navigator/internal/logging"
)

// Func is a single poll step. Errors are logged and the loop keeps ticking;
// returning an error never cancels the subscription.
type Func func(ctx context.Context) error

// Subscription is a handle to one running poll loop.
type Subscription struct {
	ID     uuid.UUID
	name   string
	cancel context.CancelFunc
	done   chan struct{}
}

// Stop cancels the loop and waits for its goroutine to exit. Safe to call
// more than once.
func (s *Subscription) Stop() {
	s.cancel()
	<-s.done
}

// Poller tracks active subscriptions so they can be shut down together.
type Poller struct {
	log  logging.Logger
	mu   sync.Mutex
	subs map[uuid.UUID]*Subscription
}

func New(log logging.Logger) *Poller {
	if log == nil {
		log = logging.Nop()
	}
	return &Poller{log: log, subs: make(map[uuid.UUID]*Subscription)}
}

// Subscribe starts a loop that runs fn now and then every interval. The
// returned subscription stops when Stop is called, when StopAll is called,
// or when ctx is cancelled.
func (p *Poller) Subscribe(ctx context.Context, name string, interval time.Duration, fn Func) *Subscription {
	ctx, cancel := context.WithCancel(ctx)

	sub := &Subscription{
		ID:     uuid.New(),
		name:   name,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	p.mu.Lock()
	p.subs[sub.ID] = sub
	p.mu.Unlock()

	go func() {
		defer close(sub.done)
		defer func() {
			p.mu.Lock()
			delete(p.subs, sub.ID)
			p.mu.Unlock()
		}()

		p.step(ctx, sub, fn)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				p.step(ctx, sub, fn)
			case <-ctx.Done():
				return
			}
		}
	}()

	return sub
}

func (p *Poller) step(ctx context.Context, sub *Subscription, fn Func) {
	if ctx.Err() != nil {
		return
	}
	if err := fn(ctx); err != nil && ctx.Err() == nil {
		p.log.Warn(ctx, "poll step failed", "poll", sub.name, "id", sub.ID.String(), "error", err)
	}
}

// StopAll cancels every active subscription and waits for them to exit.
func (p *Poller) StopAll() {
	p.mu.Lock()
	active := make([]*Subscription, 0, len(p.subs))
	for _, s := range p.subs {
		active = append(active, s)
	}
	p.mu.Unlock()

	for _, s := range active {
		s.Stop()
	}
}
