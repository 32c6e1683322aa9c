// Package bridge is the reactive "something changed, re-query" channel
// between the embedded store and its readers. Notifications carry no
// payload; subscribers re-read whatever they display.
package bridge

import (
	"context"
	"slices"
	"sync"

	"github.com/dmitrijs2005/wellsync/internal/logging"
)

// Bridge fans change notifications out to subscribers. The zero value is
// not usable; construct with New.
type Bridge struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[uint64]func()
	logger logging.Logger
}

func New(l logging.Logger) *Bridge {
	if l == nil {
		l = logging.NewDiscardLogger()
	}
	return &Bridge{subs: make(map[uint64]func()), logger: l.With("module", "bridge")}
}

// Subscribe registers fn and returns a function that removes it. The
// returned function is safe to call more than once.
func (b *Bridge) Subscribe(fn func()) (unsubscribe func()) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = fn
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
		})
	}
}

// Notify synchronously invokes every callback registered at the time of the
// call, in subscription order. A panicking callback is logged and does not
// prevent the others from running.
func (b *Bridge) Notify() {
	b.mu.Lock()
	ids := make([]uint64, 0, len(b.subs))
	for id := range b.subs {
		ids = append(ids, id)
	}
	snapshot := make([]func(), 0, len(ids))
	slices.Sort(ids)
	for _, id := range ids {
		snapshot = append(snapshot, b.subs[id])
	}
	b.mu.Unlock()

	for _, fn := range snapshot {
		b.invoke(fn)
	}
}

// Len reports the number of active subscriptions.
func (b *Bridge) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

func (b *Bridge) invoke(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error(context.Background(), "subscriber panicked", "panic", r)
		}
	}()
	fn()
}
