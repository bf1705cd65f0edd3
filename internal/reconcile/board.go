package reconcile

import (
	"sync"

	"smarthotel/internal/domain"
)

// Board is the order queue of one screen. The fetch job, the countdown job
// and user actions all go through the same mutex.
type Board struct {
	mu             sync.Mutex
	views          []domain.OrderView
	defaultTimeout int
	observers      []func([]domain.OrderView)
}

func NewBoard(defaultTimeout int) *Board {
	if defaultTimeout <= 0 {
		defaultTimeout = DefaultTimeout
	}
	return &Board{defaultTimeout: defaultTimeout}
}

// OnChange registers fn to receive a snapshot after every change.
// Observers are called outside the lock.
func (b *Board) OnChange(fn func([]domain.OrderView)) {
	b.mu.Lock()
	b.observers = append(b.observers, fn)
	b.mu.Unlock()
}

func (b *Board) Reconcile(fresh []domain.Order) []domain.OrderView {
	b.mu.Lock()
	b.views = Reconcile(b.views, fresh, b.defaultTimeout)
	snapshot, observers := b.snapshotLocked()
	b.mu.Unlock()

	notify(observers, snapshot)
	return snapshot
}

func (b *Board) Tick() bool {
	b.mu.Lock()
	views, changed := Tick(b.views)
	if !changed {
		b.mu.Unlock()
		return false
	}
	b.views = views
	snapshot, observers := b.snapshotLocked()
	b.mu.Unlock()

	notify(observers, snapshot)
	return true
}

// MarkAccepted stops the countdown of orderID for good.
func (b *Board) MarkAccepted(orderID int) bool {
	return b.update(orderID, func(view *domain.OrderView) {
		view.TimeLeft = nil
		view.AcceptedLocally = true
		view.CompletedLocally = false
	})
}

func (b *Board) MarkCompleted(orderID int) bool {
	return b.update(orderID, func(view *domain.OrderView) {
		view.CompletedLocally = true
	})
}

func (b *Board) Remove(orderID int) bool {
	b.mu.Lock()
	idx := b.indexLocked(orderID)
	if idx < 0 {
		b.mu.Unlock()
		return false
	}
	b.views = append(b.views[:idx:idx], b.views[idx+1:]...)
	snapshot, observers := b.snapshotLocked()
	b.mu.Unlock()

	notify(observers, snapshot)
	return true
}

func (b *Board) Get(orderID int) (domain.OrderView, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	idx := b.indexLocked(orderID)
	if idx < 0 {
		return domain.OrderView{}, false
	}
	return clone(b.views[idx]), true
}

func (b *Board) Snapshot() []domain.OrderView {
	b.mu.Lock()
	defer b.mu.Unlock()
	snapshot, _ := b.snapshotLocked()
	return snapshot
}

func (b *Board) update(orderID int, apply func(*domain.OrderView)) bool {
	b.mu.Lock()
	idx := b.indexLocked(orderID)
	if idx < 0 {
		b.mu.Unlock()
		return false
	}
	apply(&b.views[idx])
	snapshot, observers := b.snapshotLocked()
	b.mu.Unlock()

	notify(observers, snapshot)
	return true
}

func (b *Board) indexLocked(orderID int) int {
	for i, view := range b.views {
		if view.ID == orderID {
			return i
		}
	}
	return -1
}

func (b *Board) snapshotLocked() ([]domain.OrderView, []func([]domain.OrderView)) {
	snapshot := make([]domain.OrderView, len(b.views))
	for i, view := range b.views {
		snapshot[i] = clone(view)
	}
	observers := make([]func([]domain.OrderView), len(b.observers))
	copy(observers, b.observers)
	return snapshot, observers
}

func notify(observers []func([]domain.OrderView), snapshot []domain.OrderView) {
	for _, fn := range observers {
		fn(snapshot)
	}
}
