package reconcile

import "smarthotel/internal/domain"

// DefaultTimeout is the countdown, in seconds, given to an order the first
// time it is seen.
const DefaultTimeout = 10

// Reconcile merges a fresh fetch into the previous views.
//
// Orders accepted on this device survive even when the fetch no longer
// returns them; they keep their previous position at the front. Every
// fetched order carries forward its local fields when it was seen before,
// otherwise it starts with defaultTimeout and both flags cleared. An order
// that is both accepted and fetched appears once, at its fetched position.
func Reconcile(previous []domain.OrderView, fresh []domain.Order, defaultTimeout int) []domain.OrderView {
	prior := make(map[int]domain.OrderView, len(previous))
	for _, view := range previous {
		prior[view.ID] = view
	}
	fetched := make(map[int]struct{}, len(fresh))
	for _, order := range fresh {
		fetched[order.ID] = struct{}{}
	}

	merged := make([]domain.OrderView, 0, len(previous)+len(fresh))
	for _, view := range previous {
		if !view.AcceptedLocally {
			continue
		}
		if _, ok := fetched[view.ID]; ok {
			continue
		}
		merged = append(merged, clone(view))
	}

	for _, order := range fresh {
		view := domain.OrderView{Order: order}
		if old, ok := prior[order.ID]; ok {
			view.TimeLeft = copyInt(old.TimeLeft)
			view.AcceptedLocally = old.AcceptedLocally
			view.CompletedLocally = old.CompletedLocally
		} else {
			view.TimeLeft = intPtr(defaultTimeout)
		}
		merged = append(merged, view)
	}
	return merged
}

// Tick advances every running countdown by one second. Only pending orders
// that were not accepted locally count down, and no countdown goes below 0.
// Reaching 0 has no further effect. The second result reports whether any
// countdown moved.
func Tick(views []domain.OrderView) ([]domain.OrderView, bool) {
	out := make([]domain.OrderView, len(views))
	changed := false
	for i, view := range views {
		out[i] = clone(view)
		if !counting(view) {
			continue
		}
		next := *view.TimeLeft - 1
		out[i].TimeLeft = &next
		changed = true
	}
	return out, changed
}

func counting(view domain.OrderView) bool {
	return view.Status == domain.StatusPending &&
		!view.AcceptedLocally &&
		view.TimeLeft != nil &&
		*view.TimeLeft > 0
}

func clone(view domain.OrderView) domain.OrderView {
	view.TimeLeft = copyInt(view.TimeLeft)
	return view
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	return intPtr(*p)
}

func intPtr(v int) *int {
	return &v
}
