package motion

import (
	"sort"
	"sync"
)

// Viewport is an IntersectionSource computed from scroll snapshots. It
// measures each observed element against the visible band of the latest
// snapshot and re-reports on every scroll.
type Viewport struct {
	mu          sync.Mutex
	snap        Snapshot
	known       bool
	next        uint64
	entries     map[uint64]*viewEntry
	unsubscribe func()
}

type viewEntry struct {
	el    *Element
	inset float64
	fn    func(float64)
}

// NewViewport listens to t until Close.
func NewViewport(t *Tracker) *Viewport {
	v := &Viewport{entries: make(map[uint64]*viewEntry)}
	v.unsubscribe = t.Subscribe(v.update)
	return v
}

// Observe registers el. If a snapshot has already been seen, fn receives
// the element's current ratio before Observe returns.
func (v *Viewport) Observe(el *Element, inset float64, fn func(ratio float64)) func() {
	v.mu.Lock()
	v.next++
	id := v.next
	v.entries[id] = &viewEntry{el: el, inset: inset, fn: fn}
	snap, known := v.snap, v.known
	v.mu.Unlock()

	if known {
		fn(VisibleRatio(el, snap, inset))
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			v.mu.Lock()
			delete(v.entries, id)
			v.mu.Unlock()
		})
	}
}

func (v *Viewport) update(s Snapshot) {
	v.mu.Lock()
	v.snap = s
	v.known = true
	entries := v.sorted(func(*viewEntry) bool { return true })
	v.mu.Unlock()

	for _, e := range entries {
		e.fn(VisibleRatio(e.el, s, e.inset))
	}
}

// Report delivers a ratio measured by the host for every observation of
// the element with the given ID.
func (v *Viewport) Report(id string, ratio float64) {
	v.mu.Lock()
	entries := v.sorted(func(e *viewEntry) bool { return e.el.ID == id })
	v.mu.Unlock()

	for _, e := range entries {
		e.fn(ratio)
	}
}

// Observed is the number of live observations.
func (v *Viewport) Observed() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.entries)
}

// Close stops listening to the tracker.
func (v *Viewport) Close() {
	v.unsubscribe()
}

// sorted must be called with v.mu held.
func (v *Viewport) sorted(keep func(*viewEntry) bool) []*viewEntry {
	ids := make([]uint64, 0, len(v.entries))
	for id, e := range v.entries {
		if keep(e) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]*viewEntry, 0, len(ids))
	for _, id := range ids {
		out = append(out, v.entries[id])
	}
	return out
}

// VisibleRatio is the fraction of el inside [offset, offset+viewport-inset].
// A zero-height element counts as fully visible when its top is inside.
func VisibleRatio(el *Element, s Snapshot, inset float64) float64 {
	top := s.Offset
	bottom := s.Offset + s.ViewportHeight - inset
	if bottom <= top {
		return 0
	}
	if el.Height <= 0 {
		if el.Top >= top && el.Top <= bottom {
			return 1
		}
		return 0
	}
	visible := min(el.Top+el.Height, bottom) - max(el.Top, top)
	if visible <= 0 {
		return 0
	}
	return min(visible/el.Height, 1)
}
