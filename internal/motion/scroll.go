package motion

import (
	"sort"
	"sync"
)

const (
	// AtTopOffset is the offset below which the page counts as at the top.
	AtTopOffset = 50
	// NavbarRevealOffset is the offset below which the navbar always shows.
	NavbarRevealOffset = 100
	// DefaultParallaxSpeed is the parallax factor used when none is given.
	DefaultParallaxSpeed = 0.5
)

// Snapshot is one scroll notification.
type Snapshot struct {
	Offset         float64 `json:"offset"`
	DocumentHeight float64 `json:"documentHeight"`
	ViewportHeight float64 `json:"viewportHeight"`
}

// NavbarVisibility is recomputed on every scroll; it is not latched.
type NavbarVisibility struct {
	IsVisible bool `json:"isVisible"`
	IsAtTop   bool `json:"isAtTop"`
}

// Progress is how far through the scrollable area s is, in [0,1]. A page
// with nothing to scroll reports 0.
func Progress(s Snapshot) float64 {
	scrollable := s.DocumentHeight - s.ViewportHeight
	if scrollable <= 0 {
		return 0
	}
	p := s.Offset / scrollable
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// Navbar shows the bar while scrolling up or while near the top, and hides
// it on downward scrolls past NavbarRevealOffset.
func Navbar(prev, cur Snapshot) NavbarVisibility {
	return NavbarVisibility{
		IsVisible: cur.Offset < prev.Offset || cur.Offset < NavbarRevealOffset,
		IsAtTop:   cur.Offset < AtTopOffset,
	}
}

// ParallaxOffset is the vertical translation of a layer moving at speed
// relative to the page.
func ParallaxOffset(s Snapshot, speed float64) float64 {
	return s.Offset * speed
}

// Tracker fans scroll snapshots out to its subscribers.
type Tracker struct {
	mu      sync.Mutex
	current Snapshot
	nextID  uint64
	subs    map[uint64]func(Snapshot)
}

func NewTracker() *Tracker {
	return &Tracker{subs: make(map[uint64]func(Snapshot))}
}

// Subscribe registers fn for every later snapshot. The returned function
// removes it and may be called more than once.
func (t *Tracker) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	t.mu.Lock()
	t.nextID++
	id := t.nextID
	t.subs[id] = fn
	t.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			t.mu.Lock()
			delete(t.subs, id)
			t.mu.Unlock()
		})
	}
}

// Publish records s as current and delivers it to subscribers in
// subscription order.
func (t *Tracker) Publish(s Snapshot) {
	t.mu.Lock()
	t.current = s
	ids := make([]uint64, 0, len(t.subs))
	for id := range t.subs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	fns := make([]func(Snapshot), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, t.subs[id])
	}
	t.mu.Unlock()

	for _, fn := range fns {
		fn(s)
	}
}

// Current returns the last published snapshot.
func (t *Tracker) Current() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// Subscribers is the number of live subscriptions.
func (t *Tracker) Subscribers() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.subs)
}

// Watcher keeps one subscriber's derived value. Its previous snapshot
// starts at offset 0 and belongs to it alone.
type Watcher[T any] struct {
	mu          sync.Mutex
	prev        Snapshot
	value       T
	reduce      func(prev, cur Snapshot) T
	unsubscribe func()
}

// Watch subscribes a reducer to t.
func Watch[T any](t *Tracker, initial T, reduce func(prev, cur Snapshot) T) *Watcher[T] {
	w := &Watcher[T]{value: initial, reduce: reduce}
	w.unsubscribe = t.Subscribe(w.update)
	return w
}

func (w *Watcher[T]) update(cur Snapshot) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.value = w.reduce(w.prev, cur)
	w.prev = cur
}

// Value returns the latest derived value.
func (w *Watcher[T]) Value() T {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.value
}

// Close detaches the watcher from its tracker.
func (w *Watcher[T]) Close() {
	w.unsubscribe()
}

func WatchNavbar(t *Tracker) *Watcher[NavbarVisibility] {
	return Watch(t, NavbarVisibility{IsVisible: true, IsAtTop: true}, Navbar)
}

func WatchProgress(t *Tracker) *Watcher[float64] {
	return Watch(t, 0, func(_, cur Snapshot) float64 { return Progress(cur) })
}

func WatchParallax(t *Tracker, speed float64) *Watcher[float64] {
	return Watch(t, 0, func(_, cur Snapshot) float64 { return ParallaxOffset(cur, speed) })
}
