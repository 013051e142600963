package view

import (
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/motion"
)

// Session is one mounted page: a scroll tracker feeding the navbar and
// progress watchers and a viewport, an observer latching every block, and
// the hero's entrance timer.
type Session struct {
	content   *content.Portfolio
	layout    Layout
	viewport  float64
	tracker   *motion.Tracker
	intersect *motion.Viewport
	observer  *motion.Observer
	scheduler *motion.Scheduler
	navbar    *motion.Watcher[motion.NavbarVisibility]
	progress  *motion.Watcher[float64]
	handles   map[string]motion.Handle
	hero      motion.EntranceHandle
}

// NewSession mounts p in a viewport of the given height and delivers the
// initial snapshot at offset 0.
func NewSession(p *content.Portfolio, viewportHeight float64, clock motion.Clock) *Session {
	tracker := motion.NewTracker()
	intersect := motion.NewViewport(tracker)
	s := &Session{
		content:   p,
		layout:    EstimateLayout(p, viewportHeight),
		viewport:  viewportHeight,
		tracker:   tracker,
		intersect: intersect,
		observer:  motion.NewObserver(intersect),
		scheduler: motion.NewScheduler(clock),
		navbar:    motion.WatchNavbar(tracker),
		progress:  motion.WatchProgress(tracker),
		handles:   make(map[string]motion.Handle),
	}

	for _, b := range Blocks(p) {
		s.handles[b.ID] = s.observer.Attach(s.layout.Elements[b.ID], b.Override)
	}
	s.hero = s.scheduler.Attach(HeroRevealDelay)

	s.ScrollTo(0)
	return s
}

func (s *Session) snapshot(offset float64) motion.Snapshot {
	return motion.Snapshot{
		Offset:         offset,
		DocumentHeight: s.layout.DocumentHeight,
		ViewportHeight: s.viewport,
	}
}

// ScrollTo publishes a single scroll notification.
func (s *Session) ScrollTo(offset float64) {
	s.tracker.Publish(s.snapshot(offset))
}

// ScrollPath scrolls from the current offset to target in steps no larger
// than step, so blocks passed on the way get a chance to latch. Like a
// browser, it stops at the end of the document.
func (s *Session) ScrollPath(target, step float64) {
	target = max(0, min(target, s.layout.DocumentHeight-s.viewport))
	if step <= 0 {
		s.ScrollTo(target)
		return
	}
	cur := s.tracker.Current().Offset
	for cur != target {
		switch {
		case target > cur:
			cur = min(cur+step, target)
		default:
			cur = max(cur-step, target)
		}
		s.ScrollTo(cur)
	}
}

// State reads the current animation state for Build.
func (s *Session) State() State {
	return State{
		Observed: func(id string) motion.AnimationState {
			h, ok := s.handles[id]
			if !ok {
				return motion.AnimationState{}
			}
			return s.observer.State(h)
		},
		Navbar:   s.navbar.Value(),
		Progress: s.progress.Value(),
		Hero: HeroEntrance{
			Loaded:   s.scheduler.Entered(s.hero),
			Style:    s.scheduler.Style(s.hero),
			Progress: s.scheduler.Progress(s.hero),
		},
	}
}

// Page builds the view model for the session's current state.
func (s *Session) Page(year int) Page {
	return Build(s.content, s.State(), year)
}

func (s *Session) DocumentHeight() float64 {
	return s.layout.DocumentHeight
}

// Close releases every observation, cancels the hero timer and detaches
// from the tracker.
func (s *Session) Close() {
	for id, h := range s.handles {
		s.observer.Release(h)
		delete(s.handles, id)
	}
	s.scheduler.Detach(s.hero)
	s.navbar.Close()
	s.progress.Close()
	s.intersect.Close()
}
