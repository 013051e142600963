package motion

import (
	"fmt"
	"sync"
	"time"
)

const (
	EntranceDuration        = 600 * time.Millisecond
	EntranceDistance        = 20
	EntranceEasing   Easing = EaseOut
)

// EntranceStyle is what the view applies to a mount-animated element.
type EntranceStyle struct {
	Opacity    float64 `json:"opacity"`
	Transform  string  `json:"transform"`
	Transition string  `json:"transition"`
}

// StyleFor derives the style of an element revealed after delay.
func StyleFor(entered bool, delay time.Duration) EntranceStyle {
	timing := fmt.Sprintf("%.1fs %s %dms", EntranceDuration.Seconds(), EntranceEasing.CSS(), delay.Milliseconds())
	st := EntranceStyle{
		Opacity:    0,
		Transform:  fmt.Sprintf("translateY(%dpx)", EntranceDistance),
		Transition: "opacity " + timing + ", transform " + timing,
	}
	if entered {
		st.Opacity = 1
		st.Transform = "translateY(0)"
	}
	return st
}

// EntranceHandle identifies one scheduled reveal.
type EntranceHandle uint64

type entrance struct {
	delay     time.Duration
	entered   bool
	enteredAt time.Time
	timer     Timer
	detached  bool
}

// Scheduler reveals elements a fixed delay after they are attached,
// regardless of scroll position.
type Scheduler struct {
	mu      sync.Mutex
	clock   Clock
	next    EntranceHandle
	entries map[EntranceHandle]*entrance
}

func NewScheduler(clock Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Scheduler{clock: clock, entries: make(map[EntranceHandle]*entrance)}
}

// Attach schedules a one-shot reveal after delay.
func (s *Scheduler) Attach(delay time.Duration) EntranceHandle {
	if delay < 0 {
		delay = 0
	}
	e := &entrance{delay: delay}

	s.mu.Lock()
	s.next++
	h := s.next
	s.entries[h] = e
	s.mu.Unlock()

	t := s.clock.AfterFunc(delay, func() { s.fire(e) })

	s.mu.Lock()
	if e.detached {
		s.mu.Unlock()
		t.Stop()
		return h
	}
	e.timer = t
	s.mu.Unlock()
	return h
}

// fire runs on the clock's goroutine; a detach that won the lock first
// turns it into a no-op.
func (s *Scheduler) fire(e *entrance) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.detached || e.entered {
		return
	}
	e.entered = true
	e.enteredAt = s.clock.Now()
}

// Detach cancels a pending reveal. No state changes after Detach returns.
func (s *Scheduler) Detach(h EntranceHandle) {
	s.mu.Lock()
	e, ok := s.entries[h]
	if !ok {
		s.mu.Unlock()
		return
	}
	delete(s.entries, h)
	e.detached = true
	t := e.timer
	s.mu.Unlock()

	if t != nil {
		t.Stop()
	}
}

// Reattach drops h and schedules a fresh reveal in its place.
func (s *Scheduler) Reattach(h EntranceHandle, delay time.Duration) EntranceHandle {
	s.Detach(h)
	return s.Attach(delay)
}

// Entered reports whether h's timer has fired.
func (s *Scheduler) Entered(h EntranceHandle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[h]
	return ok && e.entered
}

// Style returns h's current style. Unknown handles get the hidden style
// with no delay.
func (s *Scheduler) Style(h EntranceHandle) EntranceStyle {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[h]
	if !ok {
		return StyleFor(false, 0)
	}
	return StyleFor(e.entered, e.delay)
}

// Progress is how far h's reveal transition has run, eased, in [0,1]. The
// transition itself waits the element's delay once more after the timer
// fires, matching the transition-delay in its style.
func (s *Scheduler) Progress(h EntranceHandle) float64 {
	s.mu.Lock()
	e, ok := s.entries[h]
	if !ok || !e.entered {
		s.mu.Unlock()
		return 0
	}
	start := e.enteredAt.Add(e.delay)
	s.mu.Unlock()

	elapsed := s.clock.Now().Sub(start)
	return EntranceEasing.Sample(float64(elapsed) / float64(EntranceDuration))
}

// Pending is the number of attached, not yet revealed elements.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, e := range s.entries {
		if !e.entered {
			n++
		}
	}
	return n
}
