package motion

import "testing"

func TestProgress(t *testing.T) {
	tests := []struct {
		name string
		snap Snapshot
		want float64
	}{
		{"top", Snapshot{Offset: 0, DocumentHeight: 3000, ViewportHeight: 1000}, 0},
		{"middle", Snapshot{Offset: 1000, DocumentHeight: 3000, ViewportHeight: 1000}, 0.5},
		{"bottom", Snapshot{Offset: 2000, DocumentHeight: 3000, ViewportHeight: 1000}, 1},
		{"overscroll", Snapshot{Offset: 2400, DocumentHeight: 3000, ViewportHeight: 1000}, 1},
		{"bounce above top", Snapshot{Offset: -40, DocumentHeight: 3000, ViewportHeight: 1000}, 0},
		{"nothing to scroll", Snapshot{Offset: 300, DocumentHeight: 800, ViewportHeight: 800}, 0},
		{"short document", Snapshot{Offset: 300, DocumentHeight: 500, ViewportHeight: 800}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Progress(tt.snap); got != tt.want {
				t.Errorf("Progress(%+v) = %v, want %v", tt.snap, got, tt.want)
			}
		})
	}
}

func TestNavbarScenario(t *testing.T) {
	tracker := NewTracker()
	nav := WatchNavbar(tracker)
	defer nav.Close()

	if got := nav.Value(); !got.IsVisible || !got.IsAtTop {
		t.Fatalf("Initial navbar = %+v, want visible at top", got)
	}

	steps := []struct {
		offset float64
		want   NavbarVisibility
	}{
		{0, NavbarVisibility{IsVisible: true, IsAtTop: true}},
		{150, NavbarVisibility{IsVisible: false, IsAtTop: false}},
		{140, NavbarVisibility{IsVisible: true, IsAtTop: false}},
		{160, NavbarVisibility{IsVisible: false, IsAtTop: false}},
		{80, NavbarVisibility{IsVisible: true, IsAtTop: false}},
		{90, NavbarVisibility{IsVisible: true, IsAtTop: false}},
		{20, NavbarVisibility{IsVisible: true, IsAtTop: true}},
	}
	for _, step := range steps {
		tracker.Publish(Snapshot{Offset: step.offset, DocumentHeight: 4000, ViewportHeight: 900})
		if got := nav.Value(); got != step.want {
			t.Errorf("At offset %v navbar = %+v, want %+v", step.offset, got, step.want)
		}
	}
}

func TestWatchersKeepIndependentHistory(t *testing.T) {
	tracker := NewTracker()
	early := WatchNavbar(tracker)
	defer early.Close()

	tracker.Publish(Snapshot{Offset: 500})
	tracker.Publish(Snapshot{Offset: 400})

	late := WatchNavbar(tracker)
	defer late.Close()

	tracker.Publish(Snapshot{Offset: 300})
	if !early.Value().IsVisible {
		t.Error("Early watcher saw 400 -> 300 and should show the navbar")
	}
	if late.Value().IsVisible {
		t.Error("Late watcher starts from offset 0, so 0 -> 300 should hide the navbar")
	}
}

func TestProgressAndParallaxWatchers(t *testing.T) {
	tracker := NewTracker()
	progress := WatchProgress(tracker)
	parallax := WatchParallax(tracker, DefaultParallaxSpeed)

	tracker.Publish(Snapshot{Offset: 250, DocumentHeight: 1500, ViewportHeight: 500})
	if got := progress.Value(); got != 0.25 {
		t.Errorf("Progress = %v, want 0.25", got)
	}
	if got := parallax.Value(); got != 125 {
		t.Errorf("Parallax = %v, want 125", got)
	}

	progress.Close()
	parallax.Close()
	tracker.Publish(Snapshot{Offset: 1000, DocumentHeight: 1500, ViewportHeight: 500})
	if got := progress.Value(); got != 0.25 {
		t.Errorf("Closed watcher changed to %v", got)
	}
	if tracker.Subscribers() != 0 {
		t.Errorf("Expected no subscribers, got %d", tracker.Subscribers())
	}
}

func TestUnsubscribeIsIdempotent(t *testing.T) {
	tracker := NewTracker()
	calls := 0
	unsubscribe := tracker.Subscribe(func(Snapshot) { calls++ })
	other := tracker.Subscribe(func(Snapshot) {})

	tracker.Publish(Snapshot{Offset: 10})
	unsubscribe()
	unsubscribe()
	tracker.Publish(Snapshot{Offset: 20})

	if calls != 1 {
		t.Errorf("Expected 1 call, got %d", calls)
	}
	if tracker.Subscribers() != 1 {
		t.Errorf("Second unsubscribe removed another subscriber: %d left", tracker.Subscribers())
	}
	other()
	if got := tracker.Current().Offset; got != 20 {
		t.Errorf("Current offset = %v, want 20", got)
	}
}
