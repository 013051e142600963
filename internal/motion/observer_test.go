package motion

import "testing"

func TestObserverLatchesOnceAtThreshold(t *testing.T) {
	tracker := NewTracker()
	viewport := NewViewport(tracker)
	defer viewport.Close()
	observer := NewObserver(viewport)

	h := observer.Attach(&Element{ID: "card"}, Override{Threshold: Threshold(0.2)})

	viewport.Report("card", 0.1)
	if st := observer.State(h); st.HasAnimated || st.IsVisible {
		t.Fatalf("Latched below threshold: %+v", st)
	}

	viewport.Report("card", 0.3)
	want := AnimationState{IsVisible: true, HasAnimated: true, Progress: 1}
	if st := observer.State(h); st != want {
		t.Fatalf("State after 0.3 = %+v, want %+v", st, want)
	}

	for _, ratio := range []float64{0, 0.05, 0.9, 0} {
		viewport.Report("card", ratio)
		if st := observer.State(h); st != want {
			t.Errorf("State changed after report %v: %+v", ratio, st)
		}
	}
}

func TestObserverIgnoresOtherElements(t *testing.T) {
	viewport := NewViewport(NewTracker())
	observer := NewObserver(viewport)

	a := observer.Attach(&Element{ID: "a"}, Override{})
	b := observer.Attach(&Element{ID: "b"}, Override{})

	viewport.Report("a", 1)
	if !observer.State(a).HasAnimated {
		t.Error("a should have latched")
	}
	if observer.State(b).HasAnimated {
		t.Error("b should not have latched")
	}
}

func TestObserverNilElementNeverLatches(t *testing.T) {
	viewport := NewViewport(NewTracker())
	observer := NewObserver(viewport)

	h := observer.Attach(nil, Override{})
	if observer.Subscriptions() != 0 || viewport.Observed() != 0 {
		t.Errorf("Nil element subscribed: observer=%d viewport=%d", observer.Subscriptions(), viewport.Observed())
	}
	if st := observer.State(h); st != (AnimationState{}) {
		t.Errorf("Nil element state = %+v", st)
	}
	if cfg, ok := observer.Config(h); !ok || cfg != FadeUp {
		t.Errorf("Config = %+v, %v; want FadeUp", cfg, ok)
	}
	observer.Release(h)
}

func TestObserverReleaseCancelsSubscription(t *testing.T) {
	viewport := NewViewport(NewTracker())
	observer := NewObserver(viewport)

	h := observer.Attach(&Element{ID: "hero"}, Override{})
	if viewport.Observed() != 1 || observer.Subscriptions() != 1 {
		t.Fatalf("Expected one subscription, got viewport=%d observer=%d", viewport.Observed(), observer.Subscriptions())
	}

	observer.Release(h)
	observer.Release(h)
	if viewport.Observed() != 0 {
		t.Errorf("Release leaked %d observations", viewport.Observed())
	}

	viewport.Report("hero", 1)
	if st := observer.State(h); st.HasAnimated {
		t.Errorf("Released handle latched: %+v", st)
	}
	if _, ok := observer.Config(h); ok {
		t.Error("Released handle still has a config")
	}
}

func TestObserverReattachStartsUnlatched(t *testing.T) {
	viewport := NewViewport(NewTracker())
	observer := NewObserver(viewport)
	el := &Element{ID: "about"}

	first := observer.Attach(el, Override{})
	viewport.Report("about", 1)
	observer.Release(first)

	second := observer.Attach(el, Override{})
	if observer.State(second).HasAnimated {
		t.Error("A new attachment must start unlatched")
	}
}

func TestObserverDrivenByScroll(t *testing.T) {
	tracker := NewTracker()
	viewport := NewViewport(tracker)
	defer viewport.Close()
	observer := NewObserver(viewport)

	// Visible band is [offset, offset+750] with an 800px viewport and the
	// 50px bottom margin.
	h := observer.Attach(&Element{ID: "projects", Top: 1000, Height: 200}, Override{Threshold: Threshold(0.2)})

	tracker.Publish(Snapshot{Offset: 0, DocumentHeight: 3000, ViewportHeight: 800})
	if observer.State(h).HasAnimated {
		t.Fatal("Latched while off screen")
	}

	// 1000..1030 visible: 0.15
	tracker.Publish(Snapshot{Offset: 280, DocumentHeight: 3000, ViewportHeight: 800})
	if observer.State(h).HasAnimated {
		t.Fatal("Latched below threshold")
	}

	// 1000..1050 visible: 0.25
	tracker.Publish(Snapshot{Offset: 300, DocumentHeight: 3000, ViewportHeight: 800})
	if !observer.State(h).HasAnimated {
		t.Fatal("Did not latch at 0.25")
	}

	tracker.Publish(Snapshot{Offset: 0, DocumentHeight: 3000, ViewportHeight: 800})
	if !observer.State(h).IsVisible {
		t.Error("Scrolling back up reverted the latch")
	}
}

func TestObserverLatchesOnAttachWhenAlreadyInView(t *testing.T) {
	tracker := NewTracker()
	viewport := NewViewport(tracker)
	defer viewport.Close()
	tracker.Publish(Snapshot{Offset: 0, DocumentHeight: 2000, ViewportHeight: 900})

	observer := NewObserver(viewport)
	h := observer.Attach(&Element{ID: "hero", Top: 0, Height: 600}, Override{})
	if !observer.State(h).HasAnimated {
		t.Error("Element in view at attach time should latch immediately")
	}
}

func TestVisibleRatio(t *testing.T) {
	snap := Snapshot{Offset: 100, ViewportHeight: 600}
	tests := []struct {
		name string
		el   Element
		want float64
	}{
		{"above", Element{Top: 0, Height: 50}, 0},
		{"fully inside", Element{Top: 200, Height: 100}, 1},
		{"straddles top", Element{Top: 50, Height: 100}, 0.5},
		{"cut by margin", Element{Top: 600, Height: 100}, 0.5},
		{"below", Element{Top: 700, Height: 100}, 0},
		{"zero height inside", Element{Top: 300}, 1},
		{"zero height below", Element{Top: 680}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VisibleRatio(&tt.el, snap, RootMarginBottom); got != tt.want {
				t.Errorf("VisibleRatio = %v, want %v", got, tt.want)
			}
		})
	}
}
