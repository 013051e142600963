package motion

import "sync"

// RootMarginBottom shrinks the viewport's bottom edge so elements trigger
// slightly before they reach it.
const RootMarginBottom = 50

// AnimationState is the latch of one observed element.
type AnimationState struct {
	IsVisible   bool    `json:"isVisible"`
	HasAnimated bool    `json:"hasAnimated"`
	Progress    float64 `json:"progress"`
}

var latched = AnimationState{IsVisible: true, HasAnimated: true, Progress: 1}

// Element is a handle to a block on the page, in document coordinates.
type Element struct {
	ID     string
	Top    float64
	Height float64
}

// IntersectionSource reports the visible fraction of an element each time
// it changes. The bottom of the viewport is pulled in by inset pixels.
type IntersectionSource interface {
	Observe(el *Element, inset float64, fn func(ratio float64)) (cancel func())
}

// Handle identifies one attachment in an Observer.
type Handle uint64

type observation struct {
	el       *Element
	cfg      AnimationConfig
	state    AnimationState
	cancel   func()
	released bool
}

// Observer owns the AnimationState of every attached element. Each
// element latches visible the first time enough of it is in view and
// stays latched until released.
type Observer struct {
	mu     sync.Mutex
	src    IntersectionSource
	next   Handle
	active map[Handle]*observation
}

func NewObserver(src IntersectionSource) *Observer {
	return &Observer{src: src, active: make(map[Handle]*observation)}
}

// Attach starts observing el with override merged over FadeUp. A nil
// element yields a handle that never latches.
func (o *Observer) Attach(el *Element, override Override) Handle {
	obs := &observation{el: el, cfg: Merge(FadeUp, override)}

	o.mu.Lock()
	o.next++
	h := o.next
	o.active[h] = obs
	o.mu.Unlock()

	if el == nil || o.src == nil {
		return h
	}

	cancel := o.src.Observe(el, RootMarginBottom, func(ratio float64) {
		o.report(obs, ratio)
	})

	o.mu.Lock()
	if obs.released {
		o.mu.Unlock()
		cancel()
		return h
	}
	obs.cancel = cancel
	o.mu.Unlock()
	return h
}

func (o *Observer) report(obs *observation, ratio float64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if obs.released || obs.state.HasAnimated {
		return
	}
	if ratio > 0 && ratio >= obs.cfg.Threshold {
		obs.state = latched
	}
}

// State returns the current state of h. Released or unknown handles read
// as the zero state.
func (o *Observer) State(h Handle) AnimationState {
	o.mu.Lock()
	defer o.mu.Unlock()
	if obs, ok := o.active[h]; ok {
		return obs.state
	}
	return AnimationState{}
}

// Config returns the merged configuration of h.
func (o *Observer) Config(h Handle) (AnimationConfig, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	obs, ok := o.active[h]
	if !ok {
		return AnimationConfig{}, false
	}
	return obs.cfg, true
}

// Release stops observing h. The intersection subscription is cancelled
// before Release returns. Releasing twice is a no-op.
func (o *Observer) Release(h Handle) {
	o.mu.Lock()
	obs, ok := o.active[h]
	if !ok {
		o.mu.Unlock()
		return
	}
	delete(o.active, h)
	obs.released = true
	cancel := obs.cancel
	obs.cancel = nil
	o.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Subscriptions counts attachments holding a live intersection subscription.
func (o *Observer) Subscriptions() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	n := 0
	for _, obs := range o.active {
		if obs.cancel != nil {
			n++
		}
	}
	return n
}
