// Package motion holds the scroll-driven animation state used by the
// portfolio: named presets, per-element visibility latches, scroll-derived
// navbar and progress signals, and mount-time entrance timers.
package motion

import (
	"fmt"
	"time"
)

// Direction is the axis an element slides in from.
type Direction string

const (
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
	DirectionFade  Direction = "fade"
)

// AnimationConfig describes a scroll-triggered entrance animation.
type AnimationConfig struct {
	Threshold float64 // visible fraction that triggers, 0-1
	Duration  time.Duration
	Delay     time.Duration
	Easing    Easing
	Direction Direction
	Distance  float64 // pixels for slide animations
}

// StaggerConfig sequences the entrance of a group of items.
type StaggerConfig struct {
	StaggerDelay time.Duration
	BaseDelay    time.Duration
	Duration     time.Duration
	Easing       Easing
}

// HoverConfig describes a hover emphasis on buttons and icons.
type HoverConfig struct {
	Scale      float64
	Opacity    float64
	Duration   time.Duration
	GlowColor  string
	GlowSpread float64
}

var (
	FadeUp = AnimationConfig{
		Threshold: 0.1,
		Duration:  600 * time.Millisecond,
		Easing:    EaseOut,
		Direction: DirectionUp,
		Distance:  30,
	}

	FadeIn = AnimationConfig{
		Threshold: 0.1,
		Duration:  500 * time.Millisecond,
		Easing:    EaseOut,
		Direction: DirectionFade,
	}

	StaggerDefault = StaggerConfig{
		StaggerDelay: 100 * time.Millisecond,
		BaseDelay:    200 * time.Millisecond,
		Duration:     500 * time.Millisecond,
		Easing:       EaseOut,
	}

	HoverButton = HoverConfig{
		Scale:      1.02,
		Opacity:    1,
		Duration:   200 * time.Millisecond,
		GlowColor:  "rgba(255, 255, 255, 0.1)",
		GlowSpread: 20,
	}

	HoverIcon = HoverConfig{
		Scale:    1.1,
		Opacity:  0.8,
		Duration: 150 * time.Millisecond,
	}
)

// PresetTable is a snapshot of every named preset, keyed the way the
// client refers to them.
type PresetTable struct {
	FadeUp         AnimationConfig `json:"fadeUp"`
	FadeIn         AnimationConfig `json:"fadeIn"`
	StaggerDefault StaggerConfig   `json:"staggerDefault"`
	HoverButton    HoverConfig     `json:"hoverButton"`
	HoverIcon      HoverConfig     `json:"hoverIcon"`
}

// Presets returns a copy of the preset table.
func Presets() PresetTable {
	return PresetTable{
		FadeUp:         FadeUp,
		FadeIn:         FadeIn,
		StaggerDefault: StaggerDefault,
		HoverButton:    HoverButton,
		HoverIcon:      HoverIcon,
	}
}

// AnimationPreset looks up a scroll animation preset by name.
func AnimationPreset(name string) (AnimationConfig, bool) {
	switch name {
	case "fadeUp":
		return FadeUp, true
	case "fadeIn":
		return FadeIn, true
	}
	return AnimationConfig{}, false
}

// Override is a partial AnimationConfig. Nil fields keep the default.
type Override struct {
	Threshold *float64
	Duration  *time.Duration
	Delay     *time.Duration
	Easing    *Easing
	Direction *Direction
	Distance  *float64
}

// StaggerOverride is a partial StaggerConfig.
type StaggerOverride struct {
	StaggerDelay *time.Duration
	BaseDelay    *time.Duration
	Duration     *time.Duration
	Easing       *Easing
}

// Merge lays override over defaults field by field. Set fields win,
// unset fields keep the default. Neither argument is modified.
func Merge(defaults AnimationConfig, override Override) AnimationConfig {
	out := defaults
	if override.Threshold != nil {
		out.Threshold = *override.Threshold
	}
	if override.Duration != nil {
		out.Duration = *override.Duration
	}
	if override.Delay != nil {
		out.Delay = *override.Delay
	}
	if override.Easing != nil {
		out.Easing = *override.Easing
	}
	if override.Direction != nil {
		out.Direction = *override.Direction
	}
	if override.Distance != nil {
		out.Distance = *override.Distance
	}
	return out
}

// MergeStagger is Merge for StaggerConfig.
func MergeStagger(defaults StaggerConfig, override StaggerOverride) StaggerConfig {
	out := defaults
	if override.StaggerDelay != nil {
		out.StaggerDelay = *override.StaggerDelay
	}
	if override.BaseDelay != nil {
		out.BaseDelay = *override.BaseDelay
	}
	if override.Duration != nil {
		out.Duration = *override.Duration
	}
	if override.Easing != nil {
		out.Easing = *override.Easing
	}
	return out
}

// StaggerDelayFor returns BaseDelay + index*StaggerDelay. A negative index
// is a caller bug and panics.
func StaggerDelayFor(index int, c StaggerConfig) time.Duration {
	if index < 0 {
		panic(fmt.Sprintf("motion: negative stagger index %d", index))
	}
	return c.BaseDelay + time.Duration(index)*c.StaggerDelay
}

// StaggerDelays returns the delay of each of count items.
func StaggerDelays(count int, c StaggerConfig) []time.Duration {
	if count < 0 {
		count = 0
	}
	delays := make([]time.Duration, 0, count)
	for i := 0; i < count; i++ {
		delays = append(delays, StaggerDelayFor(i, c))
	}
	return delays
}

// Threshold and Delay build Override fields inline:
//
//	motion.Override{Threshold: motion.Threshold(0.2), Delay: motion.Delay(200 * time.Millisecond)}
func Threshold(v float64) *float64 { return &v }

func Delay(d time.Duration) *time.Duration { return &d }
