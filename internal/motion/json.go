package motion

import (
	"encoding/json"
	"time"
)

// Durations go over the wire as whole milliseconds, which is what the
// browser's transition properties take.

func ms(d time.Duration) int64 { return d.Milliseconds() }

func (c AnimationConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Threshold float64   `json:"threshold"`
		Duration  int64     `json:"duration"`
		Delay     int64     `json:"delay"`
		Easing    Easing    `json:"easing"`
		Direction Direction `json:"direction"`
		Distance  float64   `json:"distance"`
	}{c.Threshold, ms(c.Duration), ms(c.Delay), c.Easing, c.Direction, c.Distance})
}

func (c StaggerConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		StaggerDelay int64  `json:"staggerDelay"`
		BaseDelay    int64  `json:"baseDelay"`
		Duration     int64  `json:"duration"`
		Easing       Easing `json:"easing"`
	}{ms(c.StaggerDelay), ms(c.BaseDelay), ms(c.Duration), c.Easing})
}

func (c HoverConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Scale      float64 `json:"scale"`
		Opacity    float64 `json:"opacity"`
		Duration   int64   `json:"duration"`
		GlowColor  string  `json:"glowColor,omitempty"`
		GlowSpread float64 `json:"glowSpread,omitempty"`
	}{c.Scale, c.Opacity, ms(c.Duration), c.GlowColor, c.GlowSpread})
}
