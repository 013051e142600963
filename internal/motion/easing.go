package motion

import (
	"fmt"

	"github.com/tanema/gween/ease"
)

// Easing names a timing curve.
type Easing string

const (
	Linear      Easing = "linear"
	Ease        Easing = "ease"
	EaseIn      Easing = "ease-in"
	EaseOut     Easing = "ease-out"
	EaseInOut   Easing = "ease-in-out"
	CubicBezier Easing = "cubic-bezier"
)

// CurveKind selects one of the fixed cubic-bezier curves.
type CurveKind string

const (
	CurveSmooth CurveKind = "smooth"
	CurveBounce CurveKind = "bounce"
	CurveSnap   CurveKind = "snap"
)

var beziers = map[CurveKind]string{
	CurveSmooth: "cubic-bezier(0.4, 0, 0.2, 1)",
	CurveBounce: "cubic-bezier(0.68, -0.55, 0.265, 1.55)",
	CurveSnap:   "cubic-bezier(0.25, 0.46, 0.45, 0.94)",
}

// CubicBezierFor returns the CSS descriptor of a named curve. Unknown kinds panic.
func CubicBezierFor(kind CurveKind) string {
	b, ok := beziers[kind]
	if !ok {
		panic(fmt.Sprintf("motion: unknown curve kind %q", kind))
	}
	return b
}

// ParseCurveKind validates a curve name coming from outside the process.
func ParseCurveKind(s string) (CurveKind, bool) {
	k := CurveKind(s)
	_, ok := beziers[k]
	return k, ok
}

// CSS returns the transition-timing-function value for e. The generic
// cubic-bezier easing resolves to the smooth curve.
func (e Easing) CSS() string {
	switch e {
	case Linear, Ease, EaseIn, EaseOut, EaseInOut:
		return string(e)
	case CubicBezier:
		return beziers[CurveSmooth]
	}
	panic(fmt.Sprintf("motion: unknown easing %q", e))
}

// tweenFunc approximates each CSS curve with the closest gween easing.
func (e Easing) tweenFunc() ease.TweenFunc {
	switch e {
	case Linear:
		return ease.Linear
	case Ease:
		return ease.InOutQuad
	case EaseIn:
		return ease.InCubic
	case EaseOut:
		return ease.OutCubic
	case EaseInOut, CubicBezier:
		return ease.InOutCubic
	}
	panic(fmt.Sprintf("motion: unknown easing %q", e))
}

// Sample evaluates the curve at normalized time t, clamped to [0,1].
func (e Easing) Sample(t float64) float64 {
	fn := e.tweenFunc()
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	}
	return float64(fn(float32(t), 0, 1, 1))
}
