package sway

import "github.com/tanema/gween/ease"

// Curve maps normalized event progress in [0, 1] to an attenuation
// factor. The output is not required to stay in [0, 1], but the engine
// clamps it to >= 0 before using it as a scale factor, so a curve can
// never flip the sign of a contribution.
type Curve func(progress float64) float64

// Flat returns a curve with the constant value v.
func Flat(v float64) Curve {
	return func(float64) float64 { return v }
}

// FadeIn ramps linearly from zero to full strength over the event.
func FadeIn(t float64) float64 { return t }

// FadeOut attenuates linearly from full strength to zero over the event.
func FadeOut(t float64) float64 { return 1 - t }

// Eased adapts a gween easing function into a curve rising from 0 to 1.
func Eased(fn ease.TweenFunc) Curve {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}

// Decay adapts a gween easing function into a curve falling from 1 to 0.
func Decay(fn ease.TweenFunc) Curve {
	return func(t float64) float64 {
		return float64(fn(float32(t), 1, -1, 1))
	}
}
