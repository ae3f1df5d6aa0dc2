package sway

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ChannelTween animates a scalar channel toward a target value using a
// gween easing function. Call Update(dt) each frame; values are written
// through Channel.SetValue, so de-duplication and dirty propagation
// behave exactly as for a manual set.
//
// There is no global animation manager — users call Update themselves.
type ChannelTween struct {
	tween   *gween.Tween
	channel *Channel[float64]
	Done    bool
}

// TweenChannel creates a ChannelTween that animates the channel from
// its current value to the target over the specified duration.
func TweenChannel(c *Channel[float64], to float64, duration float32, fn ease.TweenFunc) *ChannelTween {
	return &ChannelTween{
		tween:   gween.New(float32(c.Value()), float32(to), duration, fn),
		channel: c,
	}
}

// Update advances the tween by dt seconds and writes the value to the
// channel. Sets Done once the tween finishes.
func (g *ChannelTween) Update(dt float32) {
	if g.Done {
		return
	}
	val, finished := g.tween.Update(dt)
	g.channel.SetValue(float64(val))
	g.Done = finished
}

// ChannelTweenVec2 animates both components of a two-axis channel
// simultaneously.
type ChannelTweenVec2 struct {
	tweens  [2]*gween.Tween
	channel *Channel[Vec2]
	Done    bool
}

// TweenChannelVec2 creates a ChannelTweenVec2 that animates the channel
// from its current value to the target vector over the specified
// duration.
func TweenChannelVec2(c *Channel[Vec2], to Vec2, duration float32, fn ease.TweenFunc) *ChannelTweenVec2 {
	from := c.Value()
	g := &ChannelTweenVec2{channel: c}
	g.tweens[0] = gween.New(float32(from.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(from.Y), float32(to.Y), duration, fn)
	return g
}

// Update advances both component tweens by dt seconds and writes the
// combined vector to the channel. Sets Done once both finish.
func (g *ChannelTweenVec2) Update(dt float32) {
	if g.Done {
		return
	}
	x, fx := g.tweens[0].Update(dt)
	y, fy := g.tweens[1].Update(dt)
	g.channel.SetValue(Vec2{float64(x), float64(y)})
	g.Done = fx && fy
}
