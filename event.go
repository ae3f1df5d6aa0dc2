package sway

// minDuration is the lower bound for event durations. AddEvent clamps
// shorter (or non-positive) durations up to this epsilon rather than
// rejecting them, so progress arithmetic can never divide by zero.
const minDuration = 1e-6

// event holds per-event lifecycle state. Unexported; exclusively owned
// by the blender's event list and never referenced externally.
//
// Lifecycle: Pending (delay > 0) -> Active (delay == 0, progress < 1)
// -> Expired (progress >= 1, removed). Transitions are monotonic and
// time-driven only; reaching progress >= 1 or ClearEvents are the only
// ways an event ends.
type event[T any] struct {
	delay    float64
	duration float64
	progress float64
	value    T
	curve    Curve
}

// Preset bundles the parameters of an event for convenient reuse.
type Preset[T any] struct {
	Delay    float64
	Duration float64
	Value    T
	Curve    Curve
}

// AddEvent appends a transient contribution that activates after delay
// seconds, lasts duration seconds, and contributes value scaled by the
// attenuation curve evaluated at normalized progress. A nil curve means
// constant full strength. Durations below minDuration are clamped up.
//
// The new event does not affect the output until the next UpdateEvents
// tick.
func (b *Blender[T]) AddEvent(delay, duration float64, value T, curve Curve) {
	if duration < minDuration {
		duration = minDuration
	}
	if delay < 0 {
		delay = 0
	}
	if curve == nil {
		curve = Flat(1)
	}
	b.events = append(b.events, event[T]{
		delay:    delay,
		duration: duration,
		value:    value,
		curve:    curve,
	})
}

// AddPreset appends an event from a preset record.
func (b *Blender[T]) AddPreset(p Preset[T]) {
	b.AddEvent(p.Delay, p.Duration, p.Value, p.Curve)
}

// EventCount returns the number of pending and active events.
func (b *Blender[T]) EventCount() int {
	return len(b.events)
}

// ClearEvents drops all pending and active events. Fires one
// notification iff the blender had events output to lose.
func (b *Blender[T]) ClearEvents() {
	b.events = b.events[:0]
	if b.hasEvents {
		b.hasEvents = false
		b.announce()
	}
}

// UpdateEvents advances all events by dt seconds and refreshes the
// cached events output. Call once per logical tick for any blender that
// uses events; dt must be >= 0.
//
// Per event: a pending event consumes dt from its start delay, and any
// overshoot past zero is applied to progress in the same tick, so an
// event that becomes active mid-tick immediately advances by the
// remaining time instead of waiting a full extra tick. An active event
// advances progress by dt/duration; reaching progress >= 1 expires it,
// removing it from the list with no contribution that tick. Surviving
// active events contribute Scale(value, max(curve(progress), 0)),
// folded left-to-right in list order.
//
// Subscribers and the parent blender are notified when the has-events
// state flips on either edge, or when a tick produces an events output
// that differs (per the policy) from the previous one. Steady "still no
// events" ticks are silent.
func (b *Blender[T]) UpdateEvents(dt float64) {
	prevOut := b.eventsOut
	prevHas := b.hasEvents

	var out T
	has := false
	kept := b.events[:0]
	for i := range b.events {
		ev := b.events[i]
		eff := dt
		if ev.delay > 0 {
			ev.delay -= dt
			if ev.delay > 0 {
				kept = append(kept, ev)
				continue
			}
			// Delay-boundary carryover: the overshoot becomes the
			// effective delta for progress this tick.
			eff = -ev.delay
			ev.delay = 0
		}
		ev.progress += eff / ev.duration
		if ev.progress >= 1 {
			continue
		}
		factor := ev.curve(ev.progress)
		if factor < 0 {
			factor = 0
		}
		sample := ev.value
		if b.policy.Scale != nil {
			sample = b.policy.Scale(ev.value, factor)
		}
		if has {
			out = b.policy.Blend(out, sample)
		} else {
			out = sample
			has = true
		}
		kept = append(kept, ev)
	}
	b.events = kept
	b.eventsOut = out
	b.hasEvents = has

	if has != prevHas || (has && !b.policy.Equals(prevOut, out)) {
		b.announce()
	}
}
