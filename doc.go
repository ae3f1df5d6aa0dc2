// Package sway is a runtime value-blending engine.
//
// Sway combines many independent, loosely-coupled control sources into
// one coherent output value per logical signal, recomputed on demand
// and cached. It is built for effect parameters — a vibration strength,
// a two-axis camera offset, a "controls locked" flag — that many
// unrelated systems want to influence simultaneously without knowing
// about each other.
//
// # Blenders, channels, and events
//
// A [Blender] folds a base value and any number of inputs into a single
// cached output using a [Policy] (equals/blend/scale) sealed at
// construction:
//
//	strength := sway.NewBlender(sway.Additive(), 0)
//
//	rumble := sway.NewChannel("rumble", 0.0)
//	strength.AddInput(rumble)
//
//	rumble.SetValue(0.4)
//	_ = strength.Value() // 0.4
//
// A [Channel] is a persistent input: set it and it stays until set
// again. Events are transient: they activate after a start delay, decay
// over a duration through an attenuation [Curve], and expire on their
// own. Drive them with one [Blender.UpdateEvents] call per frame:
//
//	strength.AddEvent(0, 0.5, 1.0, sway.FadeOut)
//	strength.UpdateEvents(dt)
//
// Reads are pull-based and lazy: mutations only flip a dirty flag and
// fire change notifications, and the fold runs again on the next read.
// Setting a value equal to the current one (per the policy) is a
// complete no-op.
//
// # Nesting
//
// A Blender is itself an [Input], so whole blenders can be plugged into
// a parent to form acyclic blending graphs. Dirtiness propagates up the
// graph automatically; each enclosing blender is notified exactly once
// per mutation.
//
// # Curves and tweens
//
// Attenuation curves map normalized event progress to a scale factor.
// [Flat], [FadeIn], and [FadeOut] cover the common cases, and [Eased]
// and [Decay] adapt any [gween] easing function. [TweenChannel] animates
// a channel itself through gween.
//
// Sway is single-threaded by design: it performs no scheduling, no I/O,
// and no locking, and must be stepped by one logical authority (your
// game loop). See examples/shake for a runnable Ebitengine demo, and
// the sway/ecs submodule for a [Donburi] bridge.
//
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package sway
