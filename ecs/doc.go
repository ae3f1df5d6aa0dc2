// Package ecs provides ECS adapters for sway blenders.
//
// Blenders live in a [Donburi] world as plain components ([Strength]
// for scalar signals, [Offset] for two-axis signals); one
// [UpdateEvents] call per frame advances every event-carrying blender
// in the world. [Bind] republishes a blender's change notifications
// into the world as typed [ValueChanged] events, which systems consume
// with events.Subscribe and ProcessEvents.
//
// Usage:
//
//	e := world.Entry(world.Create(ecs.Strength))
//	ecs.Strength.SetValue(e, ecs.StrengthData{Blender: shake})
//	ecs.Bind(world, "shake", shake)
//
//	// each frame:
//	ecs.UpdateEvents(world, dt)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
