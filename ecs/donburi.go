package ecs

import (
	"github.com/phanxgames/sway"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// ValueChanged is published whenever a bound blender announces that its
// output may have changed.
type ValueChanged struct {
	Name string
}

// ValueChangedType is the Donburi event type for blender change
// notifications. Subscribe to this in your ECS systems to react to
// signal changes without polling.
var ValueChangedType = events.NewEventType[ValueChanged]()

// StrengthData holds a scalar blender, e.g. a vibration strength.
type StrengthData struct {
	Blender *sway.Blender[float64]
}

// Strength is the Donburi component for scalar blender signals.
var Strength = donburi.NewComponentType[StrengthData]()

// OffsetData holds a two-axis blender, e.g. a camera shake offset.
type OffsetData struct {
	Blender *sway.Blender[sway.Vec2]
}

// Offset is the Donburi component for two-axis blender signals.
var Offset = donburi.NewComponentType[OffsetData]()

// Bind republishes a blender's change notifications into the world as
// ValueChanged events. Events are queued; call ProcessEvents (or
// events.ProcessAllEvents) to deliver them. Returns the subscription id
// for sway's Unsubscribe.
func Bind[T any](world donburi.World, name string, b *sway.Blender[T]) uint32 {
	return b.Subscribe(func() {
		ValueChangedType.Publish(world, ValueChanged{Name: name})
	})
}

// UpdateEvents advances event lifecycles on every blender component in
// the world by dt seconds. Call once per logical tick.
func UpdateEvents(world donburi.World, dt float64) {
	donburi.NewQuery(filter.Contains(Strength)).Each(world, func(e *donburi.Entry) {
		if b := Strength.Get(e).Blender; b != nil {
			b.UpdateEvents(dt)
		}
	})
	donburi.NewQuery(filter.Contains(Offset)).Each(world, func(e *donburi.Entry) {
		if b := Offset.Get(e).Blender; b != nil {
			b.UpdateEvents(dt)
		}
	})
}
