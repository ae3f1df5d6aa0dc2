package sway

// Input is a value source that can be plugged into a Blender. There are
// exactly two implementations: the leaf *Channel and the composite
// *Blender, which lets whole blenders be nested as inputs of a parent
// to form acyclic blending graphs. The interface is sealed (unexported
// methods) so the engine can manage ownership and dirty routing itself.
type Input[T any] interface {
	// Value returns the input's current contribution to its owner's fold.
	Value() T

	owner() *Blender[T]
	setOwner(*Blender[T])
	// asBlender returns the input's blender identity for cycle checks,
	// or nil for leaf channels.
	asBlender() *Blender[T]
}

// Channel is a named, persistent, externally-settable input to a
// Blender. A channel belongs to at most one blender at a time;
// ownership changes only through Blender.AddInput and
// Blender.RemoveInput, never through the channel itself.
type Channel[T any] struct {
	Name string

	value T
	own   *Blender[T]
}

// NewChannel creates an unattached channel holding the initial value.
func NewChannel[T any](name string, initial T) *Channel[T] {
	return &Channel[T]{Name: name, value: initial}
}

// Value returns the channel's current value. Pure read, no side effect.
func (c *Channel[T]) Value() T {
	return c.value
}

// SetValue replaces the channel's value and marks the owning blender
// dirty. Setting a value equal (per the owner's policy) to the current
// one is a no-op: no dirty flag, no notification. This is the central
// de-duplication rule that prevents recomputation storms.
func (c *Channel[T]) SetValue(v T) {
	if c.own == nil {
		c.value = v
		return
	}
	if c.own.policy.Equals(c.value, v) {
		return
	}
	c.value = v
	c.own.invalidate()
}

// Owner returns the blender this channel is attached to, or nil.
func (c *Channel[T]) Owner() *Blender[T] {
	return c.own
}

func (c *Channel[T]) owner() *Blender[T]     { return c.own }
func (c *Channel[T]) setOwner(b *Blender[T]) { c.own = b }
func (c *Channel[T]) asBlender() *Blender[T] { return nil }
