package sway

import "errors"

// Errors returned by the structural operations. All of them leave the
// blender and the input unchanged — there is no partial mutation on
// failure, since a half-applied ownership change would corrupt the
// dirty-propagation graph.
var (
	ErrNilInput = errors.New("sway: input is nil")
	ErrOwned    = errors.New("sway: input already has an owner")
	ErrNotOwned = errors.New("sway: input is not owned by this blender")
	ErrCycle    = errors.New("sway: adding input would create a cycle")
)

// Blender folds a base value and a set of inputs into one cached output
// value, recomputed lazily when read after a change. A single flat
// struct serves both plain and event-carrying blenders: a blender that
// never receives events behaves as a pure channel mixer, while
// AddEvent/UpdateEvents give it transient, time-decaying contributions
// that are blended on top of the channel fold.
//
// A Blender is itself an Input, so it can be plugged into a parent
// blender; changes anywhere in the nested graph dirty every enclosing
// blender exactly once per mutation.
type Blender[T any] struct {
	Name string

	policy Policy[T]
	base   T

	// Channel fold cache, valid when !dirty. Fold order is input
	// insertion order and is never reordered.
	inputs []Input[T]
	out    T
	dirty  bool

	// Events output cache, recomputed by UpdateEvents each tick.
	events    []event[T]
	eventsOut T
	hasEvents bool

	parent *Blender[T]

	subs []subscription
}

type subscription struct {
	id uint32
	fn func()
}

// NewBlender creates a blender with the given policy and base value.
// The policy is sealed for the blender's lifetime.
func NewBlender[T any](policy Policy[T], base T) *Blender[T] {
	return &Blender[T]{policy: policy, base: base, dirty: true}
}

// --- Input management ---

// AddInput attaches an input to this blender, taking exclusive
// ownership. Returns ErrNilInput for a nil input, ErrOwned if the input
// already belongs to a blender, and ErrCycle if the input is this
// blender or one of its ancestors.
func (b *Blender[T]) AddInput(in Input[T]) error {
	if in == nil {
		return ErrNilInput
	}
	if in.owner() != nil {
		return ErrOwned
	}
	if nested := in.asBlender(); nested != nil && isAncestor(nested, b) {
		return ErrCycle
	}
	if globalDebug {
		debugCheckGraphDepth(b)
		debugCheckInputCount(b)
	}
	in.setOwner(b)
	b.inputs = append(b.inputs, in)
	b.invalidate()
	return nil
}

// RemoveInput detaches an input from this blender, clearing ownership.
// Returns ErrNilInput for a nil input and ErrNotOwned if the input's
// owner is not this blender.
func (b *Blender[T]) RemoveInput(in Input[T]) error {
	if in == nil {
		return ErrNilInput
	}
	if in.owner() != b {
		return ErrNotOwned
	}
	b.removeInputByPtr(in)
	in.setOwner(nil)
	b.invalidate()
	return nil
}

// RemoveAllInputs detaches every input and fires one notification.
// No-op on a blender with no inputs.
func (b *Blender[T]) RemoveAllInputs() {
	if len(b.inputs) == 0 {
		return
	}
	for _, in := range b.inputs {
		in.setOwner(nil)
	}
	b.inputs = b.inputs[:0]
	b.invalidate()
}

// Inputs returns the input list in fold order. The returned slice MUST
// NOT be mutated by the caller.
func (b *Blender[T]) Inputs() []Input[T] {
	return b.inputs
}

// InputCount returns the number of attached inputs.
func (b *Blender[T]) InputCount() int {
	return len(b.inputs)
}

// Parent returns the blender this blender is nested inside, or nil.
func (b *Blender[T]) Parent() *Blender[T] {
	return b.parent
}

// --- Base value ---

// Base returns the blender's base value.
func (b *Blender[T]) Base() T {
	return b.base
}

// SetBase replaces the base value with the same de-duplication and
// dirty/notify behavior as a channel mutation.
func (b *Blender[T]) SetBase(v T) {
	if b.policy.Equals(b.base, v) {
		return
	}
	b.base = v
	b.invalidate()
}

// --- Output ---

// Value returns the blended output: the fold of the base value and all
// inputs in insertion order, combined with the events output when any
// events are active. The channel fold is recomputed only if a change
// occurred since the last read; repeated reads between mutations return
// the identical cached value.
func (b *Blender[T]) Value() T {
	out := b.channelsValue()
	if b.hasEvents {
		return b.policy.Blend(out, b.eventsOut)
	}
	return out
}

// channelsValue returns the channel fold, recomputing it if dirty.
func (b *Blender[T]) channelsValue() T {
	if b.dirty {
		out := b.base
		for _, in := range b.inputs {
			out = b.policy.Blend(out, in.Value())
		}
		b.out = out
		b.dirty = false
	}
	return b.out
}

// Average returns the mean per-input contribution of an additive scalar
// blender: (channel fold output - base) / input count. Zero when the
// blender has no inputs. Events are not included.
func Average(b *Blender[float64]) float64 {
	n := len(b.inputs)
	if n == 0 {
		return 0
	}
	return (b.channelsValue() - b.base) / float64(n)
}

// AverageVec2 is Average for two-axis additive blenders.
func AverageVec2(b *Blender[Vec2]) Vec2 {
	n := len(b.inputs)
	if n == 0 {
		return Vec2{}
	}
	return b.channelsValue().Add(b.base.Scaled(-1)).Scaled(1 / float64(n))
}

// --- Notifications ---

// Subscribe registers a callback fired whenever this blender's output
// may have changed (channel or base mutation, structural change, or an
// events-output change). Returns an id for Unsubscribe.
func (b *Blender[T]) Subscribe(fn func()) uint32 {
	id := nextSubID()
	b.subs = append(b.subs, subscription{id: id, fn: fn})
	return id
}

// Unsubscribe removes a previously registered callback. Unknown ids are
// ignored.
func (b *Blender[T]) Unsubscribe(id uint32) {
	for i := range b.subs {
		if b.subs[i].id == id {
			copy(b.subs[i:], b.subs[i+1:])
			b.subs[len(b.subs)-1] = subscription{}
			b.subs = b.subs[:len(b.subs)-1]
			return
		}
	}
}

// invalidate marks the channel fold stale and announces the change.
func (b *Blender[T]) invalidate() {
	b.dirty = true
	b.announce()
}

// announce fires this blender's subscribers and invalidates the parent,
// so a change deep in a nested graph dirties and notifies every
// enclosing blender once per mutation, not per recomputation.
func (b *Blender[T]) announce() {
	for i := range b.subs {
		b.subs[i].fn()
	}
	if b.parent != nil {
		b.parent.invalidate()
	}
}

// --- Input interface (blender-as-input) ---

func (b *Blender[T]) owner() *Blender[T]     { return b.parent }
func (b *Blender[T]) setOwner(p *Blender[T]) { b.parent = p }
func (b *Blender[T]) asBlender() *Blender[T] { return b }

// --- Helpers ---

// isAncestor reports whether candidate is b or an ancestor of b.
func isAncestor[T any](candidate, b *Blender[T]) bool {
	for p := b; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeInputByPtr removes in from b.inputs preserving fold order.
// Uses copy+nil to avoid retaining a dangling reference in the backing
// array.
func (b *Blender[T]) removeInputByPtr(in Input[T]) {
	for i, x := range b.inputs {
		if x == in {
			copy(b.inputs[i:], b.inputs[i+1:])
			b.inputs[len(b.inputs)-1] = nil
			b.inputs = b.inputs[:len(b.inputs)-1]
			return
		}
	}
}
