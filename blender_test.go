package sway

import (
	"errors"
	"math"
	"testing"
)

// countingAdditive wraps the additive policy to count Blend calls, so
// tests can observe when recomputation actually happens.
func countingAdditive(blends *int) Policy[float64] {
	p := Additive()
	inner := p.Blend
	p.Blend = func(a, b float64) float64 {
		*blends++
		return inner(a, b)
	}
	return p
}

func TestValueFoldsBaseAndInputs(t *testing.T) {
	b := NewBlender(Additive(), 1)
	for i, v := range []float64{2, 3, 4} {
		if err := b.AddInput(NewChannel("c", v)); err != nil {
			t.Fatalf("AddInput %d: %v", i, err)
		}
	}
	if got := b.Value(); got != 10 {
		t.Errorf("Value = %v, want 10", got)
	}
}

func TestFoldOrderIsInsertionOrder(t *testing.T) {
	b := NewBlender(Multiply(), 1)
	half := NewChannel("half", 0.5)
	for _, in := range []Input[float64]{NewChannel("two", 2.0), half, NewChannel("three", 3.0)} {
		if err := b.AddInput(in); err != nil {
			t.Fatalf("AddInput: %v", err)
		}
	}
	if got := b.Value(); got != 3.0 {
		t.Errorf("Value = %v, want 3.0", got)
	}

	if err := b.RemoveInput(half); err != nil {
		t.Fatalf("RemoveInput: %v", err)
	}
	if got := b.Value(); got != 6.0 {
		t.Errorf("Value after remove = %v, want 6.0", got)
	}
}

func TestValueIsCachedBetweenMutations(t *testing.T) {
	blends := 0
	b := NewBlender(countingAdditive(&blends), 0)
	c := NewChannel("c", 5.0)
	if err := b.AddInput(c); err != nil {
		t.Fatalf("AddInput: %v", err)
	}

	first := b.Value()
	after := blends
	if after == 0 {
		t.Fatal("first read should recompute")
	}

	// Repeated reads between mutations return the cached value without
	// recomputation.
	for i := 0; i < 10; i++ {
		if got := b.Value(); got != first {
			t.Fatalf("read %d = %v, want %v", i, got, first)
		}
	}
	if blends != after {
		t.Errorf("cached reads performed %d extra blends", blends-after)
	}

	c.SetValue(7)
	if got := b.Value(); got != 7 {
		t.Errorf("Value after mutation = %v, want 7", got)
	}
	if blends == after {
		t.Error("read after mutation should recompute")
	}
}

func TestMutationsDoNotRecompute(t *testing.T) {
	blends := 0
	b := NewBlender(countingAdditive(&blends), 0)
	c := NewChannel("c", 0.0)
	if err := b.AddInput(c); err != nil {
		t.Fatalf("AddInput: %v", err)
	}

	// A burst of writes with no reads must not trigger any folding.
	blends = 0
	for i := 1; i <= 100; i++ {
		c.SetValue(float64(i))
	}
	if blends != 0 {
		t.Errorf("writes performed %d blends, want 0 (evaluation is pull-based)", blends)
	}
	if got := b.Value(); got != 100 {
		t.Errorf("Value = %v, want 100", got)
	}
}

func TestSetBaseDedupAndNotify(t *testing.T) {
	b := NewBlender(Additive(), 2)
	_ = b.Value()

	fires := 0
	b.Subscribe(func() { fires++ })

	b.SetBase(2)
	if fires != 0 || b.dirty {
		t.Error("setting an equal base must be a no-op")
	}

	b.SetBase(5)
	if fires != 1 {
		t.Errorf("fires = %d, want 1", fires)
	}
	if got := b.Value(); got != 5 {
		t.Errorf("Value = %v, want 5", got)
	}
	if got := b.Base(); got != 5 {
		t.Errorf("Base = %v, want 5", got)
	}
}

func TestAddInputOwnershipError(t *testing.T) {
	a := NewBlender(Additive(), 0)
	b := NewBlender(Additive(), 0)
	c := NewChannel("c", 1.0)

	if err := a.AddInput(c); err != nil {
		t.Fatalf("AddInput: %v", err)
	}
	err := b.AddInput(c)
	if !errors.Is(err, ErrOwned) {
		t.Fatalf("AddInput on owned channel: err = %v, want ErrOwned", err)
	}

	// No partial mutation: both lists unchanged, ownership intact.
	if a.InputCount() != 1 || b.InputCount() != 0 {
		t.Errorf("input counts = %d/%d, want 1/0", a.InputCount(), b.InputCount())
	}
	if c.Owner() != a {
		t.Error("ownership changed on failed add")
	}
}

func TestRemoveInputNotOwnedError(t *testing.T) {
	a := NewBlender(Additive(), 0)
	b := NewBlender(Additive(), 0)
	c := NewChannel("c", 1.0)
	if err := a.AddInput(c); err != nil {
		t.Fatalf("AddInput: %v", err)
	}

	if err := b.RemoveInput(c); !errors.Is(err, ErrNotOwned) {
		t.Fatalf("err = %v, want ErrNotOwned", err)
	}
	if err := b.RemoveInput(NewChannel("loose", 0.0)); !errors.Is(err, ErrNotOwned) {
		t.Fatalf("err = %v, want ErrNotOwned", err)
	}
	if a.InputCount() != 1 || c.Owner() != a {
		t.Error("failed remove mutated state")
	}
}

func TestNilInputErrors(t *testing.T) {
	b := NewBlender(Additive(), 0)
	if err := b.AddInput(nil); !errors.Is(err, ErrNilInput) {
		t.Errorf("AddInput(nil) err = %v, want ErrNilInput", err)
	}
	if err := b.RemoveInput(nil); !errors.Is(err, ErrNilInput) {
		t.Errorf("RemoveInput(nil) err = %v, want ErrNilInput", err)
	}
}

func TestAddInputCycleError(t *testing.T) {
	parent := NewBlender(Additive(), 0)
	child := NewBlender(Additive(), 0)
	if err := parent.AddInput(child); err != nil {
		t.Fatalf("AddInput: %v", err)
	}

	if err := child.AddInput(parent); !errors.Is(err, ErrCycle) {
		t.Fatalf("adding ancestor: err = %v, want ErrCycle", err)
	}
	if err := child.AddInput(child); !errors.Is(err, ErrCycle) {
		t.Fatalf("adding self: err = %v, want ErrCycle", err)
	}
	if child.InputCount() != 0 {
		t.Error("failed add mutated the input list")
	}
}

func TestNestedBlenderValue(t *testing.T) {
	inner := NewBlender(Additive(), 1)
	if err := inner.AddInput(NewChannel("a", 2.0)); err != nil {
		t.Fatalf("AddInput: %v", err)
	}

	outer := NewBlender(Additive(), 10)
	if err := outer.AddInput(inner); err != nil {
		t.Fatalf("AddInput: %v", err)
	}
	if inner.Parent() != outer {
		t.Error("nesting should set the parent back-reference")
	}

	if got := outer.Value(); got != 13 {
		t.Errorf("Value = %v, want 13", got)
	}
}

func TestNestedPropagationFiresOncePerMutation(t *testing.T) {
	inner := NewBlender(Additive(), 0)
	c := NewChannel("c", 0.0)
	if err := inner.AddInput(c); err != nil {
		t.Fatalf("AddInput: %v", err)
	}
	outer := NewBlender(Additive(), 0)
	if err := outer.AddInput(inner); err != nil {
		t.Fatalf("AddInput: %v", err)
	}
	_ = outer.Value()

	innerFires, outerFires := 0, 0
	inner.Subscribe(func() { innerFires++ })
	outer.Subscribe(func() { outerFires++ })

	c.SetValue(3)
	if innerFires != 1 || outerFires != 1 {
		t.Errorf("fires = %d/%d, want 1/1 (once per mutation, not per recomputation)", innerFires, outerFires)
	}
	if !inner.dirty || !outer.dirty {
		t.Error("both blenders should be dirty after the mutation")
	}

	// Reads must not fire anything further.
	_ = outer.Value()
	_ = outer.Value()
	if innerFires != 1 || outerFires != 1 {
		t.Errorf("reads fired notifications: %d/%d", innerFires, outerFires)
	}
	if got := outer.Value(); got != 3 {
		t.Errorf("Value = %v, want 3", got)
	}
}

func TestThreeLevelPropagation(t *testing.T) {
	leafChan := NewChannel("leaf", 1.0)
	level0 := NewBlender(Additive(), 0)
	level1 := NewBlender(Additive(), 0)
	level2 := NewBlender(Additive(), 0)
	if err := level0.AddInput(leafChan); err != nil {
		t.Fatal(err)
	}
	if err := level1.AddInput(level0); err != nil {
		t.Fatal(err)
	}
	if err := level2.AddInput(level1); err != nil {
		t.Fatal(err)
	}
	_ = level2.Value()

	fires := 0
	level2.Subscribe(func() { fires++ })
	leafChan.SetValue(4)
	if fires != 1 {
		t.Errorf("root fires = %d, want 1", fires)
	}
	if got := level2.Value(); got != 4 {
		t.Errorf("Value = %v, want 4", got)
	}
}

func TestSubscribeUnsubscribe(t *testing.T) {
	b := NewBlender(Additive(), 0)
	first, second := 0, 0
	id := b.Subscribe(func() { first++ })
	b.Subscribe(func() { second++ })

	b.SetBase(1)
	if first != 1 || second != 1 {
		t.Fatalf("fires = %d/%d, want 1/1", first, second)
	}

	b.Unsubscribe(id)
	b.SetBase(2)
	if first != 1 || second != 2 {
		t.Errorf("fires after unsubscribe = %d/%d, want 1/2", first, second)
	}

	// Unknown ids are ignored.
	b.Unsubscribe(99999)
}

func TestRemoveAllInputs(t *testing.T) {
	b := NewBlender(Additive(), 1)
	c1 := NewChannel("a", 2.0)
	c2 := NewChannel("b", 3.0)
	if err := b.AddInput(c1); err != nil {
		t.Fatal(err)
	}
	if err := b.AddInput(c2); err != nil {
		t.Fatal(err)
	}
	_ = b.Value()

	fires := 0
	b.Subscribe(func() { fires++ })
	b.RemoveAllInputs()
	if fires != 1 {
		t.Errorf("fires = %d, want 1", fires)
	}
	if b.InputCount() != 0 || c1.Owner() != nil || c2.Owner() != nil {
		t.Error("RemoveAllInputs should detach everything")
	}
	if got := b.Value(); got != 1 {
		t.Errorf("Value = %v, want base 1", got)
	}

	// Empty list: no notification.
	b.RemoveAllInputs()
	if fires != 1 {
		t.Errorf("fires on empty RemoveAllInputs = %d, want 1", fires)
	}
}

func TestStructuralChangesNotify(t *testing.T) {
	b := NewBlender(Additive(), 0)
	c := NewChannel("c", 5.0)
	fires := 0
	b.Subscribe(func() { fires++ })

	if err := b.AddInput(c); err != nil {
		t.Fatal(err)
	}
	if fires != 1 {
		t.Errorf("AddInput fires = %d, want 1", fires)
	}
	if err := b.RemoveInput(c); err != nil {
		t.Fatal(err)
	}
	if fires != 2 {
		t.Errorf("RemoveInput fires = %d, want 2", fires)
	}
}

func TestAverage(t *testing.T) {
	b := NewBlender(Additive(), 1)
	if got := Average(b); got != 0 {
		t.Errorf("Average with no inputs = %v, want 0", got)
	}

	for _, v := range []float64{2, 4} {
		if err := b.AddInput(NewChannel("c", v)); err != nil {
			t.Fatal(err)
		}
	}
	// (7 - 1) / 2
	if got := Average(b); got != 3 {
		t.Errorf("Average = %v, want 3", got)
	}
}

func TestAverageVec2(t *testing.T) {
	b := NewBlender(AdditiveVec2(), Vec2{1, 1})
	if got := AverageVec2(b); got != (Vec2{}) {
		t.Errorf("AverageVec2 with no inputs = %v, want zero", got)
	}

	if err := b.AddInput(NewChannel("a", Vec2{3, 5})); err != nil {
		t.Fatal(err)
	}
	if err := b.AddInput(NewChannel("b", Vec2{1, 1})); err != nil {
		t.Fatal(err)
	}
	got := AverageVec2(b)
	if math.Abs(got.X-2) > 1e-9 || math.Abs(got.Y-3) > 1e-9 {
		t.Errorf("AverageVec2 = %v, want {2 3}", got)
	}
}

func TestBooleanBlender(t *testing.T) {
	locked := NewBlender(Or(), false)
	menu := NewChannel("menu", false)
	cutscene := NewChannel("cutscene", false)
	if err := locked.AddInput(menu); err != nil {
		t.Fatal(err)
	}
	if err := locked.AddInput(cutscene); err != nil {
		t.Fatal(err)
	}

	if locked.Value() {
		t.Error("no source set, want false")
	}
	menu.SetValue(true)
	if !locked.Value() {
		t.Error("menu locked, want true")
	}
	menu.SetValue(false)
	cutscene.SetValue(true)
	if !locked.Value() {
		t.Error("cutscene locked, want true")
	}
	cutscene.SetValue(false)
	if locked.Value() {
		t.Error("all released, want false")
	}
}
