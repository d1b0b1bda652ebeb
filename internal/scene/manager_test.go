package scene

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/san-kum/traject/internal/generators"
	"github.com/san-kum/traject/internal/motion"
)

func TestManagerAddRemove(t *testing.T) {
	m := NewManager(nil)

	obj := NewObject("cube", generators.NewSpiral(), nil)
	if err := m.Add(obj); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := m.Add(obj); err == nil {
		t.Error("expected duplicate add to fail")
	}

	if _, ok := m.Get("cube"); !ok {
		t.Error("expected to find cube")
	}
	if len(m.Names()) != 1 {
		t.Errorf("expected 1 name, got %d", len(m.Names()))
	}

	if err := m.Remove("cube"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if err := m.Remove("cube"); err == nil {
		t.Error("expected second remove to fail")
	}
}

func TestManagerStartUnknown(t *testing.T) {
	m := NewManager(nil)
	if err := m.Start(context.Background(), "ghost", 60, nil); err == nil {
		t.Error("expected error for unknown object")
	}
}

func TestManagerAnimationLifecycle(t *testing.T) {
	m := NewManager(nil)
	obj := NewObject("ball", generators.NewSpiral(), generators.NewSpinner())
	if err := m.Add(obj); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	var mu sync.Mutex
	updates := 0
	onUpdate := func(name string, tr Transform) {
		mu.Lock()
		updates++
		mu.Unlock()
	}

	if err := m.Start(context.Background(), "ball", 200, onUpdate); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if err := m.Start(context.Background(), "ball", 200, onUpdate); err == nil {
		t.Error("expected double start to fail")
	}
	if !m.Running("ball") {
		t.Error("expected ball to be running")
	}

	time.Sleep(100 * time.Millisecond)

	if !m.Stop("ball") {
		t.Error("expected stop to find a running loop")
	}
	if m.Running("ball") {
		t.Error("expected ball to be stopped")
	}
	if m.Stop("ball") {
		t.Error("expected second stop to return false")
	}

	mu.Lock()
	got := updates
	mu.Unlock()
	if got == 0 {
		t.Error("expected at least one update")
	}

	if len(obj.Trail()) != 0 {
		t.Error("expected trail to be released on stop")
	}
}

func TestManagerStopAll(t *testing.T) {
	m := NewManager(nil)
	for _, name := range []string{"a", "b", "c"} {
		if err := m.Add(NewObject(name, generators.NewLissajous(), nil)); err != nil {
			t.Fatalf("add %s failed: %v", name, err)
		}
		if err := m.Start(context.Background(), name, 100, nil); err != nil {
			t.Fatalf("start %s failed: %v", name, err)
		}
	}

	m.StopAll()

	for _, name := range []string{"a", "b", "c"} {
		if m.Running(name) {
			t.Errorf("expected %s to be stopped", name)
		}
	}
}

func TestObjectAdvance(t *testing.T) {
	obj := NewObject("probe", generators.NewDrift(), generators.NewSpinner())

	tr := obj.advance(1.0, 1.0)
	if tr.Position != (motion.Point{X: 1}) {
		t.Errorf("unexpected position: %+v", tr.Position)
	}
	if tr.Rotation != (motion.Point{X: 10}) {
		t.Errorf("unexpected rotation: %+v", tr.Rotation)
	}
	if tr.Scale != (motion.Point{X: 1, Y: 1, Z: 1}) {
		t.Errorf("unexpected scale: %+v", tr.Scale)
	}

	if obj.Transform().Position != tr.Position {
		t.Error("snapshot mismatch")
	}
}

func TestObjectTrailRing(t *testing.T) {
	obj := NewObject("probe", generators.NewDrift(), nil)
	obj.attachTrail(make([]motion.Point, 0, 4))

	for i := 0; i < 6; i++ {
		obj.advance(1.0, 0)
	}

	trail := obj.Trail()
	if len(trail) != 4 {
		t.Fatalf("expected trail of 4, got %d", len(trail))
	}
	// Oldest entries dropped: positions 3..6 remain.
	if trail[0].X != 3 || trail[3].X != 6 {
		t.Errorf("unexpected trail contents: %+v", trail)
	}
}
