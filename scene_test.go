package willowkit

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestNewScene(t *testing.T) {
	s := NewScene()
	if s.root == nil {
		t.Fatal("root should not be nil")
	}
	if s.root.Name != "root" {
		t.Errorf("root.Name = %q, want %q", s.root.Name, "root")
	}
	if s.root.Type != NodeTypeContainer {
		t.Errorf("root.Type = %d, want NodeTypeContainer", s.root.Type)
	}
	if !s.root.Interactable {
		t.Error("root should be interactable so its subtree is hit-tested")
	}
	if s.dragDeadZone != defaultDragDeadZone {
		t.Errorf("dragDeadZone = %v, want %v", s.dragDeadZone, defaultDragDeadZone)
	}
}

func TestSceneRoot(t *testing.T) {
	s := NewScene()
	if s.Root() != s.root {
		t.Error("Root() should return the internal root node")
	}
}

func TestSceneSetEntityStore(t *testing.T) {
	s := NewScene()
	s.SetEntityStore(nil) // should not panic
	if s.store != nil {
		t.Error("store should be nil")
	}
}

func TestSceneSetDebugMode(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	if !s.debug || !globalDebug {
		t.Error("debug should be true")
	}
	s.SetDebugMode(false)
	if s.debug || globalDebug {
		t.Error("debug should be false")
	}
}

func TestSceneTickRunsOnUpdate(t *testing.T) {
	s := NewScene()
	parent := NewContainer("parent")
	child := NewContainer("child")
	s.Root().AddChild(parent)
	parent.AddChild(child)

	var order []string
	var got float64
	parent.OnUpdate = func(dt float64) { order = append(order, "parent"); got = dt }
	child.OnUpdate = func(float64) { order = append(order, "child") }

	s.tick(0.25)
	if got != 0.25 {
		t.Errorf("dt = %v, want 0.25", got)
	}
	if len(order) != 2 || order[0] != "parent" || order[1] != "child" {
		t.Errorf("order = %v, want [parent child]", order)
	}
}

func TestSceneTickAdvancesAnimations(t *testing.T) {
	s := NewScene()
	n := NewContainer("n")
	s.Root().AddChild(n)
	g := n.Animate(TweenPosition(n, 100, 0, 0.5, ease.Linear))

	s.tick(0.25)
	s.tick(0.25)
	if !g.Done {
		t.Fatal("animation should finish after its duration")
	}
	if n.X != 100 {
		t.Errorf("X = %v, want 100", n.X)
	}
}

func TestSceneTickToleratesDetachDuringUpdate(t *testing.T) {
	s := NewScene()
	a := NewContainer("a")
	b := NewContainer("b")
	s.Root().AddChild(a)
	s.Root().AddChild(b)

	ran := false
	a.OnUpdate = func(float64) { b.Dispose() }
	b.OnUpdate = func(float64) { ran = true }

	s.tick(1.0 / 60)
	if ran {
		t.Error("disposed node should not be updated")
	}
}

func TestSceneTickRefreshesTransforms(t *testing.T) {
	s := NewScene()
	r := newHitRect("r", 10, 10)
	s.Root().AddChild(r)
	r.SetPosition(100, 100)

	downs := 0
	r.OnPointerDown = func(PointerContext) { downs++ }
	s.InjectPress(105, 105)
	s.tick(1.0 / 60)
	if downs != 1 {
		t.Errorf("press should hit the moved node, downs = %d", downs)
	}
}
