package willowkit

import (
	"errors"
	"testing"
)

func TestLoadTestScript(t *testing.T) {
	data := []byte(`
steps:
  - {action: click, x: 100, y: 200}
  - {action: wait, frames: 3}
  - {action: drag, fromX: 150, fromY: 200, toX: 10, toY: 200, frames: 8}
  - {action: cancel}
`)
	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "click" || runner.steps[0].X != 100 || runner.steps[0].Y != 200 {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].Action != "wait" || runner.steps[1].Frames != 3 {
		t.Error("step 1 mismatch")
	}
	st := runner.steps[2]
	if st.FromX != 150 || st.ToX != 10 || st.Frames != 8 {
		t.Errorf("step 2 = %+v", st)
	}
}

func TestLoadTestScript_JSON(t *testing.T) {
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "press", "x": 1, "y": 2}]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if runner.steps[0].Action != "press" {
		t.Errorf("action = %q, want press", runner.steps[0].Action)
	}
}

func TestLoadTestScript_Invalid(t *testing.T) {
	if _, err := LoadTestScript([]byte("steps: [")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoadTestScript_Empty(t *testing.T) {
	_, err := LoadTestScript([]byte(`steps: []`))
	if !errors.Is(err, ErrEmptyScript) {
		t.Errorf("err = %v, want ErrEmptyScript", err)
	}
}

func TestLoadTestScript_UnknownAction(t *testing.T) {
	if _, err := LoadTestScript([]byte(`steps: [{action: screenshot}]`)); err == nil {
		t.Error("expected error for unknown action")
	}
}

func TestRunnerStep_Click(t *testing.T) {
	s := NewScene()
	s.Root().AddChild(newHitRect("r", 200, 200))
	refresh(s)

	runner, err := LoadTestScript([]byte(`steps: [{action: click, x: 50, y: 50}]`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(runner)

	runner.step(s)
	if s.PendingInjections() != 2 {
		t.Fatalf("expected 2 queued events, got %d", s.PendingInjections())
	}
	if runner.Done() {
		t.Error("runner should not be done while inject queue has events")
	}

	s.processInput()
	s.processInput()

	runner.step(s)
	if !runner.Done() {
		t.Error("runner should be done after all steps executed and queue drained")
	}
}

func TestRunnerStep_Wait(t *testing.T) {
	s := NewScene()
	runner, err := LoadTestScript([]byte(`
steps:
  - {action: wait, frames: 3}
  - {action: wait, frames: 1}
`))
	if err != nil {
		t.Fatal(err)
	}

	// Frame 1 executes the wait; frames 2 and 3 count it down.
	for i := 0; i < 3; i++ {
		runner.step(s)
		if runner.Done() {
			t.Fatalf("should not be done on frame %d", i+1)
		}
	}

	runner.step(s)
	if !runner.Done() {
		t.Error("runner should be done after the last wait")
	}
}

func TestRunnerStep_Drag(t *testing.T) {
	s := NewScene()
	runner, err := LoadTestScript([]byte(`steps: [{action: drag, fromX: 10, fromY: 10, toX: 200, toY: 200, frames: 4}]`))
	if err != nil {
		t.Fatal(err)
	}

	runner.step(s)
	if s.PendingInjections() != 4 {
		t.Fatalf("expected 4 queued events for drag, got %d", s.PendingInjections())
	}
}

func TestRunnerDone(t *testing.T) {
	s := NewScene()
	runner, err := LoadTestScript([]byte(`steps: [{action: wait, frames: 1}]`))
	if err != nil {
		t.Fatal(err)
	}
	if runner.Done() {
		t.Error("runner should not be done before any steps")
	}
	runner.step(s)
	if !runner.Done() {
		t.Error("runner should be done after a single wait step")
	}
}

func TestRunnerWaitsForInjectQueue(t *testing.T) {
	s := NewScene()
	runner, err := LoadTestScript([]byte(`
steps:
  - {action: click, x: 50, y: 50}
  - {action: wait, frames: 1}
`))
	if err != nil {
		t.Fatal(err)
	}

	runner.step(s)
	if s.PendingInjections() != 2 {
		t.Fatalf("expected 2 events, got %d", s.PendingInjections())
	}

	runner.step(s)
	if runner.cursor != 1 {
		t.Errorf("cursor should still be 1, got %d", runner.cursor)
	}

	s.injectQueue = s.injectQueue[:0]
	runner.step(s)
	if !runner.Done() {
		t.Error("runner should be done")
	}
}

func TestRunnerDrivesSceneTick(t *testing.T) {
	s := NewScene()
	r := newHitRect("r", 100, 100)
	s.Root().AddChild(r)

	clicks := 0
	r.OnClick = func(ClickContext) { clicks++ }

	runner, err := LoadTestScript([]byte(`steps: [{action: click, x: 50, y: 50}]`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(runner)

	for i := 0; i < 4 && !runner.Done(); i++ {
		s.tick(1.0 / 60)
	}
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
	if !runner.Done() {
		t.Error("runner should finish once the click has been delivered")
	}
}
