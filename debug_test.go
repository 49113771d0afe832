package willowkit

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))
	t.Cleanup(func() { SetLogger(zerolog.Nop()) })
	return &buf
}

func TestDebugMode_DisposedNodePanics(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	parent := NewContainer("parent")
	s.Root().AddChild(parent)

	child := NewRect("child", 10, 10, ColorWhite)
	child.Dispose()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on AddChild with disposed node, got none")
		}
		if msg := fmt.Sprint(r); !strings.Contains(msg, "disposed") {
			t.Errorf("panic message should mention 'disposed', got: %s", msg)
		}
	}()

	parent.AddChild(child)
}

func TestDebugMode_DisposedParentPanics(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	parent := NewContainer("parent")
	parent.Dispose()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on AddChild to disposed parent, got none")
		}
		if msg := fmt.Sprint(r); !strings.Contains(msg, "disposed") {
			t.Errorf("panic message should mention 'disposed', got: %s", msg)
		}
	}()

	parent.AddChild(NewRect("child", 10, 10, ColorWhite))
}

func TestReleaseMode_DisposedNodeNoPanic(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(false)

	child := NewRect("child", 10, 10, ColorWhite)
	child.Dispose()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("release mode should not panic on disposed node, got: %v", r)
		}
	}()
	s.Root().AddChild(child)
}

func TestDebugMode_TreeDepthWarning(t *testing.T) {
	buf := captureLogs(t)
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	current := s.Root()
	for i := 0; i < debugMaxTreeDepth+5; i++ {
		child := NewContainer(fmt.Sprintf("depth_%d", i))
		current.AddChild(child)
		current = child
	}

	out := buf.String()
	if !strings.Contains(out, "tree depth exceeds threshold") {
		t.Errorf("expected tree depth warning, got: %q", out)
	}
	if !strings.Contains(out, `"level":"warn"`) {
		t.Errorf("expected warn level, got: %q", out)
	}
}

func TestReleaseMode_NoTreeDepthWarning(t *testing.T) {
	buf := captureLogs(t)
	s := NewScene()
	s.SetDebugMode(false)

	current := s.Root()
	for i := 0; i < debugMaxTreeDepth+5; i++ {
		child := NewContainer("deep")
		current.AddChild(child)
		current = child
	}
	if buf.Len() != 0 {
		t.Errorf("release mode should not log, got: %q", buf.String())
	}
}

func TestDebugMode_FrameTimingLogged(t *testing.T) {
	buf := captureLogs(t)
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	s.Root().AddChild(NewContainer("a"))
	s.tick(1.0 / 60)

	out := buf.String()
	if !strings.Contains(out, "frame update") || !strings.Contains(out, `"nodes":2`) {
		t.Errorf("expected frame update log with 2 nodes, got: %q", out)
	}
	if !strings.Contains(out, `"component":"willowkit"`) {
		t.Errorf("logger should tag the component, got: %q", out)
	}
}
