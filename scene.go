package willowkit

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Scene or SwipeContainer, interaction events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for the ECS bridge.
type InteractionEvent struct {
	Type      EventType
	EntityID  uint32
	GlobalX   float64
	GlobalY   float64
	LocalX    float64
	LocalY    float64
	Button    MouseButton
	Modifiers KeyModifiers
	// Drag fields (valid for EventDragStart, EventDrag, EventDragEnd, EventDragCancel)
	StartX float64
	StartY float64
	DeltaX float64
	DeltaY float64
	// Region is valid for the hot region events.
	Region HotRegion
}

// Scene is the top-level object that owns the node tree, input state, and
// the per-frame update of node callbacks and animations.
type Scene struct {
	root  *Node
	store EntityStore
	debug bool

	// ClearColor fills the screen before drawing when its alpha is non-zero.
	ClearColor Color

	handlers     handlerRegistry
	captured     [maxPointers]*Node
	pointers     [maxPointers]pointerState
	hitBuf       []*Node
	dragDeadZone float64
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID

	injectQueue []syntheticPointerEvent
	testRunner  *TestRunner

	updateBuf []*Node
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	root := NewContainer("root")
	root.Interactable = true
	return &Scene{
		root:         root,
		dragDeadZone: defaultDragDeadZone,
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Update processes input, then runs node update callbacks and advances node
// animations. Call once per tick from ebiten.Game.Update.
func (s *Scene) Update() {
	s.tick(1.0 / float64(ebiten.TPS()))
}

// tick is Update with an explicit frame delta in seconds.
func (s *Scene) tick(dt float64) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	// Refresh world transforms first so hit testing has accurate positions.
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()
	s.updateNodes(dt)

	if s.debug {
		s.debugLogUpdate(time.Since(t0), len(s.updateBuf))
	}
}

// updateNodes advances animations and OnUpdate callbacks in tree order.
// The node list is snapshotted first because callbacks may detach nodes.
func (s *Scene) updateNodes(dt float64) {
	s.updateBuf = appendSubtree(s.updateBuf[:0], s.root)
	for _, n := range s.updateBuf {
		if n.disposed {
			continue
		}
		n.advanceAnimations(dt)
		if n.OnUpdate != nil {
			n.OnUpdate(dt)
		}
	}
}

func appendSubtree(buf []*Node, n *Node) []*Node {
	buf = append(buf, n)
	for _, c := range n.children {
		buf = appendSubtree(buf, c)
	}
	return buf
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth warnings are logged, and per-frame timing stats
// are logged at debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool
