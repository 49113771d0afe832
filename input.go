package willowkit

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	maxPointers         = 10  // pointer 0 = mouse, 1-9 = touch
	defaultDragDeadZone = 4.0 // pixels
)

// --- Built-in HitShape types ---

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// --- Per-pointer state ---

type pointerState struct {
	down      bool
	startX    float64
	startY    float64
	lastX     float64
	lastY     float64
	hitNode   *Node
	dragging  bool
	cancelled bool        // drag aborted; ignore movement until release
	button    MouseButton // button captured at press time
}

// --- Handler registry ---

type handlerEntry[T any] struct {
	id uint32
	fn func(T)
}

type handlerList[T any] []handlerEntry[T]

func (l handlerList[T]) fire(ctx T) {
	for _, h := range l {
		h.fn(ctx)
	}
}

func (l handlerList[T]) without(id uint32) handlerList[T] {
	for i := range l {
		if l[i].id == id {
			copy(l[i:], l[i+1:])
			l[len(l)-1] = handlerEntry[T]{}
			return l[:len(l)-1]
		}
	}
	return l
}

type handlerRegistry struct {
	pointerDown handlerList[PointerContext]
	pointerUp   handlerList[PointerContext]
	pointerMove handlerList[PointerContext]
	click       handlerList[ClickContext]
	dragStart   handlerList[DragContext]
	drag        handlerList[DragContext]
	dragEnd     handlerList[DragContext]
	dragCancel  handlerList[DragContext]
	nextID      uint32
}

// CallbackHandle allows removing a registered scene-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventPointerDown:
		h.reg.pointerDown = h.reg.pointerDown.without(h.id)
	case EventPointerUp:
		h.reg.pointerUp = h.reg.pointerUp.without(h.id)
	case EventPointerMove:
		h.reg.pointerMove = h.reg.pointerMove.without(h.id)
	case EventClick:
		h.reg.click = h.reg.click.without(h.id)
	case EventDragStart:
		h.reg.dragStart = h.reg.dragStart.without(h.id)
	case EventDrag:
		h.reg.drag = h.reg.drag.without(h.id)
	case EventDragEnd:
		h.reg.dragEnd = h.reg.dragEnd.without(h.id)
	case EventDragCancel:
		h.reg.dragCancel = h.reg.dragCancel.without(h.id)
	}
}

func (s *Scene) handle(event EventType) CallbackHandle {
	s.handlers.nextID++
	return CallbackHandle{id: s.handlers.nextID, reg: &s.handlers, event: event}
}

// --- Scene-level event registration ---

// OnPointerDown registers a scene-level callback for pointer down events.
func (s *Scene) OnPointerDown(fn func(PointerContext)) CallbackHandle {
	h := s.handle(EventPointerDown)
	s.handlers.pointerDown = append(s.handlers.pointerDown, handlerEntry[PointerContext]{h.id, fn})
	return h
}

// OnPointerUp registers a scene-level callback for pointer up events.
func (s *Scene) OnPointerUp(fn func(PointerContext)) CallbackHandle {
	h := s.handle(EventPointerUp)
	s.handlers.pointerUp = append(s.handlers.pointerUp, handlerEntry[PointerContext]{h.id, fn})
	return h
}

// OnPointerMove registers a scene-level callback for hover movement.
func (s *Scene) OnPointerMove(fn func(PointerContext)) CallbackHandle {
	h := s.handle(EventPointerMove)
	s.handlers.pointerMove = append(s.handlers.pointerMove, handlerEntry[PointerContext]{h.id, fn})
	return h
}

// OnClick registers a scene-level callback for click events.
func (s *Scene) OnClick(fn func(ClickContext)) CallbackHandle {
	h := s.handle(EventClick)
	s.handlers.click = append(s.handlers.click, handlerEntry[ClickContext]{h.id, fn})
	return h
}

// OnDragStart registers a scene-level callback for drag start events.
func (s *Scene) OnDragStart(fn func(DragContext)) CallbackHandle {
	h := s.handle(EventDragStart)
	s.handlers.dragStart = append(s.handlers.dragStart, handlerEntry[DragContext]{h.id, fn})
	return h
}

// OnDrag registers a scene-level callback for drag events.
func (s *Scene) OnDrag(fn func(DragContext)) CallbackHandle {
	h := s.handle(EventDrag)
	s.handlers.drag = append(s.handlers.drag, handlerEntry[DragContext]{h.id, fn})
	return h
}

// OnDragEnd registers a scene-level callback for drag end events.
func (s *Scene) OnDragEnd(fn func(DragContext)) CallbackHandle {
	h := s.handle(EventDragEnd)
	s.handlers.dragEnd = append(s.handlers.dragEnd, handlerEntry[DragContext]{h.id, fn})
	return h
}

// OnDragCancel registers a scene-level callback for cancelled drags.
func (s *Scene) OnDragCancel(fn func(DragContext)) CallbackHandle {
	h := s.handle(EventDragCancel)
	s.handlers.dragCancel = append(s.handlers.dragCancel, handlerEntry[DragContext]{h.id, fn})
	return h
}

// CapturePointer routes all events for pointerID to the given node.
func (s *Scene) CapturePointer(pointerID int, node *Node) {
	if pointerID >= 0 && pointerID < maxPointers {
		s.captured[pointerID] = node
	}
}

// ReleasePointer stops routing events for pointerID to a captured node.
func (s *Scene) ReleasePointer(pointerID int) {
	if pointerID >= 0 && pointerID < maxPointers {
		s.captured[pointerID] = nil
	}
}

// SetDragDeadZone sets the minimum movement in pixels before a drag starts.
func (s *Scene) SetDragDeadZone(pixels float64) {
	s.dragDeadZone = pixels
}

// CancelPointer aborts the gesture in progress on pointerID. A drag in
// progress receives EventDragCancel; further movement is ignored until the
// pointer is released.
func (s *Scene) CancelPointer(pointerID int) {
	if pointerID < 0 || pointerID >= maxPointers {
		return
	}
	ps := &s.pointers[pointerID]
	if !ps.down || ps.cancelled {
		return
	}
	if ps.dragging {
		s.fireDrag(EventDragCancel, ps.hitNode, pointerID, ps.lastX, ps.lastY, ps, 0, 0, 0)
	}
	ps.cancelled = true
	ps.dragging = false
	s.captured[pointerID] = nil
}

// --- Hit testing ---

// nodeContainsLocal tests whether (lx, ly) falls inside a node's hit region.
// Uses HitShape if set; otherwise the node's Width x Height box.
// Containers with no HitShape are not hit-testable.
func nodeContainsLocal(n *Node, lx, ly float64) bool {
	if n.HitShape != nil {
		return n.HitShape.Contains(lx, ly)
	}
	if n.Type == NodeTypeContainer || (n.Width == 0 && n.Height == 0) {
		return false
	}
	return lx >= 0 && lx <= n.Width && ly >= 0 && ly <= n.Height
}

// collectInteractable walks the tree in painter order (DFS, ZIndex-sorted),
// appending hit-testable nodes to buf. Skips Visible=false or
// Interactable=false subtrees.
func collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible || !n.Interactable {
		return buf
	}
	if n.HitShape != nil || n.Type != NodeTypeContainer {
		buf = append(buf, n)
	}
	for _, child := range sortedChildrenOf(n) {
		buf = collectInteractable(child, buf)
	}
	return buf
}

// hitTest finds the topmost interactable node at (worldX, worldY).
// Returns nil if nothing is hit.
func (s *Scene) hitTest(worldX, worldY float64) *Node {
	s.hitBuf = collectInteractable(s.root, s.hitBuf[:0])
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		n := s.hitBuf[i]
		lx, ly := n.WorldToLocal(worldX, worldY)
		if nodeContainsLocal(n, lx, ly) {
			return n
		}
	}
	return nil
}

// --- Input processing ---

func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}

// processInput is called from Scene.Update to handle mouse and touch input.
// Injected events take priority over real input for the frame.
func (s *Scene) processInput() {
	mods := readModifiers()
	s.cancelStaleDrags()
	if s.processInjectedInput(mods) {
		return
	}
	s.processMousePointer(mods)
	s.processTouchPointers(mods)
}

// cancelStaleDrags aborts drags whose node was disposed, hidden, or made
// non-interactable mid-gesture.
func (s *Scene) cancelStaleDrags() {
	for i := range s.pointers {
		ps := &s.pointers[i]
		if !ps.dragging || ps.hitNode == nil {
			continue
		}
		n := ps.hitNode
		if n.IsDisposed() || !n.Visible || !n.Interactable {
			s.CancelPointer(i)
		}
	}
}

func (s *Scene) processMousePointer(mods KeyModifiers) {
	mx, my := ebiten.CursorPosition()

	var pressed bool
	var button MouseButton
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		pressed, button = true, MouseButtonLeft
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		pressed, button = true, MouseButtonRight
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		pressed, button = true, MouseButtonMiddle
	}

	s.processPointer(0, float64(mx), float64(my), pressed, button, mods)
}

// processTouchPointers handles touch input (pointers 1-9).
func (s *Scene) processTouchPointers(mods KeyModifiers) {
	touchIDs := ebiten.AppendTouchIDs(s.prevTouchIDs[:0])
	s.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := s.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		s.processPointer(slot, float64(tx), float64(ty), true, MouseButtonLeft, mods)
	}

	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && !activeSlots[i] {
			ps := &s.pointers[i]
			if ps.down {
				s.processPointer(i, ps.lastX, ps.lastY, false, MouseButtonLeft, mods)
			}
			s.touchUsed[i] = false
			s.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (s *Scene) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the pointer state machine for a single pointer.
func (s *Scene) processPointer(pointerID int, wx, wy float64, pressed bool, button MouseButton, mods KeyModifiers) {
	ps := &s.pointers[pointerID]

	var target *Node
	if s.captured[pointerID] != nil {
		target = s.captured[pointerID]
	} else {
		target = s.hitTest(wx, wy)
	}

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.cancelled = false
		ps.button = button
		ps.startX, ps.startY = wx, wy
		ps.lastX, ps.lastY = wx, wy
		ps.hitNode = target
		ps.dragging = false
		s.firePointer(EventPointerDown, target, pointerID, wx, wy, ps.button, mods)

	case !pressed && ps.down:
		if ps.dragging {
			s.fireDrag(EventDragEnd, ps.hitNode, pointerID, wx, wy, ps, wx-ps.lastX, wy-ps.lastY, mods)
		} else if !ps.cancelled && ps.hitNode != nil && ps.hitNode == target {
			s.fireClick(target, pointerID, wx, wy, ps.button, mods)
		}
		s.firePointer(EventPointerUp, target, pointerID, wx, wy, ps.button, mods)

		s.captured[pointerID] = nil
		ps.down = false
		ps.cancelled = false
		ps.hitNode = nil
		ps.dragging = false
		ps.lastX, ps.lastY = wx, wy

	case pressed && ps.down:
		if ps.cancelled {
			ps.lastX, ps.lastY = wx, wy
			return
		}
		if wx != ps.lastX || wy != ps.lastY {
			if !ps.dragging {
				dx := wx - ps.startX
				dy := wy - ps.startY
				if math.Sqrt(dx*dx+dy*dy) > s.dragDeadZone {
					ps.dragging = true
					s.fireDrag(EventDragStart, ps.hitNode, pointerID, wx, wy, ps, wx-ps.startX, wy-ps.startY, mods)
				}
			}
			if ps.dragging {
				s.fireDrag(EventDrag, ps.hitNode, pointerID, wx, wy, ps, wx-ps.lastX, wy-ps.lastY, mods)
			}
		}
		ps.lastX, ps.lastY = wx, wy

	default:
		if wx != ps.lastX || wy != ps.lastY {
			s.firePointer(EventPointerMove, target, pointerID, wx, wy, button, mods)
			ps.lastX, ps.lastY = wx, wy
		}
	}
}

// --- Event dispatch ---

func nodeInfo(node *Node, wx, wy float64) (lx, ly float64, entityID uint32, userData any) {
	if node != nil {
		lx, ly = node.WorldToLocal(wx, wy)
		entityID = node.EntityID
		userData = node.UserData
	}
	return
}

func (s *Scene) firePointer(event EventType, node *Node, pointerID int, wx, wy float64, button MouseButton, mods KeyModifiers) {
	lx, ly, entityID, userData := nodeInfo(node, wx, wy)
	ctx := PointerContext{
		Node: node, EntityID: entityID, UserData: userData,
		GlobalX: wx, GlobalY: wy, LocalX: lx, LocalY: ly,
		Button: button, PointerID: pointerID, Modifiers: mods,
	}
	// Scene-level handlers first, then the per-node callback.
	var perNode func(PointerContext)
	switch event {
	case EventPointerDown:
		s.handlers.pointerDown.fire(ctx)
		if node != nil {
			perNode = node.OnPointerDown
		}
	case EventPointerUp:
		s.handlers.pointerUp.fire(ctx)
		if node != nil {
			perNode = node.OnPointerUp
		}
	case EventPointerMove:
		s.handlers.pointerMove.fire(ctx)
		if node != nil {
			perNode = node.OnPointerMove
		}
	}
	if perNode != nil {
		perNode(ctx)
	}
	s.emitInteractionEvent(InteractionEvent{
		Type: event, EntityID: entityID,
		GlobalX: wx, GlobalY: wy, LocalX: lx, LocalY: ly,
		Button: button, Modifiers: mods,
	})
}

func (s *Scene) fireClick(node *Node, pointerID int, wx, wy float64, button MouseButton, mods KeyModifiers) {
	lx, ly, entityID, userData := nodeInfo(node, wx, wy)
	ctx := ClickContext{
		Node: node, EntityID: entityID, UserData: userData,
		GlobalX: wx, GlobalY: wy, LocalX: lx, LocalY: ly,
		Button: button, PointerID: pointerID, Modifiers: mods,
	}
	s.handlers.click.fire(ctx)
	if node != nil && node.OnClick != nil {
		node.OnClick(ctx)
	}
	s.emitInteractionEvent(InteractionEvent{
		Type: EventClick, EntityID: entityID,
		GlobalX: wx, GlobalY: wy, LocalX: lx, LocalY: ly,
		Button: button, Modifiers: mods,
	})
}

func (s *Scene) fireDrag(event EventType, node *Node, pointerID int, wx, wy float64, ps *pointerState, deltaX, deltaY float64, mods KeyModifiers) {
	lx, ly, entityID, userData := nodeInfo(node, wx, wy)
	ctx := DragContext{
		Node: node, EntityID: entityID, UserData: userData,
		GlobalX: wx, GlobalY: wy, LocalX: lx, LocalY: ly,
		StartX: ps.startX, StartY: ps.startY, DeltaX: deltaX, DeltaY: deltaY,
		Button: ps.button, PointerID: pointerID, Modifiers: mods,
	}
	var perNode func(DragContext)
	switch event {
	case EventDragStart:
		s.handlers.dragStart.fire(ctx)
		if node != nil {
			perNode = node.OnDragStart
		}
	case EventDrag:
		s.handlers.drag.fire(ctx)
		if node != nil {
			perNode = node.OnDrag
		}
	case EventDragEnd:
		s.handlers.dragEnd.fire(ctx)
		if node != nil {
			perNode = node.OnDragEnd
		}
	case EventDragCancel:
		s.handlers.dragCancel.fire(ctx)
		if node != nil {
			perNode = node.OnDragCancel
		}
	}
	if perNode != nil {
		perNode(ctx)
	}
	s.emitInteractionEvent(InteractionEvent{
		Type: event, EntityID: entityID,
		GlobalX: wx, GlobalY: wy, LocalX: lx, LocalY: ly,
		Button: ps.button, Modifiers: mods,
		StartX: ps.startX, StartY: ps.startY, DeltaX: deltaX, DeltaY: deltaY,
	})
}

// --- ECS bridge ---

// emitInteractionEvent forwards an event to the entity store when the node
// carries an EntityID.
func (s *Scene) emitInteractionEvent(ev InteractionEvent) {
	if s.store == nil || ev.EntityID == 0 {
		return
	}
	s.store.EmitEvent(ev)
}
