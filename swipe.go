package willowkit

import (
	"github.com/tanema/gween/ease"
)

const (
	// MaxSwipeAngle is the rotation (radians) a card reaches when dragged to
	// either edge of its bounds.
	MaxSwipeAngle = 0.3
	// SwipeTranslationFactor amplifies the horizontal displacement derived
	// from the rotation angle.
	SwipeTranslationFactor = 2.5
	// SnapBackDuration is the length in seconds of the return-to-neutral
	// animation after an inconclusive drag.
	SnapBackDuration = 0.3
)

// DefaultShadowOffset is the shadow offset of a newly created card.
var DefaultShadowOffset = Vec2{X: 4, Y: 4}

// SwipeDelegate receives hot region notifications from a SwipeView.
// Implementations are not owned by the card; a nil delegate drops events.
type SwipeDelegate interface {
	// HotRegionReached fires when the card moves from the neutral zone into region.
	HotRegionReached(card *SwipeView, region HotRegion)
	// HotRegionLeft fires when the card moves from region back to the neutral zone.
	HotRegionLeft(card *SwipeView, region HotRegion)
	// HotRegionConfirmed fires when the card is released inside region.
	HotRegionConfirmed(card *SwipeView, region HotRegion)
}

// SwipeDelegateFuncs adapts plain functions to SwipeDelegate. Nil fields are skipped.
type SwipeDelegateFuncs struct {
	OnReach   func(card *SwipeView, region HotRegion)
	OnLeave   func(card *SwipeView, region HotRegion)
	OnConfirm func(card *SwipeView, region HotRegion)
}

func (f SwipeDelegateFuncs) HotRegionReached(card *SwipeView, region HotRegion) {
	if f.OnReach != nil {
		f.OnReach(card, region)
	}
}

func (f SwipeDelegateFuncs) HotRegionLeft(card *SwipeView, region HotRegion) {
	if f.OnLeave != nil {
		f.OnLeave(card, region)
	}
}

func (f SwipeDelegateFuncs) HotRegionConfirmed(card *SwipeView, region HotRegion) {
	if f.OnConfirm != nil {
		f.OnConfirm(card, region)
	}
}

// RotationAngle maps a horizontal drag inside bounds to a rotation angle in
// [-MaxSwipeAngle, MaxSwipeAngle]. start and current share one coordinate
// space. The displacement is re-centered on bounds' midpoint and clamped to
// [0, bounds.MaxX()], so the angle saturates once the pointer has travelled
// half the width. Degenerate bounds yield 0.
func RotationAngle(bounds Rect, start, current Vec2) float64 {
	midX := bounds.MidX()
	if midX <= 0 || bounds.Width <= 0 {
		return 0
	}
	dx := midX - (start.X - current.X)
	dx = min(max(dx, 0), bounds.MaxX())
	return ((-midX + dx) / midX) * MaxSwipeAngle
}

// DragState is the phase of a card's drag session.
type DragState uint8

const (
	DragIdle     DragState = iota // no gesture in progress
	DragDragging                  // between Begin and End/Cancel
)

// dragSession is the per-gesture state of a card.
type dragSession struct {
	state DragState
	start Vec2
}

// SwipeView is a draggable card. Dragging it sideways rotates and shifts it;
// crossing ±HotRegionThreshold reports hot region edges to its delegate, and
// releasing inside a region confirms it. Releasing elsewhere snaps it back.
//
// A SwipeView is usually managed by a SwipeContainer, which activates only the
// top card. Its pivot sits at the center of its bounds, so Node().X is the
// card's horizontal center in the parent.
type SwipeView struct {
	node       *Node
	background *Node
	shadow     *Node
	content    *Node

	// Swipeable gates dragging independently of the active state.
	Swipeable bool
	// UserInfo is an arbitrary payload identifying the card's content.
	UserInfo any

	delegate     SwipeDelegate
	active       bool
	castsShadow  bool
	shadowOffset Vec2

	session  dragSession
	tracker  hotRegionTracker
	snapBack *TweenGroup
	exit     *TweenGroup
	owner    *SwipeContainer
}

// NewSwipeView creates a card with the given initial active state. The card
// has zero size until it is pushed onto a container or laid out with SetSize.
func NewSwipeView(active bool) *SwipeView {
	v := &SwipeView{
		Swipeable:    true,
		active:       active,
		shadowOffset: DefaultShadowOffset,
	}

	v.node = NewContainer("swipe_view")
	v.node.Interactable = true
	v.node.UserData = v

	v.shadow = NewRect("swipe_view_shadow", 0, 0, ColorDarkGray.WithAlpha(0.5))
	v.shadow.Visible = false
	v.background = NewRect("swipe_view_background", 0, 0, ColorWhite)
	v.content = NewContainer("swipe_view_content")
	v.content.Interactable = true

	v.node.AddChild(v.shadow)
	v.node.AddChild(v.background)
	v.node.AddChild(v.content)

	v.node.OnDragStart = func(ctx DragContext) { v.Begin(v.ambientPoint(ctx.GlobalX, ctx.GlobalY)) }
	v.node.OnDrag = func(ctx DragContext) { v.Move(v.ambientPoint(ctx.GlobalX, ctx.GlobalY)) }
	v.node.OnDragEnd = func(DragContext) { v.End() }
	v.node.OnDragCancel = func(DragContext) { v.Cancel() }
	return v
}

// Node returns the card's root node.
func (v *SwipeView) Node() *Node { return v.node }

// Content returns the node application children should be added to.
func (v *SwipeView) Content() *Node { return v.content }

// SetBackgroundColor sets the fill drawn behind the content node.
func (v *SwipeView) SetBackgroundColor(c Color) { v.background.Color = c }

// Bounds returns the card's local bounds.
func (v *SwipeView) Bounds() Rect { return v.node.Bounds() }

// IsActive reports whether the card currently accepts drags.
func (v *SwipeView) IsActive() bool { return v.active }

// HotRegion returns the region the card last reported, or HotRegionNone.
// After a confirm it keeps the confirmed region.
func (v *SwipeView) HotRegion() HotRegion { return v.tracker.current }

// DragState returns the phase of the current drag session.
func (v *SwipeView) DragState() DragState { return v.session.state }

// Delegate returns the bound delegate, or nil.
func (v *SwipeView) Delegate() SwipeDelegate { return v.delegate }

// SetDelegate binds d to receive hot region events. A container replaces the
// binding on push and clears it on pop.
func (v *SwipeView) SetDelegate(d SwipeDelegate) { v.delegate = d }

// CastsShadow reports whether the shadow is drawn.
func (v *SwipeView) CastsShadow() bool { return v.castsShadow }

// ShadowOffset returns the shadow offset.
func (v *SwipeView) ShadowOffset() Vec2 { return v.shadowOffset }

// SetCastsShadow toggles the drop shadow and applies it immediately.
func (v *SwipeView) SetCastsShadow(enabled bool) {
	v.castsShadow = enabled
	v.applyShadow()
}

// SetShadowOffset moves the drop shadow and applies it immediately.
func (v *SwipeView) SetShadowOffset(offset Vec2) {
	v.shadowOffset = offset
	v.applyShadow()
}

func (v *SwipeView) applyShadow() {
	v.shadow.Visible = v.castsShadow
	v.shadow.SetPosition(v.shadowOffset.X, v.shadowOffset.Y)
	v.shadow.SetSize(v.node.Width, v.node.Height)
}

// SetSize lays the card out as a w x h box centered at (w/2, h/2) in its
// parent. An in-progress drag keeps its current transform.
func (v *SwipeView) SetSize(w, h float64) {
	v.node.SetSize(w, h)
	v.node.SetPivot(w/2, h/2)
	v.node.HitShape = HitRect{Width: w, Height: h}
	v.background.SetSize(w, h)
	v.content.SetSize(w, h)
	v.applyShadow()
	if v.session.state == DragIdle {
		v.node.SetPosition(w/2, h/2)
	} else {
		v.node.Y = h / 2
	}
}

// resetTransform returns the card to its neutral, fully opaque pose with no
// region, dropping any pending snap-back.
func (v *SwipeView) resetTransform() {
	v.cancelSnapBack()
	v.session = dragSession{}
	v.tracker = hotRegionTracker{}
	v.node.SetRotation(0)
	v.node.SetPosition(v.node.Width/2, v.node.Height/2)
	v.node.SetAlpha(1)
}

// SetActive gates pointer input. A container manages this for its cards.
// Deactivating mid-drag ends the session the way a cancelled gesture does,
// except that the region is cleared without notifying the delegate: the card
// snaps back to its neutral pose.
func (v *SwipeView) SetActive(active bool) {
	v.active = active
	if active || v.session.state != DragDragging {
		return
	}
	v.session = dragSession{}
	v.tracker = hotRegionTracker{}
	logger.Debug().Uint32("card", v.node.ID).Msg("swipe interrupted by deactivation")
	v.animateSnapBack()
}

func (v *SwipeView) accepts() bool {
	return v.active && v.Swipeable
}

// ambientPoint converts a world position into the card's parent space, the
// space the drag session measures in.
func (v *SwipeView) ambientPoint(wx, wy float64) Vec2 {
	if v.node.Parent == nil {
		return Vec2{X: wx, Y: wy}
	}
	x, y := v.node.Parent.WorldToLocal(wx, wy)
	return Vec2{X: x, Y: y}
}

// Begin starts a drag session at p (parent space). An in-flight snap-back is
// cancelled and the card continues from its current interpolated pose.
func (v *SwipeView) Begin(p Vec2) {
	if !v.accepts() {
		return
	}
	v.cancelSnapBack()
	v.session = dragSession{state: DragDragging, start: p}
	logger.Debug().Uint32("card", v.node.ID).Float64("x", p.X).Float64("y", p.Y).Msg("swipe begin")
}

// Move updates the session with the pointer at p (parent space): it
// classifies the new angle, reports region edges, and applies the transform.
func (v *SwipeView) Move(p Vec2) {
	if !v.accepts() || v.session.state != DragDragging {
		return
	}
	angle := RotationAngle(v.Bounds(), v.session.start, p)
	v.setRegion(ClassifyAngle(angle))
	v.applyAngle(angle)
}

// End finishes the session. Inside a hot region the delegate is asked to
// confirm and the transform is left for the caller to dispose of; otherwise
// the card snaps back.
func (v *SwipeView) End() {
	if !v.accepts() || v.session.state != DragDragging {
		return
	}
	v.session = dragSession{}
	region := v.tracker.current
	if region == HotRegionNone {
		v.animateSnapBack()
		return
	}
	logger.Debug().Uint32("card", v.node.ID).Stringer("region", region).Msg("swipe confirmed")
	if v.delegate != nil {
		v.delegate.HotRegionConfirmed(v, region)
	}
}

// Cancel aborts the session and snaps the card back. If the card was inside
// a hot region the delegate receives HotRegionLeft for it first, so a
// cancelled gesture always ends with the card outside every region.
func (v *SwipeView) Cancel() {
	if !v.accepts() || v.session.state != DragDragging {
		return
	}
	v.session = dragSession{}
	v.setRegion(HotRegionNone)
	v.animateSnapBack()
}

func (v *SwipeView) setRegion(next HotRegion) {
	edge, region := v.tracker.update(next)
	if edge == transitionNone {
		return
	}
	logger.Debug().Uint32("card", v.node.ID).Stringer("region", region).Bool("reach", edge == transitionReach).Msg("hot region edge")
	if v.delegate == nil {
		return
	}
	switch edge {
	case transitionReach:
		v.delegate.HotRegionReached(v, region)
	case transitionLeave:
		v.delegate.HotRegionLeft(v, region)
	}
}

func (v *SwipeView) applyAngle(angle float64) {
	midX := v.Bounds().MidX()
	v.node.SetRotation(angle)
	v.node.X = midX + angle*midX*SwipeTranslationFactor
}

// SnapBack returns the in-flight snap-back animation, or nil.
func (v *SwipeView) SnapBack() *TweenGroup { return v.snapBack }

func (v *SwipeView) animateSnapBack() {
	if v.snapBack != nil {
		v.snapBack.Cancel()
	}
	n := v.node
	g := TweenFields(n, SnapBackDuration, ease.InOutQuad,
		FieldTarget{Field: &n.Rotation, To: 0},
		FieldTarget{Field: &n.X, To: v.Bounds().MidX()})
	g.OnComplete = func() {
		if v.snapBack == g {
			v.snapBack = nil
		}
	}
	v.snapBack = n.Animate(g)
}

func (v *SwipeView) cancelSnapBack() {
	if v.snapBack != nil {
		v.snapBack.Cancel()
		v.snapBack = nil
	}
}

// cancelExit stops a pending container exit animation, if any.
func (v *SwipeView) cancelExit() {
	if v.exit != nil {
		v.exit.Cancel()
		v.exit = nil
	}
}
