package willowkit

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// maxTweenFields is the number of fields one TweenGroup can drive.
const maxTweenFields = 4

// FieldTarget names a float64 field on a node and the value to animate it to.
type FieldTarget struct {
	Field *float64
	To    float64
}

// TweenGroup animates up to 4 float64 fields on a Node simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenAlpha,
// TweenFields, ...) and either call Update(dt) each frame yourself or attach
// it to a node with Node.Animate so the scene advances it.
//
// The group writes values into the target fields and marks the node dirty.
// If the target node is disposed, the group stops immediately.
type TweenGroup struct {
	tweens [maxTweenFields]*gween.Tween
	count  int
	fields [maxTweenFields]*float64
	target *Node
	Done   bool

	// OnComplete runs once when every tween reaches its end value.
	// It does not run for cancelled groups.
	OnComplete func()

	cancelled bool
}

// Update advances all tweens by dt seconds, writes values to the target fields,
// and marks the node dirty.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.target != nil {
		g.target.MarkDirty()
	}
	if g.Done && g.OnComplete != nil {
		g.OnComplete()
	}
}

// Cancel stops the group where it is. Fields keep their current
// interpolated values and OnComplete is not called.
func (g *TweenGroup) Cancel() {
	if g.Done {
		return
	}
	g.Done = true
	g.cancelled = true
}

// Cancelled reports whether the group was stopped by Cancel.
func (g *TweenGroup) Cancelled() bool {
	return g.cancelled
}

// TweenFields creates a TweenGroup that animates each target field from its
// current value. Panics if more than 4 targets are given.
func TweenFields(node *Node, duration float32, fn ease.TweenFunc, targets ...FieldTarget) *TweenGroup {
	if len(targets) > maxTweenFields {
		panic("willowkit: a tween group animates at most 4 fields")
	}
	g := &TweenGroup{count: len(targets), target: node}
	for i, t := range targets {
		g.tweens[i] = gween.New(float32(*t.Field), float32(t.To), duration, fn)
		g.fields[i] = t.Field
	}
	if g.count == 0 {
		g.Done = true
	}
	return g
}

// TweenPosition creates a TweenGroup that animates node.X and node.Y to the
// given target coordinates over the specified duration using the easing function.
func TweenPosition(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return TweenFields(node, duration, fn,
		FieldTarget{Field: &node.X, To: toX},
		FieldTarget{Field: &node.Y, To: toY})
}

// TweenAlpha creates a TweenGroup that animates node.Alpha to the target value
// over the specified duration using the easing function.
func TweenAlpha(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return TweenFields(node, duration, fn, FieldTarget{Field: &node.Alpha, To: to})
}

// TweenRotation creates a TweenGroup that animates node.Rotation to the target
// value over the specified duration using the easing function.
func TweenRotation(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return TweenFields(node, duration, fn, FieldTarget{Field: &node.Rotation, To: to})
}
