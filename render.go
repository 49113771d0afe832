package willowkit

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// whitePixel is a 1x1 white image scaled up to draw solid rectangles.
// Created lazily so the package can be used without a graphics context.
var whitePixel *ebiten.Image

func solidImage() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(ColorWhite.toRGBA())
	}
	return whitePixel
}

// Draw traverses the scene tree in painter order and draws every visible
// node onto screen.
func (s *Scene) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	drawn := 0
	s.traverse(screen, s.root, identityTransform, 1.0, false, &drawn)
	if s.debug {
		s.debugLogDraw(time.Since(t0), drawn)
	}
}

// traverse walks the node tree depth-first, updating transforms and drawing
// visible nodes. ZIndex-sorted children are drawn after (above) their parent.
func (s *Scene) traverse(target *ebiten.Image, n *Node, parentTransform [6]float64, parentAlpha float64, parentRecomputed bool, drawn *int) {
	if !n.Visible {
		return
	}

	recompute := n.transformDirty || parentRecomputed
	if recompute {
		n.worldTransform = multiplyAffine(parentTransform, computeLocalTransform(n))
		n.worldAlpha = parentAlpha * n.Alpha
		n.transformDirty = false
	}

	if n.worldAlpha > 0 {
		switch n.Type {
		case NodeTypeSprite:
			drawSprite(target, n)
			*drawn++
		case NodeTypeCustom:
			if n.OnDraw != nil {
				n.OnDraw(DrawContext{Target: target, GeoM: geoM(n.worldTransform), Alpha: n.worldAlpha, Node: n})
				*drawn++
			}
		}
	}

	for _, child := range sortedChildrenOf(n) {
		s.traverse(target, child, n.worldTransform, n.worldAlpha, recompute, drawn)
	}
}

// drawSprite draws a solid Width x Height rectangle tinted by Color.
func drawSprite(target *ebiten.Image, n *Node) {
	if n.Width <= 0 || n.Height <= 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(n.Width, n.Height)
	op.GeoM.Concat(geoM(n.worldTransform))
	a := float32(n.Color.A * n.worldAlpha)
	op.ColorScale.Scale(float32(n.Color.R)*a, float32(n.Color.G)*a, float32(n.Color.B)*a, a)
	target.DrawImage(solidImage(), &op)
}
