package willowkit

import (
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Label draws a single line of text inside its node's box, vertically
// centered and horizontally aligned by Align. A nil Face draws nothing.
type Label struct {
	node *Node

	Text  string
	Face  text.Face
	Align TextAlign
	Color Color
}

// NewLabel creates an empty black label.
func NewLabel(name string, face text.Face) *Label {
	l := &Label{Face: face, Color: ColorBlack}
	l.node = NewCustom(name, l.draw)
	return l
}

// Node returns the label's node.
func (l *Label) Node() *Node { return l.node }

// SetFrame positions the label's box in its parent.
func (l *Label) SetFrame(r Rect) {
	l.node.SetPosition(r.X, r.Y)
	l.node.SetSize(r.Width, r.Height)
}

// Frame returns the label's box in its parent.
func (l *Label) Frame() Rect {
	return Rect{X: l.node.X, Y: l.node.Y, Width: l.node.Width, Height: l.node.Height}
}

// Advance returns the horizontal advance of s in the label's face.
func (l *Label) Advance(s string) float64 {
	if l.Face == nil || s == "" {
		return 0
	}
	return text.Advance(s, l.Face)
}

// lineHeight is the ascent plus descent of the face.
func (l *Label) lineHeight() float64 {
	if l.Face == nil {
		return 0
	}
	m := l.Face.Metrics()
	return m.HAscent + m.HDescent
}

func (l *Label) draw(ctx DrawContext) {
	if l.Face == nil || l.Text == "" {
		return
	}
	op := &text.DrawOptions{}
	x := 0.0
	switch l.Align {
	case TextAlignCenter:
		x = l.node.Width / 2
		op.PrimaryAlign = text.AlignCenter
	case TextAlignRight:
		x = l.node.Width
		op.PrimaryAlign = text.AlignEnd
	}
	op.GeoM.Translate(x, (l.node.Height-l.lineHeight())/2)
	op.GeoM.Concat(ctx.GeoM)
	a := float32(l.Color.A * ctx.Alpha)
	op.ColorScale.Scale(float32(l.Color.R)*a, float32(l.Color.G)*a, float32(l.Color.B)*a, a)
	text.Draw(ctx.Target, l.Text, l.Face, op)
}
