package willowkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelFrame(t *testing.T) {
	l := NewLabel("title", nil)
	assert.Equal(t, NodeTypeCustom, l.Node().Type)
	assert.Equal(t, ColorBlack, l.Color)

	l.SetFrame(Rect{X: 4, Y: 6, Width: 120, Height: 30})
	assert.Equal(t, Rect{X: 4, Y: 6, Width: 120, Height: 30}, l.Frame())
}

func TestLabelWithoutFaceMeasuresZero(t *testing.T) {
	l := NewLabel("title", nil)
	assert.Zero(t, l.Advance("hello"))
	assert.Zero(t, l.lineHeight())
}

func TestLabelAdvance(t *testing.T) {
	l := NewLabel("title", testFace(t))
	assert.Zero(t, l.Advance(""))
	short := l.Advance("ab")
	assert.Greater(t, short, 0.0)
	assert.Greater(t, l.Advance("abcd"), short)
	assert.Greater(t, l.lineHeight(), 0.0)
}
