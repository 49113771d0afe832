package willowkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFPSWidgetRefreshesOnInterval(t *testing.T) {
	n := NewFPSWidget()
	assert.Equal(t, NodeTypeCustom, n.Type)
	assert.Equal(t, 100.0, n.Width)

	w := &fpsWidget{node: n, rates: func() (float64, float64) { return 60, 60 }}
	w.refresh()
	assert.Equal(t, "FPS: 60.0\nTPS: 60.0", w.text)
	assert.True(t, w.dirty)

	w.dirty = false
	w.rates = func() (float64, float64) { return 30, 60 }
	w.update(0.2)
	assert.False(t, w.dirty, "counters are not re-read before the interval")
	w.update(0.4)
	assert.True(t, w.dirty)
	assert.Equal(t, "FPS: 30.0\nTPS: 60.0", w.text)

	w.dirty = false
	w.update(fpsRefreshInterval)
	assert.False(t, w.dirty, "unchanged counters do not redraw")
}
