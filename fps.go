package willowkit

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefreshInterval is how often the FPS widget re-reads the counters.
const fpsRefreshInterval = 0.5

type fpsWidget struct {
	node  *Node
	img   *ebiten.Image
	text  string
	dirty bool
	since float64
	// rates is swapped out in tests.
	rates func() (fps, tps float64)
}

// NewFPSWidget creates a node that displays the current FPS and TPS,
// refreshed about twice a second. Add it last (or give it a high ZIndex) so
// it draws above the rest of the scene.
func NewFPSWidget() *Node {
	w := &fpsWidget{rates: func() (float64, float64) { return ebiten.ActualFPS(), ebiten.ActualTPS() }}
	w.node = NewCustom("fps_widget", w.draw)
	w.node.Width, w.node.Height = 100, 32
	w.node.OnUpdate = w.update
	w.refresh()
	return w.node
}

func (w *fpsWidget) update(dt float64) {
	w.since += dt
	if w.since < fpsRefreshInterval {
		return
	}
	w.since = 0
	w.refresh()
}

func (w *fpsWidget) refresh() {
	fps, tps := w.rates()
	s := fmt.Sprintf("FPS: %.1f\nTPS: %.1f", fps, tps)
	if s != w.text {
		w.text = s
		w.dirty = true
	}
}

func (w *fpsWidget) draw(ctx DrawContext) {
	if w.img == nil {
		w.img = ebiten.NewImage(int(w.node.Width), int(w.node.Height))
		w.dirty = true
	}
	if w.dirty {
		w.img.Clear()
		// Semi-transparent background for readability
		w.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(w.img, w.text)
		w.dirty = false
	}
	var op ebiten.DrawImageOptions
	op.GeoM = ctx.GeoM
	op.ColorScale.ScaleAlpha(float32(ctx.Alpha))
	ctx.Target.DrawImage(w.img, &op)
}
