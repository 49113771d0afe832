package willowkit

import (
	"image/color"

	"github.com/rs/zerolog"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// ColorBlack is opaque black, the default text color.
var ColorBlack = Color{0, 0, 0, 1}

// ColorDarkGray is the tint used for card shadows and the underline border.
var ColorDarkGray = Color{1.0 / 3, 1.0 / 3, 1.0 / 3, 1}

// toRGBA converts to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// WithAlpha returns a copy of c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// MidX returns the horizontal center of the rectangle.
func (r Rect) MidX() float64 { return r.X + r.Width/2 }

// MaxX returns the right edge of the rectangle.
func (r Rect) MaxX() float64 { return r.X + r.Width }

// Inset returns r shrunk by dx on the left and right and dy on the top and
// bottom. Negative sizes collapse to zero.
func (r Rect) Inset(dx, dy float64) Rect {
	out := Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width - 2*dx, Height: r.Height - 2*dy}
	if out.Width < 0 {
		out.Width = 0
	}
	if out.Height < 0 {
		out.Height = 0
	}
	return out
}

// NodeType distinguishes rendering behavior for a Node.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // group node with no visual output
	NodeTypeSprite                    // solid rectangle
	NodeTypeCustom                    // drawn by Node.OnDraw
)

// EventType identifies a kind of interaction event.
type EventType uint8

const (
	EventPointerDown       EventType = iota // fires when a pointer button is pressed
	EventPointerUp                          // fires when a pointer button is released
	EventPointerMove                        // fires when the pointer moves (hover, no button)
	EventClick                              // fires on press then release over the same node
	EventDragStart                          // fires when movement exceeds the drag dead zone
	EventDrag                               // fires each frame while dragging
	EventDragEnd                            // fires when the pointer is released after dragging
	EventDragCancel                         // fires when an in-progress drag is aborted
	EventHotRegionReach                     // a swipe card entered a hot region
	EventHotRegionLeave                     // a swipe card left a hot region
	EventHotRegionConfirm                   // a swipe card was released inside a hot region
)

var eventTypeNames = [...]string{
	"pointer_down", "pointer_up", "pointer_move", "click",
	"drag_start", "drag", "drag_end", "drag_cancel",
	"hot_region_reach", "hot_region_leave", "hot_region_confirm",
}

// String returns a snake_case name for the event type.
func (e EventType) String() string {
	if int(e) < len(eventTypeNames) {
		return eventTypeNames[e]
	}
	return "unknown"
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// TextAlign controls horizontal text alignment.
type TextAlign uint8

const (
	TextAlignLeft   TextAlign = iota // align text to the left edge (default)
	TextAlignCenter                  // center text horizontally
	TextAlignRight                   // align text to the right edge
)

// logger receives all library diagnostics. Silent until SetLogger is called.
var logger = zerolog.Nop()

// SetLogger replaces the package logger. Widgets log state transitions at
// debug level; scene debug mode logs frame timings and tree warnings.
func SetLogger(l zerolog.Logger) {
	logger = l.With().Str("component", "willowkit").Logger()
}
