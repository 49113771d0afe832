package willowkit

import (
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// DefaultTextInsets is the inset of the text rect inside a text field.
var DefaultTextInsets = Vec2{X: 8, Y: 8}

// caretBlinkPeriod is the on+off cycle of the caret in seconds.
const caretBlinkPeriod = 1.0

// TextFieldEventHandler receives editing notifications from a TextField.
// Handlers are identified by ID; registering the same ID twice is a no-op.
type TextFieldEventHandler interface {
	ID() uuid.UUID
	DidBeginEditing(text string)
	DidChange(text string)
	DidEndEditing(text string)
}

// TextField is a single-line editable text box whose border and placeholder
// are drawn by pluggable styles. It is focused by clicking it and edited with
// the keyboard while focused.
type TextField struct {
	node        *Node
	borderLayer *Node
	placeholder *Label
	textLabel   *Label
	caret       *Node

	// Insets shrinks the bounds to the rect the text is drawn in.
	Insets Vec2

	placeholderText  string
	borderStyle      BorderStyle
	placeholderStyle PlaceholderStyle
	handlers         []TextFieldEventHandler

	focused    bool
	caretClock float64
}

// NewTextField creates an unfocused, empty text field occupying frame in its
// parent. face is used for both the text and the placeholder.
func NewTextField(frame Rect, face text.Face) *TextField {
	tf := &TextField{Insets: DefaultTextInsets}

	tf.node = NewContainer("text_field")
	tf.node.Interactable = true
	tf.node.UserData = tf
	tf.borderLayer = NewContainer("text_field_border")
	tf.placeholder = NewLabel("text_field_placeholder", face)
	tf.textLabel = NewLabel("text_field_text", face)
	tf.caret = NewRect("text_field_caret", 2, 0, ColorBlack)
	tf.caret.Visible = false

	tf.node.AddChild(tf.borderLayer)
	tf.node.AddChild(tf.placeholder.node)
	tf.node.AddChild(tf.textLabel.node)
	tf.node.AddChild(tf.caret)

	tf.node.OnClick = func(ClickContext) { tf.Focus() }
	tf.node.OnUpdate = tf.update

	tf.SetFrame(frame)
	return tf
}

// Node returns the field's root node.
func (tf *TextField) Node() *Node { return tf.node }

// BorderLayer returns the node border styles add their decorations to.
func (tf *TextField) BorderLayer() *Node { return tf.borderLayer }

// PlaceholderLabel returns the label placeholder styles configure.
func (tf *TextField) PlaceholderLabel() *Label { return tf.placeholder }

// TextLabel returns the label the field's text is drawn with.
func (tf *TextField) TextLabel() *Label { return tf.textLabel }

// Frame returns the field's box in its parent.
func (tf *TextField) Frame() Rect {
	return Rect{X: tf.node.X, Y: tf.node.Y, Width: tf.node.Width, Height: tf.node.Height}
}

// Bounds returns the field's local box.
func (tf *TextField) Bounds() Rect { return tf.node.Bounds() }

// SetFrame moves and resizes the field and lets the styles lay themselves out
// against the new bounds.
func (tf *TextField) SetFrame(r Rect) {
	tf.node.SetPosition(r.X, r.Y)
	tf.node.SetSize(r.Width, r.Height)
	tf.node.HitShape = HitRect{Width: r.Width, Height: r.Height}
	tf.textLabel.SetFrame(tf.TextRect())
	tf.layoutCaret()
	tf.layoutStyles()
}

// TextRect is the bounds inset by Insets.
func (tf *TextField) TextRect() Rect {
	return tf.Bounds().Inset(tf.Insets.X, tf.Insets.Y)
}

// EditingRect is the rect the text occupies while focused. It matches TextRect.
func (tf *TextField) EditingRect() Rect { return tf.TextRect() }

func (tf *TextField) layoutStyles() {
	b := tf.Bounds()
	if tf.borderStyle != nil {
		tf.borderStyle.UpdateBorder(b)
	}
	if tf.placeholderStyle != nil {
		tf.placeholderStyle.UpdatePlaceholder(b)
	}
}

// Text returns the current contents.
func (tf *TextField) Text() string { return tf.textLabel.Text }

// SetText replaces the contents. Handlers see a change only when the text differs.
func (tf *TextField) SetText(s string) {
	if s == tf.textLabel.Text {
		return
	}
	tf.textLabel.Text = s
	tf.layoutCaret()
	tf.notifyChange()
}

// Placeholder returns the placeholder text.
func (tf *TextField) Placeholder() string { return tf.placeholderText }

// SetPlaceholder sets the placeholder text and refreshes the placeholder style.
func (tf *TextField) SetPlaceholder(s string) {
	tf.placeholderText = s
	if tf.placeholderStyle != nil {
		tf.placeholderStyle.UpdatePlaceholder(tf.Bounds())
	}
}

// BorderStyle returns the active border style, or nil.
func (tf *TextField) BorderStyle() BorderStyle { return tf.borderStyle }

// SetBorderStyle replaces the border style. Decorations of the previous style
// are removed before the new one is configured.
func (tf *TextField) SetBorderStyle(style BorderStyle) {
	for tf.borderLayer.NumChildren() > 0 {
		tf.borderLayer.ChildAt(0).Dispose()
	}
	tf.borderStyle = style
	if style != nil {
		style.Configure(tf)
		style.UpdateBorder(tf.Bounds())
	}
}

// PlaceholderStyle returns the active placeholder style, or nil.
func (tf *TextField) PlaceholderStyle() PlaceholderStyle { return tf.placeholderStyle }

// SetPlaceholderStyle replaces the placeholder style. A previous style that
// registered itself as an event handler is unregistered.
func (tf *TextField) SetPlaceholderStyle(style PlaceholderStyle) {
	if h, ok := tf.placeholderStyle.(TextFieldEventHandler); ok {
		tf.Unregister(h)
	}
	tf.placeholderStyle = style
	if style != nil {
		style.Configure(tf)
		style.UpdatePlaceholder(tf.Bounds())
	}
}

// IsFocused reports whether the field receives keyboard input.
func (tf *TextField) IsFocused() bool { return tf.focused }

// Focus starts editing and notifies handlers. No-op when already focused.
func (tf *TextField) Focus() {
	if tf.focused {
		return
	}
	tf.focused = true
	tf.caretClock = 0
	tf.layoutCaret()
	logger.Debug().Uint32("field", tf.node.ID).Msg("text field focused")
	for _, h := range tf.snapshotHandlers() {
		h.DidBeginEditing(tf.Text())
	}
}

// Blur ends editing and notifies handlers. No-op when not focused.
func (tf *TextField) Blur() {
	if !tf.focused {
		return
	}
	tf.focused = false
	tf.caret.Visible = false
	logger.Debug().Uint32("field", tf.node.ID).Msg("text field blurred")
	for _, h := range tf.snapshotHandlers() {
		h.DidEndEditing(tf.Text())
	}
}

// BlurOnOutsidePress registers a scene handler that blurs the field when a
// pointer is pressed anywhere outside it.
func (tf *TextField) BlurOnOutsidePress(s *Scene) CallbackHandle {
	return s.OnPointerDown(func(ctx PointerContext) {
		if ctx.Node == nil || !isAncestor(tf.node, ctx.Node) {
			tf.Blur()
		}
	})
}

// InsertText appends s at the end of the text. Ignored while unfocused.
func (tf *TextField) InsertText(s string) {
	if !tf.focused || s == "" {
		return
	}
	tf.textLabel.Text += s
	tf.layoutCaret()
	tf.notifyChange()
}

// DeleteBackward removes the last rune. Ignored while unfocused or empty.
func (tf *TextField) DeleteBackward() {
	if !tf.focused || tf.textLabel.Text == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(tf.textLabel.Text)
	tf.textLabel.Text = tf.textLabel.Text[:len(tf.textLabel.Text)-size]
	tf.layoutCaret()
	tf.notifyChange()
}

func (tf *TextField) notifyChange() {
	for _, h := range tf.snapshotHandlers() {
		h.DidChange(tf.Text())
	}
}

// Register adds h to the handlers notified of editing events.
func (tf *TextField) Register(h TextFieldEventHandler) {
	id := h.ID()
	for _, existing := range tf.handlers {
		if existing.ID() == id {
			return
		}
	}
	logger.Debug().Stringer("handler", id).Msg("registering text field event handler")
	tf.handlers = append(tf.handlers, h)
}

// Unregister removes the handler with h's ID, if registered.
func (tf *TextField) Unregister(h TextFieldEventHandler) {
	id := h.ID()
	for i, existing := range tf.handlers {
		if existing.ID() == id {
			logger.Debug().Stringer("handler", id).Msg("unregistering text field event handler")
			tf.handlers = append(tf.handlers[:i:i], tf.handlers[i+1:]...)
			return
		}
	}
}

// Handlers returns the number of registered event handlers.
func (tf *TextField) Handlers() int { return len(tf.handlers) }

// snapshotHandlers lets handlers unregister themselves while being notified.
func (tf *TextField) snapshotHandlers() []TextFieldEventHandler {
	out := make([]TextFieldEventHandler, len(tf.handlers))
	copy(out, tf.handlers)
	return out
}

func (tf *TextField) layoutCaret() {
	r := tf.TextRect()
	lh := tf.textLabel.lineHeight()
	if lh <= 0 || lh > r.Height {
		lh = r.Height
	}
	tf.caret.SetPosition(r.X+tf.textLabel.Advance(tf.textLabel.Text), r.Y+(r.Height-lh)/2)
	tf.caret.SetSize(2, lh)
	tf.caret.Color = tf.textLabel.Color
}

func (tf *TextField) update(dt float64) {
	if !tf.focused {
		return
	}
	tf.pollKeyboard()
	tf.caretClock += dt
	if tf.caretClock >= caretBlinkPeriod {
		tf.caretClock -= caretBlinkPeriod
	}
	tf.caret.Visible = tf.focused && tf.caretClock < caretBlinkPeriod/2
}

func (tf *TextField) pollKeyboard() {
	var buf [16]rune
	if chars := ebiten.AppendInputChars(buf[:0]); len(chars) > 0 {
		tf.InsertText(string(chars))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) || repeating(ebiten.KeyBackspace) {
		tf.DeleteBackward()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		tf.Blur()
	}
}

// repeating reports key repeat for a held key, after a short delay.
func repeating(key ebiten.Key) bool {
	const delay, interval = 30, 3
	d := inpututil.KeyPressDuration(key)
	return d >= delay && (d-delay)%interval == 0
}
