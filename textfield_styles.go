package willowkit

import (
	"github.com/google/uuid"
	"github.com/tanema/gween/ease"
)

// BorderStyle draws a text field's border. Configure runs once when the style
// is set; UpdateBorder runs with the field's local bounds whenever they change.
type BorderStyle interface {
	Configure(tf *TextField)
	UpdateBorder(bounds Rect)
}

// PlaceholderStyle draws a text field's placeholder. Configure runs once when
// the style is set; UpdatePlaceholder runs with the field's local bounds
// whenever they or the placeholder text change.
type PlaceholderStyle interface {
	Configure(tf *TextField)
	UpdatePlaceholder(bounds Rect)
}

// AnimationState records whether an AnimationStyle's forward animation has run.
type AnimationState uint8

const (
	AnimationNotExecuted AnimationState = iota
	AnimationExecuted
)

func (s AnimationState) String() string {
	if s == AnimationExecuted {
		return "executed"
	}
	return "not_executed"
}

// AnimationStyle animates a node between two visual states.
type AnimationStyle interface {
	Configure(n *Node)
	Duration() float64
	SetDuration(seconds float64)
	State() AnimationState
	Animate()
	AnimateReverse()
}

// --- Underline border ---

// UnderlineBorderStyle draws a dark gray line along the bottom of the field.
type UnderlineBorderStyle struct {
	LineWidth float64
	Color     Color

	line *Node
}

// NewUnderlineBorderStyle returns a 2px dark gray underline.
func NewUnderlineBorderStyle() *UnderlineBorderStyle {
	return &UnderlineBorderStyle{LineWidth: 2, Color: ColorDarkGray}
}

func (s *UnderlineBorderStyle) Configure(tf *TextField) {
	s.line = NewRect("underline", 0, 0, s.Color)
	tf.BorderLayer().AddChild(s.line)
}

func (s *UnderlineBorderStyle) UpdateBorder(bounds Rect) {
	if s.line == nil {
		return
	}
	s.line.Color = s.Color
	s.line.SetPosition(bounds.X, bounds.Height-2)
	s.line.SetSize(bounds.Width, s.LineWidth)
}

// Line returns the underline node, or nil before Configure.
func (s *UnderlineBorderStyle) Line() *Node { return s.line }

// --- Placeholder ---

// DefaultPlaceholderStyle lays the placeholder label out inside the field's
// bounds shrunk by Insets and tints it Color at Alpha. With an AnimationStyle
// set, it hides the placeholder once the field has text and shows it again
// when the field is emptied.
type DefaultPlaceholderStyle struct {
	Insets         Vec2
	Alignment      TextAlign
	Color          Color
	Alpha          float64
	AnimationStyle AnimationStyle

	id uuid.UUID
	tf *TextField
}

// NewPlaceholderStyle returns a left-aligned black placeholder at half opacity
// with 8,8 insets and no animation.
func NewPlaceholderStyle() *DefaultPlaceholderStyle {
	return &DefaultPlaceholderStyle{
		id:     uuid.New(),
		Insets: Vec2{X: 8, Y: 8},
		Color:  ColorBlack,
		Alpha:  0.5,
	}
}

// ID identifies the style in the field's handler registry.
func (s *DefaultPlaceholderStyle) ID() uuid.UUID { return s.id }

func (s *DefaultPlaceholderStyle) Configure(tf *TextField) {
	s.tf = tf
	label := tf.PlaceholderLabel()
	label.Align = s.Alignment
	label.Color = s.Color.WithAlpha(s.Alpha)
	label.Face = tf.TextLabel().Face
	if s.AnimationStyle != nil {
		s.AnimationStyle.Configure(label.Node())
		tf.Register(s)
	}
}

func (s *DefaultPlaceholderStyle) UpdatePlaceholder(bounds Rect) {
	if s.tf == nil {
		return
	}
	label := s.tf.PlaceholderLabel()
	label.SetFrame(bounds.Inset(s.Insets.X, s.Insets.Y))
	label.Text = s.tf.Placeholder()
}

func (s *DefaultPlaceholderStyle) DidBeginEditing(string) {}

func (s *DefaultPlaceholderStyle) DidChange(text string) {
	a := s.AnimationStyle
	if a == nil {
		return
	}
	switch {
	case text != "" && a.State() == AnimationNotExecuted:
		a.Animate()
	case text == "" && a.State() == AnimationExecuted:
		a.AnimateReverse()
	}
}

func (s *DefaultPlaceholderStyle) DidEndEditing(string) {}

// --- Fade out ---

// DefaultFadeDuration is the duration of a new FadeOutAnimationStyle.
const DefaultFadeDuration = 0.3

// FadeOutAnimationStyle fades its node to transparent and back.
type FadeOutAnimationStyle struct {
	duration float64
	state    AnimationState
	node     *Node
	tween    *TweenGroup
}

// NewFadeOutAnimationStyle returns a fade with DefaultFadeDuration.
func NewFadeOutAnimationStyle() *FadeOutAnimationStyle {
	return &FadeOutAnimationStyle{duration: DefaultFadeDuration}
}

func (s *FadeOutAnimationStyle) Configure(n *Node) { s.node = n }

func (s *FadeOutAnimationStyle) Duration() float64 { return s.duration }

func (s *FadeOutAnimationStyle) SetDuration(seconds float64) { s.duration = seconds }

func (s *FadeOutAnimationStyle) State() AnimationState { return s.state }

// Animate fades the node out. The state flips immediately.
func (s *FadeOutAnimationStyle) Animate() {
	s.state = AnimationExecuted
	s.fadeTo(0)
}

// AnimateReverse fades the node back in. The state flips immediately.
func (s *FadeOutAnimationStyle) AnimateReverse() {
	s.state = AnimationNotExecuted
	s.fadeTo(1)
}

// Tween returns the in-flight fade, or nil.
func (s *FadeOutAnimationStyle) Tween() *TweenGroup { return s.tween }

func (s *FadeOutAnimationStyle) fadeTo(alpha float64) {
	if s.tween != nil {
		s.tween.Cancel()
		s.tween = nil
	}
	if s.node == nil {
		return
	}
	if s.duration <= 0 {
		s.node.SetAlpha(alpha)
		return
	}
	s.tween = s.node.Animate(TweenAlpha(s.node, alpha, float32(s.duration), ease.Linear))
}
