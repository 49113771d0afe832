package willowkit

import (
	"github.com/tanema/gween/ease"
)

const (
	// ExitDuration is the length in seconds of DefaultExitAnimation.
	ExitDuration = 0.3
	// ExitDistance is how far DefaultExitAnimation moves a card along its
	// confirmed direction.
	ExitDistance = 200.0
)

// ExitAnimation builds the tween that removes a popped card from view. The
// container attaches the returned group to the card's node and detaches the
// card when it completes. Returning nil detaches the card immediately.
type ExitAnimation func(card *SwipeView) *TweenGroup

// DefaultExitAnimation slides the card ExitDistance toward the region it was
// confirmed in and fades it out over ExitDuration. A card popped without a
// region fades in place.
func DefaultExitAnimation(card *SwipeView) *TweenGroup {
	n := card.Node()
	dir := card.HotRegion().Direction()
	return TweenFields(n, ExitDuration, ease.InOutQuad,
		FieldTarget{Field: &n.X, To: n.X + ExitDistance*dir},
		FieldTarget{Field: &n.Alpha, To: 0})
}

// SwipeContainer is a LIFO stack of SwipeView cards filling a fixed-size box.
// Only the top card is active and bound to the container; the rest sit
// underneath, inert. Hot region events from the top card are forwarded to the
// container's delegate and, when set, to an EntityStore.
type SwipeContainer struct {
	node       *Node
	background *Node
	cards      []*SwipeView
	delegate   SwipeDelegate
	store      EntityStore
	observer   containerObserver
}

// NewSwipeContainer creates an empty container of size w x h.
func NewSwipeContainer(name string, w, h float64) *SwipeContainer {
	c := &SwipeContainer{}
	c.observer = containerObserver{c: c}

	c.node = NewContainer(name)
	c.node.Interactable = true
	c.node.UserData = c
	c.background = NewRect(name+"_background", w, h, ColorWhite)
	c.node.AddChild(c.background)
	c.node.SetSize(w, h)
	return c
}

// Node returns the container's root node. Add it to a scene to display the stack.
func (c *SwipeContainer) Node() *Node { return c.node }

// SetBackgroundColor sets the fill drawn behind the cards.
func (c *SwipeContainer) SetBackgroundColor(col Color) { c.background.Color = col }

// SetDelegate sets the receiver of hot region events from the top card. It
// takes effect for the current top card immediately.
func (c *SwipeContainer) SetDelegate(d SwipeDelegate) { c.delegate = d }

// Delegate returns the container's delegate, or nil.
func (c *SwipeContainer) Delegate() SwipeDelegate { return c.delegate }

// SetEntityStore forwards hot region events of cards with a non-zero
// EntityID to store.
func (c *SwipeContainer) SetEntityStore(store EntityStore) { c.store = store }

// IsEmpty reports whether the stack holds no cards.
func (c *SwipeContainer) IsEmpty() bool { return len(c.cards) == 0 }

// Len returns the number of cards on the stack.
func (c *SwipeContainer) Len() int { return len(c.cards) }

// Top returns the active card, or nil when the stack is empty.
func (c *SwipeContainer) Top() *SwipeView {
	if len(c.cards) == 0 {
		return nil
	}
	return c.cards[len(c.cards)-1]
}

// Cards returns a copy of the stack, bottom first.
func (c *SwipeContainer) Cards() []*SwipeView {
	out := make([]*SwipeView, len(c.cards))
	copy(out, c.cards)
	return out
}

// SetSize resizes the container and lays out every card on the stack.
func (c *SwipeContainer) SetSize(w, h float64) {
	c.node.SetSize(w, h)
	c.background.SetSize(w, h)
	for _, card := range c.cards {
		card.SetSize(w, h)
	}
}

// Push places card on top of the stack, filling the container, and makes it
// the only active card. A card already on a stack (this one or another) is
// moved rather than duplicated. A pending exit animation on the card is
// cancelled and the card returns to its neutral pose. Nil is ignored.
func (c *SwipeContainer) Push(card *SwipeView) {
	if card == nil {
		return
	}
	if card.owner != nil {
		card.owner.remove(card)
	}
	card.cancelExit()

	c.node.AddChild(card.node)
	card.node.Interactable = true
	card.SetSize(c.node.Width, c.node.Height)
	card.resetTransform()

	if top := c.Top(); top != nil {
		top.SetActive(false)
		top.delegate = nil
	}
	card.delegate = c.observer
	card.SetActive(true)
	card.owner = c
	c.cards = append(c.cards, card)

	logger.Debug().Str("container", c.node.Name).Uint32("card", card.node.ID).Int("len", len(c.cards)).Msg("card pushed")
}

// Pop removes the top card, activates the one beneath it, and plays exit on
// the removed card (DefaultExitAnimation when exit is nil). The card stays in
// the scene until the animation completes. Returns the removed card, or nil
// when the stack is empty.
func (c *SwipeContainer) Pop(exit ExitAnimation) *SwipeView {
	if len(c.cards) == 0 {
		return nil
	}
	last := len(c.cards) - 1
	card := c.cards[last]
	c.cards[last] = nil
	c.cards = c.cards[:last]

	card.delegate = nil
	card.SetActive(false)
	card.cancelSnapBack()
	card.owner = nil
	card.node.Interactable = false
	c.activateTop()

	logger.Debug().Str("container", c.node.Name).Uint32("card", card.node.ID).Stringer("region", card.HotRegion()).Int("len", len(c.cards)).Msg("card popped")

	if exit == nil {
		exit = DefaultExitAnimation
	}
	g := exit(card)
	if g == nil || g.Done {
		c.detach(card)
		return card
	}
	next := g.OnComplete
	g.OnComplete = func() {
		if next != nil {
			next()
		}
		card.exit = nil
		c.detach(card)
	}
	card.exit = card.node.Animate(g)
	return card
}

// detach removes a popped card from the container's node unless it has been
// pushed back since.
func (c *SwipeContainer) detach(card *SwipeView) {
	if card.owner == nil && card.node.Parent == c.node {
		card.node.RemoveFromParent()
	}
}

// remove takes card out of the stack without animating. Used when a card is
// pushed elsewhere or re-pushed onto this stack.
func (c *SwipeContainer) remove(card *SwipeView) {
	for i, cv := range c.cards {
		if cv != card {
			continue
		}
		wasTop := i == len(c.cards)-1
		copy(c.cards[i:], c.cards[i+1:])
		c.cards[len(c.cards)-1] = nil
		c.cards = c.cards[:len(c.cards)-1]

		card.delegate = nil
		card.SetActive(false)
		card.owner = nil
		if wasTop {
			c.activateTop()
		}
		return
	}
}

func (c *SwipeContainer) activateTop() {
	if top := c.Top(); top != nil {
		top.delegate = c.observer
		top.SetActive(true)
	}
}

// emit forwards a hot region edge to the entity store.
func (c *SwipeContainer) emit(event EventType, card *SwipeView, region HotRegion) {
	if c.store == nil || card.node.EntityID == 0 {
		return
	}
	c.store.EmitEvent(InteractionEvent{
		Type:     event,
		EntityID: card.node.EntityID,
		GlobalX:  card.node.X,
		GlobalY:  card.node.Y,
		Region:   region,
	})
}

// containerObserver is the delegate a container binds to its top card.
type containerObserver struct {
	c *SwipeContainer
}

func (o containerObserver) HotRegionReached(card *SwipeView, region HotRegion) {
	o.c.emit(EventHotRegionReach, card, region)
	if d := o.c.delegate; d != nil {
		d.HotRegionReached(card, region)
	}
}

func (o containerObserver) HotRegionLeft(card *SwipeView, region HotRegion) {
	o.c.emit(EventHotRegionLeave, card, region)
	if d := o.c.delegate; d != nil {
		d.HotRegionLeft(card, region)
	}
}

func (o containerObserver) HotRegionConfirmed(card *SwipeView, region HotRegion) {
	o.c.emit(EventHotRegionConfirm, card, region)
	if d := o.c.delegate; d != nil {
		d.HotRegionConfirmed(card, region)
	}
}
