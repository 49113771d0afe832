package willowkit

// HotRegion is a directional zone a swipe card can be dragged into. Releasing
// the card inside HotRegionLeft or HotRegionRight confirms the swipe.
type HotRegion uint8

const (
	HotRegionNone  HotRegion = iota // between the thresholds; never reported in events
	HotRegionLeft                   // angle below -HotRegionThreshold
	HotRegionRight                  // angle above HotRegionThreshold
)

// HotRegionThreshold is the absolute rotation angle (radians) beyond which a
// card is inside a hot region.
const HotRegionThreshold = 0.25

// String returns "none", "left" or "right".
func (r HotRegion) String() string {
	switch r {
	case HotRegionLeft:
		return "left"
	case HotRegionRight:
		return "right"
	default:
		return "none"
	}
}

// Direction returns -1 for left, +1 for right and 0 for none.
func (r HotRegion) Direction() float64 {
	switch r {
	case HotRegionLeft:
		return -1
	case HotRegionRight:
		return 1
	default:
		return 0
	}
}

// ClassifyAngle maps a rotation angle to a hot region. Both thresholds are
// exclusive: exactly ±HotRegionThreshold is HotRegionNone.
func ClassifyAngle(angle float64) HotRegion {
	switch {
	case angle < -HotRegionThreshold:
		return HotRegionLeft
	case angle > HotRegionThreshold:
		return HotRegionRight
	default:
		return HotRegionNone
	}
}

// regionTransition is the edge produced by a hotRegionTracker update.
type regionTransition uint8

const (
	transitionNone  regionTransition = iota
	transitionReach                  // None -> region
	transitionLeave                  // region -> None
)

// hotRegionTracker remembers the last region and reports edges into and out
// of HotRegionNone. A direct Left <-> Right change is not an edge: the card
// has to pass through the neutral zone for events to fire.
type hotRegionTracker struct {
	current HotRegion
}

// update stores next and returns the edge it produced together with the
// region the edge refers to (the previous region for a leave).
func (t *hotRegionTracker) update(next HotRegion) (regionTransition, HotRegion) {
	prev := t.current
	t.current = next
	switch {
	case prev == next:
		return transitionNone, HotRegionNone
	case prev != HotRegionNone && next == HotRegionNone:
		return transitionLeave, prev
	case prev == HotRegionNone && next != HotRegionNone:
		return transitionReach, next
	default:
		return transitionNone, HotRegionNone
	}
}
