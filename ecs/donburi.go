package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/willowkit"
)

// InteractionEventType is the Donburi event type for willowkit interaction
// events. Subscribe to this in your ECS systems to receive pointer, drag and
// hot region events.
var InteractionEventType = events.NewEventType[willowkit.InteractionEvent]()

// HotRegionEvent is a swipe card hot region edge addressed to an entity.
type HotRegionEvent struct {
	EntityID uint32
	Region   willowkit.HotRegion
	// Confirmed is true when the card was released inside Region.
	Confirmed bool
	// Left is true when the card moved out of Region back to neutral.
	Left bool
}

// HotRegionEventType carries only the hot region subset of interaction
// events, already decoded.
var HotRegionEventType = events.NewEventType[HotRegionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Interaction events are published to InteractionEventType, and hot region
// events additionally to HotRegionEventType. Consume them with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) willowkit.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event willowkit.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)

	switch event.Type {
	case willowkit.EventHotRegionReach, willowkit.EventHotRegionLeave, willowkit.EventHotRegionConfirm:
		HotRegionEventType.Publish(s.world, HotRegionEvent{
			EntityID:  event.EntityID,
			Region:    event.Region,
			Confirmed: event.Type == willowkit.EventHotRegionConfirm,
			Left:      event.Type == willowkit.EventHotRegionLeave,
		})
	}
}
