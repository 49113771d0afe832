package ecs

import (
	"testing"

	"github.com/yohamta/donburi"

	"github.com/phanxgames/willowkit"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []willowkit.InteractionEvent
	InteractionEventType.Subscribe(world, func(w donburi.World, e willowkit.InteractionEvent) {
		received = append(received, e)
	})

	store.EmitEvent(willowkit.InteractionEvent{
		Type:     willowkit.EventPointerDown,
		EntityID: 42,
		GlobalX:  100,
		GlobalY:  200,
		Button:   willowkit.MouseButtonLeft,
	})
	store.EmitEvent(willowkit.InteractionEvent{
		Type:     willowkit.EventHotRegionReach,
		EntityID: 7,
		Region:   willowkit.HotRegionLeft,
	})

	// Events are queued until processed.
	InteractionEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != willowkit.EventPointerDown || e0.EntityID != 42 {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.GlobalX != 100 || e0.GlobalY != 200 {
		t.Errorf("event 0 position: (%v,%v)", e0.GlobalX, e0.GlobalY)
	}
	e1 := received[1]
	if e1.Type != willowkit.EventHotRegionReach || e1.Region != willowkit.HotRegionLeft {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiStore_HotRegionEvents(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var got []HotRegionEvent
	HotRegionEventType.Subscribe(world, func(w donburi.World, e HotRegionEvent) {
		got = append(got, e)
	})

	store.EmitEvent(willowkit.InteractionEvent{Type: willowkit.EventClick, EntityID: 1})
	store.EmitEvent(willowkit.InteractionEvent{Type: willowkit.EventHotRegionReach, EntityID: 1, Region: willowkit.HotRegionRight})
	store.EmitEvent(willowkit.InteractionEvent{Type: willowkit.EventHotRegionLeave, EntityID: 1, Region: willowkit.HotRegionRight})
	store.EmitEvent(willowkit.InteractionEvent{Type: willowkit.EventHotRegionConfirm, EntityID: 1, Region: willowkit.HotRegionLeft})
	HotRegionEventType.ProcessEvents(world)

	if len(got) != 3 {
		t.Fatalf("expected 3 hot region events, got %d", len(got))
	}
	if got[0].Region != willowkit.HotRegionRight || got[0].Left || got[0].Confirmed {
		t.Errorf("reach: %+v", got[0])
	}
	if !got[1].Left || got[1].Confirmed {
		t.Errorf("leave: %+v", got[1])
	}
	if !got[2].Confirmed || got[2].Region != willowkit.HotRegionLeft {
		t.Errorf("confirm: %+v", got[2])
	}
}

func TestDonburiStore_ContainerForwarding(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	c := willowkit.NewSwipeContainer("deck", 300, 400)
	c.SetEntityStore(store)
	card := willowkit.NewSwipeView(false)
	card.Node().EntityID = 99
	c.Push(card)

	var got []HotRegionEvent
	HotRegionEventType.Subscribe(world, func(w donburi.World, e HotRegionEvent) {
		got = append(got, e)
	})

	// Drag 120px left of a 300px card: angle -0.24, then 135px: -0.27.
	card.Begin(willowkit.Vec2{X: 150, Y: 200})
	card.Move(willowkit.Vec2{X: 30, Y: 200})
	card.Move(willowkit.Vec2{X: 15, Y: 200})
	card.End()
	HotRegionEventType.ProcessEvents(world)

	if len(got) != 2 {
		t.Fatalf("expected reach and confirm, got %+v", got)
	}
	if got[0].EntityID != 99 || got[0].Region != willowkit.HotRegionLeft || got[0].Confirmed {
		t.Errorf("reach: %+v", got[0])
	}
	if !got[1].Confirmed || got[1].Region != willowkit.HotRegionLeft {
		t.Errorf("confirm: %+v", got[1])
	}
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	InteractionEventType.Subscribe(world, func(w donburi.World, e willowkit.InteractionEvent) {
		count1++
	})
	InteractionEventType.Subscribe(world, func(w donburi.World, e willowkit.InteractionEvent) {
		count2++
	})

	store.EmitEvent(willowkit.InteractionEvent{Type: willowkit.EventClick})
	InteractionEventType.ProcessEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
