// Package ecs provides ECS adapters for willowkit's interaction event system.
//
// The primary adapter is [NewDonburiStore], which bridges willowkit
// interaction events (pointer, click, drag and swipe hot regions) into a
// [Donburi] world as typed events. Subscribe to [InteractionEventType] in your
// ECS systems to receive every event, or to [HotRegionEventType] for swipe
// card decisions only.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//	container.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
