// Package willowkit is a small retained-mode UI kit for [Ebitengine] built
// around swipeable card stacks and styled text fields.
//
// # Quick start
//
// [Run] creates a window and game loop for you:
//
//	scene := willowkit.NewScene()
//	deck := willowkit.NewSwipeContainer("deck", 300, 400)
//	scene.Root().AddChild(deck.Node())
//	deck.Push(willowkit.NewSwipeView(false))
//	willowkit.Run(scene, willowkit.RunConfig{
//		Title: "Cards", Width: 640, Height: 480,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly.
//
// # Scene graph
//
// Every visual element is a [Node]. Containers group children, rects draw a
// solid color and custom nodes draw through OnDraw. Children inherit their
// parent's transform and alpha; ZIndex orders siblings. Pivots are local, so
// a node rotated about its center simply sets PivotX/PivotY to half its size.
//
// Attach [TweenGroup] values with [Node.Animate]; the scene advances them
// every frame and drops them when they finish or are cancelled.
//
// # Input
//
// The scene hit-tests pointer events against interactable nodes in reverse
// painter order and dispatches press, release, click, drag and drag-cancel
// callbacks, first to scene-level handlers and then to the node. A drag
// starts once the pointer moves past the dead zone ([Scene.SetDragDeadZone]).
// For tests and scripted demos, [Scene.InjectClick], [Scene.InjectDrag] and
// [Scene.InjectCancel] queue synthetic events that are consumed one per
// frame, and [LoadTestScript] drives them from YAML or JSON.
//
// # Swipe cards
//
// A [SwipeView] rotates about its center as it is dragged sideways. Once the
// angle passes [HotRegionThreshold] the card enters the left or right
// [HotRegion]; its [SwipeDelegate] hears about reaching and leaving regions,
// and releasing inside one confirms it. Releasing anywhere else snaps the card
// back. A [SwipeContainer] stacks cards so only the top one accepts input and
// plays an exit animation when a card is popped.
//
// Decks can also be described in YAML and built with [LoadDeck].
//
// # Text fields
//
// [TextField] is a single-line editable field. Its decoration is pluggable:
// a [BorderStyle] draws the border (see [NewUnderlineBorderStyle]) and a
// [PlaceholderStyle] lays out the placeholder, optionally fading it out with
// a [FadeOutAnimationStyle] once text is entered.
//
// # Entity systems
//
// Set an [EntityStore] on the scene or a swipe container to forward
// interaction and hot region events to an ECS. The ecs subpackage provides a
// donburi adapter.
//
// # Logging
//
// The package logs through zerolog and is silent by default. Call
// [SetLogger] to route its output, and [Scene.SetDebugMode] to enable
// per-frame timing and tree checks.
//
// [Ebitengine]: https://ebitengine.org
package willowkit
