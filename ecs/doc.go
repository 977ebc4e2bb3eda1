// Package ecs bridges starfan scene events into an ECS world.
//
// [NewDonburiSink] publishes every [starfan.SceneEvent] (star spawned, star
// culled, fan toggled) to a [Donburi] world as a typed event. Subscribe to
// [SceneEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	composition.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
