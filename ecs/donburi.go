package ecs

import (
	"github.com/phanxgames/starfan"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SceneEventType is the Donburi event type for starfan scene events.
var SceneEventType = events.NewEventType[starfan.SceneEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Events are queued on SceneEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) starfan.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event starfan.SceneEvent) {
	SceneEventType.Publish(s.world, event)
}
