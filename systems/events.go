package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// HazardContact is published when an actor touches something that kills it.
// Tag is tags.ResolvTrap or tags.ResolvEnemy; falling out of the level
// reports as a trap.
type HazardContact struct {
	Actor *donburi.Entry
	Tag   string
}

// CollectiblePicked is published when the player touches a gem.
type CollectiblePicked struct {
	Collector *donburi.Entry
	Gem       *donburi.Entry
}

// EnemyStomped is published when the player lands on an enemy's head zone.
type EnemyStomped struct {
	Player *donburi.Entry
	Enemy  *donburi.Entry
}

var (
	HazardContactEvent     = events.NewEventType[HazardContact]()
	CollectiblePickedEvent = events.NewEventType[CollectiblePicked]()
	EnemyStompedEvent      = events.NewEventType[EnemyStomped]()
)

// RegisterHandlers subscribes the gameplay handlers to a world's event queues.
// Call once per world, before the first tick.
func RegisterHandlers(w donburi.World) {
	HazardContactEvent.Subscribe(w, OnHazardContact)
	CollectiblePickedEvent.Subscribe(w, OnCollectiblePicked)
	EnemyStompedEvent.Subscribe(w, OnEnemyStomped)
}

// UnregisterHandlers removes the handlers added by RegisterHandlers.
func UnregisterHandlers(w donburi.World) {
	HazardContactEvent.Unsubscribe(w, OnHazardContact)
	CollectiblePickedEvent.Unsubscribe(w, OnCollectiblePicked)
	EnemyStompedEvent.Unsubscribe(w, OnEnemyStomped)
}

// DispatchEvents delivers every queued event to its handlers. Stomps are
// delivered before hazards so an enemy killed this tick cannot kill the
// player on the same tick.
func DispatchEvents(ecs *ecs.ECS) {
	w := ecs.World
	EnemyStompedEvent.ProcessEvents(w)
	CollectiblePickedEvent.ProcessEvents(w)
	HazardContactEvent.ProcessEvents(w)
}
