package systems

import (
	"github.com/automoto/gemrun/components"
	cfg "github.com/automoto/gemrun/config"
	"github.com/automoto/gemrun/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateContacts turns player overlaps into gameplay events. A player with
// collision disabled touches nothing.
func UpdateContacts(ecs *ecs.ECS) {
	w := ecs.World
	tags.Player.Each(w, func(player *donburi.Entry) {
		if !components.Physics.Get(player).CollisionEnabled {
			return
		}
		checkPlayerContacts(w, player)
	})
}

func checkPlayerContacts(w donburi.World, player *donburi.Entry) {
	obj := components.Object.Get(player).Object
	physics := components.Physics.Get(player)

	check := obj.Check(0, 0, tags.ResolvTrap, tags.ResolvEnemy, tags.ResolvStomp, tags.ResolvGem)

	stomped := make(map[*donburi.Entry]bool)
	if check != nil {
		for _, zone := range check.ObjectsByTags(tags.ResolvStomp) {
			enemy := entryOf(zone)
			if enemy == nil || !overlaps(obj, zone) || !isStomp(obj, physics, zone) {
				continue
			}
			stomped[enemy] = true
			EnemyStompedEvent.Publish(w, EnemyStomped{Player: player, Enemy: enemy})
		}

		for _, gemObj := range check.ObjectsByTags(tags.ResolvGem) {
			gem := entryOf(gemObj)
			if gem == nil || !overlaps(obj, gemObj) {
				continue
			}
			CollectiblePickedEvent.Publish(w, CollectiblePicked{Collector: player, Gem: gem})
		}

		for _, body := range check.ObjectsByTags(tags.ResolvEnemy) {
			enemy := entryOf(body)
			if enemy == nil || stomped[enemy] || !overlaps(obj, body) {
				continue
			}
			HazardContactEvent.Publish(w, HazardContact{Actor: player, Tag: tags.ResolvEnemy})
		}

		for _, trap := range check.ObjectsByTags(tags.ResolvTrap) {
			if !overlaps(obj, trap) {
				continue
			}
			HazardContactEvent.Publish(w, HazardContact{Actor: player, Tag: tags.ResolvTrap})
		}
	}

	if belowKillPlane(w, obj) {
		HazardContactEvent.Publish(w, HazardContact{Actor: player, Tag: tags.ResolvTrap})
	}
}

// isStomp reports whether a falling body came down on the zone from above.
func isStomp(obj *resolv.Object, physics *components.PhysicsData, zone *resolv.Object) bool {
	return physics.SpeedY > 0 && obj.Y+obj.H <= zone.Y+zone.H
}

// overlaps is a strict AABB test. resolv's Check only narrows by cell.
func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X &&
		a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

func belowKillPlane(w donburi.World, obj *resolv.Object) bool {
	entry, ok := components.Level.First(w)
	if !ok {
		return false
	}
	lvl := components.Level.Get(entry).Level
	if lvl == nil {
		return false
	}
	return obj.Y > float64(lvl.Height)+cfg.Death.KillPlaneMargin
}

func entryOf(obj *resolv.Object) *donburi.Entry {
	e, ok := obj.Data.(*donburi.Entry)
	if !ok || e == nil || !e.Valid() {
		return nil
	}
	return e
}
