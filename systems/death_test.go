package systems

import (
	"fmt"
	"testing"

	"github.com/automoto/gemrun/components"
	cfg "github.com/automoto/gemrun/config"
	"github.com/automoto/gemrun/tags"
)

func TestHazardContact_StartsDeathSequence(t *testing.T) {
	e, player := newTestWorld(t, flatLevel("death"))
	physics := components.Physics.Get(player)
	physics.SpeedX = 150

	HazardContactEvent.Publish(e.World, HazardContact{Actor: player, Tag: tags.ResolvTrap})
	DispatchEvents(e)

	respawn := components.Respawn.Get(player)
	if respawn.Phase != components.PhaseWaiting {
		t.Fatalf("Phase = %v, want waiting", respawn.Phase)
	}
	if respawn.Deaths != 1 {
		t.Errorf("Deaths = %d, want 1", respawn.Deaths)
	}
	if physics.CollisionEnabled {
		t.Error("collision should be disabled while dying")
	}
	if cameraFollowing(t, e) {
		t.Error("camera should stop following while dying")
	}
	if physics.SpeedX != 0 {
		t.Errorf("SpeedX = %v, want 0", physics.SpeedX)
	}
	if want := -cfg.Death.Impulse * cfg.C.PixelsPerUnit; physics.SpeedY != want {
		t.Errorf("SpeedY = %v, want upward impulse %v", physics.SpeedY, want)
	}
	if n := played(e, cfg.SoundDeath); n != 1 {
		t.Errorf("death sound played %d times, want 1", n)
	}

	anim := components.Animation.Get(player)
	if len(anim.PendingTriggers) != 1 || anim.PendingTriggers[0] != cfg.TriggerDie {
		t.Errorf("PendingTriggers = %v, want [%s]", anim.PendingTriggers, cfg.TriggerDie)
	}
}

func TestHazardContact_IgnoredWhileDead(t *testing.T) {
	e, player := newTestWorld(t, flatLevel("guard"))

	HazardContactEvent.Publish(e.World, HazardContact{Actor: player, Tag: tags.ResolvEnemy})
	HazardContactEvent.Publish(e.World, HazardContact{Actor: player, Tag: tags.ResolvTrap})
	DispatchEvents(e)

	respawn := components.Respawn.Get(player)
	if respawn.Deaths != 1 || respawn.IgnoredContacts != 1 {
		t.Fatalf("Deaths=%d IgnoredContacts=%d, want 1 and 1", respawn.Deaths, respawn.IgnoredContacts)
	}

	clock, _ := components.Scheduler.First(e.World)
	if n := components.Scheduler.Get(clock).Len(); n != 1 {
		t.Fatalf("pending callbacks = %d, want exactly one respawn", n)
	}

	// A contact halfway through the wait does not push the respawn back.
	for i := 0; i < 15; i++ {
		UpdateClock(e)
	}
	OnHazardContact(e.World, HazardContact{Actor: player, Tag: tags.ResolvTrap})
	for i := 0; i < 15; i++ {
		UpdateClock(e)
	}

	if respawn.Phase != components.PhaseAlive {
		t.Errorf("Phase = %v after 3s, want alive", respawn.Phase)
	}
	if respawn.IgnoredContacts != 2 {
		t.Errorf("IgnoredContacts = %d, want 2", respawn.IgnoredContacts)
	}
}

func TestDeathSequence_RebornAfterDelay(t *testing.T) {
	e, player := newTestWorld(t, flatLevel("reborn"))
	respawn := components.Respawn.Get(player)

	movePlayer(player, 200, 296)
	HazardContactEvent.Publish(e.World, HazardContact{Actor: player, Tag: tags.ResolvTrap})
	DispatchEvents(e)

	// 2.9s: the body is still in its death arc.
	for i := 0; i < 29; i++ {
		tick(e)
		if respawn.Phase != components.PhaseWaiting {
			t.Fatalf("tick %d: Phase = %v, want waiting", i+1, respawn.Phase)
		}
		if components.Physics.Get(player).CollisionEnabled || cameraFollowing(t, e) {
			t.Fatalf("tick %d: collision or camera follow re-enabled early", i+1)
		}
	}

	// The continuation runs when the clock reaches 3s.
	UpdateClock(e)

	if respawn.Phase != components.PhaseAlive {
		t.Fatalf("Phase = %v, want alive", respawn.Phase)
	}
	obj := components.Object.Get(player)
	if obj.X != respawn.SpawnX || obj.Y != respawn.SpawnY {
		t.Errorf("position = (%v, %v), want spawn (%v, %v)", obj.X, obj.Y, respawn.SpawnX, respawn.SpawnY)
	}
	physics := components.Physics.Get(player)
	if !physics.CollisionEnabled || !cameraFollowing(t, e) {
		t.Error("collision and camera follow should be restored")
	}
	if physics.SpeedX != 0 || physics.SpeedY != 0 {
		t.Errorf("velocity = (%v, %v), want zero", physics.SpeedX, physics.SpeedY)
	}
	if respawn.Deaths != 1 {
		t.Errorf("Deaths = %d, want 1", respawn.Deaths)
	}
	if n := played(e, cfg.SoundReborn); n != 1 {
		t.Errorf("reborn sound played %d times, want 1", n)
	}
}

func TestDeathSequence_RebornAfterThreeSecondsAtAnyRate(t *testing.T) {
	for _, tps := range gameRates {
		t.Run(fmt.Sprintf("%dtps", tps), func(t *testing.T) {
			e, player := newTestWorldAt(t, flatLevel("reborn-rate"), tps)
			respawn := components.Respawn.Get(player)

			// Die a few ticks in so the wait starts off a whole second.
			for i := 0; i < 7; i++ {
				UpdateClock(e)
			}
			OnHazardContact(e.World, HazardContact{Actor: player, Tag: tags.ResolvTrap})

			for i := 1; i < 3*tps; i++ {
				UpdateClock(e)
				if respawn.Phase != components.PhaseWaiting {
					t.Fatalf("reborn on tick %d, want tick %d", i, 3*tps)
				}
			}
			UpdateClock(e)
			if respawn.Phase != components.PhaseAlive {
				t.Errorf("Phase = %v after %d ticks, want alive", respawn.Phase, 3*tps)
			}
		})
	}
}

func TestDeathSequence_SpawnNeverMoves(t *testing.T) {
	e, player := newTestWorld(t, flatLevel("spawn"))
	respawn := components.Respawn.Get(player)
	spawnX, spawnY := respawn.SpawnX, respawn.SpawnY

	for death := 0; death < 2; death++ {
		movePlayer(player, 300+float64(death)*50, 296)
		OnHazardContact(e.World, HazardContact{Actor: player, Tag: tags.ResolvTrap})
		for i := 0; i < 30; i++ {
			UpdateClock(e)
		}
	}

	if respawn.SpawnX != spawnX || respawn.SpawnY != spawnY {
		t.Errorf("spawn moved to (%v, %v)", respawn.SpawnX, respawn.SpawnY)
	}
	if respawn.Deaths != 2 {
		t.Errorf("Deaths = %d, want 2", respawn.Deaths)
	}
	if obj := components.Object.Get(player); obj.X != spawnX {
		t.Errorf("X = %v, want %v", obj.X, spawnX)
	}
}

func TestHazardContact_RemovedActor(t *testing.T) {
	e, player := newTestWorld(t, flatLevel("removed"))
	e.World.Remove(player.Entity())

	// Must not panic.
	OnHazardContact(e.World, HazardContact{Actor: player, Tag: tags.ResolvTrap})
	OnHazardContact(e.World, HazardContact{Actor: nil, Tag: tags.ResolvTrap})
}

func TestDeathSequence_PausedClockHoldsRespawn(t *testing.T) {
	e, player := newTestWorld(t, flatLevel("paused"))
	OnHazardContact(e.World, HazardContact{Actor: player, Tag: tags.ResolvTrap})

	GetOrCreatePause(e.World).IsPaused = true
	clock := WithGameplayChecks(UpdateClock)
	for i := 0; i < 100; i++ {
		clock(e)
	}
	if p := components.Respawn.Get(player).Phase; p != components.PhaseWaiting {
		t.Fatalf("Phase = %v while paused, want waiting", p)
	}

	GetOrCreatePause(e.World).IsPaused = false
	for i := 0; i < 30; i++ {
		clock(e)
	}
	if p := components.Respawn.Get(player).Phase; p != components.PhaseAlive {
		t.Errorf("Phase = %v after unpausing for 3s, want alive", p)
	}
}
