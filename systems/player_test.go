package systems

import (
	"testing"

	"github.com/automoto/gemrun/components"
	cfg "github.com/automoto/gemrun/config"
	"github.com/automoto/gemrun/shared/leveldata"
	"github.com/automoto/gemrun/tags"
)

func TestUpdatePlayer_RunAndFacing(t *testing.T) {
	e, player := newTestWorld(t, flatLevel("run"))
	physics := components.Physics.Get(player)
	data := components.Player.Get(player)

	FeedInput(e.World, cfg.ActionMoveLeft)
	UpdatePlayer(e)

	if physics.SpeedX != -cfg.Player.RunSpeed {
		t.Errorf("SpeedX = %v, want %v", physics.SpeedX, -cfg.Player.RunSpeed)
	}
	if data.Facing != cfg.DirectionLeft || !data.Running {
		t.Errorf("player = %+v, want running left", data)
	}
	if !components.Animation.Get(player).Bool(cfg.ParamRunning) {
		t.Error("isRunning should be set")
	}

	// Both directions cancel out; facing stays where it was.
	FeedInput(e.World, cfg.ActionMoveLeft, cfg.ActionMoveRight)
	UpdatePlayer(e)
	if physics.SpeedX != 0 || data.Facing != cfg.DirectionLeft || data.Running {
		t.Errorf("SpeedX=%v Facing=%v Running=%v", physics.SpeedX, data.Facing, data.Running)
	}
}

func TestUpdatePlayer_JumpOnlyFromGround(t *testing.T) {
	e, player := newTestWorld(t, flatLevel("jump"))
	physics := components.Physics.Get(player)

	FeedInput(e.World, cfg.ActionJump)
	UpdatePlayer(e)

	if physics.SpeedY != -cfg.Player.JumpSpeed {
		t.Fatalf("SpeedY = %v, want %v", physics.SpeedY, -cfg.Player.JumpSpeed)
	}
	if n := played(e, cfg.SoundJump); n != 1 {
		t.Errorf("jump sound played %d times, want 1", n)
	}

	// Airborne: pressing again does nothing.
	movePlayer(player, 48, 200)
	physics.SpeedY = 0
	FeedInput(e.World)
	UpdatePlayer(e)
	FeedInput(e.World, cfg.ActionJump)
	UpdatePlayer(e)
	if physics.SpeedY != 0 {
		t.Errorf("SpeedY = %v, jumped in mid-air", physics.SpeedY)
	}
}

func TestUpdatePlayer_HoldingJumpDoesNotRepeat(t *testing.T) {
	e, player := newTestWorld(t, flatLevel("hold"))
	physics := components.Physics.Get(player)

	FeedInput(e.World, cfg.ActionJump)
	UpdatePlayer(e)
	physics.SpeedY = 0

	FeedInput(e.World, cfg.ActionJump)
	UpdatePlayer(e)
	if physics.SpeedY != 0 {
		t.Errorf("SpeedY = %v, held jump fired twice", physics.SpeedY)
	}
}

func TestUpdatePlayer_IgnoresInputWhileDead(t *testing.T) {
	e, player := newTestWorld(t, flatLevel("dead-input"))
	OnHazardContact(e.World, HazardContact{Actor: player, Tag: tags.ResolvTrap})
	physics := components.Physics.Get(player)
	speedY := physics.SpeedY

	FeedInput(e.World, cfg.ActionMoveRight, cfg.ActionJump)
	UpdatePlayer(e)

	if physics.SpeedX != 0 || physics.SpeedY != speedY {
		t.Errorf("dead player steered: SpeedX=%v SpeedY=%v", physics.SpeedX, physics.SpeedY)
	}
}

func TestPhysics_LandsOnFloor(t *testing.T) {
	e, player := newTestWorld(t, flatLevel("land"))
	movePlayer(player, 48, 200)

	for i := 0; i < 30; i++ {
		UpdateClock(e)
		UpdatePhysics(e)
		UpdateObjects(e)
	}

	obj := components.Object.Get(player)
	if bottom := obj.Y + obj.H; bottom != 320 {
		t.Errorf("player bottom = %v, want resting on the floor at 320", bottom)
	}
	if components.Physics.Get(player).OnGround == nil {
		t.Error("OnGround should be set after landing")
	}
}

func TestPhysics_PlatformIsOneWay(t *testing.T) {
	lvl := flatLevel("platform")
	lvl.Platforms = []leveldata.Rect{{X: 32, Y: 240, W: 64, H: 8}}
	e, player := newTestWorld(t, lvl)

	// Jumping up from below passes through the platform.
	movePlayer(player, 48, 250)
	components.Physics.Get(player).SpeedY = -cfg.Player.JumpSpeed
	UpdateClock(e)
	UpdatePhysics(e)
	UpdateObjects(e)

	obj := components.Object.Get(player)
	if obj.Y >= 250 {
		t.Errorf("Y = %v, player should have moved up through the platform", obj.Y)
	}
}

func TestAnimator_DieHoldsUntilReborn(t *testing.T) {
	e, player := newTestWorld(t, flatLevel("anim"))
	OnHazardContact(e.World, HazardContact{Actor: player, Tag: tags.ResolvTrap})

	state := components.State.Get(player)
	for i := 0; i < 5; i++ {
		UpdateClock(e)
		UpdateAnimator(e)
		if state.CurrentState != cfg.Die {
			t.Fatalf("tick %d: state = %v, want die", i, state.CurrentState)
		}
	}

	for i := 0; i < 25; i++ {
		UpdateClock(e)
	}
	UpdateAnimator(e)
	if state.CurrentState != cfg.Reborn {
		t.Errorf("state = %v after respawn, want reborn", state.CurrentState)
	}
	if !RebornVisible(state, 0.1) {
		t.Error("reborn actor should be visible on its first tick")
	}
}
