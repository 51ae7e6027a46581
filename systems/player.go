package systems

import (
	"math"

	"github.com/automoto/gemrun/components"
	cfg "github.com/automoto/gemrun/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayer(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs.World)
	components.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		updateSinglePlayer(ecs, input, playerEntry)
	})
}

func updateSinglePlayer(ecs *ecs.ECS, input *components.InputData, playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	player.Running = false
	player.Jumped = false

	// Dead players don't steer; the death arc plays out under physics.
	if !components.Respawn.Get(playerEntry).Alive() {
		return
	}

	physics := components.Physics.Get(playerEntry)
	playerObject := components.Object.Get(playerEntry).Object
	animData := components.Animation.Get(playerEntry)

	handleMovementInput(input, player, physics)
	if handleJumpInput(input, physics, playerObject) {
		player.Jumped = true
		animData.Trigger(cfg.TriggerJump)
		PlaySFX(ecs.World, cfg.SoundJump, playerObject.X+playerObject.W/2, playerObject.Y+playerObject.H)
		TriggerSquashStretch(playerEntry, 0.8, 1.2)
	}

	animData.SetBool(cfg.ParamRunning, player.Running)
	animData.SetBool(cfg.ParamGrounded, physics.OnGround != nil)
}

// handleMovementInput sets horizontal speed from the input axis. Facing only
// changes while actually moving.
func handleMovementInput(input *components.InputData, player *components.PlayerData, physics *components.PhysicsData) {
	axis := 0.0
	if GetAction(input, cfg.ActionMoveLeft).Pressed {
		axis--
	}
	if GetAction(input, cfg.ActionMoveRight).Pressed {
		axis++
	}

	physics.SpeedX = axis * cfg.Player.RunSpeed

	if math.Abs(physics.SpeedX) > cfg.Player.MoveEpsilon {
		player.Running = true
		if physics.SpeedX > 0 {
			player.Facing = cfg.DirectionRight
		} else {
			player.Facing = cfg.DirectionLeft
		}
	}
}

// handleJumpInput reports whether a jump started this tick.
func handleJumpInput(input *components.InputData, physics *components.PhysicsData, playerObject *resolv.Object) bool {
	if !GetAction(input, cfg.ActionJump).JustPressed {
		return false
	}
	if !isGrounded(playerObject) {
		return false
	}

	physics.SpeedY = -cfg.Player.JumpSpeed
	physics.OnGround = nil
	return true
}
