package systems

import (
	"image/color"
	"math"

	"github.com/automoto/gemrun/assets"
	"github.com/automoto/gemrun/components"
	cfg "github.com/automoto/gemrun/config"
	"github.com/automoto/gemrun/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Width of one stripe of a parallax band's pattern, including its gap
const parallaxStripe = 96.0

var shaderOp = &ebiten.DrawRectShaderOptions{}

// view maps world coordinates to the screen for one frame.
type view struct {
	left, top     float64
	width, height float64
}

// Viewport culling padding keeps shapes from popping at the screen edges.
const cullPadding = 32.0

func currentView(w donburi.World, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return view{}, false
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	return view{
		left:   camera.Position.X + camera.ShakeX - width/2,
		top:    camera.Position.Y + camera.ShakeY - height/2,
		width:  width,
		height: height,
	}, true
}

func (v view) visible(x, y, w, h float64) bool {
	return x+w >= v.left-cullPadding && x <= v.left+v.width+cullPadding &&
		y+h >= v.top-cullPadding && y <= v.top+v.height+cullPadding
}

func (v view) fillRect(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	if !v.visible(x, y, w, h) {
		return
	}
	vector.FillRect(screen, float32(x-v.left), float32(y-v.top), float32(w), float32(h), c, false)
}

// DrawBackground fills the sky and draws the parallax bands far to near.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Palette.Sky)

	v, ok := currentView(ecs.World, screen)
	if !ok {
		return
	}

	components.Parallax.Each(ecs.World, func(e *donburi.Entry) {
		layer := components.Parallax.Get(e)
		y := float32(layer.Y - v.top)
		shift := math.Mod(layer.Offset, parallaxStripe)
		if shift < 0 {
			shift += parallaxStripe
		}
		for x := -shift; x < v.width; x += parallaxStripe {
			vector.FillRect(screen, float32(x), y, float32(parallaxStripe*0.6), float32(layer.Height), layer.Color, false)
		}
	})
}

// DrawLevel renders terrain, platforms and traps as flat rectangles.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := currentView(ecs.World, screen)
	if !ok {
		return
	}

	drawTagged := func(tag *donburi.ComponentType[donburi.Tag], c color.RGBA) {
		tag.Each(ecs.World, func(e *donburi.Entry) {
			o := components.Object.Get(e)
			v.fillRect(screen, o.X, o.Y, o.W, o.H, c)
		})
	}
	drawTagged(tags.Terrain, cfg.Palette.Terrain)
	drawTagged(tags.Platform, cfg.Palette.Platform)
	drawTagged(tags.Trap, cfg.Palette.Trap)
}

// DrawActors renders gems, enemies and the player.
func DrawActors(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := currentView(ecs.World, screen)
	if !ok {
		return
	}
	tickDelta := tickSeconds(ecs.World)

	tags.Gem.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		bob := 0.0
		if anim := components.Animation.Get(e); anim.CurrentAnimation != nil {
			bob = math.Sin(anim.CurrentAnimation.Progress()*2*math.Pi) * 2
		}
		v.fillRect(screen, o.X, o.Y+bob, o.W, o.H, cfg.Palette.Gem)
	})

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		v.fillRect(screen, o.X, o.Y, o.W, o.H, cfg.Palette.Enemy)

		// Eye on the leading side shows the patrol direction
		eyeX := o.X + o.W - 5
		if components.Patrol.Get(e).Direction < 0 {
			eyeX = o.X + 2
		}
		v.fillRect(screen, eyeX, o.Y+3, 3, 3, cfg.White)

		if cfg.Debug.DrawHitboxes {
			if zone := components.Enemy.Get(e).StompZone; zone != nil {
				v.fillRect(screen, zone.X, zone.Y, zone.W, zone.H, cfg.Palette.Stomp)
			}
		}
	})

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		drawPlayer(screen, v, e, tickDelta)
	})
}

func drawPlayer(screen *ebiten.Image, v view, e *donburi.Entry, tickDelta float64) {
	o := components.Object.Get(e).Object
	state := components.State.Get(e)
	if !RebornVisible(state, tickDelta) {
		return
	}

	c := cfg.Palette.Player
	flash := float32(0)
	switch state.CurrentState {
	case cfg.Die:
		c = cfg.Palette.Dying
	case cfg.Reborn:
		flash = 0.6
	}

	w, h := o.W, o.H
	if e.HasComponent(components.SquashStretch) {
		ss := components.SquashStretch.Get(e)
		w *= ss.ScaleX
		h *= ss.ScaleY
	}
	// Scale around the bottom-center so feet stay on the ground
	x := o.X + (o.W-w)/2
	y := o.Y + o.H - h

	if !v.visible(x, y, w, h) {
		return
	}

	if assets.TintShader == nil {
		v.fillRect(screen, x, y, w, h, c)
	} else {
		shaderOp.GeoM.Reset()
		shaderOp.GeoM.Translate(x-v.left, y-v.top)
		shaderOp.Uniforms = map[string]any{
			"Tint":  []float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255},
			"Flash": flash,
		}
		screen.DrawRectShader(int(math.Ceil(w)), int(math.Ceil(h)), assets.TintShader, shaderOp)
	}

	// Eye on the facing side
	eyeX := x + w - 5
	if components.Player.Get(e).Facing < 0 {
		eyeX = x + 2
	}
	v.fillRect(screen, eyeX, y+4, 3, 3, cfg.BlackOverlay)
}

// DrawEffects renders pickup and death bursts growing and fading out.
func DrawEffects(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := currentView(ecs.World, screen)
	if !ok {
		return
	}

	components.VFX.Each(ecs.World, func(e *donburi.Entry) {
		vfx := components.VFX.Get(e)
		scale := 1 + (vfx.MaxScale-1)*vfx.Progress
		size := vfx.Size * scale
		c := vfx.Color
		alpha := 1 - vfx.Progress
		faded := color.RGBA{
			R: uint8(float64(c.R) * alpha),
			G: uint8(float64(c.G) * alpha),
			B: uint8(float64(c.B) * alpha),
			A: uint8(float64(c.A) * alpha),
		}
		x, y := vfx.X-size/2, vfx.Y-size/2
		if !v.visible(x, y, size, size) {
			return
		}
		vector.StrokeRect(screen, float32(x-v.left), float32(y-v.top), float32(size), float32(size), 2, faded, false)
	})
}
