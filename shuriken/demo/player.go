package demo

import (
	"github.com/chubbymaggie/shuriken16/shuriken/actor"
	"github.com/chubbymaggie/shuriken16/shuriken/sprite"
	"github.com/chubbymaggie/shuriken16/shuriken/video"
)

// Velocities are in 1/256 pixel per tick.
const (
	walkSpeed = 0x100
	jumpSpeed = -0x500
	gravity   = 0x40
	maxFall   = 0x600

	playerSize = 16
)

var playerPalette = &video.PaletteWithOffset{Palette: video.NewPalette("player",
	0,
	video.RGB15(4, 2, 6),
	video.RGB15(26, 6, 8),
	video.RGB15(31, 18, 14),
	video.RGB15(31, 31, 31),
)}

// playerFrame draws a round body with an eye. legs selects the leg pose:
// 0 and 1 alternate while walking, 2 is tucked for jumping.
func playerFrame(legs int) []byte {
	return pack(4, playerSize, playerSize, func(x, y int) uint16 {
		if y >= 12 {
			var left, right int
			switch legs {
			case 0:
				left, right = 4, 10
			case 1:
				left, right = 5, 9
			default:
				if y > 13 {
					return 0
				}
				left, right = 5, 9
			}
			if x == left || x == left+1 || x == right || x == right+1 {
				return 1
			}
			return 0
		}
		dx, dy := x*2-15, y*2-11
		d := dx*dx + dy*dy
		switch {
		case d > 13*13:
			return 0
		case d > 11*11:
			return 1
		case x >= 9 && x <= 10 && y >= 3 && y <= 5:
			return 4
		case dx < 0 && dy < 0 && d < 6*6:
			return 3
		default:
			return 2
		}
	})
}

func newPlayerSprite() (*sprite.Sprite, error) {
	return sprite.New("player",
		&sprite.Animation{
			Name: "walk", Width: playerSize, Height: playerSize, Depth: 4,
			Frames:      [][]byte{playerFrame(0), playerFrame(1)},
			FrameLength: 8, Loop: true, Palette: playerPalette,
		},
		&sprite.Animation{
			Name: "jump", Width: playerSize, Height: playerSize, Depth: 4,
			Frames:  [][]byte{playerFrame(2)},
			Palette: playerPalette,
		},
	)
}

// Player walks back and forth between walls. It jumps on "a", and on its
// own while auto-jump is on ("b" toggles it). "left" and "right" pick the
// walking direction.
type Player struct {
	actor.Base
	dir      int
	jump     bool
	autoJump bool
	grounded bool
}

func NewPlayer(s *sprite.Sprite, x, y int) *Player {
	p := &Player{Base: actor.NewBase(x, y), dir: 1, autoJump: true}
	p.State.AddSprite(s, 0, 0)
	p.State.SetCollisionBounds(actor.BoundingRect{X: 2, Y: 0, Width: 12, Height: playerSize})
	p.State.VelocityX = walkSpeed
	return p
}

// Grounded reports whether the player stood on something at its last update.
func (p *Player) Grounded() bool {
	return p.grounded
}

func (p *Player) Direction() int {
	return p.dir
}

func (p *Player) Update(w actor.World) {
	info := p.Info()

	b := info.Bounds()
	_, p.grounded = w.SweepCollisionY(b, b.Y+1)

	// A zeroed velocity means the last move ran into a wall. In the air the
	// player keeps pushing so it can climb out of the pool.
	if info.VelocityX == 0 && p.grounded {
		p.dir = -p.dir
	}
	info.VelocityX = p.dir * walkSpeed

	if !p.grounded {
		info.VelocityY = min(info.VelocityY+gravity, maxFall)
		info.StartAnimation("jump")
		return
	}

	info.StartAnimation("walk")
	if p.jump || p.autoJump {
		info.VelocityY = jumpSpeed
		p.jump = false
	}
}

func (p *Player) OnButtonDown(name string) {
	switch name {
	case "left":
		p.dir = -1
		p.State.VelocityX = -walkSpeed
	case "right":
		p.dir = 1
		p.State.VelocityX = walkSpeed
	case "a":
		p.jump = true
	case "b":
		p.autoJump = !p.autoJump
	}
}
