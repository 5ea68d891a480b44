// Package actor implements the generic actor framework: fixed-point motion
// with collision sweeps, sprite attachment and animation bookkeeping.
// Actor-specific behaviour plugs in through the Actor interface.
package actor

import (
	"github.com/chubbymaggie/shuriken16/shuriken/sprite"
)

// BoundingRect is an axis-aligned rectangle in world pixels.
type BoundingRect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Collider is the map side of a collision sweep. Each sweep returns
// (revised, true) when the rectangle cannot reach target on that axis, with
// revised being the furthest reachable coordinate, and (0, false) when the
// target is reachable.
type Collider interface {
	SweepCollisionX(bounds BoundingRect, targetX int) (int, bool)
	SweepCollisionY(bounds BoundingRect, targetY int) (int, bool)
}

// World is what an actor sees of the simulation during a tick.
type World interface {
	Collider
	FrameCount() int
}

// SpriteWithOffset is a sprite attached to an actor at a fixed pixel offset,
// with its own animation cursor.
type SpriteWithOffset struct {
	Sprite         *sprite.Sprite
	Animation      *sprite.Animation
	AnimationFrame int
	XOffset        int
	YOffset        int
}

// Info is the state shared by every actor. Position is a 16.8 fixed-point
// value split into integer pixels and a subpixel remainder; velocity is in
// 1/256 pixel per tick.
type Info struct {
	X               int
	Y               int
	SubpixelX       uint8
	SubpixelY       uint8
	VelocityX       int
	VelocityY       int
	CollisionBounds *BoundingRect
	Sprites         []SpriteWithOffset
}

func NewInfo(x, y int) Info {
	return Info{X: x, Y: y}
}

// Actor is implemented by every simulated object. Embed Base to get the
// default behaviour and override only what the actor needs.
type Actor interface {
	Info() *Info
	// Update runs actor-specific logic once per tick, before motion.
	Update(w World)
	OnButtonDown(name string)
	OnButtonUp(name string)
}

// Base provides the actor state and no-op hooks.
type Base struct {
	State Info
}

func NewBase(x, y int) Base {
	return Base{State: NewInfo(x, y)}
}

func (b *Base) Info() *Info { return &b.State }

func (b *Base) Update(World) {}

func (b *Base) OnButtonDown(string) {}

func (b *Base) OnButtonUp(string) {}

// Tick runs one simulation step: actor logic, then motion integration.
func Tick(a Actor, w World) {
	a.Update(w)
	a.Info().ApplyMove(w)
}

// AddSprite attaches a sprite at a fixed offset using its default animation.
func (info *Info) AddSprite(s *sprite.Sprite, xOffset, yOffset int) {
	info.Sprites = append(info.Sprites, SpriteWithOffset{
		Sprite:    s,
		Animation: s.DefaultAnimation(),
		XOffset:   xOffset,
		YOffset:   yOffset,
	})
}

// StartAnimation switches every attached sprite that defines name. A sprite
// already playing that animation keeps its cursor.
func (info *Info) StartAnimation(name string) {
	for i := range info.Sprites {
		s := &info.Sprites[i]
		animation, ok := s.Sprite.AnimationByName(name)
		if !ok || animation == s.Animation {
			continue
		}
		s.Animation = animation
		s.AnimationFrame = 0
	}
}

func (info *Info) SetCollisionBounds(bounds BoundingRect) {
	info.CollisionBounds = &bounds
}

// AdvanceAnimations moves every sprite's animation cursor forward one tick.
func (info *Info) AdvanceAnimations() {
	for i := range info.Sprites {
		info.Sprites[i].AnimationFrame++
	}
}
