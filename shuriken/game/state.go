// Package game holds the simulation state consumed by the frame composer:
// the map, the actors, overlay layers, the global scroll and the frame
// counter.
package game

import (
	"github.com/chubbymaggie/shuriken16/shuriken/actor"
	"github.com/chubbymaggie/shuriken16/shuriken/tilemap"
	"github.com/chubbymaggie/shuriken16/shuriken/ui"
)

type State struct {
	Frame    int
	ScrollX  int
	ScrollY  int
	Map      *tilemap.Map
	Actors   []*actor.Ref
	UILayers []ui.Layer

	follow     *actor.Ref
	viewWidth  int
	viewHeight int
}

var (
	_ actor.World = (*State)(nil)
	_ ui.Snapshot = (*State)(nil)
)

func New(m *tilemap.Map) *State {
	return &State{Map: m}
}

func (s *State) FrameCount() int {
	return s.Frame
}

func (s *State) SweepCollisionX(bounds actor.BoundingRect, targetX int) (int, bool) {
	return s.Map.SweepCollisionX(bounds, targetX)
}

func (s *State) SweepCollisionY(bounds actor.BoundingRect, targetY int) (int, bool) {
	return s.Map.SweepCollisionY(bounds, targetY)
}

// AddActor registers a and returns its shared handle.
func (s *State) AddActor(a actor.Actor) *actor.Ref {
	ref := actor.NewRef(a)
	s.Actors = append(s.Actors, ref)
	return ref
}

func (s *State) AddUILayer(l ui.Layer) {
	s.UILayers = append(s.UILayers, l)
}

// SetViewSize records the render size used to center the camera.
func (s *State) SetViewSize(width, height int) {
	s.viewWidth = width
	s.viewHeight = height
	s.updateCamera()
}

// Follow keeps the global scroll centered on ref after every tick. A nil ref
// stops following.
func (s *State) Follow(ref *actor.Ref) {
	s.follow = ref
	s.updateCamera()
}

// Tick advances the simulation one frame. Actors run in insertion order;
// each is updated, moved, and has its animations advanced.
func (s *State) Tick() {
	for _, ref := range s.Actors {
		ref.WithMut(func(a actor.Actor) {
			actor.Tick(a, s)
			a.Info().AdvanceAnimations()
		})
	}
	s.Frame++
	s.updateCamera()
}

func (s *State) ButtonDown(name string) {
	for _, ref := range s.Actors {
		ref.WithMut(func(a actor.Actor) { a.OnButtonDown(name) })
	}
}

func (s *State) ButtonUp(name string) {
	for _, ref := range s.Actors {
		ref.WithMut(func(a actor.Actor) { a.OnButtonUp(name) })
	}
}

func (s *State) updateCamera() {
	if s.follow == nil {
		return
	}
	s.follow.With(func(a actor.Actor) {
		b := a.Info().Bounds()
		s.ScrollX = b.X + b.Width/2 - s.viewWidth/2
		s.ScrollY = b.Y + b.Height/2 - s.viewHeight/2
	})
}
