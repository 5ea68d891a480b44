package tilemap

import (
	"github.com/chubbymaggie/shuriken16/shuriken/actor"
	"github.com/chubbymaggie/shuriken16/shuriken/video"
)

// Map is a stack of layers drawn back to front over a background color.
type Map struct {
	Name            string
	BackgroundColor video.Color16
	Layers          []*Layer
	// Collision is optional; without it nothing obstructs motion.
	Collision *CollisionLayer
}

var _ actor.Collider = (*Map)(nil)

func (m *Map) AddLayer(l *Layer) {
	m.Layers = append(m.Layers, l)
}

// LayerByName returns the first layer called name.
func (m *Map) LayerByName(name string) (*Layer, bool) {
	for _, l := range m.Layers {
		if l.Name == name {
			return l, true
		}
	}
	return nil, false
}

func (m *Map) SweepCollisionX(bounds actor.BoundingRect, targetX int) (int, bool) {
	if m == nil || m.Collision == nil {
		return 0, false
	}
	return m.Collision.SweepCollisionX(bounds, targetX)
}

func (m *Map) SweepCollisionY(bounds actor.BoundingRect, targetY int) (int, bool) {
	if m == nil || m.Collision == nil {
		return 0, false
	}
	return m.Collision.SweepCollisionY(bounds, targetY)
}
