package tilemap

import (
	"github.com/chubbymaggie/shuriken16/shuriken/actor"
)

// CollisionLayer is a grid of solid cells. Cells outside the grid are open.
type CollisionLayer struct {
	Width      int
	Height     int
	TileWidth  int
	TileHeight int
	solid      []bool
}

func NewCollisionLayer(width, height, tileWidth, tileHeight int) *CollisionLayer {
	return &CollisionLayer{
		Width:      width,
		Height:     height,
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
		solid:      make([]bool, width*height),
	}
}

// CollisionFromLayer marks every cell of l for which solid returns true.
// A nil solid marks every non-empty cell.
func CollisionFromLayer(l *Layer, solid func(*TileRef) bool) *CollisionLayer {
	c := NewCollisionLayer(l.Width, l.Height, l.TileWidth, l.TileHeight)
	for y := 0; y < l.Height; y++ {
		for x, ref := range l.Row(y) {
			if ref == nil {
				continue
			}
			if solid == nil || solid(ref) {
				c.solid[y*c.Width+x] = true
			}
		}
	}
	return c
}

func (c *CollisionLayer) SetSolid(x, y int, solid bool) {
	if x >= 0 && y >= 0 && x < c.Width && y < c.Height {
		c.solid[y*c.Width+x] = solid
	}
}

func (c *CollisionLayer) Solid(x, y int) bool {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return false
	}
	return c.solid[y*c.Width+x]
}

// Blocked reports whether any pixel of r overlaps a solid cell.
func (c *CollisionLayer) Blocked(r actor.BoundingRect) bool {
	if r.Width <= 0 || r.Height <= 0 {
		return false
	}
	left := floorDiv(r.X, c.TileWidth)
	right := floorDiv(r.X+r.Width-1, c.TileWidth)
	top := floorDiv(r.Y, c.TileHeight)
	bottom := floorDiv(r.Y+r.Height-1, c.TileHeight)
	for y := top; y <= bottom; y++ {
		for x := left; x <= right; x++ {
			if c.Solid(x, y) {
				return true
			}
		}
	}
	return false
}

// SweepCollisionX steps bounds one pixel at a time toward targetX and stops
// at the last position that does not overlap a solid cell.
func (c *CollisionLayer) SweepCollisionX(bounds actor.BoundingRect, targetX int) (int, bool) {
	return sweep(bounds.X, targetX, func(x int) bool {
		r := bounds
		r.X = x
		return c.Blocked(r)
	})
}

// SweepCollisionY is SweepCollisionX for the vertical axis.
func (c *CollisionLayer) SweepCollisionY(bounds actor.BoundingRect, targetY int) (int, bool) {
	return sweep(bounds.Y, targetY, func(y int) bool {
		r := bounds
		r.Y = y
		return c.Blocked(r)
	})
}

func sweep(from, to int, blocked func(int) bool) (int, bool) {
	if from == to {
		return 0, false
	}
	step := 1
	if to < from {
		step = -1
	}
	for pos := from + step; ; pos += step {
		if blocked(pos) {
			return pos - step, true
		}
		if pos == to {
			return 0, false
		}
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
