package tilemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chubbymaggie/shuriken16/shuriken/actor"
	"github.com/chubbymaggie/shuriken16/shuriken/tile"
	"github.com/chubbymaggie/shuriken16/shuriken/video"
)

func testTileSet(t *testing.T, tw, th, depth int) *tile.TileSet {
	t.Helper()
	ts := tile.New("test", tw, th, depth)
	_, err := ts.Add(tile.Tile{Frames: [][]byte{make([]byte, ts.FrameSize())}})
	require.NoError(t, err)
	return ts
}

func TestLayerTiles(t *testing.T) {
	ts := testTileSet(t, 8, 8, 4)
	l := NewLayer("ground", 4, 3, ts)

	assert.Equal(t, 32, l.PixelWidth())
	assert.Equal(t, 24, l.PixelHeight())
	assert.Equal(t, ParallaxNormal, l.ParallaxX)
	assert.Equal(t, video.BlendNormal, l.BlendMode)

	require.NoError(t, l.SetTile(3, 2, ts, 0))
	ref := l.GetTile(3, 2)
	require.NotNil(t, ref)
	assert.Same(t, ts, ref.TileSet)
	assert.Same(t, ref, l.Row(2)[3])

	assert.Nil(t, l.GetTile(0, 0))
	assert.Nil(t, l.GetTile(-1, 0))
	assert.Nil(t, l.GetTile(4, 0))

	l.ClearTile(3, 2)
	assert.Nil(t, l.GetTile(3, 2))
}

func TestLayerRejectsMismatchedTiles(t *testing.T) {
	ts := testTileSet(t, 8, 8, 4)
	l := NewLayer("ground", 2, 2, ts)

	tests := []struct {
		name    string
		x, y    int
		ts      *tile.TileSet
		index   int
		message string
	}{
		{"wrong size", 0, 0, testTileSet(t, 16, 16, 4), 0, "tile set"},
		{"wrong depth", 0, 0, testTileSet(t, 8, 8, 8), 0, "tile set"},
		{"bad index", 0, 0, ts, 1, "out of range"},
		{"outside grid", 2, 0, ts, 0, "outside"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorContains(t, l.SetTile(tt.x, tt.y, tt.ts, tt.index), tt.message)
		})
	}
}

func TestCollisionBlocked(t *testing.T) {
	c := NewCollisionLayer(4, 4, 8, 8)
	c.SetSolid(2, 1, true)

	tests := []struct {
		name     string
		rect     actor.BoundingRect
		expected bool
	}{
		{"open space", actor.BoundingRect{X: 0, Y: 0, Width: 8, Height: 8}, false},
		{"inside solid cell", actor.BoundingRect{X: 17, Y: 9, Width: 2, Height: 2}, true},
		{"touching edge from left", actor.BoundingRect{X: 8, Y: 8, Width: 8, Height: 8}, false},
		{"one pixel overlap", actor.BoundingRect{X: 9, Y: 8, Width: 8, Height: 8}, true},
		{"outside grid is open", actor.BoundingRect{X: -20, Y: -20, Width: 8, Height: 8}, false},
		{"empty rect", actor.BoundingRect{X: 17, Y: 9, Width: 0, Height: 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.Blocked(tt.rect))
		})
	}
}

func TestCollisionSweeps(t *testing.T) {
	c := NewCollisionLayer(8, 8, 8, 8)
	c.SetSolid(4, 0, true) // pixels 32..39 on row 0
	c.SetSolid(0, 4, true) // pixels 32..39 on column 0

	box := actor.BoundingRect{X: 20, Y: 0, Width: 4, Height: 4}

	pos, hit := c.SweepCollisionX(box, 30)
	assert.True(t, hit)
	assert.Equal(t, 28, pos, "stops flush against the wall")

	_, hit = c.SweepCollisionX(box, 27)
	assert.False(t, hit)

	_, hit = c.SweepCollisionX(box, 0)
	assert.False(t, hit, "moving away is unobstructed")

	_, hit = c.SweepCollisionX(box, 20)
	assert.False(t, hit, "no motion")

	down := actor.BoundingRect{X: 2, Y: 10, Width: 4, Height: 4}
	pos, hit = c.SweepCollisionY(down, 40)
	assert.True(t, hit)
	assert.Equal(t, 28, pos)

	up := actor.BoundingRect{X: 2, Y: 44, Width: 4, Height: 4}
	pos, hit = c.SweepCollisionY(up, 30)
	assert.True(t, hit)
	assert.Equal(t, 40, pos)
}

func TestMapDelegatesCollision(t *testing.T) {
	m := &Map{Name: "empty"}
	_, hit := m.SweepCollisionX(actor.BoundingRect{Width: 1, Height: 1}, 100)
	assert.False(t, hit, "no collision layer never obstructs")

	ts := testTileSet(t, 8, 8, 4)
	ground := NewLayer("ground", 4, 4, ts)
	for x := 0; x < 4; x++ {
		require.NoError(t, ground.SetTile(x, 3, ts, 0))
	}
	m.AddLayer(ground)
	m.Collision = CollisionFromLayer(ground, nil)

	pos, hit := m.SweepCollisionY(actor.BoundingRect{X: 4, Y: 0, Width: 4, Height: 4}, 30)
	assert.True(t, hit)
	assert.Equal(t, 20, pos)

	got, ok := m.LayerByName("ground")
	assert.True(t, ok)
	assert.Same(t, ground, got)
}

func TestActorLandsOnGround(t *testing.T) {
	c := NewCollisionLayer(4, 4, 8, 8)
	for x := 0; x < 4; x++ {
		c.SetSolid(x, 3, true)
	}

	info := actor.NewInfo(4, 0)
	info.SetCollisionBounds(actor.BoundingRect{X: 0, Y: 0, Width: 4, Height: 4})
	info.VelocityY = 0x300

	for i := 0; i < 20; i++ {
		info.ApplyMove(c)
	}
	assert.Equal(t, 20, info.Y)
	assert.Equal(t, 0, info.VelocityY)
	assert.Equal(t, uint8(0), info.SubpixelY)
}

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, 1, floorDiv(15, 8))
	assert.Equal(t, -1, floorDiv(-1, 8))
	assert.Equal(t, -1, floorDiv(-8, 8))
	assert.Equal(t, -2, floorDiv(-9, 8))
	assert.Equal(t, 0, floorDiv(0, 8))
}

// moveYFirst resolves a whole-pixel move with the axes swapped.
func moveYFirst(c *CollisionLayer, b actor.BoundingRect, dx, dy int) (int, int) {
	y := b.Y + dy
	if revised, hit := c.SweepCollisionY(b, y); hit {
		y = revised
	}
	b.Y = y
	x := b.X + dx
	if revised, hit := c.SweepCollisionX(b, x); hit {
		x = revised
	}
	return x, y
}

func TestApplyMoveCornerResolution(t *testing.T) {
	tests := []struct {
		name      string
		solid     [][2]int
		expectedX int
		expectedY int
		yFirstX   int
		yFirstY   int
	}{
		{
			name:      "wall clears the fall",
			solid:     [][2]int{{2, 0}, {2, 1}},
			expectedX: 12, expectedY: 10,
			yFirstX: 12, yFirstY: 10,
		},
		{
			name:      "corner block",
			solid:     [][2]int{{2, 0}},
			expectedX: 12, expectedY: 10,
			yFirstX: 18, yFirstY: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCollisionLayer(4, 4, 8, 8)
			for _, cell := range tt.solid {
				c.SetSolid(cell[0], cell[1], true)
			}

			info := actor.NewInfo(10, 2)
			info.SetCollisionBounds(actor.BoundingRect{Width: 4, Height: 4})
			info.VelocityX = 0x800
			info.VelocityY = 0x800
			start := info.Bounds()

			info.ApplyMove(c)

			assert.Equal(t, tt.expectedX, info.X)
			assert.Equal(t, tt.expectedY, info.Y)
			assert.Equal(t, 0, info.VelocityX, "X stops at the wall")
			assert.Equal(t, 0x800, info.VelocityY, "Y keeps falling")
			assert.False(t, c.Blocked(info.Bounds()))

			x, y := moveYFirst(c, start, 8, 8)
			assert.Equal(t, tt.yFirstX, x)
			assert.Equal(t, tt.yFirstY, y)

			atTarget := start
			atTarget.X += 8
			_, hit := c.SweepCollisionY(atTarget, start.Y+8)
			assert.True(t, hit, "the fall is blocked at the unresolved X")
		})
	}
}
