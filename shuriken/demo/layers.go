package demo

import (
	"fmt"

	"github.com/chubbymaggie/shuriken16/shuriken/tile"
	"github.com/chubbymaggie/shuriken16/shuriken/tilemap"
	"github.com/chubbymaggie/shuriken16/shuriken/video"
)

const (
	tileSize = 16

	mapWidth  = 32
	mapHeight = 20
	// groundRow is the first row of solid ground. Rows below it, and the
	// rows the vertical wrap brings under it, are filled with dirt.
	groundRow = 15
	wallTop   = 10

	skyRows = 15
)

var (
	skyTop     = video.RGB15(4, 6, 16)
	skyHorizon = video.RGB15(26, 20, 22)

	poolColumns     = []int{12, 13}
	platformColumns = []int{19, 20, 21, 22}
	platformRow     = 12
)

// Ground materials. Each one is a three color window into groundPalette.
const (
	matGrass = iota * 3
	matDirt
	matBrick
	matWater
)

var groundPalette = video.NewPalette("ground",
	0,
	video.RGB15(3, 12, 4), video.RGB15(6, 18, 5), video.RGB15(12, 24, 8),
	video.RGB15(10, 6, 3), video.RGB15(14, 9, 5), video.RGB15(18, 12, 7),
	video.RGB15(12, 11, 10), video.RGB15(20, 7, 5), video.RGB15(25, 11, 8),
	video.RGB15(2, 6, 16), video.RGB15(4, 11, 22), video.RGB15(22, 27, 31),
)

func material(offset int) *video.PaletteWithOffset {
	return &video.PaletteWithOffset{Palette: groundPalette, Offset: offset}
}

// groundTiles indexes the tiles of the ground tile set.
type groundTiles struct {
	set                       *tile.TileSet
	grass, dirt, brick, water int
}

func newGroundTiles() (*groundTiles, error) {
	ts := tile.New("ground", tileSize, tileSize, 4)
	g := &groundTiles{set: ts}

	// Grass tops use indices past their window to reach the dirt colors.
	grass := pack(4, tileSize, tileSize, func(x, y int) uint16 {
		if y < 4+noise(x, 0, 2) {
			return uint16(1 + noise(x, y, 3))
		}
		return uint16(matDirt + 1 + noise(x, y, 3))
	})
	dirt := pack(4, tileSize, tileSize, func(x, y int) uint16 {
		return uint16(1 + noise(x+31, y+17, 3))
	})
	brick := pack(4, tileSize, tileSize, func(x, y int) uint16 {
		shift := (y / 8 % 2) * 8
		switch {
		case y%8 == 7 || (x+shift)%16 == 15:
			return 1
		case y%8 == 0:
			return 3
		default:
			return 2
		}
	})
	water := func(phase int) []byte {
		return pack(4, tileSize, tileSize, func(x, y int) uint16 {
			switch {
			case y < 4:
				return 0
			case y == 4:
				return 3
			case ((x+phase*4)/4+y/3)%2 == 0:
				return 2
			default:
				return 1
			}
		})
	}

	tiles := []struct {
		index *int
		tile  tile.Tile
	}{
		{&g.grass, tile.Tile{Frames: [][]byte{grass}, Palette: material(matGrass)}},
		{&g.dirt, tile.Tile{Frames: [][]byte{dirt}, Palette: material(matDirt)}},
		{&g.brick, tile.Tile{Frames: [][]byte{brick}, Palette: material(matBrick)}},
		{&g.water, tile.Tile{Frames: [][]byte{water(0), water(1)}, FrameLength: 15, Palette: material(matWater)}},
	}
	for _, t := range tiles {
		index, err := ts.Add(t.tile)
		if err != nil {
			return nil, err
		}
		*t.index = index
	}
	return g, nil
}

// newGroundLayer lays out the floor, the pool, a floating platform and the
// two walls that keep the player in the scene.
func newGroundLayer(g *groundTiles) (*tilemap.Layer, error) {
	l := tilemap.NewLayer("ground", mapWidth, mapHeight, g.set)

	set := func(x, y, index int) error {
		return l.SetTile(x, y, g.set, index)
	}

	for x := 0; x < mapWidth; x++ {
		if err := set(x, groundRow, g.grass); err != nil {
			return nil, err
		}
		for _, y := range []int{16, 17, 18, 19, 0, 1, 2} {
			if err := set(x, y, g.dirt); err != nil {
				return nil, err
			}
		}
	}
	for _, x := range poolColumns {
		if err := set(x, groundRow, g.water); err != nil {
			return nil, err
		}
	}
	for _, x := range platformColumns {
		if err := set(x, platformRow, g.brick); err != nil {
			return nil, err
		}
	}
	for y := wallTop; y < groundRow; y++ {
		if err := set(0, y, g.brick); err != nil {
			return nil, err
		}
		if err := set(mapWidth-1, y, g.brick); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// groundCollision makes every ground tile except water solid.
func groundCollision(l *tilemap.Layer, g *groundTiles) *tilemap.CollisionLayer {
	return tilemap.CollisionFromLayer(l, func(ref *tilemap.TileRef) bool {
		return ref.TileIndex != g.water
	})
}

// newSkyLayer is a static 8-bit gradient one tile wide. Every pixel row
// has its own palette entry.
func newSkyLayer() (*tilemap.Layer, error) {
	rows := skyRows * tileSize
	entries := make([]video.Color16, rows+1)
	for y := 0; y < rows; y++ {
		entries[y+1] = ramp(skyTop, skyHorizon, y, rows-1)
	}
	palette := &video.PaletteWithOffset{Palette: video.NewPalette("sky", entries...)}

	ts := tile.New("sky", tileSize, tileSize, 8)
	l := tilemap.NewLayer("sky", 1, skyRows, ts)
	l.ParallaxX, l.ParallaxY = 0, 0

	for row := 0; row < skyRows; row++ {
		data := pack(8, tileSize, tileSize, func(_, y int) uint16 {
			return uint16(1 + row*tileSize + y)
		})
		index, err := ts.Add(tile.Tile{Frames: [][]byte{data}, Palette: palette})
		if err != nil {
			return nil, fmt.Errorf("failed to build sky row %d: %w", row, err)
		}
		if err := l.SetTile(0, row, ts, index); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// newCloudLayer drifts slowly and scrolls at a fraction of the camera.
func newCloudLayer() (*tilemap.Layer, error) {
	palette := &video.PaletteWithOffset{Palette: video.NewPalette("clouds",
		0, video.RGB15(31, 31, 31), video.RGB15(24, 24, 28), video.RGB15(18, 18, 24))}

	ts := tile.New("clouds", 32, 16, 8)
	puff := pack(8, 32, 16, func(x, y int) uint16 {
		dx, dy := x*2-31, (y-10)*4
		d := dx*dx + dy*dy
		switch {
		case d > 31*31:
			return 0
		case y > 11:
			return 3
		case d > 24*24:
			return 2
		default:
			return 1
		}
	})
	index, err := ts.Add(tile.Tile{Frames: [][]byte{puff}, Palette: palette})
	if err != nil {
		return nil, err
	}

	l := tilemap.NewLayer("clouds", 16, 8, ts)
	l.ParallaxX, l.ParallaxY = 0x60, 0x40
	l.AutoScrollX = 0x40
	for _, c := range [][2]int{{1, 1}, {2, 1}, {6, 3}, {11, 0}, {12, 0}, {13, 0}, {9, 5}} {
		if err := l.SetTile(c[0], c[1], ts, index); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// newMistLayer is a translucent band drifting along the ground.
func newMistLayer() (*tilemap.Layer, error) {
	palette := &video.PaletteWithOffset{Palette: video.NewPalette("mist",
		0, video.RGB15(28, 28, 30), video.RGB15(24, 25, 29))}

	ts := tile.New("mist", 32, 16, 8)
	wisp := pack(8, 32, 16, func(x, y int) uint16 {
		top := 6 + noise(x/4, 0, 4)
		switch {
		case y < top:
			return 0
		case y < top+2:
			return 2
		default:
			return 1
		}
	})
	index, err := ts.Add(tile.Tile{Frames: [][]byte{wisp}, Palette: palette})
	if err != nil {
		return nil, err
	}

	l := tilemap.NewLayer("mist", mapWidth*tileSize/32, mapHeight, ts)
	l.Alpha = 12
	l.AutoScrollX = 0x80
	for x := 0; x < l.Width; x += 2 {
		if err := l.SetTile(x, groundRow-1, ts, index); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// newLightLayer adds soft 16-bit glows over the scene.
func newLightLayer() (*tilemap.Layer, error) {
	const size = 32
	glow := video.RGB15(14, 11, 4)
	ts := tile.New("light", size, size, 16)
	data := pack(16, size, size, func(x, y int) uint16 {
		dx, dy := x*2-size+1, y*2-size+1
		d := dx*dx + dy*dy
		if d >= size*size {
			return uint16(video.TransparentFlag)
		}
		return uint16(ramp(glow, 0, d, size*size))
	})
	index, err := ts.Add(tile.Tile{Frames: [][]byte{data}})
	if err != nil {
		return nil, err
	}

	l := tilemap.NewLayer("light", 16, 10, ts)
	l.BlendMode = video.BlendAdd
	l.AutoScrollX = 0x20
	for _, c := range [][2]int{{3, 5}, {9, 6}, {14, 4}} {
		if err := l.SetTile(c[0], c[1], ts, index); err != nil {
			return nil, err
		}
	}
	return l, nil
}
