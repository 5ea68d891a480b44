// Package tilemap holds map data: grids of tile references drawn by the
// compositor, and the solid-cell grid actors collide against.
package tilemap

import (
	"fmt"

	"github.com/chubbymaggie/shuriken16/shuriken/tile"
	"github.com/chubbymaggie/shuriken16/shuriken/video"
)

// ParallaxNormal is the 1:1 parallax factor, in 1/256 units.
const ParallaxNormal = 0x100

// TileRef selects one tile from a tile set. A nil *TileRef in a layer is an
// empty cell.
type TileRef struct {
	TileSet   *tile.TileSet
	TileIndex int
}

// Layer is a width x height grid of tile references. Every referenced tile
// set must share the layer's tile size and depth.
type Layer struct {
	Name       string
	Width      int
	Height     int
	TileWidth  int
	TileHeight int
	TileDepth  int
	tiles      []*TileRef

	// ParallaxX and ParallaxY scale the camera scroll in 1/256 units.
	ParallaxX int
	ParallaxY int
	// AutoScrollX and AutoScrollY add a drift of 1/256 pixel per frame.
	AutoScrollX int
	AutoScrollY int

	BlendMode video.BlendMode
	// Alpha is a weight in [0, video.MaxAlpha); 0 applies the blend mode
	// unweighted. Rendering a layer with a larger alpha panics.
	Alpha uint8
}

// NewLayer creates an empty layer whose tile geometry comes from ts.
func NewLayer(name string, width, height int, ts *tile.TileSet) *Layer {
	return &Layer{
		Name:       name,
		Width:      width,
		Height:     height,
		TileWidth:  ts.TileWidth,
		TileHeight: ts.TileHeight,
		TileDepth:  ts.Depth,
		tiles:      make([]*TileRef, width*height),
		ParallaxX:  ParallaxNormal,
		ParallaxY:  ParallaxNormal,
		BlendMode:  video.BlendNormal,
	}
}

func (l *Layer) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < l.Width && y < l.Height
}

// SetTile places tile index of ts at (x, y).
func (l *Layer) SetTile(x, y int, ts *tile.TileSet, index int) error {
	if ts.TileWidth != l.TileWidth || ts.TileHeight != l.TileHeight || ts.Depth != l.TileDepth {
		return fmt.Errorf("layer %q: tile set %q is %dx%d@%d, layer is %dx%d@%d", l.Name, ts.Name,
			ts.TileWidth, ts.TileHeight, ts.Depth, l.TileWidth, l.TileHeight, l.TileDepth)
	}
	if index < 0 || index >= len(ts.Tiles) {
		return fmt.Errorf("layer %q: tile index %d out of range for %q", l.Name, index, ts.Name)
	}
	if !l.inBounds(x, y) {
		return fmt.Errorf("layer %q: cell (%d, %d) outside %dx%d", l.Name, x, y, l.Width, l.Height)
	}
	l.tiles[y*l.Width+x] = &TileRef{TileSet: ts, TileIndex: index}
	return nil
}

// ClearTile empties the cell at (x, y). Out-of-range cells are ignored.
func (l *Layer) ClearTile(x, y int) {
	if l.inBounds(x, y) {
		l.tiles[y*l.Width+x] = nil
	}
}

// ClearAll empties every cell.
func (l *Layer) ClearAll() {
	clear(l.tiles)
}

// GetTile returns the reference at (x, y), or nil when empty or out of range.
func (l *Layer) GetTile(x, y int) *TileRef {
	if !l.inBounds(x, y) {
		return nil
	}
	return l.tiles[y*l.Width+x]
}

// Row returns the cells of map row y. The slice aliases layer storage.
func (l *Layer) Row(y int) []*TileRef {
	return l.tiles[y*l.Width : (y+1)*l.Width]
}

func (l *Layer) PixelWidth() int {
	return l.Width * l.TileWidth
}

func (l *Layer) PixelHeight() int {
	return l.Height * l.TileHeight
}
