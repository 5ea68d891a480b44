// Package tile holds tile sets: packed pixel data for fixed-size tiles, with
// optional per-tile animation and palette selection.
package tile

import (
	"fmt"

	"github.com/chubbymaggie/shuriken16/shuriken/video"
)

// Tile is one entry of a tile set. Frames holds the packed pixel data for
// each animation frame; a single-frame tile is static.
type Tile struct {
	Frames [][]byte
	// FrameLength is the number of ticks each frame is shown. Values below 1
	// are treated as 1.
	FrameLength int
	Palette     *video.PaletteWithOffset
}

// TileSet is a shared, read-only collection of tiles with a common size and
// pixel depth.
type TileSet struct {
	Name       string
	TileWidth  int
	TileHeight int
	Depth      int
	Tiles      []Tile
}

// New creates an empty tile set. It panics on an unsupported depth.
func New(name string, tileWidth, tileHeight, depth int) *TileSet {
	if !video.ValidDepth(depth) {
		panic(fmt.Sprintf("invalid tile bit depth %d", depth))
	}
	return &TileSet{
		Name:       name,
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
		Depth:      depth,
	}
}

// Pitch returns the number of bytes in one packed row of a tile.
func (ts *TileSet) Pitch() int {
	return video.RowPitch(ts.TileWidth, ts.Depth)
}

// FrameSize returns the number of bytes in one tile frame.
func (ts *TileSet) FrameSize() int {
	return ts.Pitch() * ts.TileHeight
}

// Add appends a tile and returns its index.
func (ts *TileSet) Add(t Tile) (int, error) {
	if len(t.Frames) == 0 {
		return 0, fmt.Errorf("tile set %q: tile has no frames", ts.Name)
	}
	for i, frame := range t.Frames {
		if len(frame) != ts.FrameSize() {
			return 0, fmt.Errorf("tile set %q: frame %d is %d bytes, expected %d",
				ts.Name, i, len(frame), ts.FrameSize())
		}
	}
	ts.Tiles = append(ts.Tiles, t)
	return len(ts.Tiles) - 1, nil
}

// DataForTime returns the pixel data of a tile for the given global frame
// counter. The lookup has no side effects.
func (ts *TileSet) DataForTime(index, frame int) []byte {
	t := &ts.Tiles[index]
	return t.Frames[FrameIndex(len(t.Frames), t.FrameLength, frame, true)]
}

// PaletteFor returns the palette window for a tile, or nil.
func (ts *TileSet) PaletteFor(index int) *video.PaletteWithOffset {
	return ts.Tiles[index].Palette
}

// FrameIndex maps a tick counter onto a frame list. Looping sequences wrap,
// non-looping ones hold the last frame.
func FrameIndex(frameCount, frameLength, tick int, loop bool) int {
	if frameCount <= 1 {
		return 0
	}
	if frameLength < 1 {
		frameLength = 1
	}
	if tick < 0 {
		tick = 0
	}
	i := tick / frameLength
	if loop {
		return i % frameCount
	}
	if i >= frameCount {
		return frameCount - 1
	}
	return i
}
