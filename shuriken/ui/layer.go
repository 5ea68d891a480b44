// Package ui provides overlay layers composited above the map and below
// actors, centered in the render area.
package ui

import (
	"github.com/chubbymaggie/shuriken16/shuriken/tile"
	"github.com/chubbymaggie/shuriken16/shuriken/tilemap"
)

// Snapshot is the read-only view of the game a layer may inspect while
// updating.
type Snapshot interface {
	FrameCount() int
}

// Layer is an overlay refreshed once per composed frame.
type Layer interface {
	Update(s Snapshot)
	MapLayer() *tilemap.Layer
}

// TextRenderer refreshes the contents of a text layer.
type TextRenderer interface {
	Update(c *TextContents, s Snapshot)
}

// TextContents is a character grid backed by a tile layer. Each character
// maps to font tile (ch - base).
type TextContents struct {
	layer *tilemap.Layer
	font  *tile.TileSet
	base  byte
}

func (c *TextContents) Width() int  { return c.layer.Width }
func (c *TextContents) Height() int { return c.layer.Height }

func (c *TextContents) Clear() {
	c.layer.ClearAll()
}

// Write places text starting at column x of row y. Characters falling
// outside the grid or missing from the font are skipped. It panics if the
// font no longer matches the layer geometry.
func (c *TextContents) Write(x, y int, text string) {
	if y < 0 || y >= c.layer.Height {
		return
	}
	for i := 0; i < len(text); i++ {
		col := x + i
		if col < 0 || col >= c.layer.Width {
			continue
		}
		ch := text[i]
		if ch < c.base || int(ch-c.base) >= len(c.font.Tiles) {
			c.layer.ClearTile(col, y)
			continue
		}
		if err := c.layer.SetTile(col, y, c.font, int(ch-c.base)); err != nil {
			panic(err)
		}
	}
}

// TextLayer is a Layer whose tiles are characters of a font tile set.
type TextLayer struct {
	contents TextContents
	Renderer TextRenderer
}

var _ Layer = (*TextLayer)(nil)

// NewTextLayer creates a width x height character grid over font, whose
// first tile is the character base.
func NewTextLayer(font *tile.TileSet, base byte, width, height int) *TextLayer {
	return &TextLayer{
		contents: TextContents{
			layer: tilemap.NewLayer("text", width, height, font),
			font:  font,
			base:  base,
		},
	}
}

func (l *TextLayer) Contents() *TextContents {
	return &l.contents
}

func (l *TextLayer) Update(s Snapshot) {
	if l.Renderer != nil {
		l.Renderer.Update(&l.contents, s)
	}
}

func (l *TextLayer) MapLayer() *tilemap.Layer {
	return l.contents.layer
}
