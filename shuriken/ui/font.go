package ui

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"

	"github.com/chubbymaggie/shuriken16/shuriken/tile"
	"github.com/chubbymaggie/shuriken16/shuriken/video"
)

const (
	// FontBase is the first character of a font tile set.
	FontBase  byte = ' '
	fontLast  byte = '~'
	fontDepth      = 4
)

// FontPalette is a 16 step ramp from transparent to fg, indexed by glyph
// coverage.
func FontPalette(fg video.Color16) *video.PaletteWithOffset {
	r, g, b := fg.Channels()
	entries := make([]video.Color16, 16)
	for i := 1; i < len(entries); i++ {
		k := uint16(i)
		entries[i] = video.RGB15(r*k/15, g*k/15, b*k/15)
	}
	return &video.PaletteWithOffset{Palette: video.NewPalette("font", entries...)}
}

// NewFontTileSet rasterizes the printable ASCII range of face into a 4-bit
// tile set, one tileWidth x tileHeight cell per character starting at
// FontBase. Pixel coverage becomes the palette index.
func NewFontTileSet(face font.Face, tileWidth, tileHeight int, fg video.Color16) (*tile.TileSet, error) {
	ts := tile.New("font", tileWidth, tileHeight, fontDepth)
	palette := FontPalette(fg)

	ascent := face.Metrics().Ascent.Ceil()
	mask := image.NewAlpha(image.Rect(0, 0, tileWidth, tileHeight))

	for ch := FontBase; ch <= fontLast; ch++ {
		draw.Draw(mask, mask.Bounds(), image.Transparent, image.Point{}, draw.Src)
		d := font.Drawer{
			Dst:  mask,
			Src:  image.Opaque,
			Face: face,
			Dot:  fixed.P(0, ascent),
		}
		d.DrawString(string(rune(ch)))

		if _, err := ts.Add(tile.Tile{Frames: [][]byte{packGlyph(mask, ts.Pitch())}, Palette: palette}); err != nil {
			return nil, fmt.Errorf("failed to add glyph %q: %w", ch, err)
		}
	}
	return ts, nil
}

// DefaultFontTileSet uses the 8x16 Inconsolata face.
func DefaultFontTileSet(fg video.Color16) (*tile.TileSet, error) {
	return NewFontTileSet(inconsolata.Regular8x16, 8, 16, fg)
}

func packGlyph(mask *image.Alpha, pitch int) []byte {
	b := mask.Bounds()
	data := make([]byte, pitch*b.Dy())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			index := mask.AlphaAt(x, y).A >> 4
			data[y*pitch+x/2] |= index << (4 * (x & 1))
		}
	}
	return data
}
