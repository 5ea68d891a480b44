package ui

import (
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chubbymaggie/shuriken16/shuriken/tile"
	"github.com/chubbymaggie/shuriken16/shuriken/video"
)

type frames int

func (f frames) FrameCount() int { return int(f) }

// asciiFont has one blank 2x2 tile for every character from ' ' to 'z'.
func asciiFont(t *testing.T) *tile.TileSet {
	t.Helper()
	ts := tile.New("font", 2, 2, 4)
	for ch := ' '; ch <= 'z'; ch++ {
		_, err := ts.Add(tile.Tile{Frames: [][]byte{make([]byte, ts.FrameSize())}})
		require.NoError(t, err)
	}
	return ts
}

func rowText(c *TextContents, y int) string {
	out := make([]byte, c.Width())
	for x := range out {
		ref := c.layer.GetTile(x, y)
		if ref == nil {
			out[x] = '.'
			continue
		}
		out[x] = c.base + byte(ref.TileIndex)
	}
	return string(out)
}

func TestTextContentsWrite(t *testing.T) {
	font := asciiFont(t)

	tests := []struct {
		name     string
		x, y     int
		text     string
		expected string
	}{
		{"at origin", 0, 0, "HI", "HI......"},
		{"clipped right", 6, 0, "ABCD", "......AB"},
		{"clipped left", -2, 0, "ABCD", "CD......"},
		{"missing glyph", 0, 0, "a~b", "a.b....."},
		{"row outside", 0, 5, "HI", "........"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewTextLayer(font, FontBase, 8, 3)
			c := l.Contents()
			c.Write(tt.x, tt.y, tt.text)
			assert.Equal(t, tt.expected, rowText(c, 0))
		})
	}
}

func TestTextContentsWriteMismatchedFontPanics(t *testing.T) {
	l := NewTextLayer(asciiFont(t), FontBase, 4, 1)
	c := l.Contents()

	large := tile.New("large", 4, 4, 4)
	for ch := ' '; ch <= 'z'; ch++ {
		_, err := large.Add(tile.Tile{Frames: [][]byte{make([]byte, large.FrameSize())}})
		require.NoError(t, err)
	}
	c.font = large

	assert.Panics(t, func() { c.Write(0, 0, "A") })
	assert.NotPanics(t, func() { c.Write(0, 0, "~") }, "missing glyphs are cleared without a tile set lookup")
}

func TestTextContentsClear(t *testing.T) {
	l := NewTextLayer(asciiFont(t), FontBase, 4, 2)
	c := l.Contents()
	c.Write(0, 1, "ok")
	assert.Equal(t, "ok..", rowText(c, 1))
	c.Clear()
	assert.Equal(t, "....", rowText(c, 1))
	assert.Equal(t, 4, c.Width())
	assert.Equal(t, 2, c.Height())
	assert.Equal(t, 8, l.MapLayer().PixelWidth())
}

func TestFrameRateRenderer(t *testing.T) {
	base := time.Unix(1000, 0)
	now := base
	r := newFrameRateRenderer(func() time.Time { return now })

	l := NewTextLayer(asciiFont(t), FontBase, 10, 3)
	l.Renderer = r
	c := l.Contents()

	l.Update(frames(10))
	assert.Equal(t, 0, r.FrameRate(), "no full second elapsed")
	assert.Equal(t, "....0 FPS.", rowText(c, 1))

	now = base.Add(1100 * time.Millisecond)
	l.Update(frames(60))
	assert.Equal(t, 60, r.FrameRate())
	assert.Equal(t, "...60 FPS.", rowText(c, 1))

	now = base.Add(1900 * time.Millisecond)
	l.Update(frames(100))
	assert.Equal(t, 60, r.FrameRate(), "same second keeps the measurement")

	now = base.Add(2 * time.Second)
	l.Update(frames(118))
	assert.Equal(t, 58, r.FrameRate())
	assert.Equal(t, "..........", rowText(c, 0))
}

func TestDefaultFontTileSet(t *testing.T) {
	white := video.RGB15(31, 31, 31)
	ts, err := DefaultFontTileSet(white)
	require.NoError(t, err)

	assert.Equal(t, 4, ts.Depth)
	assert.Equal(t, int(fontLast-FontBase)+1, len(ts.Tiles))

	blank := ts.DataForTime(0, 0)
	for _, b := range blank {
		assert.Zero(t, b, "space has no coverage")
	}

	glyph := ts.DataForTime(int('A'-FontBase), 0)
	covered := 0
	for _, b := range glyph {
		if b != 0 {
			covered++
		}
	}
	assert.Positive(t, covered)

	p := ts.PaletteFor(0).Window()
	require.Len(t, p, 16)
	assert.Equal(t, white, p[15])
	assert.Equal(t, video.Color16(0), p[0])
}

func TestPackGlyph(t *testing.T) {
	mask := image.NewAlpha(image.Rect(0, 0, 3, 1))
	mask.SetAlpha(0, 0, color.Alpha{A: 0xff})
	mask.SetAlpha(1, 0, color.Alpha{A: 0x20})
	mask.SetAlpha(2, 0, color.Alpha{A: 0x80})

	assert.Equal(t, []byte{0x2f, 0x08}, packGlyph(mask, 2))
}
