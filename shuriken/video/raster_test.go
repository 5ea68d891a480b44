package video

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	testRed   = RGB15(31, 0, 0)
	testGreen = RGB15(0, 31, 0)
	testBlue  = RGB15(0, 0, 31)
	sentinel  = RGB15(7, 7, 7)
)

func testPalette() *PaletteWithOffset {
	// index 0 is deliberately a visible color: it must still never be drawn
	pal := NewPalette("test", RGB15(31, 31, 31), testRed, testGreen, testBlue, RGB15(1, 2, 3))
	return &PaletteWithOffset{Palette: pal}
}

func filledRow(n int) []Color16 {
	row := make([]Color16, n)
	for i := range row {
		row[i] = sentinel
	}
	return row
}

func TestRenderRow4Bit(t *testing.T) {
	// pixels: 1 0 2 3 | 0 1 0 0
	src := []byte{0x01, 0x32, 0x10, 0x00}

	t.Run("full row", func(t *testing.T) {
		dst := filledRow(8)
		RenderRow4Bit(dst, src, 0, 8, testPalette(), NormalBlend)
		assert.Equal(t, []Color16{testRed, sentinel, testGreen, testBlue, sentinel, testRed, sentinel, sentinel}, dst)
	})

	t.Run("odd left edge", func(t *testing.T) {
		dst := filledRow(3)
		RenderRow4Bit(dst, src, 1, 3, testPalette(), NormalBlend)
		assert.Equal(t, []Color16{sentinel, testGreen, testBlue}, dst)
	})

	t.Run("palette offset", func(t *testing.T) {
		dst := filledRow(1)
		pal := testPalette()
		pal.Offset = 1
		RenderRow4Bit(dst, []byte{0x02}, 0, 1, pal, NormalBlend)
		assert.Equal(t, []Color16{testBlue}, dst)
	})

	t.Run("no palette draws nothing", func(t *testing.T) {
		dst := filledRow(8)
		RenderRow4Bit(dst, src, 0, 8, nil, NormalBlend)
		assert.Equal(t, filledRow(8), dst)
	})
}

func TestRenderRow8Bit(t *testing.T) {
	src := []byte{0, 1, 2, 0, 3, 4}

	t.Run("index zero is skipped", func(t *testing.T) {
		dst := filledRow(6)
		RenderRow8Bit(dst, src, 0, 6, testPalette(), NormalBlend)
		assert.Equal(t, []Color16{sentinel, testRed, testGreen, sentinel, testBlue, RGB15(1, 2, 3)}, dst)
	})

	t.Run("window", func(t *testing.T) {
		dst := filledRow(3)
		RenderRow8Bit(dst, src, 2, 3, testPalette(), NormalBlend)
		assert.Equal(t, []Color16{testGreen, sentinel, testBlue}, dst)
	})

	t.Run("blend is applied", func(t *testing.T) {
		dst := []Color16{RGB15(1, 1, 1)}
		RenderRow8Bit(dst, []byte{4}, 0, 1, testPalette(), AddBlend)
		assert.Equal(t, []Color16{RGB15(2, 3, 4)}, dst)
	})
}

func TestRenderRow16Bit(t *testing.T) {
	src := []byte{
		0x1f, 0x00, // blue
		0x1f, 0x80, // blue with transparency flag
		0x00, 0x7c, // red
		0xff, 0xff, // transparent white
	}

	dst := filledRow(4)
	RenderRow16Bit(dst, src, 0, 4, nil, NormalBlend)
	assert.Equal(t, []Color16{testBlue, sentinel, testRed, sentinel}, dst)

	dst = filledRow(1)
	RenderRow16Bit(dst, src, 2, 1, testPalette(), NormalBlend)
	assert.Equal(t, []Color16{testRed}, dst, "palette is ignored for direct color")
}

func TestRowPitch(t *testing.T) {
	assert.Equal(t, 4, RowPitch(8, 4))
	assert.Equal(t, 3, RowPitch(5, 4))
	assert.Equal(t, 8, RowPitch(8, 8))
	assert.Equal(t, 16, RowPitch(8, 16))
}

func TestRasterizerForDepth(t *testing.T) {
	for _, depth := range []int{4, 8, 16} {
		assert.NotNil(t, RasterizerForDepth(depth))
		assert.True(t, ValidDepth(depth))
		r, ok := LookupRasterizer(depth)
		assert.True(t, ok)
		assert.NotNil(t, r)
	}

	for _, depth := range []int{0, 1, 2, 12, 24, 32} {
		assert.False(t, ValidDepth(depth))
		_, ok := LookupRasterizer(depth)
		assert.False(t, ok)
		assert.PanicsWithValue(t, fmt.Sprintf("invalid tile bit depth %d", depth), func() {
			RasterizerForDepth(depth)
		})
	}
}
