package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameBufferRows(t *testing.T) {
	fb := NewFrameBuffer(4, 3)
	fb.Fill(testBlue)

	row := fb.Row(1)
	assert.Len(t, row, 4)
	row[2] = testRed

	assert.Equal(t, testRed, fb.GetPixel(2, 1))
	assert.Equal(t, testBlue, fb.GetPixel(2, 0))
	assert.Equal(t, testBlue, fb.GetPixel(2, 2))
}

func TestFrameBufferResizeReusesStorage(t *testing.T) {
	fb := NewFrameBuffer(8, 8)
	before := &fb.ToSlice()[0]

	fb.Resize(4, 4)
	assert.Equal(t, RenderSize{Width: 4, Height: 4}, fb.Size())
	assert.Len(t, fb.ToSlice(), 16)
	assert.Same(t, before, &fb.ToSlice()[0])

	fb.Resize(16, 16)
	assert.Len(t, fb.ToSlice(), 256)
}

func TestFrameBufferToRGBA(t *testing.T) {
	fb := NewFrameBuffer(2, 1)
	fb.SetPixel(0, 0, RGB15(31, 0, 16))
	fb.SetPixel(1, 0, RGB15(0, 1, 0))

	img := fb.ToRGBA()
	assert.Equal(t, []uint8{255, 0, 132, 255, 0, 8, 0, 255}, img.Pix)
}

func TestFrameBufferClone(t *testing.T) {
	fb := NewFrameBuffer(2, 2)
	fb.Fill(testGreen)

	c := fb.Clone()
	fb.SetPixel(0, 0, testRed)

	assert.Equal(t, testGreen, c.GetPixel(0, 0))
	assert.Equal(t, fb.Size(), c.Size())
}

func TestColor16Model(t *testing.T) {
	converted := Color16Model.Convert(RGB15(3, 4, 5))
	assert.Equal(t, RGB15(3, 4, 5), converted)

	r, g, b, a := RGB15(31, 31, 31).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), g)
	assert.Equal(t, uint32(0xffff), b)
	assert.Equal(t, uint32(0xffff), a)
}
