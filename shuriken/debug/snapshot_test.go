package debug

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chubbymaggie/shuriken16/shuriken/video"
)

func TestSaveFramePNGToDir(t *testing.T) {
	dir := t.TempDir()

	fb := video.NewFrameBuffer(4, 3)
	fb.Fill(video.RGB15(31, 31, 31))

	path, err := SaveFramePNGToDir(fb, video.RenderSize{Width: 8, Height: 6}, "test", dir)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())
	assert.Equal(t, 6, img.Bounds().Dy())

	r, g, b, a := img.At(7, 5).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), g)
	assert.Equal(t, uint32(0xffff), b)
	assert.Equal(t, uint32(0xffff), a)
}

func TestSaveFramePNGToMissingDir(t *testing.T) {
	fb := video.NewFrameBuffer(1, 1)
	_, err := SaveFramePNGToDir(fb, video.RenderSize{}, "test", filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
