//go:build !sdl2

package sdl2

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chubbymaggie/shuriken16/shuriken/backend"
	"github.com/chubbymaggie/shuriken16/shuriken/video"
)

func TestStubReportsUnavailable(t *testing.T) {
	b := New()
	assert.ErrorIs(t, b.Init(backend.BackendConfig{}), ErrUnavailable)

	_, err := b.Update(video.NewFrameBuffer(1, 1))
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.NoError(t, b.Cleanup())
}
