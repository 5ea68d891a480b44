package sprite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func animation(name string, frames int, loop bool) *Animation {
	a := &Animation{Name: name, Width: 2, Height: 2, Depth: 8, FrameLength: 2, Loop: loop}
	for i := 0; i < frames; i++ {
		b := byte(i + 1)
		a.Frames = append(a.Frames, []byte{b, b, b, b})
	}
	return a
}

func TestSpriteAnimations(t *testing.T) {
	idle := animation("idle", 1, true)
	walk := animation("walk", 3, true)

	s, err := New("hero", idle, walk)
	require.NoError(t, err)

	assert.Same(t, idle, s.DefaultAnimation())

	got, ok := s.AnimationByName("walk")
	assert.True(t, ok)
	assert.Same(t, walk, got)

	_, ok = s.AnimationByName("jump")
	assert.False(t, ok)

	require.NoError(t, s.SetDefaultAnimation("walk"))
	assert.Same(t, walk, s.DefaultAnimation())
	assert.Error(t, s.SetDefaultAnimation("jump"))
}

func TestSpriteRejectsBadAnimations(t *testing.T) {
	bad := animation("bad", 1, true)
	bad.Depth = 3
	_, err := New("broken", bad)
	assert.ErrorContains(t, err, "invalid sprite bit depth 3")

	short := animation("short", 1, true)
	short.Frames[0] = short.Frames[0][:3]
	_, err = New("broken", short)
	assert.Error(t, err)

	_, err = New("dup", animation("a", 1, true), animation("a", 1, true))
	assert.ErrorContains(t, err, "duplicate animation")
}

func TestAnimationDataForTime(t *testing.T) {
	looping := animation("loop", 3, true)
	once := animation("once", 3, false)

	tests := []struct {
		name     string
		anim     *Animation
		frame    int
		expected byte
	}{
		{"loop start", looping, 0, 1},
		{"loop second frame", looping, 2, 2},
		{"loop wraps", looping, 6, 1},
		{"once holds last frame", once, 100, 3},
		{"once mid", once, 5, 3},
		{"once second", once, 3, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.anim.DataForTime(tt.frame)[0])
		})
	}
}
