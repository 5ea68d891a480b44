// Package sprite holds sprite resources: named animations of packed pixel
// frames that actors attach and draw.
package sprite

import (
	"fmt"

	"github.com/chubbymaggie/shuriken16/shuriken/tile"
	"github.com/chubbymaggie/shuriken16/shuriken/video"
)

// Animation is an ordered sequence of frames sharing one size and depth.
type Animation struct {
	Name        string
	Width       int
	Height      int
	Depth       int
	Frames      [][]byte
	FrameLength int // ticks per frame
	Loop        bool
	Palette     *video.PaletteWithOffset
}

// Pitch returns the number of bytes in one packed row.
func (a *Animation) Pitch() int {
	return video.RowPitch(a.Width, a.Depth)
}

// DataForTime returns the frame shown after the given number of ticks. It is
// a pure lookup; the caller owns the cursor.
func (a *Animation) DataForTime(frame int) []byte {
	return a.Frames[tile.FrameIndex(len(a.Frames), a.FrameLength, frame, a.Loop)]
}

// Validate checks the depth and frame sizes.
func (a *Animation) Validate() error {
	if !video.ValidDepth(a.Depth) {
		return fmt.Errorf("animation %q: invalid sprite bit depth %d", a.Name, a.Depth)
	}
	if len(a.Frames) == 0 {
		return fmt.Errorf("animation %q: no frames", a.Name)
	}
	size := a.Pitch() * a.Height
	for i, f := range a.Frames {
		if len(f) != size {
			return fmt.Errorf("animation %q: frame %d is %d bytes, expected %d", a.Name, i, len(f), size)
		}
	}
	return nil
}

// Sprite is a shared sprite resource.
type Sprite struct {
	Name             string
	animations       map[string]*Animation
	defaultAnimation *Animation
}

// New creates a sprite. The first animation becomes the default.
func New(name string, animations ...*Animation) (*Sprite, error) {
	s := &Sprite{
		Name:       name,
		animations: make(map[string]*Animation, len(animations)),
	}
	for _, a := range animations {
		if err := s.AddAnimation(a); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// AddAnimation registers an animation under its name.
func (s *Sprite) AddAnimation(a *Animation) error {
	if err := a.Validate(); err != nil {
		return fmt.Errorf("sprite %q: %w", s.Name, err)
	}
	if _, exists := s.animations[a.Name]; exists {
		return fmt.Errorf("sprite %q: duplicate animation %q", s.Name, a.Name)
	}
	s.animations[a.Name] = a
	if s.defaultAnimation == nil {
		s.defaultAnimation = a
	}
	return nil
}

// SetDefaultAnimation changes the animation adopted by newly attached sprites.
func (s *Sprite) SetDefaultAnimation(name string) error {
	a, ok := s.animations[name]
	if !ok {
		return fmt.Errorf("sprite %q: unknown animation %q", s.Name, name)
	}
	s.defaultAnimation = a
	return nil
}

func (s *Sprite) DefaultAnimation() *Animation {
	return s.defaultAnimation
}

func (s *Sprite) AnimationByName(name string) (*Animation, bool) {
	a, ok := s.animations[name]
	return a, ok
}
