package render

import (
	"github.com/chubbymaggie/shuriken16/shuriken/actor"
	"github.com/chubbymaggie/shuriken16/shuriken/game"
	"github.com/chubbymaggie/shuriken16/shuriken/video"
)

// RenderFrame composes one frame: background, map layers at the global
// scroll, overlay layers centered, then actor sprites. Later draws win.
func RenderFrame(fb *video.FrameBuffer, s *game.State) {
	if fb.Width() <= 0 || fb.Height() <= 0 {
		return
	}

	fb.Fill(s.Map.BackgroundColor)

	for _, l := range s.Map.Layers {
		RenderLayer(fb, l, s.ScrollX, s.ScrollY, s.Frame)
	}

	for _, overlay := range s.UILayers {
		overlay.Update(s)
		l := overlay.MapLayer()
		scrollX := (fb.Width() - l.PixelWidth()) / 2
		scrollY := (fb.Height() - l.PixelHeight()) / 2
		RenderLayer(fb, l, scrollX, scrollY, s.Frame)
	}

	for _, ref := range s.Actors {
		ref.With(func(a actor.Actor) {
			info := a.Info()
			for _, spr := range info.Sprites {
				if spr.Animation == nil {
					continue
				}
				RenderSprite(fb, info.X+spr.XOffset-s.ScrollX, info.Y+spr.YOffset-s.ScrollY,
					spr.Animation, spr.AnimationFrame)
			}
		})
	}
}
