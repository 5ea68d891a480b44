package video

import "fmt"

// BlendFunc combines an incoming color into an existing pixel in place.
type BlendFunc func(pixel *Color16, color Color16)

// BlendMode selects how a layer's pixels combine with what is already in
// the frame buffer.
type BlendMode int

// MaxAlpha bounds layer alpha weights, which lie in [0, MaxAlpha).
const MaxAlpha = 16

const (
	BlendNormal BlendMode = iota
	BlendAdd
	BlendSubtract
	BlendMultiply
)

func (m BlendMode) String() string {
	switch m {
	case BlendNormal:
		return "normal"
	case BlendAdd:
		return "add"
	case BlendSubtract:
		return "subtract"
	case BlendMultiply:
		return "multiply"
	default:
		return fmt.Sprintf("BlendMode(%d)", int(m))
	}
}

// Base returns the raw (unweighted) blend function for the mode.
// Unknown modes fall back to normal replacement.
func (m BlendMode) Base() BlendFunc {
	switch m {
	case BlendAdd:
		return AddBlend
	case BlendSubtract:
		return SubtractBlend
	case BlendMultiply:
		return MultiplyBlend
	default:
		return NormalBlend
	}
}

// Func resolves the blend function used for a whole layer. An alpha of 0
// means "no dilution" and returns the raw function, which skips the
// self-blend step of AlphaBlend.
func (m BlendMode) Func(alpha uint8) BlendFunc {
	if alpha == 0 {
		return m.Base()
	}
	return AlphaBlend(m.Base(), alpha)
}

func NormalBlend(pixel *Color16, color Color16) {
	*pixel = color
}

// AddBlend adds each channel, saturating at 31.
func AddBlend(pixel *Color16, color Color16) {
	er, eg, eb := pixel.Channels()
	ar, ag, ab := color.Channels()

	*pixel = RGB15(saturate(er+ar), saturate(eg+ag), saturate(eb+ab))
}

// SubtractBlend subtracts each incoming channel from the existing one,
// flooring at 0.
func SubtractBlend(pixel *Color16, color Color16) {
	er, eg, eb := pixel.Channels()
	sr, sg, sb := color.Channels()

	*pixel = RGB15(floorSub(er, sr), floorSub(eg, sg), floorSub(eb, sb))
}

// MultiplyBlend multiplies each channel pair and divides by 16, so a
// channel value of 16 acts as unity. The result is clamped after division.
func MultiplyBlend(pixel *Color16, color Color16) {
	er, eg, eb := pixel.Channels()
	mr, mg, mb := color.Channels()

	*pixel = RGB15(saturate((er*mr)/16), saturate((eg*mg)/16), saturate((eb*mb)/16))
}

// AlphaBlend wraps a base blend so the result is mixed with the existing
// pixel using weights (16-alpha) and alpha. The base blend is applied to the
// incoming color with itself before mixing: for normal blending that is a
// no-op, for the other modes it changes the mixed color and is kept as-is.
// It panics if alpha is not below MaxAlpha.
func AlphaBlend(base BlendFunc, alpha uint8) BlendFunc {
	if alpha >= MaxAlpha {
		panic(fmt.Sprintf("invalid blend alpha %d", alpha))
	}
	srcWeight := uint16(16 - alpha)
	dstWeight := uint16(alpha)

	return func(pixel *Color16, color Color16) {
		mixed := color
		base(&mixed, color)

		mr, mg, mb := mixed.Channels()
		er, eg, eb := pixel.Channels()

		*pixel = RGB15(
			(mr*srcWeight+er*dstWeight)/16,
			(mg*srcWeight+eg*dstWeight)/16,
			(mb*srcWeight+eb*dstWeight)/16,
		)
	}
}

func saturate(v uint16) uint16 {
	if v > channelMax {
		return channelMax
	}
	return v
}

func floorSub(a, b uint16) uint16 {
	if b >= a {
		return 0
	}
	return a - b
}
