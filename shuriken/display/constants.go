package display

// RGBA pixel format constants
const (
	// RGBABytesPerPixel is the number of bytes per pixel in RGBA format
	RGBABytesPerPixel = 4
	// RGB555BytesPerPixel is the number of bytes per pixel in the frame buffer
	RGB555BytesPerPixel = 2
)

// Backend window constants
const (
	// DefaultRenderHeight is the fixed vertical resolution used when none is given
	DefaultRenderHeight = 240
	// DefaultWindowWidth is the default window width
	DefaultWindowWidth = 1280
	// DefaultWindowHeight is the default window height
	DefaultWindowHeight = 720
	// TargetFPS is the simulation rate
	TargetFPS = 60
)

// Test pattern constants
const (
	// TestPatternCount is the number of available test patterns
	TestPatternCount = 4
	// TestPatternTileSize is the size of tiles for checkerboard and diagonal patterns
	TestPatternTileSize = 8
	// TestPatternStripeWidth is the width of stripes in the stripe pattern
	TestPatternStripeWidth = 4
	// TestPatternAnimationFrames is the number of frames between test pattern animations
	TestPatternAnimationFrames = 30
	// TestPatternStripeSpeed is the animation speed for stripe patterns
	TestPatternStripeSpeed = 2
	// TestPatternDiagonalSpeed is the animation speed for diagonal patterns
	TestPatternDiagonalSpeed = 4
)

// TestPatternNames names the patterns in cycle order
var TestPatternNames = [TestPatternCount]string{"Checkerboard", "Gradient", "Stripes", "Diagonal"}
