package actor

const (
	subpixelBits = 8
	subpixelMask = 1<<subpixelBits - 1
)

// defaultBounds is used when an actor has no collision bounds: a single
// pixel at the origin.
var defaultBounds = BoundingRect{X: 0, Y: 0, Width: 1, Height: 1}

// FixedX returns the 16.8 fixed-point X position.
func (info *Info) FixedX() int {
	return info.X<<subpixelBits + int(info.SubpixelX)
}

// FixedY returns the 16.8 fixed-point Y position.
func (info *Info) FixedY() int {
	return info.Y<<subpixelBits + int(info.SubpixelY)
}

// SetFixedPosition splits 16.8 fixed-point coordinates into pixels and
// subpixels. Arithmetic shift keeps negative positions consistent.
func (info *Info) SetFixedPosition(fullX, fullY int) {
	info.X = fullX >> subpixelBits
	info.Y = fullY >> subpixelBits
	info.SubpixelX = uint8(fullX & subpixelMask)
	info.SubpixelY = uint8(fullY & subpixelMask)
}

// Bounds returns the collision rectangle at the current integer position.
func (info *Info) Bounds() BoundingRect {
	b := defaultBounds
	if info.CollisionBounds != nil {
		b = *info.CollisionBounds
	}
	b.X += info.X
	b.Y += info.Y
	return b
}

// ApplyMove integrates velocity into position for one tick. X is swept and
// resolved before Y, and Y is swept against the X-resolved rectangle, so a
// corner hit stops horizontally first. Contact on an axis snaps the position
// to the reported boundary with no subpixel remainder and zeroes the
// velocity on that axis.
func (info *Info) ApplyMove(c Collider) {
	fullX := info.FixedX() + info.VelocityX
	fullY := info.FixedY() + info.VelocityY

	newX := fullX >> subpixelBits
	newY := fullY >> subpixelBits

	offset := defaultBounds
	if info.CollisionBounds != nil {
		offset = *info.CollisionBounds
	}

	bounds := info.Bounds()

	if revisedX, hit := c.SweepCollisionX(bounds, newX+offset.X); hit {
		newX = revisedX - offset.X
		fullX = newX << subpixelBits
		info.VelocityX = 0
	}

	bounds.X = newX + offset.X

	if revisedY, hit := c.SweepCollisionY(bounds, newY+offset.Y); hit {
		newY = revisedY - offset.Y
		fullY = newY << subpixelBits
		info.VelocityY = 0
	}

	info.SetFixedPosition(fullX, fullY)
}
