package retained

// ============================================================================
// Computed Bounds (for hit testing)
// ============================================================================

// Bounds represents the screen-space bounding box of a widget.
// Updated by Solve for hit testing and rendering.
type Bounds struct {
	X, Y          float32 // Top-left corner in screen coordinates
	Width, Height float32
}

// Contains checks if a point is within the bounds.
func (b Bounds) Contains(x, y float32) bool {
	return x >= b.X && x < b.X+b.Width &&
		y >= b.Y && y < b.Y+b.Height
}

// LocalPoint converts screen coordinates to local coordinates relative to bounds.
func (b Bounds) LocalPoint(screenX, screenY float32) (localX, localY float32) {
	return screenX - b.X, screenY - b.Y
}

// MaxY returns the bottom edge.
func (b Bounds) MaxY() float32 {
	return b.Y + b.Height
}

// ============================================================================
// Screen
// ============================================================================

// SafeAreaInsets represents the insets (in logical pixels) for areas that
// should not be covered by content (notches, home indicators, rounded corners).
type SafeAreaInsets struct {
	Top, Left, Bottom, Right float32
}

// Screen describes the surface a modal is presented on.
type Screen struct {
	Width, Height float32
	SafeArea      SafeAreaInsets
}

// ============================================================================
// Pointer Input
// ============================================================================

// PointerPhase identifies a raw pointer event delivered by the host.
type PointerPhase uint8

const (
	PointerDown PointerPhase = iota + 1
	PointerMove
	PointerUp
	PointerCancel
)

// PointerEvent is a raw pointer sample in screen coordinates.
type PointerEvent struct {
	Phase PointerPhase
	X, Y  float32
}
