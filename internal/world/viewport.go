package world

// Default logical viewport, in world units (one unit = one logical pixel).
const (
	DefaultWidth        = 1280
	DefaultHeight       = 720
	DefaultGroundHeight = 150
)

// Viewport is the visible slice of the world. The left edge is x=0; new
// objects enter at x=Width. Y grows downward.
type Viewport struct {
	Width        float64
	Height       float64
	GroundHeight float64 // thickness of the ground strip at the bottom
}

// DefaultViewport returns the standard 1280x720 viewport.
func DefaultViewport() Viewport {
	return Viewport{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		GroundHeight: DefaultGroundHeight,
	}
}

// GroundY returns the y coordinate of the ground surface line.
func (v Viewport) GroundY() float64 { return v.Height - v.GroundHeight }

// SpawnX returns the x coordinate where new objects enter.
func (v Viewport) SpawnX() float64 { return v.Width }
