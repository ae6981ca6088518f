package generation

// Layout constants in world units (pixels). Y grows downward, so climbing
// means decreasing y.
const (
	TileSize    = 32.0
	GameWidth   = 800.0
	GameHeight  = 600.0
	FloorHeight = 120.0
)

// Point represents a 2D coordinate in world units
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Bounds represents an axis-aligned rectangle
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Overlaps checks if two bounds intersect with positive area.
// Touching edges do not count.
func (b Bounds) Overlaps(other Bounds) bool {
	return b.MinX < other.MaxX && b.MaxX > other.MinX &&
		b.MinY < other.MaxY && b.MaxY > other.MinY
}

// Platform is a horizontal slab one tile thick centered on (X, Y). The
// player stands on Surface(); Left and Right are derived from X and Width.
type Platform struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Width int     `json:"width"` // in tiles
	Left  float64 `json:"left"`
	Right float64 `json:"right"`
}

// NewPlatform builds a platform centered on x
func NewPlatform(x, y float64, width int) Platform {
	half := float64(width) * TileSize / 2
	return Platform{
		X:     x,
		Y:     y,
		Width: width,
		Left:  x - half,
		Right: x + half,
	}
}

// Band returns the one-tile-tall slab occupied by the platform
func (p Platform) Band() Bounds {
	return Bounds{p.Left, p.Y - TileSize/2, p.Right, p.Y + TileSize/2}
}

// Surface returns the standing height used as an arc endpoint
func (p Platform) Surface() float64 {
	return p.Y - TileSize/2
}

// SameSpot reports whether two platforms share a center. Obstacles are
// matched by position, not identity.
func (p Platform) SameSpot(other Platform) bool {
	return p.X == other.X && p.Y == other.Y
}

// Overlaps reports whether the two slabs intersect
func (p Platform) Overlaps(other Platform) bool {
	return p.Band().Overlaps(other.Band())
}

// ClampX keeps a platform of the given width inside the play field
// with an edge buffer on both sides.
func ClampX(x float64, width int) float64 {
	half := float64(width) * TileSize / 2
	return clamp(x, half+TileSize, GameWidth-half-TileSize)
}
