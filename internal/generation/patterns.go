package generation

// PatternCategory groups authored patterns for weighted selection
type PatternCategory string

const (
	CategoryEasy    PatternCategory = "easy"
	CategoryMedium  PatternCategory = "medium"
	CategoryHard    PatternCategory = "hard"
	CategorySpecial PatternCategory = "special"
)

// PatternCategories is the order PatternWeights.Slice follows
var PatternCategories = []PatternCategory{CategoryEasy, CategoryMedium, CategoryHard, CategorySpecial}

// Element kinds as they appear in catalog files
const (
	KindPlatform = "platform"
	KindLadder   = "ladder"
	KindPortal   = "portal_in"
	KindHeart    = "heart"
	KindCoin     = "coin"
)

// Defaults applied when an authored element leaves its size at zero
const (
	DefaultPatternPlatformWidth = 3
	DefaultPatternLadderHeight  = 3
)

// PatternElement is one piece of an authored pattern. X is in tenths of
// the play field width, Y in floors above the pattern base. The set of
// element kinds is closed: every ElementVisitor must handle all of them.
type PatternElement interface {
	Accept(v ElementVisitor)
	Kind() string
	Position() (x, y float64)
	isPatternElement()
}

// ElementVisitor dispatches on the concrete element kind
type ElementVisitor interface {
	VisitPlatform(e PlatformElement)
	VisitLadder(e LadderElement)
	VisitPortal(e PortalElement)
	VisitHeart(e HeartElement)
	VisitCoin(e CoinElement)
}

// PlatformElement places a platform; Width 0 means the default
type PlatformElement struct {
	X, Y  float64
	Width int
}

// LadderElement places a ladder whose bottom sits at Y; Height 0 means the default
type LadderElement struct {
	X, Y   float64
	Height int
}

// PortalElement places a portal entrance
type PortalElement struct {
	X, Y     float64
	PortalID string
}

// HeartElement places a heart pickup
type HeartElement struct {
	X, Y float64
}

// CoinElement places a coin
type CoinElement struct {
	X, Y float64
}

func (e PlatformElement) Accept(v ElementVisitor) { v.VisitPlatform(e) }
func (e LadderElement) Accept(v ElementVisitor) { v.VisitLadder(e) }
func (e PortalElement) Accept(v ElementVisitor) { v.VisitPortal(e) }
func (e HeartElement) Accept(v ElementVisitor) { v.VisitHeart(e) }
func (e CoinElement) Accept(v ElementVisitor) { v.VisitCoin(e) }
func (e PlatformElement) Kind() string { return KindPlatform }
func (e LadderElement) Kind() string { return KindLadder }
func (e PortalElement) Kind() string { return KindPortal }
func (e HeartElement) Kind() string { return KindHeart }
func (e CoinElement) Kind() string { return KindCoin }
func (e PlatformElement) Position() (float64, float64) { return e.X, e.Y }
func (e LadderElement) Position() (float64, float64) { return e.X, e.Y }
func (e PortalElement) Position() (float64, float64) { return e.X, e.Y }
func (e HeartElement) Position() (float64, float64) { return e.X, e.Y }
func (e CoinElement) Position() (float64, float64) { return e.X, e.Y }
func (PlatformElement) isPatternElement() {}
func (LadderElement) isPatternElement() {}
func (PortalElement) isPatternElement() {}
func (HeartElement) isPatternElement() {}
func (CoinElement) isPatternElement() {}

// EffectiveWidth applies the default width
func (e PlatformElement) EffectiveWidth() int {
	if e.Width <= 0 {
		return DefaultPatternPlatformWidth
	}
	return e.Width
}

// EffectiveHeight applies the default height
func (e LadderElement) EffectiveHeight() int {
	if e.Height <= 0 {
		return DefaultPatternLadderHeight
	}
	return e.Height
}

// Pattern is an immutable authored cluster placed as a unit
type Pattern struct {
	ID             string
	Category       PatternCategory
	HeightInFloors float64

	// Entry and exit spans in tenths of the field width. Informational;
	// placement does not consult them.
	MinEntryX, MaxEntryX float64
	MinExitX, MaxExitX   float64

	Elements []PatternElement
}

// ToWorld maps a pattern-relative position onto the field given the
// pattern's base height.
func ToWorld(x, y, baseY float64) Point {
	return Point{X: x / 10 * GameWidth, Y: baseY - y*FloorHeight}
}

// ByCategory returns the patterns of one category, preserving order
func ByCategory(patterns []Pattern, c PatternCategory) []Pattern {
	out := make([]Pattern, 0)
	for _, p := range patterns {
		if p.Category == c {
			out = append(out, p)
		}
	}
	return out
}

// DefaultPatterns returns the built-in catalog
func DefaultPatterns() []Pattern {
	return []Pattern{
		{
			ID: "stairs_right", Category: CategoryEasy, HeightInFloors: 2,
			MinEntryX: 0, MaxEntryX: 4, MinExitX: 6, MaxExitX: 10,
			Elements: []PatternElement{
				PlatformElement{X: 1, Y: 0.3, Width: 4},
				PlatformElement{X: 3, Y: 0.9, Width: 3},
				PlatformElement{X: 5, Y: 1.5, Width: 3},
				PlatformElement{X: 8, Y: 1.9, Width: 4},
			},
		},
		{
			ID: "stairs_left", Category: CategoryEasy, HeightInFloors: 2,
			MinEntryX: 6, MaxEntryX: 10, MinExitX: 0, MaxExitX: 4,
			Elements: []PatternElement{
				PlatformElement{X: 8, Y: 0.3, Width: 4},
				PlatformElement{X: 6, Y: 0.9, Width: 3},
				PlatformElement{X: 4, Y: 1.5, Width: 3},
				PlatformElement{X: 2, Y: 1.9, Width: 4},
			},
		},
		{
			ID: "flat_run", Category: CategoryEasy, HeightInFloors: 2,
			MinEntryX: 0, MaxEntryX: 10, MinExitX: 0, MaxExitX: 10,
			Elements: []PatternElement{
				PlatformElement{X: 2, Y: 0.3, Width: 4},
				PlatformElement{X: 7, Y: 0.3, Width: 4},
				PlatformElement{X: 5, Y: 0.9, Width: 5},
				PlatformElement{X: 3, Y: 1.5, Width: 4},
				PlatformElement{X: 7, Y: 1.5, Width: 4},
			},
		},
		{
			ID: "platform_hops", Category: CategoryMedium, HeightInFloors: 2,
			MinEntryX: 0, MaxEntryX: 10, MinExitX: 0, MaxExitX: 10,
			Elements: []PatternElement{
				PlatformElement{X: 2, Y: 0.3, Width: 3},
				PlatformElement{X: 6, Y: 0.7, Width: 2},
				PlatformElement{X: 3, Y: 1.1, Width: 2},
				PlatformElement{X: 7, Y: 1.5, Width: 3},
				PlatformElement{X: 4, Y: 1.9, Width: 3},
			},
		},
		{
			ID: "zigzag", Category: CategoryMedium, HeightInFloors: 2,
			MinEntryX: 0, MaxEntryX: 5, MinExitX: 5, MaxExitX: 10,
			Elements: []PatternElement{
				PlatformElement{X: 2, Y: 0.3, Width: 3},
				PlatformElement{X: 7, Y: 0.7, Width: 3},
				PlatformElement{X: 2, Y: 1.2, Width: 3},
				PlatformElement{X: 7, Y: 1.6, Width: 3},
			},
		},
		{
			ID: "ladder_climb", Category: CategoryMedium, HeightInFloors: 2,
			MinEntryX: 0, MaxEntryX: 10, MinExitX: 3, MaxExitX: 7,
			Elements: []PatternElement{
				PlatformElement{X: 3, Y: 0.2, Width: 4},
				LadderElement{X: 5, Y: 0.8, Height: 3},
				PlatformElement{X: 5, Y: 1.4, Width: 4},
				PlatformElement{X: 5, Y: 1.9, Width: 5},
			},
		},
		{
			ID: "tight_jumps", Category: CategoryHard, HeightInFloors: 2,
			MinEntryX: 0, MaxEntryX: 10, MinExitX: 0, MaxExitX: 10,
			Elements: []PatternElement{
				PlatformElement{X: 2, Y: 0.3, Width: 2},
				PlatformElement{X: 6, Y: 0.7, Width: 2},
				PlatformElement{X: 3, Y: 1.1, Width: 2},
				PlatformElement{X: 7, Y: 1.5, Width: 2},
				PlatformElement{X: 5, Y: 1.9, Width: 2},
			},
		},
		{
			ID: "mixed_vertical", Category: CategoryHard, HeightInFloors: 2,
			MinEntryX: 0, MaxEntryX: 10, MinExitX: 4, MaxExitX: 6,
			Elements: []PatternElement{
				PlatformElement{X: 2, Y: 0.3, Width: 2},
				PlatformElement{X: 7, Y: 0.3, Width: 2},
				LadderElement{X: 5, Y: 0.9, Height: 3},
				PlatformElement{X: 5, Y: 1.4, Width: 3},
				PlatformElement{X: 3, Y: 1.9, Width: 2},
				PlatformElement{X: 7, Y: 1.9, Width: 2},
			},
		},
		{
			ID: "portal_skip", Category: CategoryHard, HeightInFloors: 2,
			MinEntryX: 0, MaxEntryX: 5, MinExitX: 5, MaxExitX: 10,
			Elements: []PatternElement{
				PlatformElement{X: 2, Y: 0.3, Width: 3},
				PortalElement{X: 2, Y: 0.1, PortalID: "portal_skip_1"},
				PlatformElement{X: 5, Y: 0.8, Width: 2},
				PlatformElement{X: 8, Y: 1.3, Width: 3},
				PlatformElement{X: 5, Y: 1.8, Width: 3},
			},
		},
		{
			ID: "rest_with_heart", Category: CategorySpecial, HeightInFloors: 2,
			MinEntryX: 0, MaxEntryX: 10, MinExitX: 0, MaxExitX: 10,
			Elements: []PatternElement{
				PlatformElement{X: 5, Y: 0.3, Width: 8},
				HeartElement{X: 5, Y: 0.1},
				PlatformElement{X: 3, Y: 0.9, Width: 4},
				PlatformElement{X: 7, Y: 0.9, Width: 4},
				PlatformElement{X: 5, Y: 1.5, Width: 6},
			},
		},
		{
			ID: "safe_ladder", Category: CategorySpecial, HeightInFloors: 2,
			MinEntryX: 0, MaxEntryX: 10, MinExitX: 3, MaxExitX: 7,
			Elements: []PatternElement{
				PlatformElement{X: 5, Y: 0.2, Width: 6},
				LadderElement{X: 5, Y: 0.9, Height: 4},
				PlatformElement{X: 5, Y: 1.5, Width: 6},
				HeartElement{X: 3, Y: 1.3},
			},
		},
	}
}
