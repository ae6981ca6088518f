package generation

import (
	"io"
	"log"
	"sort"
)

// GeneratorConfig configures a LevelGenerator. Zero fields take defaults.
type GeneratorConfig struct {
	Difficulty *DifficultySettings
	Physics    *Physics
	Patterns   []Pattern
	Seed       uint64
	Logger     *log.Logger
}

// Stats counts what a generator has done since construction
type Stats struct {
	Sections         int `json:"sections"`
	Platforms        int `json:"platforms"`
	Decor            int `json:"decor"`
	Ladders          int `json:"ladders"`
	Coins            int `json:"coins"`
	Portals          int `json:"portals"`
	Hearts           int `json:"hearts"`
	PatternsPlaced   int `json:"patterns_placed"`
	PatternsRejected int `json:"patterns_rejected"`

	// Path placements that fell through the sampled attempts, by tier
	ForcedFixed       int `json:"forced_fixed"`
	ForcedSweep       int `json:"forced_sweep"`
	ForcedAdopted     int `json:"forced_adopted"`
	ForcedRelaxed     int `json:"forced_relaxed"`
	ForcedStretched   int `json:"forced_stretched"`
	ForcedCleared     int `json:"forced_cleared"`
	ForcedUnvalidated int `json:"forced_unvalidated"`

	// Side platforms destroyed to open room for the path
	Cleared int `json:"cleared"`
}

type spawned struct {
	handle Handle
	kind   ObjectKind
	x, y   float64
}

// LevelGenerator streams an endless climb upward. Every committed path
// platform is reachable from the previous one, and no later placement may
// cut a path jump that was open before it.
type LevelGenerator struct {
	world    World
	phys     *Physics
	policy   GenerationPolicy
	settings *DifficultySettings
	patterns []Pattern
	rng      *RNG
	logger   *log.Logger

	recent *History[Platform] // every placed platform, newest last
	path   *History[Platform] // the guaranteed chain, newest last

	last            Platform // survives the path window being emptied by cleanup
	direction       float64
	generatedHeight float64

	spawned []spawned
	stats   Stats
}

// NewLevelGenerator creates a generator that places objects into world
func NewLevelGenerator(world World, cfg GeneratorConfig) *LevelGenerator {
	settings := cfg.Difficulty
	if settings == nil {
		settings = GetDifficulty(Normal)
	}
	phys := cfg.Physics
	if phys == nil {
		phys = DefaultPhysics()
	}
	patterns := cfg.Patterns
	if patterns == nil {
		patterns = DefaultPatterns()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &LevelGenerator{
		world:     world,
		phys:      phys,
		policy:    NewGenerationPolicy(settings, phys),
		settings:  settings,
		patterns:  patterns,
		rng:       NewRNG(cfg.Seed),
		logger:    logger,
		recent:    NewHistory[Platform](maxPlatformHistory),
		path:      NewHistory[Platform](maxPathHistory),
		last:      NewPlatform(GameWidth/2, GameHeight, 3),
		direction: 1,
	}
}

// GenerateInitialLevel lays the ground strip and the first anchor, then
// fills the first screen plus three floors of headroom.
func (lg *LevelGenerator) GenerateInitialLevel() {
	lg.createStartingArea()

	initial := GameHeight + FloorHeight*3
	for lg.generatedHeight < initial {
		lg.GenerateNextSection()
	}
}

func (lg *LevelGenerator) createStartingArea() {
	groundY := GameHeight - TileSize/2
	for x := TileSize / 2; x < GameWidth; x += TileSize {
		lg.addPlatform(NewPlatform(x, groundY, 1))
	}

	first := lg.addPlatform(NewPlatform(GameWidth/2, GameHeight-TileSize*3, 5))
	lg.generatedHeight = GameHeight - first.Y
	lg.last = first
	lg.path.Push(first)
}

// GenerateNextSection extends the path by one platform and decorates it
func (lg *LevelGenerator) GenerateNextSection() {
	from := lg.lastPath()

	// 1. Sample candidates; fall back to forced placement
	placed, ok := lg.findNextPathPlatform(from)
	if ok {
		lg.addPlatform(placed)
	} else {
		placed = lg.forcePlacePathPlatform(from)
	}

	// 2. Advance the path cursor
	lg.path.Push(placed)
	lg.last = placed
	lg.generatedHeight = max(lg.generatedHeight, GameHeight-placed.Y)
	lg.stats.Sections++

	// 3. Pickups and side geometry anchored on the new platform
	if lg.rng.Chance(lg.policy.HeartChance) {
		lg.createHeartPickup(placed.X, placed.Y-TileSize*1.5)
	}
	lg.addDecorPlatforms(placed)
	lg.trySpawnLadder(placed)
	lg.trySpawnCoin(placed)
	lg.trySpawnPortal(placed)

	// 4. Occasionally drop in an authored pattern
	if lg.rng.Chance(patternChance) {
		lg.tryPlacePattern()
	}
}

// Update generates until two screens above scrollY are filled, then drops
// everything more than two screens below it.
func (lg *LevelGenerator) Update(scrollY float64) {
	target := -scrollY + GameHeight*2
	for lg.generatedHeight < target {
		lg.GenerateNextSection()
	}
	lg.Cleanup(scrollY)
}

// Cleanup destroys objects whose y lies past scrollY + two screens and
// forgets them from the placement windows. Returns the number destroyed.
func (lg *LevelGenerator) Cleanup(scrollY float64) int {
	threshold := scrollY + GameHeight*2
	below := func(p Platform) bool { return p.Y <= threshold }
	lg.recent.Retain(below)
	lg.path.Retain(below)

	kept := lg.spawned[:0]
	destroyed := 0
	for _, s := range lg.spawned {
		if s.y > threshold {
			lg.world.Destroy(s.handle)
			destroyed++
			continue
		}
		kept = append(kept, s)
	}
	for i := len(kept); i < len(lg.spawned); i++ {
		lg.spawned[i] = spawned{}
	}
	lg.spawned = kept
	return destroyed
}

// ---- accessors ----

// Stats returns a copy of the running counters
func (lg *LevelGenerator) Stats() Stats { return lg.stats }

// Policy returns the tuning derived from the difficulty
func (lg *LevelGenerator) Policy() GenerationPolicy { return lg.policy }

// Difficulty returns the settings this run was created with
func (lg *LevelGenerator) Difficulty() *DifficultySettings { return lg.settings }

// Physics returns the validator the generator consults
func (lg *LevelGenerator) Physics() *Physics { return lg.phys }

// GeneratedHeight is how far above the bottom of the first screen the
// path currently reaches
func (lg *LevelGenerator) GeneratedHeight() float64 { return lg.generatedHeight }

// PathPlatforms returns the path window, oldest first
func (lg *LevelGenerator) PathPlatforms() []Platform { return lg.path.Items() }

// Obstacles returns the recent-platform window, oldest first
func (lg *LevelGenerator) Obstacles() []Platform { return lg.recent.Items() }

// LastPlatform returns the newest path platform
func (lg *LevelGenerator) LastPlatform() Platform { return lg.lastPath() }

// ---- path placement ----

func (lg *LevelGenerator) lastPath() Platform {
	if p, ok := lg.path.Last(); ok {
		return p
	}
	return lg.last
}

func (lg *LevelGenerator) findNextPathPlatform(from Platform) (Platform, bool) {
	for i := 0; i < maxPathAttempts; i++ {
		step := float64(lg.rng.IntRange(lg.policy.MinStep, maxInt(lg.policy.MinStep, lg.policy.MaxStep)))
		width := lg.platformWidth()
		offset := lg.pickHorizontalOffset()

		x := ClampX(from.X+offset, width)
		candidate := NewPlatform(x, from.Y-step, width)
		if lg.isValidPathCandidate(candidate, from, false) {
			return candidate, true
		}
	}
	return Platform{}, false
}

// forcePlacePathPlatform widens the search in tiers, keeping reachability
// and path safety in every tier but the last.
func (lg *LevelGenerator) forcePlacePathPlatform(from Platform) Platform {
	width := maxInt(3, lg.platformWidth())
	step := lg.policy.SafeStep

	// Tier 1: a few fixed offsets at the safe step
	offsets := []float64{0, TileSize * 2, -TileSize * 2, TileSize * 4, -TileSize * 4}
	for _, off := range offsets {
		c := NewPlatform(ClampX(from.X+off, width), from.Y-step, width)
		if lg.isValidPathCandidate(c, from, false) {
			lg.stats.ForcedFixed++
			return lg.addPlatform(c)
		}
	}

	// Tier 2: every column and every allowed step, fully validated
	if c, ok := lg.sweep(from, width, false); ok {
		lg.stats.ForcedSweep++
		return lg.addPlatform(c)
	}

	// Tier 3: continue the path through a platform that already exists
	if c, ok := lg.adoptExisting(from); ok {
		lg.stats.ForcedAdopted++
		lg.logger.Printf("path adopted existing platform at (%.0f, %.0f)", c.X, c.Y)
		return c
	}

	// Tier 4: drop the clutter rules, keep reachability and path safety
	if c, ok := lg.sweep(from, width, true); ok {
		lg.stats.ForcedRelaxed++
		lg.logger.Printf("path placed with relaxed checks at (%.0f, %.0f)", c.X, c.Y)
		return lg.addPlatform(c)
	}

	// Tier 5: half-tile columns, every step up to the apex, down to one tile wide
	if c, ok := lg.stretchSweep(from, width); ok {
		lg.stats.ForcedStretched++
		lg.logger.Printf("path placed with stretched search at (%.0f, %.0f)", c.X, c.Y)
		return lg.addPlatform(c)
	}

	// Tier 6: destroy the side platforms crowding the next jump, then retry.
	// Removing obstacles never closes a jump, so the path stays intact.
	if n := lg.clearAbove(from); n > 0 {
		if c, ok := lg.stretchSweep(from, width); ok {
			lg.stats.ForcedCleared++
			lg.logger.Printf("path cleared %d platforms to place at (%.0f, %.0f)", n, c.X, c.Y)
			return lg.addPlatform(c)
		}
	}

	c := NewPlatform(ClampX(from.X, width), from.Y-step, width)
	lg.stats.ForcedUnvalidated++
	lg.logger.Printf("WARNING: unvalidated path platform at (%.0f, %.0f)", c.X, c.Y)
	return lg.addPlatform(c)
}

// sweep tries every tile column, nearest to from first, at each step
// between the minimum gap and the safe step.
func (lg *LevelGenerator) sweep(from Platform, width int, relaxed bool) (Platform, bool) {
	steps := []float64{lg.policy.SafeStep}
	for s := lg.policy.MinVerticalGap; s < lg.policy.SafeStep; s += TileSize / 2 {
		steps = append(steps, s)
	}

	widths := []int{width}
	if width > 2 {
		widths = append(widths, 2)
	}
	return lg.search(from, widths, steps, lg.columns(from, TileSize), relaxed)
}

// stretchSweep is the widest relaxed search: steps from the minimum gap to
// just under the jump apex and every width from width down to one tile.
func (lg *LevelGenerator) stretchSweep(from Platform, width int) (Platform, bool) {
	steps := []float64{lg.policy.SafeStep}
	for s := lg.policy.MinVerticalGap; s <= lg.phys.MaxJumpHeight()-TileSize/4; s += 4 {
		steps = append(steps, s)
	}

	widths := make([]int, 0, width)
	for w := width; w >= 1; w-- {
		widths = append(widths, w)
	}
	return lg.search(from, widths, steps, lg.columns(from, TileSize/2), true)
}

func (lg *LevelGenerator) search(from Platform, widths []int, steps, columns []float64, relaxed bool) (Platform, bool) {
	for _, w := range widths {
		for _, s := range steps {
			for _, x := range columns {
				c := NewPlatform(ClampX(x, w), from.Y-s, w)
				if lg.isValidPathCandidate(c, from, relaxed) {
					return c, true
				}
			}
		}
	}
	return Platform{}, false
}

// columns lists x positions across the field, nearest to from first
func (lg *LevelGenerator) columns(from Platform, spacing float64) []float64 {
	out := make([]float64, 0, int(GameWidth/spacing))
	for x := spacing / 2; x < GameWidth; x += spacing {
		out = append(out, x)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return abs(out[i]-from.X) < abs(out[j]-from.X)
	})
	return out
}

// clearAbove destroys every non-path platform in the band a jump from from
// can pass through. Returns the number destroyed.
func (lg *LevelGenerator) clearAbove(from Platform) int {
	top := from.Y - lg.phys.MaxJumpHeight() - lg.phys.Config().PlayerHeight - TileSize*2
	doomed := func(x, y float64) bool {
		if y >= from.Y || y <= top {
			return false
		}
		spot := Platform{X: x, Y: y}
		for i := 0; i < lg.path.Len(); i++ {
			if lg.path.At(i).SameSpot(spot) {
				return false
			}
		}
		return true
	}

	lg.recent.Retain(func(p Platform) bool { return !doomed(p.X, p.Y) })

	kept := lg.spawned[:0]
	destroyed := 0
	for _, s := range lg.spawned {
		if s.kind == ObjectPlatform && doomed(s.x, s.y) {
			lg.world.Destroy(s.handle)
			destroyed++
			continue
		}
		kept = append(kept, s)
	}
	for i := len(kept); i < len(lg.spawned); i++ {
		lg.spawned[i] = spawned{}
	}
	lg.spawned = kept
	lg.stats.Cleared += destroyed
	return destroyed
}

// adoptExisting picks the highest already-placed platform reachable from from
func (lg *LevelGenerator) adoptExisting(from Platform) (Platform, bool) {
	obstacles := lg.recent.Items()
	best, found := Platform{}, false
	for _, p := range obstacles {
		if p.Y >= from.Y || p.SameSpot(from) {
			continue
		}
		if found && p.Y >= best.Y {
			continue
		}
		if lg.phys.CanReachPlatform(from, p, obstacles).Reachable {
			best, found = p, true
		}
	}
	return best, found
}

func (lg *LevelGenerator) pickHorizontalOffset() float64 {
	if lg.rng.Float64() > lg.policy.KeepDirChance {
		lg.direction = -lg.direction
	}

	tiles := 0
	vertical := lg.rng.Chance(lg.policy.VerticalChance)
	if !vertical {
		tiles = lg.rng.IntRange(lg.policy.MinOffsetTiles, lg.policy.MaxOffsetTiles)
	}
	return float64(tiles) * TileSize * lg.direction
}

func (lg *LevelGenerator) platformWidth() int {
	return lg.rng.IntRange(lg.policy.MinWidth, lg.policy.MaxWidth)
}

// ---- validation ----

// isValidPathCandidate runs every placement check for the next path
// platform. relaxed skips the ceiling, vertical-trap and narrow-gap rules.
func (lg *LevelGenerator) isValidPathCandidate(c, from Platform, relaxed bool) bool {
	dx := c.X - from.X
	dy := from.Y - c.Y
	if dy <= 0 {
		return false
	}
	if !lg.phys.IsFeasible(dx, dy) {
		return false
	}
	if !relaxed && lg.createsCeilingTrap(from, c) {
		return false
	}
	if lg.overlapsExisting(c, relaxed) {
		return false
	}
	if lg.blocksPath(c, nil) {
		return false
	}

	all := append(lg.recent.Items(), c)
	return lg.phys.CanReachPlatform(from, c, all).Reachable
}

// createsCeilingTrap reports whether upper sits so low over lower that the
// player could not stand up between them
func (lg *LevelGenerator) createsCeilingTrap(lower, upper Platform) bool {
	gap := lower.Y - upper.Y
	if gap >= lg.policy.MinVerticalGap {
		return false
	}

	pad := lg.policy.HorizontalPad
	return !(upper.Right < lower.Left+pad || upper.Left > lower.Right-pad)
}

func (lg *LevelGenerator) createsVerticalTrap(a, b Platform) bool {
	if a == b {
		return false
	}
	if a.Y > b.Y {
		return lg.createsCeilingTrap(a, b)
	}
	return lg.createsCeilingTrap(b, a)
}

// createsNarrowGap flags side-by-side platforms too close for the player
// to drop between
func (lg *LevelGenerator) createsNarrowGap(a, b Platform) bool {
	if abs(a.Y-b.Y) >= lg.policy.MinVerticalGap {
		return false
	}
	gap := max(a.Left-b.Right, b.Left-a.Right)
	return gap > 0 && gap < lg.policy.HorizontalPad
}

func (lg *LevelGenerator) overlapsExisting(c Platform, relaxed bool) bool {
	for i := 0; i < lg.recent.Len(); i++ {
		p := lg.recent.At(i)
		if p.Overlaps(c) {
			return true
		}
		if relaxed {
			continue
		}
		if lg.createsVerticalTrap(p, c) || lg.createsNarrowGap(p, c) {
			return true
		}
	}
	return false
}

// blocksPath reports whether adding c (alongside extra, e.g. other pieces
// of a pattern being placed) would close a path jump that is open now.
// Jumps that are already closed are not held against c.
func (lg *LevelGenerator) blocksPath(c Platform, extra []Platform) bool {
	if lg.path.Len() < 2 {
		return false
	}

	base := append(lg.recent.Items(), extra...)
	with := append(append(make([]Platform, 0, len(base)+1), base...), c)

	for i := 0; i+1 < lg.path.Len(); i++ {
		from, to := lg.path.At(i), lg.path.At(i+1)
		if !lg.mayTouchJump(c, from, to) {
			continue
		}
		if lg.phys.CanReachPlatform(from, to, with).Reachable {
			continue
		}
		if lg.phys.CanReachPlatform(from, to, base).Reachable {
			return true
		}
	}
	return false
}

// mayTouchJump is a cheap bounding-box test: false means no arc between
// from and to can pass through c.
func (lg *LevelGenerator) mayTouchJump(c, from, to Platform) bool {
	cfg := lg.phys.Config()
	top := min(from.Y, to.Y) - TileSize*2 - cfg.PlayerHeight - lg.phys.MaxJumpHeight()
	if c.Y >= from.Y+TileSize || c.Y <= top {
		return false
	}
	left := min(from.Left, to.Left) - cfg.PlayerWidth
	right := max(from.Right, to.Right) + cfg.PlayerWidth
	return c.Right > left && c.Left < right
}

func (lg *LevelGenerator) isRegionTooCluttered(centerY float64) bool {
	top := centerY - regionCheckHeight
	bottom := centerY + regionCheckHeight/2

	n := 0
	for i := 0; i < lg.recent.Len(); i++ {
		if y := lg.recent.At(i).Y; y >= top && y <= bottom {
			n++
		}
	}
	return n >= maxPlatformsInRegion
}

func (lg *LevelGenerator) isTooCloseToExisting(c Platform) bool {
	for i := 0; i < lg.recent.Len(); i++ {
		p := lg.recent.At(i)
		if abs(c.Y-p.Y) >= minDecorVerticalGap {
			continue
		}
		horizontal := min(abs(c.Left-p.Right), abs(c.Right-p.Left))
		if horizontal < minDecorHorizGap {
			return true
		}
	}
	return false
}

func (lg *LevelGenerator) isLadderClear(x, topY, bottomY float64) bool {
	for i := 0; i < lg.recent.Len(); i++ {
		p := lg.recent.At(i)
		band := p.Band()
		vertical := bottomY > band.MinY && topY < band.MaxY
		horizontal := x > p.Left-4 && x < p.Right+4
		if vertical && horizontal {
			return false
		}
	}
	return true
}

func (lg *LevelGenerator) isCoinClear(x, y float64) bool {
	for i := 0; i < lg.recent.Len(); i++ {
		p := lg.recent.At(i)
		band := p.Band()
		if y > band.MinY && y < band.MaxY && x > p.Left && x < p.Right {
			return false
		}
	}
	return true
}

func (lg *LevelGenerator) isPortalClear(x, y float64) bool {
	if !lg.isCoinClear(x, y) {
		return false
	}
	for _, s := range lg.spawned {
		if s.kind != ObjectPortal {
			continue
		}
		dx, dy := s.x-x, s.y-y
		if dx*dx+dy*dy < minPortalDistance*minPortalDistance {
			return false
		}
	}
	return true
}

func (lg *LevelGenerator) findClearLadderX(x, topY, bottomY float64) (float64, bool) {
	offsets := []float64{0, TileSize, -TileSize, TileSize * 2, -TileSize * 2, TileSize * 3, -TileSize * 3}
	for _, off := range offsets {
		cx := ClampX(x+off, 1)
		if lg.isLadderClear(cx, topY, bottomY) {
			return cx, true
		}
	}
	return 0, false
}

// ---- decoration and pickups ----

func (lg *LevelGenerator) addDecorPlatforms(anchor Platform) {
	if lg.isRegionTooCluttered(anchor.Y) {
		return
	}

	extras := lg.rng.IntRange(0, lg.policy.MaxDecorExtras)
	for i := 0; i < extras; i++ {
		if lg.isRegionTooCluttered(anchor.Y) {
			return
		}
		lg.tryPlaceDecorPlatform(anchor)
	}
}

func (lg *LevelGenerator) tryPlaceDecorPlatform(anchor Platform) {
	for i := 0; i < maxDecorAttempts; i++ {
		width := lg.rng.IntRange(2, maxInt(2, lg.platformWidth()-1))
		y := anchor.Y - float64(lg.rng.IntRange(3, 5))*TileSize
		shift := float64(lg.rng.IntRange(4, 8)) * TileSize * lg.rng.Sign()
		x := ClampX(anchor.X+shift, width)

		c := NewPlatform(x, y, width)
		if lg.overlapsExisting(c, false) || lg.blocksPath(c, nil) {
			continue
		}
		if lg.isTooCloseToExisting(c) {
			continue
		}

		lg.addPlatform(c)
		lg.stats.Decor++
		return
	}
}

func (lg *LevelGenerator) trySpawnLadder(anchor Platform) {
	if lg.rng.Float64() > lg.policy.LadderChance {
		return
	}

	height := lg.rng.IntRange(2, 4)
	bottomY := anchor.Y - TileSize/2
	topY := bottomY - float64(height)*TileSize

	baseLeft := anchor.Left - TileSize/2
	baseRight := anchor.Right + TileSize/2
	for _, off := range []float64{0, TileSize, TileSize * 2} {
		for _, cand := range []float64{baseRight + off, baseLeft - off} {
			x := ClampX(cand, 1)
			if lg.isLadderClear(x, topY, bottomY) {
				lg.createLadder(x, bottomY, height)
				return
			}
		}
	}
}

func (lg *LevelGenerator) trySpawnCoin(anchor Platform) {
	if lg.rng.Float64() > coinChance {
		return
	}

	y := anchor.Y - TileSize*1.2
	for _, off := range []float64{0, TileSize, -TileSize, TileSize * 2, -TileSize * 2} {
		x := ClampX(anchor.X+off, 1)
		if lg.isCoinClear(x, y) {
			lg.createCoin(x, y)
			return
		}
	}
}

func (lg *LevelGenerator) trySpawnPortal(anchor Platform) {
	if lg.rng.Float64() > portalChance {
		return
	}

	y := anchor.Y - TileSize*0.6
	for _, off := range []float64{0, TileSize * 2, -TileSize * 2, TileSize * 3, -TileSize * 3} {
		x := ClampX(anchor.X+off, 1)
		if lg.isPortalClear(x, y) {
			lg.createPortal(x, y)
			return
		}
	}
}

// ---- world writes ----

func (lg *LevelGenerator) track(h Handle, kind ObjectKind, x, y float64) {
	lg.spawned = append(lg.spawned, spawned{handle: h, kind: kind, x: x, y: y})
}

func (lg *LevelGenerator) addPlatform(p Platform) Platform {
	h := lg.world.CreatePlatform(p.X, p.Y, p.Width)
	lg.track(h, ObjectPlatform, p.X, p.Y)
	lg.recent.Push(p)
	lg.stats.Platforms++
	return p
}

// createLadder places a ladder with its bottom at bottomY, sliding it
// sideways if a platform is in the way
func (lg *LevelGenerator) createLadder(x, bottomY float64, height int) bool {
	topY := bottomY - float64(height)*TileSize
	cx, ok := lg.findClearLadderX(x, topY, bottomY)
	if !ok {
		return false
	}
	h := lg.world.CreateLadder(cx, bottomY, height)
	lg.track(h, ObjectLadder, cx, bottomY-float64(height)*TileSize/2)
	lg.stats.Ladders++
	return true
}

func (lg *LevelGenerator) createPortal(x, y float64) {
	h := lg.world.CreatePortal(x, y, x, y-portalLift)
	lg.track(h, ObjectPortal, x, y)
	lg.stats.Portals++
}

func (lg *LevelGenerator) createHeartPickup(x, y float64) {
	h := lg.world.CreateHeartPickup(x, y)
	lg.track(h, ObjectHeart, x, y)
	lg.stats.Hearts++
}

func (lg *LevelGenerator) createCoin(x, y float64) {
	h := lg.world.CreateCoin(x, y)
	lg.track(h, ObjectCoin, x, y)
	lg.stats.Coins++
}
