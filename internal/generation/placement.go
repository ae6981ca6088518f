package generation

// patternPlanner translates a pattern into world space and validates its
// platforms against the level so far and against each other. Non-platform
// elements are collected for placement once every platform has passed.
type patternPlanner struct {
	lg     *LevelGenerator
	baseY  float64
	failed bool

	platforms []Platform
	extras    []PatternElement
}

func (pp *patternPlanner) VisitPlatform(e PlatformElement) {
	if pp.failed {
		return
	}
	at := ToWorld(e.X, e.Y, pp.baseY)
	c := NewPlatform(at.X, at.Y, e.EffectiveWidth())

	if pp.lg.overlapsExisting(c, false) || pp.lg.blocksPath(c, pp.platforms) {
		pp.failed = true
		return
	}
	for _, p := range pp.platforms {
		if p.Overlaps(c) {
			pp.failed = true
			return
		}
	}
	pp.platforms = append(pp.platforms, c)
}

func (pp *patternPlanner) VisitLadder(e LadderElement) {
	at := ToWorld(e.X, e.Y, pp.baseY)
	pp.extras = append(pp.extras, LadderElement{X: at.X, Y: at.Y, Height: e.EffectiveHeight()})
}

func (pp *patternPlanner) VisitPortal(e PortalElement) {
	at := ToWorld(e.X, e.Y, pp.baseY)
	pp.extras = append(pp.extras, PortalElement{X: at.X, Y: at.Y, PortalID: e.PortalID})
}

func (pp *patternPlanner) VisitHeart(e HeartElement) {
	at := ToWorld(e.X, e.Y, pp.baseY)
	pp.extras = append(pp.extras, HeartElement{X: at.X, Y: at.Y})
}

func (pp *patternPlanner) VisitCoin(e CoinElement) {
	at := ToWorld(e.X, e.Y, pp.baseY)
	pp.extras = append(pp.extras, CoinElement{X: at.X, Y: at.Y})
}

// patternPlacer writes already-translated extras into the world
type patternPlacer struct {
	lg *LevelGenerator
}

func (p patternPlacer) VisitPlatform(e PlatformElement) {
	p.lg.addPlatform(NewPlatform(e.X, e.Y, e.EffectiveWidth()))
}

func (p patternPlacer) VisitLadder(e LadderElement) {
	p.lg.createLadder(e.X, e.Y, e.EffectiveHeight())
}

func (p patternPlacer) VisitPortal(e PortalElement) {
	p.lg.createPortal(e.X, e.Y)
}

func (p patternPlacer) VisitHeart(e HeartElement) {
	p.lg.createHeartPickup(e.X, e.Y)
}

func (p patternPlacer) VisitCoin(e CoinElement) {
	p.lg.createCoin(e.X, e.Y)
}

func (lg *LevelGenerator) selectPattern() (Pattern, bool) {
	idx := lg.rng.Weighted(lg.policy.CategoryWeights)
	if idx < 0 {
		return Pattern{}, false
	}
	inCategory := ByCategory(lg.patterns, PatternCategories[idx])
	if len(inCategory) == 0 {
		return Pattern{}, false
	}
	return inCategory[lg.rng.Intn(len(inCategory))], true
}

// tryPlacePattern places a whole pattern one tile above the newest path
// platform, or nothing at all
func (lg *LevelGenerator) tryPlacePattern() bool {
	last := lg.lastPath()
	if lg.isRegionTooCluttered(last.Y) {
		return false
	}

	pattern, ok := lg.selectPattern()
	if !ok {
		return false
	}
	return lg.placePattern(pattern, last.Y-TileSize)
}

func (lg *LevelGenerator) placePattern(pattern Pattern, baseY float64) bool {
	planner := &patternPlanner{lg: lg, baseY: baseY}
	for _, e := range pattern.Elements {
		e.Accept(planner)
		if planner.failed {
			lg.stats.PatternsRejected++
			return false
		}
	}

	placer := patternPlacer{lg: lg}
	for _, p := range planner.platforms {
		placer.VisitPlatform(PlatformElement{X: p.X, Y: p.Y, Width: p.Width})
	}
	for _, e := range planner.extras {
		e.Accept(placer)
	}

	lg.stats.PatternsPlaced++
	lg.logger.Printf("placed pattern %s at y=%.0f", pattern.ID, baseY)
	return true
}
