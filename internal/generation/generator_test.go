package generation

import (
	"math"
	"reflect"
	"testing"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func newTestGenerator(level DifficultyLevel, seed uint64) (*LevelGenerator, *Recorder) {
	rec := NewRecorder()
	lg := NewLevelGenerator(rec, GeneratorConfig{
		Difficulty: GetDifficulty(level),
		Seed:       seed,
	})
	return lg, rec
}

func TestStartingArea(t *testing.T) {
	lg, rec := newTestGenerator(Normal, 1)
	lg.createStartingArea()

	platforms := rec.Platforms()
	if len(platforms) != 26 {
		t.Fatalf("expected 25 ground tiles plus the anchor, got %d", len(platforms))
	}
	for i, p := range platforms[:25] {
		if p.Y != 584 || p.Width != 1 || p.X != float64(16+32*i) {
			t.Fatalf("ground tile %d misplaced: %+v", i, p)
		}
	}
	anchor := platforms[25]
	if anchor != NewPlatform(400, 504, 5) {
		t.Fatalf("unexpected anchor %+v", anchor)
	}
	if lg.LastPlatform() != anchor {
		t.Errorf("anchor should start the path")
	}
	if lg.GeneratedHeight() != 96 {
		t.Errorf("GeneratedHeight = %v, want 96", lg.GeneratedHeight())
	}
}

func TestGenerateInitialLevel(t *testing.T) {
	lg, rec := newTestGenerator(Normal, 3)
	lg.GenerateInitialLevel()

	if lg.GeneratedHeight() < GameHeight+FloorHeight*3 {
		t.Fatalf("initial level too short: %v", lg.GeneratedHeight())
	}
	if rec.Count(ObjectPlatform) < 27 {
		t.Fatalf("expected path platforms above the anchor, got %d platforms", rec.Count(ObjectPlatform))
	}
	if got := lg.Stats().Sections; got != len(lg.PathPlatforms())-1 {
		t.Errorf("each section should add one path platform, got %d sections and %d path entries",
			got, len(lg.PathPlatforms()))
	}
}

func TestCeilingTrapRejected(t *testing.T) {
	lg, _ := newTestGenerator(Normal, 1)
	from := NewPlatform(400, 300, 3)
	low := NewPlatform(405, 260, 3)

	if !lg.createsCeilingTrap(from, low) {
		t.Fatalf("platform 40px above an overlapping one should be a ceiling trap")
	}
	if lg.isValidPathCandidate(low, from, false) {
		t.Fatalf("ceiling trap accepted as path candidate")
	}
	if !lg.isValidPathCandidate(low, from, true) {
		t.Errorf("relaxed validation should ignore the ceiling rule")
	}

	aside := NewPlatform(560, 260, 3)
	if lg.createsCeilingTrap(from, aside) {
		t.Errorf("platform offset past the padding should not trap")
	}
}

func TestNarrowGap(t *testing.T) {
	lg, _ := newTestGenerator(Normal, 1)
	a := NewPlatform(200, 300, 2)
	tight := NewPlatform(284, 300, 2) // 20px gap
	wide := NewPlatform(340, 300, 2)  // 76px gap

	if !lg.createsNarrowGap(a, tight) {
		t.Errorf("20px gap should be flagged")
	}
	if lg.createsNarrowGap(a, wide) {
		t.Errorf("76px gap should be fine")
	}
}

func TestPathInvariant(t *testing.T) {
	for _, level := range AllDifficulties() {
		t.Run(string(level), func(t *testing.T) {
			for seed := uint64(1); seed <= 40; seed++ {
				checkPathInvariant(t, level, seed, 50)
			}
		})
	}
}

// checkPathInvariant grows a level section by section and requires every
// consecutive pair of path platforms to stay jumpable after each step.
func checkPathInvariant(t *testing.T, level DifficultyLevel, seed uint64, sections int) {
	t.Helper()
	lg, _ := newTestGenerator(level, seed)
	lg.createStartingArea()

	for section := 0; section < sections; section++ {
		lg.GenerateNextSection()

		path := lg.PathPlatforms()
		obstacles := lg.Obstacles()
		for i := 0; i+1 < len(path); i++ {
			from, to := path[i], path[i+1]
			if to.Y >= from.Y {
				t.Fatalf("seed %d section %d: path went down from %+v to %+v", seed, section, from, to)
			}
			if reach := lg.Physics().CanReachPlatform(from, to, obstacles); !reach.Reachable {
				t.Fatalf("seed %d section %d: jump %+v -> %+v blocked by %+v (stats %+v)",
					seed, section, from, to, reach.Blocker, lg.Stats())
			}
		}
	}

	path := lg.PathPlatforms()
	audit := lg.Physics().ValidateLevelPath(path, path[0].Y, path[len(path)-1].Y)
	if !audit.Valid {
		t.Errorf("seed %d: path window failed validation: %+v", seed, audit)
	}
	if n := lg.Stats().ForcedUnvalidated; n != 0 {
		t.Errorf("seed %d: %d unvalidated placements", seed, n)
	}
}

func TestClearAboveKeepsPath(t *testing.T) {
	lg, rec := newTestGenerator(VeryEasy, 12)
	lg.createStartingArea()
	from := lg.LastPlatform()

	lg.addPlatform(NewPlatform(160, from.Y-96, 4))
	lg.addPlatform(NewPlatform(640, from.Y-128, 4))
	lg.addPlatform(NewPlatform(640, from.Y-400, 4))
	rec.Drain()

	if n := lg.clearAbove(from); n != 2 {
		t.Fatalf("expected the two platforms in jump range to go, cleared %d", n)
	}
	for _, c := range rec.Drain() {
		if c.Op != OpDestroy {
			t.Errorf("clearing should only destroy, got %+v", c)
		}
	}
	if rec.Count(ObjectPlatform) != 27 {
		t.Errorf("ground, anchor and the far platform should survive, got %d", rec.Count(ObjectPlatform))
	}
	if lg.LastPlatform() != from || lg.Stats().Cleared != 2 {
		t.Errorf("path anchor touched or count missing: %+v", lg.Stats())
	}

	lg.GenerateNextSection()
	path := lg.PathPlatforms()
	if !lg.Physics().CanReachPlatform(path[0], path[1], lg.Obstacles()).Reachable {
		t.Errorf("first jump unreachable after clearing")
	}
}

func TestCleanupBoundary(t *testing.T) {
	lg, rec := newTestGenerator(Normal, 1)
	lg.createStartingArea()

	if n := lg.Cleanup(-600); n != 0 {
		t.Fatalf("nothing lies below the threshold yet, destroyed %d", n)
	}
	if n := lg.Cleanup(-616); n != 0 {
		t.Fatalf("objects exactly on the threshold must survive, destroyed %d", n)
	}
	if n := lg.Cleanup(-617); n != 25 {
		t.Fatalf("expected the 25 ground tiles destroyed, got %d", n)
	}

	if rec.Len() != 1 {
		t.Fatalf("only the anchor should remain, got %d objects", rec.Len())
	}
	if got := lg.Obstacles(); len(got) != 1 || got[0].Y != 504 {
		t.Errorf("obstacle window should hold only the anchor, got %+v", got)
	}
	if len(lg.PathPlatforms()) != 1 {
		t.Errorf("anchor should stay on the path")
	}
}

func TestUpdateScrollsWindow(t *testing.T) {
	lg, rec := newTestGenerator(Normal, 11)
	lg.GenerateInitialLevel()
	lg.Update(-1500)

	if lg.GeneratedHeight() < 2700 {
		t.Fatalf("expected generation two screens above the view, got %v", lg.GeneratedHeight())
	}
	for _, o := range rec.Objects() {
		if o.Y > -300 {
			t.Fatalf("object below the cleanup threshold survived: %+v", o)
		}
	}

	destroyed := 0
	for _, c := range rec.Drain() {
		if c.Op == OpDestroy {
			destroyed++
		}
	}
	if destroyed == 0 {
		t.Errorf("scrolling should have destroyed the starting area")
	}
}

func TestUpdateAfterPathWindowEmptied(t *testing.T) {
	lg, _ := newTestGenerator(Easy, 5)
	lg.GenerateInitialLevel()
	last := lg.LastPlatform()

	// Drop everything, then keep climbing from where the path left off.
	lg.Cleanup(last.Y - GameHeight*2 - 1)
	if len(lg.PathPlatforms()) != 0 {
		t.Fatalf("expected the path window to be empty")
	}
	lg.GenerateNextSection()

	next := lg.LastPlatform()
	if next.Y >= last.Y {
		t.Fatalf("path should continue above %v, got %+v", last.Y, next)
	}
}

func TestSeededDeterminism(t *testing.T) {
	a, recA := newTestGenerator(Hard, 2024)
	b, recB := newTestGenerator(Hard, 2024)
	a.GenerateInitialLevel()
	b.GenerateInitialLevel()
	a.Update(-900)
	b.Update(-900)

	if !reflect.DeepEqual(recA.Objects(), recB.Objects()) {
		t.Fatalf("same seed produced different levels")
	}
	if a.Stats() != b.Stats() {
		t.Fatalf("same seed produced different stats: %+v vs %+v", a.Stats(), b.Stats())
	}
}

func TestPlacePatternAtomic(t *testing.T) {
	lg, rec := newTestGenerator(Normal, 1)
	lg.createStartingArea()
	rec.Drain()

	bad := Pattern{
		ID:       "overlapping",
		Category: CategoryEasy,
		Elements: []PatternElement{
			PlatformElement{X: 2, Y: 1.0, Width: 3},
			PlatformElement{X: 2, Y: 1.0, Width: 3},
			LadderElement{X: 3, Y: 0},
		},
	}
	if lg.placePattern(bad, 472) {
		t.Fatalf("pattern with overlapping platforms should be rejected")
	}
	if cmds := rec.Drain(); len(cmds) != 0 {
		t.Fatalf("rejected pattern wrote %d commands", len(cmds))
	}
	if lg.Stats().PatternsRejected != 1 {
		t.Errorf("rejection not counted")
	}

	good := Pattern{
		ID:       "pair",
		Category: CategoryEasy,
		Elements: []PatternElement{
			HeartElement{X: 2, Y: 0.5},
			PlatformElement{X: 2, Y: 1.0, Width: 3},
			PlatformElement{X: 7, Y: 1.6, Width: 3},
		},
	}
	if !lg.placePattern(good, 472) {
		t.Fatalf("expected pattern to be placed")
	}

	cmds := rec.Drain()
	kinds := make([]ObjectKind, len(cmds))
	for i, c := range cmds {
		kinds[i] = c.Object.Kind
	}
	want := []ObjectKind{ObjectPlatform, ObjectPlatform, ObjectHeart}
	if !reflect.DeepEqual(kinds, want) {
		t.Fatalf("expected platforms before extras, got %v", kinds)
	}
	if o := cmds[0].Object; !near(o.X, 160) || !near(o.Y, 352) {
		t.Errorf("first platform at (%v, %v), want (160, 352)", o.X, o.Y)
	}
	if o := cmds[1].Object; !near(o.X, 560) || !near(o.Y, 280) {
		t.Errorf("second platform at (%v, %v), want (560, 280)", o.X, o.Y)
	}
}

func TestPlacePatternRejectedByObstacle(t *testing.T) {
	lg, rec := newTestGenerator(Normal, 1)
	lg.createStartingArea()
	lg.addPlatform(NewPlatform(560, 280, 3))
	rec.Drain()
	before := lg.Obstacles()

	blocked := Pattern{
		ID:       "blocked",
		Category: CategoryMedium,
		Elements: []PatternElement{
			PlatformElement{X: 2, Y: 1.0, Width: 3},
			PlatformElement{X: 7, Y: 1.6, Width: 3},
			LadderElement{X: 7, Y: 1.6, Height: 2},
			PortalElement{X: 2, Y: 1.2, PortalID: "up"},
			HeartElement{X: 7, Y: 1.8},
		},
	}
	if lg.placePattern(blocked, 472) {
		t.Fatalf("pattern overlapping an existing platform should be rejected")
	}
	if cmds := rec.Drain(); len(cmds) != 0 {
		t.Fatalf("rejected pattern wrote %d commands", len(cmds))
	}
	for _, kind := range []ObjectKind{ObjectLadder, ObjectPortal, ObjectHeart} {
		if n := rec.Count(kind); n != 0 {
			t.Errorf("%v child placed %d times", kind, n)
		}
	}
	if !reflect.DeepEqual(lg.Obstacles(), before) {
		t.Errorf("rejected pattern changed the placement window")
	}
	if s := lg.Stats(); s.PatternsRejected != 1 || s.PatternsPlaced != 0 {
		t.Errorf("unexpected pattern counters %+v", s)
	}
}

func TestDefaultPatternsCatalog(t *testing.T) {
	patterns := DefaultPatterns()
	if len(patterns) != 11 {
		t.Fatalf("expected 11 patterns, got %d", len(patterns))
	}

	seen := make(map[string]bool)
	for _, p := range patterns {
		if seen[p.ID] {
			t.Errorf("duplicate pattern id %s", p.ID)
		}
		seen[p.ID] = true
		if len(p.Elements) == 0 {
			t.Errorf("pattern %s has no elements", p.ID)
		}
	}
	for _, c := range PatternCategories {
		if len(ByCategory(patterns, c)) == 0 {
			t.Errorf("category %s is empty", c)
		}
	}
}
