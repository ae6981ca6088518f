package generation

import "math"

// PhysicsConfig holds the player's movement parameters in world units
// per second. Y grows downward; JumpVelocity is the takeoff speed upward.
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity" json:"gravity"`
	JumpVelocity   float64 `yaml:"jump_velocity" json:"jump_velocity"`
	MoveSpeed      float64 `yaml:"move_speed" json:"move_speed"`
	PlayerWidth    float64 `yaml:"player_width" json:"player_width"`
	PlayerHeight   float64 `yaml:"player_height" json:"player_height"`
	SafeJumpHeight float64 `yaml:"safe_jump_height" json:"safe_jump_height"`
}

// DefaultPhysicsConfig returns the tuning the level layout was built around
func DefaultPhysicsConfig() PhysicsConfig {
	return PhysicsConfig{
		Gravity:        900,
		JumpVelocity:   450,
		MoveSpeed:      200,
		PlayerWidth:    32,
		PlayerHeight:   48,
		SafeJumpHeight: 90,
	}
}

// Physics answers kinematic reachability questions for one player
// configuration. All methods are pure.
type Physics struct {
	cfg PhysicsConfig

	maxHeight     float64 // v^2 / 2g
	timeToPeak    float64 // v / g
	maxHorizontal float64 // horizontal travel over a full flat jump
}

// NewPhysics derives the jump envelope from a config
func NewPhysics(cfg PhysicsConfig) *Physics {
	timeToPeak := cfg.JumpVelocity / cfg.Gravity
	return &Physics{
		cfg:           cfg,
		maxHeight:     cfg.JumpVelocity * cfg.JumpVelocity / (2 * cfg.Gravity),
		timeToPeak:    timeToPeak,
		maxHorizontal: cfg.MoveSpeed * timeToPeak * 2,
	}
}

// DefaultPhysics is NewPhysics(DefaultPhysicsConfig())
func DefaultPhysics() *Physics {
	return NewPhysics(DefaultPhysicsConfig())
}

// Config returns the parameters this instance was built from
func (p *Physics) Config() PhysicsConfig {
	return p.cfg
}

// MaxJumpHeight is the theoretical apex of a standing jump
func (p *Physics) MaxJumpHeight() float64 {
	return p.maxHeight
}

// MaxHorizontalDistance is the run covered by a jump that lands at takeoff height
func (p *Physics) MaxHorizontalDistance() float64 {
	return p.maxHorizontal
}

// Arc is a sampled jump trajectory. Each point marks the player's feet.
type Arc struct {
	Start  Point   `json:"start"`
	End    Point   `json:"end"`
	PeakY  float64 `json:"peak_y"`
	Points []Point `json:"points"`
}

// IsFeasible reports whether a single jump can cover dx horizontally and
// dy vertically. Positive dy means the destination is higher.
func (p *Physics) IsFeasible(dx, dy float64) bool {
	dist := math.Abs(dx)

	if dy > p.maxHeight {
		return false
	}
	if dist > p.maxHorizontal*1.2 {
		return false
	}

	if dy > 0 {
		v := p.cfg.JumpVelocity
		disc := v*v - 2*p.cfg.Gravity*dy
		if disc < 0 {
			return false
		}
		// Earliest time the player rises through dy, then the rest of the
		// airborne window is usable for horizontal travel.
		tHeight := (v - math.Sqrt(disc)) / p.cfg.Gravity
		remaining := p.timeToPeak*2 - tHeight
		if dist > p.cfg.MoveSpeed*remaining*1.1 {
			return false
		}
	}

	return true
}

// ComputeJumpArc samples the trajectory from one standing point to another.
// Returns false when the jump is infeasible.
func (p *Physics) ComputeJumpArc(fromX, fromY, toX, toY float64) (Arc, bool) {
	dx := toX - fromX
	dy := fromY - toY
	if !p.IsFeasible(dx, dy) {
		return Arc{}, false
	}

	var peakY float64
	if dy > 0 {
		peakY = fromY - (dy + TileSize)
	} else {
		peakY = fromY - p.maxHeight*0.6
	}

	samples := maxInt(20, int(math.Ceil(math.Abs(dx)/10)))
	points := make([]Point, 0, samples+1)
	for i := 0; i <= samples; i++ {
		t := float64(i) / float64(samples)
		x := fromX + dx*t

		var y float64
		if t <= 0.5 {
			lt := t / 0.5
			y = fromY + (peakY-fromY)*(1-(1-lt)*(1-lt))
		} else {
			lt := (t - 0.5) / 0.5
			y = peakY + (toY-peakY)*lt*lt
		}
		points = append(points, Point{x, y})
	}

	return Arc{
		Start:  Point{fromX, fromY},
		End:    Point{toX, toY},
		PeakY:  peakY,
		Points: points,
	}, true
}

// playerBox is the body occupied with feet at pt
func (p *Physics) playerBox(pt Point) Bounds {
	half := p.cfg.PlayerWidth / 2
	return Bounds{pt.X - half, pt.Y - p.cfg.PlayerHeight, pt.X + half, pt.Y}
}

// ArcBlockedBy returns the first obstacle the player's body would hit while
// following arc. The ignored platform and any obstacle within one tile of
// the landing height are skipped.
func (p *Physics) ArcBlockedBy(arc Arc, obstacles []Platform, ignore *Platform) (Platform, bool) {
	for _, pt := range arc.Points {
		box := p.playerBox(pt)
		for _, obs := range obstacles {
			if ignore != nil && obs.SameSpot(*ignore) {
				continue
			}
			if !box.Overlaps(obs.Band()) {
				continue
			}
			if math.Abs(obs.Y-arc.End.Y) > TileSize {
				return obs, true
			}
		}
	}
	return Platform{}, false
}

// Reach is the result of a platform-to-platform reachability query
type Reach struct {
	Reachable bool
	// Blocker is the last obstacle that stopped an otherwise feasible arc.
	// Nil when reachable or when no arc was feasible at all.
	Blocker *Platform
}

var jumpOffsets = [3]float64{-TileSize, 0, TileSize}

// CanReachPlatform tries takeoff and landing points one tile either side of
// center on each platform. The first arc that clears every obstacle wins.
func (p *Physics) CanReachPlatform(from, to Platform, all []Platform) Reach {
	var blocker *Platform
	fromY := from.Surface()
	toY := to.Surface()

	for _, takeoff := range jumpOffsets {
		fromX := clamp(from.X+takeoff, from.Left, from.Right)
		for _, landing := range jumpOffsets {
			toX := clamp(to.X+landing, to.Left, to.Right)

			arc, ok := p.ComputeJumpArc(fromX, fromY, toX, toY)
			if !ok {
				continue
			}
			b, hit := p.ArcBlockedBy(arc, all, &from)
			if !hit {
				return Reach{Reachable: true}
			}
			blocker = &b
		}
	}

	return Reach{Blocker: blocker}
}

// FindReachable filters candidates down to those reachable from from
func (p *Physics) FindReachable(from Platform, candidates, all []Platform) []Platform {
	out := make([]Platform, 0)
	for _, c := range candidates {
		if c == from {
			continue
		}
		if p.CanReachPlatform(from, c, all).Reachable {
			out = append(out, c)
		}
	}
	return out
}

// FindNonBlockingPosition slides a platform sideways (0, -2, +2, -4, +4 tiles)
// until it no longer blocks a center-to-center jump from any platform below
// it to any platform above it. from is treated as one of the platforms below.
func (p *Physics) FindNonBlockingPosition(candidate Platform, existing []Platform, from Platform) (Point, bool) {
	below := make([]Platform, 0, len(existing)+1)
	above := make([]Platform, 0, len(existing))
	for _, e := range existing {
		switch {
		case e.Y > candidate.Y:
			below = append(below, e)
		case e.Y < candidate.Y:
			above = append(above, e)
		}
	}
	if from.Y > candidate.Y {
		below = append(below, from)
	}

	shifts := []float64{0, -2 * TileSize, 2 * TileSize, -4 * TileSize, 4 * TileSize}
	for _, shift := range shifts {
		test := NewPlatform(candidate.X+shift, candidate.Y, candidate.Width)
		if !p.blocksAny(test, below, above) {
			return Point{test.X, test.Y}, true
		}
	}
	return Point{}, false
}

func (p *Physics) blocksAny(test Platform, below, above []Platform) bool {
	single := []Platform{test}
	for _, lo := range below {
		for _, hi := range above {
			arc, ok := p.ComputeJumpArc(lo.X, lo.Surface(), hi.X, hi.Surface())
			if !ok {
				continue
			}
			if _, hit := p.ArcBlockedBy(arc, single, nil); hit {
				return true
			}
		}
	}
	return false
}
