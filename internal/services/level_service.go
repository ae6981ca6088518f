package services

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"lavaclimb.dev/internal/generation"
	"lavaclimb.dev/internal/models"
)

// ErrSessionNotFound is returned for ids with no live level
var ErrSessionNotFound = errors.New("level not found")

// ErrInvalidScroll is returned for a scroll position that is not finite or
// would generate more than MaxScrollAdvance of new level in one call
var ErrInvalidScroll = errors.New("invalid scroll position")

// MaxScrollAdvance bounds how far past the generated top a single scroll
// may ask the generator to build
const MaxScrollAdvance = generation.GameHeight * 5

// LevelServiceConfig configures a LevelService. Zero fields take defaults.
type LevelServiceConfig struct {
	Physics           *generation.Physics
	Patterns          []generation.Pattern
	DefaultDifficulty generation.DifficultyLevel
	Logger            *log.Logger
}

// LevelService owns one generator per running level
type LevelService struct {
	mu       sync.RWMutex
	sessions map[string]*session

	physics           *generation.Physics
	patterns          []generation.Pattern
	defaultDifficulty generation.DifficultyLevel
	logger            *log.Logger
}

// session pairs a generator with the recorder it writes into. mu guards
// every field below it; the generator is not safe for concurrent use.
type session struct {
	id        string
	createdAt time.Time

	mu      sync.Mutex
	level   *generation.DifficultySettings
	seed    uint64
	gen     *generation.LevelGenerator
	rec     *generation.Recorder
	scrollY float64
}

// NewLevelService creates a new LevelService
func NewLevelService(cfg LevelServiceConfig) *LevelService {
	phys := cfg.Physics
	if phys == nil {
		phys = generation.DefaultPhysics()
	}
	patterns := cfg.Patterns
	if patterns == nil {
		patterns = generation.DefaultPatterns()
	}
	level := cfg.DefaultDifficulty
	if level == "" {
		level = generation.Normal
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &LevelService{
		sessions:          make(map[string]*session),
		physics:           phys,
		patterns:          patterns,
		defaultDifficulty: level,
		logger:            logger,
	}
}

// Create starts a new level and generates its first screens. An empty
// difficulty uses the service default; a nil seed picks one from the clock.
func (s *LevelService) Create(difficulty string, seed *uint64) (*models.LevelSnapshot, error) {
	level := s.defaultDifficulty
	if difficulty != "" {
		parsed, err := generation.ParseDifficulty(difficulty)
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	var runSeed uint64
	if seed != nil {
		runSeed = *seed
	} else {
		runSeed = uint64(time.Now().UnixNano())
	}

	id := uuid.NewString()
	settings := generation.GetDifficulty(level)
	rec := generation.NewRecorder()
	gen := generation.NewLevelGenerator(rec, generation.GeneratorConfig{
		Difficulty: settings,
		Physics:    s.physics,
		Patterns:   s.patterns,
		Seed:       runSeed,
		Logger:     log.New(s.logger.Writer(), fmt.Sprintf("level %s: ", id[:8]), s.logger.Flags()),
	})
	gen.GenerateInitialLevel()
	// The snapshot carries the initial objects, so their commands are moot.
	rec.Drain()

	sess := &session{
		id:        id,
		createdAt: time.Now().UTC(),
		level:     settings,
		seed:      runSeed,
		gen:       gen,
		rec:       rec,
	}

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	s.logger.Printf("created level %s (%s, seed %d)", id, level, runSeed)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.snapshot(), nil
}

func (s *LevelService) lookup(id string) (*session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return sess, nil
}

// Get returns a full snapshot of a level's live objects
func (s *LevelService) Get(id string) (*models.LevelSnapshot, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.snapshot(), nil
}

// List returns every live level, oldest first
func (s *LevelService) List() []models.LevelInfo {
	s.mu.RLock()
	all := make([]*session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		all = append(all, sess)
	}
	s.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if all[i].createdAt.Equal(all[j].createdAt) {
			return all[i].id < all[j].id
		}
		return all[i].createdAt.Before(all[j].createdAt)
	})

	out := make([]models.LevelInfo, 0, len(all))
	for _, sess := range all {
		sess.mu.Lock()
		out = append(out, sess.info())
		sess.mu.Unlock()
	}
	return out
}

// Viewport returns live objects whose center lies between top and bottom
// (world y, so top < bottom). Swapped bounds are accepted.
func (s *LevelService) Viewport(id string, top, bottom float64) (*models.ViewportData, error) {
	if top > bottom {
		top, bottom = bottom, top
	}
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	objects := make([]generation.Object, 0)
	for _, o := range sess.rec.Objects() {
		if o.Y >= top && o.Y <= bottom {
			objects = append(objects, o)
		}
	}
	return &models.ViewportData{LevelID: id, Top: top, Bottom: bottom, Objects: objects}, nil
}

// Scroll advances the level to scrollY and returns the resulting commands
func (s *LevelService) Scroll(id string, scrollY float64) (*models.CommandBatch, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	if math.IsNaN(scrollY) || math.IsInf(scrollY, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScroll, scrollY)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	target := -scrollY + generation.GameHeight*2
	if advance := target - sess.gen.GeneratedHeight(); advance > MaxScrollAdvance {
		return nil, fmt.Errorf("%w: %.0f ahead of the generated top, limit %.0f",
			ErrInvalidScroll, advance, MaxScrollAdvance)
	}

	sess.gen.Update(scrollY)
	sess.scrollY = scrollY
	return &models.CommandBatch{
		LevelID:         id,
		ScrollY:         scrollY,
		GeneratedHeight: sess.gen.GeneratedHeight(),
		Commands:        sess.rec.Drain(),
	}, nil
}

// Audit runs the whole-level reachability check over the live platforms,
// from the oldest path platform still in the window up to the newest.
func (s *LevelService) Audit(id string) (*models.AuditResult, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	platforms := sess.rec.Platforms()
	path := sess.gen.PathPlatforms()
	last := sess.gen.LastPlatform()
	sess.mu.Unlock()

	startY := last.Y
	if len(path) > 0 {
		startY = path[0].Y
	}
	endY := last.Y

	audit := s.physics.ValidateLevelPath(platforms, startY, endY)
	return &models.AuditResult{
		LevelID:     id,
		StartY:      startY,
		EndY:        endY,
		Platforms:   len(platforms),
		Valid:       audit.Valid,
		Reached:     audit.Reached,
		Unreachable: audit.Unreachable,
	}, nil
}

// Delete drops a level
func (s *LevelService) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	delete(s.sessions, id)
	s.logger.Printf("deleted level %s", id)
	return nil
}

func (sess *session) info() models.LevelInfo {
	return models.LevelInfo{
		ID:              sess.id,
		Difficulty:      string(sess.level.Level),
		Seed:            sess.seed,
		Hearts:          sess.level.Hearts,
		LavaSpeed:       sess.level.LavaSpeed,
		FinishY:         sess.level.FinishY(),
		ScrollY:         sess.scrollY,
		GeneratedHeight: sess.gen.GeneratedHeight(),
		CreatedAt:       sess.createdAt,
	}
}

func (sess *session) snapshot() *models.LevelSnapshot {
	return &models.LevelSnapshot{
		Level:   sess.info(),
		Objects: sess.rec.Objects(),
		Path:    sess.gen.PathPlatforms(),
		Stats:   sess.gen.Stats(),
	}
}
