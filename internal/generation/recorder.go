package generation

import "sort"

// Object is a live object held by a Recorder. X and Y are the object's center.
type Object struct {
	Handle  Handle     `json:"handle"`
	Kind    ObjectKind `json:"kind"`
	X       float64    `json:"x"`
	Y       float64    `json:"y"`
	Width   int        `json:"width,omitempty"`  // platforms, in tiles
	Height  int        `json:"height,omitempty"` // ladders, in tiles
	BottomY float64    `json:"bottom_y,omitempty"`
	TargetX float64    `json:"target_x,omitempty"`
	TargetY float64    `json:"target_y,omitempty"`
}

// Op is a change to the set of live objects
type Op string

const (
	OpCreate  Op = "create"
	OpDestroy Op = "destroy"
)

// Command records one create or destroy, in the order they happened
type Command struct {
	Op     Op     `json:"op"`
	Object Object `json:"object"`
}

// Recorder is an in-memory World. It keeps every live object and queues
// the commands a remote renderer needs to mirror them. It is not safe for
// concurrent use.
type Recorder struct {
	next    Handle
	live    map[Handle]Object
	pending []Command
	created int
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{live: make(map[Handle]Object)}
}

func (r *Recorder) add(o Object) Handle {
	r.next++
	o.Handle = r.next
	r.live[o.Handle] = o
	r.pending = append(r.pending, Command{Op: OpCreate, Object: o})
	r.created++
	return o.Handle
}

// CreatePlatform implements World
func (r *Recorder) CreatePlatform(x, y float64, widthTiles int) Handle {
	return r.add(Object{Kind: ObjectPlatform, X: x, Y: y, Width: widthTiles})
}

// CreateLadder implements World
func (r *Recorder) CreateLadder(x, bottomY float64, heightTiles int) Handle {
	center := bottomY - float64(heightTiles)*TileSize/2
	return r.add(Object{Kind: ObjectLadder, X: x, Y: center, Height: heightTiles, BottomY: bottomY})
}

// CreatePortal implements World
func (r *Recorder) CreatePortal(x, y, targetX, targetY float64) Handle {
	return r.add(Object{Kind: ObjectPortal, X: x, Y: y, TargetX: targetX, TargetY: targetY})
}

// CreateHeartPickup implements World
func (r *Recorder) CreateHeartPickup(x, y float64) Handle {
	return r.add(Object{Kind: ObjectHeart, X: x, Y: y})
}

// CreateCoin implements World
func (r *Recorder) CreateCoin(x, y float64) Handle {
	return r.add(Object{Kind: ObjectCoin, X: x, Y: y})
}

// Destroy implements World. Unknown handles are ignored.
func (r *Recorder) Destroy(h Handle) {
	o, ok := r.live[h]
	if !ok {
		return
	}
	delete(r.live, h)
	r.pending = append(r.pending, Command{Op: OpDestroy, Object: o})
}

// Objects returns live objects ordered by creation
func (r *Recorder) Objects() []Object {
	out := make([]Object, 0, len(r.live))
	for _, o := range r.live {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Handle < out[j].Handle })
	return out
}

// Get returns a live object by handle
func (r *Recorder) Get(h Handle) (Object, bool) {
	o, ok := r.live[h]
	return o, ok
}

// Platforms returns live platforms ordered by creation
func (r *Recorder) Platforms() []Platform {
	out := make([]Platform, 0)
	for _, o := range r.Objects() {
		if o.Kind == ObjectPlatform {
			out = append(out, NewPlatform(o.X, o.Y, o.Width))
		}
	}
	return out
}

// Count returns the number of live objects of a kind
func (r *Recorder) Count(kind ObjectKind) int {
	n := 0
	for _, o := range r.live {
		if o.Kind == kind {
			n++
		}
	}
	return n
}

// Len returns the number of live objects
func (r *Recorder) Len() int {
	return len(r.live)
}

// Created returns how many objects were ever created
func (r *Recorder) Created() int {
	return r.created
}

// Drain returns and clears the queued commands
func (r *Recorder) Drain() []Command {
	out := r.pending
	r.pending = nil
	if out == nil {
		out = []Command{}
	}
	return out
}
