package generation

import (
	"fmt"
	"sort"
)

// Node is a platform in the reachability graph
type Node struct {
	ID       string
	Platform Platform
}

// Edge is a single feasible, unobstructed jump between two platforms
type Edge struct {
	From, To string  // Node IDs
	Weight   float64 // Height gained by the jump
}

// Graph manages platforms and the jumps found between them. Edges are
// directed: a jump up is not a jump down.
type Graph struct {
	Nodes map[string]*Node
	Edges []*Edge

	// Adjacency list for quick lookups
	Adjacent map[string][]string
}

// NewGraph creates an empty graph
func NewGraph() *Graph {
	return &Graph{
		Nodes:    make(map[string]*Node),
		Edges:    make([]*Edge, 0),
		Adjacent: make(map[string][]string),
	}
}

// AddNode adds a node to the graph
func (g *Graph) AddNode(n *Node) {
	g.Nodes[n.ID] = n
	if g.Adjacent[n.ID] == nil {
		g.Adjacent[n.ID] = make([]string, 0)
	}
}

// AddEdge adds a directed jump between two nodes
func (g *Graph) AddEdge(fromID, toID string) error {
	from, ok := g.Nodes[fromID]
	if !ok {
		return fmt.Errorf("node %s not found", fromID)
	}
	to, ok := g.Nodes[toID]
	if !ok {
		return fmt.Errorf("node %s not found", toID)
	}
	g.link(from, to)
	return nil
}

// link records a jump between two nodes already in the graph
func (g *Graph) link(from, to *Node) {
	g.Edges = append(g.Edges, &Edge{
		From:   from.ID,
		To:     to.ID,
		Weight: from.Platform.Y - to.Platform.Y,
	})
	g.Adjacent[from.ID] = append(g.Adjacent[from.ID], to.ID)
}

// GetEdge returns the edge from one node to another if it exists
func (g *Graph) GetEdge(fromID, toID string) *Edge {
	for _, e := range g.Edges {
		if e.From == fromID && e.To == toID {
			return e
		}
	}
	return nil
}

// Reachable runs a BFS from every start node and returns the visited set
func (g *Graph) Reachable(startIDs ...string) map[string]bool {
	visited := make(map[string]bool)
	queue := make([]string, 0, len(startIDs))
	for _, id := range startIDs {
		if _, ok := g.Nodes[id]; ok && !visited[id] {
			visited[id] = true
			queue = append(queue, id)
		}
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, neighborID := range g.Adjacent[current] {
			if !visited[neighborID] {
				visited[neighborID] = true
				queue = append(queue, neighborID)
			}
		}
	}
	return visited
}

// FindUnreachable returns nodes not reachable from any start node, sorted by ID
func (g *Graph) FindUnreachable(startIDs ...string) []string {
	visited := g.Reachable(startIDs...)
	unreachable := make([]string, 0)
	for id := range g.Nodes {
		if !visited[id] {
			unreachable = append(unreachable, id)
		}
	}
	sort.Strings(unreachable)
	return unreachable
}

// PathAudit is the outcome of a whole-level traversal check
type PathAudit struct {
	Valid       bool       `json:"valid"`
	Reached     int        `json:"reached"`
	Unreachable []Platform `json:"unreachable"`
}

// ValidateLevelPath checks that a climber starting on any platform within
// three tiles of startY can chain upward jumps to a platform at or above
// endY (with three tiles of slack). Unreachable platforms are reported in
// input order.
func (p *Physics) ValidateLevelPath(platforms []Platform, startY, endY float64) PathAudit {
	if len(platforms) == 0 {
		return PathAudit{Unreachable: []Platform{}}
	}

	g := NewGraph()
	nodes := make([]*Node, len(platforms))
	starts := make([]string, 0)
	for i, pl := range platforms {
		nodes[i] = &Node{ID: nodeID(i), Platform: pl}
		g.AddNode(nodes[i])
		if abs(pl.Y-startY) < TileSize*3 {
			starts = append(starts, nodeID(i))
		}
	}
	if len(starts) == 0 {
		all := make([]Platform, len(platforms))
		copy(all, platforms)
		return PathAudit{Unreachable: all}
	}

	idx := newHeightIndex(platforms)
	margin := 3*TileSize + p.cfg.PlayerHeight

	// Edges are discovered lazily from platforms already known reachable,
	// so unreachable regions are never expanded.
	seen := make(map[int]bool)
	queue := make([]int, 0, len(starts))
	for i, pl := range platforms {
		if abs(pl.Y-startY) < TileSize*3 {
			seen[i] = true
			queue = append(queue, i)
		}
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		from := platforms[cur]

		for _, j := range idx.between(from.Y-p.maxHeight-TileSize, from.Y) {
			to := platforms[j]
			if seen[j] || to.Y >= from.Y {
				continue
			}
			obstacles := idx.platforms(to.Y-margin, from.Y+TileSize)
			if p.CanReachPlatform(from, to, obstacles).Reachable {
				g.link(nodes[cur], nodes[j])
				seen[j] = true
				queue = append(queue, j)
			}
		}
	}

	visited := g.Reachable(starts...)
	audit := PathAudit{Unreachable: make([]Platform, 0)}
	for i, pl := range platforms {
		if !visited[nodeID(i)] {
			audit.Unreachable = append(audit.Unreachable, pl)
			continue
		}
		audit.Reached++
		if pl.Y <= endY+TileSize*3 {
			audit.Valid = true
		}
	}
	return audit
}

// heightIndex answers "which platforms lie in this y range" without a
// full scan. Platforms outside an arc's vertical span can never block it.
type heightIndex struct {
	order []int
	src   []Platform
}

func newHeightIndex(platforms []Platform) *heightIndex {
	order := make([]int, len(platforms))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return platforms[order[a]].Y < platforms[order[b]].Y
	})
	return &heightIndex{order: order, src: platforms}
}

// between returns indices of platforms with lo <= y <= hi
func (h *heightIndex) between(lo, hi float64) []int {
	first := sort.Search(len(h.order), func(i int) bool {
		return h.src[h.order[i]].Y >= lo
	})
	out := make([]int, 0)
	for i := first; i < len(h.order); i++ {
		if h.src[h.order[i]].Y > hi {
			break
		}
		out = append(out, h.order[i])
	}
	return out
}

func (h *heightIndex) platforms(lo, hi float64) []Platform {
	ids := h.between(lo, hi)
	out := make([]Platform, len(ids))
	for i, id := range ids {
		out[i] = h.src[id]
	}
	return out
}

func nodeID(i int) string {
	return fmt.Sprintf("p%d", i)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
