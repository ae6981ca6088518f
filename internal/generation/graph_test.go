package generation

import (
	"reflect"
	"testing"
)

func TestGraphReachable(t *testing.T) {
	g := NewGraph()
	for i, y := range []float64{500, 420, 340, 100} {
		g.AddNode(&Node{ID: nodeID(i), Platform: NewPlatform(400, y, 3)})
	}

	if err := g.AddEdge("p0", "p1"); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if err := g.AddEdge("p1", "p2"); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if err := g.AddEdge("p1", "missing"); err == nil {
		t.Fatalf("expected error for unknown node")
	}

	e := g.GetEdge("p0", "p1")
	if e == nil || e.Weight != 80 {
		t.Fatalf("expected edge weighted by height gained, got %+v", e)
	}
	if g.GetEdge("p1", "p0") != nil {
		t.Errorf("edges are directed")
	}

	visited := g.Reachable("p0")
	if !visited["p2"] || visited["p3"] {
		t.Errorf("unexpected reachability %v", visited)
	}
	if got := g.FindUnreachable("p0"); !reflect.DeepEqual(got, []string{"p3"}) {
		t.Errorf("expected [p3] unreachable, got %v", got)
	}
	if got := g.FindUnreachable("p2"); !reflect.DeepEqual(got, []string{"p0", "p1", "p3"}) {
		t.Errorf("nothing leads down from p2, got %v", got)
	}
}

func TestHeightIndex(t *testing.T) {
	platforms := []Platform{
		NewPlatform(0, 300, 1),
		NewPlatform(0, 100, 1),
		NewPlatform(0, 200, 1),
	}
	idx := newHeightIndex(platforms)

	if got := idx.between(150, 300); !reflect.DeepEqual(got, []int{2, 0}) {
		t.Errorf("between(150, 300) = %v, want [2 0]", got)
	}
	if got := idx.between(301, 400); len(got) != 0 {
		t.Errorf("expected nothing above 300, got %v", got)
	}
	if got := idx.platforms(0, 150); len(got) != 1 || got[0].Y != 100 {
		t.Errorf("platforms(0, 150) = %+v", got)
	}
}
