package world

import "testing"

// openBox accepts every position inside a w x h rectangle except walls.
func openBox(w, h int, walls ...Position) Passable {
	blocked := make(map[Position]bool)
	for _, p := range walls {
		blocked[p] = true
	}
	return func(p Position) bool {
		return p.X >= 0 && p.Y >= 0 && p.X < w && p.Y < h && !blocked[p]
	}
}

func TestShortestPath_Straight(t *testing.T) {
	path := ShortestPath(Pos(0, 0), Pos(4, 0), openBox(5, 1))
	if len(path) != 5 {
		t.Fatalf("len(path) = %d, want 5", len(path))
	}
	for i, p := range path {
		if p != Pos(i, 0) {
			t.Errorf("path[%d] = %v, want (%d,0)", i, p, i)
		}
	}
}

func TestShortestPath_AroundWall(t *testing.T) {
	walls := []Position{Pos(1, 0), Pos(1, 1)}
	path := ShortestPath(Pos(0, 0), Pos(2, 0), openBox(3, 3, walls...))
	if path == nil {
		t.Fatal("expected a path around the wall")
	}
	if len(path) != 7 {
		t.Errorf("len(path) = %d, want 7", len(path))
	}
	for i := 1; i < len(path); i++ {
		if !path[i-1].Touching(path[i]) {
			t.Errorf("path step %v -> %v is not adjacent", path[i-1], path[i])
		}
	}
}

func TestShortestPath_Unreachable(t *testing.T) {
	walls := []Position{Pos(1, 0), Pos(1, 1), Pos(1, 2)}
	if path := ShortestPath(Pos(0, 0), Pos(2, 0), openBox(3, 3, walls...)); path != nil {
		t.Errorf("ShortestPath() = %v, want nil", path)
	}
}

func TestReachable_CountsRegion(t *testing.T) {
	walls := []Position{Pos(1, 0), Pos(1, 1), Pos(1, 2)}
	got := Reachable(Pos(0, 0), openBox(3, 3, walls...))
	if got.Size() != 3 {
		t.Errorf("Reachable().Size() = %d, want 3", got.Size())
	}
	if got.Has(Pos(2, 2)) {
		t.Error("Reachable() crossed the wall")
	}
}
