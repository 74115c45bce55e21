package world

import (
	"github.com/zyedidia/generic/mapset"
)

// Passable reports whether a position may be entered by a path search.
type Passable func(Position) bool

// ShortestPath runs a breadth-first search from start to goal through
// positions accepted by passable. The returned path includes both ends.
// It returns nil if goal cannot be reached. start itself is not tested
// against passable.
func ShortestPath(start, goal Position, passable Passable) []Position {
	if start == goal {
		return []Position{start}
	}

	visited := mapset.New[Position]()
	visited.Put(start)
	parent := make(map[Position]Position)
	queue := []Position{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, dir := range AllDirections() {
			next := current.Step(dir, 1)
			if visited.Has(next) || !passable(next) {
				continue
			}
			visited.Put(next)
			parent[next] = current
			if next == goal {
				return walkBack(parent, start, goal)
			}
			queue = append(queue, next)
		}
	}

	return nil
}

// Reachable collects every position reachable from start.
func Reachable(start Position, passable Passable) mapset.Set[Position] {
	visited := mapset.New[Position]()
	visited.Put(start)
	queue := []Position{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, dir := range AllDirections() {
			next := current.Step(dir, 1)
			if !visited.Has(next) && passable(next) {
				visited.Put(next)
				queue = append(queue, next)
			}
		}
	}

	return visited
}

func walkBack(parent map[Position]Position, start, goal Position) []Position {
	var path []Position
	for p := goal; p != start; p = parent[p] {
		path = append(path, p)
	}
	path = append(path, start)

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
