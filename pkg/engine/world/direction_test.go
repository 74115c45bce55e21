package world

import (
	"math/rand"
	"testing"
)

func TestDirection_LeftSequence(t *testing.T) {
	want := []Direction{West, South, East, North}
	d := North
	for i, w := range want {
		d = d.Left()
		if d != w {
			t.Fatalf("left turn %d = %v, want %v", i+1, d, w)
		}
	}
}

func TestDirection_RotationClosure(t *testing.T) {
	for _, start := range AllDirections() {
		left, right := start, start
		for i := 0; i < NumDirections; i++ {
			left = left.Left()
			right = right.Right()
		}
		if left != start {
			t.Errorf("four left turns from %v = %v", start, left)
		}
		if right != start {
			t.Errorf("four right turns from %v = %v", start, right)
		}
		if start.Left().Right() != start {
			t.Errorf("%v.Left().Right() = %v", start, start.Left().Right())
		}
	}
}

func TestDirection_Opposite(t *testing.T) {
	tests := map[Direction]Direction{North: South, South: North, East: West, West: East}
	for d, want := range tests {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, want %v", d, got, want)
		}
	}
	if got := Direction(9).Opposite(); got != Direction(9) {
		t.Errorf("invalid Opposite() = %v, want unchanged", got)
	}
}

func TestDirection_DeltaCancelsWithOpposite(t *testing.T) {
	for _, d := range AllDirections() {
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		if dx+ox != 0 || dy+oy != 0 {
			t.Errorf("%v delta (%d,%d) does not cancel opposite (%d,%d)", d, dx, dy, ox, oy)
		}
	}
}

func TestRandomDirection_AlwaysValid(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		if d := RandomDirection(rng); !d.IsValid() {
			t.Fatalf("RandomDirection() = %d, not valid", d)
		}
	}
}

func TestPosition_StepAndTouching(t *testing.T) {
	p := Pos(5, 5)
	if got := p.Step(North, 3); got != Pos(5, 2) {
		t.Errorf("Step(North, 3) = %v, want (5,2)", got)
	}
	if got := p.Step(West, 7); got != Pos(-2, 5) {
		t.Errorf("Step(West, 7) = %v, want (-2,5)", got)
	}
	if !p.Touching(Pos(5, 6)) || !p.Touching(Pos(4, 5)) {
		t.Error("orthogonal neighbours should be touching")
	}
	if p.Touching(Pos(6, 6)) || p.Touching(p) {
		t.Error("diagonal or same cell should not be touching")
	}
	if InvalidPosition.IsValid() {
		t.Error("InvalidPosition.IsValid() = true")
	}
}
