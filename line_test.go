package supershape

import (
	"math"
	"testing"
)

func TestLine(t *testing.T) {
	l := Line{Pt(0, 0), Pt(3, 4)}
	if got := l.Length(); got != 5 {
		t.Errorf("got length %g, want 5", got)
	}
	diff(t, Pt(1.5, 2), l.Eval(0.5))
	diff(t, Line{Pt(0, 0), Pt(-3, 4)}, l.Transform(FlipX))
	if got := (Line{Pt(1, 0), Pt(0, 1)}).SignedArea(); got != 0.5 {
		t.Errorf("got signed area %g, want 0.5", got)
	}

	if l.IsInf() || l.IsNaN() {
		t.Error("finite line reported as non-finite")
	}
	if !(Line{Pt(0, 0), Pt(math.Inf(1), 1)}).IsInf() {
		t.Error("infinite line reported as finite")
	}
}
