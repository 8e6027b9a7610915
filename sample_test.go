package supershape

import (
	"errors"
	"math"
	"slices"
	"sync"
	"testing"
)

func TestSampleCount(t *testing.T) {
	tests := []struct {
		pointCount int
		percent    float64
		want       int
	}{
		{100, 1, 100},
		{37, 1, 37},
		{100, 0.5, 50},
		{100, 0.25, 25},
		{100, 2.5, 250},
		{3, 0.5, 1},
		{100, 0.001, 0},
		{100, 0, 0},
		{0, 1, 0},
		{-5, 1, 0},
		{100, -1, 0},
	}
	for _, tt := range tests {
		p := DefaultParams()
		p.PointCount = tt.pointCount
		p.Percent = tt.percent
		if got := p.SampleCount(); got != tt.want {
			t.Errorf("SampleCount(%d, %g) = %d, want %d", tt.pointCount, tt.percent, got, tt.want)
		}
		c, err := Sample(p)
		if err != nil {
			t.Fatal(err)
		}
		if len(c) != tt.want {
			t.Errorf("Sample(%d, %g) returned %d points, want %d", tt.pointCount, tt.percent, len(c), tt.want)
		}
	}
}

func TestSampleEmptyCurve(t *testing.T) {
	p := DefaultParams()
	p.PointCount = 0
	// Invalid shape parameters are never evaluated when there is nothing to
	// sample.
	p.A = 0
	c, err := Sample(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c == nil || len(c) != 0 {
		t.Errorf("got %#v, want an empty non-nil curve", c)
	}
}

func TestSampleFirstPoint(t *testing.T) {
	p := DefaultParams()
	c, err := Sample(p)
	if err != nil {
		t.Fatal(err)
	}
	if c[0] != Pt(1, 0) {
		t.Errorf("got %v, want %v", c[0], Pt(1, 0))
	}

	p.Width = 128
	p.Height = 64
	c, err = Sample(p)
	if err != nil {
		t.Fatal(err)
	}
	if c[0] != Pt(128, 0) {
		t.Errorf("got %v, want %v", c[0], Pt(128, 0))
	}
}

func TestSampleMatchesEvaluate(t *testing.T) {
	p := DefaultParams()
	p.PointCount = 64
	p.Width = 3
	p.Height = -2
	c, err := Sample(p)
	if err != nil {
		t.Fatal(err)
	}
	for i, pt := range c {
		phi := float64(i) * DefaultTravel / 64
		want, err := Evaluate(p.A, p.B, p.M, p.N1, p.N2, p.N3, phi)
		if err != nil {
			t.Fatal(err)
		}
		want = Pt(want.X*3, want.Y*-2)
		if pt != want {
			t.Errorf("point %d: got %v, want %v", i, pt, want)
		}
	}
}

func TestSamplePrefixConsistency(t *testing.T) {
	p := DefaultParams()
	p.PointCount = 120
	p.Travel = 3 * math.Pi
	full, err := Sample(p)
	if err != nil {
		t.Fatal(err)
	}
	for _, percent := range []float64{0.1, 0.25, 0.5, 0.75, 0.99} {
		p.Percent = percent
		part, err := Sample(p)
		if err != nil {
			t.Fatal(err)
		}
		n := int(math.Floor(120 * percent))
		if len(part) != n {
			t.Fatalf("percent %g: got %d points, want %d", percent, len(part), n)
		}
		diff(t, full[:n], part)
	}

	// Percentages above 1 continue the sweep with the same step.
	p.Percent = 2
	long, err := Sample(p)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, full, long[:len(full)])
}

func TestSampleAngles(t *testing.T) {
	p := DefaultParams()
	p.PointCount = 10
	p.Percent = 0.5
	p.Travel = 1
	got := slices.Collect(p.Angles())
	// The step is Travel/PointCount, not Travel/SampleCount.
	want := []float64{0, 0.1, 0.2, 0.3, 0.4}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != float64(i)*1/10 {
			t.Errorf("angle %d: got %g, want %g", i, got[i], want[i])
		}
		if i > 0 && !(got[i] > got[i-1]) {
			t.Errorf("angles not strictly increasing: %v", got)
		}
	}
}

func TestSampleZeroTravel(t *testing.T) {
	p := DefaultParams()
	p.PointCount = 5
	p.Travel = 0
	c, err := Sample(p)
	if err != nil {
		t.Fatal(err)
	}
	if len(c) != 5 {
		t.Fatalf("got %d points, want 5", len(c))
	}
	for i, pt := range c {
		if pt != Pt(1, 0) {
			t.Errorf("point %d: got %v, want %v", i, pt, Pt(1, 0))
		}
	}
}

func TestSampleScaling(t *testing.T) {
	p := DefaultParams()
	p.M = 5
	p.N1 = 0.7
	p.Width = 3
	p.Height = 5
	c1, err := Sample(p)
	if err != nil {
		t.Fatal(err)
	}
	p.Width = 6
	c2, err := Sample(p)
	if err != nil {
		t.Fatal(err)
	}
	for i := range c1 {
		if c2[i].X != 2*c1[i].X {
			t.Errorf("point %d: x = %g, want %g", i, c2[i].X, 2*c1[i].X)
		}
		if c2[i].Y != c1[i].Y {
			t.Errorf("point %d: y = %g, want %g", i, c2[i].Y, c1[i].Y)
		}
	}
}

func TestSampleInvalidParameter(t *testing.T) {
	for _, mod := range []func(*Params){
		func(p *Params) { p.A = 0 },
		func(p *Params) { p.B = 0 },
		func(p *Params) { p.N1 = 0 },
		func(p *Params) { p.Percent = math.NaN() },
		func(p *Params) { p.Percent = math.Inf(1) },
	} {
		p := DefaultParams()
		mod(&p)
		c, err := Sample(p)
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("got error %v, want ErrInvalidParameter", err)
		}
		if c != nil {
			t.Errorf("got partial curve of %d points", len(c))
		}
		if verr := p.Validate(); !errors.Is(verr, ErrInvalidParameter) {
			t.Errorf("Validate returned %v, want ErrInvalidParameter", verr)
		}
	}

	if err := DefaultParams().Validate(); err != nil {
		t.Errorf("default parameters are invalid: %v", err)
	}
}

func TestSampleHugePointCount(t *testing.T) {
	p := DefaultParams()
	p.PointCount = math.MaxInt
	p.A = 0
	if _, err := Sample(p); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("got error %v, want ErrInvalidParameter", err)
	}

	// A sliver of a sweep with math.MaxInt points still has more samples than
	// are reserved up front.
	p = DefaultParams()
	p.PointCount = math.MaxInt
	p.Percent = 1e-14
	n := p.SampleCount()
	if n <= maxPrealloc {
		t.Fatalf("got %d samples, want more than %d", n, maxPrealloc)
	}
	c, err := Sample(p)
	if err != nil {
		t.Fatal(err)
	}
	if len(c) != n {
		t.Errorf("got %d points, want %d", len(c), n)
	}
	if c[0] != Pt(1, 0) {
		t.Errorf("got first point %v, want (1, 0)", c[0])
	}
}

func TestSampleDeterministic(t *testing.T) {
	p := DefaultParams()
	p.PointCount = 500
	want, err := Sample(p)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	results := make([]Curve, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = Sample(p)
		}()
	}
	wg.Wait()
	for _, got := range results {
		diff(t, want, got)
	}

	// Curves don't alias each other.
	results[0][0] = Pt(42, 42)
	if results[1][0] == results[0][0] {
		t.Error("curves share storage")
	}
}
