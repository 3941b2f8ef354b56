package geom

import (
	"errors"
	"math"
	"testing"
)

var xyPlane = NewPlane(V3(0, 0, 0), V3(0, 0, 1))

func TestProjectToPlane(t *testing.T) {
	got, err := V3(10, 10, 10).ProjectToPlane(xyPlane)
	if err != nil {
		t.Fatalf("project: %v", err)
	}
	if got != V3(10, 10, 0) {
		t.Fatalf("project=%v", got)
	}

	on := V3(5, 5, 0)
	got, err = on.ProjectToPlane(xyPlane)
	if err != nil || got != on {
		t.Fatalf("point on plane projected to %v err=%v", got, err)
	}
}

func TestProjectToPlaneIdempotent(t *testing.T) {
	planes := []Plane{
		xyPlane,
		NewPlane(V3(1, 2, 3), V3(1, 1, 1)),
		NewPlane(V3(-50, 0, 7), V3(0, -3, 0.2)),
		NewPlane(V3(0, 0, 0), V3(1e-3, 0, 0)),
	}
	points := []Vec3{V3(10, 10, 10), V3(-3, 8, 1), V3(1000, -2000, 0.5)}
	for _, pl := range planes {
		for _, p := range points {
			q, err := p.ProjectToPlane(pl)
			if err != nil {
				t.Fatalf("project(%v, %v): %v", p, pl, err)
			}
			if !q.OnPlane(pl) {
				t.Errorf("project(%v, %v)=%v is %v off the plane", p, pl, q, q.DistanceToPlane(pl))
			}
			// The projection moves along the normal only.
			if mv := p.VectorTo(q); !mv.IsZero() && !mv.Parallel(pl.Normal()) {
				t.Errorf("project(%v, %v) moved along %v", p, pl, mv)
			}
		}
	}
}

func TestDistanceToPlane(t *testing.T) {
	if d := V3(10, 10, 10).DistanceToPlane(xyPlane); d != 10 {
		t.Fatalf("distance=%v", d)
	}
	if d := V3(500, 1000, 0).DistanceToPlane(xyPlane); d != 0 {
		t.Fatalf("distance on plane=%v", d)
	}
	if d := V3(0, 0, -4).DistanceToPlane(xyPlane); d != 4 {
		t.Fatalf("distance below plane=%v", d)
	}
	// A non-unit normal must not scale the distance.
	pl := NewPlane(V3(0, 0, 2), V3(0, 0, 50))
	if d := V3(3, 3, 7).DistanceToPlane(pl); d != 5 {
		t.Fatalf("distance with long normal=%v", d)
	}
}

func TestOnPlane(t *testing.T) {
	cases := []struct {
		p    Vec3
		want bool
	}{
		{V3(10, 10, 10), false},
		{V3(887, 123.123, 0), true},
		{V3(887, 123.123, 0.001), false},
		{V3(887, 123.123, 0.0001), true},
		{V3(887, 123.123, -0.0001), true},
		{V3(0, 0, 0), true},
	}
	for _, c := range cases {
		if got := c.p.OnPlane(xyPlane); got != c.want {
			t.Errorf("on_plane(%v)=%v want %v", c.p, got, c.want)
		}
	}
}

func TestOnPlaneAwayFromOrigin(t *testing.T) {
	raised := NewPlane(V3(0, 0, 10), V3(0, 0, 1))
	tilted := NewPlane(V3(100, 200, 300), V3(1, 1, 0))
	diag := V3(1, 1, 0).Normalized()
	cases := []struct {
		p    Vec3
		pl   Plane
		want bool
	}{
		{V3(887, 123.123, 10.001), raised, false},
		{V3(887, 123.123, 9.999), raised, false},
		{V3(887, 123.123, 10.0001), raised, true},
		{V3(-887, 5, 9.9999), raised, true},
		{V3(1e4, -1e4, 10.0009), raised, true},
		{V3(100, 200, 300).Add(diag.Scale(0.001)), tilted, false},
		{V3(100, 200, 300).Add(diag.Scale(-0.001)), tilted, false},
		{V3(100, 200, 300).Add(diag.Scale(0.0005)), tilted, true},
		{V3(90, 210, -50), tilted, true},
	}
	for _, c := range cases {
		if got := c.p.OnPlane(c.pl); got != c.want {
			t.Errorf("on_plane(%v, %v)=%v want %v (d=%v)", c.p, c.pl, got, c.want, c.p.DistanceToPlane(c.pl))
		}
	}
}

func TestDegeneratePlane(t *testing.T) {
	pl := NewPlane(V3(1, 1, 1), Vec3{})
	if _, err := V3(4, 5, 1).ProjectToPlane(pl); !errors.Is(err, ErrDegenerateGeometry) {
		t.Fatalf("project err=%v", err)
	}
	if d := V3(4, 5, 1).DistanceToPlane(pl); d != 5 {
		t.Fatalf("degenerate distance=%v", d)
	}
	if !V3(1, 1, 1).OnPlane(pl) || V3(4, 5, 1).OnPlane(pl) {
		t.Fatalf("degenerate plane collapses to its origin")
	}
}

func TestPlaneThrough(t *testing.T) {
	pl, err := PlaneThrough(V3(0, 0, 0), V3(1, 0, 1), V3(0, 1, 2))
	if err != nil {
		t.Fatalf("plane through: %v", err)
	}
	// z = x + 2y.
	for _, p := range []Vec3{V3(3, 4, 11), V3(-1, -1, -3), V3(0, 0, 0)} {
		if !p.OnPlane(pl) {
			t.Errorf("%v should be on %v", p, pl)
		}
	}
	if V3(3, 4, 12).OnPlane(pl) {
		t.Errorf("(3,4,12) should be off the plane")
	}

	if _, err := PlaneThrough(V3(0, 0, 0), V3(1, 1, 1), V3(2, 2, 2)); !errors.Is(err, ErrDegenerateGeometry) {
		t.Fatalf("collinear err=%v", err)
	}
}

func TestPlaneCoefficients(t *testing.T) {
	// x + 2y - z + 3 = 0.
	pl, err := PlaneFromCoefficients(1, 2, -1, 3)
	if err != nil {
		t.Fatalf("coefficients: %v", err)
	}
	if !V3(10, 5, 23).OnPlane(pl) {
		t.Fatalf("(10,5,23) should satisfy x + 2y - z + 3 = 0")
	}

	a, b, c, d, err := pl.Coefficients()
	if err != nil {
		t.Fatalf("coefficients: %v", err)
	}
	s := math.Sqrt(6)
	if !near(a, 1/s, 1e-12) || !near(b, 2/s, 1e-12) || !near(c, -1/s, 1e-12) || !near(d, 3/s, 1e-12) {
		t.Fatalf("coefficients=%v %v %v %v", a, b, c, d)
	}

	if _, err := PlaneFromCoefficients(0, 0, 0, 1); !errors.Is(err, ErrDegenerateGeometry) {
		t.Fatalf("zero normal err=%v", err)
	}
	if _, _, _, _, err := (Plane{}).Coefficients(); !errors.Is(err, ErrDegenerateGeometry) {
		t.Fatalf("zero plane err=%v", err)
	}
}
