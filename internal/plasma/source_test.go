package plasma

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func mustSource(t *testing.T) *Source {
	t.Helper()
	s, err := New(Reference())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return s
}

func TestCDFMonotoneAndNormalized(t *testing.T) {
	s := mustSource(t)
	if s.cdf[0] != 0 {
		t.Fatalf("cdf[0]=%g, want 0", s.cdf[0])
	}
	if math.Abs(s.cdf[Bins-1]-1) > 1e-12 {
		t.Fatalf("cdf not normalized: %g", s.cdf[Bins-1])
	}
	for i := 1; i < Bins; i++ {
		if s.cdf[i] < s.cdf[i-1] {
			t.Fatalf("cdf decreases at %d: %g < %g", i, s.cdf[i], s.cdf[i-1])
		}
	}
}

func TestSampleRejectsWrongRandomCount(t *testing.T) {
	s := mustSource(t)
	for _, n := range []int{0, 7, 9} {
		_, err := s.Sample(make([]float64, n))
		if !errors.Is(err, ErrRandomCount) {
			t.Fatalf("n=%d: expected ErrRandomCount, got %v", n, err)
		}
	}
}

func TestSampleDeterministic(t *testing.T) {
	s := mustSource(t)
	in := []float64{0.3, 0.5, 0.25, 0.75, 0.4, 0.6, 0.1, 0.9}
	a, err := s.Sample(in)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := s.Sample(in)
	if len(a) != ResultCount {
		t.Fatalf("got %d values, want %d", len(a), ResultCount)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("value %d differs: %g vs %g", i, a[i], b[i])
		}
	}
}

func TestSampleGeometryBounds(t *testing.T) {
	cfg := Reference()
	s := mustSource(t)
	rng := rand.New(rand.NewSource(42))
	rmin := cfg.MajorRadius - cfg.MinorRadius
	rmax := cfg.MajorRadius + cfg.ShafranovShift + cfg.MinorRadius
	zmax := cfg.Elongation * cfg.MinorRadius
	for i := 0; i < 5000; i++ {
		in := make([]float64, RandomCount)
		for j := range in {
			in[j] = rng.Float64()
		}
		out, err := s.Sample(in)
		if err != nil {
			t.Fatal(err)
		}
		R := math.Hypot(out[0], out[1])
		if R < rmin-1e-9 || R > rmax+1e-9 {
			t.Fatalf("major radius %g outside [%g, %g]", R, rmin, rmax)
		}
		if math.Abs(out[2]) > zmax+1e-9 {
			t.Fatalf("|z|=%g exceeds %g", math.Abs(out[2]), zmax)
		}
		l := math.Sqrt(out[3]*out[3] + out[4]*out[4] + out[5]*out[5])
		if math.Abs(l-1) > 1e-9 {
			t.Fatalf("direction not unit: %g", l)
		}
	}
}

func TestEnergyCentredOnDTPeak(t *testing.T) {
	s := mustSource(t)
	// cos(2π·0.25) = 0 removes the thermal spread.
	in := []float64{0.5, 0.5, 0, 0, 0.3, 0.25, 0, 0}
	out, err := s.Sample(in)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(out[6]-DTEnergyMeV*1e6) > 1e-3 {
		t.Fatalf("energy %g, want %g", out[6], DTEnergyMeV*1e6)
	}
	// r=0 must not blow up the logarithm.
	in[4], in[5] = 0, 0
	out, _ = s.Sample(in)
	if math.IsInf(out[6], 0) || math.IsNaN(out[6]) {
		t.Fatalf("energy not finite: %g", out[6])
	}
}

func TestToroidalExtent(t *testing.T) {
	cfg := Reference()
	cfg.MinToroidalAngleDeg = 0
	cfg.MaxToroidalAngleDeg = 90
	s, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	for _, rn := range []float64{0, 0.25, 0.5, 0.999} {
		x, y := s.toXY(1000, rn)
		if x < -1e-9 || y < -1e-9 {
			t.Fatalf("rn=%g gives (%g, %g) outside first quadrant", rn, x, y)
		}
	}
}
