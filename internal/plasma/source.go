package plasma

import (
	"fmt"
	"math"
	"sort"

	"github.com/mdobak/go-xerrors"
	"gonum.org/v1/gonum/floats"
)

const (
	// RandomCount is the number of uniform numbers consumed by one Sample call.
	RandomCount = 8
	// ResultCount is the number of values returned by one Sample call: x, y, z, u, v, w, E.
	ResultCount = 7
	// Bins is the number of radial bins of the emission profile.
	Bins = 100
	// DTEnergyMeV is the mean D-T neutron birth energy.
	DTEnergyMeV = 14.08
	// widthCoeff converts sqrt(T [MeV]) into the Gaussian width of the energy spectrum.
	widthCoeff = 5.59 / 2.35
	eVPerMeV   = 1e6
)

var (
	ErrInvalidConfig = xerrors.Message("invalid plasma config")
	ErrRandomCount   = xerrors.Message("wrong number of random values")
	ErrNoEmission    = xerrors.Message("plasma has no neutron emission")
)

// Source samples neutron birth locations, directions and energies from a
// parametric plasma. It is safe for concurrent use once built.
type Source struct {
	cfg      Config
	binWidth float64
	cdf      []float64 // exclusive cumulative emission, normalized, len = Bins
	ionKT    []float64 // sqrt(T [MeV]) per bin
	phiMin   float64   // radians
	phiExt   float64   // radians
}

// New validates cfg and precomputes the radial emission profile.
func New(cfg Config) (*Source, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Source{
		cfg:      cfg,
		binWidth: cfg.MinorRadius / Bins,
		cdf:      make([]float64, Bins),
		ionKT:    make([]float64, Bins),
		phiMin:   cfg.MinToroidalAngleDeg * math.Pi / 180,
		phiExt:   (cfg.MaxToroidalAngleDeg - cfg.MinToroidalAngleDeg) * math.Pi / 180,
	}
	strength := make([]float64, Bins)
	for i := 0; i < Bins; i++ {
		r := s.binWidth * float64(i)
		n := cfg.ionDensity(r)
		t := cfg.ionTemperature(r)
		strength[i] = n * n * dtReactivity(t)
		s.ionKT[i] = math.Sqrt(t / 1000)
	}
	// cdf[i] = sum(strength[:i])
	floats.CumSum(s.cdf[1:], strength[:Bins-1])
	total := s.cdf[Bins-1]
	if total <= 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return nil, xerrors.New(ErrNoEmission, fmt.Sprintf("total emission %g", total))
	}
	floats.Scale(1/total, s.cdf)
	return s, nil
}

// Sample maps RandomCount uniform numbers in [0,1) to a neutron birth:
// position x, y, z (cm), direction u, v, w and energy E (eV).
func (s *Source) Sample(randoms []float64) ([]float64, error) {
	if len(randoms) != RandomCount {
		return nil, xerrors.New(ErrRandomCount, fmt.Sprintf("got %d, need %d", len(randoms), RandomCount))
	}
	bin, minor := s.sampleRadius(randoms[0], randoms[1])
	R, z := s.toRZ(minor, randoms[2])
	x, y := s.toXY(R, randoms[3])
	e := s.sampleEnergy(bin, randoms[4], randoms[5])
	u, v, w := isotropicDirection(randoms[6], randoms[7])
	return []float64{x, y, z, u, v, w, e}, nil
}

// sampleRadius picks the first bin whose cumulative emission reaches r1,
// then a uniform radius inside the bin preceding it.
func (s *Source) sampleRadius(r1, r2 float64) (int, float64) {
	bin := sort.SearchFloat64s(s.cdf, r1)
	if bin >= Bins {
		bin = Bins - 1
	}
	if bin == 0 {
		return 0, s.binWidth * r2
	}
	return bin, s.binWidth*float64(bin-1) + s.binWidth*r2
}

// toRZ converts a minor radius and poloidal random number into major radius and height.
func (s *Source) toRZ(minor, rn float64) (R, z float64) {
	c := &s.cfg
	alpha := 2 * math.Pi * rn
	shift := c.ShafranovShift * (1 - math.Pow(minor/c.MinorRadius, 2))
	R = c.MajorRadius + shift + minor*math.Cos(alpha+c.Triangularity*math.Sin(alpha))
	z = c.Elongation * minor * math.Sin(alpha)
	return
}

func (s *Source) toXY(R, rn float64) (x, y float64) {
	phi := s.phiMin + s.phiExt*rn
	return R * math.Sin(phi), R * math.Cos(phi)
}

// sampleEnergy draws a Gaussian (Box–Muller) around the D-T peak with a
// width set by the bin's ion temperature; result in eV.
func (s *Source) sampleEnergy(bin int, r1, r2 float64) float64 {
	g := math.Sqrt(-2*math.Log(math.Max(r1, 1e-12))) * math.Cos(2*math.Pi*r2)
	return (DTEnergyMeV + widthCoeff*s.ionKT[bin]*g) * eVPerMeV
}

func isotropicDirection(r1, r2 float64) (u, v, w float64) {
	t := 2 * math.Pi * r1
	p := math.Acos(1 - 2*r2)
	return math.Sin(p) * math.Cos(t), math.Sin(p) * math.Sin(t), math.Cos(p)
}
