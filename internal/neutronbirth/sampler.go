package neutronbirth

import (
	"fmt"

	"github.com/mdobak/go-xerrors"
)

// Source maps a vector of uniform random numbers to one neutron birth:
// x, y, z, u, v, w, energy. The mapping is opaque to the sampler.
type Source interface {
	Sample(randoms []float64) ([]float64, error)
}

// Uniform supplies independent uniform numbers in [0,1).
type Uniform interface {
	Float64() float64
}

// Sampler draws samples from a Source using fresh random vectors.
type Sampler struct {
	Source  Source
	Rand    Uniform
	Randoms int // random numbers per draw
}

// NewSampler returns a sampler handing RandomsPerDraw numbers to src per draw.
func NewSampler(src Source, rng Uniform) *Sampler {
	return &Sampler{Source: src, Rand: rng, Randoms: RandomsPerDraw}
}

func (s *Sampler) randoms() []float64 {
	v := make([]float64, s.Randoms)
	for i := range v {
		v[i] = s.Rand.Float64()
	}
	return v
}

// DrawSample makes exactly one call to the source with a new random vector.
// Returned values are not validated beyond their count.
func (s *Sampler) DrawSample() (Sample, error) {
	vals, err := s.Source.Sample(s.randoms())
	if err != nil {
		return Sample{}, xerrors.New(ErrSampling, err)
	}
	if len(vals) != ResultArity {
		return Sample{}, xerrors.New(ErrSampling, fmt.Sprintf("source returned %d values, want %d", len(vals), ResultArity))
	}
	smp := sampleFromValues(vals)
	if Debug {
		DebugLog("birth at %v, |dir|=%.6f, E=%g", smp.Position, smp.Direction.Len(), smp.Energy)
	}
	return smp, nil
}

// Collect draws n samples in sequence. The first failure aborts the run and
// no partial set is returned.
func (s *Sampler) Collect(n int) (SampleSet, error) {
	if n < 0 {
		return nil, xerrors.New(ErrSampling, fmt.Sprintf("negative sample count %d", n))
	}
	set := make(SampleSet, 0, n)
	for i := 0; i < n; i++ {
		smp, err := s.DrawSample()
		if err != nil {
			DebugLog("draw %d/%d failed: %v", i+1, n, err)
			return nil, err
		}
		set = append(set, smp)
	}
	DebugLog("collected %d samples", len(set))
	return set, nil
}
