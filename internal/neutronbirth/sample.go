package neutronbirth

// Sample is one neutron birth drawn from the source.
type Sample struct {
	Position  Vector3
	Direction Vector3 // not checked for unit length
	Energy    float64
}

// SampleSet holds the samples of one run in draw order.
type SampleSet []Sample

// sampleFromValues unpacks x, y, z, u, v, w, energy.
func sampleFromValues(v []float64) Sample {
	return Sample{
		Position:  Vector3{v[0], v[1], v[2]},
		Direction: Vector3{v[3], v[4], v[5]},
		Energy:    v[6],
	}
}

func (s SampleSet) column(f func(Sample) float64) []float64 {
	out := make([]float64, len(s))
	for i := range s {
		out[i] = f(s[i])
	}
	return out
}

func (s SampleSet) Xs() []float64       { return s.column(func(p Sample) float64 { return p.Position.X }) }
func (s SampleSet) Ys() []float64       { return s.column(func(p Sample) float64 { return p.Position.Y }) }
func (s SampleSet) Zs() []float64       { return s.column(func(p Sample) float64 { return p.Position.Z }) }
func (s SampleSet) Us() []float64       { return s.column(func(p Sample) float64 { return p.Direction.X }) }
func (s SampleSet) Vs() []float64       { return s.column(func(p Sample) float64 { return p.Direction.Y }) }
func (s SampleSet) Ws() []float64       { return s.column(func(p Sample) float64 { return p.Direction.Z }) }
func (s SampleSet) Energies() []float64 { return s.column(func(p Sample) float64 { return p.Energy }) }

func (s SampleSet) Positions() []Vector3 {
	out := make([]Vector3, len(s))
	for i := range s {
		out[i] = s[i].Position
	}
	return out
}
