package neutronbirth

import "math"

// Vector3 is a position or direction in 3D space.
type Vector3 struct {
	X, Y, Z float64
}

// Dot returns the dot product between two 3D vectors.
func (a Vector3) Dot(b Vector3) float64 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

// Len returns the Euclidean length of the vector.
func (v Vector3) Len() float64 { return math.Sqrt(v.Dot(v)) }
