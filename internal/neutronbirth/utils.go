package neutronbirth

import (
	"math"
)

func isFinite(x float64) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

// jsonNumber maps non-finite values to nil, which encodes as null.
func jsonNumber(x float64) interface{} {
	if !isFinite(x) {
		return nil
	}
	return x
}

// finiteRange returns the min and max of the finite values, (0, 1) when there are none.
func finiteRange(xs []float64) (lo, hi float64) {
	found := false
	for _, x := range xs {
		if !isFinite(x) {
			continue
		}
		if !found {
			lo, hi, found = x, x, true
			continue
		}
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	if !found {
		return 0, 1
	}
	if lo == hi {
		hi = lo + 1
	}
	return lo, hi
}
