package neutronbirth

import "strconv"

// BuildLabels returns one "Energy = <value> <unit>" label per energy, in order.
// Values are printed in the shortest form that round-trips (10 -> "10").
func BuildLabels(energies []float64, unit string) []string {
	labels := make([]string, len(energies))
	for i, e := range energies {
		labels[i] = "Energy = " + strconv.FormatFloat(e, 'f', -1, 64) + " " + unit
	}
	return labels
}
