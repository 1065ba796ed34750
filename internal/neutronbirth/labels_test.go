package neutronbirth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildLabelsFormat(t *testing.T) {
	got := BuildLabels([]float64{10, 1.5, 14080000, -0.25}, "eV")
	assert.Equal(t, []string{
		"Energy = 10 eV",
		"Energy = 1.5 eV",
		"Energy = 14080000 eV",
		"Energy = -0.25 eV",
	}, got)
	assert.Empty(t, BuildLabels(nil, "eV"))
	assert.Equal(t, []string{"Energy = 2 MeV"}, BuildLabels([]float64{2}, "MeV"))
}

func TestBuildLabelsPure(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	b := append([]float64(nil), a...)
	b[2] = 99

	la := BuildLabels(a, EnergyUnit)
	lb := BuildLabels(b, EnergyUnit)
	assert.Len(t, lb, len(a))
	for i := range la {
		if i == 2 {
			assert.NotEqual(t, la[i], lb[i])
			continue
		}
		assert.Equal(t, la[i], lb[i], "label %d changed", i)
	}
}

func TestBuildLabelsIdempotent(t *testing.T) {
	e := []float64{14.1e6, 13.9e6, 0}
	assert.Equal(t, BuildLabels(e, EnergyUnit), BuildLabels(e, EnergyUnit))
	assert.Equal(t, []float64{14.1e6, 13.9e6, 0}, e, "input must not be modified")
}
