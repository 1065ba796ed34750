package neutronbirth

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedSet() SampleSet {
	return SampleSet{
		{Position: Vector3{0, 0, 0}, Direction: Vector3{1, 0, 0}, Energy: 10},
		{Position: Vector3{1, 1, 1}, Direction: Vector3{0, 1, 0}, Energy: 20},
		{Position: Vector3{2, 2, 2}, Direction: Vector3{0, 0, 1}, Energy: 30},
	}
}

func TestBuildSceneSingleLayer(t *testing.T) {
	for _, set := range []SampleSet{nil, {}, fixedSet()} {
		labels := BuildLabels(set.Energies(), EnergyUnit)
		scene, err := BuildScene(set, labels, Title, MarkerSize)
		require.NoError(t, err)
		require.Len(t, scene.Layers, 1)
		assert.Equal(t, Title, scene.Title)
		assert.Equal(t, len(set), scene.Layers[0].Len())
	}
}

func TestBuildSceneLayerContents(t *testing.T) {
	set := fixedSet()
	labels := BuildLabels(set.Energies(), EnergyUnit)
	scene, err := BuildScene(set, labels, "t", 2)
	require.NoError(t, err)

	pc := scene.Layers[0]
	assert.Equal(t, []float64{0, 1, 2}, pc.X)
	assert.Equal(t, []float64{0, 1, 2}, pc.Y)
	assert.Equal(t, []float64{0, 1, 2}, pc.Z)
	assert.Equal(t, []float64{10, 20, 30}, pc.Color)
	assert.Equal(t, labels, pc.Text)
	assert.Equal(t, labels, pc.HoverText)
	assert.Equal(t, 2.0, pc.MarkerSize)
}

func TestBuildSceneLabelMismatch(t *testing.T) {
	_, err := BuildScene(fixedSet(), []string{"a"}, Title, MarkerSize)
	assert.True(t, errors.Is(err, ErrLabelMismatch))
}

func TestPointDataHandlesNonFinite(t *testing.T) {
	pc := &PointCloud{
		X:         []float64{math.NaN(), 1},
		Y:         []float64{0, math.Inf(1)},
		Z:         []float64{0, 0},
		Color:     []float64{1, math.NaN()},
		HoverText: []string{"a", "b"},
	}
	items := pointData(pc)
	require.Len(t, items, 2)
	assert.Nil(t, items[0].Value[0])
	assert.Nil(t, items[1].Value[1])
	assert.Nil(t, items[1].Value[3])
	assert.Equal(t, "b", items[1].Name)
}

func TestFiniteRange(t *testing.T) {
	lo, hi := finiteRange([]float64{3, math.NaN(), -1, math.Inf(-1), 7})
	assert.Equal(t, -1.0, lo)
	assert.Equal(t, 7.0, hi)
	lo, hi = finiteRange(nil)
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 1.0, hi)
	lo, hi = finiteRange([]float64{5})
	assert.Less(t, lo, hi)
}
