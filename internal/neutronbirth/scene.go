package neutronbirth

import (
	"fmt"

	"github.com/mdobak/go-xerrors"
)

// PointCloud is a 3D scatter layer. All slices are index-aligned.
type PointCloud struct {
	Name       string
	X, Y, Z    []float64
	Color      []float64 // continuous color scale, not binned
	Text       []string  // drawn next to the point
	HoverText  []string  // shown in the tooltip
	MarkerSize float64
}

// Len returns the number of points in the layer.
func (pc *PointCloud) Len() int { return len(pc.X) }

// Scene is the visualization handed to the renderer: a title and its layers.
type Scene struct {
	Title  string
	Layers []PointCloud
}

// NewScene returns an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// AddPointCloud appends a layer.
func (s *Scene) AddPointCloud(pc PointCloud) {
	s.Layers = append(s.Layers, pc)
	DebugLog("Added layer %q with %d points", pc.Name, pc.Len())
}

// SetTitle sets the scene title.
func (s *Scene) SetTitle(title string) { s.Title = title }

// BuildScene makes a scene with exactly one point cloud: positions as
// coordinates, energy as color, labels as both text and hover text.
func BuildScene(set SampleSet, labels []string, title string, markerSize float64) (*Scene, error) {
	if len(labels) != len(set) {
		return nil, xerrors.New(ErrLabelMismatch, fmt.Sprintf("%d labels for %d samples", len(labels), len(set)))
	}
	scene := NewScene()
	scene.AddPointCloud(PointCloud{
		Name:       "neutron births",
		X:          set.Xs(),
		Y:          set.Ys(),
		Z:          set.Zs(),
		Color:      set.Energies(),
		Text:       labels,
		HoverText:  labels,
		MarkerSize: markerSize,
	})
	scene.SetTitle(title)
	return scene, nil
}
