package neutronbirth

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// viridis stops for the continuous energy scale.
var colorScale = []string{"#440154", "#3b528b", "#21918c", "#5ec962", "#fde725"}

// renderChart translates a scene into a go-echarts 3D scatter chart.
// The fourth value of each point carries the color scalar.
func renderChart(scene *Scene) *charts.Scatter3D {
	chart := charts.NewScatter3D()

	var colors []float64
	for i := range scene.Layers {
		colors = append(colors, scene.Layers[i].Color...)
	}
	lo, hi := finiteRange(colors)

	chart.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:  scene.Title,
			Width:      ChartWidth,
			Height:     ChartHeight,
			AssetsHost: AssetsHost,
		}),
		charts.WithTitleOpts(opts.Title{Title: scene.Title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Formatter: "{b}"}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Type:       "continuous",
			Calculable: true,
			Dimension:  "3",
			Min:        float32(lo),
			Max:        float32(hi),
			InRange:    &opts.VisualMapInRange{Color: colorScale},
		}),
		charts.WithXAxis3DOpts(opts.XAxis3D{Name: "x [cm]"}),
		charts.WithYAxis3DOpts(opts.YAxis3D{Name: "y [cm]"}),
		charts.WithZAxis3DOpts(opts.ZAxis3D{Name: "z [cm]"}),
	)

	for i := range scene.Layers {
		layer := &scene.Layers[i]
		chart.AddSeries(layer.Name, pointData(layer), withSymbolSize(layer.MarkerSize))
	}
	return chart
}

// pointData packs a layer into chart items. The item name carries the label,
// which the tooltip formatter ("{b}") shows on hover.
func pointData(pc *PointCloud) []opts.Chart3DData {
	items := make([]opts.Chart3DData, pc.Len())
	for i := range items {
		name := ""
		switch {
		case i < len(pc.HoverText):
			name = pc.HoverText[i]
		case i < len(pc.Text):
			name = pc.Text[i]
		}
		var c interface{}
		if i < len(pc.Color) {
			c = jsonNumber(pc.Color[i])
		}
		items[i] = opts.Chart3DData{
			Name:  name,
			Value: []interface{}{jsonNumber(pc.X[i]), jsonNumber(pc.Y[i]), jsonNumber(pc.Z[i]), c},
		}
	}
	return items
}

func withSymbolSize(size float64) charts.SeriesOpts {
	return func(s *charts.SingleSeries) {
		s.SymbolSize = size
	}
}

// writeHTML renders the scene as a self-contained interactive HTML page.
func writeHTML(scene *Scene, w io.Writer) error {
	return renderChart(scene).Render(w)
}
