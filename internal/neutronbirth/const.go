package neutronbirth

const (
	Samples        = 500 // neutron births drawn per run
	RandomsPerDraw = 8   // uniform numbers handed to the source per draw
	ResultArity    = 7   // x, y, z, u, v, w, energy
	MarkerSize     = 1.5
	EnergyUnit     = "eV"
	Title          = "Neutron production coordinates, coloured by energy"
	HTMLOut        = "plasma_particle_location.html"
	SharedHTMLOut  = "/my_openmc_workshop/plasma_particle_location.html" // exists only inside the workshop container
	ChartWidth     = "1200px"
	ChartHeight    = "900px"
	EnvPrefix      = "NEUTRONBIRTH"
	LogFormat      = "console"
)

// DefaultAssetsHost serves the echarts scripts referenced by the rendered page.
const DefaultAssetsHost = "https://go-echarts.github.io/go-echarts-assets/assets/"
