package neutronbirth

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/lukaszgryglicki/neutronbirth/internal/plasma"
	"github.com/mdobak/go-xerrors"
	"github.com/spf13/viper"
)

// Config describes one run: how many births to draw, where to write the plot
// and the plasma to draw them from.
type Config struct {
	Samples    int           `json:"samples" mapstructure:"samples" validate:"gte=0"`
	Seed       int64         `json:"seed,omitempty" mapstructure:"seed"` // 0 seeds from the clock
	Title      string        `json:"title" mapstructure:"title"`
	EnergyUnit string        `json:"energyUnit" mapstructure:"energyUnit" validate:"required"`
	MarkerSize float64       `json:"markerSize,omitempty" mapstructure:"markerSize" validate:"gt=0"`
	Show       bool          `json:"show" mapstructure:"show"`
	AssetsHost string        `json:"assetsHost,omitempty" mapstructure:"assetsHost" validate:"required"`
	Outputs    []Target      `json:"outputs" mapstructure:"outputs" validate:"min=1,dive"`
	Plasma     plasma.Config `json:"plasma" mapstructure:"plasma"`
}

// DefaultConfig reproduces the reference run: 500 births from the ITER-like plasma.
func DefaultConfig() Config {
	return Config{
		Samples:    Samples,
		Title:      Title,
		EnergyUnit: EnergyUnit,
		MarkerSize: MarkerSize,
		Show:       Show,
		AssetsHost: DefaultAssetsHost,
		Outputs:    Targets(HTMLOut, SharedHTMLOut),
		Plasma:     plasma.Reference(),
	}
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("samples", cfg.Samples)
	v.SetDefault("seed", cfg.Seed)
	v.SetDefault("title", cfg.Title)
	v.SetDefault("energyUnit", cfg.EnergyUnit)
	v.SetDefault("markerSize", cfg.MarkerSize)
	v.SetDefault("show", cfg.Show)
	v.SetDefault("assetsHost", cfg.AssetsHost)
}

var validate = validator.New()

// LoadConfig reads a JSON (or YAML/TOML) config on top of DefaultConfig.
// An empty path uses the defaults. NEUTRONBIRTH_* environment variables
// override top-level scalar keys.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	v := viper.New()
	setDefaults(v, &cfg)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, xerrors.New(ErrConfig, "read "+path, err)
		}
	}
	if v.IsSet("outputs") {
		// decoding into the default slice would keep stale trailing targets
		cfg.Outputs = nil
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, xerrors.New(ErrConfig, "decode "+path, err)
	}

	// Defaults / validation
	if cfg.Title == "" {
		cfg.Title = Title
	}
	if cfg.AssetsHost == "" {
		cfg.AssetsHost = DefaultAssetsHost
	}
	if cfg.MarkerSize == 0 {
		cfg.MarkerSize = MarkerSize
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, xerrors.New(ErrConfig, err)
	}
	if err := cfg.Plasma.Validate(); err != nil {
		return nil, xerrors.New(ErrConfig, err)
	}
	DebugLog("Loaded config from %q: samples=%d, seed=%d, outputs=%d, plasma=%d", path, cfg.Samples, cfg.Seed, len(cfg.Outputs), cfg.Plasma.PlasmaID)
	return &cfg, nil
}
