package plasma

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/mdobak/go-xerrors"
)

// Config holds the profile and geometry parameters of a parametric plasma.
// Densities are in m^-3, temperatures in keV, lengths in cm, angles in degrees.
type Config struct {
	Elongation                  float64 `json:"elongation" mapstructure:"elongation" validate:"gt=0"`
	IonDensityOrigin            float64 `json:"ionDensityOrigin" mapstructure:"ionDensityOrigin" validate:"gt=0"`
	IonDensityPeakingFactor     float64 `json:"ionDensityPeakingFactor" mapstructure:"ionDensityPeakingFactor" validate:"gte=0"`
	IonDensityPedestal          float64 `json:"ionDensityPedestal" mapstructure:"ionDensityPedestal" validate:"gte=0"`
	IonDensitySeparatrix        float64 `json:"ionDensitySeparatrix" mapstructure:"ionDensitySeparatrix" validate:"gte=0"`
	IonTemperatureOrigin        float64 `json:"ionTemperatureOrigin" mapstructure:"ionTemperatureOrigin" validate:"gt=0"`
	IonTemperaturePeakingFactor float64 `json:"ionTemperaturePeakingFactor" mapstructure:"ionTemperaturePeakingFactor" validate:"gte=0"`
	IonTemperaturePedestal      float64 `json:"ionTemperaturePedestal" mapstructure:"ionTemperaturePedestal" validate:"gt=0"`
	IonTemperatureSeparatrix    float64 `json:"ionTemperatureSeparatrix" mapstructure:"ionTemperatureSeparatrix" validate:"gt=0"`
	IonTemperatureBeta          float64 `json:"ionTemperatureBeta" mapstructure:"ionTemperatureBeta" validate:"gt=0"`
	MajorRadius                 float64 `json:"majorRadius" mapstructure:"majorRadius" validate:"gt=0"`
	MinorRadius                 float64 `json:"minorRadius" mapstructure:"minorRadius" validate:"gt=0,ltfield=MajorRadius"`
	PedestalRadius              float64 `json:"pedestalRadius" mapstructure:"pedestalRadius" validate:"gt=0,ltfield=MinorRadius"`
	PlasmaID                    int     `json:"plasmaId" mapstructure:"plasmaId" validate:"gte=0"`
	ShafranovShift              float64 `json:"shafranovShift" mapstructure:"shafranovShift"`
	Triangularity               float64 `json:"triangularity" mapstructure:"triangularity"`
	MinToroidalAngleDeg         float64 `json:"minToroidalAngleDeg,omitempty" mapstructure:"minToroidalAngleDeg" validate:"gte=0,lte=360"`
	MaxToroidalAngleDeg         float64 `json:"maxToroidalAngleDeg,omitempty" mapstructure:"maxToroidalAngleDeg" validate:"gte=0,lte=360"`
}

// Reference returns the ITER-like plasma used by the neutron birth plots.
func Reference() Config {
	return Config{
		Elongation:                  1.557,
		IonDensityOrigin:            1.09e20,
		IonDensityPeakingFactor:     1,
		IonDensityPedestal:          1.09e20,
		IonDensitySeparatrix:        3e19,
		IonTemperatureOrigin:        45.9,
		IonTemperaturePeakingFactor: 8.06,
		IonTemperaturePedestal:      6.09,
		IonTemperatureSeparatrix:    0.1,
		IonTemperatureBeta:          6,
		MajorRadius:                 906.0,
		MinorRadius:                 292.258,
		PedestalRadius:              0.8 * 292.258,
		PlasmaID:                    1,
		ShafranovShift:              44.789,
		Triangularity:               0.270,
		MinToroidalAngleDeg:         0,
		MaxToroidalAngleDeg:         360,
	}
}

var validate = validator.New()

// Validate checks the config, filling the toroidal extent when it was left empty.
func (c *Config) Validate() error {
	if c.MinToroidalAngleDeg == 0 && c.MaxToroidalAngleDeg == 0 {
		c.MaxToroidalAngleDeg = 360
	}
	for name, v := range map[string]float64{
		"elongation":     c.Elongation,
		"shafranovShift": c.ShafranovShift,
		"triangularity":  c.Triangularity,
		"majorRadius":    c.MajorRadius,
		"minorRadius":    c.MinorRadius,
		"pedestalRadius": c.PedestalRadius,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return xerrors.New(ErrInvalidConfig, fmt.Sprintf("%s must be finite, got %v", name, v))
		}
	}
	if err := validate.Struct(c); err != nil {
		return xerrors.New(ErrInvalidConfig, err)
	}
	if c.MaxToroidalAngleDeg <= c.MinToroidalAngleDeg {
		return xerrors.New(ErrInvalidConfig, fmt.Sprintf("toroidal extent [%g, %g] is empty", c.MinToroidalAngleDeg, c.MaxToroidalAngleDeg))
	}
	return nil
}
