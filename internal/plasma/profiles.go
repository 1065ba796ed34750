package plasma

import "math"

// dtReactivity coefficients; temperature in keV, result in m^3/s.
var dtCoeffs = [7]float64{2.5663271e-18, 19.983026, 2.5077133e-2, 2.5773408e-3, 6.1880463e-5, 6.6024089e-2, 8.1215505e-3}

// ionDensity returns the ion density (m^-3) at minor radius r (cm).
// Inside the pedestal the profile is parabolic raised to the peaking factor,
// outside it falls linearly to the separatrix value.
func (c *Config) ionDensity(r float64) float64 {
	if r <= c.PedestalRadius {
		p := math.Pow(1-math.Pow(r/c.PedestalRadius, 2), c.IonDensityPeakingFactor)
		return c.IonDensityPedestal + (c.IonDensityOrigin-c.IonDensityPedestal)*p
	}
	return c.IonDensitySeparatrix +
		(c.IonDensityPedestal-c.IonDensitySeparatrix)*(c.MinorRadius-r)/(c.MinorRadius-c.PedestalRadius)
}

// ionTemperature returns the ion temperature (keV) at minor radius r (cm).
func (c *Config) ionTemperature(r float64) float64 {
	if r <= c.PedestalRadius {
		p := math.Pow(1-math.Pow(r/c.PedestalRadius, c.IonTemperatureBeta), c.IonTemperaturePeakingFactor)
		return c.IonTemperaturePedestal + (c.IonTemperatureOrigin-c.IonTemperaturePedestal)*p
	}
	return c.IonTemperatureSeparatrix +
		(c.IonTemperaturePedestal-c.IonTemperatureSeparatrix)*(c.MinorRadius-r)/(c.MinorRadius-c.PedestalRadius)
}

// dtReactivity is the Maxwell-averaged D-T fusion reactivity <σv> at ion temperature t (keV).
func dtReactivity(t float64) float64 {
	if t <= 0 {
		return 0
	}
	c := dtCoeffs
	u := 1 - t*(c[2]+t*(c[3]-c[4]*t))/(1+t*(c[5]+c[6]*t))
	sv := c[0] / (math.Pow(u, 5.0/6.0) * math.Pow(t, 2.0/3.0))
	return sv * math.Exp(-c[1]*math.Cbrt(u/t))
}
