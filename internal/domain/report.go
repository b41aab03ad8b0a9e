package domain

// WeatherReport holds current conditions plus a short-term rain estimate
// for a single city. Numeric fields are pointers because the upstream API
// may omit any of them; absent values render as "N/A".
type WeatherReport struct {
	City               string
	TemperatureC       *float64
	HumidityPct        *float64
	WindSpeedMS        *float64
	RainProbabilityPct *float64
}
