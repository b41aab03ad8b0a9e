// Package report renders a weather report for terminal output.
package report

import (
	"fmt"
	"io"

	"weather-locator/internal/domain"
)

const fallback = "N/A"

// Render writes the formatted report. Absent numeric values print as "N/A"
// rather than failing the whole report.
func Render(w io.Writer, rep domain.WeatherReport) {
	fmt.Fprintf(w, "City: %s\n", rep.City)
	fmt.Fprintf(w, "Temperature: %s\n", formatFloat(rep.TemperatureC, "%.1f°C"))
	fmt.Fprintf(w, "Humidity: %s\n", formatFloat(rep.HumidityPct, "%.0f%%"))
	fmt.Fprintf(w, "Wind speed: %s\n", formatFloat(rep.WindSpeedMS, "%.1f m/s"))
	fmt.Fprintf(w, "Rain probability (next ~24h): %s\n", formatFloat(rep.RainProbabilityPct, "%.0f%%"))
}

func formatFloat(v *float64, format string) string {
	if v == nil {
		return fallback
	}
	return fmt.Sprintf(format, *v)
}
