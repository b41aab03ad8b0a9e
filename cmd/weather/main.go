package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"weather-locator/internal/adapters/weather"
	"weather-locator/internal/config"
	"weather-locator/internal/platform/obs"
	"weather-locator/internal/report"

	"github.com/joho/godotenv"
)

// main implements the city-based CLI: fetch current weather plus the
// short-term rain probability for a named city and print the report.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	var city, apiKey string
	flag.StringVar(&city, "city", "", "city name, e.g. 'London,UK' or 'Mumbai' (required)")
	flag.StringVar(&city, "c", "", "shorthand for -city")
	flag.StringVar(&apiKey, "api-key", "", "OpenWeatherMap API key (overrides OPENWEATHER_API_KEY)")
	flag.Parse()

	if strings.TrimSpace(city) == "" {
		fmt.Fprintln(os.Stderr, "Error: -city is required")
		flag.Usage()
		os.Exit(1)
	}

	key := config.APIKey(apiKey)
	if key == "" {
		fmt.Fprintln(os.Stderr, "Error: an OpenWeatherMap API key is required (-api-key or OPENWEATHER_API_KEY)")
		os.Exit(1)
	}

	provider, err := weather.NewOpenWeatherClient(
		key,
		config.Get("OPENWEATHER_BASE_URL", config.DefaultOpenWeatherBaseURL),
		config.GetDuration("HTTP_TIMEOUT", config.DefaultHTTPTimeout),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx := obs.WithRequestID(context.Background())
	rep, err := provider.Report(ctx, city)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	report.Render(os.Stdout, rep)
}
