package weather

import "math"

// The forecast API reports in 3-hour steps, so 8 entries cover ~24 hours.
const forecastWindow = 8

// maxRainProbability derives the rain estimate: the maximum precipitation
// probability across the near-term forecast window, as a 0-100 percentage.
//
// Upstream `pop` values are fractions in [0, 1] but arrive dirty in practice:
// a missing or null value counts as 0, a negative value counts as 0, a value
// in (1, 100] is taken as a percent and scaled down, and a value above 100
// is invalid and discarded. Returns nil when no usable entries exist.
func maxRainProbability(entries []forecastEntry) *float64 {
	if len(entries) > forecastWindow {
		entries = entries[:forecastWindow]
	}

	pops := make([]float64, 0, len(entries))
	for _, e := range entries {
		p := 0.0
		if e.Pop != nil {
			p = *e.Pop
		}

		switch {
		case p > 100:
			continue
		case p > 1:
			p /= 100
		case p < 0:
			p = 0
		}

		pops = append(pops, p)
	}

	if len(pops) == 0 {
		return nil
	}

	max := pops[0]
	for _, p := range pops[1:] {
		if p > max {
			max = p
		}
	}

	pct := math.Round(max * 100)
	return &pct
}
