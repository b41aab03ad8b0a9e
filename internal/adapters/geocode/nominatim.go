package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"weather-locator/internal/domain"
	"weather-locator/internal/platform/obs"
	"weather-locator/internal/ports"
)

var _ ports.ReverseGeocoder = (*NominatimClient)(nil)

// NominatimClient resolves coordinates to place names using the
// OpenStreetMap Nominatim reverse endpoint.
//
// The client is safe for concurrent use.
type NominatimClient struct {
	session   *http.Client
	baseURL   string
	userAgent string
}

func NewNominatimClient(baseURL string, timeout time.Duration) *NominatimClient {
	return &NominatimClient{
		session:   &http.Client{Timeout: timeout},
		baseURL:   baseURL,
		userAgent: "weather-locator/1.0",
	}
}

type reverseResponse struct {
	Address struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		State   string `json:"state"`
	} `json:"address"`
}

// ReverseGeocode returns the locality for the coordinate, preferring the
// most specific available name: city, then town, village, and state.
// Callers decide the fallback when nothing resolves or the call fails; this
// client only reports errors.
func (n *NominatimClient) ReverseGeocode(
	ctx context.Context,
	coord domain.Coordinate,
) (_ string, err error) {
	defer obs.Time(ctx, "nominatim.ReverseGeocode")(&err)

	endpoint := n.baseURL + "/reverse"

	makeReq := func() (*http.Request, error) {
		req, err := n.newRequest(ctx, endpoint)
		if err != nil {
			return nil, err
		}
		q := url.Values{}
		q.Set("lat", strconv.FormatFloat(coord.Latitude, 'f', 6, 64))
		q.Set("lon", strconv.FormatFloat(coord.Longitude, 'f', 6, 64))
		q.Set("format", "json")
		q.Set("zoom", "10")
		q.Set("addressdetails", "1")
		req.URL.RawQuery = q.Encode()
		return req, nil
	}

	resp, err := n.doWithRetry(ctx, makeReq)
	if err != nil {
		return "", fmt.Errorf("reverse geocode %s: %w", coord, err)
	}
	defer resp.Body.Close()

	var decoded reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode reverse geocode response: %w", err)
	}

	addr := decoded.Address
	for _, name := range []string{addr.City, addr.Town, addr.Village, addr.State} {
		if name != "" {
			return name, nil
		}
	}

	return "", fmt.Errorf("no locality in reverse geocode result for %s", coord)
}
