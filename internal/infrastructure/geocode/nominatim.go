// Package geocode implements the geocoding port against a Nominatim-style
// public address-search endpoint.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/ike-nanino/tracking/internal/core/domain"
)

const (
	defaultTimeout = 10 * time.Second
	userAgent      = "tracking-api/1.0"
)

// Client queries an address-search endpoint compatible with the Nominatim
// /search API. Candidates carry latitude/longitude as strings; the first
// candidate wins, an empty candidate list is domain.ErrAddressNotFound.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

func NewClient(baseURL string, logger zerolog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     logger,
	}
}

// searchResult mirrors the provider's candidate shape. Lat/Lon arrive as
// strings and are parsed as floating point.
type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode resolves a free-text place name to coordinates.
func (c *Client) Geocode(ctx context.Context, name string) (domain.Coordinates, error) {
	q := url.Values{}
	q.Set("q", name)
	q.Set("format", "json")
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode: build request: %w", err)
	}
	// Nominatim's usage policy requires an identifying User-Agent.
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Coordinates{}, fmt.Errorf("geocode: provider returned %d", resp.StatusCode)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode: decode response: %w", err)
	}
	if len(results) == 0 {
		return domain.Coordinates{}, domain.ErrAddressNotFound
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode: parse latitude %q: %w", results[0].Lat, err)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode: parse longitude %q: %w", results[0].Lon, err)
	}

	c.logger.Debug().Str("name", name).Str("match", results[0].DisplayName).
		Float64("lat", lat).Float64("lng", lng).Msg("geocoded")

	return domain.Coordinates{Lat: lat, Lng: lng}, nil
}
