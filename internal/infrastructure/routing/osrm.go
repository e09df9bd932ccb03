// Package routing implements the route provider port against an OSRM-style
// public driving-route endpoint.
package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/ike-nanino/tracking/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

// Client fetches driving routes from an OSRM route service. Coordinates on
// the wire are longitude-first, both in the request path and the GeoJSON
// geometry; the client converts to latitude-first on parse.
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

// routeResponse mirrors the subset of the OSRM response the client reads.
type routeResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"routes"`
}

// FetchRoute requests the driving route between origin and destination with
// full GeoJSON geometry. A non-OK provider code or an empty route list is
// domain.ErrNoRoute.
func (c *Client) FetchRoute(ctx context.Context, origin, destination domain.Coordinates) (domain.Route, error) {
	u := fmt.Sprintf("%s/route/v1/driving/%.6f,%.6f;%.6f,%.6f?overview=full&geometries=geojson",
		c.baseURL, origin.Lng, origin.Lat, destination.Lng, destination.Lat)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("routing: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("routing: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("routing: provider returned %d", resp.StatusCode)
	}

	var parsed routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("routing: decode response: %w", err)
	}
	if parsed.Code != "Ok" {
		return nil, fmt.Errorf("routing: provider code %q: %w", parsed.Code, domain.ErrNoRoute)
	}
	if len(parsed.Routes) == 0 {
		return nil, fmt.Errorf("routing: empty route list: %w", domain.ErrNoRoute)
	}

	pairs := parsed.Routes[0].Geometry.Coordinates
	route := make(domain.Route, 0, len(pairs))
	for _, pair := range pairs {
		if len(pair) < 2 {
			return nil, fmt.Errorf("routing: malformed coordinate pair %v", pair)
		}
		// Provider order is (lon, lat); consumers expect (lat, lng).
		route = append(route, domain.Coordinates{Lat: pair[1], Lng: pair[0]})
	}

	c.logger.Debug().Int("points", len(route)).Msg("route fetched")
	return route, nil
}
