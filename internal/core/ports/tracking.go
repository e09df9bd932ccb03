package ports

import (
	"context"

	"github.com/ike-nanino/tracking/internal/core/domain"
)

// ShipmentSource supplies shipment records. The core treats it as an external
// collaborator (a carrier API, or the built-in mock).
type ShipmentSource interface {
	FindByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.Shipment, error)
}

// Marker kinds used on the map view.
const (
	MarkerOrigin      = "origin"
	MarkerDestination = "destination"
	MarkerCurrent     = "current"
)

// MapMarker is a labelled point planted on the map.
type MapMarker struct {
	Kind        string             `json:"kind"`
	Label       string             `json:"label"`
	Coordinates domain.Coordinates `json:"coordinates"`
}

// MapView is everything the map component needs to render: markers, the full
// route (dashed), the completed prefix (solid), and the viewport fit.
type MapView struct {
	Markers   []MapMarker        `json:"markers"`
	Route     domain.Route       `json:"route"`
	Completed domain.Route       `json:"completed"`
	Bounds    domain.Bounds      `json:"bounds"`
	Center    domain.Coordinates `json:"center"`
	Fallback  bool               `json:"fallback"`
	Note      string             `json:"note,omitempty"`
}

// TrackingDetail is the full view returned for one tracking lookup.
// Map is nil when origin or destination could not be geocoded; the shipment
// and timeline still render in that case.
type TrackingDetail struct {
	Shipment domain.Shipment
	Map      *MapView
	// Notes carries non-fatal degradations (e.g. "address not found").
	Notes []string
}

// TrackingService orchestrates a single tracking lookup.
type TrackingService interface {
	Track(ctx context.Context, trackingNumber string) (*TrackingDetail, error)
}
