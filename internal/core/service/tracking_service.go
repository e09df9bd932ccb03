package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ike-nanino/tracking/internal/core/domain"
	"github.com/ike-nanino/tracking/internal/core/ports"
)

// TrackingService assembles the full view for one tracking lookup: the
// shipment record, geocoded places, and the resolved route with its map view.
type TrackingService struct {
	source   ports.ShipmentSource
	geocoder ports.GeocodeService
	routes   ports.RouteService
	logger   zerolog.Logger
}

func NewTrackingService(
	source ports.ShipmentSource,
	geocoder ports.GeocodeService,
	routes ports.RouteService,
	logger zerolog.Logger,
) *TrackingService {
	return &TrackingService{source: source, geocoder: geocoder, routes: routes, logger: logger}
}

// Track looks up a tracking number and resolves its map view.
//
// Places are geocoded sequentially (origin, destination, current). A failed
// origin or destination lookup omits the map and reports a note; a failed
// current lookup just drops the current marker and the completed prefix
// defaults to the 60% rule.
func (s *TrackingService) Track(ctx context.Context, trackingNumber string) (*ports.TrackingDetail, error) {
	shipment, err := s.source.FindByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		return nil, fmt.Errorf("track %s: %w", trackingNumber, err)
	}

	detail := &ports.TrackingDetail{Shipment: *shipment}

	detail.Shipment.Origin.Coordinates = s.geocodePlace(ctx, shipment.Origin.Name)
	detail.Shipment.Destination.Coordinates = s.geocodePlace(ctx, shipment.Destination.Name)
	if shipment.Current.Name != "" {
		detail.Shipment.Current.Coordinates = s.geocodePlace(ctx, shipment.Current.Name)
	}

	origin := detail.Shipment.Origin
	destination := detail.Shipment.Destination
	if origin.Coordinates == nil || destination.Coordinates == nil {
		detail.Notes = append(detail.Notes, "address not found, map unavailable")
		return detail, nil
	}

	resolved := s.routes.Resolve(ctx, ports.ResolveRouteInput{
		Origin:      *origin.Coordinates,
		Destination: *destination.Coordinates,
		Current:     detail.Shipment.Current.Coordinates,
	})

	view := &ports.MapView{
		Route:     resolved.Points,
		Completed: resolved.Completed,
		Fallback:  resolved.Fallback,
		Note:      resolved.Note,
		Markers: []ports.MapMarker{
			{Kind: ports.MarkerOrigin, Label: origin.Name, Coordinates: *origin.Coordinates},
			{Kind: ports.MarkerDestination, Label: destination.Name, Coordinates: *destination.Coordinates},
		},
	}
	if cur := detail.Shipment.Current; cur.Coordinates != nil {
		view.Markers = append(view.Markers, ports.MapMarker{
			Kind: ports.MarkerCurrent, Label: cur.Name, Coordinates: *cur.Coordinates,
		})
	}

	// Fit the viewport to the full route; fall back to the raw marker points
	// when resolution degenerated to nothing.
	if bounds, ok := domain.FitBounds(resolved.Points); ok {
		view.Bounds = bounds
	} else if bounds, ok := domain.FitBounds(markerPoints(view.Markers)); ok {
		view.Bounds = bounds
	}
	view.Center = view.Bounds.Center()

	detail.Map = view
	return detail, nil
}

// geocodePlace resolves one place name, returning nil when the lookup fails.
// Failures are already logged and counted by the geocode service.
func (s *TrackingService) geocodePlace(ctx context.Context, name string) *domain.Coordinates {
	coords, err := s.geocoder.Lookup(ctx, name)
	if err != nil {
		return nil
	}
	return &coords
}

func markerPoints(markers []ports.MapMarker) []domain.Coordinates {
	points := make([]domain.Coordinates, 0, len(markers))
	for _, m := range markers {
		points = append(points, m.Coordinates)
	}
	return points
}
