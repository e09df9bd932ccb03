package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ike-nanino/tracking/internal/api/metrics"
	"github.com/ike-nanino/tracking/internal/core/domain"
	"github.com/ike-nanino/tracking/internal/core/ports"
)

// TrackingHandler handles HTTP requests for tracking lookups.
type TrackingHandler struct {
	service ports.TrackingService
}

func NewTrackingHandler(service ports.TrackingService) *TrackingHandler {
	return &TrackingHandler{service: service}
}

// Get handles GET /v1/tracking/:tracking_number.
//
// @Summary      Track a shipment
// @Description  Returns the shipment record, its timeline, and the resolved map view (route, completed prefix, markers, bounds).
// @Tags         tracking
// @Produce      json
// @Param        tracking_number  path      string  true  "Tracking number (e.g. TRK-7A8B9C2D)"
// @Success      200              {object}  trackingResponse
// @Failure      404              {object}  errorResponse
// @Failure      500              {object}  errorResponse
// @Router       /v1/tracking/{tracking_number} [get]
func (h *TrackingHandler) Get(c echo.Context) error {
	trackingNumber := c.Param("tracking_number")

	detail, err := h.service.Track(c.Request().Context(), trackingNumber)
	if err != nil {
		if errors.Is(err, domain.ErrShipmentNotFound) {
			metrics.TrackingLookupsTotal.WithLabelValues("not_found").Inc()
			return c.JSON(http.StatusNotFound, errorResponse{Error: "shipment not found"})
		}
		return err
	}
	metrics.TrackingLookupsTotal.WithLabelValues("ok").Inc()

	return c.JSON(http.StatusOK, toTrackingResponse(detail))
}

// --- Detail → Response mapping ---

func toTrackingResponse(detail *ports.TrackingDetail) trackingResponse {
	s := detail.Shipment
	resp := trackingResponse{
		TrackingNumber:    s.TrackingNumber,
		Status:            string(s.Status),
		ServiceType:       s.ServiceType,
		CreatedAt:         s.CreatedAt,
		EstimatedDelivery: s.EstimatedDelivery,
		Origin:            toPlace(s.Origin),
		Destination:       toPlace(s.Destination),
		Notes:             detail.Notes,
	}
	if s.Current.Name != "" {
		cur := toPlace(s.Current)
		resp.Current = &cur
	}

	for _, ev := range s.Timeline {
		item := timelineEventResponse{
			Location:  ev.Location,
			Status:    string(ev.Status),
			Timestamp: ev.Timestamp,
			Notes:     ev.Notes,
			Completed: ev.Completed,
		}
		if !ev.Timestamp.IsZero() {
			item.Date = ev.Timestamp.Format("Jan 2, 2006")
			item.Time = ev.Timestamp.Format("3:04 PM")
		}
		resp.Timeline = append(resp.Timeline, item)
	}

	if detail.Map != nil {
		resp.Map = toMapView(detail.Map)
	}
	return resp
}

func toPlace(p domain.Place) placeResponse {
	out := placeResponse{Name: p.Name}
	if p.Coordinates != nil {
		out.Coordinates = &coordinatesResponse{Lat: p.Coordinates.Lat, Lng: p.Coordinates.Lng}
	}
	return out
}

func toMapView(view *ports.MapView) *mapViewResponse {
	out := &mapViewResponse{
		Route:     toCoordinateList(view.Route),
		Completed: toCoordinateList(view.Completed),
		Bounds:    toBounds(view.Bounds),
		Center:    coordinatesResponse{Lat: view.Center.Lat, Lng: view.Center.Lng},
		Fallback:  view.Fallback,
		Note:      view.Note,
	}
	for _, m := range view.Markers {
		out.Markers = append(out.Markers, markerResponse{
			Kind:        m.Kind,
			Label:       m.Label,
			Coordinates: coordinatesResponse{Lat: m.Coordinates.Lat, Lng: m.Coordinates.Lng},
		})
	}
	return out
}

func toCoordinateList(route domain.Route) []coordinatesResponse {
	out := make([]coordinatesResponse, 0, len(route))
	for _, p := range route {
		out = append(out, coordinatesResponse{Lat: p.Lat, Lng: p.Lng})
	}
	return out
}

func toBounds(b domain.Bounds) boundsResponse {
	return boundsResponse{
		SouthWest: coordinatesResponse{Lat: b.SouthWest.Lat, Lng: b.SouthWest.Lng},
		NorthEast: coordinatesResponse{Lat: b.NorthEast.Lat, Lng: b.NorthEast.Lng},
	}
}
