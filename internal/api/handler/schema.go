package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type coordinatesRequest struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng float64 `json:"lng" validate:"gte=-180,lte=180"`
}

type resolveRouteRequest struct {
	Origin      coordinatesRequest  `json:"origin"      validate:"required"`
	Destination coordinatesRequest  `json:"destination" validate:"required"`
	Current     *coordinatesRequest `json:"current"`
}

// --- Response types ---
// Response-only types owned by the transport layer. These are intentionally
// separate from ports/domain types so the JSON contract is not coupled to
// internal service changes.

type coordinatesResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type boundsResponse struct {
	SouthWest coordinatesResponse `json:"south_west"`
	NorthEast coordinatesResponse `json:"north_east"`
}

type markerResponse struct {
	Kind        string              `json:"kind"`
	Label       string              `json:"label"`
	Coordinates coordinatesResponse `json:"coordinates"`
}

type resolveRouteResponse struct {
	// Route is the full path, rendered dashed; Completed is the traversed
	// prefix, rendered solid.
	Route     []coordinatesResponse `json:"route"`
	Completed []coordinatesResponse `json:"completed"`
	Bounds    boundsResponse        `json:"bounds"`
	Center    coordinatesResponse   `json:"center"`
	Fallback  bool                  `json:"fallback"`
	Note      string                `json:"note,omitempty"`
}

type mapViewResponse struct {
	Markers   []markerResponse      `json:"markers"`
	Route     []coordinatesResponse `json:"route"`
	Completed []coordinatesResponse `json:"completed"`
	Bounds    boundsResponse        `json:"bounds"`
	Center    coordinatesResponse   `json:"center"`
	Fallback  bool                  `json:"fallback"`
	Note      string                `json:"note,omitempty"`
}

type placeResponse struct {
	Name        string               `json:"name"`
	Coordinates *coordinatesResponse `json:"coordinates,omitempty"`
}

// timelineEventResponse carries display-ready date and time strings alongside
// the raw timestamp, matching what the tracking page renders.
type timelineEventResponse struct {
	Location  string    `json:"location"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp,omitzero"`
	Date      string    `json:"date,omitempty"`
	Time      string    `json:"time,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Completed bool      `json:"completed"`
}

type trackingResponse struct {
	TrackingNumber    string                  `json:"tracking_number"`
	Status            string                  `json:"status"`
	ServiceType       string                  `json:"service_type"`
	CreatedAt         time.Time               `json:"created_at"`
	EstimatedDelivery time.Time               `json:"estimated_delivery"`
	Origin            placeResponse           `json:"origin"`
	Destination       placeResponse           `json:"destination"`
	Current           *placeResponse          `json:"current,omitempty"`
	Timeline          []timelineEventResponse `json:"timeline"`
	Map               *mapViewResponse        `json:"map,omitempty"`
	Notes             []string                `json:"notes,omitempty"`
}

type geocodeResponse struct {
	Query string  `json:"query"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
}
