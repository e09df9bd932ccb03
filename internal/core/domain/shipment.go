package domain

import (
	"errors"
	"time"
)

// ShipmentStatus represents the lifecycle state of a shipment.
type ShipmentStatus string

const (
	StatusCreated     ShipmentStatus = "created"
	StatusPickedUp    ShipmentStatus = "picked_up"
	StatusInWarehouse ShipmentStatus = "in_warehouse"
	StatusInTransit   ShipmentStatus = "in_transit"
	StatusDelivered   ShipmentStatus = "delivered"
	StatusCancelled   ShipmentStatus = "cancelled"
)

// validTransitions defines the allowed state machine transitions.
var validTransitions = map[ShipmentStatus][]ShipmentStatus{
	StatusCreated:     {StatusPickedUp, StatusCancelled},
	StatusPickedUp:    {StatusInWarehouse, StatusCancelled},
	StatusInWarehouse: {StatusInTransit, StatusCancelled},
	StatusInTransit:   {StatusDelivered},
}

var ErrShipmentNotFound = errors.New("shipment not found")
var ErrAddressNotFound = errors.New("address not found")
var ErrNoRoute = errors.New("no route between coordinates")

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s ShipmentStatus) CanTransitionTo(next ShipmentStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// StatusChain returns the ordered sequence of statuses a shipment passes
// through on the happy path, ending at (and including) target. An unknown
// target yields only the initial status.
func StatusChain(target ShipmentStatus) []ShipmentStatus {
	full := []ShipmentStatus{StatusCreated, StatusPickedUp, StatusInWarehouse, StatusInTransit, StatusDelivered}
	for i, s := range full {
		if s == target {
			return full[:i+1]
		}
	}
	return full[:1]
}

// Coordinates represents a geographic point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Place is a free-text location name plus its resolved coordinates.
// Coordinates stays nil until (and unless) geocoding succeeds.
type Place struct {
	Name        string       `json:"name"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// TimelineEvent records a single entry of the shipment's tracking history.
type TimelineEvent struct {
	Location  string         `json:"location"`
	Status    ShipmentStatus `json:"status"`
	Timestamp time.Time      `json:"timestamp"`
	Notes     string         `json:"notes,omitempty"`
	Completed bool           `json:"completed"`
}

// Shipment is the tracking record supplied by a carrier source. The core
// never derives it; it only resolves coordinates and a route for it.
type Shipment struct {
	TrackingNumber    string         `json:"tracking_number"`
	Status            ShipmentStatus `json:"status"`
	ServiceType       string         `json:"service_type"`
	CreatedAt         time.Time      `json:"created_at"`
	EstimatedDelivery time.Time      `json:"estimated_delivery"`
	Origin            Place          `json:"origin"`
	Destination       Place          `json:"destination"`
	// Current is the last reported position; an empty name means the carrier
	// reported none (not yet picked up, or already delivered).
	Current  Place           `json:"current"`
	Timeline []TimelineEvent `json:"timeline"`
}
