// Package carrier supplies shipment records. There is no live carrier
// integration; the only implementation is a deterministic mock where the
// tracking number seeds every generated field, making repeat lookups stable.
package carrier

import (
	"context"
	"hash/fnv"
	"math/rand"
	"regexp"
	"time"

	"github.com/ike-nanino/tracking/internal/core/domain"
)

// trackingNumberPattern accepts the common carrier shapes: groups of
// uppercase letters and digits, optionally dash-separated, 8 to 20 chars.
var trackingNumberPattern = regexp.MustCompile(`^[A-Z0-9]+(?:-[A-Z0-9]+)*$`)

// cities are geocodable free-text place names used for generated shipments.
var cities = []string{
	"Mexico City, Mexico",
	"Guadalajara, Mexico",
	"Monterrey, Mexico",
	"Puebla, Mexico",
	"Berlin, Germany",
	"Hamburg, Germany",
	"Paris, France",
	"Lyon, France",
	"Madrid, Spain",
	"Barcelona, Spain",
	"Accra, Ghana",
	"Kumasi, Ghana",
	"London, United Kingdom",
	"Manchester, United Kingdom",
	"New York, USA",
	"Chicago, USA",
}

var serviceTypes = []string{"same_day", "next_day", "standard"}

// statusNotes are the timeline annotations per status.
var statusNotes = map[domain.ShipmentStatus]string{
	domain.StatusCreated:     "Shipment information received",
	domain.StatusPickedUp:    "Package collected by courier",
	domain.StatusInWarehouse: "Arrived at sorting facility",
	domain.StatusInTransit:   "Departed facility, on the way",
	domain.StatusDelivered:   "Delivered to recipient",
}

// MockSource is a deterministic in-memory shipment source.
type MockSource struct {
	now func() time.Time
}

func NewMockSource() *MockSource {
	return &MockSource{now: time.Now}
}

// NewMockSourceAt returns a source with a fixed clock, for tests.
func NewMockSourceAt(now func() time.Time) *MockSource {
	return &MockSource{now: now}
}

// FindByTrackingNumber generates the shipment for a tracking number. The same
// number always yields the same places, status, and timeline shape; numbers
// that fail the format check are domain.ErrShipmentNotFound.
func (m *MockSource) FindByTrackingNumber(_ context.Context, trackingNumber string) (*domain.Shipment, error) {
	if len(trackingNumber) < 8 || len(trackingNumber) > 20 || !trackingNumberPattern.MatchString(trackingNumber) {
		return nil, domain.ErrShipmentNotFound
	}

	rng := rand.New(rand.NewSource(seed(trackingNumber)))

	originIdx := rng.Intn(len(cities))
	destIdx := rng.Intn(len(cities) - 1)
	if destIdx >= originIdx {
		destIdx++ // destination never equals origin
	}
	origin := cities[originIdx]
	destination := cities[destIdx]

	status := pickStatus(rng)
	chain := domain.StatusChain(status)

	now := m.now().UTC()
	createdAt := now.Add(-time.Duration(24+rng.Intn(72)) * time.Hour)
	stepGap := now.Sub(createdAt) / time.Duration(len(chain)+1)

	shipment := &domain.Shipment{
		TrackingNumber:    trackingNumber,
		Status:            status,
		ServiceType:       serviceTypes[rng.Intn(len(serviceTypes))],
		CreatedAt:         createdAt,
		EstimatedDelivery: createdAt.AddDate(0, 0, 3+rng.Intn(4)),
		Origin:            domain.Place{Name: origin},
		Destination:       domain.Place{Name: destination},
	}

	// A current position only exists mid-journey; pick a waypoint city that
	// is neither endpoint.
	if status == domain.StatusInTransit {
		shipment.Current = domain.Place{Name: waypoint(rng, originIdx, destIdx)}
	}

	for i, s := range chain {
		shipment.Timeline = append(shipment.Timeline, domain.TimelineEvent{
			Location:  eventLocation(s, shipment),
			Status:    s,
			Timestamp: createdAt.Add(time.Duration(i+1) * stepGap),
			Notes:     statusNotes[s],
			Completed: true,
		})
	}
	// Remaining legs of the journey appear as pending timeline entries.
	for _, s := range domain.StatusChain(domain.StatusDelivered)[len(chain):] {
		shipment.Timeline = append(shipment.Timeline, domain.TimelineEvent{
			Location:  eventLocation(s, shipment),
			Status:    s,
			Notes:     statusNotes[s],
			Completed: false,
		})
	}

	return shipment, nil
}

func seed(trackingNumber string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(trackingNumber))
	return int64(h.Sum64())
}

// pickStatus weights the mid-journey states so most mock lookups have a map
// with a current position worth drawing.
func pickStatus(rng *rand.Rand) domain.ShipmentStatus {
	switch n := rng.Intn(10); {
	case n < 1:
		return domain.StatusCreated
	case n < 3:
		return domain.StatusPickedUp
	case n < 5:
		return domain.StatusInWarehouse
	case n < 8:
		return domain.StatusInTransit
	default:
		return domain.StatusDelivered
	}
}

func waypoint(rng *rand.Rand, originIdx, destIdx int) string {
	for {
		i := rng.Intn(len(cities))
		if i != originIdx && i != destIdx {
			return cities[i]
		}
	}
}

func eventLocation(s domain.ShipmentStatus, shipment *domain.Shipment) string {
	switch s {
	case domain.StatusCreated, domain.StatusPickedUp:
		return shipment.Origin.Name
	case domain.StatusInTransit:
		if shipment.Current.Name != "" {
			return shipment.Current.Name
		}
		return shipment.Origin.Name
	default:
		return shipment.Destination.Name
	}
}
