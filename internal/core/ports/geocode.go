package ports

import (
	"context"

	"github.com/ike-nanino/tracking/internal/core/domain"
)

// Geocoder resolves a free-text place name to coordinates.
// Implementations return domain.ErrAddressNotFound when the provider has no
// candidate for the name; any other error is a transport or parse failure.
type Geocoder interface {
	Geocode(ctx context.Context, name string) (domain.Coordinates, error)
}

// GeocodeService is the cached lookup used by the rest of the application.
type GeocodeService interface {
	Lookup(ctx context.Context, name string) (domain.Coordinates, error)
}
