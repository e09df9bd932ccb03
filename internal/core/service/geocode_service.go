package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ike-nanino/tracking/internal/api/metrics"
	"github.com/ike-nanino/tracking/internal/core/domain"
	"github.com/ike-nanino/tracking/internal/core/ports"
)

// GeocodeCache abstracts the read-through lookup cache (Redis).
// Get returns (nil, nil) on a miss.
type GeocodeCache interface {
	Get(ctx context.Context, name string) (*domain.Coordinates, error)
	Set(ctx context.Context, name string, coords domain.Coordinates) error
}

// GeocodeService resolves place names through an optional cache in front of
// the provider. Cache failures are logged and ignored; only the provider
// decides between a hit and domain.ErrAddressNotFound.
type GeocodeService struct {
	provider ports.Geocoder
	cache    GeocodeCache // nil disables caching
	logger   zerolog.Logger
}

func NewGeocodeService(provider ports.Geocoder, cache GeocodeCache, logger zerolog.Logger) *GeocodeService {
	return &GeocodeService{provider: provider, cache: cache, logger: logger}
}

// Lookup resolves a free-text place name to coordinates.
func (s *GeocodeService) Lookup(ctx context.Context, name string) (domain.Coordinates, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Coordinates{}, domain.ErrAddressNotFound
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, name)
		if err != nil {
			s.logger.Warn().Err(err).Str("name", name).Msg("geocode cache read failed")
		} else if cached != nil {
			metrics.GeocodeCacheTotal.WithLabelValues("hit").Inc()
			return *cached, nil
		}
		metrics.GeocodeCacheTotal.WithLabelValues("miss").Inc()
	}

	coords, err := s.provider.Geocode(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrAddressNotFound) {
			metrics.GeocodeLookupsTotal.WithLabelValues("not_found").Inc()
			s.logger.Debug().Str("name", name).Msg("address not found")
		} else {
			metrics.GeocodeLookupsTotal.WithLabelValues("error").Inc()
			s.logger.Error().Err(err).Str("name", name).Msg("geocoding failed")
		}
		return domain.Coordinates{}, err
	}
	metrics.GeocodeLookupsTotal.WithLabelValues("ok").Inc()

	if s.cache != nil {
		if err := s.cache.Set(ctx, name, coords); err != nil {
			s.logger.Warn().Err(err).Str("name", name).Msg("geocode cache write failed")
		}
	}
	return coords, nil
}
