package service

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/ike-nanino/tracking/internal/api/metrics"
	"github.com/ike-nanino/tracking/internal/core/domain"
	"github.com/ike-nanino/tracking/internal/core/ports"
)

const (
	// fallbackSteps is the number of interpolation increments for a
	// synthesized route, yielding fallbackSteps+1 points.
	fallbackSteps = 20
	// fallbackAmplitude scales the sine-shaped lateral offset relative to the
	// coordinate span, so the fallback reads as a road rather than a ruler.
	fallbackAmplitude = 0.02
	// defaultProgress is the completed fraction assumed when no current
	// position is known.
	defaultProgress = 0.6
)

// RouteResolver produces a drawable route and its completed prefix.
// Provider failures never escape: they degrade to a synthesized path.
type RouteResolver struct {
	provider ports.RouteProvider
	logger   zerolog.Logger
}

func NewRouteResolver(provider ports.RouteProvider, logger zerolog.Logger) *RouteResolver {
	return &RouteResolver{provider: provider, logger: logger}
}

// Resolve fetches the driving route between origin and destination and
// projects the completed prefix onto it. On any provider failure (network,
// non-OK status, no route) the route is synthesized instead and the result is
// flagged as a fallback.
func (r *RouteResolver) Resolve(ctx context.Context, in ports.ResolveRouteInput) ports.ResolvedRoute {
	start := time.Now()
	defer func() {
		metrics.RouteResolveDuration.Observe(time.Since(start).Seconds())
	}()

	var out ports.ResolvedRoute

	points, err := r.provider.FetchRoute(ctx, in.Origin, in.Destination)
	if err != nil || len(points) == 0 {
		r.logger.Warn().Err(err).
			Float64("origin_lat", in.Origin.Lat).
			Float64("origin_lng", in.Origin.Lng).
			Float64("dest_lat", in.Destination.Lat).
			Float64("dest_lng", in.Destination.Lng).
			Msg("route provider failed, synthesizing fallback route")
		metrics.RouteResolutionsTotal.WithLabelValues("fallback").Inc()

		points = SynthesizeRoute(in.Origin, in.Destination, fallbackSteps)
		out.Fallback = true
		out.Note = "road route unavailable, showing approximate path"
	} else {
		metrics.RouteResolutionsTotal.WithLabelValues("provider").Inc()
	}

	out.Points = points
	out.Completed = CompletedPrefix(points, in.Current)
	out.Bounds, _ = domain.FitBounds(points)
	return out
}

// SynthesizeRoute linearly interpolates between origin and destination in
// steps increments, bending each intermediate point by a sine-shaped lateral
// offset. Endpoints land exactly on origin and destination (sin(0)=sin(pi)=0).
func SynthesizeRoute(origin, destination domain.Coordinates, steps int) domain.Route {
	if steps < 1 {
		steps = 1
	}
	latSpan := destination.Lat - origin.Lat
	lngSpan := destination.Lng - origin.Lng

	route := make(domain.Route, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		bend := math.Sin(t * math.Pi)
		route = append(route, domain.Coordinates{
			Lat: origin.Lat + latSpan*t + bend*lngSpan*fallbackAmplitude,
			Lng: origin.Lng + lngSpan*t + bend*latSpan*fallbackAmplitude,
		})
	}
	return route
}

// CompletedPrefix returns the traversed prefix of route. With a current
// position it truncates at the nearest route point, inclusive; the scan uses
// squared distance in coordinate-degree space, an intentional approximation
// of the geodesic metric that holds up for short segments. Ties go to the
// first index in scan order. Without a current position the prefix is the
// first floor(len*0.6) points.
func CompletedPrefix(route domain.Route, current *domain.Coordinates) domain.Route {
	if len(route) == 0 {
		return nil
	}
	if current == nil {
		return route[:int(math.Floor(float64(len(route))*defaultProgress))]
	}

	nearest := 0
	best := math.MaxFloat64
	for i, p := range route {
		dLat := p.Lat - current.Lat
		dLng := p.Lng - current.Lng
		if d := dLat*dLat + dLng*dLng; d < best {
			nearest = i
			best = d
		}
	}
	return route[:nearest+1]
}
