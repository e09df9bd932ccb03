package ports

import (
	"context"

	"github.com/ike-nanino/tracking/internal/core/domain"
)

// RouteProvider fetches a driving route with full geometry between two
// coordinates. The returned route is ordered origin to destination,
// latitude-first.
type RouteProvider interface {
	FetchRoute(ctx context.Context, origin, destination domain.Coordinates) (domain.Route, error)
}

// ResolveRouteInput carries the parameters for a route resolution.
type ResolveRouteInput struct {
	Origin      domain.Coordinates
	Destination domain.Coordinates
	// Current is the last reported position, when known. It drives the
	// completed-prefix projection; when nil the prefix defaults to the first
	// 60% of the route.
	Current *domain.Coordinates
}

// ResolvedRoute is the outcome of a route resolution. Points is never empty
// for non-degenerate origin/destination: provider failures are absorbed into
// a synthesized fallback route.
type ResolvedRoute struct {
	// Points is the full route, drawn as the dashed line.
	Points domain.Route
	// Completed is the traversed prefix of Points, drawn solid.
	Completed domain.Route
	// Bounds fits the viewport to the full route.
	Bounds domain.Bounds
	// Fallback reports that the routing provider failed and Points was
	// synthesized instead of fetched.
	Fallback bool
	// Note is a best-effort message to display alongside a fallback route.
	Note string
}

// RouteService resolves routes. Resolution never fails: errors from the
// provider degrade to the synthesized fallback path.
type RouteService interface {
	Resolve(ctx context.Context, input ResolveRouteInput) ResolvedRoute
}
