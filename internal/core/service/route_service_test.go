package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ike-nanino/tracking/internal/core/domain"
	"github.com/ike-nanino/tracking/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stub route provider
// ---------------------------------------------------------------------------

type stubRouteProvider struct {
	route domain.Route
	err   error
	calls int
}

func (p *stubRouteProvider) FetchRoute(_ context.Context, _, _ domain.Coordinates) (domain.Route, error) {
	p.calls++
	return p.route, p.err
}

var (
	berlin = domain.Coordinates{Lat: 52.52, Lng: 13.405}
	paris  = domain.Coordinates{Lat: 48.8566, Lng: 2.3522}
)

const tolerance = 1e-9

func almostEqual(a, b domain.Coordinates) bool {
	return math.Abs(a.Lat-b.Lat) < tolerance && math.Abs(a.Lng-b.Lng) < tolerance
}

// ---------------------------------------------------------------------------
// SynthesizeRoute tests
// ---------------------------------------------------------------------------

func TestSynthesizeRoute_PointCountAndEndpoints(t *testing.T) {
	route := SynthesizeRoute(berlin, paris, 20)

	if len(route) != 21 {
		t.Fatalf("expected steps+1 = 21 points, got %d", len(route))
	}
	if !almostEqual(route[0], berlin) {
		t.Errorf("first point must equal origin: got %+v", route[0])
	}
	if !almostEqual(route[20], paris) {
		t.Errorf("last point must equal destination: got %+v", route[20])
	}
}

func TestSynthesizeRoute_IntermediatePointsBend(t *testing.T) {
	route := SynthesizeRoute(berlin, paris, 20)

	// The midpoint must deviate from the straight chord: that is the whole
	// point of the sine offset.
	mid := route[10]
	chordMid := domain.Coordinates{
		Lat: (berlin.Lat + paris.Lat) / 2,
		Lng: (berlin.Lng + paris.Lng) / 2,
	}
	if almostEqual(mid, chordMid) {
		t.Errorf("midpoint %+v must not lie on the straight line", mid)
	}

	// The deviation amplitude stays proportional to the span.
	latSpan := paris.Lat - berlin.Lat
	lngSpan := paris.Lng - berlin.Lng
	if d := math.Abs(mid.Lat - chordMid.Lat); d > math.Abs(lngSpan)*fallbackAmplitude+tolerance {
		t.Errorf("lat deviation %f exceeds amplitude bound", d)
	}
	if d := math.Abs(mid.Lng - chordMid.Lng); d > math.Abs(latSpan)*fallbackAmplitude+tolerance {
		t.Errorf("lng deviation %f exceeds amplitude bound", d)
	}
}

func TestSynthesizeRoute_DegenerateEndpoints(t *testing.T) {
	route := SynthesizeRoute(berlin, berlin, 20)

	if len(route) != 21 {
		t.Fatalf("expected 21 points, got %d", len(route))
	}
	for i, p := range route {
		if !almostEqual(p, berlin) {
			t.Fatalf("point %d drifted from the coincident endpoints: %+v", i, p)
		}
	}
}

// ---------------------------------------------------------------------------
// CompletedPrefix tests
// ---------------------------------------------------------------------------

func straightRoute(n int) domain.Route {
	route := make(domain.Route, 0, n)
	for i := 0; i < n; i++ {
		route = append(route, domain.Coordinates{Lat: float64(i), Lng: float64(i)})
	}
	return route
}

func TestCompletedPrefix_CurrentOnRoutePoint(t *testing.T) {
	route := straightRoute(10)

	for _, k := range []int{0, 4, 9} {
		current := route[k]
		got := CompletedPrefix(route, &current)
		if len(got) != k+1 {
			t.Errorf("current=route[%d]: expected prefix of %d points, got %d", k, k+1, len(got))
		}
	}
}

func TestCompletedPrefix_NearestPointWins(t *testing.T) {
	route := straightRoute(10)
	near3 := domain.Coordinates{Lat: 3.1, Lng: 2.9}

	got := CompletedPrefix(route, &near3)
	if len(got) != 4 {
		t.Errorf("expected prefix through index 3 (4 points), got %d", len(got))
	}
}

func TestCompletedPrefix_TieBreaksOnFirstIndex(t *testing.T) {
	// Points 0 and 2 are equidistant from current; scan order must pick 0.
	route := domain.Route{
		{Lat: 0, Lng: 0},
		{Lat: 5, Lng: 5},
		{Lat: 2, Lng: 0},
	}
	current := domain.Coordinates{Lat: 1, Lng: 0}

	got := CompletedPrefix(route, &current)
	if len(got) != 1 {
		t.Errorf("tie must resolve to the first index: expected 1 point, got %d", len(got))
	}
}

func TestCompletedPrefix_DefaultSixtyPercent(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{10, 6},
		{21, 12}, // floor(21*0.6) = floor(12.6)
		{1, 0},
		{5, 3},
	}
	for _, tc := range cases {
		got := CompletedPrefix(straightRoute(tc.n), nil)
		if len(got) != tc.want {
			t.Errorf("n=%d: expected floor(n*0.6)=%d points, got %d", tc.n, tc.want, len(got))
		}
	}
}

func TestCompletedPrefix_EmptyRoute(t *testing.T) {
	if got := CompletedPrefix(nil, &berlin); got != nil {
		t.Errorf("empty route must yield nil prefix, got %v", got)
	}
}

func TestCompletedPrefix_IsViewOfRoute(t *testing.T) {
	route := straightRoute(10)
	got := CompletedPrefix(route, nil)

	// The prefix is a derived view of the same backing points, not a copy
	// with different values.
	for i := range got {
		if got[i] != route[i] {
			t.Fatalf("prefix[%d] = %+v diverges from route[%d] = %+v", i, got[i], i, route[i])
		}
	}
}

// ---------------------------------------------------------------------------
// RouteResolver tests
// ---------------------------------------------------------------------------

func TestRouteResolver_ProviderRoute(t *testing.T) {
	providerRoute := straightRoute(30)
	provider := &stubRouteProvider{route: providerRoute}
	resolver := NewRouteResolver(provider, zerolog.Nop())

	got := resolver.Resolve(context.Background(), ports.ResolveRouteInput{Origin: berlin, Destination: paris})

	if got.Fallback {
		t.Error("provider success must not be flagged as fallback")
	}
	if len(got.Points) != 30 {
		t.Errorf("expected the provider's 30 points, got %d", len(got.Points))
	}
	if len(got.Completed) != 18 {
		t.Errorf("no current position: expected floor(30*0.6)=18 completed points, got %d", len(got.Completed))
	}
	if got.Note != "" {
		t.Errorf("no note expected on provider success, got %q", got.Note)
	}
}

func TestRouteResolver_ProviderError_FallsBack(t *testing.T) {
	provider := &stubRouteProvider{err: errors.New("connection refused")}
	resolver := NewRouteResolver(provider, zerolog.Nop())

	got := resolver.Resolve(context.Background(), ports.ResolveRouteInput{Origin: berlin, Destination: paris})

	if !got.Fallback {
		t.Fatal("provider error must produce a fallback route")
	}
	if len(got.Points) != fallbackSteps+1 {
		t.Errorf("expected %d synthesized points, got %d", fallbackSteps+1, len(got.Points))
	}
	if got.Note == "" {
		t.Error("fallback must carry a display note")
	}
	if !almostEqual(got.Points[0], berlin) || !almostEqual(got.Points[len(got.Points)-1], paris) {
		t.Error("fallback endpoints must match origin and destination")
	}
}

func TestRouteResolver_ProviderEmptyRoute_FallsBack(t *testing.T) {
	provider := &stubRouteProvider{route: domain.Route{}}
	resolver := NewRouteResolver(provider, zerolog.Nop())

	got := resolver.Resolve(context.Background(), ports.ResolveRouteInput{Origin: berlin, Destination: paris})

	if !got.Fallback {
		t.Fatal("an empty provider route must produce a fallback route")
	}
	if len(got.Points) == 0 {
		t.Fatal("resolver must never return an empty route for distinct endpoints")
	}
}

func TestRouteResolver_CurrentProjectsOntoRoute(t *testing.T) {
	providerRoute := straightRoute(10)
	provider := &stubRouteProvider{route: providerRoute}
	resolver := NewRouteResolver(provider, zerolog.Nop())

	current := providerRoute[7]
	got := resolver.Resolve(context.Background(), ports.ResolveRouteInput{
		Origin:      providerRoute[0],
		Destination: providerRoute[9],
		Current:     &current,
	})

	if len(got.Completed) != 8 {
		t.Errorf("current at route[7]: expected 8 completed points, got %d", len(got.Completed))
	}
}

func TestRouteResolver_BoundsFitFullRoute(t *testing.T) {
	providerRoute := domain.Route{
		{Lat: 10, Lng: -3},
		{Lat: 12, Lng: 4},
		{Lat: 8, Lng: 1},
	}
	provider := &stubRouteProvider{route: providerRoute}
	resolver := NewRouteResolver(provider, zerolog.Nop())

	got := resolver.Resolve(context.Background(), ports.ResolveRouteInput{Origin: providerRoute[0], Destination: providerRoute[2]})

	want := domain.Bounds{
		SouthWest: domain.Coordinates{Lat: 8, Lng: -3},
		NorthEast: domain.Coordinates{Lat: 12, Lng: 4},
	}
	if got.Bounds != want {
		t.Errorf("bounds: want %+v, got %+v", want, got.Bounds)
	}
}
