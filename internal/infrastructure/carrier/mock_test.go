package carrier

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ike-nanino/tracking/internal/core/domain"
)

func fixedClock() func() time.Time {
	ref := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return ref }
}

func TestMockSource_InvalidFormat(t *testing.T) {
	src := NewMockSourceAt(fixedClock())

	for _, number := range []string{
		"",
		"SHORT",                     // too short
		"lowercase-123456",          // lowercase not allowed
		"TRK_12345678",              // underscore not allowed
		"-TRK12345678",              // leading dash
		"TRK-123456789012345678901", // too long
	} {
		_, err := src.FindByTrackingNumber(context.Background(), number)
		if !errors.Is(err, domain.ErrShipmentNotFound) {
			t.Errorf("%q: expected ErrShipmentNotFound, got %v", number, err)
		}
	}
}

func TestMockSource_Deterministic(t *testing.T) {
	src := NewMockSourceAt(fixedClock())

	first, err := src.FindByTrackingNumber(context.Background(), "TRK-7A8B9C2D")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := src.FindByTrackingNumber(context.Background(), "TRK-7A8B9C2D")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.Origin != second.Origin || first.Destination != second.Destination {
		t.Error("same tracking number must yield the same places")
	}
	if first.Status != second.Status || first.ServiceType != second.ServiceType {
		t.Error("same tracking number must yield the same status and service type")
	}
	if !first.CreatedAt.Equal(second.CreatedAt) {
		t.Error("same tracking number and clock must yield the same timestamps")
	}
}

func TestMockSource_ShipmentShape(t *testing.T) {
	src := NewMockSourceAt(fixedClock())

	numbers := []string{
		"TRK-7A8B9C2D", "TRK-00000001", "TRK-00000002", "TRK-00000003",
		"PKG-ABCDEF12", "PKG-ABCDEF13", "9M-12345678", "AIR-1B2C3D4E",
	}
	for _, number := range numbers {
		s, err := src.FindByTrackingNumber(context.Background(), number)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", number, err)
		}

		if s.Origin.Name == s.Destination.Name {
			t.Errorf("%s: origin and destination must differ", number)
		}
		if s.Origin.Coordinates != nil || s.Destination.Coordinates != nil {
			t.Errorf("%s: the source must not resolve coordinates", number)
		}
		if len(s.Timeline) == 0 {
			t.Fatalf("%s: timeline must not be empty", number)
		}
		if s.Timeline[0].Status != domain.StatusCreated {
			t.Errorf("%s: timeline must start at created, got %s", number, s.Timeline[0].Status)
		}
		if s.CreatedAt.After(fixedClock()()) {
			t.Errorf("%s: created_at must lie in the past", number)
		}

		switch s.Status {
		case domain.StatusInTransit:
			if s.Current.Name == "" {
				t.Errorf("%s: in_transit shipments must report a current place", number)
			}
			if s.Current.Name == s.Origin.Name || s.Current.Name == s.Destination.Name {
				t.Errorf("%s: current place must be a waypoint, got %q", number, s.Current.Name)
			}
		default:
			if s.Current.Name != "" {
				t.Errorf("%s: only in_transit shipments carry a current place, got %q", number, s.Current.Name)
			}
		}
	}
}

func TestMockSource_TimelineProgression(t *testing.T) {
	src := NewMockSourceAt(fixedClock())

	s, err := src.FindByTrackingNumber(context.Background(), "TRK-7A8B9C2D")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	full := domain.StatusChain(domain.StatusDelivered)
	if len(s.Timeline) != len(full) {
		t.Fatalf("timeline must cover the whole journey, want %d events, got %d", len(full), len(s.Timeline))
	}

	sawPending := false
	var prev time.Time
	for i, ev := range s.Timeline {
		if ev.Status != full[i] {
			t.Errorf("event %d: want status %s, got %s", i, full[i], ev.Status)
		}
		if ev.Completed {
			if sawPending {
				t.Fatal("completed events must form a prefix of the timeline")
			}
			if ev.Timestamp.IsZero() {
				t.Errorf("event %d: completed events need a timestamp", i)
			}
			if !prev.IsZero() && ev.Timestamp.Before(prev) {
				t.Errorf("event %d: timestamps must not go backwards", i)
			}
			prev = ev.Timestamp
		} else {
			sawPending = true
			if !ev.Timestamp.IsZero() {
				t.Errorf("event %d: pending events must not carry a timestamp", i)
			}
		}
	}

	// The completed prefix mirrors the shipment's status chain.
	completed := 0
	for _, ev := range s.Timeline {
		if ev.Completed {
			completed++
		}
	}
	if completed != len(domain.StatusChain(s.Status)) {
		t.Errorf("expected %d completed events for status %s, got %d", len(domain.StatusChain(s.Status)), s.Status, completed)
	}
}
