package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/ike-nanino/tracking/internal/core/domain"
)

type stubGeocodeService struct {
	lookupFn func(ctx context.Context, name string) (domain.Coordinates, error)
}

func (s *stubGeocodeService) Lookup(ctx context.Context, name string) (domain.Coordinates, error) {
	return s.lookupFn(ctx, name)
}

func TestGeocodeHandler_Search_Success(t *testing.T) {
	e := echo.New()
	stub := &stubGeocodeService{
		lookupFn: func(_ context.Context, name string) (domain.Coordinates, error) {
			if name != "Accra, Ghana" {
				t.Fatalf("unexpected name: %s", name)
			}
			return domain.Coordinates{Lat: 5.56, Lng: -0.205}, nil
		},
	}
	handler := NewGeocodeHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/geocode?q=Accra%2C+Ghana", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["query"] != "Accra, Ghana" || resp["lat"] != 5.56 || resp["lng"] != -0.205 {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestGeocodeHandler_Search_MissingQuery(t *testing.T) {
	e := echo.New()
	handler := NewGeocodeHandler(&stubGeocodeService{
		lookupFn: func(_ context.Context, _ string) (domain.Coordinates, error) {
			t.Fatal("should not be called")
			return domain.Coordinates{}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/geocode", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Search(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestGeocodeHandler_Search_NotFound(t *testing.T) {
	e := echo.New()
	handler := NewGeocodeHandler(&stubGeocodeService{
		lookupFn: func(_ context.Context, _ string) (domain.Coordinates, error) {
			return domain.Coordinates{}, domain.ErrAddressNotFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/geocode?q=xyzzy", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
