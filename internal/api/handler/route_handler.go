package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ike-nanino/tracking/internal/core/domain"
	"github.com/ike-nanino/tracking/internal/core/ports"
)

// RouteHandler exposes the route resolver directly, for map components that
// already hold coordinates and only need the geometry.
type RouteHandler struct {
	service ports.RouteService
}

func NewRouteHandler(service ports.RouteService) *RouteHandler {
	return &RouteHandler{service: service}
}

// Resolve handles POST /v1/routes/resolve.
//
// @Summary      Resolve a route between two coordinates
// @Description  Fetches the driving route and computes the completed prefix. Provider failures degrade to a synthesized path, flagged by "fallback".
// @Tags         routes
// @Accept       json
// @Produce      json
// @Param        body  body      resolveRouteRequest  true  "Origin, destination, and optional current coordinates"
// @Success      200   {object}  resolveRouteResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/routes/resolve [post]
func (h *RouteHandler) Resolve(c echo.Context) error {
	var req resolveRouteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	input := ports.ResolveRouteInput{
		Origin:      domain.Coordinates{Lat: req.Origin.Lat, Lng: req.Origin.Lng},
		Destination: domain.Coordinates{Lat: req.Destination.Lat, Lng: req.Destination.Lng},
	}
	if req.Current != nil {
		input.Current = &domain.Coordinates{Lat: req.Current.Lat, Lng: req.Current.Lng}
	}

	resolved := h.service.Resolve(c.Request().Context(), input)

	return c.JSON(http.StatusOK, resolveRouteResponse{
		Route:     toCoordinateList(resolved.Points),
		Completed: toCoordinateList(resolved.Completed),
		Bounds:    toBounds(resolved.Bounds),
		Center:    coordinatesResponse{Lat: resolved.Bounds.Center().Lat, Lng: resolved.Bounds.Center().Lng},
		Fallback:  resolved.Fallback,
		Note:      resolved.Note,
	})
}
