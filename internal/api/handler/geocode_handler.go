package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ike-nanino/tracking/internal/core/domain"
	"github.com/ike-nanino/tracking/internal/core/ports"
)

// GeocodeHandler resolves free-text place names for the search box.
type GeocodeHandler struct {
	service ports.GeocodeService
}

func NewGeocodeHandler(service ports.GeocodeService) *GeocodeHandler {
	return &GeocodeHandler{service: service}
}

// Search handles GET /v1/geocode?q=<place name>.
//
// @Summary      Geocode a place name
// @Tags         geocode
// @Produce      json
// @Param        q    query     string  true  "Free-text place name"
// @Success      200  {object}  geocodeResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/geocode [get]
func (h *GeocodeHandler) Search(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing query parameter q")
	}

	coords, err := h.service.Lookup(c.Request().Context(), query)
	if err != nil {
		if errors.Is(err, domain.ErrAddressNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "address not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, geocodeResponse{Query: query, Lat: coords.Lat, Lng: coords.Lng})
}
