package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/ike-nanino/tracking/docs"
	"github.com/ike-nanino/tracking/internal/api/handler"
	"github.com/ike-nanino/tracking/internal/core/ports"
)

// Dependencies carries everything the router needs to register routes.
type Dependencies struct {
	Tracking ports.TrackingService
	Geocode  ports.GeocodeService
	Routes   ports.RouteService
	Redis    *redis.Client // nil when the geocode cache is disabled
	Logger   zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("tracking"))

	// --- Handlers ---
	trackingHandler := handler.NewTrackingHandler(deps.Tracking)
	routeHandler := handler.NewRouteHandler(deps.Routes)
	geocodeHandler := handler.NewGeocodeHandler(deps.Geocode)

	v1 := e.Group("/v1")
	v1.GET("/tracking/:tracking_number", trackingHandler.Get)
	v1.POST("/routes/resolve", routeHandler.Resolve)
	v1.GET("/geocode", geocodeHandler.Search)

	// --- Health probes ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Redis)

	e.GET("/health", healthHandler.Liveness)           // is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
