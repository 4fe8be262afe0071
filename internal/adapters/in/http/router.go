package http

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoswagger "github.com/swaggo/echo-swagger"
)

// NewRouter builds the echo instance: recovery, request-id and request
// logging middleware, the API routes, the liveness probe and the swagger UI.
func NewRouter(server *Server, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.InfoContext(c.Request().Context(), "request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
			)
			return nil
		},
	}))

	e.POST("/api/orders", server.CreateOrder)
	e.GET("/api/orders", server.GetOrders)
	e.GET("/api/orders/:id", server.GetOrder)
	e.PATCH("/api/orders/:id", server.ChangeOrderStatus)
	e.GET("/api/queue", server.GetQueue)
	e.GET("/healthz", server.Healthz)
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
