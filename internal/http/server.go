package http

import (
	"context"
	"net/http"

	"github.com/customer-admin/customer-admin/internal/config"
	"github.com/customer-admin/customer-admin/internal/metrics"
	"github.com/customer-admin/customer-admin/internal/repository"
	"github.com/customer-admin/customer-admin/internal/util"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	echoMid "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct{ e *echo.Echo }

func NewServer(cfg config.Config, mysqlDB *sqlx.DB) *Server {
	customersRepo := repository.NewCustomersRepository(mysqlDB)

	// echo
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMid.Recover(), echoMid.Logger())
	e.Use(echoMid.RequestIDWithConfig(echoMid.RequestIDConfig{
		Generator: util.NewRequestID,
	}))

	metrics.MustRegister(prometheus.DefaultRegisterer)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// landing + health
	e.GET("/", indexHandler())
	e.GET("/health", healthHandler())

	// customers
	e.POST("/customers", createCustomerHandler(customersRepo))
	e.GET("/customers", listCustomersHandler(customersRepo))
	e.GET("/customers/:id", getCustomerHandler(customersRepo))
	e.PUT("/customers/:id", updateCustomerHandler(customersRepo))
	e.DELETE("/customers/:id", deleteCustomerHandler(customersRepo))
	e.PUT("/customers/:id/suspend", suspendCustomerHandler(customersRepo))

	return &Server{e: e}
}

func indexHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"name":    "Customer Admin REST API Service",
			"version": "1.0.0",
			"paths": map[string]string{
				"health":    "/health",
				"metrics":   "/metrics",
				"customers": "/customers",
			},
		})
	}
}

func healthHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"status":  http.StatusOK,
			"message": "Healthy",
		})
	}
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}
func (s *Server) Shutdown(ctx context.Context) error { return s.e.Shutdown(ctx) }
